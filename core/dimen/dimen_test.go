package dimen

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestParseDimen(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagina.core")
	defer teardown()
	//
	d, _, err := ParseDimen("12px")
	if err != nil {
		t.Errorf("(1) %s", err.Error())
	} else if d != 12*BP {
		t.Errorf("(1) expected d to be 12bp (%d), is %d", 12*BP, d)
	}
	//
	d, _, err = ParseDimen("0")
	if err != nil {
		t.Errorf("(2) %s", err.Error())
	} else if d != 0 {
		t.Errorf("(2) expected d to be 0, is %d", d)
	}
	//
	_, ispcnt, err := ParseDimen("20%")
	if err != nil {
		t.Errorf("(3) %s", err.Error())
	} else if ispcnt != true {
		t.Errorf("(3) expected percentage-marker to be true, is %v", ispcnt)
	}
	//
	d, _, err = ParseDimen("-3mm")
	if err != nil {
		t.Errorf("(4) %s", err.Error())
	} else if d != -3*MM {
		t.Errorf("(4) expected d to be -3mm (%d), is %d", -3*MM, d)
	}
	//
	_, _, err = ParseDimen("twelve")
	if err == nil {
		t.Errorf("(5) expected a format error, got none")
	}
}

func TestDimenFinite(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagina.core")
	defer teardown()
	//
	if Infinity.IsFinite() {
		t.Errorf("expected Infinity not to be finite")
	}
	if !(10 * PT).IsFinite() {
		t.Errorf("expected 10pt to be finite")
	}
}

func TestFrShare(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagina.core")
	defer teardown()
	//
	if d := Fr(1).Share(2, 80); d != 40 {
		t.Errorf("expected 1fr of 2fr over 80 units to be 40, is %d", d)
	}
	if d := Fr(1).Share(0, 80); d != 0 {
		t.Errorf("expected a share of a zero total to be 0, is %d", d)
	}
	if d := Fr(3).Share(4, 100); d != 75 {
		t.Errorf("expected 3fr of 4fr over 100 units to be 75, is %d", d)
	}
}
