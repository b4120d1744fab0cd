package inline

import (
	"golang.org/x/text/unicode/bidi"

	"github.com/npillmayer/pagina/engine/frame"
)

// bidiRun is a byte range of uniform text direction.
type bidiRun struct {
	from, to int
	dir      frame.Dir
}

// prepared is the output of the prepare stage: the flat paragraph text
// with its resolved directionality, ready for line breaking.
type prepared struct {
	text string
	runs []styleRun
	dir  frame.Dir
	bidi []bidiRun
}

// prepare resolves the paragraph's bidi structure. A dominantly
// right-to-left text flips the paragraph's base direction.
func prepare(cfg Config, coll collected) (prepared, error) {
	text := coll.text.String()
	prep := prepared{
		text: text,
		runs: coll.runs,
		dir:  cfg.Dir,
	}
	if text == "" {
		return prep, nil
	}
	var para bidi.Paragraph
	if _, err := para.SetString(text); err != nil {
		return prepared{}, err
	}
	order, err := para.Order()
	if err != nil {
		return prepared{}, err
	}
	for i := 0; i < order.NumRuns(); i++ {
		run := order.Run(i)
		from, to := run.Pos()
		prep.bidi = append(prep.bidi, bidiRun{
			from: from,
			to:   to + 1,
			dir:  frame.DirFromBidi(run.Direction()),
		})
	}
	if !para.IsLeftToRight() {
		prep.dir = frame.RTL
	}
	tracer().Debugf("prepared paragraph: %d bytes, %d bidi runs, base %v",
		len(text), len(prep.bidi), prep.dir)
	return prep, nil
}
