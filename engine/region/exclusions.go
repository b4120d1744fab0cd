package region

import (
	"fmt"
	"sort"

	"github.com/npillmayer/pagina/core/dimen"
	"github.com/npillmayer/pagina/engine/frame"
)

// ExclusionZone is a single rectangular width exclusion. The vertical
// range is half-open: YStart is inclusive, YEnd exclusive. All coordinates
// are paragraph-relative (y = 0 at the paragraph top).
type ExclusionZone struct {
	// YStart is the offset from the paragraph top where the exclusion
	// starts.
	YStart dimen.Dimen
	// YEnd is the offset from the paragraph top where the exclusion ends.
	YEnd dimen.Dimen
	// Left is the width excluded from the left side.
	Left dimen.Dimen
	// Right is the width excluded from the right side.
	Right dimen.Dimen
}

func (z ExclusionZone) String() string {
	return fmt.Sprintf("zone[%v,%v) -%v/-%v", z.YStart, z.YEnd, z.Left, z.Right)
}

// WrapFloat is a positioned float which text should wrap around, in region
// coordinates (y = 0 at the top of the content region).
type WrapFloat struct {
	// Y is the float's top coordinate in region coordinates.
	Y dimen.Dimen
	// Height is the height of the float.
	Height dimen.Dimen
	// LeftMargin is the width excluded from the left, i.e. float width
	// plus clearance, or zero for a right-aligned float.
	LeftMargin dimen.Dimen
	// RightMargin is the width excluded from the right, or zero for a
	// left-aligned float.
	RightMargin dimen.Dimen
}

// WrapFloatForPlaced creates a wrap-float from a placed element's frame and
// positioning. The horizontal alignment decides which side to exclude:
// start-aligned floats exclude from the left so text wraps on the right,
// end-aligned floats the other way around, and center-aligned floats
// exclude half the width from both sides.
func WrapFloatForPlaced(f *frame.Frame, y dimen.Dimen, alignX frame.FixedAlignment,
	clearance dimen.Dimen) WrapFloat {
	//
	width := f.Width() + dimen.Max(clearance, 0)
	var left, right dimen.Dimen
	switch alignX {
	case frame.Start:
		left = width
	case frame.End:
		right = width
	case frame.Center:
		left = width / 2
		right = width / 2
	}
	return WrapFloat{
		Y:           y,
		Height:      f.Height(),
		LeftMargin:  left,
		RightMargin: right,
	}
}

// ParExclusions is the set of width exclusions for one paragraph, derived
// from the floats overlapping it. Zones are sorted by YStart; queries scan
// linearly with an early exit.
type ParExclusions struct {
	Zones []ExclusionZone
}

// IsEmpty reports whether there are no exclusions.
func (pe ParExclusions) IsEmpty() bool {
	return len(pe.Zones) == 0
}

// ExclusionsForFloats creates exclusions from wrap-float positions. Only
// floats overlapping the paragraph's vertical extent [parY, parY+parHeight)
// contribute; their coordinates are converted to paragraph-relative offsets
// clamped to the paragraph's bounds, then sorted by start.
func ExclusionsForFloats(parY, parHeight dimen.Dimen, floats []WrapFloat) ParExclusions {
	zones := make([]ExclusionZone, 0, len(floats))
	parBottom := parY + parHeight
	for _, wf := range floats {
		top := wf.Y
		bottom := wf.Y + wf.Height
		if bottom <= parY || top >= parBottom {
			continue
		}
		zones = append(zones, ExclusionZone{
			YStart: dimen.Max(top-parY, 0),
			YEnd:   dimen.Min(bottom-parY, parHeight),
			Left:   wf.LeftMargin,
			Right:  wf.RightMargin,
		})
	}
	sort.Slice(zones, func(i, j int) bool {
		return zones[i].YStart < zones[j].YStart
	})
	tracer().Debugf("paragraph at %v picks up %d of %d floats", parY, len(zones), len(floats))
	return ParExclusions{Zones: zones}
}

// AvailableWidth returns the usable line width at vertical offset y within
// the paragraph. Overlapping exclusions contribute the maximum per side;
// the result never drops below zero.
func (pe ParExclusions) AvailableWidth(base, y dimen.Dimen) dimen.Dimen {
	var left, right dimen.Dimen
	for _, z := range pe.Zones {
		if y < z.YStart {
			break
		}
		if y < z.YEnd {
			left = dimen.Max(left, z.Left)
			right = dimen.Max(right, z.Right)
		}
	}
	return dimen.Max(base-left-right, 0)
}

// LeftOffset returns the left indentation at vertical offset y, for
// positioning lines next to a left-side float.
func (pe ParExclusions) LeftOffset(y dimen.Dimen) dimen.Dimen {
	var left dimen.Dimen
	for _, z := range pe.Zones {
		if y < z.YStart {
			break
		}
		if y < z.YEnd {
			left = dimen.Max(left, z.Left)
		}
	}
	return left
}

// HasExclusionAt reports whether any exclusion is active at offset y.
func (pe ParExclusions) HasExclusionAt(y dimen.Dimen) bool {
	for _, z := range pe.Zones {
		if y < z.YStart {
			break
		}
		if y < z.YEnd {
			return true
		}
	}
	return false
}

// NextBoundary returns the closest offset above y at which an exclusion
// starts or ends. Line breaking uses it to jump directly to the points
// where the available width changes. ok is false if no boundary is left.
func (pe ParExclusions) NextBoundary(y dimen.Dimen) (boundary dimen.Dimen, ok bool) {
	for _, z := range pe.Zones {
		for _, b := range [2]dimen.Dimen{z.YStart, z.YEnd} {
			if b > y && (!ok || b < boundary) {
				boundary = b
				ok = true
			}
		}
	}
	return boundary, ok
}
