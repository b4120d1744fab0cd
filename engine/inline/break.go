package inline

import (
	"github.com/npillmayer/pagina/core/dimen"
	"github.com/npillmayer/pagina/core/option"
	"github.com/npillmayer/pagina/engine/region"
)

// Metrics are the measured extents of a shaped text fragment.
type Metrics struct {
	W dimen.Dimen // advance width
	H dimen.Dimen // height above the baseline
	D dimen.Dimen // depth below the baseline
}

// Shaper measures text fragments. Shaping proper (glyph selection,
// kerning, font fallback) is outside of this module; layout only consumes
// the resulting metrics.
type Shaper interface {
	Measure(frag string, size dimen.Dimen) Metrics
}

// AvailableWidthFunc returns the usable line width at a given vertical
// offset from the paragraph top. The driver supplies a closure over the
// paragraph's float exclusions.
type AvailableWidthFunc func(y dimen.Dimen) dimen.Dimen

// IndentFunc returns the indentation of line number lineno (zero-based).
type IndentFunc func(lineno int) dimen.Dimen

// Line is one chosen line: a byte range of the paragraph text together
// with its measured width.
type Line struct {
	From, To int
	Width    dimen.Dimen
}

// BreakRequest bundles everything a line-breaking engine needs.
type BreakRequest struct {
	// Text is the full paragraph text.
	Text string
	// Measure returns the advance width of a text fragment.
	Measure func(frag string) dimen.Dimen
	// Width returns the available width at a vertical offset. Engines
	// must consult it per line, since float exclusions vary with y.
	Width AvailableWidthFunc
	// Indent returns per-line indentation, subtracted from the width.
	Indent IndentFunc
	// Leading is the vertical advance per line, used to compute the
	// offsets passed to Width.
	Leading dimen.Dimen
	// Mode selects the breaking strategy.
	Mode Linebreaks
	// Costs weighs the choices of an optimizing engine.
	Costs Costs
	// Hyphenate enables hyphenation; unset means the engine decides per
	// run.
	Hyphenate option.BoolT
	// Lang is the text language, if uniform across the paragraph.
	Lang string
}

// Breaker chooses line breaks for a paragraph. Implementations are
// injected; package uaxbreak provides a Unicode-segmentation based one.
type Breaker interface {
	Break(req BreakRequest) ([]Line, error)
}

// widthFunc builds the available-width closure over the paragraph's
// exclusions.
func widthFunc(base dimen.Dimen, excl region.ParExclusions) AvailableWidthFunc {
	if excl.IsEmpty() {
		return func(dimen.Dimen) dimen.Dimen { return base }
	}
	return func(y dimen.Dimen) dimen.Dimen {
		return excl.AvailableWidth(base, y)
	}
}
