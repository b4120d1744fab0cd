package inline

import (
	"strings"

	"github.com/npillmayer/pagina/core/dimen"
	"github.com/npillmayer/pagina/engine/frame"
	"github.com/npillmayer/pagina/engine/region"
)

// finalize turns the chosen lines into positioned line frames, breaking
// the paragraph across regions where necessary.
func finalize(cfg Config, shaper Shaper, prep prepared, lines []Line,
	excl region.ParExclusions, regs region.Regions) (frame.Fragment, error) {
	//
	width := regs.Size.W
	var finished []*frame.Frame
	current := frame.NewFrame(frame.Size{W: width})
	var regionUsed dimen.Dimen // height consumed in the current region
	var parY dimen.Dimen       // offset from the paragraph top, for exclusions

	flush := func() {
		finished = append(finished, reframe(current, width, regionUsed))
		current = frame.NewFrame(frame.Size{W: width})
		regionUsed = 0
	}

	for lineno, line := range lines {
		if cfg.Leading > regs.Size.H && regs.MayProgress() {
			flush()
			regs.Next()
		}
		lf := lineFrame(cfg, shaper, prep, line, lineno, parY, excl, width)
		current.PushFrame(dimen.Point{Y: regionUsed}, lf)
		regs.Size.H -= cfg.Leading
		regionUsed += cfg.Leading
		parY += cfg.Leading
	}
	flush()
	tracer().Debugf("paragraph finalized: %d lines over %d regions",
		len(lines), len(finished))
	return frame.FragmentFrames(finished), nil
}

// reframe copies f with its height fixed to used.
func reframe(f *frame.Frame, width, used dimen.Dimen) *frame.Frame {
	sized := frame.NewFrame(frame.Size{W: width, H: used})
	for _, it := range f.Items() {
		sized.Push(it.Pos, it.Item)
	}
	return sized
}

// lineFrame builds the frame for a single line, honoring exclusions,
// indentation, alignment, and justification.
func lineFrame(cfg Config, shaper Shaper, prep prepared, line Line,
	lineno int, parY dimen.Dimen, excl region.ParExclusions,
	width dimen.Dimen) *frame.Frame {
	//
	metrics := shaper.Measure(prep.text[line.From:line.To], cfg.FontSize)
	lf := frame.NewFrame(frame.Size{W: width, H: cfg.Leading})
	indent := lineIndent(cfg)(lineno)
	avail := excl.AvailableWidth(width, parY) - indent
	x := excl.LeftOffset(parY) + indent

	// Justified lines occupy the full available width; the shaping
	// engine distributes the glyph-level stretch. The last line of a
	// justified paragraph keeps its natural width.
	last := line.To >= len(prep.text)
	if !cfg.Justify || last {
		x += cfg.Align.Position(avail - line.Width)
	}

	content := strings.TrimRight(prep.text[line.From:line.To], " \t\n")
	lf.Push(dimen.Point{X: x}, frame.TextItem{
		Content: content,
		Width:   line.Width,
		Height:  metrics.H + metrics.D,
	})
	if cfg.NumberingMarker != "" {
		lf.Push(dimen.Point{}, frame.Marker{
			Pattern: cfg.NumberingMarker,
			Align:   cfg.Dir.Start(),
		})
	}
	return lf
}

// lineIndent builds the per-line indentation function: first-line indent
// for line zero, hanging indent for all others.
func lineIndent(cfg Config) IndentFunc {
	return func(lineno int) dimen.Dimen {
		if lineno == 0 {
			return cfg.FirstLineIndent
		}
		return cfg.HangingIndent
	}
}
