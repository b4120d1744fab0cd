package inline

import (
	"github.com/npillmayer/pagina/core/dimen"
	"github.com/npillmayer/pagina/engine/frame"
	"github.com/npillmayer/pagina/engine/region"
	"github.com/npillmayer/pagina/engine/styles"
)

// Layout lays out a paragraph into regs and returns one frame per consumed
// region. excl carries the float exclusions overlapping the paragraph; pass
// the zero value for a paragraph without floats.
//
// The four stages run in strict sequence: collect, prepare, break,
// finalize. All of them are pure; only the injected breaker varies.
func Layout(children []Child, sty styles.Chain, opts Options, shaper Shaper,
	breaker Breaker, excl region.ParExclusions,
	regs region.Regions) (frame.Fragment, error) {
	//
	cfg := ConfigFor(sty, children, opts)
	coll := collect(children)
	prep, err := prepare(cfg, coll)
	if err != nil {
		return frame.Fragment{}, err
	}
	lines, err := breakLines(cfg, prep, shaper, breaker, excl, regs)
	if err != nil {
		return frame.Fragment{}, err
	}
	return finalize(cfg, shaper, prep, lines, excl, regs)
}

// breakLines delegates to the breaking engine, supplying the measure and
// available-width closures.
func breakLines(cfg Config, prep prepared, shaper Shaper, breaker Breaker,
	excl region.ParExclusions, regs region.Regions) ([]Line, error) {
	//
	if prep.text == "" {
		return nil, nil
	}
	req := BreakRequest{
		Text: prep.text,
		Measure: func(frag string) dimen.Dimen {
			return shaper.Measure(frag, cfg.FontSize).W
		},
		Width:     widthFunc(regs.Size.W, excl),
		Indent:    lineIndent(cfg),
		Leading:   cfg.Leading,
		Mode:      cfg.Linebreaks,
		Costs:     cfg.Costs,
		Hyphenate: cfg.Hyphenate,
		Lang:      cfg.Lang,
	}
	return breaker.Break(req)
}
