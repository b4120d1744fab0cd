package flow

import (
	"github.com/npillmayer/pagina/core"
	"github.com/npillmayer/pagina/core/dimen"
	"github.com/npillmayer/pagina/engine/frame"
	"github.com/npillmayer/pagina/engine/inline"
	"github.com/npillmayer/pagina/engine/region"
	"github.com/npillmayer/pagina/engine/stack"
	"github.com/npillmayer/pagina/engine/styles"
)

// Config carries the engines a flow needs for its paragraphs.
type Config struct {
	Shaper  inline.Shaper
	Breaker inline.Breaker
}

// Layout lays out blocks into regs and returns one frame per consumed
// region. Layout is synchronous and recursive: nested groups and floats
// are laid out on the same call stack.
func Layout(cfg Config, span core.Span, blocks []Block, sty styles.Chain,
	regs region.Regions) (frame.Fragment, error) {
	//
	fl := &layouter{cfg: cfg, span: span, sty: sty}
	gap := stack.Abs(sty.Dimen(styles.ParSpacing, 12*dimen.PT))
	children := fl.children(blocks)
	sl := stack.NewLayouter(span, frame.TTB, regs)
	sl.OnRegionBreak(fl.dropFloats)
	return sl.Layout(&gap, children, fl.layoutBlock)
}

// layouter holds per-flow state, most importantly the wrap floats placed
// in the current region, which paragraphs turn into width exclusions.
type layouter struct {
	cfg    Config
	span   core.Span
	sty    styles.Chain
	floats []region.WrapFloat
}

// dropFloats clears the registered wrap floats. Float positions are
// region-relative, so a float only affects paragraphs in its own region.
func (fl *layouter) dropFloats() {
	if len(fl.floats) > 0 {
		tracer().Debugf("region break drops %d wrap floats", len(fl.floats))
	}
	fl.floats = fl.floats[:0]
}

// children converts flow blocks to stack children, tracking the paragraph
// situation along the way.
func (fl *layouter) children(blocks []Block) []stack.Child {
	children := make([]stack.Child, 0, len(blocks))
	prevPar := false
	for _, b := range blocks {
		if vs, ok := b.(VSpace); ok {
			if vs.IsFr {
				children = append(children, stack.SpacingChild(stack.Frac(vs.Fr)))
			} else {
				children = append(children, stack.SpacingChild(stack.Abs(vs.Height)))
			}
			continue
		}
		sty := blockStyles(b, fl.sty)
		if par, ok := b.(Paragraph); ok {
			situation := inline.SituationConsecutive
			if !prevPar {
				situation = inline.SituationFirst
			}
			children = append(children, stack.BlockChild(
				situatedPar{par: par, situation: situation}, sty, blockAlign(sty)))
			prevPar = true
			continue
		}
		prevPar = false
		children = append(children, stack.BlockChild(b, sty, blockAlign(sty)))
	}
	return children
}

// situatedPar is a paragraph together with its position among siblings.
type situatedPar struct {
	par       Paragraph
	situation inline.Situation
}

// layoutBlock is the block-layout capability handed to the stack.
func (fl *layouter) layoutBlock(block interface{}, sty styles.Chain,
	regs region.Regions) (frame.Fragment, error) {
	//
	switch b := block.(type) {
	case situatedPar:
		return fl.layoutPar(b, sty, regs)
	case Box:
		return frame.FragmentOf(frame.NewFrame(b.Size)), nil
	case Group:
		return Layout(fl.cfg, fl.span, b.Blocks, sty, regs)
	case Placed:
		return fl.layoutPlaced(b, sty, regs)
	}
	return frame.Fragment{}, core.ErrorAt(fl.span, core.EINVALID,
		"flow cannot lay out block of type %T", block)
}

// layoutPar computes the paragraph's float exclusions from its position in
// the current region, then runs the inline driver.
func (fl *layouter) layoutPar(sp situatedPar, sty styles.Chain,
	regs region.Regions) (frame.Fragment, error) {
	//
	parY := regs.Full - regs.Size.H
	excl := region.ParExclusions{}
	if len(fl.floats) > 0 {
		excl = region.ExclusionsForFloats(parY, regs.Size.H, fl.floats)
	}
	opts := inline.Options{Situation: sp.situation, TightList: sp.par.TightList}
	chain := sp.par.Styles
	if chain == nil {
		chain = sty
	}
	return inline.Layout(sp.par.Children, chain, opts, fl.cfg.Shaper,
		fl.cfg.Breaker, excl, regs)
}

// layoutPlaced lays out an out-of-flow element. Wrap floats are recorded
// as exclusions and wrapped into a zero-height frame, so they consume no
// main-axis space; non-wrapping placed elements behave like plain blocks.
// Floats are only honored in root regions.
func (fl *layouter) layoutPlaced(p Placed, sty styles.Chain,
	regs region.Regions) (frame.Fragment, error) {
	//
	inner := regs
	inner.Expand = frame.Expansion{}
	fragment, err := fl.layoutBlock(p.Block, sty, inner)
	if err != nil {
		return frame.Fragment{}, err
	}
	f := fragment.Frame(0)
	if !p.Wrap || !regs.Root {
		return frame.FragmentOf(f), nil
	}
	y := regs.Full - regs.Size.H
	fl.floats = append(fl.floats, region.WrapFloatForPlaced(f, y, p.AlignX, p.Clearance))
	tracer().Debugf("wrap float at y=%v, %d floats active", y, len(fl.floats))
	wrapper := frame.NewFrame(frame.Size{W: regs.Size.W, H: 0})
	x := p.AlignX.Position(regs.Size.W - f.Width())
	wrapper.PushFrame(dimen.Point{X: x}, f)
	return frame.FragmentOf(wrapper), nil
}

func blockStyles(b Block, def styles.Chain) styles.Chain {
	var chain styles.Chain
	switch b := b.(type) {
	case Paragraph:
		chain = b.Styles
	case Box:
		chain = b.Styles
	case Group:
		chain = b.Styles
	case Placed:
		chain = b.Styles
	}
	if chain == nil {
		return def
	}
	return chain
}

func blockAlign(sty styles.Chain) frame.Alignments {
	align := frame.Alignments{}
	if v, ok := sty.Lookup(styles.ParAlign); ok {
		if a, ok := v.(frame.FixedAlignment); ok {
			align.X = a
		}
	}
	return align
}
