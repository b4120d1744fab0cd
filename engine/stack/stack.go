package stack

import (
	"github.com/npillmayer/pagina/core"
	"github.com/npillmayer/pagina/core/dimen"
	"github.com/npillmayer/pagina/engine/frame"
	"github.com/npillmayer/pagina/engine/region"
	"github.com/npillmayer/pagina/engine/styles"
)

// Spacing is a gap between stack children, either absolute or fractional.
type Spacing struct {
	abs  dimen.Dimen
	fr   dimen.Fr
	isFr bool
}

// Abs creates absolute spacing.
func Abs(d dimen.Dimen) Spacing {
	return Spacing{abs: d}
}

// Frac creates fractional spacing, resolved against the leftover space of
// the region it ends up in.
func Frac(f dimen.Fr) Spacing {
	return Spacing{fr: f, isFr: true}
}

// BlockLayoutFunc lays out a single block child into a sequence of
// regions. The stack is polymorphic over the kind of block; implementations
// dispatch on it. Implementations must honor the regions' expand flags.
type BlockLayoutFunc func(block interface{}, sty styles.Chain,
	regs region.Regions) (frame.Fragment, error)

// Child is one stack child, either spacing or a block with its styles and
// block-axis alignment.
type Child struct {
	spacing *Spacing
	block   interface{}
	styles  styles.Chain
	align   frame.Alignments
}

// SpacingChild wraps spacing as a stack child.
func SpacingChild(s Spacing) Child {
	return Child{spacing: &s}
}

// BlockChild wraps a block as a stack child.
func BlockChild(block interface{}, sty styles.Chain, align frame.Alignments) Child {
	return Child{block: block, styles: sty, align: align}
}

// Layout lays out children along dir into regs. gap, if non-nil, is
// inserted between any two neighboring blocks; explicit spacing children
// suppress it. span locates errors.
func Layout(span core.Span, dir frame.Dir, gap *Spacing, children []Child,
	layout BlockLayoutFunc, regs region.Regions) (frame.Fragment, error) {
	//
	return NewLayouter(span, dir, regs).Layout(gap, children, layout)
}

// genericSize is a size with main and cross components; the main axis may
// correspond to either X or Y.
type genericSize struct {
	cross dimen.Dimen
	main  dimen.Dimen
}

func (g genericSize) intoSize(main frame.Axis) frame.Size {
	if main == frame.Horizontal {
		return frame.Size{W: g.main, H: g.cross}
	}
	return frame.Size{W: g.cross, H: g.main}
}

func (g genericSize) toPoint(main frame.Axis) dimen.Point {
	s := g.intoSize(main)
	return dimen.Point{X: s.W, Y: s.H}
}

// item is a prepared stack item whose exact position may not be known yet
// due to fractional spacing.
type item struct {
	abs   dimen.Dimen
	fr    dimen.Fr
	frame *frame.Frame
	align frame.Alignments
	isFr  bool
	isAbs bool
}

// Layouter performs stack layout. Use NewLayouter, then feed spacing and
// blocks in order, then call Finish.
type Layouter struct {
	span          core.Span
	dir           frame.Dir
	axis          frame.Axis
	regions       region.Regions
	expand        frame.Expansion
	initial       frame.Size
	used          genericSize
	fr            dimen.Fr
	items         []item
	finished      []*frame.Frame
	onRegionBreak func()
}

// NewLayouter creates a stack layouter pouring into regs along dir.
func NewLayouter(span core.Span, dir frame.Dir, regs region.Regions) *Layouter {
	axis := dir.Axis()
	expand := regs.Expand
	// Children never expand along the stacking axis.
	regs.Expand.Set(axis, false)
	return &Layouter{
		span:    span,
		dir:     dir,
		axis:    axis,
		regions: regs,
		expand:  expand,
		initial: regs.Size,
	}
}

// OnRegionBreak registers a hook which is called whenever the layouter
// finishes a region and advances to the next one. Callers keeping
// region-relative state, like the flow layer's float positions, reset it
// from the hook.
func (sl *Layouter) OnRegionBreak(hook func()) {
	sl.onRegionBreak = hook
}

// Layout feeds children in order and finishes. gap, if non-nil, is
// inserted between any two neighboring blocks; explicit spacing children
// suppress it.
func (sl *Layouter) Layout(gap *Spacing, children []Child,
	layout BlockLayoutFunc) (frame.Fragment, error) {
	//
	deferred := false
	for _, child := range children {
		if child.spacing != nil {
			sl.LayoutSpacing(*child.spacing)
			deferred = false
			continue
		}
		if deferred && gap != nil {
			sl.LayoutSpacing(*gap)
		}
		if err := sl.LayoutBlock(child.block, child.styles, child.align, layout); err != nil {
			return frame.Fragment{}, err
		}
		deferred = true
	}
	return sl.Finish()
}

// LayoutSpacing adds spacing along the stacking direction. Absolute
// spacing consumes remaining space immediately, limited to what is left;
// fractional spacing is queued until the region is finished.
func (sl *Layouter) LayoutSpacing(s Spacing) {
	if s.isFr {
		sl.fr += s.fr
		sl.items = append(sl.items, item{fr: s.fr, isFr: true})
		return
	}
	remaining := sl.regions.Size.Get(sl.axis)
	limited := dimen.Min(s.abs, remaining)
	if sl.axis == frame.Vertical {
		sl.regions.Size.H -= limited
	}
	sl.used.main += limited
	sl.items = append(sl.items, item{abs: s.abs, isAbs: true})
}

// LayoutBlock lays out one block child via layout and queues its frames.
// A multi-region fragment finishes the current region after every frame
// but the last.
func (sl *Layouter) LayoutBlock(block interface{}, sty styles.Chain,
	align frame.Alignments, layout BlockLayoutFunc) error {
	//
	if sl.regions.IsFull() {
		if err := sl.finishRegion(); err != nil {
			return err
		}
	}
	fragment, err := layout(block, sty, sl.regions)
	if err != nil {
		return err
	}
	frames := fragment.Frames()
	for i, f := range frames {
		size := f.Size()
		if sl.axis == frame.Vertical {
			sl.regions.Size.H -= size.H
		}
		var generic genericSize
		if sl.axis == frame.Horizontal {
			generic = genericSize{cross: size.H, main: size.W}
		} else {
			generic = genericSize{cross: size.W, main: size.H}
		}
		sl.used.main += generic.main
		sl.used.cross = dimen.Max(sl.used.cross, generic.cross)
		sl.items = append(sl.items, item{frame: f, align: align})
		if i+1 < len(frames) {
			if err := sl.finishRegion(); err != nil {
				return err
			}
		}
	}
	return nil
}

// finishRegion sizes the current region, places all queued items, and
// advances to the next region.
func (sl *Layouter) finishRegion() error {
	size := sl.used.intoSize(sl.axis)
	if sl.expand.X {
		size.W = sl.initial.W
	}
	if sl.expand.Y {
		size.H = sl.initial.H
	}
	size.W = dimen.Min(size.W, sl.initial.W)
	size.H = dimen.Min(size.H, sl.initial.H)

	// Fractional spacing stretches the stack to the full axis extent.
	full := sl.initial.Get(sl.axis)
	remaining := full - sl.used.main
	if sl.fr > 0 && full.IsFinite() {
		sl.used.main = full
		size.Set(sl.axis, full)
	}

	if !size.IsFinite() {
		return core.ErrorAt(sl.span, core.ELAYOUT, "stack spacing is infinite")
	}

	output := frame.NewFrame(size)
	cursor := dimen.Dimen(0)
	ruler := sl.dir.Start()

	for _, it := range sl.items {
		switch {
		case it.isAbs:
			cursor += it.abs
		case it.isFr:
			cursor += it.fr.Share(sl.fr, remaining)
		default:
			if sl.dir.IsPositive() {
				ruler = ruler.Max(it.align.Get(sl.axis))
			} else {
				ruler = ruler.Min(it.align.Get(sl.axis))
			}

			// Align along the main axis.
			parent := size.Get(sl.axis)
			child := it.frame.Size().Get(sl.axis)
			main := ruler.Position(parent - sl.used.main)
			if sl.dir.IsPositive() {
				main += cursor
			} else {
				main += sl.used.main - child - cursor
			}

			// Align along the cross axis.
			other := sl.axis.Other()
			cross := it.align.Get(other).Position(size.Get(other) - it.frame.Size().Get(other))

			pos := genericSize{cross: cross, main: main}.toPoint(sl.axis)
			cursor += child
			output.PushFrame(pos, it.frame)
		}
	}
	tracer().Debugf("stack finishes region %d with size %v", len(sl.finished), size)

	sl.regions.Next()
	sl.initial = sl.regions.Size
	sl.used = genericSize{}
	sl.fr = 0
	sl.items = sl.items[:0]
	sl.finished = append(sl.finished, output)
	if sl.onRegionBreak != nil {
		sl.onRegionBreak()
	}
	return nil
}

// Finish finishes the current region and returns all finished frames.
func (sl *Layouter) Finish() (frame.Fragment, error) {
	if err := sl.finishRegion(); err != nil {
		return frame.Fragment{}, err
	}
	frames := sl.finished
	sl.finished = nil
	return frame.FragmentFrames(frames), nil
}
