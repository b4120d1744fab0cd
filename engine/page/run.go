package page

import (
	"github.com/npillmayer/pagina/core"
	"github.com/npillmayer/pagina/core/dimen"
	"github.com/npillmayer/pagina/engine/flow"
	"github.com/npillmayer/pagina/engine/frame"
	"github.com/npillmayer/pagina/engine/region"
	"github.com/npillmayer/pagina/engine/styles"
)

// Config carries the engines page layout needs.
type Config struct {
	Flow flow.Config
}

// LayoutRun lays out one page run: a sequence of blocks sharing uniform
// page properties. initial is the style chain active at the page break
// introducing the run. Every returned page still lacks its physical page
// number; see FinalizePage.
func LayoutRun(cfg Config, span core.Span, blocks []flow.Block,
	initial styles.Chain) ([]*LayoutedPage, error) {
	//
	sty := styles.DeterminePageStyles(blockChains(blocks, initial), initial)

	// When one of the lengths is infinite the page fits its content along
	// that axis.
	width := sty.Length(styles.PageWidth).UnwrapOr(dimen.Infinity)
	height := sty.Length(styles.PageHeight).UnwrapOr(dimen.Infinity)
	size := frame.Size{W: width, H: height}
	if sty.Bool(styles.PageFlipped, false) {
		size.W, size.H = size.H, size.W
	}

	shorter := dimen.Min(width, height)
	if !shorter.IsFinite() {
		shorter = dimen.DINA4.X
	}

	// The default margin is 2.5/21 of the shorter page side, the ratio of
	// a 2.5cm margin on an A4 page.
	def := defaultMargin(shorter)
	margin := Sides{
		Top:    sty.Length(styles.PageMarginTop).UnwrapOr(def),
		Bottom: sty.Length(styles.PageMarginBottom).UnwrapOr(def),
		Left:   sty.Length(styles.PageMarginLeft).UnwrapOr(def),
		Right:  sty.Length(styles.PageMarginRight).UnwrapOr(def),
	}
	twoSided := sty.Bool(styles.PageMarginTwoSided, false)

	area := frame.Size{
		W: shrink(size.W, margin.SumByAxis().W),
		H: shrink(size.H, margin.SumByAxis().H),
	}
	regs := region.Repeat(area, frame.Expansion{
		X: area.W.IsFinite(),
		Y: area.H.IsFinite(),
	})
	regs.Root = true

	binding := bindingFor(sty)
	headerAscent := sty.Dimen(styles.PageHeaderAscent, margin.Top*3/10)
	footerDescent := sty.Dimen(styles.PageFooterDescent, margin.Bottom*3/10)
	numbering := sty.Text(styles.PageNumbering, "")
	numberAlign := numberAlignFor(sty)

	header := marginalBlocks(sty, styles.PageHeader)
	footer := marginalBlocks(sty, styles.PageFooter)
	background := marginalBlocks(sty, styles.PageBackground)
	foreground := marginalBlocks(sty, styles.PageForeground)

	// The page numbering becomes a header or footer, unless an explicit
	// one takes precedence.
	numberInHeader := numbering != "" && numberAlign.Y == frame.Start && header == nil
	numberInFooter := numbering != "" && numberAlign.Y != frame.Start && footer == nil

	tracer().Debugf("page run: size %v, margins %v, %d blocks", size, margin, len(blocks))
	fragment, err := flow.Layout(cfg.Flow, span, blocks, sty, regs)
	if err != nil {
		return nil, err
	}

	ml := marginalLayouter{cfg: cfg, span: span, sty: sty}
	layouted := make([]*LayoutedPage, 0, fragment.Len())
	for _, inner := range fragment.Frames() {
		headerSize := frame.Size{W: inner.Width(), H: margin.Top - headerAscent}
		footerSize := frame.Size{W: inner.Width(), H: margin.Bottom - footerDescent}
		fullSize := frame.Size{
			W: inner.Width() + margin.SumByAxis().W,
			H: inner.Height() + margin.SumByAxis().H,
		}
		lp := &LayoutedPage{
			Inner:     inner,
			Margin:    margin,
			Binding:   binding,
			TwoSided:  twoSided,
			Fill:      sty.Text(styles.PageFill, ""),
			Numbering: numbering,
		}
		if lp.Header, err = ml.layout(header, headerSize, frame.End); err != nil {
			return nil, err
		}
		if lp.Footer, err = ml.layout(footer, footerSize, frame.Start); err != nil {
			return nil, err
		}
		if lp.Background, err = ml.layout(background, fullSize, frame.Center); err != nil {
			return nil, err
		}
		if lp.Foreground, err = ml.layout(foreground, fullSize, frame.Center); err != nil {
			return nil, err
		}
		if numberInHeader {
			lp.Header = numberingFrame(numbering, numberAlign.X, headerSize, frame.End)
		}
		if numberInFooter {
			lp.Footer = numberingFrame(numbering, numberAlign.X, footerSize, frame.Start)
		}
		layouted = append(layouted, lp)
	}
	return layouted, nil
}

// defaultMargin computes the default margin for the shorter page side.
func defaultMargin(shorter dimen.Dimen) dimen.Dimen {
	return dimen.Dimen(int64(shorter) * 25 / 210)
}

// shrink subtracts margins from a page side, keeping infinite sides
// infinite.
func shrink(d, m dimen.Dimen) dimen.Dimen {
	if !d.IsFinite() {
		return dimen.Infinity
	}
	return d - m
}

// blockChains collects the style chains of the run's children, for
// determining the lifted page styles. A child without a chain of its own
// lives under the styles active at the page break.
func blockChains(blocks []flow.Block, initial styles.Chain) []styles.Chain {
	var chains []styles.Chain
	add := func(chain styles.Chain) {
		if chain == nil {
			chain = initial
		}
		chains = append(chains, chain)
	}
	for _, b := range blocks {
		switch b := b.(type) {
		case flow.Paragraph:
			add(b.Styles)
		case flow.Box:
			add(b.Styles)
		case flow.Group:
			add(b.Styles)
		case flow.Placed:
			add(b.Styles)
		}
	}
	return chains
}

// bindingFor resolves the binding side, falling back to the writing
// direction.
func bindingFor(sty styles.Chain) Binding {
	if v, ok := sty.Lookup(styles.PageBinding); ok {
		if b, ok := v.(Binding); ok {
			return b
		}
	}
	if v, ok := sty.Lookup(styles.TextDir); ok {
		if d, ok := v.(frame.Dir); ok && d == frame.RTL {
			return BindRight
		}
	}
	return BindLeft
}

// numberAlignFor resolves the page-number alignment; the default is
// centered in the footer.
func numberAlignFor(sty styles.Chain) frame.Alignments {
	if v, ok := sty.Lookup(styles.PageNumberAlign); ok {
		if a, ok := v.(frame.Alignments); ok {
			return a
		}
	}
	return frame.Alignments{X: frame.Center, Y: frame.End}
}

// marginalBlocks reads marginal content from the style chain.
func marginalBlocks(sty styles.Chain, p styles.Property) []flow.Block {
	if v, ok := sty.Lookup(p); ok {
		if blocks, ok := v.([]flow.Block); ok {
			return blocks
		}
	}
	return nil
}

// marginalLayouter lays out header, footer, background and foreground
// content into fixed areas.
type marginalLayouter struct {
	cfg  Config
	span core.Span
	sty  styles.Chain
}

// layout lays out marginal content into an area of fixed size, aligned
// along the vertical axis. Content that does not fit the area is an
// error; marginals are never clipped silently.
func (ml marginalLayouter) layout(blocks []flow.Block, area frame.Size,
	alignY frame.FixedAlignment) (*frame.Frame, error) {
	//
	if blocks == nil {
		return nil, nil
	}
	regs := region.NewRegion(frame.Size{W: area.W, H: dimen.Infinity},
		frame.Expansion{X: true}).Regions()
	fragment, err := flow.Layout(ml.cfg.Flow, ml.span, blocks, ml.sty, regs)
	if err != nil {
		return nil, err
	}
	content := fragment.IntoFrame()
	if content.Height() > area.H {
		return nil, core.ErrorAt(ml.span, core.ELAYOUT,
			"marginal content of height %v overflows its area of height %v",
			content.Height(), area.H)
	}
	out := frame.NewFrame(area)
	out.PushFrame(dimen.Point{Y: alignY.Position(area.H - content.Height())}, content)
	return out, nil
}

// numberingFrame builds the page-number marginal: a frame holding an
// unresolved marker, which a later finalization pass replaces with the
// formatted page number.
func numberingFrame(pattern string, alignX frame.FixedAlignment,
	area frame.Size, alignY frame.FixedAlignment) *frame.Frame {
	//
	f := frame.NewFrame(area)
	f.Push(dimen.Point{
		X: alignX.Position(area.W),
		Y: alignY.Position(area.H),
	}, frame.Marker{Pattern: pattern, Align: alignX})
	return f
}
