package page

import (
	"github.com/npillmayer/pagina/core"
	"github.com/npillmayer/pagina/core/dimen"
	"github.com/npillmayer/pagina/engine/flow"
	"github.com/npillmayer/pagina/engine/frame"
	"github.com/npillmayer/pagina/engine/styles"
)

// Parity requests that a page break lands the following content on an
// even or odd page, inserting a blank filler page if necessary.
type Parity uint8

const (
	NoParity Parity = iota
	ToEven
	ToOdd
)

// NeedsFiller reports whether a blank filler page must be inserted so
// that the next page gets the requested parity. produced is the number of
// pages laid out so far.
func (p Parity) NeedsFiller(produced int) bool {
	switch p {
	case ToEven:
		return produced%2 == 0
	case ToOdd:
		return produced%2 == 1
	}
	return false
}

func (p Parity) String() string {
	switch p {
	case ToEven:
		return "to-even"
	case ToOdd:
		return "to-odd"
	}
	return "none"
}

// Pagebreak separates two page runs in a document. A weak break only
// produces an empty page when it would otherwise be invisible at a place
// where a break happens anyway. A boundary break closes the scope of a
// page style without establishing new initial styles for a potential
// empty page.
type Pagebreak struct {
	Weak     bool
	Boundary bool
	Parity   Parity
	Styles   styles.Chain
}

// docItem is one logical slice of a document: either a page run or a
// parity instruction.
type docItem struct {
	run     []flow.Block
	initial styles.Chain
	parity  Parity
	isRun   bool
}

// collectRuns splits the document's children, a flat list of flow blocks
// and page breaks, into page runs and parity instructions.
func collectRuns(span core.Span, children []interface{},
	initial styles.Chain) ([]docItem, error) {
	//
	var items []docItem
	var run []flow.Block

	// When this stays true until the end, a trailing empty page is added.
	staged := true

	for _, child := range children {
		switch c := child.(type) {
		case Pagebreak:
			if len(run) > 0 {
				items = append(items, docItem{run: run, initial: initial, isRun: true})
				run = nil
				staged = false
			}
			strong := !c.Weak
			if strong && staged {
				items = append(items, docItem{initial: initial, isRun: true})
			}
			if c.Parity != NoParity {
				items = append(items, docItem{parity: c.Parity, initial: c.Styles})
			}
			// A boundary break closes a page style scope; its styles are the
			// ones from before that scope and must not leak onto an empty
			// page.
			if !c.Boundary {
				initial = c.Styles
			}
			staged = staged || strong
		case flow.Block:
			run = append(run, c)
		default:
			return nil, core.ErrorAt(span, core.EINVALID,
				"document child of unknown type %T", child)
		}
	}
	if len(run) > 0 {
		items = append(items, docItem{run: run, initial: initial, isRun: true})
	} else if staged {
		items = append(items, docItem{initial: initial, isRun: true})
	}
	return items, nil
}

// LayoutDocument lays out a whole document: a flat sequence of flow
// blocks (see package flow) and Pagebreak values. initial is the style
// chain in effect at the start of the document.
func LayoutDocument(cfg Config, span core.Span, children []interface{},
	initial styles.Chain) ([]*Page, error) {
	//
	items, err := collectRuns(span, children, initial)
	if err != nil {
		return nil, err
	}
	counter := NewCounter()
	var pages []*Page
	for _, it := range items {
		if !it.isRun {
			if !it.parity.NeedsFiller(len(pages)) {
				continue
			}
			tracer().Debugf("inserting filler page for parity %v", it.parity)
		}
		layouted, err := LayoutRun(cfg, span, it.run, it.initial)
		if err != nil {
			return nil, err
		}
		for _, lp := range layouted {
			pages = append(pages, FinalizePage(counter, lp))
		}
	}
	return pages, nil
}

// FinalizePage pieces together the inner page frame and the marginals.
// This can only happen at the very end because inside/outside margins
// depend on the physical page number, which is unknown during run layout.
func FinalizePage(counter *Counter, lp *LayoutedPage) *Page {
	margin := lp.Margin

	// If two sided, left becomes inside and right becomes outside.
	if lp.TwoSided && lp.Binding.Swap(counter.Physical()) {
		margin.Left, margin.Right = margin.Right, margin.Left
	}

	full := frame.NewFrame(frame.Size{
		W: lp.Inner.Width() + margin.SumByAxis().W,
		H: lp.Inner.Height() + margin.SumByAxis().H,
	})
	if lp.Background != nil {
		full.PushFrame(dimen.Origin, lp.Background)
	}
	if lp.Header != nil {
		full.PushFrame(dimen.Point{X: margin.Left}, lp.Header)
	}
	full.PushFrame(dimen.Point{X: margin.Left, Y: margin.Top}, lp.Inner)
	if lp.Footer != nil {
		y := full.Height() - lp.Footer.Height()
		full.PushFrame(dimen.Point{X: margin.Left, Y: y}, lp.Footer)
	}
	if lp.Foreground != nil {
		full.PushFrame(dimen.Origin, lp.Foreground)
	}

	number := counter.Logical()
	counter.Step()
	return &Page{Frame: full, Fill: lp.Fill, Numbering: lp.Numbering, Number: number}
}
