package page

import (
	"fmt"

	"github.com/npillmayer/pagina/core/dimen"
	"github.com/npillmayer/pagina/engine/frame"
)

// Sides holds one dimension per page side.
type Sides struct {
	Top, Bottom, Left, Right dimen.Dimen
}

// SumByAxis returns the total margin extent per axis.
func (s Sides) SumByAxis() frame.Size {
	return frame.Size{W: s.Left + s.Right, H: s.Top + s.Bottom}
}

func (s Sides) String() string {
	return fmt.Sprintf("(t=%v b=%v l=%v r=%v)", s.Top, s.Bottom, s.Left, s.Right)
}

// Binding is the side pages are bound on.
type Binding uint8

const (
	BindLeft Binding = iota
	BindRight
)

// Swap reports whether the left and right margins of the physical page
// number n (1-based) must be swapped for two-sided layouts. For left-bound
// pages the swap happens on even pages, for right-bound pages on odd ones.
func (b Binding) Swap(n int) bool {
	if b == BindLeft {
		return n%2 == 0
	}
	return n%2 == 1
}

func (b Binding) String() string {
	if b == BindLeft {
		return "left"
	}
	return "right"
}

// LayoutedPage is a mostly finished page. It lacks only its physical page
// number, which the margins may depend on for two-sided layouts.
type LayoutedPage struct {
	Inner      *frame.Frame
	Margin     Sides
	Binding    Binding
	TwoSided   bool
	Header     *frame.Frame
	Footer     *frame.Frame
	Background *frame.Frame
	Foreground *frame.Frame
	Fill       string
	Numbering  string
}

// Page is a finished page: the full frame including marginals, plus the
// information a later pass needs to resolve page-number markers.
type Page struct {
	Frame     *frame.Frame
	Fill      string
	Numbering string
	Number    int
}

// Counter tracks physical and logical page numbers during finalization.
// Physical numbers count pages as produced; logical numbers are what
// page-number markers resolve to.
type Counter struct {
	physical int
	logical  int
}

// NewCounter creates a page counter starting at page one.
func NewCounter() *Counter {
	return &Counter{physical: 1, logical: 1}
}

// Physical returns the current physical page number.
func (c *Counter) Physical() int {
	return c.physical
}

// Logical returns the current logical page number.
func (c *Counter) Logical() int {
	return c.logical
}

// Step advances the counter past the current page.
func (c *Counter) Step() {
	c.physical++
	c.logical++
}
