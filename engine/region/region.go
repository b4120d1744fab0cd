package region

import (
	"fmt"
	"strings"

	"github.com/npillmayer/pagina/core/dimen"
	"github.com/npillmayer/pagina/core/option"
	"github.com/npillmayer/pagina/engine/frame"
)

// Region is a single region to lay out into.
type Region struct {
	// Size is the size of the region.
	Size frame.Size
	// Expand flags whether elements should expand to fill the region
	// instead of shrinking to fit the content, per axis.
	Expand frame.Expansion
}

// NewRegion creates a single region.
func NewRegion(size frame.Size, expand frame.Expansion) Region {
	return Region{Size: size, Expand: expand}
}

// Regions returns a one-element region sequence for r.
func (r Region) Regions() Regions {
	return Regions{
		Size:   r.Size,
		Expand: r.Expand,
		Full:   r.Size.H,
		Last:   option.Length(),
	}
}

// Regions is a sequence of regions to lay out into. All regions of a
// sequence have the same width, Size.W; only heights vary. Regions is a
// small value type: copies are cheap and the backlog slice is shared.
type Regions struct {
	// Size is the remaining size of the first region.
	Size frame.Size
	// Expand flags whether elements should expand to fill the regions
	// instead of shrinking to fit the content.
	Expand frame.Expansion
	// Full is the full height of the current region, for relative sizing.
	Full dimen.Dimen
	// Backlog holds the heights of follow-up regions.
	Backlog []dimen.Dimen
	// Last is the height of the final region, repeated once the backlog
	// is drained. Unset means the sequence is finite.
	Last option.LengthT
	// Root is true for the outermost regions of a page run. Floats may
	// only be placed into root regions.
	Root bool
}

// Repeat creates a sequence of same-size regions that repeats indefinitely.
func Repeat(size frame.Size, expand frame.Expansion) Regions {
	return Regions{
		Size:   size,
		Expand: expand,
		Full:   size.H,
		Last:   option.SomeLength(size.H),
	}
}

// Base returns the size of the current region without taking into account
// that it is already partially used up. Relative lengths resolve against
// the base size.
func (r Regions) Base() frame.Size {
	return frame.Size{W: r.Size.W, H: r.Full}
}

// Map returns regions where every size has been mapped with f. Since all
// regions of a sequence share one width, the width returned by f is kept
// only for the first region.
func (r Regions) Map(f func(frame.Size) frame.Size) Regions {
	w := r.Size.W
	var backlog []dimen.Dimen
	if len(r.Backlog) > 0 {
		backlog = make([]dimen.Dimen, len(r.Backlog))
		for i, h := range r.Backlog {
			backlog[i] = f(frame.Size{W: w, H: h}).H
		}
	}
	last := r.Last
	if !last.IsNone() {
		last = option.SomeLength(f(frame.Size{W: w, H: last.Unwrap()}).H)
	}
	return Regions{
		Size:    f(r.Size),
		Expand:  r.Expand,
		Full:    f(frame.Size{W: w, H: r.Full}).H,
		Backlog: backlog,
		Last:    last,
		Root:    r.Root,
	}
}

// IsFull reports whether the first region is used up and a region break is
// called for.
func (r Regions) IsFull() bool {
	return r.Size.H <= 0 && r.MayProgress()
}

// MayBreak reports whether a region break is permitted.
func (r Regions) MayBreak() bool {
	return len(r.Backlog) > 0 || !r.Last.IsNone()
}

// MayProgress reports whether calling Next may improve a situation where
// there is a lack of space. When the last region repeats the current
// height, advancing further cannot help and callers must stop breaking.
func (r Regions) MayProgress() bool {
	if len(r.Backlog) > 0 {
		return true
	}
	return !r.Last.IsNone() && r.Size.H != r.Last.Unwrap()
}

// Next advances to the next region if there is any; otherwise it is a
// no-op. Callers looping on lack of space must check MayProgress first.
func (r *Regions) Next() {
	height := r.Last
	if len(r.Backlog) > 0 {
		height = option.SomeLength(r.Backlog[0])
		r.Backlog = r.Backlog[1:]
	}
	if height.IsNone() {
		tracer().Debugf("regions exhausted, next is a no-op")
		return
	}
	r.Size.H = height.Unwrap()
	r.Full = height.Unwrap()
}

// Iter returns an iterator over the sizes of the current and all following
// regions, equivalent to what repeated calls to Next would produce. The
// iteration is infinite when Last is set.
func (r Regions) Iter() *Iter {
	return &Iter{regions: r}
}

// Iter iterates over the region sizes of a Regions sequence.
type Iter struct {
	regions Regions
	started bool
}

// Next returns the next region size. ok is false once the sequence is
// exhausted; it never becomes false for repeating sequences.
func (it *Iter) Next() (size frame.Size, ok bool) {
	if !it.started {
		it.started = true
		return it.regions.Size, true
	}
	if len(it.regions.Backlog) > 0 {
		h := it.regions.Backlog[0]
		it.regions.Backlog = it.regions.Backlog[1:]
		return frame.Size{W: it.regions.Size.W, H: h}, true
	}
	if it.regions.Last.IsNone() {
		return frame.Size{}, false
	}
	return frame.Size{W: it.regions.Size.W, H: it.regions.Last.Unwrap()}, true
}

func (r Regions) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Regions [%v", r.Size)
	for _, h := range r.Backlog {
		fmt.Fprintf(&b, ", %v", frame.Size{W: r.Size.W, H: h})
	}
	if !r.Last.IsNone() {
		fmt.Fprintf(&b, ", %v…", frame.Size{W: r.Size.W, H: r.Last.Unwrap()})
	}
	b.WriteString("]")
	return b.String()
}
