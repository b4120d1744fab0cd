package frame

import (
	"fmt"

	"github.com/npillmayer/pagina/core/dimen"
)

// Item is a piece of content positioned within a frame. Besides nested
// frames, items are opaque to layout; they travel through unmodified.
type Item interface {
	fmt.Stringer
}

// TextItem is a run of shaped text, measured by some shaping engine.
type TextItem struct {
	Content string
	Width   dimen.Dimen
	Height  dimen.Dimen
}

func (t TextItem) String() string {
	return fmt.Sprintf("text(%q)", t.Content)
}

// Marker is placeholder content for a value which only a later pass can
// resolve, e.g. the page number of the page the marker ends up on.
type Marker struct {
	Pattern string
	Align   FixedAlignment
}

func (m Marker) String() string {
	return fmt.Sprintf("marker(%q)", m.Pattern)
}

// PlacedItem is an item together with its position, relative to the top-left
// corner of the containing frame.
type PlacedItem struct {
	Pos  dimen.Point
	Item Item
}

// Frame is a finished layout area of fixed size with positioned content.
// Frames nest: a page frame contains block frames, which contain line frames.
type Frame struct {
	size  Size
	items []PlacedItem
}

// NewFrame creates a frame with a fixed size.
func NewFrame(size Size) *Frame {
	return &Frame{size: size}
}

// Size returns the frame's size.
func (f *Frame) Size() Size {
	return f.size
}

// Width returns the frame's width.
func (f *Frame) Width() dimen.Dimen {
	return f.size.W
}

// Height returns the frame's height.
func (f *Frame) Height() dimen.Dimen {
	return f.size.H
}

// Push places an item at pos.
func (f *Frame) Push(pos dimen.Point, item Item) {
	f.items = append(f.items, PlacedItem{Pos: pos, Item: item})
}

// PushFrame places a child frame at pos.
func (f *Frame) PushFrame(pos dimen.Point, child *Frame) {
	f.items = append(f.items, PlacedItem{Pos: pos, Item: child})
}

// Items returns the positioned content of the frame. The returned slice is
// owned by the frame and must not be modified.
func (f *Frame) Items() []PlacedItem {
	return f.items
}

// MapItems replaces every non-frame item with the result of applying fn,
// recursing into nested frames. Later passes use it to resolve markers.
func (f *Frame) MapItems(fn func(Item) Item) {
	for i, it := range f.items {
		if child, ok := it.Item.(*Frame); ok {
			child.MapItems(fn)
			continue
		}
		f.items[i].Item = fn(it.Item)
	}
}

func (f *Frame) String() string {
	return fmt.Sprintf("frame%v#%d", f.size, len(f.items))
}

// --- Fragment ----------------------------------------------------------------

// Fragment is the ordered list of frames produced by one layout call, one
// frame per consumed region. Fragments are returned by value and not modified
// thereafter.
type Fragment struct {
	frames []*Frame
}

// FragmentOf creates a fragment from a list of frames.
func FragmentOf(frames ...*Frame) Fragment {
	return Fragment{frames: frames}
}

// FragmentFrames creates a fragment taking ownership of frames.
func FragmentFrames(frames []*Frame) Fragment {
	return Fragment{frames: frames}
}

// Len returns the number of frames, i.e. the number of consumed regions.
func (fr Fragment) Len() int {
	return len(fr.frames)
}

// Frames returns the fragment's frames.
func (fr Fragment) Frames() []*Frame {
	return fr.frames
}

// Frame returns frame number i.
func (fr Fragment) Frame(i int) *Frame {
	return fr.frames[i]
}

// IntoFrame returns the single frame of a one-region fragment. It panics for
// fragments with more than one frame; callers use it when they passed a
// single region without a break option.
func (fr Fragment) IntoFrame() *Frame {
	if len(fr.frames) != 1 {
		tracer().Errorf("fragment with %d frames treated as single frame", len(fr.frames))
		panic("fragment is not a single frame")
	}
	return fr.frames[0]
}

func (fr Fragment) String() string {
	return fmt.Sprintf("fragment#%d", len(fr.frames))
}
