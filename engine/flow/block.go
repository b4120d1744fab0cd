package flow

import (
	"github.com/npillmayer/pagina/core/dimen"
	"github.com/npillmayer/pagina/engine/frame"
	"github.com/npillmayer/pagina/engine/inline"
	"github.com/npillmayer/pagina/engine/styles"
)

// Block is a block-level child of a flow.
type Block interface {
	block()
}

// Paragraph is a run of inline children, laid out by the inline driver.
type Paragraph struct {
	Children []inline.Child
	Styles   styles.Chain
	// TightList marks the paragraph as the body of a tight list item.
	TightList bool
}

// VSpace is vertical spacing between blocks. It suppresses the default
// inter-block gap around it.
type VSpace struct {
	Height dimen.Dimen
	Fr     dimen.Fr
	IsFr   bool
}

// Box is an opaque block of fixed size.
type Box struct {
	Size   frame.Size
	Styles styles.Chain
}

// Group nests a complete sub-flow as a single block.
type Group struct {
	Blocks []Block
	Styles styles.Chain
}

// Placed is an element taken out of the normal flow. With Wrap set, the
// flow records it as a float exclusion and subsequent paragraphs wrap
// around it.
type Placed struct {
	Block     Block
	Styles    styles.Chain
	AlignX    frame.FixedAlignment
	Clearance dimen.Dimen
	Wrap      bool
}

func (Paragraph) block() {}

func (VSpace) block() {}

func (Box) block() {}

func (Group) block() {}

func (Placed) block() {}
