package frame

import (
	"fmt"

	"github.com/npillmayer/pagina/core/dimen"
	"golang.org/x/text/unicode/bidi"
)

// Axis denotes one of the two geometric axes.
type Axis uint8

const (
	Horizontal Axis = iota
	Vertical
)

// Other returns the axis perpendicular to a.
func (a Axis) Other() Axis {
	if a == Horizontal {
		return Vertical
	}
	return Horizontal
}

func (a Axis) String() string {
	if a == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// Dir is a layout direction along an axis.
type Dir uint8

const (
	LTR Dir = iota // left to right
	RTL            // right to left
	TTB            // top to bottom
	BTT            // bottom to top
)

// DirFromBidi maps a resolved bidi base direction onto a layout direction.
func DirFromBidi(d bidi.Direction) Dir {
	if d == bidi.RightToLeft {
		return RTL
	}
	return LTR
}

// Axis returns the axis the direction runs along.
func (d Dir) Axis() Axis {
	if d == LTR || d == RTL {
		return Horizontal
	}
	return Vertical
}

// IsPositive returns true if the direction advances with growing coordinates.
func (d Dir) IsPositive() bool {
	return d == LTR || d == TTB
}

// Start returns the alignment at the logical start of the direction.
func (d Dir) Start() FixedAlignment {
	if d.IsPositive() {
		return Start
	}
	return End
}

func (d Dir) String() string {
	switch d {
	case LTR:
		return "ltr"
	case RTL:
		return "rtl"
	case TTB:
		return "ttb"
	}
	return "btt"
}

// FixedAlignment is a resolved alignment along a single axis.
type FixedAlignment uint8

const (
	Start FixedAlignment = iota
	Center
	End
)

// Position distributes extra space according to the alignment: a start
// alignment receives none of it, an end alignment all of it.
func (a FixedAlignment) Position(extra dimen.Dimen) dimen.Dimen {
	switch a {
	case Center:
		return extra / 2
	case End:
		return extra
	}
	return 0
}

// Max returns the "more advanced" of two alignments.
func (a FixedAlignment) Max(other FixedAlignment) FixedAlignment {
	if other > a {
		return other
	}
	return a
}

// Min returns the "less advanced" of two alignments.
func (a FixedAlignment) Min(other FixedAlignment) FixedAlignment {
	if other < a {
		return other
	}
	return a
}

func (a FixedAlignment) String() string {
	switch a {
	case Center:
		return "center"
	case End:
		return "end"
	}
	return "start"
}

// Alignments is a pair of per-axis alignments.
type Alignments struct {
	X, Y FixedAlignment
}

// Get returns the alignment for one axis.
func (al Alignments) Get(a Axis) FixedAlignment {
	if a == Horizontal {
		return al.X
	}
	return al.Y
}

// --- Sizes ------------------------------------------------------------------

// Size is a width × height pair of absolute dimensions.
type Size struct {
	W, H dimen.Dimen
}

// IsFinite returns true if both axes are finite.
func (s Size) IsFinite() bool {
	return s.W.IsFinite() && s.H.IsFinite()
}

// Get returns the extent along an axis.
func (s Size) Get(a Axis) dimen.Dimen {
	if a == Horizontal {
		return s.W
	}
	return s.H
}

// Set sets the extent along an axis.
func (s *Size) Set(a Axis, d dimen.Dimen) {
	if a == Horizontal {
		s.W = d
	} else {
		s.H = d
	}
}

func (s Size) String() string {
	return fmt.Sprintf("(%v × %v)", s.W, s.H)
}

// Expansion carries per-axis expand flags: true means a consumer must
// stretch to fill the region rather than shrink to its content.
type Expansion struct {
	X, Y bool
}

// Get returns the expand flag for one axis.
func (e Expansion) Get(a Axis) bool {
	if a == Horizontal {
		return e.X
	}
	return e.Y
}

// Set sets the expand flag for one axis.
func (e *Expansion) Set(a Axis, flag bool) {
	if a == Horizontal {
		e.X = flag
	} else {
		e.Y = flag
	}
}
