package styles

import (
	"fmt"
	"strings"

	"github.com/npillmayer/pagina/core/dimen"
	"github.com/npillmayer/pagina/core/option"
)

// Property names a style property. Properties are grouped by the element
// they configure; lookup itself is untyped and uniform.
type Property uint8

const (
	PageWidth Property = iota
	PageHeight
	PageFlipped
	PageMarginTop
	PageMarginBottom
	PageMarginLeft
	PageMarginRight
	PageMarginTwoSided
	PageBinding
	PageHeader
	PageFooter
	PageBackground
	PageForeground
	PageHeaderAscent
	PageFooterDescent
	PageNumbering
	PageNumberAlign
	PageFill
	PageBreakBefore

	TextSize
	TextDir
	TextLang
	TextHyphenate
	TextColor
	TextFallback
	TextCJKLatinSpacing

	ParJustify
	ParLinebreaks
	ParFirstLineIndent
	ParIndentAll
	ParHangingIndent
	ParAlign
	ParLeading
	ParSpacing
	ParLineNumbering
	ParCostHyphenation
	ParCostRunt
)

// Group is one set of style properties. The two flags describe how the
// group behaves when a page boundary is determined: Outside marks groups
// which apply to content directly in the document flow (as opposed to
// content produced inside a show rule), Liftable marks groups originating
// from a declarative set rule rather than a one-off constructor override.
// Only the page layouter reads these flags.
type Group struct {
	props    map[Property]interface{}
	Outside  bool
	Liftable bool
}

// NewGroup creates an empty style group. Outside and Liftable default to
// false; the style system producing the groups is responsible for them.
func NewGroup() *Group {
	return &Group{props: make(map[Property]interface{})}
}

// Set sets a property value. It returns g, for chaining.
func (g *Group) Set(p Property, value interface{}) *Group {
	g.props[p] = value
	return g
}

// Lifted marks g as liftable and returns it.
func (g *Group) Lifted() *Group {
	g.Liftable = true
	return g
}

// Outer marks g as applying outside of produced content and returns it.
func (g *Group) Outer() *Group {
	g.Outside = true
	return g
}

// Has reports whether g carries property p.
func (g *Group) Has(p Property) bool {
	_, ok := g.props[p]
	return ok
}

func (g *Group) value(p Property) (interface{}, bool) {
	v, ok := g.props[p]
	return v, ok
}

func (g *Group) String() string {
	var b strings.Builder
	b.WriteString("group[")
	if g.Outside {
		b.WriteString("o")
	}
	if g.Liftable {
		b.WriteString("l")
	}
	fmt.Fprintf(&b, "]#%d", len(g.props))
	return b.String()
}

// --- Chain -------------------------------------------------------------------

// Chain is the ordered list of style groups in effect for a piece of
// content, outermost first. Chains share outer groups structurally; trunk
// computation relies on pointer identity of the shared groups.
type Chain []*Group

// Extend returns a new chain with g appended as the innermost group. The
// receiving chain's groups are shared, not copied.
func (c Chain) Extend(g *Group) Chain {
	ext := make(Chain, len(c)+1)
	copy(ext, c)
	ext[len(c)] = g
	return ext
}

// Lookup finds property p, walking the chain from the innermost group
// outwards.
func (c Chain) Lookup(p Property) (interface{}, bool) {
	for i := len(c) - 1; i >= 0; i-- {
		if v, ok := c[i].value(p); ok {
			return v, true
		}
	}
	return nil, false
}

// Dimen returns a dimension property, or def if unset.
func (c Chain) Dimen(p Property, def dimen.Dimen) dimen.Dimen {
	if v, ok := c.Lookup(p); ok {
		if d, ok := v.(dimen.Dimen); ok {
			return d
		}
		tracer().Errorf("style property %d is not a dimension: %v", p, v)
	}
	return def
}

// Length returns an optional dimension property. An unset property yields
// the none value.
func (c Chain) Length(p Property) option.LengthT {
	if v, ok := c.Lookup(p); ok {
		switch d := v.(type) {
		case dimen.Dimen:
			return option.SomeLength(d)
		case option.LengthT:
			return d
		}
		tracer().Errorf("style property %d is not a dimension: %v", p, v)
	}
	return option.Length()
}

// Bool returns a boolean property, or def if unset.
func (c Chain) Bool(p Property, def bool) bool {
	if v, ok := c.Lookup(p); ok {
		if b, ok := v.(bool); ok {
			return b
		}
		tracer().Errorf("style property %d is not a boolean: %v", p, v)
	}
	return def
}

// Text returns a string property, or def if unset.
func (c Chain) Text(p Property, def string) string {
	if v, ok := c.Lookup(p); ok {
		if s, ok := v.(string); ok {
			return s
		}
		tracer().Errorf("style property %d is not a string: %v", p, v)
	}
	return def
}

func (c Chain) String() string {
	return fmt.Sprintf("chain#%d", len(c))
}

// --- Trunk and lifting -------------------------------------------------------

// Trunk returns the longest common prefix of the given chains, compared by
// pointer identity of the groups. An empty input yields a nil chain.
func Trunk(chains []Chain) Chain {
	if len(chains) == 0 {
		return nil
	}
	trunk := chains[0]
	for _, c := range chains[1:] {
		n := 0
		for n < len(trunk) && n < len(c) && trunk[n] == c[n] {
			n++
		}
		trunk = trunk[:n]
		if len(trunk) == 0 {
			break
		}
	}
	return trunk
}

// CommonPrefixLen returns the length of the common prefix of a and b,
// compared by pointer identity.
func CommonPrefixLen(a, b Chain) int {
	n := 0
	for n < len(a) && n < len(b) && a[n] == b[n] {
		n++
	}
	return n
}

// DeterminePageStyles computes the style chain in effect for the pages of
// one page run. chains are the style chains of the run's children; initial
// is the chain active at the page break starting the run.
//
// The base is the trunk shared by all children, falling back to initial for
// runs without styled children. A base group is retained iff it applies
// outside of produced content and either was already active at the page
// break or is liftable.
func DeterminePageStyles(chains []Chain, initial Chain) Chain {
	base := Trunk(chains)
	if len(chains) == 0 {
		base = initial
	}
	trunkLen := CommonPrefixLen(initial, base)
	lifted := make(Chain, 0, len(base))
	for i, g := range base {
		if g.Outside && (i < trunkLen || g.Liftable) {
			lifted = append(lifted, g)
		}
	}
	tracer().Debugf("page styles: %d of %d groups lifted (trunk %d)",
		len(lifted), len(base), trunkLen)
	return lifted
}
