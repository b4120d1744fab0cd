package inline

import (
	"golang.org/x/text/language"

	"github.com/npillmayer/pagina/core/dimen"
	"github.com/npillmayer/pagina/core/option"
	"github.com/npillmayer/pagina/engine/frame"
	"github.com/npillmayer/pagina/engine/styles"
)

// Linebreaks selects the line-breaking strategy.
type Linebreaks uint8

const (
	// LinebreaksAuto resolves to optimized breaking for justified
	// paragraphs and to simple breaking otherwise.
	LinebreaksAuto Linebreaks = iota
	// LinebreaksSimple breaks greedily, line by line.
	LinebreaksSimple
	// LinebreaksOptimized weighs the whole paragraph at once.
	LinebreaksOptimized
)

func (lb Linebreaks) String() string {
	switch lb {
	case LinebreaksSimple:
		return "simple"
	case LinebreaksOptimized:
		return "optimized"
	}
	return "auto"
}

// Situation describes where a paragraph stands relative to its siblings.
type Situation uint8

const (
	// SituationUnknown means the paragraph is laid out in isolation, e.g.
	// inside a container that does not track paragraph sequence.
	SituationUnknown Situation = iota
	// SituationFirst is the first paragraph of its parent.
	SituationFirst
	// SituationConsecutive is a paragraph directly following another one.
	SituationConsecutive
	// SituationOther is any other position.
	SituationOther
)

// Costs weighs the choices of an optimizing line breaker.
type Costs struct {
	Hyphenation float64
	Runt        float64
}

// Config carries the fully resolved parameters for laying out one
// paragraph. It is derived once per paragraph and stays constant through
// all four stages.
type Config struct {
	Justify         bool
	Linebreaks      Linebreaks
	FirstLineIndent dimen.Dimen
	HangingIndent   dimen.Dimen
	NumberingMarker string
	Align           frame.FixedAlignment
	FontSize        dimen.Dimen
	Leading         dimen.Dimen
	Dir             frame.Dir
	Hyphenate       option.BoolT
	Lang            string
	Fallback        bool
	CJKLatinSpacing bool
	Costs           Costs
}

// Options carries per-call context which is not part of the style chain.
type Options struct {
	// Situation is the paragraph's position among its siblings.
	Situation Situation
	// TightList is true for the body of a tight list item, which
	// suppresses first-line indentation.
	TightList bool
}

// ConfigFor derives a paragraph configuration from the style chain and the
// paragraph's children. Explicit paragraph properties take priority over
// chain defaults.
func ConfigFor(sty styles.Chain, children []Child, opts Options) Config {
	dir := frame.LTR
	if v, ok := sty.Lookup(styles.TextDir); ok {
		if d, ok := v.(frame.Dir); ok {
			dir = d
		}
	}
	align := dir.Start()
	if v, ok := sty.Lookup(styles.ParAlign); ok {
		if a, ok := v.(frame.FixedAlignment); ok {
			align = a
		}
	}

	justify := sty.Bool(styles.ParJustify, false)
	linebreaks := LinebreaksAuto
	if v, ok := sty.Lookup(styles.ParLinebreaks); ok {
		if lb, ok := v.(Linebreaks); ok {
			linebreaks = lb
		}
	}
	if linebreaks == LinebreaksAuto {
		if justify {
			linebreaks = LinebreaksOptimized
		} else {
			linebreaks = LinebreaksSimple
		}
	}

	// First-line indentation only applies in a matching situation, when
	// the alignment matches the text direction, and outside tight lists.
	indent := dimen.Dimen(0)
	amount := sty.Dimen(styles.ParFirstLineIndent, 0)
	all := sty.Bool(styles.ParIndentAll, false)
	if amount > 0 &&
		(all || opts.Situation == SituationConsecutive) &&
		align == dir.Start() &&
		!opts.TightList {
		indent = amount
	}

	hanging := dimen.Dimen(0)
	if opts.Situation != SituationUnknown {
		hanging = sty.Dimen(styles.ParHangingIndent, 0)
	}

	size := sty.Dimen(styles.TextSize, 10*dimen.PT)
	leading := sty.Dimen(styles.ParLeading, size*6/5)

	cfg := Config{
		Justify:         justify,
		Linebreaks:      linebreaks,
		FirstLineIndent: indent,
		HangingIndent:   hanging,
		NumberingMarker: sty.Text(styles.ParLineNumbering, ""),
		Align:           align,
		FontSize:        size,
		Leading:         leading,
		Dir:             dir,
		Hyphenate:       sharedBool(sty, children, styles.TextHyphenate),
		Lang:            canonicalLang(sharedText(sty, children, styles.TextLang)),
		Fallback:        sty.Bool(styles.TextFallback, true),
		CJKLatinSpacing: sty.Bool(styles.TextCJKLatinSpacing, false),
		Costs: Costs{
			Hyphenation: costWeight(sty, styles.ParCostHyphenation),
			Runt:        costWeight(sty, styles.ParCostRunt),
		},
	}
	tracer().Debugf("paragraph config: %v, justify=%v, %v breaking",
		cfg.Align, cfg.Justify, cfg.Linebreaks)
	return cfg
}

// canonicalLang normalizes a BCP 47 language tag. Unparseable tags pass
// through unchanged; the breaking engine decides what to do with them.
func canonicalLang(lang string) string {
	if lang == "" {
		return ""
	}
	tag, err := language.Parse(lang)
	if err != nil {
		tracer().Infof("keeping unparseable language tag %q", lang)
		return lang
	}
	return tag.String()
}

func costWeight(sty styles.Chain, p styles.Property) float64 {
	if v, ok := sty.Lookup(p); ok {
		if f, ok := v.(float64); ok {
			return f
		}
	}
	return 1.0
}

// sharedBool resolves a boolean property to a set value only if it is
// uniform across all children; otherwise it stays unset and the breaking
// engine must resolve it per text run.
func sharedBool(sty styles.Chain, children []Child, p styles.Property) option.BoolT {
	shared := option.Bool()
	for i, child := range children {
		chain := child.Styles
		if chain == nil {
			chain = sty
		}
		v := option.SomeBool(chain.Bool(p, false))
		if i > 0 && v != shared {
			return option.Bool()
		}
		shared = v
	}
	if shared.IsNone() {
		shared = option.SomeBool(sty.Bool(p, false))
	}
	return shared
}

// sharedText resolves a string property to a non-empty value only if it is
// uniform across all children.
func sharedText(sty styles.Chain, children []Child, p styles.Property) string {
	shared := ""
	for i, child := range children {
		chain := child.Styles
		if chain == nil {
			chain = sty
		}
		v := chain.Text(p, "")
		if i > 0 && v != shared {
			return ""
		}
		shared = v
	}
	if shared == "" {
		shared = sty.Text(p, "")
	}
	return shared
}
