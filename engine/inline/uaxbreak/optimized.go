package uaxbreak

import (
	"math"
	"strings"

	"github.com/npillmayer/uax"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax14"

	"github.com/npillmayer/pagina/core/dimen"
	"github.com/npillmayer/pagina/engine/inline"
)

// Optimized is a total-fit line breaker over UAX#14 break opportunities.
// It weighs all break choices of a paragraph at once, trading line
// looseness against the request's cost weights. Requests in simple mode
// fall through to a greedy pass.
type Optimized struct {
	segmenter *segment.Segmenter
	greedy    *Greedy
}

// NewOptimized creates an optimizing line breaker.
func NewOptimized() *Optimized {
	return &Optimized{
		segmenter: segment.NewSegmenter(uax14.NewLineWrap()),
		greedy:    New(),
	}
}

const (
	overflowDemerits = 10000
	costDemerits     = 100
)

// node is the best-known way to break the text up to one opportunity.
type node struct {
	demerits float64
	line     int
	prev     int
}

// Break chooses line breaks minimizing the total demerits over all lines.
func (o *Optimized) Break(req inline.BreakRequest) ([]inline.Line, error) {
	if req.Mode == inline.LinebreaksSimple {
		return o.greedy.Break(req)
	}
	positions, mandatory := o.opportunities(req.Text)
	if len(positions) < 2 {
		return nil, nil
	}

	best := make([]node, len(positions))
	for i := range best {
		best[i] = node{demerits: math.Inf(1), prev: -1}
	}
	best[0] = node{}

	measure := func(from, to int) dimen.Dimen {
		return req.Measure(strings.TrimRight(req.Text[from:to], " \t\n"))
	}

	for i := 0; i+1 < len(positions); i++ {
		if math.IsInf(best[i].demerits, 1) {
			continue
		}
		lineno := best[i].line
		budget := req.Width(dimen.Dimen(lineno)*req.Leading) - req.Indent(lineno)
		for j := i + 1; j < len(positions); j++ {
			frag := strings.TrimRight(req.Text[positions[i]:positions[j]], " \t\n")
			w := req.Measure(frag)
			overflows := w > budget
			if overflows && j > i+1 {
				break
			}
			last := j == len(positions)-1
			d := lineDemerits(req, frag, w, budget, last, mandatory[j], lineno, overflows)
			if total := best[i].demerits + d; total < best[j].demerits {
				best[j] = node{demerits: total, line: lineno + 1, prev: i}
			}
			// A mandatory break cannot be skipped over.
			if mandatory[j] || overflows {
				break
			}
		}
	}

	last := len(positions) - 1
	if best[last].prev < 0 {
		tracer().Errorf("no feasible breaking found, falling back to greedy")
		return o.greedy.Break(req)
	}
	var lines []inline.Line
	for j := last; j > 0; j = best[j].prev {
		i := best[j].prev
		lines = append(lines, inline.Line{
			From:  positions[i],
			To:    positions[j],
			Width: measure(positions[i], positions[j]),
		})
	}
	for i, j := 0, len(lines)-1; i < j; i, j = i+1, j-1 {
		lines[i], lines[j] = lines[j], lines[i]
	}
	tracer().Debugf("optimized breaker made %d lines, %.1f demerits",
		len(lines), best[last].demerits)
	return lines, nil
}

// lineDemerits weighs one candidate line. Loose lines cost the squared
// slack ratio; the last line of a paragraph and lines before a mandatory
// break keep their natural width for free. Overflowing lines are heavily
// penalized but remain feasible, so an overlong word still gets a line.
func lineDemerits(req inline.BreakRequest, frag string, w, budget dimen.Dimen,
	last, forced bool, lineno int, overflows bool) float64 {
	//
	d := 0.0
	if overflows {
		d += overflowDemerits
	} else if !last && !forced && budget > 0 {
		ratio := float64(budget-w) / float64(budget)
		d += ratio * ratio * costDemerits
	}
	if strings.HasSuffix(frag, "-") || strings.HasSuffix(frag, "\u00ad") {
		d += costDemerits * req.Costs.Hyphenation
	}
	// A runt is a lone word on the last line of a multi-line paragraph.
	if last && lineno > 0 && !strings.ContainsAny(frag, " \t") {
		d += costDemerits * req.Costs.Runt
	}
	return d
}

// opportunities returns all legal break positions, starting with 0 and
// ending with len(text). mandatory flags positions where a break is
// forced.
func (o *Optimized) opportunities(text string) ([]int, []bool) {
	positions := []int{0}
	mandatory := []bool{false}
	if text == "" {
		return positions, mandatory
	}
	o.segmenter.Init(strings.NewReader(text))
	cur := 0
	for o.segmenter.Next() {
		seg := o.segmenter.Text()
		p1, _ := o.segmenter.Penalties()
		cur += len(seg)
		if cur == len(text) {
			break
		}
		if strings.ContainsAny(seg, "\n\r") {
			positions = append(positions, cur)
			mandatory = append(mandatory, true)
		} else if p1 < uax.InfinitePenalty {
			positions = append(positions, cur)
			mandatory = append(mandatory, false)
		}
	}
	positions = append(positions, len(text))
	mandatory = append(mandatory, true)
	return positions, mandatory
}

var _ inline.Breaker = &Optimized{}
