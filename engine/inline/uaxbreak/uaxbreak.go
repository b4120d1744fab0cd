/*
Package uaxbreak breaks paragraphs into lines at UAX#14 break
opportunities.

Two engines are provided. Greedy fills lines first-fit: segments are
appended until the next one would overflow the available width for the
line's vertical position, then the line ends at the last feasible
opportunity. Optimized weighs all break choices of a paragraph at once
and minimizes total demerits, applying the request's cost weights.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package uaxbreak

import (
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/uax"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax14"

	"github.com/npillmayer/pagina/core/dimen"
	"github.com/npillmayer/pagina/engine/inline"
)

// tracer traces with key 'pagina.inline'.
func tracer() tracing.Trace {
	return tracing.Select("pagina.inline")
}

// Greedy is a first-fit line breaker over UAX#14 line-wrap segments.
type Greedy struct {
	segmenter *segment.Segmenter
}

// New creates a greedy line breaker.
func New() *Greedy {
	return &Greedy{
		segmenter: segment.NewSegmenter(uax14.NewLineWrap()),
	}
}

// Break chooses line breaks for the request's text.
func (g *Greedy) Break(req inline.BreakRequest) ([]inline.Line, error) {
	g.segmenter.Init(strings.NewReader(req.Text))
	var lines []inline.Line
	pos := 0 // byte offset where the current line starts
	cur := 0 // byte offset behind the accumulated segments
	measured := func(to int) dimen.Dimen {
		return req.Measure(strings.TrimRight(req.Text[pos:to], " \t\n"))
	}
	budget := func() dimen.Dimen {
		y := dimen.Dimen(len(lines)) * req.Leading
		return req.Width(y) - req.Indent(len(lines))
	}
	emit := func(to int) {
		lines = append(lines, inline.Line{From: pos, To: to, Width: measured(to)})
		pos = to
	}
	breakable := false // may the line end at cur?
	for g.segmenter.Next() {
		seg := g.segmenter.Text()
		p1, _ := g.segmenter.Penalties()
		if breakable && cur > pos && measured(cur+len(seg)) > budget() {
			// The segment would overflow; end the line at the last
			// opportunity before it.
			emit(cur)
		}
		cur += len(seg)
		breakable = p1 < uax.InfinitePenalty
		if strings.ContainsAny(seg, "\n\r") {
			emit(cur)
			breakable = false
		}
	}
	if cur > pos {
		emit(cur)
	}
	tracer().Debugf("greedy breaker made %d lines from %d bytes",
		len(lines), len(req.Text))
	return lines, nil
}

var _ inline.Breaker = &Greedy{}
