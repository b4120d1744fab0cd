/*
Package monospace provides a fixed-width measuring engine.

Every grapheme cluster advances by one em, wide East Asian clusters by two.
It is mainly useful for tests and terminal-like output, where real shaping
is unnecessary.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package monospace

import (
	"strings"

	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax11"

	"github.com/npillmayer/pagina/core/dimen"
	"github.com/npillmayer/pagina/engine/inline"
)

// Shaper measures text on a fixed-width grid.
type Shaper struct {
	splitter *segment.Segmenter
	context  *uax11.Context
}

// New creates a monospace measuring engine. context determines how
// ambiguous East Asian characters are counted; nil means a Latin context.
func New(context *uax11.Context) *Shaper {
	if context == nil {
		context = uax11.LatinContext
	}
	onGraphemes := grapheme.NewBreaker(1)
	grapheme.SetupGraphemeClasses()
	return &Shaper{
		splitter: segment.NewSegmenter(onGraphemes),
		context:  context,
	}
}

// Measure returns the fixed-width metrics of frag for the given em size.
func (sh *Shaper) Measure(frag string, size dimen.Dimen) inline.Metrics {
	em := size
	if em == 0 {
		em = 10 * dimen.PT
	}
	var w dimen.Dimen
	sh.splitter.Init(strings.NewReader(frag))
	for sh.splitter.Next() {
		cells := uax11.Width(sh.splitter.Bytes(), sh.context)
		w += dimen.Dimen(cells) * em
	}
	return inline.Metrics{
		W: w,
		H: em * 3 / 5,
		D: em * 2 / 5,
	}
}

var _ inline.Shaper = &Shaper{}
