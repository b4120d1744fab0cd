/*
Package frame provides the geometric foundation for layout: axes,
directions, alignments, sizes, and the Frame/Fragment output types which
every layouter in this module produces.

A Frame is a finished, hard-sized rectangle with positioned content items.
A Fragment is the ordered list of frames resulting from one layout call,
one frame per consumed region.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package frame

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pagina.frame'.
func tracer() tracing.Trace {
	return tracing.Select("pagina.frame")
}
