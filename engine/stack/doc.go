/*
Package stack lays out a list of spacing and block children along an axis.

The layouter walks the children in order, pouring blocks into a sequence of
regions. Absolute spacing is resolved immediately; fractional spacing only
at region finalization, when the leftover space is known. A block may span
several regions, in which case every frame but its last forces an early
region finish.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package stack

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pagina.frame'.
func tracer() tracing.Trace {
	return tracing.Select("pagina.frame")
}
