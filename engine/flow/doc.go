/*
Package flow lays out a sequence of block-level children.

The flow layouter sits between the page and the inline level: it walks
paragraphs, spacing, boxes, and placed floats, dispatching each to the
appropriate layouter and pouring the results into regions via the stack
layouter. Wrap floats are recorded as width exclusions which subsequent
paragraphs thread into their line breaking.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package flow

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pagina.frame'.
func tracer() tracing.Trace {
	return tracing.Select("pagina.frame")
}
