/*
Package markup reads HTML-like input and CSS styling and converts them to
the block stream and style chains the layout engine consumes.

The adapter is intentionally small. It recognizes a handful of block and
inline elements and a subset of CSS properties; everything else is traced
and skipped. Stylesheet rules become liftable style groups, so page
properties declared in a stylesheet can lift to the page level, while
style attributes become one-off groups which never lift.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package markup

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pagina.core'.
func tracer() tracing.Trace {
	return tracing.Select("pagina.core")
}
