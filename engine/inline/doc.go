/*
Package inline drives paragraph layout.

The driver derives a Config from paragraph properties and the style chain,
then runs four stages in strict sequence: collect merges the paragraph's
children into a single text buffer with a style-run map, prepare resolves
the text's bidi directionality and measures runs, break delegates line
breaking to an injected engine, and finalize turns the chosen lines into
positioned frames.

Shaping and line breaking are black boxes behind the Shaper and Breaker
interfaces; sub-packages monospace and uaxbreak provide default engines.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package inline

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pagina.inline'.
func tracer() tracing.Trace {
	return tracing.Select("pagina.inline")
}
