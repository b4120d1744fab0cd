/*
Package styles implements cascading style chains for layout.

A Group is one set of style properties, together with flags describing how
the group behaves at page boundaries. A Chain is the ordered list of groups
in effect for a piece of content, outermost first. Property lookup walks the
chain from the innermost group outwards; the first group carrying the
property wins.

Chains share their outer groups structurally. Two chains for siblings point
at the very same outer *Group values, which lets the page layouter compute
the common trunk of a whole run of blocks by pointer identity.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package styles

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pagina.core'.
func tracer() tracing.Trace {
	return tracing.Select("pagina.core")
}
