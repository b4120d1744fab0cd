/*
Package region models the spaces which layout pours content into.

A Region is a single rectangular space. Regions (plural) is a sequence of
them: the partially consumed first region, a backlog of follow-up heights,
and an optional final height which repeats indefinitely. All regions of a
sequence share the same width.

The package also provides ParExclusions, per-paragraph width exclusions for
wrapping text around floats. Exclusion queries compare integer dimension
values, so line breaking never flip-flops at a zone boundary due to
rounding.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package region

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pagina.frame'.
func tracer() tracing.Trace {
	return tracing.Select("pagina.frame")
}
