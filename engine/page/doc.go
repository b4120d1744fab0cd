/*
Package page lays out page runs.

A page run is a maximal sequence of blocks between page breaks, sharing
one set of page properties. The layouter determines the run's styles by
lifting shared style groups to the page level, resolves page size and
margins, runs flow layout for the content area, and attaches marginals
(header, footer, background, foreground) to every resulting page.

Pages leave the run layouter almost finished: only the physical page
number is missing, since two-sided margins depend on it. FinalizePage
assembles the full page frame once the number is known.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package page

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pagina.page'.
func tracer() tracing.Trace {
	return tracing.Select("pagina.page")
}
