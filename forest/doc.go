/*
Package forest extracts parse trees from a completed chart.

Extraction is a pure read over the chart: it enumerates the complete edges
spanning the whole input whose head unifies with the grammar's start
category, and expands each into a tree. Ambiguity is preserved: every
qualifying spanning edge yields its own tree. The resulting sequence is lazy,
finite and restartable.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 Martin Höller <martin@hoeller.dev>

*/
package forest

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'charta.forest'.
func tracer() tracing.Trace {
	return tracing.Select("charta.forest")
}
