/*
Package chart implements the edge store for one parse invocation.

A chart owns all edges built while parsing one token sequence. Edges are
immutable: the fundamental rule never advances an edge in place but derives a
new one, so iterations over the chart are never invalidated. The chart only
ever grows, and insertion is idempotent under structural equality (modulo a
renaming of unbound variables), which is what makes the engine's fixpoint
loop terminate for any context-free backbone.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 Martin Höller <martin@hoeller.dev>

*/
package chart

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'charta.chart'.
func tracer() tracing.Trace {
	return tracing.Select("charta.chart")
}
