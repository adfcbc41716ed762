/*
Package parser implements the rule-application engine for chart parsing.

The engine is parameterized by its rule set: scanning, prediction and the
fundamental rule are data, not control flow, so alternative parsing
strategies plug into the same fixpoint driver. Two strategies are provided:

■ BottomUp: leaf/lexical scanning, the self-seeding rule (a newly complete
edge with head C at position i spawns a zero-width edge for every production
whose RHS begins with something unifying with C), and the fundamental rule.

■ TopDown: scanning, top-down prediction from the start category, and the
fundamental rule.

Rule application is monotone (edges are only ever added) and the chart
deduplicates structurally, so the loop reaches a fixpoint in finitely many
steps for any context-free backbone and the final chart contents do not
depend on application order. Feature grammars whose unification can grow
categories without bound are not guaranteed to terminate; callers should set
a Budget for such grammars.

Usage:

    p, err := parser.New(g)
    ch, err := p.Chart(terminals)
    trees, err := p.Parse(terminals)

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 Martin Höller <martin@hoeller.dev>

*/
package parser

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'charta.parser'.
func tracer() tracing.Trace {
	return tracing.Select("charta.parser")
}
