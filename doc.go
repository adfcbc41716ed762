/*
Package charta is a chart-parsing toolbox with feature-structure unification.

Charta derives all syntactic analyses of a token sequence under a grammar
whose categories carry unifiable features. It preserves ambiguity, terminates
for recursive and empty productions over a context-free backbone, and keeps
all parsing state in an immutable, growing chart. Package structure is
as follows:

■ feat: Package feat implements categories as immutable feature structures
(atoms, variables and attribute-value structures), together with unification,
variable renaming and substitution.

■ grammar: Package grammar implements productions over categories and
terminals, and a builder for assembling grammars in code.

■ chart: Package chart implements the edge store: dotted rules, edges with
spans, children and bindings, and the position indices used by the
rule-application engine.

■ parser: Package parser implements the rule-application engine: a set of
chart rules (scan, predict, fundamental rule) driven by an agenda to a
fixpoint, with an optional resource budget.

■ forest: Package forest extracts parse trees from a completed chart and
provides tree walking.

■ scanner: Package scanner provides tokenizers producing the terminal
sequences the parser consumes.

The base package contains data types which are used throughout all the other
packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 Martin Höller <martin@hoeller.dev>

*/
package charta
