/*
Package feat implements feature structures for grammatical categories.

A category is an immutable tagged value: an atom, a variable, or a structure
mapping attribute names to sub-values. Categories do not compare for raw
equality but for unifiability: two categories unify if there is a consistent
assignment of their variables making them compatible. Unification never
mutates its inputs; it returns a fresh value plus extended bindings, so
feature structures may be shared freely between edges and productions.

Failure to unify is not an error. It is the expected signal that a grammar
rule does not apply at some chart position, and is therefore reported as a
boolean, not through the error interface.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 Martin Höller <martin@hoeller.dev>

*/
package feat

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'charta.feat'.
func tracer() tracing.Trace {
	return tracing.Select("charta.feat")
}
