/*
Package grammar implements productions over feature categories and terminals.

Grammars are specified using a grammar builder object. Clients add rules,
consisting of category-valued non-terminals and terminal symbols. Feature
annotations on categories take part in unification during parsing.

Example:

    num := feat.NewVar("n")
    b := grammar.NewBuilder("Agreement")
    b.LHS(feat.Cat("S")).N(feat.Cat("NP", feat.Pair("num", num))).
        N(feat.Cat("VP", feat.Pair("num", num))).End()
    b.LHS(feat.Cat("NP", feat.Pair("num", feat.Atom("sg")))).T("hund").End()
    g, err := b.Grammar(feat.Cat("S"))

The grammar is immutable once built and may be shared, read-only, by any
number of concurrent parses. Loading grammars from files is not a concern of
this package; external loaders construct productions through the same builder
API.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 Martin Höller <martin@hoeller.dev>

*/
package grammar

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'charta.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("charta.grammar")
}
