package main

import (
	"fmt"

	"github.com/mhoeller/charta/feat"
	"github.com/mhoeller/charta/grammar"
)

// Built-in demo grammars for the CLI.

func demoGrammarNames() string {
	return "toy, german"
}

func demoGrammar(name string) (*grammar.Grammar, error) {
	switch name {
	case "toy":
		return toyGrammar()
	case "german":
		return germanGrammar()
	}
	return nil, fmt.Errorf("unknown demo grammar %q (have %s)", name, demoGrammarNames())
}

// toyGrammar covers a fragment of English, including the classic
// PP-attachment ambiguity of "i saw the man with the telescope".
func toyGrammar() (*grammar.Grammar, error) {
	s := feat.Cat("S")
	np := feat.Cat("NP")
	vp := feat.Cat("VP")
	pp := feat.Cat("PP")
	det := feat.Cat("Det")
	n := feat.Cat("N")
	v := feat.Cat("V")
	prep := feat.Cat("P")

	b := grammar.NewBuilder("toy")
	b.LHS(s).N(np).N(vp).End()
	b.LHS(np).N(det).N(n).End()
	b.LHS(np).N(np).N(pp).End()
	b.LHS(vp).N(v).N(np).End()
	b.LHS(vp).N(vp).N(pp).End()
	b.LHS(pp).N(prep).N(np).End()
	b.LHS(det).T("the").End()
	for _, noun := range []string{"dog", "cat", "man", "telescope"} {
		b.LHS(n).T(noun).End()
	}
	b.LHS(v).T("chases").End()
	b.LHS(v).T("saw").End()
	b.LHS(prep).T("with").End()
	b.LHS(np).T("i").End()
	return b.Grammar(s)
}

// germanGrammar demonstrates number agreement between determiner, noun and
// verb: "der hund kommt" parses, "der hunde kommt" does not.
func germanGrammar() (*grammar.Grammar, error) {
	num := func() feat.Var { return feat.NewVar("n") }
	sg := feat.Atom("sg")
	pl := feat.Atom("pl")

	b := grammar.NewBuilder("german")
	n1 := num()
	b.LHS(feat.Cat("S")).
		N(feat.Cat("NP", feat.Pair("num", n1))).
		N(feat.Cat("VP", feat.Pair("num", n1))).End()
	n2 := num()
	b.LHS(feat.Cat("NP", feat.Pair("num", n2))).
		N(feat.Cat("Det", feat.Pair("num", n2))).
		N(feat.Cat("N", feat.Pair("num", n2))).End()
	n3 := num()
	b.LHS(feat.Cat("VP", feat.Pair("num", n3))).
		N(feat.Cat("V", feat.Pair("num", n3))).End()
	b.LHS(feat.Cat("Det", feat.Pair("num", sg))).T("der").End()
	b.LHS(feat.Cat("Det", feat.Pair("num", pl))).T("die").End()
	b.LHS(feat.Cat("N", feat.Pair("num", sg))).T("hund").End()
	b.LHS(feat.Cat("N", feat.Pair("num", pl))).T("hunde").End()
	b.LHS(feat.Cat("V", feat.Pair("num", sg))).T("kommt").End()
	b.LHS(feat.Cat("V", feat.Pair("num", pl))).T("kommen").End()
	return b.Grammar(feat.Cat("S"))
}
