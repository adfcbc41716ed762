package chart

import (
	"testing"

	"github.com/mhoeller/charta"
	"github.com/mhoeller/charta/feat"
	"github.com/mhoeller/charta/grammar"
	"github.com/mhoeller/charta/scanner"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func dogGrammar(t *testing.T) *grammar.Grammar {
	b := grammar.NewBuilder("Dog")
	b.LHS(feat.Cat("S")).N(feat.Cat("NP")).N(feat.Cat("VP")).End()
	b.LHS(feat.Cat("NP")).N(feat.Cat("Det")).N(feat.Cat("N")).End()
	b.LHS(feat.Cat("Det")).T("the").End()
	b.LHS(feat.Cat("N")).T("dog").End()
	g, err := b.Grammar(feat.Cat("S"))
	if err != nil {
		t.Fatalf("cannot build grammar: %v", err)
	}
	return g
}

func TestInsertIsIdempotent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "charta.chart")
	defer teardown()
	g := dogGrammar(t)
	ch := New(2)
	leaf := NewLeafEdge(scanner.MakeTerminal("the", 0), 0)
	if !ch.Insert(leaf) {
		t.Error("first insert of a leaf edge must succeed")
	}
	dup := NewLeafEdge(scanner.MakeTerminal("the", 0), 0)
	if ch.Insert(dup) {
		t.Error("second insert of an equal leaf edge must be a no-op")
	}
	lex := NewLexicalEdge(g.LexicalFor("the")[0], leaf)
	if !ch.Insert(lex) {
		t.Error("first insert of a lexical edge must succeed")
	}
	if ch.Insert(NewLexicalEdge(g.LexicalFor("the")[0], leaf)) {
		t.Error("re-deriving the same lexical edge must be a no-op")
	}
	if ch.Size() != 2 {
		t.Errorf("chart has %d edges, expected 2", ch.Size())
	}
}

func TestDedupModuloRenaming(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "charta.chart")
	defer teardown()
	b := grammar.NewBuilder("Agree")
	n := feat.NewVar("n")
	b.LHS(feat.Cat("NP", feat.Pair("num", n))).N(feat.Cat("N", feat.Pair("num", n))).End()
	g, err := b.Grammar(feat.Cat("NP"))
	if err != nil {
		t.Fatalf("cannot build grammar: %v", err)
	}
	ch := New(1)
	// two predictions of the same production carry distinct fresh variables
	// but must collapse to one edge
	if !ch.Insert(NewPredictedEdge(g.Productions()[0], 0)) {
		t.Error("first prediction must be inserted")
	}
	if ch.Insert(NewPredictedEdge(g.Productions()[0], 0)) {
		t.Error("re-prediction must be recognized as a duplicate")
	}
	if ch.Insert(NewPredictedEdge(g.Productions()[0], 1)) != true {
		t.Error("the same prediction at another position is a different edge")
	}
}

func TestIndicesByPosition(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "charta.chart")
	defer teardown()
	g := dogGrammar(t)
	ch := New(2)
	leaf0 := NewLeafEdge(scanner.MakeTerminal("the", 0), 0)
	leaf1 := NewLeafEdge(scanner.MakeTerminal("dog", 1), 1)
	ch.Insert(leaf0)
	ch.Insert(leaf1)
	det := NewLexicalEdge(g.LexicalFor("the")[0], leaf0)
	ch.Insert(det)
	np := NewPredictedEdge(g.Productions()[1], 0) // NP ⟶ • Det N
	ch.Insert(np)
	if got := ch.CompleteStartingAt(0); len(got) != 2 {
		t.Errorf("expected 2 complete edges at 0 (leaf and Det), got %d", len(got))
	}
	if got := ch.IncompleteEndingAt(0); len(got) != 1 {
		t.Errorf("expected 1 incomplete edge ending at 0, got %d", len(got))
	}
	if got := ch.EdgesNeeding(feat.Cat("Det"), 0); len(got) != 1 {
		t.Errorf("expected 1 edge needing Det at 0, got %d", len(got))
	}
	if got := ch.EdgesNeeding(feat.Cat("VP"), 0); len(got) != 0 {
		t.Errorf("expected no edge needing VP at 0, got %d", len(got))
	}
}

func TestCompleteEdgesQuery(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "charta.chart")
	defer teardown()
	g := dogGrammar(t)
	ch := New(1)
	leaf := NewLeafEdge(scanner.MakeTerminal("the", 0), 0)
	ch.Insert(leaf)
	det := NewLexicalEdge(g.LexicalFor("the")[0], leaf)
	ch.Insert(det)
	got := ch.CompleteEdges(charta.Span{0, 1}, feat.Cat("Det"))
	if len(got) != 1 {
		t.Fatalf("expected the Det edge over (0…1), got %d edges", len(got))
	}
	if got[0].IsLeaf() {
		t.Error("leaf edges must not appear as category parses")
	}
	if got = ch.CompleteEdges(charta.Span{0, 1}, feat.Cat("N")); len(got) != 0 {
		t.Errorf("expected no N edge over (0…1), got %d", len(got))
	}
}

func TestEdgeExtendProgress(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "charta.chart")
	defer teardown()
	g := dogGrammar(t)
	leaf0 := NewLeafEdge(scanner.MakeTerminal("the", 0), 0)
	leaf1 := NewLeafEdge(scanner.MakeTerminal("dog", 1), 1)
	det := NewLexicalEdge(g.LexicalFor("the")[0], leaf0)
	n := NewLexicalEdge(g.LexicalFor("dog")[0], leaf1)
	np := NewPredictedEdge(g.Productions()[1], 0)
	if np.IsComplete() {
		t.Error("freshly predicted edge must be incomplete")
	}
	sym, ok := np.NextSym()
	if !ok || sym.IsTerminal() {
		t.Fatal("NP prediction must expect a category next")
	}
	_, env, ok := feat.Unify(sym.Category(), det.HeadResolved(), np.Bindings())
	if !ok {
		t.Fatal("Det head must unify with the expected category")
	}
	np1 := np.Extend(det, env)
	if np1.IsComplete() || np1.Dot() != 1 {
		t.Errorf("after one child the dot must sit at 1, edge: %s", np1)
	}
	sym, _ = np1.NextSym()
	_, env, ok = feat.Unify(sym.Category(), n.HeadResolved(), np1.Bindings())
	if !ok {
		t.Fatal("N head must unify with the expected category")
	}
	np2 := np1.Extend(n, env)
	if !np2.IsComplete() {
		t.Errorf("after two children the NP must be complete, edge: %s", np2)
	}
	if np2.Span() != (charta.Span{0, 2}) {
		t.Errorf("completed NP spans %s, expected (0…2)", np2.Span())
	}
	if len(np2.Children()) != 2 {
		t.Errorf("completed NP has %d children, expected 2", len(np2.Children()))
	}
	if np.Dot() != 0 || len(np.Children()) != 0 {
		t.Error("Extend must not modify the original edge")
	}
}

func TestEdgesWithDifferentChildrenStayDistinct(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "charta.chart")
	defer teardown()
	b := grammar.NewBuilder("Amb")
	b.LHS(feat.Cat("X")).T("a").End()
	b.LHS(feat.Cat("Y")).T("a").End()
	b.LHS(feat.Cat("Z")).N(feat.Cat("X")).End()
	b.LHS(feat.Cat("Z")).N(feat.Cat("Y")).End()
	g, err := b.Grammar(feat.Cat("Z"))
	if err != nil {
		t.Fatalf("cannot build grammar: %v", err)
	}
	ch := New(1)
	leaf := NewLeafEdge(scanner.MakeTerminal("a", 0), 0)
	ch.Insert(leaf)
	x := NewLexicalEdge(g.Productions()[0], leaf)
	y := NewLexicalEdge(g.Productions()[1], leaf)
	if !ch.Insert(x) || !ch.Insert(y) {
		t.Fatal("X and Y readings must both be inserted")
	}
	zx := NewPredictedEdge(g.Productions()[2], 0)
	zy := NewPredictedEdge(g.Productions()[3], 0)
	_, envx, _ := feat.Unify(mustNext(t, zx).Category(), x.HeadResolved(), zx.Bindings())
	_, envy, _ := feat.Unify(mustNext(t, zy).Category(), y.HeadResolved(), zy.Bindings())
	if !ch.Insert(zx.Extend(x, envx)) {
		t.Error("Z over X must be inserted")
	}
	if !ch.Insert(zy.Extend(y, envy)) {
		t.Error("Z over Y has different children and must not be deduplicated")
	}
	if got := ch.CompleteEdges(charta.Span{0, 1}, feat.Cat("Z")); len(got) != 2 {
		t.Errorf("both Z readings must survive, got %d", len(got))
	}
}

func mustNext(t *testing.T, e *Edge) grammar.Sym {
	t.Helper()
	sym, ok := e.NextSym()
	if !ok {
		t.Fatalf("edge %s unexpectedly complete", e)
	}
	return sym
}
