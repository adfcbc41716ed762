package parser

import (
	"github.com/mhoeller/charta"
	"github.com/mhoeller/charta/chart"
	"github.com/mhoeller/charta/feat"
	"github.com/mhoeller/charta/grammar"
)

// Rule is one chart rule of a parsing strategy. Apply reacts to an edge that
// has just been taken off the agenda and returns the edges it newly inserted
// into the chart. Insertion attempts which hit a structural duplicate are
// not returned, which bounds every rule's total work.
type Rule interface {
	Name() string
	Apply(ch *chart.Chart, g *grammar.Grammar, e *chart.Edge) []*chart.Edge
}

// Seeder is implemented by rules that contribute initial edges before the
// fixpoint loop starts.
type Seeder interface {
	Seed(ch *chart.Chart, g *grammar.Grammar, toks []charta.Token) []*chart.Edge
}

// Strategy is the rule set driving one parse.
type Strategy []Rule

// BottomUp is the default strategy: scan, self-seed, complete.
func BottomUp() Strategy {
	return Strategy{scanRule{}, emptyPredictRule{}, bottomUpPredictRule{}, fundamentalRule{}}
}

// TopDown predicts from the start category downwards instead of seeding from
// complete constituents.
func TopDown() Strategy {
	return Strategy{scanRule{}, emptyPredictRule{}, topDownInitRule{}, topDownPredictRule{}, fundamentalRule{}}
}

func insert(ch *chart.Chart, e *chart.Edge, out []*chart.Edge) []*chart.Edge {
	if ch.Insert(e) {
		out = append(out, e)
	}
	return out
}

// --- Scanning ---------------------------------------------------------------

// scanRule seeds the chart with one leaf edge per input token plus a complete
// lexical edge for every lexical production matching the token's symbol.
type scanRule struct{}

func (scanRule) Name() string { return "Scan" }

func (scanRule) Seed(ch *chart.Chart, g *grammar.Grammar, toks []charta.Token) []*chart.Edge {
	var out []*chart.Edge
	for _, tok := range toks {
		i := tok.Span().From()
		leaf := chart.NewLeafEdge(tok, i)
		out = insert(ch, leaf, out)
		for _, p := range g.LexicalFor(tok.Lexeme()) {
			out = insert(ch, chart.NewLexicalEdge(p, leaf), out)
		}
	}
	return out
}

func (scanRule) Apply(*chart.Chart, *grammar.Grammar, *chart.Edge) []*chart.Edge {
	return nil
}

// --- Empty productions ------------------------------------------------------

// emptyPredictRule inserts a complete zero-width edge for every empty
// production at every input position, making ε-constituents available to the
// fundamental rule.
type emptyPredictRule struct{}

func (emptyPredictRule) Name() string { return "EmptyPredict" }

func (emptyPredictRule) Seed(ch *chart.Chart, g *grammar.Grammar, toks []charta.Token) []*chart.Edge {
	var out []*chart.Edge
	for _, p := range g.Productions() {
		if !p.IsEmpty() {
			continue
		}
		for pos := uint64(0); pos <= ch.N(); pos++ {
			out = insert(ch, chart.NewEmptyEdge(p, pos), out)
		}
	}
	return out
}

func (emptyPredictRule) Apply(*chart.Chart, *grammar.Grammar, *chart.Edge) []*chart.Edge {
	return nil
}

// --- Self-seeding (bottom-up prediction) ------------------------------------

// bottomUpPredictRule is the self-seeding rule: a newly complete edge with
// head C starting at position i spawns a zero-width incomplete edge at i for
// every production whose first RHS element unifies with C. The chart's
// structural dedup guarantees each (production, position) seed is created at
// most once, which bounds this rule even for cyclic grammars.
type bottomUpPredictRule struct{}

func (bottomUpPredictRule) Name() string { return "SelfSeed" }

func (bottomUpPredictRule) Apply(ch *chart.Chart, g *grammar.Grammar, e *chart.Edge) []*chart.Edge {
	if !e.IsComplete() {
		return nil
	}
	var out []*chart.Edge
	if term, isLeaf := e.Terminal(); isLeaf {
		for _, p := range g.StartingWith(term, nil) {
			first := p.RHS()[0]
			if first.IsTerminal() && first.Terminal() == term {
				out = insert(ch, chart.NewPredictedEdge(p, e.Start()), out)
			}
		}
		return out
	}
	head := e.HeadResolved()
	for _, p := range g.StartingWith("", head) {
		first := p.RHS()[0]
		if first.IsTerminal() {
			continue
		}
		if feat.Unifiable(feat.Rename(first.Category()), head, feat.NoBindings) {
			out = insert(ch, chart.NewPredictedEdge(p, e.Start()), out)
		}
	}
	return out
}

// --- Top-down rules ---------------------------------------------------------

// topDownInitRule seeds zero-width edges at position 0 for every production
// expanding the start category.
type topDownInitRule struct{}

func (topDownInitRule) Name() string { return "TopDownInit" }

func (topDownInitRule) Seed(ch *chart.Chart, g *grammar.Grammar, toks []charta.Token) []*chart.Edge {
	var out []*chart.Edge
	for _, p := range g.ExpandingTo(g.Start()) {
		if feat.Unifiable(feat.Rename(p.LHS()), g.Start(), feat.NoBindings) {
			out = insert(ch, chart.NewPredictedEdge(p, 0), out)
		}
	}
	return out
}

func (topDownInitRule) Apply(*chart.Chart, *grammar.Grammar, *chart.Edge) []*chart.Edge {
	return nil
}

// topDownPredictRule expands the category right of the dot of an incomplete
// edge into fresh zero-width edges at the edge's end.
type topDownPredictRule struct{}

func (topDownPredictRule) Name() string { return "TopDownPredict" }

func (topDownPredictRule) Apply(ch *chart.Chart, g *grammar.Grammar, e *chart.Edge) []*chart.Edge {
	next, ok := e.NextSym()
	if !ok || next.IsTerminal() {
		return nil
	}
	needed := feat.Resolve(next.Category(), e.Bindings())
	var out []*chart.Edge
	for _, p := range g.ExpandingTo(needed) {
		if feat.Unifiable(feat.Rename(p.LHS()), needed, feat.NoBindings) {
			out = insert(ch, chart.NewPredictedEdge(p, e.End()), out)
		}
	}
	return out
}

// --- Fundamental rule -------------------------------------------------------

// fundamentalRule extends an incomplete edge with an adjacent complete edge.
// It fires in both directions: when the agenda yields an incomplete edge it
// looks right for complete edges, and when it yields a complete edge it looks
// left for incomplete edges expecting it.
type fundamentalRule struct{}

func (fundamentalRule) Name() string { return "Fundamental" }

func (fundamentalRule) Apply(ch *chart.Chart, g *grammar.Grammar, e *chart.Edge) []*chart.Edge {
	var out []*chart.Edge
	if e.IsComplete() {
		for _, left := range ch.IncompleteEndingAt(e.Start()) {
			out = combine(ch, left, e, out)
		}
		return out
	}
	for _, right := range ch.CompleteStartingAt(e.End()) {
		out = combine(ch, e, right, out)
	}
	return out
}

// combine applies the fundamental rule to one (incomplete, complete) pair.
// The complete edge's head is renamed before unification so that variables of
// the two derivations never alias.
func combine(ch *chart.Chart, left, right *chart.Edge, out []*chart.Edge) []*chart.Edge {
	next, ok := left.NextSym()
	if !ok {
		return out
	}
	if next.IsTerminal() {
		if term, isLeaf := right.Terminal(); isLeaf && term == next.Terminal() {
			out = insert(ch, left.Extend(right, left.Bindings()), out)
		}
		return out
	}
	if right.IsLeaf() {
		return out
	}
	head := feat.Rename(right.HeadResolved())
	_, env, ok := feat.Unify(next.Category(), head, left.Bindings())
	if !ok {
		return out
	}
	return insert(ch, left.Extend(right, env), out)
}
