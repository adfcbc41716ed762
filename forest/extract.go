package forest

import (
	"github.com/mhoeller/charta"
	"github.com/mhoeller/charta/chart"
	"github.com/mhoeller/charta/feat"
	"github.com/mhoeller/charta/grammar"
)

// Sequence is a lazy, finite, restartable sequence of parse trees. It never
// mutates the underlying chart, so any number of sequences may read the same
// chart.
type Sequence struct {
	spanning []*chart.Edge
	next     int
}

// Extract enumerates the parses of a completed chart: the complete edges
// covering the whole input whose resolved head unifies with the grammar's
// start category. Works as well on a chart from an aborted (partial) parse,
// in which case it yields whatever full-span derivations were found before
// the abort.
func Extract(ch *chart.Chart, g *grammar.Grammar) *Sequence {
	spanning := ch.CompleteEdges(charta.Span{0, ch.N()}, g.Start())
	tracer().Debugf("%d spanning edges unify with start category %s", len(spanning), g.Start())
	return &Sequence{spanning: spanning}
}

// Next returns the next parse tree, building it on demand.
func (s *Sequence) Next() (*Tree, bool) {
	if s.next >= len(s.spanning) {
		return nil, false
	}
	e := s.spanning[s.next]
	s.next++
	return build(e), true
}

// Restart resets the sequence to its first tree.
func (s *Sequence) Restart() {
	s.next = 0
}

// Len returns the number of parses without building any tree.
func (s *Sequence) Len() int {
	return len(s.spanning)
}

// All materializes the remaining trees.
func (s *Sequence) All() []*Tree {
	var out []*Tree
	for t, ok := s.Next(); ok; t, ok = s.Next() {
		out = append(out, t)
	}
	return out
}

// build expands an edge recursively into a tree. The node label is the
// edge's head with its bindings fully substituted (leaf edges become token
// leaves). Children appear in RHS order; terminal RHS elements contribute
// their token directly rather than a one-node subtree.
func build(e *chart.Edge) *Tree {
	if e.IsLeaf() {
		return &Tree{Token: e.Token(), Span: e.Span()}
	}
	t := &Tree{
		Label: feat.Resolve(e.Head(), e.Bindings()),
		Span:  e.Span(),
	}
	for _, c := range e.Children() {
		t.Children = append(t.Children, build(c))
	}
	return t
}
