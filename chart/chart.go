package chart

import (
	"github.com/emirpasic/gods/lists/arraylist"

	"github.com/mhoeller/charta"
	"github.com/mhoeller/charta/feat"
)

// Chart owns the full set of edges for one parse invocation. It is populated
// by the rule-application engine and read by the parse extractor. No edge is
// ever removed; the chart only grows.
//
// A chart is exclusively owned by one in-progress parse and must not be
// mutated concurrently. After parsing it is effectively read-only and may be
// retained for extraction or inspection.
type Chart struct {
	n            uint64           // number of input tokens
	edges        *arraylist.List  // all edges in insertion order
	present      map[string]*Edge // structural signature ⟶ edge
	byEnd        map[uint64][]*Edge
	complByStart map[uint64][]*Edge
}

// New creates an empty chart for an input of n tokens.
func New(n uint64) *Chart {
	return &Chart{
		n:            n,
		edges:        arraylist.New(),
		present:      make(map[string]*Edge),
		byEnd:        make(map[uint64][]*Edge),
		complByStart: make(map[uint64][]*Edge),
	}
}

// N returns the number of input tokens this chart was created for.
func (c *Chart) N() uint64 {
	return c.n
}

// Size returns the number of edges.
func (c *Chart) Size() int {
	return c.edges.Size()
}

// Insert adds an edge and returns true iff it was not already present, where
// presence is structural equality modulo a renaming of unbound variables.
func (c *Chart) Insert(e *Edge) bool {
	if _, dup := c.present[e.sig]; dup {
		return false
	}
	c.present[e.sig] = e
	c.edges.Add(e)
	if e.IsComplete() {
		c.complByStart[e.Start()] = append(c.complByStart[e.Start()], e)
	} else {
		c.byEnd[e.End()] = append(c.byEnd[e.End()], e)
	}
	tracer().Debugf("|- %s", e)
	return true
}

// IncompleteEndingAt returns all incomplete edges ending exactly at pos.
func (c *Chart) IncompleteEndingAt(pos uint64) []*Edge {
	return c.byEnd[pos]
}

// CompleteStartingAt returns all complete edges starting exactly at pos.
func (c *Chart) CompleteStartingAt(pos uint64) []*Edge {
	return c.complByStart[pos]
}

// EdgesNeeding returns the incomplete edges ending at pos whose next expected
// RHS element is a category unifying with cat (under the edge's own
// bindings).
func (c *Chart) EdgesNeeding(cat feat.Value, pos uint64) []*Edge {
	var out []*Edge
	for _, e := range c.byEnd[pos] {
		next, ok := e.NextSym()
		if !ok || next.IsTerminal() {
			continue
		}
		if feat.Unifiable(next.Category(), cat, e.Bindings()) {
			out = append(out, e)
		}
	}
	return out
}

// CompleteEdges returns the complete edges covering exactly span whose
// resolved head unifies with cat. This is the extractor's query for spanning
// parses.
func (c *Chart) CompleteEdges(span charta.Span, cat feat.Value) []*Edge {
	var out []*Edge
	for _, e := range c.complByStart[span.From()] {
		if e.End() != span.To() || e.IsLeaf() {
			continue
		}
		if feat.Unifiable(cat, e.HeadResolved(), feat.NoBindings) {
			out = append(out, e)
		}
	}
	return out
}

// Each calls f for every edge, in insertion order.
func (c *Chart) Each(f func(*Edge)) {
	it := c.edges.Iterator()
	for it.Next() {
		f(it.Value().(*Edge))
	}
}

// Dump logs all edges at debug level.
func (c *Chart) Dump() {
	tracer().Debugf("--- chart (%d tokens, %d edges) ------------------", c.n, c.Size())
	n := 1
	c.Each(func(e *Edge) {
		tracer().Debugf("[%3d] %s", n, e)
		n++
	})
	tracer().Debugf("--------------------------------------------------")
}
