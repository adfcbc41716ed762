package forest

import (
	"github.com/mhoeller/charta"
	"github.com/mhoeller/charta/feat"
)

// --- Derivation listener ---------------------------------------------------

// Listener is a type for walking a parse tree. Reduce is called bottom-up for
// every interior node, Terminal for every leaf. Both return a user-defined
// value; the values of a node's children are passed to its Reduce call.
type Listener interface {
	Reduce(label feat.Value, children []*RuleNode, span charta.Span, level int) interface{}
	Terminal(tok charta.Token, span charta.Span, level int) interface{}
}

// RuleNode represents a node occurring during a tree walk.
type RuleNode struct {
	label  feat.Value
	Extent charta.Span // span of input tokens this node covers
	Value  interface{} // user defined value
}

// Label returns the category a RuleNode refers to; nil for token leaves.
func (rnode *RuleNode) Label() feat.Value {
	return rnode.label
}

// Walk traverses a parse tree depth-first, left-to-right, calling the
// listener for every node, and returns the root's node with the listener's
// root value.
func Walk(t *Tree, listener Listener) *RuleNode {
	return walk(t, listener, 0)
}

func walk(t *Tree, listener Listener, level int) *RuleNode {
	if t.IsLeaf() {
		value := listener.Terminal(t.Token, t.Span, level)
		return &RuleNode{Extent: t.Span, Value: value}
	}
	children := make([]*RuleNode, len(t.Children))
	for i, c := range t.Children {
		children[i] = walk(c, listener, level+1)
	}
	value := listener.Reduce(t.Label, children, t.Span, level)
	return &RuleNode{
		label:  t.Label,
		Extent: t.Span,
		Value:  value,
	}
}
