package forest

import (
	"bytes"

	"github.com/mhoeller/charta"
	"github.com/mhoeller/charta/feat"
)

// Tree is one syntactic analysis of (part of) the input. Interior nodes carry
// the resolved head category of the derivation; leaves carry the input token.
type Tree struct {
	Label    feat.Value   // nil for leaves
	Token    charta.Token // nil for interior nodes
	Span     charta.Span
	Children []*Tree
}

// IsLeaf reports whether the node is an input token.
func (t *Tree) IsLeaf() bool {
	return t.Token != nil
}

// Leaves returns the tree's tokens in left-to-right order. Concatenating
// their lexemes reproduces the covered input.
func (t *Tree) Leaves() []charta.Token {
	var out []charta.Token
	t.appendLeaves(&out)
	return out
}

func (t *Tree) appendLeaves(out *[]charta.Token) {
	if t.IsLeaf() {
		*out = append(*out, t.Token)
		return
	}
	for _, c := range t.Children {
		c.appendLeaves(out)
	}
}

// String renders the tree in bracketed notation, e.g.
// (S (NP (Det the) (N dog)) (VP …)).
func (t *Tree) String() string {
	var b bytes.Buffer
	t.bracket(&b)
	return b.String()
}

func (t *Tree) bracket(b *bytes.Buffer) {
	if t.IsLeaf() {
		b.WriteString(t.Token.Lexeme())
		return
	}
	b.WriteString("(")
	b.WriteString(t.Label.String())
	for _, c := range t.Children {
		b.WriteString(" ")
		c.bracket(b)
	}
	b.WriteString(")")
}
