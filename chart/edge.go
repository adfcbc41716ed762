package chart

import (
	"bytes"
	"fmt"

	"github.com/mhoeller/charta"
	"github.com/mhoeller/charta/feat"
	"github.com/mhoeller/charta/grammar"
)

// Edge is a (possibly partial) derivation over a span of input tokens: a
// dotted rule together with the completed children to the left of the dot and
// the variable bindings accumulated for this edge.
//
// There are two shapes of edges. A leaf edge wraps one input token and is
// always complete; it carries no production. A rule edge instantiates a
// production with freshly renamed variables; it is complete once its dot has
// reached the end of the right-hand side.
//
// Edges are immutable. Extending an edge (see Extend) derives a new edge,
// sharing children slices never written to again.
type Edge struct {
	prod     *grammar.Production // nil for leaf edges
	lhs      feat.Value          // renamed instance of prod's LHS
	rhs      []grammar.Sym       // renamed instance of prod's RHS
	dot      int
	span     charta.Span
	children []*Edge
	token    charta.Token // set for leaf edges only
	env      feat.Bindings
	sig      string
}

// NewLeafEdge creates the complete edge covering the single input token at
// index i.
func NewLeafEdge(tok charta.Token, i uint64) *Edge {
	e := &Edge{
		token: tok,
		span:  charta.Span{i, i + 1},
	}
	e.sig = e.computeSignature()
	return e
}

// NewPredictedEdge instantiates a production as a zero-width incomplete edge
// at the given position, with fresh variables.
func NewPredictedEdge(p *grammar.Production, pos uint64) *Edge {
	lhs, rhs := renameProduction(p)
	e := &Edge{
		prod: p,
		lhs:  lhs,
		rhs:  rhs,
		span: charta.Span{pos, pos},
	}
	e.sig = e.computeSignature()
	return e
}

// NewLexicalEdge creates a complete edge for a lexical production Cat⟶s over
// the token at index i, with the leaf edge as its single child.
func NewLexicalEdge(p *grammar.Production, leaf *Edge) *Edge {
	lhs, rhs := renameProduction(p)
	e := &Edge{
		prod:     p,
		lhs:      lhs,
		rhs:      rhs,
		dot:      1,
		span:     leaf.span,
		children: []*Edge{leaf},
	}
	e.sig = e.computeSignature()
	return e
}

// NewEmptyEdge creates a complete zero-width edge for an empty production at
// the given position.
func NewEmptyEdge(p *grammar.Production, pos uint64) *Edge {
	lhs, rhs := renameProduction(p)
	e := &Edge{
		prod: p,
		lhs:  lhs,
		rhs:  rhs,
		span: charta.Span{pos, pos},
	}
	e.sig = e.computeSignature()
	return e
}

// Extend derives a new edge from an incomplete edge by consuming the complete
// edge child, under the extended bindings env. The receiver is not modified.
func (e *Edge) Extend(child *Edge, env feat.Bindings) *Edge {
	ne := &Edge{
		prod:     e.prod,
		lhs:      e.lhs,
		rhs:      e.rhs,
		dot:      e.dot + 1,
		span:     charta.Span{e.span.From(), child.span.To()},
		children: appendChild(e.children, child),
		env:      env,
	}
	ne.sig = ne.computeSignature()
	return ne
}

// appendChild copies; edges share nothing mutable.
func appendChild(children []*Edge, c *Edge) []*Edge {
	out := make([]*Edge, len(children)+1)
	copy(out, children)
	out[len(children)] = c
	return out
}

func renameProduction(p *grammar.Production) (feat.Value, []grammar.Sym) {
	vals := make([]feat.Value, 0, p.Arity()+1)
	vals = append(vals, p.LHS())
	for _, s := range p.RHS() {
		if !s.IsTerminal() {
			vals = append(vals, s.Category())
		}
	}
	renamed := feat.RenameAll(vals...)
	lhs := renamed[0]
	rhs := make([]grammar.Sym, p.Arity())
	n := 1
	for i, s := range p.RHS() {
		if s.IsTerminal() {
			rhs[i] = s
		} else {
			rhs[i] = grammar.N(renamed[n])
			n++
		}
	}
	return lhs, rhs
}

// --- Accessors --------------------------------------------------------------

// IsLeaf reports whether this edge wraps a single input token.
func (e *Edge) IsLeaf() bool {
	return e.prod == nil
}

// Production returns the instantiated production; nil for leaf edges.
func (e *Edge) Production() *grammar.Production {
	return e.prod
}

// Span returns the token-index range this edge covers.
func (e *Edge) Span() charta.Span {
	return e.span
}

// Start returns the left end of the edge's span.
func (e *Edge) Start() uint64 {
	return e.span.From()
}

// End returns the right end of the edge's span.
func (e *Edge) End() uint64 {
	return e.span.To()
}

// Dot returns the dot position within the right-hand side.
func (e *Edge) Dot() int {
	return e.dot
}

// IsComplete reports whether the dot has reached the end of the RHS. Leaf
// edges are always complete.
func (e *Edge) IsComplete() bool {
	return e.IsLeaf() || e.dot == len(e.rhs)
}

// NextSym returns the RHS element right after the dot, if the edge is
// incomplete.
func (e *Edge) NextSym() (grammar.Sym, bool) {
	if e.IsLeaf() || e.dot >= len(e.rhs) {
		return grammar.Sym{}, false
	}
	return e.rhs[e.dot], true
}

// Terminal returns the terminal symbol of a leaf edge.
func (e *Edge) Terminal() (string, bool) {
	if e.token == nil {
		return "", false
	}
	return e.token.Lexeme(), true
}

// Token returns the wrapped input token of a leaf edge, or nil.
func (e *Edge) Token() charta.Token {
	return e.token
}

// Head returns the edge's head category without applying bindings; nil for
// leaf edges.
func (e *Edge) Head() feat.Value {
	return e.lhs
}

// HeadResolved returns the head category with this edge's bindings fully
// substituted. Only well-defined for complete edges, where it labels the
// derived constituent.
func (e *Edge) HeadResolved() feat.Value {
	return feat.Resolve(e.lhs, e.env)
}

// Bindings returns the substitution accumulated for this edge. Callers must
// treat it as read-only.
func (e *Edge) Bindings() feat.Bindings {
	return e.env
}

// Children returns the completed child edges left of the dot. Callers must
// not modify the returned slice.
func (e *Edge) Children() []*Edge {
	return e.children
}

// Signature returns the structural identity of the edge: equal signatures
// mean equal (dotted rule, span, children, bindings) up to a renaming of
// unbound variables.
func (e *Edge) Signature() string {
	return e.sig
}

func (e *Edge) String() string {
	if e.IsLeaf() {
		return fmt.Sprintf("[%q %s]", e.token.Lexeme(), e.span)
	}
	var b bytes.Buffer
	b.WriteString("[")
	b.WriteString(feat.Resolve(e.lhs, e.env).String())
	b.WriteString(" ⟶")
	for i, s := range e.rhs {
		if i == e.dot {
			b.WriteString(" •")
		}
		b.WriteString(" ")
		if s.IsTerminal() {
			b.WriteString(s.String())
		} else {
			b.WriteString(feat.Resolve(s.Category(), e.env).String())
		}
	}
	if e.dot == len(e.rhs) {
		b.WriteString(" •")
	}
	b.WriteString(" ")
	b.WriteString(e.span.String())
	b.WriteString("]")
	return b.String()
}

// --- Structural signature ---------------------------------------------------

type edgeSig struct {
	Rule int // production serial; -1 for leaf edges
	Dot  int
	From uint64
	To   uint64
	Term string
	Cats []feat.SigNode
	Kids []string
}

func (e *Edge) computeSignature() string {
	sig := edgeSig{
		Rule: -1,
		From: e.span.From(),
		To:   e.span.To(),
	}
	if e.IsLeaf() {
		sig.Term = e.token.Lexeme()
		return feat.Hash(sig)
	}
	sig.Rule = e.prod.Serial
	sig.Dot = e.dot
	// one signer across all categories keeps co-references intact
	sg := feat.NewSigner(e.env)
	sig.Cats = append(sig.Cats, sg.Signature(e.lhs))
	for _, s := range e.rhs {
		if !s.IsTerminal() {
			sig.Cats = append(sig.Cats, sg.Signature(s.Category()))
		}
	}
	sig.Kids = make([]string, len(e.children))
	for i, c := range e.children {
		sig.Kids[i] = c.sig
	}
	return feat.Hash(sig)
}
