package grammar

import (
	"github.com/mhoeller/charta/feat"
)

// Builder assembles a Grammar from rules. It is the one write-path into a
// grammar; a Grammar itself is immutable.
//
//	b := grammar.NewBuilder("Toy")
//	b.LHS(feat.Cat("S")).N(feat.Cat("NP")).N(feat.Cat("VP")).End()
//	b.LHS(feat.Cat("Det")).T("the").End()
//	g, err := b.Grammar(feat.Cat("S"))
type Builder struct {
	name  string
	prods []*Production
	seen  map[string]struct{} // structural signatures of productions
	err   *Error
}

// NewBuilder creates a grammar builder.
func NewBuilder(name string) *Builder {
	return &Builder{
		name: name,
		seen: make(map[string]struct{}),
	}
}

// RuleBuilder collects the right-hand side of one production.
type RuleBuilder struct {
	b   *Builder
	lhs feat.Value
	rhs []Sym
}

// LHS starts a new production with the given left-hand side category.
func (b *Builder) LHS(cat feat.Value) *RuleBuilder {
	if cat == nil {
		b.fail("production with nil left-hand side")
	}
	if _, isAtomOrStruct := cat.(feat.Var); isAtomOrStruct {
		b.fail("left-hand side must not be a bare variable")
	}
	return &RuleBuilder{b: b, lhs: cat}
}

// N appends a category to the right-hand side.
func (rb *RuleBuilder) N(cat feat.Value) *RuleBuilder {
	if cat == nil {
		rb.b.fail("nil category in right-hand side")
		return rb
	}
	rb.rhs = append(rb.rhs, N(cat))
	return rb
}

// T appends a terminal symbol to the right-hand side.
func (rb *RuleBuilder) T(symbol string) *RuleBuilder {
	if symbol == "" {
		rb.b.fail("empty terminal symbol in right-hand side")
		return rb
	}
	rb.rhs = append(rb.rhs, T(symbol))
	return rb
}

// End finishes the production and adds it to the grammar.
func (rb *RuleBuilder) End() *Builder {
	return rb.b.add(rb.lhs, rb.rhs)
}

// Epsilon finishes the production with an empty right-hand side.
func (rb *RuleBuilder) Epsilon() *Builder {
	return rb.b.add(rb.lhs, nil)
}

func (b *Builder) add(lhs feat.Value, rhs []Sym) *Builder {
	if b.err != nil {
		return b
	}
	p := &Production{lhs: lhs, rhs: rhs}
	sig := productionSignature(p)
	if _, dup := b.seen[sig]; dup {
		tracer().Debugf("dropping duplicate production %s", p)
		return b
	}
	b.seen[sig] = struct{}{}
	p.Serial = len(b.prods)
	b.prods = append(b.prods, p)
	return b
}

func (b *Builder) fail(reason string) {
	if b.err == nil {
		b.err = &Error{Grammar: b.name, Reason: reason}
	}
}

// Grammar validates and returns the built grammar. The start category must be
// non-nil; every other defect found while building is reported here as well,
// so that parsing never starts on a malformed grammar.
func (b *Builder) Grammar(start feat.Value) (*Grammar, error) {
	if b.err != nil {
		return nil, b.err
	}
	if start == nil {
		return nil, &Error{Grammar: b.name, Reason: "grammar without start category"}
	}
	g := &Grammar{
		Name:    b.name,
		start:   start,
		prods:   b.prods,
		lexical: make(map[string][]*Production),
		byFirst: make(map[string][]*Production),
		byLHS:   make(map[string][]*Production),
	}
	for _, p := range g.prods {
		if p.IsLexical() {
			sym := p.rhs[0].term
			g.lexical[sym] = append(g.lexical[sym], p)
		}
		if lkey := catKey(p.lhs); lkey == "*" {
			g.anyLHS = append(g.anyLHS, p)
		} else {
			g.byLHS[lkey] = append(g.byLHS[lkey], p)
		}
		if p.IsEmpty() {
			continue
		}
		key := symKey(p.rhs[0])
		if key == "*" {
			g.anyFirst = append(g.anyFirst, p)
		} else {
			g.byFirst[key] = append(g.byFirst[key], p)
		}
	}
	return g, nil
}

// productionSignature hashes a production structurally, with variables
// normalized, so that re-stated rules are recognized as duplicates.
func productionSignature(p *Production) string {
	sg := feat.NewSigner(feat.NoBindings)
	type symSig struct {
		Term string
		Cat  feat.SigNode
	}
	sig := struct {
		LHS feat.SigNode
		RHS []symSig
	}{LHS: sg.Signature(p.lhs)}
	for _, s := range p.rhs {
		if s.IsTerminal() {
			sig.RHS = append(sig.RHS, symSig{Term: s.term})
		} else {
			sig.RHS = append(sig.RHS, symSig{Cat: sg.Signature(s.cat)})
		}
	}
	return feat.Hash(sig)
}
