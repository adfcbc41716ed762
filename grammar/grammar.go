package grammar

import (
	"bytes"
	"fmt"

	"github.com/mhoeller/charta/feat"
)

// --- RHS elements -----------------------------------------------------------

// Sym is one element of a production's right-hand side: either a terminal
// symbol or a category.
type Sym struct {
	term string
	cat  feat.Value
}

// T creates a terminal RHS element.
func T(symbol string) Sym {
	return Sym{term: symbol}
}

// N creates a category (non-terminal) RHS element.
func N(cat feat.Value) Sym {
	return Sym{cat: cat}
}

// IsTerminal reports whether this element is a terminal symbol.
func (s Sym) IsTerminal() bool {
	return s.cat == nil
}

// Terminal returns the terminal symbol; valid only if IsTerminal.
func (s Sym) Terminal() string {
	return s.term
}

// Category returns the category; nil for terminals.
func (s Sym) Category() feat.Value {
	return s.cat
}

func (s Sym) String() string {
	if s.IsTerminal() {
		return fmt.Sprintf("%q", s.term)
	}
	return s.cat.String()
}

// --- Productions ------------------------------------------------------------

// Production is an ordered pair of a left-hand side category and a right-hand
// side sequence of categories and terminals. Productions are immutable; the
// engine renames their variables whenever it instantiates one into an edge.
type Production struct {
	Serial int // position within the grammar, assigned by the builder
	lhs    feat.Value
	rhs    []Sym
}

// LHS returns the left-hand side category.
func (p *Production) LHS() feat.Value {
	return p.lhs
}

// RHS returns the right-hand side elements. Callers must not modify the
// returned slice.
func (p *Production) RHS() []Sym {
	return p.rhs
}

// Arity returns the length of the right-hand side.
func (p *Production) Arity() int {
	return len(p.rhs)
}

// IsLexical reports whether the production rewrites to exactly one terminal.
func (p *Production) IsLexical() bool {
	return len(p.rhs) == 1 && p.rhs[0].IsTerminal()
}

// IsEmpty reports whether the production has an empty right-hand side.
func (p *Production) IsEmpty() bool {
	return len(p.rhs) == 0
}

func (p *Production) String() string {
	var b bytes.Buffer
	b.WriteString(p.lhs.String())
	b.WriteString(" ⟶")
	for _, s := range p.rhs {
		b.WriteString(" ")
		b.WriteString(s.String())
	}
	return b.String()
}

// --- Grammar ----------------------------------------------------------------

// Grammar is an immutable set of productions with a start category.
// Productions are unique by structural identity: the builder silently drops
// duplicates.
type Grammar struct {
	Name     string
	start    feat.Value
	prods    []*Production
	lexical  map[string][]*Production // terminal symbol ⟶ lexical productions
	byFirst  map[string][]*Production // first-RHS-element key ⟶ productions
	anyFirst []*Production            // productions whose first element has no fixed key
	byLHS    map[string][]*Production // LHS key ⟶ productions
	anyLHS   []*Production            // productions whose LHS has no fixed key
}

// Start returns the start category.
func (g *Grammar) Start() feat.Value {
	return g.start
}

// Productions returns all productions in declaration order.
func (g *Grammar) Productions() []*Production {
	return g.prods
}

// Size returns the number of productions.
func (g *Grammar) Size() int {
	return len(g.prods)
}

// LexicalFor returns all lexical productions rewriting to the given terminal.
func (g *Grammar) LexicalFor(symbol string) []*Production {
	return g.lexical[symbol]
}

// symKey computes the index key of an RHS element or category head. Keys only
// pre-filter candidates; the engine always verifies with a real unification.
func symKey(s Sym) string {
	if s.IsTerminal() {
		return "t:" + s.term
	}
	return catKey(s.cat)
}

func catKey(cat feat.Value) string {
	switch c := cat.(type) {
	case feat.Atom:
		return "a:" + string(c)
	case feat.Struct:
		if name, ok := c.CatName(); ok {
			return "c:" + name
		}
	}
	return "*"
}

// StartingWith returns the productions whose first RHS element could match
// the given complete-edge head: a terminal symbol (headTerm != "") or a
// category. Over-approximates; callers must unify.
func (g *Grammar) StartingWith(headTerm string, headCat feat.Value) []*Production {
	var key string
	if headCat == nil {
		key = "t:" + headTerm
	} else {
		key = catKey(headCat)
	}
	if key == "*" {
		// wildcard head: everything qualifies
		return g.prods
	}
	if len(g.anyFirst) == 0 {
		return g.byFirst[key]
	}
	out := append([]*Production(nil), g.byFirst[key]...)
	return append(out, g.anyFirst...)
}

// ExpandingTo returns the productions whose left-hand side could unify with
// the given category. Over-approximates; callers must unify.
func (g *Grammar) ExpandingTo(cat feat.Value) []*Production {
	key := catKey(cat)
	if key == "*" {
		return g.prods
	}
	if len(g.anyLHS) == 0 {
		return g.byLHS[key]
	}
	out := append([]*Production(nil), g.byLHS[key]...)
	return append(out, g.anyLHS...)
}

// Dump logs the grammar at debug level.
func (g *Grammar) Dump() {
	tracer().Debugf("=== grammar %q =================================", g.Name)
	tracer().Debugf("start: %s", g.start)
	for _, p := range g.prods {
		tracer().Debugf("%3d: %s", p.Serial, p)
	}
	tracer().Debugf("================================================")
}

// --- Errors -----------------------------------------------------------------

// Error signals a malformed grammar, detected while building. It is fatal for
// that grammar and raised before any parse begins.
type Error struct {
	Grammar string
	Reason  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("grammar %q: %s", e.Grammar, e.Reason)
}
