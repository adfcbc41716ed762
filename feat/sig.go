package feat

import (
	"fmt"

	"github.com/cnf/structhash"
)

// SigNode is an exported, plain representation of a value, suitable for
// structural hashing. Variables are numbered in first-visit order, so two
// values which are equal up to a renaming of their unbound variables produce
// identical SigNodes.
type SigNode struct {
	Kind  string // "atom" | "var" | "struct"
	Atom  string
	Var   int
	Attrs []SigAttr
}

// SigAttr is one attribute of a SigNode of kind "struct".
type SigAttr struct {
	Name string
	Node SigNode
}

// Signer numbers variables consistently across several Signature calls.
// Use one Signer per compound object (e.g. per edge) so that co-references
// between its parts survive normalization.
type Signer struct {
	env  Bindings
	vars map[Var]int
}

// NewSigner creates a Signer resolving through the given bindings.
func NewSigner(env Bindings) *Signer {
	return &Signer{env: env, vars: make(map[Var]int)}
}

// Signature returns the canonical representation of v, resolved through the
// signer's bindings and with unbound variables normalized.
func (sg *Signer) Signature(v Value) SigNode {
	v = walk(v, sg.env)
	switch x := v.(type) {
	case Atom:
		return SigNode{Kind: "atom", Atom: string(x)}
	case Var:
		n, ok := sg.vars[x]
		if !ok {
			n = len(sg.vars) + 1
			sg.vars[x] = n
		}
		return SigNode{Kind: "var", Var: n}
	case Struct:
		attrs := make([]SigAttr, len(x.attrs))
		for i, a := range x.attrs {
			attrs[i] = SigAttr{Name: a.Name, Node: sg.Signature(a.Value)}
		}
		return SigNode{Kind: "struct", Attrs: attrs}
	}
	panic(fmt.Sprintf("feat: unknown value type %T", v))
}

// Hash returns a stable hash string of an exported representation, typically
// a SigNode or a struct composed of them.
func Hash(sig interface{}) string {
	return fmt.Sprintf("%x", structhash.Sha1(sig, 1))
}

// Signature is a convenience for hashing a single value in isolation.
func Signature(v Value, env Bindings) SigNode {
	return NewSigner(env).Signature(v)
}
