package feat

import (
	"bytes"
	"fmt"
	"sort"
	"sync/atomic"
)

// CatAttr is the conventional attribute holding the syntactic type of a
// category, e.g. "NP" in NP[num=sg]. It takes part in unification like any
// other attribute.
const CatAttr = "cat"

// Value is a category or a part of one. Values are immutable: every operation
// producing a different value allocates a fresh one.
type Value interface {
	fmt.Stringer
	isValue()
}

// --- Atoms ------------------------------------------------------------------

// Atom is an atomic symbol. Atoms unify iff they are equal.
type Atom string

func (a Atom) isValue() {}

func (a Atom) String() string {
	return string(a)
}

// --- Variables --------------------------------------------------------------

// Var is a logic variable. Variables are identity-distinct: two variables are
// the same only if they stem from the same NewVar (or renaming) call, no
// matter their display name.
type Var struct {
	id   uint64
	name string
}

var varSerial uint64

// NewVar creates a fresh variable. The name is for display only.
func NewVar(name string) Var {
	return Var{
		id:   atomic.AddUint64(&varSerial, 1),
		name: name,
	}
}

func (v Var) isValue() {}

// Name returns the display name of a variable.
func (v Var) Name() string {
	return v.name
}

func (v Var) String() string {
	if v.name == "" {
		return fmt.Sprintf("?_%d", v.id)
	}
	return "?" + v.name
}

// --- Structures -------------------------------------------------------------

// Attr is a single attribute of a Struct.
type Attr struct {
	Name  string
	Value Value
}

// Pair is a convenience constructor for an attribute.
func Pair(name string, v Value) Attr {
	return Attr{Name: name, Value: v}
}

// Struct is a mapping from attribute names to values. Attribute order is
// irrelevant; internally attributes are kept sorted by name, which gives every
// structure a canonical form.
type Struct struct {
	attrs []Attr
}

// NewStruct creates a structure from attributes. Duplicate attribute names are
// not allowed and cause a panic, as they always indicate a programming error
// in grammar construction.
func NewStruct(attrs ...Attr) Struct {
	s := Struct{attrs: append([]Attr(nil), attrs...)}
	sort.Slice(s.attrs, func(i, j int) bool {
		return s.attrs[i].Name < s.attrs[j].Name
	})
	for i := 1; i < len(s.attrs); i++ {
		if s.attrs[i].Name == s.attrs[i-1].Name {
			panic(fmt.Sprintf("feat: duplicate attribute %q in structure", s.attrs[i].Name))
		}
	}
	return s
}

// Cat builds a category structure with the conventional 'cat' attribute,
// e.g.
//
//	feat.Cat("NP", feat.Pair("num", feat.Atom("sg")))
//
// for NP[num=sg].
func Cat(cat string, attrs ...Attr) Struct {
	all := make([]Attr, 0, len(attrs)+1)
	all = append(all, Attr{Name: CatAttr, Value: Atom(cat)})
	all = append(all, attrs...)
	return NewStruct(all...)
}

func (s Struct) isValue() {}

// Len returns the number of attributes.
func (s Struct) Len() int {
	return len(s.attrs)
}

// At returns the value of the named attribute.
func (s Struct) At(name string) (Value, bool) {
	i := sort.Search(len(s.attrs), func(i int) bool {
		return s.attrs[i].Name >= name
	})
	if i < len(s.attrs) && s.attrs[i].Name == name {
		return s.attrs[i].Value, true
	}
	return nil, false
}

// Attrs returns the attributes in canonical (name-sorted) order. Callers must
// not modify the returned slice.
func (s Struct) Attrs() []Attr {
	return s.attrs
}

// CatName returns the value of the 'cat' attribute, if it is an atom.
func (s Struct) CatName() (string, bool) {
	if v, ok := s.At(CatAttr); ok {
		if a, isAtom := v.(Atom); isAtom {
			return string(a), true
		}
	}
	return "", false
}

func (s Struct) String() string {
	var b bytes.Buffer
	cat, hasCat := s.CatName()
	if hasCat {
		b.WriteString(cat)
	}
	b.WriteString("[")
	first := true
	for _, a := range s.attrs {
		if hasCat && a.Name == CatAttr {
			continue
		}
		if !first {
			b.WriteString(", ")
		}
		first = false
		b.WriteString(a.Name)
		b.WriteString("=")
		b.WriteString(a.Value.String())
	}
	b.WriteString("]")
	return b.String()
}

// --- Renaming ---------------------------------------------------------------

// Rename produces a structurally identical value with fresh variable
// identities. Identical variables within v stay identical in the result.
// Productions are renamed every time they are instantiated into a new edge,
// preventing variable aliasing between edges.
func Rename(v Value) Value {
	vs := RenameAll(v)
	return vs[0]
}

// RenameAll renames several values under one shared variable mapping, so that
// a variable occurring in more than one of them keeps its co-reference.
func RenameAll(vals ...Value) []Value {
	fresh := make(map[Var]Var)
	out := make([]Value, len(vals))
	for i, v := range vals {
		out[i] = renameWith(v, fresh)
	}
	return out
}

func renameWith(v Value, fresh map[Var]Var) Value {
	switch val := v.(type) {
	case Atom:
		return val
	case Var:
		nv, ok := fresh[val]
		if !ok {
			nv = NewVar(val.name)
			fresh[val] = nv
		}
		return nv
	case Struct:
		attrs := make([]Attr, len(val.attrs))
		for i, a := range val.attrs {
			attrs[i] = Attr{Name: a.Name, Value: renameWith(a.Value, fresh)}
		}
		return Struct{attrs: attrs}
	}
	panic(fmt.Sprintf("feat: unknown value type %T", v))
}
