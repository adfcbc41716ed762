package feat

import (
	"fmt"
)

// Bindings is a substitution map for variables. Bindings are treated as
// immutable by all operations in this package: extending a binding set
// returns a fresh map and leaves the receiver untouched, so bindings may be
// shared between edges.
type Bindings map[Var]Value

// NoBindings is the empty substitution.
var NoBindings = Bindings(nil)

// Lookup returns the value bound to v, if any.
func (b Bindings) Lookup(v Var) (Value, bool) {
	if b == nil {
		return nil, false
	}
	val, ok := b[v]
	return val, ok
}

// Len returns the number of bound variables.
func (b Bindings) Len() int {
	return len(b)
}

func (b Bindings) with(v Var, val Value) Bindings {
	nb := make(Bindings, len(b)+1)
	for k, x := range b {
		nb[k] = x
	}
	nb[v] = val
	return nb
}

func (b Bindings) String() string {
	s := "{"
	first := true
	for k, v := range b {
		if !first {
			s += ", "
		}
		first = false
		s += fmt.Sprintf("%s↦%s", k, v)
	}
	return s + "}"
}

// walk resolves a value through variable chains, one level deep.
func walk(v Value, env Bindings) Value {
	for {
		vr, ok := v.(Var)
		if !ok {
			return v
		}
		bound, has := env.Lookup(vr)
		if !has {
			return v
		}
		v = bound
	}
}

// occurs reports whether variable v occurs inside val (after resolving
// through env). Binding a variable to a value containing itself would create
// an infinite structure.
func occurs(v Var, val Value, env Bindings) bool {
	val = walk(val, env)
	switch x := val.(type) {
	case Var:
		return x == v
	case Struct:
		for _, a := range x.attrs {
			if occurs(v, a.Value, env) {
				return true
			}
		}
	}
	return false
}

// Unify attempts to merge two values consistently under the given bindings.
// On success it returns the merged value and the extended bindings; the input
// bindings are never modified. Failure is reported as ok=false and is the
// normal "rule does not apply" signal during parsing, hence no error value.
//
// Atoms unify iff equal. An unbound variable unifies with anything by binding
// to it (with an occurs-check). Structures unify attribute-wise; an attribute
// present on one side only is copied through.
func Unify(a, b Value, env Bindings) (Value, Bindings, bool) {
	a = walk(a, env)
	b = walk(b, env)
	if av, aIsVar := a.(Var); aIsVar {
		if bv, bIsVar := b.(Var); bIsVar && av == bv {
			return a, env, true
		}
		if occurs(av, b, env) {
			return nil, env, false
		}
		return b, env.with(av, b), true
	}
	if bv, bIsVar := b.(Var); bIsVar {
		if occurs(bv, a, env) {
			return nil, env, false
		}
		return a, env.with(bv, a), true
	}
	switch x := a.(type) {
	case Atom:
		if y, ok := b.(Atom); ok && x == y {
			return x, env, true
		}
		return nil, env, false
	case Struct:
		y, ok := b.(Struct)
		if !ok {
			return nil, env, false
		}
		return unifyStructs(x, y, env)
	}
	return nil, env, false
}

// unifyStructs merges two attribute lists, which are both in canonical
// (sorted) order, so a single linear pass suffices.
func unifyStructs(x, y Struct, env Bindings) (Value, Bindings, bool) {
	merged := make([]Attr, 0, len(x.attrs)+len(y.attrs))
	i, j := 0, 0
	for i < len(x.attrs) && j < len(y.attrs) {
		ax, ay := x.attrs[i], y.attrs[j]
		switch {
		case ax.Name < ay.Name:
			merged = append(merged, ax)
			i++
		case ax.Name > ay.Name:
			merged = append(merged, ay)
			j++
		default:
			sub, newEnv, ok := Unify(ax.Value, ay.Value, env)
			if !ok {
				return nil, env, false
			}
			env = newEnv
			merged = append(merged, Attr{Name: ax.Name, Value: sub})
			i++
			j++
		}
	}
	merged = append(merged, x.attrs[i:]...)
	merged = append(merged, y.attrs[j:]...)
	return Struct{attrs: merged}, env, true
}

// Unifiable reports whether a and b unify under env, discarding the result.
func Unifiable(a, b Value, env Bindings) bool {
	_, _, ok := Unify(a, b, env)
	return ok
}

// Resolve fully substitutes bound variables in v. Unbound variables stay in
// place. Used when finalizing the node label of a parse tree.
func Resolve(v Value, env Bindings) Value {
	v = walk(v, env)
	switch x := v.(type) {
	case Atom, Var:
		return v
	case Struct:
		attrs := make([]Attr, len(x.attrs))
		for i, a := range x.attrs {
			attrs[i] = Attr{Name: a.Name, Value: Resolve(a.Value, env)}
		}
		return Struct{attrs: attrs}
	}
	panic(fmt.Sprintf("feat: unknown value type %T", v))
}

// Subsumes reports whether a is at least as general as b: every piece of
// information in a is also present in b. Atoms subsume equal atoms,
// variables subsume everything, and a structure subsumes another if all its
// attributes do. Intended for diagnostics, not for rule application.
func Subsumes(a, b Value) bool {
	if _, ok := a.(Var); ok {
		return true
	}
	switch x := a.(type) {
	case Atom:
		y, ok := b.(Atom)
		return ok && x == y
	case Struct:
		y, ok := b.(Struct)
		if !ok {
			return false
		}
		for _, attr := range x.attrs {
			bv, has := y.At(attr.Name)
			if !has || !Subsumes(attr.Value, bv) {
				return false
			}
		}
		return true
	}
	return false
}
