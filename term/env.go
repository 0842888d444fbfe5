package term

import (
	"bytes"
	"fmt"
	"sort"
)

// Binding is a single variable-to-term assignment.
type Binding struct {
	Variable string
	Value    Interface
}

// Env is a mapping from variable names to terms. A bound value may itself
// contain variables, bound or not; chains are resolved by Simplify, not by
// the structure itself.
type Env struct {
	bindings map[string]Interface
}

// NewEnv creates an empty environment.
func NewEnv() *Env {
	return &Env{bindings: map[string]Interface{}}
}

func (e *Env) IsEmpty() bool {
	return len(e.bindings) == 0
}

func (e *Env) Len() int {
	return len(e.bindings)
}

// Lookup returns the term that the given variable is bound to.
func (e *Env) Lookup(name string) (Interface, bool) {
	t, ok := e.bindings[name]
	return t, ok
}

// Bind adds an entry to the environment. A later Bind for the same
// variable wins.
func (e *Env) Bind(name string, value Interface) {
	e.bindings[name] = value
}

// With binds and returns the environment, for chained construction.
func (e *Env) With(name string, value Interface) *Env {
	e.Bind(name, value)
	return e
}

// Merge returns the union of e and other as a new environment. It fails if
// a variable is bound in both to structurally unequal terms; equal
// duplicates collapse. Neither argument is modified.
func (e *Env) Merge(other *Env) (*Env, bool) {
	merged := NewEnv()
	for name, value := range e.bindings {
		merged.bindings[name] = value
	}
	for name, value := range other.bindings {
		if old, ok := merged.bindings[name]; ok {
			if !Equal(old, value) {
				return nil, false
			}
			continue
		}
		merged.bindings[name] = value
	}
	return merged, true
}

// Substitutions returns a snapshot of the bindings, sorted by variable name.
func (e *Env) Substitutions() []Binding {
	names := make([]string, 0, len(e.bindings))
	for name := range e.bindings {
		names = append(names, name)
	}
	sort.Strings(names)
	bs := make([]Binding, len(names))
	for i, name := range names {
		bs[i] = Binding{Variable: name, Value: e.bindings[name]}
	}
	return bs
}

// Apply performs each binding as a one-shot substitution on t, in
// Substitutions order. A replacement inserted by one binding is rewritten
// only by the bindings that come after it in that order, so chains are not
// always resolved; callers that need chains resolved go through Simplify.
func (e *Env) Apply(t Interface) Interface {
	for _, b := range e.Substitutions() {
		t = t.Substitute(b.Variable, b.Value)
	}
	return t
}

// Simplify resolves t against the environment: bound variables are replaced
// by their simplified values, compound arguments are simplified into a new
// compound; t itself is not modified.
// Does not terminate on cyclic bindings.
func (e *Env) Simplify(t Interface) Interface {
	switch t := t.(type) {
	case Variable:
		value, ok := e.Lookup(string(t))
		if !ok {
			return t
		}
		return e.Simplify(value)
	case *Compound:
		if len(t.Args) == 0 {
			return t
		}
		args := make([]Interface, len(t.Args))
		for i, a := range t.Args {
			args[i] = e.Simplify(a)
		}
		return &Compound{Functor: t.Functor, Args: args}
	default:
		return t
	}
}

// Normalized restricts the environment to the variables in scope, with each
// bound value fully simplified. Unbound scope variables are dropped.
func (e *Env) Normalized(scope Variables) *Env {
	normalized := NewEnv()
	for _, v := range scope {
		if value, ok := e.Lookup(string(v)); ok {
			normalized.bindings[string(v)] = e.Simplify(value)
		}
	}
	return normalized
}

// String renders the environment as [X := value, Y := value], keys sorted.
func (e *Env) String() string {
	var buf bytes.Buffer
	buf.WriteString("[")
	for i, b := range e.Substitutions() {
		if i > 0 {
			buf.WriteString(", ")
		}
		fmt.Fprintf(&buf, "%s := %s", b.Variable, b.Value)
	}
	buf.WriteString("]")
	return buf.String()
}
