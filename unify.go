package minpl

import "github.com/hlah/minpl/term"

type constraint struct {
	lhs, rhs term.Interface
}

// Unify returns a most general unifier of a and b, or false if none exists.
// There is no occurs-check: unifying X with f(X) succeeds, and simplifying
// the resulting binding does not terminate.
func Unify(a, b term.Interface) (*term.Env, bool) {
	return unifyAll([]constraint{{lhs: a, rhs: b}})
}

func unifyAll(constraints []constraint) (*term.Env, bool) {
	if len(constraints) == 0 {
		return term.NewEnv(), true
	}

	c := constraints[len(constraints)-1]
	rest := constraints[:len(constraints)-1]

	if term.Equal(c.lhs, c.rhs) {
		return unifyAll(rest)
	}
	if v, ok := c.lhs.(term.Variable); ok {
		return bindVariable(string(v), c.rhs, rest)
	}
	if v, ok := c.rhs.(term.Variable); ok {
		return bindVariable(string(v), c.lhs, rest)
	}

	lhs, lok := c.lhs.(*term.Compound)
	rhs, rok := c.rhs.(*term.Compound)
	if lok && rok && lhs.Functor == rhs.Functor && len(lhs.Args) == len(rhs.Args) {
		// Pushed in reverse so argument pairs pop left to right.
		for i := len(lhs.Args) - 1; i >= 0; i-- {
			rest = append(rest, constraint{lhs: lhs.Args[i], rhs: rhs.Args[i]})
		}
		return unifyAll(rest)
	}

	return nil, false
}

// bindVariable substitutes name -> value into every pending constraint,
// solves the rewritten system, and records the binding on success. Pending
// constraints therefore always see earlier bindings applied.
func bindVariable(name string, value term.Interface, pending []constraint) (*term.Env, bool) {
	rewritten := make([]constraint, len(pending))
	for i, c := range pending {
		rewritten[i] = constraint{
			lhs: c.lhs.Substitute(name, value),
			rhs: c.rhs.Substitute(name, value),
		}
	}
	env, ok := unifyAll(rewritten)
	if !ok {
		return nil, false
	}
	env.Bind(name, value)
	return env, true
}
