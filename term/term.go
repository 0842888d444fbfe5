package term

import (
	"bytes"
	"fmt"
	"io"
)

// Interface is a first-order term: either a Variable or a *Compound.
type Interface interface {
	fmt.Stringer
	WriteTerm(io.Writer) error
	// Substitute replaces every variable with the given name by value.
	// The replacement is inserted verbatim; it is not substituted into again.
	Substitute(name string, value Interface) Interface
}

// Variable is a logic variable, identified by its name.
type Variable string

func (v Variable) String() string {
	var buf bytes.Buffer
	_ = v.WriteTerm(&buf)
	return buf.String()
}

// WriteTerm writes the variable into w.
func (v Variable) WriteTerm(w io.Writer) error {
	_, err := fmt.Fprint(w, string(v))
	return err
}

func (v Variable) Substitute(name string, value Interface) Interface {
	if string(v) == name {
		return value
	}
	return v
}

// Compound is a functor with an ordered list of arguments.
// A compound without arguments is an atom.
type Compound struct {
	Functor string
	Args    []Interface
}

// Atom returns a nullary compound.
func Atom(name string) *Compound {
	return &Compound{Functor: name}
}

func (c *Compound) String() string {
	var buf bytes.Buffer
	_ = c.WriteTerm(&buf)
	return buf.String()
}

// WriteTerm writes the compound into w. Atoms print as a bare name.
func (c *Compound) WriteTerm(w io.Writer) error {
	if _, err := fmt.Fprint(w, c.Functor); err != nil {
		return err
	}
	if len(c.Args) == 0 {
		return nil
	}
	if _, err := fmt.Fprint(w, "("); err != nil {
		return err
	}
	for i, a := range c.Args {
		if i > 0 {
			if _, err := fmt.Fprint(w, ", "); err != nil {
				return err
			}
		}
		if err := a.WriteTerm(w); err != nil {
			return err
		}
	}
	_, err := fmt.Fprint(w, ")")
	return err
}

func (c *Compound) Substitute(name string, value Interface) Interface {
	if len(c.Args) == 0 {
		return c
	}
	args := make([]Interface, len(c.Args))
	for i, a := range c.Args {
		args[i] = a.Substitute(name, value)
	}
	return &Compound{Functor: c.Functor, Args: args}
}

// Equal reports whether a and b are structurally equal.
func Equal(a, b Interface) bool {
	switch a := a.(type) {
	case Variable:
		b, ok := b.(Variable)
		return ok && a == b
	case *Compound:
		b, ok := b.(*Compound)
		if !ok || a.Functor != b.Functor || len(a.Args) != len(b.Args) {
			return false
		}
		for i := range a.Args {
			if !Equal(a.Args[i], b.Args[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

type Variables []Variable

// FreeVariables extracts variables in the given terms, deduplicated, in
// first-occurrence order.
func FreeVariables(ts ...Interface) Variables {
	var fvs Variables
	for _, t := range ts {
		fvs = appendFreeVariables(fvs, t)
	}
	return fvs
}

func appendFreeVariables(fvs Variables, t Interface) Variables {
	switch t := t.(type) {
	case Variable:
		for _, v := range fvs {
			if v == t {
				return fvs
			}
		}
		return append(fvs, t)
	case *Compound:
		for _, arg := range t.Args {
			fvs = appendFreeVariables(fvs, arg)
		}
	}
	return fvs
}
