package term

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnv_Bind(t *testing.T) {
	t.Run("lookup bound variable", func(t *testing.T) {
		env := NewEnv().With("X", Atom("a"))

		v, ok := env.Lookup("X")
		require.True(t, ok)
		assert.True(t, Equal(Atom("a"), v))
	})

	t.Run("lookup unbound variable", func(t *testing.T) {
		_, ok := NewEnv().Lookup("X")
		assert.False(t, ok)
	})

	t.Run("last write wins", func(t *testing.T) {
		env := NewEnv().With("X", Atom("a")).With("X", Atom("b"))

		v, ok := env.Lookup("X")
		require.True(t, ok)
		assert.True(t, Equal(Atom("b"), v))
		assert.Equal(t, 1, env.Len())
	})

	t.Run("empty", func(t *testing.T) {
		env := NewEnv()
		assert.True(t, env.IsEmpty())
		assert.False(t, env.With("X", Atom("a")).IsEmpty())
	})
}

func TestEnv_Merge(t *testing.T) {
	t.Run("disjoint domains", func(t *testing.T) {
		a := NewEnv().With("X", Atom("a"))
		b := NewEnv().With("Y", Atom("b"))

		ab, ok := a.Merge(b)
		require.True(t, ok)
		ba, ok := b.Merge(a)
		require.True(t, ok)

		expected := NewEnv().With("X", Atom("a")).With("Y", Atom("b"))
		assert.Equal(t, expected, ab)
		assert.Equal(t, expected, ba)
	})

	t.Run("equal duplicates collapse", func(t *testing.T) {
		a := NewEnv().With("X", Atom("a"))
		b := NewEnv().With("X", Atom("a")).With("Y", Atom("b"))

		merged, ok := a.Merge(b)
		require.True(t, ok)
		assert.Equal(t, NewEnv().With("X", Atom("a")).With("Y", Atom("b")), merged)
	})

	t.Run("conflicting duplicates fail", func(t *testing.T) {
		a := NewEnv().With("X", Atom("a"))
		b := NewEnv().With("X", Atom("b"))

		_, ok := a.Merge(b)
		assert.False(t, ok)
	})

	t.Run("arguments unchanged", func(t *testing.T) {
		a := NewEnv().With("X", Atom("a"))
		b := NewEnv().With("Y", Atom("b"))

		_, ok := a.Merge(b)
		require.True(t, ok)
		assert.Equal(t, 1, a.Len())
		assert.Equal(t, 1, b.Len())
	})
}

func TestEnv_Apply(t *testing.T) {
	t.Run("substitutes every binding", func(t *testing.T) {
		env := NewEnv().With("X", Atom("a")).With("Y", Atom("b"))

		got := env.Apply(&Compound{Functor: "test", Args: []Interface{Variable("X"), Variable("Y")}})

		assert.True(t, Equal(got, &Compound{Functor: "test", Args: []Interface{Atom("a"), Atom("b")}}))
	})

	t.Run("unbound variables survive", func(t *testing.T) {
		env := NewEnv().With("X", Atom("a"))

		got := env.Apply(&Compound{Functor: "test", Args: []Interface{Variable("X"), Variable("Z")}})

		assert.True(t, Equal(got, &Compound{Functor: "test", Args: []Interface{Atom("a"), Variable("Z")}}))
	})
}

func TestEnv_Simplify(t *testing.T) {
	t.Run("resolves chains", func(t *testing.T) {
		env := NewEnv().With("X", Variable("Y")).With("Y", Atom("a"))

		assert.True(t, Equal(Atom("a"), env.Simplify(Variable("X"))))
	})

	t.Run("maps over compound arguments", func(t *testing.T) {
		env := NewEnv().With("Y", Atom("b"))

		got := env.Simplify(&Compound{Functor: "test", Args: []Interface{Atom("a"), Variable("Y")}})

		assert.True(t, Equal(got, &Compound{Functor: "test", Args: []Interface{Atom("a"), Atom("b")}}))
	})

	t.Run("unbound variable kept", func(t *testing.T) {
		assert.True(t, Equal(Variable("X"), NewEnv().Simplify(Variable("X"))))
	})
}

func TestEnv_Normalized(t *testing.T) {
	t.Run("scoped variables resolved", func(t *testing.T) {
		env := NewEnv().
			With("X", Variable("Y")).
			With("Y", Atom("a"))

		normalized := env.Normalized(Variables{"X"})

		assert.Equal(t, NewEnv().With("X", Atom("a")), normalized)
	})

	t.Run("scoped variables resolved inside functor", func(t *testing.T) {
		env := NewEnv().
			With("X", &Compound{Functor: "test", Args: []Interface{Atom("a"), Variable("Y")}}).
			With("Y", Atom("b"))

		normalized := env.Normalized(Variables{"X"})

		assert.Equal(t, NewEnv().With("X", &Compound{Functor: "test", Args: []Interface{Atom("a"), Atom("b")}}), normalized)
	})

	t.Run("unbound scope variables dropped", func(t *testing.T) {
		env := NewEnv().With("X", Atom("a"))

		normalized := env.Normalized(Variables{"X", "Z"})

		assert.Equal(t, NewEnv().With("X", Atom("a")), normalized)
	})

	t.Run("idempotent", func(t *testing.T) {
		env := NewEnv().
			With("X", Variable("Y")).
			With("Y", Atom("a"))

		once := env.Normalized(Variables{"X", "Y"})
		twice := once.Normalized(Variables{"X", "Y"})

		assert.Equal(t, once, twice)
	})
}

func TestEnv_Substitutions(t *testing.T) {
	env := NewEnv().With("Y", Atom("b")).With("X", Atom("a"))

	assert.Equal(t, []Binding{
		{Variable: "X", Value: Atom("a")},
		{Variable: "Y", Value: Atom("b")},
	}, env.Substitutions())
}

func TestEnv_String(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, "[]", NewEnv().String())
	})

	t.Run("sorted bindings", func(t *testing.T) {
		env := NewEnv().
			With("Y", Atom("b")).
			With("X", &Compound{Functor: "f", Args: []Interface{Atom("a")}})

		assert.Equal(t, "[X := f(a), Y := b]", env.String())
	})
}
