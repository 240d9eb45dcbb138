// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package typeclass_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"code.hybscloud.com/typeclass"
)

func TestOptionalEqual(t *testing.T) {
	r := typeclass.Default()
	just, nothing := typeclass.Just, typeclass.Nothing

	assert.True(t, r.Equal(nothing(), nothing()))
	assert.True(t, r.Equal(just(1), just(1)))
	assert.False(t, r.Equal(just(1), just(2)))
	assert.False(t, r.Equal(just(1), nothing()))
	assert.False(t, r.Equal(nothing(), just(1)))
	assert.True(t, r.Equal(just(int8(1)), just(1)), "payloads meet in their common type")
}

func TestOptionalOrder(t *testing.T) {
	r := typeclass.Default()
	just, nothing := typeclass.Just, typeclass.Nothing

	assert.True(t, r.Less(nothing(), just(0)))
	assert.False(t, r.Less(nothing(), nothing()))
	assert.False(t, r.Less(just(0), nothing()))
	assert.True(t, r.Less(just(1), just(2)))
	assert.Equal(t, 1, r.Compare(just(2), just(1)))
	assert.Equal(t, 0, r.Compare(nothing(), nothing()))
}

func TestOptionalAccessors(t *testing.T) {
	j := typeclass.Just(42)
	assert.True(t, j.IsJust())
	assert.Equal(t, 42, j.FromJust())
	assert.Equal(t, 42, j.FromMaybe(0))
	v, ok := j.Get()
	assert.True(t, ok)
	assert.Equal(t, 42, v)
	assert.Equal(t, "Just(42)", j.String())

	n := typeclass.Nothing()
	assert.True(t, n.IsNothing())
	assert.Equal(t, 7, n.FromMaybe(7))
	_, ok = n.Get()
	assert.False(t, ok)
	assert.Equal(t, "Nothing", n.String())
	assert.Equal(t, typeclass.OptionalTag, typeclass.TagOf(n))
}

// TestOptionalFromJustNothing verifies extracting from Nothing fails fast.
func TestOptionalFromJustNothing(t *testing.T) {
	requirePanicsWith(t, typeclass.ErrPrecondition, func() {
		typeclass.Nothing().FromJust()
	})
}

func TestOptionalMatch(t *testing.T) {
	describe := func(o typeclass.Optional) string {
		return typeclass.MatchOptional(o,
			func() string { return "none" },
			func(v Erased) string { return "some" },
		)
	}
	assert.Equal(t, "some", describe(typeclass.Just(1)))
	assert.Equal(t, "none", describe(typeclass.Nothing()))
}

// TestOnlyWhen verifies the transform runs only when the predicate holds.
func TestOnlyWhen(t *testing.T) {
	r := typeclass.Default()
	calls := 0
	double := func(x Erased) Erased {
		calls++
		return x.(int) * 2
	}

	requireEqual(t, r, typeclass.Just(8), typeclass.OnlyWhen(even, double, 4))
	assert.Equal(t, 1, calls)

	assert.True(t, typeclass.OnlyWhen(even, double, 3).IsNothing())
	assert.Equal(t, 1, calls, "transform must not run on predicate failure")
}

func TestOptionalFunctor(t *testing.T) {
	r := typeclass.Default()
	inc := func(x Erased) Erased { return x.(int) + 1 }

	requireEqual(t, r, typeclass.Just(2), r.Transform(typeclass.Just(1), inc))
	requireEqual(t, r, typeclass.Nothing(), r.Transform(typeclass.Nothing(), inc))
	requireEqual(t, r, typeclass.Just(0), r.Fill(typeclass.Just(5), 0))
	requireEqual(t, r, typeclass.Just(9), r.Replace(typeclass.Just(1), 1, 9))
	requireEqual(t, r, typeclass.Just(2), r.Replace(typeclass.Just(2), 1, 9))
}

func TestOptionalApplicative(t *testing.T) {
	r := typeclass.Default()
	inc := func(x Erased) Erased { return x.(int) + 1 }
	add := func(x, y Erased) Erased { return x.(int) + y.(int) }

	requireEqual(t, r, typeclass.Just(1), r.Lift(typeclass.OptionalTag, 1))
	requireEqual(t, r, typeclass.Just(4), r.Ap(typeclass.Just(inc), typeclass.Just(3)))
	requireEqual(t, r, typeclass.Nothing(), r.Ap(typeclass.Nothing(), typeclass.Just(3)))
	requireEqual(t, r, typeclass.Nothing(), r.Ap(typeclass.Just(inc), typeclass.Nothing()))
	requireEqual(t, r, typeclass.Just(5), r.LiftA2(add, typeclass.Just(2), typeclass.Just(3)))
	requireEqual(t, r, typeclass.Nothing(), r.LiftA2(add, typeclass.Nothing(), typeclass.Just(3)))

	requirePanicsWith(t, typeclass.ErrPrecondition, func() {
		r.Ap(typeclass.Just("not a function"), typeclass.Just(1))
	})
}

// TestOptionalMonad verifies chain(lift(x), f) == f(x) and that Nothing
// short-circuits without calling f.
func TestOptionalMonad(t *testing.T) {
	r := typeclass.Default()
	calls := 0
	half := func(x Erased) Erased {
		calls++
		return typeclass.OnlyWhen(even, func(v Erased) Erased { return v.(int) / 2 }, x)
	}

	requireEqual(t, r, half(8), r.Chain(r.Lift(typeclass.OptionalTag, 8), half))
	requireEqual(t, r, typeclass.Nothing(), r.Chain(typeclass.Just(3), half))

	calls = 0
	requireEqual(t, r, typeclass.Nothing(), r.Chain(typeclass.Nothing(), half))
	assert.Zero(t, calls)

	requireEqual(t, r, typeclass.Just(1), r.Flatten(typeclass.Just(typeclass.Just(1))))
	requireEqual(t, r, typeclass.Nothing(), r.Flatten(typeclass.Just(typeclass.Nothing())))
	requireEqual(t, r, typeclass.Just("b"), r.Then(typeclass.Just("a"), typeclass.Just("b")))
	requireEqual(t, r, typeclass.Just(2), r.Compose(half, half)(8))

	requirePanicsWith(t, typeclass.ErrPrecondition, func() {
		r.Flatten(typeclass.Just(1))
	})
}

func TestOptionalMonadPlus(t *testing.T) {
	r := typeclass.Default()
	just, nothing := typeclass.Just, typeclass.Nothing

	requireEqual(t, r, nothing(), r.Empty(typeclass.OptionalTag))
	requireEqual(t, r, just(1), r.Concat(just(1), just(2)))
	requireEqual(t, r, just(2), r.Concat(nothing(), just(2)))
	requireEqual(t, r, nothing(), r.Concat(nothing(), nothing()))
	requireEqual(t, r, just(4), r.Filter(just(4), even))
	requireEqual(t, r, nothing(), r.Filter(just(3), even))
	requireEqual(t, r, just(1), r.Prepend(nothing(), 1))
}

func TestOptionalFoldable(t *testing.T) {
	r := typeclass.Default()

	assert.Equal(t, 1, r.Length(typeclass.Just("x")))
	assert.Equal(t, 0, r.Length(typeclass.Nothing()))
	assert.Equal(t, 5, r.Sum(typeclass.Just(5)))
	assert.Equal(t, 0, r.Sum(typeclass.Nothing()))
	assert.Equal(t, 10, r.FoldLeft(typeclass.Just(3), 7, func(acc, x Erased) Erased { return acc.(int) + x.(int) }))
}

func TestOptionalSearchable(t *testing.T) {
	r := typeclass.Default()

	requireEqual(t, r, typeclass.Just(4), r.FindIf(typeclass.Just(4), even))
	assert.True(t, r.FindIf(typeclass.Just(3), even).IsNothing())
	assert.True(t, r.FindIf(typeclass.Nothing(), even).IsNothing())
	assert.True(t, r.Contains(typeclass.Just(3), 3))
	assert.False(t, r.Contains(typeclass.Nothing(), 3))
	assert.True(t, r.AllOf(typeclass.Nothing(), even))
}

func TestOptionalTraversable(t *testing.T) {
	r := typeclass.Default()
	around := func(x Erased) Erased { return seq(x.(int)-1, x.(int)+1) }

	got := r.Traverse(typeclass.SequenceTag, typeclass.Just(5), around)
	requireEqual(t, r, seq(typeclass.Just(4), typeclass.Just(6)), got)

	got = r.Traverse(typeclass.SequenceTag, typeclass.Nothing(), around)
	requireEqual(t, r, seq(typeclass.Nothing()), got)

	got = r.SequenceA(typeclass.EitherTag, typeclass.Just(typeclass.Right(1)))
	requireEqual(t, r, typeclass.Right(typeclass.Just(1)), got)
}

// TestMonadicFold verifies the Optional monad stops a monadic fold at the
// first Nothing.
func TestMonadicFold(t *testing.T) {
	r := typeclass.Default()
	calls := 0
	step := func(acc, x Erased) Erased {
		calls++
		if x.(int) == 2 {
			return typeclass.Nothing()
		}
		return typeclass.Just(acc.(int) + x.(int))
	}

	got := r.MonadicFoldLeft(typeclass.OptionalTag, seq(1, 3, 5), 0, step)
	requireEqual(t, r, typeclass.Just(9), got)

	calls = 0
	got = r.MonadicFoldLeft(typeclass.OptionalTag, seq(1, 2, 3), 0, step)
	require.True(t, got.(typeclass.Optional).IsNothing())
	assert.Equal(t, 2, calls)

	minus := func(x, acc Erased) Erased { return typeclass.Just(x.(int) - acc.(int)) }
	got = r.MonadicFoldRight(typeclass.OptionalTag, seq(1, 2, 3), 0, minus)
	requireEqual(t, r, typeclass.Just(1-(2-(3-0))), got)
}
