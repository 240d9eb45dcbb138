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

func minus(x, y Erased) Erased { return x.(int) - y.(int) }

func TestSequenceTag(t *testing.T) {
	s := seq(1, "two", typeclass.Just(3))
	assert.Equal(t, typeclass.SequenceTag.Sized(3), typeclass.TagOf(s))
	assert.Equal(t, "Sequence<3>", s.Tag().String())
	assert.Equal(t, typeclass.SequenceTag, s.Tag().Family())
	n, ok := s.Tag().Param()
	assert.True(t, ok)
	assert.Equal(t, 3, n)
	assert.Equal(t, `[1, two, Just(3)]`, s.String())
}

// TestMakeSequenceCopies verifies a Sequence does not alias its input.
func TestMakeSequenceCopies(t *testing.T) {
	in := []Erased{1, 2, 3}
	s := typeclass.MakeSequence(in...)
	in[0] = 99
	assert.Equal(t, 1, s.At(0))

	out := s.Elements()
	out[1] = 99
	assert.Equal(t, 2, s.At(1))
}

func TestSequenceEqual(t *testing.T) {
	r := typeclass.Default()

	assert.True(t, r.Equal(seq(), seq()))
	assert.True(t, r.Equal(seq(1, 2), seq(1, 2)))
	assert.True(t, r.Equal(seq(int8(1), 2), seq(1, int16(2))))
	assert.False(t, r.Equal(seq(1, 2), seq(1, 2, 3)))
	assert.False(t, r.Equal(seq(1, 2), seq(2, 1)))
	assert.False(t, r.Equal(seq(1), seq("1")))
}

func TestSequenceOrder(t *testing.T) {
	r := typeclass.Default()

	assert.True(t, r.Less(seq(1, 2), seq(1, 3)))
	assert.True(t, r.Less(seq(1, 2), seq(1, 2, 0)), "a strict prefix orders first")
	assert.False(t, r.Less(seq(1, 2, 0), seq(1, 2)))
	assert.False(t, r.Less(seq(1, 2), seq(1, 2)))
	assert.True(t, r.Less(seq(), seq(0)))
	assert.True(t, r.LessEqual(seq(1, 2), seq(1, 2)))
	assert.True(t, r.Greater(seq(2), seq(1, 9)))
	requireEqual(t, r, seq(1, 3), r.Max(seq(1, 2), seq(1, 3)))
	requireEqual(t, r, seq(1, 2), r.Min(seq(1, 2), seq(1, 3)))
}

// TestSequenceFolds verifies fold direction on a non-associative step.
func TestSequenceFolds(t *testing.T) {
	r := typeclass.Default()
	xs := seq(1, 2, 3)

	assert.Equal(t, 1-(2-(3-0)), r.FoldRight(xs, 0, minus))
	assert.Equal(t, ((0-1)-2)-3, r.FoldLeft(xs, 0, minus))
	assert.Equal(t, (1-2)-3, r.FoldLeft1(xs, minus))
	assert.Equal(t, 1-(2-3), r.FoldRight1(xs, minus))
	assert.Equal(t, r.FoldLeft(xs, 0, minus), r.Fold(xs, 0, minus))
	assert.Equal(t, ((0-3)-2)-1, r.ReverseFold(xs, 0, minus))
	assert.Equal(t, 0, r.FoldLeft(seq(), 0, minus))

	requirePanicsWith(t, typeclass.ErrPrecondition, func() {
		r.FoldLeft1(seq(), minus)
	})
	requirePanicsWith(t, typeclass.ErrPrecondition, func() {
		r.FoldRight1(seq(), minus)
	})
}

func TestSequenceCount(t *testing.T) {
	r := typeclass.Default()

	assert.Equal(t, 2, r.CountIf(seq(1, 2, 3, 4), even))
	assert.Equal(t, 0, r.CountIf(seq(), even))
	assert.Equal(t, 2, r.Count(seq(1, int8(1), 2), 1))
	assert.Equal(t, 4, r.Length(seq(1, 2, 3, 4)))

	var visited []Erased
	r.ForEach(seq(3, 1, 2), func(x Erased) { visited = append(visited, x) })
	assert.Equal(t, []Erased{3, 1, 2}, visited)
}

func TestSequenceSum(t *testing.T) {
	r := typeclass.Default()

	assert.Equal(t, int16(3), r.Sum(seq(int8(1), int16(2))))
	assert.Equal(t, 1.5, r.Sum(seq(1.0, float32(0.5))))
	assert.Equal(t, 0, r.Sum(seq()))
	assert.Equal(t, 24, r.Product(seq(1, 2, 3, 4)))
	assert.Equal(t, 1, r.Product(seq()))
	assert.Equal(t, int32(195), r.Sum(seq(typeclass.Char('a'), int8(98))))

	requirePanicsWith(t, typeclass.ErrNoInstance, func() {
		r.Sum(seq(uint64(1), 1))
	})
	requirePanicsWith(t, typeclass.ErrNoInstance, func() {
		r.Sum(seq("a", "b"))
	})
}

// TestSequenceExtrema verifies ties keep the earliest element.
func TestSequenceExtrema(t *testing.T) {
	r := typeclass.Default()
	xs := seq(int8(3), 1, 3, int8(1))

	got := r.Maximum(xs)
	assert.Equal(t, int8(3), got)
	assert.Equal(t, int8(3), r.Maximum(seq(int8(3), 3)))
	assert.Equal(t, 1, r.Minimum(xs))
	assert.Equal(t, int8(1), r.Minimum(seq(int8(1), 1)))

	longest := func(x, y Erased) bool { return len(x.(string)) < len(y.(string)) }
	assert.Equal(t, "ccc", r.MaximumBy(seq("a", "ccc", "bbb"), longest))
	assert.Equal(t, "a", r.MinimumBy(seq("a", "ccc", "b"), longest))

	requirePanicsWith(t, typeclass.ErrPrecondition, func() {
		r.Maximum(seq())
	})
}

func TestSequenceLookup(t *testing.T) {
	r := typeclass.Default()
	p := typeclass.MakePair

	assert.True(t, r.Lookup(seq(), 1).IsNothing())
	requireEqual(t, r, typeclass.Just(1), r.Lookup(seq(p(1, 1)), 1))
	requireEqual(t, r, typeclass.Just("b"), r.Lookup(seq(p(1, "a"), p(int8(2), "b"), p(2, "c")), 2))
	assert.True(t, r.Lookup(seq(p(1, "a")), 2).IsNothing())

	requirePanicsWith(t, typeclass.ErrPrecondition, func() {
		r.Lookup(seq(1), 1)
	})
}

func TestSequenceIterable(t *testing.T) {
	r := typeclass.Default()
	xs := seq(1, 2, 3)

	assert.Equal(t, 1, r.Head(xs))
	requireEqual(t, r, seq(2, 3), r.Tail(xs))
	assert.Equal(t, 3, r.At(xs, 2))
	assert.Equal(t, 3, r.Last(xs))
	assert.False(t, r.IsEmpty(xs))
	assert.True(t, r.IsEmpty(seq()))
	requireEqual(t, r, seq(3), r.Drop(xs, 2))
	requireEqual(t, r, seq(), r.Drop(xs, 10))
	requireEqual(t, r, seq(3), r.DropWhile(xs, func(x Erased) bool { return x.(int) < 3 }))

	for name, f := range map[string]func(){
		"head":   func() { r.Head(seq()) },
		"tail":   func() { r.Tail(seq()) },
		"at":     func() { r.At(xs, 3) },
		"at -1":  func() { r.At(xs, -1) },
		"last":   func() { r.Last(seq()) },
		"method": func() { xs.At(5) },
	} {
		t.Run(name, func(t *testing.T) {
			requirePanicsWith(t, typeclass.ErrPrecondition, f)
		})
	}
}

func TestSequenceSlicing(t *testing.T) {
	r := typeclass.Default()
	xs := seq(2, 4, 5, 6)

	requireEqual(t, r, seq(2, 4), xs.TakeWhile(even))
	requireEqual(t, r, seq(), xs.TakeWhile(func(Erased) bool { return false }))
	requireEqual(t, r, seq(2, 4, 5), xs.Take(3))
	requireEqual(t, r, xs, xs.Take(10))
	requireEqual(t, r, seq(), xs.Take(-1))
	requireEqual(t, r, seq(6, 5, 4, 2), xs.Reverse())
	requireEqual(t, r, seq(2, 4, 5, 6), xs)
}

func TestSequenceFunctor(t *testing.T) {
	r := typeclass.Default()
	inc := func(x Erased) Erased { return x.(int) + 1 }

	requireEqual(t, r, seq(2, 3, 4), r.Transform(seq(1, 2, 3), inc))
	requireEqual(t, r, seq(), r.Transform(seq(), inc))
	requireEqual(t, r, seq(1, 3, 3), r.Adjust(seq(1, 2, 3), 2, inc))
	requireEqual(t, r, seq(1, 3, 3, 5), r.AdjustIf(seq(1, 2, 3, 4), even, inc))
	requireEqual(t, r, seq(0, 2, 0), r.Replace(seq(1, 2, 1), 1, 0))
	requireEqual(t, r, seq(1, 0, 3, 0), r.ReplaceIf(seq(1, 2, 3, 4), even, 0))
	requireEqual(t, r, seq("x", "x"), r.Fill(seq(1, 2), "x"))
}

// TestSequenceApplicative verifies Ap applies every function to every value.
func TestSequenceApplicative(t *testing.T) {
	r := typeclass.Default()
	inc := func(x Erased) Erased { return x.(int) + 1 }
	neg := func(x Erased) Erased { return -x.(int) }

	requireEqual(t, r, seq(7), r.Lift(typeclass.SequenceTag, 7))
	requireEqual(t, r, seq(2, 3, -1, -2), r.Ap(seq(inc, neg), seq(1, 2)))
	requireEqual(t, r, seq(), r.Ap(seq(), seq(1, 2)))

	pair := func(x, y Erased) Erased { return typeclass.MakePair(x, y) }
	got := r.LiftA2(pair, seq(1, 2), seq("a", "b"))
	p := typeclass.MakePair
	requireEqual(t, r, seq(p(1, "a"), p(1, "b"), p(2, "a"), p(2, "b")), got)
}

func TestSequenceMonad(t *testing.T) {
	r := typeclass.Default()
	twice := func(x Erased) Erased { return seq(x, x) }

	requireEqual(t, r, seq(1, 2, 3), r.Flatten(seq(seq(1), seq(), seq(2, 3))))
	requireEqual(t, r, seq(1, 1, 2, 2), r.Chain(seq(1, 2), twice))
	requireEqual(t, r, twice(5), r.Chain(r.Lift(typeclass.SequenceTag, 5), twice))
	requireEqual(t, r, seq("a", "b", "a", "b"), r.Then(seq(1, 2), seq("a", "b")))

	requirePanicsWith(t, typeclass.ErrPrecondition, func() {
		r.Flatten(seq(1, 2))
	})
}

func TestSequenceMonadPlus(t *testing.T) {
	r := typeclass.Default()

	requireEqual(t, r, seq(), r.Empty(typeclass.SequenceTag))
	requireEqual(t, r, seq(1, 2, 3), r.Concat(seq(1), seq(2, 3)))
	requireEqual(t, r, seq(0, 1), r.Prepend(seq(1), 0))
	requireEqual(t, r, seq(1, 2), r.Append(seq(1), 2))
	requireEqual(t, r, seq(2, 4), r.Filter(seq(1, 2, 3, 4), even))
	requireEqual(t, r, seq(1, 3), r.Remove(seq(1, 2, 3, 4), even))

	parts := r.Partition(seq(1, 2, 3, 4), even)
	requireEqual(t, r, seq(2, 4), parts.First())
	requireEqual(t, r, seq(1, 3), parts.Second())

	requirePanicsWith(t, typeclass.ErrPrecondition, func() {
		r.Concat(seq(1), typeclass.Just(2))
	})
}

func TestSequenceSearchable(t *testing.T) {
	r := typeclass.Default()
	xs := seq(1, 2, 3)

	assert.True(t, r.Contains(xs, int8(2)))
	assert.False(t, r.Contains(xs, 4))
	assert.False(t, r.Contains(xs, "2"))
	requireEqual(t, r, typeclass.Just(2), r.Find(xs, 2))
	requireEqual(t, r, typeclass.Just(2), r.FindIf(xs, even))
	assert.True(t, r.AnyOf(xs, even))
	assert.False(t, r.AllOf(xs, even))
	assert.False(t, r.NoneOf(xs, even))
	assert.True(t, r.AllOf(seq(), even))
	assert.True(t, r.IsSubset(seq(3, 1), xs))
	assert.False(t, r.IsSubset(seq(3, 4), xs))
	assert.True(t, r.IsSubset(seq(), xs))
	require.NoError(t, r.CheckKey(xs, 1))
}

func TestSequenceTraversable(t *testing.T) {
	r := typeclass.Default()
	half := func(x Erased) Erased {
		return typeclass.OnlyWhen(even, func(v Erased) Erased { return v.(int) / 2 }, x)
	}

	requireEqual(t, r, typeclass.Just(seq(1, 2)), r.Traverse(typeclass.OptionalTag, seq(2, 4), half))
	requireEqual(t, r, typeclass.Nothing(), r.Traverse(typeclass.OptionalTag, seq(2, 3), half))
	requireEqual(t, r, typeclass.Just(seq()), r.Traverse(typeclass.OptionalTag, seq(), half))

	requireEqual(t, r,
		typeclass.Just(seq(1, 2)),
		r.SequenceA(typeclass.OptionalTag, seq(typeclass.Just(1), typeclass.Just(2))))
	requireEqual(t, r,
		typeclass.Left("bad"),
		r.SequenceA(typeclass.EitherTag, seq(typeclass.Right(1), typeclass.Left("bad"), typeclass.Left("worse"))))

	got := r.SequenceA(typeclass.SequenceTag, seq(seq(1, 2), seq(3)))
	requireEqual(t, r, seq(seq(1, 3), seq(2, 3)), got)
}
