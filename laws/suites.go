// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package laws

import (
	"fmt"

	"code.hybscloud.com/typeclass"
)

// absentTag tags a key no model holds.
var absentTag = typeclass.NewTag("laws.Absent")

type absent struct{}

func (absent) Tag() typeclass.Tag { return absentTag }

func (absent) String() string { return "absent" }

// marker returns the injective function x -> (n, x).
func marker(n int) func(Erased) Erased {
	return func(x Erased) Erased { return typeclass.MakePair(n, x) }
}

func comparableLaws(c *checker) {
	cl, r, xs := typeclass.ComparableClass, c.r, c.samples
	for i, x := range xs {
		c.law(cl, "reflexivity", i, func() string {
			return holds(r.Equal(x, x), "%v != itself", x)
		})
		c.law(cl, "symmetry", i, func() string {
			for _, y := range xs {
				if r.Equal(x, y) != r.Equal(y, x) {
					return fmt.Sprintf("equal(%v, %v) != equal(%v, %v)", x, y, y, x)
				}
			}
			return ""
		})
		c.law(cl, "transitivity", i, func() string {
			for _, y := range xs {
				for _, z := range xs {
					if r.Equal(x, y) && r.Equal(y, z) && !r.Equal(x, z) {
						return fmt.Sprintf("%v == %v == %v but %v != %v", x, y, z, x, z)
					}
				}
			}
			return ""
		})
		c.law(cl, "exclusivity", i, func() string {
			for _, y := range xs {
				if r.Equal(x, y) == r.NotEqual(x, y) {
					return fmt.Sprintf("equal and not_equal agree on (%v, %v)", x, y)
				}
			}
			return ""
		})
	}
}

func orderableLaws(c *checker) {
	cl, r, xs := typeclass.OrderableClass, c.r, c.samples
	for i, x := range xs {
		c.law(cl, "irreflexivity", i, func() string {
			return holds(!r.Less(x, x), "%v < itself", x)
		})
		c.law(cl, "asymmetry", i, func() string {
			for _, y := range xs {
				if r.Less(x, y) && r.Less(y, x) {
					return fmt.Sprintf("%v < %v and %v < %v", x, y, y, x)
				}
			}
			return ""
		})
		c.law(cl, "transitivity", i, func() string {
			for _, y := range xs {
				for _, z := range xs {
					if r.Less(x, y) && r.Less(y, z) && !r.Less(x, z) {
						return fmt.Sprintf("%v < %v < %v but not %v < %v", x, y, z, x, z)
					}
				}
			}
			return ""
		})
		c.law(cl, "consistency", i, func() string {
			for _, y := range xs {
				lt, gt := r.Less(x, y), r.Less(y, x)
				if r.LessEqual(x, y) != !gt || r.Greater(x, y) != gt || r.GreaterEqual(x, y) != !lt {
					return fmt.Sprintf("derived comparisons disagree with less on (%v, %v)", x, y)
				}
			}
			return ""
		})
		c.law(cl, "max_min", i, func() string {
			for _, y := range xs {
				wantMax, wantMin := x, x
				if r.Less(x, y) {
					wantMax = y
				}
				if r.Less(y, x) {
					wantMin = y
				}
				if d := first(c.equal("max", r.Max(x, y), wantMax), c.equal("min", r.Min(x, y), wantMin)); d != "" {
					return d
				}
			}
			return ""
		})
		if c.claims[typeclass.ComparableClass] {
			c.law(cl, "totality", i, func() string {
				for _, y := range xs {
					n := 0
					for _, b := range [...]bool{r.Less(x, y), r.Less(y, x), r.Equal(x, y)} {
						if b {
							n++
						}
					}
					if n != 1 {
						return fmt.Sprintf("(%v, %v) is not exactly one of <, >, ==", x, y)
					}
				}
				return ""
			})
		}
	}
}

func functorLaws(c *checker) {
	cl, r := typeclass.FunctorClass, c.r
	f, g := marker(0), marker(1)
	for i, x := range c.samples {
		c.law(cl, "identity", i, func() string {
			return c.equal("transform(x, id)", r.Transform(x, func(v Erased) Erased { return v }), x)
		})
		c.law(cl, "composition", i, func() string {
			fg := func(v Erased) Erased { return f(g(v)) }
			return c.equal("transform(x, f . g)", r.Transform(x, fg), r.Transform(r.Transform(x, g), f))
		})
	}
}

func applicativeLaws(c *checker) {
	cl, r, t := typeclass.ApplicativeClass, c.r, c.tag
	f := marker(0)
	id := func(v Erased) Erased { return v }
	for i, x := range c.samples {
		c.law(cl, "identity", i, func() string {
			return c.equal("ap(lift(id), x)", r.Ap(r.Lift(t, id), x), x)
		})
		c.law(cl, "functor", i, func() string {
			return c.equal("ap(lift(f), x)", r.Ap(r.Lift(t, f), x), r.Transform(x, f))
		})
	}
	for i, e := range c.elements() {
		c.law(cl, "homomorphism", i, func() string {
			return c.equal("ap(lift(f), lift(e))", r.Ap(r.Lift(t, f), r.Lift(t, e)), r.Lift(t, f(e)))
		})
		c.law(cl, "interchange", i, func() string {
			u := r.Lift(t, f)
			at := func(h Erased) Erased { return h.(func(Erased) Erased)(e) }
			return c.equal("ap(u, lift(e))", r.Ap(u, r.Lift(t, e)), r.Ap(r.Lift(t, at), u))
		})
	}
}

func monadLaws(c *checker) {
	cl, r, t := typeclass.MonadClass, c.r, c.tag
	f := func(x Erased) Erased { return r.Lift(t, typeclass.MakePair(0, x)) }
	g := func(x Erased) Erased { return r.Lift(t, typeclass.MakePair(1, x)) }
	lift := func(x Erased) Erased { return r.Lift(t, x) }
	for i, e := range c.elements() {
		c.law(cl, "left_identity", i, func() string {
			return c.equal("chain(lift(e), f)", r.Chain(r.Lift(t, e), f), f(e))
		})
	}
	for i, x := range c.samples {
		c.law(cl, "right_identity", i, func() string {
			return c.equal("chain(x, lift)", r.Chain(x, lift), x)
		})
		c.law(cl, "associativity", i, func() string {
			left := r.Chain(r.Chain(x, f), g)
			right := r.Chain(x, func(y Erased) Erased { return r.Chain(f(y), g) })
			return c.equal("chain(chain(x, f), g)", left, right)
		})
		c.law(cl, "flatten", i, func() string {
			return c.equal("chain(x, f)", r.Chain(x, f), r.Flatten(r.Transform(x, f)))
		})
	}
	for i, mm := range c.nested {
		c.law(cl, "nested", i, func() string {
			return c.equal("flatten(mm)", r.Flatten(mm), r.Chain(mm, func(m Erased) Erased { return m }))
		})
	}
}

func monadPlusLaws(c *checker) {
	cl, r, t, xs := typeclass.MonadPlusClass, c.r, c.tag, c.samples
	f := func(x Erased) Erased { return r.Lift(t, typeclass.MakePair(0, x)) }
	for i, x := range xs {
		c.law(cl, "left_zero", i, func() string {
			return c.equal("concat(empty, x)", r.Concat(r.Empty(t), x), x)
		})
		c.law(cl, "right_zero", i, func() string {
			return c.equal("concat(x, empty)", r.Concat(x, r.Empty(t)), x)
		})
		c.law(cl, "associativity", i, func() string {
			for _, y := range xs {
				for _, z := range xs {
					if d := c.equal("concat(concat(x, y), z)", r.Concat(r.Concat(x, y), z), r.Concat(x, r.Concat(y, z))); d != "" {
						return d
					}
				}
			}
			return ""
		})
	}
	c.law(cl, "absorption", 0, func() string {
		return c.equal("chain(empty, f)", r.Chain(r.Empty(t), f), r.Empty(t))
	})
}

func foldableLaws(c *checker) {
	cl, r := typeclass.FoldableClass, c.r
	const z = "z"
	step := func(acc, x Erased) Erased { return typeclass.MakePair(acc, x) }
	flipped := func(x, acc Erased) Erased { return typeclass.MakePair(acc, x) }
	keys := append(c.elements(), absent{})

	for i, xs := range c.samples {
		c.law(cl, "fold_left", i, func() string {
			want := Erased(z)
			for _, e := range r.Elements(xs) {
				want = step(want, e)
			}
			return first(
				c.equal("fold(xs, z, f)", r.Fold(xs, z, step), r.FoldLeft(xs, z, step)),
				c.equal("fold_left(xs, z, f)", r.FoldLeft(xs, z, step), want),
			)
		})
		c.law(cl, "fold_right", i, func() string {
			es := r.Elements(xs)
			want := Erased(z)
			for j := len(es) - 1; j >= 0; j-- {
				want = flipped(es[j], want)
			}
			return first(
				c.equal("reverse_fold(xs, z, f)", r.ReverseFold(xs, z, step), r.FoldRight(xs, z, flipped)),
				c.equal("fold_right(xs, z, f)", r.FoldRight(xs, z, flipped), want),
			)
		})
		c.law(cl, "fold_left1", i, func() string {
			es := r.Elements(xs)
			if len(es) == 0 {
				return ""
			}
			want := es[0]
			for _, e := range es[1:] {
				want = step(want, e)
			}
			return c.equal("fold_left1(xs, f)", r.FoldLeft1(xs, step), want)
		})
		c.law(cl, "fold_right1", i, func() string {
			es := r.Elements(xs)
			if len(es) == 0 {
				return ""
			}
			want := es[len(es)-1]
			for j := len(es) - 2; j >= 0; j-- {
				want = flipped(es[j], want)
			}
			return c.equal("fold_right1(xs, f)", r.FoldRight1(xs, flipped), want)
		})
		c.law(cl, "length", i, func() string {
			n, want := r.Length(xs), len(r.Elements(xs))
			return holds(n == want, "length(%v) = %d, want %d", xs, n, want)
		})
		c.law(cl, "count", i, func() string {
			es := r.Elements(xs)
			for _, k := range keys {
				want := 0
				for _, e := range es {
					if r.Equal(e, k) {
						want++
					}
				}
				got, viaPred := r.Count(xs, k), r.CountIf(xs, r.EqualTo(k))
				if got != want || viaPred != want {
					return fmt.Sprintf("count(%v, %v) = %d, count_if = %d, want %d", xs, k, got, viaPred, want)
				}
			}
			return ""
		})
		c.law(cl, "for_each", i, func() string {
			es := r.Elements(xs)
			var seen []Erased
			r.ForEach(xs, func(x Erased) { seen = append(seen, x) })
			if len(seen) != len(es) {
				return fmt.Sprintf("for_each visited %d elements, want %d", len(seen), len(es))
			}
			for j := range seen {
				if d := c.equal("for_each order", seen[j], es[j]); d != "" {
					return d
				}
			}
			return ""
		})
	}
}

// walk collects the elements of xs through Head and Tail.
func walk(r *typeclass.Registry, xs Erased) []Erased {
	var out []Erased
	for ; !r.IsEmpty(xs); xs = r.Tail(xs) {
		out = append(out, r.Head(xs))
	}
	return out
}

func iterableLaws(c *checker) {
	cl, r := typeclass.IterableClass, c.r
	for i, xs := range c.samples {
		c.law(cl, "is_empty", i, func() string {
			es := walk(r, xs)
			if c.claims[typeclass.FoldableClass] {
				if n := r.Length(xs); n != len(es) {
					return fmt.Sprintf("walked %d elements, length is %d", len(es), n)
				}
			}
			return holds(r.IsEmpty(xs) == (len(es) == 0), "is_empty(%v) disagrees with its elements", xs)
		})
		c.law(cl, "head", i, func() string {
			if r.IsEmpty(xs) {
				return ""
			}
			return c.equal("head(xs)", r.Head(xs), r.At(xs, 0))
		})
		c.law(cl, "at", i, func() string {
			for n, e := range walk(r, xs) {
				if d := first(c.equal("at(xs, n)", r.At(xs, n), e), c.equal("head(drop(xs, n))", r.Head(r.Drop(xs, n)), e)); d != "" {
					return d
				}
			}
			return ""
		})
		c.law(cl, "tail", i, func() string {
			if r.IsEmpty(xs) {
				return ""
			}
			es, rest := walk(r, xs), walk(r, r.Tail(xs))
			if len(rest) != len(es)-1 {
				return fmt.Sprintf("tail(%v) has %d elements, want %d", xs, len(rest), len(es)-1)
			}
			for n := range rest {
				if d := c.equal("tail element", rest[n], es[n+1]); d != "" {
					return d
				}
			}
			return c.equal("last(xs)", r.Last(xs), es[len(es)-1])
		})
	}
}

func searchableLaws(c *checker) {
	cl, r := typeclass.SearchableClass, c.r
	candidates := append(c.elements(), absent{})
	for i, xs := range c.samples {
		var keys []Erased
		for _, k := range candidates {
			if r.CheckKey(xs, k) == nil {
				keys = append(keys, k)
			}
		}
		c.law(cl, "any_of", i, func() string {
			for _, k := range candidates {
				p := r.EqualTo(k)
				found := r.FindIf(xs, p).IsJust()
				if r.AnyOf(xs, p) != found || r.NoneOf(xs, p) == found {
					return fmt.Sprintf("any_of/none_of(%v, == %v) disagree with find_if", xs, k)
				}
				if r.AllOf(xs, p) != !r.AnyOf(xs, func(x Erased) bool { return !p(x) }) {
					return fmt.Sprintf("all_of(%v, == %v) disagrees with any_of", xs, k)
				}
			}
			return ""
		})
		c.law(cl, "contains", i, func() string {
			for _, k := range keys {
				if r.Contains(xs, k) != r.AnyOf(xs, r.EqualTo(k)) {
					return fmt.Sprintf("contains(%v, %v) disagrees with any_of", xs, k)
				}
			}
			return ""
		})
		c.law(cl, "find", i, func() string {
			for _, k := range keys {
				if d := c.equal("find(xs, k)", r.Find(xs, k), r.FindIf(xs, r.EqualTo(k))); d != "" {
					return d
				}
			}
			return ""
		})
	}
}

func traversableLaws(c *checker) {
	cl, r := typeclass.TraversableClass, c.r
	opt := typeclass.OptionalTag
	just := func(x Erased) Erased { return typeclass.Just(x) }
	nothing := func(Erased) Erased { return typeclass.Nothing() }
	for i, xs := range c.samples {
		c.law(cl, "identity", i, func() string {
			return c.equal("traverse(xs, just)", r.Traverse(opt, xs, just), typeclass.Just(xs))
		})
		if !c.claims[typeclass.FoldableClass] {
			continue
		}
		c.law(cl, "short_circuit", i, func() string {
			if r.Length(xs) == 0 {
				return ""
			}
			return c.equal("traverse(xs, nothing)", r.Traverse(opt, xs, nothing), typeclass.Nothing())
		})
	}
}
