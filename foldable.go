// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package typeclass

// Foldable reduces a structure to a single value.
//
// Minimal definition: Unpack, FoldLeft or FoldRight.
// Derived operations: the remaining two of those, FoldLeft1, FoldRight1,
// Length, CountIf, ForEach, MonadicFoldLeft, MonadicFoldRight.
//
// ForEach calls f exactly once per element, in element order.
// FoldLeft1 and FoldRight1 require a non-empty structure.
type Foldable struct {
	Unpack     func(r *Registry, xs Erased, f func(...Erased) Erased) Erased
	FoldLeft   func(r *Registry, xs, state Erased, f func(acc, x Erased) Erased) Erased
	FoldRight  func(r *Registry, xs, state Erased, f func(x, acc Erased) Erased) Erased
	FoldLeft1  func(r *Registry, xs Erased, f func(acc, x Erased) Erased) Erased
	FoldRight1 func(r *Registry, xs Erased, f func(x, acc Erased) Erased) Erased
	Length     func(r *Registry, xs Erased) int
	CountIf    func(r *Registry, xs Erased, pred func(Erased) bool) int
	ForEach    func(r *Registry, xs Erased, f func(Erased))

	// MonadicFoldLeft folds with a step running in the Monad of tag m; the
	// Monad decides whether the remaining steps run.
	MonadicFoldLeft  func(r *Registry, m Tag, xs, state Erased, f func(acc, x Erased) Erased) Erased
	MonadicFoldRight func(r *Registry, m Tag, xs, state Erased, f func(x, acc Erased) Erased) Erased
}

func (Foldable) class() *Class { return FoldableClass }

func (d Foldable) derive() (Definition, bool) {
	var elems func(r *Registry, xs Erased) []Erased
	switch {
	case d.Unpack != nil:
		unpack := d.Unpack
		elems = func(r *Registry, xs Erased) []Erased {
			return unpack(r, xs, func(args ...Erased) Erased {
				return append([]Erased(nil), args...)
			}).([]Erased)
		}
	case d.FoldLeft != nil:
		foldl := d.FoldLeft
		elems = func(r *Registry, xs Erased) []Erased {
			return foldl(r, xs, []Erased(nil), func(acc, x Erased) Erased {
				return append(acc.([]Erased), x)
			}).([]Erased)
		}
	case d.FoldRight != nil:
		foldr := d.FoldRight
		elems = func(r *Registry, xs Erased) []Erased {
			rev := foldr(r, xs, []Erased(nil), func(x, acc Erased) Erased {
				return append(acc.([]Erased), x)
			}).([]Erased)
			for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
				rev[i], rev[j] = rev[j], rev[i]
			}
			return rev
		}
	default:
		return nil, false
	}

	if d.Unpack == nil {
		d.Unpack = func(r *Registry, xs Erased, f func(...Erased) Erased) Erased {
			return f(elems(r, xs)...)
		}
	}
	if d.FoldLeft == nil {
		d.FoldLeft = func(r *Registry, xs, state Erased, f func(acc, x Erased) Erased) Erased {
			for _, x := range elems(r, xs) {
				state = f(state, x)
			}
			return state
		}
	}
	if d.FoldRight == nil {
		d.FoldRight = func(r *Registry, xs, state Erased, f func(x, acc Erased) Erased) Erased {
			es := elems(r, xs)
			for i := len(es) - 1; i >= 0; i-- {
				state = f(es[i], state)
			}
			return state
		}
	}
	if d.FoldLeft1 == nil {
		d.FoldLeft1 = func(r *Registry, xs Erased, f func(acc, x Erased) Erased) Erased {
			es := elems(r, xs)
			if len(es) == 0 {
				precondition("fold_left1", "empty structure")
			}
			state := es[0]
			for _, x := range es[1:] {
				state = f(state, x)
			}
			return state
		}
	}
	if d.FoldRight1 == nil {
		d.FoldRight1 = func(r *Registry, xs Erased, f func(x, acc Erased) Erased) Erased {
			es := elems(r, xs)
			if len(es) == 0 {
				precondition("fold_right1", "empty structure")
			}
			state := es[len(es)-1]
			for i := len(es) - 2; i >= 0; i-- {
				state = f(es[i], state)
			}
			return state
		}
	}
	if d.Length == nil {
		d.Length = func(r *Registry, xs Erased) int { return len(elems(r, xs)) }
	}
	if d.CountIf == nil {
		d.CountIf = func(r *Registry, xs Erased, pred func(Erased) bool) int {
			n := 0
			for _, x := range elems(r, xs) {
				if pred(x) {
					n++
				}
			}
			return n
		}
	}
	if d.ForEach == nil {
		d.ForEach = func(r *Registry, xs Erased, f func(Erased)) {
			for _, x := range elems(r, xs) {
				f(x)
			}
		}
	}
	if d.MonadicFoldLeft == nil {
		d.MonadicFoldLeft = func(r *Registry, m Tag, xs, state Erased, f func(acc, x Erased) Erased) Erased {
			es := elems(r, xs)
			var step func(i int, s Erased) Erased
			step = func(i int, s Erased) Erased {
				if i == len(es) {
					return r.Lift(m, s)
				}
				return r.Chain(f(s, es[i]), func(next Erased) Erased { return step(i+1, next) })
			}
			return step(0, state)
		}
	}
	if d.MonadicFoldRight == nil {
		d.MonadicFoldRight = func(r *Registry, m Tag, xs, state Erased, f func(x, acc Erased) Erased) Erased {
			es := elems(r, xs)
			var step func(i int, s Erased) Erased
			step = func(i int, s Erased) Erased {
				if i < 0 {
					return r.Lift(m, s)
				}
				return r.Chain(f(es[i], s), func(next Erased) Erased { return step(i-1, next) })
			}
			return step(len(es)-1, state)
		}
	}
	return d, true
}

func (r *Registry) foldable(xs Erased) Foldable {
	return resolve[Foldable](r, FoldableClass, TagOf(xs))
}

// Unpack calls f with the elements of xs as arguments.
func (r *Registry) Unpack(xs Erased, f func(...Erased) Erased) Erased {
	return r.foldable(xs).Unpack(r, xs, f)
}

// Elements returns the elements of xs in order.
func (r *Registry) Elements(xs Erased) []Erased {
	return r.Unpack(xs, func(args ...Erased) Erased {
		return append([]Erased(nil), args...)
	}).([]Erased)
}

// FoldLeft folds xs from the left: f(f(f(state, x1), x2), x3).
func (r *Registry) FoldLeft(xs, state Erased, f func(acc, x Erased) Erased) Erased {
	return r.foldable(xs).FoldLeft(r, xs, state, f)
}

// FoldRight folds xs from the right: f(x1, f(x2, f(x3, state))).
func (r *Registry) FoldRight(xs, state Erased, f func(x, acc Erased) Erased) Erased {
	return r.foldable(xs).FoldRight(r, xs, state, f)
}

// FoldLeft1 folds xs from the left using its first element as the state.
// Panics with [*PreconditionError] if xs is empty.
func (r *Registry) FoldLeft1(xs Erased, f func(acc, x Erased) Erased) Erased {
	return r.foldable(xs).FoldLeft1(r, xs, f)
}

// FoldRight1 folds xs from the right using its last element as the state.
// Panics with [*PreconditionError] if xs is empty.
func (r *Registry) FoldRight1(xs Erased, f func(x, acc Erased) Erased) Erased {
	return r.foldable(xs).FoldRight1(r, xs, f)
}

// Fold is FoldLeft.
func (r *Registry) Fold(xs, state Erased, f func(acc, x Erased) Erased) Erased {
	return r.FoldLeft(xs, state, f)
}

// ReverseFold folds xs from the right with an accumulator-first f.
func (r *Registry) ReverseFold(xs, state Erased, f func(acc, x Erased) Erased) Erased {
	return r.FoldRight(xs, state, func(x, acc Erased) Erased { return f(acc, x) })
}

// MonadicFoldLeft folds xs from the left with a step returning a value of
// the Monad tagged m.
func (r *Registry) MonadicFoldLeft(m Tag, xs, state Erased, f func(acc, x Erased) Erased) Erased {
	return r.foldable(xs).MonadicFoldLeft(r, m, xs, state, f)
}

// MonadicFoldRight folds xs from the right with a step returning a value
// of the Monad tagged m.
func (r *Registry) MonadicFoldRight(m Tag, xs, state Erased, f func(x, acc Erased) Erased) Erased {
	return r.foldable(xs).MonadicFoldRight(r, m, xs, state, f)
}

// Length returns the number of elements of xs.
func (r *Registry) Length(xs Erased) int {
	return r.foldable(xs).Length(r, xs)
}

// CountIf returns the number of elements of xs satisfying pred.
func (r *Registry) CountIf(xs Erased, pred func(Erased) bool) int {
	return r.foldable(xs).CountIf(r, xs, pred)
}

// Count returns the number of elements of xs equal to v.
func (r *Registry) Count(xs, v Erased) int {
	return r.CountIf(xs, r.EqualTo(v))
}

// ForEach calls f on every element of xs, in order.
func (r *Registry) ForEach(xs Erased, f func(Erased)) {
	r.foldable(xs).ForEach(r, xs, f)
}

// Sum adds the elements of xs in their CommonType. The sum of no
// elements is int(0).
func (r *Registry) Sum(xs Erased) Erased {
	if r.Length(xs) == 0 {
		return 0
	}
	return r.FoldLeft1(xs, r.Add)
}

// Product multiplies the elements of xs in their CommonType. The product
// of no elements is int(1).
func (r *Registry) Product(xs Erased) Erased {
	if r.Length(xs) == 0 {
		return 1
	}
	return r.FoldLeft1(xs, r.Mul)
}

// MaximumBy returns the greatest element of xs under less, the earliest
// one among equals. Panics with [*PreconditionError] if xs is empty.
func (r *Registry) MaximumBy(xs Erased, less func(x, y Erased) bool) Erased {
	return r.FoldLeft1(xs, func(acc, x Erased) Erased {
		if less(acc, x) {
			return x
		}
		return acc
	})
}

// MinimumBy returns the least element of xs under less, the earliest one
// among equals. Panics with [*PreconditionError] if xs is empty.
func (r *Registry) MinimumBy(xs Erased, less func(x, y Erased) bool) Erased {
	return r.FoldLeft1(xs, func(acc, x Erased) Erased {
		if less(x, acc) {
			return x
		}
		return acc
	})
}

// Maximum is MaximumBy with [Registry.Less].
func (r *Registry) Maximum(xs Erased) Erased { return r.MaximumBy(xs, r.Less) }

// Minimum is MinimumBy with [Registry.Less].
func (r *Registry) Minimum(xs Erased) Erased { return r.MinimumBy(xs, r.Less) }
