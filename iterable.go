// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package typeclass

import "strconv"

// Iterable walks a structure element by element.
//
// Minimal definition: Head, Tail and IsEmpty.
// Derived operations: At, Last, Drop, DropWhile, ForEach.
//
// Head, Tail, At and Last are preconditioned on the element existing and
// panic with [*PreconditionError] otherwise.
type Iterable struct {
	Head      func(r *Registry, xs Erased) Erased
	Tail      func(r *Registry, xs Erased) Erased
	IsEmpty   func(r *Registry, xs Erased) bool
	At        func(r *Registry, xs Erased, n int) Erased
	Last      func(r *Registry, xs Erased) Erased
	Drop      func(r *Registry, xs Erased, n int) Erased
	DropWhile func(r *Registry, xs Erased, pred func(Erased) bool) Erased
	ForEach   func(r *Registry, xs Erased, f func(Erased))
}

func (Iterable) class() *Class { return IterableClass }

func (d Iterable) derive() (Definition, bool) {
	if d.Head == nil || d.Tail == nil || d.IsEmpty == nil {
		return nil, false
	}
	head, tail, empty := d.Head, d.Tail, d.IsEmpty
	d.Head = func(r *Registry, xs Erased) Erased {
		if empty(r, xs) {
			precondition("head", "empty structure")
		}
		return head(r, xs)
	}
	d.Tail = func(r *Registry, xs Erased) Erased {
		if empty(r, xs) {
			precondition("tail", "empty structure")
		}
		return tail(r, xs)
	}
	if d.At == nil {
		d.At = func(r *Registry, xs Erased, n int) Erased {
			if n < 0 {
				precondition("at", "negative index "+strconv.Itoa(n))
			}
			for i := 0; i < n; i++ {
				if empty(r, xs) {
					precondition("at", "index "+strconv.Itoa(n)+" out of range")
				}
				xs = tail(r, xs)
			}
			if empty(r, xs) {
				precondition("at", "index "+strconv.Itoa(n)+" out of range")
			}
			return head(r, xs)
		}
	}
	if d.Last == nil {
		d.Last = func(r *Registry, xs Erased) Erased {
			if empty(r, xs) {
				precondition("last", "empty structure")
			}
			for rest := tail(r, xs); !empty(r, rest); rest = tail(r, rest) {
				xs = rest
			}
			return head(r, xs)
		}
	}
	if d.Drop == nil {
		d.Drop = func(r *Registry, xs Erased, n int) Erased {
			for ; n > 0 && !empty(r, xs); n-- {
				xs = tail(r, xs)
			}
			return xs
		}
	}
	if d.DropWhile == nil {
		d.DropWhile = func(r *Registry, xs Erased, pred func(Erased) bool) Erased {
			for !empty(r, xs) && pred(head(r, xs)) {
				xs = tail(r, xs)
			}
			return xs
		}
	}
	if d.ForEach == nil {
		d.ForEach = func(r *Registry, xs Erased, f func(Erased)) {
			for ; !empty(r, xs); xs = tail(r, xs) {
				f(head(r, xs))
			}
		}
	}
	return d, true
}

func (r *Registry) iterable(xs Erased) Iterable {
	return resolve[Iterable](r, IterableClass, TagOf(xs))
}

// Head returns the first element of xs.
func (r *Registry) Head(xs Erased) Erased { return r.iterable(xs).Head(r, xs) }

// Tail returns xs without its first element.
func (r *Registry) Tail(xs Erased) Erased { return r.iterable(xs).Tail(r, xs) }

// IsEmpty reports whether xs has no elements.
func (r *Registry) IsEmpty(xs Erased) bool { return r.iterable(xs).IsEmpty(r, xs) }

// At returns the n-th element of xs, counting from zero.
func (r *Registry) At(xs Erased, n int) Erased { return r.iterable(xs).At(r, xs, n) }

// Last returns the last element of xs.
func (r *Registry) Last(xs Erased) Erased { return r.iterable(xs).Last(r, xs) }

// Drop returns xs without its first n elements, or empty if xs is shorter.
func (r *Registry) Drop(xs Erased, n int) Erased { return r.iterable(xs).Drop(r, xs, n) }

// DropWhile drops the leading elements of xs satisfying pred.
func (r *Registry) DropWhile(xs Erased, pred func(Erased) bool) Erased {
	return r.iterable(xs).DropWhile(r, xs, pred)
}

// Composition helpers. An external model that only supplies Iterable
// primitives gets the remaining instances from these; each uses the
// primitives of it directly and dispatches only for element operations.

// FoldableFromIterable returns a Foldable folding left along it.
func FoldableFromIterable(it Iterable) Foldable {
	return Foldable{
		FoldLeft: func(r *Registry, xs, state Erased, f func(acc, x Erased) Erased) Erased {
			for ; !it.IsEmpty(r, xs); xs = it.Tail(r, xs) {
				state = f(state, it.Head(r, xs))
			}
			return state
		},
	}
}

// SearchableFromIterable returns a Searchable that stops at the first match.
func SearchableFromIterable(it Iterable) Searchable {
	return Searchable{
		FindIf: func(r *Registry, xs Erased, pred func(Erased) bool) Optional {
			for ; !it.IsEmpty(r, xs); xs = it.Tail(r, xs) {
				if x := it.Head(r, xs); pred(x) {
					return Just(x)
				}
			}
			return Nothing()
		},
	}
}

// ComparableFromIterable returns element-wise equality: equal lengths and
// equal elements position by position.
func ComparableFromIterable(it Iterable) Comparable {
	return Comparable{
		Equal: func(r *Registry, xs, ys Erased) bool {
			for {
				ex, ey := it.IsEmpty(r, xs), it.IsEmpty(r, ys)
				if ex || ey {
					return ex && ey
				}
				if r.NotEqual(it.Head(r, xs), it.Head(r, ys)) {
					return false
				}
				xs, ys = it.Tail(r, xs), it.Tail(r, ys)
			}
		},
	}
}

// OrderableFromIterable returns the lexicographic order: the first
// position where the elements differ decides, and a strict prefix orders
// first.
func OrderableFromIterable(it Iterable) Orderable {
	return Orderable{
		Less: func(r *Registry, xs, ys Erased) bool {
			for {
				if it.IsEmpty(r, ys) {
					return false
				}
				if it.IsEmpty(r, xs) {
					return true
				}
				hx, hy := it.Head(r, xs), it.Head(r, ys)
				if r.Less(hx, hy) {
					return true
				}
				if r.Less(hy, hx) {
					return false
				}
				xs, ys = it.Tail(r, xs), it.Tail(r, ys)
			}
		},
	}
}
