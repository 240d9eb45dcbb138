// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package typeclass

// MonadPlus is a Monad with a neutral element and an associative concat.
//
// Minimal definition: Empty and Concat.
// Derived operations: Prepend, Append, Filter.
type MonadPlus struct {
	Empty   func(r *Registry) Erased
	Concat  func(r *Registry, xs, ys Erased) Erased
	Prepend func(r *Registry, xs, x Erased) Erased
	Append  func(r *Registry, xs, x Erased) Erased
	Filter  func(r *Registry, xs Erased, pred func(Erased) bool) Erased
}

func (MonadPlus) class() *Class { return MonadPlusClass }

func (d MonadPlus) derive() (Definition, bool) {
	if d.Empty == nil || d.Concat == nil {
		return nil, false
	}
	empty, concat := d.Empty, d.Concat
	if d.Prepend == nil {
		d.Prepend = func(r *Registry, xs, x Erased) Erased {
			return concat(r, r.Lift(TagOf(xs), x), xs)
		}
	}
	if d.Append == nil {
		d.Append = func(r *Registry, xs, x Erased) Erased {
			return concat(r, xs, r.Lift(TagOf(xs), x))
		}
	}
	if d.Filter == nil {
		d.Filter = func(r *Registry, xs Erased, pred func(Erased) bool) Erased {
			t := TagOf(xs)
			return r.Chain(xs, func(x Erased) Erased {
				if pred(x) {
					return r.Lift(t, x)
				}
				return empty(r)
			})
		}
	}
	return d, true
}

func (r *Registry) monadPlus(t Tag) MonadPlus {
	return resolve[MonadPlus](r, MonadPlusClass, t)
}

// Empty returns the neutral element of tag t.
func (r *Registry) Empty(t Tag) Erased {
	return r.monadPlus(t).Empty(r)
}

// Concat combines xs and ys.
func (r *Registry) Concat(xs, ys Erased) Erased {
	return r.monadPlus(TagOf(xs)).Concat(r, xs, ys)
}

// Prepend adds x in front of xs.
func (r *Registry) Prepend(xs, x Erased) Erased {
	return r.monadPlus(TagOf(xs)).Prepend(r, xs, x)
}

// Append adds x after xs.
func (r *Registry) Append(xs, x Erased) Erased {
	return r.monadPlus(TagOf(xs)).Append(r, xs, x)
}

// Filter keeps the elements of xs satisfying pred.
func (r *Registry) Filter(xs Erased, pred func(Erased) bool) Erased {
	return r.monadPlus(TagOf(xs)).Filter(r, xs, pred)
}

// Remove drops the elements of xs satisfying pred.
func (r *Registry) Remove(xs Erased, pred func(Erased) bool) Erased {
	return r.Filter(xs, func(x Erased) bool { return !pred(x) })
}

// Partition splits xs into the elements satisfying pred and the rest.
func (r *Registry) Partition(xs Erased, pred func(Erased) bool) Pair {
	return MakePair(r.Filter(xs, pred), r.Remove(xs, pred))
}
