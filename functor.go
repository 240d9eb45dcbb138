// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package typeclass

import "fmt"

// Functor is the structure-preserving map dictionary.
//
// Minimal definition: Transform or AdjustIf.
// Derived operations: the other of the two, ReplaceIf, Fill.
type Functor struct {
	Transform func(r *Registry, xs Erased, f func(Erased) Erased) Erased
	AdjustIf  func(r *Registry, xs Erased, pred func(Erased) bool, f func(Erased) Erased) Erased
	ReplaceIf func(r *Registry, xs Erased, pred func(Erased) bool, v Erased) Erased
	Fill      func(r *Registry, xs, v Erased) Erased
}

func (Functor) class() *Class { return FunctorClass }

func (d Functor) derive() (Definition, bool) {
	switch {
	case d.Transform == nil && d.AdjustIf == nil:
		return nil, false
	case d.Transform == nil:
		adjust := d.AdjustIf
		d.Transform = func(r *Registry, xs Erased, f func(Erased) Erased) Erased {
			return adjust(r, xs, always, f)
		}
	case d.AdjustIf == nil:
		transform := d.Transform
		d.AdjustIf = func(r *Registry, xs Erased, pred func(Erased) bool, f func(Erased) Erased) Erased {
			return transform(r, xs, func(x Erased) Erased {
				if pred(x) {
					return f(x)
				}
				return x
			})
		}
	}
	adjust, transform := d.AdjustIf, d.Transform
	if d.ReplaceIf == nil {
		d.ReplaceIf = func(r *Registry, xs Erased, pred func(Erased) bool, v Erased) Erased {
			return adjust(r, xs, pred, constant(v))
		}
	}
	if d.Fill == nil {
		d.Fill = func(r *Registry, xs, v Erased) Erased {
			return transform(r, xs, constant(v))
		}
	}
	return d, true
}

func always(Erased) bool { return true }

func constant(v Erased) func(Erased) Erased {
	return func(Erased) Erased { return v }
}

// apply calls f, which must be a func(Erased) Erased, with x.
func apply(op string, f, x Erased) Erased {
	fn, ok := f.(func(Erased) Erased)
	if !ok {
		precondition(op, fmt.Sprintf("%T is not a func(Erased) Erased", f))
	}
	return fn(x)
}

func (r *Registry) functor(xs Erased) Functor {
	return resolve[Functor](r, FunctorClass, TagOf(xs))
}

// Transform maps f over the elements of xs.
func (r *Registry) Transform(xs Erased, f func(Erased) Erased) Erased {
	return r.functor(xs).Transform(r, xs, f)
}

// AdjustIf applies f to the elements of xs satisfying pred.
func (r *Registry) AdjustIf(xs Erased, pred func(Erased) bool, f func(Erased) Erased) Erased {
	return r.functor(xs).AdjustIf(r, xs, pred, f)
}

// Adjust applies f to the elements of xs equal to v.
func (r *Registry) Adjust(xs, v Erased, f func(Erased) Erased) Erased {
	return r.AdjustIf(xs, r.EqualTo(v), f)
}

// ReplaceIf replaces the elements of xs satisfying pred by v.
func (r *Registry) ReplaceIf(xs Erased, pred func(Erased) bool, v Erased) Erased {
	return r.functor(xs).ReplaceIf(r, xs, pred, v)
}

// Replace replaces the elements of xs equal to old by v.
func (r *Registry) Replace(xs, old, v Erased) Erased {
	return r.ReplaceIf(xs, r.EqualTo(old), v)
}

// Fill replaces every element of xs by v.
func (r *Registry) Fill(xs, v Erased) Erased {
	return r.functor(xs).Fill(r, xs, v)
}
