// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package typeclass

// Applicative lifts values and applies lifted functions.
// An Applicative instance requires a Functor instance for the same tag.
//
// Minimal definition: Lift and Ap.
// Functions inside the structure passed to Ap must be func(Erased) Erased.
type Applicative struct {
	Lift   func(r *Registry, x Erased) Erased
	Ap     func(r *Registry, fs, xs Erased) Erased
	LiftA2 func(r *Registry, f func(x, y Erased) Erased, xs, ys Erased) Erased
}

func (Applicative) class() *Class { return ApplicativeClass }

func (d Applicative) derive() (Definition, bool) {
	if d.Lift == nil || d.Ap == nil {
		return nil, false
	}
	if d.LiftA2 == nil {
		ap := d.Ap
		d.LiftA2 = func(r *Registry, f func(x, y Erased) Erased, xs, ys Erased) Erased {
			curried := r.Transform(xs, func(x Erased) Erased {
				return func(y Erased) Erased { return f(x, y) }
			})
			return ap(r, curried, ys)
		}
	}
	return d, true
}

func (r *Registry) applicative(t Tag) Applicative {
	return resolve[Applicative](r, ApplicativeClass, t)
}

// Lift embeds x into the applicative structure of tag t.
func (r *Registry) Lift(t Tag, x Erased) Erased {
	return r.applicative(t).Lift(r, x)
}

// Ap applies the functions held by fs to the values held by xs.
func (r *Registry) Ap(fs, xs Erased) Erased {
	return r.applicative(TagOf(fs)).Ap(r, fs, xs)
}

// LiftA2 combines xs and ys with the binary function f.
func (r *Registry) LiftA2(f func(x, y Erased) Erased, xs, ys Erased) Erased {
	return r.applicative(TagOf(xs)).LiftA2(r, f, xs, ys)
}
