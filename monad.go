// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package typeclass

// Monad sequences computations whose result decides the next one.
// A Monad instance requires an Applicative instance for the same tag,
// which supplies the unit (Lift).
//
// Minimal definition: Flatten or Chain.
// Chain is derived as Flatten after Transform; Flatten as Chain with the
// identity. Then is Chain ignoring the first result.
type Monad struct {
	Flatten func(r *Registry, mm Erased) Erased
	Chain   func(r *Registry, m Erased, f func(Erased) Erased) Erased
	Then    func(r *Registry, m, n Erased) Erased
}

func (Monad) class() *Class { return MonadClass }

func (d Monad) derive() (Definition, bool) {
	switch {
	case d.Flatten == nil && d.Chain == nil:
		return nil, false
	case d.Chain == nil:
		flatten := d.Flatten
		d.Chain = func(r *Registry, m Erased, f func(Erased) Erased) Erased {
			return flatten(r, r.Transform(m, f))
		}
	case d.Flatten == nil:
		chain := d.Chain
		d.Flatten = func(r *Registry, mm Erased) Erased {
			return chain(r, mm, identity)
		}
	}
	if d.Then == nil {
		chain := d.Chain
		d.Then = func(r *Registry, m, n Erased) Erased {
			return chain(r, m, constant(n))
		}
	}
	return d, true
}

func (r *Registry) monad(m Erased) Monad {
	return resolve[Monad](r, MonadClass, TagOf(m))
}

// Flatten collapses one level of monadic nesting.
func (r *Registry) Flatten(mm Erased) Erased {
	return r.monad(mm).Flatten(r, mm)
}

// Chain sequences m with f (monadic bind).
func (r *Registry) Chain(m Erased, f func(Erased) Erased) Erased {
	return r.monad(m).Chain(r, m, f)
}

// Then sequences m with n, discarding the result of m.
func (r *Registry) Then(m, n Erased) Erased {
	return r.monad(m).Then(r, m, n)
}

// Compose returns the Kleisli composition of f after g.
func (r *Registry) Compose(f, g func(Erased) Erased) func(Erased) Erased {
	return func(x Erased) Erased {
		return r.Chain(g(x), f)
	}
}
