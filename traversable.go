// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package typeclass

// Traversable maps an effectful function over a structure, collecting the
// effects in the Applicative of tag a. A Traversable instance requires a
// Functor instance for the same tag.
//
// Minimal definition: Traverse or SequenceA.
type Traversable struct {
	Traverse  func(r *Registry, a Tag, xs Erased, f func(Erased) Erased) Erased
	SequenceA func(r *Registry, a Tag, xs Erased) Erased
}

func (Traversable) class() *Class { return TraversableClass }

func (d Traversable) derive() (Definition, bool) {
	switch {
	case d.Traverse == nil && d.SequenceA == nil:
		return nil, false
	case d.Traverse == nil:
		sequence := d.SequenceA
		d.Traverse = func(r *Registry, a Tag, xs Erased, f func(Erased) Erased) Erased {
			return sequence(r, a, r.Transform(xs, f))
		}
	case d.SequenceA == nil:
		traverse := d.Traverse
		d.SequenceA = func(r *Registry, a Tag, xs Erased) Erased {
			return traverse(r, a, xs, identity)
		}
	}
	return d, true
}

func (r *Registry) traversable(xs Erased) Traversable {
	return resolve[Traversable](r, TraversableClass, TagOf(xs))
}

// Traverse applies f to every element of xs and collects the results
// inside the Applicative of tag a.
func (r *Registry) Traverse(a Tag, xs Erased, f func(Erased) Erased) Erased {
	return r.traversable(xs).Traverse(r, a, xs, f)
}

// SequenceA turns a structure of a-values into an a-value of a structure.
func (r *Registry) SequenceA(a Tag, xs Erased) Erased {
	return r.traversable(xs).SequenceA(r, a, xs)
}
