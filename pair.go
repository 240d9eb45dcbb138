// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package typeclass

import "fmt"

// PairTag is the tag of [Pair] values.
var PairTag = NewTag("Pair")

// Pair holds two values. A Sequence of Pairs is the map-like structure
// searched by [Registry.Lookup].
type Pair struct {
	Fst Erased
	Snd Erased
}

// MakePair returns the Pair (fst, snd).
func MakePair(fst, snd Erased) Pair {
	return Pair{Fst: fst, Snd: snd}
}

// Tag implements [Tagged].
func (Pair) Tag() Tag { return PairTag }

// First returns the first component.
func (p Pair) First() Erased { return p.Fst }

// Second returns the second component.
func (p Pair) Second() Erased { return p.Snd }

func (p Pair) String() string { return fmt.Sprintf("(%v, %v)", p.Fst, p.Snd) }

// PairModel declares the instances of [Pair]. Pairs compare and order
// component-wise, first component first.
func PairModel(b *Builder) {
	t := PairTag
	b.Instance(Comparable{
		Equal: func(r *Registry, x, y Erased) bool {
			px, py := x.(Pair), y.(Pair)
			return r.Equal(px.Fst, py.Fst) && r.Equal(px.Snd, py.Snd)
		},
	}, t, t)
	b.Instance(Orderable{
		Less: func(r *Registry, x, y Erased) bool {
			px, py := x.(Pair), y.(Pair)
			if r.Less(px.Fst, py.Fst) {
				return true
			}
			if r.Less(py.Fst, px.Fst) {
				return false
			}
			return r.Less(px.Snd, py.Snd)
		},
	}, t, t)
	b.Instance(Foldable{
		Unpack: func(_ *Registry, xs Erased, f func(...Erased) Erased) Erased {
			p := xs.(Pair)
			return f(p.Fst, p.Snd)
		},
	}, t)
}
