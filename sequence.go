// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package typeclass

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// SequenceTag is the family tag of [Sequence] values. A Sequence of n
// elements is tagged SequenceTag.Sized(n).
var SequenceTag = NewTag("Sequence")

// Sequence is a fixed-length, heterogeneous, immutable ordered collection.
type Sequence struct {
	elems []Erased
}

// MakeSequence returns a Sequence of the given elements.
func MakeSequence(elems ...Erased) Sequence {
	return Sequence{elems: slices.Clone(elems)}
}

// seqOf wraps elems without copying; elems must not be modified afterwards.
func seqOf(elems []Erased) Sequence {
	return Sequence{elems: elems}
}

// Tag implements [Tagged].
func (s Sequence) Tag() Tag { return SequenceTag.Sized(len(s.elems)) }

// Len returns the number of elements.
func (s Sequence) Len() int { return len(s.elems) }

// At returns the i-th element.
// Panics with [*PreconditionError] if i is out of range.
func (s Sequence) At(i int) Erased {
	if i < 0 || i >= len(s.elems) {
		precondition("at", "index "+strconv.Itoa(i)+" out of range for "+s.Tag().String())
	}
	return s.elems[i]
}

// Elements returns a copy of the elements.
func (s Sequence) Elements() []Erased {
	return slices.Clone(s.elems)
}

// TakeWhile returns the longest prefix of s whose elements satisfy pred.
func (s Sequence) TakeWhile(pred func(Erased) bool) Sequence {
	i := 0
	for i < len(s.elems) && pred(s.elems[i]) {
		i++
	}
	return seqOf(s.elems[:i:i])
}

// Take returns the first n elements of s, or s if it is shorter.
func (s Sequence) Take(n int) Sequence {
	n = max(0, min(n, len(s.elems)))
	return seqOf(s.elems[:n:n])
}

// Reverse returns the elements of s in reverse order.
func (s Sequence) Reverse() Sequence {
	out := slices.Clone(s.elems)
	slices.Reverse(out)
	return seqOf(out)
}

func (s Sequence) String() string {
	parts := make([]string, len(s.elems))
	for i, e := range s.elems {
		parts[i] = fmt.Sprint(e)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func sequenceOf(op string, v Erased) Sequence {
	s, ok := v.(Sequence)
	if !ok {
		precondition(op, fmt.Sprintf("%T is not a Sequence", v))
	}
	return s
}

// SequenceModel declares the instances of [Sequence]. Instances are
// registered for the family, so they apply to sequences of every length.
func SequenceModel(b *Builder) {
	t := SequenceTag
	it := Iterable{
		Head:    func(_ *Registry, xs Erased) Erased { return xs.(Sequence).elems[0] },
		Tail:    func(_ *Registry, xs Erased) Erased { return seqOf(xs.(Sequence).elems[1:]) },
		IsEmpty: func(_ *Registry, xs Erased) bool { return len(xs.(Sequence).elems) == 0 },
		At:      func(_ *Registry, xs Erased, n int) Erased { return xs.(Sequence).At(n) },
		Drop: func(_ *Registry, xs Erased, n int) Erased {
			es := xs.(Sequence).elems
			return seqOf(es[max(0, min(n, len(es))):])
		},
	}
	b.Instance(it, t)
	b.Instance(ComparableFromIterable(it), t, t)
	b.Instance(OrderableFromIterable(it), t, t)
	b.Instance(SearchableFromIterable(it), t)

	b.Instance(Foldable{
		Unpack: func(_ *Registry, xs Erased, f func(...Erased) Erased) Erased {
			return f(xs.(Sequence).Elements()...)
		},
		Length: func(_ *Registry, xs Erased) int { return len(xs.(Sequence).elems) },
	}, t)

	b.Instance(Functor{
		Transform: func(_ *Registry, xs Erased, f func(Erased) Erased) Erased {
			es := xs.(Sequence).elems
			out := make([]Erased, len(es))
			for i, x := range es {
				out[i] = f(x)
			}
			return seqOf(out)
		},
	}, t)

	b.Instance(Applicative{
		Lift: func(_ *Registry, x Erased) Erased { return seqOf([]Erased{x}) },
		Ap: func(_ *Registry, fs, xs Erased) Erased {
			sf, sx := fs.(Sequence).elems, sequenceOf("ap", xs).elems
			out := make([]Erased, 0, len(sf)*len(sx))
			for _, f := range sf {
				for _, x := range sx {
					out = append(out, apply("ap", f, x))
				}
			}
			return seqOf(out)
		},
	}, t)

	b.Instance(Monad{
		Flatten: func(_ *Registry, mm Erased) Erased {
			var out []Erased
			for _, inner := range mm.(Sequence).elems {
				out = append(out, sequenceOf("flatten", inner).elems...)
			}
			return seqOf(out)
		},
	}, t)

	b.Instance(MonadPlus{
		Empty: func(*Registry) Erased { return seqOf(nil) },
		Concat: func(_ *Registry, xs, ys Erased) Erased {
			return seqOf(slices.Concat(xs.(Sequence).elems, sequenceOf("concat", ys).elems))
		},
	}, t)

	b.Instance(Traversable{
		Traverse: func(r *Registry, a Tag, xs Erased, f func(Erased) Erased) Erased {
			cons := func(x, rest Erased) Erased {
				return seqOf(slices.Concat([]Erased{x}, rest.(Sequence).elems))
			}
			return r.FoldRight(xs, r.Lift(a, seqOf(nil)), func(x, acc Erased) Erased {
				return r.LiftA2(cons, f(x), acc)
			})
		},
	}, t)
}
