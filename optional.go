// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package typeclass

import "fmt"

// OptionalTag is the tag of [Optional] values.
var OptionalTag = NewTag("Optional")

// Optional is either Nothing or Just a value.
type Optional struct {
	just bool
	val  Erased
}

// Just returns an Optional holding v.
func Just(v Erased) Optional {
	return Optional{just: true, val: v}
}

// Nothing returns the empty Optional.
func Nothing() Optional {
	return Optional{}
}

// Tag implements [Tagged].
func (Optional) Tag() Tag { return OptionalTag }

// IsJust returns true if o holds a value.
func (o Optional) IsJust() bool { return o.just }

// IsNothing returns true if o is empty.
func (o Optional) IsNothing() bool { return !o.just }

// Get returns the value and true, or nil and false.
func (o Optional) Get() (Erased, bool) {
	return o.val, o.just
}

// FromJust returns the held value.
// Panics with [*PreconditionError] if o is Nothing.
func (o Optional) FromJust() Erased {
	if !o.just {
		precondition("from_just", "Optional is Nothing")
	}
	return o.val
}

// FromMaybe returns the held value, or def if o is Nothing.
func (o Optional) FromMaybe(def Erased) Erased {
	if o.just {
		return o.val
	}
	return def
}

func (o Optional) String() string {
	if o.just {
		return fmt.Sprintf("Just(%v)", o.val)
	}
	return "Nothing"
}

// MatchOptional pattern matches on o, calling onNothing or onJust.
func MatchOptional[T any](o Optional, onNothing func() T, onJust func(Erased) T) T {
	if o.just {
		return onJust(o.val)
	}
	return onNothing()
}

// OnlyWhen returns Just(f(x)) if pred(x) holds and Nothing otherwise.
// f is not called when pred fails.
func OnlyWhen(pred func(Erased) bool, f func(Erased) Erased, x Erased) Optional {
	if !pred(x) {
		return Nothing()
	}
	return Just(f(x))
}

func optionalOf(op string, v Erased) Optional {
	o, ok := v.(Optional)
	if !ok {
		precondition(op, fmt.Sprintf("%T is not an Optional", v))
	}
	return o
}

func justOf(v Erased) Erased { return Just(v) }

// OptionalModel declares the instances of [Optional].
func OptionalModel(b *Builder) {
	t := OptionalTag
	b.Instance(Comparable{
		Equal: func(r *Registry, x, y Erased) bool {
			ox, oy := x.(Optional), y.(Optional)
			if ox.just != oy.just {
				return false
			}
			return !ox.just || r.Equal(ox.val, oy.val)
		},
	}, t, t)

	b.Instance(Orderable{
		Less: func(r *Registry, x, y Erased) bool {
			ox, oy := x.(Optional), y.(Optional)
			if !oy.just {
				return false
			}
			return !ox.just || r.Less(ox.val, oy.val)
		},
	}, t, t)

	b.Instance(Functor{
		Transform: func(_ *Registry, xs Erased, f func(Erased) Erased) Erased {
			o := xs.(Optional)
			if !o.just {
				return o
			}
			return Just(f(o.val))
		},
	}, t)

	b.Instance(Applicative{
		Lift: func(_ *Registry, x Erased) Erased { return Just(x) },
		Ap: func(_ *Registry, fs, xs Erased) Erased {
			of, ox := fs.(Optional), optionalOf("ap", xs)
			if !of.just || !ox.just {
				return Nothing()
			}
			return Just(apply("ap", of.val, ox.val))
		},
	}, t)

	b.Instance(Monad{
		Flatten: func(_ *Registry, mm Erased) Erased {
			o := mm.(Optional)
			if !o.just {
				return o
			}
			return optionalOf("flatten", o.val)
		},
	}, t)

	b.Instance(MonadPlus{
		Empty: func(*Registry) Erased { return Nothing() },
		Concat: func(_ *Registry, xs, ys Erased) Erased {
			if ox := xs.(Optional); ox.just {
				return ox
			}
			return optionalOf("concat", ys)
		},
	}, t)

	b.Instance(Foldable{
		Unpack: func(_ *Registry, xs Erased, f func(...Erased) Erased) Erased {
			if o := xs.(Optional); o.just {
				return f(o.val)
			}
			return f()
		},
	}, t)

	b.Instance(Searchable{
		FindIf: func(_ *Registry, xs Erased, pred func(Erased) bool) Optional {
			o := xs.(Optional)
			if o.just && pred(o.val) {
				return o
			}
			return Nothing()
		},
	}, t)

	b.Instance(Traversable{
		Traverse: func(r *Registry, a Tag, xs Erased, f func(Erased) Erased) Erased {
			o := xs.(Optional)
			if !o.just {
				return r.Lift(a, o)
			}
			return r.Transform(f(o.val), justOf)
		},
	}, t)
}
