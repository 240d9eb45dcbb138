// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package typeclass

import "fmt"

// EitherTag is the tag of [Either] values.
var EitherTag = NewTag("Either")

// Either represents a value that is either Left (error) or Right (success).
type Either struct {
	isRight bool
	left    Erased
	right   Erased
}

// Left creates a Left (error) value.
func Left(e Erased) Either {
	return Either{left: e}
}

// Right creates a Right (success) value.
func Right(a Erased) Either {
	return Either{isRight: true, right: a}
}

// Tag implements [Tagged].
func (Either) Tag() Tag { return EitherTag }

// IsRight returns true if this is a Right value.
func (e Either) IsRight() bool { return e.isRight }

// IsLeft returns true if this is a Left value.
func (e Either) IsLeft() bool { return !e.isRight }

// GetRight returns the Right value and true, or nil and false.
func (e Either) GetRight() (Erased, bool) {
	if e.isRight {
		return e.right, true
	}
	return nil, false
}

// GetLeft returns the Left value and true, or nil and false.
func (e Either) GetLeft() (Erased, bool) {
	if !e.isRight {
		return e.left, true
	}
	return nil, false
}

func (e Either) String() string {
	if e.isRight {
		return fmt.Sprintf("Right(%v)", e.right)
	}
	return fmt.Sprintf("Left(%v)", e.left)
}

// MatchEither pattern matches on the Either, calling onLeft or onRight.
func MatchEither[T any](e Either, onLeft func(Erased) T, onRight func(Erased) T) T {
	if e.isRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}

func eitherOf(op string, v Erased) Either {
	e, ok := v.(Either)
	if !ok {
		precondition(op, fmt.Sprintf("%T is not an Either", v))
	}
	return e
}

func rightOf(v Erased) Erased { return Right(v) }

// EitherModel declares the instances of [Either].
// Every Left orders before every Right; the first Left short-circuits Ap
// and Chain.
func EitherModel(b *Builder) {
	t := EitherTag
	b.Instance(Comparable{
		Equal: func(r *Registry, x, y Erased) bool {
			ex, ey := x.(Either), y.(Either)
			switch {
			case ex.isRight != ey.isRight:
				return false
			case ex.isRight:
				return r.Equal(ex.right, ey.right)
			}
			return r.Equal(ex.left, ey.left)
		},
	}, t, t)

	b.Instance(Orderable{
		Less: func(r *Registry, x, y Erased) bool {
			ex, ey := x.(Either), y.(Either)
			switch {
			case ex.isRight != ey.isRight:
				return ey.isRight
			case ex.isRight:
				return r.Less(ex.right, ey.right)
			}
			return r.Less(ex.left, ey.left)
		},
	}, t, t)

	b.Instance(Functor{
		Transform: func(_ *Registry, xs Erased, f func(Erased) Erased) Erased {
			e := xs.(Either)
			if !e.isRight {
				return e
			}
			return Right(f(e.right))
		},
	}, t)

	b.Instance(Applicative{
		Lift: func(_ *Registry, x Erased) Erased { return Right(x) },
		Ap: func(_ *Registry, fs, xs Erased) Erased {
			ef, ex := fs.(Either), eitherOf("ap", xs)
			switch {
			case !ef.isRight:
				return ef
			case !ex.isRight:
				return ex
			}
			return Right(apply("ap", ef.right, ex.right))
		},
	}, t)

	b.Instance(Monad{
		Chain: func(_ *Registry, m Erased, f func(Erased) Erased) Erased {
			e := m.(Either)
			if !e.isRight {
				return e
			}
			return eitherOf("chain", f(e.right))
		},
	}, t)

	b.Instance(Foldable{
		Unpack: func(_ *Registry, xs Erased, f func(...Erased) Erased) Erased {
			if e := xs.(Either); e.isRight {
				return f(e.right)
			}
			return f()
		},
	}, t)

	b.Instance(Traversable{
		Traverse: func(r *Registry, a Tag, xs Erased, f func(Erased) Erased) Erased {
			e := xs.(Either)
			if !e.isRight {
				return r.Lift(a, e)
			}
			return r.Transform(f(e.right), rightOf)
		},
	}, t)
}
