// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package typeclass

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

type number interface {
	constraints.Integer | constraints.Float
}

// numericKind is the arithmetic of one numeric tag.
type numericKind struct {
	from     func(Erased) Erased
	add, mul func(x, y Erased) Erased
}

func kindOf[T number]() numericKind {
	return numericKind{
		from: func(v Erased) Erased { return convertNumber[T](v) },
		add:  func(x, y Erased) Erased { return x.(T) + y.(T) },
		mul:  func(x, y Erased) Erased { return x.(T) * y.(T) },
	}
}

func convertNumber[T number](v Erased) T {
	switch x := v.(type) {
	case int:
		return T(x)
	case int8:
		return T(x)
	case int16:
		return T(x)
	case int32:
		return T(x)
	case int64:
		return T(x)
	case uint:
		return T(x)
	case uint8:
		return T(x)
	case uint16:
		return T(x)
	case uint32:
		return T(x)
	case uint64:
		return T(x)
	case float32:
		return T(x)
	case float64:
		return T(x)
	case Char:
		return T(x)
	}
	precondition("convert", fmt.Sprintf("%T is not numeric", v))
	return 0
}

var numerics = map[Tag]numericKind{
	IntTag:     kindOf[int](),
	Int8Tag:    kindOf[int8](),
	Int16Tag:   kindOf[int16](),
	Int32Tag:   kindOf[int32](),
	Int64Tag:   kindOf[int64](),
	UintTag:    kindOf[uint](),
	Uint8Tag:   kindOf[uint8](),
	Uint16Tag:  kindOf[uint16](),
	Uint32Tag:  kindOf[uint32](),
	Uint64Tag:  kindOf[uint64](),
	Float32Tag: kindOf[float32](),
	Float64Tag: kindOf[float64](),
	CharTag:    kindOf[Char](),
}

// arith combines x and y in their CommonType with the operation op selects.
func (r *Registry) arith(name string, x, y Erased, op func(numericKind) func(x, y Erased) Erased) Erased {
	tx, ty := TagOf(x), TagOf(y)
	c, ok := r.Common(tx, ty)
	if !ok {
		fail(&ResolutionError{Class: "Numeric", Tags: []Tag{tx, ty}, Err: ErrNoInstance, Reason: name + ": no common type"})
	}
	k, ok := numerics[c]
	if !ok {
		fail(&ResolutionError{Class: "Numeric", Tags: []Tag{tx, ty}, Err: ErrNoInstance, Reason: name + ": " + c.String() + " is not numeric"})
	}
	px, py := r.promote(x, y, c)
	return op(k)(px, py)
}

// Add returns x + y computed in the CommonType of the operands.
func (r *Registry) Add(x, y Erased) Erased {
	return r.arith("add", x, y, func(k numericKind) func(x, y Erased) Erased { return k.add })
}

// Mul returns x * y computed in the CommonType of the operands.
func (r *Registry) Mul(x, y Erased) Erased {
	return r.arith("mul", x, y, func(k numericKind) func(x, y Erased) Erased { return k.mul })
}
