// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package typeclass

// Orderable is the strict total order dictionary, keyed by a pair of tags.
//
// Minimal definition: Less or LessEqual.
// Derived operations: the other of the two, Greater, GreaterEqual, Max, Min.
// Max and Min return x when neither operand is less than the other.
type Orderable struct {
	Less         func(r *Registry, x, y Erased) bool
	LessEqual    func(r *Registry, x, y Erased) bool
	Greater      func(r *Registry, x, y Erased) bool
	GreaterEqual func(r *Registry, x, y Erased) bool
	Max          func(r *Registry, x, y Erased) Erased
	Min          func(r *Registry, x, y Erased) Erased
}

func (Orderable) class() *Class { return OrderableClass }

func (d Orderable) derive() (Definition, bool) {
	if d.Less == nil && d.LessEqual == nil {
		return nil, false
	}
	// Swapped operands dispatch again: (y, x) may be keyed differently.
	if d.Less == nil {
		d.Less = func(r *Registry, x, y Erased) bool { return !r.LessEqual(y, x) }
	}
	less := d.Less
	if d.LessEqual == nil {
		d.LessEqual = func(r *Registry, x, y Erased) bool { return !r.Less(y, x) }
	}
	if d.Greater == nil {
		d.Greater = func(r *Registry, x, y Erased) bool { return r.Less(y, x) }
	}
	if d.GreaterEqual == nil {
		d.GreaterEqual = func(r *Registry, x, y Erased) bool { return r.LessEqual(y, x) }
	}
	if d.Max == nil {
		d.Max = func(r *Registry, x, y Erased) Erased {
			if less(r, x, y) {
				return y
			}
			return x
		}
	}
	if d.Min == nil {
		d.Min = func(r *Registry, x, y Erased) Erased {
			if r.Less(y, x) {
				return y
			}
			return x
		}
	}
	return d, true
}

// orderableDefault orders values of different families in their
// CommonType. There is no fallback order for unrelated tags.
func (r *Registry) orderableDefault(a, b Tag) (Definition, error) {
	c, ok := r.Common(a, b)
	if !ok || a.Family() == b.Family() {
		return nil, &ResolutionError{Class: OrderableClass.name, Tags: []Tag{a, b}, Err: ErrNoInstance}
	}
	d, _ := Orderable{
		Less: func(r *Registry, x, y Erased) bool {
			px, py := r.promote(x, y, c)
			return r.Less(px, py)
		},
	}.derive()
	return d, nil
}

func (r *Registry) orderable(x, y Erased) Orderable {
	return resolve[Orderable](r, OrderableClass, TagOf(x), TagOf(y))
}

// Less reports whether x orders before y.
func (r *Registry) Less(x, y Erased) bool { return r.orderable(x, y).Less(r, x, y) }

// LessEqual reports whether x does not order after y.
func (r *Registry) LessEqual(x, y Erased) bool { return r.orderable(x, y).LessEqual(r, x, y) }

// Greater reports whether x orders after y.
func (r *Registry) Greater(x, y Erased) bool { return r.orderable(x, y).Greater(r, x, y) }

// GreaterEqual reports whether x does not order before y.
func (r *Registry) GreaterEqual(x, y Erased) bool { return r.orderable(x, y).GreaterEqual(r, x, y) }

// Max returns the greater of x and y, or x if neither is greater.
func (r *Registry) Max(x, y Erased) Erased { return r.orderable(x, y).Max(r, x, y) }

// Min returns the lesser of x and y, or x if neither is lesser.
func (r *Registry) Min(x, y Erased) Erased { return r.orderable(x, y).Min(r, x, y) }

// Compare returns -1, 0 or +1 as x orders before, with or after y.
func (r *Registry) Compare(x, y Erased) int {
	switch {
	case r.Less(x, y):
		return -1
	case r.Less(y, x):
		return 1
	}
	return 0
}
