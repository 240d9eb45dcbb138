// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package typeclass

// Comparable is the equality dictionary, keyed by a pair of tags.
//
// Minimal definition: Equal or NotEqual. The other is derived by negation.
type Comparable struct {
	Equal    func(r *Registry, x, y Erased) bool
	NotEqual func(r *Registry, x, y Erased) bool
}

func (Comparable) class() *Class { return ComparableClass }

func (d Comparable) derive() (Definition, bool) {
	switch {
	case d.Equal == nil && d.NotEqual == nil:
		return nil, false
	case d.Equal == nil:
		ne := d.NotEqual
		d.Equal = func(r *Registry, x, y Erased) bool { return !ne(r, x, y) }
	case d.NotEqual == nil:
		eq := d.Equal
		d.NotEqual = func(r *Registry, x, y Erased) bool { return !eq(r, x, y) }
	}
	return d, true
}

// unrelated compares values of tags with no CommonType: never equal.
var unrelated = Comparable{
	Equal:    func(*Registry, Erased, Erased) bool { return false },
	NotEqual: func(*Registry, Erased, Erased) bool { return true },
}

// comparableDefault is the instance used when (a, b) has no explicit one.
// A tag compared with its own family must declare equality; otherwise
// values meet in their CommonType, and unrelated values are never equal.
func (r *Registry) comparableDefault(a, b Tag) (Definition, error) {
	if a.Family() == b.Family() {
		return nil, &ResolutionError{Class: ComparableClass.name, Tags: []Tag{a, b}, Err: ErrDisabledInstance, Reason: "tag declares no equality"}
	}
	c, ok := r.Common(a, b)
	if !ok {
		return unrelated, nil
	}
	d, _ := Comparable{
		Equal: func(r *Registry, x, y Erased) bool {
			px, py := r.promote(x, y, c)
			return r.Equal(px, py)
		},
	}.derive()
	return d, nil
}

func (r *Registry) comparable(x, y Erased) Comparable {
	return resolve[Comparable](r, ComparableClass, TagOf(x), TagOf(y))
}

// Equal reports whether x and y are equal.
func (r *Registry) Equal(x, y Erased) bool {
	return r.comparable(x, y).Equal(r, x, y)
}

// NotEqual reports whether x and y differ.
func (r *Registry) NotEqual(x, y Erased) bool {
	return r.comparable(x, y).NotEqual(r, x, y)
}

// EqualTo returns the predicate "equal to v".
func (r *Registry) EqualTo(v Erased) func(Erased) bool {
	return func(x Erased) bool { return r.Equal(x, v) }
}
