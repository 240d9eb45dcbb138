// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package typeclass

import "fmt"

// Searchable finds elements or keys in a structure.
//
// Minimal definition: FindIf.
// Derived operations: AnyOf, AllOf, NoneOf, Contains, Find.
//
// Keys, when set, restricts the tags accepted as search keys by Contains
// and Find; any other key fails with [ErrDisabledInstance].
type Searchable struct {
	FindIf   func(r *Registry, xs Erased, pred func(Erased) bool) Optional
	AnyOf    func(r *Registry, xs Erased, pred func(Erased) bool) bool
	AllOf    func(r *Registry, xs Erased, pred func(Erased) bool) bool
	NoneOf   func(r *Registry, xs Erased, pred func(Erased) bool) bool
	Contains func(r *Registry, xs, key Erased) bool
	Find     func(r *Registry, xs, key Erased) Optional
	Keys     func(key Tag) bool
}

func (Searchable) class() *Class { return SearchableClass }

func (d Searchable) derive() (Definition, bool) {
	if d.FindIf == nil {
		return nil, false
	}
	findIf := d.FindIf
	if d.AnyOf == nil {
		d.AnyOf = func(r *Registry, xs Erased, pred func(Erased) bool) bool {
			return findIf(r, xs, pred).IsJust()
		}
	}
	anyOf := d.AnyOf
	if d.AllOf == nil {
		d.AllOf = func(r *Registry, xs Erased, pred func(Erased) bool) bool {
			return !anyOf(r, xs, func(x Erased) bool { return !pred(x) })
		}
	}
	if d.NoneOf == nil {
		d.NoneOf = func(r *Registry, xs Erased, pred func(Erased) bool) bool {
			return !anyOf(r, xs, pred)
		}
	}
	if d.Contains == nil {
		d.Contains = func(r *Registry, xs, key Erased) bool {
			return anyOf(r, xs, r.EqualTo(key))
		}
	}
	if d.Find == nil {
		d.Find = func(r *Registry, xs, key Erased) Optional {
			return findIf(r, xs, r.EqualTo(key))
		}
	}
	if keys := d.Keys; keys != nil {
		contains, find := d.Contains, d.Find
		d.Contains = func(r *Registry, xs, key Erased) bool {
			checkKey(keys, xs, key)
			return contains(r, xs, key)
		}
		d.Find = func(r *Registry, xs, key Erased) Optional {
			checkKey(keys, xs, key)
			return find(r, xs, key)
		}
	}
	return d, true
}

func keyError(keys func(Tag) bool, xs, key Erased) error {
	kt, ok := LookupTag(key)
	if !ok {
		return &UntaggedError{Value: key}
	}
	if keys != nil && !keys(kt) {
		return &ResolutionError{
			Class:  SearchableClass.name,
			Tags:   []Tag{TagOf(xs), kt},
			Err:    ErrDisabledInstance,
			Reason: fmt.Sprintf("%s is not a searchable key", kt),
		}
	}
	return nil
}

func checkKey(keys func(Tag) bool, xs, key Erased) {
	if err := keyError(keys, xs, key); err != nil {
		fail(err)
	}
}

func (r *Registry) searchable(xs Erased) Searchable {
	return resolve[Searchable](r, SearchableClass, TagOf(xs))
}

// CheckKey reports whether key may be searched for in xs without
// panicking: it returns the error Contains and Find would raise.
func (r *Registry) CheckKey(xs, key Erased) error {
	d, err := r.Resolve(SearchableClass, TagOf(xs))
	if err != nil {
		return err
	}
	return keyError(d.(Searchable).Keys, xs, key)
}

// FindIf returns the first element of xs satisfying pred, or Nothing.
func (r *Registry) FindIf(xs Erased, pred func(Erased) bool) Optional {
	return r.searchable(xs).FindIf(r, xs, pred)
}

// AnyOf reports whether some element of xs satisfies pred.
func (r *Registry) AnyOf(xs Erased, pred func(Erased) bool) bool {
	return r.searchable(xs).AnyOf(r, xs, pred)
}

// AllOf reports whether every element of xs satisfies pred.
func (r *Registry) AllOf(xs Erased, pred func(Erased) bool) bool {
	return r.searchable(xs).AllOf(r, xs, pred)
}

// NoneOf reports whether no element of xs satisfies pred.
func (r *Registry) NoneOf(xs Erased, pred func(Erased) bool) bool {
	return r.searchable(xs).NoneOf(r, xs, pred)
}

// Contains reports whether xs holds key.
func (r *Registry) Contains(xs, key Erased) bool {
	return r.searchable(xs).Contains(r, xs, key)
}

// Find returns the element of xs equal to key, or Nothing.
func (r *Registry) Find(xs, key Erased) Optional {
	return r.searchable(xs).Find(r, xs, key)
}

// IsSubset reports whether every element of xs is contained in ys.
func (r *Registry) IsSubset(xs, ys Erased) bool {
	return r.AllOf(xs, func(x Erased) bool { return r.Contains(ys, x) })
}

// Lookup searches a map-like structure of [Pair] elements for the first
// pair whose first component equals key and returns its second component.
func (r *Registry) Lookup(xs, key Erased) Optional {
	found := r.FindIf(xs, func(x Erased) bool {
		p, ok := x.(Pair)
		if !ok {
			precondition("lookup", fmt.Sprintf("element %T is not a Pair", x))
		}
		return r.Equal(p.First(), key)
	})
	return MatchOptional(found, Nothing, func(p Erased) Optional {
		return Just(p.(Pair).Second())
	})
}
