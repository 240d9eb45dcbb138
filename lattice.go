// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package typeclass

import (
	"cmp"
	"maps"
	"slices"
)

// CommonType resolution.
//
// Embedding edges declared with [Builder.Embed] generate a partial order on
// tag families. Common(A, B) is the least upper bound of A and B in that
// order: the smallest family both embed into. It is undefined when the two
// families share no upper bound or when their upper bounds have no least
// element. The join is symmetric by construction.

// edge is one declared embedding with its value conversion.
type edge struct {
	from, to Tag
	convert  func(Erased) Erased
}

// lattice holds, for every family, the conversions into each family above
// it. Every family is implicitly above itself.
type lattice struct {
	above map[Tag]map[Tag]func(Erased) Erased
}

func identity(v Erased) Erased { return v }

func newLattice(edges []edge) (*lattice, []error) {
	var errs []error
	next := make(map[Tag][]edge)
	declared := make(map[[2]Tag]bool, len(edges))
	for _, e := range edges {
		k := [2]Tag{e.from, e.to}
		if declared[k] {
			errs = append(errs, &DefinitionError{Class: "CommonType", Tags: []Tag{e.from, e.to}, Err: ErrAmbiguousInstance, Detail: "embedding declared more than once"})
			continue
		}
		declared[k] = true
		next[e.from] = append(next[e.from], e)
	}

	l := &lattice{above: make(map[Tag]map[Tag]func(Erased) Erased, len(next))}
	for _, from := range slices.SortedFunc(maps.Keys(next), compareTags) {
		// Breadth-first, so each target keeps the conversion of a shortest path.
		up := map[Tag]func(Erased) Erased{from: identity}
		queue := []Tag{from}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			for _, e := range next[cur] {
				if e.to == from {
					errs = append(errs, &DefinitionError{Class: "CommonType", Tags: []Tag{from, cur}, Err: ErrAmbiguousInstance, Detail: "embedding cycle through " + from.String()})
					continue
				}
				if _, seen := up[e.to]; seen {
					continue
				}
				up[e.to] = compose(up[cur], e.convert)
				queue = append(queue, e.to)
			}
		}
		l.above[from] = up
	}
	return l, errs
}

func compose(f, g func(Erased) Erased) func(Erased) Erased {
	if g == nil {
		return f
	}
	return func(v Erased) Erased { return g(f(v)) }
}

func compareTags(a, b Tag) int {
	if c := cmp.Compare(a.family, b.family); c != 0 {
		return c
	}
	return cmp.Compare(a.param, b.param)
}

// upper returns the families a embeds into, a included.
func (l *lattice) upper(a Tag) map[Tag]func(Erased) Erased {
	if up, ok := l.above[a]; ok {
		return up
	}
	return map[Tag]func(Erased) Erased{a: identity}
}

func (l *lattice) join(a, b Tag) (Tag, bool) {
	a, b = a.Family(), b.Family()
	if a == b {
		return a, true
	}
	ua, ub := l.upper(a), l.upper(b)
	var bounds []Tag
	for t := range ua {
		if _, ok := ub[t]; ok {
			bounds = append(bounds, t)
		}
	}
	for _, c := range bounds {
		uc := l.upper(c)
		least := true
		for _, d := range bounds {
			if _, ok := uc[d]; !ok {
				least = false
				break
			}
		}
		if least {
			return c, true
		}
	}
	return Tag{}, false
}

func (l *lattice) converter(from, to Tag) (func(Erased) Erased, bool) {
	f, ok := l.upper(from.Family())[to.Family()]
	return f, ok
}

// Common returns the CommonType of a and b, if defined.
func (r *Registry) Common(a, b Tag) (Tag, bool) {
	return r.lattice.join(a, b)
}

// Convert embeds v into the family of to. Values already in that family
// are returned unchanged.
func (r *Registry) Convert(v Erased, to Tag) (Erased, error) {
	from, ok := LookupTag(v)
	if !ok {
		return nil, &UntaggedError{Value: v}
	}
	f, ok := r.lattice.converter(from, to)
	if !ok {
		return nil, &ResolutionError{Class: "CommonType", Tags: []Tag{from, to}, Err: ErrNoInstance, Reason: "no embedding"}
	}
	return f(v), nil
}

// promote embeds x and y into their CommonType c.
func (r *Registry) promote(x, y Erased, c Tag) (Erased, Erased) {
	px, err := r.Convert(x, c)
	if err != nil {
		fail(err)
	}
	py, err := r.Convert(y, c)
	if err != nil {
		fail(err)
	}
	return px, py
}
