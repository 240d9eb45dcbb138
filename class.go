// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package typeclass

// Class describes an algebraic interface: its arity, the alternative
// minimal primitive sets any one of which suffices, the operations derived
// from them, the classes an instance must also have, and the laws the
// operations obey.
type Class struct {
	name       string
	arity      int
	primitives [][]string
	derived    []string
	requires   []*Class
	laws       []string
}

// Name returns the class name.
func (c *Class) Name() string { return c.name }

// Binary reports whether instances are keyed by a pair of tags.
func (c *Class) Binary() bool { return c.arity == 2 }

// Primitives returns the alternative minimal primitive sets.
func (c *Class) Primitives() [][]string {
	out := make([][]string, len(c.primitives))
	for i, set := range c.primitives {
		out[i] = append([]string(nil), set...)
	}
	return out
}

// Derived returns the operations synthesized from a primitive set.
func (c *Class) Derived() []string { return append([]string(nil), c.derived...) }

// Requires returns the classes an instance of c presupposes for the same tag.
func (c *Class) Requires() []*Class { return append([]*Class(nil), c.requires...) }

// Laws returns the names of the laws checked for c.
func (c *Class) Laws() []string { return append([]string(nil), c.laws...) }

func (c *Class) String() string { return c.name }

// The class catalog.
var (
	ComparableClass = &Class{
		name:       "Comparable",
		arity:      2,
		primitives: [][]string{{"equal"}, {"not_equal"}},
		derived:    []string{"equal", "not_equal"},
		laws:       []string{"reflexivity", "symmetry", "transitivity", "exclusivity"},
	}

	OrderableClass = &Class{
		name:       "Orderable",
		arity:      2,
		primitives: [][]string{{"less"}, {"less_equal"}},
		derived:    []string{"less", "less_equal", "greater", "greater_equal", "max", "min"},
		laws:       []string{"irreflexivity", "asymmetry", "transitivity", "consistency", "max_min", "totality"},
	}

	FunctorClass = &Class{
		name:       "Functor",
		arity:      1,
		primitives: [][]string{{"transform"}, {"adjust_if"}},
		derived:    []string{"transform", "adjust_if", "replace_if", "fill"},
		laws:       []string{"identity", "composition"},
	}

	ApplicativeClass = &Class{
		name:       "Applicative",
		arity:      1,
		primitives: [][]string{{"lift", "ap"}},
		derived:    []string{"lift_a2"},
		requires:   []*Class{FunctorClass},
		laws:       []string{"identity", "homomorphism", "interchange", "functor"},
	}

	MonadClass = &Class{
		name:       "Monad",
		arity:      1,
		primitives: [][]string{{"flatten"}, {"chain"}},
		derived:    []string{"flatten", "chain", "then"},
		requires:   []*Class{ApplicativeClass},
		laws:       []string{"left_identity", "right_identity", "associativity", "flatten", "nested"},
	}

	MonadPlusClass = &Class{
		name:       "MonadPlus",
		arity:      1,
		primitives: [][]string{{"empty", "concat"}},
		derived:    []string{"prepend", "append", "filter"},
		requires:   []*Class{MonadClass},
		laws:       []string{"left_zero", "right_zero", "associativity", "absorption"},
	}

	FoldableClass = &Class{
		name:       "Foldable",
		arity:      1,
		primitives: [][]string{{"unpack"}, {"fold_left"}, {"fold_right"}},
		derived: []string{
			"unpack", "fold_left", "fold_right", "fold_left1", "fold_right1",
			"length", "count_if", "for_each", "monadic_fold_left", "monadic_fold_right",
		},
		laws: []string{"fold_left", "fold_right", "fold_left1", "fold_right1", "length", "count", "for_each"},
	}

	IterableClass = &Class{
		name:       "Iterable",
		arity:      1,
		primitives: [][]string{{"head", "tail", "is_empty"}},
		derived:    []string{"at", "last", "drop", "drop_while", "for_each"},
		laws:       []string{"is_empty", "head", "at", "tail"},
	}

	SearchableClass = &Class{
		name:       "Searchable",
		arity:      1,
		primitives: [][]string{{"find_if"}},
		derived:    []string{"any_of", "all_of", "none_of", "contains", "find"},
		laws:       []string{"any_of", "contains", "find"},
	}

	TraversableClass = &Class{
		name:       "Traversable",
		arity:      1,
		primitives: [][]string{{"traverse"}, {"sequence"}},
		derived:    []string{"traverse", "sequence"},
		requires:   []*Class{FunctorClass},
		laws:       []string{"identity", "short_circuit"},
	}
)

// Catalog returns every class, superclasses before their subclasses.
func Catalog() []*Class {
	return []*Class{
		ComparableClass,
		OrderableClass,
		FunctorClass,
		ApplicativeClass,
		MonadClass,
		MonadPlusClass,
		FoldableClass,
		IterableClass,
		SearchableClass,
		TraversableClass,
	}
}

// Definition is an instance dictionary ([Comparable], [Functor], ...).
// Fields left nil are synthesized from the supplied primitives when the
// definition is registered.
type Definition interface {
	class() *Class
	// derive fills the derived operations; false means no primitive set
	// is complete.
	derive() (Definition, bool)
}

func (c *Class) primitiveSummary() string {
	s := ""
	for i, set := range c.primitives {
		if i > 0 {
			s += " | "
		}
		s += "{"
		for j, p := range set {
			if j > 0 {
				s += ", "
			}
			s += p
		}
		s += "}"
	}
	return s
}
