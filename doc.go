// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package typeclass provides algebraic interfaces (type classes) over
// tagged values and a registry that derives every operation of an
// interface from a minimal set of primitives.
//
// A value belongs to exactly one family, named by its [Tag]. Operations
// look up the instance registered for the operand tags and run the
// instance's implementation. Models declare instances once, on a
// [Builder]; the [Registry] it builds is immutable and may be shared by
// any number of goroutines.
//
// # Design Philosophy
//
// typeclass provides:
//   - Dispatch by declared tag, never by reflection
//   - Minimal complete definitions: supply one primitive set, get the rest
//   - Configuration errors found at Build time, before any operation runs
//
// # Tags
//
//   - [Tag]: Dispatch key, optionally parameterized ([SequenceTag].Sized(3) prints Sequence<3>)
//   - [Tagged]: Implemented by every model value
//   - [TagOf]: Tag of a model value or Go scalar (panics with [*UntaggedError])
//   - [LookupTag]: Non-panicking variant of TagOf
//
// Resolution falls back from a parameterized tag to its family, so an
// instance registered for [SequenceTag] serves sequences of every length.
//
// # Interface Catalog
//
// Each interface is a [Class] and a dictionary struct of function fields.
// Fields left nil are derived when the instance is registered.
//
//   - [Comparable]: Equal | NotEqual
//   - [Orderable]: Less | LessEqual; Greater, GreaterEqual, Max, Min
//   - [Functor]: Transform | AdjustIf; ReplaceIf, Fill
//   - [Applicative]: Lift + Ap; LiftA2
//   - [Monad]: Flatten | Chain; Then
//   - [MonadPlus]: Empty + Concat; Prepend, Append, Filter
//   - [Foldable]: Unpack | FoldLeft | FoldRight; FoldLeft1, FoldRight1, Length, CountIf, ForEach, monadic folds
//   - [Iterable]: Head + Tail + IsEmpty; At, Last, Drop, DropWhile, ForEach
//   - [Searchable]: FindIf; AnyOf, AllOf, NoneOf, Contains, Find
//   - [Traversable]: Traverse | SequenceA
//
// [Catalog] lists the classes with their primitive sets, derived
// operations and law names.
//
// # Resolution
//
// For a class and one or two tags the registry returns, in order: the
// instance of the exact key, the instance of the family key, the class
// default. A key registered with [Builder.Disable] stops resolution with
// [ErrDisabledInstance].
//
// Defaults exist only for the binary classes:
//
//   - Comparable(A, B): equal in Common(A, B) when defined, else never equal
//   - Comparable(A, A): disabled; a tag must declare its own equality
//   - Orderable(A, B): ordered in Common(A, B) when defined, else [ErrNoInstance]
//
// Operations are methods on [Registry] and panic with [*ResolutionError]
// when resolution fails; [Registry.Resolve] is the checked variant.
// [Default] returns the registry of the built-in models.
//
// # CommonType
//
// [Builder.Embed] declares that one family embeds into another. The
// embeddings generate a partial order; [Registry.Common] is its least
// upper bound. The built-in numeric embeddings widen integers and floats
// without mixing unsigned 64-bit values into signed tags:
//
//	r := typeclass.Default()
//	r.Equal(int8(3), 3)      // true, compared as int64
//	r.Sum(typeclass.MakeSequence(int16(1), float32(2))) // float32(3)
//
// # Models
//
//   - [Optional]: [Just], [Nothing], [OnlyWhen], [MatchOptional]
//   - [Sequence]: [MakeSequence]; fixed length, heterogeneous
//   - [String]: [MakeString]; searched only with [Char] keys
//   - [Pair]: [MakePair]; the element of map-like sequences ([Registry.Lookup])
//   - [Either]: [Left], [Right], [MatchEither]
//
// # Errors
//
// Build reports every configuration problem at once via errors.Join:
// [ErrAmbiguousInstance], [ErrIncompleteDefinition] and missing
// superclasses ([ErrNoInstance]). Operations called outside their domain
// panic with [*PreconditionError] wrapping [ErrPrecondition].
//
// # Example
//
//	b := typeclass.NewBuilder().Use(typeclass.Builtins()...)
//	b.Instance(typeclass.Comparable{
//		Equal: func(_ *typeclass.Registry, x, y typeclass.Erased) bool {
//			return x.(Celsius) == y.(Celsius)
//		},
//	}, CelsiusTag, CelsiusTag)
//	r, err := b.Build()
//	if err != nil {
//		return err
//	}
//	r.NotEqual(Celsius(20), Celsius(21)) // true, derived from Equal
//
// The laws sub-package checks that a model's instances satisfy the laws
// of every class it claims.
package typeclass
