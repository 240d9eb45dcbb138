// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package typeclass

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
)

// Model declares a data type to a [Builder]: its instances, disabled keys
// and CommonType embeddings.
type Model func(b *Builder)

// Builtins returns the models shipped with the package.
func Builtins() []Model {
	return []Model{Scalars, OptionalModel, SequenceModel, StringModel, PairModel, EitherModel}
}

// Option configures a [Builder].
type Option func(*Builder)

// WithLogger sets the logger used while building. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(b *Builder) {
		if l != nil {
			b.logger = l
		}
	}
}

// instanceKey identifies one instance: a class and one or two tags.
// Unary keys leave b zero.
type instanceKey struct {
	class *Class
	a, b  Tag
}

func (k instanceKey) family() instanceKey {
	return instanceKey{class: k.class, a: k.a.Family(), b: k.b.Family()}
}

func (k instanceKey) tags() []Tag {
	if k.class.Binary() {
		return []Tag{k.a, k.b}
	}
	return []Tag{k.a}
}

func keyOf(c *Class, tags []Tag) (instanceKey, error) {
	if len(tags) != c.arity {
		return instanceKey{}, fmt.Errorf("%s takes %d tag(s), got %d", c.name, c.arity, len(tags))
	}
	k := instanceKey{class: c, a: tags[0]}
	if c.arity == 2 {
		k.b = tags[1]
	}
	return k, nil
}

type registration struct {
	key instanceKey
	def Definition // nil marks a disabled key
}

// Builder collects the static configuration of a [Registry].
// A Builder is not safe for concurrent use; the Registry it builds is.
type Builder struct {
	logger *slog.Logger
	regs   []registration
	edges  []edge
	errs   []error
}

// NewBuilder returns an empty Builder.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{logger: slog.Default()}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Use applies each model to b.
func (b *Builder) Use(models ...Model) *Builder {
	for _, m := range models {
		m(b)
	}
	return b
}

// Instance registers def for the given tags: one tag for unary classes,
// two for binary ones. Registering a family tag covers every
// parameterization of it that has no exact instance.
func (b *Builder) Instance(def Definition, tags ...Tag) *Builder {
	k, err := keyOf(def.class(), tags)
	if err != nil {
		b.errs = append(b.errs, &DefinitionError{Class: def.class().name, Tags: tags, Err: ErrNoInstance, Detail: err.Error()})
		return b
	}
	b.regs = append(b.regs, registration{key: k, def: def})
	return b
}

// Disable marks a key as deliberately unsupported. Resolving it fails with
// [ErrDisabledInstance] instead of falling back to a default.
func (b *Builder) Disable(c *Class, tags ...Tag) *Builder {
	k, err := keyOf(c, tags)
	if err != nil {
		b.errs = append(b.errs, &DefinitionError{Class: c.name, Tags: tags, Err: ErrNoInstance, Detail: err.Error()})
		return b
	}
	b.regs = append(b.regs, registration{key: k})
	return b
}

// Embed declares that values of from convert into to. Conversions may
// round, as Int64 into Float64 does above 2^53.
// Embeddings generate the order whose least upper bounds are CommonTypes.
func (b *Builder) Embed(from, to Tag, convert func(Erased) Erased) *Builder {
	b.edges = append(b.edges, edge{from: from.Family(), to: to.Family(), convert: convert})
	return b
}

// Build derives every registered definition and validates the
// configuration. All problems are reported together via errors.Join.
func (b *Builder) Build() (*Registry, error) {
	r := &Registry{
		instances: make(map[instanceKey]Definition, len(b.regs)),
		disabled:  make(map[instanceKey]struct{}),
	}
	errs := append([]error(nil), b.errs...)
	seen := make(map[instanceKey]bool, len(b.regs))

	for _, reg := range b.regs {
		k := reg.key
		if seen[k] {
			errs = append(errs, &DefinitionError{Class: k.class.name, Tags: k.tags(), Err: ErrAmbiguousInstance, Detail: "registered more than once"})
			continue
		}
		seen[k] = true
		if reg.def == nil {
			r.disabled[k] = struct{}{}
			b.logger.Debug("typeclass: instance disabled",
				slog.String("class", k.class.name),
				slog.String("tags", formatTags(k.tags())),
			)
			continue
		}
		d, ok := reg.def.derive()
		if !ok {
			errs = append(errs, &DefinitionError{Class: k.class.name, Tags: k.tags(), Err: ErrIncompleteDefinition, Detail: "supply one of " + k.class.primitiveSummary()})
			continue
		}
		r.instances[k] = d
		b.logger.Debug("typeclass: instance registered",
			slog.String("class", k.class.name),
			slog.String("tags", formatTags(k.tags())),
		)
	}

	for k := range r.instances {
		for _, req := range k.class.requires {
			rk := instanceKey{class: req, a: k.a}
			if !r.explicit(rk) {
				errs = append(errs, &DefinitionError{Class: k.class.name, Tags: k.tags(), Err: ErrNoInstance, Detail: "requires " + req.name})
			}
		}
	}

	lat, latErrs := newLattice(b.edges)
	errs = append(errs, latErrs...)
	r.lattice = lat

	if len(errs) > 0 {
		b.logger.Warn("typeclass: registry configuration rejected", slog.Int("errors", len(errs)))
		return nil, errors.Join(errs...)
	}
	b.logger.Debug("typeclass: registry built",
		slog.Int("instances", len(r.instances)),
		slog.Int("disabled", len(r.disabled)),
		slog.Int("embeddings", len(b.edges)),
	)
	return r, nil
}

// MustBuild builds a registry from models and panics on a configuration error.
func MustBuild(models ...Model) *Registry {
	r, err := NewBuilder().Use(models...).Build()
	if err != nil {
		panic(err)
	}
	return r
}

// Registry is an immutable, validated set of instances and CommonType
// embeddings. All operations are methods on Registry; it may be shared by
// any number of goroutines.
type Registry struct {
	instances map[instanceKey]Definition
	disabled  map[instanceKey]struct{}
	lattice   *lattice
}

var defaultRegistry = sync.OnceValue(func() *Registry {
	return MustBuild(Builtins()...)
})

// Default returns the registry of the built-in models.
func Default() *Registry {
	return defaultRegistry()
}

func (r *Registry) explicit(k instanceKey) bool {
	if _, ok := r.instances[k]; ok {
		return true
	}
	_, ok := r.instances[k.family()]
	return ok
}

// Resolve returns the instance for c at tags without panicking.
// Resolution order: explicit instance for the exact key, then for the
// family key, then the class default. A disabled key stops resolution.
func (r *Registry) Resolve(c *Class, tags ...Tag) (Definition, error) {
	k, err := keyOf(c, tags)
	if err != nil {
		return nil, &ResolutionError{Class: c.name, Tags: tags, Err: ErrNoInstance, Reason: err.Error()}
	}
	for _, key := range [...]instanceKey{k, k.family()} {
		if _, off := r.disabled[key]; off {
			return nil, &ResolutionError{Class: c.name, Tags: tags, Err: ErrDisabledInstance, Reason: "disabled by registration"}
		}
		if d, ok := r.instances[key]; ok {
			return d, nil
		}
	}
	return r.fallback(c, tags)
}

func (r *Registry) fallback(c *Class, tags []Tag) (Definition, error) {
	switch c {
	case ComparableClass:
		return r.comparableDefault(tags[0], tags[1])
	case OrderableClass:
		return r.orderableDefault(tags[0], tags[1])
	}
	return nil, &ResolutionError{Class: c.name, Tags: tags, Err: ErrNoInstance}
}

// Claims returns the classes with an explicit instance for t
// (for binary classes, for the pair (t, t)), in catalog order.
func (r *Registry) Claims(t Tag) []*Class {
	var out []*Class
	for _, c := range Catalog() {
		k := instanceKey{class: c, a: t}
		if c.Binary() {
			k.b = t
		}
		if r.explicit(k) {
			out = append(out, c)
		}
	}
	return out
}

// resolve returns the dictionary for c at tags.
// Panics with [*ResolutionError] when none applies.
func resolve[D Definition](r *Registry, c *Class, tags ...Tag) D {
	d, err := r.Resolve(c, tags...)
	if err != nil {
		fail(err)
	}
	return d.(D)
}
