// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package typeclass

import (
	"cmp"
	_ "embed"
	"fmt"
	"maps"
	"slices"

	"gopkg.in/yaml.v3"
)

//go:embed promotions.yaml
var promotionTable []byte

// Scalars declares Comparable and Orderable for every built-in Go scalar
// tag and the numeric embeddings of the promotion table.
//
// Floating-point comparison follows cmp.Compare: NaN equals NaN and orders
// below every other value, so the Comparable and Orderable laws hold.
func Scalars(b *Builder) {
	ordered[int](b, IntTag)
	ordered[int8](b, Int8Tag)
	ordered[int16](b, Int16Tag)
	ordered[int32](b, Int32Tag)
	ordered[int64](b, Int64Tag)
	ordered[uint](b, UintTag)
	ordered[uint8](b, Uint8Tag)
	ordered[uint16](b, Uint16Tag)
	ordered[uint32](b, Uint32Tag)
	ordered[uint64](b, Uint64Tag)
	ordered[float32](b, Float32Tag)
	ordered[float64](b, Float64Tag)
	ordered[string](b, TextTag)

	b.Instance(Comparable{
		Equal: func(_ *Registry, x, y Erased) bool { return x.(bool) == y.(bool) },
	}, BoolTag, BoolTag)
	b.Instance(Orderable{
		Less: func(_ *Registry, x, y Erased) bool { return !x.(bool) && y.(bool) },
	}, BoolTag, BoolTag)

	edges, err := promotions(promotionTable)
	if err != nil {
		b.errs = append(b.errs, err)
		return
	}
	for _, e := range edges {
		b.Embed(e.from, e.to, e.convert)
	}
}

func ordered[T cmp.Ordered](b *Builder, t Tag) {
	b.Instance(Comparable{
		Equal: func(_ *Registry, x, y Erased) bool { return cmp.Compare(x.(T), y.(T)) == 0 },
	}, t, t)
	b.Instance(Orderable{
		Less: func(_ *Registry, x, y Erased) bool { return cmp.Less(x.(T), y.(T)) },
	}, t, t)
}

// promotions parses a promotion table: a YAML mapping from a numeric tag
// name to the names of the tags it embeds into.
func promotions(doc []byte) ([]edge, error) {
	var table map[string][]string
	if err := yaml.Unmarshal(doc, &table); err != nil {
		return nil, fmt.Errorf("typeclass: promotion table: %w", err)
	}
	byName := make(map[string]Tag, len(numerics))
	for t := range numerics {
		byName[t.String()] = t
	}
	var edges []edge
	for _, name := range slices.Sorted(maps.Keys(table)) {
		from, ok := byName[name]
		if !ok {
			return nil, &DefinitionError{Class: "CommonType", Err: ErrNoInstance, Detail: "promotion table: unknown numeric tag " + name}
		}
		for _, target := range table[name] {
			to, ok := byName[target]
			if !ok {
				return nil, &DefinitionError{Class: "CommonType", Tags: []Tag{from}, Err: ErrNoInstance, Detail: "promotion table: unknown numeric tag " + target}
			}
			edges = append(edges, edge{from: from, to: to, convert: numerics[to].from})
		}
	}
	return edges, nil
}
