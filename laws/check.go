// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package laws checks that the instances of a model satisfy the algebraic
// laws of every class the model claims.
//
// A check is driven by sample values of the model and, for the Monad
// nesting law, sample values nested one level deep:
//
//	rep := laws.Check(r, typeclass.OptionalTag,
//		[]typeclass.Erased{typeclass.Nothing(), typeclass.Just(1), typeclass.Just(2)},
//		[]typeclass.Erased{typeclass.Just(typeclass.Just(1)), typeclass.Just(typeclass.Nothing())},
//	)
//	if err := rep.Err(); err != nil {
//		t.Fatal(err)
//	}
//
// Every failure names the class, the law and the index of the offending
// sample. A law that panics fails with the panic value as its detail.
package laws

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"code.hybscloud.com/typeclass"
)

// Erased is [typeclass.Erased].
type Erased = typeclass.Erased

// Option configures a [Check].
type Option func(*checker)

// WithConfig applies cfg. An invalid cfg is ignored and logged.
func WithConfig(cfg Config) Option {
	return func(c *checker) {
		if err := cfg.Validate(); err != nil {
			c.logger.Warn("laws: config ignored", slog.String("error", err.Error()))
			return
		}
		c.cfg = cfg
	}
}

// WithElements adds element values used as search and count keys, and as
// payloads lifted into the model. Values absent from every sample exercise
// the "not found" branches.
func WithElements(elems ...Erased) Option {
	return func(c *checker) {
		c.extra = append(c.extra, elems...)
	}
}

// WithLogger sets the logger for violations and the summary.
// Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(c *checker) {
		if l != nil {
			c.logger = l
		}
	}
}

type checker struct {
	r       *typeclass.Registry
	tag     typeclass.Tag
	samples []Erased
	nested  []Erased
	extra   []Erased
	claims  map[*typeclass.Class]bool
	cfg     Config
	logger  *slog.Logger
	report  *Report
	failed  int
}

// Check verifies the laws of every class r.Claims(tag) lists against
// samples, values of the model tagged tag, and nested, values of the model
// holding values of the model.
func Check(r *typeclass.Registry, tag typeclass.Tag, samples, nested []Erased, opts ...Option) *Report {
	c := &checker{
		r:       r,
		tag:     tag.Family(),
		samples: samples,
		nested:  nested,
		claims:  make(map[*typeclass.Class]bool),
		logger:  slog.Default(),
		report:  &Report{ID: uuid.New(), Tag: tag},
	}
	for _, opt := range opts {
		opt(c)
	}
	for _, class := range r.Claims(c.tag) {
		c.claims[class] = true
	}

	for _, s := range suites {
		if !c.claims[s.class] || c.stopped() {
			continue
		}
		s.run(c)
	}

	c.logger.Debug("laws: check finished",
		slog.String("report", c.report.ID.String()),
		slog.String("tag", c.tag.String()),
		slog.Int("results", len(c.report.Results)),
		slog.Int("failures", c.failed),
	)
	return c.report
}

type suite struct {
	class *typeclass.Class
	run   func(c *checker)
}

var suites = []suite{
	{typeclass.ComparableClass, comparableLaws},
	{typeclass.OrderableClass, orderableLaws},
	{typeclass.FunctorClass, functorLaws},
	{typeclass.ApplicativeClass, applicativeLaws},
	{typeclass.MonadClass, monadLaws},
	{typeclass.MonadPlusClass, monadPlusLaws},
	{typeclass.FoldableClass, foldableLaws},
	{typeclass.IterableClass, iterableLaws},
	{typeclass.SearchableClass, searchableLaws},
	{typeclass.TraversableClass, traversableLaws},
}

func (c *checker) stopped() bool {
	switch {
	case c.failed == 0:
		return false
	case c.cfg.FailFast:
		return true
	case c.cfg.MaxFailures > 0:
		return c.failed >= c.cfg.MaxFailures
	}
	return false
}

// law evaluates one law on sample i and records the result. law returns
// an empty detail when it holds.
func (c *checker) law(class *typeclass.Class, name string, i int, law func() string) {
	if c.stopped() || c.cfg.skips(class.Name(), name) {
		return
	}
	res := Result{Class: class.Name(), Law: name, Sample: i}
	res.Detail = c.eval(law)
	res.Pass = res.Detail == ""
	c.report.Results = append(c.report.Results, res)
	if !res.Pass {
		c.failed++
		c.logger.Warn("laws: violation",
			slog.String("report", c.report.ID.String()),
			slog.String("tag", c.tag.String()),
			slog.String("class", res.Class),
			slog.String("law", res.Law),
			slog.Int("sample", res.Sample),
			slog.String("detail", res.Detail),
		)
	}
}

func (c *checker) eval(law func() string) (detail string) {
	defer func() {
		if v := recover(); v != nil {
			detail = fmt.Sprintf("panic: %v", v)
		}
	}()
	return law()
}

// equal returns "" if x equals y, or a description of the mismatch.
func (c *checker) equal(what string, x, y Erased) string {
	if c.r.Equal(x, y) {
		return ""
	}
	return fmt.Sprintf("%s: %v != %v", what, x, y)
}

func holds(ok bool, format string, args ...any) string {
	if ok {
		return ""
	}
	return fmt.Sprintf(format, args...)
}

// first returns the first non-empty detail.
func first(details ...string) string {
	for _, d := range details {
		if d != "" {
			return d
		}
	}
	return ""
}

// elements returns the values used as keys and payloads: the elements of
// every sample when the model is Foldable, then the extra elements.
func (c *checker) elements() []Erased {
	var out []Erased
	if c.claims[typeclass.FoldableClass] {
		for _, s := range c.samples {
			// A sample whose Elements panics fails the Foldable laws instead.
			func() {
				defer func() { _ = recover() }()
				out = append(out, c.r.Elements(s)...)
			}()
		}
	}
	out = append(out, c.extra...)
	if len(out) == 0 {
		out = append(out, 0, 1)
	}
	return out
}
