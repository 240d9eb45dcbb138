// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package typeclass

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoInstance reports that neither an explicit instance nor an
	// applicable default exists for a key.
	ErrNoInstance = errors.New("no instance")

	// ErrAmbiguousInstance reports two registrations for the same key.
	ErrAmbiguousInstance = errors.New("ambiguous instance")

	// ErrDisabledInstance reports a deliberately absent instance, such as
	// comparing a tag with itself when the tag declares no equality.
	ErrDisabledInstance = errors.New("disabled instance")

	// ErrIncompleteDefinition reports an instance that supplies none of its
	// class's minimal primitive sets.
	ErrIncompleteDefinition = errors.New("incomplete minimal definition")

	// ErrPrecondition reports a violated operation precondition.
	ErrPrecondition = errors.New("precondition violation")
)

// fail panics with err.
// Extracted as a noinline function so that dispatch paths remain inlineable.
//
//go:noinline
func fail(err error) {
	panic(err)
}

func formatTags(tags []Tag) string {
	parts := make([]string, len(tags))
	for i, t := range tags {
		parts[i] = t.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// ResolutionError is raised when an operation cannot find an instance.
type ResolutionError struct {
	Class  string
	Tags   []Tag
	Err    error
	Reason string
}

func (e *ResolutionError) Error() string {
	msg := fmt.Sprintf("typeclass: %v: %s for %s", e.Err, e.Class, formatTags(e.Tags))
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

func (e *ResolutionError) Unwrap() error { return e.Err }

// DefinitionError is a configuration error found by [Builder.Build].
type DefinitionError struct {
	Class  string
	Tags   []Tag
	Err    error
	Detail string
}

func (e *DefinitionError) Error() string {
	msg := fmt.Sprintf("typeclass: %v: %s for %s", e.Err, e.Class, formatTags(e.Tags))
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

func (e *DefinitionError) Unwrap() error { return e.Err }

// PreconditionError is raised by an operation called outside its domain,
// e.g. extracting the payload of Nothing.
type PreconditionError struct {
	Op     string
	Detail string
}

func (e *PreconditionError) Error() string {
	return "typeclass: " + e.Op + ": " + e.Detail
}

func (e *PreconditionError) Unwrap() error { return ErrPrecondition }

func precondition(op, detail string) {
	fail(&PreconditionError{Op: op, Detail: detail})
}

// UntaggedError is raised when a value without a tag reaches dispatch.
type UntaggedError struct {
	Value Erased
}

func (e *UntaggedError) Error() string {
	return fmt.Sprintf("typeclass: value of type %T has no tag", e.Value)
}

func (e *UntaggedError) Unwrap() error { return ErrNoInstance }
