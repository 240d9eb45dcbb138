// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package typeclass_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"code.hybscloud.com/typeclass"
)

type Erased = typeclass.Erased

// recovered runs f and returns the value it panicked with, or nil.
func recovered(f func()) (v any) {
	defer func() { v = recover() }()
	f()
	return nil
}

// requirePanicsWith asserts that f panics with an error matching target.
func requirePanicsWith(t *testing.T, target error, f func()) {
	t.Helper()
	v := recovered(f)
	require.NotNil(t, v, "expected a panic")
	err, ok := v.(error)
	require.Truef(t, ok, "panic value %v is not an error", v)
	require.ErrorIs(t, err, target)
}

// requireEqual asserts equality under the registry's Comparable instances.
func requireEqual(t *testing.T, r *typeclass.Registry, want, got Erased) {
	t.Helper()
	require.Truef(t, r.Equal(want, got), "got %v, want %v", got, want)
}

func even(x Erased) bool { return x.(int)%2 == 0 }

func seq(xs ...Erased) typeclass.Sequence { return typeclass.MakeSequence(xs...) }
