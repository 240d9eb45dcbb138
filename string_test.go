// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package typeclass_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"code.hybscloud.com/typeclass"
)

func str(s string) typeclass.String { return typeclass.MakeString(s) }

func TestStringValue(t *testing.T) {
	s := str("héllo")
	assert.Equal(t, "héllo", s.Value())
	assert.Equal(t, 5, s.Len())
	assert.Equal(t, `"héllo"`, s.String())
	assert.Equal(t, typeclass.StringTag, typeclass.TagOf(s))
	assert.Equal(t, `'é'`, typeclass.Char('é').String())
}

func TestStringOrder(t *testing.T) {
	r := typeclass.Default()

	assert.True(t, r.Equal(str("abc"), str("abc")))
	assert.False(t, r.Equal(str("abc"), str("abd")))
	assert.True(t, r.Less(str("abc"), str("abd")))
	assert.True(t, r.Less(str("ab"), str("abc")))
	assert.True(t, r.Less(str(""), str("a")))
	assert.False(t, r.Less(str("b"), str("abc")))
	assert.False(t, r.Equal(str("a"), "a"), "String and Text are unrelated")
}

func TestStringFoldable(t *testing.T) {
	r := typeclass.Default()

	assert.Equal(t, 5, r.Length(str("héllo")))
	assert.Equal(t, 0, r.Length(str("")))
	assert.Equal(t, 3, r.Count(str("banana"), typeclass.Char('a')))
	assert.Equal(t, []Erased{typeclass.Char('h'), typeclass.Char('é')}, r.Elements(str("hé")))
	assert.Equal(t, int32('a'+1), r.Sum(seq(typeclass.Char('a'), int8(1))))
	assert.Equal(t, typeclass.Char('a'+'b'), r.Sum(str("ab")))
	assert.Equal(t, typeclass.Char(2*3), r.Product(str("\x02\x03")))
	assert.Equal(t, typeclass.Char('a'+'b'), r.Add(typeclass.Char('a'), typeclass.Char('b')))
	assert.Equal(t, typeclass.Char('z'), r.Maximum(str("azb")))
}

func TestStringIterable(t *testing.T) {
	r := typeclass.Default()
	s := str("héllo")

	assert.Equal(t, typeclass.Char('h'), r.Head(s))
	requireEqual(t, r, str("éllo"), r.Tail(s))
	assert.Equal(t, typeclass.Char('é'), r.At(s, 1))
	assert.Equal(t, typeclass.Char('o'), r.Last(s))
	requireEqual(t, r, str("lo"), r.Drop(s, 3))
	requireEqual(t, r, str("éllo"), r.DropWhile(s, func(c Erased) bool { return c == typeclass.Char('h') }))
	assert.True(t, r.IsEmpty(str("")))

	requirePanicsWith(t, typeclass.ErrPrecondition, func() { r.Head(str("")) })
	requirePanicsWith(t, typeclass.ErrPrecondition, func() { r.At(s, 5) })
}

// TestStringSearchKeys verifies only characters are accepted as keys.
func TestStringSearchKeys(t *testing.T) {
	r := typeclass.Default()
	s := str("hello")

	assert.True(t, r.Contains(s, typeclass.Char('l')))
	assert.False(t, r.Contains(s, typeclass.Char('z')))
	requireEqual(t, r, typeclass.Just(typeclass.Char('e')), r.Find(s, typeclass.Char('e')))
	assert.True(t, r.Find(s, typeclass.Char('z')).IsNothing())
	assert.True(t, r.AnyOf(s, func(c Erased) bool { return c.(typeclass.Char) > 'k' }))

	requirePanicsWith(t, typeclass.ErrDisabledInstance, func() {
		r.Contains(s, "l")
	})
	requirePanicsWith(t, typeclass.ErrDisabledInstance, func() {
		r.Find(s, int32('l'))
	})

	require.NoError(t, r.CheckKey(s, typeclass.Char('l')))
	err := r.CheckKey(s, "l")
	require.ErrorIs(t, err, typeclass.ErrDisabledInstance)
	var res *typeclass.ResolutionError
	require.ErrorAs(t, err, &res)
	assert.Equal(t, "Searchable", res.Class)
	require.ErrorIs(t, r.CheckKey(s, struct{}{}), typeclass.ErrNoInstance)
}

// TestCharEmbedding verifies characters compare with int32 through the
// Char to Int32 embedding.
func TestCharEmbedding(t *testing.T) {
	r := typeclass.Default()

	assert.True(t, r.Equal(typeclass.Char('a'), int32(97)))
	assert.True(t, r.Equal(int64(97), typeclass.Char('a')))
	assert.True(t, r.Less(typeclass.Char('a'), 98))
	assert.False(t, r.Equal(typeclass.Char('a'), "a"))

	c, ok := r.Common(typeclass.CharTag, typeclass.Int8Tag)
	require.True(t, ok)
	assert.Equal(t, typeclass.Int32Tag, c)
}
