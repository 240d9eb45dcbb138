// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package typeclass

import "strconv"

// Erased represents a type-erased value flowing through instance dispatch.
// Heterogeneous structures (a [Sequence] may hold an int next to an
// [Optional]) carry their elements as Erased; concrete types are recovered
// via type assertions inside the instance that owns them.
type Erased = any

// Tag is the dispatch key of a family of values sharing one set of
// instances. A tag may carry a size parameter (Sequence<3>); resolution
// falls back from a parameterized tag to its family.
//
// Tag is comparable and can be used as a map key.
type Tag struct {
	family string
	param  int
	sized  bool
}

// NewTag returns the unparameterized tag of the named family.
func NewTag(family string) Tag {
	return Tag{family: family}
}

// Sized returns t's family parameterized by n.
func (t Tag) Sized(n int) Tag {
	return Tag{family: t.family, param: n, sized: true}
}

// Family returns t without its parameter.
func (t Tag) Family() Tag {
	return Tag{family: t.family}
}

// Param returns the size parameter and true, or zero and false.
func (t Tag) Param() (int, bool) {
	return t.param, t.sized
}

// IsZero reports whether t is the zero Tag, which names no family.
func (t Tag) IsZero() bool {
	return t.family == ""
}

func (t Tag) String() string {
	if t.sized {
		return t.family + "<" + strconv.Itoa(t.param) + ">"
	}
	return t.family
}

// Tagged is implemented by every model value.
type Tagged interface {
	Tag() Tag
}

// Tags of the built-in Go scalar types.
var (
	BoolTag    = NewTag("Bool")
	IntTag     = NewTag("Int")
	Int8Tag    = NewTag("Int8")
	Int16Tag   = NewTag("Int16")
	Int32Tag   = NewTag("Int32")
	Int64Tag   = NewTag("Int64")
	UintTag    = NewTag("Uint")
	Uint8Tag   = NewTag("Uint8")
	Uint16Tag  = NewTag("Uint16")
	Uint32Tag  = NewTag("Uint32")
	Uint64Tag  = NewTag("Uint64")
	Float32Tag = NewTag("Float32")
	Float64Tag = NewTag("Float64")
	TextTag    = NewTag("Text")
)

// LookupTag returns the tag of v and true, or the zero Tag and false when v
// is neither [Tagged] nor a built-in scalar.
func LookupTag(v Erased) (Tag, bool) {
	switch x := v.(type) {
	case Tagged:
		return x.Tag(), true
	case bool:
		return BoolTag, true
	case int:
		return IntTag, true
	case int8:
		return Int8Tag, true
	case int16:
		return Int16Tag, true
	case int32:
		return Int32Tag, true
	case int64:
		return Int64Tag, true
	case uint:
		return UintTag, true
	case uint8:
		return Uint8Tag, true
	case uint16:
		return Uint16Tag, true
	case uint32:
		return Uint32Tag, true
	case uint64:
		return Uint64Tag, true
	case float32:
		return Float32Tag, true
	case float64:
		return Float64Tag, true
	case string:
		return TextTag, true
	}
	return Tag{}, false
}

// TagOf returns the tag of v.
// Panics with [*UntaggedError] if v has no tag.
func TagOf(v Erased) Tag {
	t, ok := LookupTag(v)
	if !ok {
		fail(&UntaggedError{Value: v})
	}
	return t
}
