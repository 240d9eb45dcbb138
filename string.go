// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package typeclass

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// Tags of [String] and [Char] values.
var (
	StringTag = NewTag("String")
	CharTag   = NewTag("Char")
)

// Char is a constant character: the element type of [String] and the only
// key type a String can be searched for.
type Char rune

// Tag implements [Tagged].
func (Char) Tag() Tag { return CharTag }

func (c Char) String() string { return strconv.QuoteRune(rune(c)) }

// String is an immutable sequence of characters.
type String struct {
	s string
}

// MakeString returns the String holding s.
func MakeString(s string) String { return String{s: s} }

// Tag implements [Tagged].
func (String) Tag() Tag { return StringTag }

// Value returns the underlying Go string.
func (s String) Value() string { return s.s }

// Len returns the number of characters.
func (s String) Len() int { return utf8.RuneCountInString(s.s) }

func (s String) String() string { return strconv.Quote(s.s) }

// StringModel declares the instances of [String] and [Char].
// Char embeds into Int32, so characters compare and add with integers as
// int32. Characters alone add as Char.
func StringModel(b *Builder) {
	t := StringTag
	b.Instance(Comparable{
		Equal: func(_ *Registry, x, y Erased) bool { return x.(String).s == y.(String).s },
	}, t, t)
	// Byte order of UTF-8 is code point order.
	b.Instance(Orderable{
		Less: func(_ *Registry, x, y Erased) bool { return x.(String).s < y.(String).s },
	}, t, t)

	b.Instance(Iterable{
		Head: func(_ *Registry, xs Erased) Erased {
			c, _ := utf8.DecodeRuneInString(xs.(String).s)
			return Char(c)
		},
		Tail: func(_ *Registry, xs Erased) Erased {
			s := xs.(String).s
			_, n := utf8.DecodeRuneInString(s)
			return String{s: s[n:]}
		},
		IsEmpty: func(_ *Registry, xs Erased) bool { return xs.(String).s == "" },
	}, t)

	b.Instance(Foldable{
		Unpack: func(_ *Registry, xs Erased, f func(...Erased) Erased) Erased {
			s := xs.(String).s
			args := make([]Erased, 0, len(s))
			for _, c := range s {
				args = append(args, Char(c))
			}
			return f(args...)
		},
		Length: func(_ *Registry, xs Erased) int { return xs.(String).Len() },
	}, t)

	b.Instance(Searchable{
		FindIf: func(_ *Registry, xs Erased, pred func(Erased) bool) Optional {
			for _, c := range xs.(String).s {
				if pred(Char(c)) {
					return Just(Char(c))
				}
			}
			return Nothing()
		},
		Contains: func(_ *Registry, xs, key Erased) bool {
			return strings.ContainsRune(xs.(String).s, rune(key.(Char)))
		},
		Find: func(_ *Registry, xs, key Erased) Optional {
			if c := key.(Char); strings.ContainsRune(xs.(String).s, rune(c)) {
				return Just(c)
			}
			return Nothing()
		},
		Keys: func(k Tag) bool { return k == CharTag },
	}, t)

	ordered[Char](b, CharTag)
	b.Embed(CharTag, Int32Tag, func(v Erased) Erased { return int32(v.(Char)) })
}
