package test

import (
	"encoding/binary"
	"fmt"

	"golang.org/x/text/encoding/unicode"
)

var utf16LE = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// UTF16 returns the UTF-16 code units of s.
func UTF16(s string) []uint16 {
	b, err := utf16LE.NewEncoder().Bytes([]byte(s))
	if err != nil {
		panic(fmt.Sprintf("encoding %q as UTF-16: %v", s, err))
	}
	u := make([]uint16, len(b)/2)
	for i := range u {
		u[i] = binary.LittleEndian.Uint16(b[2*i:])
	}
	return u
}

// FromUTF16 decodes UTF-16 code units.
func FromUTF16(u []uint16) string {
	b := make([]byte, 2*len(u))
	for i, c := range u {
		binary.LittleEndian.PutUint16(b[2*i:], c)
	}
	s, err := utf16LE.NewDecoder().Bytes(b)
	if err != nil {
		panic(fmt.Sprintf("decoding UTF-16 %v: %v", u, err))
	}
	return string(s)
}

// UTF32 returns the code points of s.
func UTF32(s string) []uint32 {
	rs := []rune(s)
	u := make([]uint32, len(rs))
	for i, r := range rs {
		u[i] = uint32(r)
	}
	return u
}
