package bytealg

import "encoding/binary"

const wordSize = 8

// Equal reports whether a and b are the same length and contain the same
// bytes. Full words are compared while more than one word remains and the
// tail is compared byte by byte.
func Equal(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	n := len(a)
	i := 0
	for ; n-i > wordSize; i += wordSize {
		if binary.LittleEndian.Uint64(a[i:]) != binary.LittleEndian.Uint64(b[i:]) {
			return false
		}
	}
	for ; i < n; i++ {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
