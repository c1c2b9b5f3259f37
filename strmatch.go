// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package strmatch

import (
	"io"
	"iter"
	"log"
	"os"
	"unsafe"

	"golang.org/x/exp/constraints"

	"github.com/charlievieth/strmatch/internal/bytealg"
)

// WARN: DEV ONLY
const debug = false

var logger = newLogger()

func newLogger() *log.Logger {
	var w io.Writer = io.Discard
	if debug {
		w = os.Stderr
	}
	return log.New(w, "strmatch: ", log.Lshortfile)
}

// Elem is the set of element types that can be searched. Elements are
// compared by their in-memory bytes.
type Elem interface {
	constraints.Integer
}

// A Matcher searches content for a fixed pattern.
//
// Positions are element indexes. A position equal to len(content) means no
// match was found.
type Matcher[T Elem] interface {
	// Forward returns the index of the first match that starts at or after
	// offset.
	Forward(content []T, offset int) int

	// Reverse returns the index of the last match that starts at or before
	// offset; the match itself may extend past offset. Use len(content) to
	// search from the end.
	Reverse(content []T, offset int) int

	// Within reports whether the pattern occurs in content.
	Within(content []T) bool

	// Count returns the number of possibly overlapping matches in content.
	Count(content []T) int

	// Replace returns a copy of content with every non-overlapping match
	// replaced by substitute.
	Replace(content, substitute []T) []T

	// Tokens returns the segments of content between matches interleaved
	// with substitute: literal, substitute, literal. Literal segments may be
	// empty, so k matches yield 2k+1 tokens.
	Tokens(content, substitute []T) iter.Seq[[]T]

	// Indices returns the start of each possibly overlapping match.
	Indices(content []T) iter.Seq[int]

	// Match returns the pattern. It must not be modified.
	Match() []T

	// SetMatch replaces the pattern.
	SetMatch(pattern []T)
}

var (
	_ Matcher[byte]   = (*BruteMatcher[byte])(nil)
	_ Matcher[byte]   = (*SkipMatcher[byte])(nil)
	_ Matcher[uint16] = (*SkipMatcher[uint16])(nil)
)

// New returns a Matcher for pattern. Short patterns get a BruteMatcher and
// longer ones a SkipMatcher.
func New[T Elem](pattern []T) Matcher[T] {
	if len(pattern)*sizeOf[T]() <= bytealg.MaxBruteForce {
		return NewBruteMatcher(pattern)
	}
	return NewSkipMatcher(pattern)
}

// NewString returns a Matcher for the bytes of pattern.
func NewString(pattern string) Matcher[byte] {
	return New([]byte(pattern))
}

// CountString counts the possibly overlapping instances of substr in s.
// An empty substr never matches.
func CountString(s, substr string) int {
	return NewString(substr).Count([]byte(s))
}

// ReplaceString returns a copy of s with all non-overlapping instances of
// old replaced by new.
func ReplaceString(s, old, new string) string {
	return string(NewString(old).Replace([]byte(s), []byte(new)))
}

func sizeOf[T Elem]() int {
	var v T
	return int(unsafe.Sizeof(v))
}

// asBytes returns the raw in-memory bytes of s without copying.
func asBytes[T Elem](s []T) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(s))), len(s)*sizeOf[T]())
}

// A finder returns the byte index of the first (or last) instance of sep in
// s starting at from, or len(s).
type finder func(s, sep []byte, from int) int

// scanForward calls find until it reports a match that starts on an element
// boundary. Matches that straddle two elements are skipped.
func scanForward(find finder, s, sep []byte, from, size int) int {
	for {
		i := find(s, sep, from)
		if i == len(s) || i%size == 0 {
			return i
		}
		from = i + 1
	}
}

// scanReverse is the mirror of scanForward.
func scanReverse(find finder, s, sep []byte, from, size int) int {
	for {
		i := find(s, sep, from)
		if i == len(s) || i%size == 0 {
			return i
		}
		from = i - 1
	}
}

// clampForward normalizes a forward search offset. It returns false if no
// search is needed.
func clampForward(n, patlen, offset int) (int, bool) {
	if offset < 0 {
		offset = 0
	}
	if patlen == 0 || offset >= n || patlen > n-offset {
		return n, false
	}
	return offset, true
}

// clampReverse normalizes a reverse search offset so that a window starting
// at the returned offset fits in content.
func clampReverse(n, patlen, offset int) (int, bool) {
	if offset < 0 || patlen == 0 || patlen > n {
		return n, false
	}
	if offset > n-patlen {
		offset = n - patlen
	}
	return offset, true
}
