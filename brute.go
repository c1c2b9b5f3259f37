// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package strmatch

import (
	"iter"

	"github.com/charlievieth/strmatch/internal/bytealg"
)

// A BruteMatcher searches for a pattern without any preprocessing. It is
// the better choice when either the pattern or the content is short.
//
// A BruteMatcher never mutates itself while searching so it is safe for
// concurrent use as long as SetMatch is not called.
type BruteMatcher[T Elem] struct {
	pattern []T
	raw     []byte
	size    int
}

// NewBruteMatcher returns a BruteMatcher for pattern.
func NewBruteMatcher[T Elem](pattern []T) *BruteMatcher[T] {
	m := &BruteMatcher[T]{size: sizeOf[T]()}
	m.SetMatch(pattern)
	return m
}

// Match returns the pattern.
func (m *BruteMatcher[T]) Match() []T { return m.pattern }

// SetMatch replaces the pattern. The pattern is copied.
func (m *BruteMatcher[T]) SetMatch(pattern []T) {
	m.pattern = append([]T(nil), pattern...)
	m.raw = asBytes(m.pattern)
}

// Forward returns the index of the first instance of the pattern in content
// at or after offset, or len(content) if there is none.
func (m *BruteMatcher[T]) Forward(content []T, offset int) int {
	offset, ok := clampForward(len(content), len(m.pattern), offset)
	if !ok {
		return len(content)
	}
	i := scanForward(bytealg.Index, asBytes(content), m.raw, offset*m.size, m.size)
	return i / m.size
}

// Reverse returns the index of the last instance of the pattern in content
// that starts at or before offset, or len(content) if there is none. The
// match may extend past offset.
func (m *BruteMatcher[T]) Reverse(content []T, offset int) int {
	offset, ok := clampReverse(len(content), len(m.pattern), offset)
	if !ok {
		return len(content)
	}
	i := scanReverse(bytealg.LastIndex, asBytes(content), m.raw, offset*m.size, m.size)
	return i / m.size
}

// Within reports whether the pattern is within content.
func (m *BruteMatcher[T]) Within(content []T) bool {
	return m.Forward(content, 0) != len(content)
}

// Count counts the instances of the pattern in content. Overlapping
// instances are counted.
func (m *BruteMatcher[T]) Count(content []T) int {
	return count[T](m, content)
}

// Replace returns a copy of content with every instance of the pattern
// replaced by substitute.
func (m *BruteMatcher[T]) Replace(content, substitute []T) []T {
	return NewSubstitutionIterator[T](m, content, substitute).Collect()
}

// Tokens returns the segments of content that do not match interleaved
// with substitute, once per match. Segments may be empty so k matches
// always yield 2k+1 tokens.
func (m *BruteMatcher[T]) Tokens(content, substitute []T) iter.Seq[[]T] {
	return NewSubstitutionIterator[T](m, content, substitute).All()
}

// Indices returns the starting index of every instance of the pattern in
// content, including overlapping instances.
func (m *BruteMatcher[T]) Indices(content []T) iter.Seq[int] {
	return NewMatchIterator[T](m, content).All()
}
