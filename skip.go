// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package strmatch

import (
	"iter"
	"strconv"
)

// Direction is the direction a SkipMatcher's skip table was built for.
type Direction uint8

const (
	Forward Direction = iota
	Backward
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "Forward"
	case Backward:
		return "Backward"
	}
	return "Direction(" + strconv.Itoa(int(d)) + ")"
}

// A SkipMatcher searches for a pattern using a Quick Search (Sunday's
// algorithm) skip table. It is the better choice for long patterns or
// large content.
//
// The skip table only serves one direction at a time. Forward and Reverse
// rebuild it when the direction changes, so a SkipMatcher must not be used
// concurrently unless every caller searches in the same direction the
// matcher is already in.
type SkipMatcher[T Elem] struct {
	pattern []T
	raw     []byte
	size    int
	dir     Direction
	table   skipTable
}

// NewSkipMatcher returns a SkipMatcher for pattern with its table built
// for forward searches.
func NewSkipMatcher[T Elem](pattern []T) *SkipMatcher[T] {
	m := &SkipMatcher[T]{size: sizeOf[T]()}
	m.SetMatch(pattern)
	return m
}

// Match returns the pattern.
func (m *SkipMatcher[T]) Match() []T { return m.pattern }

// SetMatch replaces the pattern, copying it, and rebuilds the skip table
// for forward searches.
func (m *SkipMatcher[T]) SetMatch(pattern []T) {
	m.pattern = append([]T(nil), pattern...)
	m.raw = asBytes(m.pattern)
	m.dir = Forward
	m.table.build(m.raw, m.dir)
	logger.Printf("built %s table: pattern bytes: %d", m.dir, len(m.raw))
}

// Direction returns the direction the skip table is currently built for.
func (m *SkipMatcher[T]) Direction() Direction { return m.dir }

func (m *SkipMatcher[T]) setDirection(dir Direction) {
	if m.dir == dir {
		return
	}
	m.dir = dir
	m.table.build(m.raw, dir)
	logger.Printf("rebuilt %s table: pattern bytes: %d", dir, len(m.raw))
}

// Forward returns the index of the first instance of the pattern in content
// at or after offset, or len(content) if there is none.
func (m *SkipMatcher[T]) Forward(content []T, offset int) int {
	offset, ok := clampForward(len(content), len(m.pattern), offset)
	if !ok {
		return len(content)
	}
	m.setDirection(Forward)
	i := scanForward(m.table.find, asBytes(content), m.raw, offset*m.size, m.size)
	return i / m.size
}

// Reverse returns the index of the last instance of the pattern in content
// that starts at or before offset, or len(content) if there is none. The
// match may extend past offset.
func (m *SkipMatcher[T]) Reverse(content []T, offset int) int {
	offset, ok := clampReverse(len(content), len(m.pattern), offset)
	if !ok {
		return len(content)
	}
	m.setDirection(Backward)
	i := scanReverse(m.table.rfind, asBytes(content), m.raw, offset*m.size, m.size)
	return i / m.size
}

// Within reports whether the pattern is within content.
func (m *SkipMatcher[T]) Within(content []T) bool {
	return m.Forward(content, 0) != len(content)
}

// Count counts the instances of the pattern in content. Overlapping
// instances are counted.
func (m *SkipMatcher[T]) Count(content []T) int {
	return count[T](m, content)
}

// Replace returns a copy of content with every instance of the pattern
// replaced by substitute.
func (m *SkipMatcher[T]) Replace(content, substitute []T) []T {
	return NewSubstitutionIterator[T](m, content, substitute).Collect()
}

// Tokens returns the segments of content that do not match interleaved
// with substitute, once per match. Segments may be empty so k matches
// always yield 2k+1 tokens.
func (m *SkipMatcher[T]) Tokens(content, substitute []T) iter.Seq[[]T] {
	return NewSubstitutionIterator[T](m, content, substitute).All()
}

// Indices returns the starting index of every instance of the pattern in
// content, including overlapping instances.
func (m *SkipMatcher[T]) Indices(content []T) iter.Seq[int] {
	return NewMatchIterator[T](m, content).All()
}
