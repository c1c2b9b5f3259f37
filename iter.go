// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package strmatch

import "iter"

// A MatchIterator walks the match positions of a Matcher in content. After
// a match at p the search resumes at p+1 so overlapping matches are
// reported.
//
// A MatchIterator is single pass: once exhausted it reports nothing more,
// and ranging over All a second time resumes where the previous loop
// stopped.
type MatchIterator[T Elem] struct {
	m       Matcher[T]
	content []T
	offset  int
	done    bool
}

// NewMatchIterator returns a MatchIterator over content. The content must
// not be modified until iteration is complete.
func NewMatchIterator[T Elem](m Matcher[T], content []T) *MatchIterator[T] {
	return &MatchIterator[T]{m: m, content: content}
}

// Next returns the next match position and true, or len(content) and false
// when there are no more matches.
func (it *MatchIterator[T]) Next() (int, bool) {
	n := len(it.content)
	if it.done {
		return n, false
	}
	i := it.m.Forward(it.content, it.offset)
	if i >= n {
		it.done = true
		return n, false
	}
	it.offset = i + 1
	return i, true
}

// All returns a sequence of the remaining match positions.
func (it *MatchIterator[T]) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		for {
			i, ok := it.Next()
			if !ok || !yield(i) {
				return
			}
		}
	}
}

func count[T Elem](m Matcher[T], content []T) int {
	it := NewMatchIterator(m, content)
	n := 0
	for {
		if _, ok := it.Next(); !ok {
			return n
		}
		n++
	}
}

// A SubstitutionIterator splits content around the matches of a Matcher and
// yields the literal segments interleaved with a substitute. Matches are
// consumed without overlap: the search resumes at the end of each match.
//
// Tokens strictly alternate literal, substitute, literal, so content with k
// matches yields 2k+1 tokens and even tokens are literals. Literal segments
// may be empty: content that starts or ends with a match yields an empty
// first or last segment, and empty content yields one empty token.
//
// Yielded slices alias content and the substitute so they must not be
// modified. The pattern length is read from the Matcher at each match.
type SubstitutionIterator[T Elem] struct {
	m          Matcher[T]
	content    []T
	substitute []T
	prev       int  // end of the last match
	pending    bool // substitute is due
	done       bool
}

// NewSubstitutionIterator returns a SubstitutionIterator over content. The
// content must not be modified until iteration is complete.
func NewSubstitutionIterator[T Elem](m Matcher[T], content, substitute []T) *SubstitutionIterator[T] {
	return &SubstitutionIterator[T]{
		m:          m,
		content:    content,
		substitute: substitute,
	}
}

// Next returns the next token and true, or nil and false when the content
// is exhausted.
func (it *SubstitutionIterator[T]) Next() ([]T, bool) {
	if it.pending {
		it.pending = false
		return it.substitute, true
	}
	if it.done {
		return nil, false
	}
	n := len(it.content)
	if i := it.m.Forward(it.content, it.prev); i < n {
		seg := it.content[it.prev:i]
		it.prev = i + len(it.m.Match())
		it.pending = true
		return seg, true
	}
	it.done = true
	seg := it.content[it.prev:]
	it.prev = n
	return seg, true
}

// All returns a sequence of the remaining tokens.
func (it *SubstitutionIterator[T]) All() iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		for {
			seg, ok := it.Next()
			if !ok || !yield(seg) {
				return
			}
		}
	}
}

// Collect concatenates the remaining tokens into a new slice.
func (it *SubstitutionIterator[T]) Collect() []T {
	out := make([]T, 0, len(it.content))
	for {
		seg, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, seg...)
	}
}
