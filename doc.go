// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

// Package strmatch implements fixed pattern search over slices of bytes or
// wider integer elements.
//
// Two interchangeable matchers implement the [Matcher] interface:
// [BruteMatcher], which hands the search to a plain index primitive, and
// [SkipMatcher], which uses a Quick Search (Sunday's algorithm) skip table
// and wins for long patterns and large content. [New] picks one based on
// the pattern length.
//
// A failed search returns the length of the content instead of -1, so a
// result can always be used as a position in the content.
//
// Matching is byte oriented. Wider elements are compared by their raw
// in-memory bytes and a match must start on an element boundary. No
// attempt is made to understand text encodings.
package strmatch

// BUG(charlie): Replace and Tokens consume matches without overlap while
// Count and Indices report overlapping matches, so for self-overlapping
// patterns Count may exceed the number of substitutions made by Replace.
