// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package strmatch

import "github.com/charlievieth/strmatch/internal/bytealg"

// A skipTable maps each byte value to the distance the search window moves
// when that byte is found just outside the window. Bytes that do not occur
// in the pattern map to len(pattern)+1.
type skipTable [256]int

// build fills t for searching for p in direction dir.
//
// Forward tables record the distance of the rightmost occurrence of each
// byte from the end of p, backward tables the distance of the leftmost
// occurrence from the start of p.
func (t *skipTable) build(p []byte, dir Direction) {
	n := len(p)
	for i := range t {
		t[i] = n + 1
	}
	if dir == Forward {
		for i := 0; i < n; i++ {
			t[p[i]] = n - i
		}
	} else {
		for i := n - 1; i >= 0; i-- {
			t[p[i]] = i + 1
		}
	}
}

// find returns the index of the first instance of p in s at or after from,
// or len(s). t must have been built Forward for p.
//
// This is Sunday's Quick Search: on a mismatch the byte immediately after
// the window decides how far the window moves.
func (t *skipTable) find(s, p []byte, from int) int {
	n, m := len(s), len(p)
	if from < 0 {
		from = 0
	}
	// Checked before computing last so that a pattern longer than s
	// cannot produce a negative window bound.
	if m == 0 || m > n || from > n-m {
		return n
	}
	c := p[0]
	last := n - m
	for i := from; i <= last; {
		if s[i] == c && bytealg.Equal(s[i:i+m], p) {
			return i
		}
		if i == last {
			break
		}
		i += t[s[i+m]]
	}
	return n
}

// rfind returns the index of the last instance of p in s at or before from,
// or len(s). t must have been built Backward for p.
func (t *skipTable) rfind(s, p []byte, from int) int {
	n, m := len(s), len(p)
	if from < 0 || m == 0 || m > n {
		return n
	}
	if from > n-m {
		from = n - m
	}
	c := p[0]
	for i := from; i >= 0; {
		if s[i] == c && bytealg.Equal(s[i:i+m], p) {
			return i
		}
		if i == 0 {
			break
		}
		i -= t[s[i-1]]
	}
	return n
}
