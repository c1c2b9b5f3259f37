// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

// Package bytealg contains the raw byte search primitives shared by the
// strmatch matchers.
//
// Unlike the bytes package, which reports a missing match with -1, every
// search here reports it with len(s) so that callers can treat the result
// as a position in s.
package bytealg

import "bytes"

// Index returns the index of the first instance of sep in s that starts at
// or after from, or len(s) if there is none. A negative from is treated as
// zero. An empty sep never matches.
func Index(s, sep []byte, from int) int {
	n := len(s)
	if from < 0 {
		from = 0
	}
	if len(sep) == 0 || from >= n || len(sep) > n-from {
		return n
	}
	if i := bytes.Index(s[from:], sep); i >= 0 {
		return from + i
	}
	return n
}

// LastIndex returns the index of the last instance of sep in s that starts
// at or before from, or len(s) if there is none. A from past the end of s
// is clamped. A negative from or an empty sep never matches.
func LastIndex(s, sep []byte, from int) int {
	n := len(s)
	if from < 0 || len(sep) == 0 || len(sep) > n {
		return n
	}
	if from > n-len(sep) {
		from = n - len(sep)
	}
	if i := bytes.LastIndex(s[:from+len(sep)], sep); i >= 0 {
		return i
	}
	return n
}
