// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package bytealg

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
)

type indexTest struct {
	s    string
	sep  string
	from int
	out  int // -1 means len(s)
}

// From strings/strings_test.go
var indexTests = []indexTest{
	{"", "", 0, -1},
	{"", "a", 0, -1},
	{"", "foo", 0, -1},
	{"fo", "foo", 0, -1},
	{"foo", "foo", 0, 0},
	{"oofofoofooo", "f", 0, 2},
	{"oofofoofooo", "foo", 0, 4},
	{"barfoobarfoo", "foo", 0, 3},
	{"foo", "", 0, -1},
	{"foo", "o", 0, 1},
	{"jrzm6jjhorimglljrea4w3rlgosts0w2gia17hno2td4qd1jz", "jz", 0, 47},
	{"ekkuk5oft4eq0ocpacknhwouic1uua46unx12l37nioq9wbpnocqks6", "ks6", 0, 52},
	{"xabxcqq", "abcqq", 0, -1},
	{"x0123456x01234567", "01234567", 0, 9},

	// offsets
	{"barfoobarfoo", "foo", 3, 3},
	{"barfoobarfoo", "foo", 4, 9},
	{"barfoobarfoo", "foo", 10, -1},
	{"barfoobarfoo", "foo", 12, -1},
	{"barfoobarfoo", "foo", 100, -1},
	{"barfoobarfoo", "foo", -5, 3},
	{"aaaa", "aa", 1, 1},
	{"aaaa", "aa", 2, 2},
	{"aaaa", "aa", 3, -1},
}

var lastIndexTests = []indexTest{
	{"", "", 0, -1},
	{"", "a", 0, -1},
	{"", "foo", 0, -1},
	{"fo", "foo", 2, -1},
	{"foo", "foo", 3, 0},
	{"foo", "f", 3, 0},
	{"oofofoofooo", "f", 11, 7},
	{"oofofoofooo", "foo", 11, 7},
	{"barfoobarfoo", "foo", 12, 9},
	{"foo", "", 3, -1},
	{"foo", "o", 3, 2},
	{"abcdabcd", "a", 8, 4},

	// offsets
	{"barfoobarfoo", "foo", 9, 9},
	{"barfoobarfoo", "foo", 8, 3},
	{"barfoobarfoo", "foo", 3, 3},
	{"barfoobarfoo", "foo", 2, -1},
	{"barfoobarfoo", "foo", 1 << 40, 9},
	{"barfoobarfoo", "foo", -1, -1},
	{"aaaa", "aa", 1, 1},
	{"aaaa", "aa", 0, 0},
}

func runIndexTests(t *testing.T, name string, fn func(s, sep []byte, from int) int, tests []indexTest) {
	for _, tt := range tests {
		want := tt.out
		if want == -1 {
			want = len(tt.s)
		}
		got := fn([]byte(tt.s), []byte(tt.sep), tt.from)
		if got != want {
			t.Errorf("%s(%q, %q, %d) = %d; want: %d", name, tt.s, tt.sep, tt.from, got, want)
		}
	}
}

func TestIndex(t *testing.T) {
	runIndexTests(t, "Index", Index, indexTests)
}

func TestLastIndex(t *testing.T) {
	runIndexTests(t, "LastIndex", LastIndex, lastIndexTests)
}

// Test every offset against the bytes package.
func TestIndexOffsets(t *testing.T) {
	s := []byte(strings.Repeat("abcab", 16))
	for _, sep := range []string{"a", "ab", "cab", "bca", "abcabc", "x"} {
		for from := -1; from <= len(s)+1; from++ {
			want := len(s)
			if f := max(from, 0); f < len(s) {
				if i := bytes.Index(s[f:], []byte(sep)); i >= 0 {
					want = f + i
				}
			}
			if got := Index(s, []byte(sep), from); got != want {
				t.Errorf("Index(%q, %q, %d) = %d; want: %d", s, sep, from, got, want)
			}

			want = len(s)
			if from >= 0 {
				end := min(from+len(sep), len(s))
				if i := bytes.LastIndex(s[:end], []byte(sep)); i >= 0 {
					want = i
				}
			}
			if got := LastIndex(s, []byte(sep), from); got != want {
				t.Errorf("LastIndex(%q, %q, %d) = %d; want: %d", s, sep, from, got, want)
			}
		}
	}
}

func TestEqual(t *testing.T) {
	for n := 0; n <= 3*wordSize+1; n++ {
		a := []byte(strings.Repeat("x", n))
		if !Equal(a, bytes.Clone(a)) {
			t.Fatalf("Equal(%q, %q) = false", a, a)
		}
		if Equal(a, append(bytes.Clone(a), 'x')) {
			t.Fatalf("Equal(%q, %q) = true; different lengths", a, a)
		}
		for i := 0; i < n; i++ {
			b := bytes.Clone(a)
			b[i] = 'y'
			if Equal(a, b) {
				t.Errorf("Equal(%q, %q) = true", a, b)
			}
		}
	}
}

func TestMaxBruteForce(t *testing.T) {
	if MaxBruteForce < 16 {
		t.Fatalf("MaxBruteForce = %d; want >= 16", MaxBruteForce)
	}
}

var bmbuf []byte

func valName(x int) string {
	if s := x >> 20; s<<20 == x {
		return fmt.Sprintf("%dM", s)
	}
	if s := x >> 10; s<<10 == x {
		return fmt.Sprintf("%dK", s)
	}
	return fmt.Sprint(x)
}

func BenchmarkEqual(b *testing.B) {
	for _, n := range []int{7, 32, 4 << 10} {
		b.Run(valName(n), func(b *testing.B) {
			if len(bmbuf) < 2*n {
				bmbuf = make([]byte, 2*n)
			}
			x, y := bmbuf[:n], bmbuf[n:2*n]
			b.SetBytes(int64(n))
			for i := 0; i < b.N; i++ {
				Equal(x, y)
			}
		})
	}
}
