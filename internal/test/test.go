// Package test contains the test tables and reference implementations shared
// by the BruteMatcher and SkipMatcher tests.
package test

import (
	"strings"
	"testing"
)

// IndexFunc searches s for sep starting at offset and returns len(s) if
// there is no match.
type IndexFunc func(s, sep string, offset int) int

type CountFunc func(s, sep string) int

type ReplaceFunc func(s, old, new string) string

type TokensFunc func(s, old, new string) []string

type IndicesFunc func(s, sep string) []int

// ByteIndexFunc adapts a byte slice search function to an IndexFunc.
func ByteIndexFunc(fn func(s, sep []byte, offset int) int) IndexFunc {
	return func(s, sep string, offset int) int {
		return fn([]byte(s), []byte(sep), offset)
	}
}

type indexTest struct {
	s   string
	sep string
	out int // -1 means no match (len(s))
}

func (tt indexTest) want() int {
	if tt.out == -1 {
		return len(tt.s)
	}
	return tt.out
}

// An empty sep never matches.
var indexTests = []indexTest{
	{"", "", -1},
	{"", "a", -1},
	{"", "foo", -1},
	{"fo", "foo", -1},
	{"foo", "foo", 0},
	{"oofofoofooo", "f", 2},
	{"oofofoofooo", "foo", 4},
	{"barfoobarfoo", "foo", 3},
	{"foo", "", -1},
	{"foo", "o", 1},
	{"abcABCabc", "A", 3},
	{"jrzm6jjhorimglljrea4w3rlgosts0w2gia17hno2td4qd1jz", "jz", 47},
	{"ekkuk5oft4eq0ocpacknhwouic1uua46unx12l37nioq9wbpnocqks6", "ks6", 52},
	{"999f2xmimunbuyew5vrkla9cpwhmxan8o98ec", "98ec", 33},
	{"9lpt9r98i04k8bz6c6dsrthb96bhi", "96bhi", 24},
	{"55u558eqfaod2r2gu42xxsu631xf0zobs5840vl", "5840vl", 33},
	// cases with one byte strings
	{"", "a", -1},
	{"x", "a", -1},
	{"x", "x", 0},
	{"abc", "a", 0},
	{"abc", "b", 1},
	{"abc", "c", 2},
	{"abc", "x", -1},
	// short strings
	{"", "ab", -1},
	{"bc", "ab", -1},
	{"ab", "ab", 0},
	{"xab", "ab", 1},
	{"xab"[:2], "ab", -1},
	{"", "abc", -1},
	{"xbc", "abc", -1},
	{"abc", "abc", 0},
	{"xabc", "abc", 1},
	{"xabc"[:3], "abc", -1},
	{"xabxc", "abc", -1},
	{"", "abcd", -1},
	{"xbcd", "abcd", -1},
	{"abcd", "abcd", 0},
	{"xabcd", "abcd", 1},
	{"xyabcd"[:5], "abcd", -1},
	{"xbcqq", "abcqq", -1},
	{"abcqq", "abcqq", 0},
	{"xabcqq", "abcqq", 1},
	{"xyabcqq"[:6], "abcqq", -1},
	{"xabxcqq", "abcqq", -1},
	{"xabcqxq", "abcqq", -1},
	{"", "01234567", -1},
	{"32145678", "01234567", -1},
	{"01234567", "01234567", 0},
	{"x01234567", "01234567", 1},
	{"x0123456x01234567", "01234567", 9},
	{"xx01234567"[:9], "01234567", -1},
	{"", "0123456789", -1},
	{"3214567844", "0123456789", -1},
	{"0123456789", "0123456789", 0},
	{"x0123456789", "0123456789", 1},
	{"x012345678x0123456789", "0123456789", 11},
	{"xyz0123456789"[:12], "0123456789", -1},
	{"x01234567x89", "0123456789", -1},
	{"", "0123456789012345", -1},
	{"3214567889012345", "0123456789012345", -1},
	{"0123456789012345", "0123456789012345", 0},
	{"x0123456789012345", "0123456789012345", 1},
	{"x012345678901234x0123456789012345", "0123456789012345", 17},
	{"", "01234567890123456789", -1},
	{"32145678890123456789", "01234567890123456789", -1},
	{"01234567890123456789", "01234567890123456789", 0},
	{"x01234567890123456789", "01234567890123456789", 1},
	{"x0123456789012345678x01234567890123456789", "01234567890123456789", 21},
	{"xyz01234567890123456789"[:22], "01234567890123456789", -1},
	{"", "0123456789012345678901234567890", -1},
	{"321456788901234567890123456789012345678911", "0123456789012345678901234567890", -1},
	{"0123456789012345678901234567890", "0123456789012345678901234567890", 0},
	{"x0123456789012345678901234567890", "0123456789012345678901234567890", 1},
	{"x012345678901234567890123456789x0123456789012345678901234567890", "0123456789012345678901234567890", 32},
	{"xyz0123456789012345678901234567890"[:33], "0123456789012345678901234567890", -1},
	{"", "01234567890123456789012345678901", -1},
	{"32145678890123456789012345678901234567890211", "01234567890123456789012345678901", -1},
	{"01234567890123456789012345678901", "01234567890123456789012345678901", 0},
	{"x01234567890123456789012345678901", "01234567890123456789012345678901", 1},
	{"x0123456789012345678901234567890x01234567890123456789012345678901", "01234567890123456789012345678901", 33},
	{"xyz01234567890123456789012345678901"[:34], "01234567890123456789012345678901", -1},
	{"xxxxxx012345678901234567890123456789012345678901234567890123456789012", "012345678901234567890123456789012345678901234567890123456789012", 6},
	{"", "0123456789012345678901234567890123456789", -1},
	{"xx012345678901234567890123456789012345678901234567890123456789012", "0123456789012345678901234567890123456789", 2},
	{"xx012345678901234567890123456789012345678901234567890123456789012"[:41], "0123456789012345678901234567890123456789", -1},
	{"xx012345678901234567890123456789012345678901234567890123456789012", "0123456789012345678901234567890123456xxx", -1},
	{"xx0123456789012345678901234567890123456789012345678901234567890120123456789012345678901234567890123456xxx", "0123456789012345678901234567890123456xxx", 65},
	{"oxoxoxoxoxoxoxoxoxoxoxoy", "oy", 22},
	{"oxoxoxoxoxoxoxoxoxoxoxox", "oy", -1},
	{strings.Repeat("ox", 64) + "yox", "oy" + strings.Repeat("ox", 32), -1},
	{strings.Repeat("ox", 64) + "oy" + strings.Repeat("ox", 32), "oy" + strings.Repeat("ox", 32), 128},
	// the byte after the window is the last byte of s
	{"abcx", "abc", 0},
	{"xabc", "abc", 1},
	{"xxabd", "abd", 2},
	// bytes outside the ASCII range
	{"abc☻", "☻", 3},
	{"123abc☻", "abc☻", 3},
	{"oxoxoxoxoxoxoxoxoxoxoxoyoα", "oα", 24},
	{"\xff\xfe\xff\xff", "\xff\xff", 2},
	{"\x00\x00\x01\x00", "\x01\x00", 2},
	// worked examples
	{"$foo&&foo*", "foo", 1},
	{"bbaaa", "aaa", 2},
	{"bbbbb", "aaa", -1},
}

var lastIndexTests = []indexTest{
	{"", "", -1},
	{"", "a", -1},
	{"", "foo", -1},
	{"fo", "foo", -1},
	{"foo", "foo", 0},
	{"foo", "f", 0},
	{"oofofoofooo", "f", 7},
	{"oofofoofooo", "foo", 7},
	{"barfoobarfoo", "foo", 9},
	{"foo", "", -1},
	{"foo", "o", 2},
	{"abcdabcd", "a", 4},
	{"abcdabcd", "cda", 2},
	{"aaaa", "aa", 2},
	{"abcx", "abc", 0},
	{"xabc", "abc", 1},
	{"x0123456789012345x0123456789012345", "0123456789012345", 18},
	{"0123456789012345678901234567890x", "0123456789012345678901234567890", 0},
	{"☻abc☻", "☻", 6},
	{"\xff\xff\xfe\xff", "\xff\xff", 0},
	{"bbaaa", "aaa", 2},
	{"bbbbb", "aaa", -1},
}

func runIndexTests(t *testing.T, fn IndexFunc, name string, tests []indexTest, offset func(s string) int) {
	t.Helper()
	for _, tt := range tests {
		off := offset(tt.s)
		if got := fn(tt.s, tt.sep, off); got != tt.want() {
			t.Errorf("%s(%q, %q, %d) = %d; want: %d", name, tt.s, tt.sep, off, got, tt.want())
		}
	}
}

// Index tests forward searches from offset zero.
func Index(t *testing.T, fn IndexFunc) {
	runIndexTests(t, fn, "Forward", indexTests, func(string) int { return 0 })
}

// LastIndex tests reverse searches from the end of s.
func LastIndex(t *testing.T, fn IndexFunc) {
	runIndexTests(t, fn, "Reverse", lastIndexTests, func(s string) int { return len(s) })
}

type offsetTest struct {
	s      string
	sep    string
	offset int
	out    int // -1 means len(s)
}

var indexOffsetTests = []offsetTest{
	{"barfoobarfoo", "foo", 0, 3},
	{"barfoobarfoo", "foo", 3, 3},
	{"barfoobarfoo", "foo", 4, 9},
	{"barfoobarfoo", "foo", 9, 9},
	{"barfoobarfoo", "foo", 10, -1},
	{"barfoobarfoo", "foo", 12, -1},
	{"barfoobarfoo", "foo", 1 << 40, -1},
	{"barfoobarfoo", "foo", -1, 3},
	{"aaaa", "aa", 1, 1},
	{"aaaa", "aa", 2, 2},
	{"aaaa", "aa", 3, -1},
	{"", "a", 0, -1},
	{"", "a", 5, -1},
	{"x0123456789012345x0123456789012345", "0123456789012345", 2, 18},
}

var lastIndexOffsetTests = []offsetTest{
	{"barfoobarfoo", "foo", 12, 9},
	{"barfoobarfoo", "foo", 9, 9},
	{"barfoobarfoo", "foo", 8, 3},
	{"barfoobarfoo", "foo", 3, 3},
	{"barfoobarfoo", "foo", 2, -1},
	{"barfoobarfoo", "foo", 0, -1},
	{"barfoobarfoo", "foo", -1, -1},
	{"barfoobarfoo", "foo", 1 << 40, 9},
	{"aaaa", "aa", 1, 1},
	{"aaaa", "aa", 0, 0},
	{"", "a", 0, -1},
	{"x0123456789012345x0123456789012345", "0123456789012345", 17, 1},
}

func runOffsetTests(t *testing.T, fn IndexFunc, name string, tests []offsetTest) {
	t.Helper()
	for _, tt := range tests {
		want := tt.out
		if want == -1 {
			want = len(tt.s)
		}
		if got := fn(tt.s, tt.sep, tt.offset); got != want {
			t.Errorf("%s(%q, %q, %d) = %d; want: %d", name, tt.s, tt.sep, tt.offset, got, want)
		}
	}
}

// IndexOffset tests forward searches from non-zero and out of range offsets.
func IndexOffset(t *testing.T, fn IndexFunc) {
	runOffsetTests(t, fn, "Forward", indexOffsetTests)
}

// LastIndexOffset tests reverse searches from inner and out of range offsets.
func LastIndexOffset(t *testing.T, fn IndexFunc) {
	runOffsetTests(t, fn, "Reverse", lastIndexOffsetTests)
}

var countTests = []struct {
	s, sep string
	num    int
}{
	{"", "", 0},
	{"", "notempty", 0},
	{"notempty", "", 0},
	{"smaller", "not smaller", 0},
	{"12345678987654321", "6", 2},
	{"611161116", "6", 3},
	{"notequal", "NotEqual", 0},
	{"equal", "equal", 1},
	{"abc1231231123q", "123", 3},
	{"11111", "11", 4},
	{"aaaa", "aa", 3},
	{"aaaaa", "aaa", 3},
	{"abababab", "abab", 3},
	{"$foo&&foo*", "foo", 2},
	{strings.Repeat("ab", 256), "ab", 256},
	{strings.Repeat("a", 64), strings.Repeat("a", 32), 33},
}

// Count tests overlapping match counts.
func Count(t *testing.T, fn CountFunc) {
	for _, tt := range countTests {
		if num := fn(tt.s, tt.sep); num != tt.num {
			t.Errorf("Count(%q, %q) = %d, want %d", tt.s, tt.sep, num, tt.num)
		}
	}
}

var indicesTests = []struct {
	s, sep string
	out    []int
}{
	{"", "", nil},
	{"", "a", nil},
	{"abc", "", nil},
	{"abc", "x", nil},
	{"$foo&&foo*", "foo", []int{1, 6}},
	{"aaaa", "aa", []int{0, 1, 2}},
	{"abababab", "abab", []int{0, 2, 4}},
	{"bbaaa", "aaa", []int{2}},
	{strings.Repeat("x", 40) + "0123456789012345678901234567890123456789", "0123456789012345678901234567890123456789", []int{40}},
}

// Indices tests match position enumeration.
func Indices(t *testing.T, fn IndicesFunc) {
	for _, tt := range indicesTests {
		got := fn(tt.s, tt.sep)
		if !equalInts(got, tt.out) {
			t.Errorf("Indices(%q, %q) = %v, want %v", tt.s, tt.sep, got, tt.out)
		}
	}
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

type replaceTest struct {
	s, old, new string
	out         string
	tokens      []string
}

var replaceTests = []replaceTest{
	{"", "", "x", "", []string{""}},
	{"", "a", "x", "", []string{""}},
	{"abc", "", "x", "abc", []string{"abc"}},
	{"abc", "x", "y", "abc", []string{"abc"}},
	{"$foo&&foo*", "foo", "bar", "$bar&&bar*", []string{"$", "bar", "&&", "bar", "*"}},
	{"foofoo", "foo", "bar", "barbar", []string{"", "bar", "", "bar", ""}},
	{"foo", "foo", "", "", []string{"", "", ""}},
	{"xfoo", "foo", "", "x", []string{"x", "", ""}},
	{"foox", "foo", "y", "yx", []string{"", "y", "x"}},
	{"aaaa", "aa", "b", "bb", []string{"", "b", "", "b", ""}},
	{"aaaaa", "aa", "b", "bba", []string{"", "b", "", "b", "a"}},
	{"banana", "a", "<>", "b<>n<>n<>", []string{"b", "<>", "n", "<>", "n", "<>", ""}},
	{"banana", "an", "AN", "bANANa", []string{"b", "AN", "", "AN", "a"}},
	{
		"x0123456789012345678901234567890123456789y",
		"0123456789012345678901234567890123456789",
		"-",
		"x-y",
		[]string{"x", "-", "y"},
	},
}

// Replace tests substitution of every non-overlapping match.
func Replace(t *testing.T, fn ReplaceFunc) {
	for _, tt := range replaceTests {
		if s := fn(tt.s, tt.old, tt.new); s != tt.out {
			t.Errorf("Replace(%q, %q, %q) = %q, want %q", tt.s, tt.old, tt.new, s, tt.out)
		}
	}
}

// Tokens tests the token sequence produced while substituting and that the
// tokens concatenate to the result of Replace.
func Tokens(t *testing.T, fn TokensFunc) {
	for _, tt := range replaceTests {
		got := fn(tt.s, tt.old, tt.new)
		if len(got) != len(tt.tokens) {
			t.Errorf("Tokens(%q, %q, %q) = %q, want %q", tt.s, tt.old, tt.new, got, tt.tokens)
			continue
		}
		for i := range got {
			if got[i] != tt.tokens[i] {
				t.Errorf("Tokens(%q, %q, %q) = %q, want %q", tt.s, tt.old, tt.new, got, tt.tokens)
				break
			}
		}
		if s := strings.Join(got, ""); s != tt.out {
			t.Errorf("Tokens(%q, %q, %q): joined = %q, want %q", tt.s, tt.old, tt.new, s, tt.out)
		}
	}
}
