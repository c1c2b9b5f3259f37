package strmatch_test

import (
	"fmt"

	"github.com/charlievieth/strmatch"
)

func ExampleNew() {
	m := strmatch.New([]byte("foo"))
	content := []byte("$foo&&foo*")
	fmt.Println(m.Forward(content, 0))
	fmt.Println(m.Forward(content, 2))
	fmt.Println(m.Forward(content, 7)) // no match: len(content)
	// Output:
	// 1
	// 6
	// 10
}

func ExampleSkipMatcher_Reverse() {
	m := strmatch.NewSkipMatcher([]byte("aaa"))
	fmt.Println(m.Reverse([]byte("bbaaa"), 5))
	fmt.Println(m.Reverse([]byte("bbbbb"), 5))
	fmt.Println(m.Direction())
	// Output:
	// 2
	// 5
	// Backward
}

func ExampleBruteMatcher_Count() {
	m := strmatch.NewBruteMatcher([]byte("aa"))
	fmt.Println(m.Count([]byte("aaaa")))
	fmt.Println(m.Count([]byte("abab")))
	// Output:
	// 3
	// 0
}

func ExampleSkipMatcher_Replace() {
	m := strmatch.NewSkipMatcher([]byte("foo"))
	fmt.Printf("%s\n", m.Replace([]byte("$foo&&foo*"), []byte("bar")))
	// Output:
	// $bar&&bar*
}

func ExampleSkipMatcher_Tokens() {
	m := strmatch.NewSkipMatcher([]byte("foo"))
	for tok := range m.Tokens([]byte("$foo&&foo*"), []byte("bar")) {
		fmt.Printf("%q\n", tok)
	}
	// Output:
	// "$"
	// "bar"
	// "&&"
	// "bar"
	// "*"
}

func ExampleBruteMatcher_Indices() {
	m := strmatch.NewBruteMatcher([]byte("foo"))
	for i := range m.Indices([]byte("$foo&&foo*")) {
		fmt.Println(i)
	}
	// Output:
	// 1
	// 6
}

func ExampleNewSkipMatcher_wide() {
	content := []uint16{'h', 'e', 'l', 'l', 'o'}
	m := strmatch.NewSkipMatcher([]uint16{'l', 'l'})
	fmt.Println(m.Forward(content, 0))
	// Output:
	// 2
}

func ExampleReplaceString() {
	fmt.Println(strmatch.ReplaceString("oink oink oink", "oink", "moo"))
	fmt.Println(strmatch.CountString("cheese", "e"))
	// Output:
	// moo moo moo
	// 3
}
