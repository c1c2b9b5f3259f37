package test

import (
	"bytes"
	crand "crypto/rand"
	"encoding/binary"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"runtime"
	"testing"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/coregx/ahocorasick"
	"golang.org/x/text/unicode/rangetable"
)

var exhaustiveFuzz = flag.Bool("exhaustive", false, "Run exhaustive fuzz tests (slow).")

// Letters from a few scripts with multi-byte UTF-8 encodings. Using real
// text gives the skip tables a realistic byte distribution.
var scriptRunes = generateRunes(rangetable.Merge(
	unicode.Latin,
	unicode.Greek,
	unicode.Cyrillic,
	unicode.Han,
))

func generateRunes(rt *unicode.RangeTable) []rune {
	rs := make([]rune, 0, 4096)
	visitTable(rt, func(r rune) {
		if utf8.ValidRune(r) {
			rs = append(rs, r)
		}
	})
	if len(rs) == 0 {
		panic("no runes generated")
	}
	return rs
}

// visitTable visits all runes in the given RangeTable in order, calling fn for each.
func visitTable(rt *unicode.RangeTable, fn func(rune)) {
	for _, r16 := range rt.R16 {
		for r := rune(r16.Lo); r <= rune(r16.Hi); r += rune(r16.Stride) {
			fn(r)
		}
	}
	for _, r32 := range rt.R32 {
		for r := rune(r32.Lo); r <= rune(r32.Hi); r += rune(r32.Stride) {
			fn(r)
		}
	}
}

// IndexReference is a naive forward search used to check the matchers.
func IndexReference(s, sep []byte, from int) int {
	if from < 0 {
		from = 0
	}
	if len(sep) == 0 {
		return len(s)
	}
	for i := from; i+len(sep) <= len(s); i++ {
		if bytes.Equal(s[i:i+len(sep)], sep) {
			return i
		}
	}
	return len(s)
}

// LastIndexReference is a naive reverse search used to check the matchers.
func LastIndexReference(s, sep []byte, from int) int {
	if from < 0 || len(sep) == 0 {
		return len(s)
	}
	for i := min(from, len(s)-len(sep)); i >= 0; i-- {
		if bytes.Equal(s[i:i+len(sep)], sep) {
			return i
		}
	}
	return len(s)
}

// IndicesReference returns the start of every, possibly overlapping,
// instance of sep in s. It uses an Aho-Corasick automaton so that it shares
// no code with the matchers under test.
func IndicesReference(s, sep []byte) []int {
	if len(sep) == 0 || len(sep) > len(s) {
		return nil
	}
	builder := ahocorasick.NewBuilder()
	builder.AddPattern(sep)
	auto, err := builder.Build()
	if err != nil {
		panic(fmt.Sprintf("building automaton for %q: %v", sep, err))
	}
	var out []int
	for at := 0; at < len(s); {
		m := auto.Find(s, at)
		if m == nil {
			break
		}
		out = append(out, m.Start)
		at = m.Start + 1
	}
	return out
}

func cryptoRandInt(t testing.TB) int64 {
	var b [8]byte
	if _, err := io.ReadFull(crand.Reader, b[:]); err != nil {
		if t != nil {
			t.Fatal(err)
		}
		panic(err)
	}
	return int64(binary.LittleEndian.Uint64(b[:]))
}

func fuzzNumCPU() int {
	numCPU := runtime.NumCPU()
	if runtime.GOOS == "darwin" && runtime.GOARCH == "arm64" {
		// Avoid using all the cores.
		// NB(charlie): this is really only for my personal dev setup.
		if numCPU >= 8 {
			numCPU -= 2
		}
	}
	if numCPU < 1 {
		numCPU = 1
	}
	return numCPU
}

func randomTestSeeds(t *testing.T) []int64 {
	seeds := []int64{
		1,
		time.Now().UnixNano(),
		cryptoRandInt(t),
	}
	if !testing.Short() {
		numCPU := fuzzNumCPU()
		for i := len(seeds); i < numCPU; i++ {
			seeds = append(seeds, cryptoRandInt(t))
		}
	}
	return seeds
}

// A FuzzTest generates random search arguments from a seeded source.
type FuzzTest struct {
	*testing.T
	rr *rand.Rand
}

// RunRandom calls fn repeatedly, in parallel subtests, each with its own
// seeded FuzzTest.
func RunRandom(t *testing.T, fn func(t *FuzzTest)) {
	if *exhaustiveFuzz && testing.Short() {
		t.Fatal(`Cannot combine "-short" and "-exhaustive" flags`)
	}
	count := 2_000
	if testing.Short() {
		count /= 4
	}
	seeds := randomTestSeeds(t)
	if *exhaustiveFuzz {
		count = 2_000_000 / len(seeds)
		t.Logf("N: %d", count)
	}
	for _, seed := range seeds {
		seed := seed
		t.Run(fmt.Sprintf("%d", seed), func(t *testing.T) {
			t.Parallel()
			start := time.Now()
			if testing.Verbose() {
				t.Cleanup(func() { t.Logf("duration: %s", time.Since(start)) })
			}
			tt := &FuzzTest{T: t, rr: rand.New(rand.NewSource(seed))}
			for i := 0; i < count && !t.Failed(); i++ {
				fn(tt)
			}
		})
		if t.Failed() && testing.Short() {
			return
		}
	}
}

// Intn returns a random int in [0, n).
func (t *FuzzTest) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return t.rr.Intn(n)
}

// Bytes returns n random bytes drawn from a small alphabet, from the full
// byte range or as UTF-8 encoded letters so that both dense and sparse
// matches occur.
func (t *FuzzTest) Bytes(n int) []byte {
	b := make([]byte, 0, n)
	switch t.rr.Intn(3) {
	case 0:
		const alphabet = "abc"
		for i := 0; i < n; i++ {
			b = append(b, alphabet[t.rr.Intn(len(alphabet))])
		}
	case 1:
		for i := 0; i < n; i++ {
			b = append(b, byte(t.rr.Intn(256)))
		}
	default:
		for len(b) < n {
			b = utf8.AppendRune(b, scriptRunes[t.rr.Intn(len(scriptRunes))])
		}
		b = b[:n]
	}
	return b
}

// IndexArgs returns a random haystack and needle. Half of the time the
// needle is copied from the haystack so a match is guaranteed.
func (t *FuzzTest) IndexArgs() (s, sep []byte) {
	s = t.Bytes(t.Intn(256))
	if len(s) > 0 && t.rr.Intn(2) == 0 {
		i := t.Intn(len(s))
		j := i + 1 + t.Intn(min(len(s)-i, 80))
		return s, bytes.Clone(s[i:j])
	}
	return s, t.Bytes(1 + t.Intn(8))
}
