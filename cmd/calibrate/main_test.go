package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/charlievieth/strmatch"
)

// linearProbe models a brute-force search whose cost grows with the
// pattern length against a constant skip table search.
func linearProbe(n int) (time.Duration, time.Duration) {
	return time.Duration(n * 10), 100
}

func TestCrossover(t *testing.T) {
	n, samples := crossover(64, linearProbe, nil)
	// brute*100 > skip*110 first holds for n = 12
	assert.Equal(t, 12, n)
	require.NotEmpty(t, samples)
	for i := 1; i < len(samples); i++ {
		assert.Less(t, samples[i-1].Size, samples[i].Size, "samples are not sorted")
	}
	for _, s := range samples {
		assert.GreaterOrEqual(t, s.Size, 2)
	}
}

func TestCrossoverNever(t *testing.T) {
	never := func(n int) (time.Duration, time.Duration) { return 1, 1 }
	n, _ := crossover(32, never, nil)
	assert.Equal(t, 33, n)
}

func TestCalibrationInput(t *testing.T) {
	for _, n := range []int{2, 3, 16} {
		content, pattern := calibrationInput[uint16](256, n)
		require.Len(t, pattern, n)
		require.Len(t, content, 256)
		m := strmatch.NewSkipMatcher(pattern)
		assert.Equal(t, len(content), m.Forward(content, 0), "n=%d", n)
		// Dropping the final element of the pattern must match at 0.
		m.SetMatch(pattern[:n-1])
		assert.Equal(t, 0, m.Forward(content, 0), "n=%d", n)
	}
}

func TestTimeOp(t *testing.T) {
	calls := 0
	d := timeOp(time.Millisecond, func() {
		calls++
		time.Sleep(100 * time.Microsecond)
	})
	assert.Greater(t, calls, 1)
	assert.Greater(t, d, time.Duration(0))
}

func TestWriteReport(t *testing.T) {
	want := &Report{
		GOOS:    "linux",
		GOARCH:  "amd64",
		Width:   2,
		Current: 64,
		Cutover: 48,
		Samples: []Sample{{Size: 24, Brute: 120, Skip: 100}},
	}
	name := filepath.Join(t.TempDir(), "calibration.json")
	require.NoError(t, writeReport(name, want))

	data, err := os.ReadFile(name)
	require.NoError(t, err)
	var got Report
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, want, &got)
}

func TestWithinFactor(t *testing.T) {
	assert.True(t, withinFactor(16, 16, 2))
	assert.True(t, withinFactor(32, 16, 2))
	assert.True(t, withinFactor(8, 16, 2))
	assert.False(t, withinFactor(33, 16, 2))
	assert.False(t, withinFactor(7, 16, 2))
}
