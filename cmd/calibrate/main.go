// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

// Command calibrate measures the pattern length at which the skip table
// matcher starts to beat the brute-force matcher on the current machine.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/bits"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"sort"
	"time"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/term"

	"github.com/charlievieth/strmatch"
	"github.com/charlievieth/strmatch/internal/bytealg"
	"github.com/charlievieth/strmatch/internal/util"
)

func initLogs() {
	log.SetPrefix("calibrate: ")
	log.SetFlags(log.Lshortfile)
}

// A Sample is the per-search cost of both matchers for one pattern length.
type Sample struct {
	Size  int           `json:"size"`
	Brute time.Duration `json:"brute_ns"`
	Skip  time.Duration `json:"skip_ns"`
}

// A Report is the result of a calibration run.
type Report struct {
	GOOS    string   `json:"goos"`
	GOARCH  string   `json:"goarch"`
	Width   int      `json:"width"`
	Current int      `json:"current_max_brute_force"`
	Cutover int      `json:"cutover"`
	Samples []Sample `json:"samples"`
}

// A probe returns the cost of a brute-force and a skip table search with a
// pattern of n elements.
type probe func(n int) (brute, skip time.Duration)

// timeOp returns the average duration of fn, doubling the iteration count
// until a run takes at least d.
func timeOp(d time.Duration, fn func()) time.Duration {
	for n := 1; ; n *= 2 {
		start := time.Now()
		for i := 0; i < n; i++ {
			fn()
		}
		elapsed := time.Since(start)
		if elapsed >= d || n >= 1<<30 {
			return elapsed / time.Duration(n)
		}
	}
}

// calibrationInput returns content of size elements that never contains
// pattern, but repeats all of it except the final element.
func calibrationInput[T strmatch.Elem](size, n int) (content, pattern []T) {
	pattern = make([]T, n)
	for i := range pattern {
		pattern[i] = 'a'
	}
	pattern[n-1] = 'b'
	content = make([]T, size)
	for i := range content {
		if i%n == n-1 {
			content[i] = ' '
		} else {
			content[i] = 'a'
		}
	}
	return content, pattern
}

func newProbe[T strmatch.Elem](size int, d time.Duration) probe {
	return func(n int) (time.Duration, time.Duration) {
		content, pattern := calibrationInput[T](size, n)
		brute := strmatch.NewBruteMatcher(pattern)
		skip := strmatch.NewSkipMatcher(pattern)
		return timeOp(d, func() { brute.Forward(content, 0) }),
			timeOp(d, func() { skip.Forward(content, 0) })
	}
}

// crossover returns the smallest pattern length in [2, limit] for which the
// skip table matcher is at least 10% faster, or limit+1 if there is none.
func crossover(limit int, fn probe, bar *progressbar.ProgressBar) (int, []Sample) {
	var samples []Sample
	n := sort.Search(limit+1, func(n int) bool {
		if n < 2 {
			return false
		}
		brute, skip := fn(n)
		samples = append(samples, Sample{Size: n, Brute: brute, Skip: skip})
		if bar != nil {
			bar.Add(1)
		}
		return brute*100 > skip*110
	})
	sort.Slice(samples, func(i, j int) bool {
		return samples[i].Size < samples[j].Size
	})
	return n, samples
}

func writeReport(name string, r *Report) error {
	data, err := json.MarshalIndent(r, "", "    ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(name, data, 0644)
}

func newProgressBar(limit int) *progressbar.ProgressBar {
	steps := int64(bits.Len(uint(limit)))
	if term.IsTerminal(int(os.Stdout.Fd())) {
		return progressbar.Default(steps, "calibrating")
	}
	return progressbar.DefaultSilent(steps)
}

func realMain() int {
	initLogs()

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [OPTION]...\n",
			filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	maxLen := flag.Int("max", 256, "largest pattern length (in elements) to try")
	size := flag.Int("size", 1<<16, "content length in elements")
	wide := flag.Int("wide", 1, "element width in bytes: 1, 2 or 4")
	duration := flag.Duration("duration", 20*time.Millisecond, "minimum time to run each measurement")
	write := flag.String("write", "", "write a JSON report to `file` (\"-\" writes calibration.json to the project root)")
	check := flag.Bool("check", false,
		"exit non-zero if the measured cutover differs from the compiled in one by more than 2x")
	cpuprofile := flag.String("cpuprofile", "",
		"write cpu profile to `file`\n"+
			"NOTE: this traps SIGINT.\n"+
			"  First SIGINT the cpu profile is written to `file`.\n"+
			"  Second SIGINT the program aborts.")
	flag.Parse()

	if *maxLen < 2 {
		log.Fatalf("invalid -max: %d", *maxLen)
	}
	if *size < *maxLen {
		log.Fatalf("-size (%d) must be at least -max (%d)", *size, *maxLen)
	}

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal("could not create CPU profile: ", err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, os.Interrupt)
		go func() {
			<-ch
			log.Println("writing CPU profile: next interrupt will stop the program")
			pprof.StopCPUProfile()
			if err := f.Close(); err != nil {
				log.Printf("error closing CPU profile: %v", err)
			}
			signal.Reset(os.Interrupt)
		}()
	}

	var fn probe
	switch *wide {
	case 1:
		fn = newProbe[byte](*size, *duration)
	case 2:
		fn = newProbe[uint16](*size, *duration)
	case 4:
		fn = newProbe[uint32](*size, *duration)
	default:
		log.Fatalf("invalid -wide: %d", *wide)
	}

	bar := newProgressBar(*maxLen)
	n, samples := crossover(*maxLen, fn, bar)
	bar.Finish()
	fmt.Println()

	// MaxBruteForce is in bytes.
	report := &Report{
		GOOS:    runtime.GOOS,
		GOARCH:  runtime.GOARCH,
		Width:   *wide,
		Current: bytealg.MaxBruteForce,
		Cutover: n * *wide,
		Samples: samples,
	}
	for _, s := range samples {
		log.Printf("n=%d: brute=%s skip=%s", s.Size, s.Brute, s.Skip)
	}
	if n > *maxLen {
		log.Printf("skip table never faster for patterns up to %d elements", *maxLen)
	}
	log.Printf("brute-force cutoff = %d bytes (current: %d)", report.Cutover, report.Current)

	if *write != "" {
		name := *write
		if name == "-" {
			root, err := util.ProjectRoot()
			if err != nil {
				log.Fatal(err)
			}
			name = filepath.Join(root, "calibration.json")
		}
		if err := writeReport(name, report); err != nil {
			log.Fatal(err)
		}
		log.Printf("wrote report to: %s", name)
	}

	if *check && !withinFactor(report.Cutover, report.Current, 2) {
		log.Printf("measured cutover %d is not within 2x of MaxBruteForce %d",
			report.Cutover, report.Current)
		return 1
	}
	return 0
}

func withinFactor(a, b, f int) bool {
	return a <= b*f && b <= a*f
}

func main() {
	if code := realMain(); code != 0 {
		os.Exit(code)
	}
}
