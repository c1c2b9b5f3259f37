// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package bytealg

import "golang.org/x/sys/cpu"

// MaxBruteForce is the longest pattern, in bytes, for which plain Index is
// expected to beat building a skip table.
//
// Empirical data (see cmd/calibrate) shows the crossover moves out when
// bytes.Index is vectorized: it is well above 32 bytes with AVX2 and around
// 32 bytes on arm64.
var MaxBruteForce = maxBruteForce()

func maxBruteForce() int {
	switch {
	case cpu.X86.HasAVX2:
		return 64
	case cpu.ARM64.HasASIMD:
		return 32
	default:
		return 16
	}
}
