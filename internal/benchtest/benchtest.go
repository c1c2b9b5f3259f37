// Package benchtest is used for benchmarking strmatch against the Go stdlib's
// bytes package.
//
// Most inputs here were taken from Go's strings and bytes package benchmarks.
//
// It is not part of the strmatch package so that the benchmarks only use the
// exported API. Run with -stdlib to get numbers for the bytes package.
package benchtest
