// Package listutil provides generic helpers for reshaping slices.
package listutil

import "math/rand/v2"

// Flatten concatenates the inner slices of lists, preserving order.
func Flatten[T any](lists [][]T) []T {
	n := 0
	for _, l := range lists {
		n += len(l)
	}
	result := make([]T, 0, n)
	for _, l := range lists {
		result = append(result, l...)
	}
	return result
}

// Shuffle returns a pseudo-randomly permuted copy of values drawn from rng.
// The input slice is not modified. The same generator state always yields
// the same permutation.
func Shuffle[T any](values []T, rng *rand.Rand) []T {
	result := make([]T, len(values))
	copy(result, values)
	rng.Shuffle(len(result), func(i, j int) {
		result[i], result[j] = result[j], result[i]
	})
	return result
}

// NewRand returns a deterministic generator for seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}
