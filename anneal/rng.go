// SPDX-License-Identifier: MIT
// Package: placer/anneal
//
// rng.go — deterministic random sources.
//
// Goals:
//   • Determinism: same seed ⇒ identical runs across platforms.
//   • No time-based sources anywhere; seed==0 maps to DefaultSeed.
//   • math/rand.Rand is NOT goroutine-safe: every run owns its own source.

package anneal

import "math/rand"

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ DefaultSeed; otherwise the seed is used verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// DeriveSeed mixes a parent seed and a stream identifier into a new seed,
// giving independent, reproducible streams for multi-seed studies.
// SplitMix64 finalizer; see Vigna 2014 for the constants.
//
// Complexity: O(1).
func DeriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}
