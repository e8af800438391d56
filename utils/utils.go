// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package utils provides deterministic height-grid generation for building
// test fixtures, without needing to hand-author fixed-size heightmaps.

package utils

import "math/rand"

// GenerateRandomHeights generates a width*height row-major grid of
// pseudo-random height samples in [0, 1). The seed parameter ensures
// reproducibility, so property tests can regenerate the same grid across
// runs.
func GenerateRandomHeights(width, height int, seed int64) []float64 {
	//nolint:gosec
	random := rand.New(rand.NewSource(seed))
	heights := make([]float64, width*height)

	for i := range heights {
		heights[i] = random.Float64()
	}

	return heights
}
