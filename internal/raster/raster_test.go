// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package raster

import "testing"

func flatGrid(width, height int, f func(x, y int) float64) []float64 {
	heights := make([]float64, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			heights[width*y+x] = f(x, y)
		}
	}
	return heights
}

func TestFindCandidateOnExactPlaneHasZeroError(t *testing.T) {
	const width, height = 5, 5
	// z = x + y is an exact plane, so any triangle drawn from it must
	// interpolate exactly and report zero error everywhere inside.
	heights := flatGrid(width, height, func(x, y int) float64 { return float64(x + y) })

	a := Point{0, 0}
	b := Point{0, 4}
	c := Point{4, 0}

	_, err := FindCandidate(heights, width, a, b, c)
	if err != 0 {
		t.Errorf("FindCandidate() error = %v, want 0 on an exact plane", err)
	}
}

func TestFindCandidateLocatesIsolatedBump(t *testing.T) {
	const width, height = 5, 5
	heights := flatGrid(width, height, func(x, y int) float64 { return 0 })
	heights[width*1+1] = 10 // interior pixel (1, 1)

	a := Point{0, 0}
	b := Point{0, 4}
	c := Point{4, 0}

	point, err := FindCandidate(heights, width, a, b, c)
	if point != (Point{1, 1}) {
		t.Errorf("FindCandidate() point = %v, want (1, 1)", point)
	}
	if err != 10 {
		t.Errorf("FindCandidate() error = %v, want 10", err)
	}
}

func TestFindCandidateIgnoresErrorOutsideTriangle(t *testing.T) {
	const width, height = 5, 5
	heights := flatGrid(width, height, func(x, y int) float64 { return 0 })
	heights[width*4+4] = 1000 // (4, 4) sits in the bounding box corner but outside the triangle itself

	a := Point{0, 0}
	b := Point{0, 4}
	c := Point{4, 0}

	_, err := FindCandidate(heights, width, a, b, c)
	if err != 0 {
		t.Errorf("FindCandidate() error = %v, want 0 (the spike lies outside the triangle)", err)
	}
}

func TestFindCandidateReportsZeroErrorAtAWinningVertex(t *testing.T) {
	// A unit triangle whose only sampled grid points are its own three
	// vertices: the winning pixel must never be reported with nonzero error.
	const width, height = 2, 2
	heights := []float64{0, 0, 0, 0}

	a := Point{0, 0}
	b := Point{0, 1}
	c := Point{1, 0}

	_, err := FindCandidate(heights, width, a, b, c)
	if err != 0 {
		t.Errorf("FindCandidate() error = %v, want 0", err)
	}
}
