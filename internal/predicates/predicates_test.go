// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package predicates

import "testing"

func TestSignedArea(t *testing.T) {
	tests := []struct {
		name     string
		a, b, c  Point
		wantSign int
	}{
		// Vertex order used throughout this module's seed triangles, e.g.
		// (corner C, corner A, corner D) in tin's grid initialization.
		{"positive orientation", Point{0, 0}, Point{0, 1}, Point{1, 0}, 1},
		{"reversed orientation", Point{0, 0}, Point{1, 0}, Point{0, 1}, -1},
		{"collinear", Point{0, 0}, Point{1, 1}, Point{2, 2}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SignedArea(tt.a, tt.b, tt.c)
			switch {
			case tt.wantSign > 0 && got <= 0:
				t.Errorf("SignedArea(%v, %v, %v) = %d, want > 0", tt.a, tt.b, tt.c, got)
			case tt.wantSign < 0 && got >= 0:
				t.Errorf("SignedArea(%v, %v, %v) = %d, want < 0", tt.a, tt.b, tt.c, got)
			case tt.wantSign == 0 && got != 0:
				t.Errorf("SignedArea(%v, %v, %v) = %d, want 0", tt.a, tt.b, tt.c, got)
			}
		})
	}
}

func TestInCircumcircle(t *testing.T) {
	// Right triangle with the right-angle vertex at the origin, in the
	// positive-orientation vertex order this module's predicates expect.
	a := Point{0, 0}
	b := Point{0, 10}
	c := Point{10, 0}

	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"center is inside", Point{3, 3}, true},
		{"far away is outside", Point{100, 100}, false},
		{"a vertex of the triangle is never strictly inside", Point{0, 0}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InCircumcircle(tt.p, a, b, c); got != tt.want {
				t.Errorf("InCircumcircle(%v, %v, %v, %v) = %v, want %v", tt.p, a, b, c, got, tt.want)
			}
		})
	}
}

func TestInCircumcircle_OnBoundaryIsNotInside(t *testing.T) {
	// Four points on a common circle: (0,0),(4,0),(0,4),(4,4) all lie on the
	// circle centered at (2,2) with radius^2 = 8.
	a := Point{0, 0}
	b := Point{0, 4}
	c := Point{4, 0}
	d := Point{4, 4}

	if InCircumcircle(d, a, b, c) {
		t.Errorf("InCircumcircle(%v, %v, %v, %v) = true, want false (on boundary)", d, a, b, c)
	}
}
