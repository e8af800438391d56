// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package utils

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestGenerateRandomHeights_Length(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		seed          int64
	}{
		{"empty grid", 0, 0, 42},
		{"single sample", 1, 1, 42},
		{"small grid", 10, 5, 0},
		{"square grid", 9, 9, 99},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			heights := GenerateRandomHeights(tt.width, tt.height, tt.seed)
			want := tt.width * tt.height
			if len(heights) != want {
				t.Errorf("GenerateRandomHeights(%d, %d, %d) len = %d, want %d",
					tt.width, tt.height, tt.seed, len(heights), want)
			}
		})
	}
}

func TestGenerateRandomHeights_WithinUnitRange(t *testing.T) {
	heights := GenerateRandomHeights(16, 16, 7)
	for i, h := range heights {
		if h < 0 || h >= 1 {
			t.Errorf("heights[%d] = %v, want in [0, 1)", i, h)
		}
	}
}

func TestGenerateRandomHeights_Determinism(t *testing.T) {
	a := GenerateRandomHeights(12, 8, 0)
	b := GenerateRandomHeights(12, 8, 0)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("GenerateRandomHeights(12, 8, 0) mismatch across calls (-first +second):\n%s", diff)
	}
}
