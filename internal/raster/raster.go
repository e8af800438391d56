// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package raster implements the per-triangle error finder of §4.D: given a
// triangle's three integer-coordinate vertices, it scans the triangle's
// bounding box using incremental barycentric edge functions and returns the
// interior grid pixel whose plane-interpolated height differs most from the
// sampled height.
package raster

import (
	"github.com/akriulin/tingrid/internal/predicates"
)

// Point is a grid coordinate.
type Point = predicates.Point

// FindCandidate scans the bounding box of triangle (a, b, c) — assumed CCW,
// so SignedArea(a, b, c) > 0 — over the width x (len(heights)/width) grid of
// heights, and returns the interior pixel with the greatest absolute
// difference between the triangle's interpolated plane and the sampled
// height, along with that error. If the winning pixel coincides with one of
// the triangle's own vertices the error is reported as zero (that vertex is
// already represented exactly by the mesh).
func FindCandidate(heights []float64, width int, a, b, c Point) (Point, float64) {
	minX, maxX := a.X, a.X
	minY, maxY := a.Y, a.Y
	for _, p := range [2]Point{b, c} {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}

	area := predicates.SignedArea(a, b, c)
	areaF := float64(area)

	minCorner := Point{minX, minY}
	bcMinRow := predicates.SignedArea(b, c, minCorner)
	caMinRow := predicates.SignedArea(c, a, minCorner)
	abMinRow := predicates.SignedArea(a, b, minCorner)

	baYDiff := int64(b.Y - a.Y)
	abXDiff := int64(a.X - b.X)
	cbYDiff := int64(c.Y - b.Y)
	bcXDiff := int64(b.X - c.X)
	acYDiff := int64(a.Y - c.Y)
	caXDiff := int64(c.X - a.X)

	normA := heightAt(heights, width, a) / areaF
	normB := heightAt(heights, width, b) / areaF
	normC := heightAt(heights, width, c) / areaF

	var maxError float64
	var maxErrorPoint Point

	for y := minY; y <= maxY; y++ {
		offsetX := 0
		if bcMinRow < 0 && cbYDiff != 0 {
			if j := int(-bcMinRow / cbYDiff); j > offsetX {
				offsetX = j
			}
		}
		if caMinRow < 0 && acYDiff != 0 {
			if j := int(-caMinRow / acYDiff); j > offsetX {
				offsetX = j
			}
		}
		if abMinRow < 0 && baYDiff != 0 {
			if j := int(-abMinRow / baYDiff); j > offsetX {
				offsetX = j
			}
		}

		so := int64(offsetX)
		bc := bcMinRow + cbYDiff*so
		ca := caMinRow + acYDiff*so
		ab := abMinRow + baYDiff*so

		wasInside := false
		for x := minX + offsetX; x <= maxX; x++ {
			if bc >= 0 && ca >= 0 && ab >= 0 {
				wasInside = true

				z := normA*float64(bc) + normB*float64(ca) + normC*float64(ab)
				diff := z - heightAt(heights, width, Point{x, y})
				if diff < 0 {
					diff = -diff
				}
				if diff > maxError {
					maxError = diff
					maxErrorPoint = Point{x, y}
				}
			} else if wasInside {
				break
			}

			bc += cbYDiff
			ca += acYDiff
			ab += baYDiff
		}

		bcMinRow += bcXDiff
		caMinRow += caXDiff
		abMinRow += abXDiff
	}

	if maxErrorPoint == a || maxErrorPoint == b || maxErrorPoint == c {
		maxError = 0
	}

	return maxErrorPoint, maxError
}

func heightAt(heights []float64, width int, p Point) float64 {
	return heights[width*p.Y+p.X]
}
