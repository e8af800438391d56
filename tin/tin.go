// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package tin builds a Triangulated Irregular Network from a rectangular
// grid of height samples: a greedy refinement loop seeds two triangles over
// the grid's four corners, then repeatedly inserts the point of greatest
// plane-interpolation error into the mesh until every triangle's error is
// within the caller's tolerance.
package tin

import (
	"errors"

	"github.com/akriulin/tingrid/internal/mesh"
	"github.com/akriulin/tingrid/internal/raster"
)

// Point is a grid coordinate.
type Point = mesh.Point

// ErrInvalidDataLength is returned when len(heights) != width*height.
var ErrInvalidDataLength = errors.New("tin: height data length does not match width*height")

// ErrMaxErrorRetrieval is returned when the refinement loop cannot read the
// current maximum queued error, which only happens if the mesh's seed
// triangles were never rasterized.
var ErrMaxErrorRetrieval = errors.New("tin: could not retrieve maximum queued triangle error")

// ErrEmptyQueue is returned when the refinement loop needs to pop the
// worst-error triangle but the priority queue has nothing queued.
var ErrEmptyQueue = errors.New("tin: priority queue is empty during refinement")

// Triangulate builds a TIN over heights, a row-major width x height grid of
// samples, refining until every triangle's worst-case interpolation error is
// at most maxError. It returns the mesh vertices (grid coordinates) and the
// triangles as index triples into that vertex slice.
func Triangulate(heights []float64, width, height int, maxError float64) ([]Point, [][3]int, error) {
	if width <= 0 || height <= 0 || len(heights) != width*height {
		return nil, nil, ErrInvalidDataLength
	}

	t := newTriangulator(heights, width, height)
	return t.run(maxError)
}

// TriangulateFlatIndices builds a TIN exactly as Triangulate does, but
// reports each triangle as a triple of indices into the flattened heights
// slice (width*y+x) rather than as indices into a separate vertex slice.
// This mirrors the convenience entry point of the reference implementation,
// which never exposes vertex points as a distinct collection.
func TriangulateFlatIndices(heights []float64, width, height int, maxError float64) ([][3]int, error) {
	points, triangles, err := Triangulate(heights, width, height, maxError)
	if err != nil {
		return nil, err
	}

	flat := make([][3]int, len(triangles))
	for i, tri := range triangles {
		flat[i] = [3]int{
			flatIndex(points[tri[0]], width),
			flatIndex(points[tri[1]], width),
			flatIndex(points[tri[2]], width),
		}
	}
	return flat, nil
}

func flatIndex(p Point, width int) int {
	return width*p.Y + p.X
}

// triangulator holds the refinement loop's state: the grid being sampled,
// the mesh it mutates, and, for each triangle, the worst-error candidate
// point found by its most recent rasterization.
type triangulator struct {
	heights []float64
	width   int
	height  int

	mesh       *mesh.Mesh
	candidates []Point
}

func newTriangulator(heights []float64, width, height int) *triangulator {
	return &triangulator{
		heights: heights,
		width:   width,
		height:  height,
		mesh:    mesh.New(width * height / 4),
	}
}

func (t *triangulator) run(maxError float64) ([]Point, [][3]int, error) {
	initialX := t.width - 1
	initialY := t.height - 1

	vA := t.mesh.AddPoint(Point{0, 0})
	vB := t.mesh.AddPoint(Point{initialX, 0})
	vC := t.mesh.AddPoint(Point{initialX, initialY})
	vD := t.mesh.AddPoint(Point{0, initialY})

	triangle0 := t.mesh.AddTriangle(vC, vA, vD, mesh.NoEdge, mesh.NoEdge, mesh.NoEdge, mesh.Create)
	t.mesh.AddTriangle(vA, vC, vB, triangle0, mesh.NoEdge, mesh.NoEdge, mesh.Create)

	t.flush()

	for {
		queuedError, ok := t.mesh.Queue.PeekMaxError()
		if !ok {
			return nil, nil, ErrMaxErrorRetrieval
		}
		if queuedError <= maxError {
			break
		}
		if err := t.refine(); err != nil {
			return nil, nil, err
		}
	}

	points := append([]Point(nil), t.mesh.V...)
	return points, t.triangleIndices(), nil
}

func (t *triangulator) refine() error {
	if err := t.step(); err != nil {
		return err
	}
	t.flush()
	return nil
}

// step pops the worst-error triangle, promotes its recorded candidate point
// to a mesh vertex, and inserts it, splitting that triangle (and possibly
// its neighbor) and legalizing the newly exposed edges.
func (t *triangulator) step() error {
	triangleIdx, ok := t.mesh.Queue.Pop()
	if !ok {
		return ErrEmptyQueue
	}

	candidate := t.candidates[triangleIdx]
	newVertexIdx := t.mesh.AddPoint(candidate)
	t.mesh.InsertPoint(triangleIdx, newVertexIdx)
	return nil
}

// flush rasterizes every triangle created or rewritten since the last flush,
// recording its worst-error point and pushing it back onto the queue.
func (t *triangulator) flush() {
	for _, triangleIdx := range t.mesh.Queue.DrainPending() {
		t.findCandidate(triangleIdx)
	}
}

func (t *triangulator) findCandidate(triangleIdx int) {
	a, b, c := t.mesh.TriangleVertices(triangleIdx)
	point, errVal := raster.FindCandidate(t.heights, t.width, a, b, c)

	t.ensureCandidateCapacity(triangleIdx)
	t.candidates[triangleIdx] = point
	t.mesh.Queue.Push(triangleIdx, errVal)
}

func (t *triangulator) ensureCandidateCapacity(idx int) {
	for len(t.candidates) <= idx {
		t.candidates = append(t.candidates, Point{})
	}
}

func (t *triangulator) triangleIndices() [][3]int {
	n := t.mesh.NumTriangles()
	out := make([][3]int, n)
	for i := 0; i < n; i++ {
		a, b, c := t.mesh.TriangleVertexIndices(i)
		out[i] = [3]int{a, b, c}
	}
	return out
}
