// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package mesh implements the half-edge-indexed triangle mesh: point
// insertion inside a triangle, collinear-edge splitting, and Delaunay
// edge-flip legalization. It owns the vertex table, the triangle/half-edge
// arrays, and the priority queue those mutations must keep consistent,
// since all three are mutated in lockstep on every insertion or flip.
package mesh

import (
	"github.com/akriulin/tingrid/internal/pqueue"
	"github.com/akriulin/tingrid/internal/predicates"
)

// Point is a grid coordinate; re-exported so callers never need to import
// internal/predicates directly.
type Point = predicates.Point

// NoEdge marks a half-edge position with no twin (the edge lies on the
// outer boundary of the mesh).
const NoEdge = -1

// Create requests a new triangle slot; pass the base position of an
// existing slot to AddTriangle to overwrite (and implicitly retire) it
// instead.
const Create = -1

// Mesh is the half-edge-indexed triangle mesh described in §4.C. V, T and E
// are the vertex table, triangle index triples and twin half-edge array of
// the data model in §3; Queue is the indexed priority queue every mutation
// here keeps in sync (new/updated triangles are marked pending, retiring
// triangles are removed).
type Mesh struct {
	V []Point
	T []int
	E []int

	Queue *pqueue.Queue
}

// New returns an empty Mesh whose queue is sized for queueCapacity
// triangles without needing to grow its reverse index.
func New(queueCapacity int) *Mesh {
	return &Mesh{Queue: pqueue.New(queueCapacity)}
}

// AddPoint appends p to the vertex table and returns its index.
func (m *Mesh) AddPoint(p Point) int {
	m.V = append(m.V, p)
	return len(m.V) - 1
}

// AddTriangle creates a new triangle slot (updateAt == Create) or overwrites
// an existing one (updateAt == that slot's base position, retiring its
// previous occupant) with vertices (v0, v1, v2) and optional external twin
// half-edge positions (heAB, heBC, heCA); pass NoEdge for a twin that does
// not exist. Any provided twin has its own half-edge slot rewritten to
// point back at this triangle, so pairing becomes bidirectional in one
// step. The triangle is always marked pending for (re)rasterization.
//
// The caller is responsible for calling Queue.Remove on the retiring
// triangle before an Update call, since this package cannot know whether
// the previous occupant was ever pushed to the heap.
func (m *Mesh) AddTriangle(v0, v1, v2, heAB, heBC, heCA, updateAt int) int {
	var base int
	if updateAt == Create {
		base = len(m.T)
		m.T = append(m.T, v0, v1, v2)
		m.E = append(m.E, heAB, heBC, heCA)
	} else {
		base = updateAt
		m.T[base], m.T[base+1], m.T[base+2] = v0, v1, v2
		m.E[base], m.E[base+1], m.E[base+2] = heAB, heBC, heCA
	}

	if heAB != NoEdge {
		m.E[heAB] = base
	}
	if heBC != NoEdge {
		m.E[heBC] = base + 1
	}
	if heCA != NoEdge {
		m.E[heCA] = base + 2
	}

	m.Queue.AddPending(base / 3)
	return base
}

// NumTriangles returns the number of live triangle slots, including
// retired-but-not-compacted ones (there are none, since this mesh never
// compacts).
func (m *Mesh) NumTriangles() int {
	return len(m.T) / 3
}

// TriangleVertexIndices returns the three vertex-table indices of triangle
// t.
func (m *Mesh) TriangleVertexIndices(t int) (int, int, int) {
	base := t * 3
	return m.T[base], m.T[base+1], m.T[base+2]
}

// TriangleVertices returns the three vertex coordinates of triangle t.
func (m *Mesh) TriangleVertices(t int) (Point, Point, Point) {
	a, b, c := m.TriangleVertexIndices(t)
	return m.V[a], m.V[b], m.V[c]
}

// InsertPoint performs §4.C.1/§4.C.2: it inserts the already-appended
// vertex at newVertexIdx into the triangle at triangleIdx, choosing the
// generic interior case or one of the two collinear cases by testing the
// new point's signed area against each of the triangle's three edges, then
// legalizes every newly exposed external edge.
func (m *Mesh) InsertPoint(triangleIdx, newVertexIdx int) {
	triBase := triangleIdx * 3
	vA, vB, vC := m.T[triBase], m.T[triBase+1], m.T[triBase+2]
	pA, pB, pC := m.V[vA], m.V[vB], m.V[vC]
	x := m.V[newVertexIdx]

	switch {
	case predicates.SignedArea(pA, pB, x) == 0:
		m.insertCollinear(newVertexIdx, triBase)
	case predicates.SignedArea(pB, pC, x) == 0:
		m.insertCollinear(newVertexIdx, triBase+1)
	case predicates.SignedArea(pC, pA, x) == 0:
		m.insertCollinear(newVertexIdx, triBase+2)
	default:
		m.insertInterior(newVertexIdx, triBase, vA, vB, vC)
	}
}

// insertInterior implements §4.C.1: X lies strictly inside triangle
// (vA, vB, vC). The triangle's own slot becomes (vA, vB, X); two new slots
// become (vB, vC, X) and (vC, vA, X), fanned around X.
func (m *Mesh) insertInterior(x, triBase, vA, vB, vC int) {
	heA := m.E[triBase]
	heB := m.E[triBase+1]
	heC := m.E[triBase+2]

	t0 := m.AddTriangle(vA, vB, x, heA, NoEdge, NoEdge, triBase)
	t1 := m.AddTriangle(vB, vC, x, heB, NoEdge, t0+1, Create)
	t2 := m.AddTriangle(vC, vA, x, heC, t0+2, t1+1, Create)

	m.legalize(t0)
	m.legalize(t1)
	m.legalize(t2)
}

// insertCollinear implements §4.C.2: the new point X lies exactly on the
// edge at position collinearEdge. If that edge has a twin, both triangles
// sharing it are split into four triangles, two of which reuse the split
// triangles' slots; otherwise only the one triangle is split into two,
// one of which reuses its slot.
func (m *Mesh) insertCollinear(newVertexIdx, collinearEdge int) {
	collinearBase := collinearEdge - collinearEdge%3
	edgeA := collinearBase + (collinearEdge+1)%3
	edgeB := collinearBase + (collinearEdge+2)%3

	collinearVertex := m.T[collinearEdge]
	vA := m.T[edgeA]
	vB := m.T[edgeB]

	heA := m.E[edgeA]
	heB := m.E[edgeB]

	twin := m.E[collinearEdge]
	if twin == NoEdge {
		t0 := m.AddTriangle(newVertexIdx, vB, collinearVertex, NoEdge, heB, NoEdge, collinearBase)
		t1 := m.AddTriangle(vB, newVertexIdx, vA, t0, NoEdge, heA, Create)

		m.legalize(t0 + 1)
		m.legalize(t1 + 2)
		return
	}

	adjBase := twin - twin%3
	adjLeft := adjBase + (twin+2)%3
	adjRight := adjBase + (twin+1)%3
	vertex1 := m.T[adjLeft]
	heAdjLeft := m.E[adjLeft]
	heAdjRight := m.E[adjRight]

	m.Queue.Remove(adjBase / 3)

	t0 := m.AddTriangle(vB, collinearVertex, newVertexIdx, heB, NoEdge, NoEdge, collinearBase)
	t1 := m.AddTriangle(collinearVertex, vertex1, newVertexIdx, heAdjRight, NoEdge, t0+1, adjBase)
	t2 := m.AddTriangle(vertex1, vA, newVertexIdx, heAdjLeft, NoEdge, t1+1, Create)
	t3 := m.AddTriangle(vA, vB, newVertexIdx, heA, t0+2, t2+1, Create)

	m.legalize(t0)
	m.legalize(t1)
	m.legalize(t2)
	m.legalize(t3)
}

// legalize implements §4.C.3: if the edge at position requested has a twin
// and the opposite vertex of the adjacent triangle lies inside the
// circumcircle of the requesting triangle, flip the shared diagonal and
// recursively legalize the two newly exposed edges.
func (m *Mesh) legalize(requested int) {
	he := m.E[requested]
	if he == NoEdge {
		return
	}

	reqBase := requested - requested%3
	adjBase := he - he%3

	reqLeft := reqBase + (requested+1)%3
	reqRight := reqBase + (requested+2)%3
	adjLeft := adjBase + (he+2)%3
	adjRight := adjBase + (he+1)%3

	v0 := m.T[reqRight]
	vRight := m.T[requested]
	vLeft := m.T[reqLeft]
	v1 := m.T[adjLeft]

	if !predicates.InCircumcircle(m.V[v1], m.V[v0], m.V[vRight], m.V[vLeft]) {
		return
	}

	heLeft := m.E[reqLeft]
	heRight := m.E[reqRight]
	adjHeLeft := m.E[adjLeft]
	adjHeRight := m.E[adjRight]

	m.Queue.Remove(reqBase / 3)
	m.Queue.Remove(adjBase / 3)

	t0 := m.AddTriangle(v0, v1, vLeft, NoEdge, adjHeLeft, heLeft, reqBase)
	t1 := m.AddTriangle(v1, v0, vRight, t0, heRight, adjHeRight, adjBase)

	m.legalize(t0 + 1)
	m.legalize(t1 + 2)
}
