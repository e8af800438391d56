// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package predicates implements exact geometric predicates on integer grid
// coordinates: signed area and in-circumcircle tests. Because coordinates are
// always integers, both are exact and require no floating-point tolerance.
package predicates

import "math/big"

// Point is a grid coordinate.
type Point struct {
	X, Y int
}

// SignedArea returns twice the oriented area of triangle (a, b, c). It is
// positive when a, b, c are in counter-clockwise order, negative when
// clockwise, and zero when the three points are collinear.
func SignedArea(a, b, c Point) int64 {
	r1 := int64(b.X - c.X)
	r2 := int64(a.Y - c.Y)
	r3 := int64(b.Y - c.Y)
	r4 := int64(a.X - c.X)

	return r1*r2 - r3*r4
}

// InCircumcircle reports whether p lies strictly inside the circumscribed
// circle of triangle (a, b, c), which is assumed to be in CCW order. Points
// exactly on the circle return false.
//
// The determinant is evaluated with big.Int so it stays exact regardless of
// grid size: the squared-distance terms it multiplies together can overflow
// int64 well before grid coordinates do.
func InCircumcircle(p, a, b, c Point) bool {
	dax := int64(a.X - p.X)
	day := int64(a.Y - p.Y)
	dbx := int64(b.X - p.X)
	dby := int64(b.Y - p.Y)
	dcx := int64(c.X - p.X)
	dcy := int64(c.Y - p.Y)

	sqA := addI(mulI(dax, dax), mulI(day, day))
	sqB := addI(mulI(dbx, dbx), mulI(dby, dby))
	sqC := addI(mulI(dcx, dcx), mulI(dcy, dcy))

	term1 := mulB(big.NewInt(dax), subB(mulB(big.NewInt(dby), sqC), mulB(sqB, big.NewInt(dcy))))
	term2 := mulB(big.NewInt(day), subB(mulB(big.NewInt(dbx), sqC), mulB(sqB, big.NewInt(dcx))))
	term3 := mulB(sqA, big.NewInt(dbx*dcy-dby*dcx))

	det := subB(term1, term2)
	det.Add(det, term3)

	return det.Sign() < 0
}

func mulI(a, b int64) *big.Int { return new(big.Int).Mul(big.NewInt(a), big.NewInt(b)) }
func addI(a, b *big.Int) *big.Int { return new(big.Int).Add(a, b) }
func mulB(a, b *big.Int) *big.Int { return new(big.Int).Mul(a, b) }
func subB(a, b *big.Int) *big.Int { return new(big.Int).Sub(a, b) }
