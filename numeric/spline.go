// seehuhn.de/go/patron - sewing pattern blocks from body measurements
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package numeric

import "seehuhn.de/go/geom/vec"

// SplineToBeziers returns the natural cubic spline through pts as a
// sequence of len(pts)-1 cubic Bézier segments.
//
// The spline uses chord-length parametrisation and has zero second
// derivative at both ends. Consecutive segments join with continuous first
// and second derivatives, and every input point is hit exactly. Two points
// give a straight segment.
//
// SplineToBeziers panics if fewer than two points are given.
func SplineToBeziers(pts []vec.Vec2) []Cubic {
	n := len(pts)
	if n < 2 {
		panic("spline needs at least two points")
	}
	if n == 2 {
		return []Cubic{Line(pts[0], pts[1])}
	}

	// parameter step per segment
	m := n - 1
	h := make([]float64, m)
	for i := range m {
		h[i] = Norm(pts[i+1].Sub(pts[i]))
		if h[i] < 1e-12 {
			h[i] = 1 // coincident points
		}
	}

	s := secondDerivatives(pts, h)

	res := make([]Cubic, m)
	for i := range m {
		hi := h[i]
		a := pts[i]
		// first derivative at the start of the piece
		b := pts[i+1].Sub(a).Mul(1 / hi).Sub(s[i].Mul(2).Add(s[i+1]).Mul(hi / 6))
		c := s[i].Mul(0.5)

		p1 := a.Add(b.Mul(hi / 3))
		p2 := a.Add(b.Mul(2 * hi / 3)).Add(c.Mul(hi * hi / 3))
		res[i] = Cubic{a, p1, p2, pts[i+1]}
	}
	return res
}

// secondDerivatives solves the tridiagonal system of the natural spline for
// the second derivatives at all points. Both coordinates are solved at once
// with the Thomas algorithm; the entries for the two end points are zero.
func secondDerivatives(pts []vec.Vec2, h []float64) []vec.Vec2 {
	n := len(pts)
	s := make([]vec.Vec2, n)

	k := n - 2 // number of interior points
	lower := make([]float64, k)
	diag := make([]float64, k)
	upper := make([]float64, k)
	rhs := make([]vec.Vec2, k)
	for i := range k {
		j := i + 1
		if i > 0 {
			lower[i] = h[j-1]
		}
		diag[i] = 2 * (h[j-1] + h[j])
		if i < k-1 {
			upper[i] = h[j]
		}
		fwd := pts[j+1].Sub(pts[j]).Mul(1 / h[j])
		bwd := pts[j].Sub(pts[j-1]).Mul(1 / h[j-1])
		rhs[i] = fwd.Sub(bwd).Mul(6)
	}

	// forward elimination
	for i := 1; i < k; i++ {
		w := lower[i] / diag[i-1]
		diag[i] -= w * upper[i-1]
		rhs[i] = rhs[i].Sub(rhs[i-1].Mul(w))
	}

	// back substitution
	s[k] = rhs[k-1].Mul(1 / diag[k-1])
	for i := k - 2; i >= 0; i-- {
		s[i+1] = rhs[i].Sub(s[i+2].Mul(upper[i])).Mul(1 / diag[i])
	}
	return s
}
