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

// Package numeric provides the vector helpers and numerical solvers used
// when drafting pattern blocks: a bisection root finder and the conversion
// of a natural cubic spline into cubic Bézier segments.
//
// Points are [vec.Vec2] values in centimetres. The methods Add, Sub and Mul
// of [vec.Vec2] cover addition, subtraction and scaling; this package adds
// the operations the drafting rules need on top of those.
package numeric

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// Pt returns the point (x, y).
func Pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// Norm returns the Euclidean length of v.
func Norm(v vec.Vec2) float64 {
	return math.Hypot(v.X, v.Y)
}

// Dot returns the dot product of a and b.
func Dot(a, b vec.Vec2) float64 {
	return a.X*b.X + a.Y*b.Y
}

// Cross returns the z-component of the cross product of a and b.
func Cross(a, b vec.Vec2) float64 {
	return a.X*b.Y - a.Y*b.X
}

// Normalize returns the unit vector pointing in the direction of v.
// Vectors shorter than 1e-12 map to the zero vector.
func Normalize(v vec.Vec2) vec.Vec2 {
	n := Norm(v)
	if n < 1e-12 {
		return vec.Vec2{}
	}
	return vec.Vec2{X: v.X / n, Y: v.Y / n}
}

// Perp rotates v by 90° counter-clockwise: (x, y) → (−y, x).
func Perp(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{X: -v.Y, Y: v.X}
}

// Lerp interpolates linearly: a + t·(b−a).
func Lerp(a, b vec.Vec2, t float64) vec.Vec2 {
	return vec.Vec2{
		X: a.X + t*(b.X-a.X),
		Y: a.Y + t*(b.Y-a.Y),
	}
}

// Toward returns the unit normal of the direction d, oriented so that it
// points into the half-plane containing target-from.
func Toward(d, from, target vec.Vec2) vec.Vec2 {
	n := Normalize(Perp(d))
	if Dot(n, target.Sub(from)) < 0 {
		n = n.Mul(-1)
	}
	return n
}
