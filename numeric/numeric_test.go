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

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// xy compares points coordinate-wise, so that the float options apply.
var xy = cmp.Transformer("xy", func(v vec.Vec2) [2]float64 {
	return [2]float64{v.X, v.Y}
})

var approx = cmp.Options{xy, cmpopts.EquateApprox(0, 1e-10)}

func TestNormalize(t *testing.T) {
	diff(t, Pt(0.6, 0.8), Normalize(Pt(3, 4)), approx)
	diff(t, vec.Vec2{}, Normalize(Pt(1e-13, 0)))
	if n := Norm(Pt(3, 4)); math.Abs(n-5) > 1e-12 {
		t.Errorf("Norm = %g, want 5", n)
	}
}

func TestPerp(t *testing.T) {
	diff(t, Pt(0, 1), Perp(Pt(1, 0)))
	diff(t, Pt(-1, 0), Perp(Pt(0, 1)))
	if d := Dot(Pt(2, 7), Perp(Pt(2, 7))); d != 0 {
		t.Errorf("perpendicular dot product = %g", d)
	}
}

func TestLerp(t *testing.T) {
	a, b := Pt(1, 2), Pt(5, -2)
	diff(t, a, Lerp(a, b, 0))
	diff(t, b, Lerp(a, b, 1))
	diff(t, Pt(3, 0), Lerp(a, b, 0.5))
}

func TestToward(t *testing.T) {
	d := Pt(1, 0)
	diff(t, Pt(0, 1), Toward(d, Pt(0, 0), Pt(3, 2)))
	diff(t, Pt(0, -1), Toward(d, Pt(0, 0), Pt(3, -2)), approx)
}

func TestBisect(t *testing.T) {
	const tol = 1e-8
	x, err := Bisect(func(x float64) float64 { return x*x - 4 }, 0, 5, tol)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(x-2) > tol {
		t.Errorf("root = %.12f, want 2", x)
	}
}

func TestBisectDecreasing(t *testing.T) {
	x, err := Bisect(func(x float64) float64 { return 1 - x }, -3, 4, 1e-9)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(x-1) > 1e-9 {
		t.Errorf("root = %g, want 1", x)
	}
}

func TestBisectEndpoint(t *testing.T) {
	x, err := Bisect(func(x float64) float64 { return x - 3 }, 0, 3, 1e-6)
	if err != nil {
		t.Fatal(err)
	}
	if x != 3 {
		t.Errorf("root = %g, want 3", x)
	}
}

func TestBisectBelowFloatSpacing(t *testing.T) {
	calls := 0
	f := func(x float64) float64 {
		calls++
		return x*x - 2
	}
	x, err := Bisect(f, 0, 5, 1e-300)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(x-math.Sqrt2) > 1e-15 {
		t.Errorf("root = %.17g, want %.17g", x, math.Sqrt2)
	}
	if calls > maxBisectSteps+2 {
		t.Errorf("f evaluated %d times", calls)
	}
}

func TestBisectZeroTol(t *testing.T) {
	f := func(x float64) float64 { return x*x - 2 }
	for _, tol := range []float64{0, -1e-6, math.NaN()} {
		if _, err := Bisect(f, 0, 5, tol); err == nil {
			t.Errorf("tol=%g: no error", tol)
		}
	}
}

func TestBisectNotBracketed(t *testing.T) {
	calls := 0
	f := func(x float64) float64 {
		calls++
		return x*x + 1
	}
	_, err := Bisect(f, -1, 2, 1e-6)
	if !errors.Is(err, ErrNotBracketed) {
		t.Fatalf("got error %v, want ErrNotBracketed", err)
	}
	if calls != 2 {
		t.Errorf("f evaluated %d times, want 2", calls)
	}

	_, err = Bisect(func(float64) float64 { return math.NaN() }, 0, 1, 1e-6)
	if !errors.Is(err, ErrNotBracketed) {
		t.Errorf("NaN endpoints: got error %v, want ErrNotBracketed", err)
	}
}

func TestCubicEval(t *testing.T) {
	c := Cubic{Pt(0, 0), Pt(1, 2), Pt(3, 2), Pt(4, 0)}
	diff(t, c[0], c.Eval(0))
	diff(t, c[3], c.Eval(1))
	diff(t, Pt(2, 1.5), c.Eval(0.5), approx)
	diff(t, c.Eval(0.3), c.Reverse().Eval(0.7), approx)
}

func TestCubicTransform(t *testing.T) {
	c := Line(Pt(-3, 1), Pt(-1, 4))
	mirror := matrix.Matrix{-1, 0, 0, 1, 5, 0}
	got := c.Transform(mirror)
	diff(t, Pt(8, 1), got[0])
	diff(t, Pt(6, 4), got[3])
}

func TestTangentCrossings(t *testing.T) {
	cases := []struct {
		name       string
		c          Cubic
		start, end bool
	}{
		{"none", Cubic{Pt(0, 0), Pt(1, 0), Pt(2, 1), Pt(3, 1)}, false, false},
		{"start", Cubic{Pt(0, 0), Pt(1, 0), Pt(2, 1), Pt(3, -1)}, true, false},
		{"end", Cubic{Pt(0, 1), Pt(1, -1), Pt(2, 0), Pt(3, 0)}, false, true},
		{"both", Cubic{Pt(0, 0), Pt(1, 1), Pt(2, -1), Pt(3, 0)}, true, true},
		{"degenerate", Cubic{Pt(0, 0), Pt(0, 0), Pt(3, 0), Pt(3, 0)}, false, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			start, end := tc.c.TangentCrossings()
			if start != tc.start || end != tc.end {
				t.Errorf("got (%t, %t), want (%t, %t)", start, end, tc.start, tc.end)
			}
		})
	}
}

func TestSplineTwoPoints(t *testing.T) {
	a, b := Pt(0.1, 0.7), Pt(3.3, 6.1)
	segs := SplineToBeziers([]vec.Vec2{a, b})
	if len(segs) != 1 {
		t.Fatalf("got %d segments, want 1", len(segs))
	}
	s := segs[0]
	if s[0] != a || s[3] != b {
		t.Errorf("endpoints %v, %v; want %v, %v", s[0], s[3], a, b)
	}
	diff(t, Lerp(a, b, 1.0/3.0), s[1], approx)
	diff(t, Lerp(a, b, 2.0/3.0), s[2], approx)
}

func TestSplineThreePoints(t *testing.T) {
	pts := []vec.Vec2{Pt(0, 0), Pt(1, 1), Pt(2, 0.1)}
	segs := SplineToBeziers(pts)
	if len(segs) != 2 {
		t.Fatalf("got %d segments, want 2", len(segs))
	}
	if segs[0][0] != pts[0] || segs[0][3] != pts[1] || segs[1][0] != pts[1] || segs[1][3] != pts[2] {
		t.Errorf("segments do not interpolate the input points: %v", segs)
	}
}

// TestSplineContinuity checks the joints for matching first and second
// derivatives and the natural end conditions.
func TestSplineContinuity(t *testing.T) {
	pts := []vec.Vec2{Pt(0, 0), Pt(1, 2), Pt(3, 3), Pt(4, 1), Pt(6, 0), Pt(6, 0)}
	segs := SplineToBeziers(pts)
	if len(segs) != len(pts)-1 {
		t.Fatalf("got %d segments, want %d", len(segs), len(pts)-1)
	}

	h := func(i int) float64 {
		l := Norm(pts[i+1].Sub(pts[i]))
		if l < 1e-12 {
			return 1
		}
		return l
	}
	d1End := func(i int) vec.Vec2 { return segs[i][3].Sub(segs[i][2]).Mul(3 / h(i)) }
	d1Start := func(i int) vec.Vec2 { return segs[i][1].Sub(segs[i][0]).Mul(3 / h(i)) }
	d2End := func(i int) vec.Vec2 {
		s := segs[i]
		return s[3].Sub(s[2].Mul(2)).Add(s[1]).Mul(6 / (h(i) * h(i)))
	}
	d2Start := func(i int) vec.Vec2 {
		s := segs[i]
		return s[2].Sub(s[1].Mul(2)).Add(s[0]).Mul(6 / (h(i) * h(i)))
	}

	opt := cmp.Options{xy, cmpopts.EquateApprox(0, 1e-9)}
	for i := range len(segs) - 1 {
		diff(t, d1End(i), d1Start(i+1), opt)
		diff(t, d2End(i), d2Start(i+1), opt)
	}
	diff(t, vec.Vec2{}, d2Start(0), opt)
	diff(t, vec.Vec2{}, d2End(len(segs)-1), opt)
}

func TestSplineTooShort(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("no panic for a single point")
		}
	}()
	SplineToBeziers([]vec.Vec2{Pt(1, 1)})
}

func BenchmarkSpline(b *testing.B) {
	pts := make([]vec.Vec2, 64)
	for i := range pts {
		x := float64(i)
		pts[i] = Pt(x, math.Sin(x/5))
	}
	b.ReportAllocs()
	for b.Loop() {
		SplineToBeziers(pts)
	}
}

func TestFlattenLine(t *testing.T) {
	c := Line(Pt(1, 1), Pt(4, 5))
	var n int
	c.Flatten(1e-3, func(from, to vec.Vec2) { n++ })
	if n != 1 {
		t.Errorf("straight line flattened into %d segments", n)
	}
	if l := c.Length(1e-3); math.Abs(l-5) > 1e-12 {
		t.Errorf("Length = %g, want 5", l)
	}
}

func TestFlattenContiguous(t *testing.T) {
	c := Cubic{Pt(0, 0), Pt(0, 10), Pt(10, 10), Pt(10, 0)}
	prev := c.Start()
	n := 0
	c.Flatten(0.01, func(from, to vec.Vec2) {
		if from != prev {
			t.Errorf("segment %d starts at %v, want %v", n, from, prev)
		}
		prev = to
		n++
	})
	if prev != c.End() {
		t.Errorf("flattened curve ends at %v", prev)
	}
	if n < 10 {
		t.Errorf("only %d segments", n)
	}
}

func TestLengthQuarterCircle(t *testing.T) {
	const k = 0.5522847498
	c := Cubic{Pt(1, 0), Pt(1, k), Pt(k, 1), Pt(0, 1)}
	if l := c.Length(1e-6); math.Abs(l-math.Pi/2) > 1e-3 {
		t.Errorf("Length = %g, want %g", l, math.Pi/2)
	}
	if l := CurveLength([]Cubic{c, c.Reverse()}, 1e-6); math.Abs(l-math.Pi) > 2e-3 {
		t.Errorf("CurveLength = %g, want %g", l, math.Pi)
	}
}

func TestFlattenSegmentLimit(t *testing.T) {
	c := Cubic{Pt(0, 0), Pt(0, 10), Pt(10, 10), Pt(10, 0)}
	for _, tol := range []float64{0, -1, math.NaN(), 1e-300} {
		n := 0
		c.Flatten(tol, func(from, to vec.Vec2) { n++ })
		if n != maxFlattenSegments {
			t.Errorf("tol=%g: %d segments, want %d", tol, n, maxFlattenSegments)
		}
		if l := c.Length(tol); l <= Norm(c.End().Sub(c.Start())) {
			t.Errorf("tol=%g: Length %g not above the chord", tol, l)
		}
	}
}
