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
	"fmt"
)

// ErrNotBracketed is returned by [Bisect] when the function values at the
// two ends of the search interval do not have opposite signs.
var ErrNotBracketed = errors.New("interval does not bracket a root")

// maxBisectSteps bounds the number of halvings.
const maxBisectSteps = 200

// Bisect finds a root of f in the interval [a, b] by repeated halving.
//
// The values f(a) and f(b) must have opposite signs (or one of them must be
// zero), otherwise the error wraps [ErrNotBracketed]. The search stops once
// the bracket is at most tol wide, or cannot be split any further in
// floating point, and returns its midpoint. The tolerance must be positive.
func Bisect(f func(float64) float64, a, b, tol float64) (float64, error) {
	if !(tol > 0) {
		return 0, fmt.Errorf("bisection tolerance %g is not positive", tol)
	}

	lo, hi := a, b
	fLo, fHi := f(lo), f(hi)
	switch {
	case fLo == 0:
		return lo, nil
	case fHi == 0:
		return hi, nil
	case !(fLo*fHi < 0):
		return 0, fmt.Errorf("[%g, %g]: f=%g..%g: %w", a, b, fLo, fHi, ErrNotBracketed)
	}

	for range maxBisectSteps {
		if hi-lo <= tol {
			break
		}
		mid := (lo + hi) / 2
		if mid == lo || mid == hi {
			break
		}
		fMid := f(mid)
		if fMid == 0 {
			return mid, nil
		}
		if fMid*fLo < 0 {
			hi = mid
		} else {
			lo, fLo = mid, fMid
		}
	}
	return (lo + hi) / 2, nil
}
