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

package patron

import (
	"errors"
	"fmt"
	"iter"
	"math"
	"slices"

	"seehuhn.de/go/geom/vec"
)

// Points is a collection of named points.
//
// Labels keep the order in which they were first set. Setting an existing
// label replaces its position without changing the order.
type Points struct {
	labels []string
	pos    map[string]vec.Vec2
}

// Set stores p under the given label.
func (ps *Points) Set(label string, p vec.Vec2) {
	if ps.pos == nil {
		ps.pos = make(map[string]vec.Vec2)
	}
	if _, seen := ps.pos[label]; !seen {
		ps.labels = append(ps.labels, label)
	}
	ps.pos[label] = p
}

// Get returns the point stored under label.
func (ps *Points) Get(label string) (vec.Vec2, bool) {
	p, ok := ps.pos[label]
	return p, ok
}

// At returns the point stored under label.
// It panics if the label has not been set.
func (ps *Points) At(label string) vec.Vec2 {
	p, ok := ps.pos[label]
	if !ok {
		panic("undefined point " + label)
	}
	return p
}

// Len returns the number of stored points.
func (ps *Points) Len() int {
	return len(ps.labels)
}

// Labels returns the labels in construction order.
func (ps *Points) Labels() []string {
	return slices.Clone(ps.labels)
}

// All iterates over the points in construction order.
func (ps *Points) All() iter.Seq2[string, vec.Vec2] {
	return func(yield func(string, vec.Vec2) bool) {
		for _, label := range ps.labels {
			if !yield(label, ps.pos[label]) {
				return
			}
		}
	}
}

func (ps *Points) scale(h, v float64) {
	for label, p := range ps.pos {
		ps.pos[label] = vec.Vec2{X: p.X * h, Y: p.Y * v}
	}
}

// ErrAlreadyStretched is returned when a stretch is applied to a pattern
// for the second time.
var ErrAlreadyStretched = errors.New("pattern is already stretched")

// Stretch describes the fabric stretch to take out of a pattern.
type Stretch struct {
	// Horizontal and Vertical are the stretch capacities of the fabric,
	// e.g. 0.3 for a fabric which stretches by 30%.
	Horizontal, Vertical float64

	// Usage is the fraction of the capacity to use, in [0, 1].
	Usage float64
}

// Validate checks that the capacities are non-negative and the usage lies
// in [0, 1].
func (s Stretch) Validate() error {
	for _, v := range []float64{s.Horizontal, s.Vertical, s.Usage} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("invalid stretch %+v", s)
		}
	}
	if s.Horizontal < 0 || s.Vertical < 0 {
		return fmt.Errorf("negative stretch capacity %g/%g", s.Horizontal, s.Vertical)
	}
	if s.Usage < 0 || s.Usage > 1 {
		return fmt.Errorf("stretch usage %g outside [0, 1]", s.Usage)
	}
	return nil
}

// Factors returns the multipliers for the x and y coordinates.
func (s Stretch) Factors() (h, v float64) {
	return 1 / (1 + s.Horizontal*s.Usage), 1 / (1 + s.Vertical*s.Usage)
}

// Store holds the points of one pattern: the construction points, which
// are drafting landmarks, and the helper points, which are Bézier control
// points.
//
// A Store is not safe for concurrent use.
type Store struct {
	Construction Points
	Helpers      Points

	stretched bool
	h, v      float64
}

// Stretch scales all points by the factors of s.
// This can be done only once per pattern; later calls return
// [ErrAlreadyStretched] and leave the points unchanged.
func (st *Store) Stretch(s Stretch) error {
	if st.stretched {
		return ErrAlreadyStretched
	}
	if err := s.Validate(); err != nil {
		return err
	}

	h, v := s.Factors()
	st.Construction.scale(h, v)
	st.Helpers.scale(h, v)
	st.h, st.v = h, v
	st.stretched = true
	return nil
}

// Stretched reports whether a stretch has been applied.
func (st *Store) Stretched() bool {
	return st.stretched
}

// Factors returns the stretch factors which have been applied,
// or (1, 1) if the pattern is not stretched.
func (st *Store) Factors() (h, v float64) {
	if !st.stretched {
		return 1, 1
	}
	return st.h, st.v
}
