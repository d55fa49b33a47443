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

// Package patron drafts sewing pattern blocks from body measurements.
//
// Two blocks are available: a bodice ([Corset]) with front and back piece,
// and a one-piece set-in sleeve ([Sleeve]). Each block is constructed once
// from measurements and control parameters, may be stretched once for
// stretch fabrics, and can then be queried for its landmarks, outline
// curves and bounding box. All coordinates are in centimetres.
//
// Drawing the outlines is left to the caller; [OutlinePath] converts the
// curves of one piece into a closed [path.Data].
package patron

import (
	"fmt"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/patron/measure"
	"seehuhn.de/go/patron/numeric"
)

// Kind selects one of the pattern blocks.
type Kind int

// These are the available pattern blocks.
const (
	KindCorset Kind = iota
	KindSleeve
)

func (k Kind) String() string {
	switch k {
	case KindCorset:
		return "corset"
	case KindSleeve:
		return "sleeve"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind converts a block name, as returned by [Kind.String], into a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "corset":
		return KindCorset, nil
	case "sleeve":
		return KindSleeve, nil
	}
	return 0, fmt.Errorf("unknown pattern type %q", s)
}

// Pattern is a drafted block. The only implementations are [*Corset] and
// [*Sleeve].
type Pattern interface {
	Kind() Kind

	// Store gives access to the construction and helper points.
	Store() *Store

	// Stretch scales all points for a stretch fabric.
	// It fails if the pattern has been stretched before.
	Stretch(s Stretch) error

	// Bounds returns the drawing area of the pattern, including margins.
	Bounds() rect.Rect

	// Outline returns the seam lines. The curves of each piece are given
	// in order along the closed outline of the piece.
	Outline() []Curve

	// Guides returns the construction lines.
	Guides() []Curve

	// Landmarks returns the labelled points to show on a construction sheet.
	Landmarks() []Landmark

	// Warnings returns drafting problems which do not prevent the pattern
	// from being drawn.
	Warnings() []string

	isPattern()
}

// Piece names used in [Curve] and [Landmark].
const (
	PieceFront  = "front"
	PieceBack   = "back"
	PieceSleeve = "sleeve"
)

// Curve is a named line of a pattern piece, made of cubic Bézier segments.
type Curve struct {
	Piece    string
	Name     string
	Segments []numeric.Cubic
}

// Start returns the first point of the curve.
func (c Curve) Start() vec.Vec2 {
	return c.Segments[0].Start()
}

// End returns the last point of the curve.
func (c Curve) End() vec.Vec2 {
	return c.Segments[len(c.Segments)-1].End()
}

// Landmark is a labelled point for display.
type Landmark struct {
	Piece  string
	Label  string
	Pos    vec.Vec2
	Helper bool // Bézier control point rather than construction point
}

// Pieces returns the names of the pieces in the outline of p,
// in order of first appearance.
func Pieces(p Pattern) []string {
	var res []string
	seen := map[string]bool{}
	for _, c := range p.Outline() {
		if !seen[c.Piece] {
			seen[c.Piece] = true
			res = append(res, c.Piece)
		}
	}
	return res
}

// OutlinePath joins the curves of the given piece into a closed path.
// The curves must be in outline order, as returned by [Pattern.Outline].
func OutlinePath(curves []Curve, piece string) *path.Data {
	p := &path.Data{}
	started := false
	for _, c := range curves {
		if c.Piece != piece {
			continue
		}
		for _, seg := range c.Segments {
			if !started {
				p.MoveTo(seg[0])
				started = true
			}
			p.CubeTo(seg[1], seg[2], seg[3])
		}
	}
	if started {
		p.Close()
	}
	return p
}

// Draft constructs the block of the given kind from a full set of body
// measurements. The control values override the defaults of
// [DefaultCorsetControl] or [DefaultSleeveControl] by name.
func Draft(kind Kind, body measure.Body, control map[string]float64) (Pattern, error) {
	switch kind {
	case KindCorset:
		c := DefaultCorsetControl()
		if err := c.Override(control); err != nil {
			return nil, err
		}
		m, err := NewCorsetMeasurements(body)
		if err != nil {
			return nil, err
		}
		pc, err := NewCorset(m, c)
		if err != nil {
			return nil, err
		}
		return pc, nil
	case KindSleeve:
		c := DefaultSleeveControl()
		if err := c.Override(control); err != nil {
			return nil, err
		}
		return NewSleeve(NewSleeveMeasurements(body), c), nil
	default:
		return nil, fmt.Errorf("unknown pattern type %s", kind)
	}
}

// boundsOf returns the smallest rectangle containing all points.
func boundsOf(pts ...*Points) rect.Rect {
	first := true
	var r rect.Rect
	for _, ps := range pts {
		for _, p := range ps.All() {
			if first {
				r = rect.Rect{LLx: p.X, LLy: p.Y, URx: p.X, URy: p.Y}
				first = false
				continue
			}
			r.LLx = min(r.LLx, p.X)
			r.LLy = min(r.LLy, p.Y)
			r.URx = max(r.URx, p.X)
			r.URy = max(r.URy, p.Y)
		}
	}
	return r
}

// straight returns a curve consisting of a single straight segment.
func straight(piece, name string, a, b vec.Vec2) Curve {
	return Curve{Piece: piece, Name: name, Segments: []numeric.Cubic{numeric.Line(a, b)}}
}
