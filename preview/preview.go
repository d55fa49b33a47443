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

// Package preview rasterises the outline of a drafted pattern into a
// coverage mask, for quick previews and for checking drafts against
// reference renderings.
package preview

import (
	"image"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/math/f64"
	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/patron"
)

// CM is the number of PDF points per centimetre.
const CM = 72 / 2.54

// Canvas maps pattern coordinates (centimetres, y up) to pixel coordinates
// (y down) for a given drawing area.
type Canvas struct {
	Width, Height int

	m f64.Aff3
}

// Size returns the pixel size of the area b at the given resolution,
// rounded up.
func Size(b rect.Rect, dpi float64) (width, height int) {
	scale := dpi / 2.54
	width = int(math.Ceil((b.URx - b.LLx) * scale))
	height = int(math.Ceil((b.URy - b.LLy) * scale))
	return max(width, 1), max(height, 1)
}

// NewCanvas returns a canvas showing the area b at the given resolution.
// The lower left corner of b is at the lower left corner of the image.
func NewCanvas(b rect.Rect, dpi float64) *Canvas {
	w, h := Size(b, dpi)
	scale := dpi / 2.54
	return &Canvas{
		Width:  w,
		Height: h,
		m:      f64.Aff3{scale, 0, -b.LLx * scale, 0, -scale, float64(h) + b.LLy*scale},
	}
}

// Pixel returns the pixel coordinates of the pattern point v.
func (c *Canvas) Pixel(v vec.Vec2) (x, y float64) {
	m := c.m
	return m[0]*v.X + m[1]*v.Y + m[2], m[3]*v.X + m[4]*v.Y + m[5]
}

// Fill rasterises the given paths with the nonzero winding rule and
// returns the coverage.
func (c *Canvas) Fill(paths ...*path.Data) *image.Alpha {
	img := image.NewAlpha(image.Rect(0, 0, c.Width, c.Height))
	z := vector.NewRasterizer(c.Width, c.Height)
	for _, p := range paths {
		c.addPath(z, p)
		z.Draw(img, img.Bounds(), image.Opaque, image.Point{})
		z.Reset(c.Width, c.Height)
	}
	return img
}

func (c *Canvas) addPath(z *vector.Rasterizer, p *path.Data) {
	pt := func(v vec.Vec2) (float32, float32) {
		x, y := c.Pixel(v)
		return float32(x), float32(y)
	}
	for cmd, pts := range p.Iter() {
		switch cmd {
		case path.CmdMoveTo:
			z.MoveTo(pt(pts[0]))
		case path.CmdLineTo:
			z.LineTo(pt(pts[0]))
		case path.CmdQuadTo:
			x1, y1 := pt(pts[0])
			x2, y2 := pt(pts[1])
			z.QuadTo(x1, y1, x2, y2)
		case path.CmdCubeTo:
			x1, y1 := pt(pts[0])
			x2, y2 := pt(pts[1])
			x3, y3 := pt(pts[2])
			z.CubeTo(x1, y1, x2, y2, x3, y3)
		case path.CmdClose:
			z.ClosePath()
		}
	}
}

// Render fills all pieces of p within the bounds of the pattern.
func Render(p patron.Pattern, dpi float64) *image.Alpha {
	c := NewCanvas(p.Bounds(), dpi)
	outline := p.Outline()
	var paths []*path.Data
	for _, piece := range patron.Pieces(p) {
		paths = append(paths, patron.OutlinePath(outline, piece))
	}
	return c.Fill(paths...)
}

// WritePNG writes the coverage mask as a grayscale PNG image, with full
// coverage shown white.
func WritePNG(w io.Writer, img *image.Alpha) error {
	gray := &image.Gray{Pix: img.Pix, Stride: img.Stride, Rect: img.Rect}
	return png.Encode(w, gray)
}
