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

// Command genpdf writes construction and pattern sheets for all test cases,
// and reference images for the preview tests.
//
// For every case, testdata/sheets/<category>_<name>_construction.pdf and
// ..._pattern.pdf hold the construction and pattern sheets at 1:1 scale. The reference PDFs
// in testdata/reference are rendered to PNGs using Ghostscript.
// Run from the module root directory.
package main

import (
	"flag"
	"fmt"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"
	"seehuhn.de/go/pdf/graphics/content/builder"

	"seehuhn.de/go/patron"
	"seehuhn.de/go/patron/preview"
	"seehuhn.de/go/patron/testcases"
)

const (
	sheetDir = "testdata/sheets"
	refDir   = "testdata/reference"
)

func main() {
	noRef := flag.Bool("no-ref", false, "skip the reference images")
	flag.Parse()

	for _, dir := range []string{sheetDir, refDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			panic(err)
		}
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			p, err := tc.Draft()
			if err != nil {
				panic(err)
			}
			for _, w := range p.Warnings() {
				fmt.Fprintf(os.Stderr, "%s: %s\n", name, w)
			}

			if err := writeSheets(p, filepath.Join(sheetDir, name)); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}

			if *noRef {
				continue
			}
			pdfPath := filepath.Join(refDir, name+".pdf")
			pngPath := filepath.Join(refDir, name+".png")
			if err := generateReference(p, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			if err := renderPNG(pdfPath, pngPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

// toPage maps pattern coordinates in cm to PDF points, with the lower left
// corner of the bounds at the origin.
func toPage(b rect.Rect) matrix.Matrix {
	return matrix.Matrix{preview.CM, 0, 0, preview.CM, -b.LLx * preview.CM, -b.LLy * preview.CM}
}

func writeSheets(p patron.Pattern, name string) error {
	b := p.Bounds()
	paper := &pdf.Rectangle{
		URx: (b.URx - b.LLx) * preview.CM,
		URy: (b.URy - b.LLy) * preview.CM,
	}

	// construction sheet
	page, err := document.CreateSinglePage(name+"_construction.pdf", paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}
	page.Transform(toPage(b))
	page.SetLineWidth(0.02)
	page.SetStrokeColor(color.DeviceGray(0.6))
	page.SetLineDash([]float64{0.3, 0.2}, 0)
	drawCurves(page.Builder, p.Guides())
	page.SetLineDash(nil, 0)
	page.SetLineWidth(0.04)
	page.SetStrokeColor(color.DeviceGray(0))
	drawCurves(page.Builder, p.Outline())
	page.SetFillColor(color.DeviceGray(0))
	page.SetLineWidth(0.02)
	for _, l := range p.Landmarks() {
		page.Circle(l.Pos.X, l.Pos.Y, 0.15)
		if l.Helper {
			page.Stroke()
		} else {
			page.Fill()
		}
	}
	if err := page.Close(); err != nil {
		return err
	}

	// pattern sheet
	page, err = document.CreateSinglePage(name+"_pattern.pdf", paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}
	page.Transform(toPage(b))
	page.SetLineWidth(0.04)
	page.SetStrokeColor(color.DeviceGray(0))
	drawCurves(page.Builder, p.Outline())

	// 10cm scale bar for checking the print size
	page.SetFillColor(color.DeviceGray(0))
	page.Rectangle(b.LLx+1, b.LLy+1, 10, 0.5)
	page.Fill()
	return page.Close()
}

func drawCurves(w *builder.Builder, curves []patron.Curve) {
	for _, c := range curves {
		w.MoveTo(c.Start().X, c.Start().Y)
		for _, seg := range c.Segments {
			w.CurveTo(seg[1].X, seg[1].Y, seg[2].X, seg[2].Y, seg[3].X, seg[3].Y)
		}
		w.Stroke()
	}
}

// generateReference writes the filled outlines, white on black, on a page
// of the same pixel size as [preview.Render] at 72 dpi.
func generateReference(p patron.Pattern, pdfPath string) error {
	b := p.Bounds()
	w, h := preview.Size(b, 72)
	paper := &pdf.Rectangle{
		URx: float64(w),
		URy: float64(h),
	}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// black background for coverage semantics: 0=no coverage, 255=full
	page.SetFillColor(color.DeviceGray(0))
	page.Rectangle(0, 0, float64(w), float64(h))
	page.Fill()

	page.Transform(toPage(b))
	page.SetFillColor(color.DeviceGray(1))

	outline := p.Outline()
	for _, piece := range patron.Pieces(p) {
		for cmd, pts := range patron.OutlinePath(outline, piece).Iter() {
			switch cmd {
			case path.CmdMoveTo:
				page.MoveTo(pts[0].X, pts[0].Y)
			case path.CmdLineTo:
				page.LineTo(pts[0].X, pts[0].Y)
			case path.CmdCubeTo:
				page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
			case path.CmdClose:
				page.ClosePath()
			}
		}
	}
	page.Fill()

	return page.Close()
}

func renderPNG(pdfPath, pngPath string) error {
	// -sDEVICE=pnggray: 8-bit grayscale
	// -r72: 72 DPI (1 point = 1 pixel)
	// -dGraphicsAlphaBits=4: 4x supersampling for anti-aliasing
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=pnggray",
		"-r72",
		"-dGraphicsAlphaBits=4",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
