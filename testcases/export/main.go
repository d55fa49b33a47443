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

// Command export writes drafted patterns to JSON: landmarks, outline and
// guide curves, and bounds. With -xlsx, the point tables are also written
// as a spreadsheet with one sheet per pattern.
//
// By default all test cases are exported. With -m, a single pattern is
// drafted from a TOML measurement file instead.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"flag"
	"maps"
	"os"
	"slices"

	"github.com/xuri/excelize/v2"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/patron"
	"seehuhn.de/go/patron/measure"
	"seehuhn.de/go/patron/numeric"
	"seehuhn.de/go/patron/testcases"
)

type draft struct {
	name string
	p    patron.Pattern
}

func main() {
	outFile := flag.String("o", "testdata/testcases.json", "JSON output file")
	xlsxFile := flag.String("xlsx", "", "spreadsheet output file")
	measurements := flag.String("m", "", "TOML measurement file")
	kindName := flag.String("kind", "corset", "pattern block for -m")
	flag.Parse()

	var drafts []draft
	if *measurements != "" {
		body, err := measure.Load(*measurements)
		if err != nil {
			panic(err)
		}
		kind, err := patron.ParseKind(*kindName)
		if err != nil {
			panic(err)
		}
		p, err := patron.Draft(kind, body, nil)
		if err != nil {
			panic(err)
		}
		drafts = append(drafts, draft{name: kind.String(), p: p})
	} else {
		for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
			for _, tc := range testcases.All[category] {
				p, err := tc.Draft()
				if err != nil {
					panic(err)
				}
				drafts = append(drafts, draft{name: category + "_" + tc.Name, p: p})
			}
		}
	}

	var out struct {
		Patterns []jsonPattern `json:"patterns"`
	}
	for _, d := range drafts {
		out.Patterns = append(out.Patterns, toJSON(d.name, d.p))
	}

	f, err := os.Create(*outFile)
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}

	if *xlsxFile != "" {
		if err := writeXLSX(*xlsxFile, drafts); err != nil {
			panic(err)
		}
	}
}

type jsonPattern struct {
	Name      string         `json:"name"`
	Kind      string         `json:"kind"`
	Bounds    [4]float64     `json:"bounds"`
	Stretch   [2]float64     `json:"stretch"`
	Landmarks []jsonLandmark `json:"landmarks"`
	Outline   []jsonCurve    `json:"outline"`
	Guides    []jsonCurve    `json:"guides"`
	Paths     []jsonPath     `json:"paths"`
	Lengths   []jsonLength   `json:"lengths"`
	Warnings  []string       `json:"warnings,omitempty"`
}

type jsonLandmark struct {
	Piece  string    `json:"piece"`
	Label  string    `json:"label"`
	Pos    []float64 `json:"pos"`
	Helper bool      `json:"helper,omitempty"`
}

type jsonCurve struct {
	Piece    string        `json:"piece"`
	Name     string        `json:"name"`
	Segments [][][]float64 `json:"segments"`
}

type jsonLength struct {
	Piece  string  `json:"piece"`
	Name   string  `json:"name"`
	Length float64 `json:"length"`
}

type jsonPath struct {
	Piece string        `json:"piece"`
	Path  []jsonSegment `json:"path"`
}

type jsonSegment struct {
	Cmd string      `json:"cmd"`
	Pts [][]float64 `json:"pts"`
}

func toJSON(name string, p patron.Pattern) jsonPattern {
	h, v := p.Store().Factors()
	jp := jsonPattern{
		Name:     name,
		Kind:     p.Kind().String(),
		Bounds:   bounds(p.Bounds()),
		Stretch:  [2]float64{h, v},
		Outline:  curvesToJSON(p.Outline()),
		Guides:   curvesToJSON(p.Guides()),
		Warnings: p.Warnings(),
	}
	for _, l := range p.Landmarks() {
		jp.Landmarks = append(jp.Landmarks, jsonLandmark{
			Piece:  l.Piece,
			Label:  l.Label,
			Pos:    []float64{l.Pos.X, l.Pos.Y},
			Helper: l.Helper,
		})
	}
	outline := p.Outline()
	for _, c := range outline {
		jp.Lengths = append(jp.Lengths, jsonLength{
			Piece:  c.Piece,
			Name:   c.Name,
			Length: numeric.CurveLength(c.Segments, 1e-3),
		})
	}
	for _, piece := range patron.Pieces(p) {
		jp.Paths = append(jp.Paths, jsonPath{
			Piece: piece,
			Path:  pathToJSON(patron.OutlinePath(outline, piece).Iter()),
		})
	}
	return jp
}

func bounds(r rect.Rect) [4]float64 {
	return [4]float64{r.LLx, r.LLy, r.URx, r.URy}
}

func curvesToJSON(curves []patron.Curve) []jsonCurve {
	res := make([]jsonCurve, len(curves))
	for i, c := range curves {
		jc := jsonCurve{Piece: c.Piece, Name: c.Name}
		for _, seg := range c.Segments {
			pts := make([][]float64, len(seg))
			for j, q := range seg {
				pts[j] = []float64{q.X, q.Y}
			}
			jc.Segments = append(jc.Segments, pts)
		}
		res[i] = jc
	}
	return res
}

func pathToJSON(p path.Path) []jsonSegment {
	var segs []jsonSegment
	for cmd, pts := range p {
		seg := jsonSegment{Pts: make([][]float64, len(pts))}
		switch cmd {
		case path.CmdMoveTo:
			seg.Cmd = "M"
		case path.CmdLineTo:
			seg.Cmd = "L"
		case path.CmdQuadTo:
			seg.Cmd = "Q"
		case path.CmdCubeTo:
			seg.Cmd = "C"
		case path.CmdClose:
			seg.Cmd = "Z"
		}
		for i, pt := range pts {
			seg.Pts[i] = []float64{pt.X, pt.Y}
		}
		segs = append(segs, seg)
	}
	return segs
}

// writeXLSX writes one sheet per pattern with the rows
// piece, label, x, y, kind.
func writeXLSX(fileName string, drafts []draft) error {
	f := excelize.NewFile()
	defer f.Close()

	for i, d := range drafts {
		sheet := d.name
		if len(sheet) > 31 {
			sheet = sheet[:31]
		}
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet); err != nil {
				return err
			}
		} else if _, err := f.NewSheet(sheet); err != nil {
			return err
		}

		header := []any{"piece", "label", "x", "y", "kind"}
		if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
			return err
		}
		for j, l := range d.p.Landmarks() {
			kind := "construction"
			if l.Helper {
				kind = "helper"
			}
			cell, err := excelize.CoordinatesToCellName(1, j+2)
			if err != nil {
				return err
			}
			row := []any{l.Piece, l.Label, l.Pos.X, l.Pos.Y, kind}
			if err := f.SetSheetRow(sheet, cell, &row); err != nil {
				return err
			}
		}
	}

	return f.SaveAs(fileName)
}
