// seehuhn.de/go/outline - contour extraction for level rasters
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

// Command genpdf writes a PDF preview of every test case.
// Run from the module root directory.
package main

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/outline"
	"seehuhn.de/go/outline/internal/preview"
	"seehuhn.de/go/outline/testcases"
)

const previewDir = "testdata/preview"

// pageSize is the approximate size of the longer page side, in points.
const pageSize = 400

func main() {
	if err := os.MkdirAll(previewDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(previewDir, name+".pdf")
			if err := generatePDF(tc, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generatePDF(tc testcases.TestCase, pdfPath string) error {
	grid, err := outline.ParseGrid(tc.Rows...)
	if err != nil {
		return err
	}
	opt := outline.DefaultOptions
	opt.EmptyLevel = tc.EmptyLevel
	o, err := outline.Trace(grid, tc.Bounds(), &opt)
	if err != nil {
		return err
	}

	width, height := tc.Size()
	if width == 0 || height == 0 {
		// nothing to show
		return nil
	}
	scale := max(1, float64(pageSize)/float64(max(width, height)))
	return preview.WritePDF(pdfPath, &preview.Page{
		Width:      width,
		Height:     height,
		Scale:      scale,
		EmptyLevel: tc.EmptyLevel,
		Outline:    o,
	})
}
