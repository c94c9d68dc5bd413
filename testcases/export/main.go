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

// Command export writes the traced edges of all test cases to JSON.
// Run from the module root directory.
package main

import (
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/outline"
	"seehuhn.de/go/outline/internal/preview"
	"seehuhn.de/go/outline/testcases"
)

func main() {
	var recs []*preview.Record
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			rec, err := trace(category, tc)
			if err != nil {
				panic(err)
			}
			recs = append(recs, rec)
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/edges.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	if err := preview.WriteJSON(f, recs...); err != nil {
		panic(err)
	}
}

func trace(category string, tc testcases.TestCase) (*preview.Record, error) {
	grid, err := outline.ParseGrid(tc.Rows...)
	if err != nil {
		return nil, err
	}
	opt := outline.DefaultOptions
	opt.EmptyLevel = tc.EmptyLevel
	o, err := outline.Trace(grid, tc.Bounds(), &opt)
	if err != nil {
		return nil, err
	}
	w, h := tc.Size()
	return preview.NewRecord(category+"_"+tc.Name, w, h, o, false), nil
}
