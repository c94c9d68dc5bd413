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

package preview

import (
	"encoding/json"
	"io"

	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/outline"
)

// Record is the JSON form of one traced raster.
type Record struct {
	Name     string     `json:"name"`
	Width    int        `json:"width"`
	Height   int        `json:"height"`
	Segments int        `json:"segments"`
	Corners  [][2]int   `json:"corners"`
	Edges    []jsonEdge `json:"edges"`
}

type jsonEdge struct {
	Left   int           `json:"left"`
	Right  int           `json:"right"`
	Closed bool          `json:"closed,omitempty"`
	Points [][2]int      `json:"points"`
	Path   []jsonSegment `json:"path,omitempty"`
}

type jsonSegment struct {
	Cmd string      `json:"cmd"`
	Pts [][]float64 `json:"pts"`
}

// NewRecord converts a traced outline into its JSON form.
// If withPaths is set, the fitted path of every edge is included.
func NewRecord(name string, width, height int, o *outline.Outline, withPaths bool) *Record {
	rec := &Record{
		Name:     name,
		Width:    width,
		Height:   height,
		Segments: o.NumSegments(),
		Corners:  [][2]int{},
		Edges:    []jsonEdge{},
	}
	for _, c := range o.Corners() {
		rec.Corners = append(rec.Corners, [2]int{c.X, c.Y})
	}
	for _, e := range o.Edges() {
		je := jsonEdge{
			Left:   e.LevelLeft(),
			Right:  e.LevelRight(),
			Closed: e.Continuous(),
		}
		for _, p := range e.Points() {
			je.Points = append(je.Points, [2]int{p.X, p.Y})
		}
		if withPaths {
			je.Path = pathToJSON(e.Path())
		}
		rec.Edges = append(rec.Edges, je)
	}
	return rec
}

// WriteJSON writes the records as an indented JSON document.
func WriteJSON(w io.Writer, recs ...*Record) error {
	out := struct {
		Outlines []*Record `json:"outlines"`
	}{
		Outlines: recs,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func pathToJSON(p *path.Data) []jsonSegment {
	var segs []jsonSegment
	for cmd, pts := range p.Iter() {
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
