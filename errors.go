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

package outline

import (
	"errors"
	"fmt"
)

// ErrDesync indicates that the internal bookkeeping of the vertex graph
// became inconsistent.  This is a bug, not a property of the input.
var ErrDesync = errors.New("outline: vertex graph desynchronized")

// GraphError describes a failed consistency check of the vertex graph.
type GraphError struct {
	Phase  string // "check", "corners", "loops" or "final"
	At     Coord  // the vertex where the problem was found, if any
	HasAt  bool
	Detail string
}

func (e *GraphError) Error() string {
	msg := ErrDesync.Error() + " (" + e.Phase
	if e.HasAt {
		msg += fmt.Sprintf(" at %d,%d", e.At.X, e.At.Y)
	}
	return msg + "): " + e.Detail
}

// Unwrap allows errors.Is(err, ErrDesync).
func (e *GraphError) Unwrap() error {
	return ErrDesync
}

// desync returns a GraphError for vertex v.
// The phase is filled in by the caller.
func (g *graph) desync(v int32, format string, args ...any) *GraphError {
	return &GraphError{
		At:     g.verts[v].at,
		HasAt:  true,
		Detail: fmt.Sprintf(format, args...),
	}
}
