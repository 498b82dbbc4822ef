// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package board paints a [layout.Layout] onto a grid of colored cells.
package board

import (
	"fmt"
	"io"
	"strings"

	"github.com/bufbuild/lyneate/internal/interval"
)

// Color is a 24-bit RGB color.
type Color struct {
	R, G, B uint8
}

// Cell is a single character on the board.
type Cell struct {
	Char  rune
	Color *Color // nil for uncolored cells.
}

var blank = Cell{Char: ' '}

// Row is a single row of the board.
type Row struct {
	// The zero-based source line shown on this row, or -1 for spacer rows.
	Line int

	Cells []Cell

	// Text printed verbatim after the cells, usually a message. Once a
	// trailer is set, the row stops growing: writes past the end are dropped.
	Trailer string
}

// IsSpacer returns whether this row shows no source line.
func (r *Row) IsSpacer() bool {
	return r.Line < 0
}

// Set writes a character at the given column.
//
// If col is past the end of the row, the row is extended with blanks, unless
// this row has a trailer, in which case nothing is written.
func (r *Row) Set(col int, char rune, color *Color) {
	if col < 0 {
		return
	}
	if col >= len(r.Cells) {
		if r.Trailer != "" {
			return
		}
		for len(r.Cells) <= col {
			r.Cells = append(r.Cells, blank)
		}
	}
	r.Cells[col] = Cell{Char: char, Color: color}
}

// Recolor sets the color of the cells in span. Columns past the end of the
// row are ignored.
func (r *Row) Recolor(span interval.Span, color *Color) {
	for col := max(0, span.Start); col < min(span.End, len(r.Cells)); col++ {
		r.Cells[col].Color = color
	}
}

// Finish truncates the row to n cells and sets its trailer.
func (r *Row) Finish(n int, trailer string) {
	if n < len(r.Cells) {
		r.Cells = r.Cells[:n]
	}
	r.Trailer = trailer
}

// Visible returns the cells that should be printed: all of them if there is
// a trailer, otherwise all but trailing blanks.
func (r *Row) Visible() []Cell {
	if r.Trailer != "" {
		return r.Cells
	}
	n := len(r.Cells)
	for n > 0 && r.Cells[n-1].Char == ' ' {
		n--
	}
	return r.Cells[:n]
}

// String returns the uncolored text of this row.
func (r *Row) String() string {
	var buf strings.Builder
	for _, cell := range r.Visible() {
		buf.WriteRune(cell.Char)
	}
	buf.WriteString(r.Trailer)
	return buf.String()
}

// Board is a painted grid of rows.
type Board struct {
	Rows []Row

	// The number of leading columns reserved for multiline brackets.
	Gutter int
}

// Lines returns the one-based numbers of the source lines on this board, in
// order.
func (b *Board) Lines() []int {
	var lines []int
	for i := range b.Rows {
		if !b.Rows[i].IsSpacer() {
			lines = append(lines, b.Rows[i].Line+1)
		}
	}
	return lines
}

// Dump writes the uncolored rows of this board to w, for debugging.
func (b *Board) Dump(w io.Writer) {
	for i := range b.Rows {
		row := &b.Rows[i]
		if row.IsSpacer() {
			fmt.Fprintf(w, "%4s | %s\n", "", row.String())
		} else {
			fmt.Fprintf(w, "%4d | %s\n", row.Line+1, row.String())
		}
	}
}
