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

package board

import (
	"github.com/bufbuild/lyneate/internal/layout"
	"github.com/bufbuild/lyneate/theme"
)

// Compose paints a layout.
//
// colors is indexed by annotation ID; annotations without a color are drawn
// uncolored.
func Compose(l *layout.Layout, chars theme.Chars, sizing theme.Sizing, colors []Color) *Board {
	c := &composer{
		Layout:  l,
		chars:   chars,
		sizing:  sizing,
		colors:  colors,
		offsets: l.RowOffsets(),
		board: &Board{
			Rows:   make([]Row, l.Rows()),
			Gutter: l.Gutter.Width,
		},
	}
	for i := range c.board.Rows {
		c.board.Rows[i].Line = -1
	}

	c.text()
	c.highlights()
	for i := range l.Brackets {
		c.bracket(&l.Brackets[i])
	}
	c.underlines()

	return c.board
}

type composer struct {
	*layout.Layout

	chars   theme.Chars
	sizing  theme.Sizing
	colors  []Color
	offsets map[int]int

	board *Board
}

func (c *composer) color(id int) *Color {
	if id < 0 || id >= len(c.colors) {
		return nil
	}
	return &c.colors[id]
}

func (c *composer) row(n int) *Row {
	return &c.board.Rows[n]
}

// text writes each line's text into its content row, after the gutter.
func (c *composer) text() {
	w := c.Gutter.Width
	c.Lines.Scan(func(line int, _ *layout.LineState) bool {
		row := c.row(c.offsets[line])
		row.Line = line

		text := []rune(c.Index.Line(line).Trimmed())
		row.Cells = make([]Cell, w+len(text))
		for i := range w {
			row.Cells[i] = blank
		}
		for i, r := range text {
			// Tabs would otherwise occupy more than one column.
			if r == '\t' {
				r = ' '
			}
			row.Cells[w+i] = Cell{Char: r}
		}
		return true
	})
}

// highlights colors the text covered by each annotation. Underlines go last,
// so they win over multiline highlights.
func (c *composer) highlights() {
	w := c.Gutter.Width
	c.Lines.Scan(func(line int, state *layout.LineState) bool {
		row := c.row(c.offsets[line])
		for _, hl := range state.Multilines {
			row.Recolor(hl.Span.Shift(w), c.color(hl.ID))
		}
		for _, ul := range state.Underlines {
			row.Recolor(ul.Span.Shift(w), c.color(ul.ID))
		}
		return true
	})
}

// bracket draws a multiline annotation in the gutter.
func (c *composer) bracket(b *layout.Bracket) {
	color := c.color(b.ID)
	start := c.offsets[b.StartLine]
	end := c.offsets[b.EndLine]
	message := end + 1 + b.Depth

	for n := start + 1; n < message; n++ {
		row := c.row(n)
		switch {
		case n == end:
			row.Set(b.Column, c.chars.SideJunction, color)
			c.pointer(row, b.Column, color)
		case row.IsSpacer():
			row.Set(b.Column, c.chars.SideVerticalDotted, color)
		default:
			row.Set(b.Column, c.chars.SideVertical, color)
		}
	}

	row := c.row(start)
	row.Set(b.Column, c.chars.TopCurve, color)
	c.pointer(row, b.Column, color)

	c.message(c.row(message), b.Column, c.sizing.SideArmLength, b.Message, color)
}

// pointer draws an arrow from a bracket's column to the text.
func (c *composer) pointer(row *Row, col int, color *Color) {
	if c.Gutter.PointerLength == 0 {
		return
	}
	arrow := c.Gutter.ArrowColumn()
	for i := col + 1; i < arrow; i++ {
		row.Set(i, c.chars.SidePointerLine, color)
	}
	row.Set(arrow, c.chars.SidePointer, color)
}

// underlines draws every linear annotation: first all of the underlines, then
// the connectors and messages, so that no underline is drawn over another's
// junction.
func (c *composer) underlines() {
	w := c.Gutter.Width
	c.Lines.Scan(func(line int, state *layout.LineState) bool {
		row := c.row(c.offsets[line] + 1)
		for _, ul := range state.Underlines {
			color := c.color(ul.ID)
			for col := ul.Span.Start; col < ul.Span.End; col++ {
				row.Set(w+col, c.chars.Underline, color)
			}
		}
		return true
	})

	c.Lines.Scan(func(line int, state *layout.LineState) bool {
		under := c.offsets[line] + 1
		for _, ul := range state.Underlines {
			color := c.color(ul.ID)
			col := w + ul.Anchor

			c.row(under).Set(col, c.chars.UnderlineJunction, color)
			for n := under + 1; n < under+ul.Depth; n++ {
				c.row(n).Set(col, c.chars.UnderlineVertical, color)
			}
			c.message(c.row(under+ul.Depth), col, c.sizing.UnderlineArmLength, ul.Message, color)
		}
		return true
	})
}

// message ends a connector at col with a curve and an arm, then attaches the
// message text.
func (c *composer) message(row *Row, col, arm int, text string, color *Color) {
	row.Set(col, c.chars.BottomCurve, color)
	for i := range arm {
		glyph := c.chars.MessageLine
		if i == arm-1 {
			glyph = c.chars.MessagePointer
		}
		row.Set(col+1+i, glyph, color)
	}
	row.Finish(col+1+arm, " "+text)
}
