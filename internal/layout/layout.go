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

// Package layout turns a flat list of annotations into row and column
// geometry.
//
// Layout happens in stages, each a pure function of the previous one:
//
//  1. [Classify] splits annotations into [Linear] and [Multiline] ones.
//  2. [GroupMultilines] gathers overlapping multilines into [Group]s.
//  3. [Build] lays out underlines, reserves rows below each line, and
//     allocates gutter columns for multiline brackets, producing a [Layout].
//
// Painting the result is the job of package board.
package layout

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"unicode/utf8"

	"github.com/tidwall/btree"

	"github.com/bufbuild/lyneate/internal/interval"
	"github.com/bufbuild/lyneate/internal/source"
	"github.com/bufbuild/lyneate/theme"
)

// Highlight is a line-local span to recolor with some annotation's color.
type Highlight struct {
	ID   int
	Span interval.Span
}

// LineState is everything attached to a single line that produces output.
type LineState struct {
	// Laid-out linear annotations on this line, in the order given.
	Underlines []Underline

	// Portions of this line covered by the start or end of a multiline
	// annotation.
	Multilines []Highlight

	// The number of rows reserved below this line. This only ever grows as
	// annotations are attached to the line.
	Spacing int
}

// Bracket is a laid-out multiline annotation.
type Bracket struct {
	Multiline

	// The index of the group this bracket belongs to, and its side index
	// within it.
	Group, Side int

	// The gutter column the bracket's vertical is drawn in.
	Column int

	// How many rows below EndLine the message is written on.
	Depth int
}

// Layout is the fully laid-out geometry of a set of annotations.
type Layout struct {
	Index  *source.Index
	Gutter Gutter

	// Per-line state for every line that produces output, keyed by line index.
	// Lines not in this map are not rendered.
	Lines btree.Map[int, *LineState]

	// Brackets in group order, then side order.
	Brackets []Bracket
}

// Build lays out annotations over the given text.
func Build(idx *source.Index, annotations []Annotation, sizing theme.Sizing) *Layout {
	return Lay(GroupMultilines(Classify(idx, annotations)), sizing)
}

// Lay computes the final layout for a grouped set of annotations.
func Lay(g Grouped, sizing theme.Sizing) *Layout {
	l := &Layout{
		Index:  g.Index,
		Gutter: NewGutter(g.MaxGroupSize(), sizing.SidePointerLength),
	}

	// Linear annotations go first, so that they get the rows nearest to their
	// line. Any bracket ending on the same line then runs its vertical down
	// past their messages, to the left of them.
	byLine := make(map[int][]Linear)
	for _, lin := range g.Linear {
		byLine[lin.Line] = append(byLine[lin.Line], lin)
	}
	for _, line := range slices.Sorted(maps.Keys(byLine)) {
		layoutUnderlines(byLine[line], l.state(line), sizing.UnderlineSpacing)
	}

	for i, group := range g.Groups {
		for side, m := range group.Members {
			l.Brackets = append(l.Brackets, Bracket{
				Multiline: m,
				Group:     i,
				Side:      side,
				Column:    l.Gutter.Column(len(group.Members), side),
			})

			start := l.state(m.StartLine)
			trimmed := utf8.RuneCountInString(g.Index.Line(m.StartLine).Trimmed())
			start.Multilines = append(start.Multilines, Highlight{
				ID:   m.ID,
				Span: interval.Span{Start: m.PreLen, End: max(m.PreLen, trimmed)},
			})

			end := l.state(m.EndLine)
			end.Multilines = append(end.Multilines, Highlight{
				ID:   m.ID,
				Span: interval.Span{Start: 0, End: m.EndLen},
			})
		}
	}

	// Messages for brackets are placed innermost-first, so that the verticals
	// of outer brackets, which are further left, pass by them.
	for i := len(l.Brackets) - 1; i >= 0; i-- {
		b := &l.Brackets[i]
		end := l.state(b.EndLine)
		end.Spacing += 1 + sizing.UnderlineSpacing
		b.Depth = end.Spacing - 1
	}

	// A bracket that skips over lines needs at least one row between its ends
	// to show its stem. If no rendered line falls in between, the first line
	// gets a spacer row.
	for _, b := range l.Brackets {
		if b.EndLine-b.StartLine < 2 || l.rendersBetween(b.StartLine, b.EndLine) {
			continue
		}
		start := l.state(b.StartLine)
		start.Spacing = max(start.Spacing, 1)
	}

	return l
}

// rendersBetween returns whether any line strictly between start and end
// produces output.
func (l *Layout) rendersBetween(start, end int) bool {
	var found bool
	l.Lines.Ascend(start+1, func(line int, _ *LineState) bool {
		found = line < end
		return false
	})
	return found
}

// Rows returns the total number of board rows this layout produces.
func (l *Layout) Rows() int {
	var rows int
	l.Lines.Scan(func(_ int, state *LineState) bool {
		rows += state.Spacing + 1
		return true
	})
	return rows
}

// RowOffsets maps each rendered line to the index of its content row.
//
// A line's content row comes after the content and spacer rows of all lines
// before it.
func (l *Layout) RowOffsets() map[int]int {
	offsets := make(map[int]int, l.Lines.Len())
	var row int
	l.Lines.Scan(func(line int, state *LineState) bool {
		offsets[line] = row
		row += state.Spacing + 1
		return true
	})
	return offsets
}

// Dump writes a human-readable description of this layout to w, for
// debugging.
func (l *Layout) Dump(w io.Writer) {
	fmt.Fprintf(w, "gutter: width=%d pointer=%d\n", l.Gutter.Width, l.Gutter.PointerLength)
	l.Lines.Scan(func(line int, state *LineState) bool {
		fmt.Fprintf(w, "line %d: spacing=%d\n", line+1, state.Spacing)
		for _, ul := range state.Underlines {
			fmt.Fprintf(w, "  underline #%d %v visible=%v anchor=%d depth=%d\n",
				ul.ID, ul.Span, ul.Visible, ul.Anchor, ul.Depth)
		}
		for _, hl := range state.Multilines {
			fmt.Fprintf(w, "  multiline #%d %v\n", hl.ID, hl.Span)
		}
		return true
	})
	for _, b := range l.Brackets {
		fmt.Fprintf(w, "bracket #%d: group=%d side=%d lines=%d..%d column=%d depth=%d\n",
			b.ID, b.Group, b.Side, b.StartLine+1, b.EndLine+1, b.Column, b.Depth)
	}
}

// state returns the state for the given line, creating it if necessary.
func (l *Layout) state(line int) *LineState {
	state, ok := l.Lines.Get(line)
	if !ok {
		state = new(LineState)
		l.Lines.Set(line, state)
	}
	return state
}
