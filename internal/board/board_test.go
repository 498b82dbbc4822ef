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

package board_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/lyneate/internal/board"
	"github.com/bufbuild/lyneate/internal/interval"
	"github.com/bufbuild/lyneate/internal/layout"
	"github.com/bufbuild/lyneate/internal/source"
	"github.com/bufbuild/lyneate/theme"
)

var (
	red  = board.Color{R: 255}
	blue = board.Color{B: 255}
)

func compose(text string, colors []board.Color, annotations ...layout.Annotation) *board.Board {
	for i := range annotations {
		annotations[i].ID = i
	}
	sizing := theme.DefaultSizing()
	l := layout.Build(source.NewIndex(text), annotations, sizing)
	return board.Compose(l, theme.BoxDrawing(), sizing, colors)
}

func rows(b *board.Board) []string {
	out := make([]string, len(b.Rows))
	for i := range b.Rows {
		out[i] = b.Rows[i].String()
	}
	return out
}

func lines(b *board.Board) []int {
	out := make([]int, len(b.Rows))
	for i := range b.Rows {
		out[i] = b.Rows[i].Line
	}
	return out
}

func TestSingleUnderline(t *testing.T) {
	t.Parallel()

	b := compose("let x = 1;\nlet y = 2;\n", []board.Color{red},
		layout.Annotation{Span: interval.Span{Start: 4, End: 5}, Message: "variable"},
	)

	assert.Empty(t, cmp.Diff([]string{
		"let x = 1;",
		"    ┬",
		"    ╰── variable",
	}, rows(b)))
	assert.Equal(t, []int{0, -1, -1}, lines(b))
	assert.Equal(t, []int{1}, b.Lines())
	assert.Zero(t, b.Gutter)

	assert.Equal(t, &red, b.Rows[0].Cells[4].Color)
	assert.Nil(t, b.Rows[0].Cells[3].Color)
	assert.Equal(t, &red, b.Rows[1].Cells[4].Color)
}

func TestOverlappingUnderlines(t *testing.T) {
	t.Parallel()

	b := compose("0123456789abc\n", []board.Color{red, blue},
		layout.Annotation{Span: interval.Span{Start: 0, End: 10}, Message: "outer"},
		layout.Annotation{Span: interval.Span{Start: 4, End: 6}, Message: "inner"},
	)

	assert.Empty(t, cmp.Diff([]string{
		"0123456789abc",
		"─────┬──┬─",
		"     │  ╰── outer",
		"     ╰── inner",
	}, rows(b)))

	// The later annotation wins where they overlap.
	text := b.Rows[0].Cells
	assert.Equal(t, &red, text[3].Color)
	assert.Equal(t, &blue, text[4].Color)
	assert.Equal(t, &blue, text[5].Color)
	assert.Equal(t, &red, text[6].Color)
	assert.Nil(t, text[10].Color)
}

func TestMultiline(t *testing.T) {
	t.Parallel()

	b := compose("fn {\n  x\n}\n", []board.Color{red, blue},
		layout.Annotation{Span: interval.Span{Start: 3, End: 10}, Message: "block"},
		layout.Annotation{Span: interval.Span{Start: 7, End: 8}, Message: "x"},
	)

	assert.Empty(t, cmp.Diff([]string{
		"╭─▶ fn {",
		"│     x",
		"╵     ┬",
		"╵     ╰── x",
		"├─▶ }",
		"╰── block",
	}, rows(b)))
	assert.Equal(t, []int{0, 1, -1, -1, 2, -1}, lines(b))
	assert.Equal(t, 4, b.Gutter)

	assert.Equal(t, &red, b.Rows[0].Cells[0].Color)
	assert.Equal(t, &red, b.Rows[0].Cells[7].Color, "opening brace")
	assert.Nil(t, b.Rows[0].Cells[6].Color)
	assert.Equal(t, &red, b.Rows[4].Cells[4].Color, "closing brace")
	assert.Equal(t, &blue, b.Rows[1].Cells[6].Color)
}

func TestBracketOverSkippedLine(t *testing.T) {
	t.Parallel()

	b := compose("aaa\nbbb\nccc\n", []board.Color{red},
		layout.Annotation{Span: interval.Span{Start: 1, End: 10}, Message: "block"},
	)

	assert.Empty(t, cmp.Diff([]string{
		"╭─▶ aaa",
		"╵",
		"├─▶ ccc",
		"╰── block",
	}, rows(b)))
	assert.Equal(t, []int{0, -1, 2, -1}, lines(b))
	assert.Equal(t, []int{1, 3}, b.Lines())
	assert.Equal(t, &red, b.Rows[1].Cells[0].Color)
}

func TestUnreferencedLines(t *testing.T) {
	t.Parallel()

	b := compose("a\nb\nc\n", nil,
		layout.Annotation{Span: interval.Span{Start: 4, End: 5}, Message: "c"},
	)
	assert.Equal(t, []int{3}, b.Lines())
	assert.Nil(t, b.Rows[0].Cells[0].Color, "no color given")

	assert.Empty(t, compose("a\nb\n", nil).Rows)
}

func TestTabs(t *testing.T) {
	t.Parallel()

	b := compose("\tx  \n", nil,
		layout.Annotation{Span: interval.Span{Start: 1, End: 2}, Message: "x"},
	)
	assert.Equal(t, " x", b.Rows[0].String())
}

func TestRow(t *testing.T) {
	t.Parallel()

	var row board.Row
	row.Set(3, 'x', nil)
	assert.Equal(t, "   x", row.String())
	require.Len(t, row.Cells, 4)

	row.Set(-1, 'y', nil)
	assert.Len(t, row.Cells, 4)

	row.Recolor(interval.Span{Start: 2, End: 10}, &red)
	require.Len(t, row.Cells, 4)
	assert.Equal(t, &red, row.Cells[3].Color)
	assert.Nil(t, row.Cells[1].Color)

	row.Set(6, ' ', nil)
	assert.Len(t, row.Cells, 7)
	assert.Equal(t, "   x", row.String(), "trailing blanks are not visible")

	row.Finish(5, " msg")
	assert.Len(t, row.Cells, 5)
	assert.Equal(t, "   x  msg", row.String(), "blanks before a trailer are visible")

	row.Set(9, 'z', nil)
	assert.Len(t, row.Cells, 5, "writes past a trailer are dropped")
	row.Set(0, 'z', nil)
	assert.Equal(t, "z  x  msg", row.String())
}

func TestDump(t *testing.T) {
	t.Parallel()

	b := compose("let x = 1;\n", nil,
		layout.Annotation{Span: interval.Span{Start: 4, End: 5}, Message: "variable"},
	)

	var buf strings.Builder
	b.Dump(&buf)
	assert.Equal(t, "   1 | let x = 1;\n"+
		"     |     ┬\n"+
		"     |     ╰── variable\n", buf.String())
}
