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

package lyneate

import (
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/bufbuild/lyneate/internal/board"
	"github.com/bufbuild/lyneate/internal/interval"
	"github.com/bufbuild/lyneate/internal/layout"
	"github.com/bufbuild/lyneate/theme"
)

// Renderer configures a rendering operation.
type Renderer struct {
	// If set, annotated text and connectors are colored with each
	// annotation's color, using 24-bit ANSI escapes.
	//
	// The theme's effects are applied regardless.
	Colorize bool

	// If set, line numbers are not printed.
	HideLineNumbers bool
}

// Render renders a report.
//
// The returned error is an error from writing to out, if any.
func (r Renderer) Render(report *Report, out io.Writer) error {
	b := r.board(report)
	th := report.theme

	var width int
	if lines := b.Lines(); len(lines) > 0 && !r.HideLineNumbers {
		width = len(strconv.Itoa(lines[len(lines)-1]))
	}

	var buf strings.Builder
	for i := range b.Rows {
		buf.Reset()
		r.row(&buf, &b.Rows[i], width, th)
		buf.WriteByte('\n')
		if _, err := io.WriteString(out, buf.String()); err != nil {
			return err
		}
	}
	return nil
}

// RenderString is a helper for calling [Renderer.Render] with a
// [strings.Builder].
func (r Renderer) RenderString(report *Report) string {
	var buf strings.Builder
	_ = r.Render(report, &buf)
	return buf.String()
}

// board lays out and paints a report.
func (r Renderer) board(report *Report) *board.Board {
	annotations := make([]layout.Annotation, len(report.annotations))
	colors := make([]Color, len(report.annotations))
	for i, a := range report.annotations {
		annotations[i] = layout.Annotation{
			ID:      i,
			Span:    interval.Span{Start: a.Span.Start, End: a.Span.End},
			Message: a.Message,
		}
		colors[i] = a.Color
	}

	th := report.theme
	l := layout.Build(report.index, annotations, th.Sizing)
	b := board.Compose(l, th.Chars, th.Sizing, colors)
	debug(l, b)
	return b
}

// row renders a single board row, without a trailing newline.
func (r Renderer) row(out *strings.Builder, row *board.Row, width int, th theme.Theme) {
	cells := row.Visible()
	body := len(cells) > 0 || row.Trailer != ""
	if !body && (row.IsSpacer() || r.HideLineNumbers) {
		return
	}

	padBy(out, th.Sizing.PreLineNumberPadding)
	if !r.HideLineNumbers {
		if row.IsSpacer() {
			padBy(out, width)
		} else {
			out.WriteString(th.Effects.FormatLineNumber(fmt.Sprintf("%*d", width, row.Line+1)))
		}
		if body {
			out.WriteByte(' ')
		}
	}

	var text strings.Builder
	for _, run := range partition(cells, func(a, b *board.Cell) bool { return !sameColor(a.Color, b.Color) }) {
		text.Reset()
		for _, cell := range run {
			text.WriteRune(cell.Char)
		}

		switch c := run[0].Color; {
		case c == nil:
			out.WriteString(th.Effects.FormatUnhighlighted(text.String()))
		case r.Colorize:
			ansi := color.RGB(int(c.R), int(c.G), int(c.B))
			ansi.EnableColor()
			out.WriteString(ansi.Sprint(text.String()))
		default:
			out.WriteString(text.String())
		}
	}

	out.WriteString(row.Trailer)
}

func sameColor(a, b *Color) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// partition returns an iterator of the subslices of s such that each yielded
// slice is delimited according to delimit. Also yields the starting index of
// the subslice.
func partition[T any](s []T, delimit func(a, b *T) bool) iter.Seq2[int, []T] {
	return func(yield func(int, []T) bool) {
		var start int
		for i := 1; i < len(s); i++ {
			if delimit(&s[i-1], &s[i]) {
				if !yield(start, s[start:i]) {
					return
				}
				start = i
			}
		}
		if rest := s[start:]; len(rest) > 0 {
			yield(start, rest)
		}
	}
}

func padBy(out *strings.Builder, spaces int) {
	for range spaces {
		out.WriteByte(' ')
	}
}
