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

package lyneate_test

import (
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/lyneate"
	"github.com/bufbuild/lyneate/theme"
)

func plain() theme.Theme {
	th := theme.Default()
	th.Effects = theme.NoEffects()
	return th
}

func mustReport(t *testing.T, text string, annotations ...lyneate.Annotation) *lyneate.Report {
	t.Helper()
	report, err := lyneate.NewCharSpanned(text, annotations)
	require.NoError(t, err)
	return withTheme(t, report, plain())
}

func withTheme(t *testing.T, report *lyneate.Report, th theme.Theme) *lyneate.Report {
	t.Helper()
	report, err := report.WithTheme(th)
	require.NoError(t, err)
	return report
}

func TestRenderVariable(t *testing.T) {
	t.Parallel()

	report, err := lyneate.NewByteSpanned("let x = 1;\nlet y = 2;\n", []lyneate.Annotation{{
		Span:    lyneate.Span{Start: 4, End: 5},
		Message: "variable",
		Color:   lyneate.Color{R: 255},
	}})
	require.NoError(t, err)
	report = withTheme(t, report, plain())

	want := "   1 let x = 1;\n" +
		"         ┬\n" +
		"         ╰── variable\n"
	assert.Equal(t, want, lyneate.Renderer{}.RenderString(report))

	// Rendering does not consume the report.
	assert.Equal(t, want, lyneate.Renderer{}.RenderString(report))
}

func TestRenderNothing(t *testing.T) {
	t.Parallel()

	report := mustReport(t, "let x = 1;\n")
	assert.Empty(t, lyneate.Renderer{}.RenderString(report))

	report = mustReport(t, "")
	assert.Empty(t, lyneate.Renderer{}.RenderString(report))
}

func TestRenderLineNumberWidth(t *testing.T) {
	t.Parallel()

	text := strings.Repeat("x\n", 9) + "y\n"
	report := mustReport(t, text,
		lyneate.Annotation{Span: lyneate.Span{Start: 2, End: 3}, Message: "two"},
		lyneate.Annotation{Span: lyneate.Span{Start: 18, End: 19}, Message: "ten"},
	)

	assert.Equal(t, "    2 x\n"+
		"      ┬\n"+
		"      ╰── two\n"+
		"   10 y\n"+
		"      ┬\n"+
		"      ╰── ten\n",
		lyneate.Renderer{}.RenderString(report))

	assert.Equal(t, "   x\n"+
		"   ┬\n"+
		"   ╰── two\n"+
		"   y\n"+
		"   ┬\n"+
		"   ╰── ten\n",
		lyneate.Renderer{HideLineNumbers: true}.RenderString(report))
}

func TestRenderEffects(t *testing.T) {
	t.Parallel()

	th := theme.Default()
	th.Effects = theme.Effects{
		LineNumbers:   theme.FormatterFunc(func(s string) string { return "<" + s + ">" }),
		Unhighlighted: theme.FormatterFunc(strings.ToUpper),
	}
	report := withTheme(t, mustReport(t, "let x = 1;\n",
		lyneate.Annotation{Span: lyneate.Span{Start: 4, End: 5}, Message: "variable", Color: lyneate.Color{G: 255}},
	), th)

	// Annotated cells are exempt from the unhighlighted effect, and messages
	// are printed verbatim.
	assert.Equal(t, "   <1> LET x = 1;\n"+
		"         ┬\n"+
		"         ╰── variable\n",
		lyneate.Renderer{}.RenderString(report))
}

func TestRenderColorize(t *testing.T) {
	t.Parallel()

	report := mustReport(t, "let x = 1;\n",
		lyneate.Annotation{Span: lyneate.Span{Start: 4, End: 5}, Message: "variable", Color: lyneate.Color{R: 255, G: 64, B: 112}},
	)

	colored := lyneate.Renderer{Colorize: true}.RenderString(report)
	assert.Contains(t, colored, "\x1b[38;2;255;64;112m")

	ansi := regexp.MustCompile("\x1b\\[[0-9;]*m")
	assert.Equal(t, lyneate.Renderer{}.RenderString(report), ansi.ReplaceAllString(colored, ""))
}

func TestRenderTheme(t *testing.T) {
	t.Parallel()

	th := plain()
	th.Chars = theme.ASCII()
	th.Sizing.PreLineNumberPadding = 0
	th.Sizing.UnderlineArmLength = 4

	report := withTheme(t, mustReport(t, "f(a, b)\n",
		lyneate.Annotation{Span: lyneate.Span{Start: 5, End: 6}, Message: "b"},
		lyneate.Annotation{Span: lyneate.Span{Start: 2, End: 3}, Message: "a"},
	), th)

	assert.Equal(t, "1 f(a, b)\n"+
		"    -  -\n"+
		"    |  \\---- b\n"+
		"    \\---- a\n",
		lyneate.Renderer{}.RenderString(report))
}

type errWriter struct{ n int }

var errShortWrite = errors.New("short write")

func (w *errWriter) Write(p []byte) (int, error) {
	if w.n == 0 {
		return 0, errShortWrite
	}
	w.n--
	return len(p), nil
}

func TestRenderWriteError(t *testing.T) {
	t.Parallel()

	report := mustReport(t, "let x = 1;\n",
		lyneate.Annotation{Span: lyneate.Span{Start: 4, End: 5}, Message: "variable"},
	)
	err := lyneate.Renderer{}.Render(report, &errWriter{n: 1})
	assert.ErrorIs(t, err, errShortWrite)
}
