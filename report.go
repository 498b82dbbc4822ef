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
	"slices"

	"github.com/fatih/color"

	"github.com/bufbuild/lyneate/internal/board"
	"github.com/bufbuild/lyneate/internal/source"
	"github.com/bufbuild/lyneate/theme"
)

// Span is a half-open range [Start, End) of offsets into some text.
type Span struct {
	Start, End int
}

// Color is a 24-bit RGB color.
type Color = board.Color

// Annotation is a labeled, colored span of text.
type Annotation struct {
	Span    Span
	Message string
	Color   Color
}

// Report is some text together with the annotations to draw over it.
//
// A Report is immutable once constructed, and may be rendered any number of
// times.
type Report struct {
	index       *source.Index
	annotations []Annotation // Spans are always in characters.
	theme       theme.Theme
}

// NewCharSpanned creates a new report whose annotation spans are character
// (rune) offsets into text.
//
// Returns a [*SpanError] if any span is inverted or out of bounds.
func NewCharSpanned(text string, annotations []Annotation) (*Report, error) {
	r := &Report{
		index:       source.NewIndex(text),
		annotations: slices.Clone(annotations),
		theme:       theme.Default(),
	}
	for i, a := range r.annotations {
		if err := checkSpan(i, a.Span, r.index.Len()); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// NewByteSpanned creates a new report whose annotation spans are byte offsets
// into text. The spans are converted into character offsets up front.
//
// Returns a [*SpanError] if any span is inverted, out of bounds, or does not
// fall on UTF-8 character boundaries.
func NewByteSpanned(text string, annotations []Annotation) (*Report, error) {
	chars := slices.Clone(annotations)
	for i, a := range annotations {
		if err := checkSpan(i, a.Span, len(text)); err != nil {
			return nil, err
		}

		start, end, err := source.ByteSpanToChars(text, a.Span.Start, a.Span.End)
		if err != nil {
			return nil, &SpanError{
				Index: i,
				Span:  a.Span,
				Len:   len(text),
				Err:   err,
			}
		}
		chars[i].Span = Span{Start: start, End: end}
	}
	return NewCharSpanned(text, chars)
}

// WithTheme returns a copy of this report that is rendered with the given
// theme.
//
// Returns a [*theme.ConfigError] if the theme's sizing is invalid.
func (r *Report) WithTheme(theme theme.Theme) (*Report, error) {
	if err := theme.Sizing.Validate(); err != nil {
		return nil, err
	}
	r2 := *r
	r2.theme = theme
	return &r2, nil
}

// Text returns the text this report annotates.
func (r *Report) Text() string {
	return r.index.Text()
}

// Annotations returns this report's annotations, with spans in characters.
func (r *Report) Annotations() []Annotation {
	return slices.Clone(r.annotations)
}

// Theme returns the theme this report is rendered with.
func (r *Report) Theme() theme.Theme {
	return r.theme
}

// Display renders this report to stdout, with colors if stdout is a terminal.
func (r *Report) Display() error {
	return Renderer{Colorize: !color.NoColor}.Render(r, color.Output)
}
