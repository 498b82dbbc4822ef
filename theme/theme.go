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

// Package theme configures how annotated source is drawn: which glyphs make
// up underlines and brackets, how much room they take, and how the parts of
// the output that aren't annotation-colored are styled.
//
// A Theme is plain data. The zero Theme is not useful; start from [Default]
// and override what you need, or load a theme file with [LoadFile].
package theme

import (
	"fmt"

	"github.com/fatih/color"
)

// Theme is a complete rendering configuration.
type Theme struct {
	Chars   Chars
	Sizing  Sizing
	Effects Effects
}

// Default returns the default theme: box-drawing glyphs, default sizing, and
// dimmed line numbers.
func Default() Theme {
	return Theme{
		Chars:   BoxDrawing(),
		Sizing:  DefaultSizing(),
		Effects: DefaultEffects(),
	}
}

// Chars is the set of glyphs used to draw annotations.
type Chars struct {
	// Drawn under linear annotations.
	Underline         rune
	UnderlineJunction rune // Where the connector leaves the underline.
	UnderlineVertical rune // The connector itself.

	// Drawn in the gutter for multiline annotations.
	SideVertical       rune // Next to source lines.
	SideVerticalDotted rune // On the rows between source lines.
	SidePointer        rune // The arrowhead pointing at the text.
	SidePointerLine    rune // The shaft of the arrow.
	SideJunction       rune // Where a bracket's last line branches off.

	BottomCurve rune // Where a connector turns towards its message.
	TopCurve    rune // Where a bracket begins.

	MessagePointer rune // The last glyph before a message.
	MessageLine    rune // The arm leading to a message.
}

// BoxDrawing returns glyphs from the Unicode box-drawing block.
func BoxDrawing() Chars {
	return Chars{
		Underline:          '─',
		UnderlineJunction:  '┬',
		UnderlineVertical:  '│',
		SideVertical:       '│',
		SideVerticalDotted: '╵',
		SidePointer:        '▶',
		SidePointerLine:    '─',
		SideJunction:       '├',
		BottomCurve:        '╰',
		TopCurve:           '╭',
		MessagePointer:     '─',
		MessageLine:        '─',
	}
}

// ASCII returns glyphs that only use printable ASCII.
func ASCII() Chars {
	return Chars{
		Underline:          '-',
		UnderlineJunction:  '-',
		UnderlineVertical:  '|',
		SideVertical:       '|',
		SideVerticalDotted: ':',
		SidePointer:        '>',
		SidePointerLine:    '-',
		SideJunction:       '|',
		BottomCurve:        '\\',
		TopCurve:           '/',
		MessagePointer:     '-',
		MessageLine:        '-',
	}
}

// Sizing controls spacing and arm lengths. All values are non-negative; a
// zero arm length omits the arm entirely.
type Sizing struct {
	// Spaces printed before each line number.
	PreLineNumberPadding int

	// Extra rows between an underline's messages.
	UnderlineSpacing int
	// Length of the arm between an underline's connector and its message.
	UnderlineArmLength int

	// Length of the arm between a bracket and its message.
	SideArmLength int
	// Length of the pointer from a bracket to the text, arrowhead included.
	SidePointerLength int
}

// DefaultSizing returns the default sizing.
func DefaultSizing() Sizing {
	return Sizing{
		PreLineNumberPadding: 3,
		UnderlineSpacing:     0,
		UnderlineArmLength:   2,
		SideArmLength:        2,
		SidePointerLength:    2,
	}
}

// Validate returns a [*ConfigError] for the first negative size, if any.
func (s Sizing) Validate() error {
	sizes := []struct {
		name  string
		value int
	}{
		{"pre_line_number_padding", s.PreLineNumberPadding},
		{"underline_spacing", s.UnderlineSpacing},
		{"underline_arm_length", s.UnderlineArmLength},
		{"side_arm_length", s.SideArmLength},
		{"side_pointer_length", s.SidePointerLength},
	}
	for _, size := range sizes {
		if size.value < 0 {
			return &ConfigError{
				Field: "sizing." + size.name,
				Err:   fmt.Errorf("must not be negative, got %d", size.value),
			}
		}
	}
	return nil
}

// Formatter styles a piece of text for display, e.g. by wrapping it in ANSI
// escapes.
type Formatter interface {
	Format(text string) string
}

// FormatterFunc adapts an ordinary function into a [Formatter].
type FormatterFunc func(string) string

// Format implements [Formatter].
func (f FormatterFunc) Format(text string) string {
	return f(text)
}

// Plain is a [Formatter] that returns its input unchanged.
var Plain Formatter = FormatterFunc(func(s string) string { return s })

// Effects styles the parts of the output that annotations do not color.
//
// A nil Formatter behaves like [Plain].
type Effects struct {
	LineNumbers   Formatter
	Unhighlighted Formatter
}

var dim = color.New(color.Faint)

// DefaultEffects dims line numbers and leaves everything else alone.
//
// Dimming goes through package color, which turns itself off when stdout is
// not a terminal or NO_COLOR is set.
func DefaultEffects() Effects {
	return Effects{
		LineNumbers:   FormatterFunc(func(s string) string { return dim.Sprint(s) }),
		Unhighlighted: Plain,
	}
}

// NoEffects returns effects that leave all text alone.
func NoEffects() Effects {
	return Effects{LineNumbers: Plain, Unhighlighted: Plain}
}

// FormatLineNumber applies the LineNumbers formatter.
func (e Effects) FormatLineNumber(text string) string {
	return apply(e.LineNumbers, text)
}

// FormatUnhighlighted applies the Unhighlighted formatter.
func (e Effects) FormatUnhighlighted(text string) string {
	return apply(e.Unhighlighted, text)
}

func apply(f Formatter, text string) string {
	if f == nil {
		return text
	}
	return f.Format(text)
}
