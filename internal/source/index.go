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

// Package source indexes source text into lines addressed by character
// offsets.
//
// Every offset in this package counts runes, not bytes. A rune is assumed to
// occupy exactly one terminal column; wide and combining characters are not
// accounted for.
package source

import (
	"fmt"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Line is a single line of an indexed source text.
type Line struct {
	// The character offsets of this line within the whole text. End is
	// exclusive, and includes the trailing newline, if there is one.
	Start, End int

	// The text of this line, including its trailing newline.
	Text string
}

// Len returns the length of this line in characters, including its
// trailing newline.
func (l Line) Len() int {
	return l.End - l.Start
}

// Trimmed returns the text of this line with trailing whitespace (including
// the newline) removed.
func (l Line) Trimmed() string {
	return strings.TrimRightFunc(l.Text, unicode.IsSpace)
}

// Index is a line index over some source text.
//
// A zero Index behaves like the index of an empty text.
type Index struct {
	text  string
	size  int // Length of text, in runes.
	lines []Line
	// starts[i] == lines[i].Start. Kept separately so that Locate can
	// binary search it directly.
	starts []int
}

// NewIndex builds a line index for text. This is O(n) in the size of text.
//
// The text is split after each '\n'. Empty text produces a single empty line,
// so that offset 0 can always be located.
func NewIndex(text string) *Index {
	idx := &Index{text: text}

	var next int
	rest := text
	for rest != "" {
		line := rest
		if nl := strings.IndexByte(rest, '\n'); nl != -1 {
			line = rest[:nl+1]
		}
		rest = rest[len(line):]

		n := utf8.RuneCountInString(line)
		idx.lines = append(idx.lines, Line{Start: next, End: next + n, Text: line})
		idx.starts = append(idx.starts, next)
		next += n
	}
	idx.size = next

	if len(idx.lines) == 0 {
		idx.lines = []Line{{}}
		idx.starts = []int{0}
	}
	return idx
}

// Text returns the text this index was built from.
func (i *Index) Text() string {
	if i == nil {
		return ""
	}
	return i.text
}

// Len returns the length of the indexed text in characters.
func (i *Index) Len() int {
	if i == nil {
		return 0
	}
	return i.size
}

// Lines returns the number of lines in the index. This is always at least one.
func (i *Index) Lines() int {
	if i == nil {
		return 1
	}
	return len(i.lines)
}

// Line returns the nth line, zero-indexed.
func (i *Index) Line(n int) Line {
	if i == nil {
		return Line{}
	}
	return i.lines[n]
}

// Locate returns the index of the line containing the given character
// offset.
//
// An offset equal to the length of the text (or past it) is placed on the last
// line. This operation is O(log n).
func (i *Index) Locate(offset int) int {
	if i == nil {
		return 0
	}

	// Find the greatest line such that starts[line] <= offset.
	line, exact := slices.BinarySearch(i.starts, offset)
	if !exact {
		line--
	}
	return max(0, min(line, len(i.lines)-1))
}

// OffsetError is returned when a byte offset cannot be converted into a
// character offset.
type OffsetError struct {
	Offset int // The offending byte offset.
	Len    int // The length of the text, in bytes.
}

// Error implements [error].
func (e *OffsetError) Error() string {
	if e.Offset < 0 || e.Offset > e.Len {
		return fmt.Sprintf("byte offset %d is out of bounds for text of %d bytes", e.Offset, e.Len)
	}
	return fmt.Sprintf("byte offset %d does not fall on a UTF-8 character boundary", e.Offset)
}

// ByteSpanToChars converts a byte range within text into a character range.
//
// Both offsets must lie within [0, len(text)] and fall on rune boundaries.
// The range itself is not required to be well-ordered; start and end are
// converted independently.
func ByteSpanToChars(text string, start, end int) (charStart, charEnd int, err error) {
	charStart, err = byteToChar(text, start)
	if err != nil {
		return 0, 0, err
	}
	charEnd, err = byteToChar(text, end)
	if err != nil {
		return 0, 0, err
	}
	return charStart, charEnd, nil
}

func byteToChar(text string, offset int) (int, error) {
	if offset < 0 || offset > len(text) {
		return 0, &OffsetError{Offset: offset, Len: len(text)}
	}
	if offset < len(text) && !utf8.RuneStart(text[offset]) {
		return 0, &OffsetError{Offset: offset, Len: len(text)}
	}
	return utf8.RuneCountInString(text[:offset]), nil
}
