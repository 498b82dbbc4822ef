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

// Package interval provides half-open character ranges and the interval
// arithmetic used to lay out overlapping underlines.
package interval

import "fmt"

// Span is a half-open range [Start, End) of character offsets.
type Span struct {
	Start, End int
}

// Len returns the number of characters in this span.
func (s Span) Len() int {
	return s.End - s.Start
}

// IsEmpty returns whether this span contains no characters.
func (s Span) IsEmpty() bool {
	return s.End <= s.Start
}

// Contains returns whether point is inside this span.
func (s Span) Contains(point int) bool {
	return s.Start <= point && point < s.End
}

// Mid returns the midpoint of this span, rounding towards Start.
func (s Span) Mid() int {
	return s.Start + s.Len()/2
}

// Shift returns this span moved right by n characters. n may be negative.
func (s Span) Shift(n int) Span {
	return Span{s.Start + n, s.End + n}
}

// Distance returns how far point is from the nearer edge of this span. The
// far edge is End-1, the last character actually inside the span.
//
// Points inside the span are at distance zero.
func (s Span) Distance(point int) int {
	if s.Contains(point) {
		return 0
	}
	return min(abs(point-s.Start), abs(point-(s.End-1)))
}

// Overlay computes what remains visible of s once top is laid over it.
//
// The result contains zero, one, or two spans:
//
//   - If top does not intersect s (or is empty), s is returned unchanged.
//   - If top covers s completely, nothing is visible.
//   - If top covers one edge of s, the uncovered side is returned.
//   - If top lies strictly inside s, the parts to its left and right are
//     returned, in that order.
func (s Span) Overlay(top Span) []Span {
	if top.IsEmpty() || top.End <= s.Start || top.Start >= s.End {
		return []Span{s}
	}

	coversLeft := top.Start <= s.Start
	coversRight := top.End >= s.End
	switch {
	case coversLeft && coversRight:
		return nil
	case coversLeft:
		return []Span{{top.End, s.End}}
	case coversRight:
		return []Span{{s.Start, top.Start}}
	default:
		return []Span{{s.Start, top.Start}, {top.End, s.End}}
	}
}

// OverlayAll overlays each span in tops onto s in order, returning the
// fragments of s that remain visible afterwards.
func (s Span) OverlayAll(tops ...Span) []Span {
	visible := []Span{s}
	for _, top := range tops {
		var next []Span
		for _, frag := range visible {
			next = append(next, frag.Overlay(top)...)
		}
		visible = next
	}
	return visible
}

// String implements [fmt.Stringer].
func (s Span) String() string {
	return fmt.Sprintf("%d..%d", s.Start, s.End)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
