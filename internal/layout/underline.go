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

package layout

import "github.com/bufbuild/lyneate/internal/interval"

// Underline is a laid-out linear annotation.
type Underline struct {
	Linear

	// The parts of Span not covered by any other annotation on the same line.
	Visible []interval.Span

	// The line-local column the connector to the message hangs from.
	Anchor int

	// How many rows below the underline row the message is written on. The
	// connector runs straight down from the underline row to this row.
	Depth int
}

// layoutUnderlines lays out the linear annotations of a single line, in the
// order given, and reserves the rows they need in state.
//
// The first annotation on a line needs one more row than the rest: the row
// carrying the underlines themselves.
func layoutUnderlines(linear []Linear, state *LineState, spacing int) {
	for i, l := range linear {
		ul := Underline{Linear: l}

		others := make([]interval.Span, 0, len(linear)-1)
		for j, other := range linear {
			if j != i {
				others = append(others, other.Span)
			}
		}
		ul.Visible = l.Span.OverlayAll(others...)
		ul.Anchor = anchor(l.Span, ul.Visible)

		if i == 0 {
			state.Spacing += 2 + spacing
		} else {
			state.Spacing += 1 + spacing
		}
		ul.Depth = state.Spacing - 1

		state.Underlines = append(state.Underlines, ul)
	}
}

// anchor picks the column to hang a connector from for span.
//
// This is the midpoint of span, unless that midpoint is hidden under some other
// annotation, in which case it is the midpoint of the visible fragment nearest
// to it. If nothing is visible, the midpoint is used anyway.
func anchor(span interval.Span, visible []interval.Span) int {
	mid := span.Mid()
	if len(visible) == 0 {
		return mid
	}

	best := -1
	for i, frag := range visible {
		if frag.Contains(mid) {
			return mid
		}
		if best == -1 || frag.Distance(mid) < visible[best].Distance(mid) {
			best = i
		}
	}
	return visible[best].Mid()
}
