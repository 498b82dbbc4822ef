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

// Gutter describes the left margin reserved for multiline brackets.
//
// Every group shares the same gutter, sized for the largest group. Smaller
// groups are aligned against the text, leaving the leftmost columns unused.
type Gutter struct {
	// The number of columns before the source text starts. Zero when there are
	// no multiline annotations.
	Width int

	// The number of columns in the pointer drawn from a bracket towards the
	// text, including the arrowhead.
	PointerLength int
}

// NewGutter sizes a gutter for groups with at most maxGroupSize members.
func NewGutter(maxGroupSize, pointerLength int) Gutter {
	g := Gutter{PointerLength: pointerLength}
	if maxGroupSize > 0 {
		g.Width = maxGroupSize*g.slot() + 1
	}
	return g
}

// Column returns the column for the bracket of the side-th member of a group
// of the given size.
//
// Columns are counted back from the right edge of the gutter by
// groupSize-side slots, so the layout depends on the group's size: the last
// member of every group is rightmost, and earlier members sit further left,
// enclosing later ones. The last member's pointer ends with one column to
// spare before the text.
func (g Gutter) Column(groupSize, side int) int {
	return g.Width - (groupSize-side)*g.slot() - 1
}

// ArrowColumn returns the column the arrowhead of every pointer is drawn at.
func (g Gutter) ArrowColumn() int {
	return g.Width - 2
}

// slot is the number of columns each nesting level occupies.
func (g Gutter) slot() int {
	return g.PointerLength + 1
}
