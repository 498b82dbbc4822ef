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

// Group is a set of multiline annotations whose line ranges overlap, and
// which therefore share the gutter.
type Group struct {
	// The inclusive range of lines covered by the members of this group.
	FirstLine, LastLine int

	// Members in the order they joined the group. A member's index in this
	// slice is its side index: lower indices are drawn further from the text.
	Members []Multiline
}

// Overlaps returns whether the inclusive line range [start, end] intersects
// this group.
func (g *Group) Overlaps(start, end int) bool {
	return g.FirstLine <= end && start <= g.LastLine
}

// Grouped is the result of grouping the multiline annotations of a
// [Classified].
type Grouped struct {
	Classified
	Groups []Group
}

// GroupMultilines gathers overlapping multiline annotations into groups.
//
// This is a greedy, single pass: each annotation joins the first existing
// group (in creation order) that it overlaps, growing that group's range, or
// else starts a new group. An annotation joins at most one group, so one that
// bridges two existing groups does not merge them; the two groups stay
// distinct even though they now overlap.
func GroupMultilines(c Classified) Grouped {
	out := Grouped{Classified: c}

outer:
	for _, m := range c.Multiline {
		for i := range out.Groups {
			g := &out.Groups[i]
			if !g.Overlaps(m.StartLine, m.EndLine) {
				continue
			}

			g.FirstLine = min(g.FirstLine, m.StartLine)
			g.LastLine = max(g.LastLine, m.EndLine)
			g.Members = append(g.Members, m)
			continue outer
		}

		out.Groups = append(out.Groups, Group{
			FirstLine: m.StartLine,
			LastLine:  m.EndLine,
			Members:   []Multiline{m},
		})
	}
	return out
}

// MaxGroupSize returns the number of members in the largest group.
func (g Grouped) MaxGroupSize() int {
	var n int
	for _, group := range g.Groups {
		n = max(n, len(group.Members))
	}
	return n
}
