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

import (
	"fmt"

	"github.com/bufbuild/lyneate/internal/interval"
	"github.com/bufbuild/lyneate/internal/source"
)

// Annotation is a labeled character range, as handed to the layout engine.
//
// The caller is responsible for ensuring that 0 <= Start <= End <= the length
// of the indexed text; Classify panics otherwise.
type Annotation struct {
	// An identifier for this annotation, carried through every stage so that
	// painting can look up per-annotation data such as colors. Usually its
	// index in the caller's list.
	ID int

	Span    interval.Span
	Message string
}

// Linear is an annotation that starts and ends on the same line.
type Linear struct {
	ID   int
	Line int
	// The span of this annotation, relative to the start of Line.
	Span    interval.Span
	Message string
}

// Multiline is an annotation whose start and end are on different lines.
type Multiline struct {
	ID                 int
	StartLine, EndLine int
	// Offsets from the start of StartLine to the start of the span, and from
	// the start of EndLine to the end of the span.
	PreLen, EndLen int
	Message        string
}

// Classified is the result of splitting annotations into linear and
// multiline ones.
type Classified struct {
	Index *source.Index
	// Both lists are in the order the annotations were given in.
	Linear    []Linear
	Multiline []Multiline
}

// Classify sorts annotations into linear and multiline annotations.
//
// An annotation is linear exactly when its start and end offsets locate to the
// same line. Note that an end offset just past a newline locates to the next
// line.
func Classify(idx *source.Index, annotations []Annotation) Classified {
	out := Classified{Index: idx}
	for _, a := range annotations {
		if a.Span.Start < 0 || a.Span.End < a.Span.Start || a.Span.End > idx.Len() {
			panic(fmt.Sprintf(
				"lyneate/layout: annotation %d has invalid span %v for text of length %d",
				a.ID, a.Span, idx.Len(),
			))
		}

		startLine := idx.Locate(a.Span.Start)
		endLine := idx.Locate(a.Span.End)

		if startLine == endLine {
			out.Linear = append(out.Linear, Linear{
				ID:      a.ID,
				Line:    startLine,
				Span:    a.Span.Shift(-idx.Line(startLine).Start),
				Message: a.Message,
			})
			continue
		}

		out.Multiline = append(out.Multiline, Multiline{
			ID:        a.ID,
			StartLine: startLine,
			EndLine:   endLine,
			PreLen:    a.Span.Start - idx.Line(startLine).Start,
			EndLen:    a.Span.End - idx.Line(endLine).Start,
			Message:   a.Message,
		})
	}
	return out
}
