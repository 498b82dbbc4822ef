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

// Package lyneate renders source code annotated with labeled, colored
// highlights, the way a compiler prints a diagnostic.
//
// A [Report] pairs some text with a list of [Annotation]s. Annotations that
// start and end on the same line are drawn as underlines, with a connector
// leading down to their message:
//
//	   1 let x = 1;
//	         ┬
//	         ╰── variable
//
// Messages for annotations on the same line stack downwards in the order the
// annotations were given. A message hides any connector that would pass
// through it to its right, so annotations on one line should be listed from
// right to left.
//
// Annotations that span several lines are drawn as brackets in a gutter to
// the left of the text. Overlapping brackets are nested.
//
//	   1 ╭─▶ fn {
//	   2 │     x
//	     ╵     ┬
//	     ╵     ╰── unused
//	   3 ├─▶ }
//	     ╰── in this block
//
// Only the lines that some annotation starts or ends on are printed.
//
// Spans count characters (runes) by default; use [NewByteSpanned] for byte
// offsets. Every character is assumed to occupy a single terminal column.
//
// Rendering is done by a [Renderer]. Glyphs, spacing, and styling of the
// output are configured by a [theme.Theme].
//
// # Debugging
//
// Setting the LYNEATE_DEBUG environment variable makes every render dump its
// layout to stderr. Setting it to "full" also dumps the uncolored board.
package lyneate
