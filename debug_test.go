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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bufbuild/lyneate/internal/board"
	"github.com/bufbuild/lyneate/internal/interval"
	"github.com/bufbuild/lyneate/internal/layout"
	"github.com/bufbuild/lyneate/internal/source"
	"github.com/bufbuild/lyneate/theme"
)

func TestParseDebugMode(t *testing.T) {
	t.Parallel()

	for value, want := range map[string]int{
		"":      debugOff,
		"0":     debugOff,
		"OFF":   debugOff,
		"false": debugOff,
		"1":     debugMinimal,
		"yes":   debugMinimal,
		"full":  debugFull,
		"Full":  debugFull,
	} {
		assert.Equal(t, want, parseDebugMode(value), "LYNEATE_DEBUG=%q", value)
	}
}

func TestDump(t *testing.T) {
	t.Parallel()

	sizing := theme.DefaultSizing()
	l := layout.Build(source.NewIndex("let x = 1;\n"), []layout.Annotation{
		{Span: interval.Span{Start: 4, End: 5}, Message: "variable"},
	}, sizing)
	b := board.Compose(l, theme.BoxDrawing(), sizing, nil)

	var buf strings.Builder
	dump(&buf, debugOff, l, b)
	assert.Empty(t, buf.String())

	dump(&buf, debugMinimal, l, b)
	minimal := buf.String()
	assert.True(t, strings.HasPrefix(minimal, "lyneate: layout\n"), minimal)
	assert.Contains(t, minimal, "anchor=4 depth=1")
	assert.NotContains(t, minimal, "lyneate: board")

	buf.Reset()
	dump(&buf, debugFull, l, b)
	assert.Equal(t, minimal+"lyneate: board\n"+
		"   1 | let x = 1;\n"+
		"     |     ┬\n"+
		"     |     ╰── variable\n", buf.String())
}
