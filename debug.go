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
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bufbuild/lyneate/internal/board"
	"github.com/bufbuild/lyneate/internal/layout"
)

const (
	debugOff int = iota
	debugMinimal
	debugFull
)

// debugMode is the status of the LYNEATE_DEBUG environment variable at
// startup. This cannot be set in any way except by environment variable.
var debugMode = parseDebugMode(os.Getenv("LYNEATE_DEBUG"))

func parseDebugMode(value string) int {
	switch strings.ToLower(value) {
	case "", "0", "off", "false":
		return debugOff
	case "full":
		return debugFull
	default:
		return debugMinimal
	}
}

func debug(l *layout.Layout, b *board.Board) {
	dump(os.Stderr, debugMode, l, b)
}

// dump writes whatever the given debug mode asks for about a render to w.
func dump(w io.Writer, mode int, l *layout.Layout, b *board.Board) {
	if mode == debugOff {
		return
	}

	fmt.Fprintln(w, "lyneate: layout")
	l.Dump(w)
	if mode == debugFull {
		fmt.Fprintln(w, "lyneate: board")
		b.Dump(w)
	}
}
