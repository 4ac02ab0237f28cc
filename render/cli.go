// Copyright 2026 The LUCI Authors.
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

package render

import (
	"fmt"
	"strings"

	"github.com/mgutz/ansi"
)

// CLI prepares rendered messages for display on a terminal.
type CLI struct {
	// If true, will add ANSI color codes: expected values and removed diff
	// lines in green, actual values and added diff lines in red.
	Colorize bool
}

// Message joins rendered messages into a single block of text.
func (r CLI) Message(msgs []string) string {
	return r.paint(strings.Join(msgs, "\n"))
}

// Diff renders a unified diff (as produced by Unified).
func (r CLI) Diff(diff string) string {
	return r.paint(strings.TrimSuffix(diff, "\n"))
}

func (r CLI) paint(text string) string {
	if !r.Colorize {
		return text
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if code := colorOf(line); code != "" {
			lines[i] = fmt.Sprintf("%s%s%s", code, line, ansi.Reset)
		}
	}
	return strings.Join(lines, "\n")
}

func colorOf(line string) string {
	trimmed := strings.TrimLeft(line, " ")
	switch {
	case strings.HasPrefix(line, "--- "):
		return ansi.LightGreen
	case strings.HasPrefix(line, "+++ "):
		return ansi.LightRed
	case strings.HasPrefix(line, "-"), strings.HasPrefix(trimmed, "expected: "):
		return ansi.Green
	case strings.HasPrefix(line, "+"), strings.HasPrefix(trimmed, "actual: "):
		return ansi.Red
	case strings.HasPrefix(line, "@@ "):
		return ansi.Red
	}
	return ""
}
