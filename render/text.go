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
	"strings"

	"github.com/mgutz/ansi"
	"github.com/pkg/errors"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// Unified returns a line-based unified diff between two texts, with three
// lines of context. It is empty when the texts are equal.
func Unified(expected, actual string) (string, error) {
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(expected),
		B:        difflib.SplitLines(actual),
		FromFile: "expected",
		ToFile:   "actual",
		Context:  3,
	})
	return diff, errors.Wrap(err, "computing unified diff")
}

// Chars returns a character-level diff between two texts.
//
// Text only in `expected` is marked `[-like this-]` and text only in `actual`
// `{+like this+}`. With colorize, the markers are replaced by green and red
// ANSI colors respectively.
func Chars(expected, actual string, colorize bool) string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffCleanupSemantic(dmp.DiffMain(expected, actual, false))

	var sb strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			if colorize {
				sb.WriteString(ansi.Green + d.Text + ansi.Reset)
			} else {
				sb.WriteString("[-" + d.Text + "-]")
			}
		case diffmatchpatch.DiffInsert:
			if colorize {
				sb.WriteString(ansi.Red + d.Text + ansi.Reset)
			} else {
				sb.WriteString("{+" + d.Text + "+}")
			}
		default:
			sb.WriteString(d.Text)
		}
	}
	return sb.String()
}
