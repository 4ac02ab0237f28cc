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

package compare

import (
	"reflect"
	"strings"

	"go.chromium.org/certainty/format"
)

const (
	// excerptBefore and excerptAfter bound the window of a string record
	// around the first differing rune.
	excerptBefore = 16
	excerptAfter  = 40

	// minExcerptIndex is the divergence index under which strings are always
	// reported whole.
	minExcerptIndex = 16
)

// text is only reached for two different strings of the same type.
func (c *comparer) text(e, a, path string, exp, act reflect.Value) (bool, error) {
	if !c.collecting() {
		return false, nil
	}

	eLines, aLines := strings.Split(e, "\n"), strings.Split(a, "\n")
	if len(eLines) > 2 || len(aLines) > 2 {
		line := 0
		for line < len(eLines) && line < len(aLines) && eLines[line] == aLines[line] {
			line++
		}
		er, ar := []rune(lineAt(eLines, line)), []rune(lineAt(aLines, line))
		col := commonPrefix(er, ar)
		c.add(Record{
			Kind:      KindString,
			Path:      path,
			Expected:  lineExcerpt(eLines, line, er, col),
			Actual:    lineExcerpt(aLines, line, ar, col),
			Multiline: true,
			Line:      line,
			Column:    col,
		})
		return false, nil
	}

	er, ar := []rune(e), []rune(a)
	i := commonPrefix(er, ar)
	if i < minExcerptIndex || (len(er) < ShortStringLength && len(ar) < ShortStringLength) {
		return c.mismatch(path, exp, act)
	}
	c.add(Record{
		Kind:     KindString,
		Path:     path,
		Expected: excerpt(er, i),
		Actual:   excerpt(ar, i),
		Index:    i,
	})
	return false, nil
}

// lineAt treats lines past the end as empty.
func lineAt(lines []string, i int) string {
	if i < len(lines) {
		return lines[i]
	}
	return ""
}

// EndOfText stands in for the excerpt of a line past the end of a string.
const EndOfText = "<end of text>"

func lineExcerpt(lines []string, i int, r []rune, at int) string {
	if i >= len(lines) {
		return EndOfText
	}
	return excerpt(r, at)
}

func commonPrefix(a, b []rune) int {
	i := 0
	for i < len(a) && i < len(b) && a[i] == b[i] {
		i++
	}
	return i
}

// excerpt returns the quoted, escaped window of `r` around `at`, with
// ellipses marking the elided ends.
func excerpt(r []rune, at int) string {
	start := max(at-excerptBefore, 0)
	end := min(at+excerptAfter, len(r))
	if start > end {
		start = end
	}
	var sb strings.Builder
	sb.WriteByte('"')
	if start > 0 {
		sb.WriteString("...")
	}
	sb.WriteString(format.Escape(string(r[start:end])))
	if end < len(r) {
		sb.WriteString("...")
	}
	sb.WriteByte('"')
	return sb.String()
}
