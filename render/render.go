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

// Package render turns comparison records into human-readable messages.
//
// A single record renders as one sentence. Several records render as a header
// line followed by one indented entry per record, optionally capped.
package render

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"go.chromium.org/certainty/compare"
)

// shortValue is the formatted length, in runes, up to which values are inlined in
// a sentence rather than set on lines of their own.
const shortValue = 16

// Diff compares `expected` with `actual` and renders the differences. The
// result is empty iff the values are equal.
func Diff(expected, actual any, path string, deep bool, maxShown int) ([]string, error) {
	records, err := compare.Records(expected, actual, path, deep)
	if err != nil {
		return nil, err
	}
	return Render(records, path, maxShown), nil
}

// Render renders `records` into messages.
//
// `path` names the compared value in the header used for several records.
// At most `maxShown` records are rendered (all of them when maxShown <= 0),
// followed by a line counting the hidden ones.
func Render(records []compare.Record, path string, maxShown int) []string {
	switch len(records) {
	case 0:
		return nil
	case 1:
		return []string{single(records[0])}
	}

	ret := make([]string, 0, len(records)+2)
	ret = append(ret, fmt.Sprintf("Expected %s does not equal actual value:", valueOf(path)))

	shown := records
	if maxShown > 0 && maxShown < len(records) {
		shown = records[:maxShown]
	}
	for _, r := range shown {
		ret = append(ret, indent(item(r), "  "))
	}
	if hidden := len(records) - len(shown); hidden > 0 {
		ret = append(ret, fmt.Sprintf("...%d additional differences not shown.", hidden))
	}
	return ret
}

// valueOf returns "value of <path>", or "value" at the root.
func valueOf(path string) string {
	if path == "" {
		return "value"
	}
	return "value of " + path
}

func typeOf(path string) string {
	if path == "" {
		return "type"
	}
	return "type of " + path
}

func isShort(s ...string) bool {
	for _, v := range s {
		if utf8.RuneCountInString(v) > shortValue {
			return false
		}
	}
	return true
}

func block(header, expected, actual string) string {
	return header + "\n  expected: " + expected + "\n    actual: " + actual
}

func stringHeader(subject string, r compare.Record) string {
	if r.Multiline {
		return fmt.Sprintf("Expected %s differs from actual value starting at line %d, column %d:",
			subject, r.Line+1, r.Column+1)
	}
	return fmt.Sprintf("Expected %s differs from actual value starting at character %d:", subject, r.Index)
}

func withValue(sentence, v string) string {
	if isShort(v) {
		return sentence + " with value " + v + "."
	}
	return sentence + " with value:\n  " + v
}

func more(r compare.Record) string {
	return fmt.Sprintf("(...and %d more.)", r.Count)
}

// single renders a record standing on its own.
func single(r compare.Record) string {
	switch r.Kind {
	case compare.KindValue:
		switch {
		case !isShort(r.Expected, r.Actual):
			return block(fmt.Sprintf("Expected %s differs from actual value:", valueOf(r.Path)), r.Expected, r.Actual)
		case r.Path != "":
			return fmt.Sprintf("Expected %s to be %s, actual value was %s.", r.Path, r.Expected, r.Actual)
		}
		return fmt.Sprintf("Expected %s to be %s.", r.Actual, r.Expected)

	case compare.KindType:
		return fmt.Sprintf("Expected %s to be '%s', actual type was '%s'.", typeOf(r.Path), r.Expected, r.Actual)

	case compare.KindString:
		return block(stringHeader(valueOf(r.Path), r), r.Expected, r.Actual)

	case compare.KindProperty, compare.KindElement:
		sentence := "Value has unexpected " + r.Kind.String()
		if r.Missing {
			sentence = "Value missing expected " + r.Kind.String()
		}
		if r.Path != "" {
			sentence += " " + r.Path
		}
		return withValue(sentence, r.Side())

	case compare.KindMore:
		return more(r)
	}
	return r.String()
}

// item renders a record as an entry of a list, prefixed by its path.
func item(r compare.Record) string {
	var body string
	switch r.Kind {
	case compare.KindValue:
		if isShort(r.Expected, r.Actual) {
			body = fmt.Sprintf("Expected value to be %s, actual value was %s.", r.Expected, r.Actual)
		} else {
			body = block("Expected value differs from actual value:", r.Expected, r.Actual)
		}

	case compare.KindType:
		body = fmt.Sprintf("Expected type to be '%s', actual type was '%s'.", r.Expected, r.Actual)

	case compare.KindString:
		body = block(stringHeader("value", r), r.Expected, r.Actual)

	case compare.KindProperty, compare.KindElement:
		if r.Missing {
			body = withValue("Missing expected "+r.Kind.String(), r.Expected)
		} else {
			body = withValue("Unexpected "+r.Kind.String(), r.Actual)
		}

	case compare.KindMore:
		return more(r)

	default:
		return r.String()
	}

	if r.Path == "" {
		return body
	}
	return r.Path + ": " + body
}

// indent prefixes every line of `s` with `prefix`. Continuation lines
// already carry their own indentation.
func indent(s, prefix string) string {
	return prefix + strings.ReplaceAll(s, "\n", "\n"+prefix)
}
