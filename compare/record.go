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
	"fmt"
	"strconv"
)

// RecordKind selects which fields of a Record are meaningful.
type RecordKind int

// The record kinds.
const (
	// KindValue is a leaf mismatch. Expected and Actual are formatted values.
	KindValue RecordKind = iota
	// KindType is a type mismatch. Expected and Actual are type names.
	KindType
	// KindProperty is a record key present on only one side.
	KindProperty
	// KindElement is an array position, map entry or set member present on
	// only one side.
	KindElement
	// KindMore summarizes Count further property or element records which
	// were not emitted.
	KindMore
	// KindString is a divergence between two long or multi-line strings.
	// Expected and Actual are quoted excerpts around the divergence.
	KindString
)

func (k RecordKind) String() string {
	switch k {
	case KindValue:
		return "value"
	case KindType:
		return "type"
	case KindProperty:
		return "property"
	case KindElement:
		return "element"
	case KindMore:
		return "more"
	case KindString:
		return "string"
	}
	return "RecordKind(" + strconv.Itoa(int(k)) + ")"
}

// Record describes one discrepancy between an expected and an actual value.
//
// Records are plain values, created fresh for each comparison.
type Record struct {
	Kind RecordKind

	// Path locates the discrepancy, e.g. "a.b[2]". Empty at the root.
	Path string

	Expected string
	Actual   string

	// Missing is set on property and element records which carry only
	// Expected (present in expected, absent from actual). When false, such
	// records carry only Actual.
	Missing bool

	// Count is the number of records summarized by a KindMore record.
	Count int

	// For KindString: Multiline selects between {Line, Column} and Index.
	// All positions are 0-based and counted in runes.
	Multiline bool
	Index     int
	Line      int
	Column    int
}

// MissingProperty returns a property record for a key found only in the
// expected value.
func MissingProperty(path, expected string) Record {
	return Record{Kind: KindProperty, Path: path, Expected: expected, Missing: true}
}

// UnexpectedProperty returns a property record for a key found only in the
// actual value.
func UnexpectedProperty(path, actual string) Record {
	return Record{Kind: KindProperty, Path: path, Actual: actual}
}

// MissingElement returns an element record for an element found only in the
// expected value.
func MissingElement(path, expected string) Record {
	return Record{Kind: KindElement, Path: path, Expected: expected, Missing: true}
}

// UnexpectedElement returns an element record for an element found only in
// the actual value.
func UnexpectedElement(path, actual string) Record {
	return Record{Kind: KindElement, Path: path, Actual: actual}
}

// More returns a record standing for `n` records which were not emitted.
func More(path string, n int) Record {
	return Record{Kind: KindMore, Path: path, Count: n}
}

// Side returns the formatted value carried by a property or element record.
func (r Record) Side() string {
	if r.Missing {
		return r.Expected
	}
	return r.Actual
}

func (r Record) String() string {
	switch r.Kind {
	case KindMore:
		return fmt.Sprintf("more(%d)", r.Count)
	case KindProperty, KindElement:
		side := "unexpected"
		if r.Missing {
			side = "missing"
		}
		return fmt.Sprintf("%s %s %q: %s", side, r.Kind, r.Path, r.Side())
	case KindString:
		if r.Multiline {
			return fmt.Sprintf("string %q @%d:%d: %s != %s", r.Path, r.Line, r.Column, r.Expected, r.Actual)
		}
		return fmt.Sprintf("string %q @%d: %s != %s", r.Path, r.Index, r.Expected, r.Actual)
	}
	return fmt.Sprintf("%s %q: %s != %s", r.Kind, r.Path, r.Expected, r.Actual)
}

func joinProperty(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

func joinIndex(path string, i int) string {
	return path + "[" + strconv.Itoa(i) + "]"
}

func joinKey(path, key string) string {
	return path + "[" + key + "]"
}
