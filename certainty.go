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

// Package certainty compares arbitrary Go values and describes how they
// differ.
//
// Compare decides equality, Diff renders the differences as sentences, and
// Format prints a value compactly. Fluent assertions built on them live in
// the subject, ensure and expect packages.
package certainty

import (
	"go.chromium.org/certainty/compare"
	"go.chromium.org/certainty/format"
	"go.chromium.org/certainty/render"
)

// Compare reports whether `expected` and `actual` are equal.
//
// A shallow comparison (deep == false) treats composite values as equal only
// when they are the same reference. The error is non-nil only for values
// which cannot be compared at all, such as funcs.
func Compare(expected, actual any, path string, deep bool) (bool, error) {
	return compare.Compare(expected, actual, path, deep, nil)
}

// Diff describes the differences between `expected` and `actual`, one
// message per line. It is empty iff the values are equal. At most
// `maxShown` differences are described when it is positive.
func Diff(expected, actual any, path string, deep bool, maxShown int) ([]string, error) {
	return render.Diff(expected, actual, path, deep, maxShown)
}

// Format returns a compact one-line rendition of `v` of about `clip`
// characters. A clip of zero means no limit.
func Format(v any, clip int) string {
	return format.Clip(v, clip)
}
