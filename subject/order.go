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

package subject

import (
	"cmp"
	"math"
	"reflect"
	"strings"
	"time"

	"go.chromium.org/certainty/compare"
	"go.chromium.org/certainty/value"
)

// order compares `a` with `b`. It returns false if the two values are not
// ordered with respect to each other.
func order(a, b any) (int, bool) {
	ka, ra := value.Inspect(reflect.ValueOf(a))
	kb, rb := value.Inspect(reflect.ValueOf(b))
	if ka != kb {
		return 0, false
	}
	switch ka {
	case value.Number:
		return numbers(ra, rb)
	case value.String:
		return strings.Compare(ra.String(), rb.String()), true
	case value.Date:
		return ra.Interface().(time.Time).Compare(rb.Interface().(time.Time)), true
	}
	return 0, false
}

func numbers(a, b reflect.Value) (int, bool) {
	switch {
	case isInt(a) && isInt(b):
		return cmp.Compare(a.Int(), b.Int()), true
	case isUint(a) && isUint(b):
		return cmp.Compare(a.Uint(), b.Uint()), true
	}
	x, okx := toFloat(a)
	y, oky := toFloat(b)
	if !okx || !oky || math.IsNaN(x) || math.IsNaN(y) {
		return 0, false
	}
	return cmp.Compare(x, y), true
}

func isInt(rv reflect.Value) bool {
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
	return false
}

func isUint(rv reflect.Value) bool {
	switch rv.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}

// toFloat converts real numbers. Complex numbers are not ordered.
func toFloat(rv reflect.Value) (float64, bool) {
	switch {
	case isInt(rv):
		return float64(rv.Int()), true
	case isUint(rv):
		return float64(rv.Uint()), true
	case rv.Kind() == reflect.Float32 || rv.Kind() == reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

// same is the membership test for elements of slices and sets: a shallow
// comparison, so scalars match by value and objects by identity.
func same(a, b any) bool {
	eq, err := compare.Compare(a, b, "", false, nil)
	return err == nil && eq
}

// indexOf returns the index of the first element of `list` at or after
// `from` which is the same as `el`, or -1.
func indexOf(list []any, el any, from int) int {
	for i := from; i < len(list); i++ {
		if same(el, list[i]) {
			return i
		}
	}
	return -1
}
