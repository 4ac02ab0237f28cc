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

package value

import (
	"fmt"
	"reflect"
	"sort"
)

// Field is one named member of a Record.
type Field struct {
	Name  string
	Value reflect.Value
}

// Pair is one entry of a Map.
type Pair struct {
	Key   reflect.Value
	Value reflect.Value
}

// Fields returns the members of a Record value (as normalized by Inspect),
// sorted by name.
//
// For structs these are the exported, visible fields, including fields
// promoted from embedded structs. Fields which cannot be reached (through
// a nil embedded pointer or an unexported embedded struct) are skipped.
func Fields(rv reflect.Value) []Field {
	var ret []Field
	switch rv.Kind() {
	case reflect.Map:
		ret = make([]Field, 0, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			ret = append(ret, Field{iter.Key().String(), iter.Value()})
		}

	case reflect.Struct:
		for _, f := range reflect.VisibleFields(rv.Type()) {
			if !f.IsExported() || isEmbeddedStruct(f) || throughUnexported(rv.Type(), f.Index) {
				continue
			}
			fv, err := rv.FieldByIndexErr(f.Index)
			if err != nil || !fv.CanInterface() {
				continue
			}
			ret = append(ret, Field{f.Name, fv})
		}
	}
	sort.Slice(ret, func(i, j int) bool { return ret[i].Name < ret[j].Name })
	return ret
}

func isEmbeddedStruct(f reflect.StructField) bool {
	if !f.Anonymous {
		return false
	}
	t := f.Type
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Kind() == reflect.Struct
}

// throughUnexported is true if the field at `index` is promoted through an
// unexported embedded struct.
func throughUnexported(t reflect.Type, index []int) bool {
	for _, i := range index[:len(index)-1] {
		f := t.Field(i)
		if !f.IsExported() {
			return true
		}
		t = f.Type
		if t.Kind() == reflect.Pointer {
			t = t.Elem()
		}
	}
	return false
}

// Pairs returns the entries of a Map value (as normalized by Inspect).
//
// OrderedMap entries are returned in insertion order. Native Go maps have no
// order, so their entries are sorted by key.
func Pairs(rv reflect.Value) []Pair {
	if rv.Type() == mapType {
		entries := rv.Interface().(*OrderedMap).entries
		ret := make([]Pair, len(entries))
		for i, e := range entries {
			ret[i] = Pair{reflect.ValueOf(e.Key), reflect.ValueOf(e.Value)}
		}
		return ret
	}

	ret := make([]Pair, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		ret = append(ret, Pair{iter.Key(), iter.Value()})
	}
	sort.Slice(ret, func(i, j int) bool { return less(ret[i].Key, ret[j].Key) })
	return ret
}

// Members returns the members of a Set value (as normalized by Inspect).
//
// OrderedSet members are returned in insertion order, native `map[T]struct{}`
// members are sorted.
func Members(rv reflect.Value) []reflect.Value {
	if rv.Type() == setType {
		vals := rv.Interface().(*OrderedSet).Values()
		ret := make([]reflect.Value, len(vals))
		for i, v := range vals {
			ret[i] = reflect.ValueOf(v)
		}
		return ret
	}

	ret := rv.MapKeys()
	sort.Slice(ret, func(i, j int) bool { return less(ret[i], ret[j]) })
	return ret
}

// Len returns the number of elements, entries, members or fields of
// a composite value (as normalized by Inspect).
func Len(k Kind, rv reflect.Value) int {
	switch k {
	case Array:
		return rv.Len()
	case Map:
		if rv.Type() == mapType {
			return rv.Interface().(*OrderedMap).Len()
		}
		return rv.Len()
	case Set:
		if rv.Type() == setType {
			return rv.Interface().(*OrderedSet).Len()
		}
		return rv.Len()
	case Record:
		return len(Fields(rv))
	case String:
		return rv.Len()
	}
	return 0
}

// less orders map keys deterministically: numbers numerically, strings and
// booleans naturally, and anything else by its printed form.
func less(a, b reflect.Value) bool {
	for a.Kind() == reflect.Interface && !a.IsNil() {
		a = a.Elem()
	}
	for b.Kind() == reflect.Interface && !b.IsNil() {
		b = b.Elem()
	}
	if a.Kind() == b.Kind() {
		switch a.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return a.Int() < b.Int()
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			return a.Uint() < b.Uint()
		case reflect.Float32, reflect.Float64:
			return a.Float() < b.Float()
		case reflect.String:
			return a.String() < b.String()
		case reflect.Bool:
			return !a.Bool() && b.Bool()
		}
	}
	return fmt.Sprint(Interface(a)) < fmt.Sprint(Interface(b))
}
