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

// Package value classifies arbitrary Go values into the closed set of shapes
// understood by the formatter and the comparator.
//
// Every value maps to exactly one Kind. New shapes are added by extending
// Kind and the switch in Inspect; there is no runtime registration.
package value

import (
	"context"
	"reflect"
	"regexp"
	"time"
)

// Kind is the shape of a value.
type Kind int

// The recognized shapes.
const (
	Unsupported Kind = iota
	KindUndefined
	Null
	Boolean
	Number
	String
	Array
	Map
	Set
	Date
	RegExp
	Record
	Promise
)

var kindNames = [...]string{
	Unsupported:   "unsupported",
	KindUndefined: "undefined",
	Null:          "null",
	Boolean:       "boolean",
	Number:        "number",
	String:        "string",
	Array:         "array",
	Map:           "map",
	Set:           "set",
	Date:          "date",
	RegExp:        "regexp",
	Record:        "record",
	Promise:       "promise",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Tag returns the coarse type tag of the kind.
//
// Composite kinds all share the tag "object"; values with different tags can
// never be structurally compared.
func (k Kind) Tag() string {
	switch k {
	case Array, Map, Set, Date, RegExp, Record, Promise:
		return "object"
	}
	return k.String()
}

// IsObject is true for kinds tagged "object".
func (k Kind) IsObject() bool {
	return k.Tag() == "object"
}

type undefined struct{}

func (undefined) String() string { return "undefined" }

// Undefined is the value used for "no value at all", as opposed to nil.
var Undefined = undefined{}

// Awaitable is implemented by values which resolve eventually, such as
// futures.
type Awaitable interface {
	// Await blocks until the value is resolved or ctx is done.
	Await(ctx context.Context) (any, error)
}

var (
	undefinedType = reflect.TypeOf(Undefined)
	timeType      = reflect.TypeOf(time.Time{})
	regexpType    = reflect.TypeOf((*regexp.Regexp)(nil))
	mapType       = reflect.TypeOf((*OrderedMap)(nil))
	setType       = reflect.TypeOf((*OrderedSet)(nil))
	awaitableType = reflect.TypeOf((*Awaitable)(nil)).Elem()
	emptyStruct   = reflect.TypeOf(struct{}{})
)

// Of classifies v.
func Of(v any) Kind {
	k, _ := Inspect(reflect.ValueOf(v))
	return k
}

// Inspect classifies rv and returns it in normalized form: interfaces and
// pointers are unwrapped, except for the pointer types which carry their own
// kind (*regexp.Regexp, *OrderedMap, *OrderedSet and Awaitable
// implementations).
func Inspect(rv reflect.Value) (Kind, reflect.Value) {
	for {
		if !rv.IsValid() {
			return Null, rv
		}
		t := rv.Type()
		switch t {
		case undefinedType:
			return KindUndefined, rv
		case timeType:
			return Date, rv
		case regexpType, mapType, setType:
			if rv.IsNil() {
				return Null, rv
			}
			switch t {
			case regexpType:
				return RegExp, rv
			case mapType:
				return Map, rv
			}
			return Set, rv
		}
		if t.Kind() != reflect.Interface && t.Implements(awaitableType) {
			if (t.Kind() == reflect.Pointer) && rv.IsNil() {
				return Null, rv
			}
			return Promise, rv
		}

		switch t.Kind() {
		case reflect.Interface, reflect.Pointer:
			if rv.IsNil() {
				return Null, rv
			}
			rv = rv.Elem()
			continue

		case reflect.Bool:
			return Boolean, rv

		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
			reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
			return Number, rv

		case reflect.String:
			return String, rv

		case reflect.Slice:
			if t.Elem().Kind() == reflect.Uint8 {
				return Unsupported, rv
			}
			return Array, rv

		case reflect.Array:
			return Array, rv

		case reflect.Map:
			switch {
			case t.Elem() == emptyStruct:
				return Set, rv
			case t.Key().Kind() == reflect.String:
				return Record, rv
			}
			return Map, rv

		case reflect.Struct:
			return Record, rv

		case reflect.Chan:
			if rv.IsNil() {
				return Null, rv
			}
			return Promise, rv

		case reflect.Func:
			if rv.IsNil() {
				return Null, rv
			}
		}
		return Unsupported, rv
	}
}

// Interface returns rv as an `any`, mapping the invalid Value to nil.
func Interface(rv reflect.Value) any {
	if !rv.IsValid() {
		return nil
	}
	return rv.Interface()
}
