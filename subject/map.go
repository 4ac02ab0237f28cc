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
	"reflect"

	"go.chromium.org/certainty/format"
	"go.chromium.org/certainty/value"
)

// MapSubject checks maps: *value.OrderedMap or any Go map.
type MapSubject struct {
	*Subject
	ordered *value.OrderedMap
	native  reflect.Value
}

// Map returns a subject for a map.
func Map(strategy FailureStrategy, v any) *MapSubject {
	s := &MapSubject{Subject: New(strategy, v)}
	kind, rv := value.Inspect(reflect.ValueOf(v))
	switch {
	case kind == value.Map && rv.Kind() != reflect.Map:
		s.ordered = rv.Interface().(*value.OrderedMap)
	case rv.Kind() == reflect.Map:
		s.native = rv
	default:
		s.Failf("Expected %s to be a map, but was %s.", s.Describe(), kind)
	}
	return s
}

// Named gives the value a name to be used in failure messages.
func (s *MapSubject) Named(name string) *MapSubject {
	s.Subject.Named(name)
	return s
}

// WithFailureMessage sets a line printed before every failure.
func (s *MapSubject) WithFailureMessage(msg string) *MapSubject {
	s.Subject.WithFailureMessage(msg)
	return s
}

func (s *MapSubject) size() int {
	switch {
	case s.ordered != nil:
		return s.ordered.Len()
	case s.native.IsValid():
		return s.native.Len()
	}
	return 0
}

// get looks up `key`. Native maps are indexed directly when the key has
// a compatible type, and searched otherwise.
func (s *MapSubject) get(key any) (any, bool) {
	if s.ordered != nil {
		return s.ordered.Get(key)
	}
	if !s.native.IsValid() {
		return nil, false
	}

	kt := s.native.Type().Key()
	if kv := reflect.ValueOf(key); kv.IsValid() && kv.Type().AssignableTo(kt) {
		if v := s.native.MapIndex(kv); v.IsValid() {
			return value.Interface(v), true
		}
		return nil, false
	}
	iter := s.native.MapRange()
	for iter.Next() {
		if same(key, value.Interface(iter.Key())) {
			return value.Interface(iter.Value()), true
		}
	}
	return nil, false
}

// IsEmpty checks that the map has no entries.
func (s *MapSubject) IsEmpty() *MapSubject {
	if s.size() != 0 {
		s.Failf("Expected %s to be an empty map.", s.Describe())
	}
	return s
}

// IsNotEmpty checks that the map has entries.
func (s *MapSubject) IsNotEmpty() *MapSubject {
	if s.size() == 0 {
		s.Failf("Expected %s to be a non-empty map.", s.Describe())
	}
	return s
}

// HasSize checks the number of entries.
func (s *MapSubject) HasSize(n int) *MapSubject {
	if size := s.size(); size != n {
		s.Failf("Expected %s to be of size %d, actual size was %d.", s.Describe(), n, size)
	}
	return s
}

// ContainsKey checks that `key` is present. The result allows checking the
// value stored at `key`.
func (s *MapSubject) ContainsKey(key any) *KeyValue {
	v, ok := s.get(key)
	if !ok {
		s.Failf("Expected %s to contain key %s.", s.Describe(), format.Value(key))
		return &KeyValue{s: s.silenced(), key: key}
	}
	return &KeyValue{s: s.Subject, key: key, value: v}
}

// DoesNotContainKey checks that `key` is absent.
func (s *MapSubject) DoesNotContainKey(key any) *MapSubject {
	if _, ok := s.get(key); ok {
		s.Failf("Expected %s to not contain key %s.", s.Describe(), format.Value(key))
	}
	return s
}

// ContainsEntry checks that `key` is present with value `v`.
func (s *MapSubject) ContainsEntry(key, v any) *MapSubject {
	s.ContainsKey(key).WithValue(v)
	return s
}

// KeyValue is the value stored at a key checked by ContainsKey.
type KeyValue struct {
	s     *Subject
	key   any
	value any
}

// Value returns the value stored at the key.
func (kv *KeyValue) Value() any {
	return kv.value
}

// WithValue checks that the value stored at the key is `expected`, in
// a shallow comparison.
func (kv *KeyValue) WithValue(expected any) *KeyValue {
	if !same(expected, kv.value) {
		kv.s.Failf("Expected %s to contain key %s with value %s, actual value was %s.",
			kv.s.Describe(), format.Value(kv.key), format.Value(expected), format.Value(kv.value))
	}
	return kv
}
