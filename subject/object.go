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

// ObjectSubject checks records: structs and maps with string keys.
type ObjectSubject struct {
	*Subject
	fields []value.Field
}

// Object returns a subject for a record.
func Object(strategy FailureStrategy, v any) *ObjectSubject {
	s := &ObjectSubject{Subject: New(strategy, v)}
	kind, rv := value.Inspect(reflect.ValueOf(v))
	if kind != value.Record {
		s.Failf("Expected %s to be a record, but was %s.", s.Describe(), kind)
		return s
	}
	s.fields = value.Fields(rv)
	return s
}

// Named gives the value a name to be used in failure messages.
func (s *ObjectSubject) Named(name string) *ObjectSubject {
	s.Subject.Named(name)
	return s
}

// WithFailureMessage sets a line printed before every failure.
func (s *ObjectSubject) WithFailureMessage(msg string) *ObjectSubject {
	s.Subject.WithFailureMessage(msg)
	return s
}

func (s *ObjectSubject) field(name string) (any, bool) {
	for _, f := range s.fields {
		if f.Name == name {
			return value.Interface(f.Value), true
		}
	}
	return nil, false
}

// IsEmpty checks that the record has no visible fields.
func (s *ObjectSubject) IsEmpty() *ObjectSubject {
	if len(s.fields) != 0 {
		s.Failf("Expected %s to be empty.", s.Describe())
	}
	return s
}

// IsNotEmpty checks that the record has visible fields.
func (s *ObjectSubject) IsNotEmpty() *ObjectSubject {
	if len(s.fields) == 0 {
		s.Failf("Expected %s to be non-empty.", s.Describe())
	}
	return s
}

// HasField checks that the record has a field called `name`, which can be
// promoted from an embedded struct. The result allows checking its value.
func (s *ObjectSubject) HasField(name string) *FieldValue {
	v, ok := s.field(name)
	if !ok {
		s.Failf("Expected %s to have a field named '%s'.", s.Describe(), name)
		return &FieldValue{s: s.silenced(), name: name}
	}
	return &FieldValue{s: s.Subject, name: name, value: v}
}

// DoesNotHaveField checks that the record has no field called `name`.
func (s *ObjectSubject) DoesNotHaveField(name string) *ObjectSubject {
	if _, ok := s.field(name); ok {
		s.Failf("Expected %s to not have a field named '%s'.", s.Describe(), name)
	}
	return s
}

// FieldValue is the value of a field checked by HasField.
type FieldValue struct {
	s     *Subject
	name  string
	value any
}

// Value returns the value of the field.
func (fv *FieldValue) Value() any {
	return fv.value
}

// WithValue checks that the field is `expected`, in a shallow comparison.
func (fv *FieldValue) WithValue(expected any) *FieldValue {
	if !same(expected, fv.value) {
		fv.s.Failf("Expected %s to have a field '%s' with value %s, actual value was %s.",
			fv.s.Describe(), fv.name, format.Value(expected), format.Value(fv.value))
	}
	return fv
}
