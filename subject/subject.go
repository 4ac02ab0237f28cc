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

// Package subject implements fluent assertions on arbitrary values.
//
// A Subject wraps the value being checked. Its methods each check one
// predicate and report a failure through a FailureStrategy, then return the
// subject so that checks can be chained:
//
//	subject.Ensure(got).Named("got").IsNotNil().IsDeeplyEqualTo(want)
//
// Typed subjects (StringSubject, SliceSubject, MapSubject, SetSubject,
// ObjectSubject and PromiseSubject) add predicates specific to a kind of
// value.
package subject

import (
	"fmt"
	"math"
	"reflect"
	"strings"

	"go.chromium.org/certainty/compare"
	"go.chromium.org/certainty/format"
	"go.chromium.org/certainty/render"
	"go.chromium.org/certainty/value"
)

// DeepMaxShown is the number of differences shown by IsDeeplyEqualTo.
const DeepMaxShown = 4

// describeClip is the budget for a subject's value in failure messages.
const describeClip = 40

// Subject holds a value being checked.
type Subject struct {
	strategy FailureStrategy
	value    any
	name     string
	message  string
}

// New returns a Subject checking `v`, reporting failures to `strategy`.
func New(strategy FailureStrategy, v any) *Subject {
	return &Subject{strategy: strategy, value: v}
}

// Ensure returns a Subject which panics on failure, for use outside tests.
func Ensure(v any) *Subject {
	return New(PanicStrategy{}, v)
}

// Value returns the value being checked.
func (s *Subject) Value() any {
	return s.value
}

// Named gives the value a name to be used in failure messages.
func (s *Subject) Named(name string) *Subject {
	s.name = name
	return s
}

// WithFailureMessage sets a line of context printed before every failure of
// this subject.
func (s *Subject) WithFailureMessage(msg string) *Subject {
	s.message = msg
	return s
}

// Describe returns the name of the subject, or its clipped formatted value.
func (s *Subject) Describe() string {
	if s.name != "" {
		return s.name
	}
	return format.Clip(s.value, describeClip)
}

// Fail reports a failure of this subject.
func (s *Subject) Fail(msg string) {
	if s.message != "" {
		msg = s.message + "\n" + msg
	}
	s.strategy.Fail(msg)
}

// Failf is Fail with formatting.
func (s *Subject) Failf(f string, args ...any) {
	s.Fail(fmt.Sprintf(f, args...))
}

// derive returns a subject for `v` sharing this subject's strategy and
// failure message.
func (s *Subject) derive(v any, name string) *Subject {
	return &Subject{strategy: s.strategy, value: v, name: name, message: s.message}
}

// silenced returns a copy of the subject whose failures are dropped.
func (s *Subject) silenced() *Subject {
	c := *s
	c.strategy = discard{}
	return &c
}

func (s *Subject) internalError(err error) {
	s.Failf("internal error: %s", err)
}

func (s *Subject) failEqual(expected string) {
	if s.name != "" {
		s.Failf("Expected %s to be %s, actual value was %s.",
			s.name, expected, format.Clip(s.value, describeClip))
	} else {
		s.Failf("Expected %s to be %s.", s.Describe(), expected)
	}
}

func (s *Subject) failNotEqual(expected string) {
	s.Failf("Expected %s to not be %s.", s.Describe(), expected)
}

func (s *Subject) failComparison(verb, expected string) {
	if s.name != "" {
		s.Failf("Expected %s to be %s %s, actual value was %s.",
			s.name, verb, expected, format.Value(s.value))
	} else {
		s.Failf("Expected %s to be %s %s.", s.Describe(), verb, expected)
	}
}

// IsTrue checks that the value is the boolean true.
func (s *Subject) IsTrue() *Subject {
	if b, ok := s.value.(bool); !ok || !b {
		s.failEqual("true")
	}
	return s
}

// IsFalse checks that the value is the boolean false.
func (s *Subject) IsFalse() *Subject {
	if b, ok := s.value.(bool); !ok || b {
		s.failEqual("false")
	}
	return s
}

// IsTruthy checks that the value is truthy. Every value is truthy except
// nil, Undefined, NaN and the zero value of its type.
func (s *Subject) IsTruthy() *Subject {
	if !truthy(s.value) {
		s.failEqual("truthy")
	}
	return s
}

// IsFalsey checks that the value is not truthy.
func (s *Subject) IsFalsey() *Subject {
	if truthy(s.value) {
		s.failEqual("falsey")
	}
	return s
}

// IsNil checks that the value is nil, or a nil pointer, slice, map, chan,
// func or interface.
func (s *Subject) IsNil() *Subject {
	if !isNil(s.value) {
		s.failEqual("nil")
	}
	return s
}

// IsNotNil checks that the value is not nil.
func (s *Subject) IsNotNil() *Subject {
	if isNil(s.value) {
		s.failNotEqual("nil")
	}
	return s
}

// IsUndefined checks that the value is value.Undefined.
func (s *Subject) IsUndefined() *Subject {
	if s.value != value.Undefined {
		s.failEqual("undefined")
	}
	return s
}

// IsNotUndefined checks that the value is not value.Undefined.
func (s *Subject) IsNotUndefined() *Subject {
	if s.value == value.Undefined {
		s.failNotEqual("undefined")
	}
	return s
}

// IsNilOrUndefined checks that the value is nil or value.Undefined.
func (s *Subject) IsNilOrUndefined() *Subject {
	if !isNil(s.value) && s.value != value.Undefined {
		s.failEqual("nil or undefined")
	}
	return s
}

// Exists checks that the value is neither nil nor value.Undefined.
func (s *Subject) Exists() *Subject {
	if isNil(s.value) || s.value == value.Undefined {
		s.failNotEqual("nil or undefined")
	}
	return s
}

// IsEqualTo checks that the value equals `expected` in a shallow
// comparison: scalars are compared by value, everything else by identity.
func (s *Subject) IsEqualTo(expected any) *Subject {
	s.diff(expected, false, 0)
	return s
}

// Equals is IsEqualTo.
func (s *Subject) Equals(expected any) *Subject {
	return s.IsEqualTo(expected)
}

// IsNotEqualTo checks that the value does not equal `expected` in
// a shallow comparison.
func (s *Subject) IsNotEqualTo(expected any) *Subject {
	eq, err := compare.Compare(expected, s.value, s.name, false, nil)
	switch {
	case err != nil:
		s.internalError(err)
	case eq:
		s.failNotEqual(format.Value(expected))
	}
	return s
}

// IsExactly checks that the value is identical to `expected`: the same
// scalar of the same type, or the same reference.
func (s *Subject) IsExactly(expected any) *Subject {
	if !compare.Identical(expected, s.value) {
		s.failComparison("exactly", format.Value(expected))
	}
	return s
}

// IsDeeplyEqualTo checks that the value is structurally equal to
// `expected`. At most DeepMaxShown differences are reported.
func (s *Subject) IsDeeplyEqualTo(expected any) *Subject {
	s.diff(expected, true, DeepMaxShown)
	return s
}

// IsNotDeeplyEqualTo checks that the value is not structurally equal to
// `expected`.
func (s *Subject) IsNotDeeplyEqualTo(expected any) *Subject {
	eq, err := compare.Compare(expected, s.value, s.name, true, nil)
	switch {
	case err != nil:
		s.internalError(err)
	case eq:
		s.Failf("Expected %s to not be deeply equal to %s.", s.Describe(), format.Value(expected))
	}
	return s
}

// diff reports the rendered differences between `expected` and the value,
// returning false if there were any.
func (s *Subject) diff(expected any, deep bool, maxShown int) bool {
	msgs, err := render.Diff(expected, s.value, s.name, deep, maxShown)
	if err != nil {
		s.internalError(err)
		return false
	}
	if len(msgs) > 0 {
		s.Fail(strings.Join(msgs, "\n"))
		return false
	}
	return true
}

// IsGreaterThan checks that the value is greater than `expected`. Numbers,
// strings and dates are ordered; any other value fails.
func (s *Subject) IsGreaterThan(expected any) *Subject {
	if c, ok := order(s.value, expected); !ok || c <= 0 {
		s.failComparison("greater than", format.Value(expected))
	}
	return s
}

// IsNotGreaterThan checks that the value is not greater than `expected`.
func (s *Subject) IsNotGreaterThan(expected any) *Subject {
	if c, ok := order(s.value, expected); ok && c > 0 {
		s.failComparison("not greater than", format.Value(expected))
	}
	return s
}

// IsLessThan checks that the value is less than `expected`.
func (s *Subject) IsLessThan(expected any) *Subject {
	if c, ok := order(s.value, expected); !ok || c >= 0 {
		s.failComparison("less than", format.Value(expected))
	}
	return s
}

// IsNotLessThan checks that the value is not less than `expected`.
func (s *Subject) IsNotLessThan(expected any) *Subject {
	if c, ok := order(s.value, expected); ok && c < 0 {
		s.failComparison("not less than", format.Value(expected))
	}
	return s
}

// HasType checks the dynamic type of the value. `expected` is either
// a reflect.Type or a value of the expected type.
func (s *Subject) HasType(expected any) *Subject {
	want, ok := expected.(reflect.Type)
	if !ok {
		want = reflect.TypeOf(expected)
	}
	if got := reflect.TypeOf(s.value); got != want {
		s.Failf("Expected %s to have type '%s' but was '%s'.", s.Describe(), typeName(want), typeName(got))
	}
	return s
}

// IsIn checks that the value equals one of `elements` in a shallow
// comparison.
func (s *Subject) IsIn(elements ...any) *Subject {
	if indexOf(elements, s.value, 0) < 0 {
		s.Failf("Expected %s to be one of %s.", s.Describe(), format.Value(elements))
	}
	return s
}

// Is checks that `test` holds for the value. `verb` describes the test, as
// in "be even".
func (s *Subject) Is(verb string, test func(v any) bool) *Subject {
	if !test(s.value) {
		s.Failf("Expected %s to %s.", s.Describe(), verb)
	}
	return s
}

// IsNot checks that `test` does not hold for the value.
func (s *Subject) IsNot(verb string, test func(v any) bool) *Subject {
	if test(s.value) {
		s.Failf("Expected %s to not %s.", s.Describe(), verb)
	}
	return s
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "nil"
	}
	return t.String()
}

func truthy(v any) bool {
	if v == nil || v == value.Undefined {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		if math.IsNaN(rv.Float()) {
			return false
		}
	}
	return !rv.IsZero()
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map,
		reflect.Pointer, reflect.Slice, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}
