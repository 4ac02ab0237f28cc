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

// containsClip is the budget for a single element in containment failures.
const containsClip = 128

// InOrder allows checking that elements found by ContainsAllOf or
// ContainsExactly appear in the given order.
type InOrder interface {
	InOrder()
}

type inOrder struct{}

func (inOrder) InOrder() {}

// notInOrder fails when asked, because the elements were found out of
// order.
type notInOrder struct {
	s   *Subject
	msg string
}

func (n notInOrder) InOrder() { n.s.Fail(n.msg) }

// SliceSubject checks slices and arrays.
type SliceSubject struct {
	*Subject
	elements []any
}

// Slice returns a subject for a slice or array.
func Slice(strategy FailureStrategy, v any) *SliceSubject {
	s := &SliceSubject{Subject: New(strategy, v)}
	kind, rv := value.Inspect(reflect.ValueOf(v))
	if kind != value.Array {
		s.Failf("Expected %s to be a slice or array, but was %s.", s.Describe(), kind)
		return s
	}
	s.elements = elements(rv)
	return s
}

func elements(rv reflect.Value) []any {
	ret := make([]any, rv.Len())
	for i := range ret {
		ret[i] = value.Interface(rv.Index(i))
	}
	return ret
}

// Named gives the value a name to be used in failure messages.
func (s *SliceSubject) Named(name string) *SliceSubject {
	s.Subject.Named(name)
	return s
}

// WithFailureMessage sets a line printed before every failure.
func (s *SliceSubject) WithFailureMessage(msg string) *SliceSubject {
	s.Subject.WithFailureMessage(msg)
	return s
}

// IsEmpty checks that there are no elements.
func (s *SliceSubject) IsEmpty() *SliceSubject {
	if len(s.elements) != 0 {
		s.Failf("Expected %s to be empty.", s.Describe())
	}
	return s
}

// IsNotEmpty checks that there is at least one element.
func (s *SliceSubject) IsNotEmpty() *SliceSubject {
	if len(s.elements) == 0 {
		s.Failf("Expected %s to be non-empty.", s.Describe())
	}
	return s
}

// HasLength checks the number of elements.
func (s *SliceSubject) HasLength(n int) *SliceSubject {
	if len(s.elements) != n {
		s.Failf("Expected %s to have length %d, but was %d.", s.Describe(), n, len(s.elements))
	}
	return s
}

// Contains checks that `el` is an element.
func (s *SliceSubject) Contains(el any) *SliceSubject {
	if indexOf(s.elements, el, 0) < 0 {
		s.Failf("Expected %s to contain %s.", s.Describe(), format.Clip(el, containsClip))
	}
	return s
}

// DoesNotContain checks that `el` is not an element.
func (s *SliceSubject) DoesNotContain(el any) *SliceSubject {
	if indexOf(s.elements, el, 0) >= 0 {
		s.Failf("Expected %s to not contain %s.", s.Describe(), format.Clip(el, containsClip))
	}
	return s
}

// ContainsAllOf checks that every one of `want` is an element. Call InOrder
// on the result to also check their order.
func (s *SliceSubject) ContainsAllOf(want ...any) InOrder {
	return s.ContainsAllIn(want)
}

// ContainsAllIn is ContainsAllOf with a slice.
func (s *SliceSubject) ContainsAllIn(want []any) InOrder {
	ordered := true
	next := 0
	var found, missing []any
	for _, el := range want {
		i := indexOf(s.elements, el, next)
		if i < 0 {
			if indexOf(s.elements, el, 0) < 0 {
				missing = append(missing, el)
				continue
			}
			ordered = false
			continue
		}
		next = i + 1
		if ordered {
			found = append(found, el)
		}
	}

	if len(missing) > 0 {
		s.Failf("Expected %s to contain elements %s, is missing %s.",
			s.Describe(), format.Value(want), format.Value(missing))
		return inOrder{}
	}
	if !ordered {
		return notInOrder{s.Subject, s.outOfOrder("elements", want, found)}
	}
	return inOrder{}
}

// ContainsExactly checks that the elements are `want`, counting duplicates.
// Call InOrder on the result to also check their order.
func (s *SliceSubject) ContainsExactly(want ...any) InOrder {
	return s.ContainsExactlyIn(want)
}

// ContainsExactlyIn is ContainsExactly with a slice.
func (s *SliceSubject) ContainsExactlyIn(want []any) InOrder {
	ordered := true
	rest := append([]any(nil), s.elements...)
	var found, missing []any
	for _, el := range want {
		i := indexOf(rest, el, 0)
		if i < 0 {
			missing = append(missing, el)
			continue
		}
		if i != 0 {
			ordered = false
		}
		if ordered {
			found = append(found, el)
		}
		rest = append(rest[:i], rest[i+1:]...)
	}

	if len(missing) > 0 || len(rest) > 0 {
		s.Fail(exactlyMessage(s.Describe(), want, missing, rest))
		return inOrder{}
	}
	if !ordered {
		return notInOrder{s.Subject, s.outOfOrder("exactly elements", want, found)}
	}
	return inOrder{}
}

func (s *SliceSubject) outOfOrder(what string, want, found []any) string {
	return "Expected " + s.Describe() + " to contain " + what + " " + format.Value(want) +
		" in order, but contains only these elements in order: " + format.Value(found) + "."
}

func exactlyMessage(desc string, want, missing, extra []any) string {
	msg := "Expected " + desc + " to contain exactly elements " + format.Value(want)
	if len(missing) > 0 {
		msg += ", is missing " + format.Value(missing)
	}
	if len(extra) > 0 {
		msg += ", extra elements " + format.Value(extra)
	}
	return msg + "."
}

// ContainsAnyOf checks that at least one of `want` is an element.
func (s *SliceSubject) ContainsAnyOf(want ...any) *SliceSubject {
	return s.ContainsAnyIn(want)
}

// ContainsAnyIn is ContainsAnyOf with a slice.
func (s *SliceSubject) ContainsAnyIn(want []any) *SliceSubject {
	if !containsAny(s.elements, want) {
		s.Failf("Expected %s to contain any of %s.", s.Describe(), format.Value(want))
	}
	return s
}

// ContainsNoneOf checks that none of `unwanted` is an element.
func (s *SliceSubject) ContainsNoneOf(unwanted ...any) *SliceSubject {
	return s.ContainsNoneIn(unwanted)
}

// ContainsNoneIn is ContainsNoneOf with a slice.
func (s *SliceSubject) ContainsNoneIn(unwanted []any) *SliceSubject {
	if el, ok := firstOf(s.elements, unwanted); ok {
		s.Failf("Expected %s to contain none of %s, however it contains %s.",
			s.Describe(), format.Value(unwanted), format.Value(el))
	}
	return s
}

// ContainsAny checks that `test` holds for at least one element. `verb`
// describes the test, as in "be even".
func (s *SliceSubject) ContainsAny(verb string, test func(v any) bool) *SliceSubject {
	checkAny(s.Subject, s.elements, verb, test)
	return s
}

// ContainsAll checks that `test` holds for every element.
func (s *SliceSubject) ContainsAll(verb string, test func(v any) bool) *SliceSubject {
	checkAll(s.Subject, s.elements, verb, test)
	return s
}

// ContainsNone checks that `test` holds for no element.
func (s *SliceSubject) ContainsNone(verb string, test func(v any) bool) *SliceSubject {
	checkNone(s.Subject, s.elements, verb, test)
	return s
}

// EachElement applies subsequent checks to every element, named
// "element <i> of <subject>".
func (s *SliceSubject) EachElement() *EachSubject {
	return newEach(s.Subject, s.elements, "element", true)
}

func containsAny(elements, want []any) bool {
	_, ok := firstOf(elements, want)
	return ok
}

// firstOf returns the first of `candidates` found in `elements`.
func firstOf(elements, candidates []any) (any, bool) {
	for _, c := range candidates {
		if indexOf(elements, c, 0) >= 0 {
			return c, true
		}
	}
	return nil, false
}

func checkAny(s *Subject, elements []any, verb string, test func(v any) bool) {
	for _, el := range elements {
		if test(el) {
			return
		}
	}
	s.Failf("Expected any element of %s to %s.", s.Describe(), verb)
}

func checkAll(s *Subject, elements []any, verb string, test func(v any) bool) {
	for _, el := range elements {
		if !test(el) {
			s.Failf("Expected all elements of %s to %s.", s.Describe(), verb)
			return
		}
	}
}

func checkNone(s *Subject, elements []any, verb string, test func(v any) bool) {
	for _, el := range elements {
		if test(el) {
			s.Failf("Expected no elements of %s to %s.", s.Describe(), verb)
			return
		}
	}
}
