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

// SetSubject checks sets: *value.OrderedSet or map[T]struct{}.
type SetSubject struct {
	*Subject
	members []any
}

// Set returns a subject for a set.
func Set(strategy FailureStrategy, v any) *SetSubject {
	s := &SetSubject{Subject: New(strategy, v)}
	kind, rv := value.Inspect(reflect.ValueOf(v))
	if kind != value.Set {
		s.Failf("Expected %s to be a set, but was %s.", s.Describe(), kind)
		return s
	}
	for _, m := range value.Members(rv) {
		s.members = append(s.members, value.Interface(m))
	}
	return s
}

// Named gives the value a name to be used in failure messages.
func (s *SetSubject) Named(name string) *SetSubject {
	s.Subject.Named(name)
	return s
}

// WithFailureMessage sets a line printed before every failure.
func (s *SetSubject) WithFailureMessage(msg string) *SetSubject {
	s.Subject.WithFailureMessage(msg)
	return s
}

func (s *SetSubject) has(v any) bool {
	return indexOf(s.members, v, 0) >= 0
}

// IsEmpty checks that the set has no members.
func (s *SetSubject) IsEmpty() *SetSubject {
	if len(s.members) != 0 {
		s.Failf("Expected %s to be an empty set.", s.Describe())
	}
	return s
}

// IsNotEmpty checks that the set has members.
func (s *SetSubject) IsNotEmpty() *SetSubject {
	if len(s.members) == 0 {
		s.Failf("Expected %s to be a non-empty set.", s.Describe())
	}
	return s
}

// HasSize checks the number of members.
func (s *SetSubject) HasSize(n int) *SetSubject {
	if len(s.members) != n {
		s.Failf("Expected %s to be of size %d, actual size was %d.", s.Describe(), n, len(s.members))
	}
	return s
}

// Contains checks that `v` is a member.
func (s *SetSubject) Contains(v any) *SetSubject {
	if !s.has(v) {
		s.Failf("Expected %s to contain %s.", s.Describe(), format.Value(v))
	}
	return s
}

// DoesNotContain checks that `v` is not a member.
func (s *SetSubject) DoesNotContain(v any) *SetSubject {
	if s.has(v) {
		s.Failf("Expected %s to not contain %s.", s.Describe(), format.Value(v))
	}
	return s
}

// ContainsAllOf checks that all of `want` are members.
func (s *SetSubject) ContainsAllOf(want ...any) *SetSubject {
	var missing []any
	for _, el := range want {
		if !s.has(el) {
			missing = append(missing, el)
		}
	}
	if len(missing) > 0 {
		s.Failf("Expected %s to contain all of %s, is missing %s.",
			s.Describe(), format.Value(want), format.Value(missing))
	}
	return s
}

// ContainsExactly checks that the members are exactly `want`.
func (s *SetSubject) ContainsExactly(want ...any) *SetSubject {
	extra := append([]any(nil), s.members...)
	var missing []any
	for _, el := range want {
		i := indexOf(extra, el, 0)
		switch {
		case i >= 0:
			extra = append(extra[:i], extra[i+1:]...)
		case !s.has(el):
			missing = append(missing, el)
		}
	}
	if len(missing) > 0 || len(extra) > 0 {
		s.Fail(exactlyMessage(s.Describe(), want, missing, extra))
	}
	return s
}

// ContainsAnyOf checks that at least one of `want` is a member.
func (s *SetSubject) ContainsAnyOf(want ...any) *SetSubject {
	if !containsAny(s.members, want) {
		s.Failf("Expected %s to contain any of %s.", s.Describe(), format.Value(want))
	}
	return s
}

// ContainsNoneOf checks that none of `unwanted` is a member.
func (s *SetSubject) ContainsNoneOf(unwanted ...any) *SetSubject {
	if el, ok := firstOf(s.members, unwanted); ok {
		s.Failf("Expected %s to contain none of %s, however it contains %s.",
			s.Describe(), format.Value(unwanted), format.Value(el))
	}
	return s
}

// ContainsAny checks that `test` holds for at least one member.
func (s *SetSubject) ContainsAny(verb string, test func(v any) bool) *SetSubject {
	checkAny(s.Subject, s.members, verb, test)
	return s
}

// ContainsAll checks that `test` holds for every member.
func (s *SetSubject) ContainsAll(verb string, test func(v any) bool) *SetSubject {
	checkAll(s.Subject, s.members, verb, test)
	return s
}

// ContainsNone checks that `test` holds for no member.
func (s *SetSubject) ContainsNone(verb string, test func(v any) bool) *SetSubject {
	checkNone(s.Subject, s.members, verb, test)
	return s
}

// EachMember applies subsequent checks to every member, named
// "member of <subject>".
func (s *SetSubject) EachMember() *EachSubject {
	return newEach(s.Subject, s.members, "member", false)
}
