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
	"fmt"
)

// EachSubject applies checks to every element of a collection.
type EachSubject struct {
	subjects []*Subject
}

// newEach returns an EachSubject over `elements`. Each element is named
// "<noun> <i> of <parent>", or "<noun> of <parent>" when `indexed` is
// false.
func newEach(parent *Subject, elements []any, noun string, indexed bool) *EachSubject {
	desc := parent.Describe()
	ret := &EachSubject{subjects: make([]*Subject, len(elements))}
	for i, el := range elements {
		name := noun + " of " + desc
		if indexed {
			name = fmt.Sprintf("%s %d of %s", noun, i, desc)
		}
		ret.subjects[i] = parent.derive(el, name)
	}
	return ret
}

// Do calls `check` with the subject of each element, in order.
func (e *EachSubject) Do(check func(s *Subject)) *EachSubject {
	for _, s := range e.subjects {
		check(s)
	}
	return e
}

// Len is the number of elements.
func (e *EachSubject) Len() int {
	return len(e.subjects)
}

// The common checks, applied to every element.

func (e *EachSubject) IsTrue() *EachSubject {
	return e.Do(func(s *Subject) { s.IsTrue() })
}

func (e *EachSubject) IsFalse() *EachSubject {
	return e.Do(func(s *Subject) { s.IsFalse() })
}

func (e *EachSubject) IsNotNil() *EachSubject {
	return e.Do(func(s *Subject) { s.IsNotNil() })
}

func (e *EachSubject) Exists() *EachSubject {
	return e.Do(func(s *Subject) { s.Exists() })
}

func (e *EachSubject) IsEqualTo(expected any) *EachSubject {
	return e.Do(func(s *Subject) { s.IsEqualTo(expected) })
}

func (e *EachSubject) IsDeeplyEqualTo(expected any) *EachSubject {
	return e.Do(func(s *Subject) { s.IsDeeplyEqualTo(expected) })
}

func (e *EachSubject) IsGreaterThan(expected any) *EachSubject {
	return e.Do(func(s *Subject) { s.IsGreaterThan(expected) })
}

func (e *EachSubject) IsLessThan(expected any) *EachSubject {
	return e.Do(func(s *Subject) { s.IsLessThan(expected) })
}

func (e *EachSubject) HasType(expected any) *EachSubject {
	return e.Do(func(s *Subject) { s.HasType(expected) })
}

func (e *EachSubject) IsIn(elements ...any) *EachSubject {
	return e.Do(func(s *Subject) { s.IsIn(elements...) })
}

func (e *EachSubject) Is(verb string, test func(v any) bool) *EachSubject {
	return e.Do(func(s *Subject) { s.Is(verb, test) })
}
