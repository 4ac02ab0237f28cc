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
	"regexp"
	"strings"

	"github.com/pkg/errors"

	"go.chromium.org/certainty/format"
	"go.chromium.org/certainty/render"
	"go.chromium.org/certainty/value"
)

// StringSubject checks strings.
type StringSubject struct {
	*Subject
	text string
}

// String returns a subject for a string, or a value of a string type.
func String(strategy FailureStrategy, v any) *StringSubject {
	s := &StringSubject{Subject: New(strategy, v)}
	text, ok := asString(v)
	if !ok {
		s.Failf("Expected %s to be a string, but was %s.", s.Describe(), value.Of(v))
	}
	s.text = text
	return s
}

func asString(v any) (string, bool) {
	kind, rv := value.Inspect(reflect.ValueOf(v))
	if kind != value.String {
		return "", false
	}
	return rv.String(), true
}

// Named gives the value a name to be used in failure messages.
func (s *StringSubject) Named(name string) *StringSubject {
	s.Subject.Named(name)
	return s
}

// WithFailureMessage sets a line printed before every failure.
func (s *StringSubject) WithFailureMessage(msg string) *StringSubject {
	s.Subject.WithFailureMessage(msg)
	return s
}

// IsEqualTo checks that the string equals `expected`. When either side
// spans several lines, a unified diff of the two follows the failure.
func (s *StringSubject) IsEqualTo(expected any) *StringSubject {
	msgs, err := render.Diff(expected, s.value, s.name, false, 0)
	if err != nil {
		s.internalError(err)
		return s
	}
	if len(msgs) == 0 {
		return s
	}
	if e, ok := asString(expected); ok && (strings.Contains(e, "\n") || strings.Contains(s.text, "\n")) {
		if u, err := render.Unified(e, s.text); err == nil && u != "" {
			msgs = append(msgs, strings.TrimSuffix(u, "\n"))
		}
	}
	s.Fail(strings.Join(msgs, "\n"))
	return s
}

// Equals is IsEqualTo.
func (s *StringSubject) Equals(expected any) *StringSubject {
	return s.IsEqualTo(expected)
}

// IsEmpty checks for the empty string.
func (s *StringSubject) IsEmpty() *StringSubject {
	if s.text != "" {
		s.Failf("Expected %s to be the empty string.", s.Describe())
	}
	return s
}

// IsNotEmpty checks that the string is not empty.
func (s *StringSubject) IsNotEmpty() *StringSubject {
	if s.text == "" {
		s.Failf("Expected %s to be non-empty.", s.Describe())
	}
	return s
}

// Includes checks that `sub` is a substring.
func (s *StringSubject) Includes(sub string) *StringSubject {
	if !strings.Contains(s.text, sub) {
		s.Failf("Expected %s to include %s.", s.Describe(), format.Value(sub))
	}
	return s
}

// DoesNotInclude checks that `sub` is not a substring.
func (s *StringSubject) DoesNotInclude(sub string) *StringSubject {
	if strings.Contains(s.text, sub) {
		s.Failf("Expected %s to not include %s.", s.Describe(), format.Value(sub))
	}
	return s
}

// StartsWith checks the prefix of the string.
func (s *StringSubject) StartsWith(prefix string) *StringSubject {
	if !strings.HasPrefix(s.text, prefix) {
		s.Failf("Expected %s to start with %s.", s.Describe(), format.Value(prefix))
	}
	return s
}

// EndsWith checks the suffix of the string.
func (s *StringSubject) EndsWith(suffix string) *StringSubject {
	if !strings.HasSuffix(s.text, suffix) {
		s.Failf("Expected %s to end with %s.", s.Describe(), format.Value(suffix))
	}
	return s
}

// Matches checks that the string matches `re`, given as a *regexp.Regexp
// or as a pattern.
func (s *StringSubject) Matches(re any) *StringSubject {
	var rx *regexp.Regexp
	switch x := re.(type) {
	case *regexp.Regexp:
		rx = x
	case string:
		var err error
		if rx, err = regexp.Compile(x); err != nil {
			s.internalError(errors.Wrapf(err, "bad pattern %q", x))
			return s
		}
	default:
		s.internalError(errors.Errorf("cannot match against %T", re))
		return s
	}
	if !rx.MatchString(s.text) {
		s.Failf("Expected %s to match the regular expression %s.", s.Describe(), format.Value(rx))
	}
	return s
}
