// Copyright 2024 The LUCI Authors.
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

// Package testhelper provides a fake testing.TB for tests of assertions
// which are meant to fail.
package testhelper

import (
	"fmt"
	"strings"
	"testing"
)

// ExpectFailure is a testing.TB which keeps the failures reported to it
// instead of failing the real test. Everything else goes to the wrapped
// *testing.T.
type ExpectFailure struct {
	*testing.T

	lines   []string
	failed  bool
	stopped bool // by FailNow
}

var _ testing.TB = (*ExpectFailure)(nil)

// NewExpectFailure returns an ExpectFailure wrapping `t`.
func NewExpectFailure(t *testing.T) *ExpectFailure {
	return &ExpectFailure{T: t}
}

// Log records a line the way testing.T formats it: operands are always
// separated by spaces.
func (e *ExpectFailure) Log(args ...any) {
	parts := make([]string, 0, len(args))
	for _, a := range args {
		parts = append(parts, fmt.Sprint(a))
	}
	e.lines = append(e.lines, strings.Join(parts, " "))
}

// Logf records a formatted line.
func (e *ExpectFailure) Logf(format string, args ...any) {
	e.lines = append(e.lines, fmt.Sprintf(format, args...))
}

func (e *ExpectFailure) Fail() { e.failed = true }

// FailNow records the failure and, unlike testing.T, returns.
func (e *ExpectFailure) FailNow() { e.failed, e.stopped = true, true }

// Logs returns the recorded lines.
func (e *ExpectFailure) Logs() []string { return e.lines }

// FailedNow reports whether FailNow was called.
func (e *ExpectFailure) FailedNow() bool { return e.stopped }

// unlogged returns those of `want` which are not part of any recorded line.
func (e *ExpectFailure) unlogged(want []string) (missing []string) {
	for _, w := range want {
		found := false
		for _, line := range e.lines {
			if found = strings.Contains(line, w); found {
				break
			}
		}
		if !found {
			missing = append(missing, w)
		}
	}
	return missing
}

// dump writes the recorded lines to the real test.
func (e *ExpectFailure) dump(header string) {
	e.T.Log(header)
	for _, line := range e.lines {
		e.T.Log("  " + line)
	}
}

// Check stops the real test unless a failure was reported and every one of
// `msgs` appears in a recorded line.
func (e *ExpectFailure) Check(msgs ...string) {
	e.Helper()

	ok := true
	if !e.failed {
		e.T.Log("no failure was reported")
		ok = false
	}
	if missing := e.unlogged(msgs); len(missing) > 0 {
		for _, m := range missing {
			e.T.Logf("not logged: %q", m)
		}
		ok = false
	}
	if !ok {
		e.dump("logged:")
		e.T.FailNow()
	}
}

// CheckPassed stops the real test if a failure was reported.
func (e *ExpectFailure) CheckPassed() {
	e.Helper()

	if e.failed {
		e.dump("unexpected failure, logged:")
		e.T.FailNow()
	}
}
