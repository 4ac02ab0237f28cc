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
	"context"
	"sync"
	"testing"

	"github.com/pkg/errors"

	"go.chromium.org/certainty/internal/logging"
)

// FailureStrategy decides what happens when an assertion fails.
type FailureStrategy interface {
	Fail(msg string)
}

// AssertionError is the panic value of PanicStrategy.
type AssertionError struct {
	Message string
}

func (e *AssertionError) Error() string {
	return e.Message
}

// PanicStrategy panics with an *AssertionError on failure.
type PanicStrategy struct{}

// Fail implements FailureStrategy.
func (PanicStrategy) Fail(msg string) {
	panic(&AssertionError{Message: msg})
}

// LogStrategy logs failures at Error level and counts them. The test, if
// any, is not stopped; call AssertNoErrors to find out how it went.
type LogStrategy struct {
	ctx context.Context

	mu    sync.Mutex
	count int
}

// NewLogStrategy returns a LogStrategy logging through the logger of `ctx`.
func NewLogStrategy(ctx context.Context) *LogStrategy {
	return &LogStrategy{ctx: ctx}
}

// Fail implements FailureStrategy.
func (s *LogStrategy) Fail(msg string) {
	s.mu.Lock()
	s.count++
	s.mu.Unlock()

	logging.Errorf(s.ctx, "%s", msg)
}

// AssertNoErrors returns an error if any failures were logged since the last
// call, and resets the count.
func (s *LogStrategy) AssertNoErrors() error {
	s.mu.Lock()
	n := s.count
	s.count = 0
	s.mu.Unlock()

	if n > 0 {
		return errors.Errorf("%d errors encountered.", n)
	}
	return nil
}

// TestingStrategy reports failures to a test.
type TestingStrategy struct {
	TB testing.TB

	// FailNow stops the test at the first failure. Otherwise the failure is
	// recorded and the test continues.
	FailNow bool
}

// Fail implements FailureStrategy.
func (s TestingStrategy) Fail(msg string) {
	s.TB.Helper()
	s.TB.Log(msg)
	if s.FailNow {
		s.TB.FailNow()
	} else {
		s.TB.Fail()
	}
}

// discard swallows failures. It is used for follow-up assertions whose
// premise already failed.
type discard struct{}

func (discard) Fail(string) {}
