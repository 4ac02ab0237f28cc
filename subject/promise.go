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
	"reflect"
	"sync"

	"github.com/pkg/errors"

	"go.chromium.org/certainty/format"
	"go.chromium.org/certainty/value"
)

// future is the value.Awaitable returned by Go.
type future struct {
	done chan struct{}
	v    any
	err  error
}

// Go runs `fn` in a goroutine and returns its eventual result.
func Go(fn func() (any, error)) value.Awaitable {
	f := &future{done: make(chan struct{})}
	go func() {
		defer close(f.done)
		f.v, f.err = fn()
	}()
	return f
}

func (f *future) Await(ctx context.Context) (any, error) {
	select {
	case <-f.done:
		return f.v, f.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// PromiseSubject checks values which resolve eventually: value.Awaitable
// implementations and channels.
//
// A channel resolves to the first value received from it, or to
// value.Undefined if it is closed. A received non-nil error is a rejection.
//
// Every check blocks until the promise settles or its context is done. The
// outcome is remembered, so a channel is only received from once.
type PromiseSubject struct {
	*Subject
	promise reflect.Value

	mu      sync.Mutex
	settled bool
	result  any
	reason  error
}

// Promise returns a subject for a promise.
func Promise(strategy FailureStrategy, v any) *PromiseSubject {
	s := &PromiseSubject{Subject: New(strategy, v)}
	kind, rv := value.Inspect(reflect.ValueOf(v))
	if kind != value.Promise {
		s.Failf("Expected %s to be a promise, but was %s.", s.Describe(), kind)
		return s
	}
	s.promise = rv
	return s
}

// Named gives the value a name to be used in failure messages.
func (s *PromiseSubject) Named(name string) *PromiseSubject {
	s.Subject.Named(name)
	return s
}

// WithFailureMessage sets a line printed before every failure.
func (s *PromiseSubject) WithFailureMessage(msg string) *PromiseSubject {
	s.Subject.WithFailureMessage(msg)
	return s
}

// settle waits for the promise. It returns false, after reporting a failure,
// if the promise cannot be waited on or `ctx` ended first.
func (s *PromiseSubject) settle(ctx context.Context) (result any, reason error, ok bool) {
	if !s.promise.IsValid() {
		return nil, nil, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.settled {
		return s.result, s.reason, true
	}

	result, reason, err := await(ctx, s.promise)
	if err != nil {
		s.Failf("Expected promise %s to settle, but stopped waiting: %s.", s.Describe(), err)
		return nil, nil, false
	}
	s.settled, s.result, s.reason = true, result, reason
	return result, reason, true
}

// await returns the outcome of the promise `rv`, or an error if it could
// not be waited for.
func await(ctx context.Context, rv reflect.Value) (result any, reason, err error) {
	if a, ok := rv.Interface().(value.Awaitable); ok {
		result, reason = a.Await(ctx)
		if reason != nil && ctx.Err() != nil && errors.Is(reason, ctx.Err()) {
			return nil, nil, reason
		}
		return result, reason, nil
	}

	if rv.Type().ChanDir()&reflect.RecvDir == 0 {
		return nil, nil, errors.Errorf("cannot receive from %s", rv.Type())
	}
	chosen, recv, ok := reflect.Select([]reflect.SelectCase{
		{Dir: reflect.SelectRecv, Chan: rv},
		{Dir: reflect.SelectRecv, Chan: reflect.ValueOf(ctx.Done())},
	})
	switch {
	case chosen == 1:
		return nil, nil, ctx.Err()
	case !ok:
		return value.Undefined, nil, nil
	}
	v := value.Interface(recv)
	if e, isErr := v.(error); isErr && e != nil {
		return nil, e, nil
	}
	return v, nil, nil
}

func (s *PromiseSubject) failRejected(reason error) {
	s.Failf("Expected promise %s to succeed, but failed with %s.", s.Describe(), format.Value(reason))
}

func (s *PromiseSubject) failResolved(result any) {
	s.Failf("Expected promise %s to fail, but succeeded with %s.", s.Describe(), format.Value(result))
}

// Succeeds checks that the promise resolves.
func (s *PromiseSubject) Succeeds(ctx context.Context) *PromiseSubject {
	if _, reason, ok := s.settle(ctx); ok && reason != nil {
		s.failRejected(reason)
	}
	return s
}

// SucceedsWith checks that the promise resolves to `expected`, in
// a shallow comparison.
func (s *PromiseSubject) SucceedsWith(ctx context.Context, expected any) *PromiseSubject {
	result, reason, ok := s.settle(ctx)
	switch {
	case !ok:
	case reason != nil:
		s.failRejected(reason)
	case !same(expected, result):
		s.Failf("Expected promise %s to resolve to %s, actual value was %s.",
			s.Describe(), format.Value(expected), format.Value(result))
	}
	return s
}

// Fails checks that the promise is rejected.
func (s *PromiseSubject) Fails(ctx context.Context) *PromiseSubject {
	if result, reason, ok := s.settle(ctx); ok && reason == nil {
		s.failResolved(result)
	}
	return s
}

// FailsWith checks that the promise is rejected with `expected`: an error
// matched with errors.Is, or the text of the error.
func (s *PromiseSubject) FailsWith(ctx context.Context, expected any) *PromiseSubject {
	result, reason, ok := s.settle(ctx)
	switch {
	case !ok:
	case reason == nil:
		s.failResolved(result)
	case !isReason(reason, expected):
		s.Failf("Expected promise %s to be rejected with %s, actual reason was %s.",
			s.Describe(), format.Value(expected), format.Value(reason))
	}
	return s
}

func isReason(reason error, expected any) bool {
	switch x := expected.(type) {
	case error:
		return errors.Is(reason, x)
	case string:
		return reason.Error() == x
	}
	return same(expected, reason)
}

// Eventually waits for the promise to resolve and returns a subject for the
// result. If the promise is rejected, the failure is reported once and
// checks on the returned subject are not reported.
func (s *PromiseSubject) Eventually(ctx context.Context) *Subject {
	result, reason, ok := s.settle(ctx)
	if reason != nil {
		s.failRejected(reason)
	}
	ret := s.derive(result, s.name)
	if !ok || reason != nil {
		ret = ret.silenced()
	}
	return ret
}
