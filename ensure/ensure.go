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

// Package ensure provides subjects which stop the test at the first failure.
//
// Example: `ensure.That(t, got).IsDeeplyEqualTo(want)`
package ensure

import (
	"testing"

	"go.chromium.org/certainty/subject"
)

func strategy(t testing.TB) subject.FailureStrategy {
	return subject.TestingStrategy{TB: t, FailNow: true}
}

// That returns a subject for `v`. A failure stops the test with t.FailNow.
func That(t testing.TB, v any) *subject.Subject {
	return subject.New(strategy(t), v)
}

// String returns a subject for a string.
func String(t testing.TB, v any) *subject.StringSubject {
	return subject.String(strategy(t), v)
}

// Slice returns a subject for a slice or array.
func Slice(t testing.TB, v any) *subject.SliceSubject {
	return subject.Slice(strategy(t), v)
}

// Map returns a subject for a map.
func Map(t testing.TB, v any) *subject.MapSubject {
	return subject.Map(strategy(t), v)
}

// Set returns a subject for a set.
func Set(t testing.TB, v any) *subject.SetSubject {
	return subject.Set(strategy(t), v)
}

// Object returns a subject for a struct or a map with string keys.
func Object(t testing.TB, v any) *subject.ObjectSubject {
	return subject.Object(strategy(t), v)
}

// Promise returns a subject for a value.Awaitable or a channel.
func Promise(t testing.TB, v any) *subject.PromiseSubject {
	return subject.Promise(strategy(t), v)
}
