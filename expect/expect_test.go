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

package expect

import (
	"testing"

	"go.chromium.org/certainty/internal/testhelper"
	"go.chromium.org/certainty/value"

	. "github.com/smartystreets/goconvey/convey"
)

func TestExpect(t *testing.T) {
	t.Parallel()

	Convey(`expect records failures and continues`, t, func() {
		ef := testhelper.NewExpectFailure(t)
		That(ef, 1).Named("n").IsGreaterThan(2)
		String(ef, "abc").EndsWith("x")
		Set(ef, value.NewSet(1)).HasSize(2)
		ef.Check(
			"Expected n to be greater than 2, actual value was 1.",
			`Expected "abc" to end with "x".`,
			"Expected Set([1]) to be of size 2, actual size was 1.",
		)
		So(ef.FailedNow(), ShouldBeFalse)
	})

	Convey(`expect passes quietly`, t, func() {
		ef := testhelper.NewExpectFailure(t)
		Map(ef, value.NewMap(value.Entry{Key: "k", Value: 1})).HasSize(1)
		Object(ef, map[string]int{"a": 1}).IsNotEmpty()
		Slice(ef, [2]string{"a", "b"}).ContainsExactly("a", "b").InOrder()
		ef.CheckPassed()
	})

	Convey(`a promise which is not one`, t, func() {
		ef := testhelper.NewExpectFailure(t)
		Promise(ef, 3)
		ef.Check("Expected 3 to be a promise, but was number.")
	})
}
