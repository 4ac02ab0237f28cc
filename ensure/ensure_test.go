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

package ensure

import (
	"context"
	"testing"

	"go.chromium.org/certainty/internal/testhelper"
	"go.chromium.org/certainty/subject"
	"go.chromium.org/certainty/value"

	. "github.com/smartystreets/goconvey/convey"
)

func TestEnsure(t *testing.T) {
	t.Parallel()

	Convey(`ensure stops the test on failure`, t, func() {
		ef := testhelper.NewExpectFailure(t)
		That(ef, 1).IsEqualTo(2)
		ef.Check("Expected 1 to be 2.")
		So(ef.FailedNow(), ShouldBeTrue)
	})

	Convey(`ensure passes quietly`, t, func() {
		ef := testhelper.NewExpectFailure(t)
		That(ef, []int{1, 2}).IsDeeplyEqualTo([]int{1, 2})
		String(ef, "abc").StartsWith("a")
		Slice(ef, []int{1, 2}).Contains(2)
		Map(ef, map[int]string{1: "a"}).ContainsKey(1).WithValue("a")
		Set(ef, value.NewSet("x")).Contains("x")
		Object(ef, struct{ A int }{1}).HasField("A").WithValue(1)
		Promise(ef, subject.Go(func() (any, error) { return 1, nil })).SucceedsWith(context.Background(), 1)
		ef.CheckPassed()
	})

	Convey(`typed constructors report through the test`, t, func() {
		ef := testhelper.NewExpectFailure(t)
		Slice(ef, []int{1}).Named("xs").HasLength(2)
		ef.Check("Expected xs to have length 2, but was 1.")
	})
}
