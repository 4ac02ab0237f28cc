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

package testhelper

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestExpectFailure(t *testing.T) {
	t.Parallel()

	Convey(`ExpectFailure`, t, func() {
		Convey(`records lines and failures`, func() {
			ef := NewExpectFailure(t)
			ef.Log("a", 1, "b")
			ef.Logf("n=%d", 2)
			ef.Fail()
			So(ef.Logs(), ShouldResemble, []string{"a 1 b", "n=2"})
			So(ef.FailedNow(), ShouldBeFalse)
			ef.Check("1 b", "n=")
		})

		Convey(`FailNow returns`, func() {
			ef := NewExpectFailure(t)
			ef.FailNow()
			So(ef.FailedNow(), ShouldBeTrue)
			ef.Check()
		})

		Convey(`a clean run passes`, func() {
			ef := NewExpectFailure(t)
			ef.Log("just talking")
			ef.CheckPassed()
		})
	})
}
