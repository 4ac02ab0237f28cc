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

package certainty

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

type user struct {
	Name string
	Age  int
}

func TestCertainty(t *testing.T) {
	t.Parallel()

	Convey(`Compare`, t, func() {
		eq, err := Compare(user{"a", 1}, user{"a", 1}, "", true)
		So(err, ShouldBeNil)
		So(eq, ShouldBeTrue)

		eq, err = Compare([]int{1}, []int{1}, "", false)
		So(err, ShouldBeNil)
		So(eq, ShouldBeFalse)

		_, err = Compare(func() {}, func() {}, "", true)
		So(err, ShouldNotBeNil)
	})

	Convey(`Diff`, t, func() {
		msgs, err := Diff(user{"a", 1}, user{"b", 2}, "u", true, 0)
		So(err, ShouldBeNil)
		So(msgs, ShouldResemble, []string{
			"Expected value of u does not equal actual value:",
			"  u.Age: Expected value to be 1, actual value was 2.",
			`  u.Name: Expected value to be "a", actual value was "b".`,
		})

		msgs, err = Diff(1, 1, "", false, 0)
		So(err, ShouldBeNil)
		So(msgs, ShouldBeEmpty)
	})

	Convey(`Format`, t, func() {
		So(Format(user{"a", 1}, 0), ShouldEqual, `{ Age: 1, Name: "a" }`)
		So(Format("abcdefgh", 6), ShouldEqual, `"abc..."`)
	})
}
