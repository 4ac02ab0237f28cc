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

package format

import (
	"fmt"
	"regexp"
	"testing"
	"time"

	"go.chromium.org/certainty/value"

	. "github.com/smartystreets/goconvey/convey"
)

type named struct{ id int }

func (n named) String() string { return fmt.Sprintf("named#%d", n.id) }

type failure struct{}

func (*failure) Error() string { return "boom" }

type point struct {
	Y, X   int
	hidden string
}

func TestScalars(t *testing.T) {
	t.Parallel()

	Convey(`Scalars`, t, func() {
		So(Value(true), ShouldEqual, "true")
		So(Value(false), ShouldEqual, "false")
		So(Value(value.Undefined), ShouldEqual, "undefined")
		So(Value(nil), ShouldEqual, "null")
		So(Value((*int)(nil)), ShouldEqual, "null")
		So(Value(1), ShouldEqual, "1")
		So(Value(2.5), ShouldEqual, "2.5")
		one := 1
		So(Value(&one), ShouldEqual, "1")
	})
}

func TestStrings(t *testing.T) {
	t.Parallel()

	Convey(`Strings`, t, func() {
		Convey(`are quoted`, func() {
			So(Value(""), ShouldEqual, `""`)
			So(Value("abc"), ShouldEqual, `"abc"`)
			So(Value(" "), ShouldEqual, `" "`)
		})

		Convey(`escape control characters`, func() {
			So(Value("abc\n"), ShouldEqual, `"abc\n"`)
			So(Value("abc\r"), ShouldEqual, `"abc\r"`)
			So(Value("abc\r\n"), ShouldEqual, `"abc\r\n"`)
			So(Value("abc\b"), ShouldEqual, `"abc\b"`)
			So(Value("abc\x00"), ShouldEqual, `"abc\0"`)
			So(Value("abc\x1f"), ShouldEqual, `"abc\37"`)
			So(Escape("plain"), ShouldEqual, "plain")
		})

		Convey(`are clipped`, func() {
			So(Clip("abcdefghihk", 8), ShouldEqual, `"abcde..."`)
			So(Clip("abcdefgh", 8), ShouldEqual, `"abcdefgh"`)
			So(Clip("abcd\nefghihk", 8), ShouldEqual, `"abcd\..."`)
		})
	})
}

func TestRecords(t *testing.T) {
	t.Parallel()

	Convey(`Records`, t, func() {
		So(Value(map[string]any{}), ShouldEqual, "{}")
		So(Value(struct{}{}), ShouldEqual, "{}")
		So(Value(map[string]any{"b": 1, "a": true}), ShouldEqual, "{ a: true, b: 1 }")
		So(Clip(map[string]any{"b": 1, "a": true, "c": 2, "d": 3}, 12), ShouldEqual, "{ a: true, ... }")

		Convey(`list exported struct fields by name`, func() {
			So(Value(point{Y: 2, X: 1, hidden: "h"}), ShouldEqual, "{ X: 1, Y: 2 }")
			So(Value(&point{}), ShouldEqual, "{ X: 0, Y: 0 }")
		})

		Convey(`use their own text when they have it`, func() {
			So(Value(named{7}), ShouldEqual, "named#7")
			So(Value(&failure{}), ShouldEqual, "boom")
			So(Value([]any{named{1}}), ShouldEqual, "[named#1]")
		})
	})
}

func TestArrays(t *testing.T) {
	t.Parallel()

	Convey(`Arrays`, t, func() {
		So(Value([]int{}), ShouldEqual, "[]")
		So(Value([]string{"abc"}), ShouldEqual, `["abc"]`)
		So(Value([]string{" "}), ShouldEqual, `[" "]`)
		So(Value([2]bool{true, false}), ShouldEqual, "[true, false]")
		So(Value([]any{1, "a", nil, []int{2}}), ShouldEqual, `[1, "a", null, [2]]`)

		Convey(`are clipped`, func() {
			So(Clip([]int{1, 2, 3, 4, 5, 6, 7}, 9), ShouldEqual, "[1, 2, 3, ...]")
			So(Clip([]int{1, 2, 3}, 9), ShouldEqual, "[1, 2, 3]")
			So(Clip([]string{"a very long element"}, 9), ShouldEqual, "[...]")
		})

		Convey(`do not clip their elements`, func() {
			So(Clip([]string{"abcdefghijkl"}, 20), ShouldEqual, `["abcdefghijkl"]`)
		})
	})
}

func TestCollections(t *testing.T) {
	t.Parallel()

	Convey(`Sets`, t, func() {
		So(Value(value.NewSet()), ShouldEqual, "Set([])")
		So(Value(value.NewSet("abc")), ShouldEqual, `Set(["abc"])`)
		So(Value(value.NewSet(" ")), ShouldEqual, `Set([" "])`)
		So(Clip(value.NewSet(1, 2, 3, 4, 5, 6, 7), 9), ShouldEqual, "Set([1, 2, 3, ...])")
		So(Clip(value.NewSet(1, 2, 3), 9), ShouldEqual, "Set([1, 2, 3])")
		So(Value(map[int]struct{}{3: {}, 1: {}, 2: {}}), ShouldEqual, "Set([1, 2, 3])")
	})

	Convey(`Maps`, t, func() {
		So(Value(value.NewMap()), ShouldEqual, "Map([])")
		m := value.NewMap(value.Entry{Key: 1, Value: 2}, value.Entry{Key: "a", Value: "b"})
		So(Value(m), ShouldEqual, `Map([[1, 2], ["a", "b"]])`)
		So(Value(map[int]string{2: "b", 1: "a"}), ShouldEqual, `Map([[1, "a"], [2, "b"]])`)
	})
}

func TestOtherKinds(t *testing.T) {
	t.Parallel()

	Convey(`Other kinds`, t, func() {
		So(Value(make(chan int)), ShouldEqual, "[Promise]")
		So(Value(regexp.MustCompile(`a+b`)), ShouldEqual, "/a+b/")
		ts := time.Date(2020, 1, 2, 3, 4, 5, 6, time.UTC)
		So(Value(ts), ShouldEqual, "2020-01-02T03:04:05.000000006Z")
		So(Value(func(int) error { return nil }), ShouldEqual, "[func(int) error]")
	})
}
