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

package compare

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"

	"go.chromium.org/certainty/value"

	. "github.com/smartystreets/goconvey/convey"
)

type pair struct {
	A int
	B []string
}

type otherPair struct {
	A int
	B []string
}

func mustRecords(expected, actual any, path string, deep bool) []Record {
	recs, err := Records(expected, actual, path, deep)
	So(err, ShouldBeNil)
	return recs
}

func TestScalars(t *testing.T) {
	t.Parallel()

	Convey(`Scalars`, t, func() {
		Convey(`booleans`, func() {
			ok, err := Compare(true, true, "", false, nil)
			So(err, ShouldBeNil)
			So(ok, ShouldBeTrue)
			So(mustRecords(true, true, "", false), ShouldBeEmpty)
			So(mustRecords(true, false, "", false), ShouldResemble, []Record{
				{Kind: KindValue, Expected: "true", Actual: "false"},
			})
		})

		Convey(`numbers`, func() {
			ok, _ := Compare(0, 1, "", false, nil)
			So(ok, ShouldBeFalse)
			So(mustRecords(0, 1, "n", false), ShouldResemble, []Record{
				{Kind: KindValue, Path: "n", Expected: "0", Actual: "1"},
			})
		})

		Convey(`different Go types of the same kind`, func() {
			So(mustRecords(1, int64(1), "n", true), ShouldResemble, []Record{
				{Kind: KindType, Path: "n", Expected: "int", Actual: "int64"},
			})
		})

		Convey(`different kinds`, func() {
			So(mustRecords(1, "1", "", true), ShouldResemble, []Record{
				{Kind: KindValue, Expected: "1", Actual: `"1"`},
			})
			So(mustRecords(nil, []int{}, "", true), ShouldResemble, []Record{
				{Kind: KindValue, Expected: "null", Actual: "[]"},
			})
			So(mustRecords(value.Undefined, nil, "", true), ShouldResemble, []Record{
				{Kind: KindValue, Expected: "undefined", Actual: "null"},
			})
		})

		Convey(`nils of any type are equal`, func() {
			So(mustRecords((*int)(nil), nil, "", true), ShouldBeEmpty)
			var err error
			So(mustRecords(err, (*pair)(nil), "", true), ShouldBeEmpty)
		})
	})
}

func TestStrings(t *testing.T) {
	t.Parallel()

	Convey(`Strings`, t, func() {
		Convey(`short strings are reported whole`, func() {
			So(mustRecords("abc", "abd", "s", true), ShouldResemble, []Record{
				{Kind: KindValue, Path: "s", Expected: `"abc"`, Actual: `"abd"`},
			})
		})

		Convey(`early divergence is reported whole`, func() {
			e := "x" + strings.Repeat("a", 70)
			a := "y" + strings.Repeat("a", 70)
			recs := mustRecords(e, a, "", true)
			So(len(recs), ShouldEqual, 1)
			So(recs[0].Kind, ShouldEqual, KindValue)
			So(recs[0].Expected, ShouldEqual, `"`+e+`"`)
		})

		Convey(`long strings are excerpted around the divergence`, func() {
			e := strings.Repeat("a", 30) + "X" + strings.Repeat("b", 49)
			a := strings.Repeat("a", 30) + "Y" + strings.Repeat("b", 49)
			So(mustRecords(e, a, "s", true), ShouldResemble, []Record{{
				Kind:     KindString,
				Path:     "s",
				Expected: `"...` + strings.Repeat("a", 16) + "X" + strings.Repeat("b", 39) + `..."`,
				Actual:   `"...` + strings.Repeat("a", 16) + "Y" + strings.Repeat("b", 39) + `..."`,
				Index:    30,
			}})
		})

		Convey(`multi-line strings report line and column`, func() {
			So(mustRecords("one\ntwo\nthree", "one\nTwo\nthree", "", true), ShouldResemble, []Record{{
				Kind:      KindString,
				Expected:  `"two"`,
				Actual:    `"Two"`,
				Multiline: true,
				Line:      1,
				Column:    0,
			}})
		})

		Convey(`a line past the end is marked`, func() {
			So(mustRecords("a\nb\nc", "a\nb\nc\n", "s", true), ShouldResemble, []Record{{
				Kind:      KindString,
				Path:      "s",
				Expected:  EndOfText,
				Actual:    `""`,
				Multiline: true,
				Line:      3,
			}})
			recs := mustRecords("a\nb\nc\nd", "a\nb\nc", "", true)
			So(recs[0].Expected, ShouldEqual, `"d"`)
			So(recs[0].Actual, ShouldEqual, EndOfText)
		})

		Convey(`multi-line excerpts are escaped`, func() {
			recs := mustRecords("a\nb\tc\nd", "a\nb\tC\nd", "", true)
			So(recs[0].Expected, ShouldEqual, `"b\tc"`)
			So(recs[0].Column, ShouldEqual, 2)
		})

		Convey(`named string types differ from string`, func() {
			type name string
			recs := mustRecords("a", name("a"), "", true)
			So(recs[0].Kind, ShouldEqual, KindType)
		})
	})
}

func TestObjects(t *testing.T) {
	t.Parallel()

	Convey(`Objects`, t, func() {
		Convey(`shallow comparison never recurses`, func() {
			ok, err := Compare(map[string]int{"a": 1}, map[string]int{"a": 1}, "", false, nil)
			So(err, ShouldBeNil)
			So(ok, ShouldBeFalse)

			ok, err = Compare(map[string]int{"a": 1}, map[string]int{"a": 1}, "", true, nil)
			So(err, ShouldBeNil)
			So(ok, ShouldBeTrue)
		})

		Convey(`shallow comparison accepts identical references`, func() {
			m := map[string]int{"a": 1}
			ok, _ := Compare(m, m, "", false, nil)
			So(ok, ShouldBeTrue)
		})

		Convey(`records report values, missing and unexpected properties`, func() {
			recs := mustRecords(map[string]int{"a": 1, "c": 1}, map[string]int{"a": 2, "b": 1}, "obj", true)
			So(recs, ShouldResemble, []Record{
				{Kind: KindValue, Path: "obj.a", Expected: "1", Actual: "2"},
				MissingProperty("obj.c", "1"),
				UnexpectedProperty("obj.b", "1"),
			})
		})

		Convey(`root properties have no leading dot`, func() {
			recs := mustRecords(map[string]int{"a": 1}, map[string]int{"a": 2}, "", true)
			So(recs[0].Path, ShouldEqual, "a")
		})

		Convey(`nested paths compose`, func() {
			e := map[string]any{"a": pair{A: 1, B: []string{"x", "y"}}}
			a := map[string]any{"a": &pair{A: 1, B: []string{"x", "z"}}}
			So(mustRecords(e, a, "v", true), ShouldResemble, []Record{
				{Kind: KindValue, Path: "v.a.B[1]", Expected: `"y"`, Actual: `"z"`},
			})
		})

		Convey(`different types are reported by name`, func() {
			So(mustRecords(pair{}, otherPair{}, "", true), ShouldResemble, []Record{
				{Kind: KindType, Expected: "compare.pair", Actual: "compare.otherPair"},
			})
		})

		Convey(`opaque values compare by text`, func() {
			So(mustRecords(errors.New("a"), errors.New("a"), "", true), ShouldBeEmpty)
			recs := mustRecords(errors.New("a"), errors.New("b"), "", true)
			So(len(recs), ShouldEqual, 1)
			So(recs[0].Kind, ShouldEqual, KindValue)
		})

		Convey(`opaque structs without text compare with ==`, func() {
			type hidden struct{ x int }
			So(mustRecords(hidden{1}, hidden{1}, "", true), ShouldBeEmpty)
			So(mustRecords(hidden{1}, hidden{2}, "v", true), ShouldResemble, []Record{
				{Kind: KindValue, Path: "v", Expected: "{}", Actual: "{}"},
			})
			So(mustRecords(&hidden{1}, &hidden{2}, "v", true), ShouldHaveLength, 1)

			ok, err := Compare(hidden{1}, hidden{2}, "", true, nil)
			So(err, ShouldBeNil)
			So(ok, ShouldBeFalse)
		})

		Convey(`opaque structs that cannot be compared are unsupported`, func() {
			type hiddenSlice struct{ x []int }
			_, err := Compare(hiddenSlice{[]int{1}}, hiddenSlice{[]int{1}}, "v", true, nil)
			So(errors.Is(err, ErrUnsupportedType), ShouldBeTrue)
		})

		Convey(`dates and regexps`, func() {
			t1 := time.Date(2020, 1, 1, 12, 0, 0, 0, time.UTC)
			t2 := t1.In(time.FixedZone("X", 3600))
			So(mustRecords(t1, t2, "", true), ShouldBeEmpty)
			So(len(mustRecords(t1, t1.Add(time.Second), "", true)), ShouldEqual, 1)

			So(mustRecords(regexp.MustCompile("a+"), regexp.MustCompile("a+"), "", true), ShouldBeEmpty)
			So(mustRecords(regexp.MustCompile("a+"), regexp.MustCompile("b+"), "r", true), ShouldResemble, []Record{
				{Kind: KindValue, Path: "r", Expected: "/a+/", Actual: "/b+/"},
			})
		})

		Convey(`promises are equal only when identical`, func() {
			ch := make(chan int)
			So(mustRecords(ch, ch, "", true), ShouldBeEmpty)
			So(mustRecords(ch, make(chan int), "", true), ShouldResemble, []Record{
				{Kind: KindValue, Expected: "[Promise]", Actual: "[Promise]"},
			})
		})
	})
}

func TestArrays(t *testing.T) {
	t.Parallel()

	Convey(`Arrays`, t, func() {
		Convey(`elements are compared by index`, func() {
			So(mustRecords([]int{1, 2}, []int{1, 3}, "arr", true), ShouldResemble, []Record{
				{Kind: KindValue, Path: "arr[1]", Expected: "2", Actual: "3"},
			})
		})

		Convey(`extra elements are capped`, func() {
			recs := mustRecords([]int{1, 2, 3, 4, 5, 6, 7, 8}, []int{1, 2}, "arr", true)
			So(recs, ShouldResemble, []Record{
				MissingElement("arr[2]", "3"),
				MissingElement("arr[3]", "4"),
				MissingElement("arr[4]", "5"),
				More("arr", 3),
			})
		})

		Convey(`unexpected elements`, func() {
			So(mustRecords([]string{}, []string{"a"}, "", true), ShouldResemble, []Record{
				UnexpectedElement("[0]", `"a"`),
			})
		})

		Convey(`short-circuits without diffs`, func() {
			ok, err := Compare([]int{1, 2}, []int{1, 2, 3}, "", true, nil)
			So(err, ShouldBeNil)
			So(ok, ShouldBeFalse)
		})
	})
}

func TestCollections(t *testing.T) {
	t.Parallel()

	Convey(`Maps`, t, func() {
		e := value.NewMap(value.Entry{Key: 1, Value: "a"}, value.Entry{Key: 2, Value: "b"})
		a := value.NewMap(value.Entry{Key: 1, Value: "z"}, value.Entry{Key: 3, Value: "c"})
		So(mustRecords(e, a, "m", true), ShouldResemble, []Record{
			{Kind: KindValue, Path: "m[1]", Expected: `"a"`, Actual: `"z"`},
			MissingElement("m[2]", `"b"`),
			UnexpectedElement("m[3]", `"c"`),
		})

		Convey(`native maps`, func() {
			So(mustRecords(map[int]bool{1: true}, map[int]bool{1: true}, "", true), ShouldBeEmpty)
			So(mustRecords(map[int]bool{1: true}, map[int]bool{1: false}, "", true), ShouldResemble, []Record{
				{Kind: KindValue, Path: "[1]", Expected: "true", Actual: "false"},
			})
		})
	})

	Convey(`Sets`, t, func() {
		So(mustRecords(value.NewSet(1, 2, 3), value.NewSet(3, 2, 1), "", true), ShouldBeEmpty)
		So(mustRecords(value.NewSet(1, 2), value.NewSet(2, 4), "s", true), ShouldResemble, []Record{
			MissingElement("s", "1"),
			UnexpectedElement("s", "4"),
		})

		Convey(`members match deeply`, func() {
			e := value.NewSet(&pair{A: 1}, &pair{A: 2, B: []string{"b"}})
			a := value.NewSet(&pair{A: 2, B: []string{"b"}}, &pair{A: 1})
			So(mustRecords(e, a, "", true), ShouldBeEmpty)
		})
	})
}

func TestIdentical(t *testing.T) {
	t.Parallel()

	Convey(`Identical`, t, func() {
		p := &pair{A: 1}
		s := []int{1, 2}

		So(Identical(1, 1), ShouldBeTrue)
		So(Identical(1, int64(1)), ShouldBeFalse)
		So(Identical(nil, nil), ShouldBeTrue)
		So(Identical(p, p), ShouldBeTrue)
		So(Identical(p, &pair{A: 1}), ShouldBeFalse)
		So(Identical(s, s), ShouldBeTrue)
		So(Identical(s, s[:1]), ShouldBeFalse)
		So(Identical(s, []int{1, 2}), ShouldBeFalse)
	})
}

func TestUnsupported(t *testing.T) {
	t.Parallel()

	Convey(`Unsupported values are an error`, t, func() {
		_, err := Compare(func() {}, func() {}, "f", true, nil)
		So(errors.Is(err, ErrUnsupportedType), ShouldBeTrue)

		var ute *UnsupportedTypeError
		So(errors.As(err, &ute), ShouldBeTrue)
		So(ute.Path, ShouldEqual, "f")

		_, err = Records(map[string]any{"x": []byte("a")}, map[string]any{"x": []byte("b")}, "", true)
		So(errors.As(err, &ute), ShouldBeTrue)
		So(ute.Path, ShouldEqual, "x")
		So(ute.Type.String(), ShouldEqual, "[]uint8")
		So(err.Error(), ShouldContainSubstring, "cannot compare values of type []uint8 at x")
	})
}

func TestProperties(t *testing.T) {
	t.Parallel()

	build := func() []any {
		return []any{
			nil,
			true,
			42,
			"some text",
			"multi\nline\ntext",
			[]int{1, 2, 3},
			map[string]any{"a": []any{1, "b"}, "c": map[string]int{"d": 4}},
			&pair{A: 1, B: []string{"x"}},
			value.NewMap(value.Entry{Key: "k", Value: []int{1}}),
			value.NewSet(1, "two"),
			time.Date(2001, 2, 3, 4, 5, 6, 0, time.UTC),
			regexp.MustCompile("x*"),
		}
	}

	Convey(`Reflexivity`, t, func() {
		for i, v := range build() {
			So(mustRecords(v, v, "", true), ShouldBeEmpty)
			So(mustRecords(v, build()[i], "", true), ShouldBeEmpty)
		}
	})

	Convey(`Determinism and key order independence`, t, func() {
		e1 := map[string]int{}
		e2 := map[string]int{}
		a := map[string]int{}
		for i := 0; i < 26; i++ {
			k := string(rune('a' + i))
			e1[k] = i
			e2[string(rune('z'-i))] = 25 - i
			if i%2 == 0 {
				a[k] = i + 1
			}
		}
		a["zz"] = 1

		r1 := mustRecords(e1, a, "m", true)
		r2 := mustRecords(e2, a, "m", true)
		So(cmp.Diff(r1, r2), ShouldBeEmpty)
		So(cmp.Diff(r1, mustRecords(e1, a, "m", true)), ShouldBeEmpty)
	})

	Convey(`Truncation accounts for every extra entry`, t, func() {
		for n := 0; n < 10; n++ {
			e := make([]int, n)
			recs := mustRecords(e, []int{}, "", true)
			total := 0
			for _, r := range recs {
				switch r.Kind {
				case KindElement:
					total++
				case KindMore:
					total += r.Count
				}
			}
			So(total, ShouldEqual, n)
			So(len(recs), ShouldBeLessThanOrEqualTo, MaxExtraEntries+1)
		}

		e := map[string]int{}
		for i := 0; i < 8; i++ {
			e[string(rune('a'+i))] = i
		}
		recs := mustRecords(e, map[string]int{}, "", true)
		So(recs[len(recs)-1], ShouldResemble, More("", 5))
	})
}
