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

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"go.chromium.org/certainty/value"

	. "github.com/smartystreets/goconvey/convey"
)

func TestDecode(t *testing.T) {
	t.Parallel()

	Convey(`decode`, t, func() {
		want := map[string]any{"a": 1.0, "b": []any{"x", 2.0}}

		Convey(`YAML`, func() {
			v, err := decode("in.yaml", []byte("a: 1\nb: [x, 2]\n"))
			So(err, ShouldBeNil)
			So(cmp.Diff(want, v), ShouldBeEmpty)
		})

		Convey(`JSON5`, func() {
			v, err := decode("in.json5", []byte(`{a: 1, b: ["x", 2,],}`))
			So(err, ShouldBeNil)
			So(cmp.Diff(want, v), ShouldBeEmpty)
		})

		Convey(`JSON5 single-quoted strings are rejected`, func() {
			_, err := decode("in.json5", []byte(`{a: 'x'}`))
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "decoding in.json5")
		})

		Convey(`YAML with non-string keys`, func() {
			v, err := decode("in.YML", []byte("2: two\n1: one\n"))
			So(err, ShouldBeNil)
			m, ok := v.(*value.OrderedMap)
			So(ok, ShouldBeTrue)
			So(m.Len(), ShouldEqual, 2)
			So(m.Entries()[0].Key, ShouldEqual, 1.0)
			one, _ := m.Get(1.0)
			So(one, ShouldEqual, "one")
		})

		Convey(`bad input`, func() {
			_, err := decode("in.json", []byte("{"))
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "decoding in.json")
		})
	})
}

func writeFile(dir, name, content string) string {
	path := filepath.Join(dir, name)
	So(os.WriteFile(path, []byte(content), 0o644), ShouldBeNil)
	return path
}

func TestCommands(t *testing.T) {
	t.Parallel()

	Convey(`Commands`, t, func() {
		ctx := context.Background()
		dir := t.TempDir()
		out := &bytes.Buffer{}

		expected := writeFile(dir, "expected.yaml", "name: a\nports: [80, 443]\n")
		actual := writeFile(dir, "actual.json5", `{name: "a", ports: [80, 8443]}`)
		same := writeFile(dir, "same.json5", `{ports: [80, 443], name: "a"}`)

		Convey(`diff`, func() {
			r := &diffRun{}

			code, err := r.main(ctx, out, expected, actual)
			So(err, ShouldBeNil)
			So(code, ShouldEqual, exitDifferent)
			So(out.String(), ShouldEqual, "Expected ports[1] to be 443, actual value was 8443.\n")

			out.Reset()
			code, err = r.main(ctx, out, expected, same)
			So(err, ShouldBeNil)
			So(code, ShouldEqual, exitEqual)
			So(out.String(), ShouldBeEmpty)

			r.path = "cfg"
			code, _ = r.main(ctx, out, expected, actual)
			So(code, ShouldEqual, exitDifferent)
			So(out.String(), ShouldEqual, "Expected cfg.ports[1] to be 443, actual value was 8443.\n")

			out.Reset()
			r.shallow = true
			code, _ = r.main(ctx, out, expected, same)
			So(code, ShouldEqual, exitDifferent)
			So(out.String(), ShouldStartWith, "Expected value of cfg differs from actual value:\n")

			code, err = r.main(ctx, out, expected, filepath.Join(dir, "missing.yaml"))
			So(err, ShouldNotBeNil)
			So(code, ShouldEqual, exitError)
		})

		Convey(`format`, func() {
			path := writeFile(dir, "v.yaml", "b: 2\na: [1, 2]\n")
			r := &formatRun{}
			So(r.main(ctx, out, path), ShouldBeNil)
			So(out.String(), ShouldEqual, "{ a: [1, 2], b: 2 }\n")

			out.Reset()
			r.clip = 15
			So(r.main(ctx, out, path), ShouldBeNil)
			So(out.String(), ShouldEqual, "{ a: [1, 2], ... }\n")
		})

		Convey(`text`, func() {
			e := writeFile(dir, "e.txt", "hello\n")
			a := writeFile(dir, "a.txt", "help\n")
			r := &textRun{unified: true, chars: true}

			code, err := r.main(ctx, out, e, a)
			So(err, ShouldBeNil)
			So(code, ShouldEqual, exitDifferent)
			So(out.String(), ShouldStartWith, `Expected "help\n" to be "hello\n".`+"\n--- expected\n+++ actual\n")
			So(out.String(), ShouldContainSubstring, "\n-hello\n+help\n")
			So(out.String(), ShouldContainSubstring, "[-")
			So(out.String(), ShouldContainSubstring, "{+")

			out.Reset()
			code, err = r.main(ctx, out, e, e)
			So(err, ShouldBeNil)
			So(code, ShouldEqual, exitEqual)
			So(out.String(), ShouldBeEmpty)
		})
	})
}

func TestColorMode(t *testing.T) {
	t.Parallel()

	Convey(`colorMode`, t, func() {
		var m colorMode
		So(m.Set("always"), ShouldBeNil)
		So(m.enabled(&bytes.Buffer{}), ShouldBeTrue)
		So(m.Set("never"), ShouldBeNil)
		So(m.enabled(os.Stdout), ShouldBeFalse)
		So(m.Set("auto"), ShouldBeNil)
		So(m.enabled(&bytes.Buffer{}), ShouldBeFalse)
		So(m.Set("sometimes"), ShouldNotBeNil)
	})
}
