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

// Package format renders arbitrary values as short, type-aware strings for
// use in assertion failure messages.
//
// Strings are quoted and escaped, arrays, sets and maps are bracketed, and
// record keys are sorted. Output may be clipped to a soft length budget.
//
// Cyclic values are not supported: formatting one recurses without bound.
package format

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"go.chromium.org/certainty/value"
)

// Options controls how values are rendered.
type Options struct {
	// Clip is a soft budget, in characters, for the rendered value.
	//
	// Strings longer than Clip are cut to Clip-3 characters and suffixed with
	// "...". Arrays, maps, sets and records stop emitting elements once the
	// running length exceeds Clip, and end with ", ...". The result may
	// therefore exceed Clip by the length of the last element.
	//
	// Zero disables clipping.
	Clip int
}

// Value renders `v` without clipping.
func Value(v any) string {
	return Options{}.Format(v)
}

// Clip renders `v` with a soft length budget of `clip` characters.
func Clip(v any, clip int) string {
	return Options{Clip: clip}.Format(v)
}

// Format renders `v` according to the options.
func (o Options) Format(v any) string {
	return o.Reflect(reflect.ValueOf(v))
}

// Reflect is like Format, but takes a reflect.Value. The invalid Value
// renders as "null".
func (o Options) Reflect(rv reflect.Value) string {
	kind, nv := value.Inspect(rv)
	switch kind {
	case value.String:
		return o.str(nv.String())

	case value.Array:
		return o.seq(nv.Len(), func(i int) string { return inner.Reflect(nv.Index(i)) })

	case value.Promise:
		return "[Promise]"

	case value.Map:
		pairs := value.Pairs(nv)
		return "Map(" + o.seq(len(pairs), func(i int) string {
			return "[" + inner.Reflect(pairs[i].Key) + ", " + inner.Reflect(pairs[i].Value) + "]"
		}) + ")"

	case value.Set:
		members := value.Members(nv)
		return "Set(" + o.seq(len(members), func(i int) string { return inner.Reflect(members[i]) }) + ")"

	case value.RegExp:
		return "/" + nv.Interface().(fmt.Stringer).String() + "/"

	case value.Date:
		return nv.Interface().(time.Time).Format(time.RFC3339Nano)

	case value.Record:
		if s, ok := customText(rv); ok {
			return s
		}
		return o.record(nv)

	case value.KindUndefined:
		return "undefined"

	case value.Null:
		return "null"

	case value.Unsupported:
		if nv.Kind() == reflect.Func {
			return "[" + nv.Type().String() + "]"
		}
	}
	return fmt.Sprint(value.Interface(nv))
}

// inner is used for the elements of composite values; only the outermost
// call enforces the budget.
var inner = Options{}

func (o Options) str(s string) string {
	esc := Escape(s)
	if o.Clip > 0 && utf8.RuneCountInString(esc) > o.Clip {
		esc = string([]rune(esc)[:max(0, o.Clip-3)]) + "..."
	}
	return `"` + esc + `"`
}

// seq renders a bracketed list of n items.
func (o Options) seq(n int, item func(int) string) string {
	var sb strings.Builder
	sb.WriteByte('[')
	length := 2
	for i := 0; i < n; i++ {
		sep := ""
		if i > 0 {
			sep = ", "
		}
		s := item(i)
		length += len(sep) + utf8.RuneCountInString(s)
		if o.Clip > 0 && o.Clip < length {
			if i > 0 {
				sb.WriteString(", ...")
			} else {
				sb.WriteString("...")
			}
			break
		}
		sb.WriteString(sep)
		sb.WriteString(s)
	}
	sb.WriteByte(']')
	return sb.String()
}

func (o Options) record(rv reflect.Value) string {
	fields := value.Fields(rv)
	if len(fields) == 0 {
		return "{}"
	}
	var sb strings.Builder
	sb.WriteByte('{')
	length := 4
	for i, f := range fields {
		sep := " "
		if i > 0 {
			sep = ", "
		}
		s := inner.Reflect(f.Value)
		length += len(sep) + utf8.RuneCountInString(f.Name) + 2 + utf8.RuneCountInString(s)
		if o.Clip > 0 && o.Clip < length {
			sb.WriteString(", ...")
			break
		}
		sb.WriteString(sep)
		sb.WriteString(f.Name)
		sb.WriteString(": ")
		sb.WriteString(s)
	}
	sb.WriteString(" }")
	return sb.String()
}

// customText returns the text of a record which describes itself, via
// error or fmt.Stringer, checking at each level of pointer indirection.
func customText(rv reflect.Value) (string, bool) {
	for rv.IsValid() {
		if rv.CanInterface() {
			switch x := rv.Interface().(type) {
			case error:
				return x.Error(), true
			case fmt.Stringer:
				return x.String(), true
			}
		}
		if k := rv.Kind(); (k != reflect.Pointer && k != reflect.Interface) || rv.IsNil() {
			break
		}
		rv = rv.Elem()
	}
	return "", false
}

// Escape replaces the control characters U+0000 to U+001F in `s` with
// backslash escapes: the usual named escape where there is one, and an octal
// escape otherwise.
func Escape(s string) string {
	if !strings.ContainsFunc(s, isControl) {
		return s
	}
	var sb strings.Builder
	for _, r := range s {
		if !isControl(r) {
			sb.WriteRune(r)
			continue
		}
		switch r {
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		case '\b':
			sb.WriteString(`\b`)
		case '\v':
			sb.WriteString(`\v`)
		case '\f':
			sb.WriteString(`\f`)
		default:
			sb.WriteByte('\\')
			sb.WriteString(strconv.FormatInt(int64(r), 8))
		}
	}
	return sb.String()
}

func isControl(r rune) bool {
	return r < 0x20
}
