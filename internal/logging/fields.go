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

package logging

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ErrorKey is the Fields key for an error.
const ErrorKey = "error"

// Fields are key/value pairs attached to every message logged through
// a context.
type Fields map[string]any

// Copy returns a copy of `f` with `other` merged on top.
func (f Fields) Copy(other Fields) Fields {
	ret := make(Fields, len(f)+len(other))
	for k, v := range f {
		ret[k] = v
	}
	for k, v := range other {
		ret[k] = v
	}
	return ret
}

// SortedEntries returns the keys of `f` in sorted order.
func (f Fields) SortedEntries() []string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// String renders the fields as `{"k1":"v1", "k2":"v2"}`, keys sorted.
func (f Fields) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, k := range f.SortedEntries() {
		if i > 0 {
			sb.WriteString(", ")
		}
		v := f[k]
		if err, ok := v.(error); ok {
			v = err.Error()
		}
		sb.WriteString(strconv.Quote(k))
		sb.WriteByte(':')
		sb.WriteString(strconv.Quote(fmt.Sprint(v)))
	}
	sb.WriteByte('}')
	return sb.String()
}

// Debugf logs through `ctx` with these fields added.
func (f Fields) Debugf(ctx context.Context, format string, args ...any) {
	Get(SetFields(ctx, f)).LogCall(Debug, 1, format, args)
}

// Infof logs through `ctx` with these fields added.
func (f Fields) Infof(ctx context.Context, format string, args ...any) {
	Get(SetFields(ctx, f)).LogCall(Info, 1, format, args)
}

// SetFields returns a context with `fields` merged over its current fields.
func SetFields(ctx context.Context, fields Fields) context.Context {
	return context.WithValue(ctx, fieldsKey, GetFields(ctx).Copy(fields))
}

// SetField is SetFields with a single field.
func SetField(ctx context.Context, key string, value any) context.Context {
	return SetFields(ctx, Fields{key: value})
}

// GetFields returns the fields of `ctx`. The result must not be modified.
func GetFields(ctx context.Context) Fields {
	f, _ := ctx.Value(fieldsKey).(Fields)
	return f
}
