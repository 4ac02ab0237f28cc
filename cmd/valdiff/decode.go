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
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	humanize "github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/yosuke-furukawa/json5/encoding/json5"
	"gopkg.in/yaml.v2"

	"go.chromium.org/certainty/internal/logging"
	"go.chromium.org/certainty/value"
)

// readFile reads `path`, logging its size.
func readFile(ctx context.Context, path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	logging.Debugf(ctx, "read %s (%s)", path, humanize.Bytes(uint64(len(data))))
	return data, nil
}

// load reads and decodes the value in `path`.
func load(ctx context.Context, path string) (any, error) {
	data, err := readFile(ctx, path)
	if err != nil {
		return nil, err
	}
	return decode(path, data)
}

// decode parses `data` as YAML if `path` has a .yaml or .yml extension, and
// as JSON5 otherwise.
func decode(path string, data []byte) (any, error) {
	var v any
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &v)
	default:
		err = json5.Unmarshal(data, &v)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "decoding %s", path)
	}
	return normalize(v), nil
}

// normalize converts decoded data to the shapes the comparator understands.
// Every number becomes a float64, so YAML integers compare equal to JSON5
// numbers. Mappings with only string keys become map[string]any records,
// and other mappings become *value.OrderedMap sorted by key.
func normalize(v any) any {
	switch x := v.(type) {
	case map[any]any:
		strKeys := make(map[string]any, len(x))
		for k, v := range x {
			s, ok := k.(string)
			if !ok {
				return orderedMap(x)
			}
			strKeys[s] = normalize(v)
		}
		return strKeys

	case map[string]any:
		ret := make(map[string]any, len(x))
		for k, v := range x {
			ret[k] = normalize(v)
		}
		return ret

	case []any:
		ret := make([]any, len(x))
		for i, v := range x {
			ret[i] = normalize(v)
		}
		return ret

	case int:
		return float64(x)
	case int64:
		return float64(x)
	case uint64:
		return float64(x)
	case float32:
		return float64(x)
	}
	return v
}

func orderedMap(m map[any]any) *value.OrderedMap {
	entries := make([]value.Entry, 0, len(m))
	for k, v := range m {
		entries = append(entries, value.Entry{Key: normalize(k), Value: normalize(v)})
	}
	sort.Slice(entries, func(i, j int) bool {
		return fmt.Sprint(entries[i].Key) < fmt.Sprint(entries[j].Key)
	})
	return value.NewMap(entries...)
}
