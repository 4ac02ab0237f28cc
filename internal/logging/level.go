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
	"flag"

	"github.com/pkg/errors"
)

// Level is a logging level. Higher levels are more severe.
type Level int

// The logging levels.
const (
	Debug Level = iota
	Info
	Warning
	Error
)

// DefaultLevel is the level of a context without an explicit one.
const DefaultLevel = Info

var _ flag.Value = (*Level)(nil)

func (l Level) String() string {
	switch l {
	case Debug:
		return "debug"
	case Info:
		return "info"
	case Warning:
		return "warning"
	case Error:
		return "error"
	}
	return "unknown"
}

// Set implements flag.Value.
func (l *Level) Set(v string) error {
	for _, lvl := range []Level{Debug, Info, Warning, Error} {
		if v == lvl.String() {
			*l = lvl
			return nil
		}
	}
	return errors.Errorf("unknown logging level %q", v)
}

// SetLevel returns a context which logs at `l` and above.
func SetLevel(ctx context.Context, l Level) context.Context {
	return context.WithValue(ctx, levelKey, l)
}

// GetLevel returns the level of `ctx`.
func GetLevel(ctx context.Context) Level {
	if l, ok := ctx.Value(levelKey).(Level); ok {
		return l
	}
	return DefaultLevel
}

// IsLogging reports whether `ctx` logs messages of level `l`.
func IsLogging(ctx context.Context, l Level) bool {
	return l >= GetLevel(ctx)
}
