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

// Package logging defines a context-scoped logging interface.
//
// A Logger is installed into a context.Context with SetFactory (backends
// usually offer a Use helper), and retrieved with Get. The package-level
// Debugf, Infof, Warningf and Errorf helpers log through the context's
// Logger, honoring the context's Level and attaching its Fields.
//
// A context without a Logger discards everything.
package logging

import (
	"context"
)

// Logger is the interface of a logging backend.
type Logger interface {
	// Debugf logs a formatted Debug-level message.
	Debugf(format string, args ...any)
	// Infof logs a formatted Info-level message.
	Infof(format string, args ...any)
	// Warningf logs a formatted Warning-level message.
	Warningf(format string, args ...any)
	// Errorf logs a formatted Error-level message.
	Errorf(format string, args ...any)

	// LogCall is a generic logging function. This is oriented more towards
	// utility functions than direct end-user usage.
	//
	// `calldepth` is the number of stack frames between the caller of the
	// logging helper and LogCall, used by backends which report the call
	// site.
	LogCall(l Level, calldepth int, format string, args []any)
}

// Factory returns a Logger bound to `ctx`.
type Factory func(ctx context.Context) Logger

type key int

const (
	factoryKey key = iota
	levelKey
	fieldsKey
)

// SetFactory returns a context which produces its Logger through `f`.
func SetFactory(ctx context.Context, f Factory) context.Context {
	return context.WithValue(ctx, factoryKey, f)
}

// GetFactory returns the Factory installed in `ctx`, or nil.
func GetFactory(ctx context.Context) Factory {
	f, _ := ctx.Value(factoryKey).(Factory)
	return f
}

// Get returns the Logger of `ctx`. It never returns nil.
func Get(ctx context.Context) Logger {
	if f := GetFactory(ctx); f != nil {
		if l := f(ctx); l != nil {
			return l
		}
	}
	return Null
}

// Null is a Logger which discards everything.
var Null Logger = nullLogger{}

type nullLogger struct{}

func (nullLogger) Debugf(string, ...any)             {}
func (nullLogger) Infof(string, ...any)              {}
func (nullLogger) Warningf(string, ...any)           {}
func (nullLogger) Errorf(string, ...any)             {}
func (nullLogger) LogCall(Level, int, string, []any) {}

// The helpers below log through the Logger of `ctx`. Backends filter by
// the context's level, see IsLogging.

func Debugf(ctx context.Context, format string, args ...any) {
	Get(ctx).LogCall(Debug, 1, format, args)
}

func Infof(ctx context.Context, format string, args ...any) {
	Get(ctx).LogCall(Info, 1, format, args)
}

func Warningf(ctx context.Context, format string, args ...any) {
	Get(ctx).LogCall(Warning, 1, format, args)
}

func Errorf(ctx context.Context, format string, args ...any) {
	Get(ctx).LogCall(Error, 1, format, args)
}

// Logf logs at a level chosen at run time.
func Logf(ctx context.Context, l Level, format string, args ...any) {
	Get(ctx).LogCall(l, 1, format, args)
}
