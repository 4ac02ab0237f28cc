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

// Package gologger is a logging.Logger backed by the go-logging library.
package gologger

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	gol "github.com/op/go-logging"

	"go.chromium.org/certainty/internal/logging"
)

// StandardFormat first prints process ID, time, filename, logging level
// and sequence number, all colored. Then the message.
const StandardFormat = `%{color} [P%{pid} %{time:15:04:05.000} %{shortfile} %{level:.4s} %{id:03x}]` +
	`%{color:reset} %{message}`

// PlainFormat is StandardFormat without colors.
const PlainFormat = `[P%{pid} %{time:15:04:05.000} %{shortfile} %{level:.4s} %{id:03x}] %{message}`

// LoggerConfig owns a go-logging logger, configured by this struct's fields.
type LoggerConfig struct {
	// Format is the go-logging format string. Defaults to StandardFormat.
	Format string
	// Out is where messages are written. Defaults to os.Stderr.
	Out io.Writer

	once sync.Once
	impl *goLoggerWrapper
}

// StdConfig writes to stderr in the StandardFormat.
var StdConfig = LoggerConfig{Out: os.Stderr}

// Use installs a Logger writing through this config into `ctx`.
func (lc *LoggerConfig) Use(ctx context.Context) context.Context {
	return logging.SetFactory(ctx, lc.NewLogger)
}

// NewLogger returns a Logger bound to `ctx`, which supplies the level and
// fields. A nil ctx logs everything, without fields.
func (lc *LoggerConfig) NewLogger(ctx context.Context) logging.Logger {
	lc.once.Do(func() {
		lc.impl = &goLoggerWrapper{l: lc.newGoLogger()}
	})
	return &loggerImpl{lc.impl, ctx}
}

func (lc *LoggerConfig) newGoLogger() *gol.Logger {
	format := lc.Format
	if format == "" {
		format = StandardFormat
	}
	out := lc.Out
	if out == nil {
		out = os.Stderr
	}

	l := gol.MustGetLogger("")
	backend := gol.AddModuleLevel(gol.NewBackendFormatter(
		gol.NewLogBackend(out, "", 0),
		gol.MustStringFormatter(format)))
	// Filtering happens in loggerImpl, against the context's level.
	backend.SetLevel(gol.DEBUG, "")
	l.SetBackend(backend)
	return l
}

// goLoggerWrapper serializes use of the go-logging Logger, whose call depth
// is adjusted for each message.
type goLoggerWrapper struct {
	sync.Mutex
	l *gol.Logger
}

type loggerImpl struct {
	*goLoggerWrapper
	ctx context.Context
}

func (li *loggerImpl) Debugf(format string, args ...any) {
	li.LogCall(logging.Debug, 1, format, args)
}

func (li *loggerImpl) Infof(format string, args ...any) {
	li.LogCall(logging.Info, 1, format, args)
}

func (li *loggerImpl) Warningf(format string, args ...any) {
	li.LogCall(logging.Warning, 1, format, args)
}

func (li *loggerImpl) Errorf(format string, args ...any) {
	li.LogCall(logging.Error, 1, format, args)
}

func (li *loggerImpl) LogCall(l logging.Level, calldepth int, format string, args []any) {
	if li.ctx != nil && !logging.IsLogging(li.ctx, l) {
		return
	}

	text := fmt.Sprintf(format, args...)
	if li.ctx != nil {
		if fields := logging.GetFields(li.ctx); len(fields) > 0 {
			text = fmt.Sprintf("%-44s%s", text, fields)
		}
	}

	li.Lock()
	defer li.Unlock()

	// One frame for LogCall itself, plus the caller's wrappers.
	li.l.ExtraCalldepth = 1 + calldepth
	switch l {
	case logging.Debug:
		li.l.Debugf("%s", text)
	case logging.Info:
		li.l.Infof("%s", text)
	case logging.Warning:
		li.l.Warningf("%s", text)
	default:
		li.l.Errorf("%s", text)
	}
}
