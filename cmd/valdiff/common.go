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
	"io"
	"os"

	"github.com/maruel/subcommands"
	"github.com/pkg/errors"
	"golang.org/x/term"

	"go.chromium.org/certainty/internal/logging"
	"go.chromium.org/certainty/internal/logging/gologger"
	"go.chromium.org/certainty/render"
)

// Exit codes.
const (
	exitEqual     = 0
	exitDifferent = 1
	exitError     = 2
)

// colorMode is the value of the -color flag.
type colorMode string

const (
	colorAuto   colorMode = "auto"
	colorAlways colorMode = "always"
	colorNever  colorMode = "never"
)

func (m *colorMode) String() string {
	return string(*m)
}

func (m *colorMode) Set(v string) error {
	switch colorMode(v) {
	case colorAuto, colorAlways, colorNever:
		*m = colorMode(v)
		return nil
	}
	return errors.Errorf("invalid color mode %q, want auto, always or never", v)
}

// enabled decides whether output to `w` is colored. In auto mode, only
// terminals are.
func (m colorMode) enabled(w io.Writer) bool {
	switch m {
	case colorAlways:
		return true
	case colorNever:
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

type commonFlags struct {
	subcommands.CommandRunBase
	logConfig logging.Config
	color     colorMode
}

// Init registers the flags shared by all subcommands.
func (c *commonFlags) Init() {
	c.logConfig.Level = logging.DefaultLevel
	c.logConfig.AddFlags(&c.Flags)
	c.color = colorAuto
	c.Flags.Var(&c.color, "color", "Colorize the output: auto, always or never.")
}

// context returns a context logging to stderr at the -log-level.
func (c *commonFlags) context() context.Context {
	return c.logConfig.Set(gologger.StdConfig.Use(context.Background()))
}

func (c *commonFlags) cli(w io.Writer) render.CLI {
	return render.CLI{Colorize: c.color.enabled(w)}
}

// done reports `err`, if any, and returns the exit code.
func (c *commonFlags) done(a subcommands.Application, code int, err error) int {
	if err != nil {
		fmt.Fprintf(a.GetErr(), "%s: %s\n", a.GetName(), err)
		return exitError
	}
	return code
}

func (c *commonFlags) argErr(a subcommands.Application, usage string) int {
	fmt.Fprintf(a.GetErr(), "%s: usage: %s %s\n", a.GetName(), a.GetName(), usage)
	return exitError
}
