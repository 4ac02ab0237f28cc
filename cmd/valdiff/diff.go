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

	"github.com/maruel/subcommands"

	"go.chromium.org/certainty/internal/logging"
	"go.chromium.org/certainty/render"
)

var cmdDiff = &subcommands.Command{
	UsageLine: "diff [flags] <expected> <actual>",
	ShortDesc: "compares two data files structurally",
	LongDesc: `Decodes two data files and prints where their values differ.

Files ending in .yaml or .yml are decoded as YAML, all others as JSON5.
Exits with 0 when the values are equal and 1 when they differ.`,
	CommandRun: func() subcommands.CommandRun {
		r := &diffRun{}
		r.Init()
		r.Flags.BoolVar(&r.shallow, "shallow", false, "Compare objects by identity only, without walking them.")
		r.Flags.StringVar(&r.path, "path", "", "Name of the compared value, used as the root of paths.")
		r.Flags.IntVar(&r.maxShown, "max", 0, "Show at most this many differences; 0 shows all.")
		return r
	},
}

type diffRun struct {
	commonFlags
	shallow  bool
	path     string
	maxShown int
}

func (r *diffRun) Run(a subcommands.Application, args []string, _ subcommands.Env) int {
	if len(args) != 2 {
		return r.argErr(a, "diff [flags] <expected> <actual>")
	}
	code, err := r.main(r.context(), a.GetOut(), args[0], args[1])
	return r.done(a, code, err)
}

func (r *diffRun) main(ctx context.Context, out io.Writer, expectedPath, actualPath string) (int, error) {
	expected, err := load(ctx, expectedPath)
	if err != nil {
		return exitError, err
	}
	actual, err := load(ctx, actualPath)
	if err != nil {
		return exitError, err
	}

	msgs, err := render.Diff(expected, actual, r.path, !r.shallow, r.maxShown)
	if err != nil {
		return exitError, err
	}
	logging.Fields{"differences": len(msgs)}.Debugf(ctx, "compared %s with %s", expectedPath, actualPath)
	if len(msgs) == 0 {
		return exitEqual, nil
	}
	fmt.Fprintln(out, r.cli(out).Message(msgs))
	return exitDifferent, nil
}
