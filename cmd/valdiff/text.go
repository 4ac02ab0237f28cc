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

	"go.chromium.org/certainty/render"
)

var cmdText = &subcommands.Command{
	UsageLine: "text [flags] <expected> <actual>",
	ShortDesc: "compares two text files",
	LongDesc: `Compares the contents of two files as strings and prints where they
start to differ. Exits with 0 when the texts are equal and 1 when they differ.`,
	CommandRun: func() subcommands.CommandRun {
		r := &textRun{}
		r.Init()
		r.Flags.BoolVar(&r.unified, "unified", false, "Also print a unified line diff.")
		r.Flags.BoolVar(&r.chars, "chars", false, "Also print a character diff.")
		return r
	},
}

type textRun struct {
	commonFlags
	unified bool
	chars   bool
}

func (r *textRun) Run(a subcommands.Application, args []string, _ subcommands.Env) int {
	if len(args) != 2 {
		return r.argErr(a, "text [flags] <expected> <actual>")
	}
	code, err := r.main(r.context(), a.GetOut(), args[0], args[1])
	return r.done(a, code, err)
}

func (r *textRun) main(ctx context.Context, out io.Writer, expectedPath, actualPath string) (int, error) {
	e, err := readFile(ctx, expectedPath)
	if err != nil {
		return exitError, err
	}
	a, err := readFile(ctx, actualPath)
	if err != nil {
		return exitError, err
	}
	expected, actual := string(e), string(a)

	msgs, err := render.Diff(expected, actual, "", false, 0)
	if err != nil {
		return exitError, err
	}
	if len(msgs) == 0 {
		return exitEqual, nil
	}

	cli := r.cli(out)
	fmt.Fprintln(out, cli.Message(msgs))
	if r.unified {
		diff, err := render.Unified(expected, actual)
		if err != nil {
			return exitError, err
		}
		fmt.Fprintln(out, cli.Diff(diff))
	}
	if r.chars {
		fmt.Fprintln(out, render.Chars(expected, actual, cli.Colorize))
	}
	return exitDifferent, nil
}
