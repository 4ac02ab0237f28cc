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

	"go.chromium.org/certainty/format"
)

var cmdFormat = &subcommands.Command{
	UsageLine: "format [flags] <file>",
	ShortDesc: "prints a data file as a one-line value",
	LongDesc:  "Decodes a YAML or JSON5 file and prints its value the way differences show it.",
	CommandRun: func() subcommands.CommandRun {
		r := &formatRun{}
		r.Init()
		r.Flags.IntVar(&r.clip, "clip", 0, "Approximate maximum length of the output; 0 means no limit.")
		return r
	},
}

type formatRun struct {
	commonFlags
	clip int
}

func (r *formatRun) Run(a subcommands.Application, args []string, _ subcommands.Env) int {
	if len(args) != 1 {
		return r.argErr(a, "format [flags] <file>")
	}
	return r.done(a, exitEqual, r.main(r.context(), a.GetOut(), args[0]))
}

func (r *formatRun) main(ctx context.Context, out io.Writer, path string) error {
	v, err := load(ctx, path)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, format.Options{Clip: r.clip}.Format(v))
	return err
}
