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

// Command valdiff compares data files structurally.
//
// Usage:
//
//	valdiff diff [-shallow] [-path name] [-max n] expected.yaml actual.json5
//	valdiff format [-clip n] value.yaml
//	valdiff text [-unified] [-chars] expected.txt actual.txt
//
// Exit codes: 0 when the inputs are equal, 1 when they differ, 2 on errors.
package main

import (
	"os"

	"github.com/maruel/subcommands"
)

var application = &subcommands.DefaultApplication{
	Name:  "valdiff",
	Title: "Structural diff of YAML and JSON5 values.",
	// Keep in alphabetical order of their name.
	Commands: []*subcommands.Command{
		cmdDiff,
		cmdFormat,
		subcommands.CmdHelp,
		cmdText,
	},
}

func main() {
	os.Exit(subcommands.Run(application, nil))
}
