// Copyright 2026 The ofwire Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command ofwire is a debugging companion for the ofwire codec library. It
// inspects files of framed OpenFlow messages without decoding message
// bodies.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ofcodec/ofwire/pkg/log"
)

type rootFlags struct {
	logLevel string
}

func (f *rootFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.logLevel, "log.level", "info",
		"Console logging level (debug|info|error)")
}

func main() {
	var flags rootFlags

	cmd := &cobra.Command{
		Use:           "ofwire",
		Short:         "OpenFlow wire format tool",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return log.Setup(log.Config{Level: flags.logLevel, Console: true})
		},
	}
	flags.register(cmd.PersistentFlags())

	cmd.AddCommand(
		newInspect(),
		newVersion(),
	)

	err := cmd.Execute()
	// Flush before the exit path; deferred calls do not survive os.Exit.
	_ = log.Flush()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
