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

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ofcodec/ofwire/pkg/ofver"
)

func newVersion() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the supported protocol versions",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, v := range ofver.All {
				fmt.Fprintf(cmd.OutOrStdout(), "OpenFlow %s (wire %#02x)\n", v, uint8(v))
			}
			return nil
		},
	}
}
