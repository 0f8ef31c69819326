/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package main

import (
	"fmt"

	"dirpx.dev/dxstate/dxcore/codec"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// entry is one state value as printed by inspect.
type entry struct {
	Type  string `yaml:"type"`
	Value any    `yaml:"value"`
}

func newInspectCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [file]",
		Short: "Print a state file as YAML with each value's Go type",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := e.cfg.StateFile
			if len(args) == 1 {
				path = args[0]
			}

			state, err := readState(e.codec, path)
			if err != nil {
				return err
			}

			out := make(map[string]entry, len(state))
			for k, v := range state {
				out[k] = entry{Type: fmt.Sprintf("%T", v), Value: v}
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(out); err != nil {
				return err
			}
			return enc.Close()
		},
	}
}

func newTypesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List the registered type discriminators",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reg := codec.Default()
			for _, disc := range reg.Discriminators() {
				d, _ := reg.Resolve(disc)
				fmt.Fprintf(cmd.OutOrStdout(), "%-22s %s\n", disc, d.Kind())
			}
			return nil
		},
	}
}
