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
	"log/slog"

	"dirpx.dev/dxstate/dxcore/codec"
	"github.com/spf13/cobra"
)

// env is what every subcommand runs with once flags and config are
// resolved.
type env struct {
	cfg    Config
	logger *slog.Logger
	codec  codec.StateCodec
}

func newRootCmd() *cobra.Command {
	var flags configFlags
	e := &env{}

	root := &cobra.Command{
		Use:          "dxstate",
		Short:        "Play High & Low against persisted state",
		Long:         "dxstate keeps a High & Low game in a state file between runs and\ninspects state files written by the dxstate codec.",
		Version:      version,
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := flags.resolve(cmd.Flags())
			if err != nil {
				return err
			}
			logger, err := newLogger(cfg.LogLevel, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			e.cfg = cfg
			e.logger = logger
			e.codec = newCodec(cfg, logger)
			logger.Debug("config resolved", "state_file", cfg.StateFile, "compress", cfg.Compress, "seed", cfg.Seed)
			return nil
		},
	}
	flags.register(root.PersistentFlags())

	root.AddCommand(newPlayCmd(e))
	root.AddCommand(newInspectCmd(e))
	root.AddCommand(newTypesCmd())
	return root
}
