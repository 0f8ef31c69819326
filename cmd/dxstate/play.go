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

	"dirpx.dev/dxstate/dxcore/model"
	"dirpx.dev/dxstate/dxcore/model/highlow"
	"github.com/spf13/cobra"
)

func newPlayCmd(e *env) *cobra.Command {
	var (
		declare string
		restart bool
		dump    string
	)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Advance the game by one turn, starting it if needed",
		Long: "play restores the game from the state file, advances it by one\n" +
			"request and writes it back. A new game is dealt when none is running\n" +
			"or --new is given. --dump prints the whole game, enemy card included,\n" +
			"as yaml or json after the turn.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			decl, err := highlow.ParseDeclaration(declare)
			if err != nil {
				return err
			}
			if dump != "" && dump != "yaml" && dump != "json" {
				return fmt.Errorf("invalid --dump format %q: want yaml or json", dump)
			}

			state, err := readState(e.codec, e.cfg.StateFile)
			if err != nil {
				return err
			}
			g, err := highlow.FromState(state)
			if err != nil {
				return err
			}

			if restart || !g.Started() || g.Ended() {
				g = highlow.Start(newRand(e.cfg.Seed))
				e.logger.Info("game started", "player_is_parent", g.PlayerIsParent())
			} else if err := g.NextTurn(decl); err != nil {
				return err
			}

			if err := writeState(e.codec, e.cfg.StateFile, g.State()); err != nil {
				return err
			}
			e.logger.Debug("state written", "path", e.cfg.StateFile, "game", model.SafeString(g, false))

			printGame(cmd, g)
			return dumpGame(cmd, g, dump)
		},
	}

	f := cmd.Flags()
	f.StringVar(&declare, "declare", "high", "your declaration when you are not the parent: high or low")
	f.BoolVar(&restart, "new", false, "deal a new game even if one is running")
	f.StringVar(&dump, "dump", "", "also print the game as yaml or json")
	return cmd
}

func printGame(cmd *cobra.Command, g *highlow.Game) {
	out := cmd.OutOrStdout()
	player, enemy := g.Scores()

	if result, ok := g.Result(); ok {
		fmt.Fprintf(out, "Game over: %s (%d-%d)\n", result, player, enemy)
		return
	}

	enemyCard := "??"
	if g.ShowResult() {
		enemyCard = g.EnemyCard().String()
	}
	fmt.Fprintf(out, "You:   %s %c\n", g.PlayerCard(), g.PlayerCard().Glyph())
	fmt.Fprintf(out, "Enemy: %s\n", enemyCard)

	if g.ShowResult() {
		outcome, _ := g.Judgment()
		if decl, ok := g.EnemyDeclaration(); ok {
			fmt.Fprintf(out, "Enemy declared %s: %s\n", decl, outcome)
		} else {
			fmt.Fprintf(out, "You declared: %s\n", outcome)
		}
	} else if !g.PlayerIsParent() {
		fmt.Fprintln(out, "Declare high or low.")
	} else {
		fmt.Fprintln(out, "The enemy has declared.")
	}

	fmt.Fprintf(out, "Score: %d-%d, %d rounds left\n", player, enemy, len(g.PlayerHand()))
}

func dumpGame(cmd *cobra.Command, g *highlow.Game, format string) error {
	var (
		data []byte
		err  error
	)
	switch format {
	case "":
		return nil
	case "json":
		data, err = model.ToJSON(g)
	default:
		data, err = model.ToYAML(g)
	}
	if err != nil {
		return err
	}
	if format == "json" {
		data = append(data, '\n')
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
