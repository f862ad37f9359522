// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sandy14795/Intelligent-AI-Teeko-player/pkg/board"
	"github.com/sandy14795/Intelligent-AI-Teeko-player/pkg/engine"
	"github.com/sandy14795/Intelligent-AI-Teeko-player/pkg/match"
	"github.com/sandy14795/Intelligent-AI-Teeko-player/pkg/record"
)

func Demo() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Watch the engine play against a random opponent",
		Args:  cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := settings(cmd)
			if err != nil {
				return err
			}

			games, _ := cmd.Flags().GetInt("games")
			depth, _ := cmd.Flags().GetInt("depth")
			seed, _ := cmd.Flags().GetInt64("seed")
			quiet, _ := cmd.Flags().GetBool("quiet")

			if !cmd.Flags().Changed("depth") {
				depth = config.Depth
			}

			store, err := openStore(cmd, config)
			if err != nil {
				return err
			}

			if store != nil {
				defer store.Close()
			}

			rng := newRand(seed)
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			var engineWins, randomWins, draws int
			for i := 0; i < games; i++ {
				options := engine.DefaultOptions()
				options.Depth = depth
				options.Rand = rng

				// The engine picks its side, as in a fresh game.
				ai := engine.New(options)
				options.Piece = ai.Piece()

				players := [2]match.Player{
					match.NewEnginePlayer("engine", options),
					match.NewRandomPlayer("random", rng),
				}

				if ai.Piece() == board.Red {
					players[0], players[1] = players[1], players[0]
				}

				game := match.Game{
					Players: players,
					OnMove: func(piece board.Piece, move board.Move, b board.Board) {
						if quiet {
							return
						}

						fmt.Printf("%s moved %s\n%s\n\n", pieceName(piece), move, b)
					},
				}

				outcome := game.Run(ctx)
				switch outcome.Winner {
				case ai.Piece():
					engineWins++
				case board.Empty:
					draws++
				default:
					randomWins++
				}

				fmt.Printf("Game %d: %s {%s}\n", i+1, outcome.Result, outcome.Reason)

				if store != nil {
					if _, err := store.Save(ctx, record.Game{
						StartedAt: outcome.StartedAt,
						Black:     players[0].Name(),
						Red:       players[1].Name(),
						Result:    outcome.Result.String(),
						Reason:    outcome.Reason,
						Moves:     outcome.Moves,
					}); err != nil {
						return err
					}
				}
			}

			fmt.Printf("Engine %d, Random %d, Draws %d\n", engineWins, randomWins, draws)
			return nil
		},
	}

	cmd.Flags().IntP("games", "n", 1, "Number of games to play")
	cmd.Flags().Int("depth", engine.DefaultDepth, "Search depth of the engine")
	cmd.Flags().Int64("seed", 0, "Seed for the players' randomness")
	cmd.Flags().BoolP("quiet", "q", false, "Only print the results")
	cmd.Flags().Bool("no-record", false, "Don't record the games")

	return cmd
}
