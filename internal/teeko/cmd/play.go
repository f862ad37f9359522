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
	"os"
	"os/signal"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sandy14795/Intelligent-AI-Teeko-player/pkg/board"
	"github.com/sandy14795/Intelligent-AI-Teeko-player/pkg/engine"
	"github.com/sandy14795/Intelligent-AI-Teeko-player/pkg/match"
	"github.com/sandy14795/Intelligent-AI-Teeko-player/pkg/record"
)

func Play() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a game against the engine on the terminal",
		Args:  cobra.NoArgs,
		Long: heredoc.Doc(`play starts a game between you and the engine. Moves are
			entered as the destination square, like B3, while dropping
			pieces, and as the destination followed by the source, like
			B3C2, while moving them. Columns are lettered A to E and rows
			are numbered 0 to 4.

			Black moves first. Your side is picked randomly unless it is
			set using --piece.`),

		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := settings(cmd)
			if err != nil {
				return err
			}

			pieceStr, _ := cmd.Flags().GetString("piece")
			depth, _ := cmd.Flags().GetInt("depth")
			seed, _ := cmd.Flags().GetInt64("seed")

			if !cmd.Flags().Changed("depth") {
				depth = config.Depth
			}

			rng := newRand(seed)

			human := board.Pieces[rng.Intn(len(board.Pieces))]
			if pieceStr != "" {
				if human, err = board.ParsePiece(pieceStr); err != nil {
					return err
				}
			}

			options := engine.DefaultOptions()
			options.Depth = depth
			options.Rand = rng

			players := [2]match.Player{
				match.NewHumanPlayer("human", os.Stdin, os.Stdout),
				match.NewEnginePlayer("engine", options),
			}

			if human == board.Red {
				players[0], players[1] = players[1], players[0]
			}

			fmt.Printf("You are playing %s.\n", pieceName(human))

			game := match.Game{
				Players: players,
				OnMove: func(piece board.Piece, move board.Move, b board.Board) {
					if piece != human {
						fmt.Printf("%s moved %s\n", pieceName(piece), move)
					}
				},
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			outcome := game.Run(ctx)
			fmt.Println(outcome.Board)
			fmt.Printf("%s {%s}\n", outcome.Result, outcome.Reason)

			if ctx.Err() != nil {
				return nil
			}

			store, err := openStore(cmd, config)
			if err != nil || store == nil {
				return err
			}
			defer store.Close()

			_, err = store.Save(context.Background(), record.Game{
				StartedAt: outcome.StartedAt,
				Black:     players[0].Name(),
				Red:       players[1].Name(),
				Result:    outcome.Result.String(),
				Reason:    outcome.Reason,
				Moves:     outcome.Moves,
			})
			if err != nil {
				return err
			}

			logrus.Trace("game recorded")
			return nil
		},
	}

	cmd.Flags().StringP("piece", "p", "", "Side to play, b or r")
	cmd.Flags().Int("depth", engine.DefaultDepth, "Search depth of the engine")
	cmd.Flags().Int64("seed", 0, "Seed for the engine's randomness")
	cmd.Flags().Bool("no-record", false, "Don't record the game")

	return cmd
}

func pieceName(piece board.Piece) string {
	switch piece {
	case board.Black:
		return "Black"
	case board.Red:
		return "Red"
	default:
		return "Nobody"
	}
}
