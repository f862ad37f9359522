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
	"strings"

	"github.com/spf13/cobra"

	"github.com/sandy14795/Intelligent-AI-Teeko-player/pkg/record"
)

func History() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Lists the recorded games",
		Args:  cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := settings(cmd)
			if err != nil {
				return err
			}

			limit, _ := cmd.Flags().GetInt("limit")
			moves, _ := cmd.Flags().GetBool("moves")

			store, err := record.Open(config.Database)
			if err != nil {
				return err
			}
			defer store.Close()

			games, err := store.List(context.Background(), limit)
			if err != nil {
				return err
			}

			if len(games) == 0 {
				fmt.Println("\x1b[31mNo Games Recorded.\x1b[0m")
				return nil
			}

			for _, game := range games {
				fmt.Printf(
					"\x1b[34m#%-4d\x1b[0m %s  %-10s vs %-10s  \x1b[33m%-7s\x1b[0m %s\n",
					game.ID, game.StartedAt.Format("2006-01-02 15:04"),
					game.Black, game.Red, game.Result, game.Reason,
				)

				if moves {
					strs := make([]string, len(game.Moves))
					for i, move := range game.Moves {
						strs[i] = move.String()
					}

					fmt.Printf("      %s\n", strings.Join(strs, " "))
				}
			}

			return nil
		},
	}

	cmd.Flags().IntP("limit", "n", 20, "Number of games to list, 0 for all")
	cmd.Flags().BoolP("moves", "m", false, "Show the moves of the games")

	return cmd
}
