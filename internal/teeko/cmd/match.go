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
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/briandowns/spinner"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sandy14795/Intelligent-AI-Teeko-player/pkg/match"
	"github.com/sandy14795/Intelligent-AI-Teeko-player/pkg/stats"
)

const spinnerCharSet = 31

func Match() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "match config-file",
		Short: "Run a match between two players",
		Args:  cobra.ExactArgs(1),
		Long: heredoc.Doc(`match plays game pairs between the two players described in
			the given yaml config file, and reports their elo difference.
			The players swap sides between the games of a pair.

			A player is either the built-in engine (type engine), a random
			mover (type random), or an external program which speaks the
			teeko engine interface (type process). The match can be
			stopped early with a sequential probability ratio test.

			    event: depth test
			    players:
			      - name: depth-2
			        depth: 2
			      - name: external
			        type: process
			        process:
			          cmd: teeko
			          arg: engine
			        tc: 10+0.1
			    game-pairs: 100
			    concurrency: 4
			    sprt:
			      elo0: 0
			      elo1: 10
			      alpha: 0.05
			      beta: 0.05`),

		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := match.LoadConfig(args[0])
			if err != nil {
				return err
			}

			tour, err := match.NewTournament(config)
			if err != nil {
				return err
			}

			conf, err := settings(cmd)
			if err != nil {
				return err
			}

			store, err := openStore(cmd, conf)
			if err != nil {
				return err
			}

			if store != nil {
				defer store.Close()
				tour.Store = store
			}

			// Show a progress spinner unless the games are being traced.
			if !logrus.IsLevelEnabled(logrus.DebugLevel) {
				s := spinner.New(spinner.CharSets[spinnerCharSet], 100*time.Millisecond)
				s.Suffix = fmt.Sprintf(" 0/%d games", tour.Total())
				tour.OnResult = func(games int, score stats.Score) {
					s.Lock()
					s.Suffix = fmt.Sprintf(
						" %d/%d games (+%d -%d =%d)",
						games, tour.Total(), score.Wins, score.Losses, score.Draws,
					)
					s.Unlock()
				}

				s.Start()
				defer s.Stop()
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			err = tour.Start(ctx)
			tour.Report(os.Stdout)
			if ctx.Err() != nil {
				logrus.Warn("match interrupted")
				return nil
			}

			return err
		},
	}

	cmd.Flags().Bool("no-record", false, "Don't record the games")
	return cmd
}
