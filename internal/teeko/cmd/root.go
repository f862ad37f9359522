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
	"math/rand"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sandy14795/Intelligent-AI-Teeko-player/pkg/common"
	"github.com/sandy14795/Intelligent-AI-Teeko-player/pkg/record"
)

// Version is teeko's version, set at build time.
var Version = "v0.1.0"

func Root() *cobra.Command {
	root := &cobra.Command{
		Use:  "teeko",
		Args: cobra.NoArgs,

		Short: "A Teeko engine along with tools to play against it",
		Long: heredoc.Doc(`teeko plays the board game Teeko, a game of four in a row
			on a five by five board. Each side first drops its four pieces
			onto the board, and then moves them to adjacent squares until
			one side has four pieces in a line or in a diamond.

			Play against the engine on the terminal or over a websocket,
			watch it play, run it as a TEI engine, or pit engines against
			each other in a match.`),

		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// If --debug flag is provided, set logging level to Debug.
			if cmd.Flag("debug").Changed {
				logrus.SetLevel(logrus.DebugLevel)
			}

			// If --trace flag is provided, set logging level to Trace.
			if cmd.Flag("trace").Changed {
				logrus.SetLevel(logrus.TraceLevel)
			}
		},
	}

	// global flags
	root.PersistentFlags().BoolP("help", "h", false, "Show Help Information")
	root.PersistentFlags().BoolP("version", "v", false, "Show Teeko's Version")
	root.PersistentFlags().BoolP("trace", "t", false, "Show Trace Information")
	root.PersistentFlags().BoolP("debug", "d", false, "Show Debug Information")
	root.PersistentFlags().String("config", common.SettingsFile, "Settings file to use")

	root.SetVersionTemplate(Version + "\n")
	root.Version = Version

	// Register the various commands.
	root.AddCommand(Play())
	root.AddCommand(Demo())
	root.AddCommand(Engine())
	root.AddCommand(Match())
	root.AddCommand(History())
	root.AddCommand(Serve())

	return root
}

// settings loads the settings file named by the --config flag.
func settings(cmd *cobra.Command) (common.Settings, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return common.Settings{}, err
	}

	return common.LoadSettings(path)
}

// openStore opens the game records database unless recording is disabled
// by the settings or the --no-record flag. A nil store is returned when
// games are not to be recorded.
func openStore(cmd *cobra.Command, config common.Settings) (*record.Store, error) {
	if flag := cmd.Flags().Lookup("no-record"); flag != nil && flag.Changed {
		return nil, nil
	}

	if !config.Record {
		return nil, nil
	}

	return record.Open(config.Database)
}

// newRand returns a source of randomness seeded with the given seed, or
// with the current time if the seed is zero.
func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	logrus.Debugf("seed: %d", seed)
	return rand.New(rand.NewSource(seed))
}
