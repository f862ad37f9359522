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
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/sandy14795/Intelligent-AI-Teeko-player/pkg/protocol"
)

func Engine() *cobra.Command {
	return &cobra.Command{
		Use:   "engine",
		Short: "Run the engine with the teeko engine interface",
		Args:  cobra.NoArgs,
		Long: heredoc.Doc(`engine reads teeko engine interface (TEI) commands from the
			standard input and writes its responses to the standard
			output, so that it can be driven by a match runner.

			The supported commands are tei, isready, teinewgame,
			setoption, position, go, d, and quit.`),

		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			return protocol.NewServer(os.Stdin, os.Stdout).Run(ctx)
		},
	}
}
