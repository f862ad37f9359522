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
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/sandy14795/Intelligent-AI-Teeko-player/pkg/engine"
	"github.com/sandy14795/Intelligent-AI-Teeko-player/pkg/server"
)

func Serve() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve games against the engine over websockets",
		Args:  cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := settings(cmd)
			if err != nil {
				return err
			}

			addr, _ := cmd.Flags().GetString("addr")
			if !cmd.Flags().Changed("addr") {
				addr = config.Addr
			}

			depth, _ := cmd.Flags().GetInt("depth")
			if !cmd.Flags().Changed("depth") {
				depth = config.Depth
			}

			options := engine.DefaultOptions()
			options.Depth = depth

			srv := server.New(options)

			store, err := openStore(cmd, config)
			if err != nil {
				return err
			}

			if store != nil {
				defer store.Close()
				srv.Store = store
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			return srv.ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().String("addr", ":8080", "Address to listen on")
	cmd.Flags().Int("depth", engine.DefaultDepth, "Search depth of the engines")
	cmd.Flags().Bool("no-record", false, "Don't record the games")

	return cmd
}
