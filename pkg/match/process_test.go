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

package match

import (
	"context"
	"math/rand"
	"os"
	"testing"

	"github.com/sandy14795/Intelligent-AI-Teeko-player/pkg/board"
	"github.com/sandy14795/Intelligent-AI-Teeko-player/pkg/protocol"
)

const helperEnv = "TEEKO_MATCH_HELPER_ENGINE"

// TestMain lets the test binary double as a TEI engine process.
func TestMain(m *testing.M) {
	if os.Getenv(helperEnv) == "1" {
		server := protocol.NewServer(os.Stdin, os.Stdout)
		if err := server.Run(context.Background()); err != nil {
			os.Exit(1)
		}

		os.Exit(0)
	}

	os.Exit(m.Run())
}

func startHelper(t *testing.T) *ProcessPlayer {
	t.Helper()

	player, err := StartProcess(ProcessConfig{
		Name:    "helper",
		Cmd:     os.Args[0],
		Env:     []string{helperEnv + "=1"},
		Options: map[string]string{"Depth": "1"},
	})
	if err != nil {
		t.Fatalf("StartProcess: %v", err)
	}

	t.Cleanup(func() { player.Close() })
	return player
}

func TestProcessPlayerMove(t *testing.T) {
	player := startHelper(t)
	ctx := context.Background()

	if err := player.NewGame(ctx, board.Red); err != nil {
		t.Fatal(err)
	}

	// black threatens to complete the first row
	moves := mustMoves(t, "A0", "A4", "B0", "B4", "C0")
	var b board.Board
	for i, move := range moves {
		b.Apply(move, board.Pieces[i%2])
	}

	move, err := player.Move(ctx, Position{Board: b, Turn: board.Red, Moves: moves})
	if err != nil {
		t.Fatal(err)
	}

	if want := mustMoves(t, "D0")[0]; move != want {
		t.Errorf("Move() = %v; want %v", move, want)
	}
}

func TestProcessPlayerGame(t *testing.T) {
	game := Game{
		Players: [2]Player{
			startHelper(t),
			NewRandomPlayer("random", rand.New(rand.NewSource(3))),
		},
		MaxPlies: 40,
	}

	outcome := game.Run(context.Background())
	var b board.Board
	turn := board.Black
	for i, move := range outcome.Moves {
		if err := b.Legal(move, turn); err != nil {
			t.Fatalf("move %d (%v): %v {%s}", i+1, move, err, outcome.Reason)
		}

		b.Apply(move, turn)
		turn = turn.Other()
	}

	if outcome.Result == Loss && outcome.Winner != board.Red {
		t.Errorf("helper engine lost without red winning: %s", outcome.Reason)
	}
}

func TestStartProcessMissingBinary(t *testing.T) {
	if _, err := StartProcess(ProcessConfig{Name: "missing", Cmd: "/nonexistent/teeko"}); err == nil {
		t.Error("StartProcess with a missing binary succeeded")
	}
}
