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
	"errors"
	"math/rand"
	"time"

	"github.com/sandy14795/Intelligent-AI-Teeko-player/pkg/board"
	"github.com/sandy14795/Intelligent-AI-Teeko-player/pkg/engine"
)

// Position is the state of a game handed to the player whose turn it is.
type Position struct {
	Board board.Board
	Turn  board.Piece

	// Moves are all the moves played since the empty board.
	Moves []board.Move

	// Clock holds the remaining time of Black and Red, in that order.
	Clock [2]TimeControl
}

// Player is a participant in a game of teeko.
type Player interface {
	// Name returns the name the player is identified by.
	Name() string

	// NewGame prepares the player for a new game in which it plays the
	// given side.
	NewGame(ctx context.Context, piece board.Piece) error

	// Move returns the player's move in the given position.
	Move(ctx context.Context, position Position) (board.Move, error)

	// Close releases the player's resources.
	Close() error
}

// ErrNullMove is returned when a player passes instead of moving.
var ErrNullMove = errors.New("player returned a null move")

// NewEnginePlayer creates a Player which is backed by an in-process engine
// configured with the given options.
func NewEnginePlayer(name string, options engine.Options) *EnginePlayer {
	return &EnginePlayer{name: name, options: options}
}

// EnginePlayer is a Player backed by an in-process engine.
type EnginePlayer struct {
	name    string
	options engine.Options
	engine  *engine.Engine
}

var _ Player = (*EnginePlayer)(nil)

func (player *EnginePlayer) Name() string {
	return player.name
}

func (player *EnginePlayer) NewGame(ctx context.Context, piece board.Piece) error {
	options := player.options
	options.Piece = piece
	player.engine = engine.New(options)
	return nil
}

// Move keeps the engine's board in step with the game. The last move of
// the position is handed to the engine as its opponent's move when that
// reproduces the position, otherwise the engine is resynchronized with the
// position, as happens after an opening.
func (player *EnginePlayer) Move(ctx context.Context, position Position) (board.Move, error) {
	if player.engine == nil {
		return board.Move{}, errors.New("engine player: game not started")
	}

	synced := false
	if n := len(position.Moves); n > 0 {
		expected := player.engine.Board()
		last := position.Moves[n-1]
		if expected.Legal(last, player.engine.Opponent()) == nil {
			expected.Apply(last, player.engine.Opponent())
			if expected == position.Board {
				synced = player.engine.ReceiveOpponentMove(last) == nil
			}
		}
	} else {
		synced = player.engine.Board() == position.Board
	}

	if !synced {
		player.engine.SetPosition(position.Board)
	}

	return player.engine.MakeMove(ctx)
}

func (player *EnginePlayer) Close() error {
	return nil
}

// NewRandomPlayer creates a Player which plays uniformly random legal moves.
func NewRandomPlayer(name string, rng *rand.Rand) *RandomPlayer {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &RandomPlayer{name: name, rng: rng}
}

// RandomPlayer is a Player which picks a random legal move.
type RandomPlayer struct {
	name  string
	piece board.Piece
	rng   *rand.Rand
}

var _ Player = (*RandomPlayer)(nil)

func (player *RandomPlayer) Name() string {
	return player.name
}

func (player *RandomPlayer) NewGame(ctx context.Context, piece board.Piece) error {
	player.piece = piece
	return nil
}

func (player *RandomPlayer) Move(ctx context.Context, position Position) (board.Move, error) {
	moves := position.Board.LegalMoves(position.Turn, position.Board.DropPhase())
	if len(moves) == 0 {
		return board.Move{}, engine.ErrNoMoves
	}

	return moves[player.rng.Intn(len(moves))], nil
}

func (player *RandomPlayer) Close() error {
	return nil
}
