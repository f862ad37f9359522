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
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/sandy14795/Intelligent-AI-Teeko-player/pkg/board"
)

// DefaultMaxPlies is the number of plies after which a game is drawn.
const DefaultMaxPlies = 200

// Game is a single game of teeko between two players.
type Game struct {
	// Players are the Black and the Red player, in that order.
	Players [2]Player

	// Opening is played before the players take over.
	Opening []board.Move

	// TimeControls of the Black and the Red player, in that order.
	TimeControls [2]TimeControl

	// MaxPlies is the number of plies after which the game is drawn. It
	// defaults to DefaultMaxPlies.
	MaxPlies int

	// OnMove, if not nil, is called after every move played by a player.
	OnMove func(piece board.Piece, move board.Move, b board.Board)
}

// Outcome is the end state of a Game.
type Outcome struct {
	Result Result
	Reason string

	Winner  board.Piece
	Pattern board.Pattern

	Board board.Board
	Moves []board.Move

	StartedAt time.Time
}

func playerIndex(piece board.Piece) int {
	if piece == board.Black {
		return 0
	}

	return 1
}

// Run plays the game to its end. Every move is refereed: a player whose
// move is illegal, who runs out of time, or who fails to produce a move
// loses the game.
func (game *Game) Run(ctx context.Context) Outcome {
	outcome := Outcome{StartedAt: time.Now()}

	lose := func(piece board.Piece, format string, a ...any) Outcome {
		outcome.Result = GameLostBy[playerIndex(piece)]
		outcome.Winner = piece.Other()
		outcome.Reason = fmt.Sprintf(format, a...)
		return outcome
	}

	draw := func(reason string) Outcome {
		outcome.Result = Draw
		outcome.Reason = reason
		return outcome
	}

	for i, piece := range board.Pieces {
		if err := game.Players[i].NewGame(ctx, piece); err != nil {
			return lose(piece, "%s failed to start: %v", game.Players[i].Name(), err)
		}
	}

	maxPlies := game.MaxPlies
	if maxPlies <= 0 {
		maxPlies = DefaultMaxPlies
	}

	turn := board.Black
	for _, move := range game.Opening {
		if err := outcome.Board.Legal(move, turn); err != nil {
			return draw(fmt.Sprintf("invalid opening: %v", err))
		}

		outcome.Board.Apply(move, turn)
		outcome.Moves = append(outcome.Moves, move)
		turn = turn.Other()
	}

	if winner, _ := outcome.Board.Winner(); winner != board.Empty {
		return draw("opening is already decided")
	}

	clock := game.TimeControls
	played := [2]int{}

	for len(outcome.Moves) < maxPlies {
		index := playerIndex(turn)
		player := game.Players[index]

		if len(outcome.Board.LegalMoves(turn, outcome.Board.DropPhase())) == 0 {
			return draw(fmt.Sprintf("%s has no legal moves", player.Name()))
		}

		moveCtx, cancel := ctx, context.CancelFunc(func() {})
		if !clock[index].Unlimited() {
			moveCtx, cancel = context.WithTimeout(ctx, clock[index].Base)
		}

		startTime := time.Now()
		move, err := player.Move(moveCtx, Position{
			Board: outcome.Board,
			Turn:  turn,
			Moves: append([]board.Move(nil), outcome.Moves...),
			Clock: clock,
		})
		timeSpent := time.Since(startTime)
		cancel()

		if ctx.Err() != nil {
			return draw("game aborted")
		}

		if !clock[index].Unlimited() {
			if timeSpent > clock[index].Base || errors.Is(err, context.DeadlineExceeded) {
				return lose(turn, "%s loses on time", player.Name())
			}

			clock[index].Base -= timeSpent
			clock[index].Base += clock[index].Inc

			played[index]++
			if tc := game.TimeControls[index]; tc.MovesToGo > 0 && played[index]%tc.MovesToGo == 0 {
				clock[index].Base += tc.Base
			}
		}

		if err != nil {
			return lose(turn, "%s failed to move: %v", player.Name(), err)
		}

		if err := outcome.Board.Legal(move, turn); err != nil {
			return lose(turn, "%s played an %v", player.Name(), err)
		}

		logrus.WithFields(logrus.Fields{
			"player": player.Name(),
			"piece":  turn,
			"move":   move,
		}).Trace("move played")

		outcome.Board.Apply(move, turn)
		outcome.Moves = append(outcome.Moves, move)

		if game.OnMove != nil {
			game.OnMove(turn, move, outcome.Board)
		}

		if winner, pattern := outcome.Board.Winner(); winner != board.Empty {
			outcome.Winner, outcome.Pattern = winner, pattern
			outcome.Result = GameLostBy[playerIndex(winner.Other())]
			outcome.Reason = fmt.Sprintf(
				"%s connects four with a %s", game.Players[playerIndex(winner)].Name(), pattern,
			)
			return outcome
		}

		turn = turn.Other()
	}

	return draw("move limit reached")
}
