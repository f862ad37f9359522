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

package engine

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/sandy14795/Intelligent-AI-Teeko-player/pkg/board"
)

// DefaultDepth is the number of plies searched after each candidate move.
const DefaultDepth = 1

// ErrNoMoves is returned when the engine's side has no legal move.
var ErrNoMoves = errors.New("engine: no legal moves")

// Options configure a new Engine.
type Options struct {
	// Depth is the number of plies searched after each candidate move.
	Depth int

	// Piece is the side played by the engine. If it is board.Empty, the
	// side is picked randomly using Rand.
	Piece board.Piece

	// Rand is the source of randomness used by the engine. A time seeded
	// source is used if it is nil.
	Rand *rand.Rand

	// Concurrency is the number of candidate moves evaluated in parallel.
	// Values less than 2 make the search sequential.
	Concurrency int
}

// DefaultOptions returns the options of a standard engine.
func DefaultOptions() Options {
	return Options{Depth: DefaultDepth}
}

// Engine is a teeko player. It keeps track of the game it is playing and
// picks its moves with a fixed depth minimax search.
type Engine struct {
	options Options

	piece, opponent board.Piece

	board board.Board

	// placed counts the pieces dropped onto the board, assuming that the
	// opponent drops a piece for every piece dropped by the engine.
	placed int
	drop   bool
}

// New creates a new Engine with an empty board.
func New(options Options) *Engine {
	if options.Rand == nil {
		options.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	engine := &Engine{options: options}

	engine.piece = options.Piece
	if engine.piece == board.Empty {
		engine.piece = board.Pieces[options.Rand.Intn(len(board.Pieces))]
	}

	engine.opponent = engine.piece.Other()
	engine.Reset()
	return engine
}

// Reset clears the engine's board and puts it back in the drop phase. The
// engine keeps playing the same side.
func (engine *Engine) Reset() {
	engine.board = board.Board{}
	engine.placed = 0
	engine.drop = true
}

// SetPosition replaces the engine's board with the given one. The phase is
// derived from the number of pieces on it.
func (engine *Engine) SetPosition(b board.Board) {
	engine.board = b
	engine.placed = b.Count()
	engine.drop = engine.placed < board.DropPieces
}

// Piece returns the side played by the engine.
func (engine *Engine) Piece() board.Piece {
	return engine.piece
}

// Opponent returns the side played by the engine's opponent.
func (engine *Engine) Opponent() board.Piece {
	return engine.opponent
}

// Board returns a copy of the engine's board.
func (engine *Engine) Board() board.Board {
	return engine.board
}

// DropPhase reports whether the engine is still dropping pieces.
func (engine *Engine) DropPhase() bool {
	return engine.drop
}

// Depth returns the search depth of the engine.
func (engine *Engine) Depth() int {
	return engine.options.Depth
}

// Result is the outcome of a search.
type Result struct {
	Move  board.Move
	Score float64
	Nodes int
}

// Search finds the best move for the engine's side on the given board in
// the engine's current phase. Every candidate move is scored with a
// minimax search starting at the opponent's turn, and the first candidate
// with the highest score is picked. The given board is not modified.
func (engine *Engine) Search(ctx context.Context, b board.Board) (Result, error) {
	candidates := b.Successors(engine.piece, engine.drop)
	if len(candidates) == 0 {
		return Result{}, ErrNoMoves
	}

	scores := make([]float64, len(candidates))
	nodes := make([]int, len(candidates))

	evaluate := func(i int) {
		search := searcher{engine: engine}
		scores[i] = search.minimax(candidates[i].Board, engine.options.Depth, engine.opponent)
		nodes[i] = search.nodes
	}

	if engine.options.Concurrency < 2 {
		for i := range candidates {
			if err := ctx.Err(); err != nil {
				return Result{}, err
			}

			evaluate(i)
		}
	} else {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(engine.options.Concurrency)
		for i := range candidates {
			i := i
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}

				evaluate(i)
				return nil
			})
		}

		if err := g.Wait(); err != nil {
			return Result{}, err
		}
	}

	var result Result
	for i, score := range scores {
		if i == 0 || score > result.Score {
			result.Move = candidates[i].Move
			result.Score = score
		}

		result.Nodes += nodes[i]
	}

	return result, nil
}

// SelectMove picks the engine's next move on its own board. Producing a
// move advances the engine's phase: the engine counts the piece it drops
// along with the one its opponent will drop next, and leaves the drop
// phase once the count reaches board.DropPieces. The move is not applied
// to the board, which has to be done using ApplyMove.
func (engine *Engine) SelectMove(ctx context.Context) (board.Move, error) {
	result, err := engine.Search(ctx, engine.board)
	if err != nil {
		return board.Move{}, err
	}

	logrus.WithFields(logrus.Fields{
		"piece": engine.piece,
		"move":  result.Move,
		"score": result.Score,
		"nodes": result.Nodes,
	}).Debug("engine selected move")

	if engine.drop {
		engine.placed += 2
		engine.drop = engine.placed < board.DropPieces
	}

	return result.Move, nil
}

// MakeMove selects the engine's next move and applies it to its board.
func (engine *Engine) MakeMove(ctx context.Context) (board.Move, error) {
	move, err := engine.SelectMove(ctx)
	if err != nil {
		return board.Move{}, err
	}

	engine.ApplyMove(move, engine.piece)
	return move, nil
}

// ReceiveOpponentMove validates the given opponent move against the
// engine's board and applies it. An illegal move is rejected with a
// *board.MoveError and leaves the board unchanged.
func (engine *Engine) ReceiveOpponentMove(move board.Move) error {
	if err := engine.board.Validate(move, engine.opponent); err != nil {
		logrus.WithField("move", move).Debug(err)
		return err
	}

	engine.ApplyMove(move, engine.opponent)
	return nil
}

// ApplyMove applies the given move for the given side on the engine's
// board without checking its legality.
func (engine *Engine) ApplyMove(move board.Move, piece board.Piece) {
	engine.board.Apply(move, piece)
}

// Winner returns the side which has won the game on the engine's board.
func (engine *Engine) Winner() board.Piece {
	winner, _ := engine.board.Winner()
	return winner
}
