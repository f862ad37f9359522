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
	"math"

	"github.com/sandy14795/Intelligent-AI-Teeko-player/pkg/board"
)

// Terminal checks the board for a completed winning pattern. It returns +1
// if the engine's side has won, -1 if the opponent has won, and 0 if the
// game is still undecided.
func (engine *Engine) Terminal(b board.Board) float64 {
	switch winner, _ := b.Winner(); winner {
	case board.Empty:
		return 0
	case engine.piece:
		return +1
	default:
		return -1
	}
}

// searcher runs a single fixed depth minimax search. Each searcher keeps
// its own node count so that searchers can run concurrently.
type searcher struct {
	engine *Engine
	nodes  int
}

// minimax returns the minimax value of the board with the given side to
// move and depth plies left to search. Decided positions are scored by
// Terminal irrespective of the depth left, and undecided positions at the
// end of the search by Heuristic from the engine's perspective.
func (search *searcher) minimax(b board.Board, depth int, turn board.Piece) float64 {
	search.nodes++

	if score := search.engine.Terminal(b); score != 0 {
		return score
	}

	if depth == 0 {
		return Heuristic(b, search.engine.piece)
	}

	// The phase is derived from the board at every node so that lines
	// crossing into the relocation phase are searched with relocations.
	children := b.Successors(turn, b.DropPhase())
	if len(children) == 0 {
		// A side without moves can't change the position.
		return Heuristic(b, search.engine.piece)
	}

	if turn == search.engine.piece {
		best := math.Inf(-1)
		for _, child := range children {
			best = math.Max(best, search.minimax(child.Board, depth-1, turn.Other()))
		}

		return best
	}

	best := math.Inf(+1)
	for _, child := range children {
		best = math.Min(best, search.minimax(child.Board, depth-1, turn.Other()))
	}

	return best
}
