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

import "github.com/sandy14795/Intelligent-AI-Teeko-player/pkg/board"

// HeuristicScale normalizes the length of the longest probe into a score
// strictly between the scores of a lost and a won game.
const HeuristicScale = 6.0

// probes are the straight sets of squares examined by the heuristic: every
// full row, every full column, and every four square diagonal window.
var probes = func() (probes [][]board.Square) {
	for row := 0; row < board.Size; row++ {
		probe := make([]board.Square, board.Size)
		for col := range probe {
			probe[col] = board.Square{Row: row, Col: col}
		}

		probes = append(probes, probe)
	}

	for col := 0; col < board.Size; col++ {
		probe := make([]board.Square, board.Size)
		for row := range probe {
			probe[row] = board.Square{Row: row, Col: col}
		}

		probes = append(probes, probe)
	}

	for _, line := range board.Lines {
		if line.Pattern == board.Diagonal || line.Pattern == board.AntiDiagonal {
			squares := line.Line
			probes = append(probes, squares[:])
		}
	}

	return probes
}()

// Heuristic scores a position which isn't decided from the perspective of
// the given side. Both sides are scored by the largest number of their
// pieces found in a single probe, and the side with the larger count wins
// the score. The result lies in [-4/6, 4/6] and is 0 when the counts tie.
func Heuristic(b board.Board, piece board.Piece) float64 {
	own, opp := longestProbe(b, piece), longestProbe(b, piece.Other())

	switch {
	case own > opp:
		return float64(own) / HeuristicScale
	case opp > own:
		return -float64(opp) / HeuristicScale
	default:
		return 0
	}
}

// longestProbe returns the largest number of the given side's pieces in a
// single probe. Diamond probes, the orthogonal neighbours of an empty
// non-edge square, are counted along with the straight probes.
func longestProbe(b board.Board, piece board.Piece) int {
	longest := 0
	for _, probe := range probes {
		longest = max(longest, count(b, probe, piece))
	}

	for row := 1; row < board.Size-1; row++ {
		for col := 1; col < board.Size-1; col++ {
			center := board.Square{Row: row, Col: col}
			if b.Get(center) != board.Empty {
				continue
			}

			diamond := board.DiamondAround(center)
			longest = max(longest, count(b, diamond[:], piece))
		}
	}

	return longest
}

func count(b board.Board, squares []board.Square, piece board.Piece) int {
	n := 0
	for _, sq := range squares {
		if b.Get(sq) == piece {
			n++
		}
	}

	return n
}
