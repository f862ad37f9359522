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

package board

// Successor is a board reachable from another board by a single move,
// along with the move which reaches it.
type Successor struct {
	Board Board
	Move  Move
}

// Successors generates every board reachable by the given side making a
// single move. If drop is set, moves drop a new piece on an empty square,
// otherwise they relocate one of the side's pieces to an adjacent empty
// square. The successors are ordered row-major by the square dropped on or
// relocated from, and relocations from a square are ordered by Directions.
func (b Board) Successors(piece Piece, drop bool) []Successor {
	if drop {
		return b.drops(piece)
	}

	return b.relocations(piece)
}

func (b Board) drops(piece Piece) []Successor {
	successors := make([]Successor, 0, Size*Size)
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			to := Square{row, col}
			if b.Get(to) != Empty {
				continue
			}

			child := b
			child.Set(to, piece)
			successors = append(successors, Successor{
				Board: child,
				Move:  Drop(to),
			})
		}
	}

	return successors
}

func (b Board) relocations(piece Piece) []Successor {
	successors := make([]Successor, 0, len(Directions)*PieceN)
	seen := make(map[Successor]struct{})
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			from := Square{row, col}
			if b.Get(from) != piece {
				continue
			}

			for _, to := range b.Adjacent(from) {
				child := b
				child.Set(from, Empty)
				child.Set(to, piece)

				successor := Successor{Board: child, Move: Relocate(to, from)}
				if _, found := seen[successor]; found {
					continue
				}

				seen[successor] = struct{}{}
				successors = append(successors, successor)
			}
		}
	}

	return successors
}

// Adjacent returns the empty squares which are king-adjacent to the given
// square, in the order of Directions.
func (b Board) Adjacent(sq Square) []Square {
	adjacent := make([]Square, 0, len(Directions))
	for _, direction := range Directions {
		if target := sq.Offset(direction); target.InBounds() && b.Get(target) == Empty {
			adjacent = append(adjacent, target)
		}
	}

	return adjacent
}

// LegalMoves returns the moves of every successor of the board.
func (b Board) LegalMoves(piece Piece, drop bool) []Move {
	successors := b.Successors(piece, drop)
	moves := make([]Move, len(successors))
	for i, successor := range successors {
		moves[i] = successor.Move
	}

	return moves
}
