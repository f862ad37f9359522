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

import (
	"fmt"
	"strings"
)

// DropPieces is the total number of pieces which are dropped onto the
// board by both sides before pieces start being relocated.
const DropPieces = 2 * PieceN

// Board represents a teeko board. It is a value type, so assigning a board
// or passing it to a function creates an independent copy of it.
type Board [Size][Size]Piece

// Get returns the piece on the given square.
func (b Board) Get(sq Square) Piece {
	return b[sq.Row][sq.Col]
}

// Set puts the given piece on the given square.
func (b *Board) Set(sq Square, piece Piece) {
	b[sq.Row][sq.Col] = piece
}

// Count returns the number of pieces on the board.
func (b Board) Count() int {
	count := 0
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if b[row][col] != Empty {
				count++
			}
		}
	}

	return count
}

// CountOf returns the number of the given side's pieces on the board.
func (b Board) CountOf(piece Piece) int {
	count := 0
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if b[row][col] == piece {
				count++
			}
		}
	}

	return count
}

// DropPhase reports whether pieces are still being dropped onto the board.
func (b Board) DropPhase() bool {
	return b.Count() < DropPieces
}

// SideToMove returns the side which has to play the next move. Black moves
// first, so it is Black's turn whenever both sides have the same number of
// pieces on the board during the drop phase. After the drop phase the side
// to move can't be derived from the board alone and Black is returned.
func (b Board) SideToMove() Piece {
	if b.CountOf(Black) > b.CountOf(Red) {
		return Red
	}

	return Black
}

// Apply makes the given move for the given side on the board. If the move
// is a relocation its source is cleared before the destination is filled.
// The legality of the move is not checked.
func (b *Board) Apply(move Move, piece Piece) {
	if move.Relocation {
		b.Set(move.From, Empty)
	}

	b.Set(move.To, piece)
}

// Validate checks whether the given side can make the given move on the
// board. It doesn't check whether the move's type fits the current phase,
// which is done by Legal.
func (b Board) Validate(move Move, piece Piece) error {
	if move.Relocation {
		if !move.From.InBounds() || b.Get(move.From) != piece {
			return &MoveError{Move: move, Err: ErrInvalidSource}
		}

		if move.From.Distance(move.To) != 1 {
			return &MoveError{Move: move, Err: ErrIllegalDistance}
		}
	}

	if !move.To.InBounds() {
		return &MoveError{Move: move, Err: ErrOutOfBounds}
	}

	if b.Get(move.To) != Empty {
		return &MoveError{Move: move, Err: ErrOccupied}
	}

	return nil
}

// Legal checks whether the given side can make the given move on the board
// in its current phase. Drop phase moves can't carry a source, while every
// move after the drop phase has to.
func (b Board) Legal(move Move, piece Piece) error {
	if move.Relocation == b.DropPhase() {
		return &MoveError{Move: move, Err: ErrWrongPhase}
	}

	return b.Validate(move, piece)
}

// String returns the board in the console format:
//
//	0: b . . . .
//	1: . r . . .
//	...
//	   A B C D E
func (b Board) String() string {
	var str strings.Builder
	for row := 0; row < Size; row++ {
		fmt.Fprintf(&str, "%d: ", row)
		for col := 0; col < Size; col++ {
			str.WriteString(b[row][col].String() + " ")
		}

		str.WriteString("\n")
	}

	str.WriteString("   A B C D E")
	return str.String()
}

// FEN returns a compact single-line representation of the board. The rows
// are separated by '/' and runs of empty cells are written as digits.
func (b Board) FEN() string {
	var fen strings.Builder
	for row := 0; row < Size; row++ {
		if row > 0 {
			fen.WriteByte('/')
		}

		gaps := 0
		for col := 0; col < Size; col++ {
			if b[row][col] == Empty {
				gaps++
				continue
			}

			if gaps > 0 {
				fen.WriteByte(byte('0' + gaps))
				gaps = 0
			}

			fen.WriteString(b[row][col].String())
		}

		if gaps > 0 {
			fen.WriteByte(byte('0' + gaps))
		}
	}

	return fen.String()
}

// ParseFEN parses a board from the representation returned by FEN.
func ParseFEN(fen string) (Board, error) {
	var b Board

	rows := strings.Split(strings.TrimSpace(fen), "/")
	if len(rows) != Size {
		return b, fmt.Errorf("parse fen %q: expected %d rows", fen, Size)
	}

	for row, str := range rows {
		col := 0
		for _, char := range str {
			switch {
			case char >= '1' && char <= '5':
				col += int(char - '0')
				continue
			case col >= Size:
				return b, fmt.Errorf("parse fen %q: row %d too long", fen, row)
			case char == 'b':
				b[row][col] = Black
			case char == 'r':
				b[row][col] = Red
			default:
				return b, fmt.Errorf("parse fen %q: invalid character %q", fen, char)
			}

			col++
		}

		if col != Size {
			return b, fmt.Errorf("parse fen %q: row %d has %d cells", fen, row, col)
		}
	}

	return b, nil
}
