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

import "fmt"

// Piece represents the contents of a single cell of the board.
type Piece uint8

const (
	Empty Piece = iota
	Black
	Red
)

// PieceN is the number of pieces each side has on the board once the drop
// phase is over.
const PieceN = 4

// Pieces lists the two sides in their order of play. Black moves first.
var Pieces = [2]Piece{Black, Red}

// Other returns the opposing side of the given piece. Empty has no
// opposing side and is returned as is.
func (piece Piece) Other() Piece {
	switch piece {
	case Black:
		return Red
	case Red:
		return Black
	default:
		return Empty
	}
}

// String returns the single character representation of the piece used
// when printing a board or writing a fen string.
func (piece Piece) String() string {
	switch piece {
	case Black:
		return "b"
	case Red:
		return "r"
	default:
		return "."
	}
}

// ParsePiece parses the single character representation of a side.
func ParsePiece(str string) (Piece, error) {
	switch str {
	case "b", "B", "black":
		return Black, nil
	case "r", "R", "red":
		return Red, nil
	default:
		return Empty, fmt.Errorf("parse piece: invalid piece %q", str)
	}
}
