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

// Pattern is a family of winning patterns.
type Pattern uint8

const (
	NoPattern Pattern = iota
	Horizontal
	Vertical
	Diagonal     // four in a line stepping (+1, +1)
	AntiDiagonal // four in a line stepping (+1, -1)
	Diamond      // four pieces around an empty center
)

func (pattern Pattern) String() string {
	switch pattern {
	case Horizontal:
		return "Horizontal Line"
	case Vertical:
		return "Vertical Line"
	case Diagonal, AntiDiagonal:
		return "Diagonal Line"
	case Diamond:
		return "Diamond"
	default:
		return "None"
	}
}

// Line is a set of four squares a winning pattern can occupy.
type Line [PieceN]Square

// PatternLine is a straight Line along with its pattern family.
type PatternLine struct {
	Pattern Pattern
	Line    Line
}

// Lines contains every straight line of four squares on the board, grouped
// by their pattern family in the order Horizontal, Vertical, Diagonal, and
// AntiDiagonal.
var Lines = func() (lines []PatternLine) {
	add := func(pattern Pattern, start, step Square) {
		var line Line
		for i := range line {
			line[i] = Square{start.Row + i*step.Row, start.Col + i*step.Col}
		}

		lines = append(lines, PatternLine{pattern, line})
	}

	for row := 0; row < Size; row++ {
		for col := 0; col+PieceN <= Size; col++ {
			add(Horizontal, Square{row, col}, Square{0, 1})
		}
	}

	for col := 0; col < Size; col++ {
		for row := 0; row+PieceN <= Size; row++ {
			add(Vertical, Square{row, col}, Square{1, 0})
		}
	}

	for row := 0; row+PieceN <= Size; row++ {
		for col := 0; col+PieceN <= Size; col++ {
			add(Diagonal, Square{row, col}, Square{1, 1})
		}
	}

	for row := 0; row+PieceN <= Size; row++ {
		for col := PieceN - 1; col < Size; col++ {
			add(AntiDiagonal, Square{row, col}, Square{1, -1})
		}
	}

	return lines
}()

// DiamondAround returns the four orthogonal neighbours of the given center
// square, which must not lie on the edge of the board.
func DiamondAround(center Square) Line {
	return Line{
		{center.Row - 1, center.Col},
		{center.Row, center.Col + 1},
		{center.Row + 1, center.Col},
		{center.Row, center.Col - 1},
	}
}

// Winner checks the board for a completed winning pattern and returns the
// side which completed it along with the pattern's family. If no pattern
// has been completed, Empty and NoPattern are returned.
func (b Board) Winner() (Piece, Pattern) {
	for _, line := range Lines {
		if piece := b.owner(line.Line); piece != Empty {
			return piece, line.Pattern
		}
	}

	for row := 1; row < Size-1; row++ {
		for col := 1; col < Size-1; col++ {
			center := Square{row, col}
			if b.Get(center) != Empty {
				continue
			}

			if piece := b.owner(DiamondAround(center)); piece != Empty {
				return piece, Diamond
			}
		}
	}

	return Empty, NoPattern
}

// owner returns the side whose pieces occupy every square of the line, or
// Empty if there is no such side.
func (b Board) owner(line Line) Piece {
	piece := b.Get(line[0])
	for _, sq := range line[1:] {
		if b.Get(sq) != piece {
			return Empty
		}
	}

	return piece
}
