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

// Size is the width and height of the board.
const Size = 5

// Square represents a single cell of the board by its row and column.
type Square struct {
	Row, Col int
}

// ParseSquare parses a square in the <column><row> notation, where the
// column is a letter from A to E and the row is a digit from 0 to 4.
func ParseSquare(str string) (Square, error) {
	str = strings.ToUpper(strings.TrimSpace(str))
	if len(str) != 2 {
		return Square{}, fmt.Errorf("parse square %q: %w", str, ErrInvalidNotation)
	}

	square := Square{
		Row: int(str[1]) - '0',
		Col: int(str[0]) - 'A',
	}

	if !square.InBounds() {
		return Square{}, fmt.Errorf("parse square %q: %w", str, ErrOutOfBounds)
	}

	return square, nil
}

// InBounds reports whether the square lies on the board.
func (sq Square) InBounds() bool {
	return sq.Row >= 0 && sq.Row < Size && sq.Col >= 0 && sq.Col < Size
}

// Distance returns the king-distance (Chebyshev distance) between the
// two squares.
func (sq Square) Distance(other Square) int {
	return max(abs(sq.Row-other.Row), abs(sq.Col-other.Col))
}

// String converts the square into its <column><row> notation.
func (sq Square) String() string {
	if !sq.InBounds() {
		return fmt.Sprintf("(%d,%d)", sq.Row, sq.Col)
	}

	return fmt.Sprintf("%c%c", 'A'+sq.Col, '0'+sq.Row)
}

// Directions are the offsets to the eight king-adjacent neighbours of a
// square. The order is fixed since move generation depends on it.
var Directions = [8]Square{
	{-1, -1}, {-1, +0}, {-1, +1},
	{+0, -1}, {+0, +1},
	{+1, -1}, {+1, +0}, {+1, +1},
}

// Offset returns the square reached by moving from sq by the given offset.
func (sq Square) Offset(offset Square) Square {
	return Square{Row: sq.Row + offset.Row, Col: sq.Col + offset.Col}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
