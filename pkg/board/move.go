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

// Move represents a single move of a side. During the drop phase a move
// only has a destination. After it, a move also has a source, which is the
// square of the piece being relocated to the destination.
type Move struct {
	To   Square
	From Square

	Relocation bool
}

// Drop creates a new drop phase move to the given square.
func Drop(to Square) Move {
	return Move{To: to}
}

// Relocate creates a new move which relocates the piece on the source
// square to the destination square.
func Relocate(to, from Square) Move {
	return Move{To: to, From: from, Relocation: true}
}

// ParseMove parses a move string. A move string is the destination square
// optionally followed by the source square, like "B3" or "B3C2". The
// squares may be separated by whitespace, a comma, or a dash.
func ParseMove(str string) (Move, error) {
	str = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', ',', '-':
			return -1
		default:
			return r
		}
	}, str)

	switch len(str) {
	case 2:
		to, err := ParseSquare(str)
		if err != nil {
			return Move{}, err
		}

		return Drop(to), nil
	case 4:
		to, err := ParseSquare(str[:2])
		if err != nil {
			return Move{}, err
		}

		from, err := ParseSquare(str[2:])
		if err != nil {
			return Move{}, err
		}

		return Relocate(to, from), nil
	default:
		return Move{}, fmt.Errorf("parse move %q: %w", str, ErrInvalidNotation)
	}
}

// Pairs returns the move in its wire format, a list of one or two (row,
// column) pairs. The first pair is the destination and the second, which
// is only present for relocations, is the source.
func (move Move) Pairs() [][2]int {
	pairs := [][2]int{{move.To.Row, move.To.Col}}
	if move.Relocation {
		pairs = append(pairs, [2]int{move.From.Row, move.From.Col})
	}

	return pairs
}

// MoveFromPairs is the inverse of Move.Pairs.
func MoveFromPairs(pairs [][2]int) (Move, error) {
	switch len(pairs) {
	case 1:
		return Drop(Square{pairs[0][0], pairs[0][1]}), nil
	case 2:
		return Relocate(
			Square{pairs[0][0], pairs[0][1]},
			Square{pairs[1][0], pairs[1][1]},
		), nil
	default:
		return Move{}, fmt.Errorf("move from pairs: %w", ErrInvalidNotation)
	}
}

// String converts the move into the notation accepted by ParseMove.
func (move Move) String() string {
	if move.Relocation {
		return move.To.String() + move.From.String()
	}

	return move.To.String()
}
