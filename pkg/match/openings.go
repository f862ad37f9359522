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
	"fmt"
	"math/rand"
	"os"
	"strings"

	"github.com/sandy14795/Intelligent-AI-Teeko-player/pkg/board"
)

// NewBook reads an opening book from the given file. Every non-empty line
// of the file is an opening, a space separated list of moves played from
// the empty board with Black moving first.
func NewBook(name string, strategy string, rng *rand.Rand) (*OpeningBook, error) {
	file, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}

	return ParseBook(string(file), strategy, rng)
}

// ParseBook parses an opening book from its contents.
func ParseBook(contents string, strategy string, rng *rand.Rand) (*OpeningBook, error) {
	book := OpeningBook{strategy: strategy, rng: rng}
	if book.rng == nil {
		book.rng = rand.New(rand.NewSource(0))
	}

	for i, entry := range strings.Split(contents, "\n") {
		entry = strings.Trim(entry, "\n\r\t ")
		if entry == "" {
			continue
		}

		var b board.Board
		var opening []board.Move
		turn := board.Black
		for _, str := range strings.Fields(entry) {
			move, err := board.ParseMove(str)
			if err != nil {
				return nil, fmt.Errorf("opening book line %d: %w", i+1, err)
			}

			if err := b.Legal(move, turn); err != nil {
				return nil, fmt.Errorf("opening book line %d: %w", i+1, err)
			}

			b.Apply(move, turn)
			opening = append(opening, move)
			turn = turn.Other()
		}

		book.entries = append(book.entries, opening)
	}

	if len(book.entries) == 0 {
		// An empty book always plays from the empty board.
		book.entries = [][]board.Move{nil}
	}

	return &book, nil
}

// OpeningBook is a list of openings which are played in a fixed or random
// order.
type OpeningBook struct {
	entries  [][]board.Move
	strategy string
	current  int

	rng *rand.Rand
}

// Next moves the book to its next opening.
func (book *OpeningBook) Next() {
	switch book.strategy {
	case "random":
		book.current = book.rng.Intn(len(book.entries))
	default:
		book.current = (book.current + 1) % len(book.entries)
	}
}

// Current returns the moves of the current opening.
func (book *OpeningBook) Current() []board.Move {
	return book.entries[book.current]
}

// Len returns the number of openings in the book.
func (book *OpeningBook) Len() int {
	return len(book.entries)
}
