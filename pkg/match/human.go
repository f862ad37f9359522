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
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sandy14795/Intelligent-AI-Teeko-player/pkg/board"
)

// NewHumanPlayer creates a Player which reads its moves from the given
// reader and writes the board and prompts to the given writer.
func NewHumanPlayer(name string, r io.Reader, w io.Writer) *HumanPlayer {
	return &HumanPlayer{
		name:    name,
		scanner: bufio.NewScanner(r),
		writer:  w,
	}
}

// HumanPlayer is a Player whose moves are typed in by a person.
type HumanPlayer struct {
	name    string
	piece   board.Piece
	scanner *bufio.Scanner
	writer  io.Writer
}

var _ Player = (*HumanPlayer)(nil)

func (player *HumanPlayer) Name() string {
	return player.name
}

func (player *HumanPlayer) NewGame(ctx context.Context, piece board.Piece) error {
	player.piece = piece
	return nil
}

// Move prompts for a move until a legal one is entered. Moves are entered
// as the destination square, followed by the source square once all the
// pieces have been dropped.
func (player *HumanPlayer) Move(ctx context.Context, position Position) (board.Move, error) {
	fmt.Fprintln(player.writer, position.Board)

	drop := position.Board.DropPhase()
	for {
		if err := ctx.Err(); err != nil {
			return board.Move{}, err
		}

		if drop {
			fmt.Fprint(player.writer, "Drop a piece (e.g. B3): ")
		} else {
			fmt.Fprint(player.writer, "Move a piece (e.g. B3C2): ")
		}

		if !player.scanner.Scan() {
			if err := player.scanner.Err(); err != nil {
				return board.Move{}, err
			}

			return board.Move{}, io.EOF
		}

		move, err := board.ParseMove(player.scanner.Text())
		if err == nil {
			err = position.Board.Legal(move, position.Turn)
		}

		if err != nil {
			var moveErr *board.MoveError
			if errors.As(err, &moveErr) {
				err = moveErr.Err
			}

			fmt.Fprintf(player.writer, "%s, try again.\n", capitalize(err.Error()))
			continue
		}

		return move, nil
	}
}

func (player *HumanPlayer) Close() error {
	return nil
}

func capitalize(str string) string {
	if str == "" {
		return str
	}

	return strings.ToUpper(str[:1]) + str[1:]
}
