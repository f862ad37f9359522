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
	"errors"
	"fmt"
)

var (
	// ErrInvalidSource is returned when the source of a relocation does
	// not hold a piece of the moving side.
	ErrInvalidSource = errors.New("no piece of the moving side at the source")

	// ErrIllegalDistance is returned when the destination of a relocation
	// is not king-adjacent to its source.
	ErrIllegalDistance = errors.New("can only move to an adjacent space")

	// ErrOccupied is returned when the destination of a move is not empty.
	ErrOccupied = errors.New("destination is not empty")

	ErrOutOfBounds     = errors.New("square is off the board")
	ErrWrongPhase      = errors.New("move type doesn't match the game phase")
	ErrInvalidNotation = errors.New("invalid notation")
)

// MoveError is an error which occurred when validating a move.
type MoveError struct {
	Move Move
	Err  error
}

func (err *MoveError) Error() string {
	return fmt.Sprintf("illegal move %s: %s", err.Move, err.Err)
}

func (err *MoveError) Unwrap() error {
	return err.Err
}
