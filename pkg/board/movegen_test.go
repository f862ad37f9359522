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

import "testing"

func TestDropSuccessors(t *testing.T) {
	for _, fen := range []string{"5/5/5/5/5", "b4/5/2r2/5/5", "brb2/r4/5/1b1r1/5"} {
		b := mustFEN(t, fen)
		successors := b.Successors(Black, true)

		empty := Size*Size - b.Count()
		if len(successors) != empty {
			t.Errorf("%s: %d successors, want %d", fen, len(successors), empty)
		}

		for _, successor := range successors {
			if successor.Move.Relocation {
				t.Errorf("%s: drop successor %s has a source", fen, successor.Move)
			}

			if successor.Board.Count() != b.Count()+1 {
				t.Errorf("%s: successor %s doesn't add a piece", fen, successor.Move)
			}
		}
	}
}

func TestDropSuccessorOrder(t *testing.T) {
	successors := mustFEN(t, "b4/5/5/5/5").Successors(Red, true)
	want := []Square{{0, 1}, {0, 2}, {0, 3}, {0, 4}, {1, 0}}
	for i, sq := range want {
		if successors[i].Move.To != sq {
			t.Fatalf("successor %d is %s, want %s", i, successors[i].Move.To, sq)
		}
	}
}

func TestRelocationSuccessors(t *testing.T) {
	tests := []struct {
		fen   string
		piece Piece
		want  int
	}{
		// Corner pieces with three neighbours each.
		{"b3b/5/5/5/b3b", Black, 12},
		// A lone center piece can move in all eight directions.
		{"5/5/2b2/5/5", Black, 8},
		// Shared targets are still distinct moves.
		{"5/5/1b1b1/5/5", Black, 16},
		// Completely surrounded piece has no moves.
		{"rrr2/rbr2/rrr2/5/5", Black, 0},
	}

	for _, test := range tests {
		b := mustFEN(t, test.fen)
		successors := b.Successors(test.piece, false)
		if len(successors) != test.want {
			t.Errorf("%s: %d successors, want %d", test.fen, len(successors), test.want)
		}

		seen := make(map[Successor]bool)
		for _, successor := range successors {
			if seen[successor] {
				t.Errorf("%s: duplicate successor %s", test.fen, successor.Move)
			}
			seen[successor] = true

			if !successor.Move.Relocation {
				t.Errorf("%s: relocation successor %s has no source", test.fen, successor.Move)
			}

			if err := b.Validate(successor.Move, test.piece); err != nil {
				t.Errorf("%s: generated illegal move: %v", test.fen, err)
			}

			if successor.Board.CountOf(test.piece) != b.CountOf(test.piece) {
				t.Errorf("%s: successor %s changes the piece count", test.fen, successor.Move)
			}
		}
	}
}

func TestRelocationSuccessorOrder(t *testing.T) {
	successors := mustFEN(t, "5/5/2b2/5/5").Successors(Black, false)
	center := Square{2, 2}
	for i, direction := range Directions {
		if want := center.Offset(direction); successors[i].Move.To != want {
			t.Fatalf("successor %d moves to %s, want %s", i, successors[i].Move.To, want)
		}
	}
}

func TestSuccessorsDoNotAlias(t *testing.T) {
	b := mustFEN(t, "5/5/2b2/5/5")
	successors := b.Successors(Black, false)
	successors[0].Board.Set(Square{4, 4}, Red)

	if b.Get(Square{4, 4}) != Empty || successors[1].Board.Get(Square{4, 4}) != Empty {
		t.Fatal("successor boards share storage")
	}
}

func TestNoSuccessors(t *testing.T) {
	if successors := mustFEN(t, "5/5/5/5/5").Successors(Black, false); len(successors) != 0 {
		t.Fatalf("side with no pieces has %d relocations", len(successors))
	}
}
