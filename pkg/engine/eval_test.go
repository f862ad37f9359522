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

package engine

import (
	"testing"

	"github.com/sandy14795/Intelligent-AI-Teeko-player/pkg/board"
)

func mustFEN(t *testing.T, fen string) board.Board {
	t.Helper()
	b, err := board.ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q): %v", fen, err)
	}

	return b
}

func TestHeuristic(t *testing.T) {
	tests := []struct {
		fen   string
		piece board.Piece
		want  float64
	}{
		{"5/5/5/5/5", board.Black, 0},
		// Longest probes tie at one piece each.
		{"b4/5/5/5/4r", board.Black, 0},
		// Three in a row against two in a column.
		{"bbb2/5/r4/r4/5", board.Black, 3.0 / 6},
		{"bbb2/5/r4/r4/5", board.Red, -3.0 / 6},
		// Pieces of a row don't need to be contiguous.
		{"b1b1b/5/5/5/r4", board.Black, 3.0 / 6},
		// Diagonal window.
		{"r4/1r3/2r2/5/b4", board.Black, -3.0 / 6},
		// Anti-diagonal window.
		{"4r/3r1/2r2/5/b4", board.Red, 3.0 / 6},
		// Three pieces around an empty center.
		{"5/2b2/1b3/2b2/r4", board.Black, 3.0 / 6},
		// A filled center doesn't count as a diamond probe.
		{"5/2b2/1br2/2b2/5", board.Black, 2.0 / 6},
	}

	for _, test := range tests {
		b := mustFEN(t, test.fen)
		if got := Heuristic(b, test.piece); got != test.want {
			t.Errorf("Heuristic(%s, %s) = %v, want %v", test.fen, test.piece, got, test.want)
		}
	}
}

func TestHeuristicRange(t *testing.T) {
	fens := []string{
		"bbbb1/rrrr1/5/5/5",
		"brbr1/brbr1/5/5/5",
		"b1r1b/1r1b1/r1b1r/5/5",
	}

	for _, fen := range fens {
		b := mustFEN(t, fen)
		for _, piece := range board.Pieces {
			if score := Heuristic(b, piece); score < -1 || score > 1 {
				t.Errorf("Heuristic(%s, %s) = %v out of range", fen, piece, score)
			}

			if Heuristic(b, piece) != -Heuristic(b, piece.Other()) {
				t.Errorf("Heuristic(%s) is not symmetric", fen)
			}
		}
	}
}
