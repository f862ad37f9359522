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

package protocol

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func run(t *testing.T, input string) []string {
	t.Helper()

	var output bytes.Buffer
	server := NewServer(strings.NewReader(input), &output)
	if err := server.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	return strings.Split(strings.TrimSpace(output.String()), "\n")
}

func TestHandshake(t *testing.T) {
	lines := run(t, "tei\nisready\nquit\n")

	if lines[0] != "id name Teeko" {
		t.Fatalf("first line %q", lines[0])
	}

	if lines[len(lines)-2] != "teiok" || lines[len(lines)-1] != "readyok" {
		t.Fatalf("unexpected handshake:\n%s", strings.Join(lines, "\n"))
	}
}

func TestGoFromStartpos(t *testing.T) {
	lines := run(t, "position startpos\ngo\n")

	last := lines[len(lines)-1]
	if !strings.HasPrefix(last, "bestmove ") || len(strings.Fields(last)[1]) != 2 {
		t.Fatalf("expected a drop move, got %q", last)
	}

	if !strings.HasPrefix(lines[len(lines)-2], "info depth 1 nodes ") {
		t.Fatalf("expected search info, got %q", lines[len(lines)-2])
	}
}

func TestGoFindsWin(t *testing.T) {
	lines := run(t, "position startpos moves a0 a4 b0 b4 c0 c4\ngo\n")

	if last := lines[len(lines)-1]; last != "bestmove d0" {
		t.Fatalf("expected bestmove d0, got %q", last)
	}
}

func TestGoRelocation(t *testing.T) {
	lines := run(t, "position fen bbb2/3b1/r4/r4/rr3 b\ngo\n")

	if last := lines[len(lines)-1]; last != "bestmove d0d1" {
		t.Fatalf("expected bestmove d0d1, got %q", last)
	}
}

func TestGoDecidedPosition(t *testing.T) {
	lines := run(t, "position fen bbbb1/5/5/r4/rr3 r\ngo\n")

	if last := lines[len(lines)-1]; last != "bestmove "+NullMove {
		t.Fatalf("expected a null move, got %q", last)
	}
}

func TestIllegalMoveIsReported(t *testing.T) {
	lines := run(t, "position startpos moves a0 a0\nd\n")

	if !strings.HasPrefix(lines[0], "info string ") {
		t.Fatalf("expected an error report, got %q", lines[0])
	}

	// The position is left unchanged by the failed command.
	if last := lines[len(lines)-1]; last != "fen 5/5/5/5/5 b" {
		t.Fatalf("unexpected position %q", last)
	}
}

func TestSetOption(t *testing.T) {
	var output bytes.Buffer
	server := NewServer(strings.NewReader(""), &output)
	ctx := context.Background()

	if _, err := server.Execute(ctx, "setoption name Depth value 2"); err != nil {
		t.Fatal(err)
	}

	if server.options.Depth != 2 {
		t.Fatalf("depth is %d", server.options.Depth)
	}

	if _, err := server.Execute(ctx, "setoption name Depth value 9"); err == nil {
		t.Fatal("expected an error for an out of range depth")
	}

	if _, err := server.Execute(ctx, "setoption name Hash value 16"); err == nil {
		t.Fatal("expected an error for an unknown option")
	}
}

func TestQuitStopsServer(t *testing.T) {
	lines := run(t, "quit\nisready\n")
	if len(lines) != 1 || lines[0] != "" {
		t.Fatalf("server kept running after quit: %q", lines)
	}
}
