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
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/sandy14795/Intelligent-AI-Teeko-player/pkg/record"
	"github.com/sandy14795/Intelligent-AI-Teeko-player/pkg/stats"
)

type memoryRecorder struct {
	mu    sync.Mutex
	games []record.Game
}

func (recorder *memoryRecorder) Save(ctx context.Context, game record.Game) (int64, error) {
	recorder.mu.Lock()
	defer recorder.mu.Unlock()

	recorder.games = append(recorder.games, game)
	return int64(len(recorder.games)), nil
}

func testConfig() Config {
	var config Config
	config.Players = [2]PlayerConfig{
		{Name: "engine", Type: "engine", Depth: 1, Seed: 1},
		{Name: "random", Type: "random", Seed: 2},
	}

	config.GamePairs = 2
	config.Concurrency = 2
	return config
}

func TestTournament(t *testing.T) {
	tour, err := NewTournament(testConfig())
	if err != nil {
		t.Fatal(err)
	}

	recorder := &memoryRecorder{}
	tour.Store = recorder

	var calls int
	var mu sync.Mutex
	tour.OnResult = func(games int, score stats.Score) {
		mu.Lock()
		defer mu.Unlock()
		calls++
	}

	if err := tour.Start(context.Background()); err != nil {
		t.Fatal(err)
	}

	score := tour.Score()
	if score.Games() != tour.Total() {
		t.Errorf("played %d games; want %d", score.Games(), tour.Total())
	}

	var pairs int
	for _, n := range score.Pairs {
		pairs += n
	}

	if pairs != 2 {
		t.Errorf("tallied %d pairs; want 2", pairs)
	}

	if len(recorder.games) != 4 || calls != 4 {
		t.Errorf("recorded %d games with %d callbacks; want 4", len(recorder.games), calls)
	}

	var black int
	for _, game := range recorder.games {
		if game.Black == "engine" {
			black++
		}
	}

	if black != 2 {
		t.Errorf("engine played black %d times; want 2", black)
	}
}

func TestTournamentSprtStops(t *testing.T) {
	config := testConfig()
	config.GamePairs = 50
	config.Concurrency = 1

	// bounds of zero decide the test after the first game
	config.Sprt = &stats.Test{Elo0: 0, Elo1: 10, Alpha: 0.5, Beta: 0.5}

	tour, err := NewTournament(config)
	if err != nil {
		t.Fatal(err)
	}

	if err := tour.Start(context.Background()); err != nil {
		t.Fatal(err)
	}

	if decision, _ := tour.Decision(); decision == stats.Continue {
		t.Error("SPRT is undecided")
	}

	if games := tour.Score().Games(); games >= tour.Total() {
		t.Errorf("played %d games; want the tournament to stop early", games)
	}
}

func TestNewTournamentErrors(t *testing.T) {
	config := testConfig()
	config.Players[1].Name = "engine"
	if _, err := NewTournament(config); err == nil {
		t.Error("players with the same name accepted")
	}

	config = testConfig()
	config.Players[0].TimeC = "ten seconds"
	if _, err := NewTournament(config); err == nil {
		t.Error("invalid time control accepted")
	}
}

func TestNewPlayerUnknownType(t *testing.T) {
	if _, err := NewPlayer(PlayerConfig{Name: "x", Type: "oracle"}, 0); err == nil {
		t.Error("unknown player type accepted")
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "match.yaml")
	data := `
event: test
players:
  - name: deep
    depth: 2
    tc: 10+0.1
  - name: tei
    type: process
    process:
      cmd: teeko
      arg: engine
game-pairs: 10
concurrency: 4
openings:
  file: book.txt
  order: random
sprt:
  elo0: 0
  elo1: 5
  alpha: 0.05
  beta: 0.05
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}

	if config.Players[0].Depth != 2 || config.Players[1].Process.Cmd != "teeko" || config.Players[1].Process.Arg != "engine" {
		t.Errorf("players = %+v", config.Players)
	}

	if config.GamePairs != 10 || config.Concurrency != 4 || config.Openings.Order != "random" {
		t.Errorf("config = %+v", config)
	}

	if config.Sprt == nil || config.Sprt.Elo1 != 5 || config.Sprt.Alpha != 0.05 {
		t.Errorf("sprt = %+v", config.Sprt)
	}
}

func TestParseTime(t *testing.T) {
	tests := []struct {
		str  string
		want TimeControl
		err  bool
	}{
		{"40/10+0.1", TimeControl{MovesToGo: 40, Base: 10 * time.Second, Inc: 100 * time.Millisecond}, false},
		{"5+0.05", TimeControl{MovesToGo: -1, Base: 5 * time.Second, Inc: 50 * time.Millisecond}, false},
		{"", TimeControl{}, false},
		{"inf", TimeControl{}, false},
		{"10", TimeControl{}, true},
		{"x/10+1", TimeControl{}, true},
	}

	for _, tt := range tests {
		got, err := ParseTime(tt.str)
		if (err != nil) != tt.err {
			t.Errorf("ParseTime(%q) error = %v; want error %v", tt.str, err, tt.err)
			continue
		}

		if got != tt.want {
			t.Errorf("ParseTime(%q) = %+v; want %+v", tt.str, got, tt.want)
		}
	}

	if tc, _ := ParseTime(""); !tc.Unlimited() {
		t.Error("empty time control is limited")
	}
}

func TestParseBook(t *testing.T) {
	book, err := ParseBook("a0 a4\n\nb0\r\n", "", nil)
	if err != nil {
		t.Fatal(err)
	}

	if book.Len() != 2 {
		t.Fatalf("book has %d openings; want 2", book.Len())
	}

	if got := len(book.Current()); got != 2 {
		t.Errorf("first opening has %d moves; want 2", got)
	}

	book.Next()
	book.Next()
	if got := len(book.Current()); got != 2 {
		t.Errorf("book did not wrap around: current opening has %d moves", got)
	}

	if _, err := ParseBook("a0 a0", "", nil); err == nil {
		t.Error("opening with an illegal move accepted")
	}

	empty, err := ParseBook("", "random", nil)
	if err != nil || empty.Len() != 1 || len(empty.Current()) != 0 {
		t.Errorf("empty book = %v, %v; want a single empty opening", empty, err)
	}
}

func TestResult(t *testing.T) {
	if Win.String() != "1-0" || Draw.String() != "1/2-1/2" || Loss.String() != "0-1" {
		t.Errorf("result strings: %s %s %s", Win, Draw, Loss)
	}

	if GetPairResult(Win, Loss) != DrawDraw || GetPairResult(Win, Win) != WinWin {
		t.Error("pair results do not add up")
	}
}
