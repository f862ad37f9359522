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

package stats

import (
	"math"
	"testing"
)

func TestStoppingBounds(t *testing.T) {
	lower, upper := StoppingBounds(0.05, 0.05)

	want := math.Log(0.05 / 0.95)
	if math.Abs(lower-want) > 1e-9 || math.Abs(upper+want) > 1e-9 {
		t.Errorf("StoppingBounds(0.05, 0.05) = %f, %f; want %f, %f", lower, upper, want, -want)
	}
}

func TestEloEvenScore(t *testing.T) {
	lower, elo, upper := Elo(10, 5, 10)
	if math.Abs(elo) > 1e-9 {
		t.Errorf("even score has elo %f; want 0", elo)
	}

	if !(lower < elo && elo < upper) {
		t.Errorf("interval (%f, %f) does not contain %f", lower, upper, elo)
	}

	if math.Abs(lower+upper) > 1e-6 {
		t.Errorf("interval (%f, %f) is not symmetric", lower, upper)
	}
}

func TestEloOneSided(t *testing.T) {
	lower, elo, _ := Elo(20, 0, 0)
	if elo <= 0 {
		t.Errorf("winning score has elo %f; want > 0", elo)
	}

	if lower >= elo {
		t.Errorf("lower bound %f is not below %f", lower, elo)
	}

	_, loser, _ := Elo(0, 0, 20)
	if math.Abs(loser+elo) > 1e-9 {
		t.Errorf("losing elo %f does not mirror winning elo %f", loser, elo)
	}
}

func TestPentaElo(t *testing.T) {
	if _, elo, _ := PentaElo(0, 0, 0, 0, 0); elo != 0 {
		t.Errorf("PentaElo with no pairs = %f; want 0", elo)
	}

	if _, elo, _ := PentaElo(1, 2, 4, 2, 1); math.Abs(elo) > 1e-9 {
		t.Errorf("symmetric pairs have elo %f; want 0", elo)
	}

	if _, elo, _ := PentaElo(0, 1, 2, 4, 3); elo <= 0 {
		t.Errorf("winning pairs have elo %f; want > 0", elo)
	}
}

func TestTestEvaluate(t *testing.T) {
	test := Test{Elo0: 0, Elo1: 10, Alpha: 0.05, Beta: 0.05}

	tests := []struct {
		name  string
		score Score
		want  Decision
	}{
		{"wins", Score{Wins: 200}, AcceptH1},
		{"losses", Score{Losses: 200}, AcceptH0},
		{"even", Score{Wins: 5, Losses: 5}, Continue},
	}

	for _, tt := range tests {
		llr, decision := test.Evaluate(tt.score)
		if decision != tt.want {
			t.Errorf("%s: Evaluate() = %v (llr %f); want %v", tt.name, decision, llr, tt.want)
		}
	}
}

func TestPentaSPRTDegenerate(t *testing.T) {
	if llr := PentaSPRT(0, 0, 0, 0, 0, 0, 10); llr != 0 {
		t.Errorf("PentaSPRT with no pairs = %f; want 0", llr)
	}

	// every pair scored the same: no deviation to test with
	if llr := PentaSPRT(0, 0, 7, 0, 0, 0, 10); llr != 0 {
		t.Errorf("PentaSPRT with constant pairs = %f; want 0", llr)
	}
}

func TestScore(t *testing.T) {
	score := Score{Wins: 3, Draws: 2, Losses: 1}
	if score.Games() != 6 {
		t.Errorf("Games() = %d; want 6", score.Games())
	}

	if score.Points() != 4 {
		t.Errorf("Points() = %f; want 4", score.Points())
	}
}
