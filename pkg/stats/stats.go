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

// Package stats implements the statistics used to judge the outcome of a
// match between two players: elo estimates with their 95% confidence
// interval and sequential probability ratio tests, both over single games
// (trinomial) and over game pairs (pentanomial).
package stats

import "math"

// Score is the tally of a match from the perspective of its first player.
type Score struct {
	Wins, Draws, Losses int

	// Pairs counts the game pairs by their combined result, indexed from
	// loss-loss up to win-win.
	Pairs [5]int
}

// Games returns the number of games tallied.
func (score Score) Games() int {
	return score.Wins + score.Draws + score.Losses
}

// Points returns the points scored, counting a draw as half a point.
func (score Score) Points() float64 {
	return float64(score.Wins) + float64(score.Draws)/2
}

// Elo returns the trinomial elo estimate of the tally.
func (score Score) Elo() (lower, elo, upper float64) {
	return Elo(score.Wins, score.Draws, score.Losses)
}

// PentaElo returns the pentanomial elo estimate of the tally's pairs.
func (score Score) PentaElo() (lower, elo, upper float64) {
	p := score.Pairs
	return PentaElo(p[0], p[1], p[2], p[3], p[4])
}

// StoppingBounds returns the llr bounds of a SPRT with the given type I and
// type II error probabilities. H0 is accepted below lower and H1 above
// upper.
func StoppingBounds(alpha, beta float64) (lower float64, upper float64) {
	lower = math.Log(beta / (1 - alpha))
	upper = math.Log((1 - beta) / alpha)
	return
}

// scoreToElo converts an expected score into an elo difference. Scores
// outside (0, 1) have no finite elo and are reported as 0.
func scoreToElo(x float64) float64 {
	switch {
	case x <= 0, x >= 1:
		return 0

	default:
		return -400 * math.Log10(1/x-1)
	}
}

// eloToWDL converts the bayesian elo to its wdl probabilities.
func eloToWDL(elo, dlo float64) (w float64, d float64, l float64) {
	w = 1 / (1 + math.Pow(10, (-elo+dlo)/400))
	l = 1 / (1 + math.Pow(10, (+elo+dlo)/400))
	d = 1 - w - l
	return w, d, l
}

// wdlToElo converts the wdl probabilities to its bayesian elo and drawelo.
func wdlToElo(w, d, l float64) (elo float64, dlo float64) {
	elo = 200 * math.Log10((w/l)*((1-l)/(1-w)))
	dlo = 200 * math.Log10(((1-l)/l)*((1-w)/w))
	return elo, dlo
}

func phiInv(p float64) float64 {
	return math.Sqrt2 * math.Erfinv(2*p-1)
}

func neloToScore(nelo, r float64) float64 {
	return nelo*math.Sqrt2*r/(800/math.Ln10) + 0.5
}
