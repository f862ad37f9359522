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

import "math"

// SPRT returns the log-likelihood ratio of the hypotheses that the elo
// difference of a player with the given tally is elo1 (H1) rather than
// elo0 (H0). It uses a Dirichlet([0.5, 0.5, 0.5]) prior.
func SPRT(ws, ds, ls int, elo0, elo1 float64) (llr float64) {
	w := float64(ws) + 0.5
	d := float64(ds) + 0.5
	l := float64(ls) + 0.5

	N := w + d + l
	_, dlo := wdlToElo(w/N, d/N, l/N)

	w0, d0, l0 := eloToWDL(elo0, dlo)
	w1, d1, l1 := eloToWDL(elo1, dlo)

	return w*math.Log(w1/w0) +
		d*math.Log(d1/d0) +
		l*math.Log(l1/l0)
}

// PentaSPRT is SPRT over game pairs with normalized elo bounds. It uses the
// normal approximation of the llr, see
// http://hardy.uhasselt.be/Fishtest/support_MLE_multinomial.pdf
func PentaSPRT(lls, lds, wldds, wds, wws int, elo0, elo1 float64) (llr float64) {
	N := float64(lls + lds + wldds + wds + wws)

	if N == 0 {
		return 0
	}

	probs := pairProbabilities(lls, lds, wldds, wds, wws)

	mu := pairMean(probs)
	r := pairDeviation(probs, mu)
	if r == 0 {
		return 0
	}

	r0 := pairDeviation(probs, neloToScore(elo0, r))
	r1 := pairDeviation(probs, neloToScore(elo1, r))
	if r0 == 0 || r1 == 0 {
		return 0
	}

	return 0.5 * N * math.Log(r0/r1)
}

// Decision is the state of a sequential probability ratio test.
type Decision int

const (
	Continue Decision = iota
	AcceptH0
	AcceptH1
)

func (decision Decision) String() string {
	switch decision {
	case AcceptH0:
		return "H0 accepted"
	case AcceptH1:
		return "H1 accepted"
	default:
		return "continue"
	}
}

// Test is a sequential probability ratio test configuration.
type Test struct {
	Elo0  float64 `yaml:"elo0"`
	Elo1  float64 `yaml:"elo1"`
	Alpha float64 `yaml:"alpha"`
	Beta  float64 `yaml:"beta"`

	// Pentanomial makes the test run over game pairs.
	Pentanomial bool `yaml:"pentanomial"`
}

// Evaluate returns the llr of the given tally and the decision it leads
// to.
func (test Test) Evaluate(score Score) (float64, Decision) {
	var llr float64
	if test.Pentanomial {
		p := score.Pairs
		llr = PentaSPRT(p[0], p[1], p[2], p[3], p[4], test.Elo0, test.Elo1)
	} else {
		llr = SPRT(score.Wins, score.Draws, score.Losses, test.Elo0, test.Elo1)
	}

	lower, upper := StoppingBounds(test.Alpha, test.Beta)
	switch {
	case llr <= lower:
		return llr, AcceptH0
	case llr >= upper:
		return llr, AcceptH1
	default:
		return llr, Continue
	}
}
