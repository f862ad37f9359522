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

// Elo returns the likely elo difference of a player with the given tally
// along with the bounds of its 95% confidence interval. A half game of
// each result is added to the tally so that one sided tallies still
// produce an estimate.
func Elo(ws, ds, ls int) (lower float64, elo float64, upper float64) {
	N := float64(ws+ds+ls) + 1.5

	w := (float64(ws) + 0.5) / N
	d := (float64(ds) + 0.5) / N
	l := (float64(ls) + 0.5) / N

	// empirical mean of the per game score
	mu := w + d/2

	sigma := math.Sqrt(
		w*math.Pow(1-mu, 2)+
			d*math.Pow(0.5-mu, 2)+
			l*math.Pow(0-mu, 2),
	) / math.Sqrt(N)

	lower = scoreToElo(mu + phiInv(0.025)*sigma)
	upper = scoreToElo(mu + phiInv(0.975)*sigma)
	return lower, scoreToElo(mu), upper
}

// PentaElo is Elo over game pairs, given the number of loss-loss,
// loss-draw, win-loss or draw-draw, win-draw, and win-win pairs.
func PentaElo(lls, lds, wldds, wds, wws int) (lower float64, elo float64, upper float64) {
	N := float64(lls + lds + wldds + wds + wws)

	if N == 0 {
		return 0, 0, 0
	}

	probs := pairProbabilities(lls, lds, wldds, wds, wws)

	// empirical mean of the per game score of a pair
	mu := pairMean(probs)

	sigma := pairDeviation(probs, mu) / math.Sqrt(N)

	lower = scoreToElo(mu + phiInv(0.025)*sigma)
	upper = scoreToElo(mu + phiInv(0.975)*sigma)
	return lower, scoreToElo(mu), upper
}

// pairScores is the per game score of each kind of pair.
var pairScores = [5]float64{0, 0.25, 0.5, 0.75, 1}

func pairProbabilities(lls, lds, wldds, wds, wws int) [5]float64 {
	N := float64(lls + lds + wldds + wds + wws)
	return [5]float64{
		float64(lls) / N,
		float64(lds) / N,
		float64(wldds) / N,
		float64(wds) / N,
		float64(wws) / N,
	}
}

func pairMean(probs [5]float64) float64 {
	var mu float64
	for i, p := range probs {
		mu += p * pairScores[i]
	}

	return mu
}

func pairDeviation(probs [5]float64, mu float64) float64 {
	var variance float64
	for i, p := range probs {
		variance += p * math.Pow(pairScores[i]-mu, 2)
	}

	return math.Sqrt(variance)
}
