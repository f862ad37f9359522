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
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/sandy14795/Intelligent-AI-Teeko-player/pkg/board"
	"github.com/sandy14795/Intelligent-AI-Teeko-player/pkg/engine"
	"github.com/sandy14795/Intelligent-AI-Teeko-player/pkg/record"
	"github.com/sandy14795/Intelligent-AI-Teeko-player/pkg/stats"
)

// PlayerConfig describes a tournament participant.
type PlayerConfig struct {
	Name string `yaml:"name"`

	// Type is one of "engine", "random", or "process".
	Type string `yaml:"type"`

	// Options of engine players.
	Depth   int   `yaml:"depth"`
	Threads int   `yaml:"threads"`
	Seed    int64 `yaml:"seed"`

	// Process describes how to start process players.
	Process ProcessConfig `yaml:"process"`

	TimeC string `yaml:"tc"`
}

// NewPlayer creates the player described by the config. The given seed is
// added to the player's own seed.
func NewPlayer(config PlayerConfig, seed int64) (Player, error) {
	rng := rand.New(rand.NewSource(config.Seed + seed))

	switch config.Type {
	case "", "engine":
		options := engine.DefaultOptions()
		if config.Depth > 0 {
			options.Depth = config.Depth
		}

		options.Concurrency = config.Threads
		options.Rand = rng
		return NewEnginePlayer(config.Name, options), nil

	case "random":
		return NewRandomPlayer(config.Name, rng), nil

	case "process":
		process := config.Process
		process.Name = config.Name
		player, err := StartProcess(process)
		if err != nil {
			return nil, fmt.Errorf("player %s: %w", config.Name, err)
		}

		return player, nil

	default:
		return nil, fmt.Errorf("player %s: unknown type %q", config.Name, config.Type)
	}
}

// Config is the configuration of a tournament between two players.
type Config struct {
	Event string `yaml:"event"`

	// The players participating in the tournament.
	Players [2]PlayerConfig `yaml:"players"`

	// Number of game pairs to play. The players swap sides between the
	// games of a pair, which share the same opening.
	GamePairs int `yaml:"game-pairs"`

	// Number of games that will be played concurrently.
	Concurrency int `yaml:"concurrency"`

	// Number of plies after which a game is drawn.
	MaxPlies int `yaml:"max-plies"`

	Openings struct {
		File  string `yaml:"file"`
		Order string `yaml:"order"`
	} `yaml:"openings"`

	// Sprt, if set, stops the tournament once the test is decided.
	Sprt *stats.Test `yaml:"sprt"`
}

// LoadConfig reads a tournament config from the given yaml file.
func LoadConfig(path string) (Config, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	var config Config
	if err := yaml.Unmarshal(file, &config); err != nil {
		return Config{}, fmt.Errorf("tournament config %s: %w", path, err)
	}

	return config, nil
}

// Recorder stores finished games.
type Recorder interface {
	Save(ctx context.Context, game record.Game) (int64, error)
}

// NewTournament creates a new tournament with the given config.
func NewTournament(config Config) (*Tournament, error) {
	if config.GamePairs <= 0 {
		config.GamePairs = 1
	}

	if config.Concurrency <= 0 {
		config.Concurrency = 1
	}

	for i, player := range config.Players {
		if player.Name == "" {
			return nil, fmt.Errorf("player %d has no name", i+1)
		}
	}

	if config.Players[0].Name == config.Players[1].Name {
		return nil, errors.New("players must have different names")
	}

	tour := Tournament{Config: config}

	var err error
	for i, player := range config.Players {
		if tour.timeControls[i], err = ParseTime(player.TimeC); err != nil {
			return nil, fmt.Errorf("player %s: %w", player.Name, err)
		}
	}

	rng := rand.New(rand.NewSource(config.Players[0].Seed))
	if config.Openings.File != "" {
		tour.openings, err = NewBook(config.Openings.File, config.Openings.Order, rng)
	} else {
		tour.openings, err = ParseBook("", config.Openings.Order, rng)
	}

	if err != nil {
		return nil, err
	}

	tour.pairs = make(map[int]Result)
	return &tour, nil
}

// Tournament is a match of game pairs between two players.
type Tournament struct {
	Config Config

	// Store, if not nil, records every finished game.
	Store Recorder

	// OnResult, if not nil, is called after every finished game.
	OnResult func(games int, score stats.Score)

	openings     *OpeningBook
	timeControls [2]TimeControl

	mu       sync.Mutex
	score    stats.Score
	pairs    map[int]Result
	llr      float64
	decision stats.Decision
}

// Total returns the number of games in the tournament.
func (tour *Tournament) Total() int {
	return 2 * tour.Config.GamePairs
}

// Score returns the tally of the games finished so far from the first
// player's perspective.
func (tour *Tournament) Score() stats.Score {
	tour.mu.Lock()
	defer tour.mu.Unlock()
	return tour.score
}

// Decision returns the state of the tournament's SPRT along with its llr.
func (tour *Tournament) Decision() (stats.Decision, float64) {
	tour.mu.Lock()
	defer tour.mu.Unlock()
	return tour.decision, tour.llr
}

// Start plays the tournament. It returns once every game is finished, the
// SPRT is decided, or the context is done.
func (tour *Tournament) Start(ctx context.Context) error {
	// 1 Tournament = {GAME_P} Game Pairs
	// 1 Game Pair  = 2 Games

	runCtx, stop := context.WithCancel(ctx)
	defer stop()

	group, groupCtx := errgroup.WithContext(runCtx)
	group.SetLimit(tour.Config.Concurrency)

scheduling:
	for pair := 0; pair < tour.Config.GamePairs; pair++ {
		opening := tour.openings.Current()
		tour.openings.Next()

		for swap := 0; swap < 2; swap++ {
			if groupCtx.Err() != nil {
				break scheduling
			}

			pair, swap := pair, swap
			group.Go(func() error {
				return tour.runGame(groupCtx, stop, pair, swap == 1, opening)
			})
		}
	}

	err := group.Wait()
	if decision, _ := tour.Decision(); decision != stats.Continue {
		return nil
	}

	if err != nil {
		return err
	}

	return ctx.Err()
}

func (tour *Tournament) runGame(ctx context.Context, stop context.CancelFunc, pair int, swapped bool, opening []board.Move) error {
	number := 2*pair + 1
	if swapped {
		number++
	}

	var players [2]Player
	for i, config := range tour.Config.Players {
		player, err := NewPlayer(config, int64(number))
		if err != nil {
			for _, started := range players[:i] {
				started.Close()
			}

			return err
		}

		players[i] = player
	}

	defer players[0].Close()
	defer players[1].Close()

	game := Game{
		Players:      players,
		Opening:      opening,
		TimeControls: tour.timeControls,
		MaxPlies:     tour.Config.MaxPlies,
	}

	if swapped {
		game.Players[0], game.Players[1] = players[1], players[0]
		game.TimeControls[0], game.TimeControls[1] = tour.timeControls[1], tour.timeControls[0]
	}

	logrus.Infof(
		"\x1b[33mStarting\x1b[0m Game #%d: %s vs %s",
		number, game.Players[0].Name(), game.Players[1].Name(),
	)

	outcome := game.Run(ctx)
	if ctx.Err() != nil {
		// the tournament was stopped mid-game
		return nil
	}

	logrus.Infof(
		"\x1b[32mFinished\x1b[0m Game #%d: %s vs %s: %s {%s}",
		number, game.Players[0].Name(), game.Players[1].Name(),
		outcome.Result, outcome.Reason,
	)

	if tour.Store != nil {
		if _, err := tour.Store.Save(ctx, record.Game{
			StartedAt: outcome.StartedAt,
			Black:     game.Players[0].Name(),
			Red:       game.Players[1].Name(),
			Result:    outcome.Result.String(),
			Reason:    outcome.Reason,
			Moves:     outcome.Moves,
		}); err != nil {
			return err
		}
	}

	// result from the first player's perspective
	result := outcome.Result
	if swapped {
		result = -result
	}

	tour.tally(pair, result, stop)
	return nil
}

func (tour *Tournament) tally(pair int, result Result, stop context.CancelFunc) {
	tour.mu.Lock()

	switch result {
	case Win:
		tour.score.Wins++
	case Loss:
		tour.score.Losses++
	default:
		tour.score.Draws++
	}

	if other, found := tour.pairs[pair]; found {
		delete(tour.pairs, pair)
		tour.score.Pairs[GetPairResult(result, other)+2]++
	} else {
		tour.pairs[pair] = result
	}

	if tour.Config.Sprt != nil && tour.decision == stats.Continue {
		tour.llr, tour.decision = tour.Config.Sprt.Evaluate(tour.score)
		if tour.decision != stats.Continue {
			logrus.Infof("SPRT finished: %s (llr %.2f)", tour.decision, tour.llr)
			stop()
		}
	}

	score := tour.score
	tour.mu.Unlock()

	if tour.OnResult != nil {
		tour.OnResult(score.Games(), score)
	}
}

// Report writes a table of the tournament's standings to the given writer.
func (tour *Tournament) Report(w io.Writer) {
	score := tour.Score()
	lower, elo, upper := score.Elo()
	if tour.Config.Sprt != nil && tour.Config.Sprt.Pentanomial {
		lower, elo, upper = score.PentaElo()
	}

	fmt.Fprintln(w, "╔══════════════════════════════════════════════════════════╗")
	fmt.Fprintln(w, "║    Name               Elo Error   Wins Loss Draw   Total ║")
	fmt.Fprintln(w, "╠══════════════════════════════════════════════════════════╣")

	format := "║ %2d. %-15s   %+4.0f %4.0f   %4d %4d %4d   %5d ║\n"
	fmt.Fprintf(
		w, format,
		1, tour.Config.Players[0].Name,
		elo, math.Abs(math.Max(upper-elo, elo-lower)),
		score.Wins, score.Losses, score.Draws, score.Games(),
	)
	fmt.Fprintf(
		w, format,
		2, tour.Config.Players[1].Name,
		-elo, math.Abs(math.Max(upper-elo, elo-lower)),
		score.Losses, score.Wins, score.Draws, score.Games(),
	)

	fmt.Fprintln(w, "╚══════════════════════════════════════════════════════════╝")

	if tour.Config.Sprt != nil {
		decision, llr := tour.Decision()
		lowerBound, upperBound := stats.StoppingBounds(tour.Config.Sprt.Alpha, tour.Config.Sprt.Beta)
		fmt.Fprintf(
			w, "SPRT [%.1f, %.1f]: llr %.2f (%.2f, %.2f) %s\n",
			tour.Config.Sprt.Elo0, tour.Config.Sprt.Elo1,
			llr, lowerBound, upperBound, decision,
		)
	}
}
