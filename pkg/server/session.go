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

package server

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/sandy14795/Intelligent-AI-Teeko-player/pkg/board"
	"github.com/sandy14795/Intelligent-AI-Teeko-player/pkg/engine"
	"github.com/sandy14795/Intelligent-AI-Teeko-player/pkg/match"
	"github.com/sandy14795/Intelligent-AI-Teeko-player/pkg/record"
)

var (
	ErrNoGame   = errors.New("no game in progress")
	ErrGameOver = errors.New("game is over")
)

// session is the game played on a single connection.
type session struct {
	options engine.Options
	store   match.Recorder

	engine    *engine.Engine
	moves     []board.Move
	lastMove  board.Move
	moved     bool
	over      bool
	startedAt time.Time
}

func newSession(options engine.Options, store match.Recorder) *session {
	// sources of randomness can't be shared between connections
	options.Rand = nil
	return &session{options: options, store: store}
}

func (s *session) handle(ctx context.Context, msg Message) State {
	var err error
	switch msg.Type {
	case "new":
		err = s.newGame(ctx, msg.Piece)
	case "move":
		err = s.move(ctx, msg.Move)
	case "state", "pong":
	default:
		err = errors.New("unknown message type " + msg.Type)
	}

	state := s.state()
	if err != nil {
		state.Error = err.Error()
	}

	return state
}

// newGame starts a new game in which the client plays the given side. The
// client's side is picked randomly if it is empty.
func (s *session) newGame(ctx context.Context, piece string) error {
	options := s.options
	options.Piece = board.Empty
	if piece != "" {
		client, err := board.ParsePiece(piece)
		if err != nil {
			return err
		}

		options.Piece = client.Other()
	}

	s.engine = engine.New(options)
	s.moves = nil
	s.moved = false
	s.over = false
	s.startedAt = time.Now()

	logrus.WithField("engine", s.engine.Piece()).Debug("new websocket game")

	if s.engine.Piece() == board.Black {
		return s.engineMove(ctx)
	}

	return nil
}

func (s *session) move(ctx context.Context, str string) error {
	if s.engine == nil {
		return ErrNoGame
	}

	if s.over {
		return ErrGameOver
	}

	move, err := board.ParseMove(str)
	if err != nil {
		return err
	}

	position := s.engine.Board()
	if err := position.Legal(move, s.engine.Opponent()); err != nil {
		return err
	}

	if err := s.engine.ReceiveOpponentMove(move); err != nil {
		return err
	}

	s.moves = append(s.moves, move)
	if s.finished(ctx) {
		return nil
	}

	return s.engineMove(ctx)
}

func (s *session) engineMove(ctx context.Context) error {
	move, err := s.engine.MakeMove(ctx)
	if err != nil {
		return err
	}

	s.lastMove, s.moved = move, true
	s.moves = append(s.moves, move)
	s.finished(ctx)
	return nil
}

// finished reports whether the game is over, recording it if it is.
func (s *session) finished(ctx context.Context) bool {
	if s.engine.Winner() == board.Empty {
		return false
	}

	s.over = true
	if s.store == nil {
		return true
	}

	game := record.Game{
		StartedAt: s.startedAt,
		Black:     "client",
		Red:       "engine",
		Result:    match.GameLostBy[0].String(),
		Moves:     s.moves,
	}

	if s.engine.Piece() == board.Black {
		game.Black, game.Red = game.Red, game.Black
	}

	b := s.engine.Board()
	winner, pattern := b.Winner()
	if winner == board.Black {
		game.Result = match.GameLostBy[1].String()
	}

	game.Reason = winner.String() + " connects four with a " + pattern.String()
	if _, err := s.store.Save(ctx, game); err != nil {
		logrus.WithError(err).Warn("failed to record websocket game")
	}

	return true
}

func (s *session) state() State {
	state := State{Type: "state"}
	if s.engine == nil {
		state.Board = board.Board{}.FEN()
		return state
	}

	b := s.engine.Board()
	state.Board = b.FEN()
	state.Engine = s.engine.Piece().String()
	state.Turn = b.SideToMove().String()
	if s.moved {
		state.Move = s.lastMove.String()
	}

	if winner, pattern := b.Winner(); winner != board.Empty {
		state.Winner = winner.String()
		state.Pattern = pattern.String()
		state.Turn = ""
	}

	return state
}
