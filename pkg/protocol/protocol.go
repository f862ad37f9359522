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

// Package protocol implements the engine side of the Teeko Engine
// Interface (TEI), a line based protocol modelled after UCI and UAI which
// allows a teeko engine to be driven as a subprocess.
//
//	tei                                 -> id ..., option ..., teiok
//	isready                             -> readyok
//	setoption name <id> value <x>
//	teinewgame
//	position startpos [moves <m>...]
//	position fen <fen> [b|r] [moves <m>...]
//	go                                  -> info ..., bestmove <m>
//	d                                   -> prints the board
//	quit
package protocol

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/sandy14795/Intelligent-AI-Teeko-player/pkg/board"
	"github.com/sandy14795/Intelligent-AI-Teeko-player/pkg/engine"
)

// NullMove is sent as the best move when the side to move has no move.
const NullMove = "0000"

// MaxDepth is the largest depth accepted by the Depth option.
const MaxDepth = 4

// Server reads TEI commands and writes the engine's responses.
type Server struct {
	Name   string
	Author string

	reader *bufio.Scanner
	writer *bufio.Writer

	options engine.Options
	seed    int64

	board board.Board
	turn  board.Piece
}

// NewServer creates a new TEI server which reads commands from r and
// writes its responses to w.
func NewServer(r io.Reader, w io.Writer) *Server {
	server := &Server{
		Name:   "Teeko",
		Author: "the Teeko developers",

		reader: bufio.NewScanner(r),
		writer: bufio.NewWriter(w),

		options: engine.DefaultOptions(),
	}

	server.NewGame()
	return server
}

// Run executes commands until the quit command is received or the input
// is exhausted.
func (server *Server) Run(ctx context.Context) error {
	for server.reader.Scan() {
		line := strings.TrimSpace(server.reader.Text())
		logrus.Debugf("info: (tei)> %s", line)

		quit, err := server.Execute(ctx, line)
		if err != nil {
			logrus.Debug(err)
			server.write("info string %s", err)
		}

		if flushErr := server.writer.Flush(); flushErr != nil {
			return flushErr
		}

		if quit {
			return nil
		}
	}

	return server.reader.Err()
}

// Execute executes a single command. It reports whether the server should
// stop after the command.
func (server *Server) Execute(ctx context.Context, line string) (bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}

	args := fields[1:]
	switch fields[0] {
	case "tei":
		server.write("id name %s", server.Name)
		server.write("id author %s", server.Author)
		server.write("option name Depth type spin default %d min 0 max %d", engine.DefaultDepth, MaxDepth)
		server.write("option name Threads type spin default 1 min 1 max 64")
		server.write("option name Seed type spin default 0")
		server.write("teiok")
	case "isready":
		server.write("readyok")
	case "teinewgame":
		server.NewGame()
	case "setoption":
		return false, server.setOption(args)
	case "position":
		return false, server.position(args)
	case "go":
		return false, server.search(ctx)
	case "d":
		server.write("%s", server.board)
		server.write("fen %s %s", server.board.FEN(), server.turn)
	case "quit":
		return true, nil
	default:
		return false, fmt.Errorf("unknown command %q", fields[0])
	}

	return false, nil
}

// NewGame resets the server's position to the starting position.
func (server *Server) NewGame() {
	server.board = board.Board{}
	server.turn = board.Black
}

func (server *Server) setOption(args []string) error {
	// setoption name <id> value <x>
	if len(args) != 4 || args[0] != "name" || args[2] != "value" {
		return errors.New("setoption: expected name <id> value <x>")
	}

	value, err := strconv.Atoi(args[3])
	if err != nil {
		return fmt.Errorf("setoption: %w", err)
	}

	switch strings.ToLower(args[1]) {
	case "depth":
		if value < 0 || value > MaxDepth {
			return fmt.Errorf("setoption: depth %d out of range", value)
		}

		server.options.Depth = value
	case "threads":
		server.options.Concurrency = value
	case "seed":
		server.seed = int64(value)
	default:
		return fmt.Errorf("setoption: unknown option %q", args[1])
	}

	return nil
}

func (server *Server) position(args []string) error {
	if len(args) == 0 {
		return errors.New("position: missing position")
	}

	var b board.Board
	var turn board.Piece

	switch args[0] {
	case "startpos":
		b, turn = board.Board{}, board.Black
		args = args[1:]
	case "fen":
		if len(args) < 2 {
			return errors.New("position: missing fen")
		}

		var err error
		if b, err = board.ParseFEN(args[1]); err != nil {
			return err
		}

		turn, args = b.SideToMove(), args[2:]
		if len(args) > 0 && args[0] != "moves" {
			if turn, err = board.ParsePiece(args[0]); err != nil {
				return err
			}

			args = args[1:]
		}
	default:
		return fmt.Errorf("position: unknown position type %q", args[0])
	}

	if len(args) > 0 {
		if args[0] != "moves" {
			return fmt.Errorf("position: unexpected %q", args[0])
		}

		for _, str := range args[1:] {
			move, err := board.ParseMove(str)
			if err != nil {
				return err
			}

			if err := b.Legal(move, turn); err != nil {
				return err
			}

			b.Apply(move, turn)
			turn = turn.Other()
		}
	}

	server.board, server.turn = b, turn
	return nil
}

func (server *Server) search(ctx context.Context) error {
	options := server.options
	options.Piece = server.turn
	options.Rand = rand.New(rand.NewSource(server.seed))

	player := engine.New(options)
	player.SetPosition(server.board)

	if winner, _ := server.board.Winner(); winner != board.Empty {
		server.write("bestmove %s", NullMove)
		return nil
	}

	result, err := player.Search(ctx, server.board)
	switch {
	case errors.Is(err, engine.ErrNoMoves):
		server.write("bestmove %s", NullMove)
		return nil
	case err != nil:
		return err
	}

	server.write("info depth %d nodes %d score %.4f", options.Depth, result.Nodes, result.Score)
	server.write("bestmove %s", strings.ToLower(result.Move.String()))
	return nil
}

func (server *Server) write(format string, a ...any) {
	logrus.Debugf("info: (tei)< "+format, a...)
	fmt.Fprintf(server.writer, format+"\n", a...)
}
