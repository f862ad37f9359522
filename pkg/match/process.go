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
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"regexp"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/sandy14795/Intelligent-AI-Teeko-player/pkg/board"
	"github.com/sandy14795/Intelligent-AI-Teeko-player/pkg/protocol"
)

// ProcessConfig describes how to start an engine process which speaks the
// teeko engine interface.
type ProcessConfig struct {
	Name string `yaml:"name"`
	Cmd  string `yaml:"cmd"`
	Dir  string `yaml:"dir"`
	Arg  string `yaml:"arg"`

	// Env holds extra environment variables of the process.
	Env []string `yaml:"env"`

	InitStr string `yaml:"init-string"`

	Options map[string]string `yaml:"options"`
}

// HandshakeTimeout is the time an engine process has to answer the
// handshake and synchronization commands.
const HandshakeTimeout = 5 * time.Second

// StartProcess starts the engine process described by the given config
// and performs the initial handshake with it.
func StartProcess(config ProcessConfig) (*ProcessPlayer, error) {
	var player ProcessPlayer
	process := exec.Command(config.Cmd, strings.Fields(config.Arg)...)

	player.config = config

	process.Dir = config.Dir
	if len(config.Env) > 0 {
		process.Env = append(os.Environ(), config.Env...)
	}

	stdin, err := process.StdinPipe()
	if err != nil {
		return nil, err
	}

	stdout, err := process.StdoutPipe()
	if err != nil {
		return nil, err
	}

	player.writer = bufio.NewWriter(stdin)
	player.reader = bufio.NewReader(stdout)
	player.lines = make(chan string)
	player.done = make(chan struct{})

	player.Cmd = process

	if err := player.Cmd.Start(); err != nil {
		return nil, err
	}

	go player.readLines()

	if player.config.InitStr != "" {
		if err := player.Write(player.config.InitStr); err != nil {
			player.Close()
			return nil, err
		}
	}

	if err := player.Initialize(); err != nil {
		player.Close()
		return nil, err
	}

	for name, value := range player.config.Options {
		if err := player.Write("setoption name %s value %s", name, value); err != nil {
			player.Close()
			return nil, err
		}
	}

	return &player, nil
}

// ProcessPlayer is a Player backed by an engine running in a separate
// process, talked to over its standard input and output.
type ProcessPlayer struct {
	config ProcessConfig

	*exec.Cmd

	writer *bufio.Writer
	reader *bufio.Reader

	lines chan string
	done  chan struct{}

	err error
}

var _ Player = (*ProcessPlayer)(nil)

func (player *ProcessPlayer) readLines() {
	defer close(player.lines)
	for {
		line, err := player.reader.ReadString('\n')
		if err != nil {
			player.err = err
			return
		}

		line = strings.Trim(line, " \n\t\r")

		logrus.Debugf("info: (%s)> %s", player.config.Name, line)
		select {
		case player.lines <- line:
		case <-player.done:
			return
		}
	}
}

func (player *ProcessPlayer) Name() string {
	return player.config.Name
}

// Initialize performs the protocol handshake with the engine.
func (player *ProcessPlayer) Initialize() error {
	if err := player.Write("tei"); err != nil {
		return err
	}

	_, err := player.Await(context.Background(), "teiok", HandshakeTimeout)
	return err
}

// NewGame prepares the engine for a new game of teeko.
func (player *ProcessPlayer) NewGame(ctx context.Context, piece board.Piece) error {
	if err := player.Write("teinewgame"); err != nil {
		return err
	}

	return player.Synchronize(ctx)
}

// Synchronize waits for the engine to complete some time consuming task
// and synchronizes the interface with it.
func (player *ProcessPlayer) Synchronize(ctx context.Context) error {
	if err := player.Write("isready"); err != nil {
		return err
	}

	_, err := player.Await(ctx, "readyok", HandshakeTimeout)
	return err
}

// Move sends the game so far to the engine and waits for its best move.
// The engine has until the context is done to answer.
func (player *ProcessPlayer) Move(ctx context.Context, position Position) (board.Move, error) {
	var moves strings.Builder
	for _, move := range position.Moves {
		moves.WriteString(" ")
		moves.WriteString(strings.ToLower(move.String()))
	}

	if moves.Len() > 0 {
		if err := player.Write("position startpos moves%s", moves.String()); err != nil {
			return board.Move{}, err
		}
	} else if err := player.Write("position startpos"); err != nil {
		return board.Move{}, err
	}

	if err := player.Synchronize(ctx); err != nil {
		return board.Move{}, err
	}

	black, red := position.Clock[0], position.Clock[1]
	if black.Unlimited() && red.Unlimited() {
		if err := player.Write("go"); err != nil {
			return board.Move{}, err
		}
	} else if err := player.Write(
		"go btime %d rtime %d binc %d rinc %d",
		black.Base.Milliseconds(), red.Base.Milliseconds(),
		black.Inc.Milliseconds(), red.Inc.Milliseconds(),
	); err != nil {
		return board.Move{}, err
	}

	line, err := player.Await(ctx, "^bestmove .*", 0)
	if err != nil {
		return board.Move{}, err
	}

	fields := strings.Fields(line)
	if len(fields) < 2 || fields[1] == protocol.NullMove {
		return board.Move{}, ErrNullMove
	}

	return board.ParseMove(fields[1])
}

// Close asks the engine to quit and kills its process.
func (player *ProcessPlayer) Close() error {
	select {
	case <-player.done:
		return nil
	default:
		close(player.done)
	}

	_ = player.Write("quit")
	if player.Process == nil {
		return nil
	}

	err := player.Process.Kill()
	_ = player.Wait()
	return err
}

var ErrReadTimeout = errors.New("engine: read i/o timeout")

// Await waits for a line from the engine which matches the given pattern.
// It gives up when the context is done, or after the timeout if it is
// non-zero.
func (player *ProcessPlayer) Await(ctx context.Context, pattern string, timeout time.Duration) (string, error) {
	regex := regexp.MustCompile(pattern)

	var expired <-chan time.Time
	if timeout > 0 {
		timer := time.NewTimer(timeout)
		defer timer.Stop()
		expired = timer.C
	}

	for {
		select {
		case <-expired:
			// timer ran out: wait timeout
			return "", ErrReadTimeout

		case <-ctx.Done():
			return "", ctx.Err()

		case line, ok := <-player.lines:
			if !ok {
				if player.err != nil {
					return "", fmt.Errorf("engine: %w", player.err)
				}

				return "", errors.New("engine: output closed")
			}

			if regex.MatchString(line) {
				// line is the expected line
				return line, nil
			}
		}
	}
}

// Write sends a command to the engine.
func (player *ProcessPlayer) Write(format string, a ...any) error {
	logrus.Debugf("info: (%s)< %s", player.config.Name, fmt.Sprintf(format, a...))

	if _, err := fmt.Fprintf(player.writer, format+"\n", a...); err != nil {
		return err
	}

	return player.writer.Flush()
}
