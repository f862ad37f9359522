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

// Package record stores the games played by teeko in a sqlite database.
package record

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/sandy14795/Intelligent-AI-Teeko-player/pkg/board"
)

// Memory is the path of a database which is kept in memory.
const Memory = ":memory:"

// Game is a finished game.
type Game struct {
	ID        int64
	StartedAt time.Time

	Black, Red string

	// Result is the result from Black's perspective, like "1-0".
	Result string
	Reason string

	Moves []board.Move
}

// Store is a sqlite database of games.
type Store struct {
	db *sql.DB
}

// Open opens the database at the given path, creating it and its parent
// directories if needed.
func Open(path string) (*Store, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("record: empty database path")
	}

	if path != Memory {
		parent := filepath.Dir(path)
		if parent != "" && parent != "." {
			if err := os.MkdirAll(parent, 0o755); err != nil {
				return nil, err
			}
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// an in-memory database lives only as long as its connection
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pragmas := []string{`PRAGMA busy_timeout = 5000;`}
	if path != Memory {
		pragmas = append(pragmas, `PRAGMA journal_mode = WAL;`)
	}

	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	if err := ensureSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

func ensureSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS games (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    started_at_ms INTEGER NOT NULL,
    black TEXT NOT NULL,
    red TEXT NOT NULL,
    result TEXT NOT NULL,
    reason TEXT NOT NULL DEFAULT '',
    moves TEXT NOT NULL DEFAULT ''
);
`)
	return err
}

// Close closes the database.
func (store *Store) Close() error {
	if store == nil || store.db == nil {
		return nil
	}

	return store.db.Close()
}

// Save inserts the given game into the database and returns its id.
func (store *Store) Save(ctx context.Context, game Game) (int64, error) {
	moves := make([]string, len(game.Moves))
	for i, move := range game.Moves {
		moves[i] = move.String()
	}

	res, err := store.db.ExecContext(ctx, `
INSERT INTO games (started_at_ms, black, red, result, reason, moves)
VALUES (?, ?, ?, ?, ?, ?)
`, game.StartedAt.UnixMilli(), game.Black, game.Red, game.Result, game.Reason, strings.Join(moves, " "))
	if err != nil {
		return 0, fmt.Errorf("record: save game: %w", err)
	}

	return res.LastInsertId()
}

// List returns the latest games in the database, newest first. A limit of
// zero or less lists every game.
func (store *Store) List(ctx context.Context, limit int) ([]Game, error) {
	if limit <= 0 {
		limit = -1
	}

	rows, err := store.db.QueryContext(ctx, `
SELECT id, started_at_ms, black, red, result, reason, moves
FROM games
ORDER BY id DESC
LIMIT ?
`, limit)
	if err != nil {
		return nil, fmt.Errorf("record: list games: %w", err)
	}
	defer rows.Close()

	var games []Game
	for rows.Next() {
		var game Game
		var startedAtMs int64
		var moves string
		if err := rows.Scan(
			&game.ID, &startedAtMs, &game.Black, &game.Red,
			&game.Result, &game.Reason, &moves,
		); err != nil {
			return nil, err
		}

		game.StartedAt = time.UnixMilli(startedAtMs)
		for _, str := range strings.Fields(moves) {
			move, err := board.ParseMove(str)
			if err != nil {
				return nil, fmt.Errorf("record: game %d: %w", game.ID, err)
			}

			game.Moves = append(game.Moves, move)
		}

		games = append(games, game)
	}

	return games, rows.Err()
}
