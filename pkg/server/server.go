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

// Package server implements a websocket server on which teeko games can be
// played against the engine. Every connection plays its own game against
// its own engine.
//
// Clients send json messages of the form
//
//	{"type": "new", "piece": "b"}
//	{"type": "move", "move": "B3C2"}
//
// where piece is the client's side, and are answered with state messages
// holding the board in FEN, the engine's side and last move, and the
// winner once the game is over. Idle connections receive ping messages.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/sandy14795/Intelligent-AI-Teeko-player/pkg/engine"
	"github.com/sandy14795/Intelligent-AI-Teeko-player/pkg/match"
)

// DefaultPingInterval is the time after which an idle connection is sent a
// ping message.
const DefaultPingInterval = 30 * time.Second

// Message is a message sent by a client.
type Message struct {
	Type  string `json:"type"`
	Piece string `json:"piece,omitempty"`
	Move  string `json:"move,omitempty"`
}

// State is a message sent to a client.
type State struct {
	Type    string `json:"type"`
	Board   string `json:"board,omitempty"`
	Engine  string `json:"engine,omitempty"`
	Turn    string `json:"turn,omitempty"`
	Move    string `json:"move,omitempty"`
	Winner  string `json:"winner,omitempty"`
	Pattern string `json:"pattern,omitempty"`
	Error   string `json:"error,omitempty"`
}

// New creates a new Server whose engines are configured with the given
// options. The engines' sides and sources of randomness are picked per
// game.
func New(options engine.Options) *Server {
	return &Server{
		Options:      options,
		PingInterval: DefaultPingInterval,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Server is a websocket teeko server.
type Server struct {
	Options engine.Options

	// Store, if not nil, records every finished game.
	Store match.Recorder

	PingInterval time.Duration

	upgrader websocket.Upgrader
}

// Handler returns the server's http handler, which serves websocket
// connections on /ws.
func (server *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", server.ServeWS)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	return mux
}

// ListenAndServe serves the server's handler on the given address until
// the context is done.
func (server *Server) ListenAndServe(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           server.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errs := make(chan error, 1)
	go func() {
		logrus.Infof("serving teeko on %s", addr)
		errs <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return err
		}

		if err := <-errs; !errors.Is(err, http.ErrServerClosed) {
			return err
		}

		return nil
	}
}

// ServeWS upgrades the request to a websocket connection and plays games
// on it until it is closed.
func (server *Server) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := server.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logrus.WithError(err).Debug("websocket upgrade failed")
		return
	}

	log := logrus.WithField("remote", r.RemoteAddr)
	log.Debug("websocket connected")

	send := make(chan []byte, 16)
	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		defer conn.Close()
		if err := writeWithHeartbeat(conn, send, server.pingInterval()); err != nil {
			log.WithError(err).Debug("websocket write failed")
		}
	}()

	session := newSession(server.Options, server.Store)
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			break
		}

		var msg Message
		var state State
		if err := json.Unmarshal(data, &msg); err != nil {
			state = session.state()
			state.Error = "invalid message: " + err.Error()
		} else {
			state = session.handle(r.Context(), msg)
		}

		if msg.Type == "pong" {
			continue
		}

		payload, err := json.Marshal(state)
		if err != nil {
			continue
		}

		select {
		case send <- payload:
		case <-writerDone:
		}
	}

	close(send)
	<-writerDone
	log.Debug("websocket disconnected")
}

func (server *Server) pingInterval() time.Duration {
	if server.PingInterval <= 0 {
		return DefaultPingInterval
	}

	return server.PingInterval
}

func writeWithHeartbeat(conn *websocket.Conn, send <-chan []byte, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	lastWrite := time.Now()
	pingPayload, _ := json.Marshal(State{Type: "ping"})

	for {
		select {
		case msg, ok := <-send:
			if !ok {
				return nil
			}
			if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return err
			}
			lastWrite = time.Now()
		case <-ticker.C:
			if time.Since(lastWrite) < interval {
				continue
			}
			if err := conn.WriteMessage(websocket.TextMessage, pingPayload); err != nil {
				return err
			}
			lastWrite = time.Now()
		}
	}
}
