// internal/server/server.go

// Package server exposes the chat API over HTTP. The surface is deliberately
// small: one chat endpoint plus a health probe; metrics and pprof live on a
// separate listener owned by main.
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"foodiebot/internal/common/errors"
	"foodiebot/internal/common/logger"
	"foodiebot/internal/engine"
)

type ChatRequest struct {
	ConversationID string `json:"conversationId,omitempty"`
	Message        string `json:"message"`
}

type errorEnvelope struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

type Server struct {
	engine *engine.Engine
	logger logger.Logger
	http   *http.Server
}

func New(address string, eng *engine.Engine, log logger.Logger) *Server {
	s := &Server{
		engine: eng,
		logger: log.WithFields(map[string]interface{}{"component": "server"}),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/chat", s.handleChat)
	mux.HandleFunc("/healthz", s.handleHealth)

	s.http = &http.Server{
		Addr:              address,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

func (s *Server) ListenAndServe() error {
	s.logger.Info("chat API listening", map[string]interface{}{"address": s.http.Addr})
	return s.http.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

// Handler exposes the routing mux for tests.
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "use POST")
		return
	}

	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_REQUEST", "request body must be JSON")
		return
	}

	result, err := s.engine.ProcessTurn(r.Context(), req.ConversationID, req.Message)
	if err != nil {
		s.logger.WithError(err).Error("turn failed", map[string]interface{}{
			"conversationId": req.ConversationID,
		})
		if errors.CodeOf(err) == errors.ErrCodeCatalogUnavailable {
			writeError(w, http.StatusServiceUnavailable, string(errors.ErrCodeCatalogUnavailable), "product catalog is unavailable, try again shortly")
			return
		}
		writeError(w, http.StatusInternalServerError, "INTERNAL", "turn processing failed")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(result)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	var env errorEnvelope
	env.Error.Code = code
	env.Error.Message = message

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(env)
}
