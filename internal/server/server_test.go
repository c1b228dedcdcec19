// internal/server/server_test.go
package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodiebot/internal/catalog"
	"foodiebot/internal/common/logger"
	"foodiebot/internal/convlog"
	"foodiebot/internal/engine"
	"foodiebot/internal/models"
	"foodiebot/internal/session"
)

func newTestServer(catalogStore catalog.Store) *Server {
	eng := engine.New(engine.Config{
		TopN:                 5,
		NeutralBaselineScore: 50,
	}, catalogStore, session.NewMemoryStore(), convlog.NewMemoryStore(), logger.NewNoOpLogger())
	return New(":0", eng, logger.NewNoOpLogger())
}

func workingCatalog() catalog.Store {
	return catalog.NewMemoryStore([]models.Product{
		{ID: "FF001", Name: "Dragon Burger", Category: "Burgers", Price: 9.5, DietaryTags: []string{"spicy"}, PopularityScore: 85},
		{ID: "FF002", Name: "Vegan Wrap", Category: "Tacos & Wraps", Price: 8.25, DietaryTags: []string{"vegan"}, PopularityScore: 70},
	})
}

type brokenCatalog struct{}

func (brokenCatalog) Products(context.Context) ([]models.Product, error) {
	return nil, errors.New("connection refused")
}

func postChat(t *testing.T, srv *Server, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func TestChat_HappyPath(t *testing.T) {
	srv := newTestServer(workingCatalog())

	rec := postChat(t, srv, `{"conversationId": "conv-1", "message": "something spicy please!"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var result engine.TurnResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "conv-1", result.ConversationID)
	assert.Equal(t, 1, result.TurnIndex)
	assert.Greater(t, result.Score, 50.0)
	assert.NotEmpty(t, result.Recommendations)
	assert.NotEmpty(t, result.BotResponse)
}

func TestChat_GeneratesConversationID(t *testing.T) {
	srv := newTestServer(workingCatalog())

	rec := postChat(t, srv, `{"message": "hello"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var result engine.TurnResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.NotEmpty(t, result.ConversationID)
}

func TestChat_InvalidJSON(t *testing.T) {
	srv := newTestServer(workingCatalog())

	rec := postChat(t, srv, `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestChat_MethodNotAllowed(t *testing.T) {
	srv := newTestServer(workingCatalog())

	req := httptest.NewRequest(http.MethodGet, "/api/chat", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestChat_CatalogUnavailable(t *testing.T) {
	srv := newTestServer(brokenCatalog{})

	rec := postChat(t, srv, `{"message": "anything"}`)
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var env errorEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.Equal(t, "CATALOG_UNAVAILABLE", env.Error.Code)
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(workingCatalog())

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status": "ok"}`, rec.Body.String())
}
