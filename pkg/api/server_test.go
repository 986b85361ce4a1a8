package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rapport-chat/rapport/pkg/config"
	"github.com/rapport-chat/rapport/pkg/events"
	"github.com/rapport-chat/rapport/pkg/masking"
	"github.com/rapport-chat/rapport/pkg/models"
	"github.com/rapport-chat/rapport/pkg/session"
)

type fakeSubmitter struct {
	res models.TurnResult
	err error

	gotBotID, gotExternalID, gotInput string
}

func (f *fakeSubmitter) Submit(_ context.Context, botID, externalID, input string) (models.TurnResult, error) {
	f.gotBotID, f.gotExternalID, f.gotInput = botID, externalID, input
	return f.res, f.err
}

func newTestServer(sub TurnSubmitter) *Server {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{Server: &config.ServerConfig{Host: "127.0.0.1", Port: 0}}
	return NewServer(sub, events.NewBus(nil), nil, masking.NewService(logger), cfg, logger)
}

func postTurn(t *testing.T, router http.Handler, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/turn", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHandleTurnSuccess(t *testing.T) {
	sub := &fakeSubmitter{res: models.TurnResult{
		Status: models.TurnStatusSuccess,
		Segments: []models.Segment{
			{Content: "嗯。", DelaySeconds: 0},
			{Content: "今天有点累。", DelaySeconds: 1.2, Action: models.ActionTyping},
		},
	}}
	srv := newTestServer(sub)

	w := postTurn(t, srv.Router(), TurnRequest{BotID: "b1", UserID: "u1", Message: "在吗", ClientTurnID: "c-9"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp TurnResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, models.TurnStatusSuccess, resp.Status)
	assert.Equal(t, "c-9", resp.ClientTurnID)
	require.Len(t, resp.Segments, 2)
	assert.Equal(t, "嗯。", resp.Segments[0].Content)
	assert.Equal(t, "typing", resp.Segments[1].Action)
	assert.Equal(t, "u1", sub.gotExternalID)
	assert.Equal(t, "在吗", sub.gotInput)
}

func TestHandleTurnSuperseded(t *testing.T) {
	sub := &fakeSubmitter{res: models.TurnResult{Status: models.TurnStatusSuperseded}}
	srv := newTestServer(sub)

	w := postTurn(t, srv.Router(), TurnRequest{BotID: "b1", UserID: "u1", Message: "第一句"})
	require.Equal(t, http.StatusConflict, w.Code)

	var resp TurnResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, models.TurnStatusSuperseded, resp.Status)
	assert.Empty(t, resp.Segments)
}

func TestHandleTurnValidation(t *testing.T) {
	srv := newTestServer(&fakeSubmitter{})
	router := srv.Router()

	for _, body := range []TurnRequest{
		{},
		{BotID: "b1"},
		{BotID: "b1", UserID: "u1"},
	} {
		w := postTurn(t, router, body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}
}

func TestHandleTurnShuttingDown(t *testing.T) {
	sub := &fakeSubmitter{err: session.ErrShuttingDown}
	srv := newTestServer(sub)

	w := postTurn(t, srv.Router(), TurnRequest{BotID: "b1", UserID: "u1", Message: "hi"})
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestHandleTurnErrorStatus(t *testing.T) {
	sub := &fakeSubmitter{res: models.TurnResult{
		Status: models.TurnStatusError,
		Errors: []models.TurnError{{Kind: models.ErrKindFatal, Detail: "boom"}},
	}}
	srv := newTestServer(sub)

	w := postTurn(t, srv.Router(), TurnRequest{BotID: "b1", UserID: "u1", Message: "hi"})
	require.Equal(t, http.StatusInternalServerError, w.Code)

	var resp TurnResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, models.ErrKindFatal, resp.Errors[0].Kind)
}

func TestHealthWithoutDatabase(t *testing.T) {
	srv := newTestServer(&fakeSubmitter{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")
}

func TestStreamRequiresIdentity(t *testing.T) {
	srv := newTestServer(&fakeSubmitter{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/stream", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSecurityHeaders(t *testing.T) {
	srv := newTestServer(&fakeSubmitter{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
}
