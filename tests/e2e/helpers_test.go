//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/founty-inventory/internal/adapter/postgres"
	"github.com/heartmarshall/founty-inventory/internal/adapter/postgres/color"
	"github.com/heartmarshall/founty-inventory/internal/adapter/postgres/entry"
	"github.com/heartmarshall/founty-inventory/internal/adapter/postgres/feedback"
	"github.com/heartmarshall/founty-inventory/internal/adapter/postgres/material"
	"github.com/heartmarshall/founty-inventory/internal/adapter/postgres/room"
	"github.com/heartmarshall/founty-inventory/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/founty-inventory/internal/adapter/postgres/user"
	"github.com/heartmarshall/founty-inventory/internal/service/inventory"
	"github.com/heartmarshall/founty-inventory/internal/service/session"
	"github.com/heartmarshall/founty-inventory/internal/service/stats"
	"github.com/heartmarshall/founty-inventory/internal/transport/middleware"
	"github.com/heartmarshall/founty-inventory/internal/transport/rest"
)

const (
	adminPIN    = "4242"
	exportToken = "e2e-export-token"
)

// testStack bundles the wired services and the HTTP test server.
type testStack struct {
	srv *httptest.Server
	inv *inventory.Service
}

// newStack wires the full application over the shared test database and
// returns a running test server.
func newStack(t *testing.T) *testStack {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.Default()

	rooms := room.New(pool)
	materials := material.New(pool)
	colors := color.New(pool)
	entries := entry.New(pool)
	users := user.New(pool)
	feedbackRepo := feedback.New(pool)
	txManager := postgres.NewTxManager(pool)

	invSvc := inventory.NewService(logger, rooms, materials, colors, entries, users, feedbackRepo, txManager)
	statsSvc := stats.NewService(logger, entries, rooms, materials, 5)

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPIN), bcrypt.MinCost)
	require.NoError(t, err)
	gate, err := session.NewSecretGate(string(hash))
	require.NoError(t, err)

	sessionSvc := session.NewService(logger, invSvc, statsSvc, gate, []string{"Bon", "Moyen", "Mauvais"})

	events := rest.NewEventHandler(sessionSvc, logger)
	export := rest.NewExportHandler(invSvc, logger)
	health := rest.NewHealthHandler(pool, sessionSvc, "e2e")

	exportAuth := middleware.BearerToken(exportToken)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/events", events.Handle)
	mux.Handle("GET /v1/export.csv", exportAuth(http.HandlerFunc(export.CSV)))
	mux.Handle("GET /v1/export.xlsx", exportAuth(http.HandlerFunc(export.XLSX)))
	mux.HandleFunc("GET /health", health.Health)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /live", health.Live)

	srv := httptest.NewServer(middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.Logger(logger),
	)(mux))
	t.Cleanup(srv.Close)

	return &testStack{srv: srv, inv: invSvc}
}

// reply mirrors the event endpoint response shape.
type reply struct {
	Text    string `json:"text"`
	State   string `json:"state"`
	Buttons [][]struct {
		Label string `json:"label"`
		Token string `json:"token"`
	} `json:"buttons"`
}

// sendEvent posts one chat event and decodes the reply.
func (s *testStack) sendEvent(t *testing.T, body map[string]any) reply {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	resp, err := http.Post(s.srv.URL+"/v1/events", "application/json", bytes.NewReader(raw))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out reply
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func (s *testStack) command(t *testing.T, userID int64, text string) reply {
	return s.sendEvent(t, map[string]any{
		"userId": userID, "displayName": "E2E", "kind": "command", "text": text,
	})
}

func (s *testStack) selection(t *testing.T, userID int64, token string) reply {
	return s.sendEvent(t, map[string]any{
		"userId": userID, "displayName": "E2E", "kind": "selection", "token": token,
	})
}

func (s *testStack) freeText(t *testing.T, userID int64, text string) reply {
	return s.sendEvent(t, map[string]any{
		"userId": userID, "displayName": "E2E", "kind": "free_text", "text": text,
	})
}

// buttonToken finds a button token by label substring.
func buttonToken(t *testing.T, r reply, labelPart string) string {
	t.Helper()
	for _, row := range r.Buttons {
		for _, b := range row {
			if strings.Contains(b.Label, labelPart) {
				return b.Token
			}
		}
	}
	t.Fatalf("no button matching %q in %+v", labelPart, r.Buttons)
	return ""
}

func uniqueName(prefix string, userID int64) string {
	return fmt.Sprintf("%s-%d", prefix, userID)
}
