package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/heartmarshall/founty-inventory/internal/domain"
	"github.com/heartmarshall/founty-inventory/internal/service/session"
)

// sessionServiceMock captures the event passed to Handle.
type sessionServiceMock struct {
	gotUserID int64
	gotName   string
	gotEvent  domain.Event
	reply     *session.Reply
	err       error
}

func (m *sessionServiceMock) Handle(ctx context.Context, userID int64, displayName string, ev domain.Event) (*session.Reply, error) {
	m.gotUserID = userID
	m.gotName = displayName
	m.gotEvent = ev
	if m.err != nil {
		return nil, m.err
	}
	if m.reply != nil {
		return m.reply, nil
	}
	return &session.Reply{Text: "ok", State: session.StateRoleSelect}, nil
}

func postEvent(t *testing.T, h *EventHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/v1/events", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestEventHandler_Command(t *testing.T) {
	t.Parallel()

	svc := &sessionServiceMock{}
	h := NewEventHandler(svc, slog.Default())

	rec := postEvent(t, h, `{"userId":42,"displayName":"Alice","kind":"command","text":"/feedback le bot est super"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, body %s", rec.Code, rec.Body.String())
	}
	if svc.gotUserID != 42 || svc.gotName != "Alice" {
		t.Errorf("identity: got %d %q", svc.gotUserID, svc.gotName)
	}
	if svc.gotEvent.Kind != domain.EventCommand || svc.gotEvent.Command != domain.CommandFeedback {
		t.Errorf("event: got %+v", svc.gotEvent)
	}
	if svc.gotEvent.CommandArgs != "le bot est super" {
		t.Errorf("args: got %q", svc.gotEvent.CommandArgs)
	}
}

func TestEventHandler_Selection(t *testing.T) {
	t.Parallel()

	svc := &sessionServiceMock{}
	h := NewEventHandler(svc, slog.Default())

	rec := postEvent(t, h, `{"userId":42,"kind":"selection","token":"room_LabA"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d", rec.Code)
	}
	want := domain.Selection{Action: domain.ActionRoom, Arg: "LabA"}
	if svc.gotEvent.Selection != want {
		t.Errorf("selection: got %+v, want %+v", svc.gotEvent.Selection, want)
	}
}

func TestEventHandler_UnknownToken(t *testing.T) {
	t.Parallel()

	svc := &sessionServiceMock{}
	h := NewEventHandler(svc, slog.Default())

	rec := postEvent(t, h, `{"userId":42,"kind":"selection","token":"frobnicate"}`)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want 400", rec.Code)
	}
}

func TestEventHandler_MissingUserID(t *testing.T) {
	t.Parallel()

	h := NewEventHandler(&sessionServiceMock{}, slog.Default())

	rec := postEvent(t, h, `{"kind":"free_text","text":"10"}`)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want 400", rec.Code)
	}
}

func TestEventHandler_BadBody(t *testing.T) {
	t.Parallel()

	h := NewEventHandler(&sessionServiceMock{}, slog.Default())

	rec := postEvent(t, h, `{not json`)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want 400", rec.Code)
	}
}

func TestEventHandler_ButtonsEncoded(t *testing.T) {
	t.Parallel()

	svc := &sessionServiceMock{
		reply: &session.Reply{
			Text: "🚪 Choisissez une salle :",
			Buttons: [][]session.Button{
				{{Label: "LabA", Action: domain.ActionRoom, Arg: "LabA"}},
				{{Label: "⬅️ Retour", Action: domain.ActionBack, Arg: domain.BackToStart}},
			},
			State: session.StateRoomSelect,
		},
	}
	h := NewEventHandler(svc, slog.Default())

	rec := postEvent(t, h, `{"userId":42,"kind":"selection","token":"role_user"}`)

	var resp eventResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Buttons) != 2 {
		t.Fatalf("buttons: got %d rows", len(resp.Buttons))
	}
	if resp.Buttons[0][0].Token != "room_LabA" {
		t.Errorf("first token: got %q", resp.Buttons[0][0].Token)
	}
	if resp.Buttons[1][0].Token != "back_start" {
		t.Errorf("back token: got %q", resp.Buttons[1][0].Token)
	}
}

func TestEventHandler_InternalError(t *testing.T) {
	t.Parallel()

	svc := &sessionServiceMock{err: errors.New("db down")}
	h := NewEventHandler(svc, slog.Default())

	rec := postEvent(t, h, `{"userId":42,"kind":"free_text","text":"10"}`)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status: got %d, want 500", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "db down") {
		t.Error("internal error details must not leak to the client")
	}
}
