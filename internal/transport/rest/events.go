package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/heartmarshall/founty-inventory/internal/domain"
	"github.com/heartmarshall/founty-inventory/internal/service/session"
	"github.com/heartmarshall/founty-inventory/pkg/ctxutil"
)

// sessionService defines the minimal interface needed by EventHandler.
type sessionService interface {
	Handle(ctx context.Context, userID int64, displayName string, ev domain.Event) (*session.Reply, error)
}

// EventHandler serves the chat event webhook.
type EventHandler struct {
	svc sessionService
	log *slog.Logger
}

// NewEventHandler creates an EventHandler.
func NewEventHandler(svc sessionService, logger *slog.Logger) *EventHandler {
	return &EventHandler{svc: svc, log: logger.With("handler", "events")}
}

type eventRequest struct {
	UserID      int64  `json:"userId"`
	DisplayName string `json:"displayName"`
	Kind        string `json:"kind"`  // "command" | "selection" | "free_text"
	Text        string `json:"text"`  // command line or free text
	Token       string `json:"token"` // selection token
}

type buttonResponse struct {
	Label string `json:"label"`
	Token string `json:"token"`
}

type eventResponse struct {
	Text    string             `json:"text"`
	Buttons [][]buttonResponse `json:"buttons,omitempty"`
	State   string             `json:"state"`
}

// Handle handles POST /v1/events.
func (h *EventHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var req eventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.UserID == 0 {
		writeError(w, http.StatusBadRequest, "userId is required")
		return
	}

	ev, err := toEvent(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx := ctxutil.WithChatID(r.Context(), req.UserID)
	reply, err := h.svc.Handle(ctx, req.UserID, req.DisplayName, ev)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toEventResponse(reply))
}

// toEvent maps the wire request to a typed event. Command text arrives as a
// full line ("/feedback some text"); the leading slash is optional.
func toEvent(req eventRequest) (domain.Event, error) {
	switch req.Kind {
	case "command":
		// Unknown command words still reach the core, which answers with help.
		word, args, _ := strings.Cut(strings.TrimSpace(req.Text), " ")
		return domain.Event{
			Kind:        domain.EventCommand,
			Command:     domain.Command(strings.TrimPrefix(word, "/")),
			CommandArgs: strings.TrimSpace(args),
		}, nil

	case "selection":
		sel, ok := decodeToken(req.Token)
		if !ok {
			return domain.Event{}, errors.New("unknown selection token")
		}
		return domain.Event{Kind: domain.EventSelection, Selection: sel}, nil

	case "free_text":
		return domain.Event{Kind: domain.EventFreeText, Text: req.Text}, nil

	default:
		return domain.Event{}, errors.New("unknown event kind")
	}
}

func toEventResponse(reply *session.Reply) eventResponse {
	resp := eventResponse{
		Text:  reply.Text,
		State: reply.State.String(),
	}
	for _, row := range reply.Buttons {
		out := make([]buttonResponse, 0, len(row))
		for _, b := range row {
			out = append(out, buttonResponse{Label: b.Label, Token: encodeToken(b)})
		}
		resp.Buttons = append(resp.Buttons, out)
	}
	return resp
}

func (h *EventHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
