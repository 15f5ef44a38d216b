package session

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/founty-inventory/internal/domain"
)

type handlerFunc func(ctx context.Context, sess *Session, ev domain.Event) (*Reply, error)

type routeKey struct {
	State State
	Kind  domain.EventKind
}

// routes maps (state, event kind) to the handler for that step. A pair
// absent from the table is a no-op: the current prompt is re-rendered and
// the state does not move.
func (s *Service) routes() map[routeKey]handlerFunc {
	return map[routeKey]handlerFunc{
		{StateRoleSelect, domain.EventSelection}:     s.handleRoleSelect,
		{StateAdminAuth, domain.EventFreeText}:       s.handleAdminAuth,
		{StateRoomSelect, domain.EventSelection}:     s.handleRoomSelect,
		{StateMaterialSelect, domain.EventSelection}: s.handleMaterialSelect,
		{StateColorSelect, domain.EventSelection}:    s.handleColorSelect,
		{StateEnterTotal, domain.EventFreeText}:      s.handleEnterTotal,
		{StateEnterBroken, domain.EventFreeText}:     s.handleEnterBroken,
		{StateConditionSel, domain.EventSelection}:   s.handleConditionSelect,
		{StateConfirmEntry, domain.EventSelection}:   s.handleConfirmEntry,

		{StateAdminMenu, domain.EventSelection}:           s.handleAdminMenu,
		{StateAdminAddRoom, domain.EventFreeText}:         s.handleAdminAddRoom,
		{StateAdminRemoveRoom, domain.EventSelection}:     s.handleAdminRemoveRoom,
		{StateAdminAddMaterial, domain.EventFreeText}:     s.handleAdminAddMaterial,
		{StateAdminRemoveMaterial, domain.EventSelection}: s.handleAdminRemoveMaterial,
		{StateManageColors, domain.EventSelection}:        s.handleManageColors,
		{StateAddColor, domain.EventFreeText}:             s.handleAddColor,
		{StateEditColor, domain.EventFreeText}:            s.handleEditColorText,
		{StateEditColor, domain.EventSelection}:           s.handleEditColorBack,
		{StateRoomDetailSelect, domain.EventSelection}:    s.handleRoomDetailSelect,
	}
}

func isAdminState(st State) bool {
	switch st {
	case StateAdminMenu, StateAdminAddRoom, StateAdminRemoveRoom,
		StateAdminAddMaterial, StateAdminRemoveMaterial,
		StateManageColors, StateAddColor, StateEditColor, StateRoomDetailSelect:
		return true
	}
	return false
}

// Handle processes one inbound event for one user and returns the reply.
// Events for the same user are serialized on the session lock; different
// users never contend.
func (s *Service) Handle(ctx context.Context, userID int64, displayName string, ev domain.Event) (*Reply, error) {
	if !ev.Kind.IsValid() {
		return nil, domain.NewValidationError("kind", "unknown event kind")
	}

	if _, err := s.inv.RegisterContact(ctx, userID, displayName); err != nil {
		return nil, err
	}

	sess := s.registry.Get(userID)
	sess.Lock()
	defer sess.Unlock()

	if ev.Kind == domain.EventCommand {
		return s.handleCommand(ctx, sess, ev)
	}

	// A session that lost admin rights must not keep driving admin states.
	if isAdminState(sess.State) && !sess.IsAdmin {
		sess.Reset()
		return s.startPrompt(sess), nil
	}

	h, ok := s.routes()[routeKey{sess.State, ev.Kind}]
	if !ok {
		return s.renderPrompt(ctx, sess)
	}

	reply, err := h(ctx, sess, ev)
	if err != nil {
		return nil, err
	}

	s.log.DebugContext(ctx, "event handled",
		slog.Int64("user_id", userID),
		slog.String("kind", string(ev.Kind)),
		slog.String("state", reply.State.String()),
	)

	return reply, nil
}
