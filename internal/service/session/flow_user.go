package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/founty-inventory/internal/domain"
	"github.com/heartmarshall/founty-inventory/internal/service/inventory"
)

// ---------------------------------------------------------------------------
// User flow: role → room → material → (color) → total → broken → condition
// → confirm.
// ---------------------------------------------------------------------------

func (s *Service) handleRoleSelect(ctx context.Context, sess *Session, ev domain.Event) (*Reply, error) {
	if ev.Selection.Action != domain.ActionRole {
		return s.renderPrompt(ctx, sess)
	}

	switch ev.Selection.Arg {
	case "user":
		return s.promptRooms(ctx, sess)
	case "admin":
		return s.promptAdminAuth(sess), nil
	default:
		return s.renderPrompt(ctx, sess)
	}
}

func (s *Service) handleAdminAuth(ctx context.Context, sess *Session, ev domain.Event) (*Reply, error) {
	if err := s.gate.Verify(strings.TrimSpace(ev.Text)); err != nil {
		s.log.WarnContext(ctx, "admin auth failed", slog.Int64("user_id", sess.UserID))
		sess.Reset()
		sess.State = StateTerminal
		return terminalPrompt("⛔ Code incorrect. Session terminée."), nil
	}

	sess.IsAdmin = true
	s.log.InfoContext(ctx, "admin authenticated", slog.Int64("user_id", sess.UserID))
	return s.promptAdminMenu(sess), nil
}

func (s *Service) handleRoomSelect(ctx context.Context, sess *Session, ev domain.Event) (*Reply, error) {
	switch ev.Selection.Action {
	case domain.ActionBack:
		sess.Reset()
		return s.startPrompt(sess), nil
	case domain.ActionRoom:
		name := strings.TrimSpace(ev.Selection.Arg)
		if name == "" {
			return s.renderPrompt(ctx, sess)
		}
		sess.Draft.RoomName = name
		return s.promptMaterials(ctx, sess)
	default:
		return s.renderPrompt(ctx, sess)
	}
}

func (s *Service) handleMaterialSelect(ctx context.Context, sess *Session, ev domain.Event) (*Reply, error) {
	switch ev.Selection.Action {
	case domain.ActionBack:
		return s.promptRooms(ctx, sess)
	case domain.ActionMaterial:
	default:
		return s.renderPrompt(ctx, sess)
	}

	materials, err := s.inv.ListMaterials(ctx)
	if err != nil {
		return nil, fmt.Errorf("list materials: %w", err)
	}

	var selected *domain.Material
	for _, m := range materials {
		if m.Name == ev.Selection.Arg {
			selected = m
			break
		}
	}
	if selected == nil {
		// Stale button: the material was removed since the list was shown.
		return s.renderPrompt(ctx, sess)
	}

	sess.Draft.MaterialName = selected.Name
	sess.Draft.ColorID = nil
	sess.Draft.ColorName = ""

	if selected.RequiresColor {
		colors, err := s.inv.ListColors(ctx)
		if err != nil {
			return nil, fmt.Errorf("list colors: %w", err)
		}
		if len(colors) > 0 {
			return s.promptColors(ctx, sess)
		}
	}

	return s.promptTotal(sess), nil
}

func (s *Service) handleColorSelect(ctx context.Context, sess *Session, ev domain.Event) (*Reply, error) {
	switch ev.Selection.Action {
	case domain.ActionBack:
		return s.promptMaterials(ctx, sess)
	case domain.ActionColorNone:
		sess.Draft.ColorID = nil
		sess.Draft.ColorName = ""
		return s.promptTotal(sess), nil
	case domain.ActionColor:
	default:
		return s.renderPrompt(ctx, sess)
	}

	id, err := uuid.Parse(ev.Selection.Arg)
	if err != nil {
		return s.renderPrompt(ctx, sess)
	}

	colors, err := s.inv.ListColors(ctx)
	if err != nil {
		return nil, fmt.Errorf("list colors: %w", err)
	}
	for _, c := range colors {
		if c.ID == id {
			sess.Draft.ColorID = &id
			sess.Draft.ColorName = c.Name
			return s.promptTotal(sess), nil
		}
	}

	// Stale color id.
	return s.renderPrompt(ctx, sess)
}

func (s *Service) handleEnterTotal(ctx context.Context, sess *Session, ev domain.Event) (*Reply, error) {
	n, err := parseCount(ev.Text)
	if err != nil {
		reply := s.promptTotal(sess)
		reply.Text = "❌ Entrez un nombre entier positif.\n\n" + reply.Text
		return reply, nil
	}

	sess.Draft.Total = n
	return s.promptBroken(sess), nil
}

func (s *Service) handleEnterBroken(ctx context.Context, sess *Session, ev domain.Event) (*Reply, error) {
	n, err := parseCount(ev.Text)
	if err != nil || n > sess.Draft.Total {
		reply := s.promptBroken(sess)
		reply.Text = fmt.Sprintf("❌ Entrez un nombre entier entre 0 et %d.\n\n%s", sess.Draft.Total, reply.Text)
		return reply, nil
	}

	sess.Draft.Broken = n
	return s.promptConditions(sess), nil
}

func (s *Service) handleConditionSelect(ctx context.Context, sess *Session, ev domain.Event) (*Reply, error) {
	if ev.Selection.Action != domain.ActionCondition {
		return s.renderPrompt(ctx, sess)
	}

	valid := false
	for _, c := range s.conditions {
		if c == ev.Selection.Arg {
			valid = true
			break
		}
	}
	if !valid {
		return s.renderPrompt(ctx, sess)
	}

	sess.Draft.Condition = ev.Selection.Arg
	return s.promptConfirm(sess), nil
}

func (s *Service) handleConfirmEntry(ctx context.Context, sess *Session, ev domain.Event) (*Reply, error) {
	if ev.Selection.Action != domain.ActionConfirm {
		return s.renderPrompt(ctx, sess)
	}

	switch ev.Selection.Arg {
	case domain.ConfirmNo:
		sess.Reset()
		sess.State = StateTerminal
		return terminalPrompt("🚫 Relevé abandonné. Envoyez /start pour recommencer."), nil

	case domain.ConfirmYes, domain.ConfirmStay:
		d := sess.Draft
		_, err := s.inv.RecordEntry(ctx, inventory.RecordEntryInput{
			UserID:       sess.UserID,
			RoomName:     d.RoomName,
			MaterialName: d.MaterialName,
			ColorID:      d.ColorID,
			Total:        d.Total,
			Broken:       d.Broken,
			Condition:    d.Condition,
		})
		if err != nil {
			// The draft cannot be salvaged: the session ends either way.
			sess.Reset()
			sess.State = StateTerminal
			if errors.Is(err, domain.ErrUnknownMaterial) {
				return terminalPrompt("❌ Ce matériel n'existe plus. Relevé abandonné."), nil
			}
			s.log.ErrorContext(ctx, "record entry failed", slog.Any("error", err))
			return terminalPrompt("❌ L'enregistrement a échoué. Envoyez /start pour réessayer."), nil
		}

		if ev.Selection.Arg == domain.ConfirmStay {
			sess.Draft.ClearForStay()
			reply, err := s.promptMaterials(ctx, sess)
			if err != nil {
				return nil, err
			}
			reply.Text = "✅ Relevé enregistré !\n\n" + reply.Text
			return reply, nil
		}

		sess.Reset()
		sess.State = StateTerminal
		return terminalPrompt("✅ Relevé enregistré ! Envoyez /start pour en saisir un autre."), nil

	default:
		return s.renderPrompt(ctx, sess)
	}
}

// parseCount parses a non-negative integer from free text.
func parseCount(text string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("negative count %d", n)
	}
	return n, nil
}
