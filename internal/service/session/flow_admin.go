package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/founty-inventory/internal/domain"
	"github.com/heartmarshall/founty-inventory/internal/service/inventory"
)

// ---------------------------------------------------------------------------
// Admin flow. Every sub-state returns to the admin menu on completion or on
// a reported error; only credential failure is terminal.
// ---------------------------------------------------------------------------

func (s *Service) handleAdminMenu(ctx context.Context, sess *Session, ev domain.Event) (*Reply, error) {
	switch ev.Selection.Action {
	case domain.ActionAdminDashboard:
		d, err := s.stats.Dashboard(ctx)
		if err != nil {
			return nil, fmt.Errorf("dashboard: %w", err)
		}
		reply := s.promptAdminMenu(sess)
		reply.Text = formatDashboard(d)
		return reply, nil

	case domain.ActionAdminColors:
		return s.promptManageColors(ctx, sess)

	case domain.ActionAdminAddRoom:
		return s.promptAddRoom(sess), nil

	case domain.ActionAdminRemoveRoom:
		return s.promptRoomButtons(ctx, sess, "➖ Quelle salle supprimer ?", domain.ActionDelRoom, StateAdminRemoveRoom)

	case domain.ActionAdminAddMat:
		return s.promptAddMaterial(sess), nil

	case domain.ActionAdminRemoveMat:
		return s.promptRemoveMaterial(ctx, sess)

	case domain.ActionAdminRoomDetails:
		return s.promptRoomButtons(ctx, sess, "🏠 Quelle salle consulter ?", domain.ActionRoomDetail, StateRoomDetailSelect)

	case domain.ActionAdminLowStock:
		groups, err := s.stats.LowStock(ctx)
		if err != nil {
			return nil, fmt.Errorf("low stock: %w", err)
		}
		reply := s.promptAdminMenu(sess)
		reply.Text = formatLowStock(groups)
		return reply, nil

	case domain.ActionAdminFeedback:
		notes, err := s.inv.RecentFeedback(ctx)
		if err != nil {
			return nil, fmt.Errorf("recent feedback: %w", err)
		}
		reply := s.promptAdminMenu(sess)
		reply.Text = formatFeedback(notes)
		return reply, nil

	case domain.ActionAdminExport:
		reply := s.promptAdminMenu(sess)
		reply.Text = "📤 Export disponible : GET /v1/export.csv ou /v1/export.xlsx (jeton d'export requis)."
		return reply, nil

	default:
		return s.renderPrompt(ctx, sess)
	}
}

func (s *Service) handleAdminAddRoom(ctx context.Context, sess *Session, ev domain.Event) (*Reply, error) {
	_, err := s.inv.AddRoom(ctx, inventory.AddRoomInput{Name: ev.Text})
	reply := s.promptAdminMenu(sess)
	switch {
	case errors.Is(err, domain.ErrAlreadyExists):
		reply.Text = "❌ Cette salle existe déjà."
	case errors.Is(err, domain.ErrValidation):
		reply.Text = "❌ Nom de salle invalide."
	case err != nil:
		return nil, fmt.Errorf("add room: %w", err)
	default:
		reply.Text = "✅ Salle ajoutée."
	}
	return reply, nil
}

func (s *Service) handleAdminRemoveRoom(ctx context.Context, sess *Session, ev domain.Event) (*Reply, error) {
	switch ev.Selection.Action {
	case domain.ActionBack:
		return s.promptAdminMenu(sess), nil
	case domain.ActionDelRoom:
	default:
		return s.renderPrompt(ctx, sess)
	}

	err := s.inv.RemoveRoom(ctx, ev.Selection.Arg)
	reply := s.promptAdminMenu(sess)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		reply.Text = "❌ Salle introuvable."
	case err != nil:
		return nil, fmt.Errorf("remove room: %w", err)
	default:
		reply.Text = "✅ Salle supprimée. Les relevés existants sont conservés."
	}
	return reply, nil
}

func (s *Service) handleAdminAddMaterial(ctx context.Context, sess *Session, ev domain.Event) (*Reply, error) {
	emoji, name := splitEmojiName(ev.Text)

	_, err := s.inv.AddMaterial(ctx, inventory.AddMaterialInput{Name: name, Emoji: emoji})
	reply := s.promptAdminMenu(sess)
	switch {
	case errors.Is(err, domain.ErrAlreadyExists):
		reply.Text = "❌ Ce matériel existe déjà."
	case errors.Is(err, domain.ErrValidation):
		reply.Text = "❌ Format invalide. Attendu : <emoji> <nom>."
	case err != nil:
		return nil, fmt.Errorf("add material: %w", err)
	default:
		reply.Text = "✅ Matériel ajouté."
	}
	return reply, nil
}

func (s *Service) handleAdminRemoveMaterial(ctx context.Context, sess *Session, ev domain.Event) (*Reply, error) {
	switch ev.Selection.Action {
	case domain.ActionBack:
		return s.promptAdminMenu(sess), nil
	case domain.ActionDelMat:
	default:
		return s.renderPrompt(ctx, sess)
	}

	err := s.inv.RemoveMaterial(ctx, ev.Selection.Arg)
	reply := s.promptAdminMenu(sess)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		reply.Text = "❌ Matériel introuvable."
	case err != nil:
		return nil, fmt.Errorf("remove material: %w", err)
	default:
		reply.Text = "✅ Matériel supprimé. Les relevés existants sont conservés."
	}
	return reply, nil
}

func (s *Service) handleManageColors(ctx context.Context, sess *Session, ev domain.Event) (*Reply, error) {
	switch ev.Selection.Action {
	case domain.ActionBack:
		return s.promptAdminMenu(sess), nil

	case domain.ActionColorAdd:
		return s.promptAddColor(sess), nil

	case domain.ActionEditColor:
		id, err := uuid.Parse(ev.Selection.Arg)
		if err != nil {
			return s.renderPrompt(ctx, sess)
		}
		sess.PendingColorID = &id
		return s.promptEditColor(sess), nil

	case domain.ActionDelColor:
		id, err := uuid.Parse(ev.Selection.Arg)
		if err != nil {
			return s.renderPrompt(ctx, sess)
		}
		if err := s.inv.RemoveColor(ctx, id); err != nil && !errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("remove color: %w", err)
		}
		reply, err := s.promptManageColors(ctx, sess)
		if err != nil {
			return nil, err
		}
		reply.Text = "✅ Couleur supprimée.\n\n" + reply.Text
		return reply, nil

	default:
		return s.renderPrompt(ctx, sess)
	}
}

func (s *Service) handleAddColor(ctx context.Context, sess *Session, ev domain.Event) (*Reply, error) {
	name, code, ok := splitColorSpec(ev.Text)
	if !ok {
		reply := s.promptAddColor(sess)
		reply.Text = "❌ Format invalide. Attendu : Nom #Code.\n\n" + reply.Text
		return reply, nil
	}

	_, err := s.inv.AddColor(ctx, inventory.AddColorInput{Name: name, Code: code})
	switch {
	case errors.Is(err, domain.ErrAlreadyExists):
		reply, rerr := s.promptManageColors(ctx, sess)
		if rerr != nil {
			return nil, rerr
		}
		reply.Text = "❌ Cette couleur existe déjà.\n\n" + reply.Text
		return reply, nil
	case err != nil:
		return nil, fmt.Errorf("add color: %w", err)
	}

	reply, err := s.promptManageColors(ctx, sess)
	if err != nil {
		return nil, err
	}
	reply.Text = "✅ Couleur ajoutée.\n\n" + reply.Text
	return reply, nil
}

func (s *Service) handleEditColorText(ctx context.Context, sess *Session, ev domain.Event) (*Reply, error) {
	if sess.PendingColorID == nil {
		return s.promptManageColors(ctx, sess)
	}

	name, code, ok := splitColorSpec(ev.Text)
	if !ok {
		reply := s.promptEditColor(sess)
		reply.Text = "❌ Format invalide. Attendu : Nom #Code.\n\n" + reply.Text
		return reply, nil
	}

	_, err := s.inv.UpdateColor(ctx, inventory.UpdateColorInput{
		ColorID: *sess.PendingColorID,
		Name:    name,
		Code:    code,
	})
	sess.PendingColorID = nil

	reply, rerr := s.promptManageColors(ctx, sess)
	if rerr != nil {
		return nil, rerr
	}
	switch {
	case errors.Is(err, domain.ErrNotFound):
		reply.Text = "❌ Couleur introuvable.\n\n" + reply.Text
	case errors.Is(err, domain.ErrAlreadyExists):
		reply.Text = "❌ Ce nom de couleur est déjà pris.\n\n" + reply.Text
	case err != nil:
		return nil, fmt.Errorf("update color: %w", err)
	default:
		reply.Text = "✅ Couleur modifiée.\n\n" + reply.Text
	}
	return reply, nil
}

func (s *Service) handleEditColorBack(ctx context.Context, sess *Session, ev domain.Event) (*Reply, error) {
	if ev.Selection.Action != domain.ActionBack {
		return s.renderPrompt(ctx, sess)
	}
	sess.PendingColorID = nil
	return s.promptManageColors(ctx, sess)
}

func (s *Service) handleRoomDetailSelect(ctx context.Context, sess *Session, ev domain.Event) (*Reply, error) {
	switch ev.Selection.Action {
	case domain.ActionBack:
		return s.promptAdminMenu(sess), nil
	case domain.ActionRoomDetail:
	default:
		return s.renderPrompt(ctx, sess)
	}

	detail, err := s.stats.RoomDetail(ctx, ev.Selection.Arg)
	reply := s.promptAdminMenu(sess)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		// Stale button; the room vanished and left no entries behind.
		reply.Text = "❌ Salle introuvable.\n\n" + reply.Text
	case err != nil:
		return nil, fmt.Errorf("room detail: %w", err)
	default:
		reply.Text = formatRoomDetail(detail)
	}
	return reply, nil
}
