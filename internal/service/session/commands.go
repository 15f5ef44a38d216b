package session

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/heartmarshall/founty-inventory/internal/domain"
	"github.com/heartmarshall/founty-inventory/internal/service/inventory"
)

const helpText = `ℹ️ Commandes disponibles :
/start — commencer un relevé
/cancel — abandonner le relevé en cours
/stats — statistiques globales
/feedback <texte> — laisser une remarque
/search <texte> — rechercher des relevés (admin)
/view <salle> — détails d'une salle (admin)
/help — ce message`

// handleCommand processes slash commands. Commands work from any state;
// /start and /cancel reset the session, the others leave it where it is.
func (s *Service) handleCommand(ctx context.Context, sess *Session, ev domain.Event) (*Reply, error) {
	switch ev.Command {
	case domain.CommandStart:
		sess.Reset()
		return s.startPrompt(sess), nil

	case domain.CommandCancel:
		sess.Reset()
		sess.State = StateTerminal
		return terminalPrompt("🚫 Opération annulée. Envoyez /start pour recommencer."), nil

	case domain.CommandHelp:
		return &Reply{Text: helpText, State: sess.State}, nil

	case domain.CommandStats:
		d, err := s.stats.Dashboard(ctx)
		if err != nil {
			return nil, fmt.Errorf("dashboard: %w", err)
		}
		return &Reply{Text: formatDashboard(d), State: sess.State}, nil

	case domain.CommandFeedback:
		text := strings.TrimSpace(ev.CommandArgs)
		if text == "" {
			return &Reply{Text: "💬 Utilisation : /feedback <votre remarque>", State: sess.State}, nil
		}
		if _, err := s.inv.LeaveFeedback(ctx, inventory.LeaveFeedbackInput{UserID: sess.UserID, Text: text}); err != nil {
			if errors.Is(err, domain.ErrValidation) {
				return &Reply{Text: "❌ Remarque invalide.", State: sess.State}, nil
			}
			return nil, fmt.Errorf("leave feedback: %w", err)
		}
		return &Reply{Text: "🙏 Merci pour votre remarque !", State: sess.State}, nil

	case domain.CommandSearch:
		if !sess.IsAdmin {
			return &Reply{Text: "⛔ Commande réservée aux administrateurs.", State: sess.State}, nil
		}
		query := strings.TrimSpace(ev.CommandArgs)
		if query == "" {
			return &Reply{Text: "🔍 Utilisation : /search <texte>", State: sess.State}, nil
		}
		results, err := s.stats.Search(ctx, query)
		if err != nil {
			if errors.Is(err, domain.ErrValidation) {
				return &Reply{Text: "🔍 Utilisation : /search <texte>", State: sess.State}, nil
			}
			return nil, fmt.Errorf("search: %w", err)
		}
		return &Reply{Text: formatSearchResults(query, results), State: sess.State}, nil

	case domain.CommandView:
		if !sess.IsAdmin {
			return &Reply{Text: "⛔ Commande réservée aux administrateurs.", State: sess.State}, nil
		}
		room := strings.TrimSpace(ev.CommandArgs)
		if room == "" {
			return &Reply{Text: "🏠 Utilisation : /view <nom de salle>", State: sess.State}, nil
		}
		detail, err := s.stats.RoomDetail(ctx, room)
		if err != nil {
			if errors.Is(err, domain.ErrValidation) || errors.Is(err, domain.ErrNotFound) {
				return &Reply{Text: "❌ Salle introuvable.", State: sess.State}, nil
			}
			return nil, fmt.Errorf("room detail: %w", err)
		}
		return &Reply{Text: formatRoomDetail(detail), State: sess.State}, nil

	default:
		return &Reply{Text: "❓ Commande inconnue. Envoyez /help.", State: sess.State}, nil
	}
}
