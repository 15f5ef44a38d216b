package session

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/heartmarshall/founty-inventory/internal/domain"
)

// ---------------------------------------------------------------------------
// Prompt builders. Each returns the message for entering (or re-entering)
// a state; transitions and the no-op re-render path share them.
// ---------------------------------------------------------------------------

func (s *Service) startPrompt(sess *Session) *Reply {
	sess.State = StateRoleSelect
	return &Reply{
		Text: "Bonjour ! Qui êtes-vous ?",
		Buttons: [][]Button{
			{{Label: "👤 Utilisateur", Action: domain.ActionRole, Arg: "user"}},
			{{Label: "🔑 Administrateur", Action: domain.ActionRole, Arg: "admin"}},
		},
		State: StateRoleSelect,
	}
}

func terminalPrompt(text string) *Reply {
	if text == "" {
		text = "Session terminée. Envoyez /start pour recommencer."
	}
	return &Reply{Text: text, State: StateTerminal}
}

func (s *Service) promptAdminAuth(sess *Session) *Reply {
	sess.State = StateAdminAuth
	return &Reply{Text: "🔑 Entrez le code PIN administrateur :", State: StateAdminAuth}
}

func (s *Service) promptRooms(ctx context.Context, sess *Session) (*Reply, error) {
	rooms, err := s.inv.ListRooms(ctx)
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}

	buttons := make([][]Button, 0, len(rooms)+1)
	for _, r := range rooms {
		buttons = append(buttons, []Button{{Label: r.Name, Action: domain.ActionRoom, Arg: r.Name}})
	}
	buttons = append(buttons, []Button{{Label: "⬅️ Retour", Action: domain.ActionBack, Arg: domain.BackToStart}})

	sess.State = StateRoomSelect
	return &Reply{
		Text:    "🚪 Choisissez une salle :",
		Buttons: buttons,
		State:   StateRoomSelect,
	}, nil
}

func (s *Service) promptMaterials(ctx context.Context, sess *Session) (*Reply, error) {
	materials, err := s.inv.ListMaterials(ctx)
	if err != nil {
		return nil, fmt.Errorf("list materials: %w", err)
	}

	buttons := make([][]Button, 0, len(materials)+1)
	for _, m := range materials {
		buttons = append(buttons, []Button{{
			Label:  m.Emoji + " " + m.Name,
			Action: domain.ActionMaterial,
			Arg:    m.Name,
		}})
	}
	buttons = append(buttons, []Button{{Label: "⬅️ Retour", Action: domain.ActionBack, Arg: domain.BackToRooms}})

	sess.State = StateMaterialSelect
	return &Reply{
		Text:    fmt.Sprintf("📦 Salle « %s ». Quel matériel comptez-vous ?", sess.Draft.RoomName),
		Buttons: buttons,
		State:   StateMaterialSelect,
	}, nil
}

func (s *Service) promptColors(ctx context.Context, sess *Session) (*Reply, error) {
	colors, err := s.inv.ListColors(ctx)
	if err != nil {
		return nil, fmt.Errorf("list colors: %w", err)
	}

	buttons := make([][]Button, 0, len(colors)+2)
	for _, c := range colors {
		buttons = append(buttons, []Button{{
			Label:  fmt.Sprintf("%s (%s)", c.Name, c.Code),
			Action: domain.ActionColor,
			Arg:    c.ID.String(),
		}})
	}
	buttons = append(buttons,
		[]Button{{Label: "Sans couleur", Action: domain.ActionColorNone}},
		[]Button{{Label: "⬅️ Retour", Action: domain.ActionBack, Arg: domain.BackToMaterials}},
	)

	sess.State = StateColorSelect
	return &Reply{
		Text:    "🎨 Quelle couleur ?",
		Buttons: buttons,
		State:   StateColorSelect,
	}, nil
}

func (s *Service) promptTotal(sess *Session) *Reply {
	sess.State = StateEnterTotal
	return &Reply{
		Text:  fmt.Sprintf("🔢 Combien de « %s » au total ? (nombre entier)", sess.Draft.MaterialName),
		State: StateEnterTotal,
	}
}

func (s *Service) promptBroken(sess *Session) *Reply {
	sess.State = StateEnterBroken
	return &Reply{
		Text:  fmt.Sprintf("🔧 Combien de cassés sur %d ?", sess.Draft.Total),
		State: StateEnterBroken,
	}
}

func (s *Service) promptConditions(sess *Session) *Reply {
	buttons := make([][]Button, 0, len(s.conditions))
	for _, c := range s.conditions {
		buttons = append(buttons, []Button{{Label: c, Action: domain.ActionCondition, Arg: c}})
	}

	sess.State = StateConditionSel
	return &Reply{
		Text:    "📋 État général du matériel ?",
		Buttons: buttons,
		State:   StateConditionSel,
	}
}

func (s *Service) promptConfirm(sess *Session) *Reply {
	d := sess.Draft
	good := d.Total - d.Broken
	var brokenPct float64
	if d.Total > 0 {
		brokenPct = math.Round(float64(d.Broken)/float64(d.Total)*1000) / 10
	}

	var b strings.Builder
	b.WriteString("📝 Récapitulatif :\n")
	fmt.Fprintf(&b, "Salle : %s\n", d.RoomName)
	fmt.Fprintf(&b, "Matériel : %s\n", d.MaterialName)
	if d.ColorName != "" {
		fmt.Fprintf(&b, "Couleur : %s\n", d.ColorName)
	}
	fmt.Fprintf(&b, "Total : %d — Cassés : %d — Bons : %d (%.1f%% cassés)\n", d.Total, d.Broken, good, brokenPct)
	fmt.Fprintf(&b, "État : %s\n\nEnregistrer ?", d.Condition)

	sess.State = StateConfirmEntry
	return &Reply{
		Text: b.String(),
		Buttons: [][]Button{
			{{Label: "✅ Oui", Action: domain.ActionConfirm, Arg: domain.ConfirmYes}},
			{{Label: "➕ Oui, et rester dans cette salle", Action: domain.ActionConfirm, Arg: domain.ConfirmStay}},
			{{Label: "❌ Non, annuler", Action: domain.ActionConfirm, Arg: domain.ConfirmNo}},
		},
		State: StateConfirmEntry,
	}
}

func (s *Service) promptAdminMenu(sess *Session) *Reply {
	sess.State = StateAdminMenu
	return &Reply{
		Text: "🛠 Menu administrateur :",
		Buttons: [][]Button{
			{{Label: "📊 Tableau de bord", Action: domain.ActionAdminDashboard}},
			{{Label: "🎨 Gérer les couleurs", Action: domain.ActionAdminColors}},
			{
				{Label: "➕ Ajouter une salle", Action: domain.ActionAdminAddRoom},
				{Label: "➖ Supprimer une salle", Action: domain.ActionAdminRemoveRoom},
			},
			{
				{Label: "➕ Ajouter un matériel", Action: domain.ActionAdminAddMat},
				{Label: "➖ Supprimer un matériel", Action: domain.ActionAdminRemoveMat},
			},
			{{Label: "🏠 Détails par salle", Action: domain.ActionAdminRoomDetails}},
			{{Label: "⚠️ Stock faible", Action: domain.ActionAdminLowStock}},
			{{Label: "💬 Remarques", Action: domain.ActionAdminFeedback}},
			{{Label: "📤 Exporter (CSV)", Action: domain.ActionAdminExport}},
		},
		State: StateAdminMenu,
	}
}

func (s *Service) promptManageColors(ctx context.Context, sess *Session) (*Reply, error) {
	colors, err := s.inv.ListColors(ctx)
	if err != nil {
		return nil, fmt.Errorf("list colors: %w", err)
	}

	var b strings.Builder
	b.WriteString("🎨 Couleurs disponibles :\n")
	if len(colors) == 0 {
		b.WriteString("(aucune)\n")
	}
	buttons := make([][]Button, 0, len(colors)+2)
	for _, c := range colors {
		fmt.Fprintf(&b, "• %s (%s)\n", c.Name, c.Code)
		buttons = append(buttons, []Button{
			{Label: "✏️ " + c.Name, Action: domain.ActionEditColor, Arg: c.ID.String()},
			{Label: "🗑 " + c.Name, Action: domain.ActionDelColor, Arg: c.ID.String()},
		})
	}
	buttons = append(buttons,
		[]Button{{Label: "➕ Ajouter une couleur", Action: domain.ActionColorAdd}},
		[]Button{{Label: "⬅️ Retour", Action: domain.ActionBack, Arg: domain.BackToAdmin}},
	)

	sess.State = StateManageColors
	return &Reply{Text: b.String(), Buttons: buttons, State: StateManageColors}, nil
}

// promptRoomButtons renders the room list with the given action tag, used by
// the remove-room and room-detail admin screens.
func (s *Service) promptRoomButtons(ctx context.Context, sess *Session, text string, action domain.SelectionAction, st State) (*Reply, error) {
	rooms, err := s.inv.ListRooms(ctx)
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}

	buttons := make([][]Button, 0, len(rooms)+1)
	for _, r := range rooms {
		buttons = append(buttons, []Button{{Label: r.Name, Action: action, Arg: r.Name}})
	}
	buttons = append(buttons, []Button{{Label: "⬅️ Retour", Action: domain.ActionBack, Arg: domain.BackToAdmin}})

	sess.State = st
	return &Reply{Text: text, Buttons: buttons, State: st}, nil
}

func (s *Service) promptRemoveMaterial(ctx context.Context, sess *Session) (*Reply, error) {
	materials, err := s.inv.ListMaterials(ctx)
	if err != nil {
		return nil, fmt.Errorf("list materials: %w", err)
	}

	buttons := make([][]Button, 0, len(materials)+1)
	for _, m := range materials {
		buttons = append(buttons, []Button{{Label: m.Emoji + " " + m.Name, Action: domain.ActionDelMat, Arg: m.Name}})
	}
	buttons = append(buttons, []Button{{Label: "⬅️ Retour", Action: domain.ActionBack, Arg: domain.BackToAdmin}})

	sess.State = StateAdminRemoveMaterial
	return &Reply{Text: "➖ Quel matériel supprimer ?", Buttons: buttons, State: StateAdminRemoveMaterial}, nil
}

func (s *Service) promptAddRoom(sess *Session) *Reply {
	sess.State = StateAdminAddRoom
	return &Reply{Text: "➕ Envoyez le nom de la nouvelle salle :", State: StateAdminAddRoom}
}

func (s *Service) promptAddMaterial(sess *Session) *Reply {
	sess.State = StateAdminAddMaterial
	return &Reply{Text: "➕ Envoyez le nouveau matériel (format : <emoji> <nom>) :", State: StateAdminAddMaterial}
}

func (s *Service) promptAddColor(sess *Session) *Reply {
	sess.State = StateAddColor
	return &Reply{Text: "➕ Envoyez la nouvelle couleur (format : Nom #Code) :", State: StateAddColor}
}

func (s *Service) promptEditColor(sess *Session) *Reply {
	sess.State = StateEditColor
	return &Reply{
		Text: "✏️ Envoyez la nouvelle valeur (format : Nom #Code) :",
		Buttons: [][]Button{
			{{Label: "⬅️ Retour", Action: domain.ActionBack, Arg: domain.BackToColors}},
		},
		State: StateEditColor,
	}
}

// renderPrompt re-renders the prompt for the session's current state without
// moving it. This is the no-op path for stale or mismatched events.
func (s *Service) renderPrompt(ctx context.Context, sess *Session) (*Reply, error) {
	switch sess.State {
	case StateStart, StateTerminal:
		return terminalPrompt("Envoyez /start pour commencer."), nil
	case StateRoleSelect:
		return s.startPrompt(sess), nil
	case StateAdminAuth:
		return s.promptAdminAuth(sess), nil
	case StateRoomSelect:
		return s.promptRooms(ctx, sess)
	case StateMaterialSelect:
		return s.promptMaterials(ctx, sess)
	case StateColorSelect:
		return s.promptColors(ctx, sess)
	case StateEnterTotal:
		return s.promptTotal(sess), nil
	case StateEnterBroken:
		return s.promptBroken(sess), nil
	case StateConditionSel:
		return s.promptConditions(sess), nil
	case StateConfirmEntry:
		return s.promptConfirm(sess), nil
	case StateAdminMenu:
		return s.promptAdminMenu(sess), nil
	case StateAdminAddRoom:
		return s.promptAddRoom(sess), nil
	case StateAdminRemoveRoom:
		return s.promptRoomButtons(ctx, sess, "➖ Quelle salle supprimer ?", domain.ActionDelRoom, StateAdminRemoveRoom)
	case StateAdminAddMaterial:
		return s.promptAddMaterial(sess), nil
	case StateAdminRemoveMaterial:
		return s.promptRemoveMaterial(ctx, sess)
	case StateManageColors:
		return s.promptManageColors(ctx, sess)
	case StateAddColor:
		return s.promptAddColor(sess), nil
	case StateEditColor:
		return s.promptEditColor(sess), nil
	case StateRoomDetailSelect:
		return s.promptRoomButtons(ctx, sess, "🏠 Quelle salle consulter ?", domain.ActionRoomDetail, StateRoomDetailSelect)
	}
	return terminalPrompt(""), nil
}
