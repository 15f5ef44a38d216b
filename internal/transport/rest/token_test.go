package rest

import (
	"testing"

	"github.com/heartmarshall/founty-inventory/internal/domain"
	"github.com/heartmarshall/founty-inventory/internal/service/session"
)

func TestDecodeToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		token      string
		wantAction domain.SelectionAction
		wantArg    string
	}{
		{"role_user", domain.ActionRole, "user"},
		{"room_LabA", domain.ActionRoom, "LabA"},
		{"room_Salle de réunion", domain.ActionRoom, "Salle de réunion"},
		// Underscores in names must survive decoding.
		{"room_lab_b_annex", domain.ActionRoom, "lab_b_annex"},
		{"material_Chaises", domain.ActionMaterial, "Chaises"},
		{"chaircolor_6f1e0a52-0000-0000-0000-000000000000", domain.ActionColor, "6f1e0a52-0000-0000-0000-000000000000"},
		{"chaircolor_none", domain.ActionColorNone, ""},
		{"condition_Bon", domain.ActionCondition, "Bon"},
		{"confirm_stay", domain.ActionConfirm, "stay"},
		{"back_rooms", domain.ActionBack, "rooms"},
		{"admin_dashboard", domain.ActionAdminDashboard, ""},
		{"admin_room_details", domain.ActionAdminRoomDetails, ""},
		{"color_add", domain.ActionColorAdd, ""},
		{"delroom_LabA", domain.ActionDelRoom, "LabA"},
		{"delcolor_abc", domain.ActionDelColor, "abc"},
		{"editcolor_abc", domain.ActionEditColor, "abc"},
		{"roomdetail_LabA", domain.ActionRoomDetail, "LabA"},
	}

	for _, tc := range tests {
		sel, ok := decodeToken(tc.token)
		if !ok {
			t.Errorf("decodeToken(%q): not recognized", tc.token)
			continue
		}
		if sel.Action != tc.wantAction || sel.Arg != tc.wantArg {
			t.Errorf("decodeToken(%q) = %s %q; want %s %q",
				tc.token, sel.Action, sel.Arg, tc.wantAction, tc.wantArg)
		}
	}
}

func TestDecodeToken_Unknown(t *testing.T) {
	t.Parallel()

	for _, token := range []string{"", "frobnicate", "rooms_LabA"} {
		if _, ok := decodeToken(token); ok {
			t.Errorf("decodeToken(%q): should not be recognized", token)
		}
	}
}

func TestEncodeToken_RoundTrip(t *testing.T) {
	t.Parallel()

	buttons := []session.Button{
		{Action: domain.ActionRoom, Arg: "lab_b_annex"},
		{Action: domain.ActionMaterial, Arg: "Chaises"},
		{Action: domain.ActionColorNone},
		{Action: domain.ActionConfirm, Arg: domain.ConfirmStay},
		{Action: domain.ActionBack, Arg: domain.BackToAdmin},
		{Action: domain.ActionAdminLowStock},
		{Action: domain.ActionDelMat, Arg: "Tables"},
		{Action: domain.ActionRoomDetail, Arg: "LabA"},
	}

	for _, b := range buttons {
		token := encodeToken(b)
		if token == "" {
			t.Errorf("encodeToken(%+v): empty token", b)
			continue
		}
		sel, ok := decodeToken(token)
		if !ok {
			t.Errorf("round trip %+v: token %q not decodable", b, token)
			continue
		}
		if sel.Action != b.Action || sel.Arg != b.Arg {
			t.Errorf("round trip %+v via %q = %s %q", b, token, sel.Action, sel.Arg)
		}
	}
}
