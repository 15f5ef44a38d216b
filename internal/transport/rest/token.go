package rest

import (
	"strings"

	"github.com/heartmarshall/founty-inventory/internal/domain"
	"github.com/heartmarshall/founty-inventory/internal/service/session"
)

// Selection wire tokens. The chat platform echoes the token of the pressed
// button back verbatim; decoding happens here, once, so the core only ever
// sees typed actions. Tokens with a payload use a fixed prefix; the rest of
// the token is the argument and may contain any characters, underscores
// included.
const (
	tokenRoom       = "room_"
	tokenMaterial   = "material_"
	tokenColor      = "chaircolor_"
	tokenCondition  = "condition_"
	tokenConfirm    = "confirm_"
	tokenBack       = "back_"
	tokenRole       = "role_"
	tokenDelRoom    = "delroom_"
	tokenDelMat     = "delmat_"
	tokenDelColor   = "delcolor_"
	tokenEditColor  = "editcolor_"
	tokenRoomDetail = "roomdetail_"

	tokenColorNone = "chaircolor_none"
	tokenColorAdd  = "color_add"
)

// bareTokens are selection tokens without a payload.
var bareTokens = map[string]domain.SelectionAction{
	"admin_dashboard":    domain.ActionAdminDashboard,
	"admin_colors":       domain.ActionAdminColors,
	"admin_add_room":     domain.ActionAdminAddRoom,
	"admin_del_room":     domain.ActionAdminRemoveRoom,
	"admin_add_material": domain.ActionAdminAddMat,
	"admin_del_material": domain.ActionAdminRemoveMat,
	"admin_export":       domain.ActionAdminExport,
	"admin_lowstock":     domain.ActionAdminLowStock,
	"admin_feedback":     domain.ActionAdminFeedback,
	"admin_room_details": domain.ActionAdminRoomDetails,
	tokenColorAdd:        domain.ActionColorAdd,
	tokenColorNone:       domain.ActionColorNone,
}

// prefixTokens are selection tokens carrying an argument after the prefix.
// Order matters: chaircolor_none must be matched as a bare token first.
var prefixTokens = []struct {
	prefix string
	action domain.SelectionAction
}{
	{tokenRole, domain.ActionRole},
	{tokenRoomDetail, domain.ActionRoomDetail},
	{tokenRoom, domain.ActionRoom},
	{tokenMaterial, domain.ActionMaterial},
	{tokenColor, domain.ActionColor},
	{tokenCondition, domain.ActionCondition},
	{tokenConfirm, domain.ActionConfirm},
	{tokenBack, domain.ActionBack},
	{tokenDelRoom, domain.ActionDelRoom},
	{tokenDelMat, domain.ActionDelMat},
	{tokenDelColor, domain.ActionDelColor},
	{tokenEditColor, domain.ActionEditColor},
}

// decodeToken parses a wire token into a typed selection.
func decodeToken(token string) (domain.Selection, bool) {
	if action, ok := bareTokens[token]; ok {
		return domain.Selection{Action: action}, true
	}
	for _, pt := range prefixTokens {
		if arg, ok := strings.CutPrefix(token, pt.prefix); ok {
			return domain.Selection{Action: pt.action, Arg: arg}, true
		}
	}
	return domain.Selection{}, false
}

// encodeToken renders a reply button's action back into its wire token.
func encodeToken(b session.Button) string {
	for bare, action := range bareTokens {
		if b.Action == action {
			return bare
		}
	}
	for _, pt := range prefixTokens {
		if b.Action == pt.action {
			return pt.prefix + b.Arg
		}
	}
	return ""
}
