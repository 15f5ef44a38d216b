package session

// State is one step of the per-user conversation automaton.
type State string

const (
	StateStart          State = "START"
	StateRoleSelect     State = "ROLE_SELECT"
	StateAdminAuth      State = "ADMIN_AUTH"
	StateRoomSelect     State = "ROOM_SELECT"
	StateMaterialSelect State = "MATERIAL_SELECT"
	StateColorSelect    State = "COLOR_SELECT"
	StateEnterTotal     State = "ENTER_TOTAL"
	StateEnterBroken    State = "ENTER_BROKEN"
	StateConditionSel   State = "CONDITION_SELECT"
	StateConfirmEntry   State = "CONFIRM_ENTRY"

	StateAdminMenu           State = "ADMIN_MENU"
	StateAdminAddRoom        State = "ADMIN_ADD_ROOM"
	StateAdminRemoveRoom     State = "ADMIN_REMOVE_ROOM"
	StateAdminAddMaterial    State = "ADMIN_ADD_MATERIAL"
	StateAdminRemoveMaterial State = "ADMIN_REMOVE_MATERIAL"
	StateManageColors        State = "MANAGE_COLORS"
	StateAddColor            State = "ADD_COLOR"
	StateEditColor           State = "EDIT_COLOR"
	StateRoomDetailSelect    State = "ROOM_DETAIL_SELECT"

	StateTerminal State = "TERMINAL"
)

func (s State) String() string { return string(s) }
