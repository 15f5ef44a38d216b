package domain

// EventKind discriminates the three inbound event shapes the core accepts.
type EventKind string

const (
	EventCommand   EventKind = "COMMAND"
	EventSelection EventKind = "SELECTION"
	EventFreeText  EventKind = "FREE_TEXT"
)

func (k EventKind) IsValid() bool {
	switch k {
	case EventCommand, EventSelection, EventFreeText:
		return true
	}
	return false
}

// Command is a slash-style command event.
type Command string

const (
	CommandStart    Command = "start"
	CommandHelp     Command = "help"
	CommandStats    Command = "stats"
	CommandSearch   Command = "search"
	CommandView     Command = "view"
	CommandFeedback Command = "feedback"
	CommandCancel   Command = "cancel"
)

func (c Command) IsValid() bool {
	switch c {
	case CommandStart, CommandHelp, CommandStats, CommandSearch,
		CommandView, CommandFeedback, CommandCancel:
		return true
	}
	return false
}

// SelectionAction is the action tag of a discrete selection. The transport
// decodes wire tokens (e.g. "room_LabA") into an action plus an opaque
// argument once at the boundary; the core never parses token strings, so
// names containing separator characters cannot corrupt dispatch.
type SelectionAction string

const (
	ActionRole      SelectionAction = "ROLE"       // arg: "user" or "admin"
	ActionRoom      SelectionAction = "ROOM"       // arg: room name
	ActionMaterial  SelectionAction = "MATERIAL"   // arg: material name
	ActionColor     SelectionAction = "COLOR"      // arg: color id
	ActionColorNone SelectionAction = "COLOR_NONE" // explicit "no color" choice
	ActionCondition SelectionAction = "CONDITION"  // arg: condition label
	ActionConfirm   SelectionAction = "CONFIRM"    // arg: ConfirmYes/ConfirmStay/ConfirmNo
	ActionBack      SelectionAction = "BACK"       // arg: BackToStart/BackToRooms/...

	ActionAdminDashboard   SelectionAction = "ADMIN_DASHBOARD"
	ActionAdminColors      SelectionAction = "ADMIN_COLORS"
	ActionAdminAddRoom     SelectionAction = "ADMIN_ADD_ROOM"
	ActionAdminRemoveRoom  SelectionAction = "ADMIN_REMOVE_ROOM"
	ActionAdminAddMat      SelectionAction = "ADMIN_ADD_MATERIAL"
	ActionAdminRemoveMat   SelectionAction = "ADMIN_REMOVE_MATERIAL"
	ActionAdminExport      SelectionAction = "ADMIN_EXPORT"
	ActionAdminLowStock    SelectionAction = "ADMIN_LOW_STOCK"
	ActionAdminFeedback    SelectionAction = "ADMIN_FEEDBACK"
	ActionAdminRoomDetails SelectionAction = "ADMIN_ROOM_DETAILS"

	ActionColorAdd   SelectionAction = "COLOR_ADD"    // open add-color prompt
	ActionDelRoom    SelectionAction = "DEL_ROOM"     // arg: room name
	ActionDelMat     SelectionAction = "DEL_MATERIAL" // arg: material name
	ActionDelColor   SelectionAction = "DEL_COLOR"    // arg: color id
	ActionEditColor  SelectionAction = "EDIT_COLOR"   // arg: color id
	ActionRoomDetail SelectionAction = "ROOM_DETAIL"  // arg: room name
)

// Confirm arguments.
const (
	ConfirmYes  = "yes"
	ConfirmStay = "stay"
	ConfirmNo   = "no"
)

// Back targets.
const (
	BackToStart     = "start"
	BackToRooms     = "rooms"
	BackToMaterials = "materials"
	BackToAdmin     = "admin"
	BackToColors    = "colors"
)

// Selection is a decoded discrete-selection payload.
type Selection struct {
	Action SelectionAction
	Arg    string
}

// Event is the typed inbound event union. Exactly one of Command/Selection/
// Text is meaningful, according to Kind.
type Event struct {
	Kind EventKind

	Command     Command
	CommandArgs string // remainder after the command word, e.g. feedback text

	Selection Selection

	Text string
}
