package domain

// Status is the resolved circulation state of a book for the current user.
// It gates which action the UI exposes.
type Status int

const (
	StatusUnknown Status = iota // Book is not in the catalog
	StatusLoaned
	StatusOnHold
	StatusAvailableToBorrow
	StatusUnavailableCanHold
)

func (s Status) String() string {
	switch s {
	case StatusLoaned:
		return "Loaned"
	case StatusOnHold:
		return "On Hold"
	case StatusAvailableToBorrow:
		return "Available"
	case StatusUnavailableCanHold:
		return "Unavailable"
	default:
		return "Unknown"
	}
}

// Action is a user command against a book
type Action int

const (
	ActionNone Action = iota
	ActionBorrow
	ActionReturn
	ActionPlaceHold
	ActionCancelHold
	ActionAddTag
	ActionRemoveTag
	ActionRead
	ActionListen
	ActionReset
)

func (a Action) String() string {
	switch a {
	case ActionBorrow:
		return "Borrow"
	case ActionReturn:
		return "Return"
	case ActionPlaceHold:
		return "Place Hold"
	case ActionCancelHold:
		return "Cancel Hold"
	case ActionAddTag:
		return "Add Tag"
	case ActionRemoveTag:
		return "Remove Tag"
	case ActionRead:
		return "Read"
	case ActionListen:
		return "Listen"
	case ActionReset:
		return "Reset"
	default:
		return "None"
	}
}

// CommandResult reports the outcome of a mutation.
// Changed is false when the command was a no-op. Err is only set for
// persistence failures; the in-memory state is kept regardless.
type CommandResult struct {
	Action  Action
	BookID  string
	Tag     string
	Changed bool
	Status  Status // Status after the command
	Err     error
}
