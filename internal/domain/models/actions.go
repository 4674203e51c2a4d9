package models

import "strings"

// ProposalAction is an admin action gated by proposal status
type ProposalAction string

const (
	ActionEdit         ProposalAction = "edit"
	ActionOpen         ProposalAction = "open"
	ActionClose        ProposalAction = "close"
	ActionFinalize     ProposalAction = "finalize"
	ActionAddOption    ProposalAction = "add-option"
	ActionDeleteOption ProposalAction = "delete-option"
)

// ProposalActions lists which actions a status permits
type ProposalActions struct {
	CanEdit         bool
	CanOpen         bool
	CanClose        bool
	CanFinalize     bool
	CanAddOption    bool
	CanDeleteOption bool
}

// ProposalActionsFor derives the permitted actions from a status.
// Options can only be deleted while the proposal is still a draft.
func ProposalActionsFor(status ProposalStatus) ProposalActions {
	editable := status == ProposalStatusDraft || status == ProposalStatusOpen
	return ProposalActions{
		CanEdit:         editable,
		CanOpen:         status == ProposalStatusDraft,
		CanClose:        status == ProposalStatusOpen,
		CanFinalize:     status == ProposalStatusClosed,
		CanAddOption:    editable,
		CanDeleteOption: status == ProposalStatusDraft,
	}
}

// Allows reports whether a single action is permitted
func (a ProposalActions) Allows(action ProposalAction) bool {
	switch action {
	case ActionEdit:
		return a.CanEdit
	case ActionOpen:
		return a.CanOpen
	case ActionClose:
		return a.CanClose
	case ActionFinalize:
		return a.CanFinalize
	case ActionAddOption:
		return a.CanAddOption
	case ActionDeleteOption:
		return a.CanDeleteOption
	default:
		return false
	}
}

// Available returns the permitted actions in display order
func (a ProposalActions) Available() []ProposalAction {
	var out []ProposalAction
	for _, action := range []ProposalAction{
		ActionEdit, ActionOpen, ActionClose, ActionFinalize, ActionAddOption, ActionDeleteOption,
	} {
		if a.Allows(action) {
			out = append(out, action)
		}
	}
	return out
}

func equalFold(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
