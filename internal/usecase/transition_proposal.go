package usecase

import (
	"context"
	"fmt"

	"github.com/trebuchet-org/govctl/internal/domain"
	"github.com/trebuchet-org/govctl/internal/domain/models"
)

var transitionMessages = map[models.ProposalAction]string{
	models.ActionOpen:     "Proposal opened for voting.",
	models.ActionClose:    "Voting closed.",
	models.ActionFinalize: "Proposal finalized.",
}

// TransitionProposalParams contains parameters for a lifecycle transition
type TransitionProposalParams struct {
	ProposalID string
	Action     models.ProposalAction
	// Confirmed skips the confirmation prompt
	Confirmed bool
}

// TransitionProposalResult contains the proposal after the transition
type TransitionProposalResult struct {
	Proposal       *models.Proposal
	PreviousStatus models.ProposalStatus
	Message        string
}

// TransitionProposal is the use case for opening, closing and finalizing proposals
type TransitionProposal struct {
	proposals ProposalClient
	selector  InteractiveSelector
	sink      ProgressSink
}

// NewTransitionProposal creates a new TransitionProposal use case
func NewTransitionProposal(proposals ProposalClient, selector InteractiveSelector, sink ProgressSink) *TransitionProposal {
	return &TransitionProposal{
		proposals: proposals,
		selector:  selector,
		sink:      sink,
	}
}

// Run executes the transition
func (uc *TransitionProposal) Run(ctx context.Context, params TransitionProposalParams) (*TransitionProposalResult, error) {
	if params.ProposalID == "" {
		return nil, domain.Required("proposal id")
	}
	message, ok := transitionMessages[params.Action]
	if !ok {
		return nil, fmt.Errorf("unsupported transition: %s", params.Action)
	}

	current, err := uc.proposals.GetProposal(ctx, params.ProposalID)
	if err != nil {
		return nil, err
	}
	if !current.Actions().Allows(params.Action) {
		return nil, domain.ActionNotAllowedErr{Action: params.Action, Status: current.Status}
	}

	if !params.Confirmed {
		confirmed, err := uc.selector.Confirm(ctx, fmt.Sprintf("%s proposal %q?", actionVerb(params.Action), current.Title))
		if err != nil {
			return nil, err
		}
		if !confirmed {
			return nil, domain.ErrCancelled
		}
	}

	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   "transition",
		Message: fmt.Sprintf("%s proposal", actionVerb(params.Action)),
		Spinner: true,
	})
	defer uc.sink.OnProgress(ctx, ProgressEvent{Stage: "complete"})

	if _, err := uc.proposals.TransitionProposal(ctx, params.ProposalID, params.Action); err != nil {
		return nil, err
	}

	updated, err := uc.proposals.GetProposal(ctx, params.ProposalID)
	if err != nil {
		return nil, err
	}

	return &TransitionProposalResult{
		Proposal:       updated,
		PreviousStatus: current.Status,
		Message:        message,
	}, nil
}

func actionVerb(action models.ProposalAction) string {
	switch action {
	case models.ActionOpen:
		return "Open"
	case models.ActionClose:
		return "Close"
	case models.ActionFinalize:
		return "Finalize"
	default:
		return string(action)
	}
}
