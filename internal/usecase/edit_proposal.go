package usecase

import (
	"context"
	"strings"

	"github.com/trebuchet-org/govctl/internal/domain"
	"github.com/trebuchet-org/govctl/internal/domain/models"
)

// EditProposalParams contains parameters for editing a draft proposal
type EditProposalParams struct {
	ProposalID string
	Update     models.ProposalUpdate
}

// EditProposalResult contains the proposal after the edit
type EditProposalResult struct {
	Proposal *models.Proposal
	Message  string
}

// EditProposal is the use case for editing a proposal's fields
type EditProposal struct {
	proposals ProposalClient
	sink      ProgressSink
}

// NewEditProposal creates a new EditProposal use case
func NewEditProposal(proposals ProposalClient, sink ProgressSink) *EditProposal {
	return &EditProposal{
		proposals: proposals,
		sink:      sink,
	}
}

// Run executes the edit proposal use case
func (uc *EditProposal) Run(ctx context.Context, params EditProposalParams) (*EditProposalResult, error) {
	if params.ProposalID == "" {
		return nil, domain.Required("proposal id")
	}
	if err := validateUpdate(params.Update); err != nil {
		return nil, err
	}

	current, err := uc.proposals.GetProposal(ctx, params.ProposalID)
	if err != nil {
		return nil, err
	}
	if !current.Actions().CanEdit {
		return nil, domain.ActionNotAllowedErr{Action: models.ActionEdit, Status: current.Status}
	}

	// Validate the resulting window against values that are not being changed
	start, end := current.StartAt, current.EndAt
	if params.Update.StartAt != nil {
		start = params.Update.StartAt
	}
	if params.Update.EndAt != nil {
		end = params.Update.EndAt
	}
	if start != nil && end != nil && !end.After(*start) {
		return nil, domain.ValidationErr{
			Fields: []string{"startAt", "endAt"},
			Reason: "end date must be after start date",
		}
	}

	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   "saving",
		Message: "Saving proposal",
		Spinner: true,
	})
	defer uc.sink.OnProgress(ctx, ProgressEvent{Stage: "complete"})

	if _, err := uc.proposals.UpdateProposal(ctx, params.ProposalID, params.Update); err != nil {
		return nil, err
	}

	// Re-fetch so the caller renders server state
	updated, err := uc.proposals.GetProposal(ctx, params.ProposalID)
	if err != nil {
		return nil, err
	}

	return &EditProposalResult{
		Proposal: updated,
		Message:  "Proposal updated.",
	}, nil
}

func validateUpdate(update models.ProposalUpdate) error {
	if update.IsEmpty() {
		return domain.ValidationErr{Reason: "nothing to update: pass at least one field"}
	}
	if update.Title != nil && strings.TrimSpace(*update.Title) == "" {
		return domain.Required("title")
	}
	if q := update.QuorumRequirement; q != nil && (*q < 0 || *q > 100) {
		return domain.ValidationErr{
			Fields: []string{"quorum"},
			Reason: "quorum requirement must be between 0 and 100",
		}
	}
	return nil
}
