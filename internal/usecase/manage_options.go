package usecase

import (
	"context"
	"strings"

	"github.com/trebuchet-org/govctl/internal/domain"
	"github.com/trebuchet-org/govctl/internal/domain/models"
)

// AddProposalOptionParams contains parameters for adding an option
type AddProposalOptionParams struct {
	ProposalID  string
	Text        string
	Description string
}

// ProposalOptionResult contains the proposal after an option change
type ProposalOptionResult struct {
	Proposal *models.Proposal
	Option   *models.ProposalOption
	Message  string
}

// AddProposalOption is the use case for adding an option to a proposal
type AddProposalOption struct {
	proposals ProposalClient
}

// NewAddProposalOption creates a new AddProposalOption use case
func NewAddProposalOption(proposals ProposalClient) *AddProposalOption {
	return &AddProposalOption{proposals: proposals}
}

// Run executes the add option use case
func (uc *AddProposalOption) Run(ctx context.Context, params AddProposalOptionParams) (*ProposalOptionResult, error) {
	if params.ProposalID == "" {
		return nil, domain.Required("proposal id")
	}
	text := strings.TrimSpace(params.Text)
	if text == "" {
		return nil, domain.Required("text")
	}

	current, err := uc.proposals.GetProposal(ctx, params.ProposalID)
	if err != nil {
		return nil, err
	}
	if !current.Actions().CanAddOption {
		return nil, domain.ActionNotAllowedErr{Action: models.ActionAddOption, Status: current.Status}
	}

	option, err := uc.proposals.AddOption(ctx, params.ProposalID, models.NewProposalOption{
		Text:        text,
		Description: strings.TrimSpace(params.Description),
	})
	if err != nil {
		return nil, err
	}

	updated, err := uc.proposals.GetProposal(ctx, params.ProposalID)
	if err != nil {
		return nil, err
	}

	return &ProposalOptionResult{
		Proposal: updated,
		Option:   option,
		Message:  "Option added.",
	}, nil
}

// DeleteProposalOptionParams contains parameters for deleting an option
type DeleteProposalOptionParams struct {
	ProposalID string
	OptionID   string
	Confirmed  bool
}

// DeleteProposalOption is the use case for removing an option from a draft proposal
type DeleteProposalOption struct {
	proposals ProposalClient
	selector  InteractiveSelector
}

// NewDeleteProposalOption creates a new DeleteProposalOption use case
func NewDeleteProposalOption(proposals ProposalClient, selector InteractiveSelector) *DeleteProposalOption {
	return &DeleteProposalOption{
		proposals: proposals,
		selector:  selector,
	}
}

// Run executes the delete option use case
func (uc *DeleteProposalOption) Run(ctx context.Context, params DeleteProposalOptionParams) (*ProposalOptionResult, error) {
	if params.ProposalID == "" || params.OptionID == "" {
		return nil, domain.Required("proposal id", "option id")
	}

	current, err := uc.proposals.GetProposal(ctx, params.ProposalID)
	if err != nil {
		return nil, err
	}
	if !current.Actions().CanDeleteOption {
		return nil, domain.ActionNotAllowedErr{Action: models.ActionDeleteOption, Status: current.Status}
	}

	option, ok := current.FindOption(params.OptionID)
	if !ok {
		return nil, domain.ErrOptionNotFound
	}

	if !params.Confirmed {
		confirmed, err := uc.selector.Confirm(ctx, "Delete option \""+option.Text+"\"?")
		if err != nil {
			return nil, err
		}
		if !confirmed {
			return nil, domain.ErrCancelled
		}
	}

	if err := uc.proposals.DeleteOption(ctx, params.ProposalID, params.OptionID); err != nil {
		return nil, err
	}

	updated, err := uc.proposals.GetProposal(ctx, params.ProposalID)
	if err != nil {
		return nil, err
	}

	return &ProposalOptionResult{
		Proposal: updated,
		Option:   option,
		Message:  "Option deleted.",
	}, nil
}
