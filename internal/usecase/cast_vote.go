package usecase

import (
	"context"
	"errors"

	"github.com/trebuchet-org/govctl/internal/domain"
	"github.com/trebuchet-org/govctl/internal/domain/config"
	"github.com/trebuchet-org/govctl/internal/domain/models"
)

// VoteSuccessMessage is shown after a vote is accepted
const VoteSuccessMessage = "Your vote has been cast successfully!"

// CastVoteParams contains parameters for casting a vote
type CastVoteParams struct {
	ProposalID string
	// OptionID may be empty in interactive mode, the user then picks one
	OptionID string
}

// CastVoteResult contains the outcome of a vote
type CastVoteResult struct {
	Proposal *models.Proposal
	Vote     *models.Vote
	Option   *models.ProposalOption
	// AlreadyVoted is set when an existing vote was found and nothing was sent
	AlreadyVoted bool
	Message      string
}

// CastVote is the use case for voting on an open proposal
type CastVote struct {
	config    *config.RuntimeConfig
	proposals ProposalClient
	selector  InteractiveSelector
	sink      ProgressSink
}

// NewCastVote creates a new CastVote use case
func NewCastVote(cfg *config.RuntimeConfig, proposals ProposalClient, selector InteractiveSelector, sink ProgressSink) *CastVote {
	return &CastVote{
		config:    cfg,
		proposals: proposals,
		selector:  selector,
		sink:      sink,
	}
}

// Run executes the cast vote use case
func (uc *CastVote) Run(ctx context.Context, params CastVoteParams) (*CastVoteResult, error) {
	if params.ProposalID == "" {
		return nil, domain.Required("proposal id")
	}

	proposal, err := uc.proposals.GetProposal(ctx, params.ProposalID)
	if err != nil {
		return nil, err
	}
	if proposal.Status != models.ProposalStatusOpen {
		return nil, domain.ErrNotOpenForVoting
	}

	existing, err := uc.proposals.GetMyVote(ctx, params.ProposalID)
	switch {
	case err == nil:
		option, _ := proposal.FindOption(existing.OptionID)
		return &CastVoteResult{
			Proposal:     proposal,
			Vote:         existing,
			Option:       option,
			AlreadyVoted: true,
		}, nil
	case !errors.Is(err, domain.ErrNotFound):
		return nil, err
	}

	option, err := uc.pickOption(ctx, proposal, params.OptionID)
	if err != nil {
		return nil, err
	}

	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   "voting",
		Message: "Casting vote",
		Spinner: true,
	})
	defer uc.sink.OnProgress(ctx, ProgressEvent{Stage: "complete"})

	vote, err := uc.proposals.CastVote(ctx, proposal.ID, option.ID)
	if err != nil {
		return nil, err
	}

	// Reload so the recorded vote reflects server state
	if reloaded, err := uc.proposals.GetMyVote(ctx, proposal.ID); err == nil {
		vote = reloaded
	}

	return &CastVoteResult{
		Proposal: proposal,
		Vote:     vote,
		Option:   option,
		Message:  VoteSuccessMessage,
	}, nil
}

func (uc *CastVote) pickOption(ctx context.Context, proposal *models.Proposal, optionID string) (*models.ProposalOption, error) {
	if optionID != "" {
		option, ok := proposal.FindOption(optionID)
		if !ok {
			return nil, domain.ErrOptionNotFound
		}
		return option, nil
	}

	if uc.config.NonInteractive {
		return nil, domain.Required("option")
	}
	if len(proposal.Options) == 0 {
		return nil, domain.ValidationErr{Reason: "proposal has no options to vote on"}
	}

	return uc.selector.SelectOption(ctx, proposal.Options, "Select an option to vote for")
}
