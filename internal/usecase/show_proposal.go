package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/trebuchet-org/govctl/internal/domain"
	"github.com/trebuchet-org/govctl/internal/domain/models"
	"golang.org/x/sync/errgroup"
)

// ShowProposalParams contains parameters for showing a proposal
type ShowProposalParams struct {
	ProposalID string
}

// ProposalDetailResult contains everything the proposal detail view renders
type ProposalDetailResult struct {
	Proposal *models.Proposal
	Actions  models.ProposalActions

	// Best-effort data, nil when unavailable
	Results        *domain.ResultsSummary
	MyVote         *models.Vote
	MyVoteOption   *models.ProposalOption
	QuorumProgress *float64
}

// ShowProposal is the use case for the proposal detail view
type ShowProposal struct {
	proposals ProposalClient
	sink      ProgressSink
	log       *slog.Logger
}

// NewShowProposal creates a new ShowProposal use case
func NewShowProposal(proposals ProposalClient, sink ProgressSink, log *slog.Logger) *ShowProposal {
	return &ShowProposal{
		proposals: proposals,
		sink:      sink,
		log:       log,
	}
}

// Run executes the show proposal use case
func (uc *ShowProposal) Run(ctx context.Context, params ShowProposalParams) (*ProposalDetailResult, error) {
	if params.ProposalID == "" {
		return nil, domain.Required("proposal id")
	}

	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   "loading",
		Message: "Loading proposal",
		Spinner: true,
	})
	defer uc.sink.OnProgress(ctx, ProgressEvent{Stage: "complete"})

	proposal, err := uc.proposals.GetProposal(ctx, params.ProposalID)
	if err != nil {
		return nil, err
	}

	result := &ProposalDetailResult{
		Proposal: proposal,
		Actions:  proposal.Actions(),
	}
	if progress, ok := domain.QuorumProgress(proposal); ok {
		result.QuorumProgress = &progress
	}

	// Drafts have no votes yet
	if proposal.Status == models.ProposalStatusDraft {
		return result, nil
	}

	uc.loadSecondary(ctx, result)
	return result, nil
}

// loadSecondary fetches results and the caller's vote. Failures are logged
// and never block the detail view.
func (uc *ShowProposal) loadSecondary(ctx context.Context, result *ProposalDetailResult) {
	id := result.Proposal.ID

	var g errgroup.Group
	g.Go(func() error {
		results, err := uc.proposals.GetResults(ctx, id)
		if err != nil {
			uc.log.Warn("failed to load proposal results", "proposal", id, "error", err)
			return nil
		}
		result.Results = domain.AggregateResults(results)
		return nil
	})
	g.Go(func() error {
		vote, err := uc.proposals.GetMyVote(ctx, id)
		if err != nil {
			if !errors.Is(err, domain.ErrNotFound) {
				uc.log.Warn("failed to load existing vote", "proposal", id, "error", err)
			}
			return nil
		}
		result.MyVote = vote
		if opt, ok := result.Proposal.FindOption(vote.OptionID); ok {
			result.MyVoteOption = opt
		}
		return nil
	})
	_ = g.Wait()
}
