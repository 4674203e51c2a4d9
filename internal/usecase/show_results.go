package usecase

import (
	"context"

	"github.com/trebuchet-org/govctl/internal/domain"
	"github.com/trebuchet-org/govctl/internal/domain/models"
	"golang.org/x/sync/errgroup"
)

// ProposalResultsResult contains a proposal and its aggregated results
type ProposalResultsResult struct {
	Proposal *models.Proposal
	Results  *domain.ResultsSummary
}

// ShowResults is the use case for the results view
type ShowResults struct {
	proposals ProposalClient
}

// NewShowResults creates a new ShowResults use case
func NewShowResults(proposals ProposalClient) *ShowResults {
	return &ShowResults{proposals: proposals}
}

// Run fetches the proposal and its results in parallel
func (uc *ShowResults) Run(ctx context.Context, proposalID string) (*ProposalResultsResult, error) {
	if proposalID == "" {
		return nil, domain.Required("proposal id")
	}

	var (
		proposal *models.Proposal
		results  *models.ProposalResults
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		proposal, err = uc.proposals.GetProposal(gctx, proposalID)
		return err
	})
	g.Go(func() error {
		var err error
		results, err = uc.proposals.GetResults(gctx, proposalID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &ProposalResultsResult{
		Proposal: proposal,
		Results:  domain.AggregateResults(results),
	}, nil
}
