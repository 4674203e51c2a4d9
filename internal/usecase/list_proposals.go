package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/trebuchet-org/govctl/internal/domain"
	"github.com/trebuchet-org/govctl/internal/domain/config"
	"github.com/trebuchet-org/govctl/internal/domain/models"
)

// ListProposalsParams contains parameters for listing proposals
type ListProposalsParams struct {
	OrganizationID string
	Status         string
}

// ProposalListResult contains the result of listing proposals
type ProposalListResult struct {
	OrganizationID string
	Status         models.ProposalStatus
	Proposals      []models.Proposal
	ByStatus       map[models.ProposalStatus]int
}

// ListProposals is the use case for listing an organization's proposals
type ListProposals struct {
	config    *config.RuntimeConfig
	proposals ProposalClient
	sink      ProgressSink
}

// NewListProposals creates a new ListProposals use case
func NewListProposals(cfg *config.RuntimeConfig, proposals ProposalClient, sink ProgressSink) *ListProposals {
	return &ListProposals{
		config:    cfg,
		proposals: proposals,
		sink:      sink,
	}
}

// Run executes the list proposals use case
func (uc *ListProposals) Run(ctx context.Context, params ListProposalsParams) (*ProposalListResult, error) {
	orgID, err := resolveOrganization(uc.config, params.OrganizationID)
	if err != nil {
		return nil, err
	}

	filter := domain.ProposalFilter{OrganizationID: orgID}
	if params.Status != "" {
		status, ok := models.ParseProposalStatus(params.Status)
		if !ok {
			return nil, domain.ValidationErr{
				Fields: []string{"status"},
				Reason: fmt.Sprintf("invalid status %q (valid: Draft, Open, Closed, Finalized)", params.Status),
			}
		}
		filter.Status = status
	}

	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   "loading",
		Message: "Loading proposals",
		Spinner: true,
	})

	proposals, err := uc.proposals.ListProposals(ctx, filter)
	if err != nil {
		return nil, err
	}

	// Newest first
	sort.SliceStable(proposals, func(i, j int) bool {
		return proposals[i].CreatedAt.After(proposals[j].CreatedAt)
	})

	byStatus := make(map[models.ProposalStatus]int)
	for _, p := range proposals {
		byStatus[p.Status]++
	}

	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   "complete",
		Current: len(proposals),
		Total:   len(proposals),
		Message: "Proposals loaded",
	})

	return &ProposalListResult{
		OrganizationID: orgID,
		Status:         filter.Status,
		Proposals:      proposals,
		ByStatus:       byStatus,
	}, nil
}
