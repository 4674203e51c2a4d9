package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/trebuchet-org/govctl/internal/domain"
	"github.com/trebuchet-org/govctl/internal/domain/models"
	"github.com/trebuchet-org/govctl/internal/usecase"
)

// ListProposals returns an organization's proposals
func (c *Client) ListProposals(ctx context.Context, filter domain.ProposalFilter) ([]models.Proposal, error) {
	var proposals []models.Proposal
	path := fmt.Sprintf("/organizations/%s/proposals", segment(filter.OrganizationID))
	if err := c.getJSON(ctx, path, filter.Values(), &proposals); err != nil {
		return nil, err
	}
	return proposals, nil
}

// GetProposal returns a single proposal with its options
func (c *Client) GetProposal(ctx context.Context, id string) (*models.Proposal, error) {
	var proposal models.Proposal
	if err := c.getJSON(ctx, "/proposals/"+segment(id), nil, &proposal); err != nil {
		return nil, err
	}
	return &proposal, nil
}

// UpdateProposal changes a proposal's editable fields
func (c *Client) UpdateProposal(ctx context.Context, id string, update models.ProposalUpdate) (*models.Proposal, error) {
	var proposal models.Proposal
	if err := c.doJSON(ctx, http.MethodPut, "/proposals/"+segment(id), nil, update, &proposal); err != nil {
		return nil, err
	}
	return &proposal, nil
}

// TransitionProposal opens, closes or finalizes a proposal
func (c *Client) TransitionProposal(ctx context.Context, id string, action models.ProposalAction) (*models.Proposal, error) {
	switch action {
	case models.ActionOpen, models.ActionClose, models.ActionFinalize:
	default:
		return nil, fmt.Errorf("unsupported transition: %s", action)
	}

	var proposal models.Proposal
	path := fmt.Sprintf("/proposals/%s/%s", segment(id), action)
	if err := c.doJSON(ctx, http.MethodPost, path, nil, nil, &proposal); err != nil {
		return nil, err
	}
	return &proposal, nil
}

// GetResults returns the vote totals of a proposal
func (c *Client) GetResults(ctx context.Context, id string) (*models.ProposalResults, error) {
	var results models.ProposalResults
	path := fmt.Sprintf("/proposals/%s/results", segment(id))
	if err := c.getJSON(ctx, path, nil, &results); err != nil {
		return nil, err
	}
	return &results, nil
}

// AddOption adds an option to a proposal
func (c *Client) AddOption(ctx context.Context, id string, option models.NewProposalOption) (*models.ProposalOption, error) {
	var created models.ProposalOption
	path := fmt.Sprintf("/proposals/%s/options", segment(id))
	if err := c.doJSON(ctx, http.MethodPost, path, nil, option, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// DeleteOption removes an option from a proposal
func (c *Client) DeleteOption(ctx context.Context, id string, optionID string) error {
	path := fmt.Sprintf("/proposals/%s/options/%s", segment(id), segment(optionID))
	return c.doJSON(ctx, http.MethodDelete, path, nil, nil, nil)
}

type castVoteRequest struct {
	OptionID string `json:"optionId"`
}

// CastVote records the caller's vote
func (c *Client) CastVote(ctx context.Context, id string, optionID string) (*models.Vote, error) {
	var vote models.Vote
	path := fmt.Sprintf("/proposals/%s/votes", segment(id))
	if err := c.doJSON(ctx, http.MethodPost, path, nil, castVoteRequest{OptionID: optionID}, &vote); err != nil {
		return nil, err
	}
	return &vote, nil
}

// GetMyVote returns the caller's vote. A 404 means no vote was cast.
func (c *Client) GetMyVote(ctx context.Context, id string) (*models.Vote, error) {
	var vote models.Vote
	path := fmt.Sprintf("/proposals/%s/votes/me", segment(id))
	if err := c.getJSON(ctx, path, nil, &vote); err != nil {
		return nil, err
	}
	return &vote, nil
}

var _ usecase.ProposalClient = (*Client)(nil)
