package models

import "time"

// ProposalStatus represents the lifecycle status of a proposal
type ProposalStatus string

const (
	ProposalStatusDraft     ProposalStatus = "Draft"
	ProposalStatusOpen      ProposalStatus = "Open"
	ProposalStatusClosed    ProposalStatus = "Closed"
	ProposalStatusFinalized ProposalStatus = "Finalized"
)

// AllProposalStatuses returns the statuses in lifecycle order
func AllProposalStatuses() []ProposalStatus {
	return []ProposalStatus{
		ProposalStatusDraft,
		ProposalStatusOpen,
		ProposalStatusClosed,
		ProposalStatusFinalized,
	}
}

// ParseProposalStatus matches a status case-insensitively
func ParseProposalStatus(s string) (ProposalStatus, bool) {
	for _, status := range AllProposalStatuses() {
		if equalFold(string(status), s) {
			return status, true
		}
	}
	return "", false
}

// Proposal is a governance item members vote on
type Proposal struct {
	ID                  string           `json:"id" yaml:"id"`
	OrganizationID      string           `json:"organizationId" yaml:"organizationId"`
	Title               string           `json:"title" yaml:"title"`
	Description         string           `json:"description" yaml:"description"`
	Status              ProposalStatus   `json:"status" yaml:"status"`
	StartAt             *time.Time       `json:"startAt,omitempty" yaml:"startAt,omitempty"`
	EndAt               *time.Time       `json:"endAt,omitempty" yaml:"endAt,omitempty"`
	QuorumRequirement   *float64         `json:"quorumRequirement,omitempty" yaml:"quorumRequirement,omitempty"`
	EligibleVotingPower *float64         `json:"eligibleVotingPower,omitempty" yaml:"eligibleVotingPower,omitempty"`
	TotalVotesCast      *float64         `json:"totalVotesCast,omitempty" yaml:"totalVotesCast,omitempty"`
	QuorumMet           *bool            `json:"quorumMet,omitempty" yaml:"quorumMet,omitempty"`
	CreatedAt           time.Time        `json:"createdAt" yaml:"createdAt"`
	ClosedAt            *time.Time       `json:"closedAt,omitempty" yaml:"closedAt,omitempty"`
	Options             []ProposalOption `json:"options" yaml:"options"`
}

// FindOption returns the option with the given id
func (p *Proposal) FindOption(optionID string) (*ProposalOption, bool) {
	for i := range p.Options {
		if p.Options[i].ID == optionID {
			return &p.Options[i], true
		}
	}
	return nil, false
}

// Actions returns the actions available for the proposal's current status
func (p *Proposal) Actions() ProposalActions {
	return ProposalActionsFor(p.Status)
}

// ProposalOption is one choice on a proposal
type ProposalOption struct {
	ID          string `json:"id" yaml:"id"`
	ProposalID  string `json:"proposalId" yaml:"proposalId"`
	Text        string `json:"text" yaml:"text"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Vote is a single voter's choice on a proposal
type Vote struct {
	ID          string    `json:"id" yaml:"id"`
	ProposalID  string    `json:"proposalId" yaml:"proposalId"`
	OptionID    string    `json:"optionId" yaml:"optionId"`
	VoterID     string    `json:"voterId" yaml:"voterId"`
	VotingPower float64   `json:"votingPower" yaml:"votingPower"`
	CastAt      time.Time `json:"castAt" yaml:"castAt"`
}

// ProposalResults is the server-side aggregate of cast votes
type ProposalResults struct {
	ProposalID       string         `json:"proposalId" yaml:"proposalId"`
	TotalVotingPower float64        `json:"totalVotingPower" yaml:"totalVotingPower"`
	WinningOptionID  *string        `json:"winningOptionId,omitempty" yaml:"winningOptionId,omitempty"`
	QuorumMet        *bool          `json:"quorumMet,omitempty" yaml:"quorumMet,omitempty"`
	Options          []OptionResult `json:"options" yaml:"options"`
}

// OptionResult holds the totals for one option
type OptionResult struct {
	OptionID    string  `json:"optionId" yaml:"optionId"`
	OptionText  string  `json:"optionText" yaml:"optionText"`
	VoteCount   int     `json:"voteCount" yaml:"voteCount"`
	VotingPower float64 `json:"totalVotingPower" yaml:"totalVotingPower"`
}

// ProposalUpdate carries the editable fields of a proposal. Nil fields are left unchanged.
type ProposalUpdate struct {
	Title             *string    `json:"title,omitempty"`
	Description       *string    `json:"description,omitempty"`
	StartAt           *time.Time `json:"startAt,omitempty"`
	EndAt             *time.Time `json:"endAt,omitempty"`
	QuorumRequirement *float64   `json:"quorumRequirement,omitempty"`
}

// IsEmpty reports whether the update changes nothing
func (u ProposalUpdate) IsEmpty() bool {
	return u.Title == nil && u.Description == nil && u.StartAt == nil && u.EndAt == nil && u.QuorumRequirement == nil
}

// NewProposalOption is the payload for adding an option
type NewProposalOption struct {
	Text        string `json:"text"`
	Description string `json:"description,omitempty"`
}
