package domain

import (
	"fmt"
	"math"

	"github.com/trebuchet-org/govctl/internal/domain/models"
)

// OptionShare is one option's share of the total voting power
type OptionShare struct {
	OptionID    string  `json:"optionId" yaml:"optionId"`
	Text        string  `json:"text" yaml:"text"`
	VoteCount   int     `json:"voteCount" yaml:"voteCount"`
	VotingPower float64 `json:"votingPower" yaml:"votingPower"`
	Share       float64 `json:"share" yaml:"share"`
	ShareLabel  string  `json:"shareLabel" yaml:"shareLabel"`
	Winner      bool    `json:"winner" yaml:"winner"`
}

// ResultsSummary is the display form of ProposalResults
type ResultsSummary struct {
	ProposalID       string        `json:"proposalId" yaml:"proposalId"`
	TotalVotingPower float64       `json:"totalVotingPower" yaml:"totalVotingPower"`
	TotalVotes       int           `json:"totalVotes" yaml:"totalVotes"`
	QuorumMet        *bool         `json:"quorumMet,omitempty" yaml:"quorumMet,omitempty"`
	WinnerKnown      bool          `json:"winnerKnown" yaml:"winnerKnown"`
	Options          []OptionShare `json:"options" yaml:"options"`
}

// Winner returns the option the server declared as winning
func (s *ResultsSummary) Winner() (*OptionShare, bool) {
	for i := range s.Options {
		if s.Options[i].Winner {
			return &s.Options[i], true
		}
	}
	return nil, false
}

// AggregateResults computes each option's share of the total voting power.
// A zero total yields 0.0 for every option. The winner is taken only from the
// server-supplied winningOptionId; ties are never broken here.
func AggregateResults(results *models.ProposalResults) *ResultsSummary {
	if results == nil {
		return &ResultsSummary{}
	}

	summary := &ResultsSummary{
		ProposalID:       results.ProposalID,
		TotalVotingPower: results.TotalVotingPower,
		QuorumMet:        results.QuorumMet,
		Options:          make([]OptionShare, 0, len(results.Options)),
	}

	for _, opt := range results.Options {
		share := SharePercent(opt.VotingPower, results.TotalVotingPower)
		winner := results.WinningOptionID != nil && *results.WinningOptionID == opt.OptionID
		if winner {
			summary.WinnerKnown = true
		}
		summary.TotalVotes += opt.VoteCount
		summary.Options = append(summary.Options, OptionShare{
			OptionID:    opt.OptionID,
			Text:        opt.OptionText,
			VoteCount:   opt.VoteCount,
			VotingPower: opt.VotingPower,
			Share:       share,
			ShareLabel:  FormatShare(share),
			Winner:      winner,
		})
	}

	return summary
}

// SharePercent returns power/total*100 rounded to one decimal place
func SharePercent(power, total float64) float64 {
	if total <= 0 {
		return 0
	}
	return math.Round(power/total*1000) / 10
}

// FormatShare renders a share with one decimal and a percent sign
func FormatShare(share float64) string {
	return fmt.Sprintf("%.1f%%", share)
}

// QuorumProgress returns the cast-to-eligible ratio as a percentage, if both are known
func QuorumProgress(p *models.Proposal) (float64, bool) {
	if p.TotalVotesCast == nil || p.EligibleVotingPower == nil || *p.EligibleVotingPower <= 0 {
		return 0, false
	}
	return SharePercent(*p.TotalVotesCast, *p.EligibleVotingPower), true
}
