package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/govctl/internal/domain/models"
)

func strPtr(s string) *string { return &s }

func TestAggregateResults(t *testing.T) {
	t.Run("closed proposal with two options", func(t *testing.T) {
		results := &models.ProposalResults{
			ProposalID:       "p-1",
			TotalVotingPower: 800,
			Options: []models.OptionResult{
				{OptionID: "a", OptionText: "A", VoteCount: 5, VotingPower: 500},
				{OptionID: "b", OptionText: "B", VoteCount: 3, VotingPower: 300},
			},
		}

		summary := AggregateResults(results)

		require.Len(t, summary.Options, 2)
		assert.Equal(t, "62.5%", summary.Options[0].ShareLabel)
		assert.Equal(t, "37.5%", summary.Options[1].ShareLabel)
		assert.Equal(t, 8, summary.TotalVotes)
		assert.False(t, summary.WinnerKnown)
		_, ok := summary.Winner()
		assert.False(t, ok)
	})

	t.Run("zero voting power", func(t *testing.T) {
		results := &models.ProposalResults{
			Options: []models.OptionResult{
				{OptionID: "a", VoteCount: 0},
				{OptionID: "b", VoteCount: 0},
			},
		}

		summary := AggregateResults(results)

		for _, opt := range summary.Options {
			assert.Equal(t, 0.0, opt.Share)
			assert.Equal(t, "0.0%", opt.ShareLabel)
		}
	})

	t.Run("server declared winner", func(t *testing.T) {
		results := &models.ProposalResults{
			TotalVotingPower: 100,
			WinningOptionID:  strPtr("b"),
			Options: []models.OptionResult{
				{OptionID: "a", VotingPower: 50},
				{OptionID: "b", VotingPower: 50},
			},
		}

		summary := AggregateResults(results)

		winner, ok := summary.Winner()
		require.True(t, ok)
		assert.Equal(t, "b", winner.OptionID)
		assert.False(t, summary.Options[0].Winner)
	})

	t.Run("winning id not among options", func(t *testing.T) {
		results := &models.ProposalResults{
			TotalVotingPower: 10,
			WinningOptionID:  strPtr("zzz"),
			Options:          []models.OptionResult{{OptionID: "a", VotingPower: 10}},
		}
		assert.False(t, AggregateResults(results).WinnerKnown)
	})

	t.Run("nil results", func(t *testing.T) {
		assert.Empty(t, AggregateResults(nil).Options)
	})
}

func TestSharesSumToHundred(t *testing.T) {
	cases := [][]float64{
		{1, 1, 1},
		{500, 300},
		{7, 13, 29, 51},
		{0.5, 0.25, 0.25},
		{999, 1},
	}

	for _, powers := range cases {
		total := 0.0
		for _, p := range powers {
			total += p
		}

		sum := 0.0
		for _, p := range powers {
			share := SharePercent(p, total)
			assert.InDelta(t, p/total*100, share, 0.05)
			sum += share
		}
		assert.InDelta(t, 100.0, sum, 0.05*float64(len(powers)), "powers %v", powers)
	}
}

func TestQuorumProgress(t *testing.T) {
	cast, eligible := 250.0, 1000.0
	p := &models.Proposal{TotalVotesCast: &cast, EligibleVotingPower: &eligible}

	progress, ok := QuorumProgress(p)
	assert.True(t, ok)
	assert.Equal(t, 25.0, progress)

	_, ok = QuorumProgress(&models.Proposal{})
	assert.False(t, ok)
}
