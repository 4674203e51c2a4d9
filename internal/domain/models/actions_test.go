package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProposalActionsFor(t *testing.T) {
	tests := []struct {
		status   ProposalStatus
		expected ProposalActions
	}{
		{
			status: ProposalStatusDraft,
			expected: ProposalActions{
				CanEdit: true, CanOpen: true, CanAddOption: true, CanDeleteOption: true,
			},
		},
		{
			status: ProposalStatusOpen,
			expected: ProposalActions{
				CanEdit: true, CanClose: true, CanAddOption: true,
			},
		},
		{
			status:   ProposalStatusClosed,
			expected: ProposalActions{CanFinalize: true},
		},
		{
			status:   ProposalStatusFinalized,
			expected: ProposalActions{},
		},
		{
			status:   ProposalStatus("Archived"),
			expected: ProposalActions{},
		},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.expected, ProposalActionsFor(tt.status))
		})
	}
}

func TestProposalActionsInvariants(t *testing.T) {
	for _, s := range AllProposalStatuses() {
		a := ProposalActionsFor(s)
		assert.Equal(t, s == ProposalStatusDraft || s == ProposalStatusOpen, a.CanEdit, "edit %s", s)
		assert.Equal(t, s == ProposalStatusDraft, a.CanOpen, "open %s", s)
		assert.Equal(t, s == ProposalStatusOpen, a.CanClose, "close %s", s)
		assert.Equal(t, s == ProposalStatusClosed, a.CanFinalize, "finalize %s", s)
		assert.Equal(t, a.CanEdit, a.CanAddOption, "add-option %s", s)
	}
}

func TestProposalActionsAvailable(t *testing.T) {
	assert.Equal(t,
		[]ProposalAction{ActionEdit, ActionOpen, ActionAddOption, ActionDeleteOption},
		ProposalActionsFor(ProposalStatusDraft).Available())
	assert.Equal(t,
		[]ProposalAction{ActionFinalize},
		ProposalActionsFor(ProposalStatusClosed).Available())
	assert.Empty(t, ProposalActionsFor(ProposalStatusFinalized).Available())
	assert.False(t, ProposalActionsFor(ProposalStatusDraft).Allows(ProposalAction("archive")))
}

func TestParseProposalStatus(t *testing.T) {
	s, ok := ParseProposalStatus("open")
	assert.True(t, ok)
	assert.Equal(t, ProposalStatusOpen, s)

	s, ok = ParseProposalStatus(" FINALIZED ")
	assert.True(t, ok)
	assert.Equal(t, ProposalStatusFinalized, s)

	_, ok = ParseProposalStatus("pending")
	assert.False(t, ok)
}

func TestProposalFindOption(t *testing.T) {
	p := &Proposal{Options: []ProposalOption{{ID: "a", Text: "Yes"}, {ID: "b", Text: "No"}}}

	opt, ok := p.FindOption("b")
	assert.True(t, ok)
	assert.Equal(t, "No", opt.Text)

	_, ok = p.FindOption("c")
	assert.False(t, ok)
}
