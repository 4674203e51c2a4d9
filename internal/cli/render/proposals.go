package render

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/lo"
	"github.com/trebuchet-org/govctl/internal/domain"
	"github.com/trebuchet-org/govctl/internal/domain/models"
	"github.com/trebuchet-org/govctl/internal/usecase"
)

const barWidth = 24

var (
	winnerStyle = color.New(color.FgGreen, color.Bold)
	barStyle    = color.New(color.FgCyan)
)

// ProposalRenderer renders proposal lists, details, results and mutations
type ProposalRenderer struct {
	out io.Writer
}

// NewProposalRenderer creates a new proposal renderer
func NewProposalRenderer(out io.Writer) *ProposalRenderer {
	return &ProposalRenderer{out: out}
}

// RenderList renders the proposals of an organization
func (r *ProposalRenderer) RenderList(result *usecase.ProposalListResult) error {
	if len(result.Proposals) == 0 {
		if result.Status != "" {
			fmt.Fprintf(r.out, "No %s proposals found for this organization.\n", strings.ToLower(string(result.Status)))
		} else {
			fmt.Fprintln(r.out, "No proposals found for this organization.")
		}
		return nil
	}

	rows := lo.Map(result.Proposals, func(p models.Proposal, _ int) table.Row {
		return table.Row{
			idStyle.Sprint(p.ID),
			p.Title,
			StatusBadge(p.Status),
			len(p.Options),
			formatTimePtr(p.StartAt),
			formatTimePtr(p.EndAt),
		}
	})
	writeTable(r.out, table.Row{"ID", "Title", "Status", "Options", "Starts", "Ends"}, rows)

	counts := make([]string, 0, len(result.ByStatus))
	for _, status := range models.AllProposalStatuses() {
		if n := result.ByStatus[status]; n > 0 {
			counts = append(counts, fmt.Sprintf("%d %s", n, strings.ToLower(string(status))))
		}
	}
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, hintStyle.Sprintf("%d proposals: %s", len(result.Proposals), strings.Join(counts, ", ")))
	return nil
}

// RenderDetail renders a proposal with its available actions, results and the caller's vote
func (r *ProposalRenderer) RenderDetail(result *usecase.ProposalDetailResult) error {
	p := result.Proposal

	fmt.Fprintln(r.out, headerStyle.Sprint(p.Title))
	writeField(r.out, "ID", idStyle.Sprint(p.ID))
	writeField(r.out, "Status", StatusBadge(p.Status))
	if p.Description != "" {
		writeField(r.out, "Description", p.Description)
	}
	writeField(r.out, "Starts", formatTimePtr(p.StartAt))
	writeField(r.out, "Ends", formatTimePtr(p.EndAt))
	if p.QuorumRequirement != nil {
		writeField(r.out, "Quorum", domain.FormatShare(*p.QuorumRequirement))
	}
	if result.QuorumProgress != nil {
		progress := domain.FormatShare(*result.QuorumProgress)
		if p.QuorumMet != nil {
			progress += " (met: " + yesNo(*p.QuorumMet) + ")"
		}
		writeField(r.out, "Participation", progress)
	}
	if p.ClosedAt != nil {
		writeField(r.out, "Closed", formatTimePtr(p.ClosedAt))
	}

	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, headerStyle.Sprint("Options"))
	if len(p.Options) == 0 {
		fmt.Fprintln(r.out, "  No options yet.")
	}
	for _, opt := range p.Options {
		line := fmt.Sprintf("  • %s %s", opt.Text, idStyle.Sprintf("(%s)", opt.ID))
		if opt.Description != "" {
			line += " " + hintStyle.Sprint(opt.Description)
		}
		fmt.Fprintln(r.out, line)
	}

	actions := result.Actions.Available()
	fmt.Fprintln(r.out)
	if len(actions) == 0 {
		writeField(r.out, "Actions", "none")
	} else {
		labels := lo.Map(actions, func(a models.ProposalAction, _ int) string { return Label(string(a)) })
		writeField(r.out, "Actions", strings.Join(labels, ", "))
	}

	if result.Results != nil {
		fmt.Fprintln(r.out)
		r.renderSummary(result.Results)
	}

	if p.Status == models.ProposalStatusOpen {
		fmt.Fprintln(r.out)
		switch {
		case result.MyVote != nil && result.MyVoteOption != nil:
			fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("You voted for %s", result.MyVoteOption.Text)))
		case result.MyVote != nil:
			fmt.Fprintln(r.out, FormatSuccess("You have already voted on this proposal"))
		default:
			fmt.Fprintln(r.out, FormatHint(fmt.Sprintf("Cast your vote with: govctl proposal vote %s", p.ID)))
		}
	}

	return nil
}

// RenderResults renders the results view of a proposal
func (r *ProposalRenderer) RenderResults(result *usecase.ProposalResultsResult) error {
	fmt.Fprintf(r.out, "%s %s\n\n", headerStyle.Sprint(result.Proposal.Title), StatusBadge(result.Proposal.Status))
	r.renderSummary(result.Results)
	return nil
}

func (r *ProposalRenderer) renderSummary(summary *domain.ResultsSummary) {
	fmt.Fprintln(r.out, headerStyle.Sprint("Results"))
	if len(summary.Options) == 0 {
		fmt.Fprintln(r.out, "  No votes have been cast yet.")
		return
	}

	rows := lo.Map(summary.Options, func(o domain.OptionShare, _ int) table.Row {
		text := o.Text
		if o.Winner {
			text = winnerStyle.Sprintf("%s ★", o.Text)
		}
		return table.Row{text, o.VoteCount, formatAmount(o.VotingPower), ShareBar(o.Share, barWidth), o.ShareLabel}
	})
	writeTable(r.out, table.Row{"Option", "Votes", "Power", "", "Share"}, rows)

	fmt.Fprintln(r.out)
	if summary.TotalVotes == 0 {
		fmt.Fprintln(r.out, "  No votes have been cast yet.")
		return
	}
	writeField(r.out, "Total votes", fmt.Sprintf("%d", summary.TotalVotes))
	writeField(r.out, "Total power", formatAmount(summary.TotalVotingPower))
	if summary.QuorumMet != nil {
		writeField(r.out, "Quorum met", yesNo(*summary.QuorumMet))
	}
	if winner, ok := summary.Winner(); ok {
		writeField(r.out, "Winner", winnerStyle.Sprint(winner.Text))
	}
}

// ShareBar draws a fixed-width bar for a 0-100 share
func ShareBar(share float64, width int) string {
	filled := int(math.Round(share / 100 * float64(width)))
	filled = lo.Clamp(filled, 0, width)
	return barStyle.Sprint(strings.Repeat("█", filled)) + hintStyle.Sprint(strings.Repeat("░", width-filled))
}

// RenderEdit renders the outcome of a proposal update
func (r *ProposalRenderer) RenderEdit(result *usecase.EditProposalResult) error {
	fmt.Fprintln(r.out, FormatSuccess(result.Message))
	writeField(r.out, "Title", result.Proposal.Title)
	writeField(r.out, "Starts", formatTimePtr(result.Proposal.StartAt))
	writeField(r.out, "Ends", formatTimePtr(result.Proposal.EndAt))
	if result.Proposal.QuorumRequirement != nil {
		writeField(r.out, "Quorum", domain.FormatShare(*result.Proposal.QuorumRequirement))
	}
	return nil
}

// RenderTransition renders a status change
func (r *ProposalRenderer) RenderTransition(result *usecase.TransitionProposalResult) error {
	fmt.Fprintln(r.out, FormatSuccess(result.Message))
	fmt.Fprintf(r.out, "%s → %s\n", StatusBadge(result.PreviousStatus), StatusBadge(result.Proposal.Status))
	return nil
}

// RenderOption renders an option mutation and the remaining options
func (r *ProposalRenderer) RenderOption(result *usecase.ProposalOptionResult) error {
	fmt.Fprintln(r.out, FormatSuccess(result.Message))
	if result.Proposal == nil {
		return nil
	}
	fmt.Fprintf(r.out, "%s now has %d option(s):\n", result.Proposal.Title, len(result.Proposal.Options))
	for _, opt := range result.Proposal.Options {
		fmt.Fprintf(r.out, "  • %s %s\n", opt.Text, idStyle.Sprintf("(%s)", opt.ID))
	}
	return nil
}

// RenderVote renders a cast vote or the existing vote
func (r *ProposalRenderer) RenderVote(result *usecase.CastVoteResult) error {
	optionText := ""
	if result.Option != nil {
		optionText = result.Option.Text
	}

	if result.AlreadyVoted {
		fmt.Fprintln(r.out, FormatWarning("You have already voted on this proposal."))
		if optionText != "" {
			fmt.Fprintf(r.out, "You voted for %s\n", optionText)
		}
		return nil
	}

	fmt.Fprintln(r.out, FormatSuccess(result.Message))
	if optionText != "" {
		fmt.Fprintf(r.out, "You voted for %s", optionText)
		if result.Vote != nil && result.Vote.VotingPower > 0 {
			fmt.Fprintf(r.out, " with %s voting power", formatAmount(result.Vote.VotingPower))
		}
		fmt.Fprintln(r.out)
	}
	return nil
}
