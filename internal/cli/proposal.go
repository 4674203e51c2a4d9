package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/govctl/internal/cli/render"
	"github.com/trebuchet-org/govctl/internal/domain"
	"github.com/trebuchet-org/govctl/internal/domain/models"
	"github.com/trebuchet-org/govctl/internal/usecase"
)

// NewProposalCmd creates the proposal command with subcommands
func NewProposalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "proposal",
		Aliases: []string{"proposals", "p"},
		Short:   "Manage proposals and vote",
		Long: `Manage the proposals of the active organization.

A proposal moves Draft → Open → Closed → Finalized. Each command checks the
proposal's current status before sending anything and refuses actions the
status does not allow.`,
	}

	cmd.AddCommand(newProposalListCmd())
	cmd.AddCommand(newProposalShowCmd())
	cmd.AddCommand(newProposalResultsCmd())
	cmd.AddCommand(newProposalEditCmd())
	cmd.AddCommand(newProposalTransitionCmd(models.ActionOpen, "Open a draft proposal for voting"))
	cmd.AddCommand(newProposalTransitionCmd(models.ActionClose, "Close voting on an open proposal"))
	cmd.AddCommand(newProposalTransitionCmd(models.ActionFinalize, "Finalize a closed proposal"))
	cmd.AddCommand(newProposalOptionCmd())
	cmd.AddCommand(newProposalVoteCmd())

	return cmd
}

func newProposalListCmd() *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List proposals of the organization",
		Example: `  govctl proposal list
  govctl proposal list --status open`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ListProposals.Run(cmd.Context(), usecase.ListProposalsParams{Status: status})
			if err != nil {
				return loadFailed(err, "Failed to load proposals.")
			}

			return writeResult(cmd, app, result, func() error {
				return render.NewProposalRenderer(cmd.OutOrStdout()).RenderList(result)
			})
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "Filter by status (draft, open, closed, finalized)")

	return cmd
}

func newProposalShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <proposal-id>",
		Short: "Show a proposal with its options, available actions and results",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ShowProposal.Run(cmd.Context(), usecase.ShowProposalParams{ProposalID: args[0]})
			if err != nil {
				return loadFailed(err, "Failed to load proposal.")
			}

			return writeResult(cmd, app, result, func() error {
				return render.NewProposalRenderer(cmd.OutOrStdout()).RenderDetail(result)
			})
		},
	}
}

func newProposalResultsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "results <proposal-id>",
		Short: "Show the vote distribution of a proposal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ShowResults.Run(cmd.Context(), args[0])
			if err != nil {
				return loadFailed(err, "Failed to load results.")
			}

			return writeResult(cmd, app, result, func() error {
				return render.NewProposalRenderer(cmd.OutOrStdout()).RenderResults(result)
			})
		},
	}
}

func newProposalEditCmd() *cobra.Command {
	var (
		title       string
		description string
		start       string
		end         string
		quorum      float64
	)

	cmd := &cobra.Command{
		Use:   "edit <proposal-id>",
		Short: "Edit a draft or open proposal",
		Long: `Edit the title, description, voting window or quorum of a proposal.
Only the flags that are given are changed. Times accept RFC 3339
(2025-03-01T09:00:00Z) or a plain date (2025-03-01, midnight UTC).`,
		Example: `  govctl proposal edit prop-1 --title "Adopt 2025 budget"
  govctl proposal edit prop-1 --start 2025-03-01 --end 2025-03-08 --quorum 40`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			var update models.ProposalUpdate
			flags := cmd.Flags()
			if flags.Changed("title") {
				update.Title = &title
			}
			if flags.Changed("description") {
				update.Description = &description
			}
			if flags.Changed("start") {
				t, err := parseTimeFlag("start", start)
				if err != nil {
					return err
				}
				update.StartAt = &t
			}
			if flags.Changed("end") {
				t, err := parseTimeFlag("end", end)
				if err != nil {
					return err
				}
				update.EndAt = &t
			}
			if flags.Changed("quorum") {
				update.QuorumRequirement = &quorum
			}

			result, err := app.EditProposal.Run(cmd.Context(), usecase.EditProposalParams{
				ProposalID: args[0],
				Update:     update,
			})
			if err != nil {
				return actionFailed(err, "Failed to update proposal.")
			}

			return writeResult(cmd, app, result, func() error {
				return render.NewProposalRenderer(cmd.OutOrStdout()).RenderEdit(result)
			})
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVar(&description, "description", "", "New description")
	cmd.Flags().StringVar(&start, "start", "", "Voting start time")
	cmd.Flags().StringVar(&end, "end", "", "Voting end time")
	cmd.Flags().Float64Var(&quorum, "quorum", 0, "Quorum requirement in percent (0-100)")

	return cmd
}

func newProposalTransitionCmd(action models.ProposalAction, short string) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   fmt.Sprintf("%s <proposal-id>", action),
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.TransitionProposal.Run(cmd.Context(), usecase.TransitionProposalParams{
				ProposalID: args[0],
				Action:     action,
				Confirmed:  yes,
			})
			if err != nil {
				return actionFailed(err, fmt.Sprintf("Failed to %s proposal.", action))
			}

			return writeResult(cmd, app, result, func() error {
				return render.NewProposalRenderer(cmd.OutOrStdout()).RenderTransition(result)
			})
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

func newProposalOptionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "option",
		Aliases: []string{"options"},
		Short:   "Manage the options of a proposal",
	}

	cmd.AddCommand(newProposalOptionAddCmd())
	cmd.AddCommand(newProposalOptionDeleteCmd())

	return cmd
}

func newProposalOptionAddCmd() *cobra.Command {
	var text, description string

	cmd := &cobra.Command{
		Use:     "add <proposal-id>",
		Short:   "Add an option to a draft or open proposal",
		Example: `  govctl proposal option add prop-1 --text "Abstain"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.AddProposalOption.Run(cmd.Context(), usecase.AddProposalOptionParams{
				ProposalID:  args[0],
				Text:        text,
				Description: description,
			})
			if err != nil {
				return actionFailed(err, "Failed to add option.")
			}

			return writeResult(cmd, app, result, func() error {
				return render.NewProposalRenderer(cmd.OutOrStdout()).RenderOption(result)
			})
		},
	}

	cmd.Flags().StringVar(&text, "text", "", "Option text (required)")
	cmd.Flags().StringVar(&description, "description", "", "Option description")

	return cmd
}

func newProposalOptionDeleteCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "delete <proposal-id> <option-id>",
		Aliases: []string{"rm"},
		Short:   "Delete an option from a draft proposal",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.DeleteProposalOption.Run(cmd.Context(), usecase.DeleteProposalOptionParams{
				ProposalID: args[0],
				OptionID:   args[1],
				Confirmed:  yes,
			})
			if err != nil {
				return actionFailed(err, "Failed to delete option.")
			}

			return writeResult(cmd, app, result, func() error {
				return render.NewProposalRenderer(cmd.OutOrStdout()).RenderOption(result)
			})
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

func newProposalVoteCmd() *cobra.Command {
	var optionID string

	cmd := &cobra.Command{
		Use:   "vote <proposal-id>",
		Short: "Cast your vote on an open proposal",
		Long: `Cast your vote on an open proposal. Without --option you pick the option
interactively. A proposal accepts a single vote per member.`,
		Example: `  govctl proposal vote prop-1 --option opt-yes
  govctl proposal vote prop-1`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.CastVote.Run(cmd.Context(), usecase.CastVoteParams{
				ProposalID: args[0],
				OptionID:   optionID,
			})
			if err != nil {
				return actionFailed(err, "Failed to cast vote.")
			}

			return writeResult(cmd, app, result, func() error {
				return render.NewProposalRenderer(cmd.OutOrStdout()).RenderVote(result)
			})
		},
	}

	cmd.Flags().StringVar(&optionID, "option", "", "Option ID to vote for")

	return cmd
}

// parseTimeFlag accepts RFC 3339 timestamps or plain dates
func parseTimeFlag(name, value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse(domain.DateLayout, value); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, domain.ValidationErr{
		Fields: []string{name},
		Reason: fmt.Sprintf("invalid time %q (use 2025-03-01 or 2025-03-01T09:00:00Z)", value),
	}
}
