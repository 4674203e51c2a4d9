package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/govctl/internal/cli/render"
	"github.com/trebuchet-org/govctl/internal/usecase"
)

// NewWebhooksCmd creates the webhooks command with subcommands
func NewWebhooksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "webhooks",
		Aliases: []string{"webhook", "outbound"},
		Short:   "Inspect outbound webhook deliveries",
	}

	cmd.AddCommand(newWebhooksListCmd())
	cmd.AddCommand(newWebhooksRetryCmd())

	return cmd
}

func newWebhooksListCmd() *cobra.Command {
	var params usecase.ListOutboundEventsParams

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List outbound events",
		Example: `  govctl webhooks list --status failed`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ListOutboundEvents.Run(cmd.Context(), params)
			if err != nil {
				return loadFailed(err, "Failed to load outbound events.")
			}

			return writeResult(cmd, app, result, func() error {
				return render.NewEventsRenderer(cmd.OutOrStdout()).RenderOutboundList(result)
			})
		},
	}

	cmd.Flags().StringVar(&params.Status, "status", "", "Filter by status (pending, delivered, failed)")
	cmd.Flags().StringVar(&params.EventType, "event-type", "", "Filter by event type")
	addPageFlags(cmd, &params.Page, &params.PageSize)

	return cmd
}

func newWebhooksRetryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "retry <event-id>",
		Short: "Queue a failed delivery for another attempt",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.RetryOutboundEvent.Run(cmd.Context(), args[0])
			if err != nil {
				return actionFailed(err, "Failed to retry event.")
			}
			if result.RefreshErr != nil {
				warnRefreshFailed(cmd, "outbound events", result.RefreshErr)
			}

			return writeResult(cmd, app, result, func() error {
				return render.NewEventsRenderer(cmd.OutOrStdout()).RenderRetry(result)
			})
		},
	}
}
