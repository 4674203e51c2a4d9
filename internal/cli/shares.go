package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/govctl/internal/app"
	"github.com/trebuchet-org/govctl/internal/cli/render"
	"github.com/trebuchet-org/govctl/internal/domain/models"
	"github.com/trebuchet-org/govctl/internal/usecase"
)

// NewShareTypeCmd creates the share-type command with subcommands
func NewShareTypeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "share-type",
		Aliases: []string{"share-types", "st"},
		Short:   "Manage the share types of the organization",
	}

	cmd.AddCommand(&cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List share types",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ListShareTypes.Run(cmd.Context(), "")
			if err != nil {
				return loadFailed(err, "Failed to load share types.")
			}

			return writeResult(cmd, app, result, func() error {
				return render.NewOrganizationRenderer(cmd.OutOrStdout()).RenderShareTypes(result)
			})
		},
	})
	cmd.AddCommand(newShareTypeCreateCmd())
	cmd.AddCommand(newShareTypeDeleteCmd())

	return cmd
}

func newShareTypeCreateCmd() *cobra.Command {
	var shareType models.NewShareType

	cmd := &cobra.Command{
		Use:     "create",
		Short:   "Create a share type",
		Example: `  govctl share-type create --name "Common stock" --symbol cmn --weight 1`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			created, err := app.CreateShareType.Run(cmd.Context(), usecase.CreateShareTypeParams{ShareType: shareType})
			if err != nil {
				return actionFailed(err, "Failed to create share type.")
			}

			if app.Config.IsStructuredOutput() {
				return writeResult(cmd, app, created, nil)
			}
			r := render.NewOrganizationRenderer(cmd.OutOrStdout())
			if err := r.RenderShareTypeCreated(created); err != nil {
				return err
			}
			return refreshShareTypes(cmd, app, r)
		},
	}

	cmd.Flags().StringVar(&shareType.Name, "name", "", "Share type name (required)")
	cmd.Flags().StringVar(&shareType.Symbol, "symbol", "", "Ticker symbol (required)")
	cmd.Flags().Float64Var(&shareType.VotingWeight, "weight", 1, "Voting weight per share")
	cmd.Flags().BoolVar(&shareType.IsTransferable, "transferable", false, "Allow transfers between members")

	return cmd
}

func newShareTypeDeleteCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "delete <share-type-id>",
		Aliases: []string{"rm"},
		Short:   "Delete a share type",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			err = app.DeleteShareType.Run(cmd.Context(), usecase.DeleteShareTypeParams{
				ShareTypeID: args[0],
				Confirmed:   yes,
			})
			if err != nil {
				return actionFailed(err, "Failed to delete share type.")
			}

			if app.Config.IsStructuredOutput() {
				return writeResult(cmd, app, map[string]string{"deleted": args[0]}, nil)
			}
			r := render.NewOrganizationRenderer(cmd.OutOrStdout())
			if err := r.RenderShareTypeDeleted(args[0]); err != nil {
				return err
			}
			return refreshShareTypes(cmd, app, r)
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

// refreshShareTypes re-reads the list after a mutation; a failed refresh only warns
func refreshShareTypes(cmd *cobra.Command, app *app.App, r *render.OrganizationRenderer) error {
	result, err := app.ListShareTypes.Run(cmd.Context(), "")
	if err != nil {
		warnRefreshFailed(cmd, "share types", err)
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout())
	return r.RenderShareTypes(result)
}

// NewIssuanceCmd creates the issuance command with subcommands
func NewIssuanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "issuance",
		Aliases: []string{"issuances"},
		Short:   "Manage share issuances of the organization",
	}

	cmd.AddCommand(&cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List share issuances with totals per share type",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ListShareIssuances.Run(cmd.Context(), "")
			if err != nil {
				return loadFailed(err, "Failed to load share issuances.")
			}

			return writeResult(cmd, app, result, func() error {
				return render.NewOrganizationRenderer(cmd.OutOrStdout()).RenderIssuances(result)
			})
		},
	})
	cmd.AddCommand(newIssuanceCreateCmd())

	return cmd
}

func newIssuanceCreateCmd() *cobra.Command {
	var issuance models.NewShareIssuance

	cmd := &cobra.Command{
		Use:     "create",
		Short:   "Issue shares to a member",
		Example: `  govctl issuance create --share-type st-1 --user user-1 --quantity 100`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			created, err := app.CreateShareIssuance.Run(cmd.Context(), usecase.CreateShareIssuanceParams{Issuance: issuance})
			if err != nil {
				return actionFailed(err, "Failed to issue shares.")
			}

			if app.Config.IsStructuredOutput() {
				return writeResult(cmd, app, created, nil)
			}
			r := render.NewOrganizationRenderer(cmd.OutOrStdout())
			if err := r.RenderIssuanceCreated(created); err != nil {
				return err
			}

			result, err := app.ListShareIssuances.Run(cmd.Context(), "")
			if err != nil {
				warnRefreshFailed(cmd, "share issuances", err)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout())
			return r.RenderIssuances(result)
		},
	}

	cmd.Flags().StringVar(&issuance.ShareTypeID, "share-type", "", "Share type ID (required)")
	cmd.Flags().StringVar(&issuance.UserID, "user", "", "Receiving user ID (required)")
	cmd.Flags().Float64Var(&issuance.Quantity, "quantity", 0, "Number of shares (required)")
	cmd.Flags().StringVar(&issuance.Notes, "notes", "", "Free-form notes")

	return cmd
}
