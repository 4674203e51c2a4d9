package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/govctl/internal/cli/render"
	"github.com/trebuchet-org/govctl/internal/usecase"
)

// NewOrgCmd creates the org command with subcommands
func NewOrgCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "org",
		Aliases: []string{"orgs", "organization"},
		Short:   "Browse organizations and pick the active one",
	}

	cmd.AddCommand(newOrgListCmd())
	cmd.AddCommand(newOrgShowCmd())
	cmd.AddCommand(newOrgUseCmd())

	return cmd
}

func newOrgListCmd() *cobra.Command {
	var (
		search         string
		page, pageSize int
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List organizations",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ListOrganizations.Run(cmd.Context(), usecase.ListOrganizationsParams{
				Search:   search,
				Page:     page,
				PageSize: pageSize,
			})
			if err != nil {
				return loadFailed(err, "Failed to load organizations.")
			}

			return writeResult(cmd, app, result, func() error {
				return render.NewOrganizationRenderer(cmd.OutOrStdout()).RenderList(result)
			})
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "Filter by name")
	addPageFlags(cmd, &page, &pageSize)

	return cmd
}

func newOrgShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [organization-id]",
		Short: "Show an organization with its members and share types",
		Long: `Show an organization with its members and share types.
Without an argument the active organization is shown.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			var id string
			if len(args) > 0 {
				id = args[0]
			}

			result, err := app.ShowOrganization.Run(cmd.Context(), id)
			if err != nil {
				return loadFailed(err, usecase.OrgLoadFailedMessage)
			}

			return writeResult(cmd, app, result, func() error {
				return render.NewOrganizationRenderer(cmd.OutOrStdout()).RenderDetail(result)
			})
		},
	}
}

func newOrgUseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "use [organization-id]",
		Short: "Set the active organization",
		Long: `Set the active organization stored in ~/.govctl/config.local.json.
Without an argument you pick one interactively.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			var params usecase.UseOrganizationParams
			if len(args) > 0 {
				params.OrganizationID = args[0]
			}

			result, err := app.UseOrganization.Run(cmd.Context(), params)
			if err != nil {
				return actionFailed(err, usecase.OrgLoadFailedMessage)
			}

			return writeResult(cmd, app, result, func() error {
				return render.NewOrganizationRenderer(cmd.OutOrStdout()).RenderUse(result)
			})
		},
	}
}

// NewUserCmd creates the user command with subcommands
func NewUserCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "user",
		Aliases: []string{"users"},
		Short:   "Browse platform users",
	}

	cmd.AddCommand(newUserListCmd())
	cmd.AddCommand(newUserShowCmd())

	return cmd
}

func newUserListCmd() *cobra.Command {
	var (
		search         string
		page, pageSize int
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List users",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ListUsers.Run(cmd.Context(), usecase.ListUsersParams{
				Search:   search,
				Page:     page,
				PageSize: pageSize,
			})
			if err != nil {
				return loadFailed(err, "Failed to load users.")
			}

			return writeResult(cmd, app, result, func() error {
				return render.NewOrganizationRenderer(cmd.OutOrStdout()).RenderUsers(result)
			})
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "Filter by name or email")
	addPageFlags(cmd, &page, &pageSize)

	return cmd
}

func newUserShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <user-id>",
		Short: "Show a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ShowUser.Run(cmd.Context(), args[0])
			if err != nil {
				return loadFailed(err, "Failed to load user.")
			}

			return writeResult(cmd, app, result, func() error {
				return render.NewOrganizationRenderer(cmd.OutOrStdout()).RenderUser(result)
			})
		},
	}
}

// NewMemberCmd creates the member command
func NewMemberCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "member",
		Aliases: []string{"members"},
		Short:   "Inspect organization memberships",
	}

	cmd.AddCommand(&cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List the members of the organization",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ListMemberships.Run(cmd.Context(), "")
			if err != nil {
				return loadFailed(err, "Failed to load members.")
			}

			return writeResult(cmd, app, result, func() error {
				return render.NewOrganizationRenderer(cmd.OutOrStdout()).RenderMemberships(result)
			})
		},
	})

	return cmd
}
