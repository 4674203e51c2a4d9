package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/govctl/internal/cli/render"
	"github.com/trebuchet-org/govctl/internal/domain/models"
	"github.com/trebuchet-org/govctl/internal/usecase"
)

// NewAuditCmd creates the audit command with subcommands
func NewAuditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Browse and export the audit log",
	}

	cmd.AddCommand(newAuditListCmd())
	cmd.AddCommand(newAuditExportCmd())

	return cmd
}

// addAuditFilterFlags registers the filter flags shared by list and export
func addAuditFilterFlags(cmd *cobra.Command, params *usecase.AuditFilterParams) {
	cmd.Flags().BoolVar(&params.AllOrganizations, "all-orgs", false, "Search across all organizations (platform admins)")
	cmd.Flags().StringVar(&params.DateFrom, "from", "", "Earliest day, inclusive (YYYY-MM-DD)")
	cmd.Flags().StringVar(&params.DateTo, "to", "", "Latest day, inclusive (YYYY-MM-DD)")
	cmd.Flags().StringSliceVar(&params.ActionTypes, "action", nil, "Action types, repeatable or comma separated (e.g. Vote,Create)")
	cmd.Flags().StringSliceVar(&params.ResourceTypes, "resource", nil, "Resource types, repeatable or comma separated (e.g. Proposal)")
}

func newAuditListCmd() *cobra.Command {
	var (
		params      usecase.AuditFilterParams
		interactive bool
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List audit events",
		Long: `List audit events of the active organization, newest first.
Changing any filter starts again from page 1 unless --page is given.`,
		Example: `  govctl audit list --from 2025-01-01 --to 2025-01-31
  govctl audit list --action Vote --resource Proposal
  govctl audit list --interactive`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			if interactive && !app.Config.NonInteractive {
				if params.ActionTypes, err = SelectMany(models.KnownAuditActionTypes, params.ActionTypes, "Filter by action type (none = all)"); err != nil {
					return err
				}
				if params.ResourceTypes, err = SelectMany(models.KnownAuditResourceTypes, params.ResourceTypes, "Filter by resource type (none = all)"); err != nil {
					return err
				}
			}

			filter, err := usecase.BuildAuditFilter(app.Config, params)
			if err != nil {
				return loadFailed(err, "Failed to load audit events.")
			}

			result, err := app.ListAuditEvents.Run(cmd.Context(), filter)
			if err != nil {
				return loadFailed(err, "Failed to load audit events.")
			}

			return writeResult(cmd, app, result, func() error {
				return render.NewEventsRenderer(cmd.OutOrStdout()).RenderAuditList(result)
			})
		},
	}

	addAuditFilterFlags(cmd, &params)
	addPageFlags(cmd, &params.Page, &params.PageSize)
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Pick action and resource types interactively")

	return cmd
}

func newAuditExportCmd() *cobra.Command {
	var (
		params    usecase.AuditFilterParams
		format    string
		path      string
		overwrite bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export audit events to a CSV or JSON file",
		Long: `Export every audit event matching the filters. Pagination does not apply.
The file defaults to audit-<date>.<format> in the working directory.`,
		Example: `  govctl audit export --format csv
  govctl audit export --format json --from 2025-01-01 -f january.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			filter, err := usecase.BuildAuditFilter(app.Config, params)
			if err != nil {
				return actionFailed(err, "Failed to export audit events.")
			}

			result, err := app.ExportAuditEvents.Run(cmd.Context(), usecase.ExportAuditEventsParams{
				Filter:     filter,
				Format:     usecase.ExportFormat(format),
				OutputPath: path,
				Overwrite:  overwrite,
			})
			if err != nil {
				return actionFailed(err, "Failed to export audit events.")
			}

			return writeResult(cmd, app, result, func() error {
				return render.NewEventsRenderer(cmd.OutOrStdout()).RenderExport(result)
			})
		},
	}

	addAuditFilterFlags(cmd, &params)
	cmd.Flags().StringVar(&format, "format", string(usecase.ExportCSV), "Export format: csv or json")
	cmd.Flags().StringVarP(&path, "file", "f", "", "Destination file")
	cmd.Flags().BoolVar(&overwrite, "force", false, "Overwrite an existing file")

	return cmd
}
