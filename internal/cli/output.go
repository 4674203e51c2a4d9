package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/govctl/internal/app"
	"github.com/trebuchet-org/govctl/internal/cli/render"
)

// writeResult prints v as JSON/YAML when structured output is requested, otherwise runs the table renderer
func writeResult(cmd *cobra.Command, a *app.App, v any, table func() error) error {
	if a.Config.IsStructuredOutput() {
		return render.NewStructuredRenderer(cmd.OutOrStdout(), a.Config.Output).Render(v)
	}
	return table()
}

// addPageFlags registers --page and --page-size on list commands
func addPageFlags(cmd *cobra.Command, page, pageSize *int) {
	cmd.Flags().IntVar(page, "page", 1, "Page number")
	cmd.Flags().IntVar(pageSize, "page-size", 0, "Items per page (defaults to the configured page size)")
}
