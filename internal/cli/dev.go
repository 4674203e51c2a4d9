package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/govctl/internal/cli/render"
	"github.com/trebuchet-org/govctl/internal/usecase"
)

// NewDevCmd creates the dev command with subcommands
func NewDevCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dev",
		Short: "Development utilities",
		Long:  `Development utilities for seeding and resetting data on a development deployment of the platform.`,
	}

	cmd.AddCommand(newDevDataCmd(usecase.DevDataSeed, "Seed development data"))
	cmd.AddCommand(newDevDataCmd(usecase.DevDataReset, "Delete all development data"))

	return cmd
}

func newDevDataCmd(op usecase.DevDataOperation, short string) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   string(op),
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.RunDevData.Run(cmd.Context(), usecase.RunDevDataParams{
				Operation: op,
				Confirmed: yes,
			})
			if err != nil {
				return actionFailed(err, "Failed to "+string(op)+" development data.")
			}

			return writeResult(cmd, app, result, func() error {
				return render.NewChainRenderer(cmd.OutOrStdout()).RenderDevData(result)
			})
		},
	}

	if op == usecase.DevDataReset {
		cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	}

	return cmd
}
