package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/govctl/internal/cli/render"
)

// NewChainCmd creates the chain command with subcommands
func NewChainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "chain",
		Aliases: []string{"blockchain"},
		Short:   "Inspect blockchain anchoring records",
	}

	cmd.AddCommand(&cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List anchoring records of the organization",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ListBlockchainRecords.Run(cmd.Context(), "")
			if err != nil {
				return loadFailed(err, "Failed to load blockchain records.")
			}

			return writeResult(cmd, app, result, func() error {
				return render.NewChainRenderer(cmd.OutOrStdout()).RenderList(result)
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "verify <record-id>",
		Short: "Check a record's payload hash and its on-chain status",
		Long: `Recompute the keccak256 hash of the record payload and compare it with the
stored hash, validate the contract address, and ask the platform whether the
transaction is on chain. The on-chain check is best-effort.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.VerifyBlockchainRecord.Run(cmd.Context(), args[0])
			if err != nil {
				return loadFailed(err, "Failed to load blockchain record.")
			}

			return writeResult(cmd, app, result, func() error {
				return render.NewChainRenderer(cmd.OutOrStdout()).RenderVerification(result)
			})
		},
	})

	return cmd
}
