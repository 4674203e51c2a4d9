package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/govctl/internal/adapters/progress"
	"github.com/trebuchet-org/govctl/internal/app"
	"github.com/trebuchet-org/govctl/internal/config"
	domainconfig "github.com/trebuchet-org/govctl/internal/domain/config"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "govctl",
		Short: "Admin console for the governance platform",
		Long: `govctl manages organizations, shares and proposals on the governance platform,
casts votes, and inspects the audit log, outbound webhooks and blockchain anchoring records.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip for help/version commands
			if skipsApp(cmd) {
				return nil
			}

			// Set up viper with the global flags bound
			v := config.SetupViper(config.DefaultDataDir(), cmd)

			// Spinner only for interactive table output
			output := domainconfig.OutputFormat(v.GetString("output"))
			structured := output == domainconfig.OutputJSON || output == domainconfig.OutputYAML
			sink := progress.NewSink(!v.GetBool("non_interactive") && !structured)

			// Initialize app with DI; config commands run without API access
			var appInstance *app.App
			var err error
			if usesLocalConfigOnly(cmd) {
				appInstance, err = app.InitLocalApp(v)
			} else {
				appInstance, err = app.InitApp(v, sink)
			}
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}

			// Store app in context
			ctx := context.WithValue(cmd.Context(), appKey, appInstance)

			// Add timeout if configured
			if appInstance.Config.Timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, appInstance.Config.Timeout)
				// Store cancel func to be called on command completion
				cmd.PostRun = func(cmd *cobra.Command, args []string) {
					cancel()
				}
			}

			cmd.SetContext(ctx)

			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().String("api-url", "", "Platform API base URL (e.g. https://gov.example.com/api)")
	rootCmd.PersistentFlags().String("token", "", "API bearer token")
	rootCmd.PersistentFlags().String("org", "", "Organization to operate on (defaults to the active organization)")
	rootCmd.PersistentFlags().String("profile", "default", "Profile from govctl.toml")
	rootCmd.PersistentFlags().StringP("output", "o", "table", "Output format: table, json or yaml")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output")
	rootCmd.PersistentFlags().Bool("non-interactive", false, "Disable interactive prompts")

	// Add command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "governance",
		Title: "Governance Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "organization",
		Title: "Organization Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "monitoring",
		Title: "Monitoring Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "management",
		Title: "Management Commands",
	})

	// Governance commands
	proposalCmd := NewProposalCmd()
	proposalCmd.GroupID = "governance"
	rootCmd.AddCommand(proposalCmd)

	// Organization commands
	for _, c := range []*cobra.Command{
		NewOrgCmd(),
		NewUserCmd(),
		NewMemberCmd(),
		NewShareTypeCmd(),
		NewIssuanceCmd(),
	} {
		c.GroupID = "organization"
		rootCmd.AddCommand(c)
	}

	// Monitoring commands
	for _, c := range []*cobra.Command{
		NewAuditCmd(),
		NewWebhooksCmd(),
		NewChainCmd(),
	} {
		c.GroupID = "monitoring"
		rootCmd.AddCommand(c)
	}

	// Management commands
	configCmd := NewConfigCmd()
	configCmd.GroupID = "management"
	rootCmd.AddCommand(configCmd)

	devCmd := NewDevCmd()
	devCmd.GroupID = "management"
	rootCmd.AddCommand(devCmd)

	// Version command
	versionCmd := NewVersionCmd()
	rootCmd.AddCommand(versionCmd)

	return rootCmd
}

// skipsApp reports whether a command runs without configuration or API access
func skipsApp(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "version", "help", "completion", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
		return true
	}
	return cmd.Parent() != nil && cmd.Parent().Name() == "completion"
}

// usesLocalConfigOnly reports whether cmd is the config command or one of its subcommands
func usesLocalConfigOnly(cmd *cobra.Command) bool {
	for c := cmd; c != nil && c.HasParent(); c = c.Parent() {
		if c.Name() == "config" && !c.Parent().HasParent() {
			return true
		}
	}
	return false
}

// getApp retrieves the app instance from the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	appInstance := cmd.Context().Value(appKey)
	if appInstance == nil {
		return nil, fmt.Errorf("app not initialized")
	}

	app, ok := appInstance.(*app.App)
	if !ok {
		return nil, fmt.Errorf("invalid app instance")
	}

	return app, nil
}
