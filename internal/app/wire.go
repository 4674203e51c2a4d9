//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/govctl/internal/adapters"
	"github.com/trebuchet-org/govctl/internal/config"
	"github.com/trebuchet-org/govctl/internal/logging"
	"github.com/trebuchet-org/govctl/internal/usecase"
)

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper, sink usecase.ProgressSink) (*App, error) {
	wire.Build(
		// Configuration and logging
		config.Provider,
		logging.LoggingSet,

		// Adapters
		adapters.AllAdapters,

		// Proposals
		usecase.NewListProposals,
		usecase.NewShowProposal,
		usecase.NewShowResults,
		usecase.NewEditProposal,
		usecase.NewTransitionProposal,
		usecase.NewAddProposalOption,
		usecase.NewDeleteProposalOption,
		usecase.NewCastVote,

		// Organizations, users and shares
		usecase.NewListOrganizations,
		usecase.NewShowOrganization,
		usecase.NewUseOrganization,
		usecase.NewListUsers,
		usecase.NewShowUser,
		usecase.NewListMemberships,
		usecase.NewListShareTypes,
		usecase.NewCreateShareType,
		usecase.NewDeleteShareType,
		usecase.NewListShareIssuances,
		usecase.NewCreateShareIssuance,

		// Events
		usecase.NewListAuditEvents,
		usecase.NewExportAuditEvents,
		usecase.NewListOutboundEvents,
		usecase.NewRetryOutboundEvent,

		// Blockchain and development utilities
		usecase.NewListBlockchainRecords,
		usecase.NewVerifyBlockchainRecord,
		usecase.NewRunDevData,

		// Local configuration
		usecase.NewShowConfig,
		usecase.NewSetConfig,
		usecase.NewRemoveConfig,

		// App
		NewApp,
	)
	return nil, nil
}

// InitLocalApp creates an App that only carries the local configuration use cases.
// It needs no API access, so it works before an API URL is configured.
func InitLocalApp(v *viper.Viper) (*App, error) {
	wire.Build(
		config.Provider,
		logging.LoggingSet,
		adapters.LocalConfigSet,

		usecase.NewShowConfig,
		usecase.NewSetConfig,
		usecase.NewRemoveConfig,

		wire.Struct(new(App), "Config", "Logger", "ShowConfig", "SetConfig", "RemoveConfig"),
	)
	return nil, nil
}
