package app

import (
	"log/slog"

	"github.com/trebuchet-org/govctl/internal/domain/config"
	"github.com/trebuchet-org/govctl/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig
	Logger *slog.Logger

	// Proposals
	ListProposals        *usecase.ListProposals
	ShowProposal         *usecase.ShowProposal
	ShowResults          *usecase.ShowResults
	EditProposal         *usecase.EditProposal
	TransitionProposal   *usecase.TransitionProposal
	AddProposalOption    *usecase.AddProposalOption
	DeleteProposalOption *usecase.DeleteProposalOption
	CastVote             *usecase.CastVote

	// Organizations, users and shares
	ListOrganizations   *usecase.ListOrganizations
	ShowOrganization    *usecase.ShowOrganization
	UseOrganization     *usecase.UseOrganization
	ListUsers           *usecase.ListUsers
	ShowUser            *usecase.ShowUser
	ListMemberships     *usecase.ListMemberships
	ListShareTypes      *usecase.ListShareTypes
	CreateShareType     *usecase.CreateShareType
	DeleteShareType     *usecase.DeleteShareType
	ListShareIssuances  *usecase.ListShareIssuances
	CreateShareIssuance *usecase.CreateShareIssuance

	// Events
	ListAuditEvents    *usecase.ListAuditEvents
	ExportAuditEvents  *usecase.ExportAuditEvents
	ListOutboundEvents *usecase.ListOutboundEvents
	RetryOutboundEvent *usecase.RetryOutboundEvent

	// Blockchain and development utilities
	ListBlockchainRecords  *usecase.ListBlockchainRecords
	VerifyBlockchainRecord *usecase.VerifyBlockchainRecord
	RunDevData             *usecase.RunDevData

	// Local configuration
	ShowConfig   *usecase.ShowConfig
	SetConfig    *usecase.SetConfig
	RemoveConfig *usecase.RemoveConfig
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	logger *slog.Logger,
	listProposals *usecase.ListProposals,
	showProposal *usecase.ShowProposal,
	showResults *usecase.ShowResults,
	editProposal *usecase.EditProposal,
	transitionProposal *usecase.TransitionProposal,
	addProposalOption *usecase.AddProposalOption,
	deleteProposalOption *usecase.DeleteProposalOption,
	castVote *usecase.CastVote,
	listOrganizations *usecase.ListOrganizations,
	showOrganization *usecase.ShowOrganization,
	useOrganization *usecase.UseOrganization,
	listUsers *usecase.ListUsers,
	showUser *usecase.ShowUser,
	listMemberships *usecase.ListMemberships,
	listShareTypes *usecase.ListShareTypes,
	createShareType *usecase.CreateShareType,
	deleteShareType *usecase.DeleteShareType,
	listShareIssuances *usecase.ListShareIssuances,
	createShareIssuance *usecase.CreateShareIssuance,
	listAuditEvents *usecase.ListAuditEvents,
	exportAuditEvents *usecase.ExportAuditEvents,
	listOutboundEvents *usecase.ListOutboundEvents,
	retryOutboundEvent *usecase.RetryOutboundEvent,
	listBlockchainRecords *usecase.ListBlockchainRecords,
	verifyBlockchainRecord *usecase.VerifyBlockchainRecord,
	runDevData *usecase.RunDevData,
	showConfig *usecase.ShowConfig,
	setConfig *usecase.SetConfig,
	removeConfig *usecase.RemoveConfig,
) (*App, error) {
	return &App{
		Config:                 cfg,
		Logger:                 logger,
		ListProposals:          listProposals,
		ShowProposal:           showProposal,
		ShowResults:            showResults,
		EditProposal:           editProposal,
		TransitionProposal:     transitionProposal,
		AddProposalOption:      addProposalOption,
		DeleteProposalOption:   deleteProposalOption,
		CastVote:               castVote,
		ListOrganizations:      listOrganizations,
		ShowOrganization:       showOrganization,
		UseOrganization:        useOrganization,
		ListUsers:              listUsers,
		ShowUser:               showUser,
		ListMemberships:        listMemberships,
		ListShareTypes:         listShareTypes,
		CreateShareType:        createShareType,
		DeleteShareType:        deleteShareType,
		ListShareIssuances:     listShareIssuances,
		CreateShareIssuance:    createShareIssuance,
		ListAuditEvents:        listAuditEvents,
		ExportAuditEvents:      exportAuditEvents,
		ListOutboundEvents:     listOutboundEvents,
		RetryOutboundEvent:     retryOutboundEvent,
		ListBlockchainRecords:  listBlockchainRecords,
		VerifyBlockchainRecord: verifyBlockchainRecord,
		RunDevData:             runDevData,
		ShowConfig:             showConfig,
		SetConfig:              setConfig,
		RemoveConfig:           removeConfig,
	}, nil
}
