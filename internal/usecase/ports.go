package usecase

import (
	"context"

	"github.com/trebuchet-org/govctl/internal/domain"
	"github.com/trebuchet-org/govctl/internal/domain/config"
	"github.com/trebuchet-org/govctl/internal/domain/models"
)

// API client ports, one per platform resource

// OrganizationClient reads organizations
type OrganizationClient interface {
	ListOrganizations(ctx context.Context, query domain.ListQuery) (*models.Page[models.Organization], error)
	GetOrganization(ctx context.Context, id string) (*models.Organization, error)
}

// UserClient reads users
type UserClient interface {
	ListUsers(ctx context.Context, query domain.ListQuery) (*models.Page[models.User], error)
	GetUser(ctx context.Context, id string) (*models.User, error)
}

// MembershipClient reads organization memberships
type MembershipClient interface {
	ListMemberships(ctx context.Context, organizationID string) ([]models.Membership, error)
}

// ShareTypeClient manages share types
type ShareTypeClient interface {
	ListShareTypes(ctx context.Context, organizationID string) ([]models.ShareType, error)
	CreateShareType(ctx context.Context, organizationID string, shareType models.NewShareType) (*models.ShareType, error)
	DeleteShareType(ctx context.Context, id string) error
}

// ShareIssuanceClient manages share issuances
type ShareIssuanceClient interface {
	ListShareIssuances(ctx context.Context, organizationID string) ([]models.ShareIssuance, error)
	CreateShareIssuance(ctx context.Context, organizationID string, issuance models.NewShareIssuance) (*models.ShareIssuance, error)
}

// ProposalClient manages proposals, their options and votes
type ProposalClient interface {
	ListProposals(ctx context.Context, filter domain.ProposalFilter) ([]models.Proposal, error)
	GetProposal(ctx context.Context, id string) (*models.Proposal, error)
	UpdateProposal(ctx context.Context, id string, update models.ProposalUpdate) (*models.Proposal, error)
	TransitionProposal(ctx context.Context, id string, action models.ProposalAction) (*models.Proposal, error)
	GetResults(ctx context.Context, id string) (*models.ProposalResults, error)
	AddOption(ctx context.Context, id string, option models.NewProposalOption) (*models.ProposalOption, error)
	DeleteOption(ctx context.Context, id string, optionID string) error
	CastVote(ctx context.Context, id string, optionID string) (*models.Vote, error)
	// GetMyVote returns an error matching domain.ErrNotFound when the caller has not voted
	GetMyVote(ctx context.Context, id string) (*models.Vote, error)
}

// ExportFormat is the file format of an audit export
type ExportFormat string

const (
	ExportCSV  ExportFormat = "csv"
	ExportJSON ExportFormat = "json"
)

// AuditClient reads and exports audit events
type AuditClient interface {
	ListAuditEvents(ctx context.Context, query domain.AuditEventQuery) (*models.Page[models.AuditEvent], error)
	ExportAuditEvents(ctx context.Context, query domain.AuditEventQuery, format ExportFormat) ([]byte, error)
}

// OutboundClient reads outbound webhook events and retries failed deliveries
type OutboundClient interface {
	ListOutboundEvents(ctx context.Context, query domain.OutboundEventQuery) (*models.Page[models.OutboundEvent], error)
	RetryOutboundEvent(ctx context.Context, id string) (*models.OutboundEvent, error)
}

// BlockchainClient reads blockchain anchoring records
type BlockchainClient interface {
	ListBlockchainRecords(ctx context.Context, organizationID string) ([]models.BlockchainRecord, error)
	GetBlockchainRecord(ctx context.Context, id string) (*models.BlockchainRecord, error)
	VerifyBlockchainRecord(ctx context.Context, id string) (*models.ChainVerification, error)
}

// DevDataClient drives the development-only data utilities
type DevDataClient interface {
	SeedDevData(ctx context.Context) (*models.DevDataResult, error)
	ResetDevData(ctx context.Context) (*models.DevDataResult, error)
}

// Local ports

// LocalConfigRepository manages local configuration persistence
type LocalConfigRepository interface {
	Exists() bool
	Load(ctx context.Context) (*config.LocalConfig, error)
	Save(ctx context.Context, config *config.LocalConfig) error
	GetPath() string
}

// FileWriter handles file system operations for exports
type FileWriter interface {
	WriteFile(ctx context.Context, path string, content []byte) error
	FileExists(ctx context.Context, path string) (bool, error)
	EnsureDirectory(ctx context.Context, path string) error
}

// InteractiveSelector handles interactive prompts
type InteractiveSelector interface {
	SelectOption(ctx context.Context, options []models.ProposalOption, prompt string) (*models.ProposalOption, error)
	SelectOrganization(ctx context.Context, organizations []models.Organization, prompt string) (*models.Organization, error)
	Confirm(ctx context.Context, prompt string) (bool, error)
}

// Progress tracking interfaces

// ProgressEvent represents a progress update
type ProgressEvent struct {
	Stage    string
	Current  int
	Total    int
	Message  string
	Spinner  bool
	Metadata interface{}
}

// ProgressSink receives progress events
type ProgressSink interface {
	OnProgress(ctx context.Context, event ProgressEvent)
	Info(message string)
	Error(message string)
}

// NopProgress is a no-op implementation of ProgressSink
type NopProgress struct{}

func (NopProgress) OnProgress(context.Context, ProgressEvent) {}
func (NopProgress) Info(string)                               {}
func (NopProgress) Error(string)                              {}

// resolveOrganization picks the explicit organization or the active one
func resolveOrganization(cfg *config.RuntimeConfig, explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if cfg.OrganizationID != "" {
		return cfg.OrganizationID, nil
	}
	return "", domain.ErrNoActiveOrganization
}
