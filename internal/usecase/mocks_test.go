package usecase_test

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/stretchr/testify/mock"
	"github.com/trebuchet-org/govctl/internal/domain"
	"github.com/trebuchet-org/govctl/internal/domain/config"
	"github.com/trebuchet-org/govctl/internal/domain/models"
	"github.com/trebuchet-org/govctl/internal/usecase"
)

// MockProposalClient is a mock implementation of ProposalClient
type MockProposalClient struct {
	mock.Mock
}

func (m *MockProposalClient) ListProposals(ctx context.Context, filter domain.ProposalFilter) ([]models.Proposal, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Proposal), args.Error(1)
}

func (m *MockProposalClient) GetProposal(ctx context.Context, id string) (*models.Proposal, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Proposal), args.Error(1)
}

func (m *MockProposalClient) UpdateProposal(ctx context.Context, id string, update models.ProposalUpdate) (*models.Proposal, error) {
	args := m.Called(ctx, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Proposal), args.Error(1)
}

func (m *MockProposalClient) TransitionProposal(ctx context.Context, id string, action models.ProposalAction) (*models.Proposal, error) {
	args := m.Called(ctx, id, action)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Proposal), args.Error(1)
}

func (m *MockProposalClient) GetResults(ctx context.Context, id string) (*models.ProposalResults, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ProposalResults), args.Error(1)
}

func (m *MockProposalClient) AddOption(ctx context.Context, id string, option models.NewProposalOption) (*models.ProposalOption, error) {
	args := m.Called(ctx, id, option)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ProposalOption), args.Error(1)
}

func (m *MockProposalClient) DeleteOption(ctx context.Context, id string, optionID string) error {
	args := m.Called(ctx, id, optionID)
	return args.Error(0)
}

func (m *MockProposalClient) CastVote(ctx context.Context, id string, optionID string) (*models.Vote, error) {
	args := m.Called(ctx, id, optionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Vote), args.Error(1)
}

func (m *MockProposalClient) GetMyVote(ctx context.Context, id string) (*models.Vote, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Vote), args.Error(1)
}

// MockOrganizationClient is a mock implementation of OrganizationClient
type MockOrganizationClient struct {
	mock.Mock
}

func (m *MockOrganizationClient) ListOrganizations(ctx context.Context, query domain.ListQuery) (*models.Page[models.Organization], error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Page[models.Organization]), args.Error(1)
}

func (m *MockOrganizationClient) GetOrganization(ctx context.Context, id string) (*models.Organization, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Organization), args.Error(1)
}

// MockMembershipClient is a mock implementation of MembershipClient
type MockMembershipClient struct {
	mock.Mock
}

func (m *MockMembershipClient) ListMemberships(ctx context.Context, organizationID string) ([]models.Membership, error) {
	args := m.Called(ctx, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Membership), args.Error(1)
}

// MockShareTypeClient is a mock implementation of ShareTypeClient
type MockShareTypeClient struct {
	mock.Mock
}

func (m *MockShareTypeClient) ListShareTypes(ctx context.Context, organizationID string) ([]models.ShareType, error) {
	args := m.Called(ctx, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ShareType), args.Error(1)
}

func (m *MockShareTypeClient) CreateShareType(ctx context.Context, organizationID string, shareType models.NewShareType) (*models.ShareType, error) {
	args := m.Called(ctx, organizationID, shareType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ShareType), args.Error(1)
}

func (m *MockShareTypeClient) DeleteShareType(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// MockShareIssuanceClient is a mock implementation of ShareIssuanceClient
type MockShareIssuanceClient struct {
	mock.Mock
}

func (m *MockShareIssuanceClient) ListShareIssuances(ctx context.Context, organizationID string) ([]models.ShareIssuance, error) {
	args := m.Called(ctx, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ShareIssuance), args.Error(1)
}

func (m *MockShareIssuanceClient) CreateShareIssuance(ctx context.Context, organizationID string, issuance models.NewShareIssuance) (*models.ShareIssuance, error) {
	args := m.Called(ctx, organizationID, issuance)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ShareIssuance), args.Error(1)
}

// MockAuditClient is a mock implementation of AuditClient
type MockAuditClient struct {
	mock.Mock
}

func (m *MockAuditClient) ListAuditEvents(ctx context.Context, query domain.AuditEventQuery) (*models.Page[models.AuditEvent], error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Page[models.AuditEvent]), args.Error(1)
}

func (m *MockAuditClient) ExportAuditEvents(ctx context.Context, query domain.AuditEventQuery, format usecase.ExportFormat) ([]byte, error) {
	args := m.Called(ctx, query, format)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// MockOutboundClient is a mock implementation of OutboundClient
type MockOutboundClient struct {
	mock.Mock
}

func (m *MockOutboundClient) ListOutboundEvents(ctx context.Context, query domain.OutboundEventQuery) (*models.Page[models.OutboundEvent], error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Page[models.OutboundEvent]), args.Error(1)
}

func (m *MockOutboundClient) RetryOutboundEvent(ctx context.Context, id string) (*models.OutboundEvent, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.OutboundEvent), args.Error(1)
}

// MockBlockchainClient is a mock implementation of BlockchainClient
type MockBlockchainClient struct {
	mock.Mock
}

func (m *MockBlockchainClient) ListBlockchainRecords(ctx context.Context, organizationID string) ([]models.BlockchainRecord, error) {
	args := m.Called(ctx, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.BlockchainRecord), args.Error(1)
}

func (m *MockBlockchainClient) GetBlockchainRecord(ctx context.Context, id string) (*models.BlockchainRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BlockchainRecord), args.Error(1)
}

func (m *MockBlockchainClient) VerifyBlockchainRecord(ctx context.Context, id string) (*models.ChainVerification, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ChainVerification), args.Error(1)
}

// MockDevDataClient is a mock implementation of DevDataClient
type MockDevDataClient struct {
	mock.Mock
}

func (m *MockDevDataClient) SeedDevData(ctx context.Context) (*models.DevDataResult, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DevDataResult), args.Error(1)
}

func (m *MockDevDataClient) ResetDevData(ctx context.Context) (*models.DevDataResult, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DevDataResult), args.Error(1)
}

// MockSelector is a mock implementation of InteractiveSelector
type MockSelector struct {
	mock.Mock
}

func (m *MockSelector) SelectOption(ctx context.Context, options []models.ProposalOption, prompt string) (*models.ProposalOption, error) {
	args := m.Called(ctx, options, prompt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ProposalOption), args.Error(1)
}

func (m *MockSelector) SelectOrganization(ctx context.Context, organizations []models.Organization, prompt string) (*models.Organization, error) {
	args := m.Called(ctx, organizations, prompt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Organization), args.Error(1)
}

func (m *MockSelector) Confirm(ctx context.Context, prompt string) (bool, error) {
	args := m.Called(ctx, prompt)
	return args.Bool(0), args.Error(1)
}

// MockFileWriter is a mock implementation of FileWriter
type MockFileWriter struct {
	mock.Mock
}

func (m *MockFileWriter) WriteFile(ctx context.Context, path string, content []byte) error {
	return m.Called(ctx, path, content).Error(0)
}

func (m *MockFileWriter) FileExists(ctx context.Context, path string) (bool, error) {
	args := m.Called(ctx, path)
	return args.Bool(0), args.Error(1)
}

func (m *MockFileWriter) EnsureDirectory(ctx context.Context, path string) error {
	return m.Called(ctx, path).Error(0)
}

// memoryConfigRepo is an in-memory LocalConfigRepository
type memoryConfigRepo struct {
	cfg    *config.LocalConfig
	exists bool
}

func (r *memoryConfigRepo) Exists() bool { return r.exists }

func (r *memoryConfigRepo) Load(context.Context) (*config.LocalConfig, error) {
	if r.cfg == nil {
		return config.DefaultLocalConfig(), nil
	}
	copied := *r.cfg
	return &copied, nil
}

func (r *memoryConfigRepo) Save(_ context.Context, cfg *config.LocalConfig) error {
	copied := *cfg
	r.cfg = &copied
	r.exists = true
	return nil
}

func (r *memoryConfigRepo) GetPath() string { return "/tmp/govctl/config.local.json" }

// recordingSink captures progress events
type recordingSink struct {
	mu     sync.Mutex
	events []usecase.ProgressEvent
}

func (s *recordingSink) OnProgress(_ context.Context, event usecase.ProgressEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
}

func (s *recordingSink) Info(string)  {}
func (s *recordingSink) Error(string) {}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() *config.RuntimeConfig {
	return &config.RuntimeConfig{
		OrganizationID: "org-1",
		PageSize:       25,
		Output:         config.OutputTable,
	}
}

func ptr[T any](v T) *T { return &v }

func proposalFixture(status models.ProposalStatus) *models.Proposal {
	return &models.Proposal{
		ID:             "prop-1",
		OrganizationID: "org-1",
		Title:          "Adopt new bylaws",
		Status:         status,
		Options: []models.ProposalOption{
			{ID: "opt-yes", ProposalID: "prop-1", Text: "Yes"},
			{ID: "opt-no", ProposalID: "prop-1", Text: "No"},
		},
	}
}
