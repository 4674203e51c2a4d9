package usecase

import (
	"context"
	"log/slog"

	"github.com/trebuchet-org/govctl/internal/domain"
	"github.com/trebuchet-org/govctl/internal/domain/config"
	"github.com/trebuchet-org/govctl/internal/domain/models"
)

// BlockchainRecordListResult contains an organization's anchoring records
type BlockchainRecordListResult struct {
	OrganizationID string
	Records        []models.BlockchainRecord
}

// ListBlockchainRecords is the use case for listing anchoring records
type ListBlockchainRecords struct {
	config *config.RuntimeConfig
	chain  BlockchainClient
}

// NewListBlockchainRecords creates a new ListBlockchainRecords use case
func NewListBlockchainRecords(cfg *config.RuntimeConfig, chain BlockchainClient) *ListBlockchainRecords {
	return &ListBlockchainRecords{
		config: cfg,
		chain:  chain,
	}
}

// Run executes the list blockchain records use case
func (uc *ListBlockchainRecords) Run(ctx context.Context, organizationID string) (*BlockchainRecordListResult, error) {
	orgID, err := resolveOrganization(uc.config, organizationID)
	if err != nil {
		return nil, err
	}
	records, err := uc.chain.ListBlockchainRecords(ctx, orgID)
	if err != nil {
		return nil, err
	}
	return &BlockchainRecordListResult{OrganizationID: orgID, Records: records}, nil
}

// VerifyBlockchainRecordResult combines the local and remote checks
type VerifyBlockchainRecordResult struct {
	Record       *models.BlockchainRecord
	ComputedHash string
	HashMatches  bool
	ValidAddress bool
	// Remote is nil when the platform could not confirm the transaction
	Remote *models.ChainVerification
}

// Verified reports whether every available check passed
func (r *VerifyBlockchainRecordResult) Verified() bool {
	if !r.HashMatches || !r.ValidAddress {
		return false
	}
	return r.Remote == nil || r.Remote.OnChain
}

// VerifyBlockchainRecord is the use case for checking an anchoring record
type VerifyBlockchainRecord struct {
	chain BlockchainClient
	log   *slog.Logger
}

// NewVerifyBlockchainRecord creates a new VerifyBlockchainRecord use case
func NewVerifyBlockchainRecord(chain BlockchainClient, log *slog.Logger) *VerifyBlockchainRecord {
	return &VerifyBlockchainRecord{
		chain: chain,
		log:   log,
	}
}

// Run recomputes the payload hash locally and asks the platform for chain status
func (uc *VerifyBlockchainRecord) Run(ctx context.Context, recordID string) (*VerifyBlockchainRecordResult, error) {
	if recordID == "" {
		return nil, domain.Required("record id")
	}

	record, err := uc.chain.GetBlockchainRecord(ctx, recordID)
	if err != nil {
		return nil, err
	}

	result := &VerifyBlockchainRecordResult{
		Record:       record,
		ComputedHash: record.ComputedPayloadHash().Hex(),
		HashMatches:  record.PayloadMatches(),
		ValidAddress: record.HasValidContract(),
	}

	remote, err := uc.chain.VerifyBlockchainRecord(ctx, recordID)
	if err != nil {
		uc.log.Warn("remote chain verification unavailable", "record", recordID, "error", err)
	} else {
		result.Remote = remote
	}

	return result, nil
}
