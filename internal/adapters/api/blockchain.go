package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/trebuchet-org/govctl/internal/domain/models"
	"github.com/trebuchet-org/govctl/internal/usecase"
)

// ListBlockchainRecords returns an organization's anchoring records
func (c *Client) ListBlockchainRecords(ctx context.Context, organizationID string) ([]models.BlockchainRecord, error) {
	var records []models.BlockchainRecord
	path := fmt.Sprintf("/organizations/%s/blockchain-records", segment(organizationID))
	if err := c.getJSON(ctx, path, nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// GetBlockchainRecord returns a single anchoring record
func (c *Client) GetBlockchainRecord(ctx context.Context, id string) (*models.BlockchainRecord, error) {
	var record models.BlockchainRecord
	if err := c.getJSON(ctx, "/blockchain-records/"+segment(id), nil, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// VerifyBlockchainRecord asks the platform whether the record's transaction is on chain
func (c *Client) VerifyBlockchainRecord(ctx context.Context, id string) (*models.ChainVerification, error) {
	var verification models.ChainVerification
	path := fmt.Sprintf("/blockchain-records/%s/verify", segment(id))
	if err := c.getJSON(ctx, path, nil, &verification); err != nil {
		return nil, err
	}
	return &verification, nil
}

// SeedDevData fills the platform with development fixtures
func (c *Client) SeedDevData(ctx context.Context) (*models.DevDataResult, error) {
	var result models.DevDataResult
	if err := c.doJSON(ctx, http.MethodPost, "/admin/seed-dev-data", nil, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ResetDevData deletes all development data
func (c *Client) ResetDevData(ctx context.Context) (*models.DevDataResult, error) {
	var result models.DevDataResult
	if err := c.doJSON(ctx, http.MethodPost, "/admin/reset-dev-data", nil, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

var (
	_ usecase.BlockchainClient = (*Client)(nil)
	_ usecase.DevDataClient    = (*Client)(nil)
)
