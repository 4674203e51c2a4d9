package models

import (
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// BlockchainRecord anchors a governance entity's payload on chain
type BlockchainRecord struct {
	ID              string    `json:"id" yaml:"id"`
	OrganizationID  string    `json:"organizationId" yaml:"organizationId"`
	EntityType      string    `json:"entityType" yaml:"entityType"`
	EntityID        string    `json:"entityId" yaml:"entityId"`
	Payload         string    `json:"payload" yaml:"payload"`
	PayloadHash     string    `json:"payloadHash" yaml:"payloadHash"`
	TxHash          string    `json:"txHash,omitempty" yaml:"txHash,omitempty"`
	ContractAddress string    `json:"contractAddress,omitempty" yaml:"contractAddress,omitempty"`
	RecordedAt      time.Time `json:"recordedAt" yaml:"recordedAt"`
}

// ComputedPayloadHash returns the keccak256 hash of the stored payload
func (r *BlockchainRecord) ComputedPayloadHash() common.Hash {
	return crypto.Keccak256Hash([]byte(r.Payload))
}

// PayloadMatches reports whether the stored hash matches the payload
func (r *BlockchainRecord) PayloadMatches() bool {
	stored := strings.TrimSpace(r.PayloadHash)
	if !strings.HasPrefix(stored, "0x") || len(stored) != 66 {
		return false
	}
	return common.HexToHash(stored) == r.ComputedPayloadHash()
}

// HasValidContract reports whether the contract address is a well-formed hex address
func (r *BlockchainRecord) HasValidContract() bool {
	return common.IsHexAddress(r.ContractAddress)
}

// ChainVerification is the platform's view of a record's on-chain anchor
type ChainVerification struct {
	RecordID      string    `json:"recordId" yaml:"recordId"`
	OnChain       bool      `json:"onChain" yaml:"onChain"`
	BlockNumber   uint64    `json:"blockNumber,omitempty" yaml:"blockNumber,omitempty"`
	Confirmations int       `json:"confirmations" yaml:"confirmations"`
	CheckedAt     time.Time `json:"checkedAt" yaml:"checkedAt"`
}
