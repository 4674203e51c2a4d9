package models

import (
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
)

func TestBlockchainRecordPayloadMatches(t *testing.T) {
	payload := `{"proposalId":"p-1","winner":"opt-a"}`
	hash := crypto.Keccak256Hash([]byte(payload)).Hex()

	t.Run("matching hash", func(t *testing.T) {
		r := &BlockchainRecord{Payload: payload, PayloadHash: hash}
		assert.True(t, r.PayloadMatches())
	})

	t.Run("tampered payload", func(t *testing.T) {
		r := &BlockchainRecord{Payload: payload + " ", PayloadHash: hash}
		assert.False(t, r.PayloadMatches())
	})

	t.Run("malformed hash", func(t *testing.T) {
		r := &BlockchainRecord{Payload: payload, PayloadHash: "abc"}
		assert.False(t, r.PayloadMatches())
	})
}

func TestBlockchainRecordHasValidContract(t *testing.T) {
	assert.True(t, (&BlockchainRecord{ContractAddress: "0x1111111111111111111111111111111111111111"}).HasValidContract())
	assert.False(t, (&BlockchainRecord{ContractAddress: "0x1234"}).HasValidContract())
	assert.False(t, (&BlockchainRecord{}).HasValidContract())
}

func TestPageTotalPages(t *testing.T) {
	assert.Equal(t, 1, Page[int]{PageSize: 25}.TotalPages())
	assert.Equal(t, 3, Page[int]{PageSize: 10, TotalCount: 21}.TotalPages())
	assert.True(t, Page[int]{Page: 1, PageSize: 10, TotalCount: 21}.HasNext())
	assert.False(t, Page[int]{Page: 3, PageSize: 10, TotalCount: 21}.HasNext())
}
