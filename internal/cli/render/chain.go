package render

import (
	"fmt"
	"io"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/lo"
	"github.com/trebuchet-org/govctl/internal/domain/models"
	"github.com/trebuchet-org/govctl/internal/usecase"
)

// ChainRenderer renders blockchain anchoring records and development data results
type ChainRenderer struct {
	out io.Writer
}

// NewChainRenderer creates a new chain renderer
func NewChainRenderer(out io.Writer) *ChainRenderer {
	return &ChainRenderer{out: out}
}

// RenderList renders the anchoring records of an organization
func (r *ChainRenderer) RenderList(result *usecase.BlockchainRecordListResult) error {
	if len(result.Records) == 0 {
		fmt.Fprintln(r.out, "No blockchain records found for this organization.")
		return nil
	}

	rows := lo.Map(result.Records, func(rec models.BlockchainRecord, _ int) table.Row {
		return table.Row{
			idStyle.Sprint(rec.ID),
			Label(rec.EntityType),
			rec.EntityID,
			shortHash(rec.TxHash),
			formatTime(rec.RecordedAt),
		}
	})
	writeTable(r.out, table.Row{"ID", "Entity", "Entity ID", "Tx", "Recorded"}, rows)
	return nil
}

// RenderVerification renders the local hash check and the remote chain status
func (r *ChainRenderer) RenderVerification(result *usecase.VerifyBlockchainRecordResult) error {
	rec := result.Record
	fmt.Fprintln(r.out, headerStyle.Sprintf("%s %s", Label(rec.EntityType), rec.EntityID))
	writeField(r.out, "Record", idStyle.Sprint(rec.ID))
	writeField(r.out, "Stored hash", orEmpty(rec.PayloadHash))
	writeField(r.out, "Computed hash", result.ComputedHash)
	writeField(r.out, "Hash matches", yesNo(result.HashMatches))
	writeField(r.out, "Contract", orEmpty(rec.ContractAddress))
	writeField(r.out, "Valid address", yesNo(result.ValidAddress))
	writeField(r.out, "Tx", orEmpty(rec.TxHash))

	if result.Remote != nil {
		writeField(r.out, "On chain", yesNo(result.Remote.OnChain))
		if result.Remote.BlockNumber > 0 {
			writeField(r.out, "Block", fmt.Sprintf("%d (%d confirmations)", result.Remote.BlockNumber, result.Remote.Confirmations))
		}
	} else {
		writeField(r.out, "On chain", "unknown")
	}

	fmt.Fprintln(r.out)
	if result.Verified() {
		fmt.Fprintln(r.out, FormatSuccess("Record verified."))
	} else {
		fmt.Fprintln(r.out, FormatWarning("Record could not be fully verified."))
	}
	return nil
}

// RenderDevData renders the outcome of a seed or reset
func (r *ChainRenderer) RenderDevData(result *models.DevDataResult) error {
	fmt.Fprintln(r.out, FormatSuccess(orEmpty(result.Message)))
	if result.Organizations > 0 {
		writeField(r.out, "Organizations", fmt.Sprintf("%d", result.Organizations))
	}
	if result.Users > 0 {
		writeField(r.out, "Users", fmt.Sprintf("%d", result.Users))
	}
	keys := lo.Keys(result.Counts)
	sort.Strings(keys)
	for _, k := range keys {
		writeField(r.out, Label(k), fmt.Sprintf("%d", result.Counts[k]))
	}
	return nil
}

func shortHash(hash string) string {
	if len(hash) <= 14 {
		return orEmpty(hash)
	}
	return hash[:8] + "…" + hash[len(hash)-4:]
}
