package usecase

import (
	"context"

	"github.com/trebuchet-org/govctl/internal/domain"
	"github.com/trebuchet-org/govctl/internal/domain/models"
)

// DevDataOperation selects which development utility to run
type DevDataOperation string

const (
	DevDataSeed  DevDataOperation = "seed"
	DevDataReset DevDataOperation = "reset"
)

// RunDevDataParams contains parameters for the development data utilities
type RunDevDataParams struct {
	Operation DevDataOperation
	Confirmed bool
}

// RunDevData is the use case for seeding and resetting development data
type RunDevData struct {
	dev      DevDataClient
	selector InteractiveSelector
	sink     ProgressSink
}

// NewRunDevData creates a new RunDevData use case
func NewRunDevData(dev DevDataClient, selector InteractiveSelector, sink ProgressSink) *RunDevData {
	return &RunDevData{
		dev:      dev,
		selector: selector,
		sink:     sink,
	}
}

// Run executes the requested operation. Reset always asks for confirmation
// unless Confirmed is set.
func (uc *RunDevData) Run(ctx context.Context, params RunDevDataParams) (*models.DevDataResult, error) {
	switch params.Operation {
	case DevDataSeed:
		uc.sink.OnProgress(ctx, ProgressEvent{Stage: "seed", Message: "Seeding development data", Spinner: true})
		defer uc.sink.OnProgress(ctx, ProgressEvent{Stage: "complete"})
		return uc.dev.SeedDevData(ctx)

	case DevDataReset:
		if !params.Confirmed {
			ok, err := uc.selector.Confirm(ctx, "Reset all development data? This deletes every record.")
			if err != nil {
				return nil, err
			}
			if !ok {
				return nil, domain.ErrCancelled
			}
		}
		uc.sink.OnProgress(ctx, ProgressEvent{Stage: "reset", Message: "Resetting development data", Spinner: true})
		defer uc.sink.OnProgress(ctx, ProgressEvent{Stage: "complete"})
		return uc.dev.ResetDevData(ctx)

	default:
		return nil, domain.ValidationErr{Fields: []string{"operation"}, Reason: "unknown dev data operation " + string(params.Operation)}
	}
}
