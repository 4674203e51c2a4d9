package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/trebuchet-org/govctl/internal/domain"
	"github.com/trebuchet-org/govctl/internal/domain/config"
	"github.com/trebuchet-org/govctl/internal/domain/models"
)

// ListOutboundEventsParams contains parameters for listing outbound events
type ListOutboundEventsParams struct {
	OrganizationID string
	Status         string
	EventType      string
	Page           int
	PageSize       int
}

// OutboundEventListResult contains one page of outbound events
type OutboundEventListResult struct {
	Page         *models.Page[models.OutboundEvent]
	EmptyMessage string
}

// ListOutboundEvents is the use case for the webhook delivery log
type ListOutboundEvents struct {
	config   *config.RuntimeConfig
	outbound OutboundClient
}

// NewListOutboundEvents creates a new ListOutboundEvents use case
func NewListOutboundEvents(cfg *config.RuntimeConfig, outbound OutboundClient) *ListOutboundEvents {
	return &ListOutboundEvents{
		config:   cfg,
		outbound: outbound,
	}
}

// Run executes the list outbound events use case
func (uc *ListOutboundEvents) Run(ctx context.Context, params ListOutboundEventsParams) (*OutboundEventListResult, error) {
	orgID, err := resolveOrganization(uc.config, params.OrganizationID)
	if err != nil {
		return nil, err
	}

	pageSize := params.PageSize
	if pageSize <= 0 {
		pageSize = uc.config.PageSize
	}
	filter := domain.NewOutboundFilterState(orgID, pageSize)
	if err := filter.SetStatus(params.Status); err != nil {
		return nil, err
	}
	filter.SetEventType(params.EventType)
	if params.Page > 0 {
		filter.SetPage(params.Page)
	}

	page, err := uc.outbound.ListOutboundEvents(ctx, filter.Request())
	if err != nil {
		return nil, err
	}

	result := &OutboundEventListResult{Page: page}
	if len(page.Items) == 0 {
		if filter.HasActiveFilters() {
			result.EmptyMessage = "No outbound events found matching your filters."
		} else {
			result.EmptyMessage = "No outbound events found for this organization."
		}
	}
	return result, nil
}

// RetryOutboundEventResult contains the event after a retry was queued
type RetryOutboundEventResult struct {
	Event   *models.OutboundEvent
	Message string
	// Events is the reloaded delivery log, nil when the reload failed
	Events     *OutboundEventListResult
	RefreshErr error `json:"-" yaml:"-"`
}

// RetryOutboundEvent is the use case for requeueing a failed delivery
type RetryOutboundEvent struct {
	outbound OutboundClient
	list     *ListOutboundEvents
	log      *slog.Logger
}

// NewRetryOutboundEvent creates a new RetryOutboundEvent use case
func NewRetryOutboundEvent(outbound OutboundClient, list *ListOutboundEvents, log *slog.Logger) *RetryOutboundEvent {
	return &RetryOutboundEvent{
		outbound: outbound,
		list:     list,
		log:      log,
	}
}

// Run requests a retry of the event and reloads the delivery log of its organization
func (uc *RetryOutboundEvent) Run(ctx context.Context, eventID string) (*RetryOutboundEventResult, error) {
	if eventID == "" {
		return nil, domain.Required("event id")
	}

	event, err := uc.outbound.RetryOutboundEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	result := &RetryOutboundEventResult{
		Event:   event,
		Message: fmt.Sprintf("Retry queued for event %s.", eventID),
	}

	var orgID string
	if event != nil {
		orgID = event.OrganizationID
	}
	events, err := uc.list.Run(ctx, ListOutboundEventsParams{OrganizationID: orgID})
	if err != nil {
		uc.log.Warn("failed to reload outbound events", "event", eventID, "error", err)
		result.RefreshErr = err
		return result, nil
	}
	result.Events = events

	return result, nil
}
