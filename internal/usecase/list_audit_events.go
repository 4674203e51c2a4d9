package usecase

import (
	"context"

	"github.com/trebuchet-org/govctl/internal/domain"
	"github.com/trebuchet-org/govctl/internal/domain/config"
	"github.com/trebuchet-org/govctl/internal/domain/models"
)

// Empty-state messages for the audit log
const (
	NoAuditEventsMessage         = "No audit events found for this organization."
	NoAuditEventsAnyOrgMessage   = "No audit events found."
	NoAuditEventsFilteredMessage = "No audit events found matching your filters."
)

// AuditFilterParams are the raw audit filter inputs from the command line
type AuditFilterParams struct {
	OrganizationID   string
	AllOrganizations bool
	DateFrom         string
	DateTo           string
	ActionTypes      []string
	ResourceTypes    []string
	Page             int
	PageSize         int
}

// BuildAuditFilter validates raw inputs into filter state. The page is applied
// last so it survives the resets triggered by the other setters.
func BuildAuditFilter(cfg *config.RuntimeConfig, params AuditFilterParams) (*domain.AuditFilterState, error) {
	pageSize := params.PageSize
	if pageSize <= 0 {
		pageSize = cfg.PageSize
	}

	filter := domain.NewAuditFilterState("", pageSize)
	if params.AllOrganizations {
		filter.SetAllOrganizations(true)
	} else {
		orgID, err := resolveOrganization(cfg, params.OrganizationID)
		if err != nil {
			return nil, err
		}
		filter.SetOrganization(orgID)
	}

	if err := filter.SetDateFrom(params.DateFrom); err != nil {
		return nil, err
	}
	if err := filter.SetDateTo(params.DateTo); err != nil {
		return nil, err
	}
	filter.SetActionTypes(params.ActionTypes)
	filter.SetResourceTypes(params.ResourceTypes)

	if params.Page > 0 {
		filter.SetPage(params.Page)
	}
	return filter, nil
}

// AuditEventListResult contains one page of audit events
type AuditEventListResult struct {
	Page         *models.Page[models.AuditEvent]
	Filtered     bool
	EmptyMessage string
}

// ListAuditEvents is the use case for browsing the audit log
type ListAuditEvents struct {
	audit AuditClient
	sink  ProgressSink
}

// NewListAuditEvents creates a new ListAuditEvents use case
func NewListAuditEvents(audit AuditClient, sink ProgressSink) *ListAuditEvents {
	return &ListAuditEvents{
		audit: audit,
		sink:  sink,
	}
}

// Run fetches the page described by the filter state
func (uc *ListAuditEvents) Run(ctx context.Context, filter *domain.AuditFilterState) (*AuditEventListResult, error) {
	if !filter.AllOrganizations() && filter.OrganizationID() == "" {
		return nil, domain.ErrNoActiveOrganization
	}

	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   "loading",
		Message: "Loading audit events",
		Spinner: true,
	})
	defer uc.sink.OnProgress(ctx, ProgressEvent{Stage: "complete"})

	page, err := uc.audit.ListAuditEvents(ctx, filter.Request())
	if err != nil {
		return nil, err
	}

	result := &AuditEventListResult{
		Page:     page,
		Filtered: filter.HasActiveFilters(),
	}
	if len(page.Items) == 0 {
		result.EmptyMessage = auditEmptyMessage(filter)
	}
	return result, nil
}

func auditEmptyMessage(filter *domain.AuditFilterState) string {
	switch {
	case filter.HasActiveFilters():
		return NoAuditEventsFilteredMessage
	case filter.AllOrganizations():
		return NoAuditEventsAnyOrgMessage
	default:
		return NoAuditEventsMessage
	}
}
