package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/trebuchet-org/govctl/internal/domain"
	"github.com/trebuchet-org/govctl/internal/domain/models"
	"github.com/trebuchet-org/govctl/internal/usecase"
)

// ListAuditEvents returns a page of audit events. The cross-organization
// view is served by the admin endpoint.
func (c *Client) ListAuditEvents(ctx context.Context, query domain.AuditEventQuery) (*models.Page[models.AuditEvent], error) {
	path := "/audit-events"
	if query.AllOrganizations {
		path = "/admin/audit-events"
	}

	var page models.Page[models.AuditEvent]
	if err := c.getJSON(ctx, path, query.Values(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// ExportAuditEvents downloads every event matching the query in the given format.
// Cross-organization exports go through the admin endpoint.
func (c *Client) ExportAuditEvents(ctx context.Context, query domain.AuditEventQuery, format usecase.ExportFormat) ([]byte, error) {
	path := "/audit-events/export"
	if query.AllOrganizations {
		path = "/admin/audit-events/export"
	}

	values := query.Values()
	// Exports are not paginated
	values.Del("page")
	values.Del("pageSize")
	values.Set("format", string(format))

	return c.do(ctx, http.MethodGet, path, values, nil)
}

// ListOutboundEvents returns a page of outbound webhook events
func (c *Client) ListOutboundEvents(ctx context.Context, query domain.OutboundEventQuery) (*models.Page[models.OutboundEvent], error) {
	var page models.Page[models.OutboundEvent]
	if err := c.getJSON(ctx, "/outbound-events", query.Values(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// RetryOutboundEvent requeues a failed delivery
func (c *Client) RetryOutboundEvent(ctx context.Context, id string) (*models.OutboundEvent, error) {
	var event models.OutboundEvent
	path := fmt.Sprintf("/outbound-events/%s/retry", segment(id))
	if err := c.doJSON(ctx, http.MethodPost, path, nil, nil, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

var (
	_ usecase.AuditClient    = (*Client)(nil)
	_ usecase.OutboundClient = (*Client)(nil)
)
