package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/lo"
	"github.com/trebuchet-org/govctl/internal/domain/models"
	"github.com/trebuchet-org/govctl/internal/usecase"
)

// EventsRenderer renders the audit log and outbound webhook events
type EventsRenderer struct {
	out io.Writer
}

// NewEventsRenderer creates a new events renderer
func NewEventsRenderer(out io.Writer) *EventsRenderer {
	return &EventsRenderer{out: out}
}

// RenderAuditList renders a page of audit events or its empty state
func (r *EventsRenderer) RenderAuditList(result *usecase.AuditEventListResult) error {
	if len(result.Page.Items) == 0 {
		fmt.Fprintln(r.out, result.EmptyMessage)
		return nil
	}

	rows := lo.Map(result.Page.Items, func(e models.AuditEvent, _ int) table.Row {
		actor := e.Actor.DisplayName
		if actor == "" {
			actor = e.Actor.UserID
		}
		resource := e.ResourceType
		if e.ResourceID != "" {
			resource += " " + idStyle.Sprint(e.ResourceID)
		}
		return table.Row{formatTime(e.Timestamp), orEmpty(actor), e.ActionType, resource, outcomeBadge(e.Outcome)}
	})
	writeTable(r.out, table.Row{"Time", "Actor", "Action", "Resource", "Outcome"}, rows)
	writePageFooter(r.out, result.Page)
	return nil
}

// RenderExport renders the outcome of an audit export
func (r *EventsRenderer) RenderExport(result *usecase.ExportAuditEventsResult) error {
	fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Exported audit events as %s to %s (%d bytes)", result.Format, result.Path, result.Bytes)))
	return nil
}

// RenderOutboundList renders a page of outbound webhook events
func (r *EventsRenderer) RenderOutboundList(result *usecase.OutboundEventListResult) error {
	if len(result.Page.Items) == 0 {
		fmt.Fprintln(r.out, result.EmptyMessage)
		return nil
	}

	rows := lo.Map(result.Page.Items, func(e models.OutboundEvent, _ int) table.Row {
		return table.Row{
			idStyle.Sprint(e.ID),
			e.EventType,
			outboundBadge(e.Status),
			e.AttemptCount,
			formatTimePtr(e.LastAttemptAt),
			orEmpty(e.LastError),
		}
	})
	writeTable(r.out, table.Row{"ID", "Event", "Status", "Attempts", "Last Attempt", "Last Error"}, rows)
	writePageFooter(r.out, result.Page)

	failed := lo.CountBy(result.Page.Items, func(e models.OutboundEvent) bool { return e.CanRetry() })
	if failed > 0 {
		fmt.Fprintln(r.out, FormatHint(fmt.Sprintf("%d failed event(s) can be retried with: govctl webhooks retry <id>", failed)))
	}
	return nil
}

// RenderRetry renders a queued retry
func (r *EventsRenderer) RenderRetry(result *usecase.RetryOutboundEventResult) error {
	fmt.Fprintln(r.out, FormatSuccess(result.Message))
	if result.Event != nil {
		writeField(r.out, "Status", outboundBadge(result.Event.Status))
		writeField(r.out, "Attempts", fmt.Sprintf("%d", result.Event.AttemptCount))
	}
	if result.Events != nil {
		fmt.Fprintln(r.out)
		return r.RenderOutboundList(result.Events)
	}
	return nil
}

func outcomeBadge(outcome string) string {
	switch outcome {
	case "Success":
		return color.New(color.FgGreen).Sprint(outcome)
	case "Failure", "Denied":
		return color.New(color.FgRed).Sprint(outcome)
	default:
		return orEmpty(outcome)
	}
}

func outboundBadge(status models.OutboundStatus) string {
	switch status {
	case models.OutboundStatusDelivered:
		return color.New(color.FgGreen).Sprint(status)
	case models.OutboundStatusFailed:
		return color.New(color.FgRed).Sprint(status)
	case models.OutboundStatusPending:
		return color.New(color.FgYellow).Sprint(status)
	default:
		return string(status)
	}
}
