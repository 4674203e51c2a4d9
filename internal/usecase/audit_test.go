package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/govctl/internal/domain"
	"github.com/trebuchet-org/govctl/internal/domain/models"
	"github.com/trebuchet-org/govctl/internal/usecase"
)

func TestBuildAuditFilter(t *testing.T) {
	t.Run("explicit page survives filter resets", func(t *testing.T) {
		filter, err := usecase.BuildAuditFilter(testConfig(), usecase.AuditFilterParams{
			DateFrom:    "2024-01-01",
			ActionTypes: []string{"Create"},
			Page:        3,
		})
		require.NoError(t, err)
		assert.Equal(t, 3, filter.Page())
		assert.Equal(t, "org-1", filter.OrganizationID())
		assert.Equal(t, 25, filter.PageSize())
	})

	t.Run("rejects malformed date", func(t *testing.T) {
		_, err := usecase.BuildAuditFilter(testConfig(), usecase.AuditFilterParams{DateTo: "01/02/2024"})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("all organizations needs no active org", func(t *testing.T) {
		cfg := testConfig()
		cfg.OrganizationID = ""
		filter, err := usecase.BuildAuditFilter(cfg, usecase.AuditFilterParams{AllOrganizations: true})
		require.NoError(t, err)
		assert.Nil(t, filter.Request().OrganizationID)
	})

	t.Run("org scope needs an organization", func(t *testing.T) {
		cfg := testConfig()
		cfg.OrganizationID = ""
		_, err := usecase.BuildAuditFilter(cfg, usecase.AuditFilterParams{})
		assert.ErrorIs(t, err, domain.ErrNoActiveOrganization)
	})
}

func TestListAuditEvents(t *testing.T) {
	ctx := context.Background()
	empty := &models.Page[models.AuditEvent]{Page: 1, PageSize: 25}

	t.Run("empty without filters", func(t *testing.T) {
		filter := domain.NewAuditFilterState("org-1", 25)
		audit := new(MockAuditClient)
		audit.On("ListAuditEvents", ctx, filter.Request()).Return(empty, nil)

		result, err := usecase.NewListAuditEvents(audit, usecase.NopProgress{}).Run(ctx, filter)

		require.NoError(t, err)
		assert.Equal(t, "No audit events found for this organization.", result.EmptyMessage)
	})

	t.Run("empty with filters", func(t *testing.T) {
		filter := domain.NewAuditFilterState("org-1", 25)
		filter.SetResourceTypes([]string{"Proposal"})
		audit := new(MockAuditClient)
		audit.On("ListAuditEvents", ctx, filter.Request()).Return(empty, nil)

		result, err := usecase.NewListAuditEvents(audit, usecase.NopProgress{}).Run(ctx, filter)

		require.NoError(t, err)
		assert.True(t, result.Filtered)
		assert.Equal(t, "No audit events found matching your filters.", result.EmptyMessage)
	})

	t.Run("sends normalized date bounds", func(t *testing.T) {
		filter := domain.NewAuditFilterState("org-1", 10)
		require.NoError(t, filter.SetDateFrom("2024-03-01"))
		require.NoError(t, filter.SetDateTo("2024-03-31"))

		audit := new(MockAuditClient)
		audit.On("ListAuditEvents", ctx, mock.MatchedBy(func(q domain.AuditEventQuery) bool {
			return q.DateFrom.Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)) &&
				q.DateTo.Equal(time.Date(2024, 3, 31, 23, 59, 59, 999_000_000, time.UTC)) &&
				q.ActionType == nil
		})).Return(&models.Page[models.AuditEvent]{
			Items: []models.AuditEvent{{ID: "evt-1"}},
			Page:  1, PageSize: 10, TotalCount: 1,
		}, nil)

		result, err := usecase.NewListAuditEvents(audit, usecase.NopProgress{}).Run(ctx, filter)

		require.NoError(t, err)
		assert.Empty(t, result.EmptyMessage)
		assert.Len(t, result.Page.Items, 1)
	})
}

func TestExportAuditEvents(t *testing.T) {
	ctx := context.Background()
	filter := domain.NewAuditFilterState("org-1", 25)

	t.Run("writes export to disk", func(t *testing.T) {
		content := []byte("id,timestamp\n")
		audit := new(MockAuditClient)
		audit.On("ExportAuditEvents", ctx, filter.Request(), usecase.ExportCSV).Return(content, nil)
		writer := new(MockFileWriter)
		writer.On("FileExists", ctx, "exports/audit.csv").Return(false, nil)
		writer.On("EnsureDirectory", ctx, "exports").Return(nil)
		writer.On("WriteFile", ctx, "exports/audit.csv", content).Return(nil)

		uc := usecase.NewExportAuditEvents(audit, writer, usecase.NopProgress{})
		result, err := uc.Run(ctx, usecase.ExportAuditEventsParams{
			Filter:     filter,
			Format:     usecase.ExportCSV,
			OutputPath: "exports/audit.csv",
		})

		require.NoError(t, err)
		assert.Equal(t, len(content), result.Bytes)
		writer.AssertExpectations(t)
	})

	t.Run("refuses to overwrite", func(t *testing.T) {
		writer := new(MockFileWriter)
		writer.On("FileExists", ctx, "audit.json").Return(true, nil)

		uc := usecase.NewExportAuditEvents(new(MockAuditClient), writer, usecase.NopProgress{})
		_, err := uc.Run(ctx, usecase.ExportAuditEventsParams{Filter: filter, Format: usecase.ExportJSON, OutputPath: "audit.json"})

		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("rejects unknown format", func(t *testing.T) {
		uc := usecase.NewExportAuditEvents(new(MockAuditClient), new(MockFileWriter), usecase.NopProgress{})
		_, err := uc.Run(ctx, usecase.ExportAuditEventsParams{Filter: filter, Format: "xml"})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestOutboundEvents(t *testing.T) {
	ctx := context.Background()

	t.Run("list with status filter", func(t *testing.T) {
		outbound := new(MockOutboundClient)
		outbound.On("ListOutboundEvents", ctx, mock.MatchedBy(func(q domain.OutboundEventQuery) bool {
			return q.Status != nil && *q.Status == "Failed" && *q.OrganizationID == "org-1"
		})).Return(&models.Page[models.OutboundEvent]{Page: 1, PageSize: 25}, nil)

		uc := usecase.NewListOutboundEvents(testConfig(), outbound)
		result, err := uc.Run(ctx, usecase.ListOutboundEventsParams{Status: "failed"})

		require.NoError(t, err)
		assert.Equal(t, "No outbound events found matching your filters.", result.EmptyMessage)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		uc := usecase.NewListOutboundEvents(testConfig(), new(MockOutboundClient))
		_, err := uc.Run(ctx, usecase.ListOutboundEventsParams{Status: "bounced"})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	newRetry := func(outbound *MockOutboundClient) *usecase.RetryOutboundEvent {
		return usecase.NewRetryOutboundEvent(outbound, usecase.NewListOutboundEvents(testConfig(), outbound), testLogger())
	}

	t.Run("retry reloads the delivery log", func(t *testing.T) {
		outbound := new(MockOutboundClient)
		outbound.On("RetryOutboundEvent", ctx, "evt-9").
			Return(&models.OutboundEvent{ID: "evt-9", OrganizationID: "org-7", Status: models.OutboundStatusPending}, nil)
		outbound.On("ListOutboundEvents", ctx, mock.MatchedBy(func(q domain.OutboundEventQuery) bool {
			return q.OrganizationID != nil && *q.OrganizationID == "org-7" && q.Page == 1 && q.Status == nil
		})).Return(&models.Page[models.OutboundEvent]{
			Items: []models.OutboundEvent{{ID: "evt-9", Status: models.OutboundStatusPending}},
			Page:  1, PageSize: 25, TotalCount: 1,
		}, nil)

		result, err := newRetry(outbound).Run(ctx, "evt-9")

		require.NoError(t, err)
		assert.Equal(t, models.OutboundStatusPending, result.Event.Status)
		require.NotNil(t, result.Events)
		assert.Len(t, result.Events.Page.Items, 1)
		assert.NoError(t, result.RefreshErr)
		outbound.AssertExpectations(t)
	})

	t.Run("failed reload keeps the retry", func(t *testing.T) {
		outbound := new(MockOutboundClient)
		outbound.On("RetryOutboundEvent", ctx, "evt-9").Return(&models.OutboundEvent{ID: "evt-9", Status: models.OutboundStatusPending}, nil)
		outbound.On("ListOutboundEvents", ctx, mock.Anything).
			Return(nil, &domain.APIError{StatusCode: 503, Method: "GET", Path: "/outbound-events"})

		result, err := newRetry(outbound).Run(ctx, "evt-9")

		require.NoError(t, err)
		assert.Equal(t, "Retry queued for event evt-9.", result.Message)
		assert.Nil(t, result.Events)
		assert.Error(t, result.RefreshErr)
	})

	t.Run("failed retry skips the reload", func(t *testing.T) {
		outbound := new(MockOutboundClient)
		outbound.On("RetryOutboundEvent", ctx, "evt-9").Return(nil, &domain.APIError{StatusCode: 404})

		_, err := newRetry(outbound).Run(ctx, "evt-9")

		assert.ErrorIs(t, err, domain.ErrNotFound)
		outbound.AssertNotCalled(t, "ListOutboundEvents", mock.Anything, mock.Anything)
	})
}
