package usecase

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/trebuchet-org/govctl/internal/domain"
)

// ExportAuditEventsParams contains parameters for an audit export
type ExportAuditEventsParams struct {
	Filter *domain.AuditFilterState
	Format ExportFormat
	// OutputPath defaults to audit-<date>.<format> in the working directory
	OutputPath string
	Overwrite  bool
}

// ExportAuditEventsResult describes the written export
type ExportAuditEventsResult struct {
	Path   string
	Format ExportFormat
	Bytes  int
}

// ExportAuditEvents is the use case for exporting the filtered audit log
type ExportAuditEvents struct {
	audit  AuditClient
	writer FileWriter
	sink   ProgressSink
	now    func() time.Time
}

// NewExportAuditEvents creates a new ExportAuditEvents use case
func NewExportAuditEvents(audit AuditClient, writer FileWriter, sink ProgressSink) *ExportAuditEvents {
	return &ExportAuditEvents{
		audit:  audit,
		writer: writer,
		sink:   sink,
		now:    time.Now,
	}
}

// Run executes the export
func (uc *ExportAuditEvents) Run(ctx context.Context, params ExportAuditEventsParams) (*ExportAuditEventsResult, error) {
	switch params.Format {
	case ExportCSV, ExportJSON:
	default:
		return nil, domain.ValidationErr{
			Fields: []string{"format"},
			Reason: fmt.Sprintf("unsupported export format %q (valid: csv, json)", params.Format),
		}
	}
	if !params.Filter.AllOrganizations() && params.Filter.OrganizationID() == "" {
		return nil, domain.ErrNoActiveOrganization
	}

	path := params.OutputPath
	if path == "" {
		path = fmt.Sprintf("audit-%s.%s", uc.now().UTC().Format(domain.DateLayout), params.Format)
	}

	if !params.Overwrite {
		exists, err := uc.writer.FileExists(ctx, path)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, domain.ValidationErr{
				Fields: []string{"file"},
				Reason: fmt.Sprintf("%s already exists (use --force to overwrite)", path),
			}
		}
	}

	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   "export",
		Message: "Exporting audit events",
		Spinner: true,
	})
	defer uc.sink.OnProgress(ctx, ProgressEvent{Stage: "complete"})

	content, err := uc.audit.ExportAuditEvents(ctx, params.Filter.Request(), params.Format)
	if err != nil {
		return nil, err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := uc.writer.EnsureDirectory(ctx, dir); err != nil {
			return nil, err
		}
	}
	if err := uc.writer.WriteFile(ctx, path, content); err != nil {
		return nil, err
	}

	return &ExportAuditEventsResult{
		Path:   path,
		Format: params.Format,
		Bytes:  len(content),
	}, nil
}
