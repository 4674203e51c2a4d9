package domain

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/trebuchet-org/govctl/internal/domain/models"
)

// DateLayout is the accepted layout for date filter input
const DateLayout = "2006-01-02"

// timestampLayout is the wire format for normalized date bounds
const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

// DefaultPageSize is used when no page size is configured
const DefaultPageSize = 25

// Pagination is a page/page-size pair
type Pagination struct {
	Page     int
	PageSize int
}

func (p *Pagination) normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = DefaultPageSize
	}
}

func (p Pagination) values(v url.Values) {
	v.Set("page", strconv.Itoa(p.Page))
	v.Set("pageSize", strconv.Itoa(p.PageSize))
}

// ListQuery is a paginated, searchable list request
type ListQuery struct {
	Pagination
	Search string
}

// NewListQuery builds a normalized list query
func NewListQuery(page, pageSize int, search string) ListQuery {
	q := ListQuery{Pagination: Pagination{Page: page, PageSize: pageSize}, Search: strings.TrimSpace(search)}
	q.normalize()
	return q
}

// Values renders the query string parameters
func (q ListQuery) Values() url.Values {
	v := url.Values{}
	q.Pagination.values(v)
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	return v
}

// ProposalFilter narrows the proposals listed for an organization
type ProposalFilter struct {
	OrganizationID string
	Status         models.ProposalStatus
}

// Values renders the query string parameters
func (f ProposalFilter) Values() url.Values {
	v := url.Values{}
	if f.Status != "" {
		v.Set("status", string(f.Status))
	}
	return v
}

// AuditFilterState holds the audit list filter dimensions. Every change to a
// dimension moves the list back to page 1.
type AuditFilterState struct {
	pagination       Pagination
	organizationID   string
	allOrganizations bool
	dateFrom         string
	dateTo           string
	actionTypes      []string
	resourceTypes    []string
}

// NewAuditFilterState creates filter state for an organization's audit log
func NewAuditFilterState(organizationID string, pageSize int) *AuditFilterState {
	s := &AuditFilterState{
		organizationID: organizationID,
		pagination:     Pagination{Page: 1, PageSize: pageSize},
	}
	s.pagination.normalize()
	return s
}

// Page returns the current page
func (s *AuditFilterState) Page() int { return s.pagination.Page }

// PageSize returns the current page size
func (s *AuditFilterState) PageSize() int { return s.pagination.PageSize }

// OrganizationID returns the organization dimension
func (s *AuditFilterState) OrganizationID() string { return s.organizationID }

// AllOrganizations reports whether the cross-organization view is selected
func (s *AuditFilterState) AllOrganizations() bool { return s.allOrganizations }

// SetPage moves to a page without touching the filters
func (s *AuditFilterState) SetPage(page int) {
	s.pagination.Page = page
	s.pagination.normalize()
}

// SetPageSize changes the page size and resets to page 1
func (s *AuditFilterState) SetPageSize(size int) {
	s.pagination.PageSize = size
	s.resetPage()
}

// SetOrganization changes the organization dimension
func (s *AuditFilterState) SetOrganization(organizationID string) {
	s.organizationID = strings.TrimSpace(organizationID)
	s.resetPage()
}

// SetAllOrganizations switches between org-scoped and cross-organization views
func (s *AuditFilterState) SetAllOrganizations(all bool) {
	s.allOrganizations = all
	s.resetPage()
}

// SetDateFrom sets the lower date bound (YYYY-MM-DD, empty clears it)
func (s *AuditFilterState) SetDateFrom(date string) error {
	date = strings.TrimSpace(date)
	if err := validateDate(date); err != nil {
		return err
	}
	s.dateFrom = date
	s.resetPage()
	return nil
}

// SetDateTo sets the upper date bound (YYYY-MM-DD, empty clears it)
func (s *AuditFilterState) SetDateTo(date string) error {
	date = strings.TrimSpace(date)
	if err := validateDate(date); err != nil {
		return err
	}
	s.dateTo = date
	s.resetPage()
	return nil
}

// SetActionTypes replaces the action-type multi-select
func (s *AuditFilterState) SetActionTypes(types []string) {
	s.actionTypes = cleanSelection(types)
	s.resetPage()
}

// SetResourceTypes replaces the resource-type multi-select
func (s *AuditFilterState) SetResourceTypes(types []string) {
	s.resourceTypes = cleanSelection(types)
	s.resetPage()
}

// ClearFilters drops every filter dimension except the organization
func (s *AuditFilterState) ClearFilters() {
	s.dateFrom, s.dateTo = "", ""
	s.actionTypes, s.resourceTypes = nil, nil
	s.resetPage()
}

// HasActiveFilters reports whether any narrowing filter is set
func (s *AuditFilterState) HasActiveFilters() bool {
	return s.dateFrom != "" || s.dateTo != "" || len(s.actionTypes) > 0 || len(s.resourceTypes) > 0
}

// Request serializes the state into a request. Empty dimensions stay nil.
func (s *AuditFilterState) Request() AuditEventQuery {
	q := AuditEventQuery{
		Pagination:       s.pagination,
		AllOrganizations: s.allOrganizations,
		OrganizationID:   optional(s.organizationID),
		ActionType:       optional(strings.Join(s.actionTypes, ",")),
		ResourceType:     optional(strings.Join(s.resourceTypes, ",")),
	}
	if s.allOrganizations {
		q.OrganizationID = nil
	}
	if s.dateFrom != "" {
		from := StartOfDayUTC(mustParseDate(s.dateFrom))
		q.DateFrom = &from
	}
	if s.dateTo != "" {
		to := EndOfDayUTC(mustParseDate(s.dateTo))
		q.DateTo = &to
	}
	return q
}

func (s *AuditFilterState) resetPage() {
	s.pagination.Page = 1
	s.pagination.normalize()
}

// AuditEventQuery is the request shape for audit event lists and exports
type AuditEventQuery struct {
	Pagination
	AllOrganizations bool
	OrganizationID   *string
	DateFrom         *time.Time
	DateTo           *time.Time
	ActionType       *string
	ResourceType     *string
}

// Values renders the query string parameters, omitting nil dimensions
func (q AuditEventQuery) Values() url.Values {
	v := url.Values{}
	q.Pagination.values(v)
	setOptional(v, "organizationId", q.OrganizationID)
	setOptional(v, "actionType", q.ActionType)
	setOptional(v, "resourceType", q.ResourceType)
	if q.DateFrom != nil {
		v.Set("dateFrom", q.DateFrom.UTC().Format(timestampLayout))
	}
	if q.DateTo != nil {
		v.Set("dateTo", q.DateTo.UTC().Format(timestampLayout))
	}
	return v
}

// OutboundFilterState holds the outbound event list filter dimensions
type OutboundFilterState struct {
	pagination     Pagination
	organizationID string
	status         models.OutboundStatus
	eventType      string
}

// NewOutboundFilterState creates filter state for an organization's outbound events
func NewOutboundFilterState(organizationID string, pageSize int) *OutboundFilterState {
	s := &OutboundFilterState{
		organizationID: organizationID,
		pagination:     Pagination{Page: 1, PageSize: pageSize},
	}
	s.pagination.normalize()
	return s
}

// Page returns the current page
func (s *OutboundFilterState) Page() int { return s.pagination.Page }

// SetPage moves to a page without touching the filters
func (s *OutboundFilterState) SetPage(page int) {
	s.pagination.Page = page
	s.pagination.normalize()
}

// SetPageSize changes the page size and resets to page 1
func (s *OutboundFilterState) SetPageSize(size int) {
	s.pagination.PageSize = size
	s.resetPage()
}

// SetOrganization changes the organization dimension
func (s *OutboundFilterState) SetOrganization(organizationID string) {
	s.organizationID = strings.TrimSpace(organizationID)
	s.resetPage()
}

// SetStatus sets the status filter (empty clears it)
func (s *OutboundFilterState) SetStatus(status string) error {
	status = strings.TrimSpace(status)
	if status == "" {
		s.status = ""
		s.resetPage()
		return nil
	}
	for _, known := range []models.OutboundStatus{models.OutboundStatusPending, models.OutboundStatusDelivered, models.OutboundStatusFailed} {
		if strings.EqualFold(string(known), status) {
			s.status = known
			s.resetPage()
			return nil
		}
	}
	return ValidationErr{Fields: []string{"status"}, Reason: fmt.Sprintf("unknown outbound status %q (valid: Pending, Delivered, Failed)", status)}
}

// SetEventType sets the free-text event type filter
func (s *OutboundFilterState) SetEventType(eventType string) {
	s.eventType = strings.TrimSpace(eventType)
	s.resetPage()
}

// HasActiveFilters reports whether any narrowing filter is set
func (s *OutboundFilterState) HasActiveFilters() bool {
	return s.status != "" || s.eventType != ""
}

// Request serializes the state into a request. Empty dimensions stay nil.
func (s *OutboundFilterState) Request() OutboundEventQuery {
	return OutboundEventQuery{
		Pagination:     s.pagination,
		OrganizationID: optional(s.organizationID),
		Status:         optional(string(s.status)),
		EventType:      optional(s.eventType),
	}
}

func (s *OutboundFilterState) resetPage() {
	s.pagination.Page = 1
	s.pagination.normalize()
}

// OutboundEventQuery is the request shape for outbound event lists
type OutboundEventQuery struct {
	Pagination
	OrganizationID *string
	Status         *string
	EventType      *string
}

// Values renders the query string parameters, omitting nil dimensions
func (q OutboundEventQuery) Values() url.Values {
	v := url.Values{}
	q.Pagination.values(v)
	setOptional(v, "organizationId", q.OrganizationID)
	setOptional(v, "status", q.Status)
	setOptional(v, "eventType", q.EventType)
	return v
}

// StartOfDayUTC returns 00:00:00.000 UTC of the given calendar day
func StartOfDayUTC(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// EndOfDayUTC returns 23:59:59.999 UTC of the given calendar day
func EndOfDayUTC(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), time.UTC)
}

func validateDate(date string) error {
	if date == "" {
		return nil
	}
	if _, err := time.Parse(DateLayout, date); err != nil {
		return ValidationErr{Fields: []string{date}, Reason: "invalid date, expected YYYY-MM-DD"}
	}
	return nil
}

func mustParseDate(date string) time.Time {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		panic(fmt.Sprintf("date %q was not validated: %v", date, err))
	}
	return t
}

func cleanSelection(values []string) []string {
	out := lo.Uniq(lo.FilterMap(values, func(v string, _ int) (string, bool) {
		v = strings.TrimSpace(v)
		return v, v != ""
	}))
	if len(out) == 0 {
		return nil
	}
	return out
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func setOptional(v url.Values, key string, value *string) {
	if value != nil {
		v.Set(key, *value)
	}
}
