package models

import "time"

// Actor identifies who performed an audited action
type Actor struct {
	UserID      string `json:"userId" yaml:"userId"`
	DisplayName string `json:"displayName,omitempty" yaml:"displayName,omitempty"`
}

// AuditEvent is a read-only record of an action taken on the platform
type AuditEvent struct {
	ID             string    `json:"id" yaml:"id"`
	Timestamp      time.Time `json:"timestamp" yaml:"timestamp"`
	OrganizationID string    `json:"organizationId,omitempty" yaml:"organizationId,omitempty"`
	Actor          Actor     `json:"actor" yaml:"actor"`
	ActionType     string    `json:"actionType" yaml:"actionType"`
	ResourceType   string    `json:"resourceType" yaml:"resourceType"`
	ResourceID     string    `json:"resourceId,omitempty" yaml:"resourceId,omitempty"`
	Outcome        string    `json:"outcome" yaml:"outcome"`
	Details        string    `json:"details,omitempty" yaml:"details,omitempty"`
}

// KnownAuditActionTypes are the action types offered by interactive filtering
var KnownAuditActionTypes = []string{
	"Create", "Update", "Delete", "Open", "Close", "Finalize", "Vote", "Issue", "Login",
}

// KnownAuditResourceTypes are the resource types offered by interactive filtering
var KnownAuditResourceTypes = []string{
	"Organization", "User", "Membership", "ShareType", "ShareIssuance", "Proposal", "ProposalOption", "Vote",
}

// OutboundStatus is the delivery status of an outbound webhook event
type OutboundStatus string

const (
	OutboundStatusPending   OutboundStatus = "Pending"
	OutboundStatusDelivered OutboundStatus = "Delivered"
	OutboundStatusFailed    OutboundStatus = "Failed"
)

// OutboundEvent records an attempted external notification delivery
type OutboundEvent struct {
	ID             string         `json:"id" yaml:"id"`
	OrganizationID string         `json:"organizationId,omitempty" yaml:"organizationId,omitempty"`
	EventType      string         `json:"eventType" yaml:"eventType"`
	Status         OutboundStatus `json:"status" yaml:"status"`
	TargetURL      string         `json:"targetUrl" yaml:"targetUrl"`
	AttemptCount   int            `json:"attemptCount" yaml:"attemptCount"`
	LastAttemptAt  *time.Time     `json:"lastAttemptAt,omitempty" yaml:"lastAttemptAt,omitempty"`
	LastError      string         `json:"lastError,omitempty" yaml:"lastError,omitempty"`
	CreatedAt      time.Time      `json:"createdAt" yaml:"createdAt"`
}

// CanRetry reports whether a manual retry makes sense for the event
func (e *OutboundEvent) CanRetry() bool {
	return e.Status == OutboundStatusFailed
}
