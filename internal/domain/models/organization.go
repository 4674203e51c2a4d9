package models

import "time"

// Organization is a governed entity that owns share types and proposals
type Organization struct {
	ID          string    `json:"id" yaml:"id"`
	Name        string    `json:"name" yaml:"name"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt" yaml:"createdAt"`
}

// User is a platform account
type User struct {
	ID          string    `json:"id" yaml:"id"`
	Email       string    `json:"email" yaml:"email"`
	DisplayName string    `json:"displayName" yaml:"displayName"`
	IsAdmin     bool      `json:"isAdmin" yaml:"isAdmin"`
	CreatedAt   time.Time `json:"createdAt" yaml:"createdAt"`
}

// MembershipRole is a user's role inside an organization
type MembershipRole string

const (
	MembershipRoleAdmin  MembershipRole = "Admin"
	MembershipRoleMember MembershipRole = "Member"
)

// Membership links a user to an organization
type Membership struct {
	ID              string         `json:"id" yaml:"id"`
	OrganizationID  string         `json:"organizationId" yaml:"organizationId"`
	UserID          string         `json:"userId" yaml:"userId"`
	UserDisplayName string         `json:"userDisplayName,omitempty" yaml:"userDisplayName,omitempty"`
	Role            MembershipRole `json:"role" yaml:"role"`
	CreatedAt       time.Time      `json:"createdAt" yaml:"createdAt"`
}

// ShareType defines a class of shares and its voting weight
type ShareType struct {
	ID             string    `json:"id" yaml:"id"`
	OrganizationID string    `json:"organizationId" yaml:"organizationId"`
	Name           string    `json:"name" yaml:"name"`
	Symbol         string    `json:"symbol" yaml:"symbol"`
	VotingWeight   float64   `json:"votingWeight" yaml:"votingWeight"`
	IsTransferable bool      `json:"isTransferable" yaml:"isTransferable"`
	CreatedAt      time.Time `json:"createdAt" yaml:"createdAt"`
}

// NewShareType is the payload for creating a share type
type NewShareType struct {
	Name           string  `json:"name"`
	Symbol         string  `json:"symbol"`
	VotingWeight   float64 `json:"votingWeight"`
	IsTransferable bool    `json:"isTransferable"`
}

// ShareIssuance records shares issued to a user
type ShareIssuance struct {
	ID             string    `json:"id" yaml:"id"`
	OrganizationID string    `json:"organizationId" yaml:"organizationId"`
	ShareTypeID    string    `json:"shareTypeId" yaml:"shareTypeId"`
	UserID         string    `json:"userId" yaml:"userId"`
	Quantity       float64   `json:"quantity" yaml:"quantity"`
	IssuedAt       time.Time `json:"issuedAt" yaml:"issuedAt"`
	Notes          string    `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// NewShareIssuance is the payload for issuing shares
type NewShareIssuance struct {
	ShareTypeID string  `json:"shareTypeId"`
	UserID      string  `json:"userId"`
	Quantity    float64 `json:"quantity"`
	Notes       string  `json:"notes,omitempty"`
}
