package usecase

import (
	"context"

	"github.com/trebuchet-org/govctl/internal/domain"
	"github.com/trebuchet-org/govctl/internal/domain/config"
	"github.com/trebuchet-org/govctl/internal/domain/models"
)

// ListUsersParams contains parameters for listing users
type ListUsersParams struct {
	Search   string
	Page     int
	PageSize int
}

// ListUsers is the use case for listing platform users
type ListUsers struct {
	config *config.RuntimeConfig
	users  UserClient
}

// NewListUsers creates a new ListUsers use case
func NewListUsers(cfg *config.RuntimeConfig, users UserClient) *ListUsers {
	return &ListUsers{
		config: cfg,
		users:  users,
	}
}

// Run executes the list users use case
func (uc *ListUsers) Run(ctx context.Context, params ListUsersParams) (*models.Page[models.User], error) {
	pageSize := params.PageSize
	if pageSize <= 0 {
		pageSize = uc.config.PageSize
	}
	return uc.users.ListUsers(ctx, domain.NewListQuery(params.Page, pageSize, params.Search))
}

// ShowUser is the use case for showing a single user
type ShowUser struct {
	users UserClient
}

// NewShowUser creates a new ShowUser use case
func NewShowUser(users UserClient) *ShowUser {
	return &ShowUser{users: users}
}

// Run executes the show user use case
func (uc *ShowUser) Run(ctx context.Context, userID string) (*models.User, error) {
	if userID == "" {
		return nil, domain.Required("user id")
	}
	return uc.users.GetUser(ctx, userID)
}

// MembershipListResult contains an organization's members
type MembershipListResult struct {
	OrganizationID string
	Memberships    []models.Membership
	Admins         int
}

// ListMemberships is the use case for listing an organization's members
type ListMemberships struct {
	config      *config.RuntimeConfig
	memberships MembershipClient
}

// NewListMemberships creates a new ListMemberships use case
func NewListMemberships(cfg *config.RuntimeConfig, memberships MembershipClient) *ListMemberships {
	return &ListMemberships{
		config:      cfg,
		memberships: memberships,
	}
}

// Run executes the list memberships use case
func (uc *ListMemberships) Run(ctx context.Context, organizationID string) (*MembershipListResult, error) {
	orgID, err := resolveOrganization(uc.config, organizationID)
	if err != nil {
		return nil, err
	}

	memberships, err := uc.memberships.ListMemberships(ctx, orgID)
	if err != nil {
		return nil, err
	}

	result := &MembershipListResult{
		OrganizationID: orgID,
		Memberships:    memberships,
	}
	for _, m := range memberships {
		if m.Role == models.MembershipRoleAdmin {
			result.Admins++
		}
	}
	return result, nil
}
