package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/trebuchet-org/govctl/internal/domain"
	"github.com/trebuchet-org/govctl/internal/domain/models"
	"github.com/trebuchet-org/govctl/internal/usecase"
)

// ListOrganizations returns a page of organizations
func (c *Client) ListOrganizations(ctx context.Context, query domain.ListQuery) (*models.Page[models.Organization], error) {
	var page models.Page[models.Organization]
	if err := c.getJSON(ctx, "/organizations", query.Values(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetOrganization returns a single organization
func (c *Client) GetOrganization(ctx context.Context, id string) (*models.Organization, error) {
	var org models.Organization
	if err := c.getJSON(ctx, "/organizations/"+segment(id), nil, &org); err != nil {
		return nil, err
	}
	return &org, nil
}

// ListMemberships returns the members of an organization
func (c *Client) ListMemberships(ctx context.Context, organizationID string) ([]models.Membership, error) {
	var memberships []models.Membership
	path := fmt.Sprintf("/organizations/%s/memberships", segment(organizationID))
	if err := c.getJSON(ctx, path, nil, &memberships); err != nil {
		return nil, err
	}
	return memberships, nil
}

// ListUsers returns a page of users
func (c *Client) ListUsers(ctx context.Context, query domain.ListQuery) (*models.Page[models.User], error) {
	var page models.Page[models.User]
	if err := c.getJSON(ctx, "/users", query.Values(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetUser returns a single user
func (c *Client) GetUser(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := c.getJSON(ctx, "/users/"+segment(id), nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ListShareTypes returns an organization's share types
func (c *Client) ListShareTypes(ctx context.Context, organizationID string) ([]models.ShareType, error) {
	var shareTypes []models.ShareType
	path := fmt.Sprintf("/organizations/%s/share-types", segment(organizationID))
	if err := c.getJSON(ctx, path, nil, &shareTypes); err != nil {
		return nil, err
	}
	return shareTypes, nil
}

// CreateShareType creates a share type in an organization
func (c *Client) CreateShareType(ctx context.Context, organizationID string, shareType models.NewShareType) (*models.ShareType, error) {
	var created models.ShareType
	path := fmt.Sprintf("/organizations/%s/share-types", segment(organizationID))
	if err := c.doJSON(ctx, http.MethodPost, path, nil, shareType, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// DeleteShareType deletes a share type
func (c *Client) DeleteShareType(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/share-types/"+segment(id), nil, nil, nil)
}

// ListShareIssuances returns an organization's share issuances
func (c *Client) ListShareIssuances(ctx context.Context, organizationID string) ([]models.ShareIssuance, error) {
	var issuances []models.ShareIssuance
	path := fmt.Sprintf("/organizations/%s/share-issuances", segment(organizationID))
	if err := c.getJSON(ctx, path, nil, &issuances); err != nil {
		return nil, err
	}
	return issuances, nil
}

// CreateShareIssuance issues shares to a user
func (c *Client) CreateShareIssuance(ctx context.Context, organizationID string, issuance models.NewShareIssuance) (*models.ShareIssuance, error) {
	var created models.ShareIssuance
	path := fmt.Sprintf("/organizations/%s/share-issuances", segment(organizationID))
	if err := c.doJSON(ctx, http.MethodPost, path, nil, issuance, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

var (
	_ usecase.OrganizationClient  = (*Client)(nil)
	_ usecase.UserClient          = (*Client)(nil)
	_ usecase.MembershipClient    = (*Client)(nil)
	_ usecase.ShareTypeClient     = (*Client)(nil)
	_ usecase.ShareIssuanceClient = (*Client)(nil)
)
