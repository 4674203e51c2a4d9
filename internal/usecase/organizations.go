package usecase

import (
	"context"
	"log/slog"

	"github.com/trebuchet-org/govctl/internal/domain"
	"github.com/trebuchet-org/govctl/internal/domain/config"
	"github.com/trebuchet-org/govctl/internal/domain/models"
	"golang.org/x/sync/errgroup"
)

// OrgLoadFailedMessage is shown when the organization itself cannot be loaded
const OrgLoadFailedMessage = "Failed to load organization information."

// ListOrganizationsParams contains parameters for listing organizations
type ListOrganizationsParams struct {
	Search   string
	Page     int
	PageSize int
}

// OrganizationListResult contains one page of organizations
type OrganizationListResult struct {
	Page     *models.Page[models.Organization]
	ActiveID string
}

// ListOrganizations is the use case for listing organizations
type ListOrganizations struct {
	config *config.RuntimeConfig
	orgs   OrganizationClient
}

// NewListOrganizations creates a new ListOrganizations use case
func NewListOrganizations(cfg *config.RuntimeConfig, orgs OrganizationClient) *ListOrganizations {
	return &ListOrganizations{
		config: cfg,
		orgs:   orgs,
	}
}

// Run executes the list organizations use case
func (uc *ListOrganizations) Run(ctx context.Context, params ListOrganizationsParams) (*OrganizationListResult, error) {
	pageSize := params.PageSize
	if pageSize <= 0 {
		pageSize = uc.config.PageSize
	}

	page, err := uc.orgs.ListOrganizations(ctx, domain.NewListQuery(params.Page, pageSize, params.Search))
	if err != nil {
		return nil, err
	}

	return &OrganizationListResult{
		Page:     page,
		ActiveID: uc.config.OrganizationID,
	}, nil
}

// OrganizationDetailResult contains everything the organization view renders
type OrganizationDetailResult struct {
	Organization *models.Organization
	Memberships  []models.Membership
	ShareTypes   []models.ShareType
	// Proposals is best-effort, nil when it could not be loaded
	Proposals []models.Proposal
	Active    bool
}

// ShowOrganization is the use case for the organization detail view
type ShowOrganization struct {
	config      *config.RuntimeConfig
	orgs        OrganizationClient
	memberships MembershipClient
	shareTypes  ShareTypeClient
	proposals   ProposalClient
	log         *slog.Logger
}

// NewShowOrganization creates a new ShowOrganization use case
func NewShowOrganization(
	cfg *config.RuntimeConfig,
	orgs OrganizationClient,
	memberships MembershipClient,
	shareTypes ShareTypeClient,
	proposals ProposalClient,
	log *slog.Logger,
) *ShowOrganization {
	return &ShowOrganization{
		config:      cfg,
		orgs:        orgs,
		memberships: memberships,
		shareTypes:  shareTypes,
		proposals:   proposals,
		log:         log,
	}
}

// Run loads the organization, its members and share types in parallel.
// Any required read failing fails the whole view.
func (uc *ShowOrganization) Run(ctx context.Context, organizationID string) (*OrganizationDetailResult, error) {
	orgID, err := resolveOrganization(uc.config, organizationID)
	if err != nil {
		return nil, err
	}

	result := &OrganizationDetailResult{Active: orgID == uc.config.OrganizationID}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		org, err := uc.orgs.GetOrganization(gctx, orgID)
		result.Organization = org
		return err
	})
	g.Go(func() error {
		members, err := uc.memberships.ListMemberships(gctx, orgID)
		result.Memberships = members
		return err
	})
	g.Go(func() error {
		shareTypes, err := uc.shareTypes.ListShareTypes(gctx, orgID)
		result.ShareTypes = shareTypes
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	proposals, err := uc.proposals.ListProposals(ctx, domain.ProposalFilter{OrganizationID: orgID})
	if err != nil {
		uc.log.Warn("failed to load organization proposals", "organization", orgID, "error", err)
	} else {
		result.Proposals = proposals
	}

	return result, nil
}

// UseOrganizationParams contains parameters for switching the active organization
type UseOrganizationParams struct {
	OrganizationID string
}

// UseOrganizationResult contains the newly active organization
type UseOrganizationResult struct {
	Organization *models.Organization
	PreviousID   string
	ConfigPath   string
}

// UseOrganization is the use case for setting the active organization
type UseOrganization struct {
	config   *config.RuntimeConfig
	orgs     OrganizationClient
	repo     LocalConfigRepository
	selector InteractiveSelector
}

// NewUseOrganization creates a new UseOrganization use case
func NewUseOrganization(
	cfg *config.RuntimeConfig,
	orgs OrganizationClient,
	repo LocalConfigRepository,
	selector InteractiveSelector,
) *UseOrganization {
	return &UseOrganization{
		config:   cfg,
		orgs:     orgs,
		repo:     repo,
		selector: selector,
	}
}

// Run verifies the organization exists and records it as active
func (uc *UseOrganization) Run(ctx context.Context, params UseOrganizationParams) (*UseOrganizationResult, error) {
	org, err := uc.resolve(ctx, params.OrganizationID)
	if err != nil {
		return nil, err
	}

	local, err := uc.repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	previous := local.Organization
	local.Organization = org.ID
	if err := uc.repo.Save(ctx, local); err != nil {
		return nil, err
	}

	return &UseOrganizationResult{
		Organization: org,
		PreviousID:   previous,
		ConfigPath:   uc.repo.GetPath(),
	}, nil
}

func (uc *UseOrganization) resolve(ctx context.Context, id string) (*models.Organization, error) {
	if id != "" {
		return uc.orgs.GetOrganization(ctx, id)
	}
	if uc.config.NonInteractive {
		return nil, domain.Required("organization id")
	}

	page, err := uc.orgs.ListOrganizations(ctx, domain.NewListQuery(1, 100, ""))
	if err != nil {
		return nil, err
	}
	if len(page.Items) == 0 {
		return nil, domain.ValidationErr{Reason: "no organizations available"}
	}
	return uc.selector.SelectOrganization(ctx, page.Items, "Select the active organization")
}
