package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/trebuchet-org/govctl/internal/domain"
	"github.com/trebuchet-org/govctl/internal/domain/config"
	"github.com/trebuchet-org/govctl/internal/domain/models"
)

// ShareTypeListResult contains an organization's share types
type ShareTypeListResult struct {
	OrganizationID string
	ShareTypes     []models.ShareType
}

// ListShareTypes is the use case for listing share types
type ListShareTypes struct {
	config     *config.RuntimeConfig
	shareTypes ShareTypeClient
}

// NewListShareTypes creates a new ListShareTypes use case
func NewListShareTypes(cfg *config.RuntimeConfig, shareTypes ShareTypeClient) *ListShareTypes {
	return &ListShareTypes{
		config:     cfg,
		shareTypes: shareTypes,
	}
}

// Run executes the list share types use case
func (uc *ListShareTypes) Run(ctx context.Context, organizationID string) (*ShareTypeListResult, error) {
	orgID, err := resolveOrganization(uc.config, organizationID)
	if err != nil {
		return nil, err
	}
	shareTypes, err := uc.shareTypes.ListShareTypes(ctx, orgID)
	if err != nil {
		return nil, err
	}
	return &ShareTypeListResult{OrganizationID: orgID, ShareTypes: shareTypes}, nil
}

// CreateShareTypeParams contains parameters for creating a share type
type CreateShareTypeParams struct {
	OrganizationID string
	ShareType      models.NewShareType
}

// CreateShareType is the use case for creating a share type
type CreateShareType struct {
	config     *config.RuntimeConfig
	shareTypes ShareTypeClient
}

// NewCreateShareType creates a new CreateShareType use case
func NewCreateShareType(cfg *config.RuntimeConfig, shareTypes ShareTypeClient) *CreateShareType {
	return &CreateShareType{
		config:     cfg,
		shareTypes: shareTypes,
	}
}

// Run executes the create share type use case
func (uc *CreateShareType) Run(ctx context.Context, params CreateShareTypeParams) (*models.ShareType, error) {
	orgID, err := resolveOrganization(uc.config, params.OrganizationID)
	if err != nil {
		return nil, err
	}

	st := params.ShareType
	st.Name = strings.TrimSpace(st.Name)
	st.Symbol = strings.ToUpper(strings.TrimSpace(st.Symbol))

	var missing []string
	if st.Name == "" {
		missing = append(missing, "name")
	}
	if st.Symbol == "" {
		missing = append(missing, "symbol")
	}
	if len(missing) > 0 {
		return nil, domain.Required(missing...)
	}
	if st.VotingWeight < 0 {
		return nil, domain.ValidationErr{Fields: []string{"weight"}, Reason: "voting weight must not be negative"}
	}

	return uc.shareTypes.CreateShareType(ctx, orgID, st)
}

// DeleteShareTypeParams contains parameters for deleting a share type
type DeleteShareTypeParams struct {
	ShareTypeID string
	Confirmed   bool
}

// DeleteShareType is the use case for deleting a share type
type DeleteShareType struct {
	shareTypes ShareTypeClient
	selector   InteractiveSelector
}

// NewDeleteShareType creates a new DeleteShareType use case
func NewDeleteShareType(shareTypes ShareTypeClient, selector InteractiveSelector) *DeleteShareType {
	return &DeleteShareType{
		shareTypes: shareTypes,
		selector:   selector,
	}
}

// Run executes the delete share type use case
func (uc *DeleteShareType) Run(ctx context.Context, params DeleteShareTypeParams) error {
	if params.ShareTypeID == "" {
		return domain.Required("share type id")
	}
	if !params.Confirmed {
		ok, err := uc.selector.Confirm(ctx, fmt.Sprintf("Delete share type %s?", params.ShareTypeID))
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrCancelled
		}
	}
	return uc.shareTypes.DeleteShareType(ctx, params.ShareTypeID)
}

// ShareIssuanceListResult contains issuances with per-share-type totals
type ShareIssuanceListResult struct {
	OrganizationID string
	Issuances      []models.ShareIssuance
	TotalsByType   map[string]float64
}

// ListShareIssuances is the use case for listing share issuances
type ListShareIssuances struct {
	config    *config.RuntimeConfig
	issuances ShareIssuanceClient
}

// NewListShareIssuances creates a new ListShareIssuances use case
func NewListShareIssuances(cfg *config.RuntimeConfig, issuances ShareIssuanceClient) *ListShareIssuances {
	return &ListShareIssuances{
		config:    cfg,
		issuances: issuances,
	}
}

// Run executes the list share issuances use case
func (uc *ListShareIssuances) Run(ctx context.Context, organizationID string) (*ShareIssuanceListResult, error) {
	orgID, err := resolveOrganization(uc.config, organizationID)
	if err != nil {
		return nil, err
	}
	issuances, err := uc.issuances.ListShareIssuances(ctx, orgID)
	if err != nil {
		return nil, err
	}

	totals := lo.MapValues(
		lo.GroupBy(issuances, func(i models.ShareIssuance) string { return i.ShareTypeID }),
		func(group []models.ShareIssuance, _ string) float64 {
			return lo.SumBy(group, func(i models.ShareIssuance) float64 { return i.Quantity })
		},
	)

	return &ShareIssuanceListResult{
		OrganizationID: orgID,
		Issuances:      issuances,
		TotalsByType:   totals,
	}, nil
}

// CreateShareIssuanceParams contains parameters for issuing shares
type CreateShareIssuanceParams struct {
	OrganizationID string
	Issuance       models.NewShareIssuance
}

// CreateShareIssuance is the use case for issuing shares to a user
type CreateShareIssuance struct {
	config    *config.RuntimeConfig
	issuances ShareIssuanceClient
}

// NewCreateShareIssuance creates a new CreateShareIssuance use case
func NewCreateShareIssuance(cfg *config.RuntimeConfig, issuances ShareIssuanceClient) *CreateShareIssuance {
	return &CreateShareIssuance{
		config:    cfg,
		issuances: issuances,
	}
}

// Run executes the create share issuance use case
func (uc *CreateShareIssuance) Run(ctx context.Context, params CreateShareIssuanceParams) (*models.ShareIssuance, error) {
	orgID, err := resolveOrganization(uc.config, params.OrganizationID)
	if err != nil {
		return nil, err
	}

	issuance := params.Issuance
	var missing []string
	if issuance.ShareTypeID == "" {
		missing = append(missing, "share type")
	}
	if issuance.UserID == "" {
		missing = append(missing, "user")
	}
	if len(missing) > 0 {
		return nil, domain.Required(missing...)
	}
	if issuance.Quantity <= 0 {
		return nil, domain.ValidationErr{Fields: []string{"quantity"}, Reason: "quantity must be greater than zero"}
	}

	return uc.issuances.CreateShareIssuance(ctx, orgID, issuance)
}
