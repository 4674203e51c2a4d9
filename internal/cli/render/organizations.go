package render

import (
	"fmt"
	"io"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/lo"
	"github.com/trebuchet-org/govctl/internal/domain/models"
	"github.com/trebuchet-org/govctl/internal/usecase"
)

// OrganizationRenderer renders organizations, users, memberships and shares
type OrganizationRenderer struct {
	out io.Writer
}

// NewOrganizationRenderer creates a new organization renderer
func NewOrganizationRenderer(out io.Writer) *OrganizationRenderer {
	return &OrganizationRenderer{out: out}
}

// RenderList renders a page of organizations, marking the active one
func (r *OrganizationRenderer) RenderList(result *usecase.OrganizationListResult) error {
	if len(result.Page.Items) == 0 {
		fmt.Fprintln(r.out, "No organizations found.")
		return nil
	}

	rows := lo.Map(result.Page.Items, func(o models.Organization, _ int) table.Row {
		name := o.Name
		if o.ID == result.ActiveID {
			name = winnerStyle.Sprintf("%s *", o.Name)
		}
		return table.Row{idStyle.Sprint(o.ID), name, orEmpty(o.Description), formatTime(o.CreatedAt)}
	})
	writeTable(r.out, table.Row{"ID", "Name", "Description", "Created"}, rows)
	writePageFooter(r.out, result.Page)
	return nil
}

// RenderDetail renders an organization with its members, share types and proposals
func (r *OrganizationRenderer) RenderDetail(result *usecase.OrganizationDetailResult) error {
	org := result.Organization
	title := org.Name
	if result.Active {
		title += " " + hintStyle.Sprint("(active)")
	}
	fmt.Fprintln(r.out, headerStyle.Sprint(title))
	writeField(r.out, "ID", idStyle.Sprint(org.ID))
	if org.Description != "" {
		writeField(r.out, "Description", org.Description)
	}
	writeField(r.out, "Created", formatTime(org.CreatedAt))

	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, headerStyle.Sprintf("Members (%d)", len(result.Memberships)))
	r.renderMemberships(result.Memberships)

	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, headerStyle.Sprintf("Share types (%d)", len(result.ShareTypes)))
	r.renderShareTypes(result.ShareTypes)

	if result.Proposals != nil {
		fmt.Fprintln(r.out)
		fmt.Fprintln(r.out, headerStyle.Sprintf("Proposals (%d)", len(result.Proposals)))
		if len(result.Proposals) == 0 {
			fmt.Fprintln(r.out, "No proposals found for this organization.")
		}
		for _, p := range result.Proposals {
			fmt.Fprintf(r.out, "  • %s %s %s\n", p.Title, StatusBadge(p.Status), idStyle.Sprintf("(%s)", p.ID))
		}
	}
	return nil
}

// RenderUse renders a change of active organization
func (r *OrganizationRenderer) RenderUse(result *usecase.UseOrganizationResult) error {
	fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Active organization set to %s (%s)", result.Organization.Name, result.Organization.ID)))
	if result.PreviousID != "" && result.PreviousID != result.Organization.ID {
		writeField(r.out, "Previous", result.PreviousID)
	}
	fmt.Fprintf(r.out, "📁 config saved to: %s\n", getRelativePath(result.ConfigPath))
	return nil
}

// RenderUsers renders a page of users
func (r *OrganizationRenderer) RenderUsers(page *models.Page[models.User]) error {
	if len(page.Items) == 0 {
		fmt.Fprintln(r.out, "No users found.")
		return nil
	}

	rows := lo.Map(page.Items, func(u models.User, _ int) table.Row {
		return table.Row{idStyle.Sprint(u.ID), u.DisplayName, u.Email, yesNo(u.IsAdmin), formatTime(u.CreatedAt)}
	})
	writeTable(r.out, table.Row{"ID", "Name", "Email", "Admin", "Created"}, rows)
	writePageFooter(r.out, page)
	return nil
}

// RenderUser renders a single user
func (r *OrganizationRenderer) RenderUser(user *models.User) error {
	fmt.Fprintln(r.out, headerStyle.Sprint(user.DisplayName))
	writeField(r.out, "ID", idStyle.Sprint(user.ID))
	writeField(r.out, "Email", user.Email)
	writeField(r.out, "Admin", yesNo(user.IsAdmin))
	writeField(r.out, "Created", formatTime(user.CreatedAt))
	return nil
}

// RenderMemberships renders the members of an organization
func (r *OrganizationRenderer) RenderMemberships(result *usecase.MembershipListResult) error {
	r.renderMemberships(result.Memberships)
	if len(result.Memberships) > 0 {
		fmt.Fprintln(r.out)
		fmt.Fprintln(r.out, hintStyle.Sprintf("%d members, %d admins", len(result.Memberships), result.Admins))
	}
	return nil
}

func (r *OrganizationRenderer) renderMemberships(memberships []models.Membership) {
	if len(memberships) == 0 {
		fmt.Fprintln(r.out, "No members found for this organization.")
		return
	}
	rows := lo.Map(memberships, func(m models.Membership, _ int) table.Row {
		return table.Row{idStyle.Sprint(m.UserID), orEmpty(m.UserDisplayName), m.Role, formatTime(m.CreatedAt)}
	})
	writeTable(r.out, table.Row{"User", "Name", "Role", "Joined"}, rows)
}

// RenderShareTypes renders the share types of an organization
func (r *OrganizationRenderer) RenderShareTypes(result *usecase.ShareTypeListResult) error {
	r.renderShareTypes(result.ShareTypes)
	return nil
}

func (r *OrganizationRenderer) renderShareTypes(shareTypes []models.ShareType) {
	if len(shareTypes) == 0 {
		fmt.Fprintln(r.out, "No share types found for this organization.")
		return
	}
	rows := lo.Map(shareTypes, func(s models.ShareType, _ int) table.Row {
		return table.Row{idStyle.Sprint(s.ID), s.Name, s.Symbol, formatAmount(s.VotingWeight), yesNo(s.IsTransferable)}
	})
	writeTable(r.out, table.Row{"ID", "Name", "Symbol", "Weight", "Transferable"}, rows)
}

// RenderShareTypeCreated renders a created share type
func (r *OrganizationRenderer) RenderShareTypeCreated(shareType *models.ShareType) error {
	fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Share type %s (%s) created.", shareType.Name, shareType.Symbol)))
	writeField(r.out, "ID", idStyle.Sprint(shareType.ID))
	writeField(r.out, "Weight", formatAmount(shareType.VotingWeight))
	return nil
}

// RenderShareTypeDeleted renders a deleted share type
func (r *OrganizationRenderer) RenderShareTypeDeleted(shareTypeID string) error {
	fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Share type %s deleted.", shareTypeID)))
	return nil
}

// RenderIssuances renders share issuances followed by totals per share type
func (r *OrganizationRenderer) RenderIssuances(result *usecase.ShareIssuanceListResult) error {
	if len(result.Issuances) == 0 {
		fmt.Fprintln(r.out, "No share issuances found for this organization.")
		return nil
	}

	rows := lo.Map(result.Issuances, func(i models.ShareIssuance, _ int) table.Row {
		return table.Row{idStyle.Sprint(i.ID), i.ShareTypeID, i.UserID, formatAmount(i.Quantity), formatTime(i.IssuedAt), orEmpty(i.Notes)}
	})
	writeTable(r.out, table.Row{"ID", "Share Type", "User", "Quantity", "Issued", "Notes"}, rows)

	typeIDs := lo.Keys(result.TotalsByType)
	sort.Strings(typeIDs)
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, headerStyle.Sprint("Totals"))
	for _, id := range typeIDs {
		fmt.Fprintf(r.out, "  %s %s\n", labelStyle.Sprintf("%-14s", id), formatAmount(result.TotalsByType[id]))
	}
	return nil
}

// RenderIssuanceCreated renders a created issuance
func (r *OrganizationRenderer) RenderIssuanceCreated(issuance *models.ShareIssuance) error {
	fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Issued %s shares of %s to %s.", formatAmount(issuance.Quantity), issuance.ShareTypeID, issuance.UserID)))
	return nil
}
