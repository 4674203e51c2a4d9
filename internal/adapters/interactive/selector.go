package interactive

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
	"github.com/sahilm/fuzzy"
	"github.com/trebuchet-org/govctl/internal/domain"
	"github.com/trebuchet-org/govctl/internal/domain/config"
	"github.com/trebuchet-org/govctl/internal/domain/models"
	"github.com/trebuchet-org/govctl/internal/usecase"
)

// ErrNonInteractive is returned when a prompt is needed but prompts are disabled
var ErrNonInteractive = domain.ErrNonInteractive

// SelectorAdapter handles interactive selection
type SelectorAdapter struct {
	config *config.RuntimeConfig
}

// NewSelectorAdapter creates a new selector adapter
func NewSelectorAdapter(cfg *config.RuntimeConfig) *SelectorAdapter {
	return &SelectorAdapter{config: cfg}
}

// SelectOption asks the user to pick one of a proposal's options
func (s *SelectorAdapter) SelectOption(ctx context.Context, options []models.ProposalOption, prompt string) (*models.ProposalOption, error) {
	if s.config.NonInteractive {
		return nil, ErrNonInteractive
	}
	if len(options) == 0 {
		return nil, fmt.Errorf("no options provided for selection")
	}

	index, err := s.selectIndex(prompt, formatProposalOptions(options))
	if err != nil {
		return nil, err
	}
	return &options[index], nil
}

// SelectOrganization asks the user to pick an organization
func (s *SelectorAdapter) SelectOrganization(ctx context.Context, organizations []models.Organization, prompt string) (*models.Organization, error) {
	if s.config.NonInteractive {
		return nil, ErrNonInteractive
	}
	if len(organizations) == 0 {
		return nil, fmt.Errorf("no organizations provided for selection")
	}
	if len(organizations) == 1 {
		return &organizations[0], nil
	}

	index, err := s.selectIndex(prompt, formatOrganizations(organizations, s.config.OrganizationID))
	if err != nil {
		return nil, err
	}
	return &organizations[index], nil
}

// Confirm asks a yes/no question. Non-interactive runs never confirm.
func (s *SelectorAdapter) Confirm(ctx context.Context, prompt string) (bool, error) {
	if s.config.NonInteractive {
		return false, fmt.Errorf("%w: pass --yes to confirm", ErrNonInteractive)
	}

	confirm := promptui.Prompt{
		Label:     prompt,
		IsConfirm: true,
	}
	if _, err := confirm.Run(); err != nil {
		if errors.Is(err, promptui.ErrAbort) {
			return false, nil
		}
		if errors.Is(err, promptui.ErrInterrupt) {
			return false, domain.ErrCancelled
		}
		return false, err
	}
	return true, nil
}

func (s *SelectorAdapter) selectIndex(prompt string, items []string) (int, error) {
	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}",
		Active:   "▸ {{ . | cyan }}",
		Inactive: "  {{ . | faint }}",
		Selected: "✓ {{ . | green }}",
		Help:     color.New(color.FgYellow).Sprint("Use arrow keys to navigate, / to search, Enter to select"),
	}

	promptSelect := promptui.Select{
		Label:     prompt,
		Items:     items,
		Templates: templates,
		Size:      10,
		Searcher:  fuzzySearcher(items),
	}

	index, _, err := promptSelect.Run()
	if err != nil {
		return 0, fmt.Errorf("selection cancelled: %w", domain.ErrCancelled)
	}
	return index, nil
}

func formatProposalOptions(options []models.ProposalOption) []string {
	items := make([]string, len(options))
	for i, opt := range options {
		text := color.New(color.FgWhite, color.Bold).Sprint(opt.Text)
		if opt.Description != "" {
			items[i] = fmt.Sprintf("%s %s", text, color.New(color.Faint).Sprintf("- %s", opt.Description))
		} else {
			items[i] = text
		}
	}
	return items
}

func formatOrganizations(organizations []models.Organization, activeID string) []string {
	items := make([]string, len(organizations))
	for i, org := range organizations {
		item := fmt.Sprintf("%s (%s)", color.New(color.FgWhite, color.Bold).Sprint(org.Name), color.New(color.FgBlue).Sprint(org.ID))
		if org.ID == activeID {
			item += color.New(color.FgGreen).Sprint(" [active]")
		}
		items[i] = item
	}
	return items
}

// fuzzySearcher matches by substring first, then by fuzzy subsequence
func fuzzySearcher(items []string) func(input string, index int) bool {
	return func(input string, index int) bool {
		if input == "" {
			return true
		}

		input = strings.ToLower(input)
		item := strings.ToLower(items[index])
		if strings.Contains(item, input) {
			return true
		}

		return len(fuzzy.Find(input, []string{item})) > 0
	}
}

var _ usecase.InteractiveSelector = (*SelectorAdapter)(nil)
