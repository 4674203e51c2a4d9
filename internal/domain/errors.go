package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/trebuchet-org/govctl/internal/domain/models"
)

// Sentinel errors for domain operations
var (
	// ErrNotFound is returned when a requested resource doesn't exist
	ErrNotFound = errors.New("not found")

	// ErrValidation is returned when input fails client-side validation
	ErrValidation = errors.New("validation failed")

	// ErrActionNotAllowed is returned when a proposal's status does not permit an action
	ErrActionNotAllowed = errors.New("action not allowed")

	// ErrNoActiveOrganization is returned when a command needs an organization and none is set
	ErrNoActiveOrganization = errors.New("no active organization (use --org or 'govctl org use <id>')")

	// ErrOptionNotFound is returned when an option does not belong to the proposal
	ErrOptionNotFound = errors.New("option not found on proposal")

	// ErrNotOpenForVoting is returned when a vote is attempted on a proposal that is not open
	ErrNotOpenForVoting = errors.New("proposal is not open for voting")

	// ErrCancelled is returned when the user declines a confirmation
	ErrCancelled = errors.New("cancelled")

	// ErrNonInteractive is returned when a prompt is needed but prompts are disabled
	ErrNonInteractive = errors.New("interactive selection not available in non-interactive mode")
)

// ActionNotAllowedErr describes a gated proposal action that was refused
type ActionNotAllowedErr struct {
	Action models.ProposalAction
	Status models.ProposalStatus
}

func (e ActionNotAllowedErr) Error() string {
	return fmt.Sprintf("cannot %s a proposal in status %s", e.Action, e.Status)
}

func (e ActionNotAllowedErr) Unwrap() error {
	return ErrActionNotAllowed
}

// ValidationErr lists the fields that failed validation
type ValidationErr struct {
	Fields []string
	Reason string
}

func (e ValidationErr) Error() string {
	if len(e.Fields) == 0 {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Reason, strings.Join(e.Fields, ", "))
}

func (e ValidationErr) Unwrap() error {
	return ErrValidation
}

// Required returns a ValidationErr for missing required fields
func Required(fields ...string) error {
	return ValidationErr{Fields: fields, Reason: "missing required field"}
}
