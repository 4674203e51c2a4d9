package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/govctl/internal/cli/render"
	"github.com/trebuchet-org/govctl/internal/domain"
)

// retryHint follows failed initial loads; users retry by re-running the command
const retryHint = "Run the command again to retry."

// commandError carries the display message for a failed command while keeping the cause
type commandError struct {
	message string
	hint    string
	cause   error
}

func (e *commandError) Error() string {
	if e.hint == "" {
		return e.message
	}
	return e.message + "\n" + e.hint
}

func (e *commandError) Unwrap() error {
	return e.cause
}

// loadFailed reports a failed initial read. Input errors get no retry hint.
func loadFailed(err error, fallback string) error {
	if err == nil {
		return nil
	}
	ce := &commandError{message: domain.ParseError(err, fallback), cause: err}
	if !domain.IsClientError(err) {
		ce.hint = retryHint
	}
	return ce
}

// actionFailed reports a failed mutation
func actionFailed(err error, fallback string) error {
	if err == nil {
		return nil
	}
	return &commandError{message: domain.ParseError(err, fallback), cause: err}
}

// warnRefreshFailed reports a failed reload after a successful mutation
func warnRefreshFailed(cmd *cobra.Command, what string, err error) {
	msg := domain.ParseError(err, fmt.Sprintf("Failed to load %s.", what))
	fmt.Fprintln(cmd.ErrOrStderr(), render.FormatWarning(fmt.Sprintf("Could not refresh %s: %s", what, msg)))
}
