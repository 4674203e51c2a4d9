package render

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/trebuchet-org/govctl/internal/domain/models"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	dateTimeLayout = "2006-01-02 15:04"
	emptyCell      = "-"
)

var (
	headerStyle    = color.New(color.Bold, color.FgHiWhite)
	labelStyle     = color.New(color.Faint)
	idStyle        = color.New(color.FgCyan)
	timestampStyle = color.New(color.Faint)
	hintStyle      = color.New(color.Faint)

	titleCaser = cases.Title(language.English)
)

// FormatWarning formats a warning message with the warning icon
func FormatWarning(message string) string {
	return color.New(color.FgYellow).Sprintf("⚠️  %s", message)
}

// FormatError formats an error message with the error icon
func FormatError(message string) string {
	// Capitalize first letter
	if len(message) > 0 {
		message = strings.ToUpper(message[:1]) + message[1:]
	}

	return color.New(color.FgRed).Sprintf("❌ %s", message)
}

// FormatSuccess formats a success message with the success icon
func FormatSuccess(message string) string {
	return color.New(color.FgGreen).Sprintf("✅ %s", message)
}

// FormatHint formats a follow-up suggestion
func FormatHint(message string) string {
	return hintStyle.Sprintf("💡 %s", message)
}

// Label turns an identifier such as "add-option" or "share_type" into "Add Option"
func Label(s string) string {
	s = strings.NewReplacer("-", " ", "_", " ").Replace(s)
	return titleCaser.String(s)
}

// StatusBadge colors a proposal status
func StatusBadge(status models.ProposalStatus) string {
	switch status {
	case models.ProposalStatusDraft:
		return color.New(color.FgYellow).Sprint(status)
	case models.ProposalStatusOpen:
		return color.New(color.FgGreen, color.Bold).Sprint(status)
	case models.ProposalStatusClosed:
		return color.New(color.FgRed).Sprint(status)
	case models.ProposalStatusFinalized:
		return color.New(color.FgBlue).Sprint(status)
	default:
		return string(status)
	}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return emptyCell
	}
	return timestampStyle.Sprint(t.UTC().Format(dateTimeLayout))
}

func formatTimePtr(t *time.Time) string {
	if t == nil {
		return emptyCell
	}
	return formatTime(*t)
}

func orEmpty(s string) string {
	if strings.TrimSpace(s) == "" {
		return emptyCell
	}
	return s
}

func yesNo(b bool) string {
	if b {
		return color.New(color.FgGreen).Sprint("yes")
	}
	return color.New(color.FgRed).Sprint("no")
}

// formatAmount drops trailing zeros ("1500", "12.5")
func formatAmount(v float64) string {
	return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.4f", v), "0"), ".")
}

// writeField prints an aligned "Label: value" line
func writeField(out io.Writer, label, value string) {
	fmt.Fprintf(out, "%s %s\n", labelStyle.Sprintf("%-14s", label+":"), value)
}

// writeTable renders a borderless light table
func writeTable(out io.Writer, header table.Row, rows []table.Row) {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleLight)
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateColumns = false
	t.Style().Options.SeparateRows = false
	t.Style().Format.Header = text.FormatUpper
	t.Style().Box = table.BoxStyle{
		MiddleHorizontal: "─",
		PaddingRight:     "  ",
	}

	columns := make([]table.ColumnConfig, len(header))
	for i := range header {
		columns[i] = table.ColumnConfig{Number: i + 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft}
	}
	t.SetColumnConfigs(columns)

	t.AppendHeader(header)
	t.AppendRows(rows)
	t.Render()
}

// writePageFooter prints "Page 2 of 5 (112 total)" under paged lists
func writePageFooter[T any](out io.Writer, page *models.Page[T]) {
	fmt.Fprintln(out)
	fmt.Fprint(out, hintStyle.Sprintf("Page %d of %d (%d total)", page.Page, page.TotalPages(), page.TotalCount))
	if page.HasNext() {
		fmt.Fprint(out, hintStyle.Sprintf(", next: --page %d", page.Page+1))
	}
	fmt.Fprintln(out)
}
