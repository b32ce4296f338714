package render

import (
	"fmt"
	"io"
	"math/big"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/poap-raffle/raffle-cli/internal/domain"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	labelStyle    = color.New(color.Faint)
	addressStyle  = color.New(color.FgWhite)
	numberStyle   = color.New(color.FgWhite, color.Bold)
	linkStyle     = color.New(color.FgBlue, color.Underline)
	okStyle       = color.New(color.FgGreen)
	pendingStyle  = color.New(color.FgYellow)
	failedStyle   = color.New(color.FgRed)
	sectionStyle  = color.New(color.Bold, color.FgHiWhite)
	titleCaser    = cases.Title(language.English)
	warningPrefix = "⚠️  "
)

// FormatWarning formats a warning message with the warning icon
func FormatWarning(message string) string {
	return color.New(color.FgYellow).Sprint(warningPrefix + message)
}

// FormatError formats an error message with the error icon
func FormatError(message string) string {
	if len(message) > 0 {
		message = strings.ToUpper(message[:1]) + message[1:]
	}
	return color.New(color.FgRed).Sprintf("❌ %s", message)
}

// FormatSuccess formats a success message with the success icon
func FormatSuccess(message string) string {
	return color.New(color.FgGreen).Sprintf("✅ %s", message)
}

// Title capitalises words for headings ("pick and mint" -> "Pick And Mint")
func Title(s string) string {
	return titleCaser.String(s)
}

func field(out io.Writer, label string, value string) {
	fmt.Fprintf(out, "  %s %s\n", labelStyle.Sprintf("%-13s", label+":"), value)
}

func warnings(out io.Writer, msgs []string) {
	for _, msg := range msgs {
		fmt.Fprintln(out, FormatWarning(msg))
	}
}

func link(out io.Writer, url string) {
	if url != "" {
		field(out, "Explorer", linkStyle.Sprint(url))
	}
}

func formatAddress(addr common.Address) string {
	return addressStyle.Sprint(addr.Hex())
}

func bigString(n *big.Int) string {
	if n == nil {
		return "0"
	}
	return n.String()
}

// formatExpiry renders a unix expiry with its state relative to now
func formatExpiry(expiry *big.Int, now time.Time) string {
	if expiry == nil || !expiry.IsInt64() {
		return bigString(expiry)
	}
	return formatExpiryTime(time.Unix(expiry.Int64(), 0).UTC(), now)
}

func formatExpiryTime(at time.Time, now time.Time) string {
	if at.After(now) {
		return fmt.Sprintf("%s %s", at.Format(time.RFC3339), pendingStyle.Sprintf("in %s", at.Sub(now).Truncate(time.Second)))
	}
	return fmt.Sprintf("%s %s", at.Format(time.RFC3339), okStyle.Sprint("expired"))
}

// txFields prints the receipt of a mined transaction
func txFields(out io.Writer, receipt *domain.TxReceipt) {
	if receipt == nil {
		return
	}
	field(out, "Tx", receipt.Hash.Hex())
	field(out, "From", formatAddress(receipt.From))
	field(out, "Block", fmt.Sprintf("%d", receipt.BlockNumber))
	field(out, "Gas used", fmt.Sprintf("%d", receipt.GasUsed))
	status := "success"
	if !receipt.Succeeded() {
		status = "failed"
	}
	field(out, "Status", statusText(status))
}

func statusText(status string) string {
	switch status {
	case "success":
		return okStyle.Sprint(status)
	case "failed":
		return failedStyle.Sprint(status)
	default:
		return status
	}
}

// newTable creates a borderless table in the same light style everywhere
func newTable(out io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleLight)
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateColumns = false
	t.Style().Options.SeparateRows = false
	t.Style().Box.PaddingRight = "  "
	return t
}

// relativePath returns the path relative to the current directory
func relativePath(path string) string {
	cwd, err := os.Getwd()
	if err != nil {
		return path
	}
	rel, err := filepath.Rel(cwd, path)
	if err != nil {
		return path
	}
	return rel
}
