package importer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ynab-tools/ynabconv/internal/model"
)

// datePrefixLen is the length of a leading "YYYY-MM-DD " stamp in a payee.
const datePrefixLen = 11

var payeeDatePrefixRe = regexp.MustCompile(`^` + isoDatePattern)

// LineConverter turns raw statement lines of one bank into YNAB records.
type LineConverter struct {
	profile Profile
	dateRe  *regexp.Regexp
	layout  string
}

// NewLineConverter creates a LineConverter for p.
func NewLineConverter(p Profile) *LineConverter {
	return &LineConverter{
		profile: p,
		dateRe:  p.dateRegexp(),
		layout:  p.dateLayout(),
	}
}

// Profile returns the profile the converter was built from.
func (c *LineConverter) Profile() Profile { return c.profile }

// Ignores reports whether line carries the profile's ignore marker.
func (c *LineConverter) Ignores(line string) bool {
	return c.profile.IgnoreLine != "" && strings.Contains(line, c.profile.IgnoreLine)
}

// ConvertLine converts one statement line. It returns ok=false for lines
// that should be dropped. Any malformed line is an error.
func (c *LineConverter) ConvertLine(line string) (model.Record, bool, error) {
	if c.Ignores(line) {
		return model.Record{}, false, nil
	}

	date, err := c.parseDate(line)
	if err != nil {
		return model.Record{}, false, fmt.Errorf("parsing date: %w", err)
	}

	payee, err := c.parsePayee(line)
	if err != nil {
		return model.Record{}, false, fmt.Errorf("parsing payee: %w", err)
	}

	amount, err := c.parseAmount(line)
	if err != nil {
		return model.Record{}, false, fmt.Errorf("parsing amount: %w", err)
	}

	value, err := decimal.NewFromString(amount)
	if err != nil {
		return model.Record{}, false, fmt.Errorf("parsing amount: %w", &AmountParseError{Amount: amount, Err: err})
	}

	outflow, inflow := splitAmount(amount)
	return model.Record{
		Date:    date,
		Payee:   payee,
		Outflow: outflow,
		Inflow:  inflow,
		Amount:  value,
	}, true, nil
}

func (c *LineConverter) column(line, name string, idx int) (string, error) {
	fields := strings.Split(line, c.profile.Delimiter)
	if idx >= len(fields) {
		return "", &ColumnError{Column: name, Index: idx, Fields: len(fields), Line: line}
	}
	return fields[idx], nil
}

func (c *LineConverter) parsePayee(line string) (string, error) {
	payee, err := c.column(line, "payee", c.profile.PayeeColumn)
	if err != nil {
		return "", err
	}
	// Commas would break the CSV columns.
	payee = strings.ReplaceAll(payee, ",", ".")
	payee = strings.ReplaceAll(payee, `\\`, " ")
	payee = strings.ReplaceAll(payee, `\`, "")
	payee = strings.TrimSpace(payee)
	return strings.TrimSpace(stripDatePrefix(payee)), nil
}

// stripDatePrefix drops a "YYYY-MM-DD " stamp some banks put before the payee.
func stripDatePrefix(payee string) string {
	if !payeeDatePrefixRe.MatchString(payee) {
		return payee
	}
	if len(payee) <= datePrefixLen {
		return ""
	}
	return payee[datePrefixLen:]
}

// parseAmount returns the signed amount with "." as decimal separator.
func (c *LineConverter) parseAmount(line string) (string, error) {
	amount, err := c.column(line, "amount", c.profile.AmountColumn)
	if err != nil {
		return "", err
	}
	amount = strings.ReplaceAll(amount, ",", ".")
	amount = strings.ReplaceAll(amount, " ", "")
	amount = strings.ReplaceAll(amount, "\u00a0", "")
	if c.profile.Currency != "" {
		amount = strings.ReplaceAll(amount, c.profile.Currency, "")
	}
	amount = strings.TrimSpace(amount)
	if amount == "" {
		return "", &EmptyAmountError{Line: line}
	}
	return amount, nil
}

// splitAmount maps a signed amount onto the YNAB outflow and inflow columns.
func splitAmount(amount string) (outflow, inflow string) {
	if strings.HasPrefix(amount, "-") {
		return amount[1:], ""
	}
	return "", amount
}
