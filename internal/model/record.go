package model

import (
	"encoding/csv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Header is the first line of every YNAB import file.
const Header = "Date,Payee,Category,Memo,Outflow,Inflow"

// DateFormat is the DD/MM/YYYY layout YNAB expects.
const DateFormat = "02/01/2006"

const (
	numFields   = 6
	colDate     = 0
	colPayee    = 1
	colCategory = 2
	colMemo     = 3
	colOutflow  = 4
	colInflow   = 5
)

// Record is one normalized YNAB transaction row.
type Record struct {
	Date     time.Time
	Payee    string
	Category string          // always empty for bank imports
	Memo     string          // always empty for bank imports
	Outflow  string          // unsigned, empty for inflows
	Inflow   string          // unsigned, empty for outflows
	Amount   decimal.Decimal // signed: negative = outflow
}

// Fields returns the record as a CSV row.
func (r Record) Fields() []string {
	row := make([]string, numFields)
	row[colDate] = r.Date.Format(DateFormat)
	row[colPayee] = r.Payee
	row[colCategory] = r.Category
	row[colMemo] = r.Memo
	row[colOutflow] = r.Outflow
	row[colInflow] = r.Inflow
	return row
}

// Line renders the record as a newline-terminated CSV line.
func (r Record) Line() string {
	var b strings.Builder
	cw := csv.NewWriter(&b)
	// Writes to a strings.Builder cannot fail.
	_ = cw.Write(r.Fields())
	cw.Flush()
	return b.String()
}
