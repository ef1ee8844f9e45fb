package importer

import "fmt"

// UnsupportedBankError is returned when no profile is registered for a bank.
type UnsupportedBankError struct {
	Bank string
}

func (e *UnsupportedBankError) Error() string {
	return fmt.Sprintf("unsupported bank %q", e.Bank)
}

// DateCountError is returned when a line holds zero or more than two dates.
type DateCountError struct {
	Line  string
	Count int
}

func (e *DateCountError) Error() string {
	return fmt.Sprintf("invalid date count: found %d dates in line %q", e.Count, e.Line)
}

// MonthError is returned for a textual month outside the Swedish month table.
type MonthError struct {
	Month string
}

func (e *MonthError) Error() string {
	return fmt.Sprintf("invalid month: cannot convert %q to a month number", e.Month)
}

// DateParseError is returned when a matched date does not fit the profile layout.
type DateParseError struct {
	Date string
	Err  error
}

func (e *DateParseError) Error() string {
	return fmt.Sprintf("date parse: %q: %v", e.Date, e.Err)
}

func (e *DateParseError) Unwrap() error { return e.Err }

// EmptyAmountError is returned when the amount column is empty after normalization.
type EmptyAmountError struct {
	Line string
}

func (e *EmptyAmountError) Error() string {
	return fmt.Sprintf("empty amount in line %q", e.Line)
}

// AmountParseError is returned when the normalized amount is not a decimal number.
type AmountParseError struct {
	Amount string
	Err    error
}

func (e *AmountParseError) Error() string {
	return fmt.Sprintf("amount parse: %q: %v", e.Amount, e.Err)
}

func (e *AmountParseError) Unwrap() error { return e.Err }

// ColumnError is returned when a line has fewer fields than a profile column needs.
type ColumnError struct {
	Column string
	Index  int
	Fields int
	Line   string
}

func (e *ColumnError) Error() string {
	return fmt.Sprintf("missing %s column %d (line has %d fields): %q", e.Column, e.Index, e.Fields, e.Line)
}

// ProfileError describes an invalid profile definition.
type ProfileError struct {
	Name   string
	Reason string
}

func (e *ProfileError) Error() string {
	return fmt.Sprintf("invalid profile %q: %s", e.Name, e.Reason)
}
