package importer

import (
	"regexp"
	"strings"
	"time"
)

// swedishMonths maps the month abbreviations used in Swedish exports.
// May is "maj", not "may".
var swedishMonths = map[string]string{
	"jan": "01",
	"feb": "02",
	"mar": "03",
	"apr": "04",
	"maj": "05",
	"jun": "06",
	"jul": "07",
	"aug": "08",
	"sep": "09",
	"okt": "10",
	"nov": "11",
	"dec": "12",
}

var monthTokenRe = regexp.MustCompile(`[a-ö]{3}`)

// parseDate finds the transaction date in line.
func (c *LineConverter) parseDate(line string) (time.Time, error) {
	matches := c.dateRe.FindAllString(line, -1)

	var raw string
	switch len(matches) {
	case 1:
		raw = matches[0]
	case 2:
		raw = matches[0]
		if c.profile.PreferSecondDate {
			raw = matches[1]
		}
	default:
		return time.Time{}, &DateCountError{Line: line, Count: len(matches)}
	}

	if c.profile.DateStyle == DateTextualMonth {
		var err error
		if raw, err = numericMonth(raw); err != nil {
			return time.Time{}, err
		}
	}

	date, err := time.Parse(c.layout, raw)
	if err != nil {
		return time.Time{}, &DateParseError{Date: raw, Err: err}
	}
	return date, nil
}

// numericMonth rewrites "03 nov 2021" as "03 11 2021".
func numericMonth(date string) (string, error) {
	token := monthTokenRe.FindString(date)
	num, ok := swedishMonths[token]
	if !ok {
		return "", &MonthError{Month: token}
	}
	return strings.Replace(date, token, num, 1), nil
}
