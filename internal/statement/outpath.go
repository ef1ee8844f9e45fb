package statement

import "strings"

// OutputPath derives the CSV path for a statement export: a trailing .txt is
// replaced with .csv, otherwise .csv is appended.
func OutputPath(input string) (string, error) {
	if strings.HasSuffix(input, ".csv") {
		return "", &InputIsCSVError{Path: input}
	}
	return strings.TrimSuffix(input, ".txt") + ".csv", nil
}
