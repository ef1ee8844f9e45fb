package statement

import "fmt"

// InputIsCSVError is returned when the input file already has a .csv suffix.
type InputIsCSVError struct {
	Path string
}

func (e *InputIsCSVError) Error() string {
	return fmt.Sprintf("input file must not end with .csv: %s", e.Path)
}

// OutputExistsError is returned instead of overwriting an existing output file.
type OutputExistsError struct {
	Path string
}

func (e *OutputExistsError) Error() string {
	return fmt.Sprintf("output file already exists: %s", e.Path)
}
