package statement

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/text/encoding"
)

// ConvertFile converts the export at input into a new CSV at output. The
// output file is removed again if the conversion fails.
func ConvertFile(lines LineConverter, input, output string, enc encoding.Encoding, log logrus.FieldLogger) (Summary, error) {
	src, err := OpenSource(input, enc)
	if err != nil {
		return Summary{}, err
	}
	defer src.Close()

	sink, err := CreateSink(output)
	if err != nil {
		return Summary{}, err
	}

	sum, err := NewConverter(lines, src, sink, log).Convert()
	if err != nil {
		if aerr := sink.Abort(); aerr != nil && log != nil {
			log.WithError(aerr).Warn("could not remove partial output")
		}
		return sum, fmt.Errorf("converting %s: %w", input, err)
	}
	if err := sink.Close(); err != nil {
		return sum, err
	}
	return sum, nil
}
