package statement

import (
	"errors"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/ynab-tools/ynabconv/internal/model"
)

// LineSource yields raw statement lines and io.EOF when exhausted.
type LineSource interface {
	ReadLine() (string, error)
}

// LineSink receives output lines.
type LineSink interface {
	WriteLine(line string) error
}

// LineConverter converts one raw line. ok=false drops the line.
type LineConverter interface {
	ConvertLine(line string) (rec model.Record, ok bool, err error)
}

// Summary describes a finished conversion.
type Summary struct {
	Read    int
	Written int
	Dropped int
	Outflow decimal.Decimal
	Inflow  decimal.Decimal
}

// Converter pulls lines from a source, converts them and pushes them to a sink.
type Converter struct {
	lines LineConverter
	src   LineSource
	sink  LineSink
	log   logrus.FieldLogger
}

// NewConverter wires a conversion run. A nil logger discards diagnostics.
func NewConverter(lines LineConverter, src LineSource, sink LineSink, log logrus.FieldLogger) *Converter {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Converter{lines: lines, src: src, sink: sink, log: log}
}

// Convert writes the YNAB header and every converted line. The first error
// aborts the run.
func (c *Converter) Convert() (Summary, error) {
	var sum Summary

	if err := c.sink.WriteLine(model.Header + "\n"); err != nil {
		return sum, fmt.Errorf("writing header: %w", err)
	}

	for {
		line, err := c.src.ReadLine()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return sum, err
		}
		sum.Read++

		rec, ok, err := c.lines.ConvertLine(line)
		if err != nil {
			return sum, fmt.Errorf("line %d: %w", sum.Read, err)
		}
		if !ok {
			sum.Dropped++
			c.log.WithField("line", sum.Read).Debug("dropping ignored line")
			continue
		}

		if err := c.sink.WriteLine(rec.Line()); err != nil {
			return sum, fmt.Errorf("line %d: %w", sum.Read, err)
		}
		sum.Written++
		if rec.Amount.IsNegative() {
			sum.Outflow = sum.Outflow.Add(rec.Amount.Neg())
		} else {
			sum.Inflow = sum.Inflow.Add(rec.Amount)
		}
	}

	c.log.WithFields(logrus.Fields{
		"read":    sum.Read,
		"written": sum.Written,
		"dropped": sum.Dropped,
		"outflow": sum.Outflow.StringFixed(2),
		"inflow":  sum.Inflow.StringFixed(2),
	}).Debug("conversion finished")
	return sum, nil
}
