package statement

import (
	"errors"
	"io"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ynab-tools/ynabconv/internal/model"
)

type sourceSpy struct {
	lines []string
	reads int
}

func (s *sourceSpy) ReadLine() (string, error) {
	if len(s.lines) == 0 {
		return "", io.EOF
	}
	s.reads++
	line := s.lines[0]
	s.lines = s.lines[1:]
	return line, nil
}

type sinkSpy struct {
	lines []string
	err   error
}

func (s *sinkSpy) WriteLine(line string) error {
	if s.err != nil {
		return s.err
	}
	s.lines = append(s.lines, line)
	return nil
}

// converterSpy keeps the raw line as payee and drops lines equal to drop.
type converterSpy struct {
	calls int
	drop  string
	fail  string
}

func (c *converterSpy) ConvertLine(line string) (model.Record, bool, error) {
	c.calls++
	if line == c.fail {
		return model.Record{}, false, errors.New("bad line")
	}
	if line == c.drop {
		return model.Record{}, false, nil
	}
	return model.Record{
		Date:    time.Date(2016, 6, 27, 0, 0, 0, 0, time.UTC),
		Payee:   line,
		Outflow: "1.50",
		Amount:  decimal.RequireFromString("-1.50"),
	}, true, nil
}

func TestConverter_Convert(t *testing.T) {
	lines := []string{
		"2016-06-27 \t2016-06-26 BLOMSTERLANDET I BORÅS, BORÅS \t-505,90 \t390 841,26",
		"2016-06-29 \tTåg varberg \t-284,00 \t455 865,49",
		"2016-07-05 \t2016-07-04 INET RINGÖN, GÖTEBORG \t-1 174,00 \t434 355,07",
	}
	src := &sourceSpy{lines: append([]string(nil), lines...)}
	sink := &sinkSpy{}
	conv := &converterSpy{}

	sum, err := NewConverter(conv, src, sink, nil).Convert()
	require.NoError(t, err)

	assert.Empty(t, src.lines)
	assert.Equal(t, len(lines), src.reads)
	assert.Len(t, sink.lines, len(lines)+1, "header plus one line per input line")
	assert.Equal(t, len(lines), conv.calls)
	assert.Equal(t, model.Header+"\n", sink.lines[0])

	assert.Equal(t, 3, sum.Read)
	assert.Equal(t, 3, sum.Written)
	assert.Equal(t, 0, sum.Dropped)
	assert.Equal(t, "4.50", sum.Outflow.StringFixed(2))
	assert.True(t, sum.Inflow.IsZero())
}

func TestConverter_DropsIgnoredLines(t *testing.T) {
	src := &sourceSpy{lines: []string{"a", "footer", "b"}}
	sink := &sinkSpy{}

	sum, err := NewConverter(&converterSpy{drop: "footer"}, src, sink, nil).Convert()
	require.NoError(t, err)

	assert.Len(t, sink.lines, 3)
	assert.Equal(t, 1, sum.Dropped)
	assert.Equal(t, 2, sum.Written)
}

func TestConverter_EmptySource(t *testing.T) {
	sink := &sinkSpy{}
	sum, err := NewConverter(&converterSpy{}, &sourceSpy{}, sink, nil).Convert()
	require.NoError(t, err)
	assert.Equal(t, []string{model.Header + "\n"}, sink.lines)
	assert.Zero(t, sum.Read)
}

func TestConverter_AbortsOnFirstError(t *testing.T) {
	src := &sourceSpy{lines: []string{"a", "broken", "c"}}
	sink := &sinkSpy{}

	_, err := NewConverter(&converterSpy{fail: "broken"}, src, sink, nil).Convert()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
	assert.Len(t, sink.lines, 2, "nothing written after the failing line")
	assert.Equal(t, []string{"c"}, src.lines)
}

func TestConverter_SinkError(t *testing.T) {
	sink := &sinkSpy{err: errors.New("disk full")}
	_, err := NewConverter(&converterSpy{}, &sourceSpy{lines: []string{"a"}}, sink, nil).Convert()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "writing header")
}
