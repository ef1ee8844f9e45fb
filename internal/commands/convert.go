package commands

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/ynab-tools/ynabconv/internal/config"
	"github.com/ynab-tools/ynabconv/internal/importer"
	"github.com/ynab-tools/ynabconv/internal/statement"
)

type convertOptions struct {
	bank     string
	input    string
	output   string
	encoding string
	profiles string
	verbose  bool
}

func newLogger(w io.Writer, verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	log.SetLevel(logrus.WarnLevel)
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}

func runConvert(stdout, stderr io.Writer, opts convertOptions) error {
	log := newLogger(stderr, opts.verbose)

	// Resolve everything that can fail before touching the input file.
	registry := importer.DefaultRegistry()
	if opts.profiles != "" {
		cfg, err := config.Load(opts.profiles)
		if err != nil {
			return fmt.Errorf("loading profiles: %w", err)
		}
		if err := cfg.Apply(registry); err != nil {
			return fmt.Errorf("loading profiles: %w", err)
		}
	}

	conv, err := registry.Converter(opts.bank)
	if err != nil {
		return err
	}

	enc, err := statement.LookupEncoding(opts.encoding)
	if err != nil {
		return err
	}

	output, err := statement.OutputPath(opts.input)
	if err != nil {
		return err
	}
	if opts.output != "" {
		output = opts.output
	}

	fmt.Fprintf(stdout, "Input file.: %s\n", opts.input)
	fmt.Fprintf(stdout, "Output file: %s\n", output)
	fmt.Fprintf(stdout, "Bank.......: %s\n", opts.bank)

	log.WithFields(logrus.Fields{
		"profile":  conv.Profile().Name,
		"encoding": opts.encoding,
	}).Debug("starting conversion")

	sum, err := statement.ConvertFile(conv, opts.input, output, enc, log)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Converted %d transactions (%d lines dropped), outflow %s, inflow %s\n",
		sum.Written, sum.Dropped, sum.Outflow.StringFixed(2), sum.Inflow.StringFixed(2))
	return nil
}
