package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ynab-tools/ynabconv/internal/buildinfo"
	"github.com/ynab-tools/ynabconv/internal/importer"
)

// NewRootCommand creates the ynabconv CLI command.
func NewRootCommand() *cobra.Command {
	var opts convertOptions

	rootCmd := &cobra.Command{
		Use:   "ynabconv <bank> <input_file>",
		Short: "Convert bank statement exports to YNAB CSV",
		Long: fmt.Sprintf("Convert a tab or semicolon separated bank statement export into a CSV file YNAB can import.\n\n"+
			"Built-in banks: %s\n\n"+
			"ica2 reads the semicolon separated export with ISO dates. The older tab separated\n"+
			"ICA export with Swedish month names (\"03 nov 2021\") is ica2-tab.",
			strings.Join(importer.DefaultRegistry().Names(), ", ")),
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		Args:    cobra.ExactArgs(2),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.bank = args[0]
			opts.input = args[1]
			return runConvert(cmd.OutOrStdout(), cmd.ErrOrStderr(), opts)
		},
	}

	rootCmd.Flags().StringVar(&opts.output, "output_file", "", "csv file for YNAB (default: input file with .csv suffix)")
	rootCmd.Flags().StringVar(&opts.encoding, "encoding", "utf-8", "input charset: utf-8, latin1, windows-1252 or utf-16")
	rootCmd.Flags().StringVar(&opts.profiles, "profiles", "", "YAML file with additional bank profiles")
	rootCmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "log conversion details to stderr")

	return rootCmd
}
