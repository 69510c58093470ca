// internal/cli/options.go
package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"seqdedupe/internal/version"
)

// Options holds all CLI flags plus the positional input path.
type Options struct {
	Input     string
	Output    string
	DNA       bool
	Substring bool
	Quiet     bool
	LogLevel  string
}

// Register binds every flag to its Options field.
func (o *Options) Register(fl *pflag.FlagSet) {
	fl.SortFlags = false
	fl.StringVarP(&o.Output, "output", "o", "", "output file (stdout if not specified)")
	fl.BoolVarP(&o.DNA, "dna", "d", false, "treat as DNA sequences (check reverse complements)")
	fl.BoolVarP(&o.Substring, "substring", "s", false, "remove substring sequences (slower for large files)")
	fl.BoolVarP(&o.Quiet, "quiet", "q", false, "suppress progress logging")
	fl.StringVar(&o.LogLevel, "log-level", "info", "log level: debug | info | warn | error")
}

// NewCommand returns the seqdedupe root command. run is invoked once cobra
// has validated flags and the single positional input path.
func NewCommand(run func(opts Options) error) *cobra.Command {
	var opts Options
	cmd := &cobra.Command{
		Use:   "seqdedupe [flags] <input.fasta>",
		Short: "Remove duplicate and substring sequences from FASTA files",
		Long: `seqdedupe removes redundant records from a FASTA file: exact duplicates
(optionally treating a DNA sequence and its reverse complement as the same
record) and, with --substring, records wholly contained in a longer one.
Use "-" as the input path to read from stdin; gzip input is detected
automatically.`,
		Version: version.Version,
		Args:    cobra.ExactArgs(1),
		// Errors and usage are reported by the caller, which maps them to
		// exit codes.
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Input = args[0]
			return run(opts)
		},
	}
	opts.Register(cmd.Flags())
	return cmd
}
