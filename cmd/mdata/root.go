package main

import (
	"fmt"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/vegasq/mdata/query"
	"github.com/vegasq/mdata/reader"
)

// rootOptions holds the flags shared by the root command and eq.
type rootOptions struct {
	input      string
	output     string
	verbose    int
	format     query.Format
	limit      int
	schema     bool
	sortColumn optionalString
	sortOrder  query.SortOrder
	delimiter  string
	noHeader   bool
}

// optionalString is a string flag that remembers whether it was given,
// so an explicit empty value can be told apart from an absent one.
type optionalString struct {
	value string
	set   bool
}

func (o *optionalString) String() string { return o.value }

func (o *optionalString) Set(s string) error {
	o.value = s
	o.set = true
	return nil
}

func (o *optionalString) Type() string { return "string" }

func (o *optionalString) ptr() *string {
	if !o.set {
		return nil
	}
	v := o.value
	return &v
}

func newRootCommand() *cobra.Command {
	return newCommand(&rootOptions{})
}

// newCommand builds the command tree around opts.
func newCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mdata",
		Short: "Filter, limit and sort CSV and parquet files",
		Long: `mdata reads one CSV or parquet file, optionally keeps the rows where a
column equals a value, keeps the first N rows and sorts them by a column, then
writes the result as CSV or parquet.

Formats are taken from file extensions unless --format is given. An output path
without an extension gets one for the output format.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.limit < 0 {
				return fmt.Errorf("--limit must be non-negative, got %d", opts.limit)
			}
			if utf8.RuneCountInString(opts.delimiter) != 1 {
				return fmt.Errorf("--delimiter must be a single character, got %q", opts.delimiter)
			}
			logger := newLogger(cmd.ErrOrStderr(), opts.verbose)
			cmd.SetContext(logger.WithContext(cmd.Context()))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return query.Run(cmd.Context(), opts.request(nil))
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.input, "input", "i", "", "input file (.csv or .parquet)")
	flags.StringVarP(&opts.output, "output", "o", "", "output file; an extension is added when missing")
	flags.CountVarP(&opts.verbose, "verbose", "v", "log more (-v debug, -vv trace); MLOG overrides")
	flags.VarP(&opts.format, "format", "f", "output format (csv|parquet|undefined)")
	flags.IntVarP(&opts.limit, "limit", "l", 0, "keep at most N rows (0 = unlimited)")
	flags.BoolVarP(&opts.schema, "schema", "s", false, "log the input schema")
	flags.VarP(&opts.sortColumn, "sort-column", "c", "column to sort by")
	flags.VarP(&opts.sortOrder, "sort-order", "r", "sort direction (asc|desc)")
	flags.StringVar(&opts.delimiter, "delimiter", ",", "field delimiter of CSV input")
	flags.BoolVar(&opts.noHeader, "no-header", false, "CSV input has no header row")

	_ = cmd.MarkPersistentFlagRequired("input")
	_ = cmd.MarkPersistentFlagRequired("output")

	cmd.AddCommand(newEqCommand(opts))

	return cmd
}

func newEqCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "eq <column> <value>",
		Short:         "Keep rows where column equals value",
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := &query.FilterSpec{Column: args[0], Value: args[1]}
			return query.Run(cmd.Context(), opts.request(filter))
		},
	}
}

func (o *rootOptions) request(filter *query.FilterSpec) query.Request {
	delimiter, _ := utf8.DecodeRuneInString(o.delimiter)
	return query.Request{
		Input:      o.input,
		Output:     o.output,
		Format:     o.format,
		Limit:      o.limit,
		ShowSchema: o.schema,
		SortColumn: o.sortColumn.ptr(),
		SortOrder:  o.sortOrder,
		Filter:     filter,
		CSV: reader.CSVOptions{
			Delimiter: delimiter,
			NoHeader:  o.noHeader,
		},
	}
}
