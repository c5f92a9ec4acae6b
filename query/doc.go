// Package query turns one command-line request into a read, shape and write
// of a single tabular file.
//
// A run resolves the input format from the file extension, registers the
// file with an engine session, and applies at most one equality filter,
// one row limit and one sort, always in that order. The limit picks rows in
// file order and the sort only reorders the survivors.
//
// # Formats
//
// Only ".csv" and ".parquet" are recognized, case sensitively. The output
// format is the explicit one when given, otherwise the input's. An output
// path without an extension gets one for the resolved format (".txt" when
// the format is undefined); an existing extension is never rewritten.
//
// # Basic Usage
//
//	err := query.Run(ctx, query.Request{
//		Input:      "people.csv",
//		Output:     "adults",
//		Limit:      10,
//		SortColumn: &column,
//		SortOrder:  query.Ascending,
//		Filter:     &query.FilterSpec{Column: "city", Value: "Oslo"},
//	})
//
// # Errors
//
// Failures of the pipeline itself are *Error values whose kind can be
// matched with errors.Is against ErrPathEncoding, ErrInputFormat,
// ErrOutputFormat, ErrFilterValue and ErrSortColumnMissing. Engine, reader
// and writer errors are wrapped and remain visible to errors.Is and
// errors.As.
package query
