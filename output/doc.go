// Package output provides formatters for encoding tables as files.
//
// This package defines the Formatter interface and provides implementations
// for CSV and Apache Parquet. All formatters work with *table.Table values.
//
// # Supported Formats
//
//   - CSV: Comma-separated values with a header row in schema order
//   - Parquet: Snappy-compressed parquet with optional columns
//
// # Basic Usage
//
// Using the CSV formatter:
//
//	formatter := output.NewCSVFormatter(os.Stdout)
//	if err := formatter.Format(t); err != nil {
//	    log.Fatal(err)
//	}
//
// # Writing Files
//
// WriteFile writes through a temporary file and renames it into place:
//
//	err := output.WriteFile(ctx, "result.parquet", output.NewParquetFormatter(nil), t)
//
// # Type Handling
//
//   - Null values are empty CSV fields and parquet nulls
//   - Floats use plain decimal notation with a .0 suffix on whole values,
//     booleans true/false
//   - Dates are written as 2006-01-02 and timestamps as RFC 3339 in CSV
//   - Binary values are hex encoded in CSV
//   - List and Struct columns can only be written as CSV
package output
