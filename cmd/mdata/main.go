// Command mdata filters, limits and sorts a CSV or parquet file and writes
// the result to a new file.
//
// Usage:
//
//	mdata -i <input> -o <output> [flags] [eq <column> <value>]
//
// Examples:
//
//	mdata -i data.csv -o out.parquet
//	mdata -i data.parquet -o top -l 10 -c score -r desc
//	mdata -i data.csv -o oslo.csv eq city Oslo
package main

import (
	"context"
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
