// Package reader loads CSV and Apache Parquet files into tables.
//
// Both readers materialize the whole file in memory and return a
// *table.Table whose schema describes the declared type of every column.
//
// # Parquet
//
// Reading a parquet file:
//
//	t, err := reader.ReadParquet("data.parquet")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(t.Schema)
//
// The parquet schema is mapped to table types using the logical type first
// (STRING, DATE, TIMESTAMP, INT) and the physical type as a fallback. Nested
// groups are exposed as Struct columns and repeated fields as List columns.
//
// Keeping the file open to inspect it before reading:
//
//	r, err := reader.NewParquetReader("data.parquet")
//	if err != nil {
//	    return err
//	}
//	defer r.Close()
//
//	fmt.Println(r.Schema(), r.NumRows())
//
// # CSV
//
// Reading a CSV file with a header row:
//
//	t, err := reader.ReadCSV("data.csv", reader.CSVOptions{})
//
// Column types are inferred from the first CSVOptions.InferRecords records.
// Empty fields are read as null.
//
// The package uses github.com/parquet-go/parquet-go for the underlying
// parquet file operations.
package reader
