package reader

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/parquet-go/parquet-go"

	"github.com/vegasq/mdata/table"
)

// ParquetReader reads a parquet file into a table.
//
// It maintains both an OS file handle and a parquet file handle to enable
// proper resource cleanup.
type ParquetReader struct {
	file    *os.File
	pqFile  *parquet.File
	columns []column
}

// NewParquetReader opens the parquet file at path.
//
// The file is opened and validated as a parquet file, and its schema is mapped
// to table types. Returns an error if the file doesn't exist or is not a valid
// parquet file.
//
// Example:
//
//	r, err := NewParquetReader("data.parquet")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer r.Close()
func NewParquetReader(path string) (*ParquetReader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	stat, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	pqFile, err := parquet.OpenFile(file, stat.Size())
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("failed to open parquet file: %w", err)
	}

	return &ParquetReader{
		file:    file,
		pqFile:  pqFile,
		columns: schemaColumns(pqFile.Schema()),
	}, nil
}

// Schema returns the table schema of the file, in file column order.
func (r *ParquetReader) Schema() table.Schema {
	fields := make([]table.Field, len(r.columns))
	for i, c := range r.columns {
		fields[i] = c.field
	}
	return table.NewSchema(fields...)
}

// NumRows returns the row count recorded in the file metadata.
func (r *ParquetReader) NumRows() int64 {
	return r.pqFile.NumRows()
}

// ReadAll reads all rows into memory.
//
// Each parquet record is decoded into a map keyed by column name and then
// projected onto the schema, so values come back in schema order with
// normalized cell types. The entire file is loaded into memory.
func (r *ParquetReader) ReadAll() (*table.Table, error) {
	rows := make([]table.Row, 0, r.pqFile.NumRows())

	reader := parquet.NewReader(r.pqFile)
	defer func() { _ = reader.Close() }()

	for {
		record := make(map[string]interface{})
		err := reader.Read(&record)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("failed to read row %d: %w", len(rows)+1, err)
		}

		row := make(table.Row, len(r.columns))
		for i, c := range r.columns {
			v, err := c.decode(record[c.field.Name])
			if err != nil {
				return nil, fmt.Errorf("row %d, column %q: %w", len(rows)+1, c.field.Name, err)
			}
			row[i] = v
		}
		rows = append(rows, row)
	}

	return table.New(r.Schema(), rows), nil
}

// Close releases the file handle. It is safe to call Close multiple times.
func (r *ParquetReader) Close() error {
	if r.file != nil {
		err := r.file.Close()
		r.file = nil
		return err
	}
	return nil
}

// ReadParquet reads the whole parquet file at path.
func ReadParquet(path string) (*table.Table, error) {
	r, err := NewParquetReader(path)
	if err != nil {
		return nil, err
	}

	t, readErr := r.ReadAll()
	closeErr := r.Close()

	// Preserve the first error encountered
	if readErr != nil {
		return nil, readErr
	}
	if closeErr != nil {
		return nil, fmt.Errorf("failed to close %s: %w", path, closeErr)
	}
	return t, nil
}
