// Package table defines the in-memory tabular data model shared by the
// readers, writers and query engine.
//
// A Table is a Schema plus rows of normalized cell values. Cells are one of
// nil, bool, int64, float64, string, []byte, time.Time, or an arbitrary value
// for nested (List and Struct) columns.
package table

import (
	"fmt"
	"strings"
)

// DataType is the declared type of a column.
type DataType int

const (
	Null DataType = iota
	Boolean
	Int32
	Int64
	Float32
	Float64
	Utf8
	Binary
	Date
	Timestamp
	List
	Struct
)

// String returns the type name.
func (t DataType) String() string {
	switch t {
	case Null:
		return "Null"
	case Boolean:
		return "Boolean"
	case Int32:
		return "Int32"
	case Int64:
		return "Int64"
	case Float32:
		return "Float32"
	case Float64:
		return "Float64"
	case Utf8:
		return "Utf8"
	case Binary:
		return "Binary"
	case Date:
		return "Date"
	case Timestamp:
		return "Timestamp"
	case List:
		return "List"
	case Struct:
		return "Struct"
	}
	return fmt.Sprintf("DataType(%d)", int(t))
}

// IsNumeric reports whether t belongs to the integer or floating point family.
func (t DataType) IsNumeric() bool {
	switch t {
	case Int32, Int64, Float32, Float64:
		return true
	case Null, Boolean, Utf8, Binary, Date, Timestamp, List, Struct:
		return false
	}
	return false
}

// Field describes a single column.
type Field struct {
	Name     string
	Type     DataType
	Nullable bool
}

// Schema is the ordered list of columns of a table.
type Schema struct {
	Fields []Field
}

// NewSchema creates a schema from fields.
func NewSchema(fields ...Field) Schema {
	return Schema{Fields: fields}
}

// Names returns the column names in schema order.
func (s Schema) Names() []string {
	names := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		names[i] = f.Name
	}
	return names
}

// IndexOf returns the position of the named column, or -1.
func (s Schema) IndexOf(name string) int {
	for i, f := range s.Fields {
		if f.Name == name {
			return i
		}
	}
	return -1
}

// FieldWithName looks up a column by name.
//
// Returns a *FieldNotFoundError listing the valid column names when the
// column does not exist.
func (s Schema) FieldWithName(name string) (Field, error) {
	i := s.IndexOf(name)
	if i < 0 {
		return Field{}, &FieldNotFoundError{Name: name, Valid: s.Names()}
	}
	return s.Fields[i], nil
}

// FieldNotFoundError is returned when a column lookup fails.
type FieldNotFoundError struct {
	Name  string
	Valid []string
}

func (e *FieldNotFoundError) Error() string {
	return fmt.Sprintf("no field named %q, valid fields are: %s", e.Name, strings.Join(e.Valid, ", "))
}

// Row is a single record, positionally aligned with the schema.
type Row []any

// Table is a fully materialized dataset.
type Table struct {
	Schema Schema
	Rows   []Row
}

// New creates a table.
func New(schema Schema, rows []Row) *Table {
	return &Table{Schema: schema, Rows: rows}
}

// NumRows returns the number of rows.
func (t *Table) NumRows() int {
	return len(t.Rows)
}

// Column returns the values of the named column in row order.
func (t *Table) Column(name string) ([]any, error) {
	if _, err := t.Schema.FieldWithName(name); err != nil {
		return nil, err
	}
	idx := t.Schema.IndexOf(name)
	values := make([]any, len(t.Rows))
	for i, row := range t.Rows {
		values[i] = row[idx]
	}
	return values, nil
}
