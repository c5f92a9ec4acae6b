package output

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/parquet-go/parquet-go"

	"github.com/vegasq/mdata/table"
)

// ErrUnsupportedType is returned when a column type has no parquet encoding.
var ErrUnsupportedType = errors.New("unsupported column type for parquet output")

// ParquetFormatter outputs tables as a snappy-compressed parquet file.
//
// Every column is written as an optional leaf. parquet-go orders the columns
// of a group by name, so the written column order is alphabetical.
type ParquetFormatter struct {
	writer io.Writer
}

// NewParquetFormatter creates a new parquet formatter
func NewParquetFormatter(w io.Writer) *ParquetFormatter {
	return &ParquetFormatter{writer: w}
}

// SetOutput sets the output writer
func (p *ParquetFormatter) SetOutput(w io.Writer) {
	p.writer = w
}

// Format writes the table as a single parquet file.
func (p *ParquetFormatter) Format(t *table.Table) error {
	group := make(parquet.Group, len(t.Schema.Fields))
	for _, f := range t.Schema.Fields {
		node, err := parquetNode(f.Type)
		if err != nil {
			return fmt.Errorf("column %q: %w", f.Name, err)
		}
		group[f.Name] = parquet.Optional(node)
	}
	schema := parquet.NewSchema("mdata", group)

	// Map schema position to parquet leaf column index
	columnIndex := make([]int, len(t.Schema.Fields))
	for i, f := range t.Schema.Fields {
		leaf, ok := schema.Lookup(f.Name)
		if !ok {
			return fmt.Errorf("column %q missing from parquet schema", f.Name)
		}
		columnIndex[i] = leaf.ColumnIndex
	}

	rows := make([]parquet.Row, len(t.Rows))
	for r, row := range t.Rows {
		pr := make(parquet.Row, len(t.Schema.Fields))
		for i, f := range t.Schema.Fields {
			v, err := parquetValue(row[i], f.Type)
			if err != nil {
				return fmt.Errorf("row %d, column %q: %w", r+1, f.Name, err)
			}
			definitionLevel := 1
			if v.IsNull() {
				definitionLevel = 0
			}
			pr[columnIndex[i]] = v.Level(0, definitionLevel, columnIndex[i])
		}
		rows[r] = pr
	}

	writer := parquet.NewWriter(p.writer, schema, parquet.Compression(&parquet.Snappy))
	if _, err := writer.WriteRows(rows); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write parquet rows: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to close parquet writer: %w", err)
	}
	return nil
}

func parquetNode(dt table.DataType) (parquet.Node, error) {
	switch dt {
	case table.Boolean:
		return parquet.Leaf(parquet.BooleanType), nil
	case table.Int32:
		return parquet.Int(32), nil
	case table.Int64:
		return parquet.Int(64), nil
	case table.Float32:
		return parquet.Leaf(parquet.FloatType), nil
	case table.Float64:
		return parquet.Leaf(parquet.DoubleType), nil
	case table.Utf8, table.Null:
		return parquet.String(), nil
	case table.Binary:
		return parquet.Leaf(parquet.ByteArrayType), nil
	case table.Date:
		return parquet.Date(), nil
	case table.Timestamp:
		return parquet.Timestamp(parquet.Microsecond), nil
	case table.List, table.Struct:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, dt)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, dt)
}

func parquetValue(v any, dt table.DataType) (parquet.Value, error) {
	if v == nil {
		return parquet.NullValue(), nil
	}

	switch dt {
	case table.Boolean:
		if b, ok := v.(bool); ok {
			return parquet.BooleanValue(b), nil
		}
	case table.Int32:
		if n, ok := v.(int64); ok {
			return parquet.Int32Value(int32(n)), nil
		}
	case table.Int64:
		if n, ok := v.(int64); ok {
			return parquet.Int64Value(n), nil
		}
	case table.Float32:
		if f, ok := v.(float64); ok {
			return parquet.FloatValue(float32(f)), nil
		}
	case table.Float64:
		if f, ok := v.(float64); ok {
			return parquet.DoubleValue(f), nil
		}
	case table.Utf8, table.Null:
		if s, ok := v.(string); ok {
			return parquet.ByteArrayValue([]byte(s)), nil
		}
	case table.Binary:
		if b, ok := v.([]byte); ok {
			return parquet.ByteArrayValue(b), nil
		}
	case table.Date:
		if ts, ok := v.(time.Time); ok {
			return parquet.Int32Value(int32(daysSinceEpoch(ts))), nil
		}
	case table.Timestamp:
		if ts, ok := v.(time.Time); ok {
			return parquet.Int64Value(ts.UnixMicro()), nil
		}
	case table.List, table.Struct:
		return parquet.Value{}, fmt.Errorf("%w: %s", ErrUnsupportedType, dt)
	}
	return parquet.Value{}, fmt.Errorf("unexpected %T for %s column", v, dt)
}

func daysSinceEpoch(ts time.Time) int64 {
	secs := ts.Unix()
	days := secs / 86400
	if secs%86400 < 0 {
		days--
	}
	return days
}
