package reader

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/parquet-go/parquet-go"

	"github.com/vegasq/mdata/table"
)

// column pairs a table field with the decoder that normalizes the values
// parquet-go produces for it.
type column struct {
	field  table.Field
	decode func(v any) (any, error)
}

// schemaColumns maps the top-level fields of a parquet schema to table
// columns, preserving file order.
func schemaColumns(schema *parquet.Schema) []column {
	fields := schema.Fields()
	columns := make([]column, 0, len(fields))
	for _, f := range fields {
		columns = append(columns, fieldColumn(f))
	}
	return columns
}

// fieldColumn resolves the declared type of a single parquet field.
//
// Groups become Struct (or List when repeated or annotated as a LIST), and
// repeated leaves become List. Leaf types are resolved from the logical type
// first and fall back to the physical type.
func fieldColumn(field parquet.Field) column {
	c := column{field: table.Field{
		Name:     field.Name(),
		Nullable: field.Optional(),
	}}

	if len(field.Fields()) > 0 {
		c.field.Type = table.Struct
		if field.Repeated() || isListGroup(field) {
			c.field.Type = table.List
		}
		c.decode = passthrough
		return c
	}

	if field.Repeated() {
		c.field.Type = table.List
		c.decode = passthrough
		return c
	}

	c.field.Type, c.decode = leafType(field)
	return c
}

func isListGroup(field parquet.Field) bool {
	if field.Type() == nil {
		return false
	}
	lt := field.Type().LogicalType()
	return lt != nil && lt.List != nil
}

func leafType(field parquet.Field) (table.DataType, func(any) (any, error)) {
	if lt := field.Type().LogicalType(); lt != nil {
		switch {
		case lt.UTF8 != nil, lt.Enum != nil, lt.Json != nil:
			return table.Utf8, decodeString
		case lt.Date != nil:
			return table.Date, decodeDate
		case lt.Timestamp != nil:
			unit := time.Microsecond
			switch {
			case lt.Timestamp.Unit.Millis != nil:
				unit = time.Millisecond
			case lt.Timestamp.Unit.Nanos != nil:
				unit = time.Nanosecond
			}
			return table.Timestamp, decodeTimestamp(unit)
		case lt.Integer != nil:
			if lt.Integer.BitWidth <= 32 {
				return table.Int32, decodeInt
			}
			return table.Int64, decodeInt
		}
	}

	// Fall back to physical type
	switch field.Type().Kind() {
	case parquet.Boolean:
		return table.Boolean, decodeBool
	case parquet.Int32:
		return table.Int32, decodeInt
	case parquet.Int64:
		return table.Int64, decodeInt
	case parquet.Float:
		return table.Float32, decodeFloat
	case parquet.Double:
		return table.Float64, decodeFloat
	case parquet.Int96:
		// Legacy timestamps; exposed as their textual form.
		return table.Utf8, decodeString
	case parquet.ByteArray, parquet.FixedLenByteArray:
		return table.Binary, decodeBytes
	default:
		return table.Binary, decodeBytes
	}
}

func passthrough(v any) (any, error) {
	return v, nil
}

func decodeBool(v any) (any, error) {
	switch val := v.(type) {
	case nil:
		return nil, nil
	case bool:
		return val, nil
	}
	return nil, fmt.Errorf("unexpected %T for boolean column", v)
}

var errIntOverflow = errors.New("unsigned value overflows int64")

func decodeInt(v any) (any, error) {
	switch val := v.(type) {
	case nil:
		return nil, nil
	case int64:
		return val, nil
	case int32:
		return int64(val), nil
	case int:
		return int64(val), nil
	case int16:
		return int64(val), nil
	case int8:
		return int64(val), nil
	case uint32:
		return int64(val), nil
	case uint16:
		return int64(val), nil
	case uint8:
		return int64(val), nil
	case uint64:
		if val > math.MaxInt64 {
			return nil, fmt.Errorf("%w: %d", errIntOverflow, val)
		}
		return int64(val), nil
	}
	return nil, fmt.Errorf("unexpected %T for integer column", v)
}

func decodeFloat(v any) (any, error) {
	switch val := v.(type) {
	case nil:
		return nil, nil
	case float64:
		return val, nil
	case float32:
		return float64(val), nil
	}
	return nil, fmt.Errorf("unexpected %T for floating point column", v)
}

func decodeString(v any) (any, error) {
	switch val := v.(type) {
	case nil:
		return nil, nil
	case string:
		return val, nil
	case []byte:
		return string(val), nil
	}
	return fmt.Sprint(v), nil
}

func decodeBytes(v any) (any, error) {
	switch val := v.(type) {
	case nil:
		return nil, nil
	case []byte:
		return val, nil
	case string:
		return []byte(val), nil
	}
	return nil, fmt.Errorf("unexpected %T for binary column", v)
}

func decodeDate(v any) (any, error) {
	switch val := v.(type) {
	case nil:
		return nil, nil
	case time.Time:
		return val.UTC(), nil
	case int32:
		return time.Unix(int64(val)*86400, 0).UTC(), nil
	case int64:
		return time.Unix(val*86400, 0).UTC(), nil
	}
	return nil, fmt.Errorf("unexpected %T for date column", v)
}

func decodeTimestamp(unit time.Duration) func(any) (any, error) {
	return func(v any) (any, error) {
		switch val := v.(type) {
		case nil:
			return nil, nil
		case time.Time:
			return val.UTC(), nil
		case int64:
			return time.Unix(0, val*int64(unit)).UTC(), nil
		}
		return nil, fmt.Errorf("unexpected %T for timestamp column", v)
	}
}
