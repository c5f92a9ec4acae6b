package reader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/vegasq/mdata/table"
)

// DefaultInferRecords is the number of records inspected for type inference
// when CSVOptions.InferRecords is not set.
const DefaultInferRecords = 1000

// CSVOptions controls how a CSV file is read. The zero value reads a
// comma-separated file with a header row.
type CSVOptions struct {
	// Delimiter separates fields. Defaults to ','.
	Delimiter rune

	// NoHeader treats the first record as data. Columns are then named
	// column_1, column_2, ...
	NoHeader bool

	// InferRecords caps how many records are inspected to infer column
	// types. Defaults to DefaultInferRecords.
	InferRecords int
}

func (o CSVOptions) delimiter() rune {
	if o.Delimiter == 0 {
		return ','
	}
	return o.Delimiter
}

func (o CSVOptions) inferRecords() int {
	if o.InferRecords <= 0 {
		return DefaultInferRecords
	}
	return o.InferRecords
}

// ReadCSV reads the whole CSV file at path.
func ReadCSV(path string, opts CSVOptions) (*table.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return ParseCSV(f, opts)
}

// ParseCSV reads CSV data from r.
//
// A leading UTF-8 byte order mark is dropped. Column types are inferred from
// the first records: Int64, Float64, Boolean or Utf8, with empty fields read
// as null. A record that does not parse as its column's inferred type is an
// error.
func ParseCSV(r io.Reader, opts CSVOptions) (*table.Table, error) {
	cr := csv.NewReader(transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder())))
	cr.Comma = opts.delimiter()

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}
	if len(records) == 0 {
		return table.New(table.NewSchema(), nil), nil
	}

	var names []string
	if opts.NoHeader {
		names = make([]string, len(records[0]))
		for i := range names {
			names[i] = "column_" + strconv.Itoa(i+1)
		}
	} else {
		names = records[0]
		records = records[1:]
	}

	sample := records
	if len(sample) > opts.inferRecords() {
		sample = sample[:opts.inferRecords()]
	}

	fields := make([]table.Field, len(names))
	for i, name := range names {
		fields[i] = table.Field{
			Name:     name,
			Type:     inferColumnType(sample, i),
			Nullable: true,
		}
	}

	rows := make([]table.Row, len(records))
	for r, record := range records {
		row := make(table.Row, len(fields))
		for i, f := range fields {
			v, err := parseCSVValue(record[i], f.Type)
			if err != nil {
				return nil, fmt.Errorf("record %d, column %q: %w", r+1, f.Name, err)
			}
			row[i] = v
		}
		rows[r] = row
	}

	return table.New(table.NewSchema(fields...), rows), nil
}

// inferColumnType picks the narrowest type every non-empty sample value of
// column i parses as. All-empty columns are Utf8.
func inferColumnType(records [][]string, i int) table.DataType {
	seen := false
	canInt, canFloat, canBool := true, true, true

	for _, record := range records {
		v := record[i]
		if v == "" {
			continue
		}
		seen = true
		if canInt {
			if _, err := strconv.ParseInt(v, 10, 64); err != nil {
				canInt = false
			}
		}
		if canFloat && !isDecimal(v) {
			canFloat = false
		}
		if canBool && !strings.EqualFold(v, "true") && !strings.EqualFold(v, "false") {
			canBool = false
		}
	}

	switch {
	case !seen:
		return table.Utf8
	case canInt:
		return table.Int64
	case canFloat:
		return table.Float64
	case canBool:
		return table.Boolean
	default:
		return table.Utf8
	}
}

// isDecimal reports whether s is a plain decimal number with an optional
// exponent. NaN, inf and hex forms stay text.
func isDecimal(s string) bool {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := 0
	for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
			digits++
		}
	}
	if digits == 0 {
		return false
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		exp := 0
		for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
			exp++
		}
		if exp == 0 {
			return false
		}
	}
	return i == len(s)
}

var errUnsupportedCSVType = errors.New("unsupported csv column type")

func parseCSVValue(v string, dt table.DataType) (any, error) {
	if v == "" {
		return nil, nil
	}

	switch dt {
	case table.Utf8:
		return v, nil
	case table.Int64:
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("cannot parse %q as %s", v, dt)
		}
		return n, nil
	case table.Float64:
		if !isDecimal(v) {
			return nil, fmt.Errorf("cannot parse %q as %s", v, dt)
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("cannot parse %q as %s", v, dt)
		}
		return f, nil
	case table.Boolean:
		switch {
		case strings.EqualFold(v, "true"):
			return true, nil
		case strings.EqualFold(v, "false"):
			return false, nil
		}
		return nil, fmt.Errorf("cannot parse %q as %s", v, dt)
	case table.Null, table.Int32, table.Float32, table.Binary, table.Date, table.Timestamp, table.List, table.Struct:
		return nil, fmt.Errorf("%w: %s", errUnsupportedCSVType, dt)
	}
	return nil, fmt.Errorf("%w: %s", errUnsupportedCSVType, dt)
}
