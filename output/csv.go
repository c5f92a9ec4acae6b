package output

import (
	"encoding/csv"
	"encoding/hex"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/vegasq/mdata/table"
)

// CSVFormatter outputs tables as CSV with a header row
type CSVFormatter struct {
	writer io.Writer
	comma  rune
}

// NewCSVFormatter creates a new CSV formatter
func NewCSVFormatter(w io.Writer) *CSVFormatter {
	return &CSVFormatter{writer: w, comma: ','}
}

// SetOutput sets the output writer
func (c *CSVFormatter) SetOutput(w io.Writer) {
	c.writer = w
}

// Format writes the header in schema order followed by one record per row.
// A table without columns produces no output.
func (c *CSVFormatter) Format(t *table.Table) error {
	csvWriter := csv.NewWriter(c.writer)
	csvWriter.Comma = c.comma

	if len(t.Schema.Fields) == 0 {
		return nil
	}

	if err := csvWriter.Write(t.Schema.Names()); err != nil {
		return err
	}

	record := make([]string, len(t.Schema.Fields))
	for _, row := range t.Rows {
		for i, f := range t.Schema.Fields {
			record[i] = formatValue(row[i], f.Type)
		}
		if err := csvWriter.Write(record); err != nil {
			return err
		}
	}

	// Flush and check for errors
	csvWriter.Flush()
	if err := csvWriter.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV writer: %w", err)
	}

	return nil
}

// formatFloat writes plain decimal notation. Whole values keep a ".0"
// suffix so they still read back as floats.
func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}

// formatValue converts a cell to its CSV text
func formatValue(v any, dt table.DataType) string {
	if v == nil {
		return ""
	}

	switch val := v.(type) {
	case string:
		return val
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return formatFloat(val)
	case bool:
		return strconv.FormatBool(val)
	case []byte:
		return hex.EncodeToString(val)
	case time.Time:
		if dt == table.Date {
			return val.Format(time.DateOnly)
		}
		return val.Format(time.RFC3339Nano)
	default:
		// Nested values use their Go representation
		return fmt.Sprintf("%v", val)
	}
}
