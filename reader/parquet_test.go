package reader

import (
	"errors"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/parquet-go/parquet-go"

	"github.com/vegasq/mdata/table"
)

// testRow defines a simple test data structure covering the primitive types
type testRow struct {
	ID       int64   `parquet:"id"`
	Name     string  `parquet:"name"`
	Age      int32   `parquet:"age"`
	Score    float64 `parquet:"score"`
	Ratio    float32 `parquet:"ratio"`
	Active   bool    `parquet:"active"`
	Nickname *string `parquet:"nickname,optional"`
}

// writeTestParquetFile creates a temporary parquet file with the given rows
func writeTestParquetFile[T any](t *testing.T, filename string, rows []T) string {
	t.Helper()
	testFile := filepath.Join(t.TempDir(), filename)

	f, err := os.Create(testFile)
	if err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	writer := parquet.NewGenericWriter[T](f)
	if _, err := writer.Write(rows); err != nil {
		t.Fatalf("failed to write test data: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("failed to close writer: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("failed to close file: %v", err)
	}

	return testFile
}

func stringPtr(s string) *string {
	return &s
}

func TestParquetReader_Schema(t *testing.T) {
	testFile := writeTestParquetFile(t, "test.parquet", []testRow{
		{ID: 1, Name: "Alice", Age: 30, Score: 95.5, Ratio: 0.5, Active: true, Nickname: stringPtr("al")},
	})

	r, err := NewParquetReader(testFile)
	if err != nil {
		t.Fatalf("NewParquetReader() error = %v", err)
	}
	defer func() { _ = r.Close() }()

	want := map[string]table.DataType{
		"id":       table.Int64,
		"name":     table.Utf8,
		"age":      table.Int32,
		"score":    table.Float64,
		"ratio":    table.Float32,
		"active":   table.Boolean,
		"nickname": table.Utf8,
	}

	schema := r.Schema()
	if len(schema.Fields) != len(want) {
		t.Fatalf("Schema() returned %d fields, want %d", len(schema.Fields), len(want))
	}
	for name, dt := range want {
		f, err := schema.FieldWithName(name)
		if err != nil {
			t.Errorf("field %s not found: %v", name, err)
			continue
		}
		if f.Type != dt {
			t.Errorf("%s type = %s, want %s", name, f.Type, dt)
		}
	}

	nickname, _ := schema.FieldWithName("nickname")
	if !nickname.Nullable {
		t.Errorf("nickname should be nullable")
	}
	id, _ := schema.FieldWithName("id")
	if id.Nullable {
		t.Errorf("id should not be nullable")
	}

	if r.NumRows() != 1 {
		t.Errorf("NumRows() = %d, want 1", r.NumRows())
	}
}

func TestReadParquet_Values(t *testing.T) {
	testFile := writeTestParquetFile(t, "values.parquet", []testRow{
		{ID: 1, Name: "Alice", Age: 30, Score: 95.5, Active: true, Nickname: stringPtr("al")},
		{ID: 2, Name: "Bob", Age: 25, Score: 82.25, Active: false},
	})

	tbl, err := ReadParquet(testFile)
	if err != nil {
		t.Fatalf("ReadParquet() error = %v", err)
	}

	if tbl.NumRows() != 2 {
		t.Fatalf("ReadParquet() returned %d rows, want 2", tbl.NumRows())
	}

	row := tbl.Rows[0]
	check := func(column string, want any) {
		t.Helper()
		idx := tbl.Schema.IndexOf(column)
		if idx < 0 {
			t.Fatalf("column %s missing", column)
		}
		if got := row[idx]; got != want {
			t.Errorf("%s = %v (%T), want %v (%T)", column, got, got, want, want)
		}
	}

	check("id", int64(1))
	check("name", "Alice")
	check("age", int64(30))
	check("score", 95.5)
	check("active", true)
	check("nickname", "al")

	idx := tbl.Schema.IndexOf("nickname")
	if got := tbl.Rows[1][idx]; got != nil {
		t.Errorf("second nickname = %v, want nil", got)
	}
}

func TestReadParquet_NestedAndRepeated(t *testing.T) {
	type address struct {
		Street string `parquet:"street"`
		City   string `parquet:"city"`
	}
	type nestedRow struct {
		ID      int64    `parquet:"id"`
		Address address  `parquet:"address"`
		Tags    []string `parquet:"tags"`
	}

	testFile := writeTestParquetFile(t, "nested.parquet", []nestedRow{
		{ID: 1, Address: address{Street: "123 Main St", City: "Springfield"}, Tags: []string{"a", "b"}},
	})

	r, err := NewParquetReader(testFile)
	if err != nil {
		t.Fatalf("NewParquetReader() error = %v", err)
	}
	defer func() { _ = r.Close() }()

	schema := r.Schema()
	if f, err := schema.FieldWithName("address"); err != nil || f.Type != table.Struct {
		t.Errorf("address = %+v, %v, want Struct", f, err)
	}
	if f, err := schema.FieldWithName("tags"); err != nil || f.Type != table.List {
		t.Errorf("tags = %+v, %v, want List", f, err)
	}
}

func TestNewParquetReader_FileNotFound(t *testing.T) {
	_, err := NewParquetReader("nonexistent.parquet")
	if err == nil {
		t.Fatal("NewParquetReader() expected error for non-existent file, got nil")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("error = %v, want not-exist", err)
	}
}

func TestNewParquetReader_InvalidFile(t *testing.T) {
	testFile := filepath.Join(t.TempDir(), "invalid.parquet")
	if err := os.WriteFile(testFile, []byte("not a parquet file"), 0644); err != nil {
		t.Fatalf("failed to write invalid file: %v", err)
	}

	if _, err := NewParquetReader(testFile); err == nil {
		t.Error("NewParquetReader() expected error for invalid parquet file, got nil")
	}
}

func TestParquetReader_CloseTwice(t *testing.T) {
	testFile := writeTestParquetFile(t, "close.parquet", []testRow{{ID: 1}})

	r, err := NewParquetReader(testFile)
	if err != nil {
		t.Fatalf("NewParquetReader() error = %v", err)
	}
	if err := r.Close(); err != nil {
		t.Errorf("first Close() error = %v", err)
	}
	if err := r.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
}

func TestDecodeTimestamp(t *testing.T) {
	want := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		unit time.Duration
		in   any
	}{
		{"millis", time.Millisecond, want.UnixMilli()},
		{"micros", time.Microsecond, want.UnixMicro()},
		{"nanos", time.Nanosecond, want.UnixNano()},
		{"time value", time.Microsecond, want},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeTimestamp(tt.unit)(tt.in)
			if err != nil {
				t.Fatalf("decodeTimestamp() error = %v", err)
			}
			if !got.(time.Time).Equal(want) {
				t.Errorf("decodeTimestamp() = %v, want %v", got, want)
			}
		})
	}
}

func TestDecodeDate(t *testing.T) {
	got, err := decodeDate(int32(19723))
	if err != nil {
		t.Fatalf("decodeDate() error = %v", err)
	}
	want := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	if !got.(time.Time).Equal(want) {
		t.Errorf("decodeDate() = %v, want %v", got, want)
	}
}

func TestDecodeInt_Unsigned(t *testing.T) {
	got, err := decodeInt(uint64(5))
	if err != nil {
		t.Fatalf("decodeInt() error = %v", err)
	}
	if got != int64(5) {
		t.Errorf("decodeInt() = %#v, want int64(5)", got)
	}

	got, err = decodeInt(uint64(math.MaxInt64))
	if err != nil || got != int64(math.MaxInt64) {
		t.Errorf("decodeInt(MaxInt64) = %v, %v", got, err)
	}

	if _, err := decodeInt(uint64(math.MaxUint64)); !errors.Is(err, errIntOverflow) {
		t.Errorf("decodeInt(MaxUint64) error = %v, want %v", err, errIntOverflow)
	}
}

func TestDecodeFloat(t *testing.T) {
	tests := []struct {
		in   any
		want any
	}{
		{nil, nil},
		{1.5, 1.5},
		{float32(0.25), 0.25},
	}
	for _, tt := range tests {
		got, err := decodeFloat(tt.in)
		if err != nil {
			t.Fatalf("decodeFloat(%v) error = %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("decodeFloat(%v) = %#v, want %#v", tt.in, got, tt.want)
		}
	}

	if _, err := decodeFloat(int64(1)); err == nil {
		t.Error("decodeFloat(int64) should fail")
	}
}
