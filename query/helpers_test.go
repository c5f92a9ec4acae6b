package query

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/require"

	"github.com/vegasq/mdata/engine"
	"github.com/vegasq/mdata/table"
)

// personRow is the parquet layout used by the conversion tests
type personRow struct {
	ID     int64    `parquet:"id"`
	Name   string   `parquet:"name"`
	Age    *int64   `parquet:"age,optional"`
	Active bool     `parquet:"active"`
	Score  *float64 `parquet:"score,optional"`
}

func samplePeople() []personRow {
	return []personRow{
		{ID: 1, Name: "alice", Age: int64Ptr(30), Active: true, Score: float64Ptr(95.5)},
		{ID: 2, Name: "bob", Age: int64Ptr(25), Active: false, Score: float64Ptr(82.3)},
		{ID: 3, Name: "charlie", Age: nil, Active: true, Score: nil},
		{ID: 4, Name: "diana", Age: int64Ptr(28), Active: true, Score: float64Ptr(91.2)},
	}
}

// createParquetFile writes rows to dir/name and returns the path
func createParquetFile(t *testing.T, dir, name string, rows []personRow) string {
	t.Helper()
	path := filepath.Join(dir, name)

	f, err := os.Create(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	writer := parquet.NewGenericWriter[personRow](f)
	_, err = writer.Write(rows)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return path
}

// writeFile writes content to dir/name and returns the path
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

// frameOf registers an in-memory table and returns a frame over it
func frameOf(t *testing.T, schema table.Schema, rows ...table.Row) engine.Frame {
	t.Helper()
	sess := engine.NewSession()
	require.NoError(t, sess.Register("t", table.New(schema, rows)))
	df, err := sess.Table("t")
	require.NoError(t, err)
	return df
}

func int64Ptr(v int64) *int64 {
	return &v
}

func float64Ptr(v float64) *float64 {
	return &v
}

func stringPtr(v string) *string {
	return &v
}
