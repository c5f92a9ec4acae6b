package engine

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/vegasq/mdata/output"
	"github.com/vegasq/mdata/table"
)

// Frame is a lazily evaluated view over a registered table.
//
// Transformations validate against the schema immediately but only record
// a step; rows are produced by Collect or one of the Write methods. A Frame
// is a value: every transformation returns a new Frame and leaves the
// receiver untouched.
type Frame struct {
	name   string
	source *table.Table
	steps  []step
}

type step struct {
	desc string
	run  func(rows []table.Row) []table.Row
}

func newFrame(name string, source *table.Table) Frame {
	return Frame{name: name, source: source}
}

func (f Frame) with(s step) Frame {
	steps := slices.Clone(f.steps)
	return Frame{name: f.name, source: f.source, steps: append(steps, s)}
}

// Schema returns the schema of the rows the frame produces.
func (f Frame) Schema() table.Schema {
	return f.source.Schema
}

// Filter keeps the rows for which e holds.
func (f Frame) Filter(e Expr) (Frame, error) {
	match, err := e.bind(f.Schema())
	if err != nil {
		return Frame{}, err
	}

	return f.with(step{
		desc: "Filter: " + e.String(),
		run: func(rows []table.Row) []table.Row {
			kept := make([]table.Row, 0, len(rows))
			for _, row := range rows {
				if match(row) {
					kept = append(kept, row)
				}
			}
			return kept
		},
	}), nil
}

// Limit skips the first skip rows and keeps at most fetch of the rest.
func (f Frame) Limit(skip, fetch int) (Frame, error) {
	if skip < 0 || fetch < 0 {
		return Frame{}, fmt.Errorf("%w: skip=%d, fetch=%d", ErrInvalidLimit, skip, fetch)
	}

	return f.with(step{
		desc: fmt.Sprintf("Limit: skip=%d, fetch=%d", skip, fetch),
		run: func(rows []table.Row) []table.Row {
			if skip >= len(rows) {
				return []table.Row{}
			}
			end := len(rows)
			if skip+fetch < end {
				end = skip + fetch
			}
			return rows[skip:end]
		},
	}), nil
}

// Sort orders rows by the given keys. The sort is stable.
func (f Frame) Sort(keys ...SortKey) (Frame, error) {
	schema := f.Schema()
	indexes := make([]int, len(keys))
	descs := make([]string, len(keys))
	for i, k := range keys {
		if _, err := schema.FieldWithName(k.Column); err != nil {
			return Frame{}, err
		}
		indexes[i] = schema.IndexOf(k.Column)
		descs[i] = k.String()
	}

	return f.with(step{
		desc: "Sort: " + strings.Join(descs, ", "),
		run: func(rows []table.Row) []table.Row {
			sorted := make([]table.Row, len(rows))
			copy(sorted, rows)

			sort.SliceStable(sorted, func(i, j int) bool {
				for n, k := range keys {
					valI := sorted[i][indexes[n]]
					valJ := sorted[j][indexes[n]]

					if valI == nil && valJ == nil {
						continue
					}
					if valI == nil {
						return k.NullsFirst
					}
					if valJ == nil {
						return !k.NullsFirst
					}

					cmp := table.Compare(valI, valJ)
					if cmp != 0 {
						if k.Ascending {
							return cmp < 0
						}
						return cmp > 0
					}
				}
				return false
			})

			return sorted
		},
	}), nil
}

// Collect runs the recorded steps and returns the resulting table.
func (f Frame) Collect(ctx context.Context) (*table.Table, error) {
	rows := f.source.Rows
	for _, s := range f.steps {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rows = s.run(rows)
	}
	return table.New(f.Schema(), rows), nil
}

// WriteCSV collects the frame and writes it to path as CSV.
func (f Frame) WriteCSV(ctx context.Context, path string) error {
	return f.write(ctx, path, output.NewCSVFormatter(nil))
}

// WriteParquet collects the frame and writes it to path as parquet.
func (f Frame) WriteParquet(ctx context.Context, path string) error {
	return f.write(ctx, path, output.NewParquetFormatter(nil))
}

func (f Frame) write(ctx context.Context, path string, formatter output.Formatter) error {
	t, err := f.Collect(ctx)
	if err != nil {
		return err
	}
	return output.WriteFile(ctx, path, formatter, t)
}

// String describes the plan, outermost step first.
func (f Frame) String() string {
	var sb strings.Builder
	depth := 0
	for i := len(f.steps) - 1; i >= 0; i-- {
		sb.WriteString(strings.Repeat("  ", depth))
		sb.WriteString(f.steps[i].desc)
		sb.WriteByte('\n')
		depth++
	}
	sb.WriteString(strings.Repeat("  ", depth))
	sb.WriteString("TableScan: " + f.name)
	return sb.String()
}
