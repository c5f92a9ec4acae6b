package query

import (
	"fmt"

	"github.com/vegasq/mdata/engine"
	"github.com/vegasq/mdata/reader"
)

// FilterSpec is a single equality predicate, column == value.
type FilterSpec struct {
	Column string
	Value  string
}

// Request is the configuration of one run.
type Request struct {
	Input  string
	Output string

	// Format is the explicit output format. Undefined reuses the input format.
	Format Format

	// Limit caps the number of rows written. Zero means no limit.
	Limit int

	ShowSchema bool

	// SortColumn is nil when no sort was requested. A non-nil empty name is
	// an error.
	SortColumn *string
	SortOrder  SortOrder

	Filter *FilterSpec

	// CSV configures how a CSV input is read.
	CSV reader.CSVOptions
}

// BuildPlan applies the requested filter, limit and sort to df, in that order.
func BuildPlan(df engine.Frame, req Request) (engine.Frame, error) {
	var err error

	if req.Filter != nil {
		field, err := df.Schema().FieldWithName(req.Filter.Column)
		if err != nil {
			return engine.Frame{}, fmt.Errorf("filter: %w", err)
		}
		lit, err := CoerceFilterValue(field.Type, req.Filter.Value)
		if err != nil {
			return engine.Frame{}, err
		}
		df, err = df.Filter(engine.Col(field.Name).Eq(lit))
		if err != nil {
			return engine.Frame{}, fmt.Errorf("filter: %w", err)
		}
	}

	if req.Limit > 0 {
		df, err = df.Limit(0, req.Limit)
		if err != nil {
			return engine.Frame{}, fmt.Errorf("limit: %w", err)
		}
	}

	if req.SortColumn != nil {
		column := *req.SortColumn
		if column == "" {
			return engine.Frame{}, &Error{Kind: KindSortColumnMissing, Message: "the sort column is missing or empty"}
		}
		// only an explicit Ascending sorts ascending
		ascending := req.SortOrder == Ascending
		df, err = df.Sort(engine.Col(column).Sort(ascending, true))
		if err != nil {
			return engine.Frame{}, fmt.Errorf("sort: %w", err)
		}
	}

	return df, nil
}
