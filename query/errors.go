package query

import (
	"fmt"
	"strconv"
)

// ErrorKind categorizes a query failure.
type ErrorKind string

const (
	// KindPathEncoding indicates an input or output path that is not valid UTF-8.
	KindPathEncoding ErrorKind = "PATH_ENCODING"

	// KindInputFormat indicates an input path whose extension maps to no format.
	KindInputFormat ErrorKind = "INPUT_FORMAT"

	// KindOutputFormat indicates the output format was still undefined at write time.
	KindOutputFormat ErrorKind = "OUTPUT_FORMAT"

	// KindFilterValue indicates a filter value that cannot be coerced to its
	// column's type.
	KindFilterValue ErrorKind = "FILTER_VALUE"

	// KindSortColumnMissing indicates a sort on an empty column name.
	KindSortColumnMissing ErrorKind = "SORT_COLUMN_MISSING"
)

// Error is a failure raised by the query pipeline itself. Failures from the
// engine, readers and writers are wrapped with %w instead.
type Error struct {
	// Kind identifies the error category.
	Kind ErrorKind

	// Path is the offending path for PathEncoding and InputFormat.
	Path string

	// Format is the requested format for OutputFormat.
	Format Format

	// Message carries the parser message for FilterValue.
	Message string

	// Err is the underlying cause, if any.
	Err error
}

// Sentinels for errors.Is. They match any *Error of the same kind.
var (
	ErrPathEncoding      = &Error{Kind: KindPathEncoding}
	ErrInputFormat       = &Error{Kind: KindInputFormat}
	ErrOutputFormat      = &Error{Kind: KindOutputFormat}
	ErrFilterValue       = &Error{Kind: KindFilterValue}
	ErrSortColumnMissing = &Error{Kind: KindSortColumnMissing}
)

func (e *Error) Error() string {
	switch e.Kind {
	case KindPathEncoding:
		return "invalid path encoding " + strconv.Quote(e.Path)
	case KindInputFormat:
		return "invalid input format " + strconv.Quote(e.Path)
	case KindOutputFormat:
		return "invalid output format " + e.Format.String()
	case KindFilterValue:
		return "invalid filter value " + strconv.Quote(e.Message)
	case KindSortColumnMissing:
		return "column name missing"
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

func (e *Error) Unwrap() error {
	return e.Err
}
