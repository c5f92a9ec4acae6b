package query

import (
	"errors"
	"strconv"

	"github.com/vegasq/mdata/engine"
	"github.com/vegasq/mdata/table"
)

// CoerceFilterValue turns the raw filter value into a literal comparable
// with a column of type dt.
//
// Every numeric type coerces to a Float64 literal. Integer columns get no
// narrowing check, so "3.5" against an Int64 column is accepted and simply
// matches nothing.
func CoerceFilterValue(dt table.DataType, raw string) (engine.Literal, error) {
	switch dt {
	case table.Boolean:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return engine.Literal{}, filterValueError(err)
		}
		return engine.Bool(b), nil
	case table.Utf8:
		return engine.Utf8(raw), nil
	case table.Int32, table.Int64, table.Float32, table.Float64:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return engine.Literal{}, filterValueError(err)
		}
		return engine.Float64(f), nil
	case table.Null, table.Binary, table.Date, table.Timestamp, table.List, table.Struct:
		return engine.Literal{}, &Error{Kind: KindFilterValue, Message: "invalid filter value"}
	}
	panic("query: unknown data type " + dt.String())
}

// filterValueError keeps the parser's message without the strconv prefix.
func filterValueError(err error) error {
	msg := err.Error()
	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		msg = numErr.Err.Error()
	}
	return &Error{Kind: KindFilterValue, Message: msg, Err: err}
}
