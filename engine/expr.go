package engine

import (
	"fmt"
	"strconv"

	"github.com/vegasq/mdata/table"
)

// Literal is a typed constant used in a comparison predicate.
type Literal struct {
	Type  table.DataType
	Value any
}

// Bool returns a Boolean literal.
func Bool(b bool) Literal {
	return Literal{Type: table.Boolean, Value: b}
}

// Float64 returns a Float64 literal.
func Float64(f float64) Literal {
	return Literal{Type: table.Float64, Value: f}
}

// Utf8 returns a Utf8 literal.
func Utf8(s string) Literal {
	return Literal{Type: table.Utf8, Value: s}
}

func (l Literal) String() string {
	switch v := l.Value.(type) {
	case string:
		return fmt.Sprintf("%s(%s)", l.Type, strconv.Quote(v))
	default:
		return fmt.Sprintf("%s(%v)", l.Type, v)
	}
}

// Column references a column by name.
type Column struct {
	Name string
}

// Col returns a reference to the named column.
func Col(name string) Column {
	return Column{Name: name}
}

// Eq builds the predicate column == literal.
func (c Column) Eq(l Literal) Expr {
	return Expr{Column: c.Name, Literal: l}
}

// Sort builds a sort key on the column.
func (c Column) Sort(ascending, nullsFirst bool) SortKey {
	return SortKey{Column: c.Name, Ascending: ascending, NullsFirst: nullsFirst}
}

// Expr is an equality predicate between a column and a literal.
//
// Null cells never match.
type Expr struct {
	Column  string
	Literal Literal
}

func (e Expr) String() string {
	return fmt.Sprintf("%s = %s", e.Column, e.Literal)
}

// bind resolves the predicate against a schema.
func (e Expr) bind(schema table.Schema) (func(table.Row) bool, error) {
	field, err := schema.FieldWithName(e.Column)
	if err != nil {
		return nil, err
	}
	idx := schema.IndexOf(e.Column)

	switch {
	case e.Literal.Type == table.Float64 && field.Type.IsNumeric():
		want := e.Literal.Value.(float64)
		return func(row table.Row) bool {
			got, ok := table.ToFloat64(row[idx])
			return ok && got == want
		}, nil
	case e.Literal.Type == table.Boolean && field.Type == table.Boolean:
		want := e.Literal.Value.(bool)
		return func(row table.Row) bool {
			got, ok := row[idx].(bool)
			return ok && got == want
		}, nil
	case e.Literal.Type == table.Utf8 && field.Type == table.Utf8:
		want := e.Literal.Value.(string)
		return func(row table.Row) bool {
			got, ok := row[idx].(string)
			return ok && got == want
		}, nil
	}

	return nil, fmt.Errorf("%w: column %q of type %s with %s literal", ErrTypeMismatch, e.Column, field.Type, e.Literal.Type)
}

// SortKey orders rows by one column.
type SortKey struct {
	Column     string
	Ascending  bool
	NullsFirst bool
}

func (k SortKey) String() string {
	dir, nulls := "DESC", "NULLS LAST"
	if k.Ascending {
		dir = "ASC"
	}
	if k.NullsFirst {
		nulls = "NULLS FIRST"
	}
	return fmt.Sprintf("%s %s %s", k.Column, dir, nulls)
}
