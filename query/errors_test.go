package query

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_Messages(t *testing.T) {
	tests := []struct {
		err  *Error
		want string
	}{
		{&Error{Kind: KindPathEncoding, Path: "in\xff.csv"}, `invalid path encoding "in\xff.csv"`},
		{&Error{Kind: KindInputFormat, Path: "data.txt"}, `invalid input format "data.txt"`},
		{&Error{Kind: KindOutputFormat, Format: Undefined}, "invalid output format undefined"},
		{&Error{Kind: KindFilterValue, Message: "invalid syntax"}, `invalid filter value "invalid syntax"`},
		{&Error{Kind: KindSortColumnMissing}, "column name missing"},
	}

	for _, tt := range tests {
		t.Run(string(tt.err.Kind), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestError_Is(t *testing.T) {
	err := fmt.Errorf("run: %w", &Error{Kind: KindInputFormat, Path: "x"})

	assert.True(t, errors.Is(err, ErrInputFormat))
	assert.False(t, errors.Is(err, ErrOutputFormat))

	var qe *Error
	assert.True(t, errors.As(err, &qe))
	assert.Equal(t, "x", qe.Path)
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("cause")
	err := &Error{Kind: KindFilterValue, Message: "m", Err: cause}

	assert.True(t, errors.Is(err, cause))
	assert.True(t, errors.Is(err, ErrFilterValue))
}
