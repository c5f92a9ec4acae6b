package query

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format is a tabular file format.
type Format int

const (
	// Undefined means no format could be determined. It is never a valid
	// write target.
	Undefined Format = iota
	CSV
	Parquet
)

func (f Format) String() string {
	switch f {
	case Undefined:
		return "undefined"
	case CSV:
		return "csv"
	case Parquet:
		return "parquet"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// Set parses a format name, so Format can be used as a flag value.
func (f *Format) Set(s string) error {
	switch strings.ToLower(s) {
	case "undefined":
		*f = Undefined
	case "csv":
		*f = CSV
	case "parquet":
		*f = Parquet
	default:
		return fmt.Errorf("must be one of csv, parquet, undefined")
	}
	return nil
}

// Type names the flag value type in help output.
func (f *Format) Type() string {
	return "format"
}

// extension returns the file extension written for f, without the dot.
func (f Format) extension() string {
	switch f {
	case CSV:
		return "csv"
	case Parquet:
		return "parquet"
	case Undefined:
		return "txt"
	}
	panic(fmt.Sprintf("query: unknown format %d", int(f)))
}

// SortOrder is the direction of a sort.
type SortOrder int

const (
	// SortUnspecified means no direction was given.
	SortUnspecified SortOrder = iota
	Ascending
	Descending
)

func (o SortOrder) String() string {
	switch o {
	case SortUnspecified:
		return ""
	case Ascending:
		return "asc"
	case Descending:
		return "desc"
	}
	return fmt.Sprintf("SortOrder(%d)", int(o))
}

// Set parses asc or desc, so SortOrder can be used as a flag value.
func (o *SortOrder) Set(s string) error {
	switch strings.ToLower(s) {
	case "asc":
		*o = Ascending
	case "desc":
		*o = Descending
	default:
		return fmt.Errorf("must be one of asc, desc")
	}
	return nil
}

// Type names the flag value type in help output.
func (o *SortOrder) Type() string {
	return "order"
}

// InferFormat returns the format named by the extension of path.
// Matching is case sensitive, so "data.CSV" is Undefined.
func InferFormat(path string) Format {
	ext, ok := extension(path)
	if !ok {
		return Undefined
	}

	switch ext {
	case "csv":
		return CSV
	case "parquet":
		return Parquet
	default:
		return Undefined
	}
}

// ResolveOutputFormat picks the format to write. An explicit format wins;
// otherwise the input format is reused, which may itself be Undefined.
func ResolveOutputFormat(explicit, inferred Format) Format {
	if explicit != Undefined {
		return explicit
	}
	return inferred
}

// EnsureExtension appends the extension for f when path has none.
// A path that already has an extension is returned unchanged, even if it
// does not match f.
func EnsureExtension(path string, f Format) string {
	if _, ok := extension(path); ok {
		return path
	}

	trimmed := strings.TrimRight(path, string(filepath.Separator))
	base := filepath.Base(trimmed)
	if trimmed == "" || base == "." || base == ".." {
		return path
	}
	return trimmed + "." + f.extension()
}

// extension reports the text after the last dot of the final path element.
// A leading dot does not start an extension, so ".csv" has none, while
// "name." has an empty one.
func extension(path string) (string, bool) {
	trimmed := strings.TrimRight(path, string(filepath.Separator))
	if trimmed == "" {
		return "", false
	}

	base := filepath.Base(trimmed)
	if base == "." || base == ".." {
		return "", false
	}

	i := strings.LastIndexByte(base, '.')
	if i <= 0 {
		return "", false
	}
	return base[i+1:], true
}
