package table

import (
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
)

// Render writes the schema as a text table with one line per column.
func (s Schema) Render(w io.Writer) {
	tw := tablewriter.NewWriter(w)
	tw.SetHeader([]string{"#", "Column", "Type", "Nullable"})
	tw.SetAutoFormatHeaders(false)
	tw.SetAlignment(tablewriter.ALIGN_LEFT)
	for i, f := range s.Fields {
		tw.Append([]string{strconv.Itoa(i), f.Name, f.Type.String(), strconv.FormatBool(f.Nullable)})
	}
	tw.Render()
}

// String renders the schema as a text table.
func (s Schema) String() string {
	var sb strings.Builder
	s.Render(&sb)
	return sb.String()
}
