// Package export renders tabular data as CSV for download.
package export

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Table is column headers plus rows of cell values, ready to render.
type Table struct {
	Headers []string
	Rows    [][]any
}

// WriteCSV renders the table. The header row is written bare; in data
// rows, string cells are wrapped in double quotes and embedded quotes
// doubled, while numeric cells are written as-is. Monetary values are
// written with two decimals.
func WriteCSV(w io.Writer, t Table) error {
	if _, err := io.WriteString(w, strings.Join(t.Headers, ",")+"\n"); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	var sb strings.Builder
	for _, row := range t.Rows {
		sb.Reset()
		for i, cell := range row {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(formatCell(cell))
		}
		sb.WriteByte('\n')
		if _, err := io.WriteString(w, sb.String()); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	return nil
}

func formatCell(v any) string {
	switch c := v.(type) {
	case string:
		return `"` + strings.ReplaceAll(c, `"`, `""`) + `"`
	case float64:
		return strconv.FormatFloat(c, 'f', 2, 64)
	case float32:
		return strconv.FormatFloat(float64(c), 'f', 2, 64)
	default:
		return fmt.Sprint(c)
	}
}
