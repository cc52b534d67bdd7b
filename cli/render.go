package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/ledgersheet-dev/ledgersheet/output"
	"github.com/ledgersheet-dev/ledgersheet/table"
)

const columnGap = "  "

// renderMatrix writes an output matrix as an aligned terminal table: the two
// header rows styled as headers, label column left-aligned, value columns
// right-aligned. Padding is computed on the unstyled text so ANSI sequences
// never skew the alignment.
func renderMatrix(w io.Writer, m table.Matrix) {
	if len(m) == 0 {
		return
	}
	styles := output.NewStyles(w)

	widths := columnWidths(m)
	for rowIdx, row := range m {
		cells := make([]string, len(row))
		for colIdx, cell := range row {
			text := cell.String()
			padded := pad(text, widths[colIdx], colIdx == 0)
			cells[colIdx] = styleCell(styles, padded, rowIdx, cell)
		}
		_, _ = fmt.Fprintln(w, strings.TrimRight(strings.Join(cells, columnGap), " "))
	}
}

func columnWidths(m table.Matrix) []int {
	var widths []int
	for _, row := range m {
		for colIdx, cell := range row {
			if colIdx >= len(widths) {
				widths = append(widths, 0)
			}
			if w := runewidth.StringWidth(cell.String()); w > widths[colIdx] {
				widths[colIdx] = w
			}
		}
	}
	return widths
}

func pad(text string, width int, leftAlign bool) string {
	gap := width - runewidth.StringWidth(text)
	if gap <= 0 {
		return text
	}
	if leftAlign {
		return text + strings.Repeat(" ", gap)
	}
	return strings.Repeat(" ", gap) + text
}

func styleCell(styles *output.Styles, text string, rowIdx int, cell table.Value) string {
	switch {
	case rowIdx < 2:
		return styles.Header(text)
	case cell.Kind == table.Number:
		return styles.Amount(text)
	case strings.Contains(text, "TOTAL: "):
		return styles.Total(text)
	default:
		return styles.Account(text)
	}
}
