package markup

import (
	"fmt"
	"strings"
)

// Table returns a table skeleton with a header row of "Header N" cells and
// rows x cols body cells labeled "Cell r,c". Non-positive dimensions are
// clamped to 1.
func Table(rows, cols int) string {
	if rows < 1 {
		rows = 1
	}
	if cols < 1 {
		cols = 1
	}

	var b strings.Builder
	b.WriteString("<table>\n")

	b.WriteString("  <thead>\n    <tr>\n")
	for c := 1; c <= cols; c++ {
		fmt.Fprintf(&b, "      <th>Header %d</th>\n", c)
	}
	b.WriteString("    </tr>\n  </thead>\n")

	b.WriteString("  <tbody>\n")
	for r := 1; r <= rows; r++ {
		b.WriteString("    <tr>\n")
		for c := 1; c <= cols; c++ {
			fmt.Fprintf(&b, "      <td>Cell %d,%d</td>\n", r, c)
		}
		b.WriteString("    </tr>\n")
	}
	b.WriteString("  </tbody>\n")

	b.WriteString("</table>\n")
	return b.String()
}
