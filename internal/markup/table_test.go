package markup

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTable2x2(t *testing.T) {
	want := "<table>\n" +
		"  <thead>\n" +
		"    <tr>\n" +
		"      <th>Header 1</th>\n" +
		"      <th>Header 2</th>\n" +
		"    </tr>\n" +
		"  </thead>\n" +
		"  <tbody>\n" +
		"    <tr>\n" +
		"      <td>Cell 1,1</td>\n" +
		"      <td>Cell 1,2</td>\n" +
		"    </tr>\n" +
		"    <tr>\n" +
		"      <td>Cell 2,1</td>\n" +
		"      <td>Cell 2,2</td>\n" +
		"    </tr>\n" +
		"  </tbody>\n" +
		"</table>\n"

	assert.Equal(t, want, Table(2, 2))
}

func TestTableDimensions(t *testing.T) {
	got := Table(3, 4)
	assert.Equal(t, 4, strings.Count(got, "<th>"))
	assert.Equal(t, 12, strings.Count(got, "<td>"))
	assert.Equal(t, 4, strings.Count(got, "<tr>")) // one header row plus three body rows
	assert.Contains(t, got, "<td>Cell 3,4</td>")
}

func TestTableClampsToOne(t *testing.T) {
	got := Table(0, -2)
	assert.Contains(t, got, "<th>Header 1</th>")
	assert.Contains(t, got, "<td>Cell 1,1</td>")
	assert.Equal(t, 1, strings.Count(got, "<td>"))
}
