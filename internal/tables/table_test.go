package tables

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	text := `Here is the table:
Item | Quantity | Unit price
Cement | 40 | 12.5
Steel bars|10|300
Thank you.`

	got, err := Parse(text)
	require.NoError(t, err)
	assert.Equal(t, []string{"Item", "Quantity", "Unit price"}, got.Headers)
	assert.Equal(t, [][]string{{"Cement", "40", "12.5"}, {"Steel bars", "10", "300"}}, got.Rows)
}

func TestParseMarkdown(t *testing.T) {
	text := `| Role | Count |
|------|:-----:|
| Engineer | 3 |`

	got, err := Parse(text)
	require.NoError(t, err)
	assert.Equal(t, []string{"Role", "Count"}, got.Headers)
	assert.Equal(t, [][]string{{"Engineer", "3"}}, got.Rows)
}

func TestParseHeaderOnly(t *testing.T) {
	got, err := Parse("a|b")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, got.Headers)
	assert.NotNil(t, got.Rows)
	assert.Empty(t, got.Rows)
}

func TestParseErrors(t *testing.T) {
	_, err := Parse("   \n ")
	assert.ErrorIs(t, err, ErrEmptyText)

	_, err = Parse("no table here")
	assert.ErrorIs(t, err, ErrNoTable)
}

func TestPlainText(t *testing.T) {
	tbl := Table{
		Headers: []string{"Item", "Qty"},
		Rows:    [][]string{{"Cement", "40"}, {"Sand", "2"}},
	}
	assert.Equal(t, "Item|Qty\nCement|40\nSand|2", tbl.PlainText())

	assert.Equal(t, "Item|Qty\n", Table{Headers: []string{"Item", "Qty"}}.PlainText())
}

func TestPlainTextParsesBack(t *testing.T) {
	tbl := Table{
		Headers: []string{"Item", "Qty"},
		Rows:    [][]string{{"Cement", "40"}},
	}
	back, err := Parse(tbl.PlainText())
	require.NoError(t, err)
	assert.Equal(t, tbl, back)
}

func TestIsKnown(t *testing.T) {
	for _, n := range Names() {
		assert.True(t, IsKnown(n), n)
	}
	assert.False(t, IsKnown("Random_Table"))
	assert.Equal(t, BillOfQuantities, DefaultTableName)
}
