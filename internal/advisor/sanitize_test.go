package advisor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeSQL(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"fenced with language tag", "```sql\nSELECT 1;\n```", "SELECT 1"},
		{"fenced uppercase tag", "```SQL\nSELECT 1\n```", "SELECT 1"},
		{"bare fences", "```\nSELECT name FROM samsung_phones\n```", "SELECT name FROM samsung_phones"},
		{"inline fence", "```sql SELECT 1; ```", "SELECT 1"},
		{"trailing semicolon", "SELECT 1;", "SELECT 1"},
		{"surrounding whitespace", "  SELECT 1  ", "SELECT 1"},
		{"already clean", "SELECT name FROM samsung_phones LIMIT 5", "SELECT name FROM samsung_phones LIMIT 5"},
		{"empty", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, SanitizeSQL(tc.in))
		})
	}
}

func TestSanitizeSQLIdempotent(t *testing.T) {
	inputs := []string{
		"SELECT name FROM samsung_phones LIMIT 5",
		"```sql\nSELECT 1;\n```",
		"  SELECT 1;  ",
	}
	for _, in := range inputs {
		once := SanitizeSQL(in)
		assert.Equal(t, once, SanitizeSQL(once))
	}
}

func TestValidateSQL(t *testing.T) {
	assert.NoError(t, validateSQL("SELECT name FROM samsung_phones"))
	assert.NoError(t, validateSQL("WITH t AS (SELECT 1) SELECT * FROM t"))
	assert.NoError(t, validateSQL("select name from samsung_phones"))

	assert.ErrorIs(t, validateSQL(""), errQueryTooShort)
	assert.ErrorIs(t, validateSQL("no"), errQueryTooShort)
	assert.ErrorIs(t, validateSQL("SELECT 1"), errQueryTooShort)
	assert.ErrorIs(t, validateSQL("DELETE FROM samsung_phones"), errNotSelect)
	assert.ErrorIs(t, validateSQL("UPDATE samsung_phones SET name = 'x'"), errNotSelect)
}
