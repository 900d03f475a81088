package store

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldsMatchColumns(t *testing.T) {
	rec := PhoneRecord{
		URL:  "https://example.com/p",
		Name: "Galaxy S25",
	}
	fields := rec.Fields()
	require.Len(t, fields, len(phoneColumns))
	assert.Equal(t, "https://example.com/p", fields[0])
	assert.Equal(t, "Galaxy S25", fields[1])
}

// Every column name doubles as the record's JSON key, so scraped JSON
// round-trips into the same shape the upsert writes.
func TestColumnsAreJSONKeys(t *testing.T) {
	data, err := json.Marshal(PhoneRecord{})
	require.NoError(t, err)

	var asMap map[string]any
	require.NoError(t, json.Unmarshal(data, &asMap))

	for _, col := range phoneColumns {
		assert.Contains(t, asMap, col)
	}
	assert.Len(t, asMap, len(phoneColumns))
}

func TestPhoneColumnsReturnsCopy(t *testing.T) {
	cols := PhoneColumns()
	cols[0] = "mutated"
	assert.Equal(t, "url", phoneColumns[0])
}

func TestNormalizeValue(t *testing.T) {
	assert.Nil(t, normalizeValue(nil))
	assert.Equal(t, "hello", normalizeValue([]byte("hello")))
	assert.Equal(t, int64(7), normalizeValue(int64(7)))

	ts := time.Date(2025, 2, 3, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "2025-02-03T12:00:00Z", normalizeValue(ts))
}
