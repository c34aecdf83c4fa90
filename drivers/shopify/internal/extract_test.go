package driver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractRecords(t *testing.T) {
	payload := []byte(`{"customers":[{"id":1},{"id":2}]}`)

	records, err := extractRecords(payload, "customers")
	require.NoError(t, err)
	require.Equal(t, 2, len(records))
	assert.Equal(t, float64(1), records[0]["id"])

	// absent data field is an empty page, not a failure
	records, err = extractRecords([]byte(`{"errors":"Not Found"}`), "customers")
	require.NoError(t, err)
	assert.Empty(t, records)

	// no data field configured: the payload is the record list
	records, err = extractRecords([]byte(`[{"id":3}]`), "")
	require.NoError(t, err)
	require.Equal(t, 1, len(records))
	assert.Equal(t, float64(3), records[0]["id"])

	_, err = extractRecords([]byte(`not-json`), "customers")
	assert.Error(t, err)
}
