package driver

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/datazip-inc/source-shopify/types"
)

func timestampDescriptor() *StreamDescriptor {
	descriptor, _ := descriptorFor("orders")
	return descriptor
}

func numericDescriptor() *StreamDescriptor {
	descriptor, _ := descriptorFor("collects")
	return descriptor
}

func TestUpdatedStateTimestampCursor(t *testing.T) {
	descriptor := timestampDescriptor()

	got := updatedState(descriptor, map[string]any{}, types.Record{"updated_at": "2021-01-01"})
	assert.Equal(t, map[string]any{"updated_at": "2021-01-01"}, got)

	// older record never regresses the state
	got = updatedState(descriptor, map[string]any{"updated_at": "2021-02-01"}, types.Record{"updated_at": "2021-01-15"})
	assert.Equal(t, map[string]any{"updated_at": "2021-02-01"}, got)

	// idempotent under repeated application with the same record
	again := updatedState(descriptor, got, types.Record{"updated_at": "2021-01-15"})
	assert.Equal(t, got, again)

	// record missing the cursor field falls back to the empty-string floor
	got = updatedState(descriptor, map[string]any{"updated_at": "2021-02-01"}, types.Record{})
	assert.Equal(t, map[string]any{"updated_at": "2021-02-01"}, got)
}

func TestUpdatedStateNumericCursor(t *testing.T) {
	descriptor := numericDescriptor()

	got := updatedState(descriptor, map[string]any{"id": float64(5)}, types.Record{"id": float64(3)})
	assert.Equal(t, map[string]any{"id": float64(5)}, got)

	// numeric default is 0, not empty-string
	got = updatedState(descriptor, map[string]any{}, types.Record{"id": float64(3)})
	assert.Equal(t, map[string]any{"id": float64(3)}, got)
}

func TestBridgeToTempTracksMinimum(t *testing.T) {
	descriptor := timestampDescriptor()
	bridge := types.NewTempState()

	// no incoming state: nothing is bridged, children rescan in full
	bridgeToTemp(bridge, descriptor, nil, types.Record{"updated_at": "2021-05-01"})
	assert.Nil(t, bridge.GetStreamState("orders"))

	// min(current, latest) is recorded
	bridgeToTemp(bridge, descriptor, map[string]any{"updated_at": "2021-03-01"}, types.Record{"updated_at": "2021-05-01"})
	assert.Equal(t, "2021-03-01", bridge.GetStreamState("orders")["updated_at"])

	// successive calls keep min(V1, V2), never max
	bridgeToTemp(bridge, descriptor, map[string]any{"updated_at": "2021-03-01"}, types.Record{"updated_at": "2021-02-01"})
	assert.Equal(t, "2021-02-01", bridge.GetStreamState("orders")["updated_at"])

	bridgeToTemp(bridge, descriptor, map[string]any{"updated_at": "2021-06-01"}, types.Record{"updated_at": "2021-07-01"})
	assert.Equal(t, "2021-02-01", bridge.GetStreamState("orders")["updated_at"])
}

func TestFilterNewerThanState(t *testing.T) {
	descriptor, _ := descriptorFor("order_refunds")

	records := []types.Record{
		{"created_at": "2021-05-01"},
		{"created_at": "2021-06-01"},
		{"created_at": "2021-07-01"},
	}

	// equal to state is kept, strictly older is dropped
	filtered := filterNewerThanState(descriptor, map[string]any{"created_at": "2021-06-01"}, records)
	assert.Equal(t, []types.Record{{"created_at": "2021-06-01"}, {"created_at": "2021-07-01"}}, filtered)

	// no state passes everything unchanged
	assert.Equal(t, records, filterNewerThanState(descriptor, nil, records))

	// state lacking the cursor field passes everything
	assert.Equal(t, records, filterNewerThanState(descriptor, map[string]any{"other": 1}, records))
}
