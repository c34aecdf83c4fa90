package driver

import (
	"github.com/datazip-inc/source-shopify/types"
	"github.com/datazip-inc/source-shopify/utils/typeutils"
)

// updatedState computes the next high-water state for a stream from its
// current state and the latest yielded record. Timestamp cursors take the
// lexicographic max with an empty-string floor (ISO-8601 strings sort
// correctly); id cursors take the numeric max with a 0 floor, since
// max("", "123") is meaningless for numbers.
func updatedState(descriptor *StreamDescriptor, current map[string]any, latest types.Record) map[string]any {
	if descriptor.NumericCursor {
		latestValue, _ := typeutils.ToFloat64(latest[descriptor.CursorField])
		currentValue, _ := typeutils.ToFloat64(current[descriptor.CursorField])
		return map[string]any{descriptor.CursorField: max(latestValue, currentValue)}
	}

	latestValue := stringCursor(latest[descriptor.CursorField])
	currentValue := stringCursor(current[descriptor.CursorField])

	return map[string]any{descriptor.CursorField: max(latestValue, currentValue)}
}

// bridgeToTemp records the stream's low-water mark on the bridge: the
// minimum of the incoming state and the latest record's cursor, lowered
// further against any previously bridged value. A child stream resuming
// from this mark replays every parent record the current run has touched,
// so late sub-resource updates are not skipped. With no incoming state the
// bridge stays empty and children rescan the parent in full.
func bridgeToTemp(bridge *types.TempState, descriptor *StreamDescriptor, incoming map[string]any, latest types.Record) {
	if len(incoming) == 0 {
		return
	}

	incomingValue := incoming[descriptor.CursorField]
	latestValue := latest[descriptor.CursorField]

	low := incomingValue
	if typeutils.Compare(latestValue, incomingValue) < 0 {
		low = latestValue
	}

	bridge.LowerTo(descriptor.Name, descriptor.CursorField, low)
}

// filterNewerThanState drops records whose cursor value is strictly below
// the stored state; records equal to the state value are kept. Child
// endpoints accept no server-side time filter, so date-bounding happens
// here, client-side post-fetch. Without state all records pass unchanged.
func filterNewerThanState(descriptor *StreamDescriptor, state map[string]any, records []types.Record) []types.Record {
	if len(state) == 0 {
		return records
	}

	filtered := make([]types.Record, 0, len(records))
	for _, record := range records {
		if recordNewerThanState(descriptor, state, record) {
			filtered = append(filtered, record)
		}
	}

	return filtered
}

func recordNewerThanState(descriptor *StreamDescriptor, state map[string]any, record types.Record) bool {
	stateValue, found := state[descriptor.CursorField]
	if !found {
		return true
	}

	return typeutils.Compare(record[descriptor.CursorField], stateValue) >= 0
}

func stringCursor(value any) string {
	str, ok := value.(string)
	if !ok {
		return ""
	}

	return str
}
