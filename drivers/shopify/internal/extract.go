package driver

import (
	"fmt"

	"github.com/goccy/go-json"

	"github.com/datazip-inc/source-shopify/types"
)

// extractRecords unwraps the record list from a page payload. A configured
// data field that is absent from the payload yields an empty page, not a
// failure; with no data field the payload itself is the record list.
func extractRecords(payload []byte, dataField string) ([]types.Record, error) {
	if dataField == "" {
		var records []types.Record
		if err := json.Unmarshal(payload, &records); err != nil {
			return nil, fmt.Errorf("failed to parse page payload: %s", err)
		}
		return records, nil
	}

	page := map[string]json.RawMessage{}
	if err := json.Unmarshal(payload, &page); err != nil {
		return nil, fmt.Errorf("failed to parse page payload: %s", err)
	}

	raw, found := page[dataField]
	if !found {
		return nil, nil
	}

	var records []types.Record
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("failed to parse field[%s] of page payload: %s", dataField, err)
	}

	return records, nil
}
