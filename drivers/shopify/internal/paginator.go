package driver

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/datazip-inc/source-shopify/constants"
	"github.com/datazip-inc/source-shopify/types"
	"github.com/datazip-inc/source-shopify/utils"
	"github.com/datazip-inc/source-shopify/utils/typeutils"
)

type recordFn func(record types.Record) error

// readPages drives the page loop for one stream (or one slice of a child
// stream) to exhaustion. The first request carries the stream's own
// parameters; once the server hands back a page token, only the token's
// parameters are sent since upstream rejects cursors mixed with filters.
func (s *Shopify) readPages(ctx context.Context, descriptor *StreamDescriptor, slice *Slice, cursorValue any, fn recordFn) error {
	params := firstPageParams(descriptor, cursorValue, s.config.StartDate)

	for {
		payload, token, err := s.client.Fetch(ctx, descriptor.Endpoint(slice), params)
		if err != nil {
			return err
		}

		records, err := extractRecords(payload, descriptor.DataField)
		if err != nil {
			return fmt.Errorf("stream[%s]: %s", descriptor.Name, err)
		}

		if err := utils.ForEach(records, fn); err != nil {
			return err
		}

		if token == nil {
			return nil
		}

		params = url.Values(token)
	}
}

// firstPageParams builds the request parameters for the first page:
// ascending server-side sort on the order field plus a filter bounding
// results by the last synced cursor value. The ascending sort is what makes
// tail-filtering against state valid downstream.
func firstPageParams(descriptor *StreamDescriptor, cursorValue any, startDate string) url.Values {
	params := url.Values{}
	params.Set("limit", strconv.Itoa(constants.PageSize))
	params.Set("order", fmt.Sprintf("%s asc", descriptor.OrderField))

	switch {
	case cursorValue != nil:
		params.Set(descriptor.FilterField, typeutils.FormatValue(cursorValue))
	case descriptor.NumericCursor:
		// id-cursored streams seed at 0 when no state exists
		params.Set(descriptor.FilterField, "0")
	default:
		params.Set(descriptor.FilterField, startDate)
	}

	for key, value := range descriptor.ExtraParams {
		params.Set(key, value)
	}

	return params
}
