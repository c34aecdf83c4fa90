package driver

import (
	"context"
	"fmt"

	"github.com/datazip-inc/source-shopify/utils/logger"

	"github.com/datazip-inc/source-shopify/types"
)

// sliceCoordinator feeds a child stream from its parent's records. The
// parent handle is injected at construction; the coordinator never
// re-instantiates it.
type sliceCoordinator struct {
	driver *Shopify
	parent *StreamDescriptor
	bridge *types.TempState
}

func newSliceCoordinator(driver *Shopify, parent *StreamDescriptor, bridge *types.TempState) *sliceCoordinator {
	return &sliceCoordinator{
		driver: driver,
		parent: parent,
		bridge: bridge,
	}
}

// readSlices replays the parent stream from its bridged low-water state
// (read-only with respect to the parent's persisted state) and runs one
// child fetch cycle per parent record. childState bounds the child's
// records client-side after each slice is fetched.
//
// The replay set is bounded by the parent's cursor: a sub-resource changing
// without bumping its parent's timestamp stays invisible here.
func (c *sliceCoordinator) readSlices(ctx context.Context, child *StreamDescriptor, childState map[string]any, fn recordFn) error {
	var parentCursor any
	if parentState := c.bridge.GetStreamState(c.parent.Name); parentState != nil {
		parentCursor = parentState[c.parent.CursorField]
	}

	return c.driver.readPages(ctx, c.parent, nil, parentCursor, func(parentRecord types.Record) error {
		parentID, found := parentRecord[c.parent.PrimaryKey]
		if !found {
			return fmt.Errorf("stream[%s] record has no primary key %s", c.parent.Name, c.parent.PrimaryKey)
		}

		slice := &Slice{Key: child.SliceKey, ParentID: parentID}
		logger.Debugf("stream[%s]: reading slice %s=%v", child.Name, slice.Key, slice.ParentID)

		return c.driver.readPages(ctx, child, slice, nil, func(record types.Record) error {
			if !recordNewerThanState(child, childState, record) {
				return nil
			}

			return fn(record)
		})
	})
}
