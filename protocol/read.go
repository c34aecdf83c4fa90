package protocol

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/datazip-inc/source-shopify/constants"
	"github.com/datazip-inc/source-shopify/types"
	"github.com/datazip-inc/source-shopify/utils"
	"github.com/datazip-inc/source-shopify/utils/logger"
)

// readCmd represents the read command
var readCmd = &cobra.Command{
	Use:   "read",
	Short: "read command",
	PreRunE: func(_ *cobra.Command, _ []string) error {
		if configPath == "" {
			return fmt.Errorf("--config not passed")
		} else if catalogPath == "" {
			return fmt.Errorf("--catalog not passed")
		}

		// unmarshal source config
		if err := utils.UnmarshalFile(configPath, connector.GetConfigRef()); err != nil {
			return err
		}

		catalog = &types.Catalog{}
		if err := utils.UnmarshalFile(catalogPath, catalog); err != nil {
			return err
		}

		// default state
		state = types.NewState()
		if statePath != "" {
			if err := utils.UnmarshalFile(statePath, state); err != nil {
				return err
			}
			state.RWMutex = &sync.RWMutex{}
		}

		return nil
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := connector.Setup(cmd.Context()); err != nil {
			return err
		}
		connector.SetupState(state)

		// Get Source Streams
		streamsMap := types.StreamsToMap(connector.Discover()...)

		// Validating configured streams against the source
		selectedStreams := []string{}
		validStreams := []*types.ConfiguredStream{}
		for _, elem := range catalog.Streams {
			source, found := streamsMap[elem.ID()]
			if !found {
				logger.Warnf("Skipping; Configured Stream %s not found in source", elem.ID())
				continue
			}

			if err := elem.Validate(source); err != nil {
				logger.Warnf("Skipping; Configured Stream %s found invalid due to reason: %s", elem.ID(), err)
				continue
			}

			selectedStreams = append(selectedStreams, elem.ID())
			validStreams = append(validStreams, elem)
		}

		syncID := utils.ULID()
		logger.Infof("Sync[%s]: valid selected streams are %s", syncID, strings.Join(selectedStreams, ", "))

		totalRecords := int64(0)
		readers := make([]func() error, 0, len(validStreams))
		for _, stream := range validStreams {
			readers = append(readers, func() error {
				logger.Infof("Sync[%s]: reading stream %s", syncID, stream.ID())

				streamStartTime := time.Now()
				recordCount := int64(0)
				err := connector.Read(cmd.Context(), stream, func(record types.Record) error {
					logger.LogRecord(stream.Name(), record)
					recordCount++
					totalRecords++

					// state is eligible for persistence once per page of records
					if recordCount%constants.PageSize == 0 {
						logger.LogState(state)
					}

					return nil
				})
				if err != nil {
					return fmt.Errorf("error occurred while reading records from %s: %s", stream.ID(), err)
				}

				logger.Infof("Sync[%s]: finished reading stream %s[%d records] in %s", syncID, stream.Name(), recordCount, time.Since(streamStartTime).String())
				return nil
			})
		}

		// a failed stream aborts its own sync only; remaining streams still
		// run and errors are accumulated
		err := utils.ErrExecSequential(readers...)

		logger.Infof("Sync[%s]: total records read: %d", syncID, totalRecords)
		if !state.IsZero() {
			logger.LogState(state)
		}

		return err
	},
}
