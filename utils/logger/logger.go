package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/datazip-inc/source-shopify/constants"
	"github.com/datazip-inc/source-shopify/types"
)

var (
	logger zerolog.Logger

	// protocol messages go to stdout as single JSON lines; logs go to
	// stderr and the rotating sync log file
	protocolWriter = os.Stdout
)

func init() {
	console := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	logger = zerolog.New(console).With().Timestamp().Logger()
}

// Init attaches the rotating file writer under CONFIG_FOLDER/logs; called
// once the root command has resolved the config folder.
func Init() {
	console := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	fileWriter := &lumberjack.Logger{
		Filename:   filepath.Join(viper.GetString(constants.ConfigFolder), "logs", fmt.Sprintf("sync_%s.log", time.Now().UTC().Format("2006_01_02_15_04_05"))),
		MaxSize:    100, // megabytes
		MaxBackups: 5,
		MaxAge:     30, // days
	}

	logger = zerolog.New(zerolog.MultiLevelWriter(console, fileWriter)).With().Timestamp().Logger()
}

func Info(v ...any) {
	logger.Info().Msg(fmt.Sprint(v...))
}

func Infof(format string, v ...any) {
	logger.Info().Msgf(format, v...)
}

func Debug(v ...any) {
	logger.Debug().Msg(fmt.Sprint(v...))
}

func Debugf(format string, v ...any) {
	logger.Debug().Msgf(format, v...)
}

func Warn(v ...any) {
	logger.Warn().Msg(fmt.Sprint(v...))
}

func Warnf(format string, v ...any) {
	logger.Warn().Msgf(format, v...)
}

func Error(v ...any) {
	logger.Error().Msg(fmt.Sprint(v...))
}

func Errorf(format string, v ...any) {
	logger.Error().Msgf(format, v...)
}

func Fatal(v ...any) {
	logger.Fatal().Msg(fmt.Sprint(v...))
}

func Fatalf(format string, v ...any) {
	logger.Fatal().Msgf(format, v...)
}

func emit(message types.Message) {
	marshaled, err := json.Marshal(message)
	if err != nil {
		logger.Error().Msgf("failed to marshal %s message: %s", message.Type, err)
		return
	}

	fmt.Fprintln(protocolWriter, string(marshaled))
}

// LogRecord emits one RECORD message for the stream
func LogRecord(stream string, record types.Record) {
	emit(types.Message{
		Type: types.RecordMessage,
		Record: &types.RecordRow{
			Stream: stream,
			Data:   record,
		},
	})
}

// LogState emits a STATE message and persists the state file at STATE_PATH
func LogState(state *types.State) {
	emit(types.Message{
		Type:  types.StateMessage,
		State: state,
	})

	state.RLock()
	marshaled, err := json.MarshalIndent(state, "", "  ")
	state.RUnlock()
	if err != nil {
		logger.Error().Msgf("failed to marshal state: %s", err)
		return
	}

	if err := os.WriteFile(viper.GetString(constants.StatePath), marshaled, 0o644); err != nil {
		logger.Error().Msgf("failed to write state file: %s", err)
	}
}

// LogCatalog emits a CATALOG message and persists the streams file at STREAMS_PATH
func LogCatalog(streams []*types.Stream) {
	catalog := types.GetWrappedCatalog(streams)
	emit(types.Message{
		Type:    types.CatalogMessage,
		Catalog: catalog,
	})

	marshaled, err := json.MarshalIndent(catalog, "", "  ")
	if err != nil {
		logger.Error().Msgf("failed to marshal catalog: %s", err)
		return
	}

	if err := os.WriteFile(viper.GetString(constants.StreamsPath), marshaled, 0o644); err != nil {
		logger.Error().Msgf("failed to write streams file: %s", err)
	}
}

// LogSpec emits a SPEC message with the connector's config specification
func LogSpec(spec map[string]any) {
	emit(types.Message{
		Type: types.SpecMessage,
		Spec: spec,
	})
}

// LogConnectionStatus emits a CONNECTION_STATUS message; cause is empty on success
func LogConnectionStatus(status types.ConnectionStatus, cause string) {
	emit(types.Message{
		Type: types.ConnectionStatusMessage,
		ConnectionStatus: &types.StatusRow{
			Status:  status,
			Message: cause,
		},
	})
}
