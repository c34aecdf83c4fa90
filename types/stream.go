package types

type SyncMode string

const (
	FULLREFRESH SyncMode = "full_refresh"
	INCREMENTAL SyncMode = "incremental"
)

// Stream is a source-defined stream as advertised by discover
type Stream struct {
	Name                    string     `json:"name"`
	SupportedSyncModes      []SyncMode `json:"supported_sync_modes,omitempty"`
	SourceDefinedPrimaryKey []string   `json:"source_defined_primary_key,omitempty"`
	AvailableCursorFields   []string   `json:"cursor_fields,omitempty"`
	DefaultCursorField      string     `json:"default_cursor_field,omitempty"`
}

func NewStream(name string) *Stream {
	return &Stream{
		Name: name,
	}
}

func (s *Stream) ID() string {
	return s.Name
}

func (s *Stream) WithSyncModes(modes ...SyncMode) *Stream {
	s.SupportedSyncModes = append(s.SupportedSyncModes, modes...)
	return s
}

func (s *Stream) WithPrimaryKey(keys ...string) *Stream {
	s.SourceDefinedPrimaryKey = append(s.SourceDefinedPrimaryKey, keys...)
	return s
}

func (s *Stream) WithCursorField(field string) *Stream {
	s.AvailableCursorFields = append(s.AvailableCursorFields, field)
	s.DefaultCursorField = field
	return s
}

// Wrap makes the Stream a ConfiguredStream with its default cursor selected
func (s *Stream) Wrap() *ConfiguredStream {
	return &ConfiguredStream{
		Stream:      s,
		CursorField: s.DefaultCursorField,
	}
}

func StreamsToMap(streams ...*Stream) map[string]*Stream {
	output := make(map[string]*Stream)
	for _, stream := range streams {
		output[stream.ID()] = stream
	}

	return output
}
