package types

// Record is one fetched entity; an arbitrary key/value mapping as returned
// by the API. Incremental streams rely on it containing the stream's cursor
// field and primary key.
type Record map[string]any

// Message is a dto for connector output row representation
type Message struct {
	Type             MessageType    `json:"type"`
	Log              *Log           `json:"log,omitempty"`
	ConnectionStatus *StatusRow     `json:"connectionStatus,omitempty"`
	State            *State         `json:"state,omitempty"`
	Record           *RecordRow     `json:"record,omitempty"`
	Catalog          *Catalog       `json:"catalog,omitempty"`
	Spec             map[string]any `json:"spec,omitempty"`
}

// Log is a dto for log row serialization
type Log struct {
	Level   string `json:"level,omitempty"`
	Message string `json:"message,omitempty"`
}

// StatusRow is a dto for connection check result serialization
type StatusRow struct {
	Status  ConnectionStatus `json:"status,omitempty"`
	Message string           `json:"message,omitempty"`
}

// RecordRow is a dto for emitted record serialization
type RecordRow struct {
	Stream string `json:"stream"`
	Data   Record `json:"data"`
}
