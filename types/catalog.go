package types

// ConfiguredCatalog is a dto for formatted catalog serialization
type Catalog struct {
	Streams []*ConfiguredStream `json:"streams,omitempty"`
}

func GetWrappedCatalog(streams []*Stream) *Catalog {
	catalog := &Catalog{
		Streams: []*ConfiguredStream{},
	}

	for _, stream := range streams {
		catalog.Streams = append(catalog.Streams, &ConfiguredStream{
			Stream:      stream,
			SyncMode:    INCREMENTAL,
			CursorField: stream.DefaultCursorField,
		})
	}

	return catalog
}
