/*
 * Copyright 2025 Olake By Datazip
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package types

import (
	"sync"

	"github.com/datazip-inc/source-shopify/utils/typeutils"
)

type StateType string

const (
	// StreamType state is held per stream, keyed by stream name
	StreamType StateType = "STREAM"
)

// State is the externally persisted high-water state of a sync; cursor
// values are monotonically non-decreasing across committed syncs.
type State struct {
	*sync.RWMutex `json:"-"`
	Type          StateType      `json:"type"`
	Streams       []*StreamState `json:"streams"`
}

// StreamState maps cursor field -> last seen cursor value for one stream
type StreamState struct {
	Stream string         `json:"stream"`
	State  map[string]any `json:"state"`
}

func NewState() *State {
	return &State{
		RWMutex: &sync.RWMutex{},
		Type:    StreamType,
		Streams: []*StreamState{},
	}
}

func (s *State) IsZero() bool {
	s.RLock()
	defer s.RUnlock()

	for _, stream := range s.Streams {
		if len(stream.State) > 0 {
			return false
		}
	}

	return true
}

func (s *State) ResetStreams() {
	s.Lock()
	defer s.Unlock()

	s.Streams = []*StreamState{}
}

func (s *State) GetCursor(stream *ConfiguredStream, key string) any {
	if key == "" {
		return nil
	}

	s.RLock()
	defer s.RUnlock()

	for _, ss := range s.Streams {
		if ss.Stream == stream.ID() {
			return ss.State[key]
		}
	}

	return nil
}

func (s *State) SetCursor(stream *ConfiguredStream, key string, value any) {
	if key == "" {
		return
	}

	s.Lock()
	defer s.Unlock()

	for _, ss := range s.Streams {
		if ss.Stream == stream.ID() {
			// state files may carry "state": null for a stream
			if ss.State == nil {
				ss.State = map[string]any{}
			}
			ss.State[key] = value
			return
		}
	}

	s.Streams = append(s.Streams, &StreamState{
		Stream: stream.ID(),
		State:  map[string]any{key: value},
	})
}

// GetStreamState returns a copy of the stream's state mapping, nil if the
// stream has no recorded state yet
func (s *State) GetStreamState(stream *ConfiguredStream) map[string]any {
	s.RLock()
	defer s.RUnlock()

	for _, ss := range s.Streams {
		if ss.Stream == stream.ID() {
			copied := make(map[string]any, len(ss.State))
			for key, value := range ss.State {
				copied[key] = value
			}
			return copied
		}
	}

	return nil
}

// TempState is the process-lifetime low-water bridge between dependent
// streams. Unlike State it is monotonically non-increasing: LowerTo only
// ever replaces a bridged value with a smaller one, so a child stream
// resuming from it replays every parent record the current run has touched.
// Scoped to one driver instance, mutated only by the stream loop, discarded
// at process exit.
type TempState struct {
	streams map[string]map[string]any
}

func NewTempState() *TempState {
	return &TempState{
		streams: make(map[string]map[string]any),
	}
}

// GetStreamState returns the bridged state for a stream, nil if the stream
// has not bridged anything during this run
func (t *TempState) GetStreamState(stream string) map[string]any {
	return t.streams[stream]
}

// LowerTo records value for the stream's cursor field, keeping the minimum
// of the given value and any previously bridged one
func (t *TempState) LowerTo(stream, cursorField string, value any) {
	if cursorField == "" || value == nil {
		return
	}

	prev, found := t.streams[stream]
	if found {
		if prevValue, ok := prev[cursorField]; ok && typeutils.Compare(prevValue, value) <= 0 {
			return
		}
	}

	t.streams[stream] = map[string]any{cursorField: value}
}
