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

package protocol

import (
	"context"

	"github.com/datazip-inc/source-shopify/types"
)

type Config interface {
	Validate() error
}

type Driver interface {
	Type() string
	GetConfigRef() Config
	Spec() map[string]any
	Setup(ctx context.Context) error
	SetupState(state *types.State)
	Discover() []*types.Stream
	Read(ctx context.Context, stream *types.ConfiguredStream, onRecord func(record types.Record) error) error
}
