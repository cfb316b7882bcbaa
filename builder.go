// Copyright 2025 The Rivaas Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package routematch

import "rivaas.dev/routematch/compiler"

// Builder accumulates routes and freezes them into a Router.
//
// A Builder is a single-writer construction surface: it provides no
// internal synchronization and must not be mutated from more than one
// goroutine. Finish consumes the Builder; calling any method afterward is
// a programming error and panics.
type Builder[M comparable, H any] struct {
	entries        []entry[M, H]
	defaultHandler H
	hasDefault     bool
	recorder       Recorder
	finished       bool
}

// NewBuilder returns an empty Builder. Options configure the Router the
// Builder will eventually produce.
func NewBuilder[M comparable, H any](opts ...Option) *Builder[M, H] {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Builder[M, H]{recorder: cfg.recorder}
}

// Handle compiles pattern and appends a route for method. The pattern is
// compiled immediately: a malformed template fails here, at registration
// time, never at lookup time. On failure the returned error is a
// *compiler.Error wrapping compiler.ErrInvalidPattern or
// compiler.ErrUnknownTypeTag, and the route table is left unchanged.
//
// Registration order is semantically significant: it is the priority order
// used to resolve overlap between patterns at lookup time.
func (b *Builder[M, H]) Handle(method M, pattern string, handler H) error {
	b.mustBeOpen()

	p, err := compiler.Compile(pattern)
	if err != nil {
		return err
	}
	b.entries = append(b.entries, entry[M, H]{method: method, pattern: p, handler: handler})

	return nil
}

// Default sets the handler returned when no route matches. The router
// never invokes it; like any matched handler it is only handed back to the
// caller, with nil params since nothing was captured.
func (b *Builder[M, H]) Default(handler H) {
	b.mustBeOpen()
	b.defaultHandler = handler
	b.hasDefault = true
}

// Finish freezes the accumulated routes into an immutable Router and
// consumes the Builder. Ownership of the entries transfers to the Router;
// the Builder keeps nothing and panics on further use.
//
// Finish cannot fail: every pattern was already validated by Handle.
func (b *Builder[M, H]) Finish() *Router[M, H] {
	b.mustBeOpen()
	b.finished = true

	table := make(map[tableKey[M]][]int, len(b.entries))
	for i, e := range b.entries {
		key := tableKey[M]{method: e.method, segments: e.pattern.NumSegments()}
		table[key] = append(table[key], i)
	}

	r := &Router[M, H]{
		entries:        b.entries,
		table:          table,
		defaultHandler: b.defaultHandler,
		hasDefault:     b.hasDefault,
		recorder:       b.recorder,
	}
	b.entries = nil

	return r
}

func (b *Builder[M, H]) mustBeOpen() {
	if b.finished {
		panic("routematch: Builder used after Finish")
	}
}
