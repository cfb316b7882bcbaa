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

import (
	"time"

	"rivaas.dev/routematch/compiler"
)

// Match is the result of a successful lookup.
type Match[H any] struct {
	// Handler is the identity registered for the matched route. The router
	// never invokes it; dispatch belongs to the adapter layer.
	Handler H

	// Params holds the raw text captured at each placeholder segment, in
	// left-to-right pattern order. Callers index positionally; placeholders
	// carry no names. Nil when the route has no placeholders and for the
	// default handler.
	Params []string

	// Pattern is the route template that matched, or "" when the default
	// handler was returned.
	Pattern string
}

// entry is one registered route: method, compiled pattern, handler
// identity. Entries are immutable once the Builder hands them to a Router.
type entry[M comparable, H any] struct {
	method  M
	pattern *compiler.Pattern
	handler H
}

// tableKey prunes lookup candidates. Entries whose method or segment count
// differ from the request can never match, so grouping by both preserves
// first-match semantics exactly.
type tableKey[M comparable] struct {
	method   M
	segments int
}

// Router resolves (method, path) pairs against a frozen route table.
//
// A Router is produced by Builder.Finish and is strictly read-only from
// then on: Lookup may be called concurrently from any number of goroutines
// without coordination, since no shared state is mutated after Finish.
//
// Overlap between patterns is resolved purely by registration order. The
// first route registered that matches wins, even when a later route is
// more specific. There is no specificity scoring.
type Router[M comparable, H any] struct {
	// entries in registration order; kept for introspection and ordering.
	entries []entry[M, H]

	// table maps (method, segment count) to entry indexes, each slice in
	// registration order.
	table map[tableKey[M]][]int

	defaultHandler H
	hasDefault     bool

	recorder Recorder
}

// Lookup resolves a method and request path to the first registered route
// matching both. The second return value reports whether a handler was
// found; a miss is an ordinary outcome, not an error.
//
// The path must already be percent-decoded and must not carry a query
// string. The router treats it as an opaque byte sequence: literals compare
// byte-for-byte and a trailing '/' is a real (empty) segment, never
// normalized away.
//
// When no route matches, Lookup returns the default handler with nil
// params if one was set on the Builder, otherwise the zero Match and
// false.
func (r *Router[M, H]) Lookup(method M, path string) (Match[H], bool) {
	if r.recorder == nil {
		return r.lookup(method, path)
	}

	start := time.Now()
	m, ok := r.lookup(method, path)

	label := m.Pattern
	switch {
	case !ok:
		label = NotFoundPattern
	case label == "":
		label = DefaultPattern
	}
	r.recorder.RecordLookup(label, ok, time.Since(start))

	return m, ok
}

func (r *Router[M, H]) lookup(method M, path string) (Match[H], bool) {
	if n, ok := compiler.CountSegments(path); ok {
		for _, i := range r.table[tableKey[M]{method: method, segments: n}] {
			e := &r.entries[i]
			if params, matched := e.pattern.Match(path); matched {
				return Match[H]{Handler: e.handler, Params: params, Pattern: e.pattern.String()}, true
			}
		}
	}

	if r.hasDefault {
		return Match[H]{Handler: r.defaultHandler}, true
	}

	var zero Match[H]

	return zero, false
}
