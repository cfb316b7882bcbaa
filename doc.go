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

// Package routematch is a small path-routing core: an insertion-ordered
// route table over typed path templates.
//
// It compiles route templates such as "/users/{:uint}/posts/{:uuid}" into
// segment descriptors, and resolves (method, path) pairs to the first
// registered route that matches, extracting placeholder values in
// left-to-right order. It deliberately does nothing else: no HTTP
// listener, no handler invocation, no percent-decoding, no content
// negotiation. Adapter layers own those concerns and receive only a
// handler identity plus the captured parameters.
//
// # Matching Semantics
//
//   - Segment counts must be equal; there is no prefix matching.
//   - Literals compare byte-for-byte; a trailing '/' is a real (empty)
//     segment, never normalized away.
//   - Placeholders validate against one of four type constraints:
//     string (default), int, uint, uuid.
//   - Overlapping patterns are resolved purely by registration order. The
//     first route registered wins; there is no specificity scoring. A
//     (method, segment-count) index prunes candidates but preserves
//     relative order among them.
//
// # Lifecycle
//
// A Builder accumulates routes from a single goroutine, compiling each
// template at registration time so malformed patterns fail fast. Finish
// consumes the Builder and produces an immutable Router; from that point
// Lookup is safe for unlimited concurrent use. Using a Builder after
// Finish panics.
//
// # Quick Start
//
//	b := routematch.NewBuilder[string, string]()
//	if err := b.Handle(http.MethodGet, "/users/{:uint}", "show-user"); err != nil {
//	    // *compiler.Error: bad template
//	}
//	router := b.Finish()
//
//	if m, ok := router.Lookup(http.MethodGet, "/users/42"); ok {
//	    // m.Handler == "show-user", m.Params == []string{"42"}
//	}
//
// The method token and handler identity are type parameters: any
// comparable method type and any handler type work. The router never
// invokes a handler.
package routematch
