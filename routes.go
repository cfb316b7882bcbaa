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
	"fmt"
	"strings"
)

// RouteInfo describes one registered route for introspection, debugging,
// and documentation generation.
type RouteInfo[M comparable] struct {
	Method   M      // method token the route was registered under
	Pattern  string // route template as registered (/users/{:uint})
	Segments int    // fixed segment count the route matches
	Params   int    // number of placeholder segments
}

// Routes returns the registered routes in registration order, which is
// also their lookup priority order.
func (r *Router[M, H]) Routes() []RouteInfo[M] {
	infos := make([]RouteInfo[M], len(r.entries))
	for i, e := range r.entries {
		infos[i] = RouteInfo[M]{
			Method:   e.method,
			Pattern:  e.pattern.String(),
			Segments: e.pattern.NumSegments(),
			Params:   e.pattern.NumParams(),
		}
	}

	return infos
}

// String renders the route table in registration order.
func (r *Router[M, H]) String() string {
	var sb strings.Builder
	sb.WriteString("routematch.Router[")
	for i, e := range r.entries {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%v %s", e.method, e.pattern)
	}
	sb.WriteByte(']')

	return sb.String()
}
