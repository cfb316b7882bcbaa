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

package compiler

import "strings"

// Match matches a request path against the compiled pattern.
//
// The path is split the same way patterns are: the leading '/' is dropped,
// and a trailing '/' produces a trailing empty segment that only matches a
// corresponding empty literal. Segment counts must be equal; there is no
// prefix matching and no backtracking, just a single pairwise walk that
// stops at the first mismatch.
//
// On success, Match returns the raw text captured at each placeholder
// segment in left-to-right pattern order. Callers index positionally. The
// path is treated as an opaque byte sequence: percent-decoding and any
// other normalization are the caller's responsibility.
func (p *Pattern) Match(path string) ([]string, bool) {
	if path == "" || path[0] != '/' {
		return nil, false
	}

	var params []string
	if p.params > 0 {
		params = make([]string, 0, p.params)
	}

	rest := path[1:]
	last := len(p.segments) - 1
	for i := range p.segments {
		seg := &p.segments[i]

		var piece string
		if i == last {
			if strings.IndexByte(rest, '/') >= 0 {
				return nil, false // path has more segments than the pattern
			}
			piece = rest
		} else {
			slash := strings.IndexByte(rest, '/')
			if slash < 0 {
				return nil, false // path has fewer segments than the pattern
			}
			piece = rest[:slash]
			rest = rest[slash+1:]
		}

		if seg.Placeholder {
			if !seg.Kind.Match(piece) {
				return nil, false
			}
			params = append(params, piece)
		} else if piece != seg.Literal {
			return nil, false
		}
	}

	return params, true
}
