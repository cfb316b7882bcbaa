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

import (
	"slices"
	"strings"
)

// Segment is one unit of a compiled pattern. It is either a literal that a
// path segment must equal byte-for-byte, or a typed placeholder that
// captures the path segment's raw text.
type Segment struct {
	// Literal is the exact text to match. Meaningful only when Placeholder
	// is false. May be empty: "/" compiles to a single empty literal, and a
	// trailing slash in a pattern produces a trailing empty literal.
	Literal string

	// Kind is the constraint a captured segment must satisfy. Meaningful
	// only when Placeholder is true.
	Kind Kind

	// Placeholder distinguishes the two variants.
	Placeholder bool
}

// Pattern is the compiled form of a route template. It holds the segment
// descriptors in left-to-right order and matches paths with exactly the
// same segment count. A Pattern is immutable after Compile returns and is
// safe for concurrent use.
type Pattern struct {
	raw      string
	segments []Segment
	params   int
}

// Compile parses a route template into a Pattern.
//
// The template must start with '/'. Each '/'-delimited piece is either a
// placeholder of the form "{}", "{:string}", "{:int}", "{:uint}" or
// "{:uuid}", or a literal. Literal text may not contain '{' or '}': a
// brace outside a well-formed placeholder fails compilation rather than
// silently matching as text.
//
// Compilation happens once per registered route; failures are reported as
// a *Error wrapping ErrInvalidPattern or ErrUnknownTypeTag.
func Compile(pattern string) (*Pattern, error) {
	if !strings.HasPrefix(pattern, "/") {
		return nil, &Error{Pattern: pattern, err: ErrInvalidPattern}
	}

	pieces := strings.Split(pattern[1:], "/")
	p := &Pattern{
		raw:      pattern,
		segments: make([]Segment, 0, len(pieces)),
	}

	offset := 1 // byte offset of the current piece, past the leading '/'
	for _, piece := range pieces {
		seg, err := parseSegment(pattern, piece, offset)
		if err != nil {
			return nil, err
		}
		if seg.Placeholder {
			p.params++
		}
		p.segments = append(p.segments, seg)
		offset += len(piece) + 1
	}

	return p, nil
}

// parseSegment classifies one piece of a pattern.
func parseSegment(pattern, piece string, offset int) (Segment, error) {
	if len(piece) >= 2 && piece[0] == '{' && piece[len(piece)-1] == '}' {
		interior := piece[1 : len(piece)-1]
		if interior == "" {
			return Segment{Placeholder: true, Kind: KindString}, nil
		}
		if interior[0] == ':' {
			if kind, ok := kindNames[interior[1:]]; ok {
				return Segment{Placeholder: true, Kind: kind}, nil
			}
		}

		return Segment{}, &Error{Pattern: pattern, Segment: piece, Offset: offset, err: ErrUnknownTypeTag}
	}

	if strings.ContainsAny(piece, "{}") {
		return Segment{}, &Error{Pattern: pattern, Segment: piece, Offset: offset, err: ErrInvalidPattern}
	}

	return Segment{Literal: piece}, nil
}

// String returns the original pattern text.
func (p *Pattern) String() string { return p.raw }

// NumSegments returns the fixed number of path segments the pattern
// matches.
func (p *Pattern) NumSegments() int { return len(p.segments) }

// NumParams returns the number of placeholder segments.
func (p *Pattern) NumParams() int { return p.params }

// Segments returns a copy of the segment descriptors in left-to-right
// order.
func (p *Pattern) Segments() []Segment { return slices.Clone(p.segments) }

// CountSegments reports the number of '/'-delimited segments in a request
// path, counting the same way Match splits. The boolean is false when the
// path does not begin with '/'; such a path can never match any pattern.
func CountSegments(path string) (int, bool) {
	if path == "" || path[0] != '/' {
		return 0, false
	}

	return strings.Count(path[1:], "/") + 1, true
}
