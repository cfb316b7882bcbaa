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

import "regexp"

// Kind identifies the type constraint applied to a placeholder segment.
type Kind uint8

const (
	// KindString matches any non-empty segment. This is the default when a
	// placeholder carries no tag ("{}").
	KindString Kind = iota

	// KindInt matches an optional leading '-' followed by decimal digits.
	// A leading '+' is rejected.
	KindInt

	// KindUint matches decimal digits with no sign.
	KindUint

	// KindUUID matches the canonical 8-4-4-4-12 hexadecimal grouping,
	// case-insensitive. Braced, urn-prefixed, and unhyphenated encodings
	// are rejected.
	KindUUID
)

// kindPatterns holds one anchored pattern per Kind, indexed by Kind value.
// Patterns are anchored so a segment must satisfy the constraint in full.
var kindPatterns = [...]*regexp.Regexp{
	KindString: regexp.MustCompile(`^[^/]+$`),
	KindInt:    regexp.MustCompile(`^-?[0-9]+$`),
	KindUint:   regexp.MustCompile(`^[0-9]+$`),
	KindUUID:   regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`),
}

// kindNames maps the tag text allowed inside a placeholder to its Kind.
var kindNames = map[string]Kind{
	"string": KindString,
	"int":    KindInt,
	"uint":   KindUint,
	"uuid":   KindUUID,
}

// Match reports whether a single path segment satisfies the constraint.
// The segment is taken verbatim: no percent-decoding, case folding, or any
// other normalization is applied. Segments produced by the path splitter
// never contain '/'.
func (k Kind) Match(segment string) bool {
	if int(k) >= len(kindPatterns) {
		return false
	}

	return kindPatterns[k].MatchString(segment)
}

// String returns the tag name used in pattern syntax (e.g. "uint").
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindUint:
		return "uint"
	case KindUUID:
		return "uuid"
	default:
		return "unknown"
	}
}
