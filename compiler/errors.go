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
	"errors"
	"fmt"
)

var (
	// ErrInvalidPattern indicates a pattern that does not start with '/',
	// or a segment containing a brace outside a well-formed placeholder.
	ErrInvalidPattern = errors.New("invalid route pattern")

	// ErrUnknownTypeTag indicates a placeholder whose interior is neither
	// empty nor one of the recognized ":string", ":int", ":uint", ":uuid"
	// tags.
	ErrUnknownTypeTag = errors.New("unknown type tag")
)

// Error describes why a route pattern failed to compile. It wraps one of
// the sentinel errors above, so callers can classify failures with
// errors.Is while still getting the pattern and offending segment in the
// message.
type Error struct {
	Pattern string // the full pattern passed to Compile
	Segment string // the offending segment, empty when the pattern as a whole is malformed
	Offset  int    // byte offset of the offending segment within Pattern
	err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Segment == "" {
		return fmt.Sprintf("compile %q: %v", e.Pattern, e.err)
	}

	return fmt.Sprintf("compile %q: %v: %q at offset %d", e.Pattern, e.err, e.Segment, e.Offset)
}

// Unwrap returns the sentinel error classifying the failure.
func (e *Error) Unwrap() error { return e.err }
