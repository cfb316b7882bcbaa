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

// Package compiler turns route templates into compiled patterns and
// matches request paths against them.
//
// A template is a '/'-prefixed sequence of segments. Each segment is
// either literal text or a typed placeholder:
//
//	pattern      := "/" segment ("/" segment)*
//	segment      := literal | placeholder
//	placeholder  := "{" [ ":" type_tag ] "}"
//	type_tag     := "string" | "int" | "uint" | "uuid"
//	literal      := any run of characters excluding "/", "{", "}"
//
// Compile validates syntax once, at registration time; Match is a pure
// single-pass walk over the compiled segments and performs no decoding or
// normalization of the path.
//
//	p, err := compiler.Compile("/users/{:uint}/posts/{:uuid}")
//	if err != nil {
//	    // *compiler.Error wrapping ErrInvalidPattern or ErrUnknownTypeTag
//	}
//	params, ok := p.Match("/users/42/posts/123e4567-e89b-12d3-a456-426614174000")
//	// ok == true, params == ["42", "123e4567-e89b-12d3-a456-426614174000"]
package compiler
