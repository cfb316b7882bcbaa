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
	"net/http"
	"testing"
)

func benchRouter(b *testing.B) *Router[string, int] {
	b.Helper()

	builder := NewBuilder[string, int]()
	routes := []struct {
		pattern string
		handler int
	}{
		{"/", 1},
		{"/hello", 2},
		{"/hello/world", 3},
		{"/foo", 4},
		{"/foo/bar", 5},
		{"/foo/baz", 6},
		{"/foo/{}", 7},
	}
	for _, rt := range routes {
		if err := builder.Handle(http.MethodGet, rt.pattern, rt.handler); err != nil {
			b.Fatal(err)
		}
	}

	return builder.Finish()
}

func BenchmarkLookupStatic(b *testing.B) {
	r := benchRouter(b)
	b.ReportAllocs()
	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		if _, ok := r.Lookup(http.MethodGet, "/foo/bar"); !ok {
			b.Fatal("expected match")
		}
	}
}

func BenchmarkLookupParam(b *testing.B) {
	r := benchRouter(b)
	b.ReportAllocs()
	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		if _, ok := r.Lookup(http.MethodGet, "/foo/qux"); !ok {
			b.Fatal("expected match")
		}
	}
}

func BenchmarkLookupMiss(b *testing.B) {
	r := benchRouter(b)
	b.ReportAllocs()
	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		if _, ok := r.Lookup(http.MethodGet, "/soap"); ok {
			b.Fatal("unexpected match")
		}
	}
}
