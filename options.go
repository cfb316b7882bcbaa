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

// Option configures a Builder and the Router it produces.
type Option func(*config)

type config struct {
	recorder Recorder
}

// WithRecorder attaches a Recorder that observes every Lookup on the
// finished Router. The default is no recording.
//
// Example with OpenTelemetry:
//
//	rec, err := routematch.NewOTelRecorder(otel.Meter("myapp"))
//	if err != nil {
//	    // handle instrument creation failure
//	}
//	b := routematch.NewBuilder[string, http.Handler](routematch.WithRecorder(rec))
func WithRecorder(rec Recorder) Option {
	return func(c *config) {
		c.recorder = rec
	}
}
