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
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	// NotFoundPattern labels lookups that matched no route. Recorders
	// receive this fixed sentinel instead of the raw path so metric
	// cardinality stays bounded.
	NotFoundPattern = "_not_found"

	// DefaultPattern labels lookups served by the default handler.
	DefaultPattern = "_default"
)

// Recorder observes completed lookups. Implementations must be safe for
// concurrent use: Lookup runs from arbitrarily many goroutines at once.
type Recorder interface {
	// RecordLookup is called once per Lookup with the matched route
	// pattern (or NotFoundPattern/DefaultPattern), whether a handler was
	// returned, and how long the lookup took.
	RecordLookup(pattern string, matched bool, elapsed time.Duration)
}

// OTelRecorder is a Recorder that publishes lookup metrics through an
// OpenTelemetry meter:
//
//   - routematch.lookups (counter): completed lookups, with "route" and
//     "matched" attributes
//   - routematch.lookup.duration (histogram, seconds): lookup latency
type OTelRecorder struct {
	lookups  metric.Int64Counter
	duration metric.Float64Histogram
}

// NewOTelRecorder creates an OTelRecorder on the given meter. It fails
// only if instrument creation fails.
func NewOTelRecorder(meter metric.Meter) (*OTelRecorder, error) {
	lookups, err := meter.Int64Counter("routematch.lookups",
		metric.WithDescription("Completed route lookups"),
	)
	if err != nil {
		return nil, err
	}

	duration, err := meter.Float64Histogram("routematch.lookup.duration",
		metric.WithDescription("Route lookup duration"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	return &OTelRecorder{lookups: lookups, duration: duration}, nil
}

// RecordLookup implements Recorder.
func (r *OTelRecorder) RecordLookup(pattern string, matched bool, elapsed time.Duration) {
	attrs := metric.WithAttributes(
		attribute.String("route", pattern),
		attribute.Bool("matched", matched),
	)

	ctx := context.Background()
	r.lookups.Add(ctx, 1, attrs)
	r.duration.Record(ctx, elapsed.Seconds(), attrs)
}
