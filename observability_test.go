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
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

// captureRecorder collects RecordLookup calls for assertions.
type captureRecorder struct {
	mu      sync.Mutex
	entries []capturedLookup
}

type capturedLookup struct {
	pattern string
	matched bool
	elapsed time.Duration
}

func (c *captureRecorder) RecordLookup(pattern string, matched bool, elapsed time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = append(c.entries, capturedLookup{pattern: pattern, matched: matched, elapsed: elapsed})
}

// TestRecorderObservesLookups verifies the recorder seam reports matched
// patterns and the bounded sentinels for misses and default fallbacks.
func TestRecorderObservesLookups(t *testing.T) {
	t.Parallel()

	rec := &captureRecorder{}
	b := NewBuilder[string, string](WithRecorder(rec))
	require.NoError(t, b.Handle(http.MethodGet, "/users/{:uint}", "show"))
	r := b.Finish()

	_, ok := r.Lookup(http.MethodGet, "/users/42")
	require.True(t, ok)
	_, ok = r.Lookup(http.MethodGet, "/missing")
	require.False(t, ok)

	require.Len(t, rec.entries, 2)
	assert.Equal(t, "/users/{:uint}", rec.entries[0].pattern)
	assert.True(t, rec.entries[0].matched)
	assert.Equal(t, NotFoundPattern, rec.entries[1].pattern)
	assert.False(t, rec.entries[1].matched)

	for _, e := range rec.entries {
		assert.GreaterOrEqual(t, e.elapsed, time.Duration(0))
	}
}

// TestRecorderDefaultSentinel verifies default-handler lookups are labeled
// with DefaultPattern rather than a raw path.
func TestRecorderDefaultSentinel(t *testing.T) {
	t.Parallel()

	rec := &captureRecorder{}
	b := NewBuilder[string, string](WithRecorder(rec))
	b.Default("fallback")
	r := b.Finish()

	m, ok := r.Lookup(http.MethodGet, "/whatever")
	require.True(t, ok)
	assert.Equal(t, "fallback", m.Handler)

	require.Len(t, rec.entries, 1)
	assert.Equal(t, DefaultPattern, rec.entries[0].pattern)
	assert.True(t, rec.entries[0].matched)
}

// TestOTelRecorder verifies the OpenTelemetry recorder publishes the
// lookup counter and duration histogram through a manual reader.
func TestOTelRecorder(t *testing.T) {
	t.Parallel()

	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() {
		_ = provider.Shutdown(context.Background())
	})

	rec, err := NewOTelRecorder(provider.Meter("routematch_test"))
	require.NoError(t, err)

	b := NewBuilder[string, string](WithRecorder(rec))
	require.NoError(t, b.Handle(http.MethodGet, "/users/{:uint}", "show"))
	r := b.Finish()

	for n := 0; n < 3; n++ {
		_, ok := r.Lookup(http.MethodGet, "/users/7")
		require.True(t, ok)
	}
	_, ok := r.Lookup(http.MethodGet, "/nope")
	require.False(t, ok)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	var lookupTotal int64
	var durationCount uint64
	for _, scope := range rm.ScopeMetrics {
		for _, m := range scope.Metrics {
			switch m.Name {
			case "routematch.lookups":
				sum, sumOK := m.Data.(metricdata.Sum[int64])
				require.True(t, sumOK)
				for _, dp := range sum.DataPoints {
					lookupTotal += dp.Value
				}
			case "routematch.lookup.duration":
				hist, histOK := m.Data.(metricdata.Histogram[float64])
				require.True(t, histOK)
				for _, dp := range hist.DataPoints {
					durationCount += dp.Count
				}
			}
		}
	}

	assert.Equal(t, int64(4), lookupTotal)
	assert.Equal(t, uint64(4), durationCount)
}
