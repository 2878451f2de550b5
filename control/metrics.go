// control/metrics.go
// Author: momentics <momentics@gmail.com>
//
// Runtime metrics collector for replay memory occupancy.

package control

import (
	"sync"
	"time"
)

// Observable is the read side of a memory that metrics and probes inspect.
// Both replay.Memory and replay.Guarded satisfy it.
type Observable interface {
	Len() int
	Cap() int
	Total() uint64
}

// MetricsRegistry holds metric values keyed by name.
type MetricsRegistry struct {
	mu      sync.RWMutex
	metrics map[string]any
	updated time.Time
}

// NewMetricsRegistry creates an empty registry.
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		metrics: make(map[string]any),
	}
}

// Set sets or updates a metric key.
func (mr *MetricsRegistry) Set(key string, value any) {
	mr.mu.Lock()
	mr.metrics[key] = value
	mr.updated = time.Now()
	mr.mu.Unlock()
}

// Observe records len, cap, total and full for m under prefix.
func (mr *MetricsRegistry) Observe(prefix string, m Observable) {
	n, c := m.Len(), m.Cap()
	mr.mu.Lock()
	mr.metrics[prefix+".len"] = n
	mr.metrics[prefix+".cap"] = c
	mr.metrics[prefix+".total"] = m.Total()
	mr.metrics[prefix+".full"] = n == c
	mr.updated = time.Now()
	mr.mu.Unlock()
}

// GetSnapshot returns a copy of the latest metrics.
func (mr *MetricsRegistry) GetSnapshot() map[string]any {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	out := make(map[string]any, len(mr.metrics))
	for k, v := range mr.metrics {
		out[k] = v
	}
	return out
}

// Updated returns when a metric was last written; zero if never.
func (mr *MetricsRegistry) Updated() time.Time {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	return mr.updated
}
