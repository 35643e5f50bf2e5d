package bounded

import (
	"iter"

	"github.com/moeryomenko/bounded/internal/engine"
)

// Map is a bounded map with distinct key and value types.
type Map[K comparable, V any] struct {
	engine *engine.Engine[K, V]
}

// NewMap returns a bounded map configured by the given options.
func NewMap[K comparable, V any](opts ...Option) (*Map[K, V], error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &Map[K, V]{engine: engine.New[K, V](cfg.engineConfig())}, nil
}

// Set inserts or updates the specified key-value pair, evicting the
// oldest entry first when the map is full. Returns the map for chaining.
func (m *Map[K, V]) Set(key K, value V) *Map[K, V] {
	m.engine.Set(key, value)
	return m
}

// Get returns the value for the key if a live entry is present, recording
// a hit or a miss. Under LRU a hit marks the entry as recently used.
func (m *Map[K, V]) Get(key K) (V, bool) {
	return m.engine.Get(key)
}

// Has reports whether a live entry exists for the key, with the same side
// effects as Get.
func (m *Map[K, V]) Has(key K) bool {
	return m.engine.Has(key)
}

// Peek returns the value for the key without recording stats, reordering
// or refreshing its TTL.
func (m *Map[K, V]) Peek(key K) (V, bool) {
	return m.engine.Peek(key)
}

// Delete removes the entry for the key and reports whether it was
// present.
func (m *Map[K, V]) Delete(key K) bool {
	return m.engine.Delete(key)
}

// Clear drops every entry. Stats counters are kept, use ResetStats.
func (m *Map[K, V]) Clear() {
	m.engine.Clear()
}

// Len returns the current number of entries.
func (m *Map[K, V]) Len() int {
	return m.engine.Len()
}

// MaxSize returns the configured capacity.
func (m *Map[K, V]) MaxSize() int {
	return m.engine.MaxSize()
}

// All iterates over a snapshot of the live entries in eviction order, the
// next victim first.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, kv := range m.engine.Entries() {
			if !yield(kv.Key, kv.Value) {
				return
			}
		}
	}
}

// Keys iterates over the keys of a snapshot of the live entries in
// eviction order.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for _, kv := range m.engine.Entries() {
			if !yield(kv.Key) {
				return
			}
		}
	}
}

// Values iterates over the values of a snapshot of the live entries in
// eviction order.
func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, kv := range m.engine.Entries() {
			if !yield(kv.Value) {
				return
			}
		}
	}
}

// ForEach calls fn for every live entry in eviction order.
func (m *Map[K, V]) ForEach(fn func(key K, value V)) {
	for _, kv := range m.engine.Entries() {
		fn(kv.Key, kv.Value)
	}
}

// Cleanup eagerly removes every expired entry and returns how many were
// removed.
func (m *Map[K, V]) Cleanup() int {
	return m.engine.Cleanup()
}

// Close stops the background sweeper, if any, and drops every entry.
// Safe to call more than once.
func (m *Map[K, V]) Close() {
	m.engine.Close()
}

// Stats returns a snapshot of the hit/miss/eviction counters.
func (m *Map[K, V]) Stats() Stats {
	return m.engine.Stats()
}

// ExtendedStats returns the counters plus occupancy and a memory
// estimate.
func (m *Map[K, V]) ExtendedStats() ExtendedStats {
	return m.engine.ExtendedStats()
}

// ResetStats zeroes the counters without touching entries.
func (m *Map[K, V]) ResetStats() {
	m.engine.ResetStats()
}
