// Package bounded provides size- and time-limited generic containers for
// tracking short-lived identifiers (nonces, tokens, recently seen keys)
// without unbounded memory growth in a long-running process.
//
// Both containers enforce a hard entry cap with FIFO or LRU eviction,
// optional per-entry TTL with lazy and background expiry, and expose
// hit/miss/eviction statistics. All operations are safe for concurrent
// use.
package bounded

import (
	"iter"

	"github.com/moeryomenko/bounded/internal/engine"
)

// Set is a bounded set of comparable values.
type Set[T comparable] struct {
	engine *engine.Engine[T, T]
}

// NewSet returns a bounded set configured by the given options.
func NewSet[T comparable](opts ...Option) (*Set[T], error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &Set[T]{engine: engine.New[T, T](cfg.engineConfig())}, nil
}

// Add inserts the value, evicting the oldest entry first when the set is
// full. Returns the set for chaining.
func (s *Set[T]) Add(value T) *Set[T] {
	s.engine.Set(value, value)
	return s
}

// Has reports whether the value is present and not expired, recording a
// hit or a miss. Under LRU a hit marks the value as recently used.
func (s *Set[T]) Has(value T) bool {
	return s.engine.Has(value)
}

// Contains reports whether the value is present without recording stats,
// reordering or refreshing its TTL.
func (s *Set[T]) Contains(value T) bool {
	_, ok := s.engine.Peek(value)
	return ok
}

// Delete removes the value and reports whether it was present.
func (s *Set[T]) Delete(value T) bool {
	return s.engine.Delete(value)
}

// Clear drops every value. Stats counters are kept, use ResetStats.
func (s *Set[T]) Clear() {
	s.engine.Clear()
}

// Len returns the current number of values.
func (s *Set[T]) Len() int {
	return s.engine.Len()
}

// MaxSize returns the configured capacity.
func (s *Set[T]) MaxSize() int {
	return s.engine.MaxSize()
}

// All iterates over a snapshot of the live values in eviction order, the
// next victim first.
func (s *Set[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, kv := range s.engine.Entries() {
			if !yield(kv.Value) {
				return
			}
		}
	}
}

// Entries iterates like All, yielding each value twice per pair for
// symmetry with Map.
func (s *Set[T]) Entries() iter.Seq2[T, T] {
	return func(yield func(T, T) bool) {
		for _, kv := range s.engine.Entries() {
			if !yield(kv.Value, kv.Value) {
				return
			}
		}
	}
}

// ForEach calls fn for every live value in eviction order.
func (s *Set[T]) ForEach(fn func(value T)) {
	for _, kv := range s.engine.Entries() {
		fn(kv.Value)
	}
}

// Cleanup eagerly removes every expired value and returns how many were
// removed.
func (s *Set[T]) Cleanup() int {
	return s.engine.Cleanup()
}

// Close stops the background sweeper, if any, and drops every value.
// Safe to call more than once.
func (s *Set[T]) Close() {
	s.engine.Close()
}

// Stats returns a snapshot of the hit/miss/eviction counters.
func (s *Set[T]) Stats() Stats {
	return s.engine.Stats()
}

// ExtendedStats returns the counters plus occupancy and a memory
// estimate.
func (s *Set[T]) ExtendedStats() ExtendedStats {
	return s.engine.ExtendedStats()
}

// ResetStats zeroes the counters without touching values.
func (s *Set[T]) ResetStats() {
	s.engine.ResetStats()
}
