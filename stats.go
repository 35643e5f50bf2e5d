package bounded

import "github.com/moeryomenko/bounded/internal/engine"

// Stats is a snapshot of a container's hit/miss/eviction counters.
// HitRate is Hits / (Hits + Misses), 0 when no lookups happened yet.
type Stats = engine.Stats

// ExtendedStats adds occupancy and a best-effort memory estimate to
// Stats. Only monotonicity of the estimate is guaranteed, not byte-exact
// accuracy.
type ExtendedStats = engine.ExtendedStats
