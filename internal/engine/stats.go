package engine

// Stats is a snapshot of the engine's hit/miss/eviction counters. All
// counters are guarded by the engine lock, a snapshot is always
// internally consistent.
type Stats struct {
	Evictions uint64
	Hits      uint64
	Misses    uint64
	// HitRate is Hits / (Hits + Misses), 0 when no lookups happened yet.
	HitRate float64
}

// ExtendedStats adds occupancy and a memory estimate to Stats.
type ExtendedStats struct {
	Stats
	Size    int
	MaxSize int
	// FillRatio is Size / MaxSize, in [0, 1].
	FillRatio float64
	// EstimatedMemoryBytes is a best-effort estimate, see sizeOf. Only
	// monotonicity is guaranteed: bigger payloads give a bigger number.
	EstimatedMemoryBytes int64
}

// Stats returns a snapshot of the counters.
func (e *Engine[K, V]) Stats() Stats {
	e.lock.Lock()
	defer e.lock.Unlock()

	return e.statsLocked()
}

// ExtendedStats returns the counters plus occupancy and an estimate of
// the memory held by the current entries.
func (e *Engine[K, V]) ExtendedStats() ExtendedStats {
	e.lock.Lock()
	defer e.lock.Unlock()

	stats := ExtendedStats{
		Stats:   e.statsLocked(),
		Size:    len(e.items),
		MaxSize: e.cfg.MaxSize,
	}
	if stats.MaxSize > 0 {
		stats.FillRatio = float64(stats.Size) / float64(stats.MaxSize)
	}
	for el := e.evictList.Front(); el != nil; el = el.Next() {
		ent := el.Value.(*entry[K, V])
		stats.EstimatedMemoryBytes += entryOverheadBytes + sizeOf(ent.key) + sizeOf(ent.value)
	}
	return stats
}

// ResetStats zeroes the counters without touching entries.
func (e *Engine[K, V]) ResetStats() {
	e.lock.Lock()
	defer e.lock.Unlock()

	e.hits, e.misses, e.evictions = 0, 0, 0
}

func (e *Engine[K, V]) statsLocked() Stats {
	stats := Stats{
		Evictions: e.evictions,
		Hits:      e.hits,
		Misses:    e.misses,
	}
	if total := e.hits + e.misses; total > 0 {
		stats.HitRate = float64(e.hits) / float64(total)
	}
	return stats
}
