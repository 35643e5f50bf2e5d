package bounded

import "github.com/moeryomenko/bounded/internal/engine"

const (
	// Discards entries strictly in insertion order; access never reorders.
	FIFO = engine.FIFO
	// Discards the least recently inserted-or-accessed entries first.
	LRU = engine.LRU
)

// evictionPolicy incapsulated from user.
type evictionPolicy = engine.Policy
