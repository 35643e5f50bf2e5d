package engine

import (
	"container/list"
	"sync"
	"time"

	"github.com/moeryomenko/synx"
)

// Policy selects the eviction order.
type Policy int

const (
	// Discards entries strictly in insertion order; access never reorders.
	FIFO Policy = iota
	// Discards the least recently inserted-or-accessed entries first.
	LRU
)

// Config carries the construction parameters of an Engine. The zero Now
// falls back to time.Now; everything else is taken as-is, validation
// happens in the public package.
type Config struct {
	MaxSize         int
	Policy          Policy
	TTL             time.Duration
	RefreshOnAccess bool
	CleanupInterval time.Duration
	OnEvict         func(value any)
	Now             func() time.Time
}

// Engine is the eviction core shared by the public containers: a lookup
// map over an ordered list, with the list front being the next eviction
// victim. The map never owns entries, it only points into the list.
type Engine[K comparable, V any] struct {
	items     map[K]*list.Element
	evictList *list.List
	cfg       Config
	lock      synx.Spinlock

	hits      uint64
	misses    uint64
	evictions uint64

	done      chan struct{}
	closeOnce sync.Once
}

type entry[K comparable, V any] struct {
	key            K
	value          V
	insertedAt     time.Time
	lastAccessedAt time.Time
	// expiresAt is the zero time when the entry never expires.
	expiresAt time.Time
}

func (e *entry[K, V]) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && !e.expiresAt.After(now)
}

// New returns an engine for the given config and starts the background
// sweeper when a cleanup interval is configured.
func New[K comparable, V any](cfg Config) *Engine[K, V] {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	e := &Engine[K, V]{
		items:     make(map[K]*list.Element),
		evictList: list.New(),
		cfg:       cfg,
		done:      make(chan struct{}),
	}

	if cfg.CleanupInterval > 0 {
		go e.sweep(cfg.CleanupInterval)
	}

	return e
}

// Set inserts or updates the specified key-value pair, evicting the
// oldest entry first when the engine is at capacity.
func (e *Engine[K, V]) Set(key K, value V) {
	e.lock.Lock()
	defer e.lock.Unlock()

	now := e.cfg.Now()
	e.purgeIfExpired(key, now)

	// Check for existing item.
	if el, ok := e.items[key]; ok {
		ent := el.Value.(*entry[K, V])
		ent.value = value
		ent.insertedAt = now
		ent.expiresAt = e.deadline(now)
		if e.cfg.Policy == LRU {
			e.evictList.MoveToBack(el)
		}
		return
	}

	// Verify size not exceeded.
	if len(e.items) >= e.cfg.MaxSize {
		e.evictOldest()
	}

	ent := &entry[K, V]{
		key:            key,
		value:          value,
		insertedAt:     now,
		lastAccessedAt: now,
		expiresAt:      e.deadline(now),
	}
	e.items[key] = e.evictList.PushBack(ent)
}

// Get returns the value for the specified key if a live entry is present,
// recording a hit or a miss. Under LRU a hit moves the entry to the safest
// position; with RefreshOnAccess a hit also restarts its TTL.
func (e *Engine[K, V]) Get(key K) (V, bool) {
	e.lock.Lock()
	defer e.lock.Unlock()

	return e.lookup(key)
}

// Has reports whether a live entry exists for the key, with the same
// side effects as Get.
func (e *Engine[K, V]) Has(key K) bool {
	e.lock.Lock()
	defer e.lock.Unlock()

	_, ok := e.lookup(key)
	return ok
}

// Peek returns the value for the key without touching stats, recency or
// TTL. An expired entry is still dropped and reported as absent.
func (e *Engine[K, V]) Peek(key K) (V, bool) {
	e.lock.Lock()
	defer e.lock.Unlock()

	var zero V
	el, ok := e.items[key]
	if !ok {
		return zero, false
	}
	ent := el.Value.(*entry[K, V])
	if ent.expired(e.cfg.Now()) {
		e.removeElement(el)
		return zero, false
	}
	return ent.value, true
}

// Delete removes the entry for the key and reports whether a live entry
// existed. Explicit deletion is not counted as an eviction.
func (e *Engine[K, V]) Delete(key K) bool {
	e.lock.Lock()
	defer e.lock.Unlock()

	e.purgeIfExpired(key, e.cfg.Now())

	el, ok := e.items[key]
	if !ok {
		return false
	}
	e.removeElement(el)
	return true
}

// Clear drops every entry. Stats counters are kept, use ResetStats.
func (e *Engine[K, V]) Clear() {
	e.lock.Lock()
	defer e.lock.Unlock()

	e.items = make(map[K]*list.Element)
	e.evictList.Init()
}

// Len returns the current number of entries, including expired ones that
// have not been swept yet.
func (e *Engine[K, V]) Len() int {
	e.lock.Lock()
	defer e.lock.Unlock()

	return len(e.items)
}

// MaxSize returns the configured capacity.
func (e *Engine[K, V]) MaxSize() int {
	return e.cfg.MaxSize
}

// Cleanup eagerly removes every expired entry and returns how many were
// removed. Safe to call repeatedly.
func (e *Engine[K, V]) Cleanup() int {
	e.lock.Lock()
	defer e.lock.Unlock()

	return e.removeExpired(e.cfg.Now())
}

// Close stops the background sweeper and drops every entry. Safe to call
// more than once.
func (e *Engine[K, V]) Close() {
	e.closeOnce.Do(func() { close(e.done) })
	e.Clear()
}

// KV is one key-value pair of a traversal snapshot.
type KV[K comparable, V any] struct {
	Key   K
	Value V
}

// Entries returns a snapshot of the live entries in eviction order, the
// next victim first. Entries already expired at the time of the call are
// skipped without being removed, so the walk never mutates the engine.
func (e *Engine[K, V]) Entries() []KV[K, V] {
	e.lock.Lock()
	defer e.lock.Unlock()

	now := e.cfg.Now()
	out := make([]KV[K, V], 0, e.evictList.Len())
	for el := e.evictList.Front(); el != nil; el = el.Next() {
		ent := el.Value.(*entry[K, V])
		if ent.expired(now) {
			continue
		}
		out = append(out, KV[K, V]{Key: ent.key, Value: ent.value})
	}
	return out
}

func (e *Engine[K, V]) lookup(key K) (V, bool) {
	now := e.cfg.Now()
	e.purgeIfExpired(key, now)

	el, ok := e.items[key]
	if !ok {
		e.misses++
		var zero V
		return zero, false
	}

	e.hits++
	ent := el.Value.(*entry[K, V])
	ent.lastAccessedAt = now
	if e.cfg.RefreshOnAccess && !ent.expiresAt.IsZero() {
		ent.expiresAt = now.Add(e.cfg.TTL)
	}
	if e.cfg.Policy == LRU {
		e.evictList.MoveToBack(el)
	}
	return ent.value, true
}

func (e *Engine[K, V]) deadline(now time.Time) time.Time {
	if e.cfg.TTL <= 0 {
		return time.Time{}
	}
	return now.Add(e.cfg.TTL)
}

func (e *Engine[K, V]) purgeIfExpired(key K, now time.Time) {
	if el, ok := e.items[key]; ok && el.Value.(*entry[K, V]).expired(now) {
		e.removeElement(el)
	}
}

// evictOldest unlinks the list front before the callback runs, so a
// misbehaving callback cannot observe an inconsistent engine.
func (e *Engine[K, V]) evictOldest() {
	el := e.evictList.Front()
	if el == nil {
		return
	}
	ent := el.Value.(*entry[K, V])
	e.removeElement(el)
	e.evictions++
	if e.cfg.OnEvict != nil {
		e.cfg.OnEvict(ent.value)
	}
}

func (e *Engine[K, V]) removeExpired(now time.Time) int {
	removed := 0
	var next *list.Element
	for el := e.evictList.Front(); el != nil; el = next {
		next = el.Next()
		if el.Value.(*entry[K, V]).expired(now) {
			e.removeElement(el)
			removed++
		}
	}
	return removed
}

func (e *Engine[K, V]) removeElement(el *list.Element) {
	ent := e.evictList.Remove(el).(*entry[K, V])
	delete(e.items, ent.key)
}

func (e *Engine[K, V]) sweep(period time.Duration) {
	ticker := time.NewTicker(period)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			e.Cleanup()
		case <-e.done:
			return
		}
	}
}
