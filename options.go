package bounded

import "time"

// Option is an option that can be applied to a container.
type Option func(*config)

// WithMaxSize caps the number of entries a container may hold at once.
// The default is 10000.
func WithMaxSize(size int) Option {
	return func(c *config) {
		c.maxSize = size
	}
}

// WithEvictionPolicy sets the eviction policy for the container. The
// default is FIFO.
func WithEvictionPolicy(policy evictionPolicy) Option {
	return func(c *config) {
		c.policy = policy
	}
}

// WithTTL gives every entry a time-to-live measured from its insertion.
// Without it entries never time-expire.
func WithTTL(ttl time.Duration) Option {
	return func(c *config) {
		c.ttl = ttl
	}
}

// WithRefreshTTLOnAccess restarts an entry's TTL on every successful
// lookup instead of measuring it from insertion only.
func WithRefreshTTLOnAccess() Option {
	return func(c *config) {
		c.refreshOnAccess = true
	}
}

// WithCleanupInterval runs a background sweep for expired entries on the
// given cadence. Without it expired entries are only dropped lazily, on
// the next operation that touches them.
func WithCleanupInterval(period time.Duration) Option {
	return func(c *config) {
		c.cleanupInterval = period
	}
}

// WithOnEvict registers an observer for capacity evictions; it receives
// the evicted value. The callback runs with the container lock held and
// must not call back into the container.
func WithOnEvict(fn func(value any)) Option {
	return func(c *config) {
		c.onEvict = fn
	}
}
