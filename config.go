package bounded

import (
	"errors"
	"fmt"
	"time"

	"github.com/moeryomenko/bounded/internal/engine"
)

// ErrInvalidMaxSize is returned by the constructors when the configured
// capacity is zero or negative.
var ErrInvalidMaxSize = errors.New("max size must be a positive integer")

const defaultMaxSize = 10000

type config struct {
	maxSize         int
	policy          evictionPolicy
	ttl             time.Duration
	refreshOnAccess bool
	cleanupInterval time.Duration
	onEvict         func(value any)
}

func defaultConfig() config {
	return config{
		maxSize: defaultMaxSize,
		policy:  FIFO,
	}
}

func (c config) validate() error {
	if c.maxSize <= 0 {
		return fmt.Errorf("bounded: %w, got %d", ErrInvalidMaxSize, c.maxSize)
	}
	return nil
}

func (c config) engineConfig() engine.Config {
	return engine.Config{
		MaxSize:         c.maxSize,
		Policy:          c.policy,
		TTL:             c.ttl,
		RefreshOnAccess: c.refreshOnAccess,
		CleanupInterval: c.cleanupInterval,
		OnEvict:         c.onEvict,
	}
}
