package bounded

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSet_FIFOEvictsOldestInsertion(t *testing.T) {
	set, err := NewSet[string](WithMaxSize(3), WithEvictionPolicy(FIFO))
	require.NoError(t, err)

	set.Add(`a`).Add(`b`).Add(`c`).Add(`d`)

	assert.False(t, set.Has(`a`))
	assert.True(t, set.Has(`b`))
	assert.True(t, set.Has(`c`))
	assert.True(t, set.Has(`d`))
	assert.Equal(t, 3, set.Len())
}

func TestSet_LRUKeepsAccessedValue(t *testing.T) {
	set, err := NewSet[string](WithMaxSize(3), WithEvictionPolicy(LRU))
	require.NoError(t, err)

	set.Add(`a`).Add(`b`).Add(`c`)
	require.True(t, set.Has(`a`))
	set.Add(`d`)

	assert.False(t, set.Has(`b`))
	assert.True(t, set.Has(`a`))
}

func TestSet_TTLExpiry(t *testing.T) {
	set, err := NewSet[string](WithMaxSize(100), WithTTL(50*time.Millisecond))
	require.NoError(t, err)

	set.Add(`tok`)
	require.True(t, set.Has(`tok`))

	<-time.After(80 * time.Millisecond)
	assert.False(t, set.Has(`tok`))
}

func TestSet_Defaults(t *testing.T) {
	set, err := NewSet[string]()
	require.NoError(t, err)

	assert.Equal(t, 10000, set.MaxSize())
	assert.Equal(t, 0, set.Len())
}

func TestSet_InvalidMaxSize(t *testing.T) {
	for _, size := range []int{0, -5} {
		_, err := NewSet[string](WithMaxSize(size))
		assert.ErrorIs(t, err, ErrInvalidMaxSize)
	}
}

func TestSet_OnEvictFiresPerCapacityEviction(t *testing.T) {
	var evicted []any
	set, err := NewSet[string](
		WithMaxSize(2),
		WithOnEvict(func(value any) { evicted = append(evicted, value) }),
	)
	require.NoError(t, err)

	set.Add(`a`).Add(`b`).Add(`c`).Add(`d`)
	set.Delete(`d`)
	set.Clear()

	assert.Equal(t, []any{`a`, `b`}, evicted)
	assert.Equal(t, uint64(2), set.Stats().Evictions)
}

func TestSet_ContainsHasNoSideEffects(t *testing.T) {
	set, err := NewSet[string](WithMaxSize(2), WithEvictionPolicy(LRU))
	require.NoError(t, err)

	set.Add(`a`).Add(`b`)
	require.True(t, set.Contains(`a`))
	set.Add(`c`)

	assert.False(t, set.Contains(`a`), "contains must not count as use")
	stats := set.Stats()
	assert.Zero(t, stats.Hits)
	assert.Zero(t, stats.Misses)
}

func TestSet_Iteration(t *testing.T) {
	set, err := NewSet[string](WithMaxSize(10))
	require.NoError(t, err)

	set.Add(`a`).Add(`b`).Add(`c`)

	var values []string
	for v := range set.All() {
		values = append(values, v)
	}
	assert.Equal(t, []string{`a`, `b`, `c`}, values)

	for k, v := range set.Entries() {
		assert.Equal(t, k, v)
	}

	var visited []string
	set.ForEach(func(value string) { visited = append(visited, value) })
	assert.Equal(t, values, visited)
}

func TestSet_IterationStopsEarly(t *testing.T) {
	set, err := NewSet[int](WithMaxSize(10))
	require.NoError(t, err)

	set.Add(1).Add(2).Add(3)

	count := 0
	for range set.All() {
		count++
		break
	}
	assert.Equal(t, 1, count)
}

func TestSet_CleanupReportsRemoved(t *testing.T) {
	set, err := NewSet[string](WithMaxSize(10), WithTTL(30*time.Millisecond))
	require.NoError(t, err)

	set.Add(`a`).Add(`b`)
	<-time.After(50 * time.Millisecond)
	set.Add(`c`)

	assert.Equal(t, 2, set.Cleanup())
	assert.Equal(t, 0, set.Cleanup())
	assert.Equal(t, 1, set.Len())
}

func TestSet_CloseIsIdempotent(t *testing.T) {
	set, err := NewSet[string](
		WithMaxSize(10),
		WithTTL(time.Minute),
		WithCleanupInterval(10*time.Millisecond),
	)
	require.NoError(t, err)

	set.Add(`a`)
	set.Close()
	set.Close()

	assert.Equal(t, 0, set.Len())
}
