package bounded

// container is the maintenance surface shared by Set and Map.
type container interface {
	Len() int
	MaxSize() int
	Clear()
	Cleanup() int
	Close()
	Stats() Stats
	ExtendedStats() ExtendedStats
	ResetStats()
}

// dummy test for façades.
var (
	_ container = (*Set[string])(nil)
	_ container = (*Map[string, any])(nil)
)
