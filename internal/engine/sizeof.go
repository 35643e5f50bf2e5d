package engine

import "encoding/json"

// Per-entry accounting constants. These are deliberately rough: the entry
// struct with its timestamps, the list element and a share of a map
// bucket on a 64-bit platform. The contract is monotonicity, not
// byte-exact accuracy.
const (
	entryOverheadBytes = 96
	scalarBytes        = 8
	stringHeaderBytes  = 16
	sliceHeaderBytes   = 24
	fallbackBytes      = 32
)

// sizeOf estimates the payload size of one key or value. Composite
// values fall back to their serialized length.
func sizeOf(v any) int64 {
	switch x := v.(type) {
	case nil:
		return 0
	case string:
		return int64(len(x)) + stringHeaderBytes
	case []byte:
		return int64(len(x)) + sliceHeaderBytes
	case bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr,
		float32, float64:
		return scalarBytes
	default:
		if b, err := json.Marshal(v); err == nil {
			return int64(len(b)) + sliceHeaderBytes
		}
		return fallbackBytes
	}
}
