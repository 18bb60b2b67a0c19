package shade

import (
	"encoding/binary"
	"hash/fnv"
)

// ID uniquely identifies a widget instance for state persistence.
// IDs are stable across frames for the same seed; uniqueness within a frame
// is the caller's responsibility. Two widgets built from the same seed
// silently share state.
type ID uint64

// NewID derives a stable ID from a caller-supplied seed string.
func NewID(seed string) ID {
	h := fnv.New64a()
	h.Write([]byte(seed))
	return ID(h.Sum64())
}

// Role derives a sub-key for one facet of an instance's state, e.g. the open
// flag, the painted content area, or an animation slot. Distinct roles on the
// same ID never collide with each other or with the base ID.
func (id ID) Role(suffix string) ID {
	h := fnv.New64a()
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(id))
	h.Write(buf[:])
	h.Write([]byte(suffix))
	return ID(h.Sum64())
}
