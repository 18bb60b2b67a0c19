package shade

// Store persists small typed values between frames, keyed by widget ID.
// It is the substrate that lets immediate-mode code simulate retained state:
// every frame rebuilds the same logical widget from scratch, and the store
// remembers whether its panel was open, when a hover began, or how far an
// animation has travelled.
//
// Entries are never expired automatically - a key written once persists until
// explicitly removed. Callers must therefore use a bounded, reused key space
// (keys derived from stable widget identity, not from loop counters over
// growing collections), or stale entries accumulate for the life of the
// process.
//
// A Store is an explicit value passed into the frame context rather than a
// hidden global, so tests and multi-window hosts can run independent stores.
// It is not safe for concurrent use; the engine confines it to the UI thread.
type Store struct {
	values map[ID]any
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{values: make(map[ID]any)}
}

// Get retrieves the value stored under id. A missing entry, or an entry whose
// stored type is not T, returns def - by construction there is no error path,
// the default is the documented safe fallback (closed, not hovering, hidden).
func Get[T any](s *Store, id ID, def T) T {
	if v, ok := s.values[id]; ok {
		if typed, ok := v.(T); ok {
			return typed
		}
	}
	return def
}

// Lookup retrieves the value stored under id, reporting whether a value of
// type T was present.
func Lookup[T any](s *Store, id ID) (T, bool) {
	if v, ok := s.values[id]; ok {
		if typed, ok := v.(T); ok {
			return typed, true
		}
	}
	var zero T
	return zero, false
}

// Set stores value under id, overwriting unconditionally. A value of a
// different type replaces whatever occupied the key before.
func Set[T any](s *Store, id ID, value T) {
	s.values[id] = value
}

// Remove deletes the entry for id. Removing an absent key is a no-op.
func Remove(s *Store, id ID) {
	delete(s.values, id)
}

// Len returns the number of stored entries. Useful for leak checks in tests.
func (s *Store) Len() int {
	return len(s.values)
}

// Clear removes all entries, e.g. when switching scenes.
func (s *Store) Clear() {
	clear(s.values)
}
