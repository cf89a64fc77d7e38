package viewport

import "sync"

// Store is the render-visible copy of the transform, refreshed from the
// live copy at most once per display frame (plus the forced flush at
// gesture end). Only a store version change triggers culling and draw-list
// rebuilds; the high-frequency input path never touches it.
type Store struct {
	mu      sync.Mutex
	t       Transform
	version uint64
}

// NewStore returns a store holding the identity transform.
func NewStore() *Store {
	return &Store{t: Identity(), version: 1}
}

// SyncFrom refreshes the stored transform and returns the current version.
// The version advances only when the transform actually changed, so
// redundant syncs cause no rebuilds.
func (s *Store) SyncFrom(t Transform) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.t != t {
		s.t = t
		s.version++
	}
	return s.version
}

// Get returns the synced transform and its version.
func (s *Store) Get() (Transform, uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.t, s.version
}
