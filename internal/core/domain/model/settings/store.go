package settings

import "sync"

// Store holds the current Settings snapshot and swaps it atomically when
// configuration is refreshed. Readers always see a complete snapshot, never
// a half-updated one. Safe for concurrent use.
type Store struct {
	mu      sync.RWMutex
	current Settings
}

// NewStore creates a store seeded with the given snapshot.
func NewStore(initial Settings) *Store {
	return &Store{current: initial}
}

// Current returns the latest settings snapshot.
func (s *Store) Current() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Replace swaps in a new snapshot.
func (s *Store) Replace(next Settings) {
	s.mu.Lock()
	s.current = next
	s.mu.Unlock()
}
