package store

import "sync"

var (
	defaultMu    sync.RWMutex
	defaultStore *Store
)

// SetDefault installs s as the process-wide store.
func SetDefault(s *Store) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultStore = s
}

// Default returns the process-wide store, or nil before SetDefault.
func Default() *Store {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultStore
}
