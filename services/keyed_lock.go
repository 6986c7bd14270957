package services

import "sync"

// keyedLock hands out one mutex per quota bucket so the duplicate-check →
// limit-check → increment sequence for a given (user, day) runs alone.
// Requests for other buckets proceed in parallel. Entries are reference
// counted and removed once the last holder releases, so the map does not
// grow with the user population.
type keyedLock struct {
	mu    sync.Mutex
	locks map[string]*lockEntry
}

type lockEntry struct {
	sync.Mutex
	refs int
}

func newKeyedLock() *keyedLock {
	return &keyedLock{locks: make(map[string]*lockEntry)}
}

func (k *keyedLock) acquire(key string) *lockEntry {
	k.mu.Lock()
	entry, ok := k.locks[key]
	if !ok {
		entry = &lockEntry{}
		k.locks[key] = entry
	}
	entry.refs++
	k.mu.Unlock()

	entry.Lock()
	return entry
}

func (k *keyedLock) release(key string, entry *lockEntry) {
	entry.Unlock()

	k.mu.Lock()
	entry.refs--
	if entry.refs == 0 {
		delete(k.locks, key)
	}
	k.mu.Unlock()
}
