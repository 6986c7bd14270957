package observability

import (
	"sync/atomic"
	"time"
)

// Stats counts admission outcomes with atomic counters so every request
// handler can record its decision without locking.
type Stats struct {
	admitted      uint64
	duplicates    uint64
	exhausted     uint64
	storageErrors uint64
	started       time.Time
}

// Snapshot is the JSON shape served by the stats endpoint.
type Snapshot struct {
	Admitted      uint64 `json:"admitted"`
	Duplicates    uint64 `json:"duplicates"`
	Exhausted     uint64 `json:"exhausted"`
	StorageErrors uint64 `json:"storage_errors"`
	UptimeSeconds int64  `json:"uptime_seconds"`
}

func NewStats() *Stats {
	return &Stats{started: time.Now()}
}

func (s *Stats) IncrAdmitted() {
	atomic.AddUint64(&s.admitted, 1)
}

func (s *Stats) IncrDuplicates() {
	atomic.AddUint64(&s.duplicates, 1)
}

func (s *Stats) IncrExhausted() {
	atomic.AddUint64(&s.exhausted, 1)
}

func (s *Stats) IncrStorageErrors() {
	atomic.AddUint64(&s.storageErrors, 1)
}

func (s *Stats) Snapshot() Snapshot {
	return Snapshot{
		Admitted:      atomic.LoadUint64(&s.admitted),
		Duplicates:    atomic.LoadUint64(&s.duplicates),
		Exhausted:     atomic.LoadUint64(&s.exhausted),
		StorageErrors: atomic.LoadUint64(&s.storageErrors),
		UptimeSeconds: int64(time.Since(s.started).Seconds()),
	}
}
