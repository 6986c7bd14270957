//go:generate go run go.uber.org/mock/mockgen -source=quota.go -destination=../mocks/mock_quota_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
)

type IQuotaRepository interface {
	GetCount(userID, day string) (int, error)
	Increment(userID, day string) error
	Reset(userID, day string) error
	DeleteOlderThan(cutoffDay string) (int, error)
}

// QuotaRepository persists one request counter per (user, KST day) pair.
type QuotaRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewQuotaRepository(db *badger.DB, log *slog.Logger) *QuotaRepository {
	return &QuotaRepository{db: db, log: log}
}

// quotaRecord is the persisted counter value.
type quotaRecord struct {
	Count     int       `json:"count"`
	UpdatedAt time.Time `json:"updated_at"`
}

const quotaPrefix = "quota:"

// quotaKey puts the day segment first so a retention sweep walks records in
// day order and can stop at the cutoff.
func quotaKey(userID, day string) []byte {
	return []byte(fmt.Sprintf("%s%s:%s", quotaPrefix, day, userID))
}

// GetCount returns the persisted count for (user, day), or 0 when no record
// exists. Read-only.
func (q QuotaRepository) GetCount(userID, day string) (int, error) {
	var rec quotaRecord
	err := q.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(quotaKey(userID, day))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &rec)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return rec.Count, nil
}

// Increment creates the (user, day) record with count 1 or bumps the
// existing count, atomically against concurrent callers. The read and the
// write happen inside one serializable Badger transaction: when two
// transactions race on the same key the loser aborts with ErrConflict
// instead of losing an update, and is simply re-run.
func (q QuotaRepository) Increment(userID, day string) error {
	key := quotaKey(userID, day)
	for {
		err := q.db.Update(func(txn *badger.Txn) error {
			var rec quotaRecord
			item, err := txn.Get(key)
			switch {
			case errors.Is(err, badger.ErrKeyNotFound):
				// First reading of the day for this user.
			case err != nil:
				return err
			default:
				if err := item.Value(func(val []byte) error {
					return json.Unmarshal(val, &rec)
				}); err != nil {
					return err
				}
			}
			rec.Count++
			rec.UpdatedAt = time.Now().UTC()
			data, err := json.Marshal(rec)
			if err != nil {
				return err
			}
			return txn.Set(key, data)
		})
		if !errors.Is(err, badger.ErrConflict) {
			return err
		}
	}
}

// Reset deletes the record for one (user, day). Deleting an absent record is
// not an error.
func (q QuotaRepository) Reset(userID, day string) error {
	return q.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(quotaKey(userID, day))
	})
}

// DeleteOlderThan removes every quota record whose day sorts strictly before
// cutoffDay and returns how many were deleted. Idempotent: a second call
// with no new stale records deletes 0.
func (q QuotaRepository) DeleteOlderThan(cutoffDay string) (int, error) {
	var stale [][]byte
	prefix := []byte(quotaPrefix)

	err := q.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			key := it.Item().KeyCopy(nil)
			rest := key[len(prefix):]
			if len(rest) < len(time.DateOnly) {
				continue
			}
			// Keys are day-ordered; the first record at or past the cutoff
			// ends the scan.
			if string(rest[:len(time.DateOnly)]) >= cutoffDay {
				break
			}
			stale = append(stale, key)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	if len(stale) == 0 {
		return 0, nil
	}

	err = q.db.Update(func(txn *badger.Txn) error {
		for _, key := range stale {
			if err := txn.Delete(key); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	q.log.Debug("Deleted stale quota records", "cutoff", cutoffDay, "deleted", len(stale))
	return len(stale), nil
}
