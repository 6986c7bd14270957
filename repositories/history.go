//go:generate go run go.uber.org/mock/mockgen -source=history.go -destination=../mocks/mock_history_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"github.com/gguatit/Today-s-horoscope/domain/fortune"
)

type IHistoryRepository interface {
	Append(entry ChatEntry) error
	MessagesForDay(userID, day string) ([]ChatEntry, error)
}

// ChatEntry is one user question in the append-only chat log. The duplicate
// detector only ever reads these; the fortune service appends one for each
// admitted question.
type ChatEntry struct {
	ID          uuid.UUID `json:"id"`
	UserID      string    `json:"user_id"`
	UserMessage string    `json:"user_message"`
	CreatedAt   time.Time `json:"created_at"`
}

type HistoryRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewHistoryRepository(db *badger.DB, log *slog.Logger) *HistoryRepository {
	return &HistoryRepository{db: db, log: log}
}

// historyKey is "chat:{user}:{kst day}:{timestamp_padded}:{uuid}":
//  1. The user segment is query-escaped so a user ID containing ":" cannot
//     fake another user's day prefix.
//  2. The day segment is computed in KST so a day-bounded read is a plain
//     prefix scan.
//  3. 19-digit zero padding keeps entries chronologically sorted
//     (lexicographical order).
//  4. The UUID disambiguates two questions landing on the same nanosecond.
func historyKey(entry ChatEntry) []byte {
	return []byte(fmt.Sprintf("chat:%s:%s:%019d:%s",
		url.QueryEscape(entry.UserID),
		fortune.DayKeyAt(entry.CreatedAt),
		entry.CreatedAt.UnixNano(),
		entry.ID,
	))
}

// Append persists one chat entry.
func (h HistoryRepository) Append(entry ChatEntry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	return h.db.Update(func(txn *badger.Txn) error {
		return txn.Set(historyKey(entry), data)
	})
}

// MessagesForDay returns the user's entries whose creation falls in the
// given KST day, most recent first. Read-only.
func (h HistoryRepository) MessagesForDay(userID, day string) ([]ChatEntry, error) {
	var raw [][]byte
	err := h.db.View(func(txn *badger.Txn) error {
		prefix := []byte(fmt.Sprintf("chat:%s:%s:", url.QueryEscape(userID), day))
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		it := txn.NewIterator(options)
		defer it.Close()

		// Seek past the last possible key under the prefix, then walk back.
		seekKey := append(append([]byte{}, prefix...), 0xFF)
		for it.Seek(seekKey); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				raw = append(raw, append([]byte{}, val...))
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	entries := make([]ChatEntry, 0, len(raw))
	for _, data := range raw {
		var entry ChatEntry
		if err := json.Unmarshal(data, &entry); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
