package dedup

import (
	"log/slog"

	"github.com/samber/lo"

	"github.com/gguatit/Today-s-horoscope/repositories"
)

// Detector decides whether a question repeats one the user already asked
// today. It only reads the chat log, never writes it.
type Detector struct {
	history repositories.IHistoryRepository
	log     *slog.Logger
}

func NewDetector(history repositories.IHistoryRepository, log *slog.Logger) Detector {
	return Detector{history: history, log: log}
}

// IsDuplicate reports whether any of the user's questions from the given KST
// day normalizes to the same string as question. An empty history is never a
// duplicate.
func (d Detector) IsDuplicate(userID, question, day string) (bool, error) {
	entries, err := d.history.MessagesForDay(userID, day)
	if err != nil {
		return false, err
	}
	if len(entries) == 0 {
		return false, nil
	}

	norm := normalize(question)
	duplicate := lo.SomeBy(entries, func(entry repositories.ChatEntry) bool {
		return entry.UserMessage != "" && normalize(entry.UserMessage) == norm
	})
	if duplicate {
		d.log.Debug("Duplicate question detected", "user", userID, "day", day)
	}
	return duplicate, nil
}
