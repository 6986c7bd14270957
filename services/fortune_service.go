//go:generate go run go.uber.org/mock/mockgen -source=fortune_service.go -destination=../mocks/mock_fortune_service.go -package=mocks
package services

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/gguatit/Today-s-horoscope/domain/fortune"
	"github.com/gguatit/Today-s-horoscope/observability"
	"github.com/gguatit/Today-s-horoscope/repositories"
)

// IDuplicateChecker is the narrow view of the duplicate detector the service
// depends on.
type IDuplicateChecker interface {
	IsDuplicate(userID, question, day string) (bool, error)
}

type IFortuneService interface {
	ValidateAndIncrement(userID, question string) (fortune.Decision, error)
	GetDailyRequestCount(userID string) (int, error)
	CheckDailyLimit(userID string) (fortune.LimitCheck, error)
	ResetDailyCount(userID string) error
	CleanupOldRecords(retentionDays int) (int, error)
}

// FortuneService sequences duplicate check → quota check → atomic increment
// into one decision per request. It owns no durable state itself: the quota
// repository owns the counters and the chat log owns prior questions.
type FortuneService struct {
	quota   repositories.IQuotaRepository
	history repositories.IHistoryRepository
	dedup   IDuplicateChecker
	stats   *observability.Stats
	log     *slog.Logger
	now     func() time.Time
	locks   *keyedLock
}

func NewFortuneService(
	quota repositories.IQuotaRepository,
	history repositories.IHistoryRepository,
	dedup IDuplicateChecker,
	stats *observability.Stats,
	log *slog.Logger,
	now func() time.Time,
) *FortuneService {
	return &FortuneService{
		quota:   quota,
		history: history,
		dedup:   dedup,
		stats:   stats,
		log:     log,
		now:     now,
		locks:   newKeyedLock(),
	}
}

// ValidateAndIncrement decides whether one fortune request is admitted and
// records the admission. Exactly one terminal outcome per call: DUPLICATE
// and QUOTA_EXCEEDED never touch the counter; ADMITTED increments it.
// The whole sequence, including the append to the chat log, holds the
// bucket's lock so two concurrent copies of the same question cannot both
// pass the duplicate check.
func (s *FortuneService) ValidateAndIncrement(userID, question string) (fortune.Decision, error) {
	day := fortune.DayKeyAt(s.now())

	bucket := userID + ":" + day
	entry := s.locks.acquire(bucket)
	defer s.locks.release(bucket, entry)

	duplicate, err := s.dedup.IsDuplicate(userID, question, day)
	if err != nil {
		s.stats.IncrStorageErrors()
		return fortune.Decision{}, err
	}
	if duplicate {
		count, err := s.quota.GetCount(userID, day)
		if err != nil {
			s.stats.IncrStorageErrors()
			return fortune.Decision{}, err
		}
		s.stats.IncrDuplicates()
		s.log.Info("Duplicate question rejected", "user", userID, "day", day)
		return fortune.Decision{
			Success:   false,
			Outcome:   fortune.OutcomeDuplicate,
			Remaining: max(0, fortune.MaxDailyRequests-count),
			Message:   fortune.MsgDuplicateQuestion,
		}, nil
	}

	check, err := s.checkDailyLimit(userID, day)
	if err != nil {
		s.stats.IncrStorageErrors()
		return fortune.Decision{}, err
	}
	if !check.Allowed {
		s.stats.IncrExhausted()
		s.log.Info("Daily quota exhausted", "user", userID, "day", day)
		return fortune.Decision{
			Success:   false,
			Outcome:   fortune.OutcomeQuotaExceeded,
			Remaining: 0,
			Message:   check.Message,
		}, nil
	}

	if err := s.quota.Increment(userID, day); err != nil {
		s.stats.IncrStorageErrors()
		return fortune.Decision{}, err
	}
	if err := s.history.Append(repositories.ChatEntry{
		ID:          uuid.New(),
		UserID:      userID,
		UserMessage: question,
		CreatedAt:   s.now(),
	}); err != nil {
		s.stats.IncrStorageErrors()
		return fortune.Decision{}, err
	}
	s.stats.IncrAdmitted()
	return fortune.Decision{
		Success:   true,
		Outcome:   fortune.OutcomeAdmitted,
		Remaining: check.Remaining,
		Message:   check.Message,
	}, nil
}

// GetDailyRequestCount returns how many fortunes the user has already drawn
// today.
func (s *FortuneService) GetDailyRequestCount(userID string) (int, error) {
	return s.quota.GetCount(userID, fortune.DayKeyAt(s.now()))
}

// CheckDailyLimit reports whether the user may still ask today, without
// consuming quota.
func (s *FortuneService) CheckDailyLimit(userID string) (fortune.LimitCheck, error) {
	return s.checkDailyLimit(userID, fortune.DayKeyAt(s.now()))
}

func (s *FortuneService) checkDailyLimit(userID, day string) (fortune.LimitCheck, error) {
	count, err := s.quota.GetCount(userID, day)
	if err != nil {
		return fortune.LimitCheck{}, err
	}
	if count >= fortune.MaxDailyRequests {
		return fortune.LimitCheck{
			Allowed:   false,
			Remaining: 0,
			Message:   fortune.MsgQuotaExhausted(),
		}, nil
	}
	// Remaining after the request being checked, not before it.
	remaining := fortune.MaxDailyRequests - count - 1
	return fortune.LimitCheck{
		Allowed:   true,
		Remaining: remaining,
		Message:   fortune.MsgSuccess(remaining),
	}, nil
}

// ResetDailyCount wipes today's counter for one user. Administrative.
func (s *FortuneService) ResetDailyCount(userID string) error {
	day := fortune.DayKeyAt(s.now())
	s.log.Info("Resetting daily count", "user", userID, "day", day)
	return s.quota.Reset(userID, day)
}

// CleanupOldRecords deletes quota records older than the retention window
// and returns how many were removed. Runs off the request path.
func (s *FortuneService) CleanupOldRecords(retentionDays int) (int, error) {
	if retentionDays <= 0 {
		retentionDays = fortune.DefaultRetentionDays
	}
	cutoff := fortune.DayKeyAt(s.now().AddDate(0, 0, -retentionDays))
	return s.quota.DeleteOlderThan(cutoff)
}
