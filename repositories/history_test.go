package repositories

import (
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"

	"github.com/gguatit/Today-s-horoscope/domain/fortune"
)

func Test_MessagesForDay_Filters_By_User_And_Day(t *testing.T) {
	req := require.New(t)
	repository := NewHistoryRepository(openTestDB(t), slog.Default())

	// 10:00 KST on 2025-06-01 is 01:00 UTC.
	at := time.Date(2025, 6, 1, 1, 0, 0, 0, time.UTC)
	entries := []ChatEntry{
		{ID: uuid.New(), UserID: "u1", UserMessage: "오늘 운세 어때?", CreatedAt: at},
		{ID: uuid.New(), UserID: "u1", UserMessage: "내일 운세", CreatedAt: at.Add(1 * time.Minute)},
		{ID: uuid.New(), UserID: "u2", UserMessage: "오늘 운세 어때?", CreatedAt: at.Add(2 * time.Minute)},
		{ID: uuid.New(), UserID: "u1", UserMessage: "다음 주 운세", CreatedAt: at.Add(24 * time.Hour)},
	}
	for _, entry := range entries {
		req.NoError(repository.Append(entry))
	}

	day := fortune.DayKeyAt(at)
	fetched, err := repository.MessagesForDay("u1", day)
	req.NoError(err)
	req.Len(fetched, 2)
	messages := lo.Map(fetched, func(e ChatEntry, _ int) string { return e.UserMessage })
	req.ElementsMatch([]string{"오늘 운세 어때?", "내일 운세"}, messages)

	// Most recent first.
	req.Equal("내일 운세", fetched[0].UserMessage)
}

func Test_MessagesForDay_Respects_KST_Boundary(t *testing.T) {
	req := require.New(t)
	repository := NewHistoryRepository(openTestDB(t), slog.Default())

	// 23:59 KST on 2025-06-01 == 14:59 UTC; 00:01 KST next day == 15:01 UTC.
	lateEvening := time.Date(2025, 6, 1, 14, 59, 0, 0, time.UTC)
	justAfterMidnight := time.Date(2025, 6, 1, 15, 1, 0, 0, time.UTC)

	req.NoError(repository.Append(ChatEntry{ID: uuid.New(), UserID: "u1", UserMessage: "오늘 운세", CreatedAt: lateEvening}))
	req.NoError(repository.Append(ChatEntry{ID: uuid.New(), UserID: "u1", UserMessage: "오늘 운세", CreatedAt: justAfterMidnight}))

	firstDay, err := repository.MessagesForDay("u1", "2025-06-01")
	req.NoError(err)
	req.Len(firstDay, 1)

	secondDay, err := repository.MessagesForDay("u1", "2025-06-02")
	req.NoError(err)
	req.Len(secondDay, 1)
}

func Test_MessagesForDay_Escapes_Colons_In_UserID(t *testing.T) {
	req := require.New(t)
	repository := NewHistoryRepository(openTestDB(t), slog.Default())

	// A user ID carrying a colon and a day string must not widen another
	// user's day prefix.
	at := time.Date(2025, 6, 1, 1, 0, 0, 0, time.UTC)
	req.NoError(repository.Append(ChatEntry{ID: uuid.New(), UserID: "a", UserMessage: "오늘 운세", CreatedAt: at}))
	req.NoError(repository.Append(ChatEntry{ID: uuid.New(), UserID: "a:2025-06-01", UserMessage: "남의 기록", CreatedAt: at}))

	fetched, err := repository.MessagesForDay("a", "2025-06-01")
	req.NoError(err)
	req.Len(fetched, 1)
	req.Equal("오늘 운세", fetched[0].UserMessage)

	hostile, err := repository.MessagesForDay("a:2025-06-01", "2025-06-01")
	req.NoError(err)
	req.Len(hostile, 1)
	req.Equal("남의 기록", hostile[0].UserMessage)
}

func Test_MessagesForDay_Empty_History(t *testing.T) {
	req := require.New(t)
	repository := NewHistoryRepository(openTestDB(t), slog.Default())

	fetched, err := repository.MessagesForDay("unknown", "2025-06-01")
	req.NoError(err)
	req.Empty(fetched)
}
