package dedup

import (
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/gguatit/Today-s-horoscope/mocks"
	"github.com/gguatit/Today-s-horoscope/repositories"
)

func entry(message string) repositories.ChatEntry {
	return repositories.ChatEntry{
		ID:          uuid.New(),
		UserID:      "u1",
		UserMessage: message,
		CreatedAt:   time.Now(),
	}
}

func TestDetector_IsDuplicate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHistory := mocks.NewMockIHistoryRepository(ctrl)
	detector := NewDetector(mockHistory, slog.Default())
	day := "2025-06-01"

	t.Run("should be false for an empty history", func(t *testing.T) {
		req := require.New(t)
		mockHistory.EXPECT().
			MessagesForDay("u1", day).
			Return(nil, nil).
			Times(1)

		duplicate, err := detector.IsDuplicate("u1", "오늘 운세 어때?", day)
		req.NoError(err)
		req.False(duplicate)
	})

	t.Run("should match despite punctuation and filler", func(t *testing.T) {
		req := require.New(t)
		mockHistory.EXPECT().
			MessagesForDay("u1", day).
			Return([]repositories.ChatEntry{entry("오늘 운세 어때?")}, nil).
			Times(1)

		duplicate, err := detector.IsDuplicate("u1", "오늘운세어때!!ㅋㅋ", day)
		req.NoError(err)
		req.True(duplicate)
	})

	t.Run("should not match a different question", func(t *testing.T) {
		req := require.New(t)
		mockHistory.EXPECT().
			MessagesForDay("u1", day).
			Return([]repositories.ChatEntry{entry("오늘 운세 어때?")}, nil).
			Times(1)

		duplicate, err := detector.IsDuplicate("u1", "내일 운세 어때?", day)
		req.NoError(err)
		req.False(duplicate)
	})

	t.Run("should ignore empty prior messages", func(t *testing.T) {
		req := require.New(t)
		mockHistory.EXPECT().
			MessagesForDay("u1", day).
			Return([]repositories.ChatEntry{entry("")}, nil).
			Times(1)

		// A question that normalizes to the empty string must not match an
		// empty prior message.
		duplicate, err := detector.IsDuplicate("u1", "??", day)
		req.NoError(err)
		req.False(duplicate)
	})

	t.Run("should propagate storage errors", func(t *testing.T) {
		req := require.New(t)
		storageErr := fmt.Errorf("badger: closed")
		mockHistory.EXPECT().
			MessagesForDay("u1", day).
			Return(nil, storageErr).
			Times(1)

		_, err := detector.IsDuplicate("u1", "오늘 운세 어때?", day)
		req.ErrorIs(err, storageErr)
	})
}
