package fortune

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func Test_DayKey_Uses_KST_Not_Host_Clock(t *testing.T) {
	req := require.New(t)

	// 14:59 UTC is 23:59 KST; 15:01 UTC is 00:01 KST the next day.
	beforeMidnight := time.Date(2025, 3, 9, 14, 59, 0, 0, time.UTC)
	afterMidnight := time.Date(2025, 3, 9, 15, 1, 0, 0, time.UTC)

	req.Equal("2025-03-09", DayKeyAt(beforeMidnight))
	req.Equal("2025-03-10", DayKeyAt(afterMidnight))
}

func Test_DayKey_Ignores_Input_Location(t *testing.T) {
	req := require.New(t)

	ny, err := time.LoadLocation("America/New_York")
	req.NoError(err)

	instant := time.Date(2025, 3, 9, 14, 59, 0, 0, time.UTC)
	req.Equal(DayKeyAt(instant), DayKeyAt(instant.In(ny)))
}
