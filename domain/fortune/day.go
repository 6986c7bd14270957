package fortune

import "time"

// KST is the fixed civil timezone every "today" computation uses.
// Day boundaries must be identical wherever the process runs, so the host
// locale is never consulted.
var KST = time.FixedZone("KST", 9*60*60)

// DayKeyAt returns the calendar day of t in KST, formatted YYYY-MM-DD.
// The format sorts lexicographically in day order, which the storage keys
// rely on.
func DayKeyAt(t time.Time) string {
	return t.In(KST).Format(time.DateOnly)
}
