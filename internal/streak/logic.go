package streak

import (
	"time"

	"github.com/google/uuid"
	util "github.com/kndri/selah-journaling/internal/utils"
)

// ApplyCreate computes the streak row after a new entry dated entryDate,
// given the current row (nil when the user has none yet) and the real
// "today". The second return value reports whether a write is needed.
//
// Transitions, in order:
//   - no row: current=1, longest=1, last=entryDate
//   - same calendar day as last: unchanged
//   - exactly one day after last, and last was yesterday: current+1,
//     longest raised to match if passed
//   - more than one day after last: current=1, last=entryDate; longest is
//     deliberately left alone on this branch
//
// An entry one day after last when last is older than yesterday matches no
// transition and leaves the row unchanged.
func ApplyCreate(cur *Streak, userID uuid.UUID, entryDate, today time.Time) (Streak, bool) {
	if cur == nil {
		return Streak{
			UserID:             userID,
			CurrentStreak:      1,
			LongestStreak:      1,
			LastReflectionDate: util.DayStart(entryDate),
		}, true
	}

	d0 := util.DayStart(entryDate)
	last0 := util.DayStart(cur.LastReflectionDate)
	yesterday := util.Yesterday(today)

	next := *cur

	switch {
	case d0.Equal(last0):
		return next, false

	case util.NextDay(last0, d0) && last0.Equal(yesterday):
		next.CurrentStreak = cur.CurrentStreak + 1
		if next.CurrentStreak > next.LongestStreak {
			next.LongestStreak = next.CurrentStreak
		}
		next.LastReflectionDate = d0
		return next, true

	case d0.After(last0.AddDate(0, 0, 1)):
		next.CurrentStreak = 1
		next.LastReflectionDate = d0
		return next, true

	default:
		return next, false
	}
}

// ApplyDelete compensates the streak after an entry dated entryDate was
// removed. It only acts when the deleted entry shared a day with
// last_reflection_date and no other entry remains on that day; the date
// itself is not renegotiated to an earlier day.
func ApplyDelete(cur *Streak, entryDate time.Time, remainingSameDay int64) (Streak, bool) {
	if cur == nil {
		return Streak{}, false
	}

	if !util.SameDay(entryDate, cur.LastReflectionDate) || remainingSameDay > 0 {
		return *cur, false
	}

	next := *cur
	if next.CurrentStreak > 0 {
		next.CurrentStreak--
	}
	return next, true
}
