package engine

import (
	"fmt"
	"time"

	"github.com/lunawell/nudge/pkg/domain"
)

// dismissThreshold is the consecutive-dismissal count at which the daily
// cap is silently reduced
const dismissThreshold = 3

// Gate decides whether generation may run this tick. Gates are evaluated in
// order and short-circuit on the first suppression; the reason is returned
// for debug logging only.
func Gate(now time.Time, prefs domain.Preferences, todayCount, dismissals int) (ok bool, reason string) {
	if prefs.Tone == domain.ToneSilent {
		return false, "tone is silent"
	}

	if prefs.PausedForToday && prefs.PausedDate == isoDate(now) {
		return false, "paused for today"
	}
	// a pause dated any other day is stale and auto-expires, no user action needed

	if inQuietHours(now.Hour(), prefs.QuietStart, prefs.QuietEnd) {
		return false, fmt.Sprintf("quiet hours %d-%d", prefs.QuietStart, prefs.QuietEnd)
	}

	if limit := EffectiveCap(prefs.MaxPerDay, dismissals); todayCount >= limit {
		return false, fmt.Sprintf("daily cap reached (%d/%d)", todayCount, limit)
	}

	return true, ""
}

// inQuietHours reports window membership with midnight wrapping:
// start <= end covers [start, end), start > end covers [start, 24) and [0, end)
func inQuietHours(hour, start, end int) bool {
	if start <= end {
		return hour >= start && hour < end
	}
	return hour >= start || hour < end
}

// EffectiveCap returns the daily cap after adaptive reduction: repeated
// dismissals without engagement shave one off, floored at 1
func EffectiveCap(maxPerDay, dismissals int) int {
	if dismissals >= dismissThreshold {
		if maxPerDay-1 < 1 {
			return 1
		}
		return maxPerDay - 1
	}
	return maxPerDay
}

// CountToday counts stored notifications created on the same calendar day
// as now, in now's location
func CountToday(list []domain.Notification, now time.Time) int {
	today := isoDate(now)
	count := 0
	for _, n := range list {
		if isoDate(n.CreatedAt.In(now.Location())) == today {
			count++
		}
	}
	return count
}

// isoDate formats a timestamp as its ISO calendar date
func isoDate(t time.Time) string {
	return t.Format("2006-01-02")
}
