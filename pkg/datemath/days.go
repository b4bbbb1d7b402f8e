package datemath

import (
	"math"
	"time"
)

const daySeconds = 86400

// DaysUntil returns ceil((deadline - now) / 24h). A deadline later today ceils
// to 1, one earlier today to 0, and anything a full day past is negative.
func DaysUntil(deadline, now time.Time) int {
	diff := deadline.Sub(now).Seconds()
	return int(math.Ceil(diff / daySeconds))
}

// DaysUntilAtLeastOne is DaysUntil floored at 1, for callers that divide by it.
func DaysUntilAtLeastOne(deadline, now time.Time) int {
	days := DaysUntil(deadline, now)
	if days < 1 {
		return 1
	}
	return days
}
