package scoring

import (
	"time"

	"workpulse/pkg/datemath"
)

// Urgency is the coarse priority bucket attached to every task.
type Urgency string

const (
	UrgencyLow      Urgency = "low"
	UrgencyMedium   Urgency = "medium"
	UrgencyHigh     Urgency = "high"
	UrgencyCritical Urgency = "critical"
)

// DeadlineResult is the base score and tier derived from deadline proximity alone.
type DeadlineResult struct {
	Score       int
	Urgency     Urgency
	HasDeadline bool
	DaysUntil   int // meaningless when HasDeadline is false
}

// NoDeadlineScore is the base for tasks without a deadline.
const NoDeadlineScore = 50

// ClassifyDeadline maps time-to-deadline to a base priority score and urgency
// tier. First matching row wins:
//
//	overdue        → 100 critical
//	due today      →  95 critical
//	due tomorrow   →  90 high
//	within 3 days  →  80 high
//	within 7 days  →  70 medium
//	further out    →  50 low
//
// A nil deadline scores 50/medium.
func ClassifyDeadline(deadline *time.Time, now time.Time) DeadlineResult {
	if deadline == nil {
		return DeadlineResult{Score: NoDeadlineScore, Urgency: UrgencyMedium}
	}

	days := datemath.DaysUntil(*deadline, now)
	res := DeadlineResult{HasDeadline: true, DaysUntil: days}

	switch {
	case days < 0:
		res.Score, res.Urgency = 100, UrgencyCritical
	case days == 0:
		res.Score, res.Urgency = 95, UrgencyCritical
	case days == 1:
		res.Score, res.Urgency = 90, UrgencyHigh
	case days <= 3:
		res.Score, res.Urgency = 80, UrgencyHigh
	case days <= 7:
		res.Score, res.Urgency = 70, UrgencyMedium
	default:
		res.Score, res.Urgency = 50, UrgencyLow
	}
	return res
}
