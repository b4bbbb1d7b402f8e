package scoring_test

import (
	"testing"
	"time"

	"workpulse/pkg/scoring"
)

func TestAnalyzeDescription(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	farOut := now.AddDate(0, 0, 30)

	t.Run("Complexity Saturates At Five", func(t *testing.T) {
		// Four distinct high-tier complexity keywords: raw 1 + 4*1.5 = 7,
		// reported value must clamp to exactly 5.
		got := scoring.AnalyzeDescription(
			"refactor the architecture for the distributed infrastructure",
			farOut, now,
		)
		if got.Complexity != 5 {
			t.Errorf("Complexity = %d, want 5", got.Complexity)
		}
	})

	t.Run("Low Importance Keywords Reduce Score", func(t *testing.T) {
		// Four low-tier importance keywords: raw 2 - 4*0.3 = 0.8 → clamps to 1.
		got := scoring.AnalyzeDescription("maybe consider optional idea", farOut, now)
		if got.Importance != 1 {
			t.Errorf("Importance = %d, want 1", got.Importance)
		}
		if got.Urgency != scoring.UrgencyLow {
			t.Errorf("Urgency = %s, want low", got.Urgency)
		}
	})

	t.Run("Rounds To Nearest", func(t *testing.T) {
		// One medium complexity keyword: 1 + 0.8 = 1.8 → 2.
		got := scoring.AnalyzeDescription("coordinate", farOut, now)
		if got.Complexity != 2 {
			t.Errorf("Complexity = %d, want 2", got.Complexity)
		}
	})

	t.Run("Empty Description Uses Base Scores", func(t *testing.T) {
		got := scoring.AnalyzeDescription("", farOut, now)
		if got.Complexity != 1 || got.Importance != 2 {
			t.Errorf("got %d/%d, want 1/2", got.Complexity, got.Importance)
		}
	})

	t.Run("Imminent Deadline Forces Critical", func(t *testing.T) {
		tomorrow := now.AddDate(0, 0, 1)
		got := scoring.AnalyzeDescription("", tomorrow, now)
		if got.Urgency != scoring.UrgencyCritical {
			t.Errorf("Urgency = %s, want critical", got.Urgency)
		}
	})

	t.Run("Three Day Deadline Forces High", func(t *testing.T) {
		inThree := now.AddDate(0, 0, 3)
		got := scoring.AnalyzeDescription("", inThree, now)
		if got.Urgency != scoring.UrgencyHigh {
			t.Errorf("Urgency = %s, want high", got.Urgency)
		}
	})

	t.Run("High Scores Yield Critical Without Deadline Pressure", func(t *testing.T) {
		// Complexity and importance both saturated: total = 5 + 5/30 ≥ 4.5.
		got := scoring.AnalyzeDescription(
			"urgent critical refactor of the distributed architecture infrastructure for a key client, asap",
			farOut, now,
		)
		if got.Complexity != 5 || got.Importance != 5 {
			t.Fatalf("got %d/%d, want 5/5", got.Complexity, got.Importance)
		}
		if got.Urgency != scoring.UrgencyCritical {
			t.Errorf("Urgency = %s, want critical", got.Urgency)
		}
	})

	t.Run("Overdue Deadline Floors Days At One", func(t *testing.T) {
		yesterday := now.AddDate(0, 0, -1)
		got := scoring.AnalyzeDescription("simple update", yesterday, now)
		if got.Urgency != scoring.UrgencyCritical {
			t.Errorf("Urgency = %s, want critical", got.Urgency)
		}
	})
}
