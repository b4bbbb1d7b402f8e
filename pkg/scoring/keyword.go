package scoring

import (
	"math"
	"strings"
	"time"

	"workpulse/pkg/datemath"
)

// Keyword tiers for the two free-text dimensions. Matching is plain substring
// search over the lower-cased description, so "api" also fires inside
// "rapid" — that looseness is part of the heuristic's behavior.
var complexityKeywords = map[string][]string{
	"high": {"complex", "integration", "architecture", "algorithm", "optimization",
		"refactor", "migrate", "infrastructure", "distributed", "scalable",
		"multi-tier", "enterprise", "framework", "api", "database", "security",
		"authentication", "encryption", "deployment", "ci/cd", "emergency",
		"crashed", "server", "debugging"},
	"medium": {"develop", "implement", "design", "create", "build", "configure",
		"setup", "test", "debug", "analyze", "research", "document", "coordinate",
		"multiple", "several", "system", "feature", "module"},
	"low": {"update", "fix", "minor", "simple", "quick", "small", "basic",
		"review", "check", "verify", "email", "call", "schedule", "meeting"},
}

var importanceKeywords = map[string][]string{
	"high": {"critical", "urgent", "essential", "vital", "crucial", "mandatory",
		"required", "must", "priority", "important", "revenue", "business",
		"strategic", "client", "customer", "executive", "ceo", "stakeholder",
		"deadline", "asap", "emergency", "immediate", "demanding"},
	"medium": {"should", "needed", "necessary", "useful", "beneficial", "relevant",
		"significant", "team", "project", "department", "quarterly", "monthly",
		"report", "presentation"},
	"low": {"optional", "nice to have", "consider", "maybe", "could", "suggest",
		"idea", "future", "backlog", "whenever", "eventually"},
}

// KeywordResult holds the clamped 1-5 dimension scores and the derived tier.
type KeywordResult struct {
	Complexity int
	Importance int
	Urgency    Urgency
}

// AnalyzeDescription scores a free-text task description on complexity and
// importance via keyword-set membership, then derives an urgency tier from
// the combined score and deadline proximity.
//
// Every keyword hit accumulates — a description stuffed with matching terms
// can push the raw sums arbitrarily high before the final clamp to [1, 5].
// That saturation is intended behavior, not an error condition.
func AnalyzeDescription(description string, deadline time.Time, now time.Time) KeywordResult {
	text := strings.ToLower(description)

	complexity := 1.0
	importance := 2.0

	for tier, keywords := range complexityKeywords {
		for _, keyword := range keywords {
			if !strings.Contains(text, keyword) {
				continue
			}
			switch tier {
			case "high":
				complexity += 1.5
			case "medium":
				complexity += 0.8
			default:
				complexity += 0.3
			}
		}
	}

	for tier, keywords := range importanceKeywords {
		for _, keyword := range keywords {
			if !strings.Contains(text, keyword) {
				continue
			}
			switch tier {
			case "high":
				importance += 1.2
			case "medium":
				importance += 0.6
			default:
				// low-tier importance terms pull the score down
				importance -= 0.3
			}
		}
	}

	result := KeywordResult{
		Complexity: clampDimension(complexity),
		Importance: clampDimension(importance),
	}

	days := datemath.DaysUntilAtLeastOne(deadline, now)
	total := float64(result.Complexity+result.Importance)/2 + 5/float64(days)

	switch {
	case total >= 4.5 || days <= 1:
		result.Urgency = UrgencyCritical
	case total >= 3.5 || days <= 3:
		result.Urgency = UrgencyHigh
	case total >= 2.5:
		result.Urgency = UrgencyMedium
	default:
		result.Urgency = UrgencyLow
	}

	return result
}

func clampDimension(score float64) int {
	rounded := int(math.Round(score))
	if rounded < 1 {
		return 1
	}
	if rounded > 5 {
		return 5
	}
	return rounded
}
