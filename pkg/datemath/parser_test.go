package datemath_test

import (
	"testing"
	"time"

	"workpulse/pkg/datemath"
)

func TestNewParser(t *testing.T) {
	_, err := datemath.NewParser("Europe/Berlin")
	if err != nil {
		t.Fatalf("unexpected error creating valid parser: %v", err)
	}

	_, err = datemath.NewParser("Invalid/Timezone")
	if err == nil {
		t.Fatalf("expected error for invalid timezone")
	}
}

func TestDayWindow(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	now := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)

	t.Run("Explicit Date", func(t *testing.T) {
		start, end, err := parser.DayWindow("2024-04-30", now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		wantStart := time.Date(2024, 4, 30, 0, 0, 0, 0, time.UTC)
		if !start.Equal(wantStart) {
			t.Errorf("start = %v, want %v", start, wantStart)
		}
		if !end.Equal(wantStart.Add(23*time.Hour + 59*time.Minute + 59*time.Second)) {
			t.Errorf("unexpected end: %v", end)
		}
	})

	t.Run("Empty Date Defaults To Today", func(t *testing.T) {
		start, _, err := parser.DayWindow("", now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !start.Equal(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("unexpected start: %v", start)
		}
	})

	t.Run("Malformed Date", func(t *testing.T) {
		if _, _, err := parser.DayWindow("01/05/2024", now); err == nil {
			t.Errorf("expected error for malformed date")
		}
	})
}

func TestDaysUntil(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		deadline time.Time
		want     int
	}{
		{"Later Today", now.Add(6 * time.Hour), 1},
		{"Exactly Now", now, 0},
		{"One Hour Ago", now.Add(-time.Hour), 0},
		{"Yesterday", now.AddDate(0, 0, -1), -1},
		{"Tomorrow Same Time", now.AddDate(0, 0, 1), 1},
		{"Three Days Out", now.AddDate(0, 0, 3), 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := datemath.DaysUntil(tt.deadline, now); got != tt.want {
				t.Errorf("DaysUntil = %d, want %d", got, tt.want)
			}
		})
	}

	t.Run("Floored At One", func(t *testing.T) {
		if got := datemath.DaysUntilAtLeastOne(now.AddDate(0, 0, -5), now); got != 1 {
			t.Errorf("DaysUntilAtLeastOne = %d, want 1", got)
		}
	})
}

func TestParseDeadline(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	now := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC) // Wednesday
	startOfToday := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		raw     string
		want    time.Time
		wantErr bool
	}{
		{"RFC3339", "2024-06-01T10:00:00Z", time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC), false},
		{"Bare Date", "2024-06-01", time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), false},
		{"Tomorrow", "tomorrow", startOfToday.AddDate(0, 0, 1), false},
		{"In 3 Days", "in 3 days", startOfToday.AddDate(0, 0, 3), false},
		{"In 2 Weeks", "in 2 weeks", startOfToday.AddDate(0, 0, 14), false},
		{"Next Monday", "next monday", startOfToday.AddDate(0, 0, 5), false},
		{"Next Wednesday Wraps A Week", "next wednesday", startOfToday.AddDate(0, 0, 7), false},
		{"Empty", "", time.Time{}, true},
		{"Gibberish", "whenever you feel like it", time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parser.ParseDeadline(tt.raw, now)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error for %q", tt.raw)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseDeadline(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}
