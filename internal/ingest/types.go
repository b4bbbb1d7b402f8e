package ingest

import "time"

// SecurityConfig controls webhook request validation.
type SecurityConfig struct {
	Secret          string
	AllowedIPs      []string
	RateLimitPerMin int
}

// activityPayload is one activity in a webhook delivery.
type activityPayload struct {
	ActivityType    string         `json:"activity_type"`
	ActivityData    map[string]any `json:"activity_data"`
	DurationSeconds int            `json:"duration_seconds"`
	Timestamp       *time.Time     `json:"timestamp"`
}

// webhookPayload is the body an enrolled app posts to the ingest endpoint.
type webhookPayload struct {
	UserID     string            `json:"user_id"`
	AppID      string            `json:"app_id"`
	Activities []activityPayload `json:"activities"`
}
