package http

import (
	"time"

	"workpulse/internal/activity"
	"workpulse/internal/model"
)

// --- Request DTOs ---

type logEntryReq struct {
	ActivityType    string         `json:"activity_type" binding:"required"`
	AppID           string         `json:"app_id"`
	ActivityData    map[string]any `json:"activity_data"`
	DurationSeconds int            `json:"duration_seconds" binding:"min=0"`
	Timestamp       *time.Time     `json:"timestamp"`
}

type logReq struct {
	Activities []logEntryReq `json:"activities" binding:"required,min=1"`
}

func (r logReq) toInput() activity.LogInput {
	entries := make([]activity.LogEntry, len(r.Activities))
	for i, e := range r.Activities {
		entry := activity.LogEntry{
			ActivityType:    e.ActivityType,
			AppID:           e.AppID,
			ActivityData:    e.ActivityData,
			DurationSeconds: e.DurationSeconds,
		}
		if e.Timestamp != nil {
			entry.Timestamp = *e.Timestamp
		}
		entries[i] = entry
	}
	return activity.LogInput{Entries: entries}
}

// ---

type listReq struct {
	Type  string `form:"type"`
	Date  string `form:"date"`
	Limit int    `form:"limit"`
}

func (r listReq) toInput() activity.ListInput {
	limit := r.Limit
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	return activity.ListInput{
		Type:  r.Type,
		Date:  r.Date,
		Limit: limit,
	}
}

// --- Response DTOs ---

type activityResp struct {
	ID              string         `json:"id"`
	AppID           string         `json:"app_id,omitempty"`
	ActivityType    string         `json:"activity_type"`
	ActivityData    map[string]any `json:"activity_data,omitempty"`
	DurationSeconds int            `json:"duration_seconds"`
	Timestamp       time.Time      `json:"timestamp"`
}

func newActivityResp(a model.Activity) activityResp {
	return activityResp{
		ID:              a.ID,
		AppID:           a.AppID,
		ActivityType:    a.ActivityType,
		ActivityData:    a.ActivityData,
		DurationSeconds: a.DurationSeconds,
		Timestamp:       a.Timestamp,
	}
}

type logResp struct {
	Activities []activityResp `json:"activities"`
	Count      int            `json:"count"`
}

func (h *handler) newLogResp(out activity.LogOutput) logResp {
	activities := make([]activityResp, len(out.Activities))
	for i, a := range out.Activities {
		activities[i] = newActivityResp(a)
	}
	return logResp{Activities: activities, Count: out.Count}
}

type listResp struct {
	Activities []activityResp `json:"activities"`
	Total      int            `json:"total"`
}

func (h *handler) newListResp(out activity.ListOutput) listResp {
	activities := make([]activityResp, len(out.Activities))
	for i, a := range out.Activities {
		activities[i] = newActivityResp(a)
	}
	return listResp{Activities: activities, Total: out.Total}
}
