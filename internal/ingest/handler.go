package ingest

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"workpulse/internal/activity"
	"workpulse/internal/model"
	"workpulse/internal/task"
	pkgResponse "workpulse/pkg/response"
)

// HandleActivityWebhook processes a signed activity batch from an enrolled
// app. The delivery is acknowledged immediately; recording and task
// inference happen in the background.
func (h *Handler) HandleActivityWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.l.Errorf(ctx, "Failed to read webhook body: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	if err := h.security.ValidateIPAddress(c.Request); err != nil {
		h.l.Warnf(ctx, "Webhook IP rejected: %v", err)
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}

	signature := c.GetHeader("X-Signature-256")
	if err := h.security.ValidateSignature(body, signature); err != nil {
		h.l.Errorf(ctx, "Webhook signature verification failed: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid signature"})
		return
	}

	var payload webhookPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		h.l.Errorf(ctx, "Failed to parse webhook payload: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}
	if payload.UserID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}

	source := payload.AppID
	if source == "" {
		source = "unknown"
	}
	if err := h.security.CheckRateLimit(source); err != nil {
		h.l.Warnf(ctx, "Rate limit exceeded: %v", err)
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
		return
	}

	if len(payload.Activities) == 0 {
		pkgResponse.OK(c, gin.H{"status": "ignored", "reason": "empty activity batch"})
		return
	}

	// Process in background
	go h.processActivitiesAsync(payload)

	// Acknowledge immediately
	pkgResponse.OK(c, gin.H{"status": "accepted", "count": len(payload.Activities)})
}

// processActivitiesAsync records the batch and runs task inference over it.
func (h *Handler) processActivitiesAsync(payload webhookPayload) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	sc := model.Scope{UserID: payload.UserID}
	h.l.Infof(ctx, "Processing webhook async: %d activities from %s", len(payload.Activities), payload.AppID)

	entries := make([]activity.LogEntry, len(payload.Activities))
	events := make([]task.ActivityEvent, len(payload.Activities))
	for i, a := range payload.Activities {
		entry := activity.LogEntry{
			ActivityType:    a.ActivityType,
			AppID:           payload.AppID,
			ActivityData:    a.ActivityData,
			DurationSeconds: a.DurationSeconds,
		}
		if a.Timestamp != nil {
			entry.Timestamp = *a.Timestamp
		}
		entries[i] = entry
		events[i] = task.ActivityEvent{
			ActivityType: a.ActivityType,
			ActivityData: a.ActivityData,
			AppID:        payload.AppID,
		}
	}

	if _, err := h.activityUC.Log(ctx, sc, activity.LogInput{Entries: entries}); err != nil {
		h.l.Errorf(ctx, "Webhook activity logging failed: %v", err)
		return
	}

	output, err := h.taskUC.InferFromActivities(ctx, sc, task.InferInput{Activities: events})
	if err != nil {
		h.l.Errorf(ctx, "Webhook task inference failed: %v", err)
		return
	}

	if output.Message != "" {
		h.l.Infof(ctx, "Webhook processed: %s", output.Message)
		return
	}
	h.l.Infof(ctx, "Webhook processed: %d tasks inferred", output.Count)
}
