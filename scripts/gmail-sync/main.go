// scripts/gmail-sync/main.go
//
// One-shot sync: reads recent Gmail messages and posts them to the activity
// webhook as email_received events, signed with the ingest secret. The
// backend then infers follow-up tasks from them.
//
// Usage:
//   go run scripts/gmail-sync/main.go -user <user-id> [-url http://localhost:8080/webhook/activities]
//
// Requires credentials.json and token.json (see scripts/gmail-auth).

package main

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"workpulse/config"
	"workpulse/pkg/gmail"
)

type activityEvent struct {
	ActivityType string         `json:"activity_type"`
	ActivityData map[string]any `json:"activity_data"`
	Timestamp    time.Time      `json:"timestamp"`
}

type webhookPayload struct {
	UserID     string          `json:"user_id"`
	AppID      string          `json:"app_id"`
	Activities []activityEvent `json:"activities"`
}

func main() {
	userID := flag.String("user", "", "user ID to attribute activities to (required)")
	webhookURL := flag.String("url", "http://localhost:8080/webhook/activities", "activity webhook URL")
	flag.Parse()

	if *userID == "" {
		log.Fatal("-user is required")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.Gmail.CredentialsPath == "" {
		cfg.Gmail.CredentialsPath = "credentials.json"
	}

	ctx := context.Background()
	client, err := gmail.NewClientFromFiles(ctx, cfg.Gmail.CredentialsPath, cfg.Gmail.TokenPath)
	if err != nil {
		log.Fatalf("Failed to create Gmail client: %v", err)
	}

	messages, err := client.ListRecentMessages(ctx, int64(cfg.Gmail.MaxMessages))
	if err != nil {
		log.Fatalf("Failed to list messages: %v", err)
	}
	if len(messages) == 0 {
		fmt.Println("No messages found.")
		return
	}

	payload := webhookPayload{
		UserID: *userID,
		AppID:  "gmail",
	}
	for _, m := range messages {
		payload.Activities = append(payload.Activities, activityEvent{
			ActivityType: "email_received",
			ActivityData: map[string]any{
				"id":      m.ID,
				"subject": m.Subject,
				"sender":  m.From,
			},
			Timestamp: m.ReceivedAt,
		})
	}

	body, err := json.Marshal(payload)
	if err != nil {
		log.Fatalf("Failed to marshal payload: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, *webhookURL, bytes.NewReader(body))
	if err != nil {
		log.Fatalf("Failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if cfg.Ingest.Secret != "" {
		mac := hmac.New(sha256.New, []byte(cfg.Ingest.Secret))
		mac.Write(body)
		req.Header.Set("X-Signature-256", "sha256="+hex.EncodeToString(mac.Sum(nil)))
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		log.Fatalf("Failed to post activities: %v", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		log.Fatalf("Webhook rejected the batch: %d %s", resp.StatusCode, respBody)
	}

	fmt.Printf("Synced %d emails: %s\n", len(messages), respBody)
}
