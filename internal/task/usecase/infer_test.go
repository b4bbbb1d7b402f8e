package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"workpulse/internal/model"
	"workpulse/internal/task"
)

func TestInferFromActivities(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	r := &mockRepo{}
	uc := newTestUseCase(r, now)

	input := task.InferInput{Activities: []task.ActivityEvent{
		{ActivityType: model.ActivityEmailReceived, AppID: "gmail", ActivityData: map[string]any{
			"id": "msg-1", "subject": "Q2 invoice", "sender": "billing@acme.io", "urgent": true,
		}},
		{ActivityType: model.ActivityMeetingScheduled, ActivityData: map[string]any{
			"title": "Sprint review", "time": "14:00", "deadline": "2026-03-12",
		}},
		{ActivityType: model.ActivityDocumentEdited, ActivityData: map[string]any{
			"document_name": "Roadmap",
		}},
		{ActivityType: model.ActivityTaskMentioned, ActivityData: map[string]any{
			"task_name": "Ship beta", "priority": "high",
		}},
		{ActivityType: "app_opened", ActivityData: map[string]any{}},
	}}

	out, err := uc.InferFromActivities(context.Background(), model.Scope{UserID: "u1"}, input)
	if err != nil {
		t.Fatalf("InferFromActivities: %v", err)
	}
	if out.Count != 4 {
		t.Fatalf("expected 4 inferred tasks, got %d", out.Count)
	}

	email := out.Tasks[0]
	if email.Title != "Follow up on: Q2 invoice" {
		t.Errorf("email title: got %q", email.Title)
	}
	if email.Description != "Respond to email from billing@acme.io" {
		t.Errorf("email description: got %q", email.Description)
	}
	if email.PriorityScore != 80 || email.UrgencyLevel != "high" {
		t.Errorf("urgent email: got %d/%s, want 80/high", email.PriorityScore, email.UrgencyLevel)
	}
	if email.SourceReference != "msg-1" || email.AppID != "gmail" {
		t.Errorf("email source: got %q/%q", email.SourceReference, email.AppID)
	}

	meeting := out.Tasks[1]
	if meeting.Title != "Prepare for: Sprint review" || meeting.PriorityScore != 85 {
		t.Errorf("meeting: got %q/%d", meeting.Title, meeting.PriorityScore)
	}
	if meeting.Deadline == nil || meeting.Deadline.Day() != 12 {
		t.Errorf("meeting deadline not parsed: %v", meeting.Deadline)
	}

	doc := out.Tasks[2]
	if doc.Title != "Complete: Roadmap" || doc.Description != "Continue working on document" {
		t.Errorf("document: got %q/%q", doc.Title, doc.Description)
	}
	if doc.PriorityScore != 70 || doc.UrgencyLevel != "medium" {
		t.Errorf("document: got %d/%s, want 70/medium", doc.PriorityScore, doc.UrgencyLevel)
	}

	mention := out.Tasks[3]
	if mention.Title != "Ship beta" || mention.UrgencyLevel != "high" || mention.PriorityScore != 65 {
		t.Errorf("mention: got %q/%s/%d", mention.Title, mention.UrgencyLevel, mention.PriorityScore)
	}

	for i, created := range out.Tasks {
		if created.Status != model.TaskStatusPending || !created.IsAIGenerated {
			t.Errorf("task %d: got status %q ai=%v", i, created.Status, created.IsAIGenerated)
		}
		if created.UserID != "u1" {
			t.Errorf("task %d: got user %q", i, created.UserID)
		}
	}
}

func TestInferFromActivities_Fallbacks(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	r := &mockRepo{}
	uc := newTestUseCase(r, now)

	out, err := uc.InferFromActivities(context.Background(), model.Scope{UserID: "u1"}, task.InferInput{
		Activities: []task.ActivityEvent{
			{ActivityType: model.ActivityEmailReceived, ActivityData: map[string]any{}},
			{ActivityType: model.ActivityTaskMentioned, ActivityData: map[string]any{}},
		},
	})
	if err != nil {
		t.Fatalf("InferFromActivities: %v", err)
	}

	if out.Tasks[0].Title != "Follow up on: Email" {
		t.Errorf("email fallback title: got %q", out.Tasks[0].Title)
	}
	if out.Tasks[0].Description != "Respond to email from sender" {
		t.Errorf("email fallback description: got %q", out.Tasks[0].Description)
	}
	if out.Tasks[0].PriorityScore != 60 || out.Tasks[0].UrgencyLevel != "medium" {
		t.Errorf("non-urgent email: got %d/%s, want 60/medium",
			out.Tasks[0].PriorityScore, out.Tasks[0].UrgencyLevel)
	}
	if out.Tasks[1].Title != "New task" || out.Tasks[1].Description != "Task mentioned in conversation" {
		t.Errorf("mention fallback: got %q/%q", out.Tasks[1].Title, out.Tasks[1].Description)
	}
	if out.Tasks[1].UrgencyLevel != "medium" {
		t.Errorf("mention fallback urgency: got %q", out.Tasks[1].UrgencyLevel)
	}
}

func TestInferFromActivities_NoneInferable(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	r := &mockRepo{}
	uc := newTestUseCase(r, now)

	out, err := uc.InferFromActivities(context.Background(), model.Scope{UserID: "u1"}, task.InferInput{
		Activities: []task.ActivityEvent{
			{ActivityType: "app_opened"},
			{ActivityType: model.ActivityTaskSwitched},
		},
	})
	if err != nil {
		t.Fatalf("InferFromActivities: %v", err)
	}
	if out.Count != 0 || out.Message != "No tasks inferred from activities" {
		t.Errorf("got count=%d message=%q", out.Count, out.Message)
	}
	if len(r.created) != 0 {
		t.Errorf("expected no inserts, got %d", len(r.created))
	}
}

func TestInferFromActivities_EmptyBatch(t *testing.T) {
	uc := newTestUseCase(&mockRepo{}, time.Now())

	_, err := uc.InferFromActivities(context.Background(), model.Scope{UserID: "u1"}, task.InferInput{})
	if !errors.Is(err, task.ErrEmptyBatch) {
		t.Fatalf("expected ErrEmptyBatch, got %v", err)
	}
}
