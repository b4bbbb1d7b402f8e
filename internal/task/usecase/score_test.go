package usecase

import (
	"context"
	"testing"
	"time"

	"workpulse/internal/model"
	"workpulse/internal/task"
)

func TestScore(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	tomorrow := now.Add(24 * time.Hour)
	inFiveDays := now.Add(5 * 24 * time.Hour)

	r := &mockRepo{tasks: []model.Task{
		{ID: "t1", UserID: "u1", Title: "Prepare for: Standup", Status: model.TaskStatusInProgress,
			SourceType: model.SourceMeeting, UrgencyLevel: "high", Deadline: &tomorrow},
		{ID: "t2", UserID: "u1", Title: "Follow up on: Invoice", Status: model.TaskStatusPending,
			SourceType: model.SourceEmail, UrgencyLevel: "high"},
		{ID: "t3", UserID: "u1", Title: "Update documentation", Status: model.TaskStatusPending,
			Deadline: &inFiveDays},
		{ID: "t4", UserID: "u1", Title: "Old chore", Status: model.TaskStatusCompleted},
	}}
	uc := newTestUseCase(r, now)

	out, err := uc.Score(context.Background(), model.Scope{UserID: "u1"}, task.ScoreInput{})
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if out.Count != 3 {
		t.Fatalf("expected 3 scored tasks, got %d", out.Count)
	}

	// Deadline tomorrow gives 90/high, then meeting and in-progress bonuses
	// saturate at the 100 cap.
	if out.Tasks[0].PriorityScore != 100 || out.Tasks[0].UrgencyLevel != "high" {
		t.Errorf("t1: got %d/%s, want 100/high", out.Tasks[0].PriorityScore, out.Tasks[0].UrgencyLevel)
	}

	// No deadline gives 50/medium, plus the urgent-email bonus.
	if out.Tasks[1].PriorityScore != 60 || out.Tasks[1].UrgencyLevel != "medium" {
		t.Errorf("t2: got %d/%s, want 60/medium", out.Tasks[1].PriorityScore, out.Tasks[1].UrgencyLevel)
	}
	wantExplanation := "Priority calculated based on: no deadline, source: email, current status: pending"
	if out.Tasks[1].Explanation != wantExplanation {
		t.Errorf("t2 explanation: got %q, want %q", out.Tasks[1].Explanation, wantExplanation)
	}

	// Five days out lands in the one-week bucket.
	if out.Tasks[2].PriorityScore != 70 || out.Tasks[2].UrgencyLevel != "medium" {
		t.Errorf("t3: got %d/%s, want 70/medium", out.Tasks[2].PriorityScore, out.Tasks[2].UrgencyLevel)
	}

	if len(r.updates) != 3 || len(r.explanations) != 3 {
		t.Errorf("expected 3 updates and 3 explanations, got %d/%d", len(r.updates), len(r.explanations))
	}
	if r.explanations[0].Factors["priority_score"] != 100 {
		t.Errorf("t1 factors: got %v, want 100", r.explanations[0].Factors["priority_score"])
	}
}

func TestScore_SingleTask(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	r := &mockRepo{tasks: []model.Task{
		{ID: "t1", UserID: "u1", Status: model.TaskStatusPending},
		{ID: "t2", UserID: "u1", Status: model.TaskStatusPending},
	}}
	uc := newTestUseCase(r, now)

	out, err := uc.Score(context.Background(), model.Scope{UserID: "u1"}, task.ScoreInput{TaskID: "t2"})
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if out.Count != 1 || out.Tasks[0].TaskID != "t2" {
		t.Fatalf("expected only t2 scored, got %+v", out.Tasks)
	}
}

// A second scoring pass reaches a fixed point: once the urgent-email bonus
// has rewritten the stored urgency, further passes keep producing the same
// score and level.
func TestScore_Rescore(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	r := &mockRepo{tasks: []model.Task{
		{ID: "t1", UserID: "u1", Status: model.TaskStatusPending,
			SourceType: model.SourceEmail, UrgencyLevel: "high"},
	}}
	uc := newTestUseCase(r, now)
	sc := model.Scope{UserID: "u1"}

	first, err := uc.Score(context.Background(), sc, task.ScoreInput{})
	if err != nil {
		t.Fatalf("first pass: %v", err)
	}
	if first.Tasks[0].PriorityScore != 60 {
		t.Fatalf("first pass: got %d, want 60", first.Tasks[0].PriorityScore)
	}

	second, err := uc.Score(context.Background(), sc, task.ScoreInput{})
	if err != nil {
		t.Fatalf("second pass: %v", err)
	}
	third, err := uc.Score(context.Background(), sc, task.ScoreInput{})
	if err != nil {
		t.Fatalf("third pass: %v", err)
	}

	if second.Tasks[0] != third.Tasks[0] {
		t.Errorf("rescoring did not converge: %+v vs %+v", second.Tasks[0], third.Tasks[0])
	}
	if second.Tasks[0].PriorityScore != 50 || second.Tasks[0].UrgencyLevel != "medium" {
		t.Errorf("converged pass: got %d/%s, want 50/medium",
			second.Tasks[0].PriorityScore, second.Tasks[0].UrgencyLevel)
	}
}
