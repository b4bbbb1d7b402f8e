package http

import (
	"time"

	"workpulse/internal/model"
	"workpulse/internal/task"
	"workpulse/pkg/response"
)

// --- Request DTOs ---

type scoreReq struct {
	TaskID string `json:"task_id"`
}

func (r scoreReq) toInput() task.ScoreInput {
	return task.ScoreInput{TaskID: r.TaskID}
}

// ---

type activityEventReq struct {
	ActivityType string         `json:"activity_type" binding:"required"`
	ActivityData map[string]any `json:"activity_data"`
	AppID        string         `json:"app_id"`
}

type inferReq struct {
	Activities []activityEventReq `json:"activities" binding:"required"`
}

func (r inferReq) toInput() task.InferInput {
	events := make([]task.ActivityEvent, len(r.Activities))
	for i, a := range r.Activities {
		events[i] = task.ActivityEvent{
			ActivityType: a.ActivityType,
			ActivityData: a.ActivityData,
			AppID:        a.AppID,
		}
	}
	return task.InferInput{Activities: events}
}

// ---

type createReq struct {
	WorkspaceID string `json:"workspace_id"`
	Title       string `json:"title"    binding:"required,min=1,max=255"`
	Description string `json:"description" binding:"max=2000"`
	Deadline    string `json:"deadline" binding:"required"`
}

func (r createReq) toInput(deadline time.Time) task.CreateInput {
	return task.CreateInput{
		WorkspaceID: r.WorkspaceID,
		Title:       r.Title,
		Description: r.Description,
		Deadline:    deadline,
	}
}

// ---

type listReq struct {
	Status string `form:"status"`
	SortBy string `form:"sort"`
	Limit  int    `form:"limit"`
	Offset int    `form:"offset"`
}

func (r listReq) toInput() task.ListInput {
	limit := r.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := r.Offset
	if offset < 0 {
		offset = 0
	}
	return task.ListInput{
		Status: r.Status,
		SortBy: r.SortBy,
		Limit:  limit,
		Offset: offset,
	}
}

// --- Response DTOs ---

type taskResp struct {
	ID                   string     `json:"id"`
	WorkspaceID          string     `json:"workspace_id,omitempty"`
	AppID                string     `json:"app_id,omitempty"`
	Title                string     `json:"title"`
	Description          string     `json:"description"`
	Status               string     `json:"status"`
	PriorityScore        int        `json:"priority_score"`
	UrgencyLevel         string     `json:"urgency_level"`
	Deadline             *response.DateTime `json:"deadline,omitempty"`
	CompletionPercentage int                `json:"completion_percentage"`
	IsAIGenerated        bool               `json:"is_ai_generated"`
	SourceType           string             `json:"source_type,omitempty"`
	SourceReference      string             `json:"source_reference,omitempty"`
	CompletedAt          *response.DateTime `json:"completed_at,omitempty"`
	CreatedAt            response.DateTime  `json:"created_at"`
	UpdatedAt            response.DateTime  `json:"updated_at"`
}

func toDateTime(t *time.Time) *response.DateTime {
	if t == nil {
		return nil
	}
	dt := response.DateTime(*t)
	return &dt
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:                   t.ID,
		WorkspaceID:          t.WorkspaceID,
		AppID:                t.AppID,
		Title:                t.Title,
		Description:          t.Description,
		Status:               string(t.Status),
		PriorityScore:        t.PriorityScore,
		UrgencyLevel:         t.UrgencyLevel,
		Deadline:             toDateTime(t.Deadline),
		CompletionPercentage: t.CompletionPercentage,
		IsAIGenerated:        t.IsAIGenerated,
		SourceType:           t.SourceType,
		SourceReference:      t.SourceReference,
		CompletedAt:          toDateTime(t.CompletedAt),
		CreatedAt:            response.DateTime(t.CreatedAt),
		UpdatedAt:            response.DateTime(t.UpdatedAt),
	}
}

func newTaskResps(tasks []model.Task) []taskResp {
	out := make([]taskResp, len(tasks))
	for i, t := range tasks {
		out[i] = newTaskResp(t)
	}
	return out
}

type scoreResp struct {
	Tasks []task.ScoredTask `json:"tasks"`
	Count int               `json:"count"`
}

func (h *handler) newScoreResp(out task.ScoreOutput) scoreResp {
	return scoreResp{Tasks: out.Tasks, Count: out.Count}
}

type inferResp struct {
	Tasks   []taskResp `json:"tasks"`
	Count   int        `json:"count"`
	Message string     `json:"message,omitempty"`
}

func (h *handler) newInferResp(out task.InferOutput) inferResp {
	return inferResp{
		Tasks:   newTaskResps(out.Tasks),
		Count:   out.Count,
		Message: out.Message,
	}
}

type createResp struct {
	Task       taskResp `json:"task"`
	Complexity int      `json:"complexity"`
	Importance int      `json:"importance"`
}

func (h *handler) newCreateResp(out task.CreateOutput) createResp {
	return createResp{
		Task:       newTaskResp(out.Task),
		Complexity: out.Complexity,
		Importance: out.Importance,
	}
}

type listResp struct {
	Tasks  []taskResp `json:"tasks"`
	Total  int        `json:"total"`
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
}

func (h *handler) newListResp(out task.ListOutput) listResp {
	return listResp{
		Tasks:  newTaskResps(out.Tasks),
		Total:  out.Total,
		Limit:  out.Limit,
		Offset: out.Offset,
	}
}

type completeResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newCompleteResp(out task.CompleteOutput) completeResp {
	return completeResp{Task: newTaskResp(out.Task)}
}
