package habit

import (
	"context"

	"workpulse/internal/model"
)

// UseCase exposes the daily work-habit analysis operations.
type UseCase interface {
	Analyze(ctx context.Context, sc model.Scope, input AnalyzeInput) (AnalyzeOutput, error)
	Latest(ctx context.Context, sc model.Scope) (LatestOutput, error)
	History(ctx context.Context, sc model.Scope, input HistoryInput) (HistoryOutput, error)
}
