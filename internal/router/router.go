package router

import (
	"context"
	"strings"

	"workpulse/pkg/log"
)

// Router classifies a user message into an intent.
type Router interface {
	Classify(ctx context.Context, message string) Output
}

// PhraseRouter dispatches on substring membership against fixed phrase
// lists. Stateless: every call re-derives the intent from the message alone.
type PhraseRouter struct {
	l log.Logger
}

var _ Router = (*PhraseRouter)(nil)

// New creates a new PhraseRouter.
func New(l log.Logger) *PhraseRouter {
	return &PhraseRouter{l: l}
}

// Classify lower-cases the message and returns the first intent whose phrase
// list contains a substring of it. No match falls through to FALLBACK.
func (r *PhraseRouter) Classify(ctx context.Context, message string) Output {
	lower := strings.ToLower(message)

	for _, entry := range intentPhrases {
		for _, phrase := range entry.phrases {
			if strings.Contains(lower, phrase) {
				r.l.Debugf(ctx, "router.Classify: intent=%s phrase=%q", entry.intent, phrase)
				return Output{Intent: entry.intent, MatchedPhrase: phrase}
			}
		}
	}

	return Output{Intent: IntentFallback}
}
