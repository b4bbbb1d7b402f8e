package router

// Intent is the recognized purpose of a user message.
type Intent string

const (
	IntentTasks        Intent = "TASKS"
	IntentProductivity Intent = "PRODUCTIVITY"
	IntentDeadlines    Intent = "DEADLINES"
	IntentHelp         Intent = "HELP"
	IntentSuggestions  Intent = "SUGGESTIONS"
	IntentFallback     Intent = "FALLBACK"
)

// Output is the result of classifying one message.
type Output struct {
	Intent        Intent `json:"intent"`
	MatchedPhrase string `json:"matched_phrase,omitempty"`
}
