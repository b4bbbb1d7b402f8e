package router

// Phrase lists per intent. Order matters: intents are tested top to bottom
// and the first list with a matching phrase wins, so "how am i doing" lands
// in PRODUCTIVITY even though "how" alone would match HELP further down.
var intentPhrases = []struct {
	intent  Intent
	phrases []string
}{
	{IntentTasks, []string{"task", "todo", "priority"}},
	{IntentProductivity, []string{"productiv", "performance", "how am i doing"}},
	{IntentDeadlines, []string{"deadline", "due", "urgent"}},
	{IntentHelp, []string{"help", "what can you do", "how"}},
	{IntentSuggestions, []string{"suggest", "recommend"}},
}
