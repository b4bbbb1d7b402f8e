package chat

import "time"

// RespondInput is one user message to the assistant.
type RespondInput struct {
	Message string
	Context string
}

// RespondOutput is the assistant's reply.
type RespondOutput struct {
	Response  string    `json:"response"`
	Intent    string    `json:"intent"`
	Timestamp time.Time `json:"timestamp"`
}
