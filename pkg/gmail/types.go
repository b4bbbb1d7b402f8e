package gmail

import "time"

// Message is a trimmed Gmail message with the fields the sync needs.
type Message struct {
	ID         string
	From       string
	Subject    string
	Snippet    string
	ReceivedAt time.Time
}
