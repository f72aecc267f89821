package domain

import "time"

// Message is a single chat entry. Messages are immutable once appended.
type Message struct {
	ID        string    `json:"id"`
	SenderID  string    `json:"senderId"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// Chat is the per-order conversation between a student and a seller.
// There is at most one chat per order; Messages is append-only.
type Chat struct {
	ID               string            `json:"id"`
	OrderID          string            `json:"orderId"`
	Participants     []string          `json:"participants"`
	ParticipantNames map[string]string `json:"participantNames"`
	Messages         []Message         `json:"messages"`
	LastUpdated      time.Time         `json:"lastUpdated"`
}
