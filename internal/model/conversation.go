package model

import "time"

// ConversationTurn is one task submission and the reply it produced.
type ConversationTurn struct {
	UserInput         string    `json:"user_input"`
	AssistantResponse string    `json:"assistant_response"`
	Timestamp         time.Time `json:"timestamp"`
}
