package session

import (
	"sync"

	"smart-task-planner/internal/model"
)

// MaxHistory is how many turns a session remembers.
const MaxHistory = 10

// History is a bounded FIFO of conversation turns. Safe for concurrent use.
type History struct {
	mu       sync.RWMutex
	turns    []model.ConversationTurn
	capacity int
}

// NewHistory creates an empty History holding at most capacity turns.
func NewHistory(capacity int) *History {
	if capacity <= 0 {
		capacity = MaxHistory
	}
	return &History{
		turns:    make([]model.ConversationTurn, 0, capacity),
		capacity: capacity,
	}
}

// Append adds a turn, dropping the oldest one when full.
func (h *History) Append(turn model.ConversationTurn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.turns) == h.capacity {
		copy(h.turns, h.turns[1:])
		h.turns = h.turns[:len(h.turns)-1]
	}
	h.turns = append(h.turns, turn)
}

// Recent returns up to n of the newest turns, oldest first.
func (h *History) Recent(n int) []model.ConversationTurn {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if n <= 0 {
		return nil
	}
	if n > len(h.turns) {
		n = len(h.turns)
	}
	out := make([]model.ConversationTurn, n)
	copy(out, h.turns[len(h.turns)-n:])
	return out
}

// All returns every stored turn, oldest first.
func (h *History) All() []model.ConversationTurn {
	return h.Recent(h.capacity)
}

// Len returns the number of stored turns.
func (h *History) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.turns)
}

// Clear drops every stored turn.
func (h *History) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.turns = h.turns[:0]
}
