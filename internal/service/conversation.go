package service

import (
	"sync"

	"ghars/internal/models"
)

// DefaultHistoryLimit caps the conversation log when the configuration
// does not set one.
const DefaultHistoryLimit = 200

// ConversationLog keeps the most recent chat turns for audit. It is the
// only mutable shared state in the engine, so appends are synchronized;
// old turns are evicted once the cap is reached.
type ConversationLog struct {
	mu    sync.Mutex
	turns []models.ConversationTurn
	limit int
}

func NewConversationLog(limit int) *ConversationLog {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &ConversationLog{limit: limit}
}

// Append records a turn, evicting the oldest when the log is full.
func (l *ConversationLog) Append(turn models.ConversationTurn) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.turns = append(l.turns, turn)
	if len(l.turns) > l.limit {
		l.turns = l.turns[len(l.turns)-l.limit:]
	}
}

// Recent returns up to n turns, newest last. n <= 0 returns the whole
// retained window.
func (l *ConversationLog) Recent(n int) []models.ConversationTurn {
	l.mu.Lock()
	defer l.mu.Unlock()

	if n <= 0 || n > len(l.turns) {
		n = len(l.turns)
	}
	out := make([]models.ConversationTurn, n)
	copy(out, l.turns[len(l.turns)-n:])
	return out
}

// Len reports the number of retained turns.
func (l *ConversationLog) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.turns)
}
