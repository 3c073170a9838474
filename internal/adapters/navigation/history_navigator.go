// Package navigation provides the in-process history used to keep filter
// state navigable and shareable within a session.
package navigation

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/medloop/doctor-directory/internal/domain/entities"
)

// HistoryNavigator implements the Navigator port with an in-memory history
// stack. Push adds an entry and drops any forward history; Back and Forward
// move the cursor and emit a navigation event, the way a browser fires
// popstate.
type HistoryNavigator struct {
	mu      sync.Mutex
	entries []string
	cursor  int
	events  chan entities.NavigationEvent
}

// NewHistoryNavigator creates a navigator whose history starts at the given
// query string (usually the address the session was opened with).
func NewHistoryNavigator(initial string) *HistoryNavigator {
	return &HistoryNavigator{
		entries: []string{initial},
		events:  make(chan entities.NavigationEvent, 16),
	}
}

// Current returns the query string at the history cursor.
func (n *HistoryNavigator) Current() (string, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.entries[n.cursor], nil
}

// Push records a new current address, dropping any forward history.
func (n *HistoryNavigator) Push(query string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.entries = append(n.entries[:n.cursor+1], query)
	n.cursor = len(n.entries) - 1
	return nil
}

// Back moves one entry back and emits a navigation event. It reports
// whether the cursor moved.
func (n *HistoryNavigator) Back() bool {
	n.mu.Lock()
	if n.cursor == 0 {
		n.mu.Unlock()
		return false
	}
	n.cursor--
	query := n.entries[n.cursor]
	n.mu.Unlock()

	n.emit(query)
	return true
}

// Forward moves one entry forward and emits a navigation event. It reports
// whether the cursor moved.
func (n *HistoryNavigator) Forward() bool {
	n.mu.Lock()
	if n.cursor == len(n.entries)-1 {
		n.mu.Unlock()
		return false
	}
	n.cursor++
	query := n.entries[n.cursor]
	n.mu.Unlock()

	n.emit(query)
	return true
}

// Events returns the channel navigation events are delivered on.
func (n *HistoryNavigator) Events() <-chan entities.NavigationEvent {
	return n.events
}

func (n *HistoryNavigator) emit(query string) {
	ev := entities.NavigationEvent{
		ID:    uuid.NewString(),
		Query: query,
		At:    time.Now(),
	}
	select {
	case n.events <- ev:
	default:
		log.Warn().Str("query", query).Msg("navigation event dropped: subscriber not draining")
	}
}
