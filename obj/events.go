package obj

import "github.com/milk9111/spookymaze/common"

// EventKind identifies what happened during a tick.
type EventKind int

const (
	EventGoodiePicked EventKind = iota + 1
	EventBonusLife
	EventExitUnlocked
	EventLevelCleared
	EventPlayerCaught
)

func (k EventKind) String() string {
	switch k {
	case EventGoodiePicked:
		return "goodie_picked"
	case EventBonusLife:
		return "bonus_life"
	case EventExitUnlocked:
		return "exit_unlocked"
	case EventLevelCleared:
		return "level_cleared"
	case EventPlayerCaught:
		return "player_caught"
	}
	return "unknown"
}

// Event is one notification for the session layer. Points is the score
// delta the event carried, if any.
type Event struct {
	Kind   EventKind
	Cell   common.Cell
	Points int
}

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}
