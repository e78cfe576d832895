package engine

import "time"

// GameTime identifies a point on the game's internal timeline, as a
// duration since the game started. The engine never reads a wall clock;
// callers supply time.
type GameTime = time.Duration

// EventKind is the kind of an internally scheduled event. The declaration
// order is the tie-break priority for events sharing a timestamp:
// lock resolution runs before gravity, gravity before spawning.
type EventKind uint8

const (
	// EventLineClear removes full rows from the board.
	EventLineClear EventKind = iota
	// EventLock commits the active piece onto the board.
	EventLock
	// EventHardDrop slams the piece to the well floor and arms a fast lock.
	EventHardDrop
	// EventSonicDrop drops the piece to the floor with no further handling.
	EventSonicDrop
	// EventSoftDrop drops the piece by one row under player control.
	EventSoftDrop
	// EventFall drops the piece by one row under gravity.
	EventFall
	// EventMoveSlow is the initial sideways step, followed by DAS.
	EventMoveSlow
	// EventMoveFast is an auto-repeated sideways step at ARR speed.
	EventMoveFast
	// EventRotate turns the piece by the event's turn count.
	EventRotate
	// EventSpawn brings a new active piece into play.
	EventSpawn
	// EventLockTimer is an attempted lock-down; it resolves into EventLock
	// when it fires.
	EventLockTimer
)

func (k EventKind) String() string {
	switch k {
	case EventLineClear:
		return "line-clear"
	case EventLock:
		return "lock"
	case EventHardDrop:
		return "hard-drop"
	case EventSonicDrop:
		return "sonic-drop"
	case EventSoftDrop:
		return "soft-drop"
	case EventFall:
		return "fall"
	case EventMoveSlow:
		return "move-slow"
	case EventMoveFast:
		return "move-fast"
	case EventRotate:
		return "rotate"
	case EventSpawn:
		return "spawn"
	case EventLockTimer:
		return "lock-timer"
	default:
		return "unknown"
	}
}

// Event is a scheduled engine action. Turns is only meaningful for
// EventRotate (right turns, negative = left) and is part of the identity:
// opposing rotations queued for the same instant stay distinct.
type Event struct {
	Kind  EventKind
	Turns int
}

// eventQueue holds pending events keyed by identity. Scheduling an event
// that is already pending replaces its due time.
type eventQueue map[Event]GameTime

func (q eventQueue) schedule(kind EventKind, at GameTime) {
	q[Event{Kind: kind}] = at
}

func (q eventQueue) scheduleRotate(turns int, at GameTime) {
	q[Event{Kind: EventRotate, Turns: turns}] = at
}

func (q eventQueue) cancel(kind EventKind) {
	delete(q, Event{Kind: kind})
}

func (q eventQueue) pending(kind EventKind) bool {
	_, ok := q[Event{Kind: kind}]
	return ok
}

// next returns the pending event with the smallest (time, kind, turns)
// triple. The triple is a total order over queue entries, so the result
// never depends on map iteration order.
func (q eventQueue) next() (Event, GameTime, bool) {
	var (
		best     Event
		bestTime GameTime
		found    bool
	)
	for ev, at := range q {
		if !found || at < bestTime ||
			(at == bestTime && (ev.Kind < best.Kind ||
				(ev.Kind == best.Kind && ev.Turns < best.Turns))) {
			best, bestTime, found = ev, at, true
		}
	}
	return best, bestTime, found
}
