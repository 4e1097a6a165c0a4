package domain

import "time"

// EventType defines the category of the event.
type EventType string

const (
	EventStart EventType = "start"
	EventMove  EventType = "move"
	EventFrame EventType = "frame"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	Sequence  uint64    `json:"sequence"` // 1-based move number, 0 before the first move
}

// StartEvent is emitted once the initial frame has been written.
type StartEvent struct {
	EventBase
	Height        int           `json:"height"`
	Delay         time.Duration `json:"delay"`
	ExpectedMoves uint64        `json:"expected_moves"`
	Frame         string        `json:"frame"`
}

// MoveEvent is emitted once a disk has been relocated.
type MoveEvent struct {
	EventBase
	Move Move `json:"move"`
}

// FrameEvent is emitted once the frame following a move has been written out.
type FrameEvent struct {
	EventBase
	Frame    string        `json:"frame"`
	Duration time.Duration `json:"duration"` // time spent rendering and writing
}

// LifecycleHooks defines callbacks for animation observability.
// Hooks run on the solving goroutine, before the frame delay.
type LifecycleHooks struct {
	OnStart func(*StartEvent)
	OnMove  func(*MoveEvent)
	OnFrame func(*FrameEvent)
}

// ChainHooks combines several hook sets; each callback fires in argument order.
func ChainHooks(hooks ...LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnStart: func(e *StartEvent) {
			for _, h := range hooks {
				if h.OnStart != nil {
					h.OnStart(e)
				}
			}
		},
		OnMove: func(e *MoveEvent) {
			for _, h := range hooks {
				if h.OnMove != nil {
					h.OnMove(e)
				}
			}
		},
		OnFrame: func(e *FrameEvent) {
			for _, h := range hooks {
				if h.OnFrame != nil {
					h.OnFrame(e)
				}
			}
		},
	}
}
