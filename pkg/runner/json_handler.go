package runner

import (
	"encoding/json"
	"io"
	"os"
	"sync"

	"github.com/aretw0/hanoi/pkg/domain"
)

// JSONHandler streams lifecycle events as JSON Lines, one object per event.
// Frame events are skipped unless Frames is set: the start event already carries
// the initial drawing and the rest can be replayed from the moves.
type JSONHandler struct {
	Encoder *json.Encoder
	Frames  bool

	mu  sync.Mutex
	err error
}

// NewJSONHandler creates a handler writing to w. A nil w writes to Stdout.
func NewJSONHandler(w io.Writer) *JSONHandler {
	if w == nil {
		w = os.Stdout
	}
	return &JSONHandler{Encoder: json.NewEncoder(w)}
}

// Hooks returns the callbacks that encode each event.
func (h *JSONHandler) Hooks() domain.LifecycleHooks {
	hooks := domain.LifecycleHooks{
		OnStart: func(e *domain.StartEvent) { h.emit(e) },
		OnMove:  func(e *domain.MoveEvent) { h.emit(e) },
	}
	if h.Frames {
		hooks.OnFrame = func(e *domain.FrameEvent) { h.emit(e) }
	}
	return hooks
}

// Err returns the first encoding error. Events after it are dropped.
func (h *JSONHandler) Err() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.err
}

func (h *JSONHandler) emit(event any) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.err != nil {
		return
	}
	h.err = h.Encoder.Encode(event)
}
