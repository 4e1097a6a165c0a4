package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/aretw0/hanoi"
	"github.com/aretw0/hanoi/internal/logging"
	"github.com/aretw0/hanoi/pkg/domain"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Snapshot publishes the latest frame to HTTP readers.
// The solving goroutine writes through Hooks, handlers only read.
type Snapshot struct {
	latest atomic.Pointer[view]
}

type view struct {
	Sequence uint64       `json:"sequence"`
	Move     *domain.Move `json:"move,omitempty"`
	Frame    string       `json:"frame"`
}

// NewSnapshot creates a Snapshot holding initial until the run starts.
func NewSnapshot(initial string) *Snapshot {
	s := &Snapshot{}
	s.latest.Store(&view{Frame: initial})
	return s
}

// Frame returns the most recently published frame.
func (s *Snapshot) Frame() string {
	return s.latest.Load().Frame
}

// Hooks returns lifecycle hooks publishing every frame.
func (s *Snapshot) Hooks() domain.LifecycleHooks {
	var last domain.Move
	return domain.LifecycleHooks{
		OnStart: func(e *domain.StartEvent) {
			s.latest.Store(&view{Frame: e.Frame})
		},
		OnMove: func(e *domain.MoveEvent) {
			last = e.Move
		},
		OnFrame: func(e *domain.FrameEvent) {
			m := last
			s.latest.Store(&view{Sequence: e.Sequence, Move: &m, Frame: e.Frame})
		},
	}
}

// NewHandler creates the HTTP handler exposing the animation state and metrics.
// Encoding failures are reported on logger; nil discards them.
func NewHandler(snap *Snapshot, gatherer prometheus.Gatherer, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = logging.NewNop()
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, logger, map[string]string{"status": "ok"})
	})
	r.Get("/info", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, logger, map[string]string{
			"app":     "hanoi-http",
			"version": hanoi.Version,
		})
	})
	r.Get("/frame", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte(snap.Frame()))
	})
	r.Get("/state", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, logger, snap.latest.Load())
	})
	if gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	return r
}

func writeJSON(w http.ResponseWriter, logger *slog.Logger, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

// Server serves the handler in the background while the animation runs.
type Server struct {
	srv    *http.Server
	ln     net.Listener
	logger *slog.Logger
	done   chan error
}

// Start listens on addr and serves handler until Shutdown.
func Start(addr string, handler http.Handler, logger *slog.Logger) (*Server, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}

	s := &Server{
		srv: &http.Server{
			Handler:           handler,
			ReadHeaderTimeout: 5 * time.Second,
		},
		ln:     ln,
		logger: logger,
		done:   make(chan error, 1),
	}

	go func() {
		s.done <- s.srv.Serve(ln)
	}()
	logger.Info("Serving animation state", "addr", ln.Addr().String())
	return s, nil
}

// Addr returns the address the server listens on.
func (s *Server) Addr() string {
	return s.ln.Addr().String()
}

// Shutdown stops the server, giving outstanding requests until ctx expires.
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.srv.Shutdown(ctx); err != nil {
		s.logger.Warn("Graceful shutdown did not complete", "error", err)
		_ = s.srv.Close()
		return err
	}
	if err := <-s.done; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
