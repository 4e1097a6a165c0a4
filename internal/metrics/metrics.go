// Package metrics exposes animation counters through a private prometheus registry.
package metrics

import (
	"github.com/aretw0/hanoi/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "hanoi"

// Collector groups the animation metrics.
type Collector struct {
	registry *prometheus.Registry

	moves       prometheus.Counter
	diskMoves   *prometheus.CounterVec
	frames      prometheus.Counter
	frameTime   prometheus.Histogram
	height      prometheus.Gauge
	expected    prometheus.Gauge
	delaySecond prometheus.Gauge
}

// New creates a Collector registered on its own registry.
func New() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		moves: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "moves_total",
			Help:      "Disk moves performed.",
		}),
		diskMoves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "peg_arrivals_total",
			Help:      "Disks placed on each peg.",
		}, []string{"peg"}),
		frames: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "frames_rendered_total",
			Help:      "Frames written after a move.",
		}),
		frameTime: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "frame_render_seconds",
			Help:      "Time spent rendering and writing one frame.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 8),
		}),
		height: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "tower_height",
			Help:      "Number of disks in the tower.",
		}),
		expected: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "moves_expected",
			Help:      "Moves needed to finish the solve (2^height - 1).",
		}),
		delaySecond: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "frame_delay_seconds",
			Help:      "Configured pause between frames.",
		}),
	}

	c.registry.MustRegister(c.moves, c.diskMoves, c.frames, c.frameTime, c.height, c.expected, c.delaySecond)
	return c
}

// Registry returns the registry backing the collector, for serving.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Hooks returns lifecycle hooks feeding the collector.
func (c *Collector) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnStart: func(e *domain.StartEvent) {
			c.height.Set(float64(e.Height))
			c.expected.Set(float64(e.ExpectedMoves))
			c.delaySecond.Set(e.Delay.Seconds())
		},
		OnMove: func(e *domain.MoveEvent) {
			c.moves.Inc()
			c.diskMoves.WithLabelValues(e.Move.To.String()).Inc()
		},
		OnFrame: func(e *domain.FrameEvent) {
			c.frames.Inc()
			c.frameTime.Observe(e.Duration.Seconds())
		},
	}
}
