// Package metrics exports session telemetry to Prometheus
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/lixenwraith/roam/engine"
)

// Observer records session telemetry; it implements engine.Observer
type Observer struct {
	Frames      prometheus.Counter
	FrameDelta  prometheus.Histogram
	Phase       *prometheus.GaugeVec
	Transitions *prometheus.CounterVec
	Activations *prometheus.CounterVec
	Navigations prometheus.Counter
}

var _ engine.Observer = (*Observer)(nil)

var phases = []engine.TransitionPhase{
	engine.PhaseIdle,
	engine.PhasePulling,
	engine.PhaseClosingDoor,
	engine.PhaseNavigating,
}

// NewObserver creates and registers session metrics labelled with the world name
func NewObserver(reg prometheus.Registerer, world string) *Observer {
	constLabels := prometheus.Labels{"world": world}
	o := &Observer{
		Frames: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "roam_frames_total",
			Help:        "Total number of simulated frames",
			ConstLabels: constLabels,
		}),
		FrameDelta: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:        "roam_frame_delta_seconds",
			Help:        "Clamped frame delta handed to the systems",
			ConstLabels: constLabels,
			Buckets:     []float64{0.004, 0.008, 0.012, 0.016, 0.02, 0.033, 0.05},
		}),
		Phase: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "roam_transition_phase",
			Help:        "1 for the current transition phase, 0 for the others",
			ConstLabels: constLabels,
		}, []string{"phase"}),
		Transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "roam_transition_phase_changes_total",
			Help:        "Transition phase changes by target phase",
			ConstLabels: constLabels,
		}, []string{"phase"}),
		Activations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "roam_activations_total",
			Help:        "Object activations by object kind",
			ConstLabels: constLabels,
		}, []string{"kind"}),
		Navigations: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "roam_navigations_total",
			Help:        "Completed travels that emitted a destination",
			ConstLabels: constLabels,
		}),
	}

	reg.MustRegister(o.Frames, o.FrameDelta, o.Phase, o.Transitions, o.Activations, o.Navigations)

	for _, p := range phases {
		o.Phase.WithLabelValues(p.String()).Set(0)
	}
	o.Phase.WithLabelValues(engine.PhaseIdle.String()).Set(1)
	return o
}

func (o *Observer) FrameStepped(dt float64) {
	o.Frames.Inc()
	o.FrameDelta.Observe(dt)
}

func (o *Observer) PhaseChanged(from, to engine.TransitionPhase) {
	o.Phase.WithLabelValues(from.String()).Set(0)
	o.Phase.WithLabelValues(to.String()).Set(1)
	o.Transitions.WithLabelValues(to.String()).Inc()
}

func (o *Observer) ObjectActivated(kind string) {
	o.Activations.WithLabelValues(kind).Inc()
}

func (o *Observer) Navigated() {
	o.Navigations.Inc()
}
