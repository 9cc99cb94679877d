// Package metrics counts simulation activity in a private prometheus registry
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/lixenwraith/pewpewpew/component"
	"github.com/lixenwraith/pewpewpew/engine"
)

const namespace = "pewpewpew"

// PriorityMetrics places sampling after every simulation phase
const PriorityMetrics = 1000

// Recorder holds the simulation counters
type Recorder struct {
	registry   *prometheus.Registry
	frames     prometheus.Counter
	spawns     *prometheus.CounterVec
	collisions prometheus.Counter
	entities   prometheus.Gauge
}

// NewRecorder creates and registers all collectors
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		frames: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "frames_total",
			Help:      "Simulation frames stepped.",
		}),
		spawns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "spawns_total",
			Help:      "Enemies spawned, by strategy.",
		}, []string{"strategy"}),
		collisions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "collisions_total",
			Help:      "Colliding pairs recolored.",
		}),
		entities: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "entities",
			Help:      "UFOs alive in the world.",
		}),
	}
	r.registry.MustRegister(r.frames, r.spawns, r.collisions, r.entities)
	return r
}

// Registry exposes the private registry
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Spawn records one spawned enemy
func (r *Recorder) Spawn(u *component.Ufo) {
	r.spawns.WithLabelValues(u.Strategy.String()).Inc()
}

// Collision records one colliding pair
func (r *Recorder) Collision(a, b *component.Ufo) {
	r.collisions.Inc()
}

// Observe samples world-level state once per frame
func (r *Recorder) Observe(w *engine.World) {
	r.frames.Inc()
	r.entities.Set(float64(len(w.Ufos)))
}

// Summary gathers current values keyed by metric name; labeled series are summed
func (r *Recorder) Summary() (map[string]float64, error) {
	families, err := r.registry.Gather()
	if err != nil {
		return nil, err
	}

	out := make(map[string]float64, len(families))
	for _, mf := range families {
		var total float64
		for _, m := range mf.GetMetric() {
			switch {
			case m.GetCounter() != nil:
				total += m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				total += m.GetGauge().GetValue()
			}
		}
		out[mf.GetName()] = total
	}
	return out, nil
}

// System adapts the recorder to the frame loop, running after every other phase
type System struct {
	rec *Recorder
}

// NewSystem wraps a recorder as an engine system
func NewSystem(rec *Recorder) *System {
	return &System{rec: rec}
}

// Priority returns the system's priority
func (s *System) Priority() int {
	return PriorityMetrics
}

// Update samples the world
func (s *System) Update(w *engine.World) {
	s.rec.Observe(w)
}
