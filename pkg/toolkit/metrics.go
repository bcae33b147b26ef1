package toolkit

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/go-drift/rui/pkg/core"
)

// Metrics are the toolkit's Prometheus collectors.
type Metrics struct {
	inputs     *prometheus.CounterVec
	deliveries prometheus.Counter
	failures   prometheus.Counter
	popups     prometheus.Gauge
	windows    prometheus.Gauge
}

// NewMetrics registers the toolkit collectors with reg. A nil reg creates
// unregistered collectors.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		inputs: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "rui",
			Name:      "inputs_total",
			Help:      "Platform input events dispatched, by kind.",
		}, []string{"kind"}),
		deliveries: f.NewCounter(prometheus.CounterOpts{
			Namespace: "rui",
			Name:      "update_deliveries_total",
			Help:      "Update-handle events delivered to registered widgets.",
		}),
		failures: f.NewCounter(prometheus.CounterOpts{
			Namespace: "rui",
			Name:      "dispatch_failures_total",
			Help:      "Dispatches aborted by a panic or an unsettled update broadcast.",
		}),
		popups: f.NewGauge(prometheus.GaugeOpts{
			Namespace: "rui",
			Name:      "popups_open",
			Help:      "Popup windows currently open.",
		}),
		windows: f.NewGauge(prometheus.GaugeOpts{
			Namespace: "rui",
			Name:      "windows_open",
			Help:      "Top-level windows currently open.",
		}),
	}
}

func inputLabel(k core.InputKind) string {
	switch k {
	case core.InputCursorMoved:
		return "cursor_moved"
	case core.InputMouseButton:
		return "mouse_button"
	case core.InputTouch:
		return "touch"
	case core.InputKey:
		return "key"
	case core.InputChar:
		return "char"
	case core.InputFocusLost:
		return "focus_lost"
	case core.InputCursorLeft:
		return "cursor_left"
	default:
		return "unknown"
	}
}
