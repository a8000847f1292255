package httpapi

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics records table generation activity.
type Metrics struct {
	tables    prometheus.Counter
	errors    *prometheus.CounterVec
	variables prometheus.Histogram
}

// NewMetrics creates the metrics and registers them on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		tables: factory.NewCounter(prometheus.CounterOpts{
			Name: "gophertable_tables_total",
			Help: "Total number of truth tables rendered",
		}),
		errors: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "gophertable_table_errors_total",
			Help: "Total number of programs that could not be rendered, by error kind",
		}, []string{"kind"}),
		variables: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "gophertable_table_variables",
			Help:    "Number of variables of rendered tables",
			Buckets: prometheus.LinearBuckets(0, 2, 13),
		}),
	}
}

func (m *Metrics) success(nbVars int) {
	m.tables.Inc()
	m.variables.Observe(float64(nbVars))
}

func (m *Metrics) failure(kind string) {
	m.errors.WithLabelValues(kind).Inc()
}
