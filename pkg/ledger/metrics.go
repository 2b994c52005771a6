package ledger

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics records ledger activity. A nil *Metrics is valid and records
// nothing.
type Metrics struct {
	// Executed calls by operation and receipt status
	Calls *prometheus.CounterVec

	// Rejected calls by error kind, including those that never reached a contract
	Rejections *prometheus.CounterVec

	// Successful deployments by contract kind
	ContractsDeployed *prometheus.CounterVec

	ExecuteLatency prometheus.Histogram
}

// NewMetrics registers the ledger metrics with registerer. A nil registerer
// selects prometheus.DefaultRegisterer.
func NewMetrics(registerer prometheus.Registerer) *Metrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	factory := promauto.With(registerer)

	return &Metrics{
		Calls: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "avatar_ledger_calls_total",
			Help: "Total executed ledger calls by operation and status",
		}, []string{"operation", "status"}),

		Rejections: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "avatar_ledger_rejections_total",
			Help: "Total rejected ledger calls by error kind",
		}, []string{"kind"}),

		ContractsDeployed: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "avatar_ledger_contracts_deployed_total",
			Help: "Total contracts deployed by kind",
		}, []string{"kind"}),

		ExecuteLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "avatar_ledger_execute_duration_seconds",
			Help:    "Duration of call application under the execution lock",
			Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05},
		}),
	}
}

// IncrementCall counts an executed call by operation and status.
func (m *Metrics) IncrementCall(operation, status string) {
	if m != nil {
		m.Calls.WithLabelValues(operation, status).Inc()
	}
}

// IncrementRejection counts a rejection by error kind.
func (m *Metrics) IncrementRejection(kind string) {
	if m != nil {
		m.Rejections.WithLabelValues(kind).Inc()
	}
}

// IncrementDeployed counts a deployment by contract kind.
func (m *Metrics) IncrementDeployed(kind string) {
	if m != nil {
		m.ContractsDeployed.WithLabelValues(kind).Inc()
	}
}

// ObserveExecuteLatency records how long a contract call took.
func (m *Metrics) ObserveExecuteLatency(d time.Duration) {
	if m != nil {
		m.ExecuteLatency.Observe(d.Seconds())
	}
}
