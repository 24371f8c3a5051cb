package festa

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	opsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "festa",
		Subsystem: "store",
		Name:      "commands_total",
		Help:      "Store commands issued, by entity and operation.",
	}, []string{"entity", "op"})

	absorbedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "festa",
		Subsystem: "store",
		Name:      "command_failures_total",
		Help:      "Rejected writes absorbed without changing state, by entity and operation.",
	}, []string{"entity", "op"})
)

func observe(entity, op string) {
	opsTotal.WithLabelValues(entity, op).Inc()
}
