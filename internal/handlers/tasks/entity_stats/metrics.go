package entity_stats

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var EntityRows = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "entity_rows",
		Help: "Number of stored rows per entity",
	},
	[]string{"entity"},
)
