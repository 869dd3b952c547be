package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	CommandsHandled = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bucksbot_commands_total",
			Help: "Chat commands handled, by kind",
		},
		[]string{"kind"},
	)

	AccountsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "bucksbot_accounts_created_total",
			Help: "Accounts created",
		},
	)

	TransfersTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "bucksbot_transfers_total",
			Help: "Successful transfers",
		},
	)

	TransfersFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "bucksbot_transfers_failed_total",
			Help: "Transfers refused for insufficient funds",
		},
	)

	IssuesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "bucksbot_issues_total",
			Help: "Moderator credits issued",
		},
	)

	SnapshotSaves = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "bucksbot_snapshot_saves_total",
			Help: "Successful snapshot writes",
		},
	)

	SnapshotFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "bucksbot_snapshot_failures_total",
			Help: "Failed snapshot writes",
		},
	)
)

// Handler serves the /metrics endpoint.
var Handler = promhttp.Handler

// Init registers all collectors. Call once from main.
func Init() {
	prometheus.MustRegister(
		CommandsHandled,
		AccountsCreated,
		TransfersTotal,
		TransfersFailed,
		IssuesTotal,
		SnapshotSaves,
		SnapshotFailures,
	)
}
