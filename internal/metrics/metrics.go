package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// 推送计数
	NotificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "memoria_notifications_total",
			Help: "Dispatch attempts by channel and outcome",
		},
		[]string{"channel", "status"},
	)

	// 定时任务运行计数
	DispatchRunsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "memoria_dispatch_runs_total",
			Help: "Total scheduled dispatch runs",
		},
	)
)
