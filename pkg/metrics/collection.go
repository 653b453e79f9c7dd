// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type prometheusMetrics struct {
	queueDepth             prometheus.Gauge
	activeSessions         prometheus.Gauge
	battleResults          prometheus.CounterVec
	rejectedActions        prometheus.CounterVec
	pairingPassElapsed     prometheus.Histogram
	rewardDeliveryFailures prometheus.Counter
}

func setupPrometheusMetrics(registry *prometheus.Registry) prometheusMetrics {
	factory := promauto.With(registry)

	queueDepth := factory.NewGauge(prometheus.GaugeOpts{
		Name: "ab_arena_ranked_queue_depth",
		Help: "Number of participants waiting in the ranked queue",
	})

	activeSessions := factory.NewGauge(prometheus.GaugeOpts{
		Name: "ab_arena_active_sessions",
		Help: "Number of in-progress battle sessions",
	})

	battleResults := factory.NewCounterVec(prometheus.CounterOpts{
		Name: "ab_arena_battle_results_total",
		Help: "Terminal battle results by session kind and terminal reason",
	}, []string{"kind", "reason"})

	rejectedActions := factory.NewCounterVec(prometheus.CounterOpts{
		Name: "ab_arena_rejected_actions_total",
		Help: "Battle actions rejected at validation",
	}, []string{"reason"})

	//nolint:promlinter
	pairingPassElapsed := factory.NewHistogram(prometheus.HistogramOpts{
		Name:    "ab_arena_pairing_pass_elapsed_time_ms",
		Help:    "A histogram of pairing pass elapsed time in milliseconds",
		Buckets: prometheus.ExponentialBuckets(1, 2, 10),
	})

	rewardDeliveryFailures := factory.NewCounter(prometheus.CounterOpts{
		Name: "ab_arena_reward_delivery_failures_total",
		Help: "Failed deliveries of terminal battle outcomes to collaborators",
	})

	return prometheusMetrics{
		queueDepth:             queueDepth,
		activeSessions:         activeSessions,
		battleResults:          *battleResults,
		rejectedActions:        *rejectedActions,
		pairingPassElapsed:     pairingPassElapsed,
		rewardDeliveryFailures: rewardDeliveryFailures,
	}
}

func (metrics prometheusMetrics) SetQueueDepth(depth int) {
	metrics.queueDepth.Set(float64(depth))
}

func (metrics prometheusMetrics) SetActiveSessions(count int) {
	metrics.activeSessions.Set(float64(count))
}

func (metrics prometheusMetrics) AddBattleResult(kind string, reason string) {
	metrics.battleResults.With(prometheus.Labels{"kind": kind, "reason": reason}).Add(1)
}

func (metrics prometheusMetrics) AddRejectedAction(reason string) {
	metrics.rejectedActions.With(prometheus.Labels{"reason": reason}).Add(1)
}

func (metrics prometheusMetrics) ObservePairingPassMs(elapsedTime time.Duration) {
	metrics.pairingPassElapsed.Observe(float64(elapsedTime.Milliseconds()))
}

func (metrics prometheusMetrics) AddRewardDeliveryFailure() {
	metrics.rewardDeliveryFailures.Inc()
}
