// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type ArenaMetrics interface {
	SetQueueDepth(depth int)
	SetActiveSessions(count int)
	AddBattleResult(kind string, reason string)
	AddRejectedAction(reason string)
	ObservePairingPassMs(elapsedTime time.Duration)
	AddRewardDeliveryFailure()
}

func NewMetrics(registry *prometheus.Registry) ArenaMetrics {
	return setupPrometheusMetrics(registry)
}
