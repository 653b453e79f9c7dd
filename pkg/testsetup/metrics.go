package testsetup

import (
	"time"

	"github.com/AccelByte/extend-battle-engine/pkg/metrics"
)

type stubMetricsCollection struct{}

func (s stubMetricsCollection) SetQueueDepth(depth int) {
}

func (s stubMetricsCollection) SetActiveSessions(count int) {
}

func (s stubMetricsCollection) AddBattleResult(kind string, reason string) {
}

func (s stubMetricsCollection) AddRejectedAction(reason string) {
}

func (s stubMetricsCollection) ObservePairingPassMs(elapsedTime time.Duration) {
}

func (s stubMetricsCollection) AddRewardDeliveryFailure() {
}

func NewMetrics() metrics.ArenaMetrics {
	return stubMetricsCollection{}
}
