// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package arena

import (
	"context"
	"time"

	"github.com/AccelByte/extend-battle-engine/pkg/envelope"
	"github.com/AccelByte/extend-battle-engine/pkg/models"
)

// Run drives the periodic work: pairing passes for lone waiters and, when a
// turn timeout is configured, the idle-session sweep. Blocks until ctx is
// cancelled.
func (a *Arena) Run(ctx context.Context) {
	interval := time.Duration(a.cfg.QueueTickSecond) * time.Second
	if interval <= 0 {
		interval = 3 * time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			a.tick(ctx)
		}
	}
}

func (a *Arena) tick(ctx context.Context) {
	scope := envelope.NewRootScope(ctx, "Arena.tick", "")
	defer scope.Finish()

	a.mu.Lock()
	defer a.mu.Unlock()

	started := time.Now()
	a.queue.Tick(scope)
	if a.metrics != nil {
		a.metrics.ObservePairingPassMs(time.Since(started))
	}

	if stats := a.queue.Stats(); stats.Size > 0 {
		scope.Log.WithField("queueDepth", stats.Size).
			WithField("meanRating", stats.MeanRating).
			WithField("stdDevRating", stats.StdDevRating).
			WithField("meanWaitSeconds", stats.MeanWaitSeconds).
			Debug("ranked queue stats")
	}

	if a.cfg.TurnTimeoutSecond > 0 {
		a.sweepIdleSessions(scope)
	}
	a.reportGauges()
}

// sweepIdleSessions auto-resolves sessions whose acting side stalled past the
// configured timeout: ranked sessions forfeit against the idle actor, wild
// sessions are simply destroyed.
func (a *Arena) sweepIdleSessions(scope *envelope.Scope) {
	deadline := Now().Add(-time.Duration(a.cfg.TurnTimeoutSecond) * time.Second)

	for _, session := range a.store.Snapshot() {
		if session.Terminal || !session.LastActionAt.Before(deadline) {
			continue
		}

		idleSide := session.SideState(session.Turn)
		if idleSide == nil || idleSide.IsAI {
			continue
		}
		scope.Log.WithField("sessionID", session.ID).
			WithField("idleParticipant", idleSide.OwnerID).
			Info("turn timeout reached, forfeiting")

		a.machine.Forfeit(scope, session, idleSide.OwnerID, models.ReasonTimeout)
		a.finalize(scope, session, session.Kind == models.KindRanked)
	}
}
