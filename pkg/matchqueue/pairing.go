// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package matchqueue

import (
	"math"
	"time"

	pie "github.com/elliotchance/pie/v2"

	"github.com/AccelByte/extend-battle-engine/pkg/envelope"
	"github.com/AccelByte/extend-battle-engine/pkg/models"
)

// pairingPassLocked repeatedly pairs the best adjacent candidates until no
// acceptable pair remains. Greedy and adjacent-only after sorting, which is
// not globally optimal but deterministic. Caller holds q.mu.
func (q *Queue) pairingPassLocked(rootScope *envelope.Scope) {
	scope := rootScope.NewChildScope("Queue.pairingPass")
	defer scope.Finish()

	for len(q.entries) >= 2 {
		a, b, ok := q.bestAdjacentPairLocked()
		if !ok {
			return
		}
		q.removeLocked(a.ParticipantID)
		q.removeLocked(b.ParticipantID)

		scope.Log.WithField("participantA", a.ParticipantID).
			WithField("participantB", b.ParticipantID).
			WithField("ratingA", a.Rating).
			WithField("ratingB", b.Rating).
			Info("queue pair accepted")

		if err := q.creator.CreateRankedSession(scope, a, b); err != nil {
			// the conflicting entry stays out; the other re-enters and keeps
			// its original wait credit. Stop the pass here and let the next
			// event or tick retry.
			scope.Log.WithError(err).Warn("pair promotion failed")
			q.requeueSurvivorsLocked(a, b)
			return
		}
	}
}

// bestAdjacentPairLocked sorts the waiting list by rating and picks the
// adjacent pair with the globally smallest wait-adjusted rating difference.
// A pair is acceptable when that difference is within the configured gap;
// every second of average wait shrinks the difference, so any two entries
// eventually become acceptable.
func (q *Queue) bestAdjacentPairLocked() (a, b models.QueueEntry, ok bool) {
	sorted := pie.SortUsing(q.entries, func(e1, e2 models.QueueEntry) bool {
		return e1.Rating < e2.Rating
	})

	best := math.Inf(1)
	now := Now()
	for i := 0; i+1 < len(sorted); i++ {
		left, right := sorted[i], sorted[i+1]
		diff := q.adjustedDiff(left, right, now)
		if diff < best {
			best = diff
			a, b = left, right
		}
	}

	ok = best <= float64(q.cfg.PairableRatingGap)
	return a, b, ok
}

func (q *Queue) adjustedDiff(a, b models.QueueEntry, now time.Time) float64 {
	ratingDiff := math.Abs(float64(a.Rating - b.Rating))
	avgWaitSeconds := (now.Sub(a.EnqueuedAt).Seconds() + now.Sub(b.EnqueuedAt).Seconds()) / 2
	return ratingDiff - q.cfg.WaitWideningPerSecond*avgWaitSeconds
}

func (q *Queue) removeLocked(participant string) {
	if i := q.indexOfLocked(participant); i >= 0 {
		q.entries = append(q.entries[:i], q.entries[i+1:]...)
	}
}

func (q *Queue) requeueSurvivorsLocked(candidates ...models.QueueEntry) {
	for _, e := range candidates {
		if !q.sessions.HasActiveSession(e.ParticipantID) {
			q.entries = append(q.entries, e)
		}
	}
}
