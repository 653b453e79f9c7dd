// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

// Package matchqueue holds the waiting ranked players and runs the pairing
// pass that promotes comparable-skill pairs into battle sessions.
package matchqueue

import (
	"fmt"
	"sync"
	"time"

	pie "github.com/elliotchance/pie/v2"

	"github.com/AccelByte/extend-battle-engine/pkg/config"
	"github.com/AccelByte/extend-battle-engine/pkg/envelope"
	"github.com/AccelByte/extend-battle-engine/pkg/models"
	"github.com/AccelByte/extend-battle-engine/pkg/playerdata"
)

// Now is overridable for tests.
var Now = time.Now

// SessionIndex answers whether a participant already owns an active battle.
// Implemented by the battle session store.
type SessionIndex interface {
	HasActiveSession(participant playerdata.ID) bool
}

// SessionCreator promotes a matched pair into a battle session. Implemented by
// the arena facade on top of the battle state machine.
type SessionCreator interface {
	CreateRankedSession(scope *envelope.Scope, a, b models.QueueEntry) error
}

// Queue is the single ranked waiting list. All mutation is serialized behind
// its mutex; entries are value copies so callers can't alias internal state.
type Queue struct {
	cfg      *config.Config
	sessions SessionIndex
	creator  SessionCreator

	mu      sync.Mutex
	entries []models.QueueEntry
}

func New(cfg *config.Config, sessions SessionIndex, creator SessionCreator) *Queue {
	return &Queue{
		cfg:      cfg,
		sessions: sessions,
		creator:  creator,
		entries:  make([]models.QueueEntry, 0),
	}
}

// Enqueue adds a waiting entry and runs a pairing pass. It fails with
// ErrAlreadyQueued or ErrAlreadyInSession without touching the queue.
func (q *Queue) Enqueue(scope *envelope.Scope, entry models.QueueEntry) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.indexOfLocked(entry.ParticipantID) >= 0 {
		return fmt.Errorf("%w: participant %s", models.ErrAlreadyQueued, entry.ParticipantID)
	}
	if q.sessions.HasActiveSession(entry.ParticipantID) {
		return fmt.Errorf("%w: participant %s", models.ErrAlreadyInSession, entry.ParticipantID)
	}

	if entry.EnqueuedAt.IsZero() {
		entry.EnqueuedAt = Now()
	}
	q.entries = append(q.entries, entry)
	scope.Log.WithField("participantID", entry.ParticipantID).
		WithField("rating", entry.Rating).
		WithField("queueDepth", len(q.entries)).
		Info("participant joined ranked queue")

	q.pairingPassLocked(scope)
	return nil
}

// Dequeue removes a waiting entry. Absent participants are a soft no-op; a
// removal still triggers a pairing pass for the remaining entries.
func (q *Queue) Dequeue(scope *envelope.Scope, participant playerdata.ID) {
	q.mu.Lock()
	defer q.mu.Unlock()

	i := q.indexOfLocked(participant)
	if i < 0 {
		return
	}
	q.entries = append(q.entries[:i], q.entries[i+1:]...)
	scope.Log.WithField("participantID", participant).Info("participant left ranked queue")

	q.pairingPassLocked(scope)
}

// Tick runs a pairing pass with no queue change, so lone waiters keep
// converging toward a match as their wait time widens the band.
func (q *Queue) Tick(scope *envelope.Scope) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.pairingPassLocked(scope)
}

// Contains reports whether the participant is currently waiting.
func (q *Queue) Contains(participant playerdata.ID) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	return q.indexOfLocked(participant) >= 0
}

// Len returns the number of waiting entries.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return len(q.entries)
}

// Entries returns a copy of the waiting list.
func (q *Queue) Entries() []models.QueueEntry {
	q.mu.Lock()
	defer q.mu.Unlock()

	out := make([]models.QueueEntry, len(q.entries))
	copy(out, q.entries)
	return out
}

func (q *Queue) indexOfLocked(participant playerdata.ID) int {
	return pie.FindFirstUsing(q.entries, func(e models.QueueEntry) bool {
		return e.ParticipantID == participant
	})
}
