// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

// Package arena is the service facade over the battle core: it wires the
// session store, state machine, matchmaking queue, rating engine and reward
// distributor behind the five externally exposed operations, and serializes
// every mutating operation behind one mutex so the store and queue are driven
// by a single logical authority.
package arena

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/AccelByte/extend-battle-engine/pkg/battle"
	"github.com/AccelByte/extend-battle-engine/pkg/combat"
	"github.com/AccelByte/extend-battle-engine/pkg/config"
	"github.com/AccelByte/extend-battle-engine/pkg/elements"
	"github.com/AccelByte/extend-battle-engine/pkg/envelope"
	"github.com/AccelByte/extend-battle-engine/pkg/matchqueue"
	"github.com/AccelByte/extend-battle-engine/pkg/metrics"
	"github.com/AccelByte/extend-battle-engine/pkg/models"
	"github.com/AccelByte/extend-battle-engine/pkg/playerdata"
	"github.com/AccelByte/extend-battle-engine/pkg/rating"
	"github.com/AccelByte/extend-battle-engine/pkg/rewards"
)

// Now is overridable for tests.
var Now = time.Now

// Dependencies are the external collaborators and optional extras injected
// into the arena.
type Dependencies struct {
	Creatures        CreatureSource
	Ratings          RatingSource
	OutcomeWriter    rewards.OutcomeWriter
	CreatureRecorder rewards.CreatureRecorder
	Metrics          metrics.ArenaMetrics // optional
	Rand             *rand.Rand           // optional, defaults to a time-seeded source
}

type Arena struct {
	mu sync.Mutex

	cfg       *config.Config
	store     *battle.Store
	machine   *battle.Machine
	queue     *matchqueue.Queue
	rewards   *rewards.Distributor
	creatures CreatureSource
	ratings   RatingSource
	metrics   metrics.ArenaMetrics
	rng       *rand.Rand

	subscribers []func(models.TerminationEvent)
}

func New(cfg *config.Config, deps Dependencies) (*Arena, error) {
	table := elements.DefaultTable()
	if cfg.ElementTableJSON != "" {
		var err error
		table, err = elements.TableFromJSON(cfg.ElementTableJSON)
		if err != nil {
			return nil, err
		}
	}

	rng := deps.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(Now().UnixNano()))
	}

	store := battle.NewStore()
	resolver := combat.NewResolver(cfg, table, rng)

	a := &Arena{
		cfg:       cfg,
		store:     store,
		machine:   battle.NewMachine(store, resolver, rng),
		rewards:   rewards.NewDistributor(cfg, deps.Ratings, deps.OutcomeWriter, deps.CreatureRecorder),
		creatures: deps.Creatures,
		ratings:   deps.Ratings,
		metrics:   deps.Metrics,
		rng:       rng,
	}
	a.queue = matchqueue.New(cfg, store, a)
	return a, nil
}

// StartWildBattle snapshots the player's creature and a leveled opponent
// template into a new wild session.
func (a *Arena) StartWildBattle(rootScope *envelope.Scope, participant playerdata.ID, creature playerdata.CreatureID, opponentTemplate playerdata.CreatureID, opponentLevel int) (*models.BattleSession, error) {
	scope := rootScope.NewChildScope("Arena.StartWildBattle")
	defer scope.Finish()

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.queue.Contains(participant) {
		return nil, fmt.Errorf("%w: participant %s", models.ErrAlreadyQueued, participant)
	}

	home, err := a.sideForParticipant(participant, creature)
	if err != nil {
		return nil, err
	}

	template, err := a.creatures.GetCreatureByID(opponentTemplate)
	if err != nil {
		return nil, fmt.Errorf("%w: template %s", models.ErrCreatureNotFound, opponentTemplate)
	}
	if opponentLevel > 0 {
		template.Level = opponentLevel
	}
	opponent, err := models.NewCombatantState(template)
	if err != nil {
		return nil, err
	}
	away := models.SideState{IsAI: true, Combatant: opponent}

	session, err := a.machine.StartWild(scope, home, away)
	if err != nil {
		return nil, err
	}
	a.reportGauges()
	return session, nil
}

// SubmitBattleAction applies one action to the caller's active session. When
// the action terminates the battle, rewards are distributed and the session
// is evicted before returning.
func (a *Arena) SubmitBattleAction(rootScope *envelope.Scope, participant playerdata.ID, action models.Action) (*models.BattleSession, error) {
	scope := rootScope.NewChildScope("Arena.SubmitBattleAction")
	defer scope.Finish()
	scope.SetAttributes(envelope.ParticipantTag, string(participant))

	a.mu.Lock()
	defer a.mu.Unlock()

	session, err := a.machine.Submit(scope, participant, action)
	if err != nil {
		if models.IsInvalidAction(err) && a.metrics != nil {
			a.metrics.AddRejectedAction(models.RejectionLabel(err))
		}
		return session, err
	}

	if session.Terminal {
		a.finalize(scope, session, true)
	}
	return session, nil
}

// JoinRankedQueue validates the creature and rating, then enqueues the
// participant. The enqueue itself triggers a pairing pass.
func (a *Arena) JoinRankedQueue(rootScope *envelope.Scope, participant playerdata.ID, creature playerdata.CreatureID) error {
	scope := rootScope.NewChildScope("Arena.JoinRankedQueue")
	defer scope.Finish()

	a.mu.Lock()
	defer a.mu.Unlock()

	record, err := a.creatures.GetCreatureByID(creature)
	if err != nil {
		return fmt.Errorf("%w: creature %s", models.ErrCreatureNotFound, creature)
	}
	if record.OwnerID != participant {
		return fmt.Errorf("%w: creature %s not owned by %s", models.ErrCreatureNotFound, creature, participant)
	}

	currentRating, err := a.ratings.GetParticipantRating(participant)
	if err != nil {
		return fmt.Errorf("%w: participant %s", models.ErrRatingNotFound, participant)
	}

	err = a.queue.Enqueue(scope, models.QueueEntry{
		ParticipantID: participant,
		CreatureID:    creature,
		Rating:        currentRating,
		EnqueuedAt:    Now(),
	})
	if err != nil {
		return err
	}
	a.reportGauges()
	return nil
}

// LeaveRankedQueue removes a waiting entry; leaving while not queued is a
// soft no-op.
func (a *Arena) LeaveRankedQueue(rootScope *envelope.Scope, participant playerdata.ID) {
	scope := rootScope.NewChildScope("Arena.LeaveRankedQueue")
	defer scope.Finish()

	a.mu.Lock()
	defer a.mu.Unlock()

	a.queue.Dequeue(scope, participant)
	a.reportGauges()
}

// GetLeaderboard returns the top ranked participants, bounded by
// configuration, descending by rating.
func (a *Arena) GetLeaderboard(rootScope *envelope.Scope) ([]rating.Record, error) {
	scope := rootScope.NewChildScope("Arena.GetLeaderboard")
	defer scope.Finish()

	records, err := a.ratings.ListRatings()
	if err != nil {
		return nil, err
	}
	return rating.BuildLeaderboard(records, a.cfg.LeaderboardSize), nil
}

// Disconnect handles a participant dropping: queued entries are removed, an
// active ranked session forfeits in the opponent's favor, a wild session is
// destroyed with no rewards.
func (a *Arena) Disconnect(rootScope *envelope.Scope, participant playerdata.ID) {
	scope := rootScope.NewChildScope("Arena.Disconnect")
	defer scope.Finish()

	a.mu.Lock()
	defer a.mu.Unlock()

	a.queue.Dequeue(scope, participant)

	session, err := a.store.GetSessionFor(participant)
	if err != nil {
		a.reportGauges()
		return
	}

	switch session.Kind {
	case models.KindRanked:
		a.machine.Forfeit(scope, session, participant, models.ReasonDisconnect)
		a.finalize(scope, session, true)
	default:
		a.machine.Forfeit(scope, session, participant, models.ReasonDisconnect)
		a.finalize(scope, session, false)
	}
	a.reportGauges()
}

// CreateRankedSession implements matchqueue.SessionCreator. Side order is
// chosen at random so queue position carries no advantage.
func (a *Arena) CreateRankedSession(scope *envelope.Scope, entryA, entryB models.QueueEntry) error {
	if a.rng.Intn(2) == 1 {
		entryA, entryB = entryB, entryA
	}

	home, err := a.sideForParticipant(entryA.ParticipantID, entryA.CreatureID)
	if err != nil {
		return err
	}
	away, err := a.sideForParticipant(entryB.ParticipantID, entryB.CreatureID)
	if err != nil {
		return err
	}

	// no gauge refresh here: this runs inside the queue's pairing pass,
	// which already holds the queue lock
	_, err = a.machine.StartRanked(scope, home, away)
	return err
}

func (a *Arena) sideForParticipant(participant playerdata.ID, creature playerdata.CreatureID) (models.SideState, error) {
	record, err := a.creatures.GetCreatureByID(creature)
	if err != nil {
		return models.SideState{}, fmt.Errorf("%w: creature %s", models.ErrCreatureNotFound, creature)
	}
	if record.OwnerID != participant {
		return models.SideState{}, fmt.Errorf("%w: creature %s not owned by %s", models.ErrCreatureNotFound, creature, participant)
	}
	combatant, err := models.NewCombatantState(record)
	if err != nil {
		return models.SideState{}, err
	}
	return models.SideState{OwnerID: participant, Combatant: combatant}, nil
}

// finalize delivers rewards (when due), publishes the termination event and
// evicts the session. The session result is authoritative: a failed delivery
// is reported and retried by the collaborator, never rolled back.
func (a *Arena) finalize(scope *envelope.Scope, session *models.BattleSession, distribute bool) {
	if distribute {
		if err := a.rewards.Distribute(scope, session); err != nil {
			scope.Log.WithError(err).
				WithField("sessionID", session.ID).
				Error("reward distribution failed, battle result stands")
			if a.metrics != nil {
				a.metrics.AddRewardDeliveryFailure()
			}
		}
	}

	a.publish(session)
	a.store.EndSession(session.ID)

	if a.metrics != nil {
		a.metrics.AddBattleResult(string(session.Kind), string(session.Result.Reason))
	}
	a.reportGauges()
}

func (a *Arena) reportGauges() {
	if a.metrics == nil {
		return
	}
	a.metrics.SetQueueDepth(a.queue.Len())
	a.metrics.SetActiveSessions(a.store.ActiveCount())
}
