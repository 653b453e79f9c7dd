// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package battle

import (
	"fmt"
	"math/rand"

	"github.com/AccelByte/extend-battle-engine/pkg/combat"
	"github.com/AccelByte/extend-battle-engine/pkg/envelope"
	"github.com/AccelByte/extend-battle-engine/pkg/models"
	"github.com/AccelByte/extend-battle-engine/pkg/playerdata"
)

// Machine orchestrates turns: it validates an action against the session
// state, invokes the combat resolver, and detects termination. It mutates
// sessions in place; the caller serializes access and handles eviction plus
// reward delivery once a session turns terminal.
type Machine struct {
	store    *Store
	resolver *combat.Resolver
	rng      *rand.Rand
}

func NewMachine(store *Store, resolver *combat.Resolver, rng *rand.Rand) *Machine {
	return &Machine{store: store, resolver: resolver, rng: rng}
}

// StartWild creates a wild session. The human side always acts first.
func (m *Machine) StartWild(scope *envelope.Scope, home, away models.SideState) (*models.BattleSession, error) {
	session, err := m.store.CreateSession(models.KindWild, home, away, models.SideHome)
	if err != nil {
		return nil, err
	}
	scope.Log.WithField("sessionID", session.ID).Info("wild battle started")
	return session, nil
}

// StartRanked creates a ranked session with the starting side picked at
// random, so neither queue position grants a first-move advantage.
func (m *Machine) StartRanked(scope *envelope.Scope, home, away models.SideState) (*models.BattleSession, error) {
	starting := models.SideHome
	if m.rng.Intn(2) == 1 {
		starting = models.SideAway
	}
	session, err := m.store.CreateSession(models.KindRanked, home, away, starting)
	if err != nil {
		return nil, err
	}
	scope.Log.WithField("sessionID", session.ID).
		WithField("startingSide", string(starting)).
		Info("ranked battle started")
	return session, nil
}

// Submit applies one participant action to their active session. Validation
// happens before any mutation, so a rejected action leaves the session
// untouched. The returned session carries Result once terminal.
func (m *Machine) Submit(scope *envelope.Scope, participant playerdata.ID, action models.Action) (*models.BattleSession, error) {
	if err := action.Validate(); err != nil {
		return nil, err
	}

	session, err := m.store.GetSessionFor(participant)
	if err != nil {
		return nil, err
	}
	if session.Terminal {
		return session, fmt.Errorf("%w: session %s", models.ErrSessionOver, session.ID)
	}

	side, ok := session.SideOf(participant)
	if !ok {
		return nil, fmt.Errorf("%w: participant %s", models.ErrSessionNotFound, participant)
	}
	if session.Turn != side {
		return session, fmt.Errorf("%w: turn belongs to %s", models.ErrNotYourTurn, session.Turn)
	}

	switch action.Kind {
	case models.ActionFlee:
		m.finish(scope, session, side.Opposite(), models.ReasonFled)
		return session, nil
	case models.ActionAttack:
		return session, m.resolveAttack(scope, session, side, action.MoveIndex)
	default:
		return session, fmt.Errorf("%w: kind %q", models.ErrInvalidAction, action.Kind)
	}
}

// Forfeit terminates a ranked session against the given participant without a
// submitted action (disconnects and turn timeouts).
func (m *Machine) Forfeit(scope *envelope.Scope, session *models.BattleSession, loser playerdata.ID, reason models.TerminalReason) {
	if session.Terminal {
		return
	}
	side, ok := session.SideOf(loser)
	if !ok {
		return
	}
	m.finish(scope, session, side.Opposite(), reason)
}

func (m *Machine) resolveAttack(scope *envelope.Scope, session *models.BattleSession, side models.Side, moveIndex int) error {
	attacker := session.SideState(side).Combatant
	defender := session.SideState(side.Opposite()).Combatant

	outcome, err := m.resolver.UseMove(attacker, defender, moveIndex)
	if err != nil {
		return err
	}
	m.logOutcome(scope, session, side, outcome)

	session.LastActionAt = Now()
	session.TurnCount++

	if outcome.DefenderDefeated {
		m.finish(scope, session, side, models.ReasonDefeat)
		return nil
	}

	if session.Kind == models.KindWild {
		// the scripted side answers immediately within the same call
		m.resolveAIMove(scope, session, side.Opposite())
		if session.Terminal {
			return nil
		}
		m.completeTurn(session)
		return nil
	}

	session.Turn = side.Opposite()
	// both sides acted: the turn is complete
	if session.TurnCount%2 == 0 {
		m.completeTurn(session)
	}
	return nil
}

func (m *Machine) resolveAIMove(scope *envelope.Scope, session *models.BattleSession, aiSide models.Side) {
	attacker := session.SideState(aiSide).Combatant
	defender := session.SideState(aiSide.Opposite()).Combatant

	moveIndex := m.resolver.PickAIMove(attacker)
	outcome, err := m.resolver.UseMove(attacker, defender, moveIndex)
	if err != nil {
		// every move cooling down: the scripted side passes this turn
		scope.Log.WithField("sessionID", session.ID).WithError(err).Debug("AI move unavailable, passing")
		session.TurnCount++
		return
	}
	m.logOutcome(scope, session, aiSide, outcome)
	session.TurnCount++

	if outcome.DefenderDefeated {
		m.finish(scope, session, aiSide, models.ReasonDefeat)
	}
}

// completeTurn runs end-of-turn upkeep for both combatants.
func (m *Machine) completeTurn(session *models.BattleSession) {
	combat.TickCooldowns(session.Home.Combatant)
	combat.TickCooldowns(session.Away.Combatant)
}

// finish flips the session to its write-once terminal state. Reward outcomes
// are attached afterwards by the distributor; the winner and reason decided
// here are authoritative.
func (m *Machine) finish(scope *envelope.Scope, session *models.BattleSession, winner models.Side, reason models.TerminalReason) {
	session.Terminal = true
	session.Turn = ""
	session.Result = &models.BattleResult{
		Winner:   winner,
		Reason:   reason,
		Outcomes: make(map[playerdata.ID]models.Outcome),
	}
	scope.Log.WithField("sessionID", session.ID).
		WithField("winner", string(winner)).
		WithField("reason", string(reason)).
		Info("battle reached terminal state")
}

func (m *Machine) logOutcome(scope *envelope.Scope, session *models.BattleSession, side models.Side, outcome combat.MoveOutcome) {
	scope.Log.WithField("sessionID", session.ID).
		WithField("side", string(side)).
		WithField("move", outcome.MoveName).
		WithField("missed", outcome.Missed).
		WithField("crit", outcome.Crit).
		WithField("damage", outcome.Damage).
		Debug("move resolved")
}
