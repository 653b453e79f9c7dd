// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package battle

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AccelByte/extend-battle-engine/pkg/combat"
	"github.com/AccelByte/extend-battle-engine/pkg/elements"
	"github.com/AccelByte/extend-battle-engine/pkg/models"
	"github.com/AccelByte/extend-battle-engine/pkg/testsetup"
)

func newMachine(t *testing.T) (*Machine, *Store) {
	t.Helper()

	store := NewStore()
	rng := rand.New(rand.NewSource(7))
	resolver := combat.NewResolver(testsetup.DeterministicCombatConfig(), elements.DefaultTable(), rng)
	return NewMachine(store, resolver, rng), store
}

func TestWildBattleRunsToTermination(t *testing.T) {
	machine, store := newMachine(t)
	scope := testsetup.NewTestScope()

	session, err := machine.StartWild(scope, sideFor(t, "p1", "c1"), aiSide(t))
	require.NoError(t, err)
	require.Equal(t, models.SideHome, session.Turn)

	// both sides land 40 per exchange; after two exchanges the AI sits at 20 HP
	for i := 0; i < 2; i++ {
		session, err = machine.Submit(scope, "p1", models.Attack(0))
		require.NoError(t, err)
		require.False(t, session.Terminal)
	}
	require.Equal(t, 20, session.Away.Combatant.HP)
	require.Equal(t, 20, session.Home.Combatant.HP)

	// third exchange defeats the AI before it can answer
	session, err = machine.Submit(scope, "p1", models.Attack(0))
	require.NoError(t, err)

	require.True(t, session.Terminal)
	require.Equal(t, models.SideHome, session.Result.Winner)
	require.Equal(t, models.ReasonDefeat, session.Result.Reason)
	require.Equal(t, 0, session.Away.Combatant.HP)

	// terminal sessions accept no further actions
	_, err = machine.Submit(scope, "p1", models.Attack(0))
	require.ErrorIs(t, err, models.ErrSessionOver)
	require.Equal(t, 1, store.ActiveCount()) // eviction is the caller's job
}

func TestDefeatAtExactlyZeroHP(t *testing.T) {
	machine, _ := newMachine(t)
	scope := testsetup.NewTestScope()

	session, err := machine.StartWild(scope, sideFor(t, "p1", "c1"), aiSide(t))
	require.NoError(t, err)
	session.Away.Combatant.HP = 10

	session, err = machine.Submit(scope, "p1", models.Attack(0))
	require.NoError(t, err)

	require.Equal(t, 0, session.Away.Combatant.HP)
	require.True(t, session.Terminal)
	require.Equal(t, models.SideHome, session.Result.Winner)
}

func TestFleeResolvesAsLoss(t *testing.T) {
	machine, _ := newMachine(t)
	scope := testsetup.NewTestScope()

	session, err := machine.StartWild(scope, sideFor(t, "p1", "c1"), aiSide(t))
	require.NoError(t, err)

	session, err = machine.Submit(scope, "p1", models.Flee())
	require.NoError(t, err)

	require.True(t, session.Terminal)
	require.Equal(t, models.SideAway, session.Result.Winner)
	require.Equal(t, models.ReasonFled, session.Result.Reason)
}

func TestRankedTurnsAlternateStrictly(t *testing.T) {
	machine, _ := newMachine(t)
	scope := testsetup.NewTestScope()

	session, err := machine.StartRanked(scope, sideFor(t, "p1", "c1"), sideFor(t, "p2", "c2"))
	require.NoError(t, err)

	first := session.SideState(session.Turn).OwnerID
	second := session.SideState(session.Turn.Opposite()).OwnerID

	// acting out of turn is rejected, not queued
	_, err = machine.Submit(scope, second, models.Attack(0))
	require.ErrorIs(t, err, models.ErrNotYourTurn)
	require.Equal(t, 0, session.TurnCount)

	_, err = machine.Submit(scope, first, models.Attack(0))
	require.NoError(t, err)
	require.Equal(t, 1, session.TurnCount)

	// the same side cannot act twice
	_, err = machine.Submit(scope, first, models.Attack(0))
	require.ErrorIs(t, err, models.ErrNotYourTurn)

	_, err = machine.Submit(scope, second, models.Attack(0))
	require.NoError(t, err)
	require.Equal(t, 2, session.TurnCount)
}

func TestRankedCooldownTicksAfterCompletedTurn(t *testing.T) {
	machine, _ := newMachine(t)
	scope := testsetup.NewTestScope()

	home := sideFor(t, "p1", "c1")
	home.Combatant.Moves = []models.MoveState{{Def: testsetup.ChargeMove()}, {Def: testsetup.TackleMove()}}
	session, err := machine.StartRanked(scope, home, sideFor(t, "p2", "c2"))
	require.NoError(t, err)

	// pin the starting side and give both sides room to trade blows
	session.Turn = models.SideHome
	session.Home.Combatant.HP = 500
	session.Away.Combatant.HP = 500

	charge := &session.Home.Combatant.Moves[0]

	_, err = machine.Submit(scope, "p1", models.Attack(0))
	require.NoError(t, err)
	require.Equal(t, 2, charge.CooldownLeft)

	_, err = machine.Submit(scope, "p2", models.Attack(0))
	require.NoError(t, err)
	require.Equal(t, 1, charge.CooldownLeft)

	// still cooling: the rejection does not consume p1's turn
	_, err = machine.Submit(scope, "p1", models.Attack(0))
	require.ErrorIs(t, err, models.ErrMoveOnCooldown)
	require.Equal(t, 2, session.TurnCount)

	_, err = machine.Submit(scope, "p1", models.Attack(1))
	require.NoError(t, err)
	_, err = machine.Submit(scope, "p2", models.Attack(0))
	require.NoError(t, err)
	require.Equal(t, 0, charge.CooldownLeft)

	// the charge is usable again once the cooldown reaches zero
	_, err = machine.Submit(scope, "p1", models.Attack(0))
	require.NoError(t, err)
	require.Equal(t, 2, charge.CooldownLeft)
}

func TestSubmitWithoutSession(t *testing.T) {
	machine, _ := newMachine(t)
	scope := testsetup.NewTestScope()

	_, err := machine.Submit(scope, "ghost", models.Attack(0))
	require.ErrorIs(t, err, models.ErrSessionNotFound)
}

func TestSubmitMalformedAction(t *testing.T) {
	machine, _ := newMachine(t)
	scope := testsetup.NewTestScope()

	_, err := machine.StartWild(scope, sideFor(t, "p1", "c1"), aiSide(t))
	require.NoError(t, err)

	tests := []struct {
		Name   string
		Action models.Action
	}{
		{Name: "unknown kind", Action: models.Action{Kind: "dance"}},
		{Name: "negative move index", Action: models.Action{Kind: models.ActionAttack, MoveIndex: -2}},
	}
	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			_, err := machine.Submit(scope, "p1", tt.Action)
			require.ErrorIs(t, err, models.ErrInvalidAction)
		})
	}
}

func TestForfeitAwardsOpponent(t *testing.T) {
	machine, _ := newMachine(t)
	scope := testsetup.NewTestScope()

	session, err := machine.StartRanked(scope, sideFor(t, "p1", "c1"), sideFor(t, "p2", "c2"))
	require.NoError(t, err)

	machine.Forfeit(scope, session, "p1", models.ReasonDisconnect)

	require.True(t, session.Terminal)
	require.Equal(t, models.SideAway, session.Result.Winner)
	require.Equal(t, models.ReasonDisconnect, session.Result.Reason)

	// forfeiting an already-terminal session changes nothing
	machine.Forfeit(scope, session, "p2", models.ReasonTimeout)
	require.Equal(t, models.SideAway, session.Result.Winner)
}
