// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package combat

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AccelByte/extend-battle-engine/pkg/elements"
	"github.com/AccelByte/extend-battle-engine/pkg/models"
	"github.com/AccelByte/extend-battle-engine/pkg/testsetup"
)

func newCombatant(t *testing.T, id string, moves ...string) *models.CombatantState {
	t.Helper()

	defs := testsetup.Creature(id, "owner-"+id)
	if len(moves) > 0 {
		defs.Moves = nil
		for _, name := range moves {
			switch name {
			case "charge":
				defs.Moves = append(defs.Moves, testsetup.ChargeMove())
			default:
				defs.Moves = append(defs.Moves, testsetup.TackleMove())
			}
		}
	}

	combatant, err := models.NewCombatantState(defs)
	require.NoError(t, err)
	return combatant
}

func deterministicResolver() *Resolver {
	return NewResolver(testsetup.DeterministicCombatConfig(), elements.DefaultTable(), rand.New(rand.NewSource(1)))
}

func TestUseMoveReferenceDamage(t *testing.T) {
	// power 50, level 10, move power 40, vitality 100, effectiveness 1,
	// no crit, variance pinned: damage is exactly the move power
	resolver := deterministicResolver()
	attacker := newCombatant(t, "atk")
	defender := newCombatant(t, "def")

	outcome, err := resolver.UseMove(attacker, defender, 0)
	require.NoError(t, err)

	require.False(t, outcome.Missed)
	require.False(t, outcome.Crit)
	require.Equal(t, 40, outcome.Damage)
	require.Equal(t, 60, defender.HP)
	require.False(t, outcome.DefenderDefeated)
}

func TestUseMoveClampsHPAtZero(t *testing.T) {
	resolver := deterministicResolver()
	attacker := newCombatant(t, "atk")
	defender := newCombatant(t, "def")
	defender.HP = 10

	outcome, err := resolver.UseMove(attacker, defender, 0)
	require.NoError(t, err)

	require.Equal(t, 40, outcome.Damage)
	require.Equal(t, 0, defender.HP)
	require.True(t, outcome.DefenderDefeated)
}

func TestUseMoveDamageNeverNegative(t *testing.T) {
	cfg := testsetup.DeterministicCombatConfig()
	cfg.VarianceMin = 0
	cfg.VarianceMax = 0
	resolver := NewResolver(cfg, elements.DefaultTable(), rand.New(rand.NewSource(1)))
	attacker := newCombatant(t, "atk")
	defender := newCombatant(t, "def")

	outcome, err := resolver.UseMove(attacker, defender, 0)
	require.NoError(t, err)

	require.GreaterOrEqual(t, outcome.Damage, 0)
	require.Equal(t, 100, defender.HP)
}

func TestUseMoveMissConsumesTurn(t *testing.T) {
	cfg := testsetup.DeterministicCombatConfig()
	cfg.AccuracySpeedScale = 0
	resolver := NewResolver(cfg, elements.DefaultTable(), rand.New(rand.NewSource(1)))

	attacker := newCombatant(t, "atk", "charge")
	attacker.Moves[0].Def.Accuracy = 0 // cannot hit
	defender := newCombatant(t, "def")

	outcome, err := resolver.UseMove(attacker, defender, 0)
	require.NoError(t, err)

	require.True(t, outcome.Missed)
	require.Equal(t, 0, outcome.Damage)
	require.Equal(t, 100, defender.HP)
	// the miss still arms the cooldown
	require.Equal(t, 2, attacker.Moves[0].CooldownLeft)
}

func TestUseMoveRejections(t *testing.T) {
	tests := []struct {
		Name      string
		MoveIndex int
		Prepare   func(attacker *models.CombatantState)
		WantErr   error
	}{
		{
			Name:      "negative index",
			MoveIndex: -1,
			WantErr:   models.ErrUnknownMove,
		},
		{
			Name:      "index out of range",
			MoveIndex: 5,
			WantErr:   models.ErrUnknownMove,
		},
		{
			Name:      "move on cooldown",
			MoveIndex: 0,
			Prepare:   func(attacker *models.CombatantState) { attacker.Moves[0].CooldownLeft = 1 },
			WantErr:   models.ErrMoveOnCooldown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			resolver := deterministicResolver()
			attacker := newCombatant(t, "atk")
			defender := newCombatant(t, "def")
			if tt.Prepare != nil {
				tt.Prepare(attacker)
			}

			_, err := resolver.UseMove(attacker, defender, tt.MoveIndex)

			require.ErrorIs(t, err, tt.WantErr)
			// a rejected move leaves both combatants untouched
			require.Equal(t, 100, defender.HP)
		})
	}
}

func TestCooldownWindow(t *testing.T) {
	resolver := deterministicResolver()
	attacker := newCombatant(t, "atk", "charge", "tackle")
	defender := newCombatant(t, "def")

	_, err := resolver.UseMove(attacker, defender, 0)
	require.NoError(t, err)
	require.Equal(t, 2, attacker.Moves[0].CooldownLeft)

	// turn 1 complete: cooldown 2 -> 1, still unusable
	TickCooldowns(attacker)
	_, err = resolver.UseMove(attacker, defender, 0)
	require.ErrorIs(t, err, models.ErrMoveOnCooldown)

	// turn 2 complete: cooldown 1 -> 0, usable again
	TickCooldowns(attacker)
	_, err = resolver.UseMove(attacker, defender, 0)
	require.NoError(t, err)
}

func TestTickCooldownsFloorsAtZero(t *testing.T) {
	attacker := newCombatant(t, "atk")

	TickCooldowns(attacker)
	TickCooldowns(attacker)

	require.Equal(t, 0, attacker.Moves[0].CooldownLeft)
}

func TestCritMultiplierApplied(t *testing.T) {
	cfg := testsetup.DeterministicCombatConfig()
	cfg.BaseCritChance = 1.0 // every hit crits
	resolver := NewResolver(cfg, elements.DefaultTable(), rand.New(rand.NewSource(1)))
	attacker := newCombatant(t, "atk")
	defender := newCombatant(t, "def")

	outcome, err := resolver.UseMove(attacker, defender, 0)
	require.NoError(t, err)

	require.True(t, outcome.Crit)
	require.Equal(t, 60, outcome.Damage) // 40 * 1.5
}

func TestEffectivenessApplied(t *testing.T) {
	resolver := deterministicResolver()
	attacker := newCombatant(t, "atk")
	attacker.Moves[0].Def.Element = elements.Fire
	defender := newCombatant(t, "def")
	defender.Element = elements.Grass

	outcome, err := resolver.UseMove(attacker, defender, 0)
	require.NoError(t, err)

	require.Equal(t, 2.0, outcome.Effectiveness)
	require.Equal(t, 80, outcome.Damage)
}

func TestPickAIMove(t *testing.T) {
	tests := []struct {
		Name      string
		Cooldowns []int
		WantAny   []int
	}{
		{Name: "all ready picks any", Cooldowns: []int{0, 0}, WantAny: []int{0, 1}},
		{Name: "cooling move skipped", Cooldowns: []int{2, 0}, WantAny: []int{1}},
		{Name: "all cooling falls back to first", Cooldowns: []int{2, 1}, WantAny: []int{0}},
	}

	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			resolver := deterministicResolver()
			combatant := newCombatant(t, "ai", "charge", "tackle")
			for i, cd := range tt.Cooldowns {
				combatant.Moves[i].CooldownLeft = cd
			}

			got := resolver.PickAIMove(combatant)

			require.Contains(t, tt.WantAny, got)
		})
	}
}
