// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

// Package combat holds the pure combat resolution functions: accuracy, damage,
// critical hits and cooldown bookkeeping for a single move use. The resolver
// mutates only the CombatantState values it is handed, which keeps it safe to
// run off the store's critical path.
package combat

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/AccelByte/extend-battle-engine/pkg/config"
	"github.com/AccelByte/extend-battle-engine/pkg/constants"
	"github.com/AccelByte/extend-battle-engine/pkg/elements"
	"github.com/AccelByte/extend-battle-engine/pkg/mathutil"
	"github.com/AccelByte/extend-battle-engine/pkg/models"
	"github.com/AccelByte/extend-battle-engine/pkg/playerdata"
)

// MoveOutcome describes the resolution of one move use.
type MoveOutcome struct {
	MoveName         string
	Missed           bool
	Crit             bool
	Effectiveness    float64
	Damage           int
	DefenderHP       int
	DefenderDefeated bool
}

// Resolver computes combat outcomes. Stateless apart from the injected random
// source, so a single instance may serve every session.
type Resolver struct {
	cfg   *config.Config
	table *elements.Table
	rng   *rand.Rand
}

func NewResolver(cfg *config.Config, table *elements.Table, rng *rand.Rand) *Resolver {
	if table == nil {
		table = elements.DefaultTable()
	}
	return &Resolver{cfg: cfg, table: table, rng: rng}
}

// UseMove validates the move slot and cooldown, rolls accuracy, computes and
// applies damage to the defender, and arms the move's cooldown. A rejected
// move leaves both combatants untouched.
func (r *Resolver) UseMove(attacker, defender *models.CombatantState, moveIndex int) (MoveOutcome, error) {
	if moveIndex < 0 || moveIndex >= len(attacker.Moves) {
		return MoveOutcome{}, fmt.Errorf("%w: index %d of %d moves", models.ErrUnknownMove, moveIndex, len(attacker.Moves))
	}

	move := &attacker.Moves[moveIndex]
	if move.CooldownLeft > 0 {
		return MoveOutcome{}, fmt.Errorf("%w: %s ready in %d turns", models.ErrMoveOnCooldown, move.Def.Name, move.CooldownLeft)
	}

	move.CooldownLeft = move.Def.Cooldown

	outcome := MoveOutcome{MoveName: move.Def.Name, Effectiveness: 1.0, DefenderHP: defender.HP}
	if !r.rollAccuracy(attacker, move.Def) {
		// a miss consumes the turn and applies no damage
		outcome.Missed = true
		return outcome, nil
	}

	crit := r.rollCrit(attacker)
	effectiveness := r.table.Multiplier(move.Def.Element, defender.Element)
	damage := r.computeDamage(attacker, defender, move.Def, effectiveness, crit)

	defender.HP = mathutil.Max(0, defender.HP-damage)

	outcome.Crit = crit
	outcome.Effectiveness = effectiveness
	outcome.Damage = damage
	outcome.DefenderHP = defender.HP
	outcome.DefenderDefeated = defender.Defeated()
	return outcome, nil
}

// TickCooldowns decrements every nonzero cooldown by one, floored at zero.
// Called once per completed turn for each combatant.
func TickCooldowns(c *models.CombatantState) {
	for i := range c.Moves {
		if c.Moves[i].CooldownLeft > 0 {
			c.Moves[i].CooldownLeft--
		}
	}
}

func (r *Resolver) rollAccuracy(attacker *models.CombatantState, move playerdata.MoveDef) bool {
	roll := r.rng.Float64() * constants.AccuracyRollRange
	bonus := float64(attacker.Stats.Speed) * r.cfg.AccuracySpeedScale
	return roll < move.Accuracy+bonus
}

func (r *Resolver) rollCrit(attacker *models.CombatantState) bool {
	chance := r.cfg.BaseCritChance + float64(attacker.Stats.Luck)*r.cfg.LuckCritScale
	if chance <= 0 {
		return false
	}
	return r.rng.Float64() < chance
}

func (r *Resolver) computeDamage(attacker, defender *models.CombatantState, move playerdata.MoveDef, effectiveness float64, crit bool) int {
	vitality := mathutil.Max(1, defender.Stats.Vitality)

	damage := float64(move.Power)
	damage *= float64(attacker.Stats.Power) / 50.0
	damage *= float64(attacker.Level) / 10.0
	damage /= float64(vitality) / 100.0
	damage *= effectiveness
	if crit {
		damage *= r.cfg.CritMultiplier
	}
	damage *= r.variance()

	return mathutil.Max(0, int(math.Floor(damage)))
}

func (r *Resolver) variance() float64 {
	lo, hi := r.cfg.VarianceMin, r.cfg.VarianceMax
	if hi <= lo {
		return lo
	}
	return lo + r.rng.Float64()*(hi-lo)
}
