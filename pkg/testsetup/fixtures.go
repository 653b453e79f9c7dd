// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package testsetup

import (
	"github.com/AccelByte/extend-battle-engine/pkg/config"
	"github.com/AccelByte/extend-battle-engine/pkg/elements"
	"github.com/AccelByte/extend-battle-engine/pkg/playerdata"
)

// BaselineConfig returns the default configuration values without touching
// the process environment.
func BaselineConfig() *config.Config {
	return &config.Config{
		AccuracySpeedScale:     0.1,
		BaseCritChance:         0.05,
		LuckCritScale:          0.002,
		CritMultiplier:         1.5,
		VarianceMin:            0.85,
		VarianceMax:            1.15,
		PairableRatingGap:      25,
		WaitWideningPerSecond:  2,
		QueueTickSecond:        3,
		EloKFactor:             32,
		LeaderboardSize:        100,
		WildCurrencyBase:       10,
		RankedCurrencyBase:     50,
		RankedCurrencyPerPoint: 2,
		XPBase:                 25,
	}
}

// DeterministicCombatConfig pins every combat roll: guaranteed hits, no
// crits, variance locked to 1.0.
func DeterministicCombatConfig() *config.Config {
	cfg := BaselineConfig()
	cfg.AccuracySpeedScale = 10 // speed 10 -> +100 accuracy, every move hits
	cfg.BaseCritChance = 0
	cfg.LuckCritScale = 0
	cfg.VarianceMin = 1.0
	cfg.VarianceMax = 1.0
	return cfg
}

// Creature builds a creature record with the reference stat line used across
// the battle tests: power 50, level 10 and vitality 100 make the damage
// formula collapse to the raw move power.
func Creature(id playerdata.CreatureID, owner playerdata.ID, moves ...playerdata.MoveDef) playerdata.CreatureRecord {
	if len(moves) == 0 {
		moves = []playerdata.MoveDef{TackleMove()}
	}
	return playerdata.CreatureRecord{
		ID:      id,
		OwnerID: owner,
		Name:    "testling-" + string(id),
		Element: elements.Neutral,
		Level:   10,
		MaxHP:   100,
		Stats:   playerdata.Stats{Power: 50, Speed: 10, Vitality: 100, Luck: 0},
		Moves:   moves,
	}
}

// TackleMove is a plain no-cooldown move with power 40: with the reference
// stat line it deals exactly 40 damage.
func TackleMove() playerdata.MoveDef {
	return playerdata.MoveDef{Name: "tackle", Element: elements.Neutral, Power: 40, Accuracy: 100, Cooldown: 0}
}

// ChargeMove is a power 60 move with a two-turn cooldown.
func ChargeMove() playerdata.MoveDef {
	return playerdata.MoveDef{Name: "charge", Element: elements.Neutral, Power: 60, Accuracy: 100, Cooldown: 2}
}
