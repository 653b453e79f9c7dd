// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package combat

import "github.com/AccelByte/extend-battle-engine/pkg/models"

// PickAIMove selects the scripted opponent's move for wild battles: uniform
// among moves currently off cooldown, falling back to the first move when
// everything is cooling down.
func (r *Resolver) PickAIMove(c *models.CombatantState) int {
	ready := make([]int, 0, len(c.Moves))
	for i := range c.Moves {
		if c.Moves[i].CooldownLeft == 0 {
			ready = append(ready, i)
		}
	}
	if len(ready) == 0 {
		return 0
	}
	return ready[r.rng.Intn(len(ready))]
}
