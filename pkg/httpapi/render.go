// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/AccelByte/extend-battle-engine/pkg/envelope"
	"github.com/AccelByte/extend-battle-engine/pkg/models"
	"github.com/AccelByte/extend-battle-engine/pkg/playerdata"
)

// SessionSnapshot is the wire form of a battle session.
type SessionSnapshot struct {
	ID        string             `json:"id"`
	Kind      models.SessionKind `json:"kind"`
	Turn      models.Side        `json:"turn,omitempty"`
	TurnCount int                `json:"turnCount"`
	Terminal  bool               `json:"terminal"`
	Home      CombatantSnapshot  `json:"home"`
	Away      CombatantSnapshot  `json:"away"`
	Result    *ResultSnapshot    `json:"result,omitempty"`
}

type CombatantSnapshot struct {
	OwnerID    playerdata.ID         `json:"ownerID,omitempty"`
	IsAI       bool                  `json:"isAI,omitempty"`
	CreatureID playerdata.CreatureID `json:"creatureID"`
	Name       string                `json:"name"`
	Level      int                   `json:"level"`
	HP         int                   `json:"hp"`
	MaxHP      int                   `json:"maxHP"`
	Cooldowns  []int                 `json:"cooldowns"`
}

type ResultSnapshot struct {
	Winner   models.Side                      `json:"winner"`
	Reason   models.TerminalReason            `json:"reason"`
	Outcomes map[playerdata.ID]models.Outcome `json:"outcomes"`
}

func sessionSnapshot(session *models.BattleSession) SessionSnapshot {
	if session == nil {
		return SessionSnapshot{}
	}
	snapshot := SessionSnapshot{
		ID:        session.ID,
		Kind:      session.Kind,
		Turn:      session.Turn,
		TurnCount: session.TurnCount,
		Terminal:  session.Terminal,
		Home:      combatantSnapshot(session.Home),
		Away:      combatantSnapshot(session.Away),
	}
	if session.Result != nil {
		snapshot.Result = &ResultSnapshot{
			Winner:   session.Result.Winner,
			Reason:   session.Result.Reason,
			Outcomes: session.Result.Outcomes,
		}
	}
	return snapshot
}

func combatantSnapshot(side models.SideState) CombatantSnapshot {
	c := side.Combatant
	cooldowns := make([]int, len(c.Moves))
	for i, move := range c.Moves {
		cooldowns[i] = move.CooldownLeft
	}
	return CombatantSnapshot{
		OwnerID:    side.OwnerID,
		IsAI:       side.IsAI,
		CreatureID: c.CreatureID,
		Name:       c.Name,
		Level:      c.Level,
		HP:         c.HP,
		MaxHP:      c.MaxHP,
		Cooldowns:  cooldowns,
	}
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, scope *envelope.Scope, err error) {
	status := http.StatusInternalServerError
	switch {
	case models.IsConflict(err):
		status = http.StatusConflict
	case models.IsNotFound(err):
		status = http.StatusNotFound
	case models.IsInvalidAction(err):
		status = http.StatusUnprocessableEntity
	}

	if status == http.StatusInternalServerError {
		scope.Log.WithError(err).Error("request failed")
	} else {
		scope.Log.WithError(err).Debug("request rejected")
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
