// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/AccelByte/extend-battle-engine/pkg/arena"
	"github.com/AccelByte/extend-battle-engine/pkg/envelope"
	"github.com/AccelByte/extend-battle-engine/pkg/models"
	"github.com/AccelByte/extend-battle-engine/pkg/playerdata"
)

type handlers struct {
	arena *arena.Arena
}

type startWildBattleRequest struct {
	ParticipantID      playerdata.ID         `json:"participantID"`
	CreatureID         playerdata.CreatureID `json:"creatureID"`
	OpponentTemplateID playerdata.CreatureID `json:"opponentTemplateID"`
	OpponentLevel      int                   `json:"opponentLevel"`
}

func (h *handlers) startWildBattle(w http.ResponseWriter, r *http.Request) {
	scope := envelope.ChildScopeFromRemoteScope(r.Context(), "httpapi.startWildBattle")
	defer scope.Finish()

	var req startWildBattleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, scope, models.ErrInvalidAction)
		return
	}

	session, err := h.arena.StartWildBattle(scope, req.ParticipantID, req.CreatureID, req.OpponentTemplateID, req.OpponentLevel)
	if err != nil {
		writeError(w, scope, err)
		return
	}
	writeJSON(w, http.StatusCreated, sessionSnapshot(session))
}

type submitBattleActionRequest struct {
	ParticipantID playerdata.ID `json:"participantID"`
	Action        models.Action `json:"action"`
}

func (h *handlers) submitBattleAction(w http.ResponseWriter, r *http.Request) {
	scope := envelope.ChildScopeFromRemoteScope(r.Context(), "httpapi.submitBattleAction")
	defer scope.Finish()

	var req submitBattleActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, scope, models.ErrInvalidAction)
		return
	}

	session, err := h.arena.SubmitBattleAction(scope, req.ParticipantID, req.Action)
	if err != nil {
		writeError(w, scope, err)
		return
	}
	writeJSON(w, http.StatusOK, sessionSnapshot(session))
}

type queueRequest struct {
	ParticipantID playerdata.ID         `json:"participantID"`
	CreatureID    playerdata.CreatureID `json:"creatureID"`
}

func (h *handlers) joinRankedQueue(w http.ResponseWriter, r *http.Request) {
	scope := envelope.ChildScopeFromRemoteScope(r.Context(), "httpapi.joinRankedQueue")
	defer scope.Finish()

	var req queueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, scope, models.ErrInvalidAction)
		return
	}

	if err := h.arena.JoinRankedQueue(scope, req.ParticipantID, req.CreatureID); err != nil {
		writeError(w, scope, err)
		return
	}
	writeJSON(w, http.StatusAccepted, map[string]string{"status": "queued"})
}

func (h *handlers) leaveRankedQueue(w http.ResponseWriter, r *http.Request) {
	scope := envelope.ChildScopeFromRemoteScope(r.Context(), "httpapi.leaveRankedQueue")
	defer scope.Finish()

	var req queueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, scope, models.ErrInvalidAction)
		return
	}

	h.arena.LeaveRankedQueue(scope, req.ParticipantID)
	writeJSON(w, http.StatusOK, map[string]string{"status": "left"})
}

func (h *handlers) disconnect(w http.ResponseWriter, r *http.Request) {
	scope := envelope.ChildScopeFromRemoteScope(r.Context(), "httpapi.disconnect")
	defer scope.Finish()

	var req queueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, scope, models.ErrInvalidAction)
		return
	}

	h.arena.Disconnect(scope, req.ParticipantID)
	writeJSON(w, http.StatusOK, map[string]string{"status": "disconnected"})
}

func (h *handlers) getLeaderboard(w http.ResponseWriter, r *http.Request) {
	scope := envelope.ChildScopeFromRemoteScope(r.Context(), "httpapi.getLeaderboard")
	defer scope.Finish()

	records, err := h.arena.GetLeaderboard(scope)
	if err != nil {
		writeError(w, scope, err)
		return
	}
	writeJSON(w, http.StatusOK, records)
}
