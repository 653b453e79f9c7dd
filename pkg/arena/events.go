// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package arena

import (
	"github.com/AccelByte/extend-battle-engine/pkg/models"
	"github.com/AccelByte/extend-battle-engine/pkg/playerdata"
)

// SubscribeResults registers a callback fired exactly once per session when
// it reaches a terminal state. Clan-war score or quest-progress trackers hook
// in here without the core depending on them. Callbacks run on the resolving
// goroutine and must return quickly.
func (a *Arena) SubscribeResults(fn func(models.TerminationEvent)) {
	a.subscribers = append(a.subscribers, fn)
}

func (a *Arena) publish(session *models.BattleSession) {
	result := session.Result

	var winnerID playerdata.ID
	if winner := session.SideState(result.Winner); winner != nil && !winner.IsAI {
		winnerID = winner.OwnerID
	}

	event := models.TerminationEvent{
		SessionID: session.ID,
		Kind:      session.Kind,
		Reason:    result.Reason,
		WinnerID:  winnerID,
		Outcomes:  result.Outcomes,
	}
	for _, fn := range a.subscribers {
		fn(event)
	}
}
