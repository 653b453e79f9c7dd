// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package rating

import (
	pie "github.com/elliotchance/pie/v2"

	"github.com/AccelByte/extend-battle-engine/pkg/constants"
	"github.com/AccelByte/extend-battle-engine/pkg/mathutil"
	"github.com/AccelByte/extend-battle-engine/pkg/playerdata"
)

// Record is one participant's rating as read from the external collaborator.
type Record struct {
	ParticipantID playerdata.ID `json:"participantID"`
	Rating        int           `json:"rating"`
}

// BuildLeaderboard sorts records by rating descending and bounds the result.
// Ties keep a stable participant-id order so repeated reads agree.
func BuildLeaderboard(records []Record, limit int) []Record {
	if limit <= 0 {
		return []Record{}
	}
	limit = mathutil.Min(limit, constants.MaxLeaderboardSize)

	sorted := pie.SortUsing(records, func(a, b Record) bool {
		if a.Rating != b.Rating {
			return a.Rating > b.Rating
		}
		return a.ParticipantID < b.ParticipantID
	})

	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}
