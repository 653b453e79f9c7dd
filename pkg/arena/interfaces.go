// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package arena

import (
	"github.com/AccelByte/extend-battle-engine/pkg/playerdata"
	"github.com/AccelByte/extend-battle-engine/pkg/rating"
)

// CreatureSource reads persisted creature records. The battle core never
// writes through this interface; combat runs on copied snapshots.
type CreatureSource interface {
	GetCreatureByID(creature playerdata.CreatureID) (playerdata.CreatureRecord, error)
}

// RatingSource reads participant ratings: single reads at queue-join and
// payout time, the full listing for the leaderboard.
type RatingSource interface {
	GetParticipantRating(participant playerdata.ID) (int, error)
	ListRatings() ([]rating.Record, error)
}
