// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package constants

import "time"

const (
	// DefaultRating is assigned to participants with no ranked history yet.
	DefaultRating = 1000

	// MinRating is the floor a rating can be reduced to after a loss.
	MinRating = 0

	// AccuracyRollRange is the exclusive upper bound of the uniform accuracy roll.
	AccuracyRollRange = 100

	// MaxLeaderboardSize bounds the leaderboard regardless of configuration.
	MaxLeaderboardSize = 1000

	// SessionEvictTimeout bounds how long a terminal session may linger in the
	// store when result delivery never completes.
	SessionEvictTimeout = 5 * time.Minute
)
