// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

// Package rating computes post-match rating deltas and leaderboard views.
// Everything here is pure, so it is thread-safe by construction.
package rating

import (
	"math"

	"github.com/AccelByte/extend-battle-engine/pkg/constants"
	"github.com/AccelByte/extend-battle-engine/pkg/mathutil"
)

// ExpectedScore is the standard logistic expectation of the winner beating
// the loser.
func ExpectedScore(winnerRating, loserRating int) float64 {
	return 1.0 / (1.0 + math.Pow(10, float64(loserRating-winnerRating)/400.0))
}

// EloDelta returns the winner's gain and the loser's loss for one resolved
// ranked match. Both values are non-negative.
func EloDelta(winnerRating, loserRating, kFactor int) (winnerGain, loserLoss int) {
	expected := ExpectedScore(winnerRating, loserRating)
	winnerGain = int(math.Floor(float64(kFactor) * (1 - expected)))
	loserLoss = int(math.Floor(float64(kFactor) * expected))
	return winnerGain, loserLoss
}

// ApplyLoss subtracts the loss and clamps the resulting rating at the floor.
func ApplyLoss(rating, loss int) int {
	return mathutil.Max(constants.MinRating, rating-loss)
}
