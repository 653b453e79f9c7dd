// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package rating

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExpectedScore(t *testing.T) {
	tests := []struct {
		Name     string
		Winner   int
		Loser    int
		Expected float64
	}{
		{Name: "equal ratings", Winner: 1000, Loser: 1000, Expected: 0.5},
		{Name: "favourite wins", Winner: 1400, Loser: 1000, Expected: 0.909},
		{Name: "underdog wins", Winner: 1000, Loser: 1400, Expected: 0.0909},
	}
	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			require.InDelta(t, tt.Expected, ExpectedScore(tt.Winner, tt.Loser), 0.001)
		})
	}
}

func TestEloDelta(t *testing.T) {
	tests := []struct {
		Name         string
		Winner       int
		Loser        int
		K            int
		ExpectedGain int
		ExpectedLoss int
	}{
		{Name: "equal ratings split the k factor", Winner: 1000, Loser: 1000, K: 32, ExpectedGain: 16, ExpectedLoss: 16},
		{Name: "upset pays out almost the full k", Winner: 1000, Loser: 1400, K: 32, ExpectedGain: 29, ExpectedLoss: 2},
		{Name: "expected win pays little", Winner: 1400, Loser: 1000, K: 32, ExpectedGain: 2, ExpectedLoss: 29},
	}
	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			gain, loss := EloDelta(tt.Winner, tt.Loser, tt.K)

			require.Equal(t, tt.ExpectedGain, gain)
			require.Equal(t, tt.ExpectedLoss, loss)
			require.GreaterOrEqual(t, gain, 0)
			require.GreaterOrEqual(t, loss, 0)
		})
	}
}

func TestApplyLossClampsAtFloor(t *testing.T) {
	require.Equal(t, 984, ApplyLoss(1000, 16))
	require.Equal(t, 0, ApplyLoss(10, 16))
	require.Equal(t, 0, ApplyLoss(0, 32))
}

func TestBuildLeaderboard(t *testing.T) {
	records := []Record{
		{ParticipantID: "c", Rating: 1200},
		{ParticipantID: "a", Rating: 1500},
		{ParticipantID: "b", Rating: 1200},
		{ParticipantID: "d", Rating: 900},
	}

	tests := []struct {
		Name     string
		Limit    int
		Expected []Record
	}{
		{
			Name:  "orders by rating with stable ties",
			Limit: 10,
			Expected: []Record{
				{ParticipantID: "a", Rating: 1500},
				{ParticipantID: "b", Rating: 1200},
				{ParticipantID: "c", Rating: 1200},
				{ParticipantID: "d", Rating: 900},
			},
		},
		{
			Name:  "truncates to the limit",
			Limit: 2,
			Expected: []Record{
				{ParticipantID: "a", Rating: 1500},
				{ParticipantID: "b", Rating: 1200},
			},
		},
		{
			Name:     "non-positive limit yields an empty board",
			Limit:    0,
			Expected: []Record{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			require.Equal(t, tt.Expected, BuildLeaderboard(records, tt.Limit))
		})
	}
}

func TestBuildLeaderboardDoesNotMutateInput(t *testing.T) {
	records := []Record{
		{ParticipantID: "b", Rating: 900},
		{ParticipantID: "a", Rating: 1500},
	}

	_ = BuildLeaderboard(records, 10)

	require.Equal(t, "b", string(records[0].ParticipantID))
}
