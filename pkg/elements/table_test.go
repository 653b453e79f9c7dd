// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package elements

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultTableMultiplier(t *testing.T) {
	tests := []struct {
		Name     string
		Attacker Type
		Defender Type
		Want     float64
	}{
		{Name: "fire strong against grass", Attacker: Fire, Defender: Grass, Want: 2.0},
		{Name: "fire weak against water", Attacker: Fire, Defender: Water, Want: 0.5},
		{Name: "same element resisted", Attacker: Water, Defender: Water, Want: 0.5},
		{Name: "unlisted pair defaults to 1", Attacker: Fire, Defender: Wind, Want: 1.0},
		{Name: "neutral attacker defaults to 1", Attacker: Neutral, Defender: Grass, Want: 1.0},
		{Name: "unknown element defaults to 1", Attacker: Type("shadow"), Defender: Fire, Want: 1.0},
	}

	table := DefaultTable()
	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			require.Equal(t, tt.Want, table.Multiplier(tt.Attacker, tt.Defender))
		})
	}
}

func TestTableFromJSON(t *testing.T) {
	table, err := TableFromJSON(`{"fire":{"grass":3.5},"water":{"fire":1.25}}`)
	require.NoError(t, err)

	// the parsed chart fully replaces the defaults
	require.Equal(t, 3.5, table.Multiplier(Fire, Grass))
	require.Equal(t, 1.25, table.Multiplier(Water, Fire))
	require.Equal(t, 1.0, table.Multiplier(Fire, Water))
}

func TestTableFromJSONRejectsMalformedInput(t *testing.T) {
	_, err := TableFromJSON(`{"fire":`)
	require.Error(t, err)
}

func TestNilTableDefaultsToNeutral(t *testing.T) {
	var table *Table
	require.Equal(t, 1.0, table.Multiplier(Fire, Grass))
}
