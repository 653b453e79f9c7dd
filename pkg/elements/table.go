// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

// Package elements provides the static elemental effectiveness lookup used by
// damage resolution.
package elements

import (
	"encoding/json"
	"fmt"
)

// Type is an elemental type attached to creatures and moves.
type Type string

const (
	Neutral Type = "neutral"
	Fire    Type = "fire"
	Water   Type = "water"
	Grass   Type = "grass"
	Rock    Type = "rock"
	Wind    Type = "wind"
)

// Table maps attacking element -> defending element -> damage multiplier.
// Pairs absent from the table resolve to 1.0.
type Table struct {
	multipliers map[Type]map[Type]float64
}

// DefaultTable returns the built-in effectiveness chart.
func DefaultTable() *Table {
	return &Table{multipliers: map[Type]map[Type]float64{
		Fire:  {Grass: 2.0, Water: 0.5, Rock: 0.5, Fire: 0.5},
		Water: {Fire: 2.0, Rock: 2.0, Grass: 0.5, Water: 0.5},
		Grass: {Water: 2.0, Rock: 2.0, Fire: 0.5, Wind: 0.5, Grass: 0.5},
		Rock:  {Wind: 2.0, Fire: 2.0, Water: 0.5, Grass: 0.5},
		Wind:  {Grass: 2.0, Rock: 0.5, Wind: 0.5},
	}}
}

// TableFromJSON parses an effectiveness chart from its JSON form:
// {"fire":{"grass":2.0}}. The parsed chart fully replaces the defaults.
func TableFromJSON(raw string) (*Table, error) {
	multipliers := map[Type]map[Type]float64{}
	if err := json.Unmarshal([]byte(raw), &multipliers); err != nil {
		return nil, fmt.Errorf("parse effectiveness table: %w", err)
	}
	return &Table{multipliers: multipliers}, nil
}

// Multiplier returns the damage multiplier for attacker element vs defender
// element, defaulting to 1.0 when the pair is not listed.
func (t *Table) Multiplier(attacker, defender Type) float64 {
	if t == nil {
		return 1.0
	}
	row, ok := t.multipliers[attacker]
	if !ok {
		return 1.0
	}
	m, ok := row[defender]
	if !ok {
		return 1.0
	}
	return m
}
