// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

// Package playerdata holds the identity types and persisted creature shapes
// shared between the battle core and its external collaborators.
package playerdata

import "github.com/AccelByte/extend-battle-engine/pkg/elements"

// ID identifies a participant (an online player account).
type ID = string

// CreatureID identifies one persisted creature record.
type CreatureID = string

// Stats are the base stats of a creature. They never change during a battle;
// combat works on a copied snapshot.
type Stats struct {
	Power    int `json:"power"`
	Speed    int `json:"speed"`
	Vitality int `json:"vitality"`
	Luck     int `json:"luck"`
}

// MoveDef is one entry of the static move catalog attached to a creature.
type MoveDef struct {
	Name     string        `json:"name"`
	Element  elements.Type `json:"element"`
	Power    int           `json:"power"`
	Accuracy float64       `json:"accuracy"`
	Cooldown int           `json:"cooldown"`
}

// CreatureRecord is the persisted creature shape as the collaborator returns
// it. The battle core only ever reads it; in-battle mutation happens on a
// deep-copied CombatantState.
type CreatureRecord struct {
	ID      CreatureID    `json:"id"`
	OwnerID ID            `json:"ownerID"`
	Name    string        `json:"name"`
	Element elements.Type `json:"element"`
	Level   int           `json:"level"`
	MaxHP   int           `json:"maxHP"`
	Stats   Stats         `json:"stats"`
	Moves   []MoveDef     `json:"moves"`
}
