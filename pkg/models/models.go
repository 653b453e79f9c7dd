// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

// Package models contains the in-memory battle, queue and outcome shapes owned
// by the battle core.
package models

import (
	"time"

	"github.com/mitchellh/copystructure"

	"github.com/AccelByte/extend-battle-engine/pkg/elements"
	"github.com/AccelByte/extend-battle-engine/pkg/playerdata"
)

// SessionKind distinguishes scripted encounters from ranked player matches.
type SessionKind string

const (
	KindWild   SessionKind = "wild"
	KindRanked SessionKind = "ranked"
)

// Side is one of the two slots of a session.
type Side string

const (
	SideHome Side = "home"
	SideAway Side = "away"
)

// Opposite returns the other side.
func (s Side) Opposite() Side {
	if s == SideHome {
		return SideAway
	}
	return SideHome
}

// TerminalReason records why a session reached a terminal state.
type TerminalReason string

const (
	ReasonDefeat     TerminalReason = "defeat"
	ReasonFled       TerminalReason = "fled"
	ReasonDisconnect TerminalReason = "disconnect"
	ReasonTimeout    TerminalReason = "timeout"
)

// MoveState tracks one move of a combatant together with its remaining
// cooldown counter.
type MoveState struct {
	Def          playerdata.MoveDef
	CooldownLeft int
}

// CombatantState is the in-battle snapshot of one creature. It is built from a
// deep copy of the persisted record so combat never mutates the source, and it
// is discarded when the session ends.
type CombatantState struct {
	CreatureID playerdata.CreatureID
	Name       string
	Element    elements.Type
	Level      int
	Stats      playerdata.Stats
	HP         int
	MaxHP      int
	Moves      []MoveState
	Statuses   []string
}

// Defeated reports whether this combatant is out of hit points.
func (c *CombatantState) Defeated() bool {
	return c.HP <= 0
}

// NewCombatantState snapshots a persisted creature record into a combat-ready
// state. The record is deep-copied first so shared slices are never aliased
// into a live battle.
func NewCombatantState(record playerdata.CreatureRecord) (*CombatantState, error) {
	copied, err := copystructure.Copy(record)
	if err != nil {
		return nil, err
	}
	rec := copied.(playerdata.CreatureRecord)

	moves := make([]MoveState, 0, len(rec.Moves))
	for _, def := range rec.Moves {
		moves = append(moves, MoveState{Def: def})
	}

	return &CombatantState{
		CreatureID: rec.ID,
		Name:       rec.Name,
		Element:    rec.Element,
		Level:      rec.Level,
		Stats:      rec.Stats,
		HP:         rec.MaxHP,
		MaxHP:      rec.MaxHP,
		Moves:      moves,
	}, nil
}

// SideState is one slot of a session: the owning participant (or the scripted
// AI marker for wild opponents) plus the combat snapshot it controls.
type SideState struct {
	OwnerID   playerdata.ID
	IsAI      bool
	Combatant *CombatantState
}

// Outcome is one participant's share of a terminal result, delivered to the
// player-record collaborator keyed by session id.
type Outcome struct {
	SessionID   string                `json:"sessionID"`
	CreatureID  playerdata.CreatureID `json:"creatureID"`
	Won         bool                  `json:"won"`
	Fled        bool                  `json:"fled"`
	Currency    int                   `json:"currency"`
	Experience  int                   `json:"experience"`
	RatingDelta int                   `json:"ratingDelta"`
}

// BattleResult is the write-once record attached to a session the moment it
// turns terminal.
type BattleResult struct {
	Winner   Side
	Reason   TerminalReason
	Outcomes map[playerdata.ID]Outcome
}

// BattleSession is the unit of combat state. Mutable only while non-terminal;
// once Terminal is set the result is write-once and the session is evicted
// from the active store after delivery.
type BattleSession struct {
	ID           string
	Kind         SessionKind
	Home         SideState
	Away         SideState
	Turn         Side
	TurnCount    int
	Terminal     bool
	Result       *BattleResult
	StartedAt    time.Time
	LastActionAt time.Time
}

// SideOf returns which side the participant occupies, or false when the
// participant is not part of this session.
func (s *BattleSession) SideOf(participant playerdata.ID) (Side, bool) {
	switch {
	case !s.Home.IsAI && s.Home.OwnerID == participant:
		return SideHome, true
	case !s.Away.IsAI && s.Away.OwnerID == participant:
		return SideAway, true
	}
	return "", false
}

// SideState returns the slot for the given side.
func (s *BattleSession) SideState(side Side) *SideState {
	if side == SideHome {
		return &s.Home
	}
	return &s.Away
}

// Participants lists the human owners of this session.
func (s *BattleSession) Participants() []playerdata.ID {
	ids := make([]playerdata.ID, 0, 2)
	if !s.Home.IsAI {
		ids = append(ids, s.Home.OwnerID)
	}
	if !s.Away.IsAI {
		ids = append(ids, s.Away.OwnerID)
	}
	return ids
}

// QueueEntry is one waiting ranked request.
type QueueEntry struct {
	ParticipantID playerdata.ID
	CreatureID    playerdata.CreatureID
	Rating        int
	EnqueuedAt    time.Time
}

// TerminationEvent is published exactly once per session when it reaches a
// terminal state. Consumers (clan war score, quest progress) subscribe without
// the core depending on them.
type TerminationEvent struct {
	SessionID string
	Kind      SessionKind
	Reason    TerminalReason
	WinnerID  playerdata.ID
	Outcomes  map[playerdata.ID]Outcome
}
