// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package models

import "fmt"

// ActionKind tags the battle action variant.
type ActionKind string

const (
	ActionAttack ActionKind = "attack"
	ActionFlee   ActionKind = "flee"
)

// Action is the validated battle action submitted by a participant.
// MoveIndex is only meaningful for ActionAttack.
type Action struct {
	Kind      ActionKind `json:"kind"`
	MoveIndex int        `json:"moveIndex"`
}

// Attack builds an attack action for the given move slot.
func Attack(moveIndex int) Action {
	return Action{Kind: ActionAttack, MoveIndex: moveIndex}
}

// Flee builds a forfeit action.
func Flee() Action {
	return Action{Kind: ActionFlee}
}

// Validate rejects malformed payloads at the boundary, before the state
// machine sees them.
func (a Action) Validate() error {
	switch a.Kind {
	case ActionAttack:
		if a.MoveIndex < 0 {
			return fmt.Errorf("%w: negative move index", ErrInvalidAction)
		}
		return nil
	case ActionFlee:
		return nil
	default:
		return fmt.Errorf("%w: unknown action kind %q", ErrInvalidAction, a.Kind)
	}
}
