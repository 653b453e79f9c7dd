// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package models

import "errors"

// Error taxonomy: conflicts violate the one-session/one-queue-slot invariant,
// not-found means stale client state, invalid-action never mutates a session.
var (
	ErrAlreadyInSession = errors.New("participant already has an active session")
	ErrAlreadyQueued    = errors.New("participant already waiting in the ranked queue")

	ErrSessionNotFound  = errors.New("no active session for participant")
	ErrCreatureNotFound = errors.New("creature record not found")
	ErrRatingNotFound   = errors.New("rating record not found")

	ErrInvalidAction  = errors.New("invalid battle action")
	ErrNotYourTurn    = errors.New("action submitted out of turn")
	ErrUnknownMove    = errors.New("unknown move index")
	ErrMoveOnCooldown = errors.New("move is on cooldown")
	ErrSessionOver    = errors.New("session already reached a terminal state")
)

// IsConflict reports whether err is one of the invariant-conflict kinds.
func IsConflict(err error) bool {
	return errors.Is(err, ErrAlreadyInSession) || errors.Is(err, ErrAlreadyQueued)
}

// IsNotFound reports whether err is one of the absent-state kinds.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrSessionNotFound) ||
		errors.Is(err, ErrCreatureNotFound) ||
		errors.Is(err, ErrRatingNotFound)
}

// IsInvalidAction reports whether err is a rejected-action kind.
func IsInvalidAction(err error) bool {
	return errors.Is(err, ErrInvalidAction) ||
		errors.Is(err, ErrNotYourTurn) ||
		errors.Is(err, ErrUnknownMove) ||
		errors.Is(err, ErrMoveOnCooldown) ||
		errors.Is(err, ErrSessionOver)
}

// RejectionLabel maps a rejected-action error onto a bounded label value for
// metric counters.
func RejectionLabel(err error) string {
	switch {
	case errors.Is(err, ErrNotYourTurn):
		return "not_your_turn"
	case errors.Is(err, ErrUnknownMove):
		return "unknown_move"
	case errors.Is(err, ErrMoveOnCooldown):
		return "move_on_cooldown"
	case errors.Is(err, ErrSessionOver):
		return "session_over"
	default:
		return "invalid_action"
	}
}
