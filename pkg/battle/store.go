// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

// Package battle owns the in-progress battle state: the session store and the
// turn state machine driving it.
package battle

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	ulid "github.com/oklog/ulid/v2"

	"github.com/AccelByte/extend-battle-engine/pkg/models"
	"github.com/AccelByte/extend-battle-engine/pkg/playerdata"
)

// Now is overridable for tests.
var Now = time.Now

// Store holds every in-progress battle, indexed by session id and by
// participant id. The participant index is the single source of truth for
// "is this participant free to start a new battle"; it is updated in the same
// critical section as the session table so neither can be observed ahead of
// the other.
type Store struct {
	mu            sync.Mutex
	sessions      map[string]*models.BattleSession
	byParticipant map[playerdata.ID]string
	entropy       *rand.Rand
}

func NewStore() *Store {
	return &Store{
		sessions:      make(map[string]*models.BattleSession),
		byParticipant: make(map[playerdata.ID]string),
		entropy:       rand.New(rand.NewSource(Now().UnixNano())),
	}
}

// CreateSession registers a new session for the two sides. It fails with
// ErrAlreadyInSession when any human owner already has an active session, in
// which case nothing is registered.
func (s *Store) CreateSession(kind models.SessionKind, home, away models.SideState, startingSide models.Side) (*models.BattleSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, side := range []models.SideState{home, away} {
		if side.IsAI {
			continue
		}
		if id, ok := s.byParticipant[side.OwnerID]; ok {
			return nil, fmt.Errorf("%w: participant %s in session %s", models.ErrAlreadyInSession, side.OwnerID, id)
		}
	}

	now := Now()
	session := &models.BattleSession{
		ID:           ulid.MustNew(ulid.Timestamp(now), s.entropy).String(),
		Kind:         kind,
		Home:         home,
		Away:         away,
		Turn:         startingSide,
		StartedAt:    now,
		LastActionAt: now,
	}

	s.sessions[session.ID] = session
	for _, pid := range session.Participants() {
		s.byParticipant[pid] = session.ID
	}
	return session, nil
}

// GetSessionFor resolves the active session of a participant.
func (s *Store) GetSessionFor(participant playerdata.ID) (*models.BattleSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.byParticipant[participant]
	if !ok {
		return nil, fmt.Errorf("%w: participant %s", models.ErrSessionNotFound, participant)
	}
	return s.sessions[id], nil
}

// Get resolves a session by id.
func (s *Store) Get(sessionID string) (*models.BattleSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, fmt.Errorf("%w: session %s", models.ErrSessionNotFound, sessionID)
	}
	return session, nil
}

// HasActiveSession reports whether the participant currently owns a session.
func (s *Store) HasActiveSession(participant playerdata.ID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.byParticipant[participant]
	return ok
}

// EndSession removes the session and both participant index entries as one
// atomic step. Unknown ids are a no-op so result delivery can be retried.
func (s *Store) EndSession(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return
	}
	for _, pid := range session.Participants() {
		delete(s.byParticipant, pid)
	}
	delete(s.sessions, sessionID)
}

// ActiveCount returns the number of in-progress sessions.
func (s *Store) ActiveCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.sessions)
}

// Snapshot returns the current sessions for iteration off the lock. The
// returned slice is a fresh copy; session pointers remain shared and must only
// be mutated by the state machine.
func (s *Store) Snapshot() []*models.BattleSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*models.BattleSession, 0, len(s.sessions))
	for _, session := range s.sessions {
		out = append(out, session)
	}
	return out
}
