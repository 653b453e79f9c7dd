// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

// Package memstore provides in-memory implementations of the external
// collaborator interfaces: a creature catalog and a participant record store.
// The server binary uses them for local runs; real deployments replace them
// with platform-backed implementations.
package memstore

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/AccelByte/extend-battle-engine/pkg/constants"
	"github.com/AccelByte/extend-battle-engine/pkg/models"
	"github.com/AccelByte/extend-battle-engine/pkg/playerdata"
	"github.com/AccelByte/extend-battle-engine/pkg/rating"
)

// Catalog is an in-memory creature catalog.
type Catalog struct {
	mu      sync.RWMutex
	records map[playerdata.CreatureID]playerdata.CreatureRecord
}

func NewCatalog() *Catalog {
	return &Catalog{records: make(map[playerdata.CreatureID]playerdata.CreatureRecord)}
}

// CatalogFromJSON seeds a catalog from its JSON form: an array of creature
// records.
func CatalogFromJSON(raw string) (*Catalog, error) {
	var records []playerdata.CreatureRecord
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		return nil, fmt.Errorf("parse creature catalog: %w", err)
	}
	c := NewCatalog()
	for _, record := range records {
		c.Put(record)
	}
	return c, nil
}

func (c *Catalog) Put(record playerdata.CreatureRecord) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.records[record.ID] = record
}

func (c *Catalog) GetCreatureByID(creature playerdata.CreatureID) (playerdata.CreatureRecord, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	record, ok := c.records[creature]
	if !ok {
		return playerdata.CreatureRecord{}, fmt.Errorf("%w: %s", models.ErrCreatureNotFound, creature)
	}
	return record, nil
}

// Records is the participant record store: ratings, applied outcomes and
// creature win/loss tallies. Outcome application is idempotent by session id,
// matching the delivery contract.
type Records struct {
	mu       sync.Mutex
	ratings  map[playerdata.ID]int
	applied  map[string]map[playerdata.ID]bool
	outcomes map[playerdata.ID][]models.Outcome
	tallies  map[playerdata.CreatureID][2]int // wins, losses
}

func NewRecords() *Records {
	return &Records{
		ratings:  make(map[playerdata.ID]int),
		applied:  make(map[string]map[playerdata.ID]bool),
		outcomes: make(map[playerdata.ID][]models.Outcome),
		tallies:  make(map[playerdata.CreatureID][2]int),
	}
}

// SetRating seeds or overrides a participant rating.
func (r *Records) SetRating(participant playerdata.ID, value int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ratings[participant] = value
}

// GetParticipantRating returns the stored rating, defaulting unknown
// participants so first-time players can queue.
func (r *Records) GetParticipantRating(participant playerdata.ID) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	value, ok := r.ratings[participant]
	if !ok {
		return constants.DefaultRating, nil
	}
	return value, nil
}

func (r *Records) ListRatings() ([]rating.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	records := make([]rating.Record, 0, len(r.ratings))
	for participant, value := range r.ratings {
		records = append(records, rating.Record{ParticipantID: participant, Rating: value})
	}
	return records, nil
}

// ApplyBattleOutcome credits currency/XP and applies the rating delta.
// Duplicate deliveries for the same session are dropped.
func (r *Records) ApplyBattleOutcome(participant playerdata.ID, outcome models.Outcome) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.applied[outcome.SessionID] == nil {
		r.applied[outcome.SessionID] = make(map[playerdata.ID]bool)
	}
	if r.applied[outcome.SessionID][participant] {
		return nil
	}
	r.applied[outcome.SessionID][participant] = true

	r.outcomes[participant] = append(r.outcomes[participant], outcome)

	current, ok := r.ratings[participant]
	if !ok {
		current = constants.DefaultRating
	}
	updated := current + outcome.RatingDelta
	if updated < constants.MinRating {
		updated = constants.MinRating
	}
	r.ratings[participant] = updated
	return nil
}

func (r *Records) RecordBattleResultOnCreature(creature playerdata.CreatureID, won bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tally := r.tallies[creature]
	if won {
		tally[0]++
	} else {
		tally[1]++
	}
	r.tallies[creature] = tally
	return nil
}

// OutcomesFor returns the outcomes delivered for a participant.
func (r *Records) OutcomesFor(participant playerdata.ID) []models.Outcome {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.Outcome, len(r.outcomes[participant]))
	copy(out, r.outcomes[participant])
	return out
}

// TallyFor returns the win/loss tally recorded on a creature.
func (r *Records) TallyFor(creature playerdata.CreatureID) (wins, losses int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	tally := r.tallies[creature]
	return tally[0], tally[1]
}
