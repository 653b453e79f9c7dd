// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

// Package rewards turns a terminal battle into currency, experience and
// rating payouts pushed to the external player-record collaborators.
package rewards

import (
	"fmt"

	"gopkg.in/typ.v4/sync2"

	"github.com/AccelByte/extend-battle-engine/pkg/config"
	"github.com/AccelByte/extend-battle-engine/pkg/envelope"
	"github.com/AccelByte/extend-battle-engine/pkg/models"
	"github.com/AccelByte/extend-battle-engine/pkg/playerdata"
	"github.com/AccelByte/extend-battle-engine/pkg/rating"
)

// RatingSource reads participant ratings at payout time.
type RatingSource interface {
	GetParticipantRating(participant playerdata.ID) (int, error)
}

// OutcomeWriter is the single external interface all payout writes go
// through. Delivery is at-least-once; the collaborator dedupes by session id.
type OutcomeWriter interface {
	ApplyBattleOutcome(participant playerdata.ID, outcome models.Outcome) error
}

// CreatureRecorder records win/loss tallies on the creature record.
type CreatureRecorder interface {
	RecordBattleResultOnCreature(creature playerdata.CreatureID, won bool) error
}

// Distributor computes and delivers payouts for terminal sessions. The
// delivered ledger keeps a replayed terminal result from double-crediting
// within this process; the battle result itself is authoritative and is never
// rolled back on delivery failure.
type Distributor struct {
	cfg       *config.Config
	ratings   RatingSource
	writer    OutcomeWriter
	creatures CreatureRecorder

	delivered sync2.Map[string, struct{}]
}

func NewDistributor(cfg *config.Config, ratings RatingSource, writer OutcomeWriter, creatures CreatureRecorder) *Distributor {
	return &Distributor{cfg: cfg, ratings: ratings, writer: writer, creatures: creatures}
}

// Distribute computes each participant's outcome, attaches them to the
// session result and pushes them to the collaborators. Calling it again for
// the same session is a no-op unless the earlier delivery failed.
func (d *Distributor) Distribute(rootScope *envelope.Scope, session *models.BattleSession) error {
	scope := rootScope.NewChildScope("Distributor.Distribute")
	defer scope.Finish()

	if !session.Terminal || session.Result == nil {
		return fmt.Errorf("session %s is not terminal", session.ID)
	}
	if _, loaded := d.delivered.LoadOrStore(session.ID, struct{}{}); loaded {
		scope.Log.WithField("sessionID", session.ID).Debug("outcome already delivered, skipping")
		return nil
	}

	outcomes, err := d.computeOutcomes(session)
	if err != nil {
		d.delivered.Delete(session.ID)
		return err
	}
	session.Result.Outcomes = outcomes

	if err := d.deliver(scope, session, outcomes); err != nil {
		// keep the slot open so a retry can deliver; the battle result
		// itself stands
		d.delivered.Delete(session.ID)
		return err
	}
	return nil
}

func (d *Distributor) computeOutcomes(session *models.BattleSession) (map[playerdata.ID]models.Outcome, error) {
	result := session.Result
	outcomes := make(map[playerdata.ID]models.Outcome, 2)

	winnerGain, loserLoss := 0, 0
	if session.Kind == models.KindRanked {
		winnerState := session.SideState(result.Winner)
		loserState := session.SideState(result.Winner.Opposite())

		winnerRating, err := d.ratings.GetParticipantRating(winnerState.OwnerID)
		if err != nil {
			return nil, fmt.Errorf("read winner rating: %w", err)
		}
		loserRating, err := d.ratings.GetParticipantRating(loserState.OwnerID)
		if err != nil {
			return nil, fmt.Errorf("read loser rating: %w", err)
		}
		winnerGain, loserLoss = rating.EloDelta(winnerRating, loserRating, d.cfg.EloKFactor)

		// never let the clamped floor charge more than the loser has
		loserLoss = loserRating - rating.ApplyLoss(loserRating, loserLoss)
	}

	for _, side := range []models.Side{models.SideHome, models.SideAway} {
		state := session.SideState(side)
		if state.IsAI {
			continue
		}
		won := side == result.Winner
		fled := !won && result.Reason != models.ReasonDefeat

		opponent := session.SideState(side.Opposite()).Combatant
		outcome := models.Outcome{
			SessionID:  session.ID,
			CreatureID: state.Combatant.CreatureID,
			Won:        won,
			Fled:       fled,
		}

		switch {
		case won:
			outcome.Experience = d.cfg.XPBase * opponent.Level
			outcome.Currency = d.currencyForWin(session.Kind, opponent.Level, winnerGain)
			outcome.RatingDelta = winnerGain
		case fled:
			// forfeits earn nothing
			outcome.RatingDelta = -loserLoss
		default:
			outcome.Experience = d.cfg.XPBase * opponent.Level / 2
			outcome.RatingDelta = -loserLoss
		}
		if session.Kind != models.KindRanked {
			outcome.RatingDelta = 0
		}

		outcomes[state.OwnerID] = outcome
	}
	return outcomes, nil
}

func (d *Distributor) currencyForWin(kind models.SessionKind, opponentLevel, ratingGain int) int {
	if kind == models.KindRanked {
		return d.cfg.RankedCurrencyBase + ratingGain*d.cfg.RankedCurrencyPerPoint
	}
	return d.cfg.WildCurrencyBase * opponentLevel
}

func (d *Distributor) deliver(scope *envelope.Scope, session *models.BattleSession, outcomes map[playerdata.ID]models.Outcome) error {
	for participant, outcome := range outcomes {
		if err := d.writer.ApplyBattleOutcome(participant, outcome); err != nil {
			scope.Log.WithError(err).
				WithField("sessionID", session.ID).
				WithField("participantID", participant).
				Error("battle outcome delivery failed")
			return fmt.Errorf("apply battle outcome for %s: %w", participant, err)
		}
		if err := d.creatures.RecordBattleResultOnCreature(outcome.CreatureID, outcome.Won); err != nil {
			// tally write is best effort; the outcome write already landed
			scope.Log.WithError(err).
				WithField("creatureID", outcome.CreatureID).
				Warn("creature battle record write failed")
		}
	}
	return nil
}
