package settlement

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/bosjol/tactical-ops/internal/dependencies/clock"
	"github.com/bosjol/tactical-ops/internal/model"
	"github.com/bosjol/tactical-ops/internal/storage"
)

// Service computes the XP awards and revenue entries owed when an event
// finishes. It only computes; the event controller owns the write order.
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a new settlement Service
func New(storage storage.Storage, clock clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
		logger:  logger,
	}
}

// PlayerOutcome is one attendee's settlement: their updated player record
// and the XP they earned from this event
type PlayerOutcome struct {
	Player   *model.Player `json:"player"`
	XpEarned int           `json:"xp_earned"`
}

// Result is everything a finished event owes: updated player records and
// the ledger entries to append
type Result struct {
	Outcomes     []PlayerOutcome      `json:"outcomes"`
	Transactions []*model.Transaction `json:"transactions"`
}

// EventRevenueTxnID returns the deterministic ledger ID for an attendee's
// game fee, so re-running settlement can never double-bill
func EventRevenueTxnID(eventID model.EventID, playerID model.PlayerID) string {
	return fmt.Sprintf("txn-rev-event-%s-%s", eventID, playerID)
}

// RentalRevenueTxnID returns the deterministic ledger ID for one rented item
func RentalRevenueTxnID(eventID model.EventID, playerID model.PlayerID, itemID model.ItemID) string {
	return fmt.Sprintf("txn-rev-rental-%s-%s-%s", eventID, playerID, itemID)
}

// Settle computes updated player records and revenue transactions for
// every attendee of the event. Absent players are untouched. Lifetime
// stat deltas come from the event's live stat lines; a missing stat line
// means zero kills, deaths, and headshots but still earns participation XP.
func (s *Service) Settle(ctx context.Context, event *model.Event) (*Result, error) {
	killXp, err := s.resolveXp(ctx, event, model.RuleKill)
	if err != nil {
		return nil, err
	}
	headshotXp, err := s.resolveXp(ctx, event, model.RuleHeadshot)
	if err != nil {
		return nil, err
	}
	deathXp, err := s.resolveXp(ctx, event, model.RuleDeath)
	if err != nil {
		return nil, err
	}
	baseXp, err := s.resolveBaseXp(ctx, event)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	result := &Result{}

	for _, att := range event.Attendees {
		player, err := s.storage.GetPlayer(ctx, att.PlayerID)
		if err != nil {
			return nil, err
		}

		var line model.StatLine
		if l, ok := event.LiveStats[att.PlayerID]; ok && l != nil {
			line = *l
		}

		earned := baseXp + line.Kills*killXp + line.Headshots*headshotXp + line.Deaths*deathXp

		player.Stats.Kills += line.Kills
		player.Stats.Deaths += line.Deaths
		player.Stats.Headshots += line.Headshots
		player.Stats.GamesPlayed++
		player.Stats.Xp += earned
		player.MatchHistory = append(player.MatchHistory, model.MatchRecord{
			EventID: event.ID,
			Stats:   line,
		})
		player.UpdatedAt = now

		result.Outcomes = append(result.Outcomes, PlayerOutcome{
			Player:   player,
			XpEarned: earned,
		})

		txns, err := s.revenueFor(ctx, event, &att, now)
		if err != nil {
			return nil, err
		}
		result.Transactions = append(result.Transactions, txns...)
	}

	s.logger.Info("event settled",
		slog.String("event_id", string(event.ID)),
		slog.Int("attendees", len(result.Outcomes)),
		slog.Int("transactions", len(result.Transactions)),
	)

	return result, nil
}

// revenueFor builds the ledger entries one attendee owes: the game fee
// net of any discount, plus one rental entry per rented item
func (s *Service) revenueFor(ctx context.Context, event *model.Event, att *model.Attendee, now time.Time) ([]*model.Transaction, error) {
	var txns []*model.Transaction

	net := event.GameFee - att.DiscountAmount
	if net > 0 {
		desc := fmt.Sprintf("Game fee: %s", event.Title)
		if att.DiscountAmount > 0 {
			desc = fmt.Sprintf("Game fee: %s (discount %d: %s)", event.Title, att.DiscountAmount, att.DiscountReason)
		}
		txns = append(txns, &model.Transaction{
			ID:              EventRevenueTxnID(event.ID, att.PlayerID),
			Date:            now,
			Type:            model.TransactionEventRevenue,
			Description:     desc,
			Amount:          net,
			RelatedEventID:  event.ID,
			RelatedPlayerID: att.PlayerID,
			PaymentStatus:   att.PaymentStatus,
		})
	}

	for _, itemID := range att.RentedGearIDs {
		item, err := s.storage.GetInventoryItem(ctx, itemID)
		if err != nil {
			return nil, err
		}
		txns = append(txns, &model.Transaction{
			ID:                 RentalRevenueTxnID(event.ID, att.PlayerID, itemID),
			Date:               now,
			Type:               model.TransactionRentalRevenue,
			Description:        fmt.Sprintf("Rental: %s (%s)", item.Name, event.Title),
			Amount:             item.SalePrice,
			RelatedEventID:     event.ID,
			RelatedPlayerID:    att.PlayerID,
			RelatedInventoryID: itemID,
			PaymentStatus:      att.PaymentStatus,
		})
	}

	return txns, nil
}

// resolveXp resolves a rule's XP value: event override first, then the
// stored rule, then the hardcoded fallback
func (s *Service) resolveXp(ctx context.Context, event *model.Event, ruleID model.RuleID) (int, error) {
	if xp, ok := event.XpOverrides[ruleID]; ok {
		return xp, nil
	}

	rule, err := s.storage.GetRule(ctx, ruleID)
	if err != nil {
		if errors.Is(err, model.ErrRuleNotFound) {
			return model.FallbackXp(ruleID), nil
		}
		return 0, err
	}
	return rule.Xp, nil
}

// resolveBaseXp resolves participation XP. The event's own
// ParticipationXp is set at creation and wins when non-zero.
func (s *Service) resolveBaseXp(ctx context.Context, event *model.Event) (int, error) {
	if event.ParticipationXp != 0 {
		return event.ParticipationXp, nil
	}
	return s.resolveXp(ctx, event, model.RuleBaseParticipation)
}

// Interface for dependency injection
type ServiceInterface interface {
	Settle(ctx context.Context, event *model.Event) (*Result, error)
}

var _ ServiceInterface = (*Service)(nil)
