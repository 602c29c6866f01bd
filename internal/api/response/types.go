package response

import (
	"time"

	"github.com/bosjol/tactical-ops/internal/model"
	"github.com/bosjol/tactical-ops/internal/services/auth"
	"github.com/bosjol/tactical-ops/internal/services/availability"
	"github.com/bosjol/tactical-ops/internal/services/settlement"
)

// Operator represents an operator account in API responses.
// The password hash never leaves the server.
type Operator struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
}

// OperatorFromModel converts a model.Operator to a response Operator
func OperatorFromModel(op *model.Operator) Operator {
	return Operator{
		ID:          op.ID,
		Username:    op.Username,
		DisplayName: op.DisplayName,
	}
}

// AuthResponse is the response for authentication endpoints
type AuthResponse struct {
	Operator     Operator `json:"operator"`
	SessionToken string   `json:"session_token"`
}

// Rank represents a progression tier
type Rank struct {
	Name  string `json:"name"`
	Tier  string `json:"tier"`
	MinXp int    `json:"min_xp"`
}

// RankFromModel converts a model.Rank
func RankFromModel(r model.Rank) Rank {
	return Rank{
		Name:  r.Name,
		Tier:  r.Tier,
		MinXp: r.MinXp,
	}
}

// Player represents a roster member in API responses.
// Rank is derived from lifetime XP at read time.
type Player struct {
	ID           string              `json:"id"`
	Callsign     string              `json:"callsign"`
	Name         string              `json:"name"`
	Status       string              `json:"status"`
	Stats        model.PlayerStats   `json:"stats"`
	Rank         Rank                `json:"rank"`
	MatchHistory []model.MatchRecord `json:"match_history,omitempty"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

// PlayerFromModel converts a model.Player to a response Player
func PlayerFromModel(p *model.Player) Player {
	return Player{
		ID:           string(p.ID),
		Callsign:     p.Callsign,
		Name:         p.Name,
		Status:       string(p.Status),
		Stats:        p.Stats,
		Rank:         RankFromModel(model.ResolveRank(p.Stats.Xp)),
		MatchHistory: p.MatchHistory,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

// PlayersFromModel converts a slice of players
func PlayersFromModel(players []*model.Player) []Player {
	out := make([]Player, len(players))
	for i, p := range players {
		out[i] = PlayerFromModel(p)
	}
	return out
}

// LeaderboardEntry is one row of the XP leaderboard
type LeaderboardEntry struct {
	Position int    `json:"position"`
	Player   Player `json:"player"`
}

// LeaderboardFromModel converts an ordered player slice into ranked entries
func LeaderboardFromModel(players []*model.Player) []LeaderboardEntry {
	out := make([]LeaderboardEntry, len(players))
	for i, p := range players {
		out[i] = LeaderboardEntry{
			Position: i + 1,
			Player:   PlayerFromModel(p),
		}
	}
	return out
}

// Event represents an event in API responses. ElapsedSeconds is the
// total accrued game time including any currently running stretch.
type Event struct {
	*model.Event
	ElapsedSeconds int `json:"elapsed_seconds"`
}

// EventFromModel converts a model.Event, deriving the live clock reading
func EventFromModel(e *model.Event, now time.Time) Event {
	return Event{
		Event:          e,
		ElapsedSeconds: e.Elapsed(now),
	}
}

// EventsFromModel converts a slice of events
func EventsFromModel(events []*model.Event, now time.Time) []Event {
	out := make([]Event, len(events))
	for i, e := range events {
		out[i] = EventFromModel(e, now)
	}
	return out
}

// RedeemResponse is the response after redeeming a voucher
type RedeemResponse struct {
	Discount int `json:"discount"`
}

// AvailabilityResponse lists rental availability for an event
type AvailabilityResponse struct {
	EventID string                          `json:"event_id"`
	Items   []availability.ItemAvailability `json:"items"`
}

// SettlementOutcome is one player's result from a finished event
type SettlementOutcome struct {
	Player   Player `json:"player"`
	XpEarned int    `json:"xp_earned"`
}

// SettlementResponse is the response after finishing an event
type SettlementResponse struct {
	EventID      string               `json:"event_id"`
	Outcomes     []SettlementOutcome  `json:"outcomes"`
	Transactions []*model.Transaction `json:"transactions"`
}

// SettlementFromResult converts a settlement result
func SettlementFromResult(eventID model.EventID, result *settlement.Result) SettlementResponse {
	outcomes := make([]SettlementOutcome, len(result.Outcomes))
	for i, o := range result.Outcomes {
		outcomes[i] = SettlementOutcome{
			Player:   PlayerFromModel(o.Player),
			XpEarned: o.XpEarned,
		}
	}
	return SettlementResponse{
		EventID:      string(eventID),
		Outcomes:     outcomes,
		Transactions: result.Transactions,
	}
}

// AuthResponseFromSession creates an AuthResponse from a session
func AuthResponseFromSession(s *auth.Session) AuthResponse {
	return AuthResponse{
		Operator: Operator{
			ID:       s.OperatorID,
			Username: s.Username,
		},
		SessionToken: s.Token,
	}
}
