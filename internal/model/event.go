package model

import "time"

// EventID uniquely identifies a scheduled event
type EventID string

// EventStatus represents the current phase of an event's lifecycle
type EventStatus string

const (
	EventStatusUpcoming   EventStatus = "upcoming"    // Taking signups and admissions
	EventStatusInProgress EventStatus = "in_progress" // Live play, stat tracking active
	EventStatusCompleted  EventStatus = "completed"   // Settled; immutable
	EventStatusCancelled  EventStatus = "cancelled"   // Called off before start
)

// PaymentStatus records how an attendee's fee was collected
type PaymentStatus string

const (
	PaidCard PaymentStatus = "paid_card"
	PaidCash PaymentStatus = "paid_cash"
	Unpaid   PaymentStatus = "unpaid"
)

// Attendee is a player whose registration has been confirmed at the desk.
// Created once at admission and read-only afterwards.
type Attendee struct {
	PlayerID       PlayerID      `json:"player_id"`
	PaymentStatus  PaymentStatus `json:"payment_status"`
	VoucherCode    string        `json:"voucher_code,omitempty"`
	RentedGearIDs  []ItemID      `json:"rented_gear_ids,omitempty"`
	Note           string        `json:"note,omitempty"`
	DiscountAmount int           `json:"discount_amount,omitempty"`
	DiscountReason string        `json:"discount_reason,omitempty"`
}

// RentalSignup is a pending, unconfirmed gear request made by a
// signed-up player at self-registration time
type RentalSignup struct {
	PlayerID         PlayerID `json:"player_id"`
	RequestedGearIDs []ItemID `json:"requested_gear_ids"`
	Note             string   `json:"note,omitempty"`
}

// Teams is the two-sided split made when an event starts
type Teams struct {
	SideA []PlayerID `json:"side_a"`
	SideB []PlayerID `json:"side_b"`
}

// Event represents a scheduled game day and everything that happens on it
type Event struct {
	ID          EventID   `json:"id"`
	Title       string    `json:"title"`
	Date        time.Time `json:"date"`
	Location    string    `json:"location"`
	Description string    `json:"description,omitempty"`

	Status          EventStatus    `json:"status"`
	GameFee         int            `json:"game_fee"`
	ParticipationXp int            `json:"participation_xp"`
	XpOverrides     map[RuleID]int `json:"xp_overrides,omitempty"` // Sparse; only overridden rules

	GearForRent []ItemID `json:"gear_for_rent,omitempty"`

	// A player is in at most one of SignedUpPlayers, Attendees (by
	// PlayerID), AbsentPlayers at any time
	SignedUpPlayers []PlayerID     `json:"signed_up_players"`
	RentalSignups   []RentalSignup `json:"rental_signups,omitempty"`
	Attendees       []Attendee     `json:"attendees"`
	AbsentPlayers   []PlayerID     `json:"absent_players"`

	Teams     *Teams                 `json:"teams,omitempty"` // Set at start
	LiveStats map[PlayerID]*StatLine `json:"live_stats,omitempty"`

	// Game clock. Elapsed time accrues into GameDurationSeconds on
	// pause/finish; while running it is derived from ClockStartedAt.
	GameDurationSeconds int       `json:"game_duration_seconds"`
	ClockRunning        bool      `json:"clock_running"`
	ClockStartedAt      time.Time `json:"clock_started_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsSignedUp reports whether the player has a pending (unconfirmed) signup
func (e *Event) IsSignedUp(playerID PlayerID) bool {
	for _, id := range e.SignedUpPlayers {
		if id == playerID {
			return true
		}
	}
	return false
}

// FindAttendee returns the confirmed attendee record for the player, or nil
func (e *Event) FindAttendee(playerID PlayerID) *Attendee {
	for i := range e.Attendees {
		if e.Attendees[i].PlayerID == playerID {
			return &e.Attendees[i]
		}
	}
	return nil
}

// IsAbsent reports whether the player has been marked absent
func (e *Event) IsAbsent(playerID PlayerID) bool {
	for _, id := range e.AbsentPlayers {
		if id == playerID {
			return true
		}
	}
	return false
}

// RentalSignupFor returns the player's pending rental request, or nil
func (e *Event) RentalSignupFor(playerID PlayerID) *RentalSignup {
	for i := range e.RentalSignups {
		if e.RentalSignups[i].PlayerID == playerID {
			return &e.RentalSignups[i]
		}
	}
	return nil
}

// RemoveSignup drops the player from the pending signup list and removes
// their rental request, if any
func (e *Event) RemoveSignup(playerID PlayerID) {
	for i, id := range e.SignedUpPlayers {
		if id == playerID {
			e.SignedUpPlayers = append(e.SignedUpPlayers[:i], e.SignedUpPlayers[i+1:]...)
			break
		}
	}
	for i := range e.RentalSignups {
		if e.RentalSignups[i].PlayerID == playerID {
			e.RentalSignups = append(e.RentalSignups[:i], e.RentalSignups[i+1:]...)
			break
		}
	}
}

// StatsFor returns the live stat line for the player, allocating it if absent
func (e *Event) StatsFor(playerID PlayerID) *StatLine {
	if e.LiveStats == nil {
		e.LiveStats = make(map[PlayerID]*StatLine)
	}
	line, ok := e.LiveStats[playerID]
	if !ok {
		line = &StatLine{}
		e.LiveStats[playerID] = line
	}
	return line
}

// Elapsed returns the total accrued game time as of now
func (e *Event) Elapsed(now time.Time) int {
	total := e.GameDurationSeconds
	if e.ClockRunning {
		total += int(now.Sub(e.ClockStartedAt).Seconds())
	}
	return total
}
