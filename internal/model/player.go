package model

import "time"

// PlayerID uniquely identifies a player across the system
type PlayerID string

// PlayerStatus represents a player's roster standing
type PlayerStatus string

const (
	PlayerStatusActive  PlayerStatus = "active"
	PlayerStatusOnLeave PlayerStatus = "on_leave"
	PlayerStatusRetired PlayerStatus = "retired"
)

// PlayerStats holds a player's lifetime aggregates.
// Xp is rank points; it drives the rank tier and can go negative
// after death penalties (no floor is applied at settlement).
type PlayerStats struct {
	Kills       int `json:"kills"`
	Deaths      int `json:"deaths"`
	Headshots   int `json:"headshots"`
	GamesPlayed int `json:"games_played"`
	Xp          int `json:"xp"`
}

// StatLine is a single match's kill/death/headshot counters
type StatLine struct {
	Kills     int `json:"kills"`
	Deaths    int `json:"deaths"`
	Headshots int `json:"headshots"`
}

// MatchRecord links a player's per-match performance to an event
type MatchRecord struct {
	EventID EventID  `json:"event_id"`
	Stats   StatLine `json:"stats"`
}

// Player represents a roster member
type Player struct {
	ID           PlayerID      `json:"id"`
	Callsign     string        `json:"callsign"`
	Name         string        `json:"name"`
	Status       PlayerStatus  `json:"status"`
	Stats        PlayerStats   `json:"stats"`
	MatchHistory []MatchRecord `json:"match_history"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// Rank is a tier in the progression ladder, keyed by minimum rank points
type Rank struct {
	Name  string `json:"name"`
	Tier  string `json:"tier"`
	MinXp int    `json:"min_xp"`
}

// DefaultRanks is the progression ladder, ordered by ascending MinXp
var DefaultRanks = []Rank{
	{Name: "Trainee", Tier: "Recruit", MinXp: 0},
	{Name: "Novice", Tier: "Recruit", MinXp: 100},
	{Name: "Cadet 1", Tier: "Cadet", MinXp: 250},
	{Name: "Cadet 2", Tier: "Cadet", MinXp: 400},
	{Name: "Private 1", Tier: "Private", MinXp: 600},
	{Name: "Private 2", Tier: "Private", MinXp: 800},
	{Name: "Corporal 1", Tier: "Corporal", MinXp: 1050},
	{Name: "Corporal 2", Tier: "Corporal", MinXp: 1300},
	{Name: "Sergeant 1", Tier: "Sergeant", MinXp: 1600},
	{Name: "Sergeant 2", Tier: "Sergeant", MinXp: 1900},
	{Name: "Staff Sergeant 1", Tier: "Staff Sergeant", MinXp: 2250},
	{Name: "Staff Sergeant 2", Tier: "Staff Sergeant", MinXp: 2600},
	{Name: "Gunnery Sergeant 1", Tier: "Gunnery Sergeant", MinXp: 3000},
	{Name: "Gunnery Sergeant 2", Tier: "Gunnery Sergeant", MinXp: 3400},
	{Name: "First Sergeant 1", Tier: "First Sergeant", MinXp: 3850},
	{Name: "First Sergeant 2", Tier: "First Sergeant", MinXp: 4300},
	{Name: "Master Sergeant 1", Tier: "Master Sergeant", MinXp: 4800},
	{Name: "Master Sergeant 2", Tier: "Master Sergeant", MinXp: 5300},
	{Name: "Sergeant Major 1", Tier: "Sergeant Major", MinXp: 5850},
	{Name: "Sergeant Major 2", Tier: "Sergeant Major", MinXp: 6400},
	{Name: "Warrant Officer 1", Tier: "Warrant Officer", MinXp: 7000},
	{Name: "Warrant Officer 2", Tier: "Warrant Officer", MinXp: 7600},
	{Name: "Lieutenant 1", Tier: "Lieutenant", MinXp: 8250},
	{Name: "Lieutenant 2", Tier: "Lieutenant", MinXp: 8900},
	{Name: "Captain 1", Tier: "Captain", MinXp: 9600},
	{Name: "Captain 2", Tier: "Captain", MinXp: 10300},
	{Name: "Major 1", Tier: "Major", MinXp: 11050},
	{Name: "Major 2", Tier: "Major", MinXp: 11800},
	{Name: "Colonel 1", Tier: "Colonel", MinXp: 12600},
	{Name: "Colonel 2", Tier: "Colonel", MinXp: 13500},
}

// ResolveRank returns the highest rank whose MinXp is at or below xp.
// Negative xp resolves to the lowest rank.
func ResolveRank(xp int) Rank {
	rank := DefaultRanks[0]
	for _, r := range DefaultRanks {
		if xp >= r.MinXp {
			rank = r
		}
	}
	return rank
}

// Operator is an admin console account that drives event lifecycles.
// Never serialized to API responses directly; the hash must survive
// storage round-trips.
type Operator struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	DisplayName  string    `json:"display_name"`
	PasswordHash string    `json:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
}
