package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestElapsedWhileStopped(t *testing.T) {
	e := &Event{GameDurationSeconds: 300}
	assert.Equal(t, 300, e.Elapsed(time.Now()))
}

func TestElapsedWhileRunning(t *testing.T) {
	start := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	e := &Event{
		GameDurationSeconds: 300,
		ClockRunning:        true,
		ClockStartedAt:      start,
	}
	assert.Equal(t, 360, e.Elapsed(start.Add(time.Minute)))
}

func TestStatsForAllocatesLazily(t *testing.T) {
	e := &Event{}
	line := e.StatsFor("player-1")
	line.Kills++

	assert.Equal(t, 1, e.LiveStats["player-1"].Kills)
	assert.Same(t, line, e.StatsFor("player-1"))
}

func TestRemoveSignupDropsRentalRequest(t *testing.T) {
	e := &Event{
		SignedUpPlayers: []PlayerID{"player-1", "player-2"},
		RentalSignups: []RentalSignup{
			{PlayerID: "player-1", RequestedGearIDs: []ItemID{"item-1"}},
		},
	}

	e.RemoveSignup("player-1")

	assert.Equal(t, []PlayerID{"player-2"}, e.SignedUpPlayers)
	assert.Empty(t, e.RentalSignups)
}

func TestDiscountOnPercentage(t *testing.T) {
	v := &Voucher{DiscountType: DiscountPercentage, DiscountValue: 25}
	assert.Equal(t, 87, v.DiscountOn(350)) // Truncated, not rounded
}

func TestDiscountOnFixedCapped(t *testing.T) {
	v := &Voucher{DiscountType: DiscountFixed, DiscountValue: 500}
	assert.Equal(t, 350, v.DiscountOn(350))
}
