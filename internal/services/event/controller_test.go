package event

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/bosjol/tactical-ops/internal/dependencies/mocks"
	"github.com/bosjol/tactical-ops/internal/model"
	"github.com/bosjol/tactical-ops/internal/services/availability"
	"github.com/bosjol/tactical-ops/internal/services/settlement"
	"github.com/bosjol/tactical-ops/internal/services/voucher"
	"github.com/bosjol/tactical-ops/internal/storage/memory"
	"github.com/bosjol/tactical-ops/internal/testutil"
)

type ControllerSuite struct {
	suite.Suite
	storage    *memory.Storage
	clock      *mocks.MockClock
	random     *mocks.MockRandom
	controller *Controller
	ctx        context.Context
}

func TestControllerSuite(t *testing.T) {
	suite.Run(t, new(ControllerSuite))
}

func (s *ControllerSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC))
	s.random = mocks.NewMockRandom()

	logger := testutil.NopLogger()
	availabilityService := availability.New(s.storage)
	voucherService := voucher.New(s.storage, s.clock, logger)
	settlementService := settlement.New(s.storage, s.clock, logger)

	s.controller = NewController(
		s.storage,
		availabilityService,
		voucherService,
		settlementService,
		s.clock,
		s.random,
		logger,
	)
	s.ctx = context.Background()
}

func (s *ControllerSuite) savePlayer(id model.PlayerID) {
	err := s.storage.SavePlayer(s.ctx, &model.Player{
		ID:       id,
		Callsign: string(id),
		Status:   model.PlayerStatusActive,
	})
	s.Require().NoError(err)
}

func (s *ControllerSuite) createEvent() *model.Event {
	s.random.QueueString("EVENT1234567")
	event, err := s.controller.CreateEvent(s.ctx, CreateParams{
		Title:   "Sunday Skirmish",
		Date:    time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC),
		GameFee: 350,
	})
	s.Require().NoError(err)
	return event
}

// admitted creates an event with the given players signed up and admitted
func (s *ControllerSuite) admitted(players ...model.PlayerID) *model.Event {
	event := s.createEvent()
	for _, id := range players {
		s.savePlayer(id)
		err := s.controller.SignUp(s.ctx, event.ID, id, nil, "")
		s.Require().NoError(err)
		_, err = s.controller.Admit(s.ctx, event.ID, AdmitParams{PlayerID: id, PaymentStatus: model.PaidCash})
		s.Require().NoError(err)
	}
	updated, err := s.controller.GetEvent(s.ctx, event.ID)
	s.Require().NoError(err)
	return updated
}

// started creates an in-progress event with the given players
func (s *ControllerSuite) started(players ...model.PlayerID) *model.Event {
	event := s.admitted(players...)
	started, err := s.controller.Start(s.ctx, event.ID)
	s.Require().NoError(err)
	return started
}

// CreateEvent tests

func (s *ControllerSuite) TestCreateEventSucceeds() {
	event := s.createEvent()

	s.Equal(model.EventID("EVENT1234567"), event.ID)
	s.Equal(model.EventStatusUpcoming, event.Status)
	s.Equal(350, event.GameFee)
	s.Empty(event.Attendees)
}

func (s *ControllerSuite) TestCreateEventIsPersisted() {
	event := s.createEvent()

	retrieved, err := s.controller.GetEvent(s.ctx, event.ID)
	s.Require().NoError(err)
	s.Equal(event.ID, retrieved.ID)
}

// SignUp tests

func (s *ControllerSuite) TestSignUpSucceeds() {
	event := s.createEvent()
	s.savePlayer("player-1")

	err := s.controller.SignUp(s.ctx, event.ID, "player-1", nil, "")
	s.Require().NoError(err)

	updated, _ := s.controller.GetEvent(s.ctx, event.ID)
	s.True(updated.IsSignedUp("player-1"))
}

func (s *ControllerSuite) TestSignUpWithRentalRequest() {
	_ = s.storage.SaveInventoryItem(s.ctx, &model.InventoryItem{ID: "item-1", Stock: 1, IsRental: true})
	event := s.createEvent()
	s.savePlayer("player-1")

	err := s.controller.SignUp(s.ctx, event.ID, "player-1", []model.ItemID{"item-1"}, "needs a scope")
	s.Require().NoError(err)

	updated, _ := s.controller.GetEvent(s.ctx, event.ID)
	signup := updated.RentalSignupFor("player-1")
	s.Require().NotNil(signup)
	s.Equal([]model.ItemID{"item-1"}, signup.RequestedGearIDs)
	s.Equal("needs a scope", signup.Note)
}

func (s *ControllerSuite) TestSignUpFailsWhenGearExhausted() {
	_ = s.storage.SaveInventoryItem(s.ctx, &model.InventoryItem{ID: "item-1", Stock: 1, IsRental: true})
	event := s.createEvent()
	s.savePlayer("player-1")
	s.savePlayer("player-2")

	err := s.controller.SignUp(s.ctx, event.ID, "player-1", []model.ItemID{"item-1"}, "")
	s.Require().NoError(err)

	err = s.controller.SignUp(s.ctx, event.ID, "player-2", []model.ItemID{"item-1"}, "")
	s.ErrorIs(err, model.ErrOutOfStock)
}

func (s *ControllerSuite) TestReSignUpReplacesRequest() {
	_ = s.storage.SaveInventoryItem(s.ctx, &model.InventoryItem{ID: "item-1", Stock: 1, IsRental: true})
	event := s.createEvent()
	s.savePlayer("player-1")

	err := s.controller.SignUp(s.ctx, event.ID, "player-1", []model.ItemID{"item-1"}, "")
	s.Require().NoError(err)

	// The player's own held unit must not block their edit
	err = s.controller.SignUp(s.ctx, event.ID, "player-1", []model.ItemID{"item-1"}, "updated note")
	s.Require().NoError(err)

	updated, _ := s.controller.GetEvent(s.ctx, event.ID)
	s.Len(updated.SignedUpPlayers, 1)
	s.Len(updated.RentalSignups, 1)
	s.Equal("updated note", updated.RentalSignups[0].Note)
}

func (s *ControllerSuite) TestSignUpRequiresActivePlayer() {
	event := s.createEvent()
	_ = s.storage.SavePlayer(s.ctx, &model.Player{ID: "player-1", Status: model.PlayerStatusRetired})

	err := s.controller.SignUp(s.ctx, event.ID, "player-1", nil, "")
	s.ErrorIs(err, model.ErrPlayerNotActive)
}

func (s *ControllerSuite) TestSignUpRejectedAfterStart() {
	event := s.started("player-1", "player-2")
	s.savePlayer("player-3")

	err := s.controller.SignUp(s.ctx, event.ID, "player-3", nil, "")
	s.ErrorIs(err, model.ErrEventNotAcceptingEntry)
}

func (s *ControllerSuite) TestSignUpRejectedForAttendee() {
	event := s.admitted("player-1", "player-2")

	err := s.controller.SignUp(s.ctx, event.ID, "player-1", nil, "")
	s.ErrorIs(err, model.ErrAlreadyAttendee)
}

// Withdraw tests

func (s *ControllerSuite) TestWithdrawReleasesSignupAndGear() {
	_ = s.storage.SaveInventoryItem(s.ctx, &model.InventoryItem{ID: "item-1", Stock: 1, IsRental: true})
	event := s.createEvent()
	s.savePlayer("player-1")
	s.savePlayer("player-2")

	_ = s.controller.SignUp(s.ctx, event.ID, "player-1", []model.ItemID{"item-1"}, "")

	err := s.controller.Withdraw(s.ctx, event.ID, "player-1")
	s.Require().NoError(err)

	// The freed unit is available to the next player
	err = s.controller.SignUp(s.ctx, event.ID, "player-2", []model.ItemID{"item-1"}, "")
	s.NoError(err)
}

func (s *ControllerSuite) TestWithdrawNotSignedUp() {
	event := s.createEvent()
	err := s.controller.Withdraw(s.ctx, event.ID, "player-1")
	s.ErrorIs(err, model.ErrNotSignedUp)
}

// Admit tests

func (s *ControllerSuite) TestAdmitRequiresSignup() {
	event := s.createEvent()
	s.savePlayer("player-1")

	// A walk-in with no signup is turned away at the desk
	_, err := s.controller.Admit(s.ctx, event.ID, AdmitParams{
		PlayerID:      "player-1",
		PaymentStatus: model.PaidCard,
	})
	s.ErrorIs(err, model.ErrNotSignedUp)

	updated, _ := s.controller.GetEvent(s.ctx, event.ID)
	s.Nil(updated.FindAttendee("player-1"))
}

func (s *ControllerSuite) TestAdmitAfterStartFails() {
	event := s.started("player-1", "player-2")
	s.savePlayer("player-3")

	_, err := s.controller.Admit(s.ctx, event.ID, AdmitParams{
		PlayerID:      "player-3",
		PaymentStatus: model.PaidCash,
	})
	s.ErrorIs(err, model.ErrEventNotAcceptingEntry)
}

func (s *ControllerSuite) TestAdmitConsumesSignup() {
	event := s.createEvent()
	s.savePlayer("player-1")
	_ = s.controller.SignUp(s.ctx, event.ID, "player-1", nil, "")

	_, err := s.controller.Admit(s.ctx, event.ID, AdmitParams{PlayerID: "player-1", PaymentStatus: model.PaidCash})
	s.Require().NoError(err)

	updated, _ := s.controller.GetEvent(s.ctx, event.ID)
	s.False(updated.IsSignedUp("player-1"))
	s.NotNil(updated.FindAttendee("player-1"))
}

func (s *ControllerSuite) TestAdmitTwiceFails() {
	event := s.admitted("player-1", "player-2")

	_, err := s.controller.Admit(s.ctx, event.ID, AdmitParams{PlayerID: "player-1"})
	s.ErrorIs(err, model.ErrAlreadyAttendee)
}

func (s *ControllerSuite) TestAdmitWithVoucher() {
	_ = s.storage.SaveVoucher(s.ctx, &model.Voucher{
		ID:            "v-1",
		Code:          "FLAT50",
		Status:        model.VoucherActive,
		DiscountValue: 50,
		DiscountType:  model.DiscountFixed,
	})
	event := s.createEvent()
	s.savePlayer("player-1")
	_ = s.controller.SignUp(s.ctx, event.ID, "player-1", nil, "")

	att, err := s.controller.Admit(s.ctx, event.ID, AdmitParams{
		PlayerID:    "player-1",
		VoucherCode: "FLAT50",
	})
	s.Require().NoError(err)

	// The voucher is tracked on the attendee but never reduces the fee;
	// only a manual discount does
	s.Equal("FLAT50", att.VoucherCode)
	s.Equal(0, att.DiscountAmount)

	// Redemption is recorded against the voucher
	v, _ := s.storage.GetVoucher(s.ctx, "v-1")
	s.Len(v.Redemptions, 1)
}

func (s *ControllerSuite) TestAdmitWithInvalidVoucherFails() {
	event := s.createEvent()
	s.savePlayer("player-1")
	_ = s.controller.SignUp(s.ctx, event.ID, "player-1", nil, "")

	_, err := s.controller.Admit(s.ctx, event.ID, AdmitParams{
		PlayerID:    "player-1",
		VoucherCode: "NOPE",
	})
	s.ErrorIs(err, model.ErrVoucherNotFound)

	// Failed admission leaves no attendee behind
	updated, _ := s.controller.GetEvent(s.ctx, event.ID)
	s.Nil(updated.FindAttendee("player-1"))
}

func (s *ControllerSuite) TestAdmitManualDiscountRequiresReason() {
	event := s.createEvent()
	s.savePlayer("player-1")
	_ = s.controller.SignUp(s.ctx, event.ID, "player-1", nil, "")

	_, err := s.controller.Admit(s.ctx, event.ID, AdmitParams{
		PlayerID:       "player-1",
		ManualDiscount: 100,
	})
	s.ErrorIs(err, model.ErrMissingDiscountReason)

	att, err := s.controller.Admit(s.ctx, event.ID, AdmitParams{
		PlayerID:       "player-1",
		ManualDiscount: 100,
		DiscountReason: "marshal comp",
	})
	s.Require().NoError(err)
	s.Equal(100, att.DiscountAmount)
	s.Equal("marshal comp", att.DiscountReason)
}

func (s *ControllerSuite) TestAdmitDiscountCappedAtFee() {
	event := s.createEvent()
	s.savePlayer("player-1")
	_ = s.controller.SignUp(s.ctx, event.ID, "player-1", nil, "")

	att, err := s.controller.Admit(s.ctx, event.ID, AdmitParams{
		PlayerID:       "player-1",
		ManualDiscount: 1000,
		DiscountReason: "full comp",
	})
	s.Require().NoError(err)
	s.Equal(350, att.DiscountAmount)
}

func (s *ControllerSuite) TestAdmitWithRentals() {
	_ = s.storage.SaveInventoryItem(s.ctx, &model.InventoryItem{ID: "item-1", Stock: 1, IsRental: true})
	event := s.createEvent()
	s.savePlayer("player-1")
	s.savePlayer("player-2")
	_ = s.controller.SignUp(s.ctx, event.ID, "player-1", nil, "")
	_ = s.controller.SignUp(s.ctx, event.ID, "player-2", nil, "")

	_, err := s.controller.Admit(s.ctx, event.ID, AdmitParams{
		PlayerID:      "player-1",
		RentedGearIDs: []model.ItemID{"item-1"},
	})
	s.Require().NoError(err)

	// The confirmed rental consumes the last unit
	_, err = s.controller.Admit(s.ctx, event.ID, AdmitParams{
		PlayerID:      "player-2",
		RentedGearIDs: []model.ItemID{"item-1"},
	})
	s.ErrorIs(err, model.ErrOutOfStock)
}

func (s *ControllerSuite) TestAdmitConvertsPendingRequestWithoutDoubleCount() {
	_ = s.storage.SaveInventoryItem(s.ctx, &model.InventoryItem{ID: "item-1", Stock: 1, IsRental: true})
	event := s.createEvent()
	s.savePlayer("player-1")
	_ = s.controller.SignUp(s.ctx, event.ID, "player-1", []model.ItemID{"item-1"}, "")

	// The player's pending request must not block their own admission
	_, err := s.controller.Admit(s.ctx, event.ID, AdmitParams{
		PlayerID:      "player-1",
		RentedGearIDs: []model.ItemID{"item-1"},
	})
	s.NoError(err)
}

// MarkAbsent tests

func (s *ControllerSuite) TestMarkAbsentReleasesGear() {
	_ = s.storage.SaveInventoryItem(s.ctx, &model.InventoryItem{ID: "item-1", Stock: 1, IsRental: true})
	event := s.createEvent()
	s.savePlayer("player-1")
	s.savePlayer("player-2")
	_ = s.controller.SignUp(s.ctx, event.ID, "player-1", []model.ItemID{"item-1"}, "")

	err := s.controller.MarkAbsent(s.ctx, event.ID, "player-1")
	s.Require().NoError(err)

	updated, _ := s.controller.GetEvent(s.ctx, event.ID)
	s.True(updated.IsAbsent("player-1"))
	s.False(updated.IsSignedUp("player-1"))

	err = s.controller.SignUp(s.ctx, event.ID, "player-2", []model.ItemID{"item-1"}, "")
	s.NoError(err)
}

func (s *ControllerSuite) TestMarkAbsentAttendeeFails() {
	event := s.admitted("player-1", "player-2")

	err := s.controller.MarkAbsent(s.ctx, event.ID, "player-1")
	s.ErrorIs(err, model.ErrAlreadyAttendee)
}

func (s *ControllerSuite) TestReSignUpClearsAbsentMark() {
	event := s.createEvent()
	s.savePlayer("player-1")
	_ = s.controller.SignUp(s.ctx, event.ID, "player-1", nil, "")
	_ = s.controller.MarkAbsent(s.ctx, event.ID, "player-1")

	// The no-show turned up after all; signing back up clears the mark
	// and the desk can admit them
	err := s.controller.SignUp(s.ctx, event.ID, "player-1", nil, "")
	s.Require().NoError(err)

	updated, _ := s.controller.GetEvent(s.ctx, event.ID)
	s.False(updated.IsAbsent("player-1"))
	s.True(updated.IsSignedUp("player-1"))

	_, err = s.controller.Admit(s.ctx, event.ID, AdmitParams{PlayerID: "player-1"})
	s.NoError(err)
}

// Start tests

func (s *ControllerSuite) TestStartSplitsTeams() {
	event := s.admitted("player-1", "player-2", "player-3", "player-4", "player-5")

	started, err := s.controller.Start(s.ctx, event.ID)
	s.Require().NoError(err)

	s.Equal(model.EventStatusInProgress, started.Status)
	s.Require().NotNil(started.Teams)
	s.Len(started.Teams.SideA, 3) // Odd count: side A takes the extra
	s.Len(started.Teams.SideB, 2)

	// Every attendee lands on exactly one side
	seen := map[model.PlayerID]int{}
	for _, id := range started.Teams.SideA {
		seen[id]++
	}
	for _, id := range started.Teams.SideB {
		seen[id]++
	}
	s.Len(seen, 5)
	for _, n := range seen {
		s.Equal(1, n)
	}
}

func (s *ControllerSuite) TestStartShufflesWithInjectedRandom() {
	event := s.admitted("player-1", "player-2", "player-3", "player-4")

	// Fisher-Yates with all-zero draws rotates the order deterministically
	s.random.QueueIntn(0, 0, 0)

	started, err := s.controller.Start(s.ctx, event.ID)
	s.Require().NoError(err)
	s.Equal([]model.PlayerID{"player-2", "player-3"}, started.Teams.SideA)
	s.Equal([]model.PlayerID{"player-4", "player-1"}, started.Teams.SideB)
}

func (s *ControllerSuite) TestStartDropsUnconfirmedSignups() {
	_ = s.storage.SaveInventoryItem(s.ctx, &model.InventoryItem{ID: "item-1", Stock: 1, IsRental: true})
	event := s.admitted("player-1", "player-2")
	s.savePlayer("player-3")
	_ = s.controller.SignUp(s.ctx, event.ID, "player-3", []model.ItemID{"item-1"}, "")

	started, err := s.controller.Start(s.ctx, event.ID)
	s.Require().NoError(err)

	// A signup never confirmed at the desk counts as a no-show, and its
	// pending rental request dies with it
	s.Empty(started.SignedUpPlayers)
	s.True(started.IsAbsent("player-3"))
	s.Empty(started.RentalSignups)
}

func (s *ControllerSuite) TestStartNeedsTwoAttendees() {
	event := s.admitted("player-1")

	_, err := s.controller.Start(s.ctx, event.ID)
	s.ErrorIs(err, model.ErrInsufficientAttendees)
}

func (s *ControllerSuite) TestStartTwiceFails() {
	event := s.started("player-1", "player-2")

	_, err := s.controller.Start(s.ctx, event.ID)
	s.ErrorIs(err, model.ErrInvalidStateTransition)
}

// RecordStat tests

func (s *ControllerSuite) TestRecordStatIncrements() {
	event := s.started("player-1", "player-2")

	line, err := s.controller.RecordStat(s.ctx, event.ID, "player-1", StatKills, 1)
	s.Require().NoError(err)
	s.Equal(1, line.Kills)

	line, err = s.controller.RecordStat(s.ctx, event.ID, "player-1", StatKills, 1)
	s.Require().NoError(err)
	s.Equal(2, line.Kills)
}

func (s *ControllerSuite) TestRecordStatFloorsAtZero() {
	event := s.started("player-1", "player-2")

	line, err := s.controller.RecordStat(s.ctx, event.ID, "player-1", StatDeaths, -1)
	s.Require().NoError(err)
	s.Equal(0, line.Deaths)
}

func (s *ControllerSuite) TestRecordStatNonAttendee() {
	event := s.started("player-1", "player-2")

	_, err := s.controller.RecordStat(s.ctx, event.ID, "player-3", StatKills, 1)
	s.ErrorIs(err, model.ErrNotAttendee)
}

func (s *ControllerSuite) TestRecordStatBeforeStart() {
	event := s.admitted("player-1", "player-2")

	_, err := s.controller.RecordStat(s.ctx, event.ID, "player-1", StatKills, 1)
	s.ErrorIs(err, model.ErrEventNotInProgress)
}

// Clock tests

func (s *ControllerSuite) TestClockAccruesAcrossPauses() {
	event := s.started("player-1", "player-2")

	err := s.controller.StartClock(s.ctx, event.ID)
	s.Require().NoError(err)

	s.clock.Advance(10 * time.Minute)
	err = s.controller.PauseClock(s.ctx, event.ID)
	s.Require().NoError(err)

	updated, _ := s.controller.GetEvent(s.ctx, event.ID)
	s.Equal(600, updated.GameDurationSeconds)

	err = s.controller.StartClock(s.ctx, event.ID)
	s.Require().NoError(err)
	s.clock.Advance(5 * time.Minute)

	updated, _ = s.controller.GetEvent(s.ctx, event.ID)
	s.Equal(900, updated.Elapsed(s.clock.Now()))
}

func (s *ControllerSuite) TestResetClock() {
	event := s.started("player-1", "player-2")
	_ = s.controller.StartClock(s.ctx, event.ID)
	s.clock.Advance(time.Minute)

	err := s.controller.ResetClock(s.ctx, event.ID)
	s.Require().NoError(err)

	updated, _ := s.controller.GetEvent(s.ctx, event.ID)
	s.Equal(0, updated.GameDurationSeconds)
	s.False(updated.ClockRunning)
}

func (s *ControllerSuite) TestStartClockWhileRunningIsNoop() {
	event := s.started("player-1", "player-2")
	_ = s.controller.StartClock(s.ctx, event.ID)
	started := s.clock.CurrentTime

	s.clock.Advance(time.Minute)
	err := s.controller.StartClock(s.ctx, event.ID)
	s.Require().NoError(err)

	updated, _ := s.controller.GetEvent(s.ctx, event.ID)
	s.Equal(started, updated.ClockStartedAt)
}

// Finish tests

func (s *ControllerSuite) TestFinishSettlesPlayersAndLedger() {
	event := s.started("player-1", "player-2")
	_, _ = s.controller.RecordStat(s.ctx, event.ID, "player-1", StatKills, 1)

	result, err := s.controller.Finish(s.ctx, event.ID)
	s.Require().NoError(err)
	s.Len(result.Outcomes, 2)

	updated, _ := s.controller.GetEvent(s.ctx, event.ID)
	s.Equal(model.EventStatusCompleted, updated.Status)

	// 100 base + 1 kill
	player, _ := s.storage.GetPlayer(s.ctx, "player-1")
	s.Equal(110, player.Stats.Xp)
	s.Equal(1, player.Stats.GamesPlayed)

	txns, _ := s.storage.ListTransactions(s.ctx)
	s.Len(txns, 2) // One game fee per attendee
}

func (s *ControllerSuite) TestFinishStopsClock() {
	event := s.started("player-1", "player-2")
	_ = s.controller.StartClock(s.ctx, event.ID)
	s.clock.Advance(30 * time.Minute)

	_, err := s.controller.Finish(s.ctx, event.ID)
	s.Require().NoError(err)

	updated, _ := s.controller.GetEvent(s.ctx, event.ID)
	s.Equal(1800, updated.GameDurationSeconds)
	s.False(updated.ClockRunning)
}

func (s *ControllerSuite) TestFinishTwiceFails() {
	event := s.started("player-1", "player-2")

	_, err := s.controller.Finish(s.ctx, event.ID)
	s.Require().NoError(err)

	// Completed events are immutable; no double settlement
	_, err = s.controller.Finish(s.ctx, event.ID)
	s.ErrorIs(err, model.ErrInvalidStateTransition)

	txns, _ := s.storage.ListTransactions(s.ctx)
	s.Len(txns, 2)
}

func (s *ControllerSuite) TestFinishBeforeStartFails() {
	event := s.admitted("player-1", "player-2")

	_, err := s.controller.Finish(s.ctx, event.ID)
	s.ErrorIs(err, model.ErrInvalidStateTransition)
}

// Cancel tests

func (s *ControllerSuite) TestCancelUpcomingEvent() {
	event := s.createEvent()

	err := s.controller.Cancel(s.ctx, event.ID)
	s.Require().NoError(err)

	updated, _ := s.controller.GetEvent(s.ctx, event.ID)
	s.Equal(model.EventStatusCancelled, updated.Status)
}

func (s *ControllerSuite) TestCancelledEventSettlesNothing() {
	event := s.started("player-1", "player-2")

	err := s.controller.Cancel(s.ctx, event.ID)
	s.Require().NoError(err)

	player, _ := s.storage.GetPlayer(s.ctx, "player-1")
	s.Equal(0, player.Stats.Xp)
	s.Equal(0, player.Stats.GamesPlayed)

	txns, _ := s.storage.ListTransactions(s.ctx)
	s.Empty(txns)
}

func (s *ControllerSuite) TestCancelCompletedEventFails() {
	event := s.started("player-1", "player-2")
	_, _ = s.controller.Finish(s.ctx, event.ID)

	err := s.controller.Cancel(s.ctx, event.ID)
	s.ErrorIs(err, model.ErrInvalidStateTransition)
}

// DeleteEvent tests

func (s *ControllerSuite) TestDeleteUpcomingEvent() {
	event := s.createEvent()

	err := s.controller.DeleteEvent(s.ctx, event.ID)
	s.Require().NoError(err)

	_, err = s.controller.GetEvent(s.ctx, event.ID)
	s.ErrorIs(err, model.ErrEventNotFound)
}

func (s *ControllerSuite) TestDeleteCancelledEvent() {
	event := s.createEvent()
	_ = s.controller.Cancel(s.ctx, event.ID)

	err := s.controller.DeleteEvent(s.ctx, event.ID)
	s.NoError(err)
}

func (s *ControllerSuite) TestDeleteCompletedEventFails() {
	event := s.started("player-1", "player-2")
	_, _ = s.controller.Finish(s.ctx, event.ID)

	// Settled events stay on record
	err := s.controller.DeleteEvent(s.ctx, event.ID)
	s.ErrorIs(err, model.ErrInvalidStateTransition)
}

func (s *ControllerSuite) TestDeleteInProgressEventFails() {
	event := s.started("player-1", "player-2")

	err := s.controller.DeleteEvent(s.ctx, event.ID)
	s.ErrorIs(err, model.ErrInvalidStateTransition)
}
