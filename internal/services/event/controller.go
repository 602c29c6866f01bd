package event

import (
	"context"
	"log/slog"
	"time"

	"github.com/bosjol/tactical-ops/internal/dependencies/clock"
	"github.com/bosjol/tactical-ops/internal/dependencies/random"
	"github.com/bosjol/tactical-ops/internal/model"
	"github.com/bosjol/tactical-ops/internal/services/availability"
	"github.com/bosjol/tactical-ops/internal/services/settlement"
	"github.com/bosjol/tactical-ops/internal/services/voucher"
	"github.com/bosjol/tactical-ops/internal/storage"
)

// idAlphabet is the character set for generated event IDs
const idAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// StatField names a live stat counter that can be adjusted mid-game
type StatField string

const (
	StatKills     StatField = "kills"
	StatDeaths    StatField = "deaths"
	StatHeadshots StatField = "headshots"
)

// Controller manages the event lifecycle state machine from creation
// through signups, admission, live play, and settlement
type Controller struct {
	storage      storage.Storage
	availability availability.ServiceInterface
	vouchers     voucher.ServiceInterface
	settlement   settlement.ServiceInterface
	clock        clock.Clock
	random       random.Random
	logger       *slog.Logger
}

// NewController creates a new event Controller
func NewController(
	storage storage.Storage,
	availabilityService availability.ServiceInterface,
	voucherService voucher.ServiceInterface,
	settlementService settlement.ServiceInterface,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage:      storage,
		availability: availabilityService,
		vouchers:     voucherService,
		settlement:   settlementService,
		clock:        clock,
		random:       random,
		logger:       logger,
	}
}

// CreateParams are the operator-supplied details for a new event
type CreateParams struct {
	Title           string
	Date            time.Time
	Location        string
	Description     string
	GameFee         int
	ParticipationXp int
	XpOverrides     map[model.RuleID]int
	GearForRent     []model.ItemID
}

// CreateEvent schedules a new event in the upcoming state
func (c *Controller) CreateEvent(ctx context.Context, params CreateParams) (*model.Event, error) {
	now := c.clock.Now()
	eventID := model.EventID(c.random.String(12, idAlphabet))

	event := &model.Event{
		ID:              eventID,
		Title:           params.Title,
		Date:            params.Date,
		Location:        params.Location,
		Description:     params.Description,
		Status:          model.EventStatusUpcoming,
		GameFee:         params.GameFee,
		ParticipationXp: params.ParticipationXp,
		XpOverrides:     params.XpOverrides,
		GearForRent:     params.GearForRent,
		SignedUpPlayers: []model.PlayerID{},
		Attendees:       []model.Attendee{},
		AbsentPlayers:   []model.PlayerID{},
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := c.storage.SaveEvent(ctx, event); err != nil {
		c.logger.Error("failed to save event",
			slog.String("event_id", string(eventID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.Info("event created",
		slog.String("event_id", string(eventID)),
		slog.String("title", params.Title),
		slog.Int("game_fee", params.GameFee),
	)

	return event, nil
}

// GetEvent retrieves an event by ID
func (c *Controller) GetEvent(ctx context.Context, eventID model.EventID) (*model.Event, error) {
	return c.storage.GetEvent(ctx, eventID)
}

// ListEvents returns all events
func (c *Controller) ListEvents(ctx context.Context) ([]*model.Event, error) {
	return c.storage.ListEvents(ctx)
}

// SignUp registers a player's intent to attend, optionally requesting
// rental gear. Signing up again replaces the previous request.
func (c *Controller) SignUp(ctx context.Context, eventID model.EventID, playerID model.PlayerID, requestedGear []model.ItemID, note string) error {
	event, err := c.storage.GetEvent(ctx, eventID)
	if err != nil {
		return err
	}

	if event.Status != model.EventStatusUpcoming {
		return model.ErrEventNotAcceptingEntry
	}

	player, err := c.storage.GetPlayer(ctx, playerID)
	if err != nil {
		return err
	}
	if player.Status != model.PlayerStatusActive {
		return model.ErrPlayerNotActive
	}

	if event.FindAttendee(playerID) != nil {
		return model.ErrAlreadyAttendee
	}

	// Re-signup replaces any earlier request, so the availability check
	// must not count the player's own pending gear against them
	if len(requestedGear) > 0 {
		if err := c.availability.CheckRentals(ctx, event, requestedGear, playerID); err != nil {
			return err
		}
	}

	event.RemoveSignup(playerID)
	c.unmarkAbsent(event, playerID)
	event.SignedUpPlayers = append(event.SignedUpPlayers, playerID)
	if len(requestedGear) > 0 || note != "" {
		event.RentalSignups = append(event.RentalSignups, model.RentalSignup{
			PlayerID:         playerID,
			RequestedGearIDs: requestedGear,
			Note:             note,
		})
	}
	event.UpdatedAt = c.clock.Now()

	return c.storage.SaveEvent(ctx, event)
}

// Withdraw removes a player's pending signup and any rental request
func (c *Controller) Withdraw(ctx context.Context, eventID model.EventID, playerID model.PlayerID) error {
	event, err := c.storage.GetEvent(ctx, eventID)
	if err != nil {
		return err
	}

	if event.Status != model.EventStatusUpcoming {
		return model.ErrEventNotAcceptingEntry
	}
	if !event.IsSignedUp(playerID) {
		return model.ErrNotSignedUp
	}

	event.RemoveSignup(playerID)
	event.UpdatedAt = c.clock.Now()

	return c.storage.SaveEvent(ctx, event)
}

// AdmitParams are the desk-side details captured when a player is
// confirmed into an event
type AdmitParams struct {
	PlayerID       model.PlayerID
	PaymentStatus  model.PaymentStatus
	VoucherCode    string
	RentedGearIDs  []model.ItemID
	ManualDiscount int
	DiscountReason string
	Note           string
}

// Admit confirms a signed-up player's attendance at the desk; the pending
// signup is consumed. The attendee record is immutable once written. A
// redeemed voucher is tracked on the attendee but does not change the fee;
// only the manual discount reduces it.
func (c *Controller) Admit(ctx context.Context, eventID model.EventID, params AdmitParams) (*model.Attendee, error) {
	event, err := c.storage.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	if event.Status != model.EventStatusUpcoming {
		return nil, model.ErrEventNotAcceptingEntry
	}

	if event.FindAttendee(params.PlayerID) != nil {
		return nil, model.ErrAlreadyAttendee
	}
	if !event.IsSignedUp(params.PlayerID) {
		return nil, model.ErrNotSignedUp
	}

	if params.ManualDiscount > 0 && params.DiscountReason == "" {
		return nil, model.ErrMissingDiscountReason
	}

	if len(params.RentedGearIDs) > 0 {
		if err := c.availability.CheckRentals(ctx, event, params.RentedGearIDs, params.PlayerID); err != nil {
			return nil, err
		}
	}

	if params.VoucherCode != "" {
		if _, err := c.vouchers.Redeem(ctx, params.VoucherCode, params.PlayerID, event); err != nil {
			return nil, err
		}
	}

	discount := params.ManualDiscount
	if discount > event.GameFee {
		discount = event.GameFee
	}

	attendee := model.Attendee{
		PlayerID:       params.PlayerID,
		PaymentStatus:  params.PaymentStatus,
		VoucherCode:    params.VoucherCode,
		RentedGearIDs:  params.RentedGearIDs,
		Note:           params.Note,
		DiscountAmount: discount,
		DiscountReason: params.DiscountReason,
	}

	event.RemoveSignup(params.PlayerID)
	event.Attendees = append(event.Attendees, attendee)
	event.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveEvent(ctx, event); err != nil {
		return nil, err
	}

	c.logger.Info("player admitted",
		slog.String("event_id", string(eventID)),
		slog.String("player_id", string(params.PlayerID)),
		slog.Int("discount", discount),
		slog.Int("rented_items", len(params.RentedGearIDs)),
	)

	return &attendee, nil
}

// MarkAbsent records a no-show. The player's pending signup and rental
// request are released, freeing their gear for others.
func (c *Controller) MarkAbsent(ctx context.Context, eventID model.EventID, playerID model.PlayerID) error {
	event, err := c.storage.GetEvent(ctx, eventID)
	if err != nil {
		return err
	}

	if event.Status != model.EventStatusUpcoming && event.Status != model.EventStatusInProgress {
		return model.ErrEventNotAcceptingEntry
	}
	if event.FindAttendee(playerID) != nil {
		return model.ErrAlreadyAttendee
	}
	if event.IsAbsent(playerID) {
		return model.ErrAlreadyAbsent
	}

	event.RemoveSignup(playerID)
	event.AbsentPlayers = append(event.AbsentPlayers, playerID)
	event.UpdatedAt = c.clock.Now()

	return c.storage.SaveEvent(ctx, event)
}

// Start moves an upcoming event into live play, splitting the admitted
// attendees into two random sides
func (c *Controller) Start(ctx context.Context, eventID model.EventID) (*model.Event, error) {
	event, err := c.storage.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	if event.Status != model.EventStatusUpcoming {
		return nil, model.ErrInvalidStateTransition
	}
	if len(event.Attendees) < 2 {
		return nil, model.ErrInsufficientAttendees
	}

	ids := make([]model.PlayerID, len(event.Attendees))
	for i, att := range event.Attendees {
		ids[i] = att.PlayerID
	}
	random.Shuffle(c.random, len(ids), func(i, j int) {
		ids[i], ids[j] = ids[j], ids[i]
	})

	// Side A takes the extra player on odd counts
	mid := (len(ids) + 1) / 2
	event.Teams = &model.Teams{
		SideA: ids[:mid],
		SideB: ids[mid:],
	}

	// Anyone still unconfirmed at kickoff is a no-show; their pending
	// rental requests are released with them
	event.AbsentPlayers = append(event.AbsentPlayers, event.SignedUpPlayers...)
	event.SignedUpPlayers = []model.PlayerID{}
	event.RentalSignups = nil

	event.Status = model.EventStatusInProgress
	event.LiveStats = make(map[model.PlayerID]*model.StatLine)
	event.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveEvent(ctx, event); err != nil {
		return nil, err
	}

	c.logger.Info("event started",
		slog.String("event_id", string(eventID)),
		slog.Int("side_a", len(event.Teams.SideA)),
		slog.Int("side_b", len(event.Teams.SideB)),
	)

	return event, nil
}

// RecordStat adjusts a live stat counter for an attendee by delta.
// Counters never go below zero, so a stray decrement is harmless.
func (c *Controller) RecordStat(ctx context.Context, eventID model.EventID, playerID model.PlayerID, field StatField, delta int) (*model.StatLine, error) {
	event, err := c.storage.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	if event.Status != model.EventStatusInProgress {
		return nil, model.ErrEventNotInProgress
	}
	if event.FindAttendee(playerID) == nil {
		return nil, model.ErrNotAttendee
	}

	line := event.StatsFor(playerID)
	switch field {
	case StatKills:
		line.Kills = clampStat(line.Kills + delta)
	case StatDeaths:
		line.Deaths = clampStat(line.Deaths + delta)
	case StatHeadshots:
		line.Headshots = clampStat(line.Headshots + delta)
	default:
		return nil, model.ErrInvalidStateTransition
	}
	event.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveEvent(ctx, event); err != nil {
		return nil, err
	}
	return line, nil
}

func clampStat(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

// StartClock starts or resumes the game clock
func (c *Controller) StartClock(ctx context.Context, eventID model.EventID) error {
	event, err := c.storage.GetEvent(ctx, eventID)
	if err != nil {
		return err
	}
	if event.Status != model.EventStatusInProgress {
		return model.ErrEventNotInProgress
	}
	if event.ClockRunning {
		return nil
	}

	event.ClockRunning = true
	event.ClockStartedAt = c.clock.Now()
	event.UpdatedAt = event.ClockStartedAt

	return c.storage.SaveEvent(ctx, event)
}

// PauseClock stops the clock, accruing the elapsed segment
func (c *Controller) PauseClock(ctx context.Context, eventID model.EventID) error {
	event, err := c.storage.GetEvent(ctx, eventID)
	if err != nil {
		return err
	}
	if event.Status != model.EventStatusInProgress {
		return model.ErrEventNotInProgress
	}
	if !event.ClockRunning {
		return nil
	}

	now := c.clock.Now()
	event.GameDurationSeconds = event.Elapsed(now)
	event.ClockRunning = false
	event.ClockStartedAt = time.Time{}
	event.UpdatedAt = now

	return c.storage.SaveEvent(ctx, event)
}

// ResetClock zeroes the game clock
func (c *Controller) ResetClock(ctx context.Context, eventID model.EventID) error {
	event, err := c.storage.GetEvent(ctx, eventID)
	if err != nil {
		return err
	}
	if event.Status != model.EventStatusInProgress {
		return model.ErrEventNotInProgress
	}

	event.GameDurationSeconds = 0
	event.ClockRunning = false
	event.ClockStartedAt = time.Time{}
	event.UpdatedAt = c.clock.Now()

	return c.storage.SaveEvent(ctx, event)
}

// Finish completes a live event: the clock stops, every attendee is
// settled for XP, and revenue lands in the ledger. The completed event
// is saved before player records and ledger entries, so a crash
// mid-settlement can never re-run against a live event.
func (c *Controller) Finish(ctx context.Context, eventID model.EventID) (*settlement.Result, error) {
	event, err := c.storage.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	if event.Status != model.EventStatusInProgress {
		return nil, model.ErrInvalidStateTransition
	}

	now := c.clock.Now()
	event.GameDurationSeconds = event.Elapsed(now)
	event.ClockRunning = false
	event.ClockStartedAt = time.Time{}

	result, err := c.settlement.Settle(ctx, event)
	if err != nil {
		return nil, err
	}

	event.Status = model.EventStatusCompleted
	event.UpdatedAt = now

	if err := c.storage.SaveEvent(ctx, event); err != nil {
		return nil, err
	}

	players := make([]*model.Player, len(result.Outcomes))
	for i, outcome := range result.Outcomes {
		players[i] = outcome.Player
	}
	if err := c.storage.SavePlayers(ctx, players); err != nil {
		return nil, err
	}

	if err := c.storage.AppendTransactions(ctx, result.Transactions); err != nil {
		return nil, err
	}

	c.logger.Info("event finished",
		slog.String("event_id", string(eventID)),
		slog.Int("duration_seconds", event.GameDurationSeconds),
		slog.Int("players_settled", len(players)),
	)

	return result, nil
}

// Cancel calls off an event before completion. No XP or revenue is
// recorded.
func (c *Controller) Cancel(ctx context.Context, eventID model.EventID) error {
	event, err := c.storage.GetEvent(ctx, eventID)
	if err != nil {
		return err
	}

	if event.Status != model.EventStatusUpcoming && event.Status != model.EventStatusInProgress {
		return model.ErrInvalidStateTransition
	}

	event.Status = model.EventStatusCancelled
	event.ClockRunning = false
	event.UpdatedAt = c.clock.Now()

	c.logger.Info("event cancelled",
		slog.String("event_id", string(eventID)),
	)

	return c.storage.SaveEvent(ctx, event)
}

// DeleteEvent removes an event that never ran. Completed events stay on
// record because settlement references them; in-progress events must be
// cancelled or finished first.
func (c *Controller) DeleteEvent(ctx context.Context, eventID model.EventID) error {
	event, err := c.storage.GetEvent(ctx, eventID)
	if err != nil {
		return err
	}

	if event.Status != model.EventStatusUpcoming && event.Status != model.EventStatusCancelled {
		return model.ErrInvalidStateTransition
	}

	if err := c.storage.DeleteEvent(ctx, eventID); err != nil {
		return err
	}

	c.logger.Info("event deleted",
		slog.String("event_id", string(eventID)),
	)

	return nil
}

func (c *Controller) unmarkAbsent(event *model.Event, playerID model.PlayerID) {
	for i, id := range event.AbsentPlayers {
		if id == playerID {
			event.AbsentPlayers = append(event.AbsentPlayers[:i], event.AbsentPlayers[i+1:]...)
			return
		}
	}
}

// Interface for dependency injection
type ControllerInterface interface {
	CreateEvent(ctx context.Context, params CreateParams) (*model.Event, error)
	GetEvent(ctx context.Context, eventID model.EventID) (*model.Event, error)
	ListEvents(ctx context.Context) ([]*model.Event, error)
	SignUp(ctx context.Context, eventID model.EventID, playerID model.PlayerID, requestedGear []model.ItemID, note string) error
	Withdraw(ctx context.Context, eventID model.EventID, playerID model.PlayerID) error
	Admit(ctx context.Context, eventID model.EventID, params AdmitParams) (*model.Attendee, error)
	MarkAbsent(ctx context.Context, eventID model.EventID, playerID model.PlayerID) error
	Start(ctx context.Context, eventID model.EventID) (*model.Event, error)
	RecordStat(ctx context.Context, eventID model.EventID, playerID model.PlayerID, field StatField, delta int) (*model.StatLine, error)
	StartClock(ctx context.Context, eventID model.EventID) error
	PauseClock(ctx context.Context, eventID model.EventID) error
	ResetClock(ctx context.Context, eventID model.EventID) error
	Finish(ctx context.Context, eventID model.EventID) (*settlement.Result, error)
	Cancel(ctx context.Context, eventID model.EventID) error
	DeleteEvent(ctx context.Context, eventID model.EventID) error
}

var _ ControllerInterface = (*Controller)(nil)
