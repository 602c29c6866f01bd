package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/bosjol/tactical-ops/internal/api/request"
	"github.com/bosjol/tactical-ops/internal/api/response"
	"github.com/bosjol/tactical-ops/internal/dependencies/clock"
	"github.com/bosjol/tactical-ops/internal/model"
	"github.com/bosjol/tactical-ops/internal/services/availability"
	"github.com/bosjol/tactical-ops/internal/services/event"
)

// EventHandler handles event lifecycle endpoints
type EventHandler struct {
	eventController     *event.Controller
	availabilityService *availability.Service
	clock               clock.Clock
}

// NewEventHandler creates a new event handler
func NewEventHandler(eventController *event.Controller, availabilityService *availability.Service, clock clock.Clock) *EventHandler {
	return &EventHandler{
		eventController:     eventController,
		availabilityService: availabilityService,
		clock:               clock,
	}
}

// Create handles POST /api/v1/events
func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Title == "" {
		WriteError(w, NewInvalidRequestError("title is required"))
		return
	}
	if req.Date.IsZero() {
		WriteError(w, NewInvalidRequestError("date is required"))
		return
	}
	if req.GameFee < 0 {
		WriteError(w, NewInvalidRequestError("game_fee must not be negative"))
		return
	}

	params := event.CreateParams{
		Title:           req.Title,
		Date:            req.Date,
		Location:        req.Location,
		Description:     req.Description,
		GameFee:         req.GameFee,
		ParticipationXp: req.ParticipationXp,
		GearForRent:     itemIDs(req.GearForRent),
	}
	if len(req.XpOverrides) > 0 {
		params.XpOverrides = make(map[model.RuleID]int, len(req.XpOverrides))
		for id, xp := range req.XpOverrides {
			params.XpOverrides[model.RuleID(id)] = xp
		}
	}

	evt, err := h.eventController.CreateEvent(r.Context(), params)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.EventFromModel(evt, h.clock.Now()))
}

// List handles GET /api/v1/events
func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	events, err := h.eventController.ListEvents(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.EventsFromModel(events, h.clock.Now()))
}

// Get handles GET /api/v1/events/{event_id}
func (h *EventHandler) Get(w http.ResponseWriter, r *http.Request) {
	eventID := model.EventID(mux.Vars(r)["event_id"])

	evt, err := h.eventController.GetEvent(r.Context(), eventID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.EventFromModel(evt, h.clock.Now()))
}

// SignUp handles POST /api/v1/events/{event_id}/signups
func (h *EventHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	eventID := model.EventID(mux.Vars(r)["event_id"])

	var req request.SignUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.PlayerID == "" {
		WriteError(w, NewInvalidRequestError("player_id is required"))
		return
	}

	err := h.eventController.SignUp(r.Context(), eventID, model.PlayerID(req.PlayerID), itemIDs(req.RequestedGearIDs), req.Note)
	if err != nil {
		WriteError(w, err)
		return
	}

	h.writeEvent(w, r, eventID, http.StatusOK)
}

// Withdraw handles DELETE /api/v1/events/{event_id}/signups/{player_id}
func (h *EventHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	eventID := model.EventID(vars["event_id"])
	playerID := model.PlayerID(vars["player_id"])

	if err := h.eventController.Withdraw(r.Context(), eventID, playerID); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// Admit handles POST /api/v1/events/{event_id}/admissions
func (h *EventHandler) Admit(w http.ResponseWriter, r *http.Request) {
	eventID := model.EventID(mux.Vars(r)["event_id"])

	var req request.AdmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.PlayerID == "" {
		WriteError(w, NewInvalidRequestError("player_id is required"))
		return
	}
	paymentStatus := model.PaymentStatus(req.PaymentStatus)
	switch paymentStatus {
	case model.PaidCard, model.PaidCash, model.Unpaid:
	default:
		WriteError(w, NewInvalidRequestError("invalid payment_status"))
		return
	}

	attendee, err := h.eventController.Admit(r.Context(), eventID, event.AdmitParams{
		PlayerID:       model.PlayerID(req.PlayerID),
		PaymentStatus:  paymentStatus,
		VoucherCode:    req.VoucherCode,
		RentedGearIDs:  itemIDs(req.RentedGearIDs),
		ManualDiscount: req.ManualDiscount,
		DiscountReason: req.DiscountReason,
		Note:           req.Note,
	})
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, attendee)
}

// MarkAbsent handles POST /api/v1/events/{event_id}/absences
func (h *EventHandler) MarkAbsent(w http.ResponseWriter, r *http.Request) {
	eventID := model.EventID(mux.Vars(r)["event_id"])

	var req request.MarkAbsentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.PlayerID == "" {
		WriteError(w, NewInvalidRequestError("player_id is required"))
		return
	}

	if err := h.eventController.MarkAbsent(r.Context(), eventID, model.PlayerID(req.PlayerID)); err != nil {
		WriteError(w, err)
		return
	}

	h.writeEvent(w, r, eventID, http.StatusOK)
}

// Start handles POST /api/v1/events/{event_id}/start
func (h *EventHandler) Start(w http.ResponseWriter, r *http.Request) {
	eventID := model.EventID(mux.Vars(r)["event_id"])

	evt, err := h.eventController.Start(r.Context(), eventID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.EventFromModel(evt, h.clock.Now()))
}

// RecordStat handles POST /api/v1/events/{event_id}/stats
func (h *EventHandler) RecordStat(w http.ResponseWriter, r *http.Request) {
	eventID := model.EventID(mux.Vars(r)["event_id"])

	var req request.RecordStatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.PlayerID == "" {
		WriteError(w, NewInvalidRequestError("player_id is required"))
		return
	}
	field := event.StatField(req.Field)
	switch field {
	case event.StatKills, event.StatDeaths, event.StatHeadshots:
	default:
		WriteError(w, NewInvalidRequestError("invalid stat field"))
		return
	}
	if req.Delta != 1 && req.Delta != -1 {
		WriteError(w, NewInvalidRequestError("delta must be 1 or -1"))
		return
	}

	line, err := h.eventController.RecordStat(r.Context(), eventID, model.PlayerID(req.PlayerID), field, req.Delta)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, line)
}

// StartClock handles POST /api/v1/events/{event_id}/clock/start
func (h *EventHandler) StartClock(w http.ResponseWriter, r *http.Request) {
	eventID := model.EventID(mux.Vars(r)["event_id"])

	if err := h.eventController.StartClock(r.Context(), eventID); err != nil {
		WriteError(w, err)
		return
	}

	h.writeEvent(w, r, eventID, http.StatusOK)
}

// PauseClock handles POST /api/v1/events/{event_id}/clock/pause
func (h *EventHandler) PauseClock(w http.ResponseWriter, r *http.Request) {
	eventID := model.EventID(mux.Vars(r)["event_id"])

	if err := h.eventController.PauseClock(r.Context(), eventID); err != nil {
		WriteError(w, err)
		return
	}

	h.writeEvent(w, r, eventID, http.StatusOK)
}

// ResetClock handles POST /api/v1/events/{event_id}/clock/reset
func (h *EventHandler) ResetClock(w http.ResponseWriter, r *http.Request) {
	eventID := model.EventID(mux.Vars(r)["event_id"])

	if err := h.eventController.ResetClock(r.Context(), eventID); err != nil {
		WriteError(w, err)
		return
	}

	h.writeEvent(w, r, eventID, http.StatusOK)
}

// Finish handles POST /api/v1/events/{event_id}/finish
func (h *EventHandler) Finish(w http.ResponseWriter, r *http.Request) {
	eventID := model.EventID(mux.Vars(r)["event_id"])

	result, err := h.eventController.Finish(r.Context(), eventID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SettlementFromResult(eventID, result))
}

// Cancel handles POST /api/v1/events/{event_id}/cancel
func (h *EventHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	eventID := model.EventID(mux.Vars(r)["event_id"])

	if err := h.eventController.Cancel(r.Context(), eventID); err != nil {
		WriteError(w, err)
		return
	}

	h.writeEvent(w, r, eventID, http.StatusOK)
}

// Delete handles DELETE /api/v1/events/{event_id}
func (h *EventHandler) Delete(w http.ResponseWriter, r *http.Request) {
	eventID := model.EventID(mux.Vars(r)["event_id"])

	if err := h.eventController.DeleteEvent(r.Context(), eventID); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// Availability handles GET /api/v1/events/{event_id}/availability
func (h *EventHandler) Availability(w http.ResponseWriter, r *http.Request) {
	eventID := model.EventID(mux.Vars(r)["event_id"])

	evt, err := h.eventController.GetEvent(r.Context(), eventID)
	if err != nil {
		WriteError(w, err)
		return
	}

	items, err := h.availabilityService.ForEvent(r.Context(), evt)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.AvailabilityResponse{
		EventID: string(eventID),
		Items:   items,
	})
}

// writeEvent responds with the event's current state after a mutation
func (h *EventHandler) writeEvent(w http.ResponseWriter, r *http.Request, eventID model.EventID, status int) {
	evt, err := h.eventController.GetEvent(r.Context(), eventID)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, status, response.EventFromModel(evt, h.clock.Now()))
}

func itemIDs(ids []string) []model.ItemID {
	if len(ids) == 0 {
		return nil
	}
	out := make([]model.ItemID, len(ids))
	for i, id := range ids {
		out[i] = model.ItemID(id)
	}
	return out
}
