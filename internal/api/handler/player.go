package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/bosjol/tactical-ops/internal/api/request"
	"github.com/bosjol/tactical-ops/internal/api/response"
	"github.com/bosjol/tactical-ops/internal/model"
	"github.com/bosjol/tactical-ops/internal/services/roster"
)

// PlayerHandler handles roster endpoints
type PlayerHandler struct {
	rosterService *roster.Service
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(rosterService *roster.Service) *PlayerHandler {
	return &PlayerHandler{
		rosterService: rosterService,
	}
}

// Create handles POST /api/v1/players
func (h *PlayerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreatePlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Callsign == "" {
		WriteError(w, NewInvalidRequestError("callsign is required"))
		return
	}
	if req.Name == "" {
		WriteError(w, NewInvalidRequestError("name is required"))
		return
	}

	player, err := h.rosterService.CreatePlayer(r.Context(), req.Callsign, req.Name)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.PlayerFromModel(player))
}

// List handles GET /api/v1/players
func (h *PlayerHandler) List(w http.ResponseWriter, r *http.Request) {
	players, err := h.rosterService.ListPlayers(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayersFromModel(players))
}

// Get handles GET /api/v1/players/{player_id}
func (h *PlayerHandler) Get(w http.ResponseWriter, r *http.Request) {
	playerID := model.PlayerID(mux.Vars(r)["player_id"])

	player, err := h.rosterService.GetPlayer(r.Context(), playerID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerFromModel(player))
}

// Update handles PATCH /api/v1/players/{player_id}
func (h *PlayerHandler) Update(w http.ResponseWriter, r *http.Request) {
	playerID := model.PlayerID(mux.Vars(r)["player_id"])

	var req request.UpdatePlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	params := roster.UpdateParams{
		Callsign: req.Callsign,
		Name:     req.Name,
	}
	if req.Status != nil {
		status := model.PlayerStatus(*req.Status)
		switch status {
		case model.PlayerStatusActive, model.PlayerStatusOnLeave, model.PlayerStatusRetired:
		default:
			WriteError(w, NewInvalidRequestError("invalid status"))
			return
		}
		params.Status = &status
	}

	player, err := h.rosterService.UpdatePlayer(r.Context(), playerID, params)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerFromModel(player))
}

// Delete handles DELETE /api/v1/players/{player_id}
func (h *PlayerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	playerID := model.PlayerID(mux.Vars(r)["player_id"])

	if err := h.rosterService.DeletePlayer(r.Context(), playerID); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// Leaderboard handles GET /api/v1/players/leaderboard
func (h *PlayerHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	players, err := h.rosterService.Leaderboard(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.LeaderboardFromModel(players))
}
