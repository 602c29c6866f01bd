package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/bosjol/tactical-ops/internal/api/request"
	"github.com/bosjol/tactical-ops/internal/api/response"
	"github.com/bosjol/tactical-ops/internal/model"
	"github.com/bosjol/tactical-ops/internal/services/gamification"
)

// RulesHandler handles XP rule endpoints
type RulesHandler struct {
	gamificationService *gamification.Service
}

// NewRulesHandler creates a new rules handler
func NewRulesHandler(gamificationService *gamification.Service) *RulesHandler {
	return &RulesHandler{
		gamificationService: gamificationService,
	}
}

// List handles GET /api/v1/rules
func (h *RulesHandler) List(w http.ResponseWriter, r *http.Request) {
	rules, err := h.gamificationService.ListRules(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, rules)
}

// Update handles PATCH /api/v1/rules/{rule_id}
func (h *RulesHandler) Update(w http.ResponseWriter, r *http.Request) {
	ruleID := model.RuleID(mux.Vars(r)["rule_id"])

	var req request.UpdateRuleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	rule, err := h.gamificationService.UpdateRule(r.Context(), ruleID, req.Xp)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, rule)
}

// Ranks handles GET /api/v1/ranks
func (h *RulesHandler) Ranks(w http.ResponseWriter, r *http.Request) {
	ranks := make([]response.Rank, len(model.DefaultRanks))
	for i, rank := range model.DefaultRanks {
		ranks[i] = response.RankFromModel(rank)
	}
	response.JSON(w, http.StatusOK, ranks)
}
