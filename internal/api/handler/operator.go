package handler

import (
	"encoding/json"
	"net/http"

	"github.com/bosjol/tactical-ops/internal/api/middleware"
	"github.com/bosjol/tactical-ops/internal/api/request"
	"github.com/bosjol/tactical-ops/internal/api/response"
	"github.com/bosjol/tactical-ops/internal/services/auth"
)

// OperatorHandler handles operator account endpoints
type OperatorHandler struct {
	authService *auth.Service
}

// NewOperatorHandler creates a new operator handler
func NewOperatorHandler(authService *auth.Service) *OperatorHandler {
	return &OperatorHandler{
		authService: authService,
	}
}

// Register handles POST /api/v1/operators/register
func (h *OperatorHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterOperatorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Username == "" {
		WriteError(w, NewInvalidRequestError("username is required"))
		return
	}
	if req.Password == "" {
		WriteError(w, NewInvalidRequestError("password is required"))
		return
	}
	if req.DisplayName == "" {
		WriteError(w, NewInvalidRequestError("display_name is required"))
		return
	}

	op, err := h.authService.RegisterOperator(r.Context(), req.Username, req.Password, req.DisplayName)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.OperatorFromModel(op))
}

// Login handles POST /api/v1/operators/login
func (h *OperatorHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Username == "" {
		WriteError(w, NewInvalidRequestError("username is required"))
		return
	}
	if req.Password == "" {
		WriteError(w, NewInvalidRequestError("password is required"))
		return
	}

	session, err := h.authService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.AuthResponseFromSession(session))
}

// Logout handles POST /api/v1/operators/logout
func (h *OperatorHandler) Logout(w http.ResponseWriter, r *http.Request) {
	session := middleware.MustGetSession(r.Context())
	h.authService.InvalidateSession(session.Token)
	response.NoContent(w)
}

// GetMe handles GET /api/v1/operators/me
func (h *OperatorHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	session := middleware.MustGetSession(r.Context())
	response.JSON(w, http.StatusOK, response.Operator{
		ID:       session.OperatorID,
		Username: session.Username,
	})
}
