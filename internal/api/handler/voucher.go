package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/bosjol/tactical-ops/internal/api/request"
	"github.com/bosjol/tactical-ops/internal/api/response"
	"github.com/bosjol/tactical-ops/internal/model"
	"github.com/bosjol/tactical-ops/internal/services/voucher"
)

// VoucherHandler handles voucher endpoints
type VoucherHandler struct {
	voucherService *voucher.Service
}

// NewVoucherHandler creates a new voucher handler
func NewVoucherHandler(voucherService *voucher.Service) *VoucherHandler {
	return &VoucherHandler{
		voucherService: voucherService,
	}
}

// Create handles POST /api/v1/vouchers
func (h *VoucherHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateVoucherRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Code == "" {
		WriteError(w, NewInvalidRequestError("code is required"))
		return
	}
	discountType := model.DiscountType(req.DiscountType)
	switch discountType {
	case model.DiscountFixed, model.DiscountPercentage:
	default:
		WriteError(w, NewInvalidRequestError("invalid discount_type"))
		return
	}
	if req.DiscountValue <= 0 {
		WriteError(w, NewInvalidRequestError("discount_value must be positive"))
		return
	}
	if discountType == model.DiscountPercentage && req.DiscountValue > 100 {
		WriteError(w, NewInvalidRequestError("percentage discount cannot exceed 100"))
		return
	}

	v, err := h.voucherService.Create(r.Context(), voucher.CreateParams{
		Code:               req.Code,
		Description:        req.Description,
		DiscountValue:      req.DiscountValue,
		DiscountType:       discountType,
		AssignedToPlayerID: model.PlayerID(req.AssignedToPlayerID),
		UsageLimit:         req.UsageLimit,
		PerUserLimit:       req.PerUserLimit,
	})
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, v)
}

// List handles GET /api/v1/vouchers
func (h *VoucherHandler) List(w http.ResponseWriter, r *http.Request) {
	vouchers, err := h.voucherService.List(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, vouchers)
}

// Validate handles GET /api/v1/vouchers/validate?code=...&player_id=...
// A dry run of the admission-time voucher check; nothing is consumed.
func (h *VoucherHandler) Validate(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("code")
	if code == "" {
		WriteError(w, NewInvalidRequestError("code is required"))
		return
	}
	playerID := model.PlayerID(r.URL.Query().Get("player_id"))

	v, err := h.voucherService.Validate(r.Context(), code, playerID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, v)
}

// SetStatus handles PATCH /api/v1/vouchers/{voucher_id}/status
func (h *VoucherHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	voucherID := mux.Vars(r)["voucher_id"]

	var req request.SetVoucherStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	status := model.VoucherStatus(req.Status)
	switch status {
	case model.VoucherActive, model.VoucherExpired, model.VoucherDepleted:
	default:
		WriteError(w, NewInvalidRequestError("invalid status"))
		return
	}

	v, err := h.voucherService.SetStatus(r.Context(), voucherID, status)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, v)
}
