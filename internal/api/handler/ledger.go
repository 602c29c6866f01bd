package handler

import (
	"encoding/json"
	"net/http"

	"github.com/bosjol/tactical-ops/internal/api/request"
	"github.com/bosjol/tactical-ops/internal/api/response"
	"github.com/bosjol/tactical-ops/internal/model"
	"github.com/bosjol/tactical-ops/internal/services/ledger"
)

// LedgerHandler handles financial ledger endpoints
type LedgerHandler struct {
	ledgerService *ledger.Service
}

// NewLedgerHandler creates a new ledger handler
func NewLedgerHandler(ledgerService *ledger.Service) *LedgerHandler {
	return &LedgerHandler{
		ledgerService: ledgerService,
	}
}

// List handles GET /api/v1/ledger
func (h *LedgerHandler) List(w http.ResponseWriter, r *http.Request) {
	transactions, err := h.ledgerService.List(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, transactions)
}

// Summary handles GET /api/v1/ledger/summary
func (h *LedgerHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.ledgerService.Summarize(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, summary)
}

// RecordExpense handles POST /api/v1/ledger/expenses
func (h *LedgerHandler) RecordExpense(w http.ResponseWriter, r *http.Request) {
	var req request.RecordExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Description == "" {
		WriteError(w, NewInvalidRequestError("description is required"))
		return
	}
	if req.Amount <= 0 {
		WriteError(w, NewInvalidRequestError("amount must be positive"))
		return
	}

	txn, err := h.ledgerService.RecordExpense(r.Context(), req.Description, req.Amount)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, txn)
}

// RecordRetailSale handles POST /api/v1/ledger/sales
func (h *LedgerHandler) RecordRetailSale(w http.ResponseWriter, r *http.Request) {
	var req request.RecordRetailSaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.ItemID == "" {
		WriteError(w, NewInvalidRequestError("item_id is required"))
		return
	}
	if req.Quantity <= 0 {
		WriteError(w, NewInvalidRequestError("quantity must be positive"))
		return
	}
	paymentStatus := model.PaymentStatus(req.PaymentStatus)
	switch paymentStatus {
	case model.PaidCard, model.PaidCash:
	default:
		WriteError(w, NewInvalidRequestError("invalid payment_status"))
		return
	}

	txn, err := h.ledgerService.RecordRetailSale(r.Context(), model.ItemID(req.ItemID), req.Quantity, paymentStatus)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, txn)
}
