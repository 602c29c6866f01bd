package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/bosjol/tactical-ops/internal/api/request"
	"github.com/bosjol/tactical-ops/internal/api/response"
	"github.com/bosjol/tactical-ops/internal/model"
	"github.com/bosjol/tactical-ops/internal/services/inventory"
)

// InventoryHandler handles inventory endpoints
type InventoryHandler struct {
	inventoryService *inventory.Service
}

// NewInventoryHandler creates a new inventory handler
func NewInventoryHandler(inventoryService *inventory.Service) *InventoryHandler {
	return &InventoryHandler{
		inventoryService: inventoryService,
	}
}

// Create handles POST /api/v1/inventory
func (h *InventoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Name == "" {
		WriteError(w, NewInvalidRequestError("name is required"))
		return
	}
	if req.SalePrice < 0 {
		WriteError(w, NewInvalidRequestError("sale_price must not be negative"))
		return
	}
	if req.Stock < 0 {
		WriteError(w, NewInvalidRequestError("stock must not be negative"))
		return
	}

	item, err := h.inventoryService.CreateItem(r.Context(), &model.InventoryItem{
		ID:          model.ItemID(req.ID),
		Name:        req.Name,
		Description: req.Description,
		SalePrice:   req.SalePrice,
		Stock:       req.Stock,
		IsRental:    req.IsRental,
	})
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, item)
}

// List handles GET /api/v1/inventory
func (h *InventoryHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.inventoryService.ListItems(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, items)
}

// Get handles GET /api/v1/inventory/{item_id}
func (h *InventoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	itemID := model.ItemID(mux.Vars(r)["item_id"])

	item, err := h.inventoryService.GetItem(r.Context(), itemID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, item)
}

// Update handles PATCH /api/v1/inventory/{item_id}
func (h *InventoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	itemID := model.ItemID(mux.Vars(r)["item_id"])

	var req request.UpdateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.SalePrice != nil && *req.SalePrice < 0 {
		WriteError(w, NewInvalidRequestError("sale_price must not be negative"))
		return
	}
	if req.Stock != nil && *req.Stock < 0 {
		WriteError(w, NewInvalidRequestError("stock must not be negative"))
		return
	}

	item, err := h.inventoryService.UpdateItem(r.Context(), itemID, inventory.UpdateParams{
		Name:        req.Name,
		Description: req.Description,
		SalePrice:   req.SalePrice,
		Stock:       req.Stock,
		IsRental:    req.IsRental,
	})
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, item)
}
