package inventory

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"github.com/bosjol/tactical-ops/internal/dependencies/random"
	"github.com/bosjol/tactical-ops/internal/model"
	"github.com/bosjol/tactical-ops/internal/storage"
)

const idAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// Service manages the item catalogue. Availability math lives in the
// availability service; this is the operator-facing CRUD surface.
type Service struct {
	storage storage.Storage
	random  random.Random
	logger  *slog.Logger
}

// New creates a new inventory Service
func New(storage storage.Storage, random random.Random, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		random:  random,
		logger:  logger,
	}
}

// CreateItem adds an item to the catalogue, assigning an ID if none is given
func (s *Service) CreateItem(ctx context.Context, item *model.InventoryItem) (*model.InventoryItem, error) {
	if item.ID == "" {
		item.ID = model.ItemID("item-" + s.random.String(10, idAlphabet))
	}

	if err := s.storage.SaveInventoryItem(ctx, item); err != nil {
		return nil, err
	}

	s.logger.Info("inventory item created",
		slog.String("item_id", string(item.ID)),
		slog.String("name", item.Name),
		slog.Int("stock", item.Stock),
	)

	return item, nil
}

// GetItem retrieves an item by ID
func (s *Service) GetItem(ctx context.Context, id model.ItemID) (*model.InventoryItem, error) {
	return s.storage.GetInventoryItem(ctx, id)
}

// UpdateParams are the editable fields of an item. Nil fields are left
// unchanged.
type UpdateParams struct {
	Name        *string
	Description *string
	SalePrice   *int
	Stock       *int
	IsRental    *bool
}

// UpdateItem edits catalogue details
func (s *Service) UpdateItem(ctx context.Context, id model.ItemID, params UpdateParams) (*model.InventoryItem, error) {
	item, err := s.storage.GetInventoryItem(ctx, id)
	if err != nil {
		return nil, err
	}

	if params.Name != nil {
		item.Name = *params.Name
	}
	if params.Description != nil {
		item.Description = *params.Description
	}
	if params.SalePrice != nil {
		item.SalePrice = *params.SalePrice
	}
	if params.Stock != nil {
		item.Stock = *params.Stock
	}
	if params.IsRental != nil {
		item.IsRental = *params.IsRental
	}

	if err := s.storage.SaveInventoryItem(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// ListItems returns the catalogue sorted by name
func (s *Service) ListItems(ctx context.Context) ([]*model.InventoryItem, error) {
	items, err := s.storage.ListInventory(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(items, func(i, j int) bool {
		return strings.ToLower(items[i].Name) < strings.ToLower(items[j].Name)
	})
	return items, nil
}

// Interface for dependency injection
type ServiceInterface interface {
	CreateItem(ctx context.Context, item *model.InventoryItem) (*model.InventoryItem, error)
	GetItem(ctx context.Context, id model.ItemID) (*model.InventoryItem, error)
	UpdateItem(ctx context.Context, id model.ItemID, params UpdateParams) (*model.InventoryItem, error)
	ListItems(ctx context.Context) ([]*model.InventoryItem, error)
}

var _ ServiceInterface = (*Service)(nil)
