package availability

import (
	"context"

	"github.com/bosjol/tactical-ops/internal/model"
	"github.com/bosjol/tactical-ops/internal/storage"
)

// Service computes rental gear availability for events.
// Stock is never decremented in place; availability is derived from the
// event's confirmed rentals and pending rental requests each time.
type Service struct {
	storage storage.Storage
}

// New creates a new availability Service
func New(storage storage.Storage) *Service {
	return &Service{
		storage: storage,
	}
}

// AvailableStock returns how many units of the item remain rentable for
// the event. Confirmed attendee rentals and pending signup requests both
// count against stock. excludePlayerID discounts that player's own
// pending request, so a player editing their signup is not blocked by
// the unit they already hold; pass "" to exclude nobody.
func AvailableStock(item *model.InventoryItem, event *model.Event, excludePlayerID model.PlayerID) int {
	confirmed := 0
	for _, att := range event.Attendees {
		for _, gearID := range att.RentedGearIDs {
			if gearID == item.ID {
				confirmed++
			}
		}
	}

	pending := 0
	for _, signup := range event.RentalSignups {
		if signup.PlayerID == excludePlayerID {
			continue
		}
		for _, gearID := range signup.RequestedGearIDs {
			if gearID == item.ID {
				pending++
			}
		}
	}

	available := item.Stock - confirmed - pending
	if available < 0 {
		return 0
	}
	return available
}

// CheckRentals verifies every requested item has a free unit for the
// event. Returns an OutOfStockError naming the first depleted item.
func (s *Service) CheckRentals(ctx context.Context, event *model.Event, itemIDs []model.ItemID, excludePlayerID model.PlayerID) error {
	for _, itemID := range itemIDs {
		item, err := s.storage.GetInventoryItem(ctx, itemID)
		if err != nil {
			return err
		}
		if AvailableStock(item, event, excludePlayerID) < 1 {
			return &model.OutOfStockError{ItemID: itemID}
		}
	}
	return nil
}

// ItemAvailability pairs an item with its remaining availability for an event
type ItemAvailability struct {
	Item      *model.InventoryItem `json:"item"`
	Available int                  `json:"available"`
}

// ForEvent returns the availability of every item offered for rent at the event
func (s *Service) ForEvent(ctx context.Context, event *model.Event) ([]ItemAvailability, error) {
	result := make([]ItemAvailability, 0, len(event.GearForRent))
	for _, itemID := range event.GearForRent {
		item, err := s.storage.GetInventoryItem(ctx, itemID)
		if err != nil {
			return nil, err
		}
		result = append(result, ItemAvailability{
			Item:      item,
			Available: AvailableStock(item, event, ""),
		})
	}
	return result, nil
}

// Interface for dependency injection
type ServiceInterface interface {
	CheckRentals(ctx context.Context, event *model.Event, itemIDs []model.ItemID, excludePlayerID model.PlayerID) error
	ForEvent(ctx context.Context, event *model.Event) ([]ItemAvailability, error)
}

var _ ServiceInterface = (*Service)(nil)
