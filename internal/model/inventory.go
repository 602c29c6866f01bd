package model

// ItemID uniquely identifies an inventory item
type ItemID string

// InventoryItem is a stocked item. Stock is a static ceiling; rental
// availability for an event is derived from that event's confirmed and
// pending rentals, never decremented in place.
type InventoryItem struct {
	ID          ItemID `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	SalePrice   int    `json:"sale_price"`
	Stock       int    `json:"stock"`
	IsRental    bool   `json:"is_rental"`
}
