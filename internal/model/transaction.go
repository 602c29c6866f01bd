package model

import "time"

// TransactionType classifies ledger entries
type TransactionType string

const (
	TransactionEventRevenue  TransactionType = "event_revenue"
	TransactionRentalRevenue TransactionType = "rental_revenue"
	TransactionRetailRevenue TransactionType = "retail_revenue"
	TransactionExpense       TransactionType = "expense"
)

// Transaction is one immutable ledger entry. The ledger is append-only;
// entries are never updated or deleted after creation.
type Transaction struct {
	ID                 string          `json:"id"`
	Date               time.Time       `json:"date"`
	Type               TransactionType `json:"type"`
	Description        string          `json:"description"`
	Amount             int             `json:"amount"`
	RelatedEventID     EventID         `json:"related_event_id,omitempty"`
	RelatedPlayerID    PlayerID        `json:"related_player_id,omitempty"`
	RelatedInventoryID ItemID          `json:"related_inventory_id,omitempty"`
	PaymentStatus      PaymentStatus   `json:"payment_status,omitempty"`
}
