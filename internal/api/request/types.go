package request

import "time"

// RegisterOperatorRequest is the request body for registering an operator
type RegisterOperatorRequest struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
}

// LoginRequest is the request body for logging in
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// CreatePlayerRequest is the request body for adding a roster member
type CreatePlayerRequest struct {
	Callsign string `json:"callsign"`
	Name     string `json:"name"`
}

// UpdatePlayerRequest is the request body for updating a roster member.
// Omitted fields are left untouched.
type UpdatePlayerRequest struct {
	Callsign *string `json:"callsign,omitempty"`
	Name     *string `json:"name,omitempty"`
	Status   *string `json:"status,omitempty"`
}

// CreateEventRequest is the request body for scheduling an event
type CreateEventRequest struct {
	Title           string         `json:"title"`
	Date            time.Time      `json:"date"`
	Location        string         `json:"location"`
	Description     string         `json:"description,omitempty"`
	GameFee         int            `json:"game_fee"`
	ParticipationXp int            `json:"participation_xp,omitempty"`
	XpOverrides     map[string]int `json:"xp_overrides,omitempty"`
	GearForRent     []string       `json:"gear_for_rent,omitempty"`
}

// SignUpRequest is the request body for a player signing up to an event
type SignUpRequest struct {
	PlayerID         string   `json:"player_id"`
	RequestedGearIDs []string `json:"requested_gear_ids,omitempty"`
	Note             string   `json:"note,omitempty"`
}

// AdmitRequest is the request body for admitting a player at the desk
type AdmitRequest struct {
	PlayerID       string   `json:"player_id"`
	PaymentStatus  string   `json:"payment_status"`
	VoucherCode    string   `json:"voucher_code,omitempty"`
	RentedGearIDs  []string `json:"rented_gear_ids,omitempty"`
	ManualDiscount int      `json:"manual_discount,omitempty"`
	DiscountReason string   `json:"discount_reason,omitempty"`
	Note           string   `json:"note,omitempty"`
}

// MarkAbsentRequest is the request body for marking a signed-up player absent
type MarkAbsentRequest struct {
	PlayerID string `json:"player_id"`
}

// RecordStatRequest is the request body for adjusting a live stat counter
type RecordStatRequest struct {
	PlayerID string `json:"player_id"`
	Field    string `json:"field"`
	Delta    int    `json:"delta"`
}

// CreateVoucherRequest is the request body for issuing a voucher
type CreateVoucherRequest struct {
	Code               string `json:"code"`
	Description        string `json:"description,omitempty"`
	DiscountValue      int    `json:"discount_value"`
	DiscountType       string `json:"discount_type"`
	AssignedToPlayerID string `json:"assigned_to_player_id,omitempty"`
	UsageLimit         int    `json:"usage_limit,omitempty"`
	PerUserLimit       int    `json:"per_user_limit,omitempty"`
}

// SetVoucherStatusRequest is the request body for changing a voucher's status
type SetVoucherStatusRequest struct {
	Status string `json:"status"`
}

// CreateItemRequest is the request body for adding an inventory item
type CreateItemRequest struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	SalePrice   int    `json:"sale_price"`
	Stock       int    `json:"stock"`
	IsRental    bool   `json:"is_rental"`
}

// UpdateItemRequest is the request body for updating an inventory item.
// Omitted fields are left untouched.
type UpdateItemRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	SalePrice   *int    `json:"sale_price,omitempty"`
	Stock       *int    `json:"stock,omitempty"`
	IsRental    *bool   `json:"is_rental,omitempty"`
}

// RecordExpenseRequest is the request body for recording an expense
type RecordExpenseRequest struct {
	Description string `json:"description"`
	Amount      int    `json:"amount"`
}

// RecordRetailSaleRequest is the request body for recording a retail sale
type RecordRetailSaleRequest struct {
	ItemID        string `json:"item_id"`
	Quantity      int    `json:"quantity"`
	PaymentStatus string `json:"payment_status"`
}

// UpdateRuleRequest is the request body for changing an XP rule's value
type UpdateRuleRequest struct {
	Xp int `json:"xp"`
}
