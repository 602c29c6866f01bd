package model

import (
	"strings"
	"time"
)

// DiscountType distinguishes fixed-amount from percentage vouchers
type DiscountType string

const (
	DiscountFixed      DiscountType = "fixed"
	DiscountPercentage DiscountType = "percentage"
)

// VoucherStatus represents a voucher's redemption availability
type VoucherStatus string

const (
	VoucherActive   VoucherStatus = "active"
	VoucherExpired  VoucherStatus = "expired"
	VoucherDepleted VoucherStatus = "depleted"
)

// Redemption is one recorded use of a voucher code
type Redemption struct {
	PlayerID PlayerID  `json:"player_id"`
	EventID  EventID   `json:"event_id"`
	Date     time.Time `json:"date"`
}

// Voucher is a discount code. Codes match case-insensitively.
// UsageLimit and PerUserLimit are unlimited when zero.
type Voucher struct {
	ID                 string        `json:"id"`
	Code               string        `json:"code"`
	Description        string        `json:"description,omitempty"`
	DiscountValue      int           `json:"discount_value"`
	DiscountType       DiscountType  `json:"discount_type"`
	Status             VoucherStatus `json:"status"`
	AssignedToPlayerID PlayerID      `json:"assigned_to_player_id,omitempty"`
	UsageLimit         int           `json:"usage_limit,omitempty"`
	PerUserLimit       int           `json:"per_user_limit,omitempty"`
	Redemptions        []Redemption  `json:"redemptions"`
}

// NormalizeCode canonicalizes a voucher code for lookup
func NormalizeCode(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}

// RedemptionsBy counts how many times the given player has redeemed this voucher
func (v *Voucher) RedemptionsBy(playerID PlayerID) int {
	n := 0
	for _, r := range v.Redemptions {
		if r.PlayerID == playerID {
			n++
		}
	}
	return n
}

// DiscountOn returns the discount this voucher grants against a fee
func (v *Voucher) DiscountOn(fee int) int {
	if v.DiscountType == DiscountPercentage {
		return fee * v.DiscountValue / 100
	}
	if v.DiscountValue > fee {
		return fee
	}
	return v.DiscountValue
}
