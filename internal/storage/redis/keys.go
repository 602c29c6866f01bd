package redis

import (
	"fmt"

	"github.com/bosjol/tactical-ops/internal/model"
)

// Key prefix for all application data
const keyPrefix = "tacops"

// Key generation functions for each entity type

// playerKey returns the Redis key for a Player
func playerKey(id model.PlayerID) string {
	return fmt.Sprintf("%s:player:%s", keyPrefix, id)
}

// playersIndexKey returns the Redis key for the SET of all player IDs
func playersIndexKey() string {
	return fmt.Sprintf("%s:idx:players", keyPrefix)
}

// eventKey returns the Redis key for an Event
func eventKey(id model.EventID) string {
	return fmt.Sprintf("%s:event:%s", keyPrefix, id)
}

// eventsIndexKey returns the Redis key for the SET of all event IDs
func eventsIndexKey() string {
	return fmt.Sprintf("%s:idx:events", keyPrefix)
}

// voucherKey returns the Redis key for a Voucher
func voucherKey(id string) string {
	return fmt.Sprintf("%s:voucher:%s", keyPrefix, id)
}

// voucherCodeIndexKey returns the Redis key for the normalized code -> voucher ID index
func voucherCodeIndexKey(code string) string {
	return fmt.Sprintf("%s:idx:voucher_code:%s", keyPrefix, model.NormalizeCode(code))
}

// vouchersIndexKey returns the Redis key for the SET of all voucher IDs
func vouchersIndexKey() string {
	return fmt.Sprintf("%s:idx:vouchers", keyPrefix)
}

// inventoryItemKey returns the Redis key for an InventoryItem
func inventoryItemKey(id model.ItemID) string {
	return fmt.Sprintf("%s:item:%s", keyPrefix, id)
}

// inventoryIndexKey returns the Redis key for the SET of all item IDs
func inventoryIndexKey() string {
	return fmt.Sprintf("%s:idx:items", keyPrefix)
}

// ruleKey returns the Redis key for a gamification rule
func ruleKey(id model.RuleID) string {
	return fmt.Sprintf("%s:rule:%s", keyPrefix, id)
}

// rulesIndexKey returns the Redis key for the SET of all rule IDs
func rulesIndexKey() string {
	return fmt.Sprintf("%s:idx:rules", keyPrefix)
}

// operatorKey returns the Redis key for an Operator, keyed by username
func operatorKey(username string) string {
	return fmt.Sprintf("%s:operator:%s", keyPrefix, username)
}

// ledgerKey returns the Redis key for the append-only transaction LIST
func ledgerKey() string {
	return fmt.Sprintf("%s:ledger", keyPrefix)
}
