package storage

import (
	"context"

	"github.com/bosjol/tactical-ops/internal/model"
)

// Storage defines the interface for data persistence
type Storage interface {
	// Player operations
	SavePlayer(ctx context.Context, player *model.Player) error
	SavePlayers(ctx context.Context, players []*model.Player) error
	GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error)
	ListPlayers(ctx context.Context) ([]*model.Player, error)
	DeletePlayer(ctx context.Context, id model.PlayerID) error

	// Event operations
	SaveEvent(ctx context.Context, event *model.Event) error
	GetEvent(ctx context.Context, id model.EventID) (*model.Event, error)
	ListEvents(ctx context.Context) ([]*model.Event, error)
	DeleteEvent(ctx context.Context, id model.EventID) error

	// Voucher operations. Codes are matched case-insensitively.
	SaveVoucher(ctx context.Context, voucher *model.Voucher) error
	GetVoucher(ctx context.Context, id string) (*model.Voucher, error)
	GetVoucherByCode(ctx context.Context, code string) (*model.Voucher, error)
	ListVouchers(ctx context.Context) ([]*model.Voucher, error)

	// Inventory operations
	SaveInventoryItem(ctx context.Context, item *model.InventoryItem) error
	GetInventoryItem(ctx context.Context, id model.ItemID) (*model.InventoryItem, error)
	ListInventory(ctx context.Context) ([]*model.InventoryItem, error)

	// Gamification rule operations
	SaveRule(ctx context.Context, rule *model.XpRule) error
	GetRule(ctx context.Context, id model.RuleID) (*model.XpRule, error)
	ListRules(ctx context.Context) ([]*model.XpRule, error)

	// Operator operations
	SaveOperator(ctx context.Context, op *model.Operator) error
	GetOperatorByUsername(ctx context.Context, username string) (*model.Operator, error)

	// Ledger operations. The ledger is append-only.
	AppendTransactions(ctx context.Context, txns []*model.Transaction) error
	ListTransactions(ctx context.Context) ([]*model.Transaction, error)
}
