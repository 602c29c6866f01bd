package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/bosjol/tactical-ops/internal/dependencies/clock"
	"github.com/bosjol/tactical-ops/internal/dependencies/random"
	"github.com/bosjol/tactical-ops/internal/model"
	"github.com/bosjol/tactical-ops/internal/storage"
)

const idAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// Service records manual ledger entries and reports on the books.
// Settlement revenue is appended by the event controller, not here.
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	random  random.Random
	logger  *slog.Logger
}

// New creates a new ledger Service
func New(storage storage.Storage, clock clock.Clock, random random.Random, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
		random:  random,
		logger:  logger,
	}
}

// RecordExpense appends an operating expense to the ledger
func (s *Service) RecordExpense(ctx context.Context, description string, amount int) (*model.Transaction, error) {
	txn := &model.Transaction{
		ID:          fmt.Sprintf("txn-exp-%s", s.random.String(10, idAlphabet)),
		Date:        s.clock.Now(),
		Type:        model.TransactionExpense,
		Description: description,
		Amount:      amount,
	}

	if err := s.storage.AppendTransactions(ctx, []*model.Transaction{txn}); err != nil {
		return nil, err
	}

	s.logger.Info("expense recorded",
		slog.String("txn_id", txn.ID),
		slog.Int("amount", amount),
	)

	return txn, nil
}

// RecordRetailSale appends a direct inventory sale to the ledger.
// Quantity units are sold at the item's sale price.
func (s *Service) RecordRetailSale(ctx context.Context, itemID model.ItemID, quantity int, paymentStatus model.PaymentStatus) (*model.Transaction, error) {
	item, err := s.storage.GetInventoryItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if quantity < 1 {
		quantity = 1
	}

	txn := &model.Transaction{
		ID:                 fmt.Sprintf("txn-retail-%s", s.random.String(10, idAlphabet)),
		Date:               s.clock.Now(),
		Type:               model.TransactionRetailRevenue,
		Description:        fmt.Sprintf("Retail sale: %dx %s", quantity, item.Name),
		Amount:             item.SalePrice * quantity,
		RelatedInventoryID: itemID,
		PaymentStatus:      paymentStatus,
	}

	if err := s.storage.AppendTransactions(ctx, []*model.Transaction{txn}); err != nil {
		return nil, err
	}
	return txn, nil
}

// List returns the full ledger, most recent entries first
func (s *Service) List(ctx context.Context) ([]*model.Transaction, error) {
	txns, err := s.storage.ListTransactions(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(txns, func(i, j int) bool {
		return txns[i].Date.After(txns[j].Date)
	})
	return txns, nil
}

// Summary is an aggregate view of the books
type Summary struct {
	EventRevenue  int `json:"event_revenue"`
	RentalRevenue int `json:"rental_revenue"`
	RetailRevenue int `json:"retail_revenue"`
	Expenses      int `json:"expenses"`
	Net           int `json:"net"`
}

// Summarize totals the ledger by entry type
func (s *Service) Summarize(ctx context.Context) (*Summary, error) {
	txns, err := s.storage.ListTransactions(ctx)
	if err != nil {
		return nil, err
	}

	summary := &Summary{}
	for _, txn := range txns {
		switch txn.Type {
		case model.TransactionEventRevenue:
			summary.EventRevenue += txn.Amount
		case model.TransactionRentalRevenue:
			summary.RentalRevenue += txn.Amount
		case model.TransactionRetailRevenue:
			summary.RetailRevenue += txn.Amount
		case model.TransactionExpense:
			summary.Expenses += txn.Amount
		}
	}
	summary.Net = summary.EventRevenue + summary.RentalRevenue + summary.RetailRevenue - summary.Expenses
	return summary, nil
}

// Interface for dependency injection
type ServiceInterface interface {
	RecordExpense(ctx context.Context, description string, amount int) (*model.Transaction, error)
	RecordRetailSale(ctx context.Context, itemID model.ItemID, quantity int, paymentStatus model.PaymentStatus) (*model.Transaction, error)
	List(ctx context.Context) ([]*model.Transaction, error)
	Summarize(ctx context.Context) (*Summary, error)
}

var _ ServiceInterface = (*Service)(nil)
