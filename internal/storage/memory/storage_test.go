package memory

import (
	"context"
	"testing"
	"time"

	"github.com/bosjol/tactical-ops/internal/model"
	"github.com/stretchr/testify/suite"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

// Player tests

func (s *StorageSuite) TestSaveAndGetPlayer() {
	player := &model.Player{
		ID:        "player-1",
		Callsign:  "Viper",
		Name:      "Alice",
		Status:    model.PlayerStatusActive,
		CreatedAt: time.Now(),
	}

	err := s.storage.SavePlayer(s.ctx, player)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetPlayer(s.ctx, "player-1")
	s.Require().NoError(err)
	s.Equal(player.ID, retrieved.ID)
	s.Equal(player.Callsign, retrieved.Callsign)
}

func (s *StorageSuite) TestGetPlayerNotFound() {
	_, err := s.storage.GetPlayer(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *StorageSuite) TestSavePlayersBatch() {
	players := []*model.Player{
		{ID: "player-1", Callsign: "Viper"},
		{ID: "player-2", Callsign: "Ghost"},
	}

	err := s.storage.SavePlayers(s.ctx, players)
	s.Require().NoError(err)

	listed, err := s.storage.ListPlayers(s.ctx)
	s.Require().NoError(err)
	s.Len(listed, 2)
}

func (s *StorageSuite) TestDeletePlayer() {
	player := &model.Player{ID: "player-1", Callsign: "Viper"}
	_ = s.storage.SavePlayer(s.ctx, player)

	err := s.storage.DeletePlayer(s.ctx, "player-1")
	s.Require().NoError(err)

	_, err = s.storage.GetPlayer(s.ctx, "player-1")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

// Event tests

func (s *StorageSuite) TestSaveAndGetEvent() {
	event := &model.Event{
		ID:        "event-1",
		Title:     "Sunday Skirmish",
		Status:    model.EventStatusUpcoming,
		GameFee:   350,
		CreatedAt: time.Now(),
	}

	err := s.storage.SaveEvent(s.ctx, event)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetEvent(s.ctx, "event-1")
	s.Require().NoError(err)
	s.Equal(event.ID, retrieved.ID)
	s.Equal(event.Status, retrieved.Status)
}

func (s *StorageSuite) TestGetEventNotFound() {
	_, err := s.storage.GetEvent(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrEventNotFound)
}

func (s *StorageSuite) TestListEvents() {
	_ = s.storage.SaveEvent(s.ctx, &model.Event{ID: "event-1", Status: model.EventStatusUpcoming})
	_ = s.storage.SaveEvent(s.ctx, &model.Event{ID: "event-2", Status: model.EventStatusCompleted})

	events, err := s.storage.ListEvents(s.ctx)
	s.Require().NoError(err)
	s.Len(events, 2)
}

// Voucher tests

func (s *StorageSuite) TestSaveAndGetVoucherByCode() {
	voucher := &model.Voucher{
		ID:            "voucher-1",
		Code:          "SUMMER20",
		DiscountValue: 20,
		DiscountType:  model.DiscountPercentage,
		Status:        model.VoucherActive,
	}

	err := s.storage.SaveVoucher(s.ctx, voucher)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetVoucherByCode(s.ctx, "SUMMER20")
	s.Require().NoError(err)
	s.Equal(voucher.ID, retrieved.ID)
}

func (s *StorageSuite) TestGetVoucherByCodeCaseInsensitive() {
	voucher := &model.Voucher{ID: "voucher-1", Code: "SUMMER20", Status: model.VoucherActive}
	_ = s.storage.SaveVoucher(s.ctx, voucher)

	retrieved, err := s.storage.GetVoucherByCode(s.ctx, "summer20")
	s.Require().NoError(err)
	s.Equal("voucher-1", retrieved.ID)

	retrieved, err = s.storage.GetVoucherByCode(s.ctx, "  Summer20 ")
	s.Require().NoError(err)
	s.Equal("voucher-1", retrieved.ID)
}

func (s *StorageSuite) TestGetVoucherByCodeNotFound() {
	_, err := s.storage.GetVoucherByCode(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrVoucherNotFound)
}

// Inventory tests

func (s *StorageSuite) TestSaveAndGetInventoryItem() {
	item := &model.InventoryItem{
		ID:        "item-1",
		Name:      "M4 Rental Package",
		SalePrice: 150,
		Stock:     5,
		IsRental:  true,
	}

	err := s.storage.SaveInventoryItem(s.ctx, item)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetInventoryItem(s.ctx, "item-1")
	s.Require().NoError(err)
	s.Equal(item.Name, retrieved.Name)
	s.Equal(item.Stock, retrieved.Stock)
}

func (s *StorageSuite) TestGetInventoryItemNotFound() {
	_, err := s.storage.GetInventoryItem(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrItemNotFound)
}

// Rule tests

func (s *StorageSuite) TestSaveAndGetRule() {
	rule := &model.XpRule{ID: model.RuleKill, Name: "XP per Kill", Xp: 15}

	err := s.storage.SaveRule(s.ctx, rule)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetRule(s.ctx, model.RuleKill)
	s.Require().NoError(err)
	s.Equal(15, retrieved.Xp)
}

func (s *StorageSuite) TestGetRuleNotFound() {
	_, err := s.storage.GetRule(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrRuleNotFound)
}

// Operator tests

func (s *StorageSuite) TestSaveAndGetOperator() {
	op := &model.Operator{
		ID:           "op-1",
		Username:     "marshal",
		PasswordHash: "hash123",
		CreatedAt:    time.Now(),
	}

	err := s.storage.SaveOperator(s.ctx, op)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetOperatorByUsername(s.ctx, "marshal")
	s.Require().NoError(err)
	s.Equal(op.ID, retrieved.ID)
	s.Equal("hash123", retrieved.PasswordHash)
}

func (s *StorageSuite) TestGetOperatorNotFound() {
	_, err := s.storage.GetOperatorByUsername(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrOperatorNotFound)
}

// Ledger tests

func (s *StorageSuite) TestAppendAndListTransactions() {
	txns := []*model.Transaction{
		{ID: "txn-1", Type: model.TransactionEventRevenue, Amount: 350},
		{ID: "txn-2", Type: model.TransactionRentalRevenue, Amount: 150},
	}

	err := s.storage.AppendTransactions(s.ctx, txns)
	s.Require().NoError(err)

	listed, err := s.storage.ListTransactions(s.ctx)
	s.Require().NoError(err)
	s.Len(listed, 2)
	s.Equal("txn-1", listed[0].ID)
	s.Equal("txn-2", listed[1].ID)
}

func (s *StorageSuite) TestAppendTransactionsPreservesOrder() {
	_ = s.storage.AppendTransactions(s.ctx, []*model.Transaction{{ID: "txn-1"}})
	_ = s.storage.AppendTransactions(s.ctx, []*model.Transaction{{ID: "txn-2"}, {ID: "txn-3"}})

	listed, err := s.storage.ListTransactions(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(listed, 3)
	s.Equal("txn-1", listed[0].ID)
	s.Equal("txn-2", listed[1].ID)
	s.Equal("txn-3", listed[2].ID)
}
