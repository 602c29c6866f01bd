package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/bosjol/tactical-ops/internal/dependencies/mocks"
	"github.com/bosjol/tactical-ops/internal/model"
	"github.com/bosjol/tactical-ops/internal/storage/memory"
	"github.com/bosjol/tactical-ops/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	clock   *mocks.MockClock
	random  *mocks.MockRandom
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC))
	s.random = mocks.NewMockRandom()
	s.service = New(s.storage, s.clock, s.random, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *ServiceSuite) TestRecordExpense() {
	s.random.QueueString("aaaaaaaaaa")

	txn, err := s.service.RecordExpense(s.ctx, "BB pellets restock", 1200)
	s.Require().NoError(err)

	s.Equal("txn-exp-aaaaaaaaaa", txn.ID)
	s.Equal(model.TransactionExpense, txn.Type)
	s.Equal(1200, txn.Amount)

	listed, _ := s.storage.ListTransactions(s.ctx)
	s.Len(listed, 1)
}

func (s *ServiceSuite) TestRecordRetailSale() {
	_ = s.storage.SaveInventoryItem(s.ctx, &model.InventoryItem{ID: "item-1", Name: "Face Mask", SalePrice: 50})
	s.random.QueueString("bbbbbbbbbb")

	txn, err := s.service.RecordRetailSale(s.ctx, "item-1", 3, model.PaidCash)
	s.Require().NoError(err)

	s.Equal(model.TransactionRetailRevenue, txn.Type)
	s.Equal(150, txn.Amount)
	s.Equal(model.ItemID("item-1"), txn.RelatedInventoryID)
}

func (s *ServiceSuite) TestRecordRetailSaleUnknownItem() {
	_, err := s.service.RecordRetailSale(s.ctx, "nonexistent", 1, model.PaidCash)
	s.ErrorIs(err, model.ErrItemNotFound)
}

func (s *ServiceSuite) TestListMostRecentFirst() {
	_ = s.storage.AppendTransactions(s.ctx, []*model.Transaction{
		{ID: "txn-1", Date: s.clock.Now()},
		{ID: "txn-2", Date: s.clock.Now().Add(time.Hour)},
	})

	listed, err := s.service.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(listed, 2)
	s.Equal("txn-2", listed[0].ID)
}

func (s *ServiceSuite) TestSummarize() {
	_ = s.storage.AppendTransactions(s.ctx, []*model.Transaction{
		{ID: "t1", Type: model.TransactionEventRevenue, Amount: 350},
		{ID: "t2", Type: model.TransactionEventRevenue, Amount: 300},
		{ID: "t3", Type: model.TransactionRentalRevenue, Amount: 150},
		{ID: "t4", Type: model.TransactionRetailRevenue, Amount: 50},
		{ID: "t5", Type: model.TransactionExpense, Amount: 200},
	})

	summary, err := s.service.Summarize(s.ctx)
	s.Require().NoError(err)

	s.Equal(650, summary.EventRevenue)
	s.Equal(150, summary.RentalRevenue)
	s.Equal(50, summary.RetailRevenue)
	s.Equal(200, summary.Expenses)
	s.Equal(650, summary.Net)
}
