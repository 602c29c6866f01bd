package availability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/bosjol/tactical-ops/internal/model"
	"github.com/bosjol/tactical-ops/internal/storage/memory"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.service = New(s.storage)
	s.ctx = context.Background()
}

func (s *ServiceSuite) item(stock int) *model.InventoryItem {
	return &model.InventoryItem{ID: "item-1", Name: "M4 Rental", Stock: stock, IsRental: true}
}

// AvailableStock tests

func (s *ServiceSuite) TestAvailableStockFullWhenUnclaimed() {
	event := &model.Event{ID: "event-1"}
	s.Equal(5, AvailableStock(s.item(5), event, ""))
}

func (s *ServiceSuite) TestAvailableStockCountsConfirmedRentals() {
	event := &model.Event{
		ID: "event-1",
		Attendees: []model.Attendee{
			{PlayerID: "player-1", RentedGearIDs: []model.ItemID{"item-1"}},
			{PlayerID: "player-2", RentedGearIDs: []model.ItemID{"item-1", "item-2"}},
		},
	}
	s.Equal(3, AvailableStock(s.item(5), event, ""))
}

func (s *ServiceSuite) TestAvailableStockCountsPendingRequests() {
	event := &model.Event{
		ID: "event-1",
		RentalSignups: []model.RentalSignup{
			{PlayerID: "player-1", RequestedGearIDs: []model.ItemID{"item-1"}},
		},
	}
	s.Equal(4, AvailableStock(s.item(5), event, ""))
}

func (s *ServiceSuite) TestAvailableStockExcludesOwnPendingRequest() {
	event := &model.Event{
		ID: "event-1",
		RentalSignups: []model.RentalSignup{
			{PlayerID: "player-1", RequestedGearIDs: []model.ItemID{"item-1"}},
			{PlayerID: "player-2", RequestedGearIDs: []model.ItemID{"item-1"}},
		},
	}

	// player-1 editing their signup is not blocked by their own unit
	s.Equal(0, AvailableStock(s.item(2), event, ""))
	s.Equal(1, AvailableStock(s.item(2), event, "player-1"))
}

func (s *ServiceSuite) TestAvailableStockFloorsAtZero() {
	event := &model.Event{
		ID: "event-1",
		Attendees: []model.Attendee{
			{PlayerID: "player-1", RentedGearIDs: []model.ItemID{"item-1"}},
			{PlayerID: "player-2", RentedGearIDs: []model.ItemID{"item-1"}},
		},
	}
	s.Equal(0, AvailableStock(s.item(1), event, ""))
}

// CheckRentals tests

func (s *ServiceSuite) TestCheckRentalsSucceeds() {
	_ = s.storage.SaveInventoryItem(s.ctx, s.item(1))
	event := &model.Event{ID: "event-1"}

	err := s.service.CheckRentals(s.ctx, event, []model.ItemID{"item-1"}, "")
	s.NoError(err)
}

func (s *ServiceSuite) TestCheckRentalsReportsDepletedItem() {
	_ = s.storage.SaveInventoryItem(s.ctx, s.item(1))
	event := &model.Event{
		ID: "event-1",
		Attendees: []model.Attendee{
			{PlayerID: "player-1", RentedGearIDs: []model.ItemID{"item-1"}},
		},
	}

	err := s.service.CheckRentals(s.ctx, event, []model.ItemID{"item-1"}, "player-2")
	s.Require().Error(err)
	s.ErrorIs(err, model.ErrOutOfStock)

	var oos *model.OutOfStockError
	s.Require().ErrorAs(err, &oos)
	s.Equal(model.ItemID("item-1"), oos.ItemID)
}

func (s *ServiceSuite) TestCheckRentalsUnknownItem() {
	event := &model.Event{ID: "event-1"}
	err := s.service.CheckRentals(s.ctx, event, []model.ItemID{"nonexistent"}, "")
	s.ErrorIs(err, model.ErrItemNotFound)
}

// ForEvent tests

func (s *ServiceSuite) TestForEventReportsPerItemAvailability() {
	_ = s.storage.SaveInventoryItem(s.ctx, &model.InventoryItem{ID: "item-1", Name: "M4", Stock: 3, IsRental: true})
	_ = s.storage.SaveInventoryItem(s.ctx, &model.InventoryItem{ID: "item-2", Name: "Mask", Stock: 10, IsRental: true})

	event := &model.Event{
		ID:          "event-1",
		GearForRent: []model.ItemID{"item-1", "item-2"},
		Attendees: []model.Attendee{
			{PlayerID: "player-1", RentedGearIDs: []model.ItemID{"item-1"}},
		},
	}

	result, err := s.service.ForEvent(s.ctx, event)
	s.Require().NoError(err)
	s.Require().Len(result, 2)
	s.Equal(2, result[0].Available)
	s.Equal(10, result[1].Available)
}
