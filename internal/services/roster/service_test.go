package roster

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

func (s *ServiceSuite) TestCreatePlayerSucceeds() {
	s.random.QueueString("abc123def4")

	player, err := s.service.CreatePlayer(s.ctx, "Viper", "Alice")
	s.Require().NoError(err)

	s.Equal(model.PlayerID("p-abc123def4"), player.ID)
	s.Equal("Viper", player.Callsign)
	s.Equal(model.PlayerStatusActive, player.Status)
	s.Equal(0, player.Stats.Xp)
}

func (s *ServiceSuite) TestCreatePlayerRejectsDuplicateCallsign() {
	s.random.QueueString("abc123def4", "xyz789ghi0")

	_, err := s.service.CreatePlayer(s.ctx, "Viper", "Alice")
	s.Require().NoError(err)

	_, err = s.service.CreatePlayer(s.ctx, "viper", "Bob")
	s.ErrorIs(err, model.ErrCallsignTaken)
}

func (s *ServiceSuite) TestUpdatePlayerStatus() {
	s.random.QueueString("abc123def4")
	player, _ := s.service.CreatePlayer(s.ctx, "Viper", "Alice")

	status := model.PlayerStatusOnLeave
	updated, err := s.service.UpdatePlayer(s.ctx, player.ID, UpdateParams{Status: &status})
	s.Require().NoError(err)
	s.Equal(model.PlayerStatusOnLeave, updated.Status)

	// Unset fields are untouched
	s.Equal("Viper", updated.Callsign)
}

func (s *ServiceSuite) TestUpdatePlayerCallsignCollision() {
	s.random.QueueString("abc123def4", "xyz789ghi0")
	_, _ = s.service.CreatePlayer(s.ctx, "Viper", "Alice")
	other, _ := s.service.CreatePlayer(s.ctx, "Ghost", "Bob")

	callsign := "VIPER"
	_, err := s.service.UpdatePlayer(s.ctx, other.ID, UpdateParams{Callsign: &callsign})
	s.ErrorIs(err, model.ErrCallsignTaken)
}

func (s *ServiceSuite) TestDeletePlayerRemovesRosterRow() {
	s.random.QueueString("abc123def4")
	player, _ := s.service.CreatePlayer(s.ctx, "Viper", "Alice")

	err := s.service.DeletePlayer(s.ctx, player.ID)
	s.Require().NoError(err)

	_, err = s.service.GetPlayer(s.ctx, player.ID)
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *ServiceSuite) TestDeleteUnknownPlayerFails() {
	err := s.service.DeletePlayer(s.ctx, "p-missing")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *ServiceSuite) TestListPlayersSortedByCallsign() {
	s.random.QueueString("a1", "b2", "c3")
	_, _ = s.service.CreatePlayer(s.ctx, "Viper", "Alice")
	_, _ = s.service.CreatePlayer(s.ctx, "ghost", "Bob")
	_, _ = s.service.CreatePlayer(s.ctx, "Maverick", "Carol")

	players, err := s.service.ListPlayers(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(players, 3)
	s.Equal("ghost", players[0].Callsign)
	s.Equal("Maverick", players[1].Callsign)
	s.Equal("Viper", players[2].Callsign)
}

func (s *ServiceSuite) TestLeaderboardOrdersByXpAndSkipsRetired() {
	_ = s.storage.SavePlayer(s.ctx, &model.Player{ID: "p-1", Callsign: "Viper", Status: model.PlayerStatusActive, Stats: model.PlayerStats{Xp: 100}})
	_ = s.storage.SavePlayer(s.ctx, &model.Player{ID: "p-2", Callsign: "Ghost", Status: model.PlayerStatusActive, Stats: model.PlayerStats{Xp: 600}})
	_ = s.storage.SavePlayer(s.ctx, &model.Player{ID: "p-3", Callsign: "Odin", Status: model.PlayerStatusRetired, Stats: model.PlayerStats{Xp: 9999}})

	ranked, err := s.service.Leaderboard(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(ranked, 2)
	s.Equal(model.PlayerID("p-2"), ranked[0].ID)
	s.Equal(model.PlayerID("p-1"), ranked[1].ID)
}

func (s *ServiceSuite) TestResolveRankLadder() {
	s.Equal("Trainee", model.ResolveRank(0).Name)
	s.Equal("Trainee", model.ResolveRank(-50).Name)
	s.Equal("Novice", model.ResolveRank(100).Name)
	s.Equal("Novice", model.ResolveRank(249).Name)
	s.Equal("Private 1", model.ResolveRank(600).Name)
	s.Equal("Colonel 2", model.ResolveRank(99999).Name)
}
