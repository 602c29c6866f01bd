package roster

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"github.com/bosjol/tactical-ops/internal/dependencies/clock"
	"github.com/bosjol/tactical-ops/internal/dependencies/random"
	"github.com/bosjol/tactical-ops/internal/model"
	"github.com/bosjol/tactical-ops/internal/storage"
)

const idAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// Service manages the player roster
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	random  random.Random
	logger  *slog.Logger
}

// New creates a new roster Service
func New(storage storage.Storage, clock clock.Clock, random random.Random, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
		random:  random,
		logger:  logger,
	}
}

// CreatePlayer adds a new active player to the roster. Callsigns must be
// unique, compared case-insensitively.
func (s *Service) CreatePlayer(ctx context.Context, callsign, name string) (*model.Player, error) {
	if err := s.checkCallsign(ctx, callsign, ""); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	player := &model.Player{
		ID:           model.PlayerID("p-" + s.random.String(10, idAlphabet)),
		Callsign:     callsign,
		Name:         name,
		Status:       model.PlayerStatusActive,
		MatchHistory: []model.MatchRecord{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.storage.SavePlayer(ctx, player); err != nil {
		return nil, err
	}

	s.logger.Info("player created",
		slog.String("player_id", string(player.ID)),
		slog.String("callsign", callsign),
	)

	return player, nil
}

// GetPlayer retrieves a player by ID
func (s *Service) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	return s.storage.GetPlayer(ctx, id)
}

// UpdateParams are the editable fields of a player record. Nil fields
// are left unchanged.
type UpdateParams struct {
	Callsign *string
	Name     *string
	Status   *model.PlayerStatus
}

// UpdatePlayer edits roster details. Stats and match history are only
// ever written by settlement, never through here.
func (s *Service) UpdatePlayer(ctx context.Context, id model.PlayerID, params UpdateParams) (*model.Player, error) {
	player, err := s.storage.GetPlayer(ctx, id)
	if err != nil {
		return nil, err
	}

	if params.Callsign != nil && *params.Callsign != player.Callsign {
		if err := s.checkCallsign(ctx, *params.Callsign, id); err != nil {
			return nil, err
		}
		player.Callsign = *params.Callsign
	}
	if params.Name != nil {
		player.Name = *params.Name
	}
	if params.Status != nil {
		player.Status = *params.Status
	}
	player.UpdatedAt = s.clock.Now()

	if err := s.storage.SavePlayer(ctx, player); err != nil {
		return nil, err
	}
	return player, nil
}

// ListPlayers returns the roster sorted by callsign
func (s *Service) ListPlayers(ctx context.Context) ([]*model.Player, error) {
	players, err := s.storage.ListPlayers(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(players, func(i, j int) bool {
		return strings.ToLower(players[i].Callsign) < strings.ToLower(players[j].Callsign)
	})
	return players, nil
}

// Leaderboard returns the roster sorted by lifetime rank points,
// highest first. Retired players are excluded.
func (s *Service) Leaderboard(ctx context.Context) ([]*model.Player, error) {
	players, err := s.storage.ListPlayers(ctx)
	if err != nil {
		return nil, err
	}

	ranked := make([]*model.Player, 0, len(players))
	for _, p := range players {
		if p.Status == model.PlayerStatusRetired {
			continue
		}
		ranked = append(ranked, p)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Stats.Xp != ranked[j].Stats.Xp {
			return ranked[i].Stats.Xp > ranked[j].Stats.Xp
		}
		return ranked[i].Callsign < ranked[j].Callsign
	})
	return ranked, nil
}

// DeletePlayer removes a player from the roster. Their ledger entries
// and match records on past events are kept; only the roster row goes.
func (s *Service) DeletePlayer(ctx context.Context, id model.PlayerID) error {
	if _, err := s.storage.GetPlayer(ctx, id); err != nil {
		return err
	}

	if err := s.storage.DeletePlayer(ctx, id); err != nil {
		return err
	}

	s.logger.Info("player deleted",
		slog.String("player_id", string(id)),
	)

	return nil
}

func (s *Service) checkCallsign(ctx context.Context, callsign string, selfID model.PlayerID) error {
	players, err := s.storage.ListPlayers(ctx)
	if err != nil {
		return err
	}
	for _, p := range players {
		if p.ID != selfID && strings.EqualFold(p.Callsign, callsign) {
			return model.ErrCallsignTaken
		}
	}
	return nil
}

// Interface for dependency injection
type ServiceInterface interface {
	CreatePlayer(ctx context.Context, callsign, name string) (*model.Player, error)
	GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error)
	UpdatePlayer(ctx context.Context, id model.PlayerID, params UpdateParams) (*model.Player, error)
	ListPlayers(ctx context.Context) ([]*model.Player, error)
	Leaderboard(ctx context.Context) ([]*model.Player, error)
	DeletePlayer(ctx context.Context, id model.PlayerID) error
}

var _ ServiceInterface = (*Service)(nil)
