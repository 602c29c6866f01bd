package voucher

import (
	"context"
	"log/slog"

	"github.com/bosjol/tactical-ops/internal/dependencies/clock"
	"github.com/bosjol/tactical-ops/internal/model"
	"github.com/bosjol/tactical-ops/internal/storage"
)

// Service validates and redeems discount vouchers
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a new voucher Service
func New(storage storage.Storage, clock clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
		logger:  logger,
	}
}

// Validate checks whether the player may redeem the code and returns the
// voucher. Checks run in a fixed order so the caller always sees the most
// specific failure: existence, active status, ownership, global limit,
// per-player limit.
func (s *Service) Validate(ctx context.Context, code string, playerID model.PlayerID) (*model.Voucher, error) {
	voucher, err := s.storage.GetVoucherByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	if voucher.Status != model.VoucherActive {
		return nil, model.ErrVoucherInactive
	}

	if voucher.AssignedToPlayerID != "" && voucher.AssignedToPlayerID != playerID {
		return nil, model.ErrVoucherWrongOwner
	}

	if voucher.UsageLimit > 0 && len(voucher.Redemptions) >= voucher.UsageLimit {
		return nil, model.ErrVoucherDepleted
	}

	if voucher.PerUserLimit > 0 && voucher.RedemptionsBy(playerID) >= voucher.PerUserLimit {
		return nil, model.ErrVoucherPerUserExhausted
	}

	return voucher, nil
}

// Redeem validates the code and records the redemption. When the
// redemption exhausts the global usage limit the voucher flips to
// depleted. Returns the discount amount against the event's game fee.
func (s *Service) Redeem(ctx context.Context, code string, playerID model.PlayerID, event *model.Event) (int, error) {
	voucher, err := s.Validate(ctx, code, playerID)
	if err != nil {
		return 0, err
	}

	voucher.Redemptions = append(voucher.Redemptions, model.Redemption{
		PlayerID: playerID,
		EventID:  event.ID,
		Date:     s.clock.Now(),
	})

	if voucher.UsageLimit > 0 && len(voucher.Redemptions) >= voucher.UsageLimit {
		voucher.Status = model.VoucherDepleted
	}

	if err := s.storage.SaveVoucher(ctx, voucher); err != nil {
		return 0, err
	}

	discount := voucher.DiscountOn(event.GameFee)

	s.logger.Info("voucher redeemed",
		slog.String("voucher_id", voucher.ID),
		slog.String("player_id", string(playerID)),
		slog.String("event_id", string(event.ID)),
		slog.Int("discount", discount),
	)

	return discount, nil
}

// CreateParams describe a new voucher
type CreateParams struct {
	Code               string
	Description        string
	DiscountValue      int
	DiscountType       model.DiscountType
	AssignedToPlayerID model.PlayerID
	UsageLimit         int
	PerUserLimit       int
}

// Create issues a new active voucher. Fails if another voucher already
// uses the code, compared case-insensitively.
func (s *Service) Create(ctx context.Context, params CreateParams) (*model.Voucher, error) {
	if existing, err := s.storage.GetVoucherByCode(ctx, params.Code); err == nil && existing != nil {
		return nil, model.ErrCodeTaken
	}

	voucher := &model.Voucher{
		ID:                 "v-" + model.NormalizeCode(params.Code),
		Code:               params.Code,
		Description:        params.Description,
		DiscountValue:      params.DiscountValue,
		DiscountType:       params.DiscountType,
		Status:             model.VoucherActive,
		AssignedToPlayerID: params.AssignedToPlayerID,
		UsageLimit:         params.UsageLimit,
		PerUserLimit:       params.PerUserLimit,
		Redemptions:        []model.Redemption{},
	}

	if err := s.storage.SaveVoucher(ctx, voucher); err != nil {
		return nil, err
	}

	s.logger.Info("voucher created",
		slog.String("voucher_id", voucher.ID),
		slog.Int("discount_value", params.DiscountValue),
	)

	return voucher, nil
}

// List returns all vouchers
func (s *Service) List(ctx context.Context) ([]*model.Voucher, error) {
	return s.storage.ListVouchers(ctx)
}

// SetStatus manually activates, expires, or depletes a voucher
func (s *Service) SetStatus(ctx context.Context, id string, status model.VoucherStatus) (*model.Voucher, error) {
	voucher, err := s.storage.GetVoucher(ctx, id)
	if err != nil {
		return nil, err
	}

	voucher.Status = status
	if err := s.storage.SaveVoucher(ctx, voucher); err != nil {
		return nil, err
	}
	return voucher, nil
}

// Interface for dependency injection
type ServiceInterface interface {
	Validate(ctx context.Context, code string, playerID model.PlayerID) (*model.Voucher, error)
	Redeem(ctx context.Context, code string, playerID model.PlayerID, event *model.Event) (int, error)
	Create(ctx context.Context, params CreateParams) (*model.Voucher, error)
	List(ctx context.Context) ([]*model.Voucher, error)
	SetStatus(ctx context.Context, id string, status model.VoucherStatus) (*model.Voucher, error)
}

var _ ServiceInterface = (*Service)(nil)
