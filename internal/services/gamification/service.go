package gamification

import (
	"context"
	"errors"
	"log/slog"
	"sort"

	"github.com/bosjol/tactical-ops/internal/model"
	"github.com/bosjol/tactical-ops/internal/storage"
)

// Service manages the configurable XP rules
type Service struct {
	storage storage.Storage
	logger  *slog.Logger
}

// New creates a new gamification Service
func New(storage storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger,
	}
}

// SeedDefaults writes the default rule set for any rule not already
// stored. Existing rules are never overwritten.
func (s *Service) SeedDefaults(ctx context.Context) error {
	for _, rule := range model.DefaultRules() {
		_, err := s.storage.GetRule(ctx, rule.ID)
		if err == nil {
			continue
		}
		if !errors.Is(err, model.ErrRuleNotFound) {
			return err
		}
		r := rule
		if err := s.storage.SaveRule(ctx, &r); err != nil {
			return err
		}
	}
	return nil
}

// ListRules returns all rules in a stable order
func (s *Service) ListRules(ctx context.Context) ([]*model.XpRule, error) {
	rules, err := s.storage.ListRules(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(rules, func(i, j int) bool {
		return rules[i].ID < rules[j].ID
	})
	return rules, nil
}

// UpdateRule changes a rule's XP value. Only stored rules can be
// updated; the rule set itself is fixed.
func (s *Service) UpdateRule(ctx context.Context, id model.RuleID, xp int) (*model.XpRule, error) {
	rule, err := s.storage.GetRule(ctx, id)
	if err != nil {
		return nil, err
	}

	rule.Xp = xp
	if err := s.storage.SaveRule(ctx, rule); err != nil {
		return nil, err
	}

	s.logger.Info("rule updated",
		slog.String("rule_id", string(id)),
		slog.Int("xp", xp),
	)

	return rule, nil
}

// Interface for dependency injection
type ServiceInterface interface {
	SeedDefaults(ctx context.Context) error
	ListRules(ctx context.Context) ([]*model.XpRule, error)
	UpdateRule(ctx context.Context, id model.RuleID, xp int) (*model.XpRule, error)
}

var _ ServiceInterface = (*Service)(nil)
