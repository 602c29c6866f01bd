package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/bosjol/tactical-ops/internal/model"
	"github.com/bosjol/tactical-ops/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Player operations

func (s *Storage) SavePlayer(ctx context.Context, player *model.Player) error {
	data, err := json.Marshal(player)
	if err != nil {
		return err
	}

	// Use pipeline for atomic save + index update
	pipe := s.client.Pipeline()
	pipe.Set(ctx, playerKey(player.ID), data, 0)
	pipe.SAdd(ctx, playersIndexKey(), string(player.ID))
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) SavePlayers(ctx context.Context, players []*model.Player) error {
	pipe := s.client.Pipeline()
	for _, p := range players {
		data, err := json.Marshal(p)
		if err != nil {
			return err
		}
		pipe.Set(ctx, playerKey(p.ID), data, 0)
		pipe.SAdd(ctx, playersIndexKey(), string(p.ID))
	}
	_, err := pipe.Exec(ctx)
	return err
}

func (s *Storage) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	data, err := s.client.Get(ctx, playerKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrPlayerNotFound
		}
		return nil, err
	}

	var player model.Player
	if err := json.Unmarshal(data, &player); err != nil {
		return nil, err
	}
	return &player, nil
}

func (s *Storage) ListPlayers(ctx context.Context) ([]*model.Player, error) {
	ids, err := s.client.SMembers(ctx, playersIndexKey()).Result()
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []*model.Player{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = playerKey(model.PlayerID(id))
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	players := make([]*model.Player, 0, len(values))
	for _, val := range values {
		if val == nil {
			continue
		}
		var player model.Player
		if err := json.Unmarshal([]byte(val.(string)), &player); err != nil {
			continue // Skip invalid data
		}
		players = append(players, &player)
	}
	return players, nil
}

func (s *Storage) DeletePlayer(ctx context.Context, id model.PlayerID) error {
	pipe := s.client.Pipeline()
	pipe.Del(ctx, playerKey(id))
	pipe.SRem(ctx, playersIndexKey(), string(id))
	_, err := pipe.Exec(ctx)
	return err
}

// Event operations

func (s *Storage) SaveEvent(ctx context.Context, event *model.Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	pipe := s.client.Pipeline()
	pipe.Set(ctx, eventKey(event.ID), data, 0)
	pipe.SAdd(ctx, eventsIndexKey(), string(event.ID))
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetEvent(ctx context.Context, id model.EventID) (*model.Event, error) {
	data, err := s.client.Get(ctx, eventKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrEventNotFound
		}
		return nil, err
	}

	var event model.Event
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

func (s *Storage) ListEvents(ctx context.Context) ([]*model.Event, error) {
	ids, err := s.client.SMembers(ctx, eventsIndexKey()).Result()
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []*model.Event{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = eventKey(model.EventID(id))
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	events := make([]*model.Event, 0, len(values))
	for _, val := range values {
		if val == nil {
			continue
		}
		var event model.Event
		if err := json.Unmarshal([]byte(val.(string)), &event); err != nil {
			continue // Skip invalid data
		}
		events = append(events, &event)
	}
	return events, nil
}

func (s *Storage) DeleteEvent(ctx context.Context, id model.EventID) error {
	pipe := s.client.Pipeline()
	pipe.Del(ctx, eventKey(id))
	pipe.SRem(ctx, eventsIndexKey(), string(id))
	_, err := pipe.Exec(ctx)
	return err
}

// Voucher operations

func (s *Storage) SaveVoucher(ctx context.Context, voucher *model.Voucher) error {
	data, err := json.Marshal(voucher)
	if err != nil {
		return err
	}

	// Save + code index update in one pipeline
	pipe := s.client.Pipeline()
	pipe.Set(ctx, voucherKey(voucher.ID), data, 0)
	pipe.Set(ctx, voucherCodeIndexKey(voucher.Code), voucher.ID, 0)
	pipe.SAdd(ctx, vouchersIndexKey(), voucher.ID)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetVoucher(ctx context.Context, id string) (*model.Voucher, error) {
	data, err := s.client.Get(ctx, voucherKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrVoucherNotFound
		}
		return nil, err
	}

	var voucher model.Voucher
	if err := json.Unmarshal(data, &voucher); err != nil {
		return nil, err
	}
	return &voucher, nil
}

func (s *Storage) GetVoucherByCode(ctx context.Context, code string) (*model.Voucher, error) {
	id, err := s.client.Get(ctx, voucherCodeIndexKey(code)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrVoucherNotFound
		}
		return nil, err
	}

	return s.GetVoucher(ctx, id)
}

func (s *Storage) ListVouchers(ctx context.Context) ([]*model.Voucher, error) {
	ids, err := s.client.SMembers(ctx, vouchersIndexKey()).Result()
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []*model.Voucher{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = voucherKey(id)
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	vouchers := make([]*model.Voucher, 0, len(values))
	for _, val := range values {
		if val == nil {
			continue
		}
		var voucher model.Voucher
		if err := json.Unmarshal([]byte(val.(string)), &voucher); err != nil {
			continue // Skip invalid data
		}
		vouchers = append(vouchers, &voucher)
	}
	return vouchers, nil
}

// Inventory operations

func (s *Storage) SaveInventoryItem(ctx context.Context, item *model.InventoryItem) error {
	data, err := json.Marshal(item)
	if err != nil {
		return err
	}

	pipe := s.client.Pipeline()
	pipe.Set(ctx, inventoryItemKey(item.ID), data, 0)
	pipe.SAdd(ctx, inventoryIndexKey(), string(item.ID))
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetInventoryItem(ctx context.Context, id model.ItemID) (*model.InventoryItem, error) {
	data, err := s.client.Get(ctx, inventoryItemKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrItemNotFound
		}
		return nil, err
	}

	var item model.InventoryItem
	if err := json.Unmarshal(data, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Storage) ListInventory(ctx context.Context) ([]*model.InventoryItem, error) {
	ids, err := s.client.SMembers(ctx, inventoryIndexKey()).Result()
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []*model.InventoryItem{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = inventoryItemKey(model.ItemID(id))
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	items := make([]*model.InventoryItem, 0, len(values))
	for _, val := range values {
		if val == nil {
			continue
		}
		var item model.InventoryItem
		if err := json.Unmarshal([]byte(val.(string)), &item); err != nil {
			continue // Skip invalid data
		}
		items = append(items, &item)
	}
	return items, nil
}

// Gamification rule operations

func (s *Storage) SaveRule(ctx context.Context, rule *model.XpRule) error {
	data, err := json.Marshal(rule)
	if err != nil {
		return err
	}

	pipe := s.client.Pipeline()
	pipe.Set(ctx, ruleKey(rule.ID), data, 0)
	pipe.SAdd(ctx, rulesIndexKey(), string(rule.ID))
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetRule(ctx context.Context, id model.RuleID) (*model.XpRule, error) {
	data, err := s.client.Get(ctx, ruleKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrRuleNotFound
		}
		return nil, err
	}

	var rule model.XpRule
	if err := json.Unmarshal(data, &rule); err != nil {
		return nil, err
	}
	return &rule, nil
}

func (s *Storage) ListRules(ctx context.Context) ([]*model.XpRule, error) {
	ids, err := s.client.SMembers(ctx, rulesIndexKey()).Result()
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []*model.XpRule{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = ruleKey(model.RuleID(id))
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	rules := make([]*model.XpRule, 0, len(values))
	for _, val := range values {
		if val == nil {
			continue
		}
		var rule model.XpRule
		if err := json.Unmarshal([]byte(val.(string)), &rule); err != nil {
			continue // Skip invalid data
		}
		rules = append(rules, &rule)
	}
	return rules, nil
}

// Operator operations

func (s *Storage) SaveOperator(ctx context.Context, op *model.Operator) error {
	data, err := json.Marshal(op)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, operatorKey(op.Username), data, 0).Err()
}

func (s *Storage) GetOperatorByUsername(ctx context.Context, username string) (*model.Operator, error) {
	data, err := s.client.Get(ctx, operatorKey(username)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrOperatorNotFound
		}
		return nil, err
	}

	var op model.Operator
	if err := json.Unmarshal(data, &op); err != nil {
		return nil, err
	}
	return &op, nil
}

// Ledger operations

func (s *Storage) AppendTransactions(ctx context.Context, txns []*model.Transaction) error {
	if len(txns) == 0 {
		return nil
	}

	// RPUSH preserves append order; entries are never rewritten
	entries := make([]interface{}, len(txns))
	for i, txn := range txns {
		data, err := json.Marshal(txn)
		if err != nil {
			return err
		}
		entries[i] = data
	}
	return s.client.RPush(ctx, ledgerKey(), entries...).Err()
}

func (s *Storage) ListTransactions(ctx context.Context) ([]*model.Transaction, error) {
	values, err := s.client.LRange(ctx, ledgerKey(), 0, -1).Result()
	if err != nil {
		return nil, err
	}

	txns := make([]*model.Transaction, 0, len(values))
	for _, val := range values {
		var txn model.Transaction
		if err := json.Unmarshal([]byte(val), &txn); err != nil {
			continue // Skip invalid data
		}
		txns = append(txns, &txn)
	}
	return txns, nil
}
