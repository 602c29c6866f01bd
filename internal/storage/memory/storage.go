package memory

import (
	"context"
	"sync"

	"github.com/bosjol/tactical-ops/internal/model"
	"github.com/bosjol/tactical-ops/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	players      map[model.PlayerID]*model.Player
	events       map[model.EventID]*model.Event
	vouchers     map[string]*model.Voucher
	voucherCodes map[string]string // normalized code -> voucher ID
	inventory    map[model.ItemID]*model.InventoryItem
	rules        map[model.RuleID]*model.XpRule
	operators    map[string]*model.Operator // keyed by username
	transactions []*model.Transaction
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		players:      make(map[model.PlayerID]*model.Player),
		events:       make(map[model.EventID]*model.Event),
		vouchers:     make(map[string]*model.Voucher),
		voucherCodes: make(map[string]string),
		inventory:    make(map[model.ItemID]*model.InventoryItem),
		rules:        make(map[model.RuleID]*model.XpRule),
		operators:    make(map[string]*model.Operator),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Player operations

func (s *Storage) SavePlayer(ctx context.Context, player *model.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.players[player.ID] = player
	return nil
}

func (s *Storage) SavePlayers(ctx context.Context, players []*model.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range players {
		s.players[p.ID] = p
	}
	return nil
}

func (s *Storage) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	player, ok := s.players[id]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	return player, nil
}

func (s *Storage) ListPlayers(ctx context.Context) ([]*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	players := make([]*model.Player, 0, len(s.players))
	for _, p := range s.players {
		players = append(players, p)
	}
	return players, nil
}

func (s *Storage) DeletePlayer(ctx context.Context, id model.PlayerID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.players, id)
	return nil
}

// Event operations

func (s *Storage) SaveEvent(ctx context.Context, event *model.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events[event.ID] = event
	return nil
}

func (s *Storage) GetEvent(ctx context.Context, id model.EventID) (*model.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	event, ok := s.events[id]
	if !ok {
		return nil, model.ErrEventNotFound
	}
	return event, nil
}

func (s *Storage) ListEvents(ctx context.Context) ([]*model.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	events := make([]*model.Event, 0, len(s.events))
	for _, e := range s.events {
		events = append(events, e)
	}
	return events, nil
}

func (s *Storage) DeleteEvent(ctx context.Context, id model.EventID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.events, id)
	return nil
}

// Voucher operations

func (s *Storage) SaveVoucher(ctx context.Context, voucher *model.Voucher) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vouchers[voucher.ID] = voucher
	s.voucherCodes[model.NormalizeCode(voucher.Code)] = voucher.ID
	return nil
}

func (s *Storage) GetVoucher(ctx context.Context, id string) (*model.Voucher, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	voucher, ok := s.vouchers[id]
	if !ok {
		return nil, model.ErrVoucherNotFound
	}
	return voucher, nil
}

func (s *Storage) GetVoucherByCode(ctx context.Context, code string) (*model.Voucher, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.voucherCodes[model.NormalizeCode(code)]
	if !ok {
		return nil, model.ErrVoucherNotFound
	}
	voucher, ok := s.vouchers[id]
	if !ok {
		return nil, model.ErrVoucherNotFound
	}
	return voucher, nil
}

func (s *Storage) ListVouchers(ctx context.Context) ([]*model.Voucher, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	vouchers := make([]*model.Voucher, 0, len(s.vouchers))
	for _, v := range s.vouchers {
		vouchers = append(vouchers, v)
	}
	return vouchers, nil
}

// Inventory operations

func (s *Storage) SaveInventoryItem(ctx context.Context, item *model.InventoryItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inventory[item.ID] = item
	return nil
}

func (s *Storage) GetInventoryItem(ctx context.Context, id model.ItemID) (*model.InventoryItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	item, ok := s.inventory[id]
	if !ok {
		return nil, model.ErrItemNotFound
	}
	return item, nil
}

func (s *Storage) ListInventory(ctx context.Context) ([]*model.InventoryItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]*model.InventoryItem, 0, len(s.inventory))
	for _, item := range s.inventory {
		items = append(items, item)
	}
	return items, nil
}

// Gamification rule operations

func (s *Storage) SaveRule(ctx context.Context, rule *model.XpRule) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rules[rule.ID] = rule
	return nil
}

func (s *Storage) GetRule(ctx context.Context, id model.RuleID) (*model.XpRule, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rule, ok := s.rules[id]
	if !ok {
		return nil, model.ErrRuleNotFound
	}
	return rule, nil
}

func (s *Storage) ListRules(ctx context.Context) ([]*model.XpRule, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rules := make([]*model.XpRule, 0, len(s.rules))
	for _, r := range s.rules {
		rules = append(rules, r)
	}
	return rules, nil
}

// Operator operations

func (s *Storage) SaveOperator(ctx context.Context, op *model.Operator) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.operators[op.Username] = op
	return nil
}

func (s *Storage) GetOperatorByUsername(ctx context.Context, username string) (*model.Operator, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	op, ok := s.operators[username]
	if !ok {
		return nil, model.ErrOperatorNotFound
	}
	return op, nil
}

// Ledger operations

func (s *Storage) AppendTransactions(ctx context.Context, txns []*model.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transactions = append(s.transactions, txns...)
	return nil
}

func (s *Storage) ListTransactions(ctx context.Context) ([]*model.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]*model.Transaction, len(s.transactions))
	copy(result, s.transactions)
	return result, nil
}
