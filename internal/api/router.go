package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/bosjol/tactical-ops/internal/api/handler"
	"github.com/bosjol/tactical-ops/internal/api/middleware"
	"github.com/bosjol/tactical-ops/internal/dependencies/clock"
	"github.com/bosjol/tactical-ops/internal/services/auth"
	"github.com/bosjol/tactical-ops/internal/services/availability"
	"github.com/bosjol/tactical-ops/internal/services/event"
	"github.com/bosjol/tactical-ops/internal/services/gamification"
	"github.com/bosjol/tactical-ops/internal/services/inventory"
	"github.com/bosjol/tactical-ops/internal/services/ledger"
	"github.com/bosjol/tactical-ops/internal/services/roster"
	"github.com/bosjol/tactical-ops/internal/services/voucher"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger              *slog.Logger
	Clock               clock.Clock
	AuthService         *auth.Service
	RosterService       *roster.Service
	EventController     *event.Controller
	VoucherService      *voucher.Service
	InventoryService    *inventory.Service
	AvailabilityService *availability.Service
	LedgerService       *ledger.Service
	GamificationService *gamification.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	operatorHandler := handler.NewOperatorHandler(cfg.AuthService)
	playerHandler := handler.NewPlayerHandler(cfg.RosterService)
	eventHandler := handler.NewEventHandler(cfg.EventController, cfg.AvailabilityService, cfg.Clock)
	voucherHandler := handler.NewVoucherHandler(cfg.VoucherService)
	inventoryHandler := handler.NewInventoryHandler(cfg.InventoryService)
	ledgerHandler := handler.NewLedgerHandler(cfg.LedgerService)
	rulesHandler := handler.NewRulesHandler(cfg.GamificationService)

	// Create middleware
	authMiddleware := middleware.Auth(cfg.AuthService)
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Operator routes (no auth required for registering/logging in)
	api.HandleFunc("/operators/register", operatorHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/operators/login", operatorHandler.Login).Methods(http.MethodPost)

	// Protected operator routes
	operatorProtected := api.PathPrefix("/operators").Subrouter()
	operatorProtected.Use(authMiddleware)
	operatorProtected.HandleFunc("/logout", operatorHandler.Logout).Methods(http.MethodPost)
	operatorProtected.HandleFunc("/me", operatorHandler.GetMe).Methods(http.MethodGet)

	// Roster routes (all require auth)
	players := api.PathPrefix("/players").Subrouter()
	players.Use(authMiddleware)
	players.HandleFunc("", playerHandler.Create).Methods(http.MethodPost)
	players.HandleFunc("", playerHandler.List).Methods(http.MethodGet)
	players.HandleFunc("/leaderboard", playerHandler.Leaderboard).Methods(http.MethodGet)
	players.HandleFunc("/{player_id}", playerHandler.Get).Methods(http.MethodGet)
	players.HandleFunc("/{player_id}", playerHandler.Update).Methods(http.MethodPatch)
	players.HandleFunc("/{player_id}", playerHandler.Delete).Methods(http.MethodDelete)

	// Event lifecycle routes (all require auth)
	events := api.PathPrefix("/events").Subrouter()
	events.Use(authMiddleware)
	events.HandleFunc("", eventHandler.Create).Methods(http.MethodPost)
	events.HandleFunc("", eventHandler.List).Methods(http.MethodGet)
	events.HandleFunc("/{event_id}", eventHandler.Get).Methods(http.MethodGet)
	events.HandleFunc("/{event_id}", eventHandler.Delete).Methods(http.MethodDelete)
	events.HandleFunc("/{event_id}/signups", eventHandler.SignUp).Methods(http.MethodPost)
	events.HandleFunc("/{event_id}/signups/{player_id}", eventHandler.Withdraw).Methods(http.MethodDelete)
	events.HandleFunc("/{event_id}/admissions", eventHandler.Admit).Methods(http.MethodPost)
	events.HandleFunc("/{event_id}/absences", eventHandler.MarkAbsent).Methods(http.MethodPost)
	events.HandleFunc("/{event_id}/availability", eventHandler.Availability).Methods(http.MethodGet)
	events.HandleFunc("/{event_id}/start", eventHandler.Start).Methods(http.MethodPost)
	events.HandleFunc("/{event_id}/stats", eventHandler.RecordStat).Methods(http.MethodPost)
	events.HandleFunc("/{event_id}/clock/start", eventHandler.StartClock).Methods(http.MethodPost)
	events.HandleFunc("/{event_id}/clock/pause", eventHandler.PauseClock).Methods(http.MethodPost)
	events.HandleFunc("/{event_id}/clock/reset", eventHandler.ResetClock).Methods(http.MethodPost)
	events.HandleFunc("/{event_id}/finish", eventHandler.Finish).Methods(http.MethodPost)
	events.HandleFunc("/{event_id}/cancel", eventHandler.Cancel).Methods(http.MethodPost)

	// Voucher routes (all require auth)
	vouchers := api.PathPrefix("/vouchers").Subrouter()
	vouchers.Use(authMiddleware)
	vouchers.HandleFunc("", voucherHandler.Create).Methods(http.MethodPost)
	vouchers.HandleFunc("", voucherHandler.List).Methods(http.MethodGet)
	vouchers.HandleFunc("/validate", voucherHandler.Validate).Methods(http.MethodGet)
	vouchers.HandleFunc("/{voucher_id}/status", voucherHandler.SetStatus).Methods(http.MethodPatch)

	// Inventory routes (all require auth)
	items := api.PathPrefix("/inventory").Subrouter()
	items.Use(authMiddleware)
	items.HandleFunc("", inventoryHandler.Create).Methods(http.MethodPost)
	items.HandleFunc("", inventoryHandler.List).Methods(http.MethodGet)
	items.HandleFunc("/{item_id}", inventoryHandler.Get).Methods(http.MethodGet)
	items.HandleFunc("/{item_id}", inventoryHandler.Update).Methods(http.MethodPatch)

	// Ledger routes (all require auth)
	ledgerRoutes := api.PathPrefix("/ledger").Subrouter()
	ledgerRoutes.Use(authMiddleware)
	ledgerRoutes.HandleFunc("", ledgerHandler.List).Methods(http.MethodGet)
	ledgerRoutes.HandleFunc("/summary", ledgerHandler.Summary).Methods(http.MethodGet)
	ledgerRoutes.HandleFunc("/expenses", ledgerHandler.RecordExpense).Methods(http.MethodPost)
	ledgerRoutes.HandleFunc("/sales", ledgerHandler.RecordRetailSale).Methods(http.MethodPost)

	// Rule routes (all require auth)
	rules := api.PathPrefix("/rules").Subrouter()
	rules.Use(authMiddleware)
	rules.HandleFunc("", rulesHandler.List).Methods(http.MethodGet)
	rules.HandleFunc("/{rule_id}", rulesHandler.Update).Methods(http.MethodPatch)

	// Rank ladder (requires auth, read-only)
	ranks := api.PathPrefix("/ranks").Subrouter()
	ranks.Use(authMiddleware)
	ranks.HandleFunc("", rulesHandler.Ranks).Methods(http.MethodGet)

	// Health check endpoint (no auth)
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
