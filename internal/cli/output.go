package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Operator:
		o.printOperator(v)
	case AuthResult:
		o.printAuthResult(v)
	case Player:
		o.printPlayer(v)
	case []Player:
		o.printPlayers(v)
	case []LeaderboardEntry:
		o.printLeaderboard(v)
	case Attendee:
		o.printAttendee(v)
	case []Rank:
		o.printRanks(v)
	case Event:
		o.printEvent(v)
	case []Event:
		o.printEvents(v)
	case SettlementResult:
		o.printSettlement(v)
	case Item:
		o.printItem(v)
	case []Item:
		o.printItems(v)
	case Availability:
		o.printAvailability(v)
	case Voucher:
		o.printVoucher(v)
	case []Voucher:
		o.printVouchers(v)
	case []Transaction:
		o.printTransactions(v)
	case Summary:
		o.printSummary(v)
	case []Rule:
		o.printRules(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Operator response type (matches API)
type Operator struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
}

// AuthResult combines operator and token
type AuthResult struct {
	Operator     Operator `json:"operator"`
	SessionToken string   `json:"session_token"`
}

// Rank response type
type Rank struct {
	Name  string `json:"name"`
	Tier  string `json:"tier"`
	MinXp int    `json:"min_xp"`
}

// PlayerStats response type
type PlayerStats struct {
	Kills       int `json:"kills"`
	Deaths      int `json:"deaths"`
	Headshots   int `json:"headshots"`
	GamesPlayed int `json:"games_played"`
	Xp          int `json:"xp"`
}

// Player response type
type Player struct {
	ID       string      `json:"id"`
	Callsign string      `json:"callsign"`
	Name     string      `json:"name"`
	Status   string      `json:"status"`
	Stats    PlayerStats `json:"stats"`
	Rank     Rank        `json:"rank"`
}

// LeaderboardEntry response type
type LeaderboardEntry struct {
	Position int    `json:"position"`
	Player   Player `json:"player"`
}

// Attendee response type
type Attendee struct {
	PlayerID       string   `json:"player_id"`
	PaymentStatus  string   `json:"payment_status"`
	VoucherCode    string   `json:"voucher_code,omitempty"`
	RentedGearIDs  []string `json:"rented_gear_ids,omitempty"`
	DiscountAmount int      `json:"discount_amount,omitempty"`
}

// Teams response type
type Teams struct {
	SideA []string `json:"side_a"`
	SideB []string `json:"side_b"`
}

// Event response type
type Event struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Date            time.Time  `json:"date"`
	Location        string     `json:"location"`
	Status          string     `json:"status"`
	GameFee         int        `json:"game_fee"`
	SignedUpPlayers []string   `json:"signed_up_players"`
	Attendees       []Attendee `json:"attendees"`
	AbsentPlayers   []string   `json:"absent_players"`
	Teams           *Teams     `json:"teams,omitempty"`
	ClockRunning    bool       `json:"clock_running"`
	ElapsedSeconds  int        `json:"elapsed_seconds"`
}

// SettlementOutcome response type
type SettlementOutcome struct {
	Player   Player `json:"player"`
	XpEarned int    `json:"xp_earned"`
}

// SettlementResult response type
type SettlementResult struct {
	EventID      string              `json:"event_id"`
	Outcomes     []SettlementOutcome `json:"outcomes"`
	Transactions []Transaction       `json:"transactions"`
}

// Item response type
type Item struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	SalePrice   int    `json:"sale_price"`
	Stock       int    `json:"stock"`
	IsRental    bool   `json:"is_rental"`
}

// ItemAvailability response type
type ItemAvailability struct {
	Item      Item `json:"item"`
	Available int  `json:"available"`
}

// Availability response type
type Availability struct {
	EventID string             `json:"event_id"`
	Items   []ItemAvailability `json:"items"`
}

// Voucher response type
type Voucher struct {
	ID            string `json:"id"`
	Code          string `json:"code"`
	DiscountValue int    `json:"discount_value"`
	DiscountType  string `json:"discount_type"`
	Status        string `json:"status"`
}

// Transaction response type
type Transaction struct {
	ID          string    `json:"id"`
	Date        time.Time `json:"date"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Amount      int       `json:"amount"`
}

// Summary response type
type Summary struct {
	EventRevenue  int `json:"event_revenue"`
	RentalRevenue int `json:"rental_revenue"`
	RetailRevenue int `json:"retail_revenue"`
	Expenses      int `json:"expenses"`
	Net           int `json:"net"`
}

// Rule response type
type Rule struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Xp   int    `json:"xp"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printOperator(op Operator) {
	fmt.Printf("Operator: %s (%s)\n", op.Username, op.ID)
	if op.DisplayName != "" {
		fmt.Printf("Display Name: %s\n", op.DisplayName)
	}
}

func (o *Output) printAuthResult(a AuthResult) {
	o.printOperator(a.Operator)
	fmt.Printf("Token: %s\n", a.SessionToken)
}

func (o *Output) printPlayer(p Player) {
	fmt.Printf("Player: %s (%s)\n", p.Callsign, p.ID)
	fmt.Printf("Name: %s\n", p.Name)
	fmt.Printf("Status: %s\n", p.Status)
	fmt.Printf("Rank: %s\n", p.Rank.Name)
	fmt.Printf("XP: %d  K/D/HS: %d/%d/%d  Games: %d\n",
		p.Stats.Xp, p.Stats.Kills, p.Stats.Deaths, p.Stats.Headshots, p.Stats.GamesPlayed)
}

func (o *Output) printPlayers(players []Player) {
	fmt.Printf("Players (%d):\n", len(players))
	for _, p := range players {
		fmt.Printf("  - %s (%s) %s, %d XP [%s]\n", p.Callsign, p.ID, p.Rank.Name, p.Stats.Xp, p.Status)
	}
}

func (o *Output) printLeaderboard(entries []LeaderboardEntry) {
	fmt.Printf("Leaderboard (%d):\n", len(entries))
	for _, e := range entries {
		fmt.Printf("  %2d. %s - %d XP (%s)\n", e.Position, e.Player.Callsign, e.Player.Stats.Xp, e.Player.Rank.Name)
	}
}

func (o *Output) printAttendee(a Attendee) {
	fmt.Printf("Admitted: %s [%s]\n", a.PlayerID, a.PaymentStatus)
	if a.VoucherCode != "" {
		fmt.Printf("Voucher: %s\n", a.VoucherCode)
	}
	if a.DiscountAmount > 0 {
		fmt.Printf("Discount: %d\n", a.DiscountAmount)
	}
	if len(a.RentedGearIDs) > 0 {
		fmt.Printf("Rented Gear: %s\n", strings.Join(a.RentedGearIDs, ", "))
	}
}

func (o *Output) printRanks(ranks []Rank) {
	fmt.Printf("Ranks (%d):\n", len(ranks))
	for _, r := range ranks {
		fmt.Printf("  - %-20s %6d XP  [%s]\n", r.Name, r.MinXp, r.Tier)
	}
}

func (o *Output) printEvent(e Event) {
	fmt.Printf("Event: %s (%s)\n", e.Title, e.ID)
	fmt.Printf("Date: %s\n", e.Date.Format(time.RFC1123))
	if e.Location != "" {
		fmt.Printf("Location: %s\n", e.Location)
	}
	fmt.Printf("Status: %s\n", e.Status)
	fmt.Printf("Game Fee: %d\n", e.GameFee)

	if len(e.SignedUpPlayers) > 0 {
		fmt.Printf("Signed Up: %s\n", strings.Join(e.SignedUpPlayers, ", "))
	}
	if len(e.Attendees) > 0 {
		fmt.Printf("Attendees (%d):\n", len(e.Attendees))
		for _, a := range e.Attendees {
			extra := ""
			if a.DiscountAmount > 0 {
				extra = fmt.Sprintf(" (discount %d)", a.DiscountAmount)
			}
			fmt.Printf("  - %s [%s]%s\n", a.PlayerID, a.PaymentStatus, extra)
		}
	}
	if len(e.AbsentPlayers) > 0 {
		fmt.Printf("Absent: %s\n", strings.Join(e.AbsentPlayers, ", "))
	}
	if e.Teams != nil {
		fmt.Printf("Side A: %s\n", strings.Join(e.Teams.SideA, ", "))
		fmt.Printf("Side B: %s\n", strings.Join(e.Teams.SideB, ", "))
	}

	clockState := "stopped"
	if e.ClockRunning {
		clockState = "running"
	}
	fmt.Printf("Clock: %s (%s elapsed)\n", clockState, (time.Duration(e.ElapsedSeconds) * time.Second).String())
}

func (o *Output) printEvents(events []Event) {
	fmt.Printf("Events (%d):\n", len(events))
	for _, e := range events {
		fmt.Printf("  - %s: %s on %s [%s]\n", e.ID, e.Title, e.Date.Format("2006-01-02"), e.Status)
	}
}

func (o *Output) printSettlement(s SettlementResult) {
	fmt.Printf("Event %s settled\n", s.EventID)
	fmt.Printf("Outcomes (%d):\n", len(s.Outcomes))
	for _, out := range s.Outcomes {
		fmt.Printf("  - %s: +%d XP, now %d (%s)\n",
			out.Player.Callsign, out.XpEarned, out.Player.Stats.Xp, out.Player.Rank.Name)
	}
	fmt.Printf("Ledger entries: %d\n", len(s.Transactions))
}

func (o *Output) printItem(i Item) {
	fmt.Printf("Item: %s (%s)\n", i.Name, i.ID)
	if i.Description != "" {
		fmt.Printf("Description: %s\n", i.Description)
	}
	fmt.Printf("Price: %d  Stock: %d  Rental: %t\n", i.SalePrice, i.Stock, i.IsRental)
}

func (o *Output) printItems(items []Item) {
	fmt.Printf("Items (%d):\n", len(items))
	for _, i := range items {
		rental := ""
		if i.IsRental {
			rental = " (rental)"
		}
		fmt.Printf("  - %s (%s): %d, stock %d%s\n", i.Name, i.ID, i.SalePrice, i.Stock, rental)
	}
}

func (o *Output) printAvailability(a Availability) {
	fmt.Printf("Rental availability for %s:\n", a.EventID)
	for _, ia := range a.Items {
		fmt.Printf("  - %s (%s): %d of %d available\n", ia.Item.Name, ia.Item.ID, ia.Available, ia.Item.Stock)
	}
}

func (o *Output) printVoucher(v Voucher) {
	fmt.Printf("Voucher: %s (%s)\n", v.Code, v.ID)
	fmt.Printf("Discount: %d (%s)\n", v.DiscountValue, v.DiscountType)
	fmt.Printf("Status: %s\n", v.Status)
}

func (o *Output) printVouchers(vouchers []Voucher) {
	fmt.Printf("Vouchers (%d):\n", len(vouchers))
	for _, v := range vouchers {
		fmt.Printf("  - %s: %d (%s) [%s]\n", v.Code, v.DiscountValue, v.DiscountType, v.Status)
	}
}

func (o *Output) printTransactions(txns []Transaction) {
	fmt.Printf("Transactions (%d):\n", len(txns))
	for _, t := range txns {
		fmt.Printf("  - %s  %-15s %6d  %s\n", t.Date.Format("2006-01-02"), t.Type, t.Amount, t.Description)
	}
}

func (o *Output) printSummary(s Summary) {
	fmt.Printf("Event Revenue:  %d\n", s.EventRevenue)
	fmt.Printf("Rental Revenue: %d\n", s.RentalRevenue)
	fmt.Printf("Retail Revenue: %d\n", s.RetailRevenue)
	fmt.Printf("Expenses:       %d\n", s.Expenses)
	fmt.Printf("Net:            %d\n", s.Net)
}

func (o *Output) printRules(rules []Rule) {
	fmt.Printf("XP Rules (%d):\n", len(rules))
	for _, r := range rules {
		fmt.Printf("  - %s: %d (%s)\n", r.ID, r.Xp, r.Name)
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
