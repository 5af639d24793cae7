package booking

import (
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/illuminado/illuminado/pkg/inventory"
	"github.com/illuminado/illuminado/pkg/ledger"
	"github.com/illuminado/illuminado/pkg/profile"
	"github.com/illuminado/illuminado/pkg/transit"
)

// Engine orchestrates a purchase across the inventory store, the booking
// ledger and the profile store. It owns no state of its own; the mutex
// serializes purchases so the availability check and the seat decrement
// cannot interleave between concurrent callers.
type Engine struct {
	mutex sync.Mutex

	inventory *inventory.Store
	ledger    *ledger.Ledger
	profiles  *profile.Store
}

func NewEngine(inventoryStore *inventory.Store, bookingLedger *ledger.Ledger, profiles *profile.Store) *Engine {
	return &Engine{
		inventory: inventoryStore,
		ledger:    bookingLedger,
		profiles:  profiles,
	}
}

// PurchaseRequest carries everything a rider supplies for one ticket.
// Luggage defaults to the small (free) option, Provider to the rider's
// preferred payment method, Seat to unassigned.
type PurchaseRequest struct {
	Route    string `json:"route"`
	Username string `json:"user"`
	Luggage  string `json:"luggage"`
	Provider string `json:"provider"`
	Seat     string `json:"seat"`
}

// PurchaseResult is a successful purchase. Warnings carry persistence
// failures: the booking happened and is held in memory, but one of the
// stores could not be flushed and the state may not survive a restart.
type PurchaseResult struct {
	Entry transit.BookingEntry `json:"entry" groups:"basic,detail"`

	DiscountPercent int    `json:"discount_percent" groups:"basic,detail"`
	DiscountAmount  int    `json:"discount_amount" groups:"basic,detail"`
	LoyaltyPoints   int    `json:"loyalty_points" groups:"basic,detail"`
	USSDCode        string `json:"ussd_code" groups:"basic,detail"`

	Warnings []string `json:"warnings,omitempty" groups:"basic,detail"`
}

// Purchase runs the full booking sequence: availability check, price
// computation with the rider's loyalty discount, seat commit, ledger append
// and profile update. Nothing is mutated if the route is unknown, the input
// is invalid or the route is sold out.
func (e *Engine) Purchase(request PurchaseRequest) (*PurchaseResult, error) {
	e.mutex.Lock()
	defer e.mutex.Unlock()

	username := request.Username
	if username == "" {
		username = "guest"
	}

	definition, err := e.inventory.Definition(request.Route)
	if err != nil {
		return nil, err
	}

	seats, err := e.inventory.SeatsRemaining(request.Route)
	if err != nil {
		return nil, err
	}
	if seats == 0 {
		return nil, transit.SoldOutError{Route: request.Route}
	}

	luggageID := request.Luggage
	if luggageID == "" {
		luggageID = transit.DefaultLuggage
	}
	luggage, ok := transit.LuggageByID(luggageID)
	if !ok {
		return nil, transit.ValidationError{Field: "luggage", Msg: "unknown luggage option " + luggageID}
	}

	riderProfile := e.profiles.Get(username)

	providerName := request.Provider
	if providerName == "" {
		providerName = riderProfile.PreferredPayment
	}
	provider, ok := transit.ProviderByName(providerName)
	if !ok {
		return nil, transit.ValidationError{Field: "provider", Msg: "unknown payment provider " + providerName}
	}

	subtotal := definition.BasePrice + luggage.Price
	discountPercent := transit.CurrentDiscount(riderProfile.TotalRides)
	discountAmount := subtotal * discountPercent / 100
	finalPrice := subtotal - discountAmount

	var warnings []string

	// Departure captured after the schedule advance - the ticket names the
	// slot the rider actually boards.
	departure, err := e.inventory.CommitSale(request.Route)
	if err != nil {
		if !transit.IsPersistence(err) {
			return nil, err
		}
		warnings = append(warnings, err.Error())
	}

	seat := request.Seat
	if seat == "" {
		seat = transit.SeatUnassigned
	}

	entry := transit.BookingEntry{
		RouteName:     definition.Name,
		Destination:   definition.Destination,
		Departure:     departure,
		BasePrice:     definition.BasePrice,
		LuggagePrice:  luggage.Price,
		TotalPrice:    finalPrice,
		PaymentMethod: provider.Name,
		Date:          time.Now().Format(transit.BookingDateLayout),
		Username:      username,
		Seat:          seat,
	}

	if err := e.ledger.Append(entry); err != nil {
		warnings = append(warnings, err.Error())
	}

	pointsEarned := finalPrice / 100
	updatedProfile, err := e.profiles.RecordRide(username, pointsEarned)
	if err != nil {
		warnings = append(warnings, err.Error())
	}

	if len(warnings) > 0 {
		log.Warn().Strs("warnings", warnings).Str("route", entry.RouteName).Msg("Booking completed with degraded durability")
	}

	return &PurchaseResult{
		Entry:           entry,
		DiscountPercent: discountPercent,
		DiscountAmount:  discountAmount,
		LoyaltyPoints:   updatedProfile.LoyaltyPoints,
		USSDCode:        provider.USSDCode(finalPrice),
		Warnings:        warnings,
	}, nil
}

// ResetAll reinitializes every route to full capacity and schedule start.
func (e *Engine) ResetAll() error {
	e.mutex.Lock()
	defer e.mutex.Unlock()

	return e.inventory.ResetAll()
}

// Board returns the live departure board.
func (e *Engine) Board() []inventory.BoardEntry {
	return e.inventory.Board()
}

// History returns up to count bookings, most recent first; count <= 0 means
// all of them.
func (e *Engine) History(count int) []transit.BookingEntry {
	return e.ledger.Recent(count)
}

// Export writes the tabular CSV snapshot of the ledger.
func (e *Engine) Export(path string) error {
	return e.ledger.ExportCSV(path)
}

// Inventory exposes the underlying store for read-only route lookups.
func (e *Engine) Inventory() *inventory.Store {
	return e.inventory
}

// Profiles exposes the underlying profile store.
func (e *Engine) Profiles() *profile.Store {
	return e.profiles
}
