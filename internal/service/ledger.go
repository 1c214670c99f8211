package service

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/stpnv0/HotelDesk/internal/domain"
	"github.com/stpnv0/HotelDesk/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// Ledger tracks the active bookings and the per-category booked counters,
// and keeps the backing store in sync after every mutation.
//
// The application is single-threaded end to end, so Ledger is not safe
// for concurrent use.
type Ledger struct {
	catalog  *domain.Catalog
	store    ports.BookingStore
	logger   logger.Logger
	bookings []*domain.Booking
	booked   map[domain.Category]int
}

// NewLedger builds a ledger from the stored bookings. A missing or
// unreadable store is not fatal: the ledger starts empty and the failure
// is logged as a warning.
func NewLedger(ctx context.Context, catalog *domain.Catalog, store ports.BookingStore, log logger.Logger) *Ledger {
	l := &Ledger{
		catalog: catalog,
		store:   store,
		logger:  log,
		booked:  make(map[domain.Category]int),
	}

	bookings, err := store.Load(ctx)
	if err != nil {
		log.Warn("could not read stored bookings, starting with an empty ledger",
			logger.String("error", err.Error()),
		)
		return l
	}

	l.bookings = bookings
	for _, b := range bookings {
		l.booked[b.Category]++
	}

	return l
}

// Availability is the category capacity minus its booked count.
// Unknown categories have no capacity and report 0.
func (l *Ledger) Availability(cat domain.Category) int {
	return l.catalog.Capacity(cat) - l.booked[cat]
}

// Price returns the nightly price for the category.
func (l *Ledger) Price(cat domain.Category) float64 {
	return l.catalog.Price(cat)
}

// Book creates, records and persists a reservation. The total is priced
// at booking time and never recomputed. Commas in the customer name are
// replaced with spaces so the stored name matches the in-memory one.
func (l *Ledger) Book(ctx context.Context, customerName string, cat domain.Category, nights int) (*domain.Booking, error) {
	name := strings.TrimSpace(customerName)
	if name == "" {
		return nil, fmt.Errorf("%w: customer name is required", domain.ErrValidation)
	}
	if nights <= 0 {
		return nil, fmt.Errorf("%w: nights must be positive", domain.ErrValidation)
	}
	if l.Availability(cat) <= 0 {
		return nil, domain.ErrNoRoomsAvailable
	}

	booking := &domain.Booking{
		ID:           newBookingID(),
		CustomerName: strings.ReplaceAll(name, ",", " "),
		Category:     cat,
		Nights:       nights,
		Total:        l.catalog.Price(cat) * float64(nights),
		CreatedAt:    time.Now().UnixMilli(),
	}

	l.bookings = append(l.bookings, booking)
	l.booked[cat]++
	l.persist(ctx)

	l.logger.Info("booking created",
		logger.String("booking_id", booking.ID),
		logger.String("category", string(cat)),
		logger.Int("nights", nights),
	)

	return booking, nil
}

// Cancel removes the booking with the given identifier. The match is
// case-insensitive and only the first match in ledger order is removed.
// The store is rewritten only when a booking was actually removed.
func (l *Ledger) Cancel(ctx context.Context, bookingID string) error {
	for i, b := range l.bookings {
		if !strings.EqualFold(b.ID, bookingID) {
			continue
		}

		if l.booked[b.Category] > 0 {
			l.booked[b.Category]--
		}
		l.bookings = append(l.bookings[:i], l.bookings[i+1:]...)
		l.persist(ctx)

		l.logger.Info("booking cancelled",
			logger.String("booking_id", b.ID),
			logger.String("category", string(b.Category)),
		)

		return nil
	}

	return domain.ErrBookingNotFound
}

// ListAll returns the active bookings in ledger order. The result is a
// copy: mutating it does not touch ledger state.
func (l *Ledger) ListAll() []domain.Booking {
	out := make([]domain.Booking, len(l.bookings))
	for i, b := range l.bookings {
		out[i] = *b
	}
	return out
}

// FindByCustomer returns the bookings whose customer name matches
// exactly, ignoring case, in ledger order.
func (l *Ledger) FindByCustomer(name string) []domain.Booking {
	var out []domain.Booking
	for _, b := range l.bookings {
		if strings.EqualFold(b.CustomerName, name) {
			out = append(out, *b)
		}
	}
	return out
}

// persist rewrites the whole store. On failure the in-memory state stays
// authoritative: the error is logged and not retried.
func (l *Ledger) persist(ctx context.Context) {
	if err := l.store.Save(ctx, l.bookings); err != nil {
		l.logger.Warn("could not save bookings, in-memory state is ahead of the store",
			logger.String("error", err.Error()),
		)
	}
}

// newBookingID builds identifiers like B69421357: a "B" prefix, the low
// five digits of the current timestamp and a random three-digit salt.
// Uniqueness is not guaranteed and collisions are not checked.
func newBookingID() string {
	ts := time.Now().UnixMilli()
	salt := rand.IntN(900) + 100
	return strings.ToUpper(fmt.Sprintf("B%d%d", ts%100000, salt))
}
