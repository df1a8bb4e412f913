// Package ledger implements the in-memory seat state machine. A Ledger owns
// every seat in the venue and is the only component allowed to mutate seat
// state; transport handlers interact with it through domain.SeatLedger.
package ledger

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/cinehall/booking-api/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultHoldTTL bounds how long an abandoned session keeps a seat. The value
// mirrors the usual checkout hold window for ticketing carts.
const DefaultHoldTTL = 10 * time.Minute

type seatRecord struct {
	row      int
	col      int
	category domain.SeatCategory
	price    decimal.Decimal

	state        domain.SeatState
	holderID     string
	holdDeadline time.Time
	patronName   string
}

// expired reports whether a hold has passed its deadline. Expired holds are
// treated as available by every operation, so correctness never depends on
// how often the background sweep runs.
func (s *seatRecord) expired(now time.Time) bool {
	return s.state == domain.SeatHeld && now.After(s.holdDeadline)
}

func (s *seatRecord) clear() {
	s.state = domain.SeatAvailable
	s.holderID = ""
	s.holdDeadline = time.Time{}
	s.patronName = ""
}

func (s *seatRecord) snapshot(id domain.SeatID, now time.Time) domain.Seat {
	seat := domain.Seat{
		ID:       id,
		Row:      s.row,
		Col:      s.col,
		Category: s.category,
		Price:    s.price,
		State:    s.state,
	}

	switch {
	case s.expired(now):
		seat.State = domain.SeatAvailable
	case s.state == domain.SeatHeld:
		seat.HolderID = s.holderID
		seat.HoldExpiresAt = s.holdDeadline
	case s.state == domain.SeatBooked:
		seat.PatronName = s.patronName
	}

	return seat
}

// Ledger is a concurrency-safe implementation of domain.SeatLedger. A single
// RWMutex guards the whole table: every mutation runs under the write lock,
// so multi-seat commits are atomic by construction and snapshots are always
// consistent. All critical sections are short in-memory work, which keeps
// lock waits bounded without per-seat locking.
type Ledger struct {
	mu    sync.RWMutex
	seats map[domain.SeatID]*seatRecord
	order []domain.SeatID

	holdTTL time.Duration
	now     func() time.Time
	logger  *slog.Logger
	metrics *metrics
}

var _ domain.SeatLedger = (*Ledger)(nil)

type Option func(*Ledger)

// WithHoldTTL overrides how long a hold survives without a refresh.
func WithHoldTTL(ttl time.Duration) Option {
	return func(l *Ledger) { l.holdTTL = ttl }
}

// WithClock injects the time source, used by tests to drive hold expiry.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) { l.now = now }
}

func WithLogger(logger *slog.Logger) Option {
	return func(l *Ledger) { l.logger = logger }
}

// New builds a ledger with one available seat per grid position in layout.
func New(layout domain.Layout, opts ...Option) (*Ledger, error) {
	if err := layout.Validate(); err != nil {
		return nil, err
	}

	l := &Ledger{
		seats:   make(map[domain.SeatID]*seatRecord, layout.Rows*layout.Cols),
		order:   make([]domain.SeatID, 0, layout.Rows*layout.Cols),
		holdTTL: DefaultHoldTTL,
		now:     time.Now,
		logger:  slog.Default(),
		metrics: newMetrics(),
	}

	for _, opt := range opts {
		opt(l)
	}

	for row := 1; row <= layout.Rows; row++ {
		for col := 1; col <= layout.Cols; col++ {
			category := layout.CategoryFor(row)
			id := domain.NewSeatID(row, col)

			l.seats[id] = &seatRecord{
				row:      row,
				col:      col,
				category: category,
				price:    layout.PriceFor(category),
				state:    domain.SeatAvailable,
			}
			l.order = append(l.order, id)
		}
	}

	return l, nil
}

// ListSeats returns a row-major snapshot of every seat. Holds past their
// deadline are reported as available even before the sweeper reclaims them.
func (l *Ledger) ListSeats(ctx context.Context) []domain.Seat {
	l.mu.RLock()
	defer l.mu.RUnlock()

	now := l.now()
	seats := make([]domain.Seat, 0, len(l.order))

	for _, id := range l.order {
		seats = append(seats, l.seats[id].snapshot(id, now))
	}

	return seats
}

func (l *Ledger) Hold(ctx context.Context, seatID domain.SeatID, userID string) (domain.Seat, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	s, ok := l.seats[seatID]
	if !ok {
		return domain.Seat{}, domain.ErrSeatNotFound
	}

	now := l.now()

	switch {
	case s.state == domain.SeatBooked:
		return domain.Seat{}, &domain.SeatUnavailableError{SeatID: seatID, Booked: true}
	case s.state == domain.SeatHeld && s.holderID != userID && !s.expired(now):
		return domain.Seat{}, &domain.SeatUnavailableError{SeatID: seatID}
	}

	// Available, expired, or a re-hold by the same user: in every case the
	// seat becomes held by userID with a fresh deadline.
	s.state = domain.SeatHeld
	s.holderID = userID
	s.holdDeadline = now.Add(l.holdTTL)
	s.patronName = ""

	l.metrics.holds.Add(ctx, 1)

	return s.snapshot(seatID, now), nil
}

func (l *Ledger) Release(ctx context.Context, seatID domain.SeatID, userID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	s, ok := l.seats[seatID]
	if !ok {
		return domain.ErrSeatNotFound
	}

	if s.state == domain.SeatHeld && s.holderID == userID {
		s.clear()
		l.metrics.releases.Add(ctx, 1)
	}

	return nil
}

func (l *Ledger) CommitBooking(ctx context.Context, userID string, seatIDs []domain.SeatID, patronName string) (*domain.Booking, error) {
	if len(seatIDs) == 0 {
		return nil, domain.ErrEmptySelection
	}

	ids := dedupe(seatIDs)

	l.mu.Lock()
	defer l.mu.Unlock()

	records := make([]*seatRecord, 0, len(ids))
	for _, id := range ids {
		s, ok := l.seats[id]
		if !ok {
			return nil, domain.ErrSeatNotFound
		}
		records = append(records, s)
	}

	// Check-then-transition under one critical section. Nothing is written
	// until every seat has passed the ownership check.
	now := l.now()
	for _, s := range records {
		if s.state != domain.SeatHeld || s.holderID != userID || s.expired(now) {
			return nil, domain.ErrReservationInvalid
		}
	}

	booking := &domain.Booking{
		Reference:  uuid.New().String(),
		PatronName: patronName,
		Seats:      make([]domain.Seat, 0, len(ids)),
		TotalPrice: decimal.Zero,
		CreatedAt:  now,
	}

	for i, s := range records {
		s.state = domain.SeatBooked
		s.patronName = patronName
		s.holderID = ""
		s.holdDeadline = time.Time{}

		booking.Seats = append(booking.Seats, s.snapshot(ids[i], now))
		booking.TotalPrice = booking.TotalPrice.Add(s.price)
	}

	l.metrics.bookings.Add(ctx, 1)
	l.metrics.bookedSeats.Add(ctx, int64(len(ids)))

	return booking, nil
}

func dedupe(seatIDs []domain.SeatID) []domain.SeatID {
	ids := make([]domain.SeatID, 0, len(seatIDs))
	for _, id := range seatIDs {
		if !slices.Contains(ids, id) {
			ids = append(ids, id)
		}
	}

	return ids
}
