package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Booking is the result of a successful group commit. Reference is an opaque
// id handed back to the patron.
type Booking struct {
	Reference  string
	PatronName string
	Seats      []Seat
	TotalPrice decimal.Decimal
	CreatedAt  time.Time
}

// SeatLedger is the single authority over seat state. Implementations must
// apply every operation atomically: concurrent callers never observe a
// partially applied transition, and ListSeats always returns a consistent
// snapshot.
type SeatLedger interface {
	// ListSeats returns a snapshot of every seat in row-major order.
	ListSeats(ctx context.Context) []Seat

	// Hold transitions an available seat to held by userID and returns the
	// resulting snapshot. Re-holding a seat already held by the same user
	// succeeds and refreshes the hold deadline. Fails with ErrSeatNotFound or
	// a *SeatUnavailableError.
	Hold(ctx context.Context, seatID SeatID, userID string) (Seat, error)

	// Release returns a seat held by userID to available. Releasing a seat
	// that is available, booked, or held by someone else is a deliberate
	// no-op: speculative releases are always safe. Only unknown seat ids
	// fail, with ErrSeatNotFound.
	Release(ctx context.Context, seatID SeatID, userID string) error

	// CommitBooking books every listed seat under patronName, provided all of
	// them are currently held by userID. The commit is all-or-nothing: on any
	// failure (ErrEmptySelection, ErrSeatNotFound, ErrReservationInvalid) no
	// seat changes state.
	CommitBooking(ctx context.Context, userID string, seatIDs []SeatID, patronName string) (*Booking, error)
}
