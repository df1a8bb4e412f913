package domain

import (
	"errors"
	"fmt"
)

var (
	ErrSeatNotFound       = errors.New("seat not found")
	ErrSeatUnavailable    = errors.New("seat is not available")
	ErrReservationInvalid = errors.New("reservation expired or invalid")
	ErrEmptySelection     = errors.New("no seats selected")
)

// SeatUnavailableError reports why a hold was rejected, so that callers can
// tell a permanently booked seat apart from one temporarily held by another
// user. It matches ErrSeatUnavailable under errors.Is.
type SeatUnavailableError struct {
	SeatID SeatID
	Booked bool
}

func (e *SeatUnavailableError) Error() string {
	if e.Booked {
		return fmt.Sprintf("seat %s is already booked", e.SeatID)
	}

	return fmt.Sprintf("seat %s is currently held by another user", e.SeatID)
}

func (e *SeatUnavailableError) Is(target error) bool {
	return target == ErrSeatUnavailable
}
