package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// SeatID identifies a seat as "<row>-<col>". The format is part of the public
// contract: clients construct and parse seat ids themselves.
type SeatID string

func NewSeatID(row, col int) SeatID {
	return SeatID(fmt.Sprintf("%d-%d", row, col))
}

// ParseSeatID splits a seat id back into its row and column. It only checks
// the format, not whether the coordinates exist in any venue layout.
func ParseSeatID(id SeatID) (row, col int, err error) {
	left, right, found := strings.Cut(string(id), "-")
	if !found {
		return 0, 0, fmt.Errorf("malformed seat id %q", id)
	}

	row, err = strconv.Atoi(left)
	if err != nil || row < 1 {
		return 0, 0, fmt.Errorf("malformed seat id %q", id)
	}

	col, err = strconv.Atoi(right)
	if err != nil || col < 1 {
		return 0, 0, fmt.Errorf("malformed seat id %q", id)
	}

	return row, col, nil
}

type SeatCategory string

const (
	SeatStandard SeatCategory = "standard"
	SeatVIP      SeatCategory = "vip"
)

type SeatState string

const (
	SeatAvailable SeatState = "available"
	SeatHeld      SeatState = "held"
	SeatBooked    SeatState = "booked"
)

// Seat is a point-in-time snapshot of one seat as observed by the ledger.
// HolderID and HoldExpiresAt are set only while State is SeatHeld, and
// PatronName only while State is SeatBooked. Callers receive copies; mutating
// a snapshot never affects ledger state.
type Seat struct {
	ID       SeatID
	Row      int
	Col      int
	Category SeatCategory
	Price    decimal.Decimal

	State         SeatState
	HolderID      string
	HoldExpiresAt time.Time
	PatronName    string
}
