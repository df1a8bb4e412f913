package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Layout is the static venue configuration supplied once at startup. The
// trailing VIPRows rows of the hall are VIP seating.
type Layout struct {
	Rows          int
	Cols          int
	VIPRows       int
	StandardPrice decimal.Decimal
	VIPPrice      decimal.Decimal
}

func (l Layout) Validate() error {
	if l.Rows < 1 {
		return fmt.Errorf("layout must have at least one row, got %d", l.Rows)
	}
	if l.Cols < 1 {
		return fmt.Errorf("layout must have at least one column, got %d", l.Cols)
	}
	if l.VIPRows < 0 || l.VIPRows > l.Rows {
		return fmt.Errorf("VIP row count must be between 0 and %d, got %d", l.Rows, l.VIPRows)
	}
	if l.StandardPrice.IsNegative() || l.VIPPrice.IsNegative() {
		return fmt.Errorf("seat prices must not be negative")
	}

	return nil
}

func (l Layout) CategoryFor(row int) SeatCategory {
	if row > l.Rows-l.VIPRows {
		return SeatVIP
	}

	return SeatStandard
}

func (l Layout) PriceFor(category SeatCategory) decimal.Decimal {
	if category == SeatVIP {
		return l.VIPPrice
	}

	return l.StandardPrice
}
