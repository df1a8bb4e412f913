package ledger

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

type metrics struct {
	holds        metric.Int64Counter
	releases     metric.Int64Counter
	bookings     metric.Int64Counter
	bookedSeats  metric.Int64Counter
	expiredHolds metric.Int64Counter
}

// newMetrics registers the ledger counters against the global meter provider.
// Without a configured provider these are no-op instruments.
func newMetrics() *metrics {
	meter := otel.Meter("github.com/cinehall/booking-api/internal/ledger")

	holds, _ := meter.Int64Counter("ledger.holds",
		metric.WithDescription("Number of successful seat holds"))
	releases, _ := meter.Int64Counter("ledger.releases",
		metric.WithDescription("Number of holds released by their owner"))
	bookings, _ := meter.Int64Counter("ledger.bookings",
		metric.WithDescription("Number of committed bookings"))
	bookedSeats, _ := meter.Int64Counter("ledger.booked_seats",
		metric.WithDescription("Number of seats booked across all commits"))
	expiredHolds, _ := meter.Int64Counter("ledger.expired_holds",
		metric.WithDescription("Number of holds reclaimed by the expiry sweep"))

	return &metrics{
		holds:        holds,
		releases:     releases,
		bookings:     bookings,
		bookedSeats:  bookedSeats,
		expiredHolds: expiredHolds,
	}
}
