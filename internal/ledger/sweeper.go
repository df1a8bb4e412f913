package ledger

import (
	"context"
	"time"
)

// DefaultSweepInterval is how often the background sweep reclaims expired
// holds. The sweep only tidies state that every operation already treats as
// available, so the interval is a housekeeping knob, not a correctness one.
const DefaultSweepInterval = 30 * time.Second

// Sweep releases every hold past its deadline and returns how many seats it
// reclaimed. It uses the same locking discipline as Release; the sweeper is
// simply a caller that skips the holder-identity check.
func (l *Ledger) Sweep(ctx context.Context) int {
	l.mu.Lock()

	now := l.now()
	reclaimed := 0

	for _, id := range l.order {
		s := l.seats[id]
		if s.expired(now) {
			s.clear()
			reclaimed++
		}
	}

	l.mu.Unlock()

	if reclaimed > 0 {
		l.metrics.expiredHolds.Add(ctx, int64(reclaimed))
		l.logger.Info("reclaimed expired seat holds", "count", reclaimed)
	}

	return reclaimed
}

// Run sweeps expired holds on the given interval until ctx is cancelled.
func (l *Ledger) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultSweepInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.Sweep(ctx)
		}
	}
}
