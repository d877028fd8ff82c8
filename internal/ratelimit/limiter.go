package ratelimit

// Limiter enforces a global sliding-window cap over a Store. The window
// is shared by all visitors: this throttles the deployment's total
// request rate, it is not a per-client limiter.
type Limiter struct {
	store       Store
	MaxRequests int
	TimeFrame   int64
}

func NewLimiter(store Store, maxRequests int, timeFrame int64) *Limiter {
	return &Limiter{store: store, MaxRequests: maxRequests, TimeFrame: timeFrame}
}

// Allow runs one prune-compare-append-persist cycle at the given time.
// The cycle is atomic with respect to other callers of the same store.
// Store failures degrade to an empty window; they never block a visitor.
func (l *Limiter) Allow(now int64) bool {
	allowed := false
	_ = l.store.WithLock(func() error {
		window, err := l.store.LoadWindow()
		if err != nil {
			window = nil
		}

		// Entries exactly at now-TimeFrame stay in the window.
		windowStart := now - l.TimeFrame
		kept := window[:0]
		for _, ts := range window {
			if ts >= windowStart {
				kept = append(kept, ts)
			}
		}

		if len(kept) >= l.MaxRequests {
			// Persist the prune even when blocking.
			_ = l.store.SaveWindow(kept)
			return nil
		}

		allowed = true
		kept = append(kept, now)
		return l.store.SaveWindow(kept)
	})
	return allowed
}
