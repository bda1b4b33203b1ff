package client

import (
	"sync"
	"time"
)

// DefaultRotatePeriod matches the storefront carousel interval.
const DefaultRotatePeriod = 4 * time.Second

// BannerRotator advances the highlighted banner on a fixed period, wrapping
// to the first entry after the last. With an empty collection every tick is
// a no-op.
type BannerRotator struct {
	mu     sync.Mutex
	n      int
	index  int
	period time.Duration
	ticker *time.Ticker
	done   chan struct{}
}

func NewBannerRotator(n int, period time.Duration) *BannerRotator {
	if period <= 0 {
		period = DefaultRotatePeriod
	}
	return &BannerRotator{n: n, period: period}
}

func (r *BannerRotator) Index() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.index
}

// Advance moves to the next banner. Exposed so a tick and a swipe gesture
// share one code path.
func (r *BannerRotator) Advance() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.n == 0 {
		return
	}
	r.index = (r.index + 1) % r.n
}

// Select jumps to a banner without stopping the timer; the next tick keeps
// advancing from the chosen position.
func (r *BannerRotator) Select(i int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if i < 0 || i >= r.n {
		return
	}
	r.index = i
}

func (r *BannerRotator) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.startLocked()
}

func (r *BannerRotator) startLocked() {
	if r.ticker != nil {
		return
	}
	r.ticker = time.NewTicker(r.period)
	done := make(chan struct{})
	r.done = done

	go func(ticker *time.Ticker) {
		for {
			select {
			case <-ticker.C:
				r.Advance()
			case <-done:
				return
			}
		}
	}(r.ticker)
}

// Stop cancels the timer. Safe to call more than once.
func (r *BannerRotator) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stopLocked()
}

func (r *BannerRotator) stopLocked() {
	if r.ticker == nil {
		return
	}
	r.ticker.Stop()
	close(r.done)
	r.ticker = nil
}

// Reset swaps in a new collection size, returning to the first banner. A
// running timer is cancelled and restarted so the period starts fresh.
func (r *BannerRotator) Reset(n int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	running := r.ticker != nil
	r.stopLocked()
	r.n = n
	r.index = 0
	if running {
		r.startLocked()
	}
}
