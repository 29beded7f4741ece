// Package carousel drives the auto-advancing ad carousel and the reel pager.
package carousel

import (
	"context"
	"sync"
	"time"
)

// DefaultInterval is the auto-advance period of the ad carousel.
const DefaultInterval = 4 * time.Second

// Carousel cycles an index over count pages. Timer ticks and manual scrolls
// write the same index; the last write wins.
type Carousel struct {
	mu       sync.Mutex
	count    int
	index    int
	interval time.Duration
	onChange func(int)

	cancel context.CancelFunc
	done   chan struct{}
}

// New creates a carousel over count pages. A non-positive interval uses
// DefaultInterval. onChange, if set, is called with each new index from the
// goroutine that changed it.
func New(count int, interval time.Duration, onChange func(int)) *Carousel {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Carousel{count: count, interval: interval, onChange: onChange}
}

// Index returns the current page.
func (c *Carousel) Index() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.index
}

// Count returns the number of pages.
func (c *Carousel) Count() int { return c.count }

// Advance moves to the next page, wrapping to zero after the last one.
func (c *Carousel) Advance() int {
	c.mu.Lock()
	if c.count == 0 {
		c.mu.Unlock()
		return 0
	}
	c.index = (c.index + 1) % c.count
	idx := c.index
	c.mu.Unlock()

	c.notify(idx)
	return idx
}

// SetIndex records a manual scroll. Out of range values are ignored.
func (c *Carousel) SetIndex(i int) {
	c.mu.Lock()
	if i < 0 || i >= c.count || i == c.index {
		c.mu.Unlock()
		return
	}
	c.index = i
	c.mu.Unlock()

	c.notify(i)
}

func (c *Carousel) notify(i int) {
	if c.onChange != nil {
		c.onChange(i)
	}
}

// Start begins auto-advancing until ctx is cancelled or Stop is called.
// Starting a running carousel is a no-op.
func (c *Carousel) Start(ctx context.Context) {
	c.mu.Lock()
	if c.cancel != nil {
		c.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	c.cancel = cancel
	c.done = done
	c.mu.Unlock()

	go func() {
		defer close(done)
		ticker := time.NewTicker(c.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				c.Advance()
			}
		}
	}()
}

// Stop tears the timer down and waits for it to exit. No tick fires after
// Stop returns.
func (c *Carousel) Stop() {
	c.mu.Lock()
	cancel, done := c.cancel, c.done
	c.cancel, c.done = nil, nil
	c.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}
