package carousel

import "sync"

// Pager tracks the reel currently in view.
type Pager struct {
	mu       sync.Mutex
	count    int
	current  int
	onChange func(int)
}

func NewPager(count int, onChange func(int)) *Pager {
	return &Pager{count: count, onChange: onChange}
}

// Current returns the index of the reel in view.
func (p *Pager) Current() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current
}

// OnViewable records that the reel at index became the viewable one.
// It reports whether the current index changed.
func (p *Pager) OnViewable(index int) bool {
	p.mu.Lock()
	if index < 0 || index >= p.count || index == p.current {
		p.mu.Unlock()
		return false
	}
	p.current = index
	p.mu.Unlock()

	if p.onChange != nil {
		p.onChange(index)
	}
	return true
}

// Next moves one reel forward, stopping at the last one.
func (p *Pager) Next() bool { return p.OnViewable(p.Current() + 1) }

// Prev moves one reel back, stopping at the first one.
func (p *Pager) Prev() bool { return p.OnViewable(p.Current() - 1) }
