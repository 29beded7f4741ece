package carousel

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

func TestAdvanceWraps(t *testing.T) {
	tests := []struct {
		firings int
		want    int
	}{
		{0, 0},
		{1, 1},
		{2, 2},
		{3, 0},
		{7, 1},
	}
	for _, tt := range tests {
		c := New(3, 0, nil)
		for i := 0; i < tt.firings; i++ {
			c.Advance()
		}
		if got := c.Index(); got != tt.want {
			t.Errorf("after %d firings Index() = %d, want %d", tt.firings, got, tt.want)
		}
	}
}

func TestAdvanceEmpty(t *testing.T) {
	c := New(0, 0, nil)
	if got := c.Advance(); got != 0 {
		t.Errorf("Advance() on empty = %d", got)
	}
}

func TestManualScrollThenTick(t *testing.T) {
	c := New(3, 0, nil)
	c.SetIndex(2)
	if got := c.Advance(); got != 0 {
		t.Errorf("Advance() after SetIndex(2) = %d, want 0", got)
	}
	c.SetIndex(5)
	if got := c.Index(); got != 0 {
		t.Errorf("out of range SetIndex moved index to %d", got)
	}
}

func TestOnChange(t *testing.T) {
	var got []int
	c := New(3, 0, func(i int) { got = append(got, i) })
	c.Advance()
	c.SetIndex(1) // unchanged
	c.SetIndex(0)
	c.Advance()
	want := []int{1, 0, 1}
	if len(got) != len(want) {
		t.Fatalf("onChange calls = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("call %d = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestDefaultInterval(t *testing.T) {
	if c := New(3, -time.Second, nil); c.interval != DefaultInterval {
		t.Errorf("interval = %v, want %v", c.interval, DefaultInterval)
	}
}

func TestStartStop(t *testing.T) {
	var ticks atomic.Int32
	c := New(3, 5*time.Millisecond, func(int) { ticks.Add(1) })
	c.Start(context.Background())
	c.Start(context.Background())

	deadline := time.After(2 * time.Second)
	for ticks.Load() < 2 {
		select {
		case <-deadline:
			t.Fatal("carousel did not advance")
		case <-time.After(5 * time.Millisecond):
		}
	}

	c.Stop()
	stopped := ticks.Load()
	time.Sleep(30 * time.Millisecond)
	if ticks.Load() != stopped {
		t.Error("carousel advanced after Stop")
	}
	if want := int(stopped) % 3; c.Index() != want {
		t.Errorf("Index() = %d, want %d", c.Index(), want)
	}
	c.Stop()
}

func TestStopOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	c := New(3, time.Millisecond, nil)
	c.Start(ctx)
	cancel()
	c.Stop()
}

func TestPager(t *testing.T) {
	var calls []int
	p := NewPager(6, func(i int) { calls = append(calls, i) })

	if p.OnViewable(0) {
		t.Error("OnViewable(0) reported a change at start")
	}
	if !p.OnViewable(3) || p.Current() != 3 {
		t.Errorf("OnViewable(3): current = %d", p.Current())
	}
	if p.OnViewable(3) {
		t.Error("repeated OnViewable(3) reported a change")
	}
	if p.OnViewable(6) || p.OnViewable(-1) {
		t.Error("out of range index accepted")
	}
	p.Next()
	p.Prev()
	p.Prev()
	if p.Current() != 2 {
		t.Errorf("Current() = %d, want 2", p.Current())
	}
	if want := []int{3, 4, 3, 2}; len(calls) != len(want) {
		t.Errorf("onChange calls = %v, want %v", calls, want)
	}

	p.OnViewable(0)
	if p.Prev() {
		t.Error("Prev() at first reel reported a change")
	}
}
