package ui

import (
	"reflect"
	"testing"
	"time"

	"github.com/rivo/tview"
)

type fakeComponent struct {
	name  string
	calls *[]string
}

func (f *fakeComponent) Name() string      { return f.name }
func (f *fakeComponent) Start()            { *f.calls = append(*f.calls, "start "+f.name) }
func (f *fakeComponent) Stop()             { *f.calls = append(*f.calls, "stop "+f.name) }
func (f *fakeComponent) Hints() []MenuHint { return nil }
func (f *fakeComponent) ApplyTheme()       {}

func newTestPages(t *testing.T, names ...string) (*Pages, *[]string) {
	t.Helper()
	var calls []string
	p := NewPages()
	for _, n := range names {
		p.Register(&fakeComponent{name: n, calls: &calls}, tview.NewBox())
	}
	return p, &calls
}

func TestPagesLifecycle(t *testing.T) {
	p, calls := newTestPages(t, "Chats", "Chat", "Help")

	var stacks [][]string
	p.SetOnChange(func(s []string) { stacks = append(stacks, s) })

	p.Reset("Chats")
	p.Push("Chat")
	p.Push("Chat")
	p.Push("Help")
	if got := p.Pop(); got != "Help" {
		t.Fatalf("Pop = %q", got)
	}

	want := []string{
		"start Chats",
		"stop Chats", "start Chat",
		"stop Chat", "start Help",
		"stop Help", "start Chat",
	}
	if !reflect.DeepEqual(*calls, want) {
		t.Errorf("calls = %v, want %v", *calls, want)
	}
	if p.Current() != "Chat" || p.Depth() != 2 {
		t.Errorf("current = %q depth = %d", p.Current(), p.Depth())
	}
	if len(stacks) != 4 {
		t.Errorf("onChange fired %d times, want 4", len(stacks))
	}
	if !reflect.DeepEqual(stacks[len(stacks)-1], []string{"Chats", "Chat"}) {
		t.Errorf("last stack = %v", stacks[len(stacks)-1])
	}
}

func TestPagesPopKeepsRoot(t *testing.T) {
	p, _ := newTestPages(t, "Chats")
	if got := p.Pop(); got != "" {
		t.Errorf("Pop on empty = %q", got)
	}
	p.Reset("Chats")
	if got := p.Pop(); got != "" {
		t.Errorf("Pop on root = %q", got)
	}
	if p.Current() != "Chats" {
		t.Errorf("current = %q", p.Current())
	}
}

func TestPagesResetStopsTop(t *testing.T) {
	p, calls := newTestPages(t, "Login", "Chats", "Services")
	p.Reset("Login")
	p.Push("Services")
	p.Reset("Chats")
	p.StopAll()

	want := []string{
		"start Login",
		"stop Login", "start Services",
		"stop Services", "start Chats",
		"stop Chats",
	}
	if !reflect.DeepEqual(*calls, want) {
		t.Errorf("calls = %v, want %v", *calls, want)
	}
	if !reflect.DeepEqual(p.Stack(), []string{"Chats"}) {
		t.Errorf("stack = %v", p.Stack())
	}
}

func TestThemeFor(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"dark", "dark"},
		{"light", "light"},
		{"", "light"},
		{"sepia", "light"},
	}
	for _, tt := range tests {
		if got := ThemeFor(tt.in).Name; got != tt.want {
			t.Errorf("ThemeFor(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
	if DarkTheme().BgColor == LightTheme().BgColor {
		t.Error("light and dark palettes share a background")
	}
}

func TestFlashModelExpires(t *testing.T) {
	now := time.Unix(1000, 0)
	f := NewFlashModel()
	f.now = func() time.Time { return now }

	changed := 0
	f.SetOnChange(func() { changed++ })

	if f.GetMessage() != nil {
		t.Fatal("new model has a message")
	}
	f.Warn("careful")
	m := f.GetMessage()
	if m == nil || m.Text != "careful" || m.Level != FlashWarn {
		t.Fatalf("message = %+v", m)
	}
	if changed != 1 {
		t.Errorf("onChange fired %d times", changed)
	}

	now = now.Add(9 * time.Second)
	if got := f.Get(); got != "" {
		t.Errorf("expired message = %q", got)
	}
}

func TestFormatUptime(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0m"},
		{59 * time.Minute, "59m"},
		{2*time.Hour + 5*time.Minute, "2h5m"},
	}
	for _, tt := range tests {
		if got := FormatUptime(tt.d); got != tt.want {
			t.Errorf("FormatUptime(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}
