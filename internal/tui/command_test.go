package tui

import (
	"testing"

	"github.com/matheus3301/wave/internal/tui/views"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		in   string
		want Command
	}{
		{"posts", Command{Name: "posts"}},
		{"  Theme   dark ", Command{Name: "theme", Args: "dark"}},
		{":quit", Command{Name: "quit"}},
		{"theme light mode", Command{Name: "theme", Args: "light mode"}},
		{"", Command{}},
	}
	for _, tt := range tests {
		if got := ParseCommand(tt.in); got != tt.want {
			t.Errorf("ParseCommand(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestPageAliases(t *testing.T) {
	pages := map[string]bool{}
	for _, p := range pageAliases {
		pages[p] = true
	}
	for _, want := range []string{
		views.PageChats, views.PagePosts, views.PageReels,
		views.PageServices, views.PageProfile, views.PageSettings, views.PageHelp,
	} {
		if !pages[want] {
			t.Errorf("no command opens %s", want)
		}
	}
}
