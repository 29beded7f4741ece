package tui

import (
	"strings"

	"github.com/matheus3301/wave/internal/tui/views"
)

// Command represents a parsed command.
type Command struct {
	Name string
	Args string
}

// ParseCommand parses a command string (without the leading ':').
func ParseCommand(input string) Command {
	input = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(input), ":"))
	parts := strings.SplitN(input, " ", 2)
	cmd := Command{Name: strings.ToLower(parts[0])}
	if len(parts) > 1 {
		cmd.Args = strings.TrimSpace(parts[1])
	}
	return cmd
}

// pageAliases maps command names to page names.
var pageAliases = map[string]string{
	"chats":    views.PageChats,
	"chat":     views.PageChats,
	"c":        views.PageChats,
	"posts":    views.PagePosts,
	"p":        views.PagePosts,
	"reels":    views.PageReels,
	"r":        views.PageReels,
	"services": views.PageServices,
	"s":        views.PageServices,
	"news":     views.PageServices,
	"profile":  views.PageProfile,
	"me":       views.PageProfile,
	"settings": views.PageSettings,
	"help":     views.PageHelp,
}
