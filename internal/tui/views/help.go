package views

import (
	"fmt"

	"github.com/rivo/tview"

	"github.com/matheus3301/wave/internal/tui/ui"
)

// HelpView displays the key binding reference.
type HelpView struct {
	*tview.TextView
	theme *ui.Theme
}

// NewHelpView creates a new help view.
func NewHelpView(theme *ui.Theme) *HelpView {
	hv := &HelpView{
		TextView: tview.NewTextView().
			SetDynamicColors(true).
			SetScrollable(true),
		theme: theme,
	}
	hv.SetTitle(" Help ")
	hv.ApplyTheme()
	return hv
}

// Name implements ui.Component.
func (hv *HelpView) Name() string { return PageHelp }

// Start implements ui.Component.
func (hv *HelpView) Start() {}

// Stop implements ui.Component.
func (hv *HelpView) Stop() {}

// Hints implements ui.Component.
func (hv *HelpView) Hints() []ui.MenuHint {
	return []ui.MenuHint{{Key: "Esc", Description: "Back"}}
}

// ApplyTheme implements ui.Component.
func (hv *HelpView) ApplyTheme() {
	styleBox(hv.Box, hv.theme)
	hv.SetTextColor(hv.theme.FgColor)
	hv.render()
}

func (hv *HelpView) render() {
	hv.Clear()
	k := ui.Tag(hv.theme.MenuKeyColor)
	section := func(title string) {
		_, _ = fmt.Fprintf(hv, "\n  [::b]%s[-:-:-]\n\n", title)
	}
	row := func(key, desc string) {
		_, _ = fmt.Fprintf(hv, "  [%s]%-16s[-] %s\n", k, tview.Escape(key), desc)
	}

	section("Global Keys")
	row(":", "Command mode")
	row("/", "Filter or search")
	row("?", "Help")
	row("Esc", "Cancel / go back")
	row("T", "Toggle light/dark theme")
	row("Ctrl-C", "Quit")

	section("Chats")
	row("Enter", "Open conversation")
	row("n", "New chat")
	row("d", "Conversation details")
	row("1-9", "Open the Nth conversation")

	section("Conversation")
	row("i", "Focus composer")
	row("Enter", "Send (in composer)")
	row("Esc", "Leave composer")

	section("Posts and Reels")
	row("l", "Like / unlike")
	row("j / k", "Next / previous")

	section("Services")
	row(", / .", "Previous / next featured")
	row("/", "Search services by name")

	section("Commands (: mode)")
	row(":chats", "Conversation list")
	row(":posts", "Posts")
	row(":reels", "Reels")
	row(":services", "Services and news")
	row(":profile", "Your profile")
	row(":settings", "Settings")
	row(":theme [light|dark]", "Set or toggle the theme")
	row(":logout", "Sign out")
	row(":quit", "Quit")
}
