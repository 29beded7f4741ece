package ui

import (
	"fmt"
	"time"

	"github.com/rivo/tview"
)

// AccountData holds the daemon status shown in the header.
type AccountData struct {
	Profile   string
	User      string
	Status    string
	Theme     string
	ChatCount int
	Uptime    time.Duration
}

// AccountInfo displays daemon and account metadata in the header.
type AccountInfo struct {
	*tview.TextView
	theme *Theme
	data  *AccountData
}

// NewAccountInfo creates a new account info panel.
func NewAccountInfo(theme *Theme) *AccountInfo {
	tv := tview.NewTextView().
		SetDynamicColors(true)
	tv.SetBorderPadding(0, 0, 1, 1)

	ai := &AccountInfo{
		TextView: tv,
		theme:    theme,
	}
	ai.ApplyTheme()
	return ai
}

// ApplyTheme re-renders the panel with the current palette.
func (ai *AccountInfo) ApplyTheme() {
	ai.SetBackgroundColor(ai.theme.BgColor)
	ai.Update(ai.data)
}

// Update renders the account info.
func (ai *AccountInfo) Update(data *AccountData) {
	ai.data = data
	ai.Clear()
	if data == nil {
		return
	}

	fg := colorName(ai.theme.FgColor)
	ct := colorName(ai.theme.CounterColor)

	user := data.User
	if user == "" {
		user = "-"
	}

	_, _ = fmt.Fprintf(ai,
		"[%s::b]Profile:[-:-:-] [%s]%s[-]\n"+
			"[%s::b]User:[-:-:-]    [%s]%s[-]\n"+
			"[%s::b]Status:[-:-:-]  [%s]%s[-]\n"+
			"[%s::b]Theme:[-:-:-]   [%s]%s[-]\n"+
			"[%s::b]Chats:[-:-:-]   [%s]%d[-]\n"+
			"[%s::b]Uptime:[-:-:-]  [%s]%s[-]",
		fg, ct, tview.Escape(data.Profile),
		fg, ct, tview.Escape(user),
		fg, ct, data.Status,
		fg, ct, data.Theme,
		fg, ct, data.ChatCount,
		fg, ct, FormatUptime(data.Uptime),
	)
}

// FormatUptime renders d as hours and minutes.
func FormatUptime(d time.Duration) string {
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	if h > 0 {
		return fmt.Sprintf("%dh%dm", h, m)
	}
	return fmt.Sprintf("%dm", m)
}
