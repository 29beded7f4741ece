package views

import (
	"fmt"

	"github.com/rivo/tview"

	"github.com/matheus3301/wave/internal/tui/ui"
)

// SettingsView offers the theme switch and the logout entry.
type SettingsView struct {
	*tview.List
	theme    *ui.Theme
	current  string
	onToggle func()
	onLogout func()
}

// NewSettingsView creates the settings page.
func NewSettingsView(theme *ui.Theme) *SettingsView {
	sv := &SettingsView{
		List:  tview.NewList().ShowSecondaryText(true),
		theme: theme,
	}
	sv.SetTitle(" Settings ")
	sv.ApplyTheme()
	return sv
}

// SetOnToggleTheme sets the callback for the theme entry.
func (sv *SettingsView) SetOnToggleTheme(fn func()) {
	sv.onToggle = fn
	sv.render()
}

// SetOnLogout sets the callback for the logout entry.
func (sv *SettingsView) SetOnLogout(fn func()) {
	sv.onLogout = fn
	sv.render()
}

// SetTheme records the stored theme name shown in the list.
func (sv *SettingsView) SetTheme(name string) {
	sv.current = name
	sv.render()
}

func (sv *SettingsView) render() {
	sel := sv.GetCurrentItem()
	sv.Clear()

	name := sv.current
	if name == "" {
		name = "-"
	}
	sv.AddItem(fmt.Sprintf("Theme: %s", name), "Switch between light and dark", 't', func() {
		if sv.onToggle != nil {
			sv.onToggle()
		}
	})
	sv.AddItem("Log out", "Sign out of this profile", 'o', func() {
		if sv.onLogout != nil {
			sv.onLogout()
		}
	})
	sv.SetCurrentItem(sel)
}

// Name implements ui.Component.
func (sv *SettingsView) Name() string { return PageSettings }

// Start implements ui.Component.
func (sv *SettingsView) Start() {}

// Stop implements ui.Component.
func (sv *SettingsView) Stop() {}

// Hints implements ui.Component.
func (sv *SettingsView) Hints() []ui.MenuHint {
	return []ui.MenuHint{
		{Key: "Enter", Description: "Select"},
		{Key: "t", Description: "Toggle theme"},
		{Key: "Esc", Description: "Back"},
	}
}

// ApplyTheme implements ui.Component.
func (sv *SettingsView) ApplyTheme() {
	th := sv.theme
	styleBox(sv.Box, th)
	sv.SetMainTextColor(th.FgColor)
	sv.SetSecondaryTextColor(th.MutedColor)
	sv.SetShortcutColor(th.MenuKeyColor)
	sv.SetSelectedTextColor(th.TableCursorFg)
	sv.SetSelectedBackgroundColor(th.TableCursorBg)
	sv.render()
}
