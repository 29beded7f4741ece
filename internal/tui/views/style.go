// Package views holds the TUI pages.
package views

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/matheus3301/wave/internal/tui/ui"
)

// Page names, also used as breadcrumb labels.
const (
	PageLogin    = "Login"
	PageChats    = "Chats"
	PageChat     = "Chat"
	PageDetails  = "Details"
	PagePosts    = "Posts"
	PageReels    = "Reels"
	PageServices = "Services"
	PageProfile  = "Profile"
	PageSettings = "Settings"
	PageHelp     = "Help"
)

func styleBox(b *tview.Box, th *ui.Theme) {
	b.SetBorder(true)
	b.SetBorderColor(th.BorderColor)
	b.SetBackgroundColor(th.BgColor)
	b.SetTitleColor(th.TitleColor)
	b.SetFocusFunc(func() { b.SetBorderColor(th.BorderFocusColor) })
	b.SetBlurFunc(func() { b.SetBorderColor(th.BorderColor) })
}

func styleTable(t *tview.Table, th *ui.Theme) {
	styleBox(t.Box, th)
	t.SetSelectedStyle(tcell.StyleDefault.
		Foreground(th.TableCursorFg).
		Background(th.TableCursorBg))
}

func styleInput(in *tview.InputField, th *ui.Theme) {
	in.SetBackgroundColor(th.BgColor)
	in.SetFieldBackgroundColor(th.BgColor)
	in.SetFieldTextColor(th.FgColor)
	in.SetLabelColor(th.MenuKeyColor)
}

func headerCell(text string, th *ui.Theme) *tview.TableCell {
	return tview.NewTableCell(text).
		SetTextColor(th.TableHeaderFg).
		SetBackgroundColor(th.TableHeaderBg).
		SetAttributes(tcell.AttrBold).
		SetSelectable(false)
}

func cell(text string, color tcell.Color) *tview.TableCell {
	return tview.NewTableCell(text).SetTextColor(color)
}

// heart renders a like marker.
func heart(liked bool) string {
	if liked {
		return "♥"
	}
	return "♡"
}

func backHints() []ui.MenuHint {
	return []ui.MenuHint{
		{Key: "Esc", Description: "Back"},
		{Key: ":", Description: "Command"},
		{Key: "?", Description: "Help"},
	}
}
