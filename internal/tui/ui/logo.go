package ui

import (
	"fmt"

	"github.com/rivo/tview"
)

// Logo displays a compact ASCII art logo.
type Logo struct {
	*tview.TextView
	theme *Theme
}

// NewLogo creates a new logo component.
func NewLogo(theme *Theme) *Logo {
	tv := tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignLeft)
	tv.SetBorderPadding(1, 0, 1, 0)

	l := &Logo{
		TextView: tv,
		theme:    theme,
	}
	l.ApplyTheme()
	return l
}

// ApplyTheme redraws the logo in the current palette.
func (l *Logo) ApplyTheme() {
	l.SetBackgroundColor(l.theme.BgColor)
	l.Clear()

	titleColor := colorName(l.theme.TitleColor)
	fgColor := colorName(l.theme.FgColor)

	_, _ = fmt.Fprintf(l,
		"[%s::b] ╦ ╦╔═╗╦  ╦╔═╗[-:-:-]\n"+
			"[%s::b] ║║║╠═╣╚╗╔╝║╣ [-:-:-]\n"+
			"[%s::b] ╚╩╝╩ ╩ ╚╝ ╚═╝[-:-:-]\n"+
			"[%s]social client[-:-:-]",
		titleColor, titleColor, titleColor, fgColor,
	)
}
