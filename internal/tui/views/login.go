package views

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/matheus3301/wave/internal/tui/ui"
)

// LoginView asks for the identifier to sign in with.
type LoginView struct {
	*tview.Flex
	theme   *ui.Theme
	intro   *tview.TextView
	input   *tview.InputField
	errText string
	onLogin func(identifier string)
}

// NewLoginView creates the sign-in page.
func NewLoginView(theme *ui.Theme) *LoginView {
	lv := &LoginView{
		Flex:  tview.NewFlex().SetDirection(tview.FlexRow),
		theme: theme,
		intro: tview.NewTextView().SetDynamicColors(true),
		input: tview.NewInputField().SetLabel(" Phone or email: "),
	}
	lv.SetTitle(" Sign in ")
	lv.AddItem(lv.intro, 0, 1, false)
	lv.AddItem(lv.input, 1, 0, true)

	lv.input.SetDoneFunc(func(key tcell.Key) {
		if key != tcell.KeyEnter {
			return
		}
		id := strings.TrimSpace(lv.input.GetText())
		if id == "" {
			lv.ShowError("Enter a phone number or email address.")
			return
		}
		if lv.onLogin != nil {
			lv.onLogin(id)
		}
	})

	lv.ApplyTheme()
	return lv
}

// SetOnLogin sets the callback run with the trimmed identifier.
func (lv *LoginView) SetOnLogin(fn func(identifier string)) {
	lv.onLogin = fn
}

// Input returns the identifier field for focusing.
func (lv *LoginView) Input() *tview.InputField { return lv.input }

// ShowError renders msg under the intro text.
func (lv *LoginView) ShowError(msg string) {
	lv.errText = msg
	lv.render()
}

// Reset clears the field and any error.
func (lv *LoginView) Reset() {
	lv.errText = ""
	lv.input.SetText("")
	lv.render()
}

func (lv *LoginView) render() {
	lv.intro.Clear()
	title := ui.Tag(lv.theme.TitleColor)
	fg := ui.Tag(lv.theme.FgColor)
	_, _ = fmt.Fprintf(lv.intro,
		"\n  [%s::b]Welcome to wave[-:-:-]\n\n"+
			"  [%s]Sign in with the phone number or email address of your account.[-]\n",
		title, fg)
	if lv.errText != "" {
		_, _ = fmt.Fprintf(lv.intro, "\n  [%s]%s[-]\n", ui.Tag(lv.theme.FlashErrColor), display(lv.errText))
	}
}

// Name implements ui.Component.
func (lv *LoginView) Name() string { return PageLogin }

// Start implements ui.Component.
func (lv *LoginView) Start() {}

// Stop implements ui.Component.
func (lv *LoginView) Stop() {}

// Hints implements ui.Component.
func (lv *LoginView) Hints() []ui.MenuHint {
	return []ui.MenuHint{
		{Key: "Enter", Description: "Sign in"},
		{Key: "Ctrl-C", Description: "Quit"},
	}
}

// ApplyTheme implements ui.Component.
func (lv *LoginView) ApplyTheme() {
	styleBox(lv.Box, lv.theme)
	lv.intro.SetBackgroundColor(lv.theme.BgColor)
	styleInput(lv.input, lv.theme)
	lv.render()
}
