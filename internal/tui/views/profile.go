package views

import (
	"fmt"

	"github.com/rivo/tview"

	"github.com/matheus3301/wave/internal/feed"
	"github.com/matheus3301/wave/internal/tui/ui"
)

// ProfileView renders the signed-in user's card and a QR code of the handle.
type ProfileView struct {
	*tview.TextView
	theme   *ui.Theme
	profile *feed.Profile
	user    string
}

// NewProfileView creates the profile page.
func NewProfileView(theme *ui.Theme) *ProfileView {
	pv := &ProfileView{
		TextView: tview.NewTextView().
			SetDynamicColors(true).
			SetScrollable(true),
		theme: theme,
	}
	pv.SetTitle(" Profile ")
	pv.ApplyTheme()
	return pv
}

// Update renders p. user is the identifier of the current session.
func (pv *ProfileView) Update(p *feed.Profile, user string) {
	pv.profile = p
	pv.user = user
	pv.render()
}

func (pv *ProfileView) render() {
	pv.Clear()
	th := pv.theme
	p := pv.profile
	if p == nil {
		_, _ = fmt.Fprintf(pv, "\n  [%s]Loading profile...[-]", ui.Tag(th.MutedColor))
		return
	}

	fg := ui.Tag(th.FgColor)
	ct := ui.Tag(th.CounterColor)
	muted := ui.Tag(th.MutedColor)

	_, _ = fmt.Fprintf(pv,
		"\n  [%s::b]%s[-:-:-]  [%s]@%s[-]\n"+
			"  [%s]%s[-]\n\n"+
			"  [%s::b]%s[-:-:-] [%s]posts[-]   [%s::b]%s[-:-:-] [%s]followers[-]   [%s::b]%s[-:-:-] [%s]following[-]\n",
		ui.Tag(th.TitleColor), display(p.Name), muted, display(p.Handle),
		fg, display(p.Bio),
		ct, feed.FormatCount(p.Posts), muted,
		ct, feed.FormatCount(p.Followers), muted,
		ct, feed.FormatCount(p.Following), muted,
	)
	if pv.user != "" {
		_, _ = fmt.Fprintf(pv, "\n  [%s]Signed in as %s[-]\n", muted, display(pv.user))
	}

	qr, err := renderQR(profileLink(p.Handle))
	if err != nil {
		_, _ = fmt.Fprintf(pv, "\n  [%s]QR unavailable: %s[-]", ui.Tag(th.FlashErrColor), display(err.Error()))
		return
	}
	_, _ = fmt.Fprintf(pv, "\n  [%s]Scan to follow:[-]\n\n[%s]%s[-]", muted, fg, qr)
}

// profileLink is the content encoded in the profile QR code.
func profileLink(handle string) string {
	return "wave://profile/" + handle
}

// Name implements ui.Component.
func (pv *ProfileView) Name() string { return PageProfile }

// Start implements ui.Component.
func (pv *ProfileView) Start() {}

// Stop implements ui.Component.
func (pv *ProfileView) Stop() {}

// Hints implements ui.Component.
func (pv *ProfileView) Hints() []ui.MenuHint { return backHints() }

// ApplyTheme implements ui.Component.
func (pv *ProfileView) ApplyTheme() {
	styleBox(pv.Box, pv.theme)
	pv.SetTextColor(pv.theme.FgColor)
	pv.render()
}
