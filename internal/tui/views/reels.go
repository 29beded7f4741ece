package views

import (
	"fmt"

	"github.com/rivo/tview"

	"github.com/matheus3301/wave/internal/carousel"
	"github.com/matheus3301/wave/internal/feed"
	"github.com/matheus3301/wave/internal/tui/ui"
)

// ReelsView shows one reel at a time; paging moves the viewable reel.
type ReelsView struct {
	*tview.TextView
	theme *ui.Theme
	reels []feed.Reel
	pager *carousel.Pager
}

// NewReelsView creates the reels page.
func NewReelsView(theme *ui.Theme) *ReelsView {
	rv := &ReelsView{
		TextView: tview.NewTextView().
			SetDynamicColors(true).
			SetWordWrap(true),
		theme: theme,
	}
	rv.pager = carousel.NewPager(0, nil)
	rv.ApplyTheme()
	return rv
}

// Update replaces the reels. The current index is kept when still in range.
func (rv *ReelsView) Update(reels []feed.Reel) {
	cur := rv.pager.Current()
	rv.reels = reels
	rv.pager = carousel.NewPager(len(reels), func(int) { rv.render() })
	rv.pager.OnViewable(cur)
	rv.render()
}

// Next pages to the following reel.
func (rv *ReelsView) Next() bool { return rv.pager.Next() }

// Prev pages to the previous reel.
func (rv *ReelsView) Prev() bool { return rv.pager.Prev() }

// Current returns the viewable reel.
func (rv *ReelsView) Current() (feed.Reel, bool) {
	i := rv.pager.Current()
	if i < 0 || i >= len(rv.reels) {
		return feed.Reel{}, false
	}
	return rv.reels[i], true
}

// SetLikes updates one reel's like state in place.
func (rv *ReelsView) SetLikes(id string, s feed.LikeState) {
	for i := range rv.reels {
		if rv.reels[i].ID == id {
			rv.reels[i].LikeState = s
		}
	}
	rv.render()
}

func (rv *ReelsView) render() {
	rv.Clear()
	th := rv.theme
	r, ok := rv.Current()
	if !ok {
		rv.SetTitle(" Reels ")
		_, _ = fmt.Fprintf(rv, "\n  [%s]No reels.[-]", ui.Tag(th.MutedColor))
		return
	}
	rv.SetTitle(fmt.Sprintf(" Reels [%s](%d/%d)[-] ", ui.Tag(th.CounterColor), rv.pager.Current()+1, len(rv.reels)))

	likeColor := ui.Tag(th.FgColor)
	if r.IsLiked {
		likeColor = ui.Tag(th.LikeColor)
	}
	kind := "photo"
	if r.IsVideo {
		kind = "video"
	}
	muted := ui.Tag(th.MutedColor)
	_, _ = fmt.Fprintf(rv,
		"\n  [%s::b]@%s[-:-:-]  [%s]%s[-]\n\n"+
			"  [%s]%s[-]\n\n"+
			"  [%s]%s %s[-]   [%s]💬 %s   ↗ %s[-]\n\n"+
			"  [%s]media: %s[-]",
		ui.Tag(th.TitleColor), display(r.Author), muted, kind,
		ui.Tag(th.FgColor), display(r.Caption),
		likeColor, heart(r.IsLiked), feed.FormatCount(r.LikeCount),
		muted, feed.FormatCount(r.Comments), feed.FormatCount(r.Shares),
		muted, display(r.MediaRef),
	)
}

// Name implements ui.Component.
func (rv *ReelsView) Name() string { return PageReels }

// Start implements ui.Component.
func (rv *ReelsView) Start() {}

// Stop implements ui.Component.
func (rv *ReelsView) Stop() {}

// Hints implements ui.Component.
func (rv *ReelsView) Hints() []ui.MenuHint {
	return []ui.MenuHint{
		{Key: "j", Description: "Next"},
		{Key: "k", Description: "Previous"},
		{Key: "l", Description: "Like"},
		{Key: "Esc", Description: "Back"},
	}
}

// ApplyTheme implements ui.Component.
func (rv *ReelsView) ApplyTheme() {
	styleBox(rv.Box, rv.theme)
	rv.SetTextColor(rv.theme.FgColor)
	rv.render()
}
