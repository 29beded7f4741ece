package views

import (
	"fmt"
	"strconv"

	"github.com/rivo/tview"

	"github.com/matheus3301/wave/internal/feed"
	"github.com/matheus3301/wave/internal/tui/ui"
)

// PostsView lists posts in feed order.
type PostsView struct {
	*tview.Table
	theme *ui.Theme
	posts []feed.Post
}

// NewPostsView creates the posts page.
func NewPostsView(theme *ui.Theme) *PostsView {
	pv := &PostsView{
		Table: tview.NewTable().
			SetSelectable(true, false).
			SetFixed(1, 0),
		theme: theme,
	}
	pv.SetTitle(" Posts ")
	pv.ApplyTheme()
	return pv
}

// Update replaces the rendered posts.
func (pv *PostsView) Update(posts []feed.Post) {
	pv.posts = posts
	pv.render()
}

// Selected returns the post under the cursor.
func (pv *PostsView) Selected() (feed.Post, bool) {
	row, _ := pv.GetSelection()
	if row < 1 || row > len(pv.posts) {
		return feed.Post{}, false
	}
	return pv.posts[row-1], true
}

// SetLikes updates one post's like state in place.
func (pv *PostsView) SetLikes(id string, s feed.LikeState) {
	for i := range pv.posts {
		if pv.posts[i].ID == id {
			pv.posts[i].LikeState = s
		}
	}
	pv.render()
}

func (pv *PostsView) render() {
	th := pv.theme
	row, _ := pv.GetSelection()
	pv.Clear()

	for i, h := range []string{"AUTHOR", "CAPTION", "LIKES", "COMMENTS", "POSTED"} {
		c := headerCell(h, th)
		if i == 1 {
			c.SetExpansion(1)
		}
		pv.SetCell(0, i, c)
	}
	for i, p := range pv.posts {
		r := i + 1
		likeColor := th.FgColor
		if p.IsLiked {
			likeColor = th.LikeColor
		}
		pv.SetCell(r, 0, cell(display(p.Author), th.FgColor))
		pv.SetCell(r, 1, cell(display(singleLine(p.Caption)), th.FgColor).SetMaxWidth(70).SetExpansion(1))
		pv.SetCell(r, 2, cell(heart(p.IsLiked)+" "+feed.FormatCount(p.LikeCount), likeColor).SetAlign(tview.AlignRight))
		pv.SetCell(r, 3, cell(strconv.Itoa(p.Comments), th.MutedColor).SetAlign(tview.AlignRight))
		pv.SetCell(r, 4, cell(p.Timestamp, th.MutedColor))
	}
	pv.SetTitle(fmt.Sprintf(" Posts [%s](%d)[-] ", ui.Tag(th.CounterColor), len(pv.posts)))

	if row < 1 {
		row = 1
	}
	if row <= len(pv.posts) {
		pv.Select(row, 0)
	}
}

// Name implements ui.Component.
func (pv *PostsView) Name() string { return PagePosts }

// Start implements ui.Component.
func (pv *PostsView) Start() {}

// Stop implements ui.Component.
func (pv *PostsView) Stop() {}

// Hints implements ui.Component.
func (pv *PostsView) Hints() []ui.MenuHint {
	return []ui.MenuHint{
		{Key: "l", Description: "Like"},
		{Key: "j/k", Description: "Move"},
		{Key: "Esc", Description: "Back"},
	}
}

// ApplyTheme implements ui.Component.
func (pv *PostsView) ApplyTheme() {
	styleTable(pv.Table, pv.theme)
	pv.render()
}
