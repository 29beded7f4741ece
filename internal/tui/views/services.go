package views

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/matheus3301/wave/internal/carousel"
	"github.com/matheus3301/wave/internal/feed"
	"github.com/matheus3301/wave/internal/tui/ui"
)

const serviceColumns = 3

// ServicesView is the services hub: an auto-advancing ads banner, the
// services grid and the news list.
type ServicesView struct {
	*tview.Flex
	theme    *ui.Theme
	banner   *tview.TextView
	grid     *tview.Table
	newsView *tview.TextView

	queue    func(func())
	ads      []feed.Ad
	carousel *carousel.Carousel
	running  bool
	services []feed.Service
	query    string
	news     []feed.NewsItem
}

// NewServicesView creates the services page. queue runs a function on the
// UI goroutine; carousel ticks redraw through it.
func NewServicesView(theme *ui.Theme, queue func(func())) *ServicesView {
	sv := &ServicesView{
		Flex:     tview.NewFlex().SetDirection(tview.FlexRow),
		theme:    theme,
		banner:   tview.NewTextView().SetDynamicColors(true),
		grid:     tview.NewTable().SetSelectable(true, true),
		newsView: tview.NewTextView().SetDynamicColors(true).SetScrollable(true).SetWordWrap(true),
		queue:    queue,
	}
	if sv.queue == nil {
		sv.queue = func(fn func()) { fn() }
	}
	sv.carousel = carousel.New(0, 0, nil)

	sv.AddItem(sv.banner, 6, 0, false)
	sv.AddItem(sv.grid, 0, 1, true)
	sv.AddItem(sv.newsView, 0, 1, false)

	sv.banner.SetTitle(" Featured ")
	sv.newsView.SetTitle(" News ")

	sv.ApplyTheme()
	return sv
}

// SetAds installs the carousel pages. interval <= 0 uses the default period.
func (sv *ServicesView) SetAds(ads []feed.Ad, interval time.Duration) {
	was := sv.running
	sv.carousel.Stop()
	sv.ads = ads
	sv.carousel = carousel.New(len(ads), interval, func(int) {
		sv.queue(sv.renderBanner)
	})
	if was {
		sv.carousel.Start(context.Background())
	}
	sv.renderBanner()
}

// AdIndex returns the index of the ad in view.
func (sv *ServicesView) AdIndex() int { return sv.carousel.Index() }

// NextAd scrolls the banner forward by hand.
func (sv *ServicesView) NextAd() {
	if n := len(sv.ads); n > 0 {
		sv.carousel.SetIndex((sv.carousel.Index() + 1) % n)
		sv.renderBanner()
	}
}

// PrevAd scrolls the banner back by hand.
func (sv *ServicesView) PrevAd() {
	if n := len(sv.ads); n > 0 {
		sv.carousel.SetIndex((sv.carousel.Index() + n - 1) % n)
		sv.renderBanner()
	}
}

// SetServices replaces the grid with services matching query.
func (sv *ServicesView) SetServices(services []feed.Service, query string) {
	sv.services = services
	sv.query = strings.TrimSpace(query)
	sv.renderGrid()
}

// Query returns the active search query.
func (sv *ServicesView) Query() string { return sv.query }

// SelectedService returns the service under the cursor.
func (sv *ServicesView) SelectedService() (feed.Service, bool) {
	row, col := sv.grid.GetSelection()
	i := row*serviceColumns + col
	if i < 0 || i >= len(sv.services) {
		return feed.Service{}, false
	}
	return sv.services[i], true
}

// SetNews replaces the news list.
func (sv *ServicesView) SetNews(news []feed.NewsItem) {
	sv.news = news
	sv.renderNews()
}

// Grid returns the services table for focusing.
func (sv *ServicesView) Grid() *tview.Table { return sv.grid }

func (sv *ServicesView) renderBanner() {
	sv.banner.Clear()
	th := sv.theme
	if len(sv.ads) == 0 {
		_, _ = fmt.Fprintf(sv.banner, "\n  [%s]Nothing featured.[-]", ui.Tag(th.MutedColor))
		return
	}
	i := sv.carousel.Index()
	ad := sv.ads[i]

	dots := make([]string, len(sv.ads))
	for j := range sv.ads {
		dots[j] = "○"
		if j == i {
			dots[j] = "●"
		}
	}
	_, _ = fmt.Fprintf(sv.banner,
		"\n  [%s::b]%s[-:-:-]\n  [%s]%s[-]\n  [%s]%s[-]",
		accentTag(ad.AccentColor, th.TitleColor), display(ad.Title),
		ui.Tag(th.FgColor), display(ad.Subtitle),
		ui.Tag(th.MutedColor), strings.Join(dots, " "),
	)
}

func (sv *ServicesView) renderGrid() {
	th := sv.theme
	row, col := sv.grid.GetSelection()
	sv.grid.Clear()

	for i, s := range sv.services {
		text := fmt.Sprintf("[%s]■[-] %s", accentTag(s.AccentColor, th.FgColor), display(s.Name))
		sv.grid.SetCell(i/serviceColumns, i%serviceColumns,
			cell(text, th.FgColor).SetExpansion(1))
	}

	title := fmt.Sprintf(" Services [%s](%d)[-] ", ui.Tag(th.CounterColor), len(sv.services))
	if sv.query != "" {
		title = fmt.Sprintf(" Services /%s [%s](%d)[-] ", tview.Escape(sv.query), ui.Tag(th.CounterColor), len(sv.services))
	}
	sv.grid.SetTitle(title)

	if len(sv.services) == 0 {
		sv.grid.SetCell(0, 0, cell("No services match.", th.MutedColor).SetSelectable(false))
		return
	}
	if row*serviceColumns+col >= len(sv.services) {
		row, col = 0, 0
	}
	sv.grid.Select(row, col)
}

func (sv *ServicesView) renderNews() {
	th := sv.theme
	sv.newsView.Clear()
	for _, n := range sv.news {
		_, _ = fmt.Fprintf(sv.newsView, " [%s::b]%s[-:-:-] [%s]%s · %s[-]\n [%s]%s[-]\n\n",
			ui.Tag(th.TitleColor), display(n.Title),
			ui.Tag(th.MutedColor), display(n.Category), n.Timestamp,
			ui.Tag(th.FgColor), display(n.Summary))
	}
}

// accentTag returns a color tag for a "#rrggbb" accent, or fallback.
func accentTag(accent string, fallback tcell.Color) string {
	if strings.HasPrefix(accent, "#") && len(accent) == 7 {
		if c := tcell.GetColor(accent); c != tcell.ColorDefault {
			return strings.ToLower(accent)
		}
	}
	return ui.Tag(fallback)
}

// Name implements ui.Component.
func (sv *ServicesView) Name() string { return PageServices }

// Start begins auto-advancing the banner.
func (sv *ServicesView) Start() {
	sv.running = true
	sv.carousel.Start(context.Background())
}

// Stop tears the banner timer down.
func (sv *ServicesView) Stop() {
	sv.running = false
	sv.carousel.Stop()
}

// Hints implements ui.Component.
func (sv *ServicesView) Hints() []ui.MenuHint {
	return []ui.MenuHint{
		{Key: "/", Description: "Search"},
		{Key: ",", Description: "Prev ad"},
		{Key: ".", Description: "Next ad"},
		{Key: "Enter", Description: "Open"},
		{Key: "Esc", Description: "Back"},
	}
}

// ApplyTheme implements ui.Component.
func (sv *ServicesView) ApplyTheme() {
	th := sv.theme
	sv.SetBackgroundColor(th.BgColor)
	styleBox(sv.banner.Box, th)
	styleTable(sv.grid, th)
	styleBox(sv.newsView.Box, th)
	sv.renderBanner()
	sv.renderGrid()
	sv.renderNews()
}
