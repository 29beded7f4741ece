// Package tui is the terminal client of the profile daemon.
package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/matheus3301/wave/internal/client"
	"github.com/matheus3301/wave/internal/directory"
	"github.com/matheus3301/wave/internal/messagelog"
	"github.com/matheus3301/wave/internal/tui/keys"
	"github.com/matheus3301/wave/internal/tui/model"
	"github.com/matheus3301/wave/internal/tui/ui"
	"github.com/matheus3301/wave/internal/tui/views"
)

const (
	refreshInterval = 5 * time.Second
	rpcTimeout      = 10 * time.Second
	watchRetry      = 2 * time.Second
)

// App is the main TUI application shell.
type App struct {
	app      *tview.Application
	vm       *model.ViewModel
	registry *keys.Registry
	theme    *ui.Theme
	profile  string

	root     *tview.Flex
	header   *tview.Flex
	body     *tview.Flex
	logo     *ui.Logo
	account  *ui.AccountInfo
	menu     *ui.Menu
	crumbs   *ui.Crumbs
	pages    *ui.Pages
	prompt   *ui.Prompt
	flash    *ui.FlashModel
	flashBar *ui.FlashBar

	login    *views.LoginView
	chats    *views.ChatList
	thread   *views.ChatThread
	details  *views.ChatInfo
	posts    *views.PostsView
	reels    *views.ReelsView
	services *views.ServicesView
	me       *views.ProfileView
	settings *views.SettingsView
	help     *views.HelpView

	promptShown bool

	ctx    context.Context
	cancel context.CancelFunc
}

// NewApp creates the TUI application.
func NewApp(c *client.Client, profileName string) *App {
	ctx, cancel := context.WithCancel(context.Background())
	theme := ui.LightTheme()

	a := &App{
		app:      tview.NewApplication(),
		vm:       model.NewViewModel(c),
		registry: keys.NewRegistry(),
		theme:    theme,
		profile:  profileName,
		logo:     ui.NewLogo(theme),
		account:  ui.NewAccountInfo(theme),
		menu:     ui.NewMenu(theme),
		crumbs:   ui.NewCrumbs(theme),
		pages:    ui.NewPages(),
		prompt:   ui.NewPrompt(theme),
		flash:    ui.NewFlashModel(),
		flashBar: ui.NewFlashBar(theme),
		login:    views.NewLoginView(theme),
		chats:    views.NewChatList(theme),
		thread:   views.NewChatThread(theme),
		details:  views.NewChatInfo(theme),
		posts:    views.NewPostsView(theme),
		reels:    views.NewReelsView(theme),
		me:       views.NewProfileView(theme),
		settings: views.NewSettingsView(theme),
		help:     views.NewHelpView(theme),
		ctx:      ctx,
		cancel:   cancel,
	}
	a.services = views.NewServicesView(theme, a.queue)

	a.account.Update(&ui.AccountData{Profile: profileName, Status: "CONNECTING"})
	a.setupBindings()
	a.setupCallbacks()
	a.setupLayout()

	return a
}

// queue runs fn on the UI goroutine and redraws.
func (a *App) queue(fn func()) {
	a.app.QueueUpdateDraw(fn)
}

func (a *App) setupBindings() {
	r := a.registry

	r.AddGlobal(&keys.Action{Key: tcell.KeyRune, Rune: '?', Description: "Help", Visible: true,
		Handler: func() { a.navigate(views.PageHelp) }})
	r.AddGlobal(&keys.Action{Key: tcell.KeyRune, Rune: 'T', Description: "Theme", Visible: true,
		Handler: a.toggleTheme})
	r.AddGlobal(&keys.Action{Key: tcell.KeyRune, Rune: 'C', Description: "Chats",
		Handler: func() { a.navigate(views.PageChats) }})
	r.AddGlobal(&keys.Action{Key: tcell.KeyRune, Rune: 'P', Description: "Posts",
		Handler: func() { a.navigate(views.PagePosts) }})
	r.AddGlobal(&keys.Action{Key: tcell.KeyRune, Rune: 'R', Description: "Reels",
		Handler: func() { a.navigate(views.PageReels) }})
	r.AddGlobal(&keys.Action{Key: tcell.KeyRune, Rune: 'S', Description: "Services",
		Handler: func() { a.navigate(views.PageServices) }})
	r.AddGlobal(&keys.Action{Key: tcell.KeyRune, Rune: 'M', Description: "Profile",
		Handler: func() { a.navigate(views.PageProfile) }})
	r.AddGlobal(&keys.Action{Key: tcell.KeyRune, Rune: 'G', Description: "Settings",
		Handler: func() { a.navigate(views.PageSettings) }})
	r.AddGlobal(&keys.Action{Key: tcell.KeyRune, Rune: 'q', Description: "Back", Handler: a.back})

	r.AddView(views.PageChats, &keys.Action{Key: tcell.KeyRune, Rune: 'n', Description: "New chat",
		Handler: a.newChat})
	r.AddView(views.PageChats, &keys.Action{Key: tcell.KeyRune, Rune: 'd', Description: "Details",
		Handler: func() {
			if c, ok := a.chats.Selected(); ok {
				a.showDetails(c)
			}
		}})
	for i := 1; i <= 9; i++ {
		n := i
		r.AddView(views.PageChats, &keys.Action{Key: tcell.KeyRune, Rune: rune('0' + n),
			Handler: func() {
				if c, ok := a.chats.At(n - 1); ok {
					a.openChat(c)
				}
			}})
	}

	r.AddView(views.PageChat, &keys.Action{Key: tcell.KeyRune, Rune: 'i', Description: "Compose",
		Handler: func() { a.app.SetFocus(a.thread.Composer()) }})
	r.AddView(views.PageChat, &keys.Action{Key: tcell.KeyRune, Rune: 'd', Description: "Details",
		Handler: func() { a.showDetails(a.thread.Conversation()) }})

	r.AddView(views.PagePosts, &keys.Action{Key: tcell.KeyRune, Rune: 'l', Description: "Like",
		Handler: func() {
			if p, ok := a.posts.Selected(); ok {
				a.toggleLike(p.ID)
			}
		}})

	r.AddView(views.PageReels, &keys.Action{Key: tcell.KeyRune, Rune: 'l', Description: "Like",
		Handler: func() {
			if rl, ok := a.reels.Current(); ok {
				a.toggleLike(rl.ID)
			}
		}})
	r.AddView(views.PageReels, &keys.Action{Key: tcell.KeyRune, Rune: 'j', Handler: func() { a.reels.Next() }})
	r.AddView(views.PageReels, &keys.Action{Key: tcell.KeyDown, Handler: func() { a.reels.Next() }})
	r.AddView(views.PageReels, &keys.Action{Key: tcell.KeyRune, Rune: 'k', Handler: func() { a.reels.Prev() }})
	r.AddView(views.PageReels, &keys.Action{Key: tcell.KeyUp, Handler: func() { a.reels.Prev() }})

	r.AddView(views.PageServices, &keys.Action{Key: tcell.KeyRune, Rune: ',', Handler: a.services.PrevAd})
	r.AddView(views.PageServices, &keys.Action{Key: tcell.KeyRune, Rune: '.', Handler: a.services.NextAd})

	r.AddView(views.PageSettings, &keys.Action{Key: tcell.KeyRune, Rune: 't', Handler: a.toggleTheme})
}

func (a *App) setupCallbacks() {
	a.login.SetOnLogin(a.doLogin)
	a.chats.SetOnSelect(a.openChat)
	a.thread.SetOnSend(a.sendText)
	a.settings.SetOnToggleTheme(a.toggleTheme)
	a.settings.SetOnLogout(a.logout)

	a.services.Grid().SetSelectedFunc(func(int, int) {
		if s, ok := a.services.SelectedService(); ok {
			a.flash.Info(fmt.Sprintf("%s: %s", s.Name, s.Description))
		}
	})

	a.prompt.SetOnSubmit(a.onPrompt)
	a.prompt.SetOnCancel(a.hidePrompt)

	a.pages.SetOnChange(func(stack []string) {
		a.crumbs.Update(stack)
		a.updateMenu()
	})

	a.flash.SetOnChange(func() {
		a.queue(func() { a.flashBar.Update(a.flash.GetMessage()) })
	})
}

func (a *App) setupLayout() {
	a.pages.Register(a.login, a.login)
	a.pages.Register(a.chats, a.chats)
	a.pages.Register(a.thread, a.thread)
	a.pages.Register(a.details, a.details)
	a.pages.Register(a.posts, a.posts)
	a.pages.Register(a.reels, a.reels)
	a.pages.Register(a.services, a.services)
	a.pages.Register(a.me, a.me)
	a.pages.Register(a.settings, a.settings)
	a.pages.Register(a.help, a.help)

	a.header = tview.NewFlex().
		AddItem(a.logo, 18, 0, false).
		AddItem(a.account, 0, 1, false).
		AddItem(a.menu, 0, 1, false)

	a.body = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(a.pages, 0, 1, true)

	a.root = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(a.header, 6, 0, false).
		AddItem(a.crumbs, 1, 0, false).
		AddItem(a.body, 0, 1, true).
		AddItem(a.flashBar, 1, 0, false)

	a.applyTheme(a.theme.Name)
	a.app.SetRoot(a.root, true)
	a.app.SetInputCapture(a.handleKey)
}

func (a *App) handleKey(ev *tcell.EventKey) *tcell.EventKey {
	if a.promptShown {
		return ev
	}
	current := a.pages.Current()

	// Text inputs keep every key; Esc leaves the composer.
	if _, ok := a.app.GetFocus().(*tview.InputField); ok {
		if ev.Key() == tcell.KeyEscape && current == views.PageChat {
			a.app.SetFocus(a.thread.MessagesView())
			return nil
		}
		return ev
	}
	if current == views.PageLogin {
		return ev
	}

	switch {
	case ev.Key() == tcell.KeyEscape:
		a.back()
		return nil
	case ev.Key() == tcell.KeyRune && ev.Rune() == ':':
		a.showPrompt(ui.PromptCommand)
		return nil
	case ev.Key() == tcell.KeyRune && ev.Rune() == '/':
		if current == views.PageChats || current == views.PageServices {
			a.showPrompt(ui.PromptFilter)
			return nil
		}
	}

	if a.registry.HandleEvent(current, ev) {
		return nil
	}
	return ev
}

func (a *App) showPrompt(mode ui.PromptMode) {
	if a.promptShown {
		return
	}
	a.prompt.Activate(mode)
	a.body.AddItem(a.prompt, 3, 0, false)
	a.promptShown = true
	a.app.SetFocus(a.prompt)
}

func (a *App) hidePrompt() {
	if !a.promptShown {
		return
	}
	a.body.RemoveItem(a.prompt)
	a.promptShown = false
	a.focusCurrent()
}

func (a *App) onPrompt(mode ui.PromptMode, text string) {
	a.hidePrompt()
	if mode == ui.PromptFilter {
		a.applyFilter(text)
		return
	}
	a.runCommand(ParseCommand(text))
}

func (a *App) applyFilter(q string) {
	switch a.pages.Current() {
	case views.PageChats:
		a.chats.SetFilter(q)
	case views.PageServices:
		go func() {
			ctx, cancel := context.WithTimeout(a.ctx, rpcTimeout)
			defer cancel()
			res, err := a.vm.SearchServices(ctx, q)
			if err != nil {
				a.flash.Err("Search failed: " + client.ErrorMessage(err))
				return
			}
			a.queue(func() { a.services.SetServices(res, q) })
		}()
	}
}

func (a *App) runCommand(cmd Command) {
	switch cmd.Name {
	case "q", "quit", "exit":
		a.Stop()
		return
	case "theme":
		if cmd.Args == "" || cmd.Args == "toggle" {
			a.toggleTheme()
			return
		}
		a.setTheme(cmd.Args)
		return
	case "logout":
		a.logout()
		return
	case "new":
		a.newChat()
		return
	}
	if page, ok := pageAliases[cmd.Name]; ok {
		a.navigate(page)
		return
	}
	a.flash.Warn(fmt.Sprintf("Unknown command: %s", cmd.Name))
}

// navigate shows a top-level page. Chats is the root of the stack; every
// other page sits on top of it.
func (a *App) navigate(page string) {
	if !a.authenticated() {
		return
	}
	switch page {
	case views.PageProfile:
		user := ""
		if s := a.vm.Status(); s != nil {
			user = s.Identifier
		}
		a.me.Update(a.vm.Profile(), user)
	case views.PageSettings:
		if s := a.vm.Status(); s != nil {
			a.settings.SetTheme(s.Theme)
		}
	}

	if page == views.PageChats {
		a.pages.Reset(views.PageChats)
	} else {
		a.pages.Reset(views.PageChats)
		a.pages.Push(page)
	}
	a.focusCurrent()
}

func (a *App) back() {
	if a.pages.Pop() != "" {
		a.focusCurrent()
	}
}

func (a *App) focusCurrent() {
	switch a.pages.Current() {
	case views.PageLogin:
		a.app.SetFocus(a.login.Input())
	case views.PageChat:
		a.app.SetFocus(a.thread.MessagesView())
	case views.PageServices:
		a.app.SetFocus(a.services.Grid())
	default:
		if c, ok := a.pages.Component(a.pages.Current()); ok {
			if p, ok := c.(tview.Primitive); ok {
				a.app.SetFocus(p)
			}
		}
	}
}

func (a *App) updateMenu() {
	var hints []ui.MenuHint
	if c, ok := a.pages.Component(a.pages.Current()); ok {
		hints = append(hints, c.Hints()...)
	}
	if a.pages.Current() != views.PageLogin {
		for _, h := range a.registry.Hints("") {
			hints = append(hints, ui.MenuHint{Key: h.Key, Description: h.Description})
		}
	}
	a.menu.Update(hints)
}

func (a *App) authenticated() bool {
	s := a.vm.Status()
	return s != nil && s.Authenticated
}

func (a *App) openChat(c directory.Conversation) {
	a.thread.Open(c)
	if cached := a.vm.Messages(c.ID); len(cached) > 0 {
		a.thread.Update(cached)
	}
	a.pages.Reset(views.PageChats)
	a.pages.Push(views.PageChat)
	a.focusCurrent()

	go func() {
		ctx, cancel := context.WithTimeout(a.ctx, rpcTimeout)
		defer cancel()
		if err := a.vm.LoadMessages(ctx, c.ID); err != nil {
			a.flash.Err("Load failed: " + client.ErrorMessage(err))
			return
		}
		a.queue(func() {
			if a.thread.Conversation().ID == c.ID {
				a.thread.Update(a.vm.Messages(c.ID))
			}
		})
	}()
}

func (a *App) newChat() {
	go func() {
		ctx, cancel := context.WithTimeout(a.ctx, rpcTimeout)
		defer cancel()
		c, err := a.vm.NewChat(ctx)
		if err != nil {
			a.flash.Err("New chat: " + client.ErrorMessage(err))
			return
		}
		a.queue(func() { a.openChat(c) })
	}()
}

func (a *App) showDetails(c directory.Conversation) {
	if c.ID == "" {
		return
	}
	a.details.Update(c)
	a.pages.Push(views.PageDetails)
	a.focusCurrent()
}

func (a *App) sendText(conversationID, text string) {
	go func() {
		ctx, cancel := context.WithTimeout(a.ctx, rpcTimeout)
		defer cancel()
		m, err := a.vm.SendText(ctx, conversationID, text)
		if err != nil {
			a.flash.Err("Send failed: " + client.ErrorMessage(err))
			return
		}
		a.vm.AddMessage(m)
		a.queue(func() {
			if a.thread.Conversation().ID == conversationID {
				a.thread.ClearComposer()
				a.thread.Update(a.vm.Messages(conversationID))
			}
		})
	}()
}

func (a *App) onMessage(m messagelog.Message) {
	a.queue(func() {
		if a.pages.Current() == views.PageChat && a.thread.Conversation().ID == m.ConversationID {
			a.thread.Update(a.vm.Messages(m.ConversationID))
		}
	})
}

func (a *App) toggleLike(itemID string) {
	go func() {
		ctx, cancel := context.WithTimeout(a.ctx, rpcTimeout)
		defer cancel()
		s, err := a.vm.ToggleLike(ctx, itemID)
		if err != nil {
			a.flash.Err("Like failed: " + client.ErrorMessage(err))
			return
		}
		a.queue(func() {
			a.posts.SetLikes(itemID, s)
			a.reels.SetLikes(itemID, s)
		})
	}()
}

func (a *App) toggleTheme() {
	go func() {
		ctx, cancel := context.WithTimeout(a.ctx, rpcTimeout)
		defer cancel()
		name, err := a.vm.ToggleTheme(ctx)
		if err != nil {
			a.flash.Err("Theme: " + client.ErrorMessage(err))
			return
		}
		a.queue(func() { a.applyTheme(name) })
	}()
}

func (a *App) setTheme(name string) {
	go func() {
		ctx, cancel := context.WithTimeout(a.ctx, rpcTimeout)
		defer cancel()
		stored, err := a.vm.SetTheme(ctx, name)
		if err != nil {
			a.flash.Err("Theme: " + client.ErrorMessage(err))
			return
		}
		a.queue(func() { a.applyTheme(stored) })
	}()
}

// applyTheme swaps the shared palette in place and restyles every widget.
func (a *App) applyTheme(name string) {
	*a.theme = *ui.ThemeFor(name)

	tview.Styles.PrimitiveBackgroundColor = a.theme.BgColor
	tview.Styles.PrimaryTextColor = a.theme.FgColor
	tview.Styles.BorderColor = a.theme.BorderColor

	for _, f := range []*tview.Flex{a.root, a.header, a.body} {
		if f != nil {
			f.SetBackgroundColor(a.theme.BgColor)
		}
	}
	a.logo.ApplyTheme()
	a.account.ApplyTheme()
	a.menu.ApplyTheme()
	a.crumbs.ApplyTheme()
	a.prompt.ApplyTheme()
	a.flashBar.ApplyTheme()
	for _, c := range a.pages.Components() {
		c.ApplyTheme()
	}
	a.settings.SetTheme(a.theme.Name)
	a.updateAccount()
}

func (a *App) logout() {
	go func() {
		ctx, cancel := context.WithTimeout(a.ctx, rpcTimeout)
		defer cancel()
		resp, err := a.vm.Logout(ctx)
		if err != nil {
			a.flash.Err("Logout: " + client.ErrorMessage(err))
			return
		}
		if !resp.Success {
			a.flash.Warn(resp.Message)
		}
	}()
}

func (a *App) doLogin(identifier string) {
	go func() {
		ctx, cancel := context.WithTimeout(a.ctx, rpcTimeout)
		defer cancel()
		if err := a.vm.Login(ctx, identifier); err != nil {
			msg := client.ErrorMessage(err)
			a.queue(func() { a.login.ShowError(msg) })
			return
		}
		if err := a.loadAll(ctx); err != nil {
			a.flash.Err("Load failed: " + client.ErrorMessage(err))
		}
		a.queue(func() {
			a.login.Reset()
			a.render()
			a.flash.Info("Signed in as " + identifier)
			a.navigate(views.PageChats)
		})
	}()
}

func (a *App) loadAll(ctx context.Context) error {
	return errors.Join(
		a.vm.LoadStatus(ctx),
		a.vm.LoadChats(ctx),
		a.vm.LoadFeed(ctx),
	)
}

// render pushes cached state into every page.
func (a *App) render() {
	a.updateAccount()
	a.chats.Update(a.vm.Chats())
	a.posts.Update(a.vm.Posts())
	a.reels.Update(a.vm.Reels())
	ads, intervalMs := a.vm.Ads()
	a.services.SetAds(ads, time.Duration(intervalMs)*time.Millisecond)
	if a.services.Query() == "" {
		a.services.SetServices(a.vm.Services(), "")
	}
	a.services.SetNews(a.vm.News())
}

func (a *App) updateAccount() {
	data := &ui.AccountData{Profile: a.profile, Status: "CONNECTING", Theme: a.theme.Name}
	if s := a.vm.Status(); s != nil {
		data.User = s.Identifier
		data.Status = s.Status
		data.ChatCount = s.ChatCount
		data.Uptime = time.Duration(s.UptimeMs) * time.Millisecond
	}
	a.account.Update(data)
}

// Run starts the TUI application.
func (a *App) Run() error {
	go a.start()
	err := a.app.Run()
	a.cancel()
	a.pages.StopAll()
	return err
}

func (a *App) start() {
	ctx, cancel := context.WithTimeout(a.ctx, rpcTimeout)
	err := a.loadAll(ctx)
	cancel()
	if err != nil {
		a.flash.Err("Load failed: " + client.ErrorMessage(err))
	}

	a.queue(func() {
		status := a.vm.Status()
		if status != nil {
			a.applyTheme(status.Theme)
		}
		a.render()
		if a.authenticated() {
			a.navigate(views.PageChats)
		} else {
			a.pages.Reset(views.PageLogin)
			a.focusCurrent()
		}
	})

	go a.watchMessages()
	a.refreshLoop()
}

func (a *App) watchMessages() {
	for {
		err := a.vm.Watch(a.ctx, a.onMessage)
		if a.ctx.Err() != nil {
			return
		}
		if err != nil {
			a.flash.Warn("Message stream lost: " + client.ErrorMessage(err))
		}
		select {
		case <-a.ctx.Done():
			return
		case <-time.After(watchRetry):
		}
	}
}

func (a *App) refreshLoop() {
	ticker := time.NewTicker(refreshInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(a.ctx, rpcTimeout)
			_ = a.vm.LoadStatus(ctx)
			_ = a.vm.LoadChats(ctx)
			cancel()
			a.queue(func() {
				a.updateAccount()
				a.chats.Update(a.vm.Chats())
				a.flashBar.Update(a.flash.GetMessage())
			})
		case <-a.ctx.Done():
			return
		}
	}
}

// Stop gracefully shuts down the TUI.
func (a *App) Stop() {
	a.cancel()
	a.pages.StopAll()
	a.app.Stop()
}
