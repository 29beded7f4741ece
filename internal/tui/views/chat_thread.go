package views

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/matheus3301/wave/internal/directory"
	"github.com/matheus3301/wave/internal/messagelog"
	"github.com/matheus3301/wave/internal/tui/ui"
)

// ChatThread shows one conversation, oldest message at the top, with a
// composer underneath.
type ChatThread struct {
	*tview.Flex
	theme    *ui.Theme
	messages *tview.TextView
	composer *tview.InputField
	chat     directory.Conversation
	log      []messagelog.Message
	onSend   func(conversationID, text string)
}

// NewChatThread creates the conversation page.
func NewChatThread(theme *ui.Theme) *ChatThread {
	ct := &ChatThread{
		Flex:  tview.NewFlex().SetDirection(tview.FlexRow),
		theme: theme,
		messages: tview.NewTextView().
			SetDynamicColors(true).
			SetScrollable(true).
			SetWordWrap(true),
		composer: tview.NewInputField().SetLabel(" > "),
	}
	ct.composer.SetBorder(true)
	ct.composer.SetTitle(" Message ")

	ct.AddItem(ct.messages, 0, 1, true)
	ct.AddItem(ct.composer, 3, 0, false)

	ct.composer.SetDoneFunc(func(key tcell.Key) {
		if key != tcell.KeyEnter {
			return
		}
		text := ct.composer.GetText()
		if strings.TrimSpace(text) == "" || ct.chat.ID == "" {
			return
		}
		if ct.onSend != nil {
			ct.onSend(ct.chat.ID, text)
		}
	})

	ct.ApplyTheme()
	return ct
}

// SetOnSend sets the callback for Enter in the composer.
func (ct *ChatThread) SetOnSend(fn func(conversationID, text string)) {
	ct.onSend = fn
}

// Composer returns the input field.
func (ct *ChatThread) Composer() *tview.InputField { return ct.composer }

// MessagesView returns the scrollable message pane.
func (ct *ChatThread) MessagesView() *tview.TextView { return ct.messages }

// ClearComposer empties the input after a successful send.
func (ct *ChatThread) ClearComposer() { ct.composer.SetText("") }

// Conversation returns the open conversation.
func (ct *ChatThread) Conversation() directory.Conversation { return ct.chat }

// Open switches to conversation c.
func (ct *ChatThread) Open(c directory.Conversation) {
	if c.ID != ct.chat.ID {
		ct.composer.SetText("")
	}
	ct.chat = c
	ct.log = nil
	ct.render()
}

// Update replaces the rendered log, oldest first.
func (ct *ChatThread) Update(log []messagelog.Message) {
	ct.log = log
	ct.render()
}

func (ct *ChatThread) render() {
	th := ct.theme
	ct.messages.Clear()

	status := ""
	if ct.chat.IsOnline {
		status = fmt.Sprintf(" [%s]● online[-]", ui.Tag(th.OnlineColor))
	}
	ct.messages.SetTitle(fmt.Sprintf(" %s%s ", display(ct.chat.DisplayName), status))

	if len(ct.log) == 0 {
		_, _ = fmt.Fprintf(ct.messages, "\n  [%s]No messages yet. Say hello.[-]", ui.Tag(th.MutedColor))
		return
	}

	muted := ui.Tag(th.MutedColor)
	for _, m := range ct.log {
		who, color := display(ct.chat.DisplayName), ui.Tag(th.InboundColor)
		if m.IsOutbound {
			who, color = "You", ui.Tag(th.OutboundColor)
		}
		_, _ = fmt.Fprintf(ct.messages, "[%s::b]%s[-:-:-] [%s]%s[-]\n", color, who, muted, m.Timestamp)
		for _, line := range strings.Split(display(m.Text), "\n") {
			_, _ = fmt.Fprintf(ct.messages, "  [%s]%s[-]\n", ui.Tag(th.FgColor), line)
		}
		_, _ = fmt.Fprintln(ct.messages)
	}
	ct.messages.ScrollToEnd()
}

// Name implements ui.Component.
func (ct *ChatThread) Name() string { return PageChat }

// Start implements ui.Component.
func (ct *ChatThread) Start() {}

// Stop implements ui.Component.
func (ct *ChatThread) Stop() {}

// Hints implements ui.Component.
func (ct *ChatThread) Hints() []ui.MenuHint {
	return []ui.MenuHint{
		{Key: "i", Description: "Compose"},
		{Key: "Enter", Description: "Send"},
		{Key: "d", Description: "Details"},
		{Key: "Esc", Description: "Back"},
	}
}

// ApplyTheme implements ui.Component.
func (ct *ChatThread) ApplyTheme() {
	ct.SetBackgroundColor(ct.theme.BgColor)
	styleBox(ct.messages.Box, ct.theme)
	ct.messages.SetTextColor(ct.theme.FgColor)
	styleBox(ct.composer.Box, ct.theme)
	styleInput(ct.composer, ct.theme)
	ct.render()
}

// ChatInfo shows the details of one conversation.
type ChatInfo struct {
	*tview.TextView
	theme *ui.Theme
	chat  directory.Conversation
}

// NewChatInfo creates the details page.
func NewChatInfo(theme *ui.Theme) *ChatInfo {
	ci := &ChatInfo{
		TextView: tview.NewTextView().SetDynamicColors(true),
		theme:    theme,
	}
	ci.ApplyTheme()
	return ci
}

// Update renders conversation details.
func (ci *ChatInfo) Update(c directory.Conversation) {
	ci.chat = c
	ci.render()
}

func (ci *ChatInfo) render() {
	ci.Clear()
	c := ci.chat
	if c.ID == "" {
		return
	}
	fg := ui.Tag(ci.theme.FgColor)
	ct := ui.Tag(ci.theme.CounterColor)

	presence := "offline"
	if c.IsOnline {
		presence = "online"
	}
	_, _ = fmt.Fprintf(ci,
		"\n [%s::b]Name:[-:-:-]         [%s]%s[-]\n"+
			" [%s::b]ID:[-:-:-]           [%s]%s[-]\n"+
			" [%s::b]Presence:[-:-:-]     [%s]%s[-]\n"+
			" [%s::b]Unread:[-:-:-]       [%s]%d[-]\n"+
			" [%s::b]Last Active:[-:-:-]  [%s]%s[-]\n"+
			" [%s::b]Last Message:[-:-:-] [%s]%s[-]",
		fg, ct, display(c.DisplayName),
		fg, ct, display(c.ID),
		fg, ct, presence,
		fg, ct, c.UnreadCount,
		fg, ct, c.LastMessageTimestamp,
		fg, ct, display(truncate(singleLine(c.LastMessagePreview), 120)),
	)
	ci.SetTitle(fmt.Sprintf(" %s Details ", display(c.DisplayName)))
}

// Name implements ui.Component.
func (ci *ChatInfo) Name() string { return PageDetails }

// Start implements ui.Component.
func (ci *ChatInfo) Start() {}

// Stop implements ui.Component.
func (ci *ChatInfo) Stop() {}

// Hints implements ui.Component.
func (ci *ChatInfo) Hints() []ui.MenuHint { return backHints() }

// ApplyTheme implements ui.Component.
func (ci *ChatInfo) ApplyTheme() {
	styleBox(ci.Box, ci.theme)
	ci.SetTextColor(ci.theme.FgColor)
	ci.render()
}
