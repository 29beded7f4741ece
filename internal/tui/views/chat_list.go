package views

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rivo/tview"

	"github.com/matheus3301/wave/internal/directory"
	"github.com/matheus3301/wave/internal/tui/ui"
)

// ChatList is the conversation table, in directory order.
type ChatList struct {
	*tview.Table
	theme    *ui.Theme
	all      []directory.Conversation
	shown    []directory.Conversation
	filter   string
	onSelect func(directory.Conversation)
}

// NewChatList creates the conversation table.
func NewChatList(theme *ui.Theme) *ChatList {
	cl := &ChatList{
		Table: tview.NewTable().
			SetSelectable(true, false).
			SetFixed(1, 0),
		theme: theme,
	}
	cl.SetSelectedFunc(func(row, _ int) {
		if c, ok := cl.At(row - 1); ok && cl.onSelect != nil {
			cl.onSelect(c)
		}
	})
	cl.ApplyTheme()
	return cl
}

// SetOnSelect sets the callback for Enter on a conversation.
func (cl *ChatList) SetOnSelect(fn func(directory.Conversation)) {
	cl.onSelect = fn
}

// Update replaces the conversations, keeping the current filter.
func (cl *ChatList) Update(chats []directory.Conversation) {
	cl.all = chats
	cl.render()
}

// SetFilter shows only conversations whose name contains q.
func (cl *ChatList) SetFilter(q string) {
	cl.filter = strings.TrimSpace(q)
	cl.render()
	cl.Select(1, 0)
}

// Filter returns the active filter.
func (cl *ChatList) Filter() string { return cl.filter }

// At returns the i-th visible conversation.
func (cl *ChatList) At(i int) (directory.Conversation, bool) {
	if i < 0 || i >= len(cl.shown) {
		return directory.Conversation{}, false
	}
	return cl.shown[i], true
}

// Selected returns the conversation under the cursor.
func (cl *ChatList) Selected() (directory.Conversation, bool) {
	row, _ := cl.GetSelection()
	return cl.At(row - 1)
}

// Visible returns the conversations currently listed.
func (cl *ChatList) Visible() []directory.Conversation {
	return append([]directory.Conversation(nil), cl.shown...)
}

func (cl *ChatList) render() {
	cl.shown = filterChats(cl.all, cl.filter)

	row, _ := cl.GetSelection()
	cl.Clear()

	th := cl.theme
	for i, h := range []string{"", "NAME", "LAST MESSAGE", "TIME", "UNREAD"} {
		c := headerCell(h, th)
		if i == 2 {
			c.SetExpansion(1)
		}
		cl.SetCell(0, i, c)
	}

	for i, c := range cl.shown {
		r := i + 1
		online := " "
		if c.IsOnline {
			online = "●"
		}
		unread := ""
		if c.UnreadCount > 0 {
			unread = strconv.Itoa(c.UnreadCount)
		}
		cl.SetCell(r, 0, cell(online, th.OnlineColor))
		cl.SetCell(r, 1, cell(tview.Escape(sanitizeForTerminal(c.DisplayName)), th.FgColor).SetMaxWidth(24))
		cl.SetCell(r, 2, cell(tview.Escape(singleLine(sanitizeForTerminal(c.LastMessagePreview))), th.MutedColor).
			SetMaxWidth(60).SetExpansion(1))
		cl.SetCell(r, 3, cell(c.LastMessageTimestamp, th.MutedColor))
		cl.SetCell(r, 4, cell(unread, th.CounterColor).SetAlign(tview.AlignRight))
	}

	title := fmt.Sprintf(" Chats [%s](%d)[-] ", ui.Tag(th.CounterColor), len(cl.shown))
	if cl.filter != "" {
		title = fmt.Sprintf(" Chats /%s [%s](%d)[-] ", tview.Escape(cl.filter), ui.Tag(th.CounterColor), len(cl.shown))
	}
	cl.SetTitle(title)

	if row < 1 {
		row = 1
	}
	if row > len(cl.shown) {
		row = len(cl.shown)
	}
	if row >= 1 {
		cl.Select(row, 0)
	}
}

func filterChats(chats []directory.Conversation, q string) []directory.Conversation {
	if q == "" {
		return chats
	}
	var out []directory.Conversation
	for _, c := range chats {
		if containsFold(c.DisplayName, q) {
			out = append(out, c)
		}
	}
	return out
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// Name implements ui.Component.
func (cl *ChatList) Name() string { return PageChats }

// Start implements ui.Component.
func (cl *ChatList) Start() {}

// Stop implements ui.Component.
func (cl *ChatList) Stop() {}

// Hints implements ui.Component.
func (cl *ChatList) Hints() []ui.MenuHint {
	return []ui.MenuHint{
		{Key: "Enter", Description: "Open"},
		{Key: "n", Description: "New chat"},
		{Key: "d", Description: "Details"},
		{Key: "/", Description: "Filter"},
		{Key: "1-9", Description: "Jump", Numeric: true},
	}
}

// ApplyTheme implements ui.Component.
func (cl *ChatList) ApplyTheme() {
	styleTable(cl.Table, cl.theme)
	cl.render()
}
