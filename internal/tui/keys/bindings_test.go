package keys

import (
	"reflect"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func runeEvent(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestHandleEventPrefersView(t *testing.T) {
	r := NewRegistry()
	var fired []string
	r.AddGlobal(&Action{Key: tcell.KeyRune, Rune: 'l', Handler: func() { fired = append(fired, "global") }})
	r.AddView("Posts", &Action{Key: tcell.KeyRune, Rune: 'l', Handler: func() { fired = append(fired, "posts") }})

	if !r.HandleEvent("Posts", runeEvent('l')) {
		t.Fatal("event not handled")
	}
	if !r.HandleEvent("Chats", runeEvent('l')) {
		t.Fatal("global not handled")
	}
	if r.HandleEvent("Chats", runeEvent('x')) {
		t.Error("unbound key handled")
	}

	if want := []string{"posts", "global"}; !reflect.DeepEqual(fired, want) {
		t.Errorf("fired = %v, want %v", fired, want)
	}
}

func TestHandleEventSpecialKey(t *testing.T) {
	r := NewRegistry()
	hit := false
	r.AddGlobal(&Action{Key: tcell.KeyEsc, Handler: func() { hit = true }})
	r.HandleEvent("Chats", tcell.NewEventKey(tcell.KeyEsc, 0, tcell.ModNone))
	if !hit {
		t.Error("Esc not dispatched")
	}
}

func TestHintsOrdered(t *testing.T) {
	r := NewRegistry()
	r.AddGlobal(&Action{Key: tcell.KeyRune, Rune: '?', Description: "Help", Visible: true})
	r.AddGlobal(&Action{Key: tcell.KeyCtrlC, Description: "Quit"})
	r.AddView("Reels", &Action{Key: tcell.KeyRune, Rune: 'j', Description: "Next", Visible: true})
	r.AddView("Reels", &Action{Key: tcell.KeyEnter, Label: "Enter", Description: "Open", Visible: true})

	want := []Hint{
		{Key: "j", Description: "Next"},
		{Key: "Enter", Description: "Open"},
		{Key: "?", Description: "Help"},
	}
	if got := r.Hints("Reels"); !reflect.DeepEqual(got, want) {
		t.Errorf("Hints = %v, want %v", got, want)
	}
}
